package state_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Jacobbishopxy/herding-go/state"
)

func TestPure(t *testing.T) {
	s, a := state.Pure[int]("x").Run(7)
	require.Equal(t, 7, s)
	require.Equal(t, "x", a)
}

func TestGetPutModifyInspect(t *testing.T) {
	s, a := state.Get[int]().Run(3)
	require.Equal(t, 3, s)
	require.Equal(t, 3, a)

	require.Equal(t, 9, state.Put(9).RunS(3))

	require.Equal(t, 4, state.Modify(func(x int) int { return x + 1 }).RunS(3))

	require.Equal(t, "3", state.Inspect(strconv.Itoa).RunA(3))
}

func TestMap_FlatMap(t *testing.T) {
	step := state.Map(state.Get[int](), func(x int) string {
		return strconv.Itoa(x * 2)
	})
	s, a := step.Run(10)
	require.Equal(t, 10, s)
	require.Equal(t, "20", a)

	// get, add one to the state, then report the old value.
	prog := state.FlatMap(state.Get[int](), func(old int) state.State[int, int] {
		return state.Then(
			state.Put(old+1),
			state.Pure[int](old))
	})
	s, old := prog.Run(41)
	require.Equal(t, 42, s)
	require.Equal(t, 41, old)
}

func TestMap2_ThreadsStateInOrder(t *testing.T) {
	next := state.FlatMap(state.Get[int](), func(x int) state.State[int, int] {
		return state.Then(state.Put(x+1), state.Pure[int](x))
	})

	both := state.Map2(next, next, func(a, b int) [2]int { return [2]int{a, b} })
	s, pair := both.Run(0)
	require.Equal(t, 2, s)
	require.Equal(t, [2]int{0, 1}, pair)
}

func TestTraverse_Sequence(t *testing.T) {
	label := func(name string) state.State[int, string] {
		return func(n int) (int, string) {
			return n + 1, name + "-" + strconv.Itoa(n)
		}
	}

	s, labels := state.Traverse([]string{"a", "b", "c"}, label).Run(0)
	require.Equal(t, 3, s)
	require.Equal(t, []string{"a-0", "b-1", "c-2"}, labels)

	s, vals := state.Sequence([]state.State[int, int]{
		state.Get[int](),
		state.Map(state.Modify(func(x int) int { return x * 2 }), func(struct{}) int { return -1 }),
		state.Get[int](),
	}).Run(3)
	require.Equal(t, 6, s)
	require.Equal(t, []int{3, -1, 6}, vals)
}

func TestPurity_SameInputSameOutput(t *testing.T) {
	prog := state.FlatMap(state.Get[int](), func(x int) state.State[int, int] {
		return state.Then(state.Put(x*2), state.Pure[int](x+1))
	})

	s1, a1 := prog.Run(5)
	s2, a2 := prog.Run(5)
	require.Equal(t, s1, s2)
	require.Equal(t, a1, a2)
}

// ============================================================================
// Worked example: a postfix calculator over a stack state
// ============================================================================

type stack []int

func push(n int) state.State[stack, struct{}] {
	return state.Modify(func(s stack) stack {
		out := make(stack, len(s), len(s)+1)
		copy(out, s)
		return append(out, n)
	})
}

func pop2(op func(a, b int) int) state.State[stack, struct{}] {
	return state.Modify(func(s stack) stack {
		a, b := s[len(s)-2], s[len(s)-1]
		out := make(stack, len(s)-2, len(s)-1)
		copy(out, s[:len(s)-2])
		return append(out, op(a, b))
	})
}

func evalPostfix(expr string) state.State[stack, int] {
	steps := make([]state.State[stack, struct{}], 0)
	for _, tok := range strings.Fields(expr) {
		switch tok {
		case "+":
			steps = append(steps, pop2(func(a, b int) int { return a + b }))
		case "*":
			steps = append(steps, pop2(func(a, b int) int { return a * b }))
		default:
			n, _ := strconv.Atoi(tok)
			steps = append(steps, push(n))
		}
	}
	return state.FlatMap(state.Sequence(steps), func([]struct{}) state.State[stack, int] {
		return state.Inspect(func(s stack) int { return s[len(s)-1] })
	})
}

func TestPostfixCalculator(t *testing.T) {
	// (1 + 2) * 3
	require.Equal(t, 9, evalPostfix("1 2 + 3 *").RunA(nil))
	// 2 * 3 + 4
	require.Equal(t, 10, evalPostfix("2 3 * 4 +").RunA(nil))
}
