package writer_test

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Jacobbishopxy/herding-go/monoid"
	"github.com/Jacobbishopxy/herding-go/writer"
)

var logs = monoid.Slice[string]()

func TestNewPureTell(t *testing.T) {
	w := writer.New([]string{"a"}, 1)
	log, v := w.Run()
	require.Equal(t, []string{"a"}, log)
	require.Equal(t, 1, v)

	require.Empty(t, writer.Pure(logs, 1).Written())
	require.Equal(t, []string{"hi"}, writer.Tell([]string{"hi"}).Written())
}

func TestMap_KeepsLog(t *testing.T) {
	w := writer.Map(writer.New([]string{"a"}, 2), func(x int) int { return x * 2 })
	require.Equal(t, []string{"a"}, w.Written())
	require.Equal(t, 4, w.Value())
}

func TestMapWritten_BiMap(t *testing.T) {
	w := writer.MapWritten(writer.New([]string{"a", "b"}, 1), func(ws []string) string {
		return strings.Join(ws, ";")
	})
	require.Equal(t, "a;b", w.Written())

	b := writer.BiMap(writer.New([]string{"a"}, 1),
		func(ws []string) int { return len(ws) },
		func(x int) string { return fmt.Sprint(x) })
	require.Equal(t, 1, b.Written())
	require.Equal(t, "1", b.Value())
}

func TestFlatMap_CombinesLogsInOrder(t *testing.T) {
	w := writer.FlatMap(logs,
		writer.New([]string{"first"}, 2),
		func(x int) writer.Writer[[]string, int] {
			return writer.New([]string{"second"}, x*10)
		})

	require.Equal(t, []string{"first", "second"}, w.Written())
	require.Equal(t, 20, w.Value())
}

func TestReset(t *testing.T) {
	w := writer.New([]string{"noise"}, 5).Reset(logs)
	require.Empty(t, w.Written())
	require.Equal(t, 5, w.Value())
}

func TestMap2(t *testing.T) {
	w := writer.Map2(logs,
		writer.New([]string{"l"}, 2),
		writer.New([]string{"r"}, 3),
		func(a, b int) int { return a * b })
	require.Equal(t, []string{"l", "r"}, w.Written())
	require.Equal(t, 6, w.Value())
}

// ============================================================================
// Worked example: factorial with a step log
// ============================================================================

func factorial(n int) writer.Writer[[]string, int] {
	if n == 0 {
		return writer.New([]string{"fact 0 = 1"}, 1)
	}
	return writer.FlatMap(logs, factorial(n-1), func(acc int) writer.Writer[[]string, int] {
		res := n * acc
		return writer.New([]string{fmt.Sprintf("fact %d = %d", n, res)}, res)
	})
}

func TestFactorialLog(t *testing.T) {
	log, v := factorial(3).Run()
	require.Equal(t, 6, v)
	require.Equal(t, []string{
		"fact 0 = 1",
		"fact 1 = 1",
		"fact 2 = 2",
		"fact 3 = 6",
	}, log)
}

func TestConcurrentWriters_DoNotInterleave(t *testing.T) {
	// Each goroutine owns its Writer; logs merge afterwards, in a
	// deterministic order chosen by the combiner, not the scheduler.
	var wg sync.WaitGroup
	results := make([]writer.Writer[[]string, int], 4)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = factorial(i)
		}(i)
	}
	wg.Wait()

	combined := writer.Pure(logs, 0)
	for _, r := range results {
		r := r
		combined = writer.FlatMap(logs, combined, func(acc int) writer.Writer[[]string, int] {
			return writer.Map(r, func(v int) int { return acc + v })
		})
	}

	require.Equal(t, 1+1+2+6, combined.Value())
	// factorial(0) contributes one line, 1 two, 2 three, 3 four.
	require.Len(t, combined.Written(), 1+2+3+4)
	require.Equal(t, "fact 0 = 1", combined.Written()[0])
}
