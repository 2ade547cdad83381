package validated_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Jacobbishopxy/herding-go/either"
	"github.com/Jacobbishopxy/herding-go/validated"
)

func TestValidInvalid(t *testing.T) {
	v := validated.Valid[string](3)
	require.True(t, v.IsValid())
	require.Equal(t, 3, v.Get())
	require.Nil(t, v.Errors())

	iv := validated.Invalid[int]("bad")
	require.True(t, iv.IsInvalid())
	require.Equal(t, []string{"bad"}, iv.Errors())
	require.Equal(t, 0, iv.GetOrElse(0))
}

func TestGet_PanicsOnInvalid(t *testing.T) {
	require.Panics(t, func() { validated.Invalid[int]("bad").Get() })
}

func TestInvalids_RejectsEmpty(t *testing.T) {
	require.Panics(t, func() { validated.Invalids[int]([]string{}) })
}

func TestMap(t *testing.T) {
	v := validated.Map(validated.Valid[string](2), func(x int) int { return x * 2 })
	require.Equal(t, 4, v.Get())

	iv := validated.Map(validated.Invalid[int]("bad"), func(x int) int { return x * 2 })
	require.Equal(t, []string{"bad"}, iv.Errors())
}

func TestMapErrors(t *testing.T) {
	iv := validated.Invalids[int]([]string{"a", "b"})
	got := validated.MapErrors(iv, strings.ToUpper)
	require.Equal(t, []string{"A", "B"}, got.Errors())
}

func TestMap2_AccumulatesBothSides(t *testing.T) {
	add := func(a, b int) int { return a + b }

	ok := validated.Map2(validated.Valid[string](1), validated.Valid[string](2), add)
	require.Equal(t, 3, ok.Get())

	both := validated.Map2(
		validated.Invalid[int]("first"),
		validated.Invalid[int]("second"),
		add)
	require.Equal(t, []string{"first", "second"}, both.Errors())

	one := validated.Map2(validated.Valid[string](1), validated.Invalid[int]("only"), add)
	require.Equal(t, []string{"only"}, one.Errors())
}

func TestMap3_ErrorOrder(t *testing.T) {
	got := validated.Map3(
		validated.Invalid[int]("a"),
		validated.Valid[string](2),
		validated.Invalids[int]([]string{"c", "d"}),
		func(a, b, c int) int { return a + b + c })
	require.Equal(t, []string{"a", "c", "d"}, got.Errors())
}

func TestEitherConversions(t *testing.T) {
	require.Equal(t, validated.Valid[string](1),
		validated.FromEither(either.Right[string](1)))
	require.Equal(t, []string{"e"},
		validated.FromEither(either.Left[int]("e")).Errors())

	// ToEither keeps only the first error.
	iv := validated.Invalids[int]([]string{"x", "y"})
	require.Equal(t, either.Left[int]("x"), validated.ToEither(iv))
	require.Equal(t, either.Right[string](1),
		validated.ToEither(validated.Valid[string](1)))
}

func TestString(t *testing.T) {
	require.Equal(t, "Valid(1)", validated.Valid[string](1).String())
	require.Equal(t, "Invalid(a, b)",
		validated.Invalids[int]([]string{"a", "b"}).String())
}

// ============================================================================
// Worked example: validating a signup form
// ============================================================================

type form struct {
	Name  string
	Email string
	Age   int
}

func checkName(name string) validated.Validated[string, string] {
	return validated.Check(name,
		func(s string) bool { return s != "" },
		"name must not be empty")
}

func checkEmail(email string) validated.Validated[string, string] {
	return validated.Check(email,
		func(s string) bool { return strings.Contains(s, "@") },
		"email must contain @")
}

func checkAge(age int) validated.Validated[string, int] {
	return validated.Check(age,
		func(n int) bool { return n >= 0 && n < 150 },
		"age must be between 0 and 149")
}

func validateForm(name, email string, age int) validated.Validated[string, form] {
	return validated.Map3(
		checkName(name), checkEmail(email), checkAge(age),
		func(n, e string, a int) form {
			return form{Name: n, Email: e, Age: a}
		})
}

func TestValidateForm_AllGood(t *testing.T) {
	got := validateForm("Ada", "ada@calc.org", 36)
	require.True(t, got.IsValid())
	require.Equal(t, form{Name: "Ada", Email: "ada@calc.org", Age: 36}, got.Get())
}

func TestValidateForm_CollectsEveryFailure(t *testing.T) {
	got := validateForm("", "not-an-email", -1)
	require.Equal(t, []string{
		"name must not be empty",
		"email must contain @",
		"age must be between 0 and 149",
	}, got.Errors())
}

func TestValidateForm_ShortCircuitAlternative(t *testing.T) {
	// Through Either the same data reports only the first problem.
	e := either.FlatMap(
		validated.ToEither(checkName("")),
		func(string) either.Either[string, string] {
			return validated.ToEither(checkEmail("not-an-email"))
		})
	require.Equal(t, "name must not be empty", e.MustLeft())
}
