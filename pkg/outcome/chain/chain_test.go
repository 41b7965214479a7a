package chain

import (
	"errors"
	"strconv"
	"testing"

	"github.com/ib-77/outcome/pkg/outcome"
)

func TestFromAndOutcome(t *testing.T) {
	t.Parallel()

	out := From(outcome.Success(5)).Outcome()
	if !out.IsSuccess() || out.Value() != 5 {
		t.Fatalf("expected success with 5, got: success=%v, val=%v, err=%v", out.IsSuccess(), out.Value(), out.Cause())
	}
}

func TestFromValue(t *testing.T) {
	t.Parallel()

	out := FromValue(7).Outcome()
	if !out.IsSuccess() || out.Value() != 7 {
		t.Fatalf("expected success with 7, got: success=%v, val=%v", out.IsSuccess(), out.Value())
	}
}

func TestThen_ShortCircuitOnFailure(t *testing.T) {
	t.Parallel()

	called := false
	out := From(outcome.Fail[int]("boom")).
		Then(func(v int) outcome.Outcome[int] {
			called = true
			return outcome.Success(v + 1)
		}).
		Outcome()

	if out.IsSuccess() || out.Message() != "boom" {
		t.Fatalf("expected failure 'boom', got: success=%v, msg=%q", out.IsSuccess(), out.Message())
	}
	if called {
		t.Fatalf("next must not be called when the chain already failed")
	}
}

func TestThen_SuccessPath(t *testing.T) {
	t.Parallel()

	out := FromValue(3).
		Then(func(v int) outcome.Outcome[int] { return outcome.Success(v * 2) }).
		Outcome()

	if !out.IsSuccess() || out.Value() != 6 {
		t.Fatalf("expected success with 6, got: success=%v, val=%v", out.IsSuccess(), out.Value())
	}
}

func TestThenTry_ErrorPropagation(t *testing.T) {
	t.Parallel()

	out := FromValue(10).
		ThenTry(func(v int) (int, error) { return 0, errors.New("try-error") }).
		Outcome()

	if out.IsSuccess() || out.Message() != "try-error" {
		t.Fatalf("expected failure 'try-error', got: success=%v, msg=%q", out.IsSuccess(), out.Message())
	}
}

func TestThenTry_Success(t *testing.T) {
	t.Parallel()

	out := FromValue(4).
		ThenTry(func(v int) (int, error) { return v * v, nil }).
		Outcome()

	if !out.IsSuccess() || out.Value() != 16 {
		t.Fatalf("expected success with 16, got: success=%v, val=%v", out.IsSuccess(), out.Value())
	}
}

func TestThenTry_PanicCaptured(t *testing.T) {
	t.Parallel()

	out := FromValue(1).
		ThenTry(func(v int) (int, error) { panic(errors.New("deep panic")) }).
		Outcome()

	if out.IsSuccess() || out.Message() != "deep panic" {
		t.Fatalf("expected captured panic, got: success=%v, msg=%q", out.IsSuccess(), out.Message())
	}
}

func TestMap(t *testing.T) {
	t.Parallel()

	out := FromValue(3).Map(func(v int) int { return v + 100 }).Outcome()
	if !out.IsSuccess() || out.Value() != 103 {
		t.Fatalf("expected success with 103, got: success=%v, val=%v", out.IsSuccess(), out.Value())
	}
}

func TestEnsure(t *testing.T) {
	t.Parallel()

	out := FromValue(2).
		Ensure(func(v int) bool { return v > 10 }, "too small").
		Outcome()

	if out.IsSuccess() || out.Message() != "too small" {
		t.Fatalf("expected failure 'too small', got: success=%v, msg=%q", out.IsSuccess(), out.Message())
	}
}

func TestWhen(t *testing.T) {
	t.Parallel()

	out := FromValue(2).
		When(true, func(v int) outcome.Outcome[int] { return outcome.Success(v * 5) }).
		When(false, func(v int) outcome.Outcome[int] { return outcome.Success(0) }).
		Outcome()

	if out.Value() != 10 {
		t.Fatalf("expected 10, got: %v", out.Value())
	}
}

func TestMapError(t *testing.T) {
	t.Parallel()

	out := From(outcome.Fail[int]("raw")).
		MapError(func(cause error) error { return errors.New("wrapped: " + cause.Error()) }).
		Outcome()

	if out.Message() != "wrapped: raw" {
		t.Fatalf("expected wrapped message, got: %q", out.Message())
	}
}

func TestSideEffects(t *testing.T) {
	t.Parallel()

	var taps, successes, failures int
	FromValue(1).
		Tap(func(o outcome.Outcome[int]) { taps++ }).
		OnSuccess(func(v int) { successes++ }).
		OnFailure(func(message string, cause error) { failures++ })

	if taps != 1 || successes != 1 || failures != 0 {
		t.Fatalf("unexpected effect counts: taps=%d, successes=%d, failures=%d", taps, successes, failures)
	}
}

func TestFinallyMethod(t *testing.T) {
	t.Parallel()

	got := FromValue(5).Finally(
		func(v int) int { return v * 2 },
		func(message string, cause error) int { return -1 })
	if got != 10 {
		t.Fatalf("expected 10, got: %v", got)
	}

	got = From(outcome.Fail[int]("x")).Finally(
		func(v int) int { return v },
		func(message string, cause error) int { return -1 })
	if got != -1 {
		t.Fatalf("expected -1, got: %v", got)
	}
}

func TestPackageLevelThen_TypeChange(t *testing.T) {
	t.Parallel()

	out := Then(FromValue(5), func(v int) outcome.Outcome[string] {
		return outcome.Success(strconv.Itoa(v))
	}).Outcome()

	if !out.IsSuccess() || out.Value() != "5" {
		t.Fatalf("expected success with \"5\", got: success=%v, val=%q", out.IsSuccess(), out.Value())
	}
}

func TestPackageLevelThenTry_ShortCircuit(t *testing.T) {
	t.Parallel()

	called := false
	out := ThenTry(From(outcome.Fail[int]("bad")), func(v int) (string, error) {
		called = true
		return "", nil
	}).Outcome()

	if called || out.IsSuccess() || out.Message() != "bad" {
		t.Fatalf("expected propagated failure, got: called=%v, msg=%q", called, out.Message())
	}
}

func TestPackageLevelMapAndFinally(t *testing.T) {
	t.Parallel()

	c := Map(FromValue(21), func(v int) string { return strconv.Itoa(v * 2) })
	got := Finally(c,
		func(v string) string { return "ok:" + v },
		func(message string, cause error) string { return "err" })

	if got != "ok:42" {
		t.Fatalf("expected ok:42, got: %q", got)
	}
}
