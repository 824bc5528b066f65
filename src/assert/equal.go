package assert

import "errors"

// Equal checks whether expected and actual are actually equal and fails the test
// if they are not.
func Equal[V comparable](t TestingErrf, expected, actual V, msgAndArgs ...any) {
	t.Helper()

	if expected == actual {
		return
	}

	t.Errorf("not equal: expected `%#v` but got `%#v`%s",
		expected, actual, fromMsgAndArgs(msgAndArgs...),
	)
}

// ErrorIs checks that `target` is somewhere in the chain of `err`.
func ErrorIs(t TestingErrf, err, target error, msgAndArgs ...any) {
	t.Helper()

	if errors.Is(err, target) {
		return
	}

	t.Errorf("expected error `%v` but got `%v`%s",
		target, err, fromMsgAndArgs(msgAndArgs...),
	)
}
