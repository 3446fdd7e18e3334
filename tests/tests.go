// Package tests builds contexts for tests. The context carries a unique test
// id, the test name, the *testing.T and a logger that writes through t.Log,
// so log output from code under test lands next to the failing assertion.
//
//	func TestGreet(t *testing.T) {
//	    ctx := tests.Context(t)
//	    info, _ := tests.GetTestInfo(ctx)
//	    ...
//	}
package tests

import (
	"context"
	"testing"

	"github.com/amp-labs/typecheck/contexts"
	"github.com/amp-labs/typecheck/envutil"
	"github.com/amp-labs/typecheck/logger"
	"github.com/google/uuid"
	"github.com/neilotoole/slogt"
)

type contextKey string

const (
	// testIdKey holds a UUID prefixed with "test-".
	testIdKey contextKey = "testId"

	// testNameKey holds t.Name(), subtest path included.
	testNameKey contextKey = "testName"

	testTestKey contextKey = "testTest"
)

// Context returns t.Context() decorated with a unique id, the test name, the
// test itself and a slogt logger installed with logger.WithLogger.
func Context(t *testing.T) context.Context {
	t.Helper()

	ctx := t.Context()
	ctx = contexts.WithValue[contextKey, *testing.T](ctx, testTestKey, t)
	ctx = contexts.WithValue[contextKey, string](ctx, testIdKey, "test-"+uuid.New().String())
	ctx = contexts.WithValue[contextKey, string](ctx, testNameKey, t.Name())

	return logger.WithLogger(ctx, slogt.New(t))
}

// CheckSkipped skips the test when the boolean environment variable envKey
// is true. The optional values are the default (false when omitted) and
// whether to invert the check.
func CheckSkipped(t *testing.T, envKey string, defaultValue ...bool) {
	t.Helper()

	defl := false
	invert := false

	if len(defaultValue) > 0 {
		defl = defaultValue[0]
	}

	if len(defaultValue) > 1 {
		invert = defaultValue[1]
	}

	original := envutil.Bool(envKey, envutil.Default(defl)).ValueOrElse(defl)

	if original != invert {
		t.Skipf("Skipping test because of environment variable: %s=%v", envKey, original)
	}
}

// GetTestName returns the test name stored by Context.
func GetTestName(ctx context.Context) (string, bool) {
	return contexts.GetValue[contextKey, string](ctx, testNameKey)
}

// GetTestId returns the unique id stored by Context.
func GetTestId(ctx context.Context) (string, bool) { //nolint:revive
	return contexts.GetValue[contextKey, string](ctx, testIdKey)
}

// GetTest returns the *testing.T stored by Context.
func GetTest(ctx context.Context) (*testing.T, bool) {
	return contexts.GetValue[contextKey, *testing.T](ctx, testTestKey)
}

// Info is the test metadata carried by a Context.
type Info struct {
	Test *testing.T `json:"-"`
	Id   string     `json:"id"` //nolint:revive
	Name string     `json:"name"`
}

// GetTestInfo collects the metadata stored by Context. It reports false when
// the context carries none of it.
func GetTestInfo(ctx context.Context) (Info, bool) {
	name, nameOk := GetTestName(ctx)
	id, idOk := GetTestId(ctx)
	t, tOk := GetTest(ctx)

	if !nameOk && !idOk && !tOk {
		return Info{}, false
	}

	return Info{
		Test: t,
		Id:   id,
		Name: name,
	}, true
}
