// Package logtest provides testify assertions over a recorder.Recorder.
//
// Failed assertions print the records of the queried level as JSON, so the
// test output shows what was logged instead of a bare "expected true".
package logtest

import (
	"fmt"

	"github.com/roadrunner-server/testlogger/v4/recorder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tHelper interface {
	Helper()
}

// AssertHasRecord asserts that a record matching exp was logged at level.
func AssertHasRecord(t assert.TestingT, r *recorder.Recorder, exp recorder.Expectation, level any, msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	ok, err := r.HasRecord(exp, level)
	if err != nil {
		return assert.Fail(t, fmt.Sprintf("Unable to query records: %v", err), msgAndArgs...)
	}
	if !ok {
		return assert.Fail(t, fmt.Sprintf("No %v record matching %#v was logged, recorded:\n%s", level, exp, dump(r, level)), msgAndArgs...)
	}

	return true
}

// RequireHasRecord is AssertHasRecord which stops the test on failure.
func RequireHasRecord(t require.TestingT, r *recorder.Recorder, exp recorder.Expectation, level any, msgAndArgs ...any) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	if !AssertHasRecord(t, r, exp, level, msgAndArgs...) {
		t.FailNow()
	}
}

// AssertNoRecord asserts that no record matching exp was logged at level.
func AssertNoRecord(t assert.TestingT, r *recorder.Recorder, exp recorder.Expectation, level any, msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	ok, err := r.HasRecord(exp, level)
	if err != nil {
		return assert.Fail(t, fmt.Sprintf("Unable to query records: %v", err), msgAndArgs...)
	}
	if ok {
		return assert.Fail(t, fmt.Sprintf("Unexpected %v record matching %#v, recorded:\n%s", level, exp, dump(r, level)), msgAndArgs...)
	}

	return true
}

// AssertHasRecordThatContains asserts that a record containing substring
// was logged at level.
func AssertHasRecordThatContains(t assert.TestingT, r *recorder.Recorder, substring string, level any, msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	ok, err := r.HasRecordThatContains(substring, level)
	if err != nil {
		return assert.Fail(t, fmt.Sprintf("Unable to query records: %v", err), msgAndArgs...)
	}
	if !ok {
		return assert.Fail(t, fmt.Sprintf("No %v record contains %q, recorded:\n%s", level, substring, dump(r, level)), msgAndArgs...)
	}

	return true
}

// AssertHasRecordThatMatches asserts that a record matching the regular
// expression was logged at level.
func AssertHasRecordThatMatches(t assert.TestingT, r *recorder.Recorder, pattern string, level any, msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	ok, err := r.HasRecordThatMatches(pattern, level)
	if err != nil {
		return assert.Fail(t, fmt.Sprintf("Unable to query records: %v", err), msgAndArgs...)
	}
	if !ok {
		return assert.Fail(t, fmt.Sprintf("No %v record matches %q, recorded:\n%s", level, pattern, dump(r, level)), msgAndArgs...)
	}

	return true
}

// AssertCount asserts the number of records logged at level.
func AssertCount(t assert.TestingT, r *recorder.Recorder, level any, expected int, msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	recs, err := r.RecordsOf(level)
	if err != nil {
		return assert.Fail(t, fmt.Sprintf("Unable to query records: %v", err), msgAndArgs...)
	}
	if len(recs) != expected {
		return assert.Fail(t, fmt.Sprintf("Expected %d %v records, got %d:\n%s", expected, level, len(recs), dump(r, level)), msgAndArgs...)
	}

	return true
}

func dump(r *recorder.Recorder, level any) string {
	data, err := r.Dump(level)
	if err != nil {
		// unmarshalable context values, fall back to the fmt representation
		recs, _ := r.RecordsOf(level)
		return fmt.Sprintf("%+v", recs)
	}

	return string(data)
}
