package recorder

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/roadrunner-server/errors"
	"go.uber.org/zap"
)

// capitalized level names as they appear inside legacy method names
var methodLevels = []string{"Debug", "Info", "Notice", "Warning", "Error", "Critical", "Alert", "Emergency"} //nolint:gochecknoglobals

// UndefinedMethodError is returned by Call for names which can't be mapped
// onto a generic query.
type UndefinedMethodError struct {
	Method string
}

func (e *UndefinedMethodError) Error() string {
	return fmt.Sprintf("call to undefined method Recorder::%s()", e.Method)
}

type handler func(r *Recorder, args []any) (any, error)

// generic queries reachable through Call, keyed by their legacy name
var dispatch = map[string]handler{ //nolint:gochecknoglobals
	"hasRecords":            callHasRecords,
	"hasRecord":             callHasRecord,
	"hasRecordThatContains": callHasRecordThatContains,
	"hasRecordThatMatches":  callHasRecordThatMatches,
	"hasRecordThatPasses":   callHasRecordThatPasses,
}

// Call invokes a query by a level-qualified name such as "hasDebug",
// "hasWarningRecords" or "HasErrorThatContains". The level is cut out of the
// name, the remaining parts form the generic query name and the lower-cased
// level is appended to args.
//
// Deprecated: use the per-level methods (HasDebug, HasWarningRecords, ...)
// or the generic queries directly. Every call logs a deprecation warning.
func (r *Recorder) Call(method string, args ...any) (any, error) {
	const op = errors.Op("recorder_call")

	generic, level, ok := decompose(method)
	r.log.Warn("method is deprecated and should not be called", zap.String("method", method), zap.String("use", generic))
	if !ok {
		return nil, errors.E(op, &UndefinedMethodError{Method: method})
	}

	h, ok := dispatch[lowerFirst(generic)]
	if !ok {
		return nil, errors.E(op, &UndefinedMethodError{Method: method})
	}

	out, err := h(r, append(args[:len(args):len(args)], level))
	if err != nil {
		return nil, errors.E(op, err)
	}

	return out, nil
}

// decompose splits method on the first capitalized level name into
// (prefix, Level, suffix) and returns prefix + "Record" + suffix (without
// "Record" when the suffix is "Records") together with the lower-cased level.
func decompose(method string) (string, string, bool) {
	pos, lvl := -1, ""
	for _, l := range methodLevels {
		if i := strings.Index(method, l); i >= 0 && (pos < 0 || i < pos) {
			pos, lvl = i, l
		}
	}

	if pos < 0 {
		return "", "", false
	}

	prefix, suffix := method[:pos], method[pos+len(lvl):]

	var sb strings.Builder
	sb.WriteString(prefix)
	if suffix != "Records" {
		sb.WriteString("Record")
	}
	sb.WriteString(suffix)

	return sb.String(), strings.ToLower(lvl), true
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}

	return string(unicode.ToLower(r)) + s[size:]
}

func callHasRecords(r *Recorder, args []any) (any, error) {
	const op = errors.Op("recorder_call_has_records")
	if len(args) != 1 {
		return nil, errors.E(op, errors.Errorf("hasRecords expects 1 argument, got: %d", len(args)))
	}

	return r.HasRecords(args[0])
}

func callHasRecord(r *Recorder, args []any) (any, error) {
	const op = errors.Op("recorder_call_has_record")
	if len(args) != 2 {
		return nil, errors.E(op, errors.Errorf("hasRecord expects 2 arguments, got: %d", len(args)))
	}

	exp, err := toExpectation(args[0])
	if err != nil {
		return nil, errors.E(op, err)
	}

	return r.HasRecord(exp, args[1])
}

func callHasRecordThatContains(r *Recorder, args []any) (any, error) {
	const op = errors.Op("recorder_call_has_record_that_contains")
	if len(args) != 2 {
		return nil, errors.E(op, errors.Errorf("hasRecordThatContains expects 2 arguments, got: %d", len(args)))
	}

	s, ok := args[0].(string)
	if !ok {
		return nil, errors.E(op, errors.Errorf("substring should be a string, got: %T", args[0]))
	}

	return r.HasRecordThatContains(s, args[1])
}

func callHasRecordThatMatches(r *Recorder, args []any) (any, error) {
	const op = errors.Op("recorder_call_has_record_that_matches")
	if len(args) != 2 {
		return nil, errors.E(op, errors.Errorf("hasRecordThatMatches expects 2 arguments, got: %d", len(args)))
	}

	s, ok := args[0].(string)
	if !ok {
		return nil, errors.E(op, errors.Errorf("pattern should be a string, got: %T", args[0]))
	}

	return r.HasRecordThatMatches(s, args[1])
}

func callHasRecordThatPasses(r *Recorder, args []any) (any, error) {
	const op = errors.Op("recorder_call_has_record_that_passes")
	if len(args) != 2 {
		return nil, errors.E(op, errors.Errorf("hasRecordThatPasses expects 2 arguments, got: %d", len(args)))
	}

	var p Predicate
	switch fn := args[0].(type) {
	case Predicate:
		p = fn
	case func(Record, int) bool:
		p = fn
	case func(Record) bool:
		p = func(rec Record, _ int) bool { return fn(rec) }
	default:
		return nil, errors.E(op, errors.Errorf("predicate should be a func(Record, int) bool, got: %T", args[0]))
	}

	return r.HasRecordThatPasses(p, args[1])
}

// toExpectation accepts the legacy shapes of a hasRecord argument: a bare
// message, an Expectation, or a map with "message" and optional "context".
func toExpectation(v any) (Expectation, error) {
	const op = errors.Op("recorder_to_expectation")

	switch val := v.(type) {
	case string:
		return Message(val), nil
	case Expectation:
		return val, nil
	case map[string]any:
		msg, ok := val["message"].(string)
		if !ok {
			return nil, errors.E(op, errors.Str("record should contain a string message"))
		}

		ctx, has := val["context"]
		if !has {
			return Message(msg), nil
		}

		c, ok := ctx.(map[string]any)
		if !ok {
			return nil, errors.E(op, errors.Errorf("record context should be a map[string]any, got: %T", ctx))
		}

		return Expected{Message: msg, Context: copyContext(c)}, nil
	default:
		return nil, errors.E(op, errors.Errorf("record should be a string or an Expectation, got: %T", v))
	}
}
