package recorder

import (
	"maps"
	"reflect"

	"github.com/goccy/go-json"
)

// Record is a single captured log call. Records are values and are never
// modified once stored.
type Record struct {
	// ID is unique for every record of the process.
	ID string `json:"id"`
	// Level is the normalized level the record was logged with.
	Level Key `json:"level"`
	// Message after optional placeholder interpolation.
	Message string `json:"message"`
	// Context as passed by the caller, never nil.
	Context map[string]any `json:"context"`
	// Channel is the logger name of the adapter which captured the record.
	Channel string `json:"channel,omitempty"`
	// TraceID and SpanID are set when the record was logged within a span.
	TraceID string `json:"trace_id,omitempty"`
	SpanID  string `json:"span_id,omitempty"`
}

// MarshalJSON packs the record for diagnostics output.
func (r Record) MarshalJSON() ([]byte, error) {
	type plain Record
	return json.Marshal(plain(r))
}

// Predicate is a caller supplied test over a record and its index in the
// level bucket. Predicates must not modify the record context.
type Predicate func(rec Record, i int) bool

// Expectation is what HasRecord looks for: either a bare Message or a
// structured Expected value.
type Expectation interface {
	expectation() Expected
}

// Message matches records by message only, any context matches.
type Message string

func (m Message) expectation() Expected {
	return Expected{Message: string(m)}
}

// Expected matches records by message and, when Context is not nil, by an
// exactly equal context. Use an empty non-nil map to require an empty
// context.
type Expected struct {
	Message string
	Context map[string]any
}

func (e Expected) expectation() Expected {
	return e
}

// matches is the predicate HasRecord evaluates for every record of a bucket.
func (e Expected) matches(rec Record) bool {
	if rec.Message != e.Message {
		return false
	}

	if e.Context != nil && !contextEqual(rec.Context, e.Context) {
		return false
	}

	return true
}

func contextEqual(stored, expected map[string]any) bool {
	if len(stored) != len(expected) {
		return false
	}

	return maps.EqualFunc(stored, expected, func(a, b any) bool {
		return reflect.DeepEqual(a, b)
	})
}

func copyContext(ctx map[string]any) map[string]any {
	if ctx == nil {
		return make(map[string]any)
	}

	return maps.Clone(ctx)
}
