package recorder

import (
	"fmt"
	"math"
	"reflect"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/roadrunner-server/errors"
)

// standard level names
const (
	Debug     string = "debug"
	Info      string = "info"
	Notice    string = "notice"
	Warning   string = "warning"
	Error     string = "error"
	Critical  string = "critical"
	Alert     string = "alert"
	Emergency string = "emergency"
)

// Levels lists the standard levels from the least to the most severe.
var Levels = []string{Debug, Info, Notice, Warning, Error, Critical, Alert, Emergency} //nolint:gochecknoglobals

// Key is a normalized level: either a name or a numeric code.
// Keys are comparable and index the per-level buckets of a Recorder.
type Key struct {
	name    string
	code    int
	numeric bool
}

// Name returns a key for a level name.
func Name(name string) Key {
	return Key{name: name}
}

// Code returns a key for a numeric level.
func Code(code int) Key {
	return Key{code: code, numeric: true}
}

// IsNumeric reports whether the key was normalized from an integer.
func (k Key) IsNumeric() bool {
	return k.numeric
}

// Int returns the numeric code, ok is false for named keys.
func (k Key) Int() (int, bool) {
	return k.code, k.numeric
}

func (k Key) String() string {
	if k.numeric {
		return strconv.Itoa(k.code)
	}

	return k.name
}

// MarshalJSON renders named keys as strings and numeric keys as numbers.
func (k Key) MarshalJSON() ([]byte, error) {
	if k.numeric {
		return json.Marshal(k.code)
	}

	return json.Marshal(k.name)
}

// LevelValuer is implemented by enumerated level types which carry an
// underlying value, the value is unwrapped before normalization.
type LevelValuer interface {
	LevelValue() any
}

// InvalidLevelError is returned when a level can't be normalized.
type InvalidLevelError struct {
	// Value is the level as it was passed in.
	Value any
	// Type is the Go type of Value.
	Type string
}

func (e *InvalidLevelError) Error() string {
	return fmt.Sprintf("the given level of type %q could not be normalized to a string or int", e.Type)
}

// NormalizeLevel converts a level into its Key. Enumerated values are
// unwrapped first, then fmt.Stringer values are converted to their string
// form. Strings and integers (including named types built on them) become
// keys, anything else is rejected with an *InvalidLevelError.
func NormalizeLevel(level any) (Key, error) {
	const op = errors.Op("recorder_normalize_level")

	orig := level

	if isNilPointer(level) {
		return Key{}, errors.E(op, invalidLevel(orig))
	}

	switch l := level.(type) {
	case Key:
		return l, nil
	case LevelValuer:
		level = l.LevelValue()
		if isNilPointer(level) {
			return Key{}, errors.E(op, invalidLevel(orig))
		}
	}

	if s, ok := level.(fmt.Stringer); ok {
		level = s.String()
	}

	switch l := level.(type) {
	case string:
		return Name(l), nil
	case int:
		return Code(l), nil
	case nil:
		return Key{}, errors.E(op, invalidLevel(orig))
	}

	v := reflect.ValueOf(level)
	switch v.Kind() { //nolint:exhaustive
	case reflect.String:
		return Name(v.String()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i := v.Int()
		if i < math.MinInt || i > math.MaxInt {
			return Key{}, errors.E(op, invalidLevel(orig))
		}
		return Code(int(i)), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := v.Uint()
		if u > math.MaxInt {
			return Key{}, errors.E(op, invalidLevel(orig))
		}
		return Code(int(u)), nil
	default:
		return Key{}, errors.E(op, invalidLevel(orig))
	}
}

// isNilPointer reports a typed nil pointer, calling methods on it would panic.
func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

func invalidLevel(v any) *InvalidLevelError {
	return &InvalidLevelError{
		Value: v,
		Type:  fmt.Sprintf("%T", v),
	}
}

// keys of the standard levels, used by the fixed per-level surface
var (
	debugKey     = Name(Debug)     //nolint:gochecknoglobals
	infoKey      = Name(Info)      //nolint:gochecknoglobals
	noticeKey    = Name(Notice)    //nolint:gochecknoglobals
	warningKey   = Name(Warning)   //nolint:gochecknoglobals
	errorKey     = Name(Error)     //nolint:gochecknoglobals
	criticalKey  = Name(Critical)  //nolint:gochecknoglobals
	alertKey     = Name(Alert)     //nolint:gochecknoglobals
	emergencyKey = Name(Emergency) //nolint:gochecknoglobals
)
