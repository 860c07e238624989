package recorder

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// Interpolate replaces every {key} placeholder in message with the string
// form of context[key]. Only scalar values and values with a String or
// Error method are substituted, other placeholders are left as is.
// The context is not modified.
func Interpolate(message string, context map[string]any) string {
	if len(context) == 0 || !strings.Contains(message, "{") {
		return message
	}

	keys := make([]string, 0, len(context))
	for k := range context {
		keys = append(keys, k)
	}
	// longer placeholders first, the same way strtr-like replacers prefer the longest match
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})

	oldnew := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		s, ok := stringify(context[k])
		if !ok {
			continue
		}
		oldnew = append(oldnew, "{"+k+"}", s)
	}

	if len(oldnew) == 0 {
		return message
	}

	return strings.NewReplacer(oldnew...).Replace(message)
}

func stringify(v any) (string, bool) {
	if isNilPointer(v) {
		return "", true
	}

	switch val := v.(type) {
	case nil:
		return "", true
	case string:
		return val, true
	case fmt.Stringer:
		return val.String(), true
	case error:
		return val.Error(), true
	case []byte:
		return string(val), true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() { //nolint:exhaustive
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 32), true
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 64), true
	case reflect.Complex64, reflect.Complex128:
		return fmt.Sprint(v), true
	case reflect.String:
		return rv.String(), true
	default:
		return "", false
	}
}
