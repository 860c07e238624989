package recorder

import (
	"regexp"
	"strings"

	"github.com/roadrunner-server/errors"
)

// compilePattern compiles a RE2 pattern. Patterns written with delimiters,
// e.g. /^[a-z]+ Message$/i, are unwrapped: the i, m, s and U flags become
// inline flags, u is dropped since RE2 always matches UTF-8, other PCRE
// modifiers are rejected.
func compilePattern(pattern string) (*regexp.Regexp, error) {
	const op = errors.Op("recorder_compile_pattern")

	expr, err := undelimit(pattern)
	if err != nil {
		return nil, errors.E(op, err)
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, errors.E(op, err)
	}

	return re, nil
}

func mustCompilePattern(pattern string) *regexp.Regexp {
	re, err := compilePattern(pattern)
	if err != nil {
		panic(err)
	}

	return re
}

func undelimit(pattern string) (string, error) {
	if len(pattern) < 2 || pattern[0] != '/' {
		return pattern, nil
	}

	end := strings.LastIndexByte(pattern, '/')
	if end == 0 {
		return pattern, nil
	}

	body, flags := pattern[1:end], pattern[end+1:]
	// not a delimited pattern when the tail is not a modifier list, e.g. "/usr/bin/env"
	if strings.Trim(flags, "imsxuADSUXJn") != "" {
		return pattern, nil
	}

	var inline strings.Builder
	for i := 0; i < len(flags); i++ {
		switch flags[i] {
		case 'i', 'm', 's', 'U':
			inline.WriteByte(flags[i])
		case 'u':
		default:
			return "", errors.Errorf("pattern modifier %q is not supported", flags[i])
		}
	}

	if inline.Len() == 0 {
		return body, nil
	}

	return "(?" + inline.String() + ")" + body, nil
}
