// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

var (
	errNotInteger = errors.New("expected a base-10 integer")
	errNotBool    = errors.New("expected a boolean (true/false, yes/no, on/off, 1/0)")
	errNotScalar  = errors.New("expected a scalar value")
	errNotUTF8    = errors.New("expected valid UTF-8 text")
)

// coerce converts v into the Go type declared by f's kind. Strings are
// parsed, file-decoded scalars are converted where the conversion is exact.
func (f Field) coerce(v any) (any, error) {
	var (
		out any
		err error
	)

	switch f.Kind {
	case KindInt:
		out, err = toInt(v)
	case KindBool:
		out, err = toBool(v)
	default:
		out, err = toString(v)
	}

	if err != nil {
		return nil, &ValidationError{Field: f.Path, Value: v, Err: err}
	}
	return out, nil
}

func toInt(v any) (int, error) {
	switch val := v.(type) {
	case int:
		return val, nil
	case int64:
		return int(val), nil
	case float64:
		if val != math.Trunc(val) || val < math.MinInt || val >= math.MaxInt {
			return 0, errNotInteger
		}
		return int(val), nil
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(val), 10, 0)
		if err != nil {
			return 0, errNotInteger
		}
		return int(n), nil
	default:
		return 0, errNotInteger
	}
}

func toBool(v any) (bool, error) {
	switch val := v.(type) {
	case bool:
		return val, nil
	case string:
		return parseBool(val)
	default:
		return false, errNotBool
	}
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "t", "true", "y", "yes", "on":
		return true, nil
	case "0", "f", "false", "n", "no", "off":
		return false, nil
	default:
		return false, errNotBool
	}
}

func toString(v any) (string, error) {
	switch val := v.(type) {
	case string:
		if !utf8.ValidString(val) {
			return "", errNotUTF8
		}
		return val, nil
	case int:
		return strconv.Itoa(val), nil
	case int64:
		return strconv.FormatInt(val, 10), nil
	case bool:
		return strconv.FormatBool(val), nil
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), nil
	default:
		return "", fmt.Errorf("%w, got %T", errNotScalar, v)
	}
}
