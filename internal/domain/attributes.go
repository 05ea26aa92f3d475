package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Attributes is an untyped attribute map as decoded from YAML or JSON.
//
// Every reader returns (value, present, err): an absent key is not an
// error, a present key of the wrong type or form is a *FieldError wrapping
// ErrInvalidAttribute.
type Attributes map[string]interface{}

func (a Attributes) invalid(key, want string, got interface{}) error {
	return &FieldError{
		Field: key,
		Err:   fmt.Errorf("%w: want %s, got %T", ErrInvalidAttribute, want, got),
	}
}

func (a Attributes) String(key string) (string, bool, error) {
	v, ok := a[key]
	if !ok || v == nil {
		return "", false, nil
	}
	switch s := v.(type) {
	case string:
		return s, true, nil
	case int, int64, float64, bool:
		return fmt.Sprint(s), true, nil
	default:
		return "", true, a.invalid(key, "string", v)
	}
}

func (a Attributes) Bool(key string) (bool, bool, error) {
	v, ok := a[key]
	if !ok || v == nil {
		return false, false, nil
	}
	switch b := v.(type) {
	case bool:
		return b, true, nil
	case string:
		parsed, err := parseFlag(b)
		if err != nil {
			return false, true, a.invalid(key, "bool", v)
		}
		return parsed, true, nil
	default:
		return false, true, a.invalid(key, "bool", v)
	}
}

func (a Attributes) Int(key string) (int, bool, error) {
	v, ok := a[key]
	if !ok || v == nil {
		return 0, false, nil
	}
	switch n := v.(type) {
	case int:
		return n, true, nil
	case int64:
		return int(n), true, nil
	case float64:
		if n != math.Trunc(n) {
			return 0, true, a.invalid(key, "integer", v)
		}
		return int(n), true, nil
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, true, a.invalid(key, "integer", v)
		}
		return parsed, true, nil
	default:
		return 0, true, a.invalid(key, "integer", v)
	}
}

// StringList accepts a sequence of strings or a delimited string.
func (a Attributes) StringList(key string) ([]string, bool, error) {
	v, ok := a[key]
	if !ok || v == nil {
		return nil, false, nil
	}
	switch l := v.(type) {
	case []string:
		return l, true, nil
	case string:
		return SplitList(normaliseList(l)), true, nil
	case []interface{}:
		out := make([]string, 0, len(l))
		for _, item := range l {
			s, isString := item.(string)
			if !isString {
				return nil, true, a.invalid(key, "list of strings", item)
			}
			out = append(out, s)
		}
		return out, true, nil
	default:
		return nil, true, a.invalid(key, "list of strings", v)
	}
}

func (a Attributes) Map(key string) (Attributes, bool, error) {
	v, ok := a[key]
	if !ok || v == nil {
		return nil, false, nil
	}
	switch m := v.(type) {
	case Attributes:
		return m, true, nil
	case map[string]interface{}:
		return Attributes(m), true, nil
	default:
		return nil, true, a.invalid(key, "map", v)
	}
}
