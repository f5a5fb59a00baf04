package mapper

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/diwise/eventspot/pkg/eventspot/errors"
	"github.com/diwise/eventspot/pkg/eventspot/types"
	"github.com/diwise/eventspot/pkg/eventspot/types/optional"
)

// TypeError reports that a field held a value of a different shape than the
// one the mapper expected. It matches errors.ErrTypeConversion.
type TypeError struct {
	Field    string
	Expected string
	Got      any
}

func (te *TypeError) Error() string {
	return fmt.Sprintf("field %q: cannot convert %T to %s", te.Field, te.Got, te.Expected)
}

func (te *TypeError) Is(target error) bool {
	return target == errors.ErrTypeConversion
}

// GetValue returns the raw value stored under key. Missing keys and explicit
// nulls both report false.
func GetValue(props types.Payload, key string) (any, bool) {
	if props == nil {
		return nil, false
	}

	v, ok := props[key]
	if !ok || v == nil {
		return nil, false
	}

	return v, true
}

func Text(props types.Payload, key string) (optional.Value[string], error) {
	v, ok := GetValue(props, key)
	if !ok {
		return optional.None[string](), nil
	}

	s, ok := v.(string)
	if !ok {
		return optional.None[string](), &TypeError{Field: key, Expected: "text", Got: v}
	}

	return optional.Some(s), nil
}

// Enum extracts a closed-set text value. The value is not checked against the
// legal set, anything that is text is accepted.
func Enum[E ~string](props types.Payload, key string) (optional.Value[E], error) {
	s, err := Text(props, key)
	if err != nil {
		return optional.None[E](), err
	}

	return optional.Map(s, func(v string) E { return E(v) }), nil
}

func DateTime(props types.Payload, key string) (optional.Value[types.DateTime], error) {
	return Enum[types.DateTime](props, key)
}

func Bool(props types.Payload, key string) (optional.Value[bool], error) {
	v, ok := GetValue(props, key)
	if !ok {
		return optional.None[bool](), nil
	}

	b, ok := v.(bool)
	if !ok {
		return optional.None[bool](), &TypeError{Field: key, Expected: "boolean", Got: v}
	}

	return optional.Some(b), nil
}

func Integer(props types.Payload, key string) (optional.Value[int64], error) {
	v, ok := GetValue(props, key)
	if !ok {
		return optional.None[int64](), nil
	}

	n, ok := toInt64(v)
	if !ok {
		return optional.None[int64](), &TypeError{Field: key, Expected: "integer", Got: v}
	}

	return optional.Some(n), nil
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case float64:
		// float64(math.MaxInt64) rounds up to 1<<63, which does not fit
		if n != math.Trunc(n) || n >= 1<<63 || n < math.MinInt64 {
			return 0, false
		}
		return int64(n), true
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return uintToInt64(uint64(n))
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return uintToInt64(n)
	}

	return 0, false
}

func uintToInt64(n uint64) (int64, bool) {
	if n > math.MaxInt64 {
		return 0, false
	}
	return int64(n), true
}

// TextList extracts an ordered list of text values. Every element must be text.
func TextList(props types.Payload, key string) (optional.Value[[]string], error) {
	v, ok := GetValue(props, key)
	if !ok {
		return optional.None[[]string](), nil
	}

	switch list := v.(type) {
	case []string:
		return optional.Some(append([]string{}, list...)), nil
	case []any:
		values := make([]string, 0, len(list))
		for _, item := range list {
			s, ok := item.(string)
			if !ok {
				return optional.None[[]string](), &TypeError{Field: key, Expected: "list of text", Got: item}
			}
			values = append(values, s)
		}
		return optional.Some(values), nil
	}

	return optional.None[[]string](), &TypeError{Field: key, Expected: "list of text", Got: v}
}

func EnumList[E ~string](props types.Payload, key string) (optional.Value[[]E], error) {
	list, err := TextList(props, key)
	if err != nil {
		return optional.None[[]E](), err
	}

	return optional.Map(list, func(values []string) []E {
		enums := make([]E, 0, len(values))
		for _, v := range values {
			enums = append(enums, E(v))
		}
		return enums
	}), nil
}

// Object hands the sub-mapping stored under key to the nested type's own
// create function. Errors from the nested create are prefixed with key.
func Object[T any](props types.Payload, key string, create func(types.Payload) (T, error)) (optional.Value[T], error) {
	v, ok := GetValue(props, key)
	if !ok {
		return optional.None[T](), nil
	}

	sub, ok := v.(map[string]any)
	if !ok {
		return optional.None[T](), &TypeError{Field: key, Expected: "object", Got: v}
	}

	t, err := create(sub)
	if err != nil {
		return optional.None[T](), fmt.Errorf("%s: %w", key, err)
	}

	return optional.Some(t), nil
}
