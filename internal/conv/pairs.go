package conv

import (
	"errors"
	"fmt"
	"iter"
	"reflect"
	"slices"
	"strings"
)

// Pairs feeds every key/value pair of source to fn.
//
// Supported sources are iter.Seq2[string, any], Go maps with string-kind keys
// (visited in sorted key order) and slices/arrays whose elements are
// 2-element slices/arrays with a string-kind first element. Anything else is
// an error. On error fn may already have seen a prefix of the pairs.
func Pairs(source any, fn func(key string, value any)) error {
	if source == nil {
		return errors.New("source is nil")
	}
	if seq, ok := source.(iter.Seq2[string, any]); ok {
		for key, value := range seq {
			fn(key, value)
		}
		return nil
	}
	v := reflect.ValueOf(source)
	switch v.Kind() {
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return fmt.Errorf("%T: map key type %s is not a string", source, v.Type().Key())
		}
		keys := v.MapKeys()
		slices.SortFunc(keys, func(a, b reflect.Value) int { return strings.Compare(a.String(), b.String()) })
		for _, key := range keys {
			fn(key.String(), v.MapIndex(key).Interface())
		}
		return nil
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			key, value, err := pair(v.Index(i))
			if err != nil {
				return fmt.Errorf("%T: element #%d: %w", source, i, err)
			}
			fn(key, value)
		}
		return nil
	}
	return fmt.Errorf("%T is neither a mapping nor a sequence of pairs", source)
}

func pair(elem reflect.Value) (string, any, error) {
	if elem.Kind() == reflect.Interface {
		if elem.IsNil() {
			return "", nil, errors.New("nil is not a pair")
		}
		elem = elem.Elem()
	}
	if elem.Kind() != reflect.Slice && elem.Kind() != reflect.Array {
		return "", nil, fmt.Errorf("%s is not a pair", elem.Type())
	}
	if elem.Len() != 2 {
		return "", nil, fmt.Errorf("pair has length %d; 2 is required", elem.Len())
	}
	key := elem.Index(0)
	if key.Kind() == reflect.Interface && !key.IsNil() {
		key = key.Elem()
	}
	if key.Kind() != reflect.String {
		return "", nil, fmt.Errorf("pair key of type %s is not a string", key.Type())
	}
	return key.String(), elem.Index(1).Interface(), nil
}
