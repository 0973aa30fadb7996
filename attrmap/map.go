package attrmap

import (
	"container/list"
	"fmt"
	"iter"
	"reflect"

	"github.com/viant/attrmap/internal/conv"
)

// Pair is a single key/value entry.
type Pair struct {
	Key   string
	Value any
}

// KV returns a Pair, handy for building Named arguments.
func KV(key string, value any) Pair {
	return Pair{Key: key, Value: value}
}

// Map is an insertion-ordered string-keyed mapping with dual key/attribute
// access. The zero value is an empty map ready to use. Like a nil Go map, a
// nil *Map reads as empty, while writing to it panics.
type Map struct {
	index map[string]*list.Element
	order *list.List
}

// New builds a Map by merging sources left to right, then every Named source.
// See Update for the accepted source kinds.
func New(sources ...any) (*Map, error) {
	m := &Map{}
	if err := m.Update(sources...); err != nil {
		return nil, err
	}
	return m, nil
}

// MustNew is like New but panics on an invalid source.
func MustNew(sources ...any) *Map {
	m, err := New(sources...)
	if err != nil {
		panic(err)
	}
	return m
}

// FromKeys returns a Map holding every key bound to the same value.
func FromKeys(keys []string, value any) *Map {
	m := &Map{}
	for _, key := range keys {
		m.Set(key, value)
	}
	return m
}

func (m *Map) init() {
	if m.index == nil {
		m.index = make(map[string]*list.Element)
		m.order = list.New()
	}
}

// Len returns the number of entries.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.index)
}

func (m *Map) element(key string) (*list.Element, bool) {
	if m == nil {
		return nil, false
	}
	el, ok := m.index[key]
	return el, ok
}

// Get returns the value stored under key or a *KeyError.
func (m *Map) Get(key string) (any, error) {
	if el, ok := m.element(key); ok {
		return el.Value.(*Pair).Value, nil
	}
	return nil, &KeyError{Key: key}
}

// Lookup returns the value stored under key and whether it was present.
func (m *Map) Lookup(key string) (any, bool) {
	if el, ok := m.element(key); ok {
		return el.Value.(*Pair).Value, true
	}
	return nil, false
}

// GetOr returns the value stored under key or fallback when absent.
func (m *Map) GetOr(key string, fallback any) any {
	if value, ok := m.Lookup(key); ok {
		return value
	}
	return fallback
}

// Contains reports whether key is present.
func (m *Map) Contains(key string) bool {
	_, ok := m.element(key)
	return ok
}

// Set stores value under key. An existing entry keeps its position, a new one
// is appended.
func (m *Map) Set(key string, value any) {
	if el, ok := m.element(key); ok {
		el.Value.(*Pair).Value = value
		return
	}
	m.init()
	m.index[key] = m.order.PushBack(&Pair{Key: key, Value: value})
}

// SetDefault returns the value under key, storing fallback first when absent.
func (m *Map) SetDefault(key string, fallback any) any {
	if value, ok := m.Lookup(key); ok {
		return value
	}
	m.Set(key, fallback)
	return fallback
}

// Delete removes key or returns a *KeyError.
func (m *Map) Delete(key string) error {
	_, err := m.Pop(key)
	return err
}

// Pop removes key and returns its value.
func (m *Map) Pop(key string) (any, error) {
	el, ok := m.element(key)
	if !ok {
		return nil, &KeyError{Key: key}
	}
	m.order.Remove(el)
	delete(m.index, key)
	return el.Value.(*Pair).Value, nil
}

// PopItem removes and returns the most recently inserted entry.
func (m *Map) PopItem() (Pair, error) {
	if m.Len() == 0 {
		return Pair{}, fmt.Errorf("popitem: map is empty: %w", ErrKeyNotFound)
	}
	pair := *m.order.Back().Value.(*Pair)
	_, err := m.Pop(pair.Key)
	return pair, err
}

// Clear removes every entry.
func (m *Map) Clear() {
	m.index = nil
	m.order = nil
}

// Update merges sources into m using the construction rules:
//   - *Map and []Pair contribute their entries in order,
//   - iter.Seq2[string, any] contributes pairs as yielded,
//   - Go maps with string keys contribute entries in sorted key order,
//   - slices/arrays of 2-element slices/arrays contribute (key, value) pairs,
//   - Named sources are held back and applied after all others.
//
// Later entries overwrite earlier ones. If any source is invalid m is left
// unchanged and a *SourceError is returned.
func (m *Map) Update(sources ...any) error {
	pairs, err := collect(sources)
	if err != nil {
		return err
	}
	for _, pair := range pairs {
		m.Set(pair.Key, pair.Value)
	}
	return nil
}

func collect(sources []any) ([]Pair, error) {
	var pairs []Pair
	var named []Pair
	for i, source := range sources {
		switch actual := source.(type) {
		case Named:
			named = append(named, actual...)
			continue
		case *Map:
			if actual == nil {
				return nil, &SourceError{Index: i, Err: errNilSource}
			}
			pairs = append(pairs, actual.Items()...)
			continue
		case []Pair:
			pairs = append(pairs, actual...)
			continue
		}
		err := conv.Pairs(source, func(key string, value any) {
			pairs = append(pairs, Pair{Key: key, Value: value})
		})
		if err != nil {
			return nil, &SourceError{Index: i, Err: err}
		}
	}
	return append(pairs, named...), nil
}

// Named carries keyword-style entries. Wherever it appears among the sources
// of New or Update, it is applied after every positional source.
type Named []Pair

// Keys returns the keys in insertion order.
func (m *Map) Keys() []string {
	ret := make([]string, 0, m.Len())
	for key := range m.All() {
		ret = append(ret, key)
	}
	return ret
}

// Values returns the values in insertion order.
func (m *Map) Values() []any {
	ret := make([]any, 0, m.Len())
	for _, value := range m.All() {
		ret = append(ret, value)
	}
	return ret
}

// Items returns a snapshot of the entries in insertion order.
func (m *Map) Items() []Pair {
	ret := make([]Pair, 0, m.Len())
	for key, value := range m.All() {
		ret = append(ret, Pair{Key: key, Value: value})
	}
	return ret
}

// All iterates entries in insertion order. Deleting the current entry while
// iterating is allowed.
func (m *Map) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		if m == nil || m.order == nil {
			return
		}
		for el := m.order.Front(); el != nil; {
			next := el.Next()
			pair := el.Value.(*Pair)
			if !yield(pair.Key, pair.Value) {
				return
			}
			el = next
		}
	}
}

// Dict returns the entries as a plain Go map. Values are shared, not copied.
func (m *Map) Dict() map[string]any {
	ret := make(map[string]any, m.Len())
	for key, value := range m.All() {
		ret[key] = value
	}
	return ret
}

// Copy returns a shallow copy: a distinct Map with the same keys, order and
// value references.
func (m *Map) Copy() *Map {
	ret := &Map{}
	for key, value := range m.All() {
		ret.Set(key, value)
	}
	return ret
}

// Equal reports whether other holds the same key/value pairs, ignoring order.
// other may be a *Map or any Go map with string keys.
func (m *Map) Equal(other any) bool {
	var entries map[string]any
	switch actual := other.(type) {
	case *Map:
		if actual == nil {
			return false
		}
		entries = actual.Dict()
	case map[string]any:
		entries = actual
	default:
		v := reflect.ValueOf(other)
		if v.Kind() != reflect.Map {
			return false
		}
		entries = make(map[string]any, v.Len())
		if err := conv.Pairs(other, func(key string, value any) { entries[key] = value }); err != nil {
			return false
		}
	}
	if len(entries) != m.Len() {
		return false
	}
	for key, value := range m.All() {
		candidate, ok := entries[key]
		if !ok || !valueEqual(value, candidate) {
			return false
		}
	}
	return true
}

func valueEqual(a, b any) bool {
	if nested, ok := a.(*Map); ok && nested != nil {
		return nested.Equal(b)
	}
	if nested, ok := b.(*Map); ok && nested != nil {
		return nested.Equal(a)
	}
	return reflect.DeepEqual(a, b)
}
