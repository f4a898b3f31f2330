package common

import "slices"

// OrderedMap is a key-unique map which keeps the insertion order of its keys.
// Overwriting an existing key keeps its original position.
// It is not safe for concurrent use.
type OrderedMap[K comparable, V any] struct {
	keys []K
	vals map[K]V
}

func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		keys: make([]K, 0),
		vals: make(map[K]V),
	}
}

func (m *OrderedMap[K, V]) init() {
	if m.vals == nil {
		m.keys = make([]K, 0)
		m.vals = make(map[K]V)
	}
}

func (m *OrderedMap[K, V]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

func (m *OrderedMap[K, V]) Get(key K) (V, bool) {
	if m == nil || m.vals == nil {
		var zero V
		return zero, false
	}
	val, ok := m.vals[key]
	return val, ok
}

func (m *OrderedMap[K, V]) Has(key K) bool {
	_, ok := m.Get(key)
	return ok
}

// Set stores val under key and reports whether the key was already present.
func (m *OrderedMap[K, V]) Set(key K, val V) bool {
	m.init()
	_, existed := m.vals[key]
	if !existed {
		m.keys = append(m.keys, key)
	}
	m.vals[key] = val
	return existed
}

// Delete removes key and reports whether it was present.
func (m *OrderedMap[K, V]) Delete(key K) bool {
	if m == nil || m.vals == nil {
		return false
	}
	if _, ok := m.vals[key]; !ok {
		return false
	}
	delete(m.vals, key)
	if i := slices.Index(m.keys, key); i >= 0 {
		m.keys = slices.Delete(m.keys, i, i+1)
	}
	return true
}

func (m *OrderedMap[K, V]) Keys() []K {
	if m == nil {
		return []K{}
	}
	return slices.Clone(m.keys)
}

func (m *OrderedMap[K, V]) Values() []V {
	vals := make([]V, 0, m.Len())
	m.Range(func(_ K, v V) bool {
		vals = append(vals, v)
		return true
	})
	return vals
}

type IterFunc[K comparable, V any] func(key K, val V) bool

// Range walks the entries in insertion order until fn returns false.
func (m *OrderedMap[K, V]) Range(fn IterFunc[K, V]) {
	if m == nil {
		return
	}
	for _, k := range m.keys {
		if !fn(k, m.vals[k]) {
			return
		}
	}
}

// Clone returns a shallow copy: values are copied by assignment.
func (m *OrderedMap[K, V]) Clone() *OrderedMap[K, V] {
	cp := NewOrderedMap[K, V]()
	m.Range(func(k K, v V) bool {
		cp.Set(k, v)
		return true
	})
	return cp
}
