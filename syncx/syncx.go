// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package syncx contains useful synchronization primitives.
package syncx

import (
	"sync"

	"github.com/go4org/hashtriemap"
)

// Lazy represents a lazily computed value.
type Lazy[T any] struct {
	once sync.Once
	val  T
	err  error
}

// Get returns T, calling f to compute it, if necessary.
func (l *Lazy[T]) Get(f func() T) T {
	l.once.Do(func() { l.val = f() })
	return l.val
}

// GetErr returns T and an error, calling f to compute them, if necessary.
func (l *Lazy[T]) GetErr(f func() (T, error)) (T, error) {
	l.once.Do(func() { l.val, l.err = f() })
	return l.val, l.err
}

// Map is a concurrent map backed by a hash-trie.
// The zero value is ready to use. It should not be copied.
type Map[K comparable, V any] struct {
	m hashtriemap.HashTrieMap[K, V]
}

// Load returns the value stored for key, if any.
func (m *Map[K, V]) Load(key K) (value V, ok bool) { return m.m.Load(key) }

// Store sets the value for key.
func (m *Map[K, V]) Store(key K, value V) { m.m.Store(key, value) }

// LoadOrStore returns the existing value for key if present.
// Otherwise, it stores and returns value. The loaded result is true if the
// value was loaded, false if stored.
func (m *Map[K, V]) LoadOrStore(key K, value V) (actual V, loaded bool) {
	return m.m.LoadOrStore(key, value)
}

// Delete deletes the value for key.
func (m *Map[K, V]) Delete(key K) { m.m.Delete(key) }

// Range calls f for each key and value in the map until f returns false.
// Iteration order is unspecified.
func (m *Map[K, V]) Range(f func(key K, value V) bool) { m.m.Range(f) }
