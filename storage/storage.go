// Package storage is the local key-value store: one JSON document per namespaced key,
// always rewritten in full.
package storage

import (
	"sync"
	"time"

	"github.com/metafates/gache"
	"github.com/samber/mo"
	"github.com/tubevault/tubevault/log"
)

// Store persists a single document of type T.
type Store[T any] struct {
	internal *gache.Cache[*T]
	path     string
	mu       sync.Mutex
}

// New returns a store backed by the document at path. A zero lifetime never expires.
func New[T any](path string, lifetime time.Duration) *Store[T] {
	return &Store[T]{
		internal: gache.New[*T](&gache.Options{
			Path:       path,
			Lifetime:   lifetime,
			FileSystem: backendFs{},
		}),
		path: path,
	}
}

// Path returns the location of the backing document.
func (s *Store[T]) Path() string {
	return s.path
}

// Load returns the stored document. Read failures, expired documents and missing
// keys all mean "no prior data".
func (s *Store[T]) Load() mo.Option[*T] {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, expired, err := s.internal.Get()
	if err != nil {
		log.Warnf("read %s: %v", s.path, err)
		return mo.None[*T]()
	}

	if expired || data == nil {
		return mo.None[*T]()
	}

	return mo.Some(data)
}

// Save serializes the whole document, replacing whatever was stored before.
func (s *Store[T]) Save(value *T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.internal.Set(value)
}

// Clear forgets the stored document.
func (s *Store[T]) Clear() error {
	return s.Save(nil)
}
