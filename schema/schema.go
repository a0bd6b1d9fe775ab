// Package schema infers table metadata from struct types and converts values
// between Go and driver representations.
package schema

import (
	"reflect"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Registry caches inferred entity metadata per struct type.
type Registry struct {
	naming    NamingStrategy
	tagName   string
	cacheSize int
	cache     *lru.Cache[reflect.Type, *Meta]
	mu        sync.Mutex
}

type Option func(*Registry)

// WithNaming sets the naming strategy for derived table and column names.
func WithNaming(n NamingStrategy) Option {
	return func(r *Registry) { r.naming = n }
}

// WithTagName sets the struct tag consulted for column mapping.
func WithTagName(name string) Option {
	return func(r *Registry) { r.tagName = name }
}

// WithCacheSize sets the LRU cache size for inferred metadata.
func WithCacheSize(size int) Option {
	return func(r *Registry) { r.cacheSize = size }
}

func New(options ...Option) *Registry {
	r := &Registry{
		naming:    DefaultNaming(),
		tagName:   "db",
		cacheSize: 256,
	}
	for _, opt := range options {
		opt(r)
	}
	r.cache, _ = lru.New[reflect.Type, *Meta](r.cacheSize)
	return r
}

var defaultRegistry = New()

// Of returns cached metadata for T, inferring it on first use.
func Of[T any]() (*Meta, error) {
	return defaultRegistry.Of(reflect.TypeOf((*T)(nil)).Elem())
}

// MustOf is Of for types known valid at program start.
func MustOf[T any]() *Meta {
	m, err := Of[T]()
	if err != nil {
		panic(err)
	}
	return m
}

func (r *Registry) Of(t reflect.Type) (*Meta, error) {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if m, ok := r.cache.Get(t); ok {
		return m, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if m, ok := r.cache.Get(t); ok {
		return m, nil
	}
	m, err := buildMeta(t, r.naming, r.tagName)
	if err != nil {
		return nil, err
	}
	r.cache.Add(t, m)
	return m, nil
}
