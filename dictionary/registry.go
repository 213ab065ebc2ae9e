package dictionary

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// registry is a hash-indexed name→value index generalizing the
// teacher's MetricID lookup
// (_examples/arloliu-mebo/mebo.go's xxhash.Sum64String-keyed metric
// index) from metric names to every named XTCE object: parameter
// types, argument types, parameters, containers, meta-commands. Each
// hash bucket holds every name observed with that hash (almost always
// exactly one), so a 64-bit collision degrades to a short linear scan
// instead of silently aliasing two different names.
type registry[T any] struct {
	buckets map[uint64][]registryEntry[T]
}

type registryEntry[T any] struct {
	name  string
	value *T
}

func newRegistry[T any]() *registry[T] {
	return &registry[T]{buckets: make(map[uint64][]registryEntry[T])}
}

// put adds name→value, failing if name is already registered.
func (r *registry[T]) put(name string, value *T) error {
	h := xxhash.Sum64String(name)
	for _, e := range r.buckets[h] {
		if e.name == name {
			return fmt.Errorf("dictionary: duplicate name %q", name)
		}
	}

	r.buckets[h] = append(r.buckets[h], registryEntry[T]{name: name, value: value})

	return nil
}

// get looks up name, returning (nil, false) when absent.
func (r *registry[T]) get(name string) (*T, bool) {
	h := xxhash.Sum64String(name)
	bucket := r.buckets[h]
	for _, e := range bucket {
		if e.name == name {
			return e.value, true
		}
	}

	return nil, false
}

// all returns every registered name, in no particular order.
func (r *registry[T]) all() []string {
	names := make([]string, 0)
	for _, bucket := range r.buckets {
		for _, e := range bucket {
			names = append(names, e.name)
		}
	}

	return names
}
