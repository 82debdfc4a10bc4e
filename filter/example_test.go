package filter_test

import (
	"errors"
	"fmt"

	"github.com/forestrie/go-mqfilter/bloom"
	"github.com/forestrie/go-mqfilter/filter"
)

// exactSet is an exact, removable filter. It stands in for the counting and
// cuckoo filters host code may swap in.
type exactSet[K comparable] map[K]struct{}

func (s exactSet[K]) Contains(key K) bool {
	_, ok := s[key]
	return ok
}

func (s exactSet[K]) Insert(key K) { s[key] = struct{}{} }
func (s exactSet[K]) Remove(key K) { delete(s, key) }
func (s exactSet[K]) Clear()       { clear(s) }

var _ filter.Removable[string] = exactSet[string]{}

// firstSighting records key and reports whether it was (probably) new. It
// depends only on Insertable, so any filter that supports inserts will do.
func firstSighting[K any](f filter.Insertable[K], key K) bool {
	if f.Contains(key) {
		return false
	}
	f.Insert(key)
	return true
}

func Example() {
	bf, err := bloom.New[string](100, 0.01)
	if err != nil {
		panic(err)
	}
	for _, f := range []filter.Insertable[string]{bf, exactSet[string]{}} {
		fmt.Println(firstSighting(f, "hello"), firstSighting(f, "hello"))
	}
	// Output:
	// true false
	// true false
}

func Example_removable() {
	var f filter.Insertable[string] = exactSet[string]{}
	f.Insert("hello")

	// Only some filters can forget a single key.
	if r, ok := f.(filter.Removable[string]); ok {
		r.Remove("hello")
	}
	fmt.Println(f.Contains("hello"))

	if _, ok := any((*bloom.Filter[string])(nil)).(filter.Removable[string]); !ok {
		fmt.Println("bloom: not removable")
	}
	// Output:
	// false
	// bloom: not removable
}

func Example_errors() {
	_, err := bloom.New[string](100, 1.5)
	fmt.Println(err)
	fmt.Println(errors.Is(err, bloom.ErrBadFPRate), errors.Is(err, filter.ErrOperationFailed))
	// Output:
	// filter: bad capacity 100 or false positive rate 1.5: bloom: false positive rate must be in (0, 1)
	// true true
}
