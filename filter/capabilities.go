package filter

// Queryable is a filter that can answer membership queries.
//
// Contains returns true if key is believed to be in the filter. A false
// result is definitive, a true result may be a false positive.
type Queryable[K any] interface {
	Contains(key K) bool
}

// Insertable is a filter that supports adding elements.
type Insertable[K any] interface {
	Queryable[K]
	Insert(key K)
}

// Removable is a filter that supports removing individual elements.
type Removable[K any] interface {
	Queryable[K]
	Remove(key K)
}

// Clearable is a filter that can forget every element at once.
type Clearable interface {
	Clear()
}
