package fsa

// Hashable A key of HashMap.
type Hashable interface {
	Hash() uint64
	Equals(other Hashable) bool
}

const hashMapLoadFactor = 0.75

// HashMap Interns subsets during determinization. Keys of different types that
// describe the same subset (a StateSet being filled and the FrozenIntSet stored for
// it) find the same entry. Entries are never removed. Not safe for concurrent use.
type HashMap[T any] struct {
	buckets []*entry[T]
	size    int
	mask    uint64
}

type entry[T any] struct {
	key   Hashable
	value T
	next  *entry[T]
}

type optionsHashMap struct {
	capacity int
}

type OptionsHashMap func(hashMap *optionsHashMap)

// WithCapacity Expected number of entries; rounded up to a power of two.
func WithCapacity(capacity int) OptionsHashMap {
	return func(hashMap *optionsHashMap) {
		hashMap.capacity = capacity
	}
}

func NewHashMap[T any](options ...OptionsHashMap) *HashMap[T] {
	opt := &optionsHashMap{capacity: 1}
	for _, fn := range options {
		fn(opt)
	}

	buckets := 1
	for buckets < opt.capacity {
		buckets <<= 1
	}
	return &HashMap[T]{
		buckets: make([]*entry[T], buckets),
		mask:    uint64(buckets - 1),
	}
}

// Set Inserts or replaces the value of key.
func (m *HashMap[T]) Set(key Hashable, value T) {
	index := key.Hash() & m.mask
	for e := m.buckets[index]; e != nil; e = e.next {
		if e.key.Equals(key) {
			e.value = value
			return
		}
	}

	m.buckets[index] = &entry[T]{key: key, value: value, next: m.buckets[index]}
	m.size++
	if float64(m.size) > hashMapLoadFactor*float64(len(m.buckets)) {
		m.grow()
	}
}

// Get Returns the value of key and whether it was present.
func (m *HashMap[T]) Get(key Hashable) (T, bool) {
	for e := m.buckets[key.Hash()&m.mask]; e != nil; e = e.next {
		if e.key.Equals(key) {
			return e.value, true
		}
	}
	var zero T
	return zero, false
}

// Size Returns the number of interned keys.
func (m *HashMap[T]) Size() int {
	return m.size
}

// grow Doubles the bucket count, relinking the existing entries.
func (m *HashMap[T]) grow() {
	buckets := make([]*entry[T], len(m.buckets)<<1)
	mask := uint64(len(buckets) - 1)

	for _, head := range m.buckets {
		for e := head; e != nil; {
			next := e.next
			i := e.key.Hash() & mask
			e.next = buckets[i]
			buckets[i] = e
			e = next
		}
	}

	m.buckets = buckets
	m.mask = mask
}
