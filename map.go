package automaton

// Hashable A key usable in HashMap.
type Hashable interface {
	Hash() uint64
	Equals(other Hashable) bool
}

// HashMap A chained hash map over Hashable keys. StateSets are slices underneath and cannot key
// a builtin map directly, so lookups of known DFA states go through this type.
type HashMap[T any] struct {
	buckets    []*entry[T]
	size       int
	mask       uint64
	emptyValue T
	loadFactor float64
}

type entry[T any] struct {
	key   Hashable
	value T
	next  *entry[T]
}

type optionsHashMap struct {
	capacity   int
	loadFactor float64
}

func newOptionsHashMap(opts ...OptionsHashMap) *optionsHashMap {
	options := &optionsHashMap{
		capacity:   4,
		loadFactor: 0.75,
	}

	for _, opt := range opts {
		opt(options)
	}

	// Round up to a power of two so the mask works.
	realCap := 1
	for realCap < options.capacity {
		realCap <<= 1
	}
	options.capacity = realCap

	return options
}

type OptionsHashMap func(hashMap *optionsHashMap)

func WithCapacity(capacity int) OptionsHashMap {
	return func(hashMap *optionsHashMap) {
		hashMap.capacity = capacity
	}
}

func WithLoadFactor(loadFactor float64) OptionsHashMap {
	return func(hashMap *optionsHashMap) {
		if loadFactor > 0 {
			hashMap.loadFactor = loadFactor
		}
	}
}

func NewHashMap[T any](options ...OptionsHashMap) *HashMap[T] {
	opt := newOptionsHashMap(options...)

	return &HashMap[T]{
		buckets:    make([]*entry[T], opt.capacity),
		mask:       uint64(opt.capacity - 1),
		loadFactor: opt.loadFactor,
	}
}

// Set Insert or replace the value for key.
func (m *HashMap[T]) Set(key Hashable, value T) {
	if e := m.find(key); e != nil {
		e.value = value
		return
	}
	m.insert(key, value)
}

// GetOrSet Returns the existing value for key if present. Otherwise stores value and returns it;
// loaded reports which case happened.
func (m *HashMap[T]) GetOrSet(key Hashable, value T) (actual T, loaded bool) {
	if e := m.find(key); e != nil {
		return e.value, true
	}
	m.insert(key, value)
	return value, false
}

func (m *HashMap[T]) Get(key Hashable) (T, bool) {
	if e := m.find(key); e != nil {
		return e.value, true
	}
	return m.emptyValue, false
}

func (m *HashMap[T]) Contains(key Hashable) bool {
	return m.find(key) != nil
}

func (m *HashMap[T]) find(key Hashable) *entry[T] {
	index := key.Hash() & m.mask
	for e := m.buckets[index]; e != nil; e = e.next {
		if e.key.Equals(key) {
			return e
		}
	}
	return nil
}

func (m *HashMap[T]) insert(key Hashable, value T) {
	index := key.Hash() & m.mask
	m.buckets[index] = &entry[T]{
		key:   key,
		value: value,
		next:  m.buckets[index],
	}
	m.size++

	if float64(m.size)/float64(len(m.buckets)) > m.loadFactor {
		m.resize()
	}
}

func (m *HashMap[T]) resize() {
	newCap := len(m.buckets) << 1
	newBuckets := make([]*entry[T], newCap)
	newMask := uint64(newCap - 1)

	for _, head := range m.buckets {
		for e := head; e != nil; e = e.next {
			newIndex := e.key.Hash() & newMask
			newBuckets[newIndex] = &entry[T]{
				key:   e.key,
				value: e.value,
				next:  newBuckets[newIndex],
			}
		}
	}

	m.buckets = newBuckets
	m.mask = newMask
}

// Size Number of entries.
func (m *HashMap[T]) Size() int {
	return m.size
}
