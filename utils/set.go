package utils

// MapSet is a plain hash set, used to deduplicate affected document ids
// within one change batch.
type MapSet[T comparable] struct {
	internalMap map[T]struct{}
}

func NewMapSet[T comparable]() *MapSet[T] {
	return &MapSet[T]{internalMap: make(map[T]struct{})}
}

func (m *MapSet[T]) Add(elem T) {
	m.internalMap[elem] = struct{}{}
}

func (m *MapSet[T]) ToSlice() []T {
	var elems []T

	for elem := range m.internalMap {
		elems = append(elems, elem)
	}

	return elems
}
