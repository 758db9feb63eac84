package slotset

import "fmt"

// Indexable is implemented by elements stored in a Set. Insert writes the
// slot it chose back into the element via SetIndex, so a live handle always
// reports the index it currently occupies.
type Indexable interface {
	SetIndex(index int)
	Index() int
}

// Set is a generic slotted container: Insert hands out a stable integer
// index (reusing a freed slot when one is available, otherwise growing the
// high-water mark), Remove recycles the slot, and Iterate walks every
// occupied slot in ascending index order.
//
// Complexity: Insert and Remove are O(1) amortized; Get is O(1); Iterate is
// O(h) where h is the current high-water mark.
type Set[T Indexable] struct {
	slots    []T
	occupied []bool
	free     []int // LIFO free-slot stack
	count    int
}

// New returns an empty Set.
func New[T Indexable]() *Set[T] {
	return &Set[T]{}
}

// Insert places x into a free slot (reusing one from the free-slot stack if
// non-empty) or appends it at the high-water mark. x.SetIndex is called
// with the chosen slot before Insert returns.
//
// Complexity: O(1) amortized.
func (s *Set[T]) Insert(x T) int {
	var index int
	if n := len(s.free); n > 0 {
		index = s.free[n-1]
		s.free = s.free[:n-1]
		s.slots[index] = x
		s.occupied[index] = true
	} else {
		index = len(s.slots)
		s.slots = append(s.slots, x)
		s.occupied = append(s.occupied, true)
	}
	x.SetIndex(index)
	s.count++

	return index
}

// Remove empties the slot at index. If index is the current high-water
// mark minus one, the high-water mark is decremented in place and no
// free-slot entry is produced (the trailing-slot collapse rule); otherwise
// index is pushed onto the free-slot stack.
//
// Complexity: O(1) amortized.
func (s *Set[T]) Remove(index int) error {
	if index < 0 || index >= len(s.slots) {
		return ErrOutOfRange
	}
	if !s.occupied[index] {
		return ErrAlreadyEmpty
	}

	var zero T
	s.slots[index] = zero
	s.occupied[index] = false
	s.count--

	if index == len(s.slots)-1 {
		// Trailing-slot collapse: shrink the high-water mark instead of
		// recording a free-slot entry that would immediately be stale.
		s.slots = s.slots[:index]
		s.occupied = s.occupied[:index]
	} else {
		s.free = append(s.free, index)
	}

	return nil
}

// Get returns the element at index, or signals ErrEmptySlot if the slot is
// vacant and ErrOutOfRange if index is at or beyond the high-water mark.
//
// Complexity: O(1).
func (s *Set[T]) Get(index int) (T, error) {
	var zero T
	if index < 0 || index >= len(s.slots) {
		return zero, ErrOutOfRange
	}
	if !s.occupied[index] {
		return zero, ErrEmptySlot
	}

	return s.slots[index], nil
}

// Len returns the number of occupied slots.
//
// Complexity: O(1).
func (s *Set[T]) Len() int {
	return s.count
}

// HighWater returns one past the largest index ever handed out that has not
// since collapsed via the trailing-slot rule; equivalently, the size of the
// backing array. Indices at or beyond HighWater are not currently populated.
//
// Complexity: O(1).
func (s *Set[T]) HighWater() int {
	return len(s.slots)
}

// CheckInvariants verifies that every index below HighWater is exactly
// partitioned into the occupied set and the free-slot stack: occupied
// slots never appear in the free-slot stack, and every empty slot appears
// in it exactly once. It returns nil when the partition holds, or the
// first violation found otherwise.
//
// Complexity: O(h) where h is HighWater().
func (s *Set[T]) CheckInvariants() error {
	freeCount := make([]int, len(s.slots))
	for _, idx := range s.free {
		if idx < 0 || idx >= len(s.slots) {
			return fmt.Errorf("slotset: free-slot stack holds out-of-range index %d", idx)
		}
		freeCount[idx]++
	}
	for i, occ := range s.occupied {
		if occ {
			if freeCount[i] != 0 {
				return fmt.Errorf("slotset: slot %d is occupied but also present in the free-slot stack", i)
			}
		} else if freeCount[i] != 1 {
			return fmt.Errorf("slotset: empty slot %d appears %d times in the free-slot stack, want exactly 1", i, freeCount[i])
		}
	}

	return nil
}

// Iterate calls fn for every occupied slot in ascending index order, and
// stops early if fn returns false. The traversal is finite and restartable.
//
// Complexity: O(h) where h is HighWater().
func (s *Set[T]) Iterate(fn func(index int, elem T) bool) {
	for i, occ := range s.occupied {
		if !occ {
			continue
		}
		if !fn(i, s.slots[i]) {
			return
		}
	}
}

// Clone returns a deep structural copy of s: the same high-water mark, the
// same occupied/free partition of every slot below it, and a copy of every
// live element produced by copyElem. copyElem's result has SetIndex called
// on it with the slot it occupies, so callers do not need to set the index
// themselves.
//
// Complexity: O(h).
func (s *Set[T]) Clone(copyElem func(T) T) *Set[T] {
	out := &Set[T]{
		slots:    make([]T, len(s.slots)),
		occupied: make([]bool, len(s.occupied)),
		free:     append([]int(nil), s.free...),
		count:    s.count,
	}
	for i, occ := range s.occupied {
		if !occ {
			continue
		}
		elem := copyElem(s.slots[i])
		elem.SetIndex(i)
		out.slots[i] = elem
		out.occupied[i] = true
	}

	return out
}
