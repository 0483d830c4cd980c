package tsp

// TabuList is a bounded FIFO of recently applied moves with O(1) membership.
// Pushing a move that is already present is a no-op, so the list never holds
// duplicates and Len() ≤ Cap() always holds.
type TabuList struct {
	capacity int
	order    []Move // oldest first
	set      map[Move]struct{}
}

// NewTabuList returns an empty list; capacity must be ≥ 1.
func NewTabuList(capacity int) *TabuList {
	if capacity < 1 {
		capacity = 1
	}

	return &TabuList{
		capacity: capacity,
		order:    make([]Move, 0, capacity),
		set:      make(map[Move]struct{}, capacity),
	}
}

// Contains reports whether m is currently tabu. Safe for concurrent readers.
func (l *TabuList) Contains(m Move) bool {
	_, ok := l.set[m]

	return ok
}

// Push records m, evicting the oldest entry when full.
func (l *TabuList) Push(m Move) {
	if l.Contains(m) {
		return
	}
	if len(l.order) == l.capacity {
		delete(l.set, l.order[0])
		copy(l.order, l.order[1:])
		l.order = l.order[:len(l.order)-1]
	}
	l.order = append(l.order, m)
	l.set[m] = struct{}{}
}

// Clear empties the list.
func (l *TabuList) Clear() {
	l.order = l.order[:0]
	clear(l.set)
}

// Len returns the number of tabu moves.
func (l *TabuList) Len() int { return len(l.order) }

// Cap returns the capacity.
func (l *TabuList) Cap() int { return l.capacity }

// Moves returns a copy of the list, oldest first.
func (l *TabuList) Moves() []Move {
	out := make([]Move, len(l.order))
	copy(out, l.order)

	return out
}
