// Package waitroom tracks which elves are currently lined up outside Santa's
// door. The line is an unordered multiset of identities with one atomic
// "take a group" operation; which members of a longer line end up in a group
// is unspecified, only the group's size matters to the protocol.
package waitroom

import (
	"fmt"
	"sync"

	"github.com/pgoodman/uwo-santa-clause/internal/errors"
)

// Line is a thread-safe set of waiting identities. All operations are
// linearized by one internal mutex and none of them blocks beyond acquiring
// it; callers are responsible for only taking a group once enough members
// are waiting.
type Line struct {
	mu      sync.Mutex
	waiting []int
}

// NewLine creates an empty line.
func NewLine() *Line {
	return &Line{}
}

// Insert adds id to the line and returns the resulting cardinality.
//
// Because the insert and the size read happen under one lock, exactly one
// caller observes each threshold crossing; two elves can never both
// believe they were the Kth to arrive. Pool members never insert while
// already present.
func (l *Line) Insert(id int) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.waiting = append(l.waiting, id)
	return len(l.waiting)
}

// TakeGroup atomically removes and returns exactly k members, in arrival
// order. Asking for more members than are waiting is a protocol bug and
// returns ErrGroupUnavailable.
func (l *Line) TakeGroup(k int) ([]int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if k < 0 || k > len(l.waiting) {
		return nil, fmt.Errorf("%w: want %d, have %d", errors.ErrGroupUnavailable, k, len(l.waiting))
	}

	group := make([]int, k)
	copy(group, l.waiting[:k])
	l.waiting = append(l.waiting[:0], l.waiting[k:]...)
	return group, nil
}

// Cardinality returns the number of identities currently in line.
func (l *Line) Cardinality() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.waiting)
}
