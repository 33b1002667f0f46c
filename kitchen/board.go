package kitchen

import (
	"sort"
	"sync"

	"backend/entity"
	"backend/services"
)

// Column mirrors the three working columns on the kitchen display.
// Received and InKitchen share the first column.
type Column int

const (
	ColInKitchen Column = iota
	ColPreparing
	ColReady
)

func ColumnFor(s entity.OrderStatus) Column {
	switch s {
	case entity.StatusPreparing:
		return ColPreparing
	case entity.StatusReady:
		return ColReady
	default:
		return ColInKitchen
	}
}

// Board is the display-side working set, keyed by order id. Apply uses
// remove-then-insert so repeated or out-of-order snapshots for the same
// order always leave exactly one card, in the column of the last one
// applied.
type Board struct {
	mu    sync.RWMutex
	cards map[uint]*services.OrderSnapshot
}

func NewBoard() *Board {
	return &Board{cards: make(map[uint]*services.OrderSnapshot)}
}

func (b *Board) Apply(snap *services.OrderSnapshot) {
	if snap == nil || snap.ID == 0 {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if snap.Status.IsTerminal() {
		delete(b.cards, snap.ID)
		return
	}
	b.cards[snap.ID] = snap
}

// Resync replaces the whole working set with the server's current
// non-terminal orders. Called on every (re)connect, since events during
// a disconnect window are gone for good.
func (b *Board) Resync(snaps []*services.OrderSnapshot) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.cards = make(map[uint]*services.OrderSnapshot, len(snaps))
	for _, s := range snaps {
		if s == nil || s.ID == 0 || s.Status.IsTerminal() {
			continue
		}
		b.cards[s.ID] = s
	}
}

func (b *Board) Get(id uint) (*services.OrderSnapshot, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	s, ok := b.cards[id]
	return s, ok
}

// Orders in a column, newest first.
func (b *Board) Column(col Column) []*services.OrderSnapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()

	var out []*services.OrderSnapshot
	for _, s := range b.cards {
		if ColumnFor(s.Status) == col {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (b *Board) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.cards)
}
