package services

import (
	"time"

	"backend/entity"
)

// Events carry full snapshots, never diffs, so a display that missed a
// push only needs any later event (or a resync) to converge.

type EventKind string

const (
	EventOrderCreated EventKind = "OrderCreated"
	EventOrderUpdated EventKind = "OrderUpdated"
)

type OrderEvent struct {
	Event EventKind      `json:"event"`
	Order *OrderSnapshot `json:"order"`
}

// Publisher is the fan-out boundary. Implementations must not block the
// caller and must swallow delivery failures.
type Publisher interface {
	Publish(ev OrderEvent)
}

type SnapshotMenuItem struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

type SnapshotAddon struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

type SnapshotItem struct {
	ID        uint             `json:"id"`
	Quantity  int              `json:"quantity"`
	LineTotal int64            `json:"lineTotal"`
	MenuItem  SnapshotMenuItem `json:"menuItem"`
	Addons    []SnapshotAddon  `json:"addons"`
}

type OrderSnapshot struct {
	ID           uint               `json:"id"`
	Status       entity.OrderStatus `json:"status"`
	CustomerName string             `json:"customerName"`
	TotalAmount  int64              `json:"totalAmount"`
	CreatedAt    time.Time          `json:"createdAt"`
	Items        []SnapshotItem     `json:"items"`
}

// BuildSnapshot flattens a hydrated order into the wire shape.
func BuildSnapshot(o *entity.Order) *OrderSnapshot {
	snap := &OrderSnapshot{
		ID:           o.ID,
		Status:       o.Status,
		CustomerName: o.CustomerName,
		TotalAmount:  o.TotalAmount,
		CreatedAt:    o.CreatedAt,
		Items:        make([]SnapshotItem, 0, len(o.Items)),
	}
	for _, it := range o.Items {
		si := SnapshotItem{
			ID:        it.ID,
			Quantity:  it.Quantity,
			LineTotal: it.LineTotal,
			MenuItem: SnapshotMenuItem{
				ID:    it.MenuItem.ID,
				Name:  it.MenuItem.Name,
				Price: it.MenuItem.Price,
			},
			Addons: make([]SnapshotAddon, 0, len(it.Addons)),
		}
		for _, ad := range it.Addons {
			si.Addons = append(si.Addons, SnapshotAddon{
				ID:    ad.Addon.ID,
				Name:  ad.Addon.Name,
				Price: ad.PriceAtOrder,
			})
		}
		snap.Items = append(snap.Items, si)
	}
	return snap
}
