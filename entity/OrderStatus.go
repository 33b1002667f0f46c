package entity

// OrderStatus is wire-stable: kitchen displays and the external bot
// exchange these exact ints, never names.
type OrderStatus int

const (
	StatusReceived  OrderStatus = 1
	StatusInKitchen OrderStatus = 2
	StatusPreparing OrderStatus = 3
	StatusReady     OrderStatus = 4
	StatusCompleted OrderStatus = 5
	StatusCancelled OrderStatus = 6
)

func (s OrderStatus) IsValid() bool {
	return s >= StatusReceived && s <= StatusCancelled
}

// IsTerminal reports whether the order has left the kitchen working set.
// The record stays in the database for reporting.
func (s OrderStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

func (s OrderStatus) String() string {
	switch s {
	case StatusReceived:
		return "Received"
	case StatusInKitchen:
		return "InKitchen"
	case StatusPreparing:
		return "Preparing"
	case StatusReady:
		return "Ready"
	case StatusCompleted:
		return "Completed"
	case StatusCancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}
