package entity

type PaymentStatus int

const (
	PaymentPending PaymentStatus = 1
	PaymentPaid    PaymentStatus = 2
	PaymentFailed  PaymentStatus = 3
)

func (p PaymentStatus) String() string {
	switch p {
	case PaymentPending:
		return "Pending"
	case PaymentPaid:
		return "Paid"
	case PaymentFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}
