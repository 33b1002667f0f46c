package services

import (
	"errors"

	"backend/entity"

	"gorm.io/gorm"
)

// TransitionTable restricts which status can follow which. A nil table
// allows every valid status from every prior status.
type TransitionTable map[entity.OrderStatus][]entity.OrderStatus

func (t TransitionTable) Allowed(from, to entity.OrderStatus) bool {
	if t == nil {
		return true
	}
	for _, next := range t[from] {
		if next == to {
			return true
		}
	}
	return false
}

// UpdateStatus moves an order to the given status and broadcasts the new
// snapshot. Out-of-range statuses are rejected before any store access;
// unknown ids mutate nothing.
func (s *OrderService) UpdateStatus(orderID uint, status entity.OrderStatus) (*OrderSnapshot, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	if s.Transitions != nil {
		o, err := s.Repo.GetOrder(orderID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrOrderNotFound
			}
			return nil, err
		}
		if !s.Transitions.Allowed(o.Status, status) {
			return nil, ErrBlockedStatus
		}
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatus(tx, orderID, status)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrOrderNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	o, err := s.Repo.GetOrderHydrated(orderID)
	if err != nil {
		return nil, err
	}
	snap := BuildSnapshot(o)
	if s.Pub != nil {
		s.Pub.Publish(OrderEvent{Event: EventOrderUpdated, Order: snap})
	}
	return snap, nil
}

// CompletePayment is the placeholder payment step: tag the payment
// outcome and, on success, hand the order to the kitchen.
func (s *OrderService) CompletePayment(orderID uint, result string) (*OrderSnapshot, error) {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	ps := entity.PaymentFailed
	if result == "success" {
		ps = entity.PaymentPaid
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.UpdatePayment(tx, o.ID, ps); err != nil {
			return err
		}
		if ps == entity.PaymentPaid && o.Status == entity.StatusReceived {
			if _, err := s.Repo.UpdateStatus(tx, o.ID, entity.StatusInKitchen); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	hydrated, err := s.Repo.GetOrderHydrated(o.ID)
	if err != nil {
		return nil, err
	}
	snap := BuildSnapshot(hydrated)
	if s.Pub != nil {
		s.Pub.Publish(OrderEvent{Event: EventOrderUpdated, Order: snap})
	}
	return snap, nil
}
