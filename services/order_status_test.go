package services

import (
	"testing"

	"backend/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestOrder(t *testing.T, svc *OrderService, pub *fakePublisher) uint {
	t.Helper()

	item, _ := seedCatalog(t, svc.DB)
	res, err := svc.Create(&CreateOrderReq{
		OrderType: entity.TypeDineIn,
		Items:     []CartItemIn{{MenuItemID: item.ID, Quantity: 1}},
	})
	require.NoError(t, err)
	pub.events = nil // only inspect events after setup
	return res.ID
}

func TestUpdateStatusOutOfRange(t *testing.T) {
	svc, pub, db := newTestService(t)
	id := createTestOrder(t, svc, pub)

	_, err := svc.UpdateStatus(id, entity.OrderStatus(9))
	require.ErrorIs(t, err, ErrInvalidStatus)
	_, err = svc.UpdateStatus(id, entity.OrderStatus(0))
	require.ErrorIs(t, err, ErrInvalidStatus)

	// no mutation, no event
	var o entity.Order
	require.NoError(t, db.First(&o, id).Error)
	assert.Equal(t, entity.StatusReceived, o.Status)
	assert.Empty(t, pub.events)
}

func TestUpdateStatusUnknownOrder(t *testing.T) {
	svc, pub, _ := newTestService(t)

	_, err := svc.UpdateStatus(42, entity.StatusReady)
	require.ErrorIs(t, err, ErrOrderNotFound)
	assert.Empty(t, pub.events)
}

func TestUpdateStatusPersistsAndPublishes(t *testing.T) {
	svc, pub, db := newTestService(t)
	id := createTestOrder(t, svc, pub)

	_, err := svc.UpdateStatus(id, entity.StatusPreparing)
	require.NoError(t, err)
	snap, err := svc.UpdateStatus(id, entity.StatusReady)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusReady, snap.Status)

	var o entity.Order
	require.NoError(t, db.First(&o, id).Error)
	assert.Equal(t, entity.StatusReady, o.Status)

	require.Len(t, pub.events, 2)
	last := pub.events[1]
	assert.Equal(t, EventOrderUpdated, last.Event)
	assert.Equal(t, entity.StatusReady, last.Order.Status)
	assert.NotEmpty(t, last.Order.Items) // full snapshot, not a diff
}

func TestUpdateStatusPermissiveByDefault(t *testing.T) {
	svc, pub, _ := newTestService(t)
	id := createTestOrder(t, svc, pub)

	// straight to Completed, and back again: no forward-only enforcement
	_, err := svc.UpdateStatus(id, entity.StatusCompleted)
	require.NoError(t, err)
	_, err = svc.UpdateStatus(id, entity.StatusPreparing)
	require.NoError(t, err)
}

func TestUpdateStatusTransitionTable(t *testing.T) {
	svc, pub, db := newTestService(t)
	id := createTestOrder(t, svc, pub)

	svc.Transitions = TransitionTable{
		entity.StatusReceived: {entity.StatusInKitchen, entity.StatusCancelled},
	}

	_, err := svc.UpdateStatus(id, entity.StatusReady)
	require.ErrorIs(t, err, ErrBlockedStatus)

	var o entity.Order
	require.NoError(t, db.First(&o, id).Error)
	assert.Equal(t, entity.StatusReceived, o.Status)
	assert.Empty(t, pub.events)

	_, err = svc.UpdateStatus(id, entity.StatusInKitchen)
	require.NoError(t, err)
}

func TestCompletePaymentSuccess(t *testing.T) {
	svc, pub, db := newTestService(t)
	id := createTestOrder(t, svc, pub)

	snap, err := svc.CompletePayment(id, "success")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusInKitchen, snap.Status)

	var o entity.Order
	require.NoError(t, db.First(&o, id).Error)
	assert.Equal(t, entity.PaymentPaid, o.PaymentStatus)
	assert.Equal(t, entity.StatusInKitchen, o.Status)

	require.Len(t, pub.events, 1)
	assert.Equal(t, EventOrderUpdated, pub.events[0].Event)
}

func TestCompletePaymentFailure(t *testing.T) {
	svc, pub, db := newTestService(t)
	id := createTestOrder(t, svc, pub)

	_, err := svc.CompletePayment(id, "failed")
	require.NoError(t, err)

	var o entity.Order
	require.NoError(t, db.First(&o, id).Error)
	assert.Equal(t, entity.PaymentFailed, o.PaymentStatus)
	// failed payment does not advance the kitchen
	assert.Equal(t, entity.StatusReceived, o.Status)
}

func TestCompletePaymentUnknownOrder(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.CompletePayment(999, "success")
	require.ErrorIs(t, err, ErrOrderNotFound)
}
