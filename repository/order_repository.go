package repository

import (
	"time"

	"backend/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Creation (always inside a caller transaction) ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) CreateOrderItemAddon(tx *gorm.DB, oa *entity.OrderItemAddon) error {
	return tx.Create(oa).Error
}

func (r *OrderRepository) UpdateLineTotal(tx *gorm.DB, itemID uint, total int64) error {
	return tx.Model(&entity.OrderItem{}).
		Where("id = ?", itemID).
		Update("line_total", total).Error
}

func (r *OrderRepository) UpdateTotal(tx *gorm.DB, orderID uint, total int64) error {
	return tx.Model(&entity.Order{}).
		Where("id = ?", orderID).
		Update("total_amount", total).Error
}

// ---------------- Reads ----------------

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// Catalog rows can be soft-deleted while orders referencing them are
// still in flight; snapshots must keep hydrating their names and prices.
func unscoped(db *gorm.DB) *gorm.DB { return db.Unscoped() }

// GetOrderHydrated loads the order with lines, line addons and catalog
// names, the shape the kitchen display renders from.
func (r *OrderRepository) GetOrderHydrated(orderID uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.
		Preload("Items").
		Preload("Items.MenuItem", unscoped).
		Preload("Items.Addons").
		Preload("Items.Addons.Addon", unscoped).
		First(&o, orderID).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

type OrderSummary struct {
	ID            uint                 `json:"id"`
	CustomerName  string               `json:"customerName"`
	OrderType     entity.OrderType     `json:"orderType"`
	Status        entity.OrderStatus   `json:"status"`
	PaymentStatus entity.PaymentStatus `json:"paymentStatus"`
	TotalAmount   int64                `json:"totalAmount"`
	CreatedAt     time.Time            `json:"createdAt"`
}

func (r *OrderRepository) ListOrders(limit int) ([]OrderSummary, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var out []OrderSummary
	err := r.DB.Model(&entity.Order{}).
		Select("id, customer_name, order_type, status, payment_status, total_amount, created_at").
		Order("id DESC").Limit(limit).
		Scan(&out).Error
	return out, err
}

// ListKitchen returns hydrated non-terminal orders, newest first. This is
// the resync source displays fetch on every (re)connect.
func (r *OrderRepository) ListKitchen() ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.
		Preload("Items").
		Preload("Items.MenuItem", unscoped).
		Preload("Items.Addons").
		Preload("Items.Addons.Addon", unscoped).
		Where("status < ?", entity.StatusCompleted).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

// ---------------- Status ----------------

// UpdateStatus is a single guarded UPDATE so two concurrent staff taps
// serialize at the row; last write wins. Zero rows affected means the
// order id does not exist.
func (r *OrderRepository) UpdateStatus(tx *gorm.DB, orderID uint, status entity.OrderStatus) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ?", orderID).
		Updates(map[string]any{"status": status, "updated_at": time.Now()})
	return res.RowsAffected, res.Error
}

func (r *OrderRepository) UpdatePayment(tx *gorm.DB, orderID uint, ps entity.PaymentStatus) error {
	return tx.Model(&entity.Order{}).
		Where("id = ?", orderID).
		Updates(map[string]any{"payment_status": ps, "updated_at": time.Now()}).Error
}
