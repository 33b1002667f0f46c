package services

import (
	"errors"
	"fmt"
	"log"

	"backend/entity"
	"backend/repository"

	"gorm.io/gorm"
)

var (
	ErrEmptyOrder       = errors.New("order has no items")
	ErrMenuItemNotFound = errors.New("menu item not found")
	ErrOrderNotFound    = errors.New("order not found")
	ErrInvalidStatus    = errors.New("invalid status")
	ErrBlockedStatus    = errors.New("status transition not allowed")
)

type OrderService struct {
	DB      *gorm.DB
	Repo    *repository.OrderRepository
	Catalog *repository.CatalogRepository
	Pub     Publisher

	// nil means any valid status can follow any other; staff need to back
	// out of a wrong tap, so the default stays permissive.
	Transitions TransitionTable
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	catalog *repository.CatalogRepository,
	pub Publisher,
) *OrderService {
	return &OrderService{DB: db, Repo: repo, Catalog: catalog, Pub: pub}
}

// ----- DTOs from Controller -----

type CartAddonIn struct {
	AddonID uint `json:"addonId" binding:"required"`
	// Client-side price hint; display only, never trusted for totals.
	Price *int64 `json:"price"`
}
type CartItemIn struct {
	MenuItemID uint          `json:"menuItemId" binding:"required"`
	Quantity   int           `json:"quantity"`
	Addons     []CartAddonIn `json:"addons"`
}
type CreateOrderReq struct {
	CustomerName string           `json:"customerName"`
	OrderType    entity.OrderType `json:"orderType" binding:"required"`
	Items        []CartItemIn     `json:"items" binding:"required,min=1"`
}

type ExternalItemIn struct {
	MenuItemID uint   `json:"menuItemId"`
	Quantity   int    `json:"quantity"`
	AddonIDs   []uint `json:"addonIds"`
}
type ExternalOrderReq struct {
	CustomerName string           `json:"customerName"`
	OrderType    entity.OrderType `json:"orderType"`
	Items        []ExternalItemIn `json:"items"`
}

// Both intake channels answer with the same shape: the new order id and
// the authoritative total.
type CreateOrderRes struct {
	ID          uint  `json:"orderId"`
	TotalAmount int64 `json:"totalAmount"`
}

// ----- Create (web/kiosk checkout, strict) -----

// Create builds a priced order from a cart in one transaction. Any
// unknown menu item fails the whole request; unknown addons are skipped.
// Prices are snapshotted from the catalog at this instant and written
// into the lines, so later catalog edits never change this order.
func (s *OrderService) Create(req *CreateOrderReq) (*CreateOrderRes, error) {
	if len(req.Items) == 0 {
		return nil, ErrEmptyOrder
	}

	var out CreateOrderRes
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		order := entity.Order{
			CustomerName:  req.CustomerName,
			OrderType:     req.OrderType,
			Status:        entity.StatusReceived,
			PaymentStatus: entity.PaymentPending,
			TotalAmount:   0,
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		var total int64
		for _, it := range req.Items {
			m, err := s.Catalog.GetMenuItem(it.MenuItemID)
			if err != nil {
				return fmt.Errorf("%w: %d", ErrMenuItemNotFound, it.MenuItemID)
			}

			qty := it.Quantity
			if qty < 1 {
				qty = 1
			}
			line := m.Price * int64(qty)

			oi := entity.OrderItem{
				OrderID:      order.ID,
				MenuItemID:   m.ID,
				Quantity:     qty,
				PriceAtOrder: m.Price,
				LineTotal:    line,
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}

			for _, in := range it.Addons {
				addon, err := s.Catalog.GetAddon(in.AddonID)
				if err != nil {
					continue // unknown addons are not fatal on any channel
				}
				oa := entity.OrderItemAddon{
					OrderItemID:  oi.ID,
					AddonID:      addon.ID,
					Quantity:     1,
					PriceAtOrder: addon.Price,
				}
				if err := s.Repo.CreateOrderItemAddon(tx, &oa); err != nil {
					return err
				}
				line += addon.Price
			}

			if line != oi.LineTotal {
				oi.LineTotal = line
				if err := s.Repo.UpdateLineTotal(tx, oi.ID, line); err != nil {
					return err
				}
			}
			total += line
		}

		if err := s.Repo.UpdateTotal(tx, order.ID, total); err != nil {
			return err
		}

		out = CreateOrderRes{ID: order.ID, TotalAmount: total}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// broadcast strictly after commit; never inside the transaction
	s.publish(EventOrderCreated, out.ID)
	return &out, nil
}

// ----- CreateExternal (chat-bot intake, lenient) -----

// CreateExternal accepts orders from the WhatsApp bot. Unknown menu items
// are skipped instead of failing the order; the bot cannot re-prompt the
// customer mid-checkout. An order ends empty only if nothing resolved.
func (s *OrderService) CreateExternal(req *ExternalOrderReq) (*CreateOrderRes, error) {
	if len(req.Items) == 0 {
		return nil, ErrEmptyOrder
	}

	name := req.CustomerName
	if name == "" {
		name = "WhatsApp Customer"
	}
	orderType := req.OrderType
	if orderType == 0 {
		orderType = entity.TypeWhatsapp
	}

	var out CreateOrderRes
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		order := entity.Order{
			CustomerName:  name,
			OrderType:     orderType,
			Status:        entity.StatusReceived,
			PaymentStatus: entity.PaymentPending,
			TotalAmount:   0,
			FromWhatsapp:  true,
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		var total int64
		for _, it := range req.Items {
			m, err := s.Catalog.GetMenuItem(it.MenuItemID)
			if err != nil {
				continue // lenient channel: skip, don't fail
			}

			qty := it.Quantity
			if qty < 1 {
				qty = 1
			}
			line := m.Price * int64(qty)

			oi := entity.OrderItem{
				OrderID:      order.ID,
				MenuItemID:   m.ID,
				Quantity:     qty,
				PriceAtOrder: m.Price,
				LineTotal:    line,
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}

			for _, addonID := range it.AddonIDs {
				addon, err := s.Catalog.GetAddon(addonID)
				if err != nil {
					continue
				}
				oa := entity.OrderItemAddon{
					OrderItemID:  oi.ID,
					AddonID:      addon.ID,
					Quantity:     1,
					PriceAtOrder: addon.Price,
				}
				if err := s.Repo.CreateOrderItemAddon(tx, &oa); err != nil {
					return err
				}
				line += addon.Price
			}

			if line != oi.LineTotal {
				oi.LineTotal = line
				if err := s.Repo.UpdateLineTotal(tx, oi.ID, line); err != nil {
					return err
				}
			}
			total += line
		}

		if err := s.Repo.UpdateTotal(tx, order.ID, total); err != nil {
			return err
		}

		out = CreateOrderRes{ID: order.ID, TotalAmount: total}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(EventOrderCreated, out.ID)
	return &out, nil
}

// ----- List & Detail -----

func (s *OrderService) List(limit int) ([]repository.OrderSummary, error) {
	return s.Repo.ListOrders(limit)
}

func (s *OrderService) Detail(orderID uint) (*OrderSnapshot, error) {
	o, err := s.Repo.GetOrderHydrated(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return BuildSnapshot(o), nil
}

// KitchenSet returns every non-terminal order as a snapshot. Displays
// call this on every (re)connect; events lost during a disconnect window
// are made up for here, not replayed.
func (s *OrderService) KitchenSet() ([]*OrderSnapshot, error) {
	orders, err := s.Repo.ListKitchen()
	if err != nil {
		return nil, err
	}
	out := make([]*OrderSnapshot, 0, len(orders))
	for i := range orders {
		out = append(out, BuildSnapshot(&orders[i]))
	}
	return out, nil
}

// publish loads the hydrated snapshot and hands it to the fan-out hub.
// Failures here never bubble up: a stale display beats a failed order.
func (s *OrderService) publish(kind EventKind, orderID uint) {
	if s.Pub == nil {
		return
	}
	o, err := s.Repo.GetOrderHydrated(orderID)
	if err != nil {
		log.Printf("publish %s: load order %d: %v", kind, orderID, err)
		return
	}
	s.Pub.Publish(OrderEvent{Event: kind, Order: BuildSnapshot(o)})
}
