package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the fulfillment axis of an order.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderShipped   OrderStatus = "shipped"
	OrderDelivered OrderStatus = "delivered"
)

var orderRank = map[OrderStatus]int{OrderPending: 0, OrderShipped: 1, OrderDelivered: 2}

func (s OrderStatus) Valid() bool {
	_, ok := orderRank[s]
	return ok
}

// CanAdvanceTo reports whether the fulfillment axis may move from s to next.
// Moves are forward only; staying in place is allowed.
func (s OrderStatus) CanAdvanceTo(next OrderStatus) bool {
	from, ok1 := orderRank[s]
	to, ok2 := orderRank[next]
	return ok1 && ok2 && to >= from
}

// PaymentStatus is the payment axis of an order, independent of fulfillment.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
)

func (s PaymentStatus) Valid() bool {
	return s == PaymentPending || s == PaymentPaid
}

func (s PaymentStatus) CanAdvanceTo(next PaymentStatus) bool {
	if !s.Valid() || !next.Valid() {
		return false
	}
	return s == next || (s == PaymentPending && next == PaymentPaid)
}

// WalkInClientID marks a sale made to an anonymous customer at the counter.
const WalkInClientID = "walk-in"

// LineItem is a denormalized copy of what was sold, so later catalogue edits
// do not rewrite past orders.
type LineItem struct {
	ProductID   string   `json:"product_id"`
	ProductName string   `json:"product_name"`
	Size        SizeTier `json:"size,omitempty"`
	Quantity    int      `json:"quantity"`
	UnitPrice   float64  `json:"unit_price"`
	UnitCost    *float64 `json:"unit_cost,omitempty"`
}

// Cost is the actual unit cost when known, the estimated one otherwise.
func (li LineItem) Cost() float64 {
	if li.UnitCost != nil {
		return *li.UnitCost
	}
	return EstimateCost(li.UnitPrice)
}

type Order struct {
	ID            string        `json:"id"`
	OwnerID       string        `json:"created_by,omitempty"`
	ClientID      string        `json:"client_id"`
	Items         []LineItem    `json:"items"`
	TotalAmount   float64       `json:"total_amount"`
	Profit        float64       `json:"profit"`
	Status        OrderStatus   `json:"status"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	Notes         string        `json:"notes,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// PriceOrder returns the order total and its profit, sum of (price - cost) * quantity.
func PriceOrder(items []LineItem) (total, profit float64) {
	t, p := decimal.Zero, decimal.Zero
	for _, li := range items {
		qty := decimal.NewFromInt(int64(li.Quantity))
		price := decimal.NewFromFloat(li.UnitPrice)
		t = t.Add(price.Mul(qty))
		p = p.Add(price.Sub(decimal.NewFromFloat(li.Cost())).Mul(qty))
	}
	return t.Round(2).InexactFloat64(), p.Round(2).InexactFloat64()
}

// Prepare fills the derived fields of a new order: totals, default statuses and the
// walk-in placeholder.
func (o *Order) Prepare() {
	o.TotalAmount, o.Profit = PriceOrder(o.Items)
	if o.Status == "" {
		o.Status = OrderPending
	}
	if o.PaymentStatus == "" {
		o.PaymentStatus = PaymentPending
	}
	if o.ClientID == "" {
		o.ClientID = WalkInClientID
	}
}
