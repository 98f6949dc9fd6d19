package models_test

import (
	"testing"
	"time"

	"github.com/rogerio-castellano/boutique/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestPriceOrder(t *testing.T) {
	cost := 42.0
	items := []models.LineItem{
		{ProductID: "p2", UnitPrice: 85, Quantity: 1, UnitCost: &cost},
		{ProductID: "p4", UnitPrice: 47, Quantity: 2},
	}

	total, profit := models.PriceOrder(items)
	assert.Equal(t, 179.0, total)
	assert.Equal(t, 90.0, profit)
}

func TestOrderPrepare_Defaults(t *testing.T) {
	o := models.Order{Items: []models.LineItem{{UnitPrice: 10, Quantity: 3}}}
	o.Prepare()

	assert.Equal(t, models.OrderPending, o.Status)
	assert.Equal(t, models.PaymentPending, o.PaymentStatus)
	assert.Equal(t, models.WalkInClientID, o.ClientID)
	assert.Equal(t, 30.0, o.TotalAmount)
	assert.Equal(t, 15.0, o.Profit)
}

func TestOrderStatus_CanAdvanceTo(t *testing.T) {
	tests := []struct {
		from, to models.OrderStatus
		ok       bool
	}{
		{models.OrderPending, models.OrderShipped, true},
		{models.OrderShipped, models.OrderDelivered, true},
		{models.OrderPending, models.OrderDelivered, true},
		{models.OrderDelivered, models.OrderDelivered, true},
		{models.OrderDelivered, models.OrderShipped, false},
		{models.OrderShipped, models.OrderPending, false},
		{models.OrderPending, "paid", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.ok, tt.from.CanAdvanceTo(tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestPaymentStatus_CanAdvanceTo(t *testing.T) {
	assert.True(t, models.PaymentPending.CanAdvanceTo(models.PaymentPaid))
	assert.True(t, models.PaymentPaid.CanAdvanceTo(models.PaymentPaid))
	assert.False(t, models.PaymentPaid.CanAdvanceTo(models.PaymentPending))
	assert.False(t, models.PaymentPending.CanAdvanceTo("refunded"))
}

func TestClientRecordPurchase(t *testing.T) {
	c := models.Client{TotalSpent: 10, LoyaltyPoints: 10}
	c.RecordPurchase(85.5, time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC))

	assert.Equal(t, 95.5, c.TotalSpent)
	assert.Equal(t, 95, c.LoyaltyPoints)
	assert.Equal(t, "2024-03-02", c.LastPurchaseDate)
}

func TestComputeStats(t *testing.T) {
	products := []models.Product{
		{Price70ml: 50, Stock70ml: 2, StockTotal: 2, AlertThreshold: 2},
		{Price70ml: 100, Stock70ml: 5, StockTotal: 5, AlertThreshold: 2},
	}
	clients := []models.Client{{Status: models.ClientNew}, {Status: models.ClientVIP}}
	orders := []models.Order{
		{TotalAmount: 127, Profit: 63.5, PaymentStatus: models.PaymentPaid},
		{TotalAmount: 85, Profit: 42, PaymentStatus: models.PaymentPending},
	}

	s := models.ComputeStats(products, clients, orders)
	assert.Equal(t, 212.0, s.Revenue)
	assert.Equal(t, 105.5, s.Profit)
	assert.Equal(t, 106.5, s.Cost)
	assert.Equal(t, 2, s.TotalOrders)
	assert.Equal(t, 1, s.PendingPayments)
	assert.Equal(t, 1, s.NewClients)
	assert.Equal(t, 1, s.LowStock)
	assert.Equal(t, 600.0, s.TotalStockValue)
}
