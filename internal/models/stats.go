package models

import "github.com/shopspring/decimal"

// DashboardStats is the finance and stock rollup shown on the dashboard.
type DashboardStats struct {
	Revenue         float64 `json:"revenue"`
	Profit          float64 `json:"profit"`
	Cost            float64 `json:"cost"`
	TotalOrders     int     `json:"total_orders"`
	PendingPayments int     `json:"pending_payments"`
	NewClients      int     `json:"new_clients"`
	TotalClients    int     `json:"total_clients"`
	LowStock        int     `json:"low_stock"`
	TotalStockValue float64 `json:"total_stock_value"`
}

// ComputeStats derives the dashboard rollup from full collections.
func ComputeStats(products []Product, clients []Client, orders []Order) DashboardStats {
	revenue, profit, stockValue := decimal.Zero, decimal.Zero, decimal.Zero
	s := DashboardStats{TotalOrders: len(orders), TotalClients: len(clients)}

	for _, o := range orders {
		revenue = revenue.Add(decimal.NewFromFloat(o.TotalAmount))
		profit = profit.Add(decimal.NewFromFloat(o.Profit))
		if o.PaymentStatus == PaymentPending {
			s.PendingPayments++
		}
	}
	for _, c := range clients {
		if c.Status == ClientNew {
			s.NewClients++
		}
	}
	for _, p := range products {
		if p.IsLowStock() {
			s.LowStock++
		}
		stockValue = stockValue.Add(p.StockValue())
	}

	s.Revenue = revenue.Round(2).InexactFloat64()
	s.Profit = profit.Round(2).InexactFloat64()
	s.Cost = revenue.Sub(profit).Round(2).InexactFloat64()
	s.TotalStockValue = stockValue.Round(2).InexactFloat64()
	return s
}
