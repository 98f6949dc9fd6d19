package models

import "time"

type TransactionType string

const (
	TransactionSale    TransactionType = "sale"
	TransactionExpense TransactionType = "expense"
	TransactionRefund  TransactionType = "refund"
)

// Transaction is a ledger entry, optionally tied to the order that produced it.
type Transaction struct {
	ID              string          `json:"id"`
	OwnerID         string          `json:"created_by,omitempty"`
	TransactionType TransactionType `json:"transaction_type"`
	Amount          float64         `json:"amount"`
	Description     string          `json:"description,omitempty"`
	Category        string          `json:"category,omitempty"`
	PaymentMethod   string          `json:"payment_method,omitempty"`
	OrderID         string          `json:"order_id,omitempty"`
	TransactionDate time.Time       `json:"transaction_date"`
	CreatedAt       time.Time       `json:"created_at"`
}

// SaleFor builds the ledger entry recorded when an order is paid.
func SaleFor(o Order, at time.Time) Transaction {
	return Transaction{
		OwnerID:         o.OwnerID,
		TransactionType: TransactionSale,
		Amount:          o.TotalAmount,
		Description:     "Order " + o.ID,
		Category:        "sales",
		OrderID:         o.ID,
		TransactionDate: at,
		CreatedAt:       at,
	}
}
