package handlers

import (
	"net/mail"
	"strings"
	"time"

	"github.com/rogerio-castellano/boutique/internal/models"
)

func validateProduct(p ProductRequest) []ValidationError {
	errs := []ValidationError{}
	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, ValidationError{Field: "name", Description: "Name is required"})
	}
	if p.Price15ml < 0 || p.Price30ml < 0 || p.Price70ml < 0 {
		errs = append(errs, ValidationError{Field: "price", Description: "Prices cannot be negative"})
	}
	if p.Price15ml == 0 && p.Price30ml == 0 && p.Price70ml == 0 {
		errs = append(errs, ValidationError{Field: "price", Description: "At least one size must have a price"})
	}
	if p.Stock15ml < 0 || p.Stock30ml < 0 || p.Stock70ml < 0 {
		errs = append(errs, ValidationError{Field: "stock", Description: "Stock cannot be negative"})
	}
	if p.AlertThreshold < 0 {
		errs = append(errs, ValidationError{Field: "alert_threshold", Description: "Alert threshold cannot be negative"})
	}
	return errs
}

func validateClient(c ClientRequest) []ValidationError {
	errs := []ValidationError{}
	if strings.TrimSpace(c.FullName) == "" {
		errs = append(errs, ValidationError{Field: "full_name", Description: "Full name is required"})
	}
	if c.Email != "" {
		if _, err := mail.ParseAddress(c.Email); err != nil {
			errs = append(errs, ValidationError{Field: "email", Description: "Email is not valid"})
		}
	}
	if c.Status != "" && !models.ClientStatus(c.Status).Valid() {
		errs = append(errs, ValidationError{Field: "status", Description: "Unknown client status"})
	}
	return errs
}

func validateOrder(o OrderRequest) []ValidationError {
	errs := []ValidationError{}
	if len(o.Items) == 0 {
		errs = append(errs, ValidationError{Field: "items", Description: "An order needs at least one item"})
	}
	for _, li := range o.Items {
		if li.ProductID == "" {
			errs = append(errs, ValidationError{Field: "items.product_id", Description: "Product is required"})
		}
		if li.Quantity <= 0 {
			errs = append(errs, ValidationError{Field: "items.quantity", Description: "Quantity must be greater than zero"})
		}
		if li.UnitPrice <= 0 {
			errs = append(errs, ValidationError{Field: "items.unit_price", Description: "Price must be greater than zero"})
		}
		if _, err := models.ParseSizeTier(li.Size); err != nil {
			errs = append(errs, ValidationError{Field: "items.size", Description: "Unknown size"})
		}
	}
	if o.Status != "" && !models.OrderStatus(o.Status).Valid() {
		errs = append(errs, ValidationError{Field: "status", Description: "Unknown order status"})
	}
	if o.PaymentStatus != "" && !models.PaymentStatus(o.PaymentStatus).Valid() {
		errs = append(errs, ValidationError{Field: "payment_status", Description: "Unknown payment status"})
	}
	return errs
}

func validateTransaction(t TransactionRequest) []ValidationError {
	errs := []ValidationError{}
	switch models.TransactionType(t.TransactionType) {
	case models.TransactionSale, models.TransactionExpense, models.TransactionRefund:
	default:
		errs = append(errs, ValidationError{Field: "transaction_type", Description: "Unknown transaction type"})
	}
	if t.Amount <= 0 {
		errs = append(errs, ValidationError{Field: "amount", Description: "Amount must be greater than zero"})
	}
	if t.TransactionDate != "" {
		if _, err := time.Parse(time.RFC3339, t.TransactionDate); err != nil {
			errs = append(errs, ValidationError{Field: "transaction_date", Description: "Date must be RFC3339"})
		}
	}
	return errs
}

func validateCredentials(c CredentialsRequest) []ValidationError {
	errs := []ValidationError{}
	if _, err := mail.ParseAddress(c.Email); err != nil {
		errs = append(errs, ValidationError{Field: "email", Description: "Email is not valid"})
	}
	if len(c.Password) < 6 {
		errs = append(errs, ValidationError{Field: "password", Description: "Password must have at least 6 characters"})
	}
	return errs
}
