package models

import "time"

// ClientStatus is the lifecycle stage of a client; exactly one applies at a time.
type ClientStatus string

const (
	ClientNew      ClientStatus = "new"
	ClientActive   ClientStatus = "active"
	ClientVIP      ClientStatus = "vip"
	ClientInactive ClientStatus = "inactive"
	ClientRelance  ClientStatus = "relance"
)

func (s ClientStatus) Valid() bool {
	switch s {
	case ClientNew, ClientActive, ClientVIP, ClientInactive, ClientRelance:
		return true
	}
	return false
}

type Client struct {
	ID               string       `json:"id"`
	OwnerID          string       `json:"user_id"`
	FullName         string       `json:"full_name"`
	Email            string       `json:"email"`
	Phone            string       `json:"phone"`
	Address          string       `json:"address,omitempty"`
	City             string       `json:"city,omitempty"`
	PostalCode       string       `json:"postal_code,omitempty"`
	Status           ClientStatus `json:"status"`
	BirthDate        string       `json:"birth_date,omitempty"`
	Notes            string       `json:"notes,omitempty"`
	LoyaltyPoints    int          `json:"loyalty_points"`
	PreferredContact string       `json:"preferred_contact,omitempty"`
	LastPurchaseDate string       `json:"last_purchase_date,omitempty"`
	TotalSpent       float64      `json:"total_spent"`
	IsActive         bool         `json:"is_active"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`
}

// RecordPurchase folds a sale into the client's spend aggregates:
// one loyalty point per whole euro spent.
func (c *Client) RecordPurchase(amount float64, at time.Time) {
	c.TotalSpent += amount
	c.LoyaltyPoints += int(amount)
	c.LastPurchaseDate = at.Format(time.DateOnly)
}
