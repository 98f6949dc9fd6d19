package handlers

import (
	"github.com/rogerio-castellano/boutique/internal/models"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type ValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields []ValidationError `json:"fields"`
}

type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name,omitempty"`
}

type ProductRequest struct {
	Name           string  `json:"name"`
	Brand          string  `json:"brand"`
	Category       string  `json:"category"`
	Description    string  `json:"description,omitempty"`
	Cat15ml        string  `json:"cat_15ml,omitempty"`
	Cat30ml        string  `json:"cat_30ml,omitempty"`
	Cat70ml        string  `json:"cat_70ml,omitempty"`
	Price15ml      float64 `json:"price_15ml"`
	Price30ml      float64 `json:"price_30ml"`
	Price70ml      float64 `json:"price_70ml"`
	Stock15ml      int     `json:"stock_15ml"`
	Stock30ml      int     `json:"stock_30ml"`
	Stock70ml      int     `json:"stock_70ml"`
	AlertThreshold int     `json:"alert_threshold"`
	ImageURL       string  `json:"image_url,omitempty"`
	IsActive       *bool   `json:"is_active,omitempty"`
}

func (p ProductRequest) toModel(id string) models.Product {
	active := true
	if p.IsActive != nil {
		active = *p.IsActive
	}
	return models.Product{
		ID:             id,
		Name:           p.Name,
		Brand:          p.Brand,
		Category:       p.Category,
		Description:    p.Description,
		Cat15ml:        p.Cat15ml,
		Cat30ml:        p.Cat30ml,
		Cat70ml:        p.Cat70ml,
		Price15ml:      p.Price15ml,
		Price30ml:      p.Price30ml,
		Price70ml:      p.Price70ml,
		Stock15ml:      p.Stock15ml,
		Stock30ml:      p.Stock30ml,
		Stock70ml:      p.Stock70ml,
		AlertThreshold: p.AlertThreshold,
		ImageURL:       p.ImageURL,
		IsActive:       active,
	}
}

// ProductResponse adds the display helpers the catalogue screens use.
type ProductResponse struct {
	models.Product
	Reference  string `json:"reference,omitempty"`
	PriceRange string `json:"price_range"`
	LowStock   bool   `json:"low_stock,omitempty"`
}

func toProductResponse(p models.Product) ProductResponse {
	return ProductResponse{Product: p, Reference: p.Reference(), PriceRange: p.PriceRange(), LowStock: p.IsLowStock()}
}

func toProductResponses(products []models.Product) []ProductResponse {
	out := make([]ProductResponse, len(products))
	for i, p := range products {
		out[i] = toProductResponse(p)
	}
	return out
}

// StockAdjustmentRequest addresses one size tier, or the aggregate stock when size is empty.
type StockAdjustmentRequest struct {
	Size  string `json:"size,omitempty"`
	Delta int    `json:"delta"` // can be positive or negative
}

type ClientRequest struct {
	FullName         string  `json:"full_name"`
	Email            string  `json:"email"`
	Phone            string  `json:"phone"`
	Address          string  `json:"address,omitempty"`
	City             string  `json:"city,omitempty"`
	PostalCode       string  `json:"postal_code,omitempty"`
	Status           string  `json:"status,omitempty"`
	BirthDate        string  `json:"birth_date,omitempty"`
	Notes            string  `json:"notes,omitempty"`
	LoyaltyPoints    int     `json:"loyalty_points,omitempty"`
	PreferredContact string  `json:"preferred_contact,omitempty"`
	LastPurchaseDate string  `json:"last_purchase_date,omitempty"`
	TotalSpent       float64 `json:"total_spent,omitempty"`
	IsActive         *bool   `json:"is_active,omitempty"`
}

func (c ClientRequest) toModel(id string) models.Client {
	active := true
	if c.IsActive != nil {
		active = *c.IsActive
	}
	status := models.ClientStatus(c.Status)
	if status == "" {
		status = models.ClientNew
	}
	return models.Client{
		ID:               id,
		FullName:         c.FullName,
		Email:            c.Email,
		Phone:            c.Phone,
		Address:          c.Address,
		City:             c.City,
		PostalCode:       c.PostalCode,
		Status:           status,
		BirthDate:        c.BirthDate,
		Notes:            c.Notes,
		LoyaltyPoints:    c.LoyaltyPoints,
		PreferredContact: c.PreferredContact,
		LastPurchaseDate: c.LastPurchaseDate,
		TotalSpent:       c.TotalSpent,
		IsActive:         active,
	}
}

type LineItemRequest struct {
	ProductID   string   `json:"product_id"`
	ProductName string   `json:"product_name,omitempty"`
	Size        string   `json:"size,omitempty"`
	Quantity    int      `json:"quantity"`
	UnitPrice   float64  `json:"unit_price"`
	UnitCost    *float64 `json:"unit_cost,omitempty"`
}

type OrderRequest struct {
	ClientID      string            `json:"client_id,omitempty"`
	Items         []LineItemRequest `json:"items"`
	Status        string            `json:"status,omitempty"`
	PaymentStatus string            `json:"payment_status,omitempty"`
	Notes         string            `json:"notes,omitempty"`
}

func (o OrderRequest) toModel() models.Order {
	items := make([]models.LineItem, len(o.Items))
	for i, li := range o.Items {
		items[i] = models.LineItem{
			ProductID:   li.ProductID,
			ProductName: li.ProductName,
			Size:        models.SizeTier(li.Size),
			Quantity:    li.Quantity,
			UnitPrice:   li.UnitPrice,
			UnitCost:    li.UnitCost,
		}
	}
	return models.Order{
		ClientID:      o.ClientID,
		Items:         items,
		Status:        models.OrderStatus(o.Status),
		PaymentStatus: models.PaymentStatus(o.PaymentStatus),
		Notes:         o.Notes,
	}
}

// OrderStatusRequest moves either axis, or both, in one call.
type OrderStatusRequest struct {
	Status        *string `json:"status,omitempty"`
	PaymentStatus *string `json:"payment_status,omitempty"`
}

type RecruitRequest struct {
	Name     string `json:"name"`
	JoinDate string `json:"join_date"`
}

type TransactionRequest struct {
	TransactionType string  `json:"transaction_type"`
	Amount          float64 `json:"amount"`
	Description     string  `json:"description,omitempty"`
	Category        string  `json:"category,omitempty"`
	PaymentMethod   string  `json:"payment_method,omitempty"`
	OrderID         string  `json:"order_id,omitempty"`
	TransactionDate string  `json:"transaction_date,omitempty"`
}

type ModeResponse struct {
	Mode string `json:"mode"`
}
