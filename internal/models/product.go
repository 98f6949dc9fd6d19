package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// SizeTier is one of the three bottle sizes a perfume is sold in.
type SizeTier string

const (
	Size15ml SizeTier = "15ml"
	Size30ml SizeTier = "30ml"
	Size70ml SizeTier = "70ml"
)

// SizeTiers lists the tiers from the largest to the smallest bottle.
var SizeTiers = []SizeTier{Size70ml, Size30ml, Size15ml}

var ErrUnknownSize = errors.New("unknown size tier")

// ParseSizeTier accepts an empty string, which addresses the aggregate stock.
func ParseSizeTier(s string) (SizeTier, error) {
	switch SizeTier(s) {
	case "", Size15ml, Size30ml, Size70ml:
		return SizeTier(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSize, s)
}

// Product represents a catalogue entry with one price and one stock bucket per size tier.
// StockTotal is derived: it is recomputed by Normalize and never written directly.
type Product struct {
	ID             string    `json:"id"`
	OwnerID        string    `json:"user_id,omitempty"`
	Name           string    `json:"name"`
	Brand          string    `json:"brand"`
	Category       string    `json:"category"`
	Description    string    `json:"description,omitempty"`
	Cat15ml        string    `json:"cat_15ml,omitempty"`
	Cat30ml        string    `json:"cat_30ml,omitempty"`
	Cat70ml        string    `json:"cat_70ml,omitempty"`
	Price15ml      float64   `json:"price_15ml"`
	Price30ml      float64   `json:"price_30ml"`
	Price70ml      float64   `json:"price_70ml"`
	Stock15ml      int       `json:"stock_15ml"`
	Stock30ml      int       `json:"stock_30ml"`
	Stock70ml      int       `json:"stock_70ml"`
	StockTotal     int       `json:"stock_total"`
	AlertThreshold int       `json:"alert_threshold"`
	ImageURL       string    `json:"image_url,omitempty"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Normalize clamps every bucket at zero and recomputes StockTotal.
func (p *Product) Normalize() {
	p.Stock15ml = clampStock(p.Stock15ml)
	p.Stock30ml = clampStock(p.Stock30ml)
	p.Stock70ml = clampStock(p.Stock70ml)
	p.StockTotal = p.Stock15ml + p.Stock30ml + p.Stock70ml
}

func clampStock(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

func (p *Product) bucket(tier SizeTier) (*int, error) {
	switch tier {
	case Size15ml:
		return &p.Stock15ml, nil
	case Size30ml:
		return &p.Stock30ml, nil
	case Size70ml:
		return &p.Stock70ml, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownSize, tier)
}

// Adjust applies delta to one size bucket, or to the aggregate when tier is empty.
// No bucket ever goes below zero.
//
// Aggregate increments land on the primary tier; aggregate decrements drain the
// buckets from the largest bottle to the smallest.
func (p *Product) Adjust(tier SizeTier, delta int) error {
	if tier == "" {
		p.adjustAggregate(delta)
		p.Normalize()
		return nil
	}

	b, err := p.bucket(tier)
	if err != nil {
		return err
	}
	*b = clampStock(*b + delta)
	p.Normalize()
	return nil
}

func (p *Product) adjustAggregate(delta int) {
	if delta >= 0 {
		b, _ := p.bucket(p.PrimaryTier())
		*b += delta
		return
	}

	remaining := -delta
	for _, tier := range SizeTiers {
		b, _ := p.bucket(tier)
		take := min(*b, remaining)
		*b -= take
		remaining -= take
		if remaining == 0 {
			return
		}
	}
}

// StockFor returns the quantity held for tier.
func (p Product) StockFor(tier SizeTier) int {
	switch tier {
	case Size15ml:
		return p.Stock15ml
	case Size30ml:
		return p.Stock30ml
	case Size70ml:
		return p.Stock70ml
	}
	return 0
}

// PriceFor returns the public price of tier, zero when the size is not sold.
func (p Product) PriceFor(tier SizeTier) float64 {
	switch tier {
	case Size15ml:
		return p.Price15ml
	case Size30ml:
		return p.Price30ml
	case Size70ml:
		return p.Price70ml
	}
	return 0
}

// AvailableSizes lists the tiers with a price, smallest first.
func (p Product) AvailableSizes() []SizeTier {
	var sizes []SizeTier
	for _, tier := range []SizeTier{Size15ml, Size30ml, Size70ml} {
		if p.PriceFor(tier) > 0 {
			sizes = append(sizes, tier)
		}
	}
	return sizes
}

// PrimaryTier is the largest size on sale, 70ml when nothing is priced yet.
func (p Product) PrimaryTier() SizeTier {
	for _, tier := range SizeTiers {
		if p.PriceFor(tier) > 0 {
			return tier
		}
	}
	return Size70ml
}

// PrimaryPrice is the highest non-zero price.
func (p Product) PrimaryPrice() float64 {
	var hi float64
	for _, v := range p.prices() {
		hi = max(hi, v)
	}
	return hi
}

// LowestPrice is the lowest non-zero price.
func (p Product) LowestPrice() float64 {
	prices := p.prices()
	if len(prices) == 0 {
		return 0
	}
	lo := prices[0]
	for _, v := range prices[1:] {
		lo = min(lo, v)
	}
	return lo
}

func (p Product) prices() []float64 {
	var out []float64
	for _, tier := range SizeTiers {
		if v := p.PriceFor(tier); v > 0 {
			out = append(out, v)
		}
	}
	return out
}

// PriceRange formats the prices for display, e.g. "11.90€ - 35.00€".
func (p Product) PriceRange() string {
	lo, hi := p.LowestPrice(), p.PrimaryPrice()
	if hi == 0 {
		return "0.00€"
	}
	if lo == hi {
		return fmt.Sprintf("%.2f€", hi)
	}
	return fmt.Sprintf("%.2f€ - %.2f€", lo, hi)
}

// Reference returns the catalogue code, preferring the 70ml one.
func (p Product) Reference() string {
	for _, ref := range []string{p.Cat70ml, p.Cat30ml, p.Cat15ml} {
		if ref != "" {
			return ref
		}
	}
	return ""
}

func (p Product) IsLowStock() bool {
	return p.StockTotal <= p.AlertThreshold
}

// StockValue is the public value of the stock on hand.
func (p Product) StockValue() decimal.Decimal {
	value := decimal.Zero
	for _, tier := range SizeTiers {
		value = value.Add(decimal.NewFromFloat(p.PriceFor(tier)).Mul(decimal.NewFromInt(int64(p.StockFor(tier)))))
	}
	return value
}

// EstimateCost is used for profit when no purchase cost is known: a 50% margin.
func EstimateCost(price float64) float64 {
	return decimal.NewFromFloat(price).Mul(decimal.NewFromFloat(0.5)).InexactFloat64()
}
