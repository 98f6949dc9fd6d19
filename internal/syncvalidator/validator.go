// Package syncvalidator compares the local mock data with the rows the backend holds
// for the same operator and reports where they diverge.
package syncvalidator

import (
	"context"
	"fmt"
	"time"

	"github.com/rogerio-castellano/boutique/internal/models"
	"github.com/rogerio-castellano/boutique/internal/repo"
	"github.com/rs/zerolog"
)

type Status string

const (
	StatusOK            Status = "ok"
	StatusMismatch      Status = "mismatch"
	StatusMissingRemote Status = "missing_remote"
	StatusMissingLocal  Status = "missing_local"
)

type Detail struct {
	ID      string `json:"id"`
	Status  Status `json:"status"`
	Field   string `json:"field,omitempty"`
	Local   any    `json:"local_value,omitempty"`
	Remote  any    `json:"remote_value,omitempty"`
	Message string `json:"message"`
}

type Summary struct {
	Synced          bool `json:"synced"`
	LocalCount      int  `json:"local_count"`
	RemoteCount     int  `json:"remote_count"`
	Mismatches      int  `json:"mismatches"`
	MissingInRemote int  `json:"missing_in_remote"`
	MissingInLocal  int  `json:"missing_in_local"`
}

type Report struct {
	CheckedAt time.Time           `json:"checked_at"`
	Valid     bool                `json:"valid"`
	Summary   map[string]Summary  `json:"summary"`
	Details   map[string][]Detail `json:"details"`
	Errors    []string            `json:"errors"`
}

// Snapshot is one side of the comparison. A nil collection is not compared.
type Snapshot struct {
	Products []models.Product
	Clients  []models.Client
	Orders   []models.Order
	Profile  *models.Profile
}

// Collect reads every compared collection of s for owner.
func Collect(ctx context.Context, s repo.Store, owner string) (Snapshot, error) {
	var snap Snapshot
	var err error

	if snap.Products, err = s.ListProducts(ctx, owner); err != nil {
		return Snapshot{}, fmt.Errorf("products: %w", err)
	}
	if snap.Clients, err = s.ListClients(ctx, owner); err != nil {
		return Snapshot{}, fmt.Errorf("clients: %w", err)
	}
	if snap.Orders, err = s.ListOrders(ctx, owner); err != nil {
		return Snapshot{}, fmt.Errorf("orders: %w", err)
	}
	profile, err := s.GetProfile(ctx, owner)
	if err != nil {
		return Snapshot{}, fmt.Errorf("profile: %w", err)
	}
	snap.Profile = &profile
	return snap, nil
}

type Validator struct {
	logger zerolog.Logger
	now    func() time.Time
}

func New(logger zerolog.Logger) *Validator {
	return &Validator{logger: logger, now: time.Now}
}

// Failed returns a report that could not be computed.
func (v *Validator) Failed(errs ...string) Report {
	r := v.newReport()
	r.Valid = false
	r.Errors = append(r.Errors, errs...)
	return r
}

func (v *Validator) newReport() Report {
	return Report{
		CheckedAt: v.now(),
		Valid:     true,
		Summary:   map[string]Summary{},
		Details:   map[string][]Detail{},
		Errors:    []string{},
	}
}

func (v *Validator) Compare(local, remote Snapshot) Report {
	r := v.newReport()
	add := func(name string, s Summary, d []Detail) {
		r.Summary[name] = s
		r.Details[name] = d
		if !s.Synced {
			r.Valid = false
		}
	}

	if local.Products != nil {
		s, d := compare(local.Products, remote.Products, "product",
			func(p models.Product) string { return p.ID },
			func(p models.Product) string { return p.Name },
			productFields)
		add("products", s, d)
	}
	if local.Clients != nil {
		s, d := compare(local.Clients, remote.Clients, "client",
			func(c models.Client) string { return c.ID },
			func(c models.Client) string { return c.FullName },
			clientFields)
		add("clients", s, d)
	}
	if local.Orders != nil {
		s, d := compare(local.Orders, remote.Orders, "order",
			func(o models.Order) string { return o.ID },
			func(o models.Order) string { return o.ID },
			orderFields)
		add("orders", s, d)
	}
	if local.Profile != nil {
		var remoteProfiles []models.Profile
		if remote.Profile != nil {
			remoteProfiles = []models.Profile{*remote.Profile}
		}
		// Ids differ by construction: the mock simulates its own owner.
		s, d := compare([]models.Profile{*local.Profile}, remoteProfiles, "profile",
			func(models.Profile) string { return "profile" },
			func(p models.Profile) string { return p.FullName },
			profileFields)
		add("profile", s, d)
	}

	v.logger.Debug().Bool("valid", r.Valid).Msg("sync validation finished")
	return r
}

type field[T any] struct {
	name string
	get  func(T) any
}

var productFields = []field[models.Product]{
	{"name", func(p models.Product) any { return p.Name }},
	{"stock_total", func(p models.Product) any { return p.StockTotal }},
	{"stock_15ml", func(p models.Product) any { return p.Stock15ml }},
	{"stock_30ml", func(p models.Product) any { return p.Stock30ml }},
	{"stock_70ml", func(p models.Product) any { return p.Stock70ml }},
	{"price_15ml", func(p models.Product) any { return p.Price15ml }},
	{"price_30ml", func(p models.Product) any { return p.Price30ml }},
	{"price_70ml", func(p models.Product) any { return p.Price70ml }},
}

var clientFields = []field[models.Client]{
	{"full_name", func(c models.Client) any { return c.FullName }},
	{"status", func(c models.Client) any { return c.Status }},
}

var orderFields = []field[models.Order]{
	{"status", func(o models.Order) any { return o.Status }},
	{"payment_status", func(o models.Order) any { return o.PaymentStatus }},
	{"total_amount", func(o models.Order) any { return o.TotalAmount }},
}

var profileFields = []field[models.Profile]{
	{"full_name", func(p models.Profile) any { return p.FullName }},
	{"team_name", func(p models.Profile) any { return p.TeamName }},
	{"avatar_url", func(p models.Profile) any { return p.AvatarURL }},
}

func compare[T any](local, remote []T, kind string, id, label func(T) string, fields []field[T]) (Summary, []Detail) {
	s := Summary{Synced: true, LocalCount: len(local), RemoteCount: len(remote)}
	details := []Detail{}

	byID := make(map[string]T, len(remote))
	for _, item := range remote {
		byID[id(item)] = item
	}
	seen := make(map[string]bool, len(local))

	for _, l := range local {
		key := id(l)
		seen[key] = true
		r, ok := byID[key]
		if !ok {
			s.MissingInRemote++
			s.Synced = false
			details = append(details, Detail{
				ID:      key,
				Status:  StatusMissingRemote,
				Message: fmt.Sprintf("%s %q exists locally but not in the backend", kind, label(l)),
			})
			continue
		}
		for _, f := range fields {
			lv, rv := f.get(l), f.get(r)
			if lv == rv {
				continue
			}
			s.Mismatches++
			s.Synced = false
			details = append(details, Detail{
				ID:      key,
				Status:  StatusMismatch,
				Field:   f.name,
				Local:   lv,
				Remote:  rv,
				Message: fmt.Sprintf("field %q differs for %s %q", f.name, kind, label(l)),
			})
		}
	}

	for _, r := range remote {
		if key := id(r); !seen[key] {
			s.MissingInLocal++
			details = append(details, Detail{
				ID:      key,
				Status:  StatusMissingLocal,
				Message: fmt.Sprintf("%s %q exists in the backend but not locally", kind, label(r)),
			})
		}
	}
	return s, details
}
