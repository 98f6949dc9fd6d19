// Package mockstore is the local data source used when the hosted backend is
// unreachable or not configured. It keeps one in-memory collection per entity,
// simulates a single owner, and sleeps on every call to mimic network latency.
package mockstore

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rogerio-castellano/boutique/internal/models"
	"github.com/rogerio-castellano/boutique/internal/repo"
)

// Latency is the artificial delay applied per entity.
type Latency struct {
	Products    time.Duration
	Clients     time.Duration
	Orders      time.Duration
	CreateOrder time.Duration
	Profile     time.Duration
	Upload      time.Duration
	SignIn      time.Duration
}

var DefaultLatency = Latency{
	Products:    500 * time.Millisecond,
	Clients:     400 * time.Millisecond,
	Orders:      300 * time.Millisecond,
	CreateOrder: 800 * time.Millisecond,
	Profile:     600 * time.Millisecond,
	Upload:      1000 * time.Millisecond,
	SignIn:      800 * time.Millisecond,
}

// Store is safe for concurrent use: each call holds the lock for its own mutation.
// Two callers doing read-modify-write across separate calls can still overwrite
// each other.
type Store struct {
	mu sync.Mutex

	profile      models.Profile
	products     []models.Product
	clients      []models.Client
	orders       []models.Order
	transactions []models.Transaction
	objects      map[string]repo.Object

	latency    Latency
	now        func() time.Time
	storageURL string
}

var (
	_ repo.Store          = (*Store)(nil)
	_ repo.UserRepository = (*Store)(nil)
)

type Option func(*Store)

func WithLatency(l Latency) Option {
	return func(s *Store) { s.latency = l }
}

func WithoutLatency() Option {
	return WithLatency(Latency{})
}

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithEmpty starts with the profile only and no catalogue, clients or orders.
func WithEmpty() Option {
	return WithData(Data{Profile: Fixtures().Profile})
}

// WithData replaces the seed collections.
func WithData(d Data) Option {
	return func(s *Store) { s.load(d) }
}

// WithStorageURL sets the prefix of the public URLs returned by PutObject.
func WithStorageURL(base string) Option {
	return func(s *Store) { s.storageURL = base }
}

// New returns a store seeded with Fixtures.
func New(opts ...Option) *Store {
	s := &Store{
		objects:    map[string]repo.Object{},
		latency:    DefaultLatency,
		now:        time.Now,
		storageURL: "/storage",
	}
	s.load(Fixtures())
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Owner is the id every mock record is tagged with.
func (s *Store) Owner() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile.ID
}

// Snapshot returns a copy of every collection.
func (s *Store) Snapshot() Data {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Data{
		Profile:      cloneProfile(s.profile),
		Products:     append([]models.Product(nil), s.products...),
		Clients:      append([]models.Client(nil), s.clients...),
		Orders:       cloneOrders(s.orders),
		Transactions: append([]models.Transaction(nil), s.transactions...),
	}
}

func (s *Store) load(d Data) {
	s.profile = cloneProfile(d.Profile)
	s.products = append([]models.Product{}, d.Products...)
	s.clients = append([]models.Client{}, d.Clients...)
	s.orders = cloneOrders(d.Orders)
	s.transactions = append([]models.Transaction{}, d.Transactions...)
	for i := range s.products {
		s.products[i].Normalize()
	}
}

// delay sleeps for d unless ctx ends first.
func delay(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func newID(prefix string) string {
	return prefix + uuid.NewString()
}

func cloneProfile(p models.Profile) models.Profile {
	p.Recruits = append([]models.Recruit{}, p.Recruits...)
	return p
}

func cloneOrders(orders []models.Order) []models.Order {
	out := make([]models.Order, len(orders))
	for i, o := range orders {
		o.Items = append([]models.LineItem(nil), o.Items...)
		out[i] = o
	}
	return out
}
