package mockstore_test

import (
	"context"
	"testing"
	"time"

	"github.com/rogerio-castellano/boutique/internal/mockstore"
	"github.com/rogerio-castellano/boutique/internal/models"
	"github.com/rogerio-castellano/boutique/internal/repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

func newStore(opts ...mockstore.Option) *mockstore.Store {
	base := []mockstore.Option{mockstore.WithoutLatency(), mockstore.WithClock(func() time.Time { return fixedNow })}
	return mockstore.New(append(base, opts...)...)
}

func TestStore_TestParfumScenario(t *testing.T) {
	ctx := context.Background()
	s := newStore(mockstore.WithEmpty())
	owner := s.Owner()

	p, err := s.CreateProduct(ctx, owner, models.Product{Name: "Test Parfum", Price70ml: 50, Stock70ml: 10})
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, 10, p.StockTotal)

	p, err = s.AdjustStock(ctx, owner, p.ID, models.Size70ml, -1)
	require.NoError(t, err)
	assert.Equal(t, 9, p.Stock70ml)
	assert.Equal(t, 9, p.StockTotal)

	p, err = s.AdjustStock(ctx, owner, p.ID, models.Size70ml, -15)
	require.NoError(t, err)
	assert.Equal(t, 0, p.Stock70ml)
	assert.Equal(t, 0, p.StockTotal)
}

func TestStore_ListProductsSortedByName(t *testing.T) {
	s := newStore()
	products, err := s.ListProducts(context.Background(), s.Owner())
	require.NoError(t, err)
	require.Len(t, products, 6)

	for i := 1; i < len(products); i++ {
		assert.LessOrEqual(t, products[i-1].Name, products[i].Name)
	}
	for _, p := range products {
		assert.Equal(t, p.Stock15ml+p.Stock30ml+p.Stock70ml, p.StockTotal)
	}
}

func TestStore_UpdateProductRecomputesTotal(t *testing.T) {
	ctx := context.Background()
	s := newStore()

	p, err := s.GetProduct(ctx, s.Owner(), "p1")
	require.NoError(t, err)
	p.Stock15ml, p.Stock30ml, p.StockTotal = 3, 4, 1000

	updated, err := s.UpdateProduct(ctx, s.Owner(), p)
	require.NoError(t, err)
	assert.Equal(t, 12, updated.StockTotal)
	assert.Equal(t, fixedNow, updated.UpdatedAt)

	_, err = s.UpdateProduct(ctx, s.Owner(), models.Product{ID: "missing"})
	assert.ErrorIs(t, err, repo.ErrProductNotFound)
}

func TestStore_DeleteProductLeavesNoGhost(t *testing.T) {
	ctx := context.Background()
	s := newStore()

	require.NoError(t, s.DeleteProduct(ctx, s.Owner(), "p3"))

	products, err := s.ListProducts(ctx, s.Owner())
	require.NoError(t, err)
	for _, p := range products {
		assert.NotEqual(t, "p3", p.ID)
	}
	_, err = s.GetProduct(ctx, s.Owner(), "p3")
	assert.ErrorIs(t, err, repo.ErrProductNotFound)
	assert.ErrorIs(t, s.DeleteProduct(ctx, s.Owner(), "p3"), repo.ErrProductNotFound)
}

func TestStore_AddClientThenList(t *testing.T) {
	ctx := context.Background()
	s := newStore()

	c, err := s.CreateClient(ctx, "someone-else", models.Client{FullName: "Alice Roux", Email: "alice@example.com"})
	require.NoError(t, err)
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, s.Owner(), c.OwnerID)
	assert.Equal(t, models.ClientNew, c.Status)

	clients, err := s.ListClients(ctx, s.Owner())
	require.NoError(t, err)
	assert.Len(t, clients, 4)
	assert.Equal(t, "Alice Roux", clients[0].FullName)
}

func TestStore_CreateOrderDecrementsStock(t *testing.T) {
	ctx := context.Background()
	s := newStore()
	owner := s.Owner()

	o, err := s.CreateOrder(ctx, owner, models.Order{
		ClientID:      "c3",
		PaymentStatus: models.PaymentPaid,
		Items: []models.LineItem{
			{ProductID: "p2", Size: models.Size70ml, Quantity: 2},
			{ProductID: "p3", Quantity: 5},
		},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, o.ID)
	assert.Equal(t, "LA VIE EST BELLE", o.Items[0].ProductName)
	assert.Equal(t, 85.0*2+142*5, o.TotalAmount)
	assert.Equal(t, o.TotalAmount*0.5, o.Profit)
	assert.Equal(t, models.OrderPending, o.Status)

	p2, err := s.GetProduct(ctx, owner, "p2")
	require.NoError(t, err)
	assert.Equal(t, 10, p2.StockTotal)

	p3, err := s.GetProduct(ctx, owner, "p3")
	require.NoError(t, err)
	assert.Equal(t, 0, p3.StockTotal, "clamped at zero")

	clients, err := s.ListClients(ctx, owner)
	require.NoError(t, err)
	for _, c := range clients {
		if c.ID == "c3" {
			assert.Equal(t, o.TotalAmount, c.TotalSpent)
			assert.Equal(t, "2024-05-10", c.LastPurchaseDate)
		}
	}

	txs, err := s.ListTransactions(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, o.ID, txs[0].OrderID)
	assert.Equal(t, models.TransactionSale, txs[0].TransactionType)
}

func TestStore_CreateOrderRejectsBadItems(t *testing.T) {
	ctx := context.Background()
	s := newStore()
	before := s.Snapshot()

	_, err := s.CreateOrder(ctx, s.Owner(), models.Order{Items: []models.LineItem{{ProductID: "p1", Quantity: 0}}})
	assert.ErrorIs(t, err, repo.ErrInvalidQuantity)

	_, err = s.CreateOrder(ctx, s.Owner(), models.Order{Items: []models.LineItem{{ProductID: "p1", Size: "5ml", Quantity: 1}}})
	assert.ErrorIs(t, err, models.ErrUnknownSize)

	assert.Equal(t, before, s.Snapshot())
}

func TestStore_OrderAxesAreIndependent(t *testing.T) {
	ctx := context.Background()
	s := newStore()
	owner := s.Owner()

	o, err := s.CreateOrder(ctx, owner, models.Order{Items: []models.LineItem{{ProductID: "p1", Quantity: 1}}})
	require.NoError(t, err)

	o, err = s.UpdateOrderStatus(ctx, owner, o.ID, models.OrderDelivered)
	require.NoError(t, err)
	assert.Equal(t, models.OrderDelivered, o.Status)
	assert.Equal(t, models.PaymentPending, o.PaymentStatus)

	_, err = s.UpdateOrderStatus(ctx, owner, o.ID, models.OrderShipped)
	assert.ErrorIs(t, err, repo.ErrInvalidTransition)

	before, err := s.ListTransactions(ctx, owner)
	require.NoError(t, err)

	o, err = s.UpdatePaymentStatus(ctx, owner, o.ID, models.PaymentPaid)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentPaid, o.PaymentStatus)

	after, err := s.ListTransactions(ctx, owner)
	require.NoError(t, err)
	assert.Len(t, after, len(before)+1)

	_, err = s.UpdatePaymentStatus(ctx, owner, o.ID, models.PaymentPending)
	assert.ErrorIs(t, err, repo.ErrInvalidTransition)
}

func TestStore_ProfileKeepsOwner(t *testing.T) {
	ctx := context.Background()
	s := newStore()

	p, err := s.GetProfile(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "Sophie (Wonder Team)", p.FullName)

	p.ID = "hijack"
	p.FullName = "Sophie D."
	saved, err := s.SaveProfile(ctx, "", p)
	require.NoError(t, err)
	assert.Equal(t, s.Owner(), saved.ID)
	assert.Equal(t, "Sophie D.", saved.FullName)

	u, err := s.CreateUser(ctx, "New@Example.com", "")
	require.NoError(t, err)
	assert.Equal(t, s.Owner(), u.ID)
	assert.Equal(t, "new@example.com", s.Snapshot().Profile.Email)
}

func TestStore_Objects(t *testing.T) {
	ctx := context.Background()
	s := newStore(mockstore.WithStorageURL("http://localhost:8080/storage/"))

	url, err := s.PutObject(ctx, s.Owner(), repo.Object{Bucket: "avatars", Name: "a.png", ContentType: "image/png", Data: []byte{1, 2}})
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/storage/avatars/a.png", url)

	obj, err := s.GetObject(ctx, "avatars", "a.png")
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2}, obj.Data)

	_, err = s.GetObject(ctx, "avatars", "b.png")
	assert.ErrorIs(t, err, repo.ErrObjectNotFound)
}

func TestStore_DashboardStats(t *testing.T) {
	s := newStore()
	stats, err := s.DashboardStats(context.Background(), s.Owner())
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalOrders)
	assert.Equal(t, 217.0, stats.Revenue)
	assert.Equal(t, 3, stats.TotalClients)
	assert.Equal(t, 1, stats.NewClients)
	assert.Equal(t, 2, stats.LowStock)
}

func TestStore_LatencyHonoursContext(t *testing.T) {
	s := mockstore.New(mockstore.WithLatency(mockstore.Latency{Products: time.Hour}))
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := s.ListProducts(ctx, s.Owner())
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
