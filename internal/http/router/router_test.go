package router_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rogerio-castellano/boutique/internal/auth"
	"github.com/rogerio-castellano/boutique/internal/events"
	"github.com/rogerio-castellano/boutique/internal/gateway"
	handler "github.com/rogerio-castellano/boutique/internal/http/handlers"
	rl "github.com/rogerio-castellano/boutique/internal/http/rate_limiter"
	"github.com/rogerio-castellano/boutique/internal/http/router"
	"github.com/rogerio-castellano/boutique/internal/mockstore"
	"github.com/rogerio-castellano/boutique/internal/models"
	"github.com/rogerio-castellano/boutique/internal/syncvalidator"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestModeHandler_WithoutBackend(t *testing.T) {
	env := newTestRouter(t)

	w := do(env.router, http.MethodGet, "/mode", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "local", decode[handler.ModeResponse](t, w).Mode)
}

func TestGetProductsHandler(t *testing.T) {
	env := newTestRouter(t)

	w := do(env.router, http.MethodGet, "/products", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	products := decode[[]handler.ProductResponse](t, w)
	require.Len(t, products, 6)
	names := make([]string, len(products))
	for i, p := range products {
		names[i] = p.Name
	}
	assert.Equal(t, []string{"ACQUA DI SALE", "CRYSTAL NOIR", "GOOD GIRL GONE BAD", "LA VIE EST BELLE", "MEGAMARE", "OMBRE LEATHER"}, names)
	assert.Equal(t, "042", products[3].Reference)
}

func TestGetProductHandler_NotFound(t *testing.T) {
	env := newTestRouter(t)

	w := do(env.router, http.MethodGet, "/products/p_missing", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "product not found")
}

func TestCreateProductHandler_Valid(t *testing.T) {
	env := newTestRouter(t)
	token := signIn(t, env.router)

	w := createProduct(env.router, token, handler.ProductRequest{
		Name: "Test Parfum", Brand: "Maison", Category: "FEMME",
		Price30ml: 45, Price70ml: 79, Stock30ml: 3, Stock70ml: 4, AlertThreshold: 2,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	created := decode[handler.ProductResponse](t, w)
	assert.True(t, strings.HasPrefix(created.ID, "p_"))
	assert.Equal(t, 7, created.StockTotal)
	assert.Equal(t, "45.00€ - 79.00€", created.PriceRange)
	assert.True(t, created.IsActive)

	w = do(env.router, http.MethodGet, "/products", "", nil)
	assert.Len(t, decode[[]handler.ProductResponse](t, w), 7)
}

func TestCreateProductHandler_Invalid(t *testing.T) {
	env := newTestRouter(t)

	tests := []struct {
		name           string
		payload        handler.ProductRequest
		expectedFields []string
	}{
		{
			name:           "Empty name and no price",
			payload:        handler.ProductRequest{},
			expectedFields: []string{"name", "price"},
		},
		{
			name:           "Negative price",
			payload:        handler.ProductRequest{Name: "Bad", Price70ml: -5},
			expectedFields: []string{"price"},
		},
		{
			name:           "Negative stock",
			payload:        handler.ProductRequest{Name: "Bad", Price70ml: 50, Stock15ml: -1},
			expectedFields: []string{"stock"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := createProduct(env.router, "", tt.payload)
			require.Equal(t, http.StatusBadRequest, w.Code)

			resp := decode[handler.ValidationErrorResponse](t, w)
			fields := make([]string, 0, len(resp.Fields))
			for _, f := range resp.Fields {
				fields = append(fields, f.Field)
			}
			assert.ElementsMatch(t, tt.expectedFields, fields)
		})
	}

	t.Run("Malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader("{"))
		w := httptest.NewRecorder()
		env.router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAdjustStockHandler(t *testing.T) {
	env := newTestRouter(t)

	t.Run("Size tier is clamped at zero", func(t *testing.T) {
		w := adjustProduct(env.router, "", "p3", handler.StockAdjustmentRequest{Size: "70ml", Delta: -10})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		p := decode[handler.ProductResponse](t, w)
		assert.Equal(t, 0, p.Stock70ml)
		assert.Equal(t, 0, p.StockTotal)
		assert.True(t, p.LowStock)
	})

	t.Run("Aggregate increment", func(t *testing.T) {
		w := adjustProduct(env.router, "", "p1", handler.StockAdjustmentRequest{Delta: 3})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 8, decode[handler.ProductResponse](t, w).StockTotal)
	})

	t.Run("Unknown size", func(t *testing.T) {
		w := adjustProduct(env.router, "", "p1", handler.StockAdjustmentRequest{Size: "50ml", Delta: 1})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Zero delta", func(t *testing.T) {
		w := adjustProduct(env.router, "", "p1", handler.StockAdjustmentRequest{Delta: 0})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Unknown product", func(t *testing.T) {
		w := adjustProduct(env.router, "", "p_missing", handler.StockAdjustmentRequest{Delta: 1})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestLowStockHandler(t *testing.T) {
	env := newTestRouter(t)

	w := do(env.router, http.MethodGet, "/products/low-stock", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var ids []string
	for _, p := range decode[[]handler.ProductResponse](t, w) {
		ids = append(ids, p.ID)
	}
	assert.ElementsMatch(t, []string{"p3", "p5"}, ids)
}

func TestDeleteProductHandler(t *testing.T) {
	env := newTestRouter(t)

	w := do(env.router, http.MethodDelete, "/products/p1", "", nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = do(env.router, http.MethodGet, "/products/p1", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(env.router, http.MethodDelete, "/products/p1", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestClientHandlers(t *testing.T) {
	env := newTestRouter(t)

	w := do(env.router, http.MethodPost, "/clients", "", handler.ClientRequest{FullName: "Alice Moreau", Email: "alice@example.com", Phone: "0600000000"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[models.Client](t, w)
	assert.Equal(t, models.ClientNew, created.Status)

	w = do(env.router, http.MethodPut, "/clients/"+created.ID, "", handler.ClientRequest{FullName: "Alice Moreau", Status: "vip"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.ClientVIP, decode[models.Client](t, w).Status)

	w = do(env.router, http.MethodPost, "/clients", "", handler.ClientRequest{FullName: "X", Email: "not-an-email", Status: "gold"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(env.router, http.MethodDelete, "/clients/"+created.ID, "", nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = do(env.router, http.MethodGet, "/clients", "", nil)
	assert.Len(t, decode[[]models.Client](t, w), 3)
}

func TestCreateOrderHandler(t *testing.T) {
	env := newTestRouter(t)

	w := do(env.router, http.MethodPost, "/orders", "", handler.OrderRequest{
		ClientID:      "c3",
		PaymentStatus: "paid",
		Items: []handler.LineItemRequest{
			{ProductID: "p1", Size: "70ml", Quantity: 2, UnitPrice: 69},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	order := decode[models.Order](t, w)
	assert.Equal(t, 138.0, order.TotalAmount)
	assert.Equal(t, models.OrderPending, order.Status)
	assert.Equal(t, "ACQUA DI SALE", order.Items[0].ProductName)

	w = do(env.router, http.MethodGet, "/products/p1", "", nil)
	assert.Equal(t, 3, decode[handler.ProductResponse](t, w).Stock70ml)

	w = do(env.router, http.MethodGet, "/transactions", "", nil)
	txs := decode[[]models.Transaction](t, w)
	require.NotEmpty(t, txs)
	assert.Equal(t, order.ID, txs[0].OrderID)

	w = do(env.router, http.MethodGet, "/orders", "", nil)
	orders := decode[[]models.Order](t, w)
	require.Len(t, orders, 3)
	assert.Equal(t, order.ID, orders[0].ID)
}

func TestCreateOrderHandler_Invalid(t *testing.T) {
	env := newTestRouter(t)
	before := env.store.Snapshot()

	tests := []struct {
		name    string
		payload handler.OrderRequest
		code    int
	}{
		{"No items", handler.OrderRequest{ClientID: "c1"}, http.StatusBadRequest},
		{"Zero quantity", handler.OrderRequest{Items: []handler.LineItemRequest{{ProductID: "p1", Quantity: 0, UnitPrice: 69}}}, http.StatusBadRequest},
		{"Free item", handler.OrderRequest{Items: []handler.LineItemRequest{{ProductID: "p1", Quantity: 1}}}, http.StatusBadRequest},
		{"Unknown size", handler.OrderRequest{Items: []handler.LineItemRequest{{ProductID: "p1", Size: "5ml", Quantity: 1, UnitPrice: 10}}}, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(env.router, http.MethodPost, "/orders", "", tt.payload)
			assert.Equal(t, tt.code, w.Code, w.Body.String())
		})
	}

	assert.Equal(t, before, env.store.Snapshot())
}

func TestUpdateOrderStatusHandler(t *testing.T) {
	env := newTestRouter(t)

	t.Run("Forward move", func(t *testing.T) {
		w := do(env.router, http.MethodPatch, "/orders/ord_2/status", "", handler.OrderStatusRequest{Status: ptr("delivered")})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, models.OrderDelivered, decode[models.Order](t, w).Status)
	})

	t.Run("Backward move is a conflict", func(t *testing.T) {
		w := do(env.router, http.MethodPatch, "/orders/ord_2/status", "", handler.OrderStatusRequest{Status: ptr("pending")})
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Unknown status", func(t *testing.T) {
		w := do(env.router, http.MethodPatch, "/orders/ord_2/status", "", handler.OrderStatusRequest{PaymentStatus: ptr("refunded-twice")})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Empty body", func(t *testing.T) {
		w := do(env.router, http.MethodPatch, "/orders/ord_2/status", "", handler.OrderStatusRequest{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Unknown order", func(t *testing.T) {
		w := do(env.router, http.MethodPatch, "/orders/ord_missing/status", "", handler.OrderStatusRequest{Status: ptr("shipped")})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestProfileHandlers(t *testing.T) {
	env := newTestRouter(t)

	w := do(env.router, http.MethodPatch, "/profile", "", models.ProfileUpdate{TeamName: ptr("Les Etoiles")})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	profile := decode[models.Profile](t, w)
	assert.Equal(t, "Les Etoiles", profile.TeamName)
	assert.Equal(t, "Sophie (Wonder Team)", profile.FullName)

	w = do(env.router, http.MethodPost, "/profile/recruits", "", handler.RecruitRequest{Name: "Léa Petit", JoinDate: "2024-02-01"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	profile = decode[models.Profile](t, w)
	require.Len(t, profile.Recruits, 3)

	w = do(env.router, http.MethodDelete, "/profile/recruits/r1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[models.Profile](t, w).Recruits, 2)

	w = do(env.router, http.MethodDelete, "/profile/recruits/r1", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(env.router, http.MethodPost, "/profile/recruits", "", handler.RecruitRequest{Name: "Bad Date", JoinDate: "01/02/2024"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadProductImageHandler(t *testing.T) {
	env := newTestRouter(t)

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, multipartImage(t, "/products/p1/image", "", "bottle.png", pngHeader))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	p := decode[handler.ProductResponse](t, w)
	require.True(t, strings.HasPrefix(p.ImageURL, "/storage/product-images/user_123/p1-"), p.ImageURL)

	w = do(env.router, http.MethodGet, p.ImageURL, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, pngHeader, w.Body.Bytes())

	t.Run("Not an image", func(t *testing.T) {
		w := httptest.NewRecorder()
		env.router.ServeHTTP(w, multipartImage(t, "/products/p1/image", "", "notes.txt", []byte("plain text")))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUploadAvatarHandler(t *testing.T) {
	env := newTestRouter(t)

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, multipartImage(t, "/profile/avatar", "", "me.png", pngHeader))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.True(t, strings.HasPrefix(decode[models.Profile](t, w).AvatarURL, "/storage/avatars/user_123/avatar-"))
}

func TestGetObjectHandler_Missing(t *testing.T) {
	env := newTestRouter(t)

	w := do(env.router, http.MethodGet, "/storage/avatars/user_123/none.png", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTransactionHandlers(t *testing.T) {
	env := newTestRouter(t)

	w := do(env.router, http.MethodPost, "/transactions", "", handler.TransactionRequest{TransactionType: "expense", Amount: 40, Description: "Samples"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, models.TransactionExpense, decode[models.Transaction](t, w).TransactionType)

	w = do(env.router, http.MethodPost, "/transactions", "", handler.TransactionRequest{TransactionType: "gift", Amount: -1})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Len(t, decode[handler.ValidationErrorResponse](t, w).Fields, 2)
}

func TestDashboardStatsHandler(t *testing.T) {
	env := newTestRouter(t)

	w := do(env.router, http.MethodGet, "/dashboard/stats", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	stats := decode[models.DashboardStats](t, w)
	assert.Equal(t, 217.0, stats.Revenue)
	assert.Equal(t, 2, stats.TotalOrders)
	assert.Equal(t, 3, stats.TotalClients)
	assert.Equal(t, 2, stats.LowStock)
}

func TestSyncReportHandler_WithoutBackend(t *testing.T) {
	env := newTestRouter(t)

	w := do(env.router, http.MethodGet, "/debug/sync", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	report := decode[syncvalidator.Report](t, w)
	assert.False(t, report.Valid)
	assert.Contains(t, report.Errors, "backend not in use")
}

func TestAuthHandlers(t *testing.T) {
	env := newTestRouter(t)
	feed, release := env.hub.Subscribe()
	defer release()

	t.Run("Sign up opens a local session", func(t *testing.T) {
		w := do(env.router, http.MethodPost, "/auth/signup", "", handler.CredentialsRequest{Email: "New@Example.com", Password: "secret-password", FullName: "New Seller"})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		res := decode[gateway.AuthResult](t, w)
		assert.NotEmpty(t, res.Token)
		assert.True(t, res.Session.Local)
		assert.Equal(t, "new@example.com", res.Session.Email)

		select {
		case e := <-feed:
			assert.Equal(t, "SIGNED_UP", string(e.Type))
		case <-time.After(time.Second):
			t.Fatal("no event published")
		}
	})

	t.Run("Sign up validation", func(t *testing.T) {
		w := do(env.router, http.MethodPost, "/auth/signup", "", handler.CredentialsRequest{Email: "nope", Password: "123"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Sign in without credentials", func(t *testing.T) {
		w := do(env.router, http.MethodPost, "/auth/signin", "", handler.CredentialsRequest{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Session and sign out", func(t *testing.T) {
		token := signIn(t, env.router)

		w := do(env.router, http.MethodGet, "/auth/session", token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		sess := decode[auth.Session](t, w)
		assert.True(t, sess.Authenticated)
		assert.Equal(t, "user_123", sess.UserID)

		w = do(env.router, http.MethodPost, "/auth/signout", token, nil)
		require.Equal(t, http.StatusNoContent, w.Code)

		w = do(env.router, http.MethodGet, "/auth/session", token, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Sign out requires a session", func(t *testing.T) {
		w := do(env.router, http.MethodPost, "/auth/signout", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Anonymous session", func(t *testing.T) {
		w := do(env.router, http.MethodGet, "/auth/session", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.False(t, decode[auth.Session](t, w).Authenticated)
	})
}

func TestRateLimit(t *testing.T) {
	store := mockstore.New(mockstore.WithoutLatency())
	tokens := auth.NewTokenService("test-secret", time.Hour)
	gw := gateway.New(gateway.Deps{Local: store, Tokens: tokens, Logger: zerolog.Nop()})
	r := router.New(router.Deps{
		Server:  handler.NewServer(gw, zerolog.Nop()),
		Tokens:  tokens,
		Revoked: gw,
		Limiter: rl.New(1, 2),
		Hub:     events.NewHub(),
		Logger:  zerolog.Nop(),
	})

	var codes []int
	for range 3 {
		codes = append(codes, do(r, http.MethodGet, "/mode", "", nil).Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	w := do(r, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
