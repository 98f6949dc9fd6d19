package router_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rogerio-castellano/boutique/internal/auth"
	"github.com/rogerio-castellano/boutique/internal/events"
	"github.com/rogerio-castellano/boutique/internal/gateway"
	handler "github.com/rogerio-castellano/boutique/internal/http/handlers"
	"github.com/rogerio-castellano/boutique/internal/http/router"
	"github.com/rogerio-castellano/boutique/internal/mockstore"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	router http.Handler
	store  *mockstore.Store
	hub    *events.Hub
}

// newTestRouter serves the mock store only: no backend is configured.
func newTestRouter(t *testing.T) testEnv {
	t.Helper()
	store := mockstore.New(mockstore.WithoutLatency())
	hub := events.NewHub()
	t.Cleanup(hub.Close)

	tokens := auth.NewTokenService("test-secret", time.Hour)
	gw := gateway.New(gateway.Deps{
		Local:  store,
		Tokens: tokens,
		Logger: zerolog.Nop(),
		Events: hub,
	})
	r := router.New(router.Deps{
		Server:  handler.NewServer(gw, zerolog.Nop()),
		Tokens:  tokens,
		Revoked: gw,
		Hub:     hub,
		Logger:  zerolog.Nop(),
	})
	return testEnv{router: r, store: store, hub: hub}
}

func do(r http.Handler, method, path, token string, payload any) *httptest.ResponseRecorder {
	var body bytes.Buffer
	if payload != nil {
		_ = json.NewEncoder(&body).Encode(payload)
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(w.Body).Decode(&v), "body: %s", w.Body.String())
	return v
}

func signIn(t *testing.T, r http.Handler) string {
	t.Helper()
	w := do(r, http.MethodPost, "/auth/signin", "", handler.CredentialsRequest{Email: "sophie@wonder-team.example", Password: "secret-password"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return decode[gateway.AuthResult](t, w).Token
}

func createProduct(r http.Handler, token string, p handler.ProductRequest) *httptest.ResponseRecorder {
	return do(r, http.MethodPost, "/products", token, p)
}

func adjustProduct(r http.Handler, token, productID string, adj handler.StockAdjustmentRequest) *httptest.ResponseRecorder {
	return do(r, http.MethodPost, fmt.Sprintf("/products/%s/stock", productID), token, adj)
}

func multipartImage(t *testing.T, path, token, filename string, data []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

// pngHeader is enough for content sniffing to report image/png.
var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")
