package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	_ "github.com/rogerio-castellano/boutique/docs"
	"github.com/rogerio-castellano/boutique/internal/events"
	"github.com/rogerio-castellano/boutique/internal/http/handlers"
	mw "github.com/rogerio-castellano/boutique/internal/http/middleware"
	rl "github.com/rogerio-castellano/boutique/internal/http/rate_limiter"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

const requestTimeout = 30 * time.Second

type Deps struct {
	Server  *handlers.Server
	Tokens  mw.TokenParser
	Revoked mw.RevocationChecker
	Limiter *rl.Limiter
	Hub     *events.Hub
	Logger  zerolog.Logger
}

func New(d Deps) http.Handler {
	s := d.Server
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(mw.RequestLogger(d.Logger))
	r.Use(chimw.Recoverer)

	r.Get("/healthz", s.HealthHandler)
	r.Get("/swagger/*", httpSwagger.WrapHandler)
	if d.Hub != nil {
		r.Get("/events", events.Handler(d.Hub, d.Logger))
	}

	r.Group(func(r chi.Router) {
		if d.Limiter != nil {
			r.Use(mw.RateLimit(d.Limiter))
		}
		r.Use(chimw.Timeout(requestTimeout))
		r.Use(mw.Session(d.Tokens, d.Revoked, d.Logger))

		r.Get("/mode", s.ModeHandler)
		r.Get("/storage/{bucket}/*", s.GetObjectHandler)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", s.SignUpHandler)
			r.Post("/signin", s.SignInHandler)
			r.With(mw.RequireSession).Post("/signout", s.SignOutHandler)
			r.Get("/session", s.SessionHandler)
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", s.GetProductsHandler)
			r.Post("/", s.CreateProductHandler)
			r.Get("/low-stock", s.LowStockHandler)
			r.Get("/{id}", s.GetProductHandler)
			r.Put("/{id}", s.UpdateProductHandler)
			r.Delete("/{id}", s.DeleteProductHandler)
			r.Post("/{id}/stock", s.AdjustStockHandler)
			r.Post("/{id}/image", s.UploadProductImageHandler)
		})

		r.Route("/clients", func(r chi.Router) {
			r.Get("/", s.GetClientsHandler)
			r.Post("/", s.CreateClientHandler)
			r.Put("/{id}", s.UpdateClientHandler)
			r.Delete("/{id}", s.DeleteClientHandler)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", s.GetOrdersHandler)
			r.Post("/", s.CreateOrderHandler)
			r.Patch("/{id}/status", s.UpdateOrderStatusHandler)
			r.Delete("/{id}", s.DeleteOrderHandler)
		})

		r.Route("/profile", func(r chi.Router) {
			r.Get("/", s.GetProfileHandler)
			r.Patch("/", s.UpdateProfileHandler)
			r.Post("/avatar", s.UploadAvatarHandler)
			r.Post("/recruits", s.AddRecruitHandler)
			r.Delete("/recruits/{id}", s.RemoveRecruitHandler)
		})

		r.Get("/transactions", s.GetTransactionsHandler)
		r.Post("/transactions", s.CreateTransactionHandler)
		r.Get("/dashboard/stats", s.DashboardStatsHandler)
		r.Get("/debug/sync", s.SyncReportHandler)
	})

	return r
}
