package handlers

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

import (
	"net/http"

	_ "github.com/GlebRadaev/loadermarket/docs"
	"github.com/GlebRadaev/loadermarket/internal/config"
	adshandlers "github.com/GlebRadaev/loadermarket/internal/handlers/ads"
	authhandlers "github.com/GlebRadaev/loadermarket/internal/handlers/auth"
	disputeshandlers "github.com/GlebRadaev/loadermarket/internal/handlers/disputes"
	notificationshandlers "github.com/GlebRadaev/loadermarket/internal/handlers/notifications"
	ordershandlers "github.com/GlebRadaev/loadermarket/internal/handlers/orders"
	walletshandlers "github.com/GlebRadaev/loadermarket/internal/handlers/wallets"
	"github.com/GlebRadaev/loadermarket/internal/service"
	"github.com/GlebRadaev/loadermarket/pkg/auth"
	"github.com/GlebRadaev/loadermarket/pkg/ratelimit"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type WalletHandler interface {
	GetWallets(w http.ResponseWriter, r *http.Request)
	GetEntries(w http.ResponseWriter, r *http.Request)
	Deposit(w http.ResponseWriter, r *http.Request)
}

type AdHandler interface {
	ListAds(w http.ResponseWriter, r *http.Request)
	GetAd(w http.ResponseWriter, r *http.Request)
	PostAd(w http.ResponseWriter, r *http.Request)
	CancelAd(w http.ResponseWriter, r *http.Request)
	AcceptAd(w http.ResponseWriter, r *http.Request)
}

type OrderHandler interface {
	GetOrders(w http.ResponseWriter, r *http.Request)
	GetOrder(w http.ResponseWriter, r *http.Request)
	GetEvents(w http.ResponseWriter, r *http.Request)
	ConfirmLiability(w http.ResponseWriter, r *http.Request)
	SendPaymentDetails(w http.ResponseWriter, r *http.Request)
	MarkPaymentSent(w http.ResponseWriter, r *http.Request)
	ConfirmReceipt(w http.ResponseWriter, r *http.Request)
	CancelOrder(w http.ResponseWriter, r *http.Request)
	OpenDispute(w http.ResponseWriter, r *http.Request)
}

type DisputeHandler interface {
	ListDisputes(w http.ResponseWriter, r *http.Request)
	GetDispute(w http.ResponseWriter, r *http.Request)
	Review(w http.ResponseWriter, r *http.Request)
	Resolve(w http.ResponseWriter, r *http.Request)
}

type NotificationHandler interface {
	GetNotifications(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler         AuthHandler
	WalletHandler       WalletHandler
	AdHandler           AdHandler
	OrderHandler        OrderHandler
	DisputeHandler      DisputeHandler
	NotificationHandler NotificationHandler

	authenticate func(http.Handler) http.Handler
	rateLimit    func(http.Handler) http.Handler
}

func New(s *service.Services, cfg *config.Config) *Handlers {
	return &Handlers{
		AuthHandler:         authhandlers.New(s.AuthService),
		WalletHandler:       walletshandlers.New(s.WalletService),
		AdHandler:           adshandlers.New(s.AdService, cfg.Controls),
		OrderHandler:        ordershandlers.New(s.OrderService),
		DisputeHandler:      disputeshandlers.New(s.DisputeService),
		NotificationHandler: notificationshandlers.New(s.NotificationService),
		authenticate:        auth.AuthMiddleware(s.JWT),
		rateLimit:           ratelimit.Middleware(cfg.RateLimit, cfg.RateLimitPeriod),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Use(h.rateLimit)

		r.Post("/user/register", h.AuthHandler.Register)
		r.Post("/user/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(h.authenticate)

			r.Route("/wallets", func(r chi.Router) {
				r.Get("/", h.WalletHandler.GetWallets)
				r.Get("/entries", h.WalletHandler.GetEntries)
			})
			r.Route("/ads", func(r chi.Router) {
				r.Get("/", h.AdHandler.ListAds)
				r.Post("/", h.AdHandler.PostAd)
				r.Get("/{id}", h.AdHandler.GetAd)
				r.Post("/{id}/cancel", h.AdHandler.CancelAd)
				r.Post("/{id}/accept", h.AdHandler.AcceptAd)
			})
			r.Route("/orders", func(r chi.Router) {
				r.Get("/", h.OrderHandler.GetOrders)
				r.Get("/{id}", h.OrderHandler.GetOrder)
				r.Get("/{id}/events", h.OrderHandler.GetEvents)
				r.Post("/{id}/liability", h.OrderHandler.ConfirmLiability)
				r.Post("/{id}/payment-details", h.OrderHandler.SendPaymentDetails)
				r.Post("/{id}/payment-sent", h.OrderHandler.MarkPaymentSent)
				r.Post("/{id}/confirm-receipt", h.OrderHandler.ConfirmReceipt)
				r.Post("/{id}/cancel", h.OrderHandler.CancelOrder)
				r.Post("/{id}/dispute", h.OrderHandler.OpenDispute)
			})
			r.Get("/notifications", h.NotificationHandler.GetNotifications)

			r.Route("/admin", func(r chi.Router) {
				r.Use(auth.RequireAdmin)
				r.Post("/wallets/deposit", h.WalletHandler.Deposit)
				r.Get("/disputes", h.DisputeHandler.ListDisputes)
				r.Get("/disputes/{id}", h.DisputeHandler.GetDispute)
				r.Post("/disputes/{id}/review", h.DisputeHandler.Review)
				r.Post("/disputes/{id}/resolve", h.DisputeHandler.Resolve)
			})
		})
	})

	return r
}
