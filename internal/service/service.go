package service

import (
	"context"

	"github.com/GlebRadaev/loadermarket/internal/config"
	"github.com/GlebRadaev/loadermarket/internal/countdown"
	"github.com/GlebRadaev/loadermarket/internal/handlers/ads"
	"github.com/GlebRadaev/loadermarket/internal/handlers/auth"
	"github.com/GlebRadaev/loadermarket/internal/handlers/disputes"
	"github.com/GlebRadaev/loadermarket/internal/handlers/notifications"
	"github.com/GlebRadaev/loadermarket/internal/handlers/orders"
	"github.com/GlebRadaev/loadermarket/internal/handlers/wallets"
	"github.com/GlebRadaev/loadermarket/internal/notify"
	"github.com/GlebRadaev/loadermarket/internal/pg"
	"github.com/GlebRadaev/loadermarket/internal/repo"
	"github.com/GlebRadaev/loadermarket/pkg/clients"
	"github.com/GlebRadaev/loadermarket/pkg/workerpool"

	pkgauth "github.com/GlebRadaev/loadermarket/pkg/auth"

	adservice "github.com/GlebRadaev/loadermarket/internal/service/adservice"
	authservice "github.com/GlebRadaev/loadermarket/internal/service/authservice"
	disputeservice "github.com/GlebRadaev/loadermarket/internal/service/disputeservice"
	orderservice "github.com/GlebRadaev/loadermarket/internal/service/orderservice"
	walletservice "github.com/GlebRadaev/loadermarket/internal/service/walletservice"
)

// AdminBootstrap creates the configured administrator account at startup.
type AdminBootstrap interface {
	EnsureAdmin(ctx context.Context, login, password string) error
}

type Services struct {
	AuthService         auth.Service
	WalletService       wallets.Service
	AdService           ads.Service
	OrderService        orders.Service
	DisputeService      disputes.Service
	NotificationService notifications.Service

	Expiry    countdown.Orders
	Bootstrap AdminBootstrap
	JWT       pkgauth.JWTServiceInterface
}

func New(repos *repo.Repositories, txManager pg.TXManager, cfg *config.Config, notifyPool workerpool.WorkerPoolI) *Services {
	jwtService := pkgauth.NewJWTService(cfg.JWTSecret)
	notifyService := notify.New(repos.NotificationRepo, clients.NewHTTPClient(), cfg.NotifyWebhookURL, notifyPool)

	walletService := walletservice.New(repos.WalletRepo, repos.LedgerRepo, txManager)
	orderService := orderservice.New(repos.OrderRepo, repos.EventRepo, repos.AdRepo, repos.DisputeRepo, walletService, notifyService, txManager)
	adService := adservice.New(repos.AdRepo, walletService, orderService, notifyService, txManager)
	disputeService := disputeservice.New(repos.DisputeRepo, orderService, notifyService, txManager)
	authService := authservice.New(repos.UserRepo, walletService, pkgauth.NewHashService(0), jwtService, txManager, cfg.DefaultCurrency, cfg.TokenTTL)

	return &Services{
		AuthService:         authService,
		WalletService:       walletService,
		AdService:           adService,
		OrderService:        orderService,
		DisputeService:      disputeService,
		NotificationService: notifyService,
		Expiry:              orderService,
		Bootstrap:           authService,
		JWT:                 jwtService,
	}
}
