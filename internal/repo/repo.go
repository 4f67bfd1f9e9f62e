package repo

import (
	"github.com/GlebRadaev/loadermarket/internal/notify"
	"github.com/GlebRadaev/loadermarket/internal/pg"
	adrepo "github.com/GlebRadaev/loadermarket/internal/repo/ad-repo"
	disputerepo "github.com/GlebRadaev/loadermarket/internal/repo/dispute-repo"
	eventrepo "github.com/GlebRadaev/loadermarket/internal/repo/event-repo"
	ledgerrepo "github.com/GlebRadaev/loadermarket/internal/repo/ledger-repo"
	notificationrepo "github.com/GlebRadaev/loadermarket/internal/repo/notification-repo"
	orderrepo "github.com/GlebRadaev/loadermarket/internal/repo/order-repo"
	userrepo "github.com/GlebRadaev/loadermarket/internal/repo/user-repo"
	walletrepo "github.com/GlebRadaev/loadermarket/internal/repo/wallet-repo"
	"github.com/GlebRadaev/loadermarket/internal/service/adservice"
	"github.com/GlebRadaev/loadermarket/internal/service/authservice"
	"github.com/GlebRadaev/loadermarket/internal/service/disputeservice"
	"github.com/GlebRadaev/loadermarket/internal/service/orderservice"
	"github.com/GlebRadaev/loadermarket/internal/service/walletservice"
)

// DisputeRepo serves both the order state machine, which opens disputes,
// and the dispute resolver.
type DisputeRepo interface {
	disputeservice.Repo
	orderservice.DisputeRepo
}

type Repositories struct {
	UserRepo         authservice.Repo
	WalletRepo       walletservice.WalletRepo
	LedgerRepo       walletservice.LedgerRepo
	AdRepo           adservice.Repo
	OrderRepo        orderservice.Repo
	EventRepo        orderservice.EventRepo
	DisputeRepo      DisputeRepo
	NotificationRepo notify.Repo
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		UserRepo:         userrepo.New(conn),
		WalletRepo:       walletrepo.New(conn),
		LedgerRepo:       ledgerrepo.New(conn),
		AdRepo:           adrepo.New(conn),
		OrderRepo:        orderrepo.New(conn),
		EventRepo:        eventrepo.New(conn),
		DisputeRepo:      disputerepo.New(conn),
		NotificationRepo: notificationrepo.New(conn),
	}
}
