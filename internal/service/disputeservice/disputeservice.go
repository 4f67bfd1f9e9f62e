package disputeservice

//go:generate mockgen -source=disputeservice.go -destination=mock_disputeservice.go -package=disputeservice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/GlebRadaev/loadermarket/internal/domain"
	"github.com/GlebRadaev/loadermarket/internal/pg"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Repo interface {
	GetByID(ctx context.Context, id int) (*domain.LoaderDispute, error)
	GetForUpdate(ctx context.Context, id int) (*domain.LoaderDispute, error)
	Update(ctx context.Context, dispute *domain.LoaderDispute) error
	List(ctx context.Context, status domain.DisputeStatus) ([]domain.LoaderDispute, error)
}

type Orders interface {
	Resolve(ctx context.Context, orderID int, outcome domain.DisputeOutcome, loaderShare decimal.Decimal, adminID int) (*domain.LoaderOrder, error)
}

type Notifier interface {
	Notify(ctx context.Context, n domain.Notification)
}

// DefaultMutualShare is the loader's share of a mutual settlement when the
// administrator does not name one.
var DefaultMutualShare = decimal.RequireFromString("0.5")

type Service struct {
	repo      Repo
	orders    Orders
	notifier  Notifier
	txManager pg.TXManager
	now       func() time.Time
}

func New(repo Repo, orders Orders, notifier Notifier, txManager pg.TXManager) *Service {
	return &Service{
		repo:      repo,
		orders:    orders,
		notifier:  notifier,
		txManager: txManager,
		now:       time.Now,
	}
}

func (s *Service) List(ctx context.Context, actor domain.Actor, status string) ([]domain.LoaderDispute, error) {
	if !actor.IsAdmin() {
		return nil, fmt.Errorf("listing disputes: %w", domain.ErrForbidden)
	}
	var filter domain.DisputeStatus
	if status != "" {
		var err error
		if filter, err = domain.ParseDisputeStatus(status); err != nil {
			return nil, err
		}
	}
	return s.repo.List(ctx, filter)
}

func (s *Service) Get(ctx context.Context, actor domain.Actor, disputeID int) (*domain.LoaderDispute, error) {
	if !actor.IsAdmin() {
		return nil, fmt.Errorf("reading dispute %d: %w", disputeID, domain.ErrForbidden)
	}
	d, err := s.repo.GetByID(ctx, disputeID)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, fmt.Errorf("dispute %d: %w", disputeID, domain.ErrNotFound)
	}
	return d, nil
}

// MarkInReview records that an administrator picked the dispute up.
func (s *Service) MarkInReview(ctx context.Context, actor domain.Actor, disputeID int) (*domain.LoaderDispute, error) {
	if !actor.IsAdmin() {
		return nil, fmt.Errorf("reviewing dispute %d: %w", disputeID, domain.ErrForbidden)
	}
	var dispute *domain.LoaderDispute
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		d, err := s.lock(ctx, disputeID)
		if err != nil {
			return err
		}
		if d.Status != domain.DisputeOpen {
			return fmt.Errorf("dispute %d is %s: %w", d.ID, d.Status, domain.ErrStaleState)
		}
		d.Status = domain.DisputeInReview
		if err := s.repo.Update(ctx, d); err != nil {
			return err
		}
		dispute = d
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dispute, nil
}

// Resolve closes the dispute and settles its order in the same transaction.
// loaderShare is only used for a mutual outcome; nil means DefaultMutualShare.
func (s *Service) Resolve(ctx context.Context, actor domain.Actor, disputeID int, outcome string, loaderShare *decimal.Decimal, notes string) (*domain.LoaderDispute, *domain.LoaderOrder, error) {
	if !actor.IsAdmin() {
		return nil, nil, fmt.Errorf("resolving dispute %d: %w", disputeID, domain.ErrForbidden)
	}
	verdict, err := domain.ParseDisputeOutcome(outcome)
	if err != nil {
		return nil, nil, err
	}
	share := decimal.Zero
	if verdict == domain.OutcomeMutual {
		share = DefaultMutualShare
		if loaderShare != nil {
			share = *loaderShare
		}
	}

	var (
		dispute *domain.LoaderDispute
		order   *domain.LoaderOrder
	)
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		d, err := s.lock(ctx, disputeID)
		if err != nil {
			return err
		}
		if !d.Status.Resolvable() {
			return fmt.Errorf("dispute %d is %s: %w", d.ID, d.Status, domain.ErrAlreadyResolved)
		}

		o, err := s.orders.Resolve(ctx, d.OrderID, verdict, share, actor.ID)
		if err != nil {
			return err
		}

		now := s.now()
		adminID := actor.ID
		d.Status = verdict.DisputeStatus()
		d.Resolution = string(verdict)
		d.ResolvedBy = &adminID
		d.AdminNotes = strings.TrimSpace(notes)
		d.ResolvedAt = &now
		switch verdict {
		case domain.OutcomeLoaderWins:
			d.WinnerID, d.LoserID = &o.LoaderID, &o.ReceiverID
			d.LoaderShare = decimal.NewFromInt(1)
		case domain.OutcomeReceiverWins:
			d.WinnerID, d.LoserID = &o.ReceiverID, &o.LoaderID
			d.LoaderShare = decimal.Zero
		default:
			d.LoaderShare = share
		}
		if err := s.repo.Update(ctx, d); err != nil {
			return err
		}
		dispute, order = d, o
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	zap.L().Info("dispute resolved",
		zap.Int("dispute_id", dispute.ID),
		zap.Int("order_id", order.ID),
		zap.String("outcome", string(verdict)),
		zap.Int("admin_id", actor.ID),
	)
	for _, userID := range []int{order.LoaderID, order.ReceiverID} {
		s.notifier.Notify(ctx, domain.Notification{
			UserID:  userID,
			Type:    domain.NotifyDisputeResolved,
			Title:   "Dispute resolved",
			Message: fmt.Sprintf("Order #%d: dispute resolved as %s", order.ID, verdict),
			Link:    fmt.Sprintf("/orders/%d", order.ID),
		})
	}
	return dispute, order, nil
}

func (s *Service) lock(ctx context.Context, disputeID int) (*domain.LoaderDispute, error) {
	d, err := s.repo.GetForUpdate(ctx, disputeID)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, fmt.Errorf("dispute %d: %w", disputeID, domain.ErrNotFound)
	}
	return d, nil
}
