package orderservice

//go:generate mockgen -source=orderservice.go -destination=mock_orderservice.go -package=orderservice

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/GlebRadaev/loadermarket/internal/domain"
	"github.com/GlebRadaev/loadermarket/internal/pg"
	"github.com/GlebRadaev/loadermarket/pkg/validate"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Repo interface {
	Create(ctx context.Context, order *domain.LoaderOrder) (*domain.LoaderOrder, error)
	GetByID(ctx context.Context, id int) (*domain.LoaderOrder, error)
	GetForUpdate(ctx context.Context, id int) (*domain.LoaderOrder, error)
	GetForUpdateNoWait(ctx context.Context, id int) (*domain.LoaderOrder, error)
	Update(ctx context.Context, order *domain.LoaderOrder) error
	ListByUser(ctx context.Context, userID int) ([]domain.LoaderOrder, error)
	FindExpired(ctx context.Context, now time.Time, limit uint32) ([]int, error)
}

type EventRepo interface {
	Create(ctx context.Context, event *domain.OrderEvent) error
	ListByOrder(ctx context.Context, orderID int) ([]domain.OrderEvent, error)
}

type AdRepo interface {
	GetByID(ctx context.Context, id int) (*domain.LoaderAd, error)
}

type DisputeRepo interface {
	Create(ctx context.Context, dispute *domain.LoaderDispute) (*domain.LoaderDispute, error)
}

type Ledger interface {
	LockWallets(ctx context.Context, currency string, userIDs []int) error
	Release(ctx context.Context, userID int, currency string, amount decimal.Decimal, ref domain.LedgerRef) error
	SettleFee(ctx context.Context, userID int, currency string, amount decimal.Decimal, ref domain.LedgerRef) error
	Transfer(ctx context.Context, fromUserID, toUserID int, currency string, amount decimal.Decimal, ref domain.LedgerRef) error
}

type Notifier interface {
	Notify(ctx context.Context, n domain.Notification)
}

const (
	maxReasonLength = 500
	maxEvidenceURLs = 10
)

// Service drives loader orders through their lifecycle. Every transition
// locks the order row, applies its ledger effects, writes the order with a
// version check and appends an audit event, all in one transaction.
type Service struct {
	repo      Repo
	events    EventRepo
	ads       AdRepo
	disputes  DisputeRepo
	ledger    Ledger
	notifier  Notifier
	txManager pg.TXManager
	now       func() time.Time
}

func New(repo Repo, events EventRepo, ads AdRepo, disputes DisputeRepo, ledger Ledger, notifier Notifier, txManager pg.TXManager) *Service {
	return &Service{
		repo:      repo,
		events:    events,
		ads:       ads,
		disputes:  disputes,
		ledger:    ledger,
		notifier:  notifier,
		txManager: txManager,
		now:       time.Now,
	}
}

// step mutates a locked order for one user action and names the event applied.
type step func(ctx context.Context, o *domain.LoaderOrder, party domain.Party, now time.Time) (domain.Event, error)

// Open stores a freshly accepted order and starts liability negotiation.
// It joins the caller's transaction and leaves notifications to the caller.
func (s *Service) Open(ctx context.Context, draft *domain.LoaderOrder) (*domain.LoaderOrder, error) {
	var order *domain.LoaderOrder
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		created, err := s.repo.Create(ctx, draft)
		if err != nil {
			return err
		}
		from := created.Status
		to, err := from.Next(domain.EventInitialize)
		if err != nil {
			return err
		}
		created.Status = to
		created.Countdown(s.now())
		if err := s.record(ctx, created, from, domain.EventInitialize, &created.ReceiverID); err != nil {
			return err
		}
		order = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// ConfirmLiability records the actor's agreement to a liability type. Proposing
// a different type than the counterparty renegotiates and clears its
// confirmation; once both sides agree the terms lock.
func (s *Service) ConfirmLiability(ctx context.Context, orderID, actorID int, liability domain.LiabilityType) (*domain.LoaderOrder, error) {
	if _, err := domain.ParseLiabilityType(string(liability)); err != nil {
		return nil, err
	}
	return s.transition(ctx, orderID, actorID, func(ctx context.Context, o *domain.LoaderOrder, party domain.Party, now time.Time) (domain.Event, error) {
		if o.LiabilityLockedAt != nil {
			return "", fmt.Errorf("liability of order %d is locked: %w", o.ID, domain.ErrImmutableState)
		}
		if _, err := o.Status.Next(domain.EventConfirmLiability); err != nil {
			return "", err
		}

		if o.LiabilityType == nil || *o.LiabilityType != liability {
			o.LiabilityType = &liability
			o.LoaderLiabilityConfirmed = false
			o.ReceiverLiabilityConfirmed = false
		}
		if party == domain.PartyLoader {
			o.LoaderLiabilityConfirmed = true
		} else {
			o.ReceiverLiabilityConfirmed = true
		}
		if !o.LoaderLiabilityConfirmed || !o.ReceiverLiabilityConfirmed {
			return domain.EventConfirmLiability, nil
		}

		to, err := o.Status.Next(domain.EventLockLiability)
		if err != nil {
			return "", err
		}
		o.Status = to
		o.LiabilityLockedAt = &now
		o.LiabilityDeadline = liability.Deadline(now)
		o.Countdown(now)
		return domain.EventLockLiability, nil
	})
}

// SendPaymentDetails is the loader telling the receiver where to pay.
func (s *Service) SendPaymentDetails(ctx context.Context, orderID, actorID int, method, details string) (*domain.LoaderOrder, error) {
	method = strings.TrimSpace(method)
	details = strings.TrimSpace(details)
	return s.transition(ctx, orderID, actorID, func(ctx context.Context, o *domain.LoaderOrder, party domain.Party, now time.Time) (domain.Event, error) {
		if party != domain.PartyLoader {
			return "", fmt.Errorf("only the loader sends payment details: %w", domain.ErrForbidden)
		}
		to, err := o.Status.Next(domain.EventSendPaymentDetails)
		if err != nil {
			return "", err
		}

		ad, err := s.ads.GetByID(ctx, o.AdID)
		if err != nil {
			return "", err
		}
		if ad == nil {
			return "", fmt.Errorf("ad %d: %w", o.AdID, domain.ErrNotFound)
		}
		if !ad.AcceptsMethod(method) {
			return "", fmt.Errorf("payment method %q is not offered by ad %d: %w", method, ad.ID, domain.ErrValidation)
		}
		if err := validate.PaymentDetails(method, details); err != nil {
			return "", fmt.Errorf("%s: %w", err, domain.ErrValidation)
		}

		o.Status = to
		o.PaymentMethod = method
		o.PaymentDetails = details
		o.LoaderSentPaymentDetails = true
		o.Countdown(now)
		return domain.EventSendPaymentDetails, nil
	})
}

// MarkPaymentSent records that the money is on its way. Either party may
// report it; the countdown stops because only the loader's confirmation or a
// dispute can end the order from here.
func (s *Service) MarkPaymentSent(ctx context.Context, orderID, actorID int) (*domain.LoaderOrder, error) {
	return s.transition(ctx, orderID, actorID, func(ctx context.Context, o *domain.LoaderOrder, party domain.Party, now time.Time) (domain.Event, error) {
		to, err := o.Status.Next(domain.EventMarkPaymentSent)
		if err != nil {
			return "", err
		}
		if party == domain.PartyReceiver {
			o.ReceiverConfirmedPayment = true
		} else {
			o.LoaderMarkedPaymentSent = true
		}
		o.Status = to
		o.CountdownStopped = true
		return domain.EventMarkPaymentSent, nil
	})
}

// ConfirmPaymentReceipt completes the order: collateral goes back and fees are kept.
func (s *Service) ConfirmPaymentReceipt(ctx context.Context, orderID, actorID int) (*domain.LoaderOrder, error) {
	return s.transition(ctx, orderID, actorID, func(ctx context.Context, o *domain.LoaderOrder, party domain.Party, now time.Time) (domain.Event, error) {
		if party != domain.PartyLoader {
			return "", fmt.Errorf("only the loader confirms receipt: %w", domain.ErrForbidden)
		}
		to, err := o.Status.Next(domain.EventConfirmReceipt)
		if err != nil {
			return "", err
		}
		if err := s.settle(ctx, o, domain.PlanCompletion(o)); err != nil {
			return "", err
		}
		o.Status = to
		o.LoaderConfirmedReceipt = true
		o.CountdownStopped = true
		o.CompletedAt = &now
		return domain.EventConfirmReceipt, nil
	})
}

// CancelOrder ends a live order at the actor's request; the actor pays the
// cancellation penalty to the counterparty.
func (s *Service) CancelOrder(ctx context.Context, orderID, actorID int, reason string) (*domain.LoaderOrder, error) {
	reason = strings.TrimSpace(reason)
	if utf8.RuneCountInString(reason) > maxReasonLength {
		return nil, fmt.Errorf("cancel reason longer than %d characters: %w", maxReasonLength, domain.ErrValidation)
	}
	return s.transition(ctx, orderID, actorID, func(ctx context.Context, o *domain.LoaderOrder, party domain.Party, now time.Time) (domain.Event, error) {
		to, err := o.Status.CancelTarget(party)
		if err != nil {
			return "", err
		}
		moves, penalty := domain.PlanManualCancel(o, actorID)
		if err := s.settle(ctx, o, moves); err != nil {
			return "", err
		}

		canceller := actorID
		o.Status = to
		o.CancelledBy = &canceller
		o.CancelReason = reason
		o.PenaltyAmount = penalty
		if penalty.IsPositive() {
			o.PenaltyPaidBy = &canceller
		}
		o.CountdownStopped = true
		return domain.EventManualCancel, nil
	})
}

// OpenDispute escalates a live order to the administrators and freezes its countdown.
func (s *Service) OpenDispute(ctx context.Context, orderID, actorID int, reason string, evidence []string) (*domain.LoaderOrder, *domain.LoaderDispute, error) {
	reason = strings.TrimSpace(reason)
	switch {
	case reason == "":
		return nil, nil, fmt.Errorf("dispute reason is required: %w", domain.ErrValidation)
	case utf8.RuneCountInString(reason) > maxReasonLength:
		return nil, nil, fmt.Errorf("dispute reason longer than %d characters: %w", maxReasonLength, domain.ErrValidation)
	}
	urls, err := evidenceURLs(evidence)
	if err != nil {
		return nil, nil, err
	}

	var dispute *domain.LoaderDispute
	order, err := s.transition(ctx, orderID, actorID, func(ctx context.Context, o *domain.LoaderOrder, party domain.Party, now time.Time) (domain.Event, error) {
		to, err := o.Status.Next(domain.EventOpenDispute)
		if err != nil {
			return "", err
		}
		o.Status = to
		o.CountdownStopped = true

		dispute, err = s.disputes.Create(ctx, &domain.LoaderDispute{
			OrderID:      o.ID,
			OpenedBy:     actorID,
			Reason:       reason,
			EvidenceURLs: urls,
			Status:       domain.DisputeOpen,
		})
		if err != nil {
			return "", err
		}
		return domain.EventOpenDispute, nil
	})
	if err != nil {
		return nil, nil, err
	}
	return order, dispute, nil
}

// ExpireOrder auto-cancels an order whose countdown lapsed. It reports false
// when there was nothing to do, which makes repeated sweeps harmless. A row
// locked by a concurrent action fails fast with lock_not_available.
func (s *Service) ExpireOrder(ctx context.Context, orderID int) (bool, error) {
	var expired *domain.LoaderOrder
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		o, err := s.repo.GetForUpdateNoWait(ctx, orderID)
		if err != nil {
			return err
		}
		if o == nil || !o.Expired(s.now()) {
			return nil
		}
		from := o.Status
		to, err := from.Next(domain.EventCountdownExpired)
		if err != nil {
			return err
		}
		if err := s.settle(ctx, o, domain.PlanAutoCancel(o)); err != nil {
			return err
		}
		o.Status = to
		o.CountdownStopped = true
		if err := s.record(ctx, o, from, domain.EventCountdownExpired, nil); err != nil {
			return err
		}
		expired = o
		return nil
	})
	if err != nil {
		return false, err
	}
	if expired == nil {
		return false, nil
	}
	s.notify(ctx, notices(expired, domain.EventCountdownExpired, 0))
	return true, nil
}

// ExpiredOrders lists orders the countdown sweep should look at.
func (s *Service) ExpiredOrders(ctx context.Context, limit uint32) ([]int, error) {
	return s.repo.FindExpired(ctx, s.now(), limit)
}

// Resolve settles a disputed order on an administrator's decision. It joins
// the caller's transaction and leaves notifications to the caller.
func (s *Service) Resolve(ctx context.Context, orderID int, outcome domain.DisputeOutcome, loaderShare decimal.Decimal, adminID int) (*domain.LoaderOrder, error) {
	var order *domain.LoaderOrder
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		o, err := s.repo.GetForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		if o == nil {
			return fmt.Errorf("order %d: %w", orderID, domain.ErrNotFound)
		}
		from := o.Status
		to, err := from.ResolveTarget(outcome)
		if err != nil {
			return err
		}
		moves, err := domain.PlanResolution(o, outcome, loaderShare)
		if err != nil {
			return err
		}
		if err := s.settle(ctx, o, moves); err != nil {
			return err
		}
		o.Status = to
		o.CountdownStopped = true
		if err := s.record(ctx, o, from, domain.EventAdminResolve, &adminID); err != nil {
			return err
		}
		order = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// GetOrder is visible to both parties and to administrators.
func (s *Service) GetOrder(ctx context.Context, orderID int, actor domain.Actor) (*domain.LoaderOrder, error) {
	o, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, fmt.Errorf("order %d: %w", orderID, domain.ErrNotFound)
	}
	if _, ok := o.Party(actor.ID); !ok && !actor.IsAdmin() {
		return nil, fmt.Errorf("order %d: %w", orderID, domain.ErrForbidden)
	}
	return o, nil
}

func (s *Service) ListOrders(ctx context.Context, userID int) ([]domain.LoaderOrder, error) {
	orders, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		zap.L().Error("failed to list orders", zap.Error(err))
		return nil, err
	}
	return orders, nil
}

func (s *Service) ListEvents(ctx context.Context, orderID int, actor domain.Actor) ([]domain.OrderEvent, error) {
	if _, err := s.GetOrder(ctx, orderID, actor); err != nil {
		return nil, err
	}
	events, err := s.events.ListByOrder(ctx, orderID)
	if err != nil {
		zap.L().Error("failed to list order events", zap.Error(err))
		return nil, err
	}
	return events, nil
}

func (s *Service) transition(ctx context.Context, orderID, actorID int, fn step) (*domain.LoaderOrder, error) {
	var (
		order *domain.LoaderOrder
		event domain.Event
	)
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		o, err := s.repo.GetForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		if o == nil {
			return fmt.Errorf("order %d: %w", orderID, domain.ErrNotFound)
		}
		party, ok := o.Party(actorID)
		if !ok {
			return fmt.Errorf("user %d is not a party to order %d: %w", actorID, orderID, domain.ErrForbidden)
		}

		from := o.Status
		event, err = fn(ctx, o, party, s.now())
		if err != nil {
			return err
		}
		if err := s.record(ctx, o, from, event, &actorID); err != nil {
			return err
		}
		order = o
		return nil
	})
	if pg.IsDeadlock(err) {
		return nil, fmt.Errorf("order %d changed concurrently: %w", orderID, domain.ErrStaleState)
	}
	if err != nil {
		return nil, err
	}
	s.notify(ctx, notices(order, event, actorID))
	return order, nil
}

// record persists the order and appends the transition to its audit trail.
func (s *Service) record(ctx context.Context, o *domain.LoaderOrder, from domain.OrderStatus, event domain.Event, actorID *int) error {
	if err := s.repo.Update(ctx, o); err != nil {
		return err
	}
	err := s.events.Create(ctx, &domain.OrderEvent{
		OrderID:    o.ID,
		FromStatus: from,
		ToStatus:   o.Status,
		Event:      event,
		ActorID:    actorID,
	})
	if err != nil {
		return err
	}

	fields := []zap.Field{
		zap.Int("order_id", o.ID),
		zap.String("event", string(event)),
		zap.String("from", string(from)),
		zap.String("to", string(o.Status)),
	}
	if actorID != nil {
		fields = append(fields, zap.Int("actor_id", *actorID))
	}
	zap.L().Info("order transition", fields...)
	return nil
}

// settle applies the ledger moves of a terminal transition. Both party
// wallets are locked up front in user id order.
func (s *Service) settle(ctx context.Context, o *domain.LoaderOrder, moves []domain.Move) error {
	if len(moves) == 0 {
		return nil
	}
	if err := s.ledger.LockWallets(ctx, o.AssetType, []int{o.LoaderID, o.ReceiverID}); err != nil {
		return err
	}
	ref := domain.OrderRef(o.ID)
	for _, m := range moves {
		var err error
		switch m.Kind {
		case domain.MoveRelease:
			err = s.ledger.Release(ctx, m.From, o.AssetType, m.Amount, ref)
		case domain.MoveSettleFee:
			err = s.ledger.SettleFee(ctx, m.From, o.AssetType, m.Amount, ref)
			if m.From == o.LoaderID {
				o.LoaderFeeDeducted = true
			} else {
				o.ReceiverFeeDeducted = true
			}
		case domain.MoveTransfer:
			err = s.ledger.Transfer(ctx, m.From, m.To, o.AssetType, m.Amount, ref)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) notify(ctx context.Context, list []domain.Notification) {
	for _, n := range list {
		s.notifier.Notify(ctx, n)
	}
}

func evidenceURLs(evidence []string) ([]string, error) {
	if len(evidence) > maxEvidenceURLs {
		return nil, fmt.Errorf("at most %d evidence links: %w", maxEvidenceURLs, domain.ErrValidation)
	}
	urls := make([]string, 0, len(evidence))
	for _, raw := range evidence {
		raw = strings.TrimSpace(raw)
		u, err := url.ParseRequestURI(raw)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return nil, fmt.Errorf("evidence link %q is not an http(s) URL: %w", raw, domain.ErrValidation)
		}
		urls = append(urls, raw)
	}
	return urls, nil
}
