package adservice

//go:generate mockgen -source=adservice.go -destination=mock_adservice.go -package=adservice

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/GlebRadaev/loadermarket/internal/domain"
	"github.com/GlebRadaev/loadermarket/internal/pg"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Repo interface {
	Create(ctx context.Context, ad *domain.LoaderAd) (*domain.LoaderAd, error)
	GetByID(ctx context.Context, id int) (*domain.LoaderAd, error)
	GetForUpdate(ctx context.Context, id int) (*domain.LoaderAd, error)
	Deactivate(ctx context.Context, id int) error
	ListActive(ctx context.Context, assetType string) ([]domain.LoaderAd, error)
}

type Ledger interface {
	Freeze(ctx context.Context, userID int, currency string, amount decimal.Decimal, ref domain.LedgerRef) error
	Release(ctx context.Context, userID int, currency string, amount decimal.Decimal, ref domain.LedgerRef) error
}

type Orders interface {
	Open(ctx context.Context, order *domain.LoaderOrder) (*domain.LoaderOrder, error)
}

type Notifier interface {
	Notify(ctx context.Context, n domain.Notification)
}

type Service struct {
	repo      Repo
	ledger    Ledger
	orders    Orders
	notifier  Notifier
	txManager pg.TXManager
}

func New(repo Repo, ledger Ledger, orders Orders, notifier Notifier, txManager pg.TXManager) *Service {
	return &Service{
		repo:      repo,
		ledger:    ledger,
		orders:    orders,
		notifier:  notifier,
		txManager: txManager,
	}
}

// PostAd freezes collateral plus fee from the loader's wallet and publishes the ad.
func (s *Service) PostAd(ctx context.Context, controls domain.PlatformControls, loaderID int, draft domain.AdDraft) (*domain.LoaderAd, error) {
	if controls.EmergencyMode {
		return nil, domain.ErrPlatformFrozen
	}
	if draft.AssetType == "" {
		draft.AssetType = controls.DefaultCurrency
	}
	methods, err := validateDraft(controls, &draft)
	if err != nil {
		return nil, err
	}

	ad := &domain.LoaderAd{
		LoaderID:          loaderID,
		AssetType:         draft.AssetType,
		DealAmount:        draft.DealAmount,
		LoadingTerms:      draft.LoadingTerms,
		UpfrontPercentage: draft.UpfrontPercentage,
		CountdownTime:     draft.CountdownTime,
		PaymentMethods:    methods,
		FrozenCommitment:  domain.Collateral(draft.DealAmount),
		LoaderFeeReserve:  domain.PlatformFee(draft.DealAmount),
	}

	var created *domain.LoaderAd
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.repo.Create(ctx, ad)
		if err != nil {
			return err
		}
		return s.ledger.Freeze(ctx, loaderID, created.AssetType, created.Held(), domain.AdRef(created.ID))
	})
	if err != nil {
		zap.L().Info("ad not posted", zap.Int("loader_id", loaderID), zap.Error(err))
		return nil, err
	}
	zap.L().Info("ad posted",
		zap.Int("ad_id", created.ID),
		zap.Int("loader_id", loaderID),
		zap.String("deal_amount", created.DealAmount.String()),
	)
	return created, nil
}

// CancelAd withdraws an unaccepted ad and returns its escrow to the loader.
func (s *Service) CancelAd(ctx context.Context, adID, requesterID int) (*domain.LoaderAd, error) {
	var ad *domain.LoaderAd
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		ad, err = s.repo.GetForUpdate(ctx, adID)
		if err != nil {
			return err
		}
		if ad == nil {
			return fmt.Errorf("ad %d: %w", adID, domain.ErrNotFound)
		}
		if ad.LoaderID != requesterID {
			return fmt.Errorf("ad %d belongs to another loader: %w", adID, domain.ErrForbidden)
		}
		if !ad.IsActive {
			return fmt.Errorf("ad %d: %w", adID, domain.ErrAlreadyInactive)
		}
		if err := s.ledger.Release(ctx, ad.LoaderID, ad.AssetType, ad.Held(), domain.AdRef(ad.ID)); err != nil {
			return err
		}
		if err := s.repo.Deactivate(ctx, ad.ID); err != nil {
			return err
		}
		ad.IsActive = false
		return nil
	})
	if err != nil {
		return nil, err
	}
	zap.L().Info("ad cancelled", zap.Int("ad_id", adID))
	return ad, nil
}

// AcceptAd hands the ad over to a receiver: the ad is closed, the receiver's
// upfront share and fee reserve are frozen and the order starts negotiating.
func (s *Service) AcceptAd(ctx context.Context, controls domain.PlatformControls, adID, receiverID int) (*domain.LoaderOrder, error) {
	if controls.EmergencyMode {
		return nil, domain.ErrPlatformFrozen
	}

	var (
		ad    *domain.LoaderAd
		order *domain.LoaderOrder
	)
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		ad, err = s.repo.GetForUpdate(ctx, adID)
		if err != nil {
			return err
		}
		if ad == nil {
			return fmt.Errorf("ad %d: %w", adID, domain.ErrNotFound)
		}
		if !ad.IsActive {
			return fmt.Errorf("ad %d: %w", adID, domain.ErrAlreadyAccepted)
		}
		if ad.LoaderID == receiverID {
			return fmt.Errorf("ad %d: %w", adID, domain.ErrSelfAcceptance)
		}
		if err := s.repo.Deactivate(ctx, ad.ID); err != nil {
			return err
		}

		order, err = s.orders.Open(ctx, &domain.LoaderOrder{
			AdID:                 ad.ID,
			LoaderID:             ad.LoaderID,
			ReceiverID:           receiverID,
			AssetType:            ad.AssetType,
			DealAmount:           ad.DealAmount,
			LoaderFrozenAmount:   ad.FrozenCommitment,
			LoaderFeeReserve:     ad.LoaderFeeReserve,
			ReceiverFrozenAmount: domain.Upfront(ad.DealAmount, ad.UpfrontPercentage),
			ReceiverFeeReserve:   ad.DealAmount.Mul(controls.ReceiverFeeRate).Round(domain.Precision),
			Status:               domain.OrderCreated,
			CountdownTime:        ad.CountdownTime,
		})
		if err != nil {
			return err
		}
		if held := order.ReceiverHeld(); held.IsPositive() {
			return s.ledger.Freeze(ctx, receiverID, order.AssetType, held, domain.OrderRef(order.ID))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("ad accepted", zap.Int("ad_id", adID), zap.Int("order_id", order.ID), zap.Int("receiver_id", receiverID))
	s.notifier.Notify(ctx, domain.Notification{
		UserID:  order.LoaderID,
		Type:    domain.NotifyAdAccepted,
		Title:   "Ad accepted",
		Message: fmt.Sprintf("Your ad #%d was accepted, order #%d is waiting for liability terms", ad.ID, order.ID),
		Link:    fmt.Sprintf("/orders/%d", order.ID),
	})
	return order, nil
}

func (s *Service) GetAd(ctx context.Context, adID int) (*domain.LoaderAd, error) {
	ad, err := s.repo.GetByID(ctx, adID)
	if err != nil {
		return nil, err
	}
	if ad == nil {
		return nil, fmt.Errorf("ad %d: %w", adID, domain.ErrNotFound)
	}
	return ad, nil
}

func (s *Service) ListAds(ctx context.Context, assetType string) ([]domain.LoaderAd, error) {
	ads, err := s.repo.ListActive(ctx, assetType)
	if err != nil {
		zap.L().Error("failed to list ads", zap.Error(err))
		return nil, err
	}
	return ads, nil
}

// validateDraft checks the ad input and returns its payment methods trimmed and deduplicated.
func validateDraft(controls domain.PlatformControls, draft *domain.AdDraft) ([]string, error) {
	switch {
	case draft.DealAmount.LessThan(domain.MinDealAmount):
		return nil, fmt.Errorf("deal amount must be at least %s: %w", domain.MinDealAmount, domain.ErrValidation)
	case !draft.DealAmount.Equal(draft.DealAmount.Round(domain.Precision)):
		return nil, fmt.Errorf("deal amount has more than %d decimals: %w", domain.Precision, domain.ErrValidation)
	case !controls.AllowsDeal(draft.DealAmount):
		return nil, fmt.Errorf("deal amount above platform cap %s: %w", controls.MaxDealAmount, domain.ErrValidation)
	case draft.UpfrontPercentage < domain.MinUpfrontPercentage || draft.UpfrontPercentage > domain.MaxUpfrontPercentage:
		return nil, fmt.Errorf("upfront percentage must be within [%d,%d]: %w",
			domain.MinUpfrontPercentage, domain.MaxUpfrontPercentage, domain.ErrValidation)
	case utf8.RuneCountInString(draft.LoadingTerms) > domain.MaxLoadingTerms:
		return nil, fmt.Errorf("loading terms longer than %d characters: %w", domain.MaxLoadingTerms, domain.ErrValidation)
	}
	if _, err := domain.ParseCountdownTime(string(draft.CountdownTime)); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(draft.PaymentMethods))
	methods := make([]string, 0, len(draft.PaymentMethods))
	for _, m := range draft.PaymentMethods {
		m = strings.TrimSpace(m)
		if m == "" {
			continue
		}
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		methods = append(methods, m)
	}
	if len(methods) == 0 {
		return nil, fmt.Errorf("at least one payment method is required: %w", domain.ErrValidation)
	}
	return methods, nil
}
