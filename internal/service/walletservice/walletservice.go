package walletservice

//go:generate mockgen -source=walletservice.go -destination=mock_walletservice.go -package=walletservice

import (
	"context"
	"fmt"
	"sort"

	"github.com/GlebRadaev/loadermarket/internal/domain"
	"github.com/GlebRadaev/loadermarket/internal/pg"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type WalletRepo interface {
	Create(ctx context.Context, userID int, currency string) error
	GetForUpdate(ctx context.Context, userID int, currency string) (*domain.Wallet, error)
	Update(ctx context.Context, wallet *domain.Wallet) error
	ListByUser(ctx context.Context, userID int) ([]domain.Wallet, error)
}

type LedgerRepo interface {
	CreateEntry(ctx context.Context, entry *domain.LedgerEntry) error
	ListByUser(ctx context.Context, userID, limit int) ([]domain.LedgerEntry, error)
	AddRevenue(ctx context.Context, currency string, amount decimal.Decimal) error
}

// Service is the wallet ledger. Every balance change in the system goes
// through Freeze, Release, SettleFee, Transfer or Deposit, each of which
// locks the affected wallet rows for the rest of the transaction.
type Service struct {
	walletRepo WalletRepo
	ledgerRepo LedgerRepo
	txManager  pg.TXManager
}

func New(walletRepo WalletRepo, ledgerRepo LedgerRepo, txManager pg.TXManager) *Service {
	return &Service{
		walletRepo: walletRepo,
		ledgerRepo: ledgerRepo,
		txManager:  txManager,
	}
}

const defaultEntriesLimit = 100

func (s *Service) CreateWallet(ctx context.Context, userID int, currency string) error {
	if err := s.walletRepo.Create(ctx, userID, currency); err != nil {
		zap.L().Error("failed to create wallet", zap.Int("user_id", userID), zap.Error(err))
		return err
	}
	return nil
}

func (s *Service) GetWallets(ctx context.Context, userID int) ([]domain.Wallet, error) {
	wallets, err := s.walletRepo.ListByUser(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get wallets", zap.Error(err))
		return nil, err
	}
	return wallets, nil
}

func (s *Service) ListEntries(ctx context.Context, userID, limit int) ([]domain.LedgerEntry, error) {
	if limit <= 0 || limit > defaultEntriesLimit {
		limit = defaultEntriesLimit
	}
	entries, err := s.ledgerRepo.ListByUser(ctx, userID, limit)
	if err != nil {
		zap.L().Error("failed to fetch ledger entries", zap.Error(err))
		return nil, err
	}
	return entries, nil
}

// Deposit credits funds from outside the platform. Only administrators may fund wallets.
func (s *Service) Deposit(ctx context.Context, actor domain.Actor, userID int, currency string, amount decimal.Decimal) (*domain.Wallet, error) {
	if !actor.IsAdmin() {
		return nil, fmt.Errorf("deposit by user %d: %w", actor.ID, domain.ErrForbidden)
	}
	if err := checkAmount(amount); err != nil {
		return nil, err
	}
	if currency == "" {
		return nil, fmt.Errorf("currency is required: %w", domain.ErrValidation)
	}

	var wallet *domain.Wallet
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.walletRepo.Create(ctx, userID, currency); err != nil {
			return err
		}
		w, err := s.lock(ctx, userID, currency)
		if err != nil {
			return err
		}
		if w == nil {
			return fmt.Errorf("wallet of user %d in %s: %w", userID, currency, domain.ErrNotFound)
		}
		w.AvailableBalance = w.AvailableBalance.Add(amount)
		if err := s.save(ctx, w, domain.EntryDeposit, amount, domain.LedgerRef{}); err != nil {
			return err
		}
		wallet = w
		return nil
	})
	if err != nil {
		return nil, err
	}
	zap.L().Info("wallet funded", zap.Int("user_id", userID), zap.String("currency", currency), zap.String("amount", amount.String()))
	return wallet, nil
}

// Freeze moves amount from available to escrow.
func (s *Service) Freeze(ctx context.Context, userID int, currency string, amount decimal.Decimal, ref domain.LedgerRef) error {
	if err := checkAmount(amount); err != nil {
		return err
	}
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		w, err := s.lock(ctx, userID, currency)
		if err != nil {
			return err
		}
		if w == nil || w.AvailableBalance.LessThan(amount) {
			return fmt.Errorf("freeze %s %s for user %d: %w", amount, currency, userID, domain.ErrInsufficientFunds)
		}
		w.AvailableBalance = w.AvailableBalance.Sub(amount)
		w.EscrowBalance = w.EscrowBalance.Add(amount)
		return s.save(ctx, w, domain.EntryFreeze, amount, ref)
	})
}

// Release returns escrowed funds to available.
func (s *Service) Release(ctx context.Context, userID int, currency string, amount decimal.Decimal, ref domain.LedgerRef) error {
	if err := checkAmount(amount); err != nil {
		return err
	}
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		w, err := s.lockEscrow(ctx, userID, currency, amount)
		if err != nil {
			return err
		}
		w.EscrowBalance = w.EscrowBalance.Sub(amount)
		w.AvailableBalance = w.AvailableBalance.Add(amount)
		return s.save(ctx, w, domain.EntryRelease, amount, ref)
	})
}

// SettleFee removes escrowed funds for good and books them as platform revenue.
func (s *Service) SettleFee(ctx context.Context, userID int, currency string, amount decimal.Decimal, ref domain.LedgerRef) error {
	if err := checkAmount(amount); err != nil {
		return err
	}
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		w, err := s.lockEscrow(ctx, userID, currency, amount)
		if err != nil {
			return err
		}
		w.EscrowBalance = w.EscrowBalance.Sub(amount)
		if err := s.save(ctx, w, domain.EntryFee, amount, ref); err != nil {
			return err
		}
		if err := s.ledgerRepo.AddRevenue(ctx, currency, amount); err != nil {
			zap.L().Error("failed to book platform fee", zap.Error(err))
			return err
		}
		return nil
	})
}

// Transfer debits the sender's escrow and credits the recipient's available balance.
func (s *Service) Transfer(ctx context.Context, fromUserID, toUserID int, currency string, amount decimal.Decimal, ref domain.LedgerRef) error {
	if err := checkAmount(amount); err != nil {
		return err
	}
	if fromUserID == toUserID {
		return fmt.Errorf("transfer to self: %w", domain.ErrValidation)
	}
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.walletRepo.Create(ctx, toUserID, currency); err != nil {
			return err
		}

		// Lock in id order so two opposite transfers cannot deadlock.
		var from, to *domain.Wallet
		var err error
		if fromUserID < toUserID {
			if from, err = s.lockEscrow(ctx, fromUserID, currency, amount); err != nil {
				return err
			}
			if to, err = s.lock(ctx, toUserID, currency); err != nil {
				return err
			}
		} else {
			if to, err = s.lock(ctx, toUserID, currency); err != nil {
				return err
			}
			if from, err = s.lockEscrow(ctx, fromUserID, currency, amount); err != nil {
				return err
			}
		}
		if to == nil {
			return fmt.Errorf("wallet of user %d in %s: %w", toUserID, currency, domain.ErrNotFound)
		}

		from.EscrowBalance = from.EscrowBalance.Sub(amount)
		if err := s.save(ctx, from, domain.EntryTransferOut, amount, ref); err != nil {
			return err
		}
		to.AvailableBalance = to.AvailableBalance.Add(amount)
		return s.save(ctx, to, domain.EntryTransferIn, amount, ref)
	})
}

// LockWallets locks the wallets of userIDs in ascending id order, opening any
// that are missing. Called before a multi-wallet settlement, it fixes the lock
// order for the rest of the transaction so concurrent settlements between the
// same users cannot deadlock.
func (s *Service) LockWallets(ctx context.Context, currency string, userIDs []int) error {
	ids := append([]int(nil), userIDs...)
	sort.Ints(ids)
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		for i, id := range ids {
			if i > 0 && ids[i-1] == id {
				continue
			}
			if err := s.walletRepo.Create(ctx, id, currency); err != nil {
				return err
			}
			if _, err := s.lock(ctx, id, currency); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *Service) lock(ctx context.Context, userID int, currency string) (*domain.Wallet, error) {
	w, err := s.walletRepo.GetForUpdate(ctx, userID, currency)
	if err != nil {
		zap.L().Error("failed to lock wallet", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	return w, nil
}

func (s *Service) lockEscrow(ctx context.Context, userID int, currency string, amount decimal.Decimal) (*domain.Wallet, error) {
	w, err := s.lock(ctx, userID, currency)
	if err != nil {
		return nil, err
	}
	if w == nil || w.EscrowBalance.LessThan(amount) {
		return nil, fmt.Errorf("escrow of user %d below %s %s: %w", userID, amount, currency, domain.ErrInvalidState)
	}
	return w, nil
}

// save persists w and journals the change. A negative balance here means the
// ledger is corrupt and the transaction must not commit.
func (s *Service) save(ctx context.Context, w *domain.Wallet, kind domain.EntryKind, amount decimal.Decimal, ref domain.LedgerRef) error {
	if w.AvailableBalance.IsNegative() || w.EscrowBalance.IsNegative() {
		zap.L().Error("ledger integrity fault",
			zap.Int("wallet_id", w.ID),
			zap.String("available", w.AvailableBalance.String()),
			zap.String("escrow", w.EscrowBalance.String()),
		)
		return fmt.Errorf("wallet %d: %w", w.ID, domain.ErrIntegrity)
	}
	if err := s.walletRepo.Update(ctx, w); err != nil {
		if pg.IsCheckViolation(err) {
			zap.L().Error("ledger integrity fault", zap.Int("wallet_id", w.ID), zap.Error(err))
			return fmt.Errorf("wallet %d: %w", w.ID, domain.ErrIntegrity)
		}
		return err
	}
	entry := &domain.LedgerEntry{
		UserID:   w.UserID,
		Currency: w.Currency,
		Kind:     kind,
		Amount:   amount,
		AdID:     ref.AdID,
		OrderID:  ref.OrderID,
	}
	return s.ledgerRepo.CreateEntry(ctx, entry)
}

func checkAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("amount %s must be positive: %w", amount, domain.ErrValidation)
	}
	if amount.Exponent() < -domain.Precision && !amount.Equal(amount.Round(domain.Precision)) {
		return fmt.Errorf("amount %s has more than %d decimals: %w", amount, domain.Precision, domain.ErrValidation)
	}
	return nil
}
