package walletservice

import (
	"context"
	"errors"
	"testing"

	"github.com/GlebRadaev/loadermarket/internal/domain"
	"github.com/GlebRadaev/loadermarket/internal/pg"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockWalletRepo, *MockLedgerRepo) {
	ctrl := gomock.NewController(t)
	walletRepo := NewMockWalletRepo(ctrl)
	ledgerRepo := NewMockLedgerRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	}).AnyTimes()

	service := New(walletRepo, ledgerRepo, txManager)
	defer ctrl.Finish()
	return service, walletRepo, ledgerRepo
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decEq(s string) gomock.Matcher {
	want := dec(s)
	return gomock.Cond(func(x decimal.Decimal) bool { return x.Equal(want) })
}

// walletEq matches a wallet by its balances after the operation.
func walletEq(available, escrow string) gomock.Matcher {
	return gomock.Cond(func(w *domain.Wallet) bool {
		return w.AvailableBalance.Equal(dec(available)) && w.EscrowBalance.Equal(dec(escrow))
	})
}

func entryEq(userID int, kind domain.EntryKind, amount string) gomock.Matcher {
	return gomock.Cond(func(e *domain.LedgerEntry) bool {
		return e.UserID == userID && e.Kind == kind && e.Amount.Equal(dec(amount))
	})
}

func wallet(userID int, available, escrow string) *domain.Wallet {
	return &domain.Wallet{
		ID:               userID * 10,
		UserID:           userID,
		Currency:         "USDT",
		AvailableBalance: dec(available),
		EscrowBalance:    dec(escrow),
	}
}

func TestFreeze(t *testing.T) {
	service, walletRepo, ledgerRepo := NewMock(t)
	ref := domain.AdRef(5)

	tests := []struct {
		name          string
		amount        string
		prepareMock   func()
		expectedError error
	}{
		{
			name:   "Post ad example leaves nothing available",
			amount: "130",
			prepareMock: func() {
				walletRepo.EXPECT().GetForUpdate(gomock.Any(), 1, "USDT").Return(wallet(1, "130", "0"), nil)
				walletRepo.EXPECT().Update(gomock.Any(), walletEq("0", "130")).Return(nil)
				ledgerRepo.EXPECT().CreateEntry(gomock.Any(), entryEq(1, domain.EntryFreeze, "130")).Return(nil)
			},
		},
		{
			name:   "Insufficient funds",
			amount: "130",
			prepareMock: func() {
				walletRepo.EXPECT().GetForUpdate(gomock.Any(), 1, "USDT").Return(wallet(1, "129.99999999", "0"), nil)
			},
			expectedError: domain.ErrInsufficientFunds,
		},
		{
			name:   "No wallet in currency",
			amount: "1",
			prepareMock: func() {
				walletRepo.EXPECT().GetForUpdate(gomock.Any(), 1, "USDT").Return(nil, nil)
			},
			expectedError: domain.ErrInsufficientFunds,
		},
		{
			name:          "Zero amount",
			amount:        "0",
			prepareMock:   func() {},
			expectedError: domain.ErrValidation,
		},
		{
			name:   "Check violation is an integrity fault",
			amount: "10",
			prepareMock: func() {
				walletRepo.EXPECT().GetForUpdate(gomock.Any(), 1, "USDT").Return(wallet(1, "10", "0"), nil)
				walletRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(&pgconn.PgError{Code: "23514"})
			},
			expectedError: domain.ErrIntegrity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			err := service.Freeze(context.Background(), 1, "USDT", dec(tt.amount), ref)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestRelease(t *testing.T) {
	service, walletRepo, ledgerRepo := NewMock(t)
	ref := domain.AdRef(5)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Cancel ad restores balance",
			prepareMock: func() {
				walletRepo.EXPECT().GetForUpdate(gomock.Any(), 1, "USDT").Return(wallet(1, "0", "130"), nil)
				walletRepo.EXPECT().Update(gomock.Any(), walletEq("130", "0")).Return(nil)
				ledgerRepo.EXPECT().CreateEntry(gomock.Any(), entryEq(1, domain.EntryRelease, "130")).Return(nil)
			},
		},
		{
			name: "Escrow too small",
			prepareMock: func() {
				walletRepo.EXPECT().GetForUpdate(gomock.Any(), 1, "USDT").Return(wallet(1, "0", "100"), nil)
			},
			expectedError: domain.ErrInvalidState,
		},
		{
			name: "Lock fails",
			prepareMock: func() {
				walletRepo.EXPECT().GetForUpdate(gomock.Any(), 1, "USDT").Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			err := service.Release(context.Background(), 1, "USDT", dec("130"), ref)
			switch {
			case tt.expectedError == nil:
				assert.NoError(t, err)
			case errors.Is(tt.expectedError, domain.ErrInvalidState):
				assert.ErrorIs(t, err, domain.ErrInvalidState)
			default:
				assert.EqualError(t, err, tt.expectedError.Error())
			}
		})
	}
}

func TestSettleFee(t *testing.T) {
	service, walletRepo, ledgerRepo := NewMock(t)
	ref := domain.OrderRef(9)

	walletRepo.EXPECT().GetForUpdate(gomock.Any(), 1, "USDT").Return(wallet(1, "100", "30"), nil)
	walletRepo.EXPECT().Update(gomock.Any(), walletEq("100", "0")).Return(nil)
	ledgerRepo.EXPECT().CreateEntry(gomock.Any(), entryEq(1, domain.EntryFee, "30")).Return(nil)
	ledgerRepo.EXPECT().AddRevenue(gomock.Any(), "USDT", decEq("30")).Return(nil)
	assert.NoError(t, service.SettleFee(context.Background(), 1, "USDT", dec("30"), ref))

	walletRepo.EXPECT().GetForUpdate(gomock.Any(), 1, "USDT").Return(wallet(1, "100", "30"), nil)
	walletRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
	ledgerRepo.EXPECT().CreateEntry(gomock.Any(), gomock.Any()).Return(nil)
	ledgerRepo.EXPECT().AddRevenue(gomock.Any(), "USDT", gomock.Any()).Return(errors.New("db error"))
	assert.Error(t, service.SettleFee(context.Background(), 1, "USDT", dec("30"), ref))
}

func TestTransfer(t *testing.T) {
	service, walletRepo, ledgerRepo := NewMock(t)
	ref := domain.OrderRef(9)

	tests := []struct {
		name          string
		from, to      int
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Penalty to receiver",
			from: 1,
			to:   2,
			prepareMock: func() {
				gomock.InOrder(
					walletRepo.EXPECT().Create(gomock.Any(), 2, "USDT").Return(nil),
					walletRepo.EXPECT().GetForUpdate(gomock.Any(), 1, "USDT").Return(wallet(1, "0", "130"), nil),
					walletRepo.EXPECT().GetForUpdate(gomock.Any(), 2, "USDT").Return(wallet(2, "0", "100"), nil),
				)
				walletRepo.EXPECT().Update(gomock.Any(), walletEq("0", "80")).Return(nil)
				ledgerRepo.EXPECT().CreateEntry(gomock.Any(), entryEq(1, domain.EntryTransferOut, "50")).Return(nil)
				walletRepo.EXPECT().Update(gomock.Any(), walletEq("50", "100")).Return(nil)
				ledgerRepo.EXPECT().CreateEntry(gomock.Any(), entryEq(2, domain.EntryTransferIn, "50")).Return(nil)
			},
		},
		{
			name: "Higher id pays, wallets locked in id order",
			from: 2,
			to:   1,
			prepareMock: func() {
				gomock.InOrder(
					walletRepo.EXPECT().Create(gomock.Any(), 1, "USDT").Return(nil),
					walletRepo.EXPECT().GetForUpdate(gomock.Any(), 1, "USDT").Return(wallet(1, "0", "130"), nil),
					walletRepo.EXPECT().GetForUpdate(gomock.Any(), 2, "USDT").Return(wallet(2, "0", "100"), nil),
				)
				walletRepo.EXPECT().Update(gomock.Any(), walletEq("0", "50")).Return(nil)
				ledgerRepo.EXPECT().CreateEntry(gomock.Any(), entryEq(2, domain.EntryTransferOut, "50")).Return(nil)
				walletRepo.EXPECT().Update(gomock.Any(), walletEq("50", "130")).Return(nil)
				ledgerRepo.EXPECT().CreateEntry(gomock.Any(), entryEq(1, domain.EntryTransferIn, "50")).Return(nil)
			},
		},
		{
			name: "Sender escrow too small",
			from: 1,
			to:   2,
			prepareMock: func() {
				walletRepo.EXPECT().Create(gomock.Any(), 2, "USDT").Return(nil)
				walletRepo.EXPECT().GetForUpdate(gomock.Any(), 1, "USDT").Return(wallet(1, "0", "10"), nil)
			},
			expectedError: domain.ErrInvalidState,
		},
		{
			name:          "Self transfer",
			from:          1,
			to:            1,
			prepareMock:   func() {},
			expectedError: domain.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			err := service.Transfer(context.Background(), tt.from, tt.to, "USDT", dec("50"), ref)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestLockWallets(t *testing.T) {
	service, walletRepo, _ := NewMock(t)

	gomock.InOrder(
		walletRepo.EXPECT().Create(gomock.Any(), 2, "USDT").Return(nil),
		walletRepo.EXPECT().GetForUpdate(gomock.Any(), 2, "USDT").Return(wallet(2, "0", "0"), nil),
		walletRepo.EXPECT().Create(gomock.Any(), 5, "USDT").Return(nil),
		walletRepo.EXPECT().GetForUpdate(gomock.Any(), 5, "USDT").Return(wallet(5, "0", "130"), nil),
	)
	ids := []int{5, 2, 5}
	assert.NoError(t, service.LockWallets(context.Background(), "USDT", ids))
	assert.Equal(t, []int{5, 2, 5}, ids)

	walletRepo.EXPECT().Create(gomock.Any(), 1, "USDT").Return(nil)
	walletRepo.EXPECT().GetForUpdate(gomock.Any(), 1, "USDT").Return(nil, &pgconn.PgError{Code: "40P01"})
	err := service.LockWallets(context.Background(), "USDT", []int{3, 1})
	assert.True(t, pg.IsDeadlock(err))
}

func TestDeposit(t *testing.T) {
	service, walletRepo, ledgerRepo := NewMock(t)
	admin := domain.Actor{ID: 100, Role: domain.RoleAdmin}

	walletRepo.EXPECT().Create(gomock.Any(), 1, "USDT").Return(nil)
	walletRepo.EXPECT().GetForUpdate(gomock.Any(), 1, "USDT").Return(wallet(1, "10", "0"), nil)
	walletRepo.EXPECT().Update(gomock.Any(), walletEq("510", "0")).Return(nil)
	ledgerRepo.EXPECT().CreateEntry(gomock.Any(), entryEq(1, domain.EntryDeposit, "500")).Return(nil)

	w, err := service.Deposit(context.Background(), admin, 1, "USDT", dec("500"))
	assert.NoError(t, err)
	assert.True(t, w.AvailableBalance.Equal(dec("510")))

	_, err = service.Deposit(context.Background(), domain.Actor{ID: 1, Role: domain.RoleUser}, 1, "USDT", dec("500"))
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = service.Deposit(context.Background(), admin, 1, "USDT", dec("-5"))
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = service.Deposit(context.Background(), admin, 1, "USDT", dec("0.000000001"))
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReads(t *testing.T) {
	service, walletRepo, ledgerRepo := NewMock(t)

	walletRepo.EXPECT().ListByUser(gomock.Any(), 1).Return([]domain.Wallet{*wallet(1, "1", "2")}, nil)
	wallets, err := service.GetWallets(context.Background(), 1)
	assert.NoError(t, err)
	assert.Len(t, wallets, 1)

	walletRepo.EXPECT().ListByUser(gomock.Any(), 2).Return(nil, errors.New("db error"))
	_, err = service.GetWallets(context.Background(), 2)
	assert.Error(t, err)

	ledgerRepo.EXPECT().ListByUser(gomock.Any(), 1, defaultEntriesLimit).Return(nil, nil)
	_, err = service.ListEntries(context.Background(), 1, 0)
	assert.NoError(t, err)

	ledgerRepo.EXPECT().ListByUser(gomock.Any(), 1, 10).Return(nil, errors.New("db error"))
	_, err = service.ListEntries(context.Background(), 1, 10)
	assert.Error(t, err)

	walletRepo.EXPECT().Create(gomock.Any(), 1, "BTC").Return(nil)
	assert.NoError(t, service.CreateWallet(context.Background(), 1, "BTC"))
}
