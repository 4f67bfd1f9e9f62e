package orderservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/GlebRadaev/loadermarket/internal/domain"
	"github.com/GlebRadaev/loadermarket/internal/pg"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

var now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

type mocks struct {
	repo     *MockRepo
	events   *MockEventRepo
	ads      *MockAdRepo
	disputes *MockDisputeRepo
	ledger   *MockLedger
	notifier *MockNotifier
}

func NewMock(t *testing.T) (*Service, mocks) {
	ctrl := gomock.NewController(t)
	m := mocks{
		repo:     NewMockRepo(ctrl),
		events:   NewMockEventRepo(ctrl),
		ads:      NewMockAdRepo(ctrl),
		disputes: NewMockDisputeRepo(ctrl),
		ledger:   NewMockLedger(ctrl),
		notifier: NewMockNotifier(ctrl),
	}
	txManager := pg.NewMockTXManager(ctrl)
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	}).AnyTimes()

	service := New(m.repo, m.events, m.ads, m.disputes, m.ledger, m.notifier, txManager)
	service.now = func() time.Time { return now }
	defer ctrl.Finish()
	return service, m
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decEq(s string) gomock.Matcher {
	want := dec(s)
	return gomock.Cond(func(x decimal.Decimal) bool { return x.Equal(want) })
}

func notifyTo(userID int) gomock.Matcher {
	return gomock.Cond(func(n domain.Notification) bool { return n.UserID == userID })
}

func order(status domain.OrderStatus) *domain.LoaderOrder {
	return &domain.LoaderOrder{
		ID:                   7,
		AdID:                 3,
		LoaderID:             1,
		ReceiverID:           2,
		AssetType:            "USDT",
		DealAmount:           dec("1000"),
		LoaderFrozenAmount:   dec("100"),
		LoaderFeeReserve:     dec("30"),
		ReceiverFrozenAmount: dec("200"),
		ReceiverFeeReserve:   dec("0"),
		Status:               status,
		CountdownTime:        domain.Countdown30Min,
		Version:              1,
	}
}

func liability(l domain.LiabilityType) *domain.LiabilityType {
	return &l
}

func expectEvent(m mocks, from, to domain.OrderStatus, event domain.Event) {
	m.events.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, e *domain.OrderEvent) error {
		if e.FromStatus != from || e.ToStatus != to || e.Event != event {
			return errors.New("unexpected event")
		}
		return nil
	})
}

func TestOpen(t *testing.T) {
	service, m := NewMock(t)

	draft := order(domain.OrderCreated)
	draft.ID = 0
	m.repo.EXPECT().Create(gomock.Any(), draft).DoAndReturn(func(ctx context.Context, o *domain.LoaderOrder) (*domain.LoaderOrder, error) {
		o.ID = 7
		return o, nil
	})
	m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, o *domain.LoaderOrder) error {
		assert.Equal(t, domain.OrderAwaitingLiabilityConfirmation, o.Status)
		require.NotNil(t, o.CountdownExpiresAt)
		assert.Equal(t, now.Add(30*time.Minute), *o.CountdownExpiresAt)
		return nil
	})
	m.events.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, e *domain.OrderEvent) error {
		assert.Equal(t, 7, e.OrderID)
		assert.Equal(t, domain.OrderCreated, e.FromStatus)
		assert.Equal(t, domain.OrderAwaitingLiabilityConfirmation, e.ToStatus)
		assert.Equal(t, domain.EventInitialize, e.Event)
		require.NotNil(t, e.ActorID)
		assert.Equal(t, 2, *e.ActorID)
		return nil
	})

	o, err := service.Open(context.Background(), draft)
	require.NoError(t, err)
	assert.Equal(t, 7, o.ID)
}

func TestConfirmLiability(t *testing.T) {
	service, m := NewMock(t)

	tests := []struct {
		name          string
		actorID       int
		liability     domain.LiabilityType
		prepareMock   func()
		expectedError error
		check         func(o *domain.LoaderOrder)
	}{
		{
			name:      "First confirmation proposes terms",
			actorID:   1,
			liability: domain.LiabilityPartial25,
			prepareMock: func() {
				m.repo.EXPECT().GetForUpdate(gomock.Any(), 7).Return(order(domain.OrderAwaitingLiabilityConfirmation), nil)
				m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
				expectEvent(m, domain.OrderAwaitingLiabilityConfirmation, domain.OrderAwaitingLiabilityConfirmation, domain.EventConfirmLiability)
				m.notifier.EXPECT().Notify(gomock.Any(), notifyTo(2))
			},
			check: func(o *domain.LoaderOrder) {
				assert.Equal(t, domain.LiabilityPartial25, *o.LiabilityType)
				assert.True(t, o.LoaderLiabilityConfirmed)
				assert.False(t, o.ReceiverLiabilityConfirmed)
				assert.Nil(t, o.LiabilityLockedAt)
			},
		},
		{
			name:      "Matching confirmation locks terms",
			actorID:   2,
			liability: domain.LiabilityTimeBound48h,
			prepareMock: func() {
				o := order(domain.OrderAwaitingLiabilityConfirmation)
				o.LiabilityType = liability(domain.LiabilityTimeBound48h)
				o.LoaderLiabilityConfirmed = true
				m.repo.EXPECT().GetForUpdate(gomock.Any(), 7).Return(o, nil)
				m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
				expectEvent(m, domain.OrderAwaitingLiabilityConfirmation, domain.OrderAwaitingPaymentDetails, domain.EventLockLiability)
				m.notifier.EXPECT().Notify(gomock.Any(), notifyTo(1))
				m.notifier.EXPECT().Notify(gomock.Any(), notifyTo(2))
			},
			check: func(o *domain.LoaderOrder) {
				assert.Equal(t, domain.OrderAwaitingPaymentDetails, o.Status)
				require.NotNil(t, o.LiabilityLockedAt)
				assert.Equal(t, now, *o.LiabilityLockedAt)
				require.NotNil(t, o.LiabilityDeadline)
				assert.Equal(t, now.Add(48*time.Hour), *o.LiabilityDeadline)
				assert.Equal(t, now.Add(30*time.Minute), *o.CountdownExpiresAt)
			},
		},
		{
			name:      "Different type renegotiates",
			actorID:   1,
			liability: domain.LiabilityPartial10,
			prepareMock: func() {
				o := order(domain.OrderAwaitingLiabilityConfirmation)
				o.LiabilityType = liability(domain.LiabilityFullPayment)
				o.ReceiverLiabilityConfirmed = true
				m.repo.EXPECT().GetForUpdate(gomock.Any(), 7).Return(o, nil)
				m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
				expectEvent(m, domain.OrderAwaitingLiabilityConfirmation, domain.OrderAwaitingLiabilityConfirmation, domain.EventConfirmLiability)
				m.notifier.EXPECT().Notify(gomock.Any(), notifyTo(2))
			},
			check: func(o *domain.LoaderOrder) {
				assert.Equal(t, domain.LiabilityPartial10, *o.LiabilityType)
				assert.True(t, o.LoaderLiabilityConfirmed)
				assert.False(t, o.ReceiverLiabilityConfirmed)
			},
		},
		{
			name:      "Locked terms are immutable",
			actorID:   1,
			liability: domain.LiabilityPartial10,
			prepareMock: func() {
				o := order(domain.OrderPaymentDetailsSent)
				o.LiabilityType = liability(domain.LiabilityFullPayment)
				o.LiabilityLockedAt = &now
				m.repo.EXPECT().GetForUpdate(gomock.Any(), 7).Return(o, nil)
			},
			expectedError: domain.ErrImmutableState,
		},
		{
			name:      "Cancelled order is stale",
			actorID:   1,
			liability: domain.LiabilityPartial10,
			prepareMock: func() {
				m.repo.EXPECT().GetForUpdate(gomock.Any(), 7).Return(order(domain.OrderCancelledAuto), nil)
			},
			expectedError: domain.ErrStaleState,
		},
		{
			name:      "Stranger forbidden",
			actorID:   5,
			liability: domain.LiabilityPartial10,
			prepareMock: func() {
				m.repo.EXPECT().GetForUpdate(gomock.Any(), 7).Return(order(domain.OrderAwaitingLiabilityConfirmation), nil)
			},
			expectedError: domain.ErrForbidden,
		},
		{
			name:      "Order not found",
			actorID:   1,
			liability: domain.LiabilityPartial10,
			prepareMock: func() {
				m.repo.EXPECT().GetForUpdate(gomock.Any(), 7).Return(nil, nil)
			},
			expectedError: domain.ErrNotFound,
		},
		{
			name:          "Unknown liability type",
			actorID:       1,
			liability:     "partial_75",
			prepareMock:   func() {},
			expectedError: domain.ErrValidation,
		},
		{
			name:      "Version conflict",
			actorID:   1,
			liability: domain.LiabilityPartial10,
			prepareMock: func() {
				m.repo.EXPECT().GetForUpdate(gomock.Any(), 7).Return(order(domain.OrderAwaitingLiabilityConfirmation), nil)
				m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(domain.ErrStaleState)
			},
			expectedError: domain.ErrStaleState,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			o, err := service.ConfirmLiability(context.Background(), 7, tt.actorID, tt.liability)
			if tt.expectedError != nil {
				assert.True(t, errors.Is(err, tt.expectedError), "got %v", err)
				return
			}
			require.NoError(t, err)
			tt.check(o)
		})
	}
}

func TestSendPaymentDetails(t *testing.T) {
	service, m := NewMock(t)
	ad := &domain.LoaderAd{ID: 3, PaymentMethods: []string{"bank_card", "sbp"}}

	tests := []struct {
		name          string
		actorID       int
		method        string
		details       string
		prepareMock   func()
		expectedError error
	}{
		{
			name:    "Loader sends card",
			actorID: 1,
			method:  "bank_card",
			details: "4111 1111 1111 1111 Ivan P.",
			prepareMock: func() {
				m.repo.EXPECT().GetForUpdate(gomock.Any(), 7).Return(order(domain.OrderAwaitingPaymentDetails), nil)
				m.ads.EXPECT().GetByID(gomock.Any(), 3).Return(ad, nil)
				m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, o *domain.LoaderOrder) error {
					assert.Equal(t, "bank_card", o.PaymentMethod)
					assert.True(t, o.LoaderSentPaymentDetails)
					assert.Equal(t, now.Add(30*time.Minute), *o.CountdownExpiresAt)
					return nil
				})
				expectEvent(m, domain.OrderAwaitingPaymentDetails, domain.OrderPaymentDetailsSent, domain.EventSendPaymentDetails)
				m.notifier.EXPECT().Notify(gomock.Any(), notifyTo(2))
			},
		},
		{
			name:    "Receiver cannot send details",
			actorID: 2,
			method:  "sbp",
			details: "+7 900 000-00-00",
			prepareMock: func() {
				m.repo.EXPECT().GetForUpdate(gomock.Any(), 7).Return(order(domain.OrderAwaitingPaymentDetails), nil)
			},
			expectedError: domain.ErrForbidden,
		},
		{
			name:    "Method not offered",
			actorID: 1,
			method:  "paypal",
			details: "me@example.com",
			prepareMock: func() {
				m.repo.EXPECT().GetForUpdate(gomock.Any(), 7).Return(order(domain.OrderAwaitingPaymentDetails), nil)
				m.ads.EXPECT().GetByID(gomock.Any(), 3).Return(ad, nil)
			},
			expectedError: domain.ErrValidation,
		},
		{
			name:    "Card fails checksum",
			actorID: 1,
			method:  "bank_card",
			details: "4111 1111 1111 1112",
			prepareMock: func() {
				m.repo.EXPECT().GetForUpdate(gomock.Any(), 7).Return(order(domain.OrderAwaitingPaymentDetails), nil)
				m.ads.EXPECT().GetByID(gomock.Any(), 3).Return(ad, nil)
			},
			expectedError: domain.ErrValidation,
		},
		{
			name:    "Liability not locked yet",
			actorID: 1,
			method:  "sbp",
			details: "+7 900 000-00-00",
			prepareMock: func() {
				m.repo.EXPECT().GetForUpdate(gomock.Any(), 7).Return(order(domain.OrderAwaitingLiabilityConfirmation), nil)
			},
			expectedError: domain.ErrStaleState,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			o, err := service.SendPaymentDetails(context.Background(), 7, tt.actorID, tt.method, tt.details)
			if tt.expectedError != nil {
				assert.True(t, errors.Is(err, tt.expectedError), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.OrderPaymentDetailsSent, o.Status)
		})
	}
}

func TestMarkPaymentSent(t *testing.T) {
	service, m := NewMock(t)

	m.repo.EXPECT().GetForUpdate(gomock.Any(), 7).Return(order(domain.OrderPaymentDetailsSent), nil)
	m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
	expectEvent(m, domain.OrderPaymentDetailsSent, domain.OrderPaymentSent, domain.EventMarkPaymentSent)
	m.notifier.EXPECT().Notify(gomock.Any(), notifyTo(1))

	o, err := service.MarkPaymentSent(context.Background(), 7, 2)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderPaymentSent, o.Status)
	assert.True(t, o.ReceiverConfirmedPayment)
	assert.True(t, o.CountdownStopped)

	m.repo.EXPECT().GetForUpdate(gomock.Any(), 7).Return(order(domain.OrderPaymentSent), nil)
	_, err = service.MarkPaymentSent(context.Background(), 7, 2)
	assert.ErrorIs(t, err, domain.ErrStaleState)
}

func TestConfirmPaymentReceipt(t *testing.T) {
	service, m := NewMock(t)
	ref := domain.OrderRef(7)

	tests := []struct {
		name          string
		actorID       int
		prepareMock   func()
		expectedError error
	}{
		{
			name:    "Loader completes order",
			actorID: 1,
			prepareMock: func() {
				m.repo.EXPECT().GetForUpdate(gomock.Any(), 7).Return(order(domain.OrderPaymentSent), nil)
				m.ledger.EXPECT().LockWallets(gomock.Any(), "USDT", []int{1, 2}).Return(nil)
				m.ledger.EXPECT().Release(gomock.Any(), 1, "USDT", decEq("100"), ref).Return(nil)
				m.ledger.EXPECT().SettleFee(gomock.Any(), 1, "USDT", decEq("30"), ref).Return(nil)
				m.ledger.EXPECT().Release(gomock.Any(), 2, "USDT", decEq("200"), ref).Return(nil)
				m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
				expectEvent(m, domain.OrderPaymentSent, domain.OrderCompleted, domain.EventConfirmReceipt)
				m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Times(2)
			},
		},
		{
			name:    "Receiver cannot confirm",
			actorID: 2,
			prepareMock: func() {
				m.repo.EXPECT().GetForUpdate(gomock.Any(), 7).Return(order(domain.OrderPaymentSent), nil)
			},
			expectedError: domain.ErrForbidden,
		},
		{
			name:    "Ledger fault aborts",
			actorID: 1,
			prepareMock: func() {
				m.repo.EXPECT().GetForUpdate(gomock.Any(), 7).Return(order(domain.OrderPaymentSent), nil)
				m.ledger.EXPECT().LockWallets(gomock.Any(), "USDT", []int{1, 2}).Return(nil)
				m.ledger.EXPECT().Release(gomock.Any(), 1, "USDT", decEq("100"), ref).Return(domain.ErrInvalidState)
			},
			expectedError: domain.ErrInvalidState,
		},
		{
			name:    "Deadlock reported as stale state",
			actorID: 1,
			prepareMock: func() {
				m.repo.EXPECT().GetForUpdate(gomock.Any(), 7).Return(order(domain.OrderPaymentSent), nil)
				m.ledger.EXPECT().LockWallets(gomock.Any(), "USDT", []int{1, 2}).Return(&pgconn.PgError{Code: "40P01"})
			},
			expectedError: domain.ErrStaleState,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			o, err := service.ConfirmPaymentReceipt(context.Background(), 7, tt.actorID)
			if tt.expectedError != nil {
				assert.True(t, errors.Is(err, tt.expectedError), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.OrderCompleted, o.Status)
			assert.True(t, o.LoaderConfirmedReceipt)
			assert.True(t, o.LoaderFeeDeducted)
			assert.False(t, o.ReceiverFeeDeducted)
			require.NotNil(t, o.CompletedAt)
			assert.Equal(t, now, *o.CompletedAt)
		})
	}
}

func TestCancelOrder(t *testing.T) {
	service, m := NewMock(t)
	ref := domain.OrderRef(7)

	m.repo.EXPECT().GetForUpdate(gomock.Any(), 7).Return(order(domain.OrderPaymentDetailsSent), nil)
	m.ledger.EXPECT().LockWallets(gomock.Any(), "USDT", []int{1, 2}).Return(nil)
	m.ledger.EXPECT().Transfer(gomock.Any(), 2, 1, "USDT", decEq("50"), ref).Return(nil)
	m.ledger.EXPECT().Release(gomock.Any(), 2, "USDT", decEq("150"), ref).Return(nil)
	m.ledger.EXPECT().Release(gomock.Any(), 1, "USDT", decEq("130"), ref).Return(nil)
	m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
	expectEvent(m, domain.OrderPaymentDetailsSent, domain.OrderCancelledReceiver, domain.EventManualCancel)
	m.notifier.EXPECT().Notify(gomock.Any(), notifyTo(1))

	o, err := service.CancelOrder(context.Background(), 7, 2, " changed my mind ")
	require.NoError(t, err)
	assert.Equal(t, domain.OrderCancelledReceiver, o.Status)
	assert.Equal(t, 2, *o.CancelledBy)
	assert.Equal(t, 2, *o.PenaltyPaidBy)
	assert.Equal(t, "changed my mind", o.CancelReason)
	assert.True(t, o.PenaltyAmount.Equal(dec("50")))

	m.repo.EXPECT().GetForUpdate(gomock.Any(), 7).Return(order(domain.OrderDisputed), nil)
	_, err = service.CancelOrder(context.Background(), 7, 1, "")
	assert.ErrorIs(t, err, domain.ErrStaleState)
}

func TestOpenDispute(t *testing.T) {
	service, m := NewMock(t)

	tests := []struct {
		name          string
		reason        string
		evidence      []string
		prepareMock   func()
		expectedError error
	}{
		{
			name:     "Dispute opened",
			reason:   "paid but loader is silent",
			evidence: []string{"https://img.example.com/receipt.png"},
			prepareMock: func() {
				m.repo.EXPECT().GetForUpdate(gomock.Any(), 7).Return(order(domain.OrderPaymentSent), nil)
				m.disputes.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, d *domain.LoaderDispute) (*domain.LoaderDispute, error) {
					assert.Equal(t, 7, d.OrderID)
					assert.Equal(t, 2, d.OpenedBy)
					assert.Equal(t, domain.DisputeOpen, d.Status)
					d.ID = 11
					return d, nil
				})
				m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
				expectEvent(m, domain.OrderPaymentSent, domain.OrderDisputed, domain.EventOpenDispute)
				m.notifier.EXPECT().Notify(gomock.Any(), notifyTo(1))
			},
		},
		{
			name:          "Reason required",
			reason:        "  ",
			prepareMock:   func() {},
			expectedError: domain.ErrValidation,
		},
		{
			name:          "Evidence must be a web link",
			reason:        "scam",
			evidence:      []string{"file:///etc/passwd"},
			prepareMock:   func() {},
			expectedError: domain.ErrValidation,
		},
		{
			name:   "Already disputed",
			reason: "again",
			prepareMock: func() {
				m.repo.EXPECT().GetForUpdate(gomock.Any(), 7).Return(order(domain.OrderDisputed), nil)
			},
			expectedError: domain.ErrStaleState,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			o, d, err := service.OpenDispute(context.Background(), 7, 2, tt.reason, tt.evidence)
			if tt.expectedError != nil {
				assert.True(t, errors.Is(err, tt.expectedError), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.OrderDisputed, o.Status)
			assert.True(t, o.CountdownStopped)
			assert.Equal(t, 11, d.ID)
			assert.Equal(t, tt.evidence, d.EvidenceURLs)
		})
	}
}

func TestExpireOrder(t *testing.T) {
	service, m := NewMock(t)
	ref := domain.OrderRef(7)
	lapsed := now.Add(-time.Second)
	ahead := now.Add(time.Minute)

	tests := []struct {
		name          string
		prepareMock   func()
		expected      bool
		expectedError error
	}{
		{
			name: "Lapsed order auto-cancelled",
			prepareMock: func() {
				o := order(domain.OrderAwaitingPaymentDetails)
				o.CountdownExpiresAt = &lapsed
				m.repo.EXPECT().GetForUpdateNoWait(gomock.Any(), 7).Return(o, nil)
				m.ledger.EXPECT().LockWallets(gomock.Any(), "USDT", []int{1, 2}).Return(nil)
				m.ledger.EXPECT().Release(gomock.Any(), 1, "USDT", decEq("130"), ref).Return(nil)
				m.ledger.EXPECT().Release(gomock.Any(), 2, "USDT", decEq("200"), ref).Return(nil)
				m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
				m.events.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, e *domain.OrderEvent) error {
					assert.Equal(t, domain.OrderCancelledAuto, e.ToStatus)
					assert.Nil(t, e.ActorID)
					return nil
				})
				m.notifier.EXPECT().Notify(gomock.Any(), notifyTo(1))
				m.notifier.EXPECT().Notify(gomock.Any(), notifyTo(2))
			},
			expected: true,
		},
		{
			name: "Action taken in time",
			prepareMock: func() {
				o := order(domain.OrderAwaitingPaymentDetails)
				o.CountdownExpiresAt = &ahead
				m.repo.EXPECT().GetForUpdateNoWait(gomock.Any(), 7).Return(o, nil)
			},
		},
		{
			name: "Already settled",
			prepareMock: func() {
				o := order(domain.OrderCompleted)
				o.CountdownExpiresAt = &lapsed
				m.repo.EXPECT().GetForUpdateNoWait(gomock.Any(), 7).Return(o, nil)
			},
		},
		{
			name: "Row busy",
			prepareMock: func() {
				m.repo.EXPECT().GetForUpdateNoWait(gomock.Any(), 7).Return(nil, errors.New("lock not available"))
			},
			expectedError: errors.New("lock not available"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			expired, err := service.ExpireOrder(context.Background(), 7)
			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, expired)
		})
	}
}

func TestExpiredOrders(t *testing.T) {
	service, m := NewMock(t)

	m.repo.EXPECT().FindExpired(gomock.Any(), now, uint32(50)).Return([]int{7, 8}, nil)

	ids, err := service.ExpiredOrders(context.Background(), 50)
	require.NoError(t, err)
	assert.Equal(t, []int{7, 8}, ids)
}

func TestResolve(t *testing.T) {
	service, m := NewMock(t)
	ref := domain.OrderRef(7)

	m.repo.EXPECT().GetForUpdate(gomock.Any(), 7).Return(order(domain.OrderDisputed), nil)
	m.ledger.EXPECT().LockWallets(gomock.Any(), "USDT", []int{1, 2}).Return(nil)
	m.ledger.EXPECT().Transfer(gomock.Any(), 2, 1, "USDT", decEq("200"), ref).Return(nil)
	m.ledger.EXPECT().Release(gomock.Any(), 1, "USDT", decEq("100"), ref).Return(nil)
	m.ledger.EXPECT().SettleFee(gomock.Any(), 1, "USDT", decEq("30"), ref).Return(nil)
	m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
	expectEvent(m, domain.OrderDisputed, domain.OrderResolvedLoaderWins, domain.EventAdminResolve)

	o, err := service.Resolve(context.Background(), 7, domain.OutcomeLoaderWins, decimal.Zero, 99)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderResolvedLoaderWins, o.Status)
	assert.True(t, o.LoaderFeeDeducted)

	m.repo.EXPECT().GetForUpdate(gomock.Any(), 7).Return(order(domain.OrderPaymentSent), nil)
	_, err = service.Resolve(context.Background(), 7, domain.OutcomeMutual, dec("0.5"), 99)
	assert.ErrorIs(t, err, domain.ErrStaleState)
}

func TestGetOrder(t *testing.T) {
	service, m := NewMock(t)

	tests := []struct {
		name          string
		actor         domain.Actor
		prepareMock   func()
		expectedError error
	}{
		{
			name:  "Party sees order",
			actor: domain.Actor{ID: 2, Role: domain.RoleUser},
			prepareMock: func() {
				m.repo.EXPECT().GetByID(gomock.Any(), 7).Return(order(domain.OrderPaymentSent), nil)
			},
		},
		{
			name:  "Admin sees order",
			actor: domain.Actor{ID: 99, Role: domain.RoleAdmin},
			prepareMock: func() {
				m.repo.EXPECT().GetByID(gomock.Any(), 7).Return(order(domain.OrderPaymentSent), nil)
			},
		},
		{
			name:  "Stranger forbidden",
			actor: domain.Actor{ID: 5, Role: domain.RoleUser},
			prepareMock: func() {
				m.repo.EXPECT().GetByID(gomock.Any(), 7).Return(order(domain.OrderPaymentSent), nil)
			},
			expectedError: domain.ErrForbidden,
		},
		{
			name:  "Not found",
			actor: domain.Actor{ID: 1, Role: domain.RoleUser},
			prepareMock: func() {
				m.repo.EXPECT().GetByID(gomock.Any(), 7).Return(nil, nil)
			},
			expectedError: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			o, err := service.GetOrder(context.Background(), 7, tt.actor)
			if tt.expectedError != nil {
				assert.True(t, errors.Is(err, tt.expectedError), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 7, o.ID)
		})
	}
}

func TestListEvents(t *testing.T) {
	service, m := NewMock(t)
	events := []domain.OrderEvent{{OrderID: 7, Event: domain.EventInitialize}}

	m.repo.EXPECT().GetByID(gomock.Any(), 7).Return(order(domain.OrderPaymentSent), nil)
	m.events.EXPECT().ListByOrder(gomock.Any(), 7).Return(events, nil)

	got, err := service.ListEvents(context.Background(), 7, domain.Actor{ID: 1, Role: domain.RoleUser})
	require.NoError(t, err)
	assert.Equal(t, events, got)
}

func TestNotices(t *testing.T) {
	o := order(domain.OrderCancelledLoader)
	o.PenaltyAmount = dec("50")

	list := notices(o, domain.EventManualCancel, 1)
	require.Len(t, list, 1)
	assert.Equal(t, 2, list[0].UserID)
	assert.Equal(t, domain.NotifyOrderCancelled, list[0].Type)
	assert.Contains(t, list[0].Message, "penalty of 50 USDT")
	assert.Equal(t, "/orders/7", list[0].Link)

	assert.Empty(t, notices(o, domain.EventInitialize, 2))
}
