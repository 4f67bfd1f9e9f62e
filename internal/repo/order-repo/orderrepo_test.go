package orderrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/loadermarket/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var columns = []string{
	"id", "ad_id", "loader_id", "receiver_id", "asset_type", "deal_amount",
	"loader_frozen_amount", "loader_fee_reserve", "receiver_frozen_amount", "receiver_fee_reserve",
	"status", "countdown_time", "countdown_expires_at", "countdown_stopped", "payment_method", "payment_details",
	"loader_sent_payment_details", "receiver_sent_payment_details", "loader_marked_payment_sent",
	"receiver_confirmed_payment", "loader_confirmed_receipt", "liability_type",
	"receiver_liability_confirmed", "loader_liability_confirmed", "liability_locked_at", "liability_deadline",
	"cancelled_by", "cancel_reason", "loader_fee_deducted", "receiver_fee_deducted",
	"penalty_amount", "penalty_paid_by", "version", "created_at", "completed_at",
}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func sampleOrder(now time.Time) *domain.LoaderOrder {
	expires := now.Add(30 * time.Minute)
	liability := domain.LiabilityTimeBound48h
	return &domain.LoaderOrder{
		ID:                       9,
		AdID:                     5,
		LoaderID:                 1,
		ReceiverID:               2,
		AssetType:                "USDT",
		DealAmount:               decimal.NewFromInt(1000),
		LoaderFrozenAmount:       decimal.NewFromInt(100),
		LoaderFeeReserve:         decimal.NewFromInt(30),
		ReceiverFrozenAmount:     decimal.NewFromInt(200),
		ReceiverFeeReserve:       decimal.Zero,
		Status:                   domain.OrderAwaitingLiabilityConfirmation,
		CountdownTime:            domain.Countdown30Min,
		CountdownExpiresAt:       &expires,
		LiabilityType:            &liability,
		LoaderLiabilityConfirmed: true,
		PenaltyAmount:            decimal.Zero,
		Version:                  2,
		CreatedAt:                now,
	}
}

func orderRow(o *domain.LoaderOrder) *pgxmock.Rows {
	return pgxmock.NewRows(columns).AddRow(
		o.ID, o.AdID, o.LoaderID, o.ReceiverID, o.AssetType, o.DealAmount,
		o.LoaderFrozenAmount, o.LoaderFeeReserve, o.ReceiverFrozenAmount, o.ReceiverFeeReserve,
		o.Status, o.CountdownTime, o.CountdownExpiresAt, o.CountdownStopped, o.PaymentMethod, o.PaymentDetails,
		o.LoaderSentPaymentDetails, o.ReceiverSentPaymentDetails, o.LoaderMarkedPaymentSent,
		o.ReceiverConfirmedPayment, o.LoaderConfirmedReceipt, o.LiabilityType,
		o.ReceiverLiabilityConfirmed, o.LoaderLiabilityConfirmed, o.LiabilityLockedAt, o.LiabilityDeadline,
		o.CancelledBy, o.CancelReason, o.LoaderFeeDeducted, o.ReceiverFeeDeducted,
		o.PenaltyAmount, o.PenaltyPaidBy, o.Version, o.CreatedAt, o.CompletedAt,
	)
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	o := sampleOrder(time.Now())
	args := []any{
		o.AdID, o.LoaderID, o.ReceiverID, o.AssetType, o.DealAmount,
		o.LoaderFrozenAmount, o.LoaderFeeReserve, o.ReceiverFrozenAmount, o.ReceiverFeeReserve,
		o.Status, o.CountdownTime,
	}

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO loader_orders`)).
		WithArgs(args...).
		WillReturnRows(orderRow(o))
	created, err := repo.Create(context.Background(), o)
	assert.NoError(t, err)
	assert.Equal(t, o, created)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO loader_orders`)).
		WithArgs(args...).
		WillReturnError(errors.New("duplicate ad"))
	_, err = repo.Create(context.Background(), o)
	assert.Error(t, err)
}

func TestRepository_Get(t *testing.T) {
	repo, mock := NewMock(t)
	o := sampleOrder(time.Now())

	tests := []struct {
		name      string
		call      func() (*domain.LoaderOrder, error)
		mockSetup func()
		checkErr  func(error) bool
		result    *domain.LoaderOrder
	}{
		{
			name: "GetByID",
			call: func() (*domain.LoaderOrder, error) { return repo.GetByID(context.Background(), 9) },
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM loader_orders WHERE id = $1`)).
					WithArgs(9).
					WillReturnRows(orderRow(o))
			},
			result: o,
		},
		{
			name: "GetForUpdate",
			call: func() (*domain.LoaderOrder, error) { return repo.GetForUpdate(context.Background(), 9) },
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM loader_orders WHERE id = $1 FOR UPDATE`)).
					WithArgs(9).
					WillReturnRows(orderRow(o))
			},
			result: o,
		},
		{
			name: "Not found",
			call: func() (*domain.LoaderOrder, error) { return repo.GetByID(context.Background(), 10) },
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM loader_orders WHERE id = $1`)).
					WithArgs(10).
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name: "NoWait lock busy",
			call: func() (*domain.LoaderOrder, error) { return repo.GetForUpdateNoWait(context.Background(), 9) },
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FOR UPDATE NOWAIT`)).
					WithArgs(9).
					WillReturnError(&pgconn.PgError{Code: "55P03"})
			},
			checkErr: func(err error) bool {
				var pgErr *pgconn.PgError
				return errors.As(err, &pgErr) && pgErr.Code == "55P03"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := tt.call()

			if tt.checkErr != nil {
				assert.True(t, tt.checkErr(err))
				assert.Nil(t, result)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_Update(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name            string
		rows            int64
		execErr         error
		wantErr         error
		expectedVersion int
	}{
		{name: "Version matches", rows: 1, expectedVersion: 3},
		{name: "Concurrent change", rows: 0, wantErr: domain.ErrStaleState, expectedVersion: 2},
		{name: "Database error", execErr: errors.New("database error"), expectedVersion: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := sampleOrder(time.Now())
			expect := mock.ExpectExec(regexp.QuoteMeta(`version = version + 1 WHERE id = $23 AND version = $24`)).
				WithArgs(
					o.Status, o.CountdownExpiresAt, o.CountdownStopped,
					o.PaymentMethod, o.PaymentDetails,
					o.LoaderSentPaymentDetails, o.ReceiverSentPaymentDetails,
					o.LoaderMarkedPaymentSent, o.ReceiverConfirmedPayment, o.LoaderConfirmedReceipt,
					o.LiabilityType, o.ReceiverLiabilityConfirmed, o.LoaderLiabilityConfirmed,
					o.LiabilityLockedAt, o.LiabilityDeadline,
					o.CancelledBy, o.CancelReason,
					o.LoaderFeeDeducted, o.ReceiverFeeDeducted,
					o.PenaltyAmount, o.PenaltyPaidBy, o.CompletedAt,
					o.ID, 2,
				)
			if tt.execErr != nil {
				expect.WillReturnError(tt.execErr)
			} else {
				expect.WillReturnResult(pgxmock.NewResult("UPDATE", tt.rows))
			}

			err := repo.Update(context.Background(), o)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.execErr != nil:
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expectedVersion, o.Version)
		})
	}
}

func TestRepository_ListByUser(t *testing.T) {
	repo, mock := NewMock(t)
	o := sampleOrder(time.Now())

	mock.ExpectQuery(regexp.QuoteMeta(`FROM loader_orders WHERE loader_id = $1 OR receiver_id = $1 ORDER BY created_at DESC`)).
		WithArgs(2).
		WillReturnRows(orderRow(o))
	orders, err := repo.ListByUser(context.Background(), 2)
	assert.NoError(t, err)
	assert.Equal(t, []domain.LoaderOrder{*o}, orders)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM loader_orders`)).
		WithArgs(3).
		WillReturnError(errors.New("database error"))
	_, err = repo.ListByUser(context.Background(), 3)
	assert.Error(t, err)
}

func TestRepository_FindExpired(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id FROM loader_orders WHERE countdown_expires_at < $1 AND NOT countdown_stopped`)).
		WithArgs(now, 100).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(4).AddRow(9))
	ids, err := repo.FindExpired(context.Background(), now, 100)
	assert.NoError(t, err)
	assert.Equal(t, []int{4, 9}, ids)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id FROM loader_orders`)).
		WithArgs(now, 100).
		WillReturnError(errors.New("database error"))
	_, err = repo.FindExpired(context.Background(), now, 100)
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}
