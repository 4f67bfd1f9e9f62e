package orderrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/GlebRadaev/loadermarket/internal/domain"
	"github.com/GlebRadaev/loadermarket/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const orderColumns = `id, ad_id, loader_id, receiver_id, asset_type, deal_amount,
	loader_frozen_amount, loader_fee_reserve, receiver_frozen_amount, receiver_fee_reserve,
	status, countdown_time, countdown_expires_at, countdown_stopped, payment_method, payment_details,
	loader_sent_payment_details, receiver_sent_payment_details, loader_marked_payment_sent,
	receiver_confirmed_payment, loader_confirmed_receipt, liability_type,
	receiver_liability_confirmed, loader_liability_confirmed, liability_locked_at, liability_deadline,
	cancelled_by, cancel_reason, loader_fee_deducted, receiver_fee_deducted,
	penalty_amount, penalty_paid_by, version, created_at, completed_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanOrder(row pgx.Row) (*domain.LoaderOrder, error) {
	var o domain.LoaderOrder
	err := row.Scan(
		&o.ID, &o.AdID, &o.LoaderID, &o.ReceiverID, &o.AssetType, &o.DealAmount,
		&o.LoaderFrozenAmount, &o.LoaderFeeReserve, &o.ReceiverFrozenAmount, &o.ReceiverFeeReserve,
		&o.Status, &o.CountdownTime, &o.CountdownExpiresAt, &o.CountdownStopped, &o.PaymentMethod, &o.PaymentDetails,
		&o.LoaderSentPaymentDetails, &o.ReceiverSentPaymentDetails, &o.LoaderMarkedPaymentSent,
		&o.ReceiverConfirmedPayment, &o.LoaderConfirmedReceipt, &o.LiabilityType,
		&o.ReceiverLiabilityConfirmed, &o.LoaderLiabilityConfirmed, &o.LiabilityLockedAt, &o.LiabilityDeadline,
		&o.CancelledBy, &o.CancelReason, &o.LoaderFeeDeducted, &o.ReceiverFeeDeducted,
		&o.PenaltyAmount, &o.PenaltyPaidBy, &o.Version, &o.CreatedAt, &o.CompletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *Repository) Create(ctx context.Context, o *domain.LoaderOrder) (*domain.LoaderOrder, error) {
	query := `
		INSERT INTO loader_orders (ad_id, loader_id, receiver_id, asset_type, deal_amount,
			loader_frozen_amount, loader_fee_reserve, receiver_frozen_amount, receiver_fee_reserve,
			status, countdown_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + orderColumns
	created, err := scanOrder(r.db.QueryRow(ctx, query,
		o.AdID, o.LoaderID, o.ReceiverID, o.AssetType, o.DealAmount,
		o.LoaderFrozenAmount, o.LoaderFeeReserve, o.ReceiverFrozenAmount, o.ReceiverFeeReserve,
		o.Status, o.CountdownTime,
	))
	if err != nil {
		zap.L().Error("can't save order", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) GetByID(ctx context.Context, id int) (*domain.LoaderOrder, error) {
	return r.get(ctx, "SELECT "+orderColumns+" FROM loader_orders WHERE id = $1", id)
}

// GetForUpdate waits for the row lock; used by user actions.
func (r *Repository) GetForUpdate(ctx context.Context, id int) (*domain.LoaderOrder, error) {
	return r.get(ctx, "SELECT "+orderColumns+" FROM loader_orders WHERE id = $1 FOR UPDATE", id)
}

// GetForUpdateNoWait fails with lock_not_available instead of queueing behind
// another transaction holding the order.
func (r *Repository) GetForUpdateNoWait(ctx context.Context, id int) (*domain.LoaderOrder, error) {
	return r.get(ctx, "SELECT "+orderColumns+" FROM loader_orders WHERE id = $1 FOR UPDATE NOWAIT", id)
}

func (r *Repository) get(ctx context.Context, query string, id int) (*domain.LoaderOrder, error) {
	order, err := scanOrder(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		if !pg.IsLockNotAvailable(err) {
			zap.L().Error("can't find order", zap.Error(err))
		}
		return nil, err
	}
	return order, nil
}

// Update writes o if nobody changed the row since it was read and bumps o.Version.
func (r *Repository) Update(ctx context.Context, o *domain.LoaderOrder) error {
	query := `
		UPDATE loader_orders
		SET status = $1, countdown_expires_at = $2, countdown_stopped = $3,
			payment_method = $4, payment_details = $5,
			loader_sent_payment_details = $6, receiver_sent_payment_details = $7,
			loader_marked_payment_sent = $8, receiver_confirmed_payment = $9, loader_confirmed_receipt = $10,
			liability_type = $11, receiver_liability_confirmed = $12, loader_liability_confirmed = $13,
			liability_locked_at = $14, liability_deadline = $15,
			cancelled_by = $16, cancel_reason = $17,
			loader_fee_deducted = $18, receiver_fee_deducted = $19,
			penalty_amount = $20, penalty_paid_by = $21, completed_at = $22,
			version = version + 1
		WHERE id = $23 AND version = $24
	`
	tag, err := r.db.Exec(ctx, query,
		o.Status, o.CountdownExpiresAt, o.CountdownStopped,
		o.PaymentMethod, o.PaymentDetails,
		o.LoaderSentPaymentDetails, o.ReceiverSentPaymentDetails,
		o.LoaderMarkedPaymentSent, o.ReceiverConfirmedPayment, o.LoaderConfirmedReceipt,
		o.LiabilityType, o.ReceiverLiabilityConfirmed, o.LoaderLiabilityConfirmed,
		o.LiabilityLockedAt, o.LiabilityDeadline,
		o.CancelledBy, o.CancelReason,
		o.LoaderFeeDeducted, o.ReceiverFeeDeducted,
		o.PenaltyAmount, o.PenaltyPaidBy, o.CompletedAt,
		o.ID, o.Version,
	)
	if err != nil {
		zap.L().Error("failed to update order", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("order %d changed since version %d: %w", o.ID, o.Version, domain.ErrStaleState)
	}
	o.Version++
	return nil
}

func (r *Repository) ListByUser(ctx context.Context, userID int) ([]domain.LoaderOrder, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM loader_orders
		WHERE loader_id = $1 OR receiver_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var orders []domain.LoaderOrder
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			zap.L().Error("can't scan order row", zap.Error(err))
			return nil, err
		}
		orders = append(orders, *order)
	}
	return orders, rows.Err()
}

// FindExpired returns ids of live orders whose running countdown lapsed before now.
func (r *Repository) FindExpired(ctx context.Context, now time.Time, limit uint32) ([]int, error) {
	query := `
		SELECT id
		FROM loader_orders
		WHERE countdown_expires_at < $1
			AND NOT countdown_stopped
			AND status NOT IN ('completed', 'cancelled_auto', 'cancelled_loader', 'cancelled_receiver',
				'disputed', 'resolved_loader_wins', 'resolved_receiver_wins', 'resolved_mutual')
		ORDER BY countdown_expires_at ASC
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, now, int(limit))
	if err != nil {
		zap.L().Error("can't get expired orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			zap.L().Error("can't scan expired order id", zap.Error(err))
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
