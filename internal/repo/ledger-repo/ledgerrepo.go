package ledgerrepo

import (
	"context"

	"github.com/GlebRadaev/loadermarket/internal/domain"
	"github.com/GlebRadaev/loadermarket/internal/pg"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) CreateEntry(ctx context.Context, entry *domain.LedgerEntry) error {
	query := `
		INSERT INTO ledger_entries (user_id, currency, kind, amount, ad_id, order_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, entry.UserID, entry.Currency, entry.Kind, entry.Amount, entry.AdID, entry.OrderID).
		Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		zap.L().Error("can't save ledger entry", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListByUser(ctx context.Context, userID, limit int) ([]domain.LedgerEntry, error) {
	query := `
		SELECT id, user_id, currency, kind, amount, ad_id, order_id, created_at
		FROM ledger_entries
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		zap.L().Error("can't get ledger entries", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.LedgerEntry
	for rows.Next() {
		var e domain.LedgerEntry
		err := rows.Scan(&e.ID, &e.UserID, &e.Currency, &e.Kind, &e.Amount, &e.AdID, &e.OrderID, &e.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan ledger entry row", zap.Error(err))
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// AddRevenue credits the platform fee sink.
func (r *Repository) AddRevenue(ctx context.Context, currency string, amount decimal.Decimal) error {
	query := `
		INSERT INTO platform_revenue (currency, amount)
		VALUES ($1, $2)
		ON CONFLICT (currency) DO UPDATE
		SET amount = platform_revenue.amount + EXCLUDED.amount, updated_at = NOW()
	`
	_, err := r.db.Exec(ctx, query, currency, amount)
	if err != nil {
		zap.L().Error("can't add platform revenue", zap.Error(err))
		return err
	}
	return nil
}
