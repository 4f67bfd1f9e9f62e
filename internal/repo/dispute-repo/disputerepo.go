package disputerepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/loadermarket/internal/domain"
	"github.com/GlebRadaev/loadermarket/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const disputeColumns = `id, order_id, opened_by, reason, evidence_urls, status, resolution,
	resolved_by, winner_id, loser_id, loader_share, admin_notes, created_at, resolved_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanDispute(row pgx.Row) (*domain.LoaderDispute, error) {
	var d domain.LoaderDispute
	err := row.Scan(
		&d.ID, &d.OrderID, &d.OpenedBy, &d.Reason, &d.EvidenceURLs, &d.Status, &d.Resolution,
		&d.ResolvedBy, &d.WinnerID, &d.LoserID, &d.LoaderShare, &d.AdminNotes, &d.CreatedAt, &d.ResolvedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *Repository) Create(ctx context.Context, d *domain.LoaderDispute) (*domain.LoaderDispute, error) {
	query := `
		INSERT INTO loader_disputes (order_id, opened_by, reason, evidence_urls, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + disputeColumns
	created, err := scanDispute(r.db.QueryRow(ctx, query, d.OrderID, d.OpenedBy, d.Reason, d.EvidenceURLs, d.Status))
	if err != nil {
		zap.L().Error("can't save dispute", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) GetByID(ctx context.Context, id int) (*domain.LoaderDispute, error) {
	return r.get(ctx, "SELECT "+disputeColumns+" FROM loader_disputes WHERE id = $1", id)
}

func (r *Repository) GetForUpdate(ctx context.Context, id int) (*domain.LoaderDispute, error) {
	return r.get(ctx, "SELECT "+disputeColumns+" FROM loader_disputes WHERE id = $1 FOR UPDATE", id)
}

func (r *Repository) get(ctx context.Context, query string, id int) (*domain.LoaderDispute, error) {
	dispute, err := scanDispute(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find dispute", zap.Error(err))
		return nil, err
	}
	return dispute, nil
}

func (r *Repository) Update(ctx context.Context, d *domain.LoaderDispute) error {
	query := `
		UPDATE loader_disputes
		SET status = $1, resolution = $2, resolved_by = $3, winner_id = $4, loser_id = $5,
			loader_share = $6, admin_notes = $7, resolved_at = $8
		WHERE id = $9
	`
	_, err := r.db.Exec(ctx, query,
		d.Status, d.Resolution, d.ResolvedBy, d.WinnerID, d.LoserID,
		d.LoaderShare, d.AdminNotes, d.ResolvedAt, d.ID,
	)
	if err != nil {
		zap.L().Error("failed to update dispute", zap.Error(err))
		return err
	}
	return nil
}

// List returns disputes oldest first. An empty status matches every dispute.
func (r *Repository) List(ctx context.Context, status domain.DisputeStatus) ([]domain.LoaderDispute, error) {
	query := `
		SELECT ` + disputeColumns + `
		FROM loader_disputes
		WHERE $1 = '' OR status = $1
		ORDER BY created_at ASC
	`
	rows, err := r.db.Query(ctx, query, status)
	if err != nil {
		zap.L().Error("can't get disputes", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var disputes []domain.LoaderDispute
	for rows.Next() {
		dispute, err := scanDispute(rows)
		if err != nil {
			zap.L().Error("can't scan dispute row", zap.Error(err))
			return nil, err
		}
		disputes = append(disputes, *dispute)
	}
	return disputes, rows.Err()
}
