package eventrepo

import (
	"context"

	"github.com/GlebRadaev/loadermarket/internal/domain"
	"github.com/GlebRadaev/loadermarket/internal/pg"
	"github.com/google/uuid"
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

// Create appends e to the order's audit trail, assigning it an id when unset.
func (r *Repository) Create(ctx context.Context, e *domain.OrderEvent) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	query := `
		INSERT INTO order_events (id, order_id, from_status, to_status, event, actor_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`
	err := r.db.QueryRow(ctx, query, e.ID, e.OrderID, e.FromStatus, e.ToStatus, e.Event, e.ActorID).Scan(&e.CreatedAt)
	if err != nil {
		zap.L().Error("can't save order event", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListByOrder(ctx context.Context, orderID int) ([]domain.OrderEvent, error) {
	query := `
		SELECT id, order_id, from_status, to_status, event, actor_id, created_at
		FROM order_events
		WHERE order_id = $1
		ORDER BY created_at ASC
	`
	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		zap.L().Error("can't get order events", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var events []domain.OrderEvent
	for rows.Next() {
		var e domain.OrderEvent
		if err := rows.Scan(&e.ID, &e.OrderID, &e.FromStatus, &e.ToStatus, &e.Event, &e.ActorID, &e.CreatedAt); err != nil {
			zap.L().Error("can't scan order event row", zap.Error(err))
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
