package notify

//go:generate mockgen -source=notify.go -destination=mock_notify.go -package=notify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/GlebRadaev/loadermarket/internal/domain"
	"github.com/GlebRadaev/loadermarket/pkg/clients"
	"github.com/GlebRadaev/loadermarket/pkg/workerpool"
	"go.uber.org/zap"
)

const defaultListLimit = 50

type webhookPayload struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Link      string    `json:"link,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type Repo interface {
	Create(ctx context.Context, n *domain.Notification) error
	ListByUser(ctx context.Context, userID, limit int) ([]domain.Notification, error)
}

// Service is a fire-and-forget notification sink: Notify never fails or blocks
// the caller. Delivery runs on the worker pool after the caller's transaction;
// when the pool queue is full the notification is dropped and logged.
type Service struct {
	repo       Repo
	client     clients.HTTPClientI
	webhookURL string
	pool       workerpool.WorkerPoolI
}

func New(repo Repo, client clients.HTTPClientI, webhookURL string, pool workerpool.WorkerPoolI) *Service {
	return &Service{
		repo:       repo,
		client:     client,
		webhookURL: webhookURL,
		pool:       pool,
	}
}

func (s *Service) Notify(ctx context.Context, n domain.Notification) {
	ctx = context.WithoutCancel(ctx)
	err := s.pool.TryAddTask(func() error {
		return s.deliver(ctx, n)
	})
	if err != nil {
		zap.L().Error("notification dropped", zap.Int("user_id", n.UserID), zap.String("type", string(n.Type)), zap.Error(err))
	}
}

func (s *Service) deliver(ctx context.Context, n domain.Notification) error {
	if err := s.repo.Create(ctx, &n); err != nil {
		return fmt.Errorf("store notification for user %d: %w", n.UserID, err)
	}
	if s.webhookURL == "" {
		return nil
	}

	body, err := json.Marshal(webhookPayload{
		ID:        n.ID,
		UserID:    n.UserID,
		Type:      string(n.Type),
		Title:     n.Title,
		Message:   n.Message,
		Link:      n.Link,
		CreatedAt: n.CreatedAt,
	})
	if err != nil {
		return err
	}
	code, _, err := s.client.Post(ctx, s.webhookURL, body, nil)
	if err != nil {
		return fmt.Errorf("notification webhook: %w", err)
	}
	if code < http.StatusOK || code >= http.StatusMultipleChoices {
		return fmt.Errorf("notification webhook answered %d", code)
	}
	return nil
}

func (s *Service) List(ctx context.Context, userID, limit int) ([]domain.Notification, error) {
	if limit <= 0 || limit > defaultListLimit {
		limit = defaultListLimit
	}
	return s.repo.ListByUser(ctx, userID, limit)
}
