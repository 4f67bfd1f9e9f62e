package countdown

//go:generate mockgen -source=countdown.go -destination=mock_countdown.go -package=countdown

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/GlebRadaev/loadermarket/internal/config"
	"github.com/GlebRadaev/loadermarket/internal/pg"
	"github.com/GlebRadaev/loadermarket/pkg/workerpool"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Orders interface {
	ExpiredOrders(ctx context.Context, limit uint32) ([]int, error)
	ExpireOrder(ctx context.Context, orderID int) (bool, error)
}

// Scheduler periodically auto-cancels orders whose countdown ran out. Each
// order is expired in its own transaction; a row locked by a user action is
// skipped and picked up on a later tick.
type Scheduler struct {
	orders      Orders
	workerPool  workerpool.WorkerPoolI
	interval    time.Duration
	limit       uint32
	lockTimeout time.Duration
	processing  sync.Map
}

func New(cfg *config.Config, orders Orders, pool workerpool.WorkerPoolI) *Scheduler {
	return &Scheduler{
		orders:      orders,
		workerPool:  pool,
		interval:    cfg.CountdownInterval,
		limit:       cfg.CountdownBatch,
		lockTimeout: cfg.CountdownLockTimeout,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	zap.L().Info("countdown scheduler started", zap.Duration("interval", s.interval))
	go s.run(ctx)
}

func (s *Scheduler) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("context canceled, stopping countdown scheduler")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

// sweep hands every lapsed order to the worker pool and reports how many were
// dispatched. Orders still being handled from a previous tick are skipped.
func (s *Scheduler) sweep(ctx context.Context) int {
	ids, err := s.orders.ExpiredOrders(ctx, s.limit)
	if err != nil {
		zap.L().Error("failed to fetch expired orders", zap.Error(err))
		return 0
	}

	var (
		g          errgroup.Group
		dispatched int
	)
	for _, id := range ids {
		id := id
		if _, loaded := s.processing.LoadOrStore(id, struct{}{}); loaded {
			continue
		}
		dispatched++

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer s.processing.Delete(id)
				return s.expire(ctx, id)
			})
			if err != nil {
				s.processing.Delete(id)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("error dispatching expired orders", zap.Error(err))
	}
	return dispatched
}

func (s *Scheduler) expire(ctx context.Context, orderID int) error {
	ctx, cancel := context.WithTimeout(ctx, s.lockTimeout)
	defer cancel()

	expired, err := s.orders.ExpireOrder(ctx, orderID)
	if pg.IsLockNotAvailable(err) {
		zap.L().Debug("order is busy, retrying next tick", zap.Int("order_id", orderID))
		return nil
	}
	if err != nil {
		return fmt.Errorf("expire order %d: %w", orderID, err)
	}
	if expired {
		zap.L().Info("order auto-cancelled", zap.Int("order_id", orderID))
	}
	return nil
}
