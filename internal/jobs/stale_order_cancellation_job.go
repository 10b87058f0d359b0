package jobs

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"shop/internal/core/application/services"
	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/errs"
)

// StaleOrderCancellationJob cancels pending orders that were never confirmed
// within the configured time to live. Runs every minute.
type StaleOrderCancellationJob struct {
	orders *services.OrderService
	clock  services.Clock
	ttl    time.Duration
	cron   *cron.Cron
	logger *slog.Logger
}

// NewStaleOrderCancellationJob creates a new job cancelling stale pending
// orders through the order service, so the cancellation rules of the status
// state machine still apply.
func NewStaleOrderCancellationJob(
	orders *services.OrderService,
	clock services.Clock,
	ttl time.Duration,
	logger *slog.Logger,
) *StaleOrderCancellationJob {
	return &StaleOrderCancellationJob{
		orders: orders,
		clock:  clock,
		ttl:    ttl,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "stale_order_cancellation_job"),
	}
}

// Start begins the stale order cancellation job to run every minute.
func (j *StaleOrderCancellationJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		if err := j.run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Stale order cancellation job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale order cancellation job started (running every minute)",
		"ttl", j.ttl.String())
	return nil
}

// Stop stops the stale order cancellation job.
func (j *StaleOrderCancellationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale order cancellation job stopped")
}

func (j *StaleOrderCancellationJob) run(ctx context.Context) error {
	pending, err := j.orders.GetOrdersByStatus(ctx, order.Pending.String())
	if err != nil {
		return err
	}

	cutoff := j.clock.Now().Add(-j.ttl)
	for _, o := range pending {
		if o.CreatedAt().After(cutoff) {
			continue
		}

		if _, err = j.orders.CancelOrder(ctx, o.ID()); err != nil {
			// The order may have been confirmed or deleted since listing
			if errors.Is(err, errs.ErrInvalidTransition) || errors.Is(err, errs.ErrObjectNotFound) {
				continue
			}
			j.logger.ErrorContext(ctx, "Failed to cancel stale order",
				"orderId", o.ID().String(), "error", err)
			continue
		}

		j.logger.InfoContext(ctx, "Cancelled stale pending order",
			"orderId", o.ID().String(), "createdAt", o.CreatedAt().Format(time.RFC3339))
	}

	return nil
}
