package client

import (
	"context"
	"time"

	"travel-booking-webapp/model"

	"go.uber.org/zap"
)

// Replayer drains the local outbox: each pending record is re-submitted
// through the same endpoint pipeline with its original idempotency key, so a
// replay that races an earlier delivered-but-unacknowledged write cannot
// create a second booking. Records are marked reconciled on success and
// permanently failed once the attempt budget is spent.
type Replayer struct {
	client   *Client
	interval time.Duration
	maxTries int
}

func NewReplayer(c *Client, interval time.Duration, maxTries int) *Replayer {
	if interval <= 0 {
		interval = time.Minute
	}
	if maxTries <= 0 {
		maxTries = 10
	}
	return &Replayer{client: c, interval: interval, maxTries: maxTries}
}

// Run loops until the context is cancelled.
func (r *Replayer) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	zap.L().Info("outbox replayer started", zap.Duration("interval", r.interval))

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("outbox replayer stopped")
			return
		case <-ticker.C:
			r.ReplayOnce(ctx)
		}
	}
}

// ReplayOnce walks the outbox a single time and returns how many records
// were reconciled.
func (r *Replayer) ReplayOnce(ctx context.Context) int {
	locals, err := r.client.store.LocalBookings()
	if err != nil {
		zap.L().Warn("cannot read outbox", zap.Error(err))
		return 0
	}

	if !r.client.probe(ctx) {
		return 0
	}

	reconciled := 0
	for _, local := range locals {
		if local.ReconcileState != ReconcilePending {
			continue
		}

		local.Attempts++

		booking, submitErr := r.submit(ctx, local.Intent)
		if submitErr != nil {
			zap.L().Warn("outbox replay attempt failed",
				zap.String("local_id", local.LocalId),
				zap.Int("attempts", local.Attempts),
				zap.Error(submitErr))

			if local.Attempts >= r.maxTries {
				local.ReconcileState = ReconcileFailed
				zap.L().Error("outbox record permanently failed",
					zap.String("local_id", local.LocalId))
			}
			if err := r.client.store.UpdateLocalBooking(local); err != nil {
				zap.L().Warn("cannot update outbox record", zap.Error(err))
			}
			continue
		}

		local.ReconcileState = ReconcileReconciled
		local.ServerBookingId = booking.Id.Hex()
		local.ConfirmationNumber = booking.ConfirmationNumber
		if err := r.client.store.UpdateLocalBooking(local); err != nil {
			zap.L().Warn("cannot update outbox record", zap.Error(err))
		}
		if err := r.client.store.RecordBookingId(booking.Id.Hex()); err != nil {
			zap.L().Warn("cannot record booking id locally", zap.Error(err))
		}

		zap.L().Info("outbox record reconciled",
			zap.String("local_id", local.LocalId),
			zap.String("booking_id", booking.Id.Hex()))
		reconciled++
	}

	return reconciled
}

func (r *Replayer) submit(ctx context.Context, intent BookingIntent) (*model.Booking, error) {
	var lastErr error
	for _, attempt := range []attemptFunc{r.client.attemptAddBooking, r.client.attemptSimpleCreate} {
		booking, err := attempt(ctx, intent)
		if err == nil {
			return booking, nil
		}
		lastErr = err
	}
	return nil, lastErr
}
