package client

import (
	"context"
	"fmt"
	"net/http"

	"travel-booking-webapp/model"

	"go.uber.org/zap"
)

// Cancel transitions a booking to cancelled. Cancellation is one-way: an
// already-cancelled booking is never touched again. Outbox records that the
// replayer has reconciled have an authoritative server copy, so they go
// through the server cancel chain before the local copy is touched; records
// that never reached a server just flip their local copy. Everything else is
// cancelled through the dedicated endpoint, falling back to the generic
// status update.
func (c *Client) Cancel(ctx context.Context, bookingId, reason string) error {
	local, found, err := c.store.FindLocalBooking(bookingId)
	if err != nil {
		zap.L().Warn("cannot read local bookings", zap.Error(err))
	}
	if !found {
		return c.cancelServer(ctx, bookingId, reason)
	}

	if local.Status == model.BookingCancelled {
		return ErrAlreadyCancelled
	}

	if local.ReconcileState == ReconcileReconciled && local.ServerBookingId != "" {
		if err := c.cancelServer(ctx, local.ServerBookingId, reason); err != nil {
			return err
		}
		c.flipLocal(local, reason)
		return nil
	}

	// never delivered to a server, nothing to inform
	c.flipLocal(local, reason)
	return nil
}

func (c *Client) cancelServer(ctx context.Context, bookingId, reason string) error {
	type cancelBody struct {
		Status string `json:"status,omitempty"`
		Reason string `json:"reason"`
	}

	_, primaryErr := c.do(ctx, http.MethodPut,
		fmt.Sprintf("/api/auth/cancel-booking/%v", bookingId),
		cancelBody{Reason: reason})
	if primaryErr == nil {
		return nil
	}
	zap.L().Warn("primary cancellation endpoint failed, trying status update", zap.Error(primaryErr))

	_, fallbackErr := c.do(ctx, http.MethodPut,
		fmt.Sprintf("/api/bookings/%v/status", bookingId),
		cancelBody{Status: model.BookingCancelled, Reason: reason})
	if fallbackErr == nil {
		return nil
	}

	return fmt.Errorf("cannot cancel booking %v: %v", bookingId, fallbackErr)
}

func (c *Client) flipLocal(local LocalBooking, reason string) {
	local.Status = model.BookingCancelled
	local.CancelReason = reason
	// a cancelled outbox entry must not be replayed against the server
	if local.ReconcileState == ReconcilePending {
		local.ReconcileState = ReconcileFailed
	}

	if err := c.store.UpdateLocalBooking(local); err != nil {
		zap.L().Warn("cannot update local copy of cancelled booking", zap.Error(err))
	}
}
