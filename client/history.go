package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"travel-booking-webapp/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// HistorySource names the tier that produced the booking list.
type HistorySource string

const (
	SourcePrimary     HistorySource = "my-bookings"
	SourceProfile     HistorySource = "user-bookings"
	SourceLocal       HistorySource = "local"
	SourcePlaceholder HistorySource = "placeholder"
)

// Bookings lists the user's bookings, trying each tier only after the
// previous one errored or came back empty: the primary endpoint, the
// profile endpoint, the local outbox, and finally placeholders rebuilt from
// recorded booking ids. A booking that only ever reached the outbox is
// visible only through the local tier; it is not merged with a server
// record that appears later.
func (c *Client) Bookings(ctx context.Context) ([]model.Booking, HistorySource, error) {
	for _, tier := range []struct {
		source HistorySource
		path   string
	}{
		{SourcePrimary, "/api/bookings/my-bookings"},
		{SourceProfile, "/api/auth/user-bookings"},
	} {
		bookings, err := c.fetchBookings(ctx, tier.path)
		if err != nil {
			zap.L().Warn("booking history tier failed",
				zap.String("tier", string(tier.source)),
				zap.Error(err))
			continue
		}
		if len(bookings) > 0 {
			return bookings, tier.source, nil
		}
	}

	locals, err := c.store.LocalBookings()
	if err == nil && len(locals) > 0 {
		bookings := make([]model.Booking, 0, len(locals))
		for _, local := range locals {
			bookings = append(bookings, local.AsBooking())
		}
		return bookings, SourceLocal, nil
	}

	ids, err := c.store.BookingIds()
	if err != nil {
		return nil, SourcePlaceholder, err
	}

	placeholders := make([]model.Booking, 0, len(ids))
	for _, id := range ids {
		objId, idErr := primitive.ObjectIDFromHex(id)
		if idErr != nil {
			continue
		}
		placeholders = append(placeholders, model.Booking{
			Id:       objId,
			ItemName: "(details unavailable)",
			Status:   model.BookingConfirmed,
		})
	}

	return placeholders, SourcePlaceholder, nil
}

func (c *Client) fetchBookings(ctx context.Context, path string) ([]model.Booking, error) {
	resp, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	bookings := []model.Booking{}
	if err := json.Unmarshal(resp.Data, &bookings); err != nil {
		return nil, fmt.Errorf("malformed bookings payload from %v: %v", path, err)
	}
	return bookings, nil
}

// AsBooking renders the local record in the shape of a server booking for
// display purposes.
func (local LocalBooking) AsBooking() model.Booking {
	return model.Booking{
		ConfirmationNumber: local.ConfirmationNumber,
		BookingType:        local.Intent.BookingType,
		ItemId:             local.Intent.ItemId,
		ItemName:           local.Intent.ItemName,
		ItemPrice:          local.Intent.ItemPrice,
		RoomNumber:         local.Intent.RoomNumber,
		Contact: model.ContactInfo{
			FirstName: local.Intent.FirstName,
			LastName:  local.Intent.LastName,
			Email:     local.Intent.Email,
			Phone:     local.Intent.Phone,
		},
		CheckInDate:    local.Intent.CheckInDate,
		CheckOutDate:   local.Intent.CheckOutDate,
		Adults:         local.Intent.Adults,
		Children:       local.Intent.Children,
		TotalAmount:    local.Intent.TotalAmount,
		Status:         local.Status,
		Payment:        model.PaymentInfo{Method: local.Intent.PaymentMethod, Amount: local.Intent.TotalAmount, Currency: "INR", Status: local.PaymentStatus},
		CancelReason:   local.CancelReason,
		IdempotencyKey: local.Intent.IdempotencyKey,
		BookedAt:       local.CreatedAt,
		UpdatedAt:      local.CreatedAt,
	}
}
