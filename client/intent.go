// Package client is the booking-side counterpart of the server: it turns a
// user's booking intent into exactly one durable booking representation,
// tolerating failure of either submission endpoint by queueing the booking
// in a local outbox and replaying it later.
package client

import (
	"errors"
	"fmt"
	"strings"

	"travel-booking-webapp/model"
)

// BookingIntent is the user's declared desire to reserve an item, prior to
// persistence. JSON tags match the server's submission body.
type BookingIntent struct {
	BookingType     string  `json:"booking_type"`
	ItemId          string  `json:"item_id"`
	ItemName        string  `json:"item_name"`
	ItemPrice       float64 `json:"item_price"`
	RoomNumber      string  `json:"room_number"`
	FirstName       string  `json:"first_name"`
	LastName        string  `json:"last_name"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone"`
	CheckInDate     string  `json:"check_in_date"`
	CheckOutDate    string  `json:"check_out_date"`
	Adults          uint    `json:"adults"`
	Children        uint    `json:"children"`
	TotalAmount     float64 `json:"total_amount"`
	PaymentMethod   string  `json:"payment_method"`
	SpecialRequests string  `json:"special_requests"`
	IdempotencyKey  string  `json:"idempotency_key"`
}

// ErrNotLoggedIn rejects a booking attempt made without an auth token. This
// and validation errors are the only failures surfaced to the user.
var ErrNotLoggedIn = errors.New("not logged in")

// ErrAlreadyCancelled guards the one-way cancellation transition.
var ErrAlreadyCancelled = errors.New("booking is already cancelled")

// ValidationError lists the contact fields missing from an intent. It is
// raised before any network call.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required contact fields: %v", strings.Join(e.Missing, ", "))
}

// validateContact checks the preconditions of the reconciliation workflow:
// first/last name, email and phone must be present.
func (intent *BookingIntent) validateContact() error {
	missing := []string{}
	if strings.TrimSpace(intent.FirstName) == "" {
		missing = append(missing, "first name")
	}
	if strings.TrimSpace(intent.LastName) == "" {
		missing = append(missing, "last name")
	}
	if strings.TrimSpace(intent.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(intent.Phone) == "" {
		missing = append(missing, "phone")
	}

	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}

// Outcome distinguishes what the workflow produced, instead of collapsing
// every path into one "confirmed" state.
type Outcome string

const (
	// OutcomeConfirmed means a server endpoint accepted the booking.
	OutcomeConfirmed Outcome = "confirmed"
	// OutcomeQueued means no server accepted the write and the booking is
	// parked in the local outbox awaiting replay.
	OutcomeQueued Outcome = "queued"
	// OutcomeFailed means the intent never left the workflow: validation
	// failed or the user is not logged in.
	OutcomeFailed Outcome = "failed"
)

// BookingConfirmation is the normalized terminal object: its fields are
// always populated, whichever path produced the booking.
type BookingConfirmation struct {
	ConfirmationNumber string  `json:"confirmation_number"`
	Status             string  `json:"status"`
	PaymentStatus      string  `json:"payment_status"`
	TotalAmount        float64 `json:"total_amount"`
}

// Result is what Book returns. Confirmation is populated for Confirmed and
// Queued outcomes; Err only for Failed.
type Result struct {
	Outcome      Outcome
	Confirmation BookingConfirmation
	Server       *model.Booking
	Local        *LocalBooking
	Err          error
}
