package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Booking statuses. A booking is never deleted, only status-transitioned;
// cancellation is one-way from confirmed/pending.
const (
	BookingConfirmed = "confirmed"
	BookingPending   = "pending"
	BookingCancelled = "cancelled"
	BookingCompleted = "completed"
)

// Booking types mirror the bookable item kinds.
const (
	BookingTypeHotel   = "hotel"
	BookingTypePackage = "package"
	BookingTypeTravel  = "travel"
)

type ContactInfo struct {
	FirstName string `json:"first_name" bson:"first_name"`
	LastName  string `json:"last_name" bson:"last_name"`
	Email     string `json:"email" bson:"email"`
	Phone     string `json:"phone" bson:"phone"`
}

type PaymentInfo struct {
	Method   string  `json:"method" bson:"method"`
	Amount   float64 `json:"amount" bson:"amount"`
	Currency string  `json:"currency" bson:"currency"`
	Status   string  `json:"status" bson:"status"`
}

type Booking struct {
	Id                 primitive.ObjectID `json:"_id" bson:"_id"`
	ConfirmationNumber string             `json:"confirmation_number" bson:"confirmation_number"`
	BookingType        string             `json:"booking_type" bson:"booking_type"`
	UserLogin          string             `json:"user_login" bson:"user_login"`
	ItemId             string             `json:"item_id" bson:"item_id"`
	ItemName           string             `json:"item_name" bson:"item_name"`
	ItemPrice          float64            `json:"item_price" bson:"item_price"`
	RoomNumber         string             `json:"room_number,omitempty" bson:"room_number,omitempty"`
	Contact            ContactInfo        `json:"contact" bson:"contact"`
	CheckInDate        string             `json:"check_in_date" bson:"check_in_date"`
	CheckOutDate       string             `json:"check_out_date" bson:"check_out_date"`
	Adults             uint               `json:"adults" bson:"adults"`
	Children           uint               `json:"children" bson:"children"`
	TotalAmount        float64            `json:"total_amount" bson:"total_amount"`
	Status             string             `json:"status" bson:"status"`
	Payment            PaymentInfo        `json:"payment" bson:"payment"`
	SpecialRequests    string             `json:"special_requests,omitempty" bson:"special_requests,omitempty"`
	CancelReason       string             `json:"cancel_reason,omitempty" bson:"cancel_reason,omitempty"`
	IdempotencyKey     string             `json:"idempotency_key,omitempty" bson:"idempotency_key,omitempty"`
	BookedAt           string             `json:"booked_at" bson:"booked_at"`
	UpdatedAt          string             `json:"updated_at" bson:"updated_at"`
}

// CanCancel reports whether the booking may still transition to cancelled.
func (b *Booking) CanCancel() bool {
	return b.Status == BookingConfirmed || b.Status == BookingPending
}
