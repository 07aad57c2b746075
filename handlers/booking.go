package handlers

import (
	"fmt"
	"time"

	"travel-booking-webapp/database"
	"travel-booking-webapp/errors"
	"travel-booking-webapp/idempotency"
	"travel-booking-webapp/middleware"
	"travel-booking-webapp/model"
	"travel-booking-webapp/payment"
	"travel-booking-webapp/pricing"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// BookingRequest is the submission body shared by both booking-create
// endpoints. Contact fields are mandatory; everything else is defaulted.
type BookingRequest struct {
	BookingType     string  `json:"booking_type" validate:"required,oneof=hotel package travel"`
	ItemId          string  `json:"item_id" validate:"required"`
	ItemName        string  `json:"item_name"`
	ItemPrice       float64 `json:"item_price"`
	RoomNumber      string  `json:"room_number"`
	FirstName       string  `json:"first_name" validate:"required"`
	LastName        string  `json:"last_name" validate:"required"`
	Email           string  `json:"email" validate:"required,email"`
	Phone           string  `json:"phone" validate:"required"`
	CheckInDate     string  `json:"check_in_date"`
	CheckOutDate    string  `json:"check_out_date"`
	Adults          uint    `json:"adults"`
	Children        uint    `json:"children"`
	TotalAmount     float64 `json:"total_amount"`
	PaymentMethod   string  `json:"payment_method"`
	SpecialRequests string  `json:"special_requests"`
	IdempotencyKey  string  `json:"idempotency_key"`
}

// SimpleCreate serves POST /api/bookings/simple-create, the secondary
// submission endpoint. Same body and response shape as add-booking.
func SimpleCreate(c *fiber.Ctx) error {
	return createBooking(c)
}

func createBooking(c *fiber.Ctx) error {
	req := new(BookingRequest)
	if err := c.BodyParser(req); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("incorrect input for booking parameters: %v", err))
	}
	if err := validate.Struct(req); err != nil {
		return errors.RaiseValidationError(c, fmt.Sprint(err))
	}

	userLogin := middleware.UserLogin(c)

	// a replayed submission must map back to the booking it already created
	if req.IdempotencyKey != "" {
		if bookingId, found, err := idemStore.Get(c.Context(), req.IdempotencyKey); err == nil && found {
			if existing, getErr := getBookingById(bookingId); getErr == nil {
				return respondData(c, existing)
			}
		}
		if existing, found, err := getBookingByIdempotencyKey(userLogin, req.IdempotencyKey); err == nil && found {
			return respondData(c, existing)
		}
	}

	if req.BookingType == model.BookingTypeHotel && req.CheckInDate != "" && req.CheckOutDate != "" {
		if _, err := pricing.Nights(req.CheckInDate, req.CheckOutDate); err != nil {
			return errors.RaiseValidationError(c, fmt.Sprint(err))
		}
	}

	totalAmount := pricing.Normalize(req.BookingType, req.TotalAmount)

	booking := model.Booking{
		Id:                 primitive.NewObjectID(),
		ConfirmationNumber: fmt.Sprintf("BK-%d", time.Now().UnixMilli()),
		BookingType:        req.BookingType,
		UserLogin:          userLogin,
		ItemId:             req.ItemId,
		ItemName:           req.ItemName,
		ItemPrice:          req.ItemPrice,
		RoomNumber:         req.RoomNumber,
		Contact: model.ContactInfo{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     req.Email,
			Phone:     req.Phone,
		},
		CheckInDate:     req.CheckInDate,
		CheckOutDate:    req.CheckOutDate,
		Adults:          req.Adults,
		Children:        req.Children,
		TotalAmount:     totalAmount,
		Status:          model.BookingConfirmed,
		SpecialRequests: req.SpecialRequests,
		IdempotencyKey:  req.IdempotencyKey,
		BookedAt:        time.Now().Format(time.RFC3339),
		UpdatedAt:       time.Now().Format(time.RFC3339),
	}

	booking.Payment = collectPayment(c, &booking, req.PaymentMethod)

	if err := insertBooking(booking); err != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprint(err))
	}

	if req.IdempotencyKey != "" {
		if err := idemStore.Put(c.Context(), req.IdempotencyKey, booking.Id.Hex(), idempotency.DefaultTTL); err != nil {
			zap.L().Warn("cannot record idempotency key", zap.Error(err))
		}
	}

	zap.L().Info("booking created",
		zap.String("booking_id", booking.Id.Hex()),
		zap.String("type", booking.BookingType),
		zap.String("confirmation", booking.ConfirmationNumber),
		zap.Float64("total", booking.TotalAmount))

	return respondCreated(c, booking)
}

// collectPayment charges the configured processor and records the payment
// row. A failed charge leaves the booking pending rather than rejecting it.
func collectPayment(c *fiber.Ctx, booking *model.Booking, method string) model.PaymentInfo {
	info := model.PaymentInfo{
		Method:   method,
		Amount:   booking.TotalAmount,
		Currency: "INR",
		Status:   model.PaymentPending,
	}
	if method == "" {
		booking.Status = model.BookingPending
		return info
	}

	result, err := processor.Charge(c.Context(), payment.ChargeRequest{
		Amount:      booking.TotalAmount,
		Currency:    "inr",
		Method:      method,
		Email:       booking.Contact.Email,
		Description: fmt.Sprintf("%v booking %v", booking.BookingType, booking.ConfirmationNumber),
	})
	if err != nil {
		zap.L().Warn("payment charge failed, booking left pending",
			zap.String("booking_id", booking.Id.Hex()),
			zap.Error(err))
		booking.Status = model.BookingPending
		return info
	}

	info.Status = result.Status
	if result.Status != model.PaymentCompleted {
		booking.Status = model.BookingPending
	}

	paymentRow := model.Payment{
		Id:          primitive.NewObjectID(),
		BookingId:   booking.Id.Hex(),
		UserLogin:   booking.UserLogin,
		Method:      method,
		Amount:      booking.TotalAmount,
		Currency:    "INR",
		Status:      result.Status,
		ProviderRef: result.ProviderRef,
		CreatedAt:   time.Now().Format(time.RFC3339),
		UpdatedAt:   time.Now().Format(time.RFC3339),
	}
	if err := insertPayment(paymentRow); err != nil {
		zap.L().Warn("cannot record payment row", zap.Error(err))
	}

	return info
}

// MyBookings serves GET /api/bookings/my-bookings.
func MyBookings(c *fiber.Ctx) error {
	bookings, err := database.GetBookingsForUser(middleware.UserLogin(c))
	if err != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprint(err))
	}
	return respondData(c, bookings)
}

func GetBooking(c *fiber.Ctx) error {
	booking, err := getBookingById(c.Params("id"))
	if err != nil {
		return errors.RaiseNotFoundError(c, fmt.Sprint(err))
	}
	if booking.UserLogin != middleware.UserLogin(c) && middleware.UserRole(c) == model.RoleCustomer {
		return errors.RaisePermissionsError(c, "booking belongs to another account")
	}
	return respondData(c, booking)
}

var allowedStatuses = map[string]bool{
	model.BookingConfirmed: true,
	model.BookingPending:   true,
	model.BookingCancelled: true,
	model.BookingCompleted: true,
}

// UpdateBookingStatus serves PUT /api/bookings/:id/status, the generic
// status-update endpoint the client uses as a cancellation fallback.
func UpdateBookingStatus(c *fiber.Ctx) error {
	type statusRequest struct {
		Status string `json:"status"`
		Reason string `json:"reason"`
	}

	req := new(statusRequest)
	if err := c.BodyParser(req); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("cannot parse status request: %v", err))
	}
	if !allowedStatuses[req.Status] {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unknown status %v", req.Status))
	}

	booking, err := getBookingById(c.Params("id"))
	if err != nil {
		return errors.RaiseNotFoundError(c, fmt.Sprint(err))
	}
	if booking.UserLogin != middleware.UserLogin(c) && middleware.UserRole(c) == model.RoleCustomer {
		return errors.RaisePermissionsError(c, "booking belongs to another account")
	}

	if req.Status == model.BookingCancelled {
		return cancelBooking(c, booking, req.Reason)
	}

	// cancelled is terminal, the generic path must not resurrect a booking
	if booking.Status == model.BookingCancelled {
		return errors.RaiseConflictError(c, "cannot change status of a cancelled booking")
	}

	updated, err := updateBookingStatus(booking, req.Status, req.Reason)
	if err != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprint(err))
	}

	return respondData(c, updated)
}
