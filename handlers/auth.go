package handlers

import (
	"fmt"
	"time"

	"travel-booking-webapp/config"
	"travel-booking-webapp/database"
	"travel-booking-webapp/errors"
	"travel-booking-webapp/middleware"
	"travel-booking-webapp/model"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type registerRequest struct {
	Login     string `json:"login" validate:"required,min=3"`
	Password  string `json:"password" validate:"required,min=8"`
	Role      string `json:"role" validate:"omitempty,oneof=customer agent hotel-owner"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required"`
}

func Register(c *fiber.Ctx) error {
	req := new(registerRequest)
	if err := c.BodyParser(req); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("incorrect input for registration: %v", err))
	}
	if err := validate.Struct(req); err != nil {
		return errors.RaiseValidationError(c, fmt.Sprint(err))
	}
	if req.Role == "" {
		req.Role = model.RoleCustomer
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return errors.RaiseInternalServerError(c, "cannot hash password")
	}

	user := model.User{
		Id:             primitive.NewObjectID(),
		Login:          req.Login,
		HashedPassword: string(hash),
		Role:           req.Role,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Phone:          req.Phone,
		CreatedAt:      time.Now().Format(time.RFC3339),
	}

	if err := database.CreateUser(user); err != nil {
		return errors.RaiseConflictError(c, fmt.Sprint(err))
	}

	zap.L().Info("account registered",
		zap.String("login", user.Login),
		zap.String("role", user.Role))

	return respondCreated(c, user)
}

func isPasswordHashCorrect(dbHash, pass string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(dbHash), []byte(pass))
	return err == nil
}

// Login authenticates any of the three account domains; the issued token
// carries the role claim the routers gate on.
func Login(c *fiber.Ctx) error {
	type credentials struct {
		Login    string `json:"login"`
		Password string `json:"password"`
	}

	creds := new(credentials)
	if err := c.BodyParser(creds); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("cannot parse credentials: %v", err))
	}

	user, getErr := database.GetUserData(creds.Login)
	if getErr != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprint(getErr))
	}

	if user.Login == "" || !isPasswordHashCorrect(user.HashedPassword, creds.Password) {
		return errors.RaiseError(c, fiber.StatusUnauthorized, "invalid login or password", "")
	}

	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["username"] = user.Login
	claims["exp"] = time.Now().Add(config.C.JWT.Expiration).Unix()
	claims["role"] = user.Role

	signed, err := token.SignedString([]byte(config.C.JWT.Secret))
	if err != nil {
		zap.L().Error("cannot sign token", zap.Error(err))
		return errors.RaiseInternalServerError(c, "cannot sign token")
	}

	return c.JSON(fiber.Map{"success": true, "data": signed})
}

// UserBookings serves GET /api/auth/user-bookings, the profile-scoped
// booking history read.
func UserBookings(c *fiber.Ctx) error {
	bookings, err := database.GetBookingsForUser(middleware.UserLogin(c))
	if err != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprint(err))
	}
	return respondData(c, bookings)
}

// AddBooking serves POST /api/auth/add-booking, the primary submission
// endpoint that attaches the booking to the user profile.
func AddBooking(c *fiber.Ctx) error {
	return createBooking(c)
}

// CancelAuthBooking serves PUT /api/auth/cancel-booking/:id.
func CancelAuthBooking(c *fiber.Ctx) error {
	type cancelRequest struct {
		Reason string `json:"reason"`
	}

	req := new(cancelRequest)
	if err := c.BodyParser(req); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("cannot parse cancellation request: %v", err))
	}

	booking, err := getBookingById(c.Params("id"))
	if err != nil {
		return errors.RaiseNotFoundError(c, fmt.Sprint(err))
	}
	if booking.UserLogin != middleware.UserLogin(c) {
		return errors.RaisePermissionsError(c, "booking belongs to another account")
	}

	return cancelBooking(c, booking, req.Reason)
}

// cancelBooking performs the one-way transition to cancelled and refunds a
// completed payment. An already-cancelled booking is never touched again.
func cancelBooking(c *fiber.Ctx, booking model.Booking, reason string) error {
	if booking.Status == model.BookingCancelled {
		return errors.RaiseConflictError(c, "booking is already cancelled")
	}
	if !booking.CanCancel() {
		return errors.RaiseConflictError(c, fmt.Sprintf("cannot cancel a %v booking", booking.Status))
	}

	if booking.Payment.Status == model.PaymentCompleted && booking.Payment.Method != "" {
		payments, payErr := getPaymentsForUser(booking.UserLogin)
		if payErr == nil {
			for _, p := range payments {
				if p.BookingId == booking.Id.Hex() && p.Status == model.PaymentCompleted {
					if err := processor.Refund(c.Context(), p.ProviderRef); err != nil {
						zap.L().Warn("refund failed, cancelling anyway",
							zap.String("booking_id", booking.Id.Hex()),
							zap.Error(err))
					}
					// the payment row and the embedded copy must agree
					if _, updErr := updatePaymentStatus(p, model.PaymentRefunded); updErr != nil {
						zap.L().Warn("cannot update payment row after refund",
							zap.String("payment_id", p.Id.Hex()),
							zap.Error(updErr))
					}
					break
				}
			}
		}
		booking.Payment.Status = model.PaymentRefunded
	}

	updated, err := updateBookingStatus(booking, model.BookingCancelled, reason)
	if err != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprint(err))
	}

	zap.L().Info("booking cancelled",
		zap.String("booking_id", updated.Id.Hex()),
		zap.String("user", updated.UserLogin))

	return respondData(c, updated)
}
