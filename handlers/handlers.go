package handlers

import (
	"time"

	"travel-booking-webapp/chat"
	"travel-booking-webapp/database"
	"travel-booking-webapp/idempotency"
	"travel-booking-webapp/payment"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var (
	idemStore idempotency.Store
	processor payment.Processor
	assistant *chat.GeminiClient

	validate = validator.New()
)

// booking storage access, swapped out in tests
var (
	getBookingById             = database.GetBookingById
	getBookingByIdempotencyKey = database.GetBookingByIdempotencyKey
	insertBooking              = database.InsertBooking
	updateBookingStatus        = database.UpdateBookingStatus
	insertPayment              = database.InsertPayment
	getPaymentsForUser         = database.GetPaymentsForUser
	updatePaymentStatus        = database.UpdatePaymentStatus
)

// Init wires the collaborators the handlers need. Must be called before the
// router is mounted.
func Init(store idempotency.Store, proc payment.Processor, gemini *chat.GeminiClient) {
	idemStore = store
	processor = proc
	assistant = gemini
}

// Health is the liveness probe the booking client checks before attempting
// any submission.
func Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"status":  "ok",
		"time":    time.Now().Format(time.RFC3339),
	})
}

func respondData(c *fiber.Ctx, data interface{}) error {
	return c.JSON(fiber.Map{"success": true, "data": data})
}

func respondCreated(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": data})
}
