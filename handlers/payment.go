package handlers

import (
	"fmt"

	"travel-booking-webapp/database"
	"travel-booking-webapp/errors"
	"travel-booking-webapp/middleware"
	"travel-booking-webapp/model"

	"github.com/gofiber/fiber/v2"
)

func GetPayment(c *fiber.Ctx) error {
	paymentRow, err := database.GetPaymentById(c.Params("id"))
	if err != nil {
		return errors.RaiseNotFoundError(c, fmt.Sprint(err))
	}
	if paymentRow.UserLogin != middleware.UserLogin(c) && middleware.UserRole(c) == model.RoleCustomer {
		return errors.RaisePermissionsError(c, "payment belongs to another account")
	}
	return respondData(c, paymentRow)
}

func MyPayments(c *fiber.Ctx) error {
	payments, err := database.GetPaymentsForUser(middleware.UserLogin(c))
	if err != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprint(err))
	}
	return respondData(c, payments)
}
