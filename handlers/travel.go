package handlers

import (
	"fmt"

	"travel-booking-webapp/database"
	"travel-booking-webapp/errors"
	"travel-booking-webapp/model"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GetTravelOptions serves the travel-option search: ?mode=&from=&to=.
func GetTravelOptions(c *fiber.Ctx) error {
	options, err := database.FindTravelOptions(c.Query("mode"), c.Query("from"), c.Query("to"))
	if err != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprint(err))
	}
	return respondData(c, options)
}

func GetTravelOption(c *fiber.Ctx) error {
	option, err := database.GetTravelOptionById(c.Params("id"))
	if err != nil {
		return errors.RaiseNotFoundError(c, fmt.Sprint(err))
	}
	return respondData(c, option)
}

type travelOptionRequest struct {
	Mode          string  `json:"mode" validate:"required,oneof=flight train bus"`
	Operator      string  `json:"operator" validate:"required"`
	Origin        string  `json:"origin" validate:"required"`
	Destination   string  `json:"destination" validate:"required"`
	DepartureTime string  `json:"departure_time" validate:"required"`
	ArrivalTime   string  `json:"arrival_time" validate:"required"`
	Price         float64 `json:"price" validate:"required,gt=0"`
	SeatsLeft     uint    `json:"seats_left"`
}

func CreateTravelOption(c *fiber.Ctx) error {
	req := new(travelOptionRequest)
	if err := c.BodyParser(req); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("incorrect input for travel option parameters: %v", err))
	}
	if err := validate.Struct(req); err != nil {
		return errors.RaiseValidationError(c, fmt.Sprint(err))
	}

	option := model.TravelOption{
		Id:            primitive.NewObjectID(),
		Mode:          req.Mode,
		Operator:      req.Operator,
		Origin:        req.Origin,
		Destination:   req.Destination,
		DepartureTime: req.DepartureTime,
		ArrivalTime:   req.ArrivalTime,
		Price:         req.Price,
		SeatsLeft:     req.SeatsLeft,
	}

	if err := database.InsertItem(option, database.TravelCollection); err != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprint(err))
	}

	return respondCreated(c, option)
}
