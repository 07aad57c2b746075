package handlers

import (
	"fmt"
	"time"

	"travel-booking-webapp/database"
	"travel-booking-webapp/errors"
	"travel-booking-webapp/middleware"
	"travel-booking-webapp/model"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func GetPackages(c *fiber.Ctx) error {
	query := c.Query("q")

	var packages []model.TourPackage
	var err error
	if query != "" {
		packages, err = database.SearchPackages(query)
	} else {
		packages, err = database.GetPackages(bson.D{})
	}
	if err != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprint(err))
	}

	return respondData(c, packages)
}

func GetPackage(c *fiber.Ctx) error {
	pkg, err := database.GetPackageById(c.Params("id"))
	if err != nil {
		return errors.RaiseNotFoundError(c, fmt.Sprint(err))
	}
	return respondData(c, pkg)
}

type packageRequest struct {
	Name         string   `json:"name" validate:"required"`
	Destination  string   `json:"destination" validate:"required"`
	Description  string   `json:"description"`
	BasePrice    float64  `json:"base_price" validate:"required,gt=0"`
	DurationDays uint     `json:"duration_days" validate:"required,gt=0"`
	Itinerary    []string `json:"itinerary"`
}

func CreatePackage(c *fiber.Ctx) error {
	req := new(packageRequest)
	if err := c.BodyParser(req); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("incorrect input for package parameters: %v", err))
	}
	if err := validate.Struct(req); err != nil {
		return errors.RaiseValidationError(c, fmt.Sprint(err))
	}

	pkg := model.TourPackage{
		Id:           primitive.NewObjectID(),
		AgentLogin:   middleware.UserLogin(c),
		Name:         req.Name,
		Destination:  req.Destination,
		Description:  req.Description,
		BasePrice:    req.BasePrice,
		DurationDays: req.DurationDays,
		Itinerary:    req.Itinerary,
		CreatedAt:    time.Now().Format(time.RFC3339),
		UpdatedAt:    time.Now().Format(time.RFC3339),
	}

	if err := database.InsertItem(pkg, database.PackagesCollection); err != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprint(err))
	}

	return respondCreated(c, pkg)
}

func UpdatePackage(c *fiber.Ctx) error {
	pkg, err := database.GetPackageById(c.Params("id"))
	if err != nil {
		return errors.RaiseNotFoundError(c, fmt.Sprint(err))
	}
	if pkg.AgentLogin != middleware.UserLogin(c) {
		return errors.RaisePermissionsError(c, "package belongs to another agent")
	}

	req := new(packageRequest)
	if err := c.BodyParser(req); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("incorrect input for package parameters: %v", err))
	}
	if err := validate.Struct(req); err != nil {
		return errors.RaiseValidationError(c, fmt.Sprint(err))
	}

	pkg.Name = req.Name
	pkg.Destination = req.Destination
	pkg.Description = req.Description
	pkg.BasePrice = req.BasePrice
	pkg.DurationDays = req.DurationDays
	pkg.Itinerary = req.Itinerary
	pkg.UpdatedAt = time.Now().Format(time.RFC3339)

	if err := database.UpdateCollectionItem(pkg.Id, pkg, database.PackagesCollection); err != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprint(err))
	}

	return respondData(c, pkg)
}
