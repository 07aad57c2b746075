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

func GetHotels(c *fiber.Ctx) error {
	query := c.Query("q")

	var hotels []model.Hotel
	var err error
	if query != "" {
		hotels, err = database.SearchHotels(query)
	} else {
		hotels, err = database.GetHotels(bson.D{})
	}
	if err != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprint(err))
	}

	return respondData(c, hotels)
}

func GetHotel(c *fiber.Ctx) error {
	hotel, err := database.GetHotelById(c.Params("id"))
	if err != nil {
		return errors.RaiseNotFoundError(c, fmt.Sprint(err))
	}
	return respondData(c, hotel)
}

type hotelRequest struct {
	Name        string   `json:"name" validate:"required"`
	City        string   `json:"city" validate:"required"`
	Address     string   `json:"address"`
	Description string   `json:"description"`
	Rating      float64  `json:"rating" validate:"gte=0,lte=5"`
	Amenities   []string `json:"amenities"`
}

func CreateHotel(c *fiber.Ctx) error {
	req := new(hotelRequest)
	if err := c.BodyParser(req); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("incorrect input for hotel parameters: %v", err))
	}
	if err := validate.Struct(req); err != nil {
		return errors.RaiseValidationError(c, fmt.Sprint(err))
	}

	hotel := model.Hotel{
		Id:          primitive.NewObjectID(),
		OwnerLogin:  middleware.UserLogin(c),
		Name:        req.Name,
		City:        req.City,
		Address:     req.Address,
		Description: req.Description,
		Rating:      req.Rating,
		Amenities:   req.Amenities,
		Rooms:       []model.Room{},
		CreatedAt:   time.Now().Format(time.RFC3339),
		UpdatedAt:   time.Now().Format(time.RFC3339),
	}

	if err := database.InsertItem(hotel, database.HotelsCollection); err != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprint(err))
	}

	return respondCreated(c, hotel)
}

func UpdateHotel(c *fiber.Ctx) error {
	hotel, err := database.GetHotelById(c.Params("id"))
	if err != nil {
		return errors.RaiseNotFoundError(c, fmt.Sprint(err))
	}
	if hotel.OwnerLogin != middleware.UserLogin(c) {
		return errors.RaisePermissionsError(c, "hotel belongs to another account")
	}

	req := new(hotelRequest)
	if err := c.BodyParser(req); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("incorrect input for hotel parameters: %v", err))
	}
	if err := validate.Struct(req); err != nil {
		return errors.RaiseValidationError(c, fmt.Sprint(err))
	}

	hotel.Name = req.Name
	hotel.City = req.City
	hotel.Address = req.Address
	hotel.Description = req.Description
	hotel.Rating = req.Rating
	hotel.Amenities = req.Amenities
	hotel.UpdatedAt = time.Now().Format(time.RFC3339)

	if err := database.UpdateCollectionItem(hotel.Id, hotel, database.HotelsCollection); err != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprint(err))
	}

	return respondData(c, hotel)
}

type roomRequest struct {
	RoomNumber    string   `json:"room_number" validate:"required"`
	Type          string   `json:"type" validate:"required"`
	Capacity      uint     `json:"capacity" validate:"required,gt=0"`
	PricePerNight float64  `json:"price_per_night" validate:"required,gt=0"`
	Available     bool     `json:"available"`
	Amenities     []string `json:"amenities"`
}

// UpsertRoom adds a room or replaces the one with the same room number.
func UpsertRoom(c *fiber.Ctx) error {
	hotel, err := database.GetHotelById(c.Params("id"))
	if err != nil {
		return errors.RaiseNotFoundError(c, fmt.Sprint(err))
	}
	if hotel.OwnerLogin != middleware.UserLogin(c) {
		return errors.RaisePermissionsError(c, "hotel belongs to another account")
	}

	req := new(roomRequest)
	if err := c.BodyParser(req); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("incorrect input for room parameters: %v", err))
	}
	if err := validate.Struct(req); err != nil {
		return errors.RaiseValidationError(c, fmt.Sprint(err))
	}

	room := model.Room{
		RoomNumber:    req.RoomNumber,
		Type:          req.Type,
		Capacity:      req.Capacity,
		PricePerNight: req.PricePerNight,
		Available:     req.Available,
		Amenities:     req.Amenities,
	}

	replaced := false
	for i, existing := range hotel.Rooms {
		if existing.RoomNumber == room.RoomNumber {
			hotel.Rooms[i] = room
			replaced = true
			break
		}
	}
	if !replaced {
		hotel.Rooms = append(hotel.Rooms, room)
	}
	hotel.UpdatedAt = time.Now().Format(time.RFC3339)

	if err := database.UpdateCollectionItem(hotel.Id, hotel, database.HotelsCollection); err != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprint(err))
	}

	return respondData(c, room)
}

// AvailableRooms serves GET /api/hotels/:id/available-rooms, the query
// feeding the booking client's room auto-selection.
func AvailableRooms(c *fiber.Ctx) error {
	hotel, err := database.GetHotelById(c.Params("id"))
	if err != nil {
		return errors.RaiseNotFoundError(c, fmt.Sprint(err))
	}

	rooms, err := database.AvailableRooms(hotel, c.Query("checkInDate"), c.Query("checkOutDate"))
	if err != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprint(err))
	}

	return respondData(c, rooms)
}

// HoldRoom serves POST /api/hotels/:id/rooms/:roomNumber/hold. Holds are
// advisory; they only hide the room from other shoppers for a few minutes.
func HoldRoom(c *fiber.Ctx) error {
	hotel, err := database.GetHotelById(c.Params("id"))
	if err != nil {
		return errors.RaiseNotFoundError(c, fmt.Sprint(err))
	}

	granted, err := database.HoldRoom(hotel.Id.Hex(), c.Params("roomNumber"), middleware.UserLogin(c))
	if err != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprint(err))
	}
	if !granted {
		return errors.RaiseConflictError(c, "room is held by another shopper")
	}

	return respondData(c, fiber.Map{"held": true})
}

func ReleaseRoom(c *fiber.Ctx) error {
	hotel, err := database.GetHotelById(c.Params("id"))
	if err != nil {
		return errors.RaiseNotFoundError(c, fmt.Sprint(err))
	}

	if err := database.ReleaseRoom(hotel.Id.Hex(), c.Params("roomNumber")); err != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprint(err))
	}

	return respondData(c, fiber.Map{"held": false})
}
