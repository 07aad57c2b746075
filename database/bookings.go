package database

import (
	"fmt"
	"time"

	"travel-booking-webapp/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func GetBookings(filter bson.D) ([]model.Booking, error) {
	bookings := []model.Booking{}

	cur, err := BookingsCollection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("server side problem occured while reading bookings from database: %v", err)
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var booking model.Booking
		if err := cur.Decode(&booking); err != nil {
			return nil, fmt.Errorf("server side problem occured while reading bookings from database: %v", err)
		}
		bookings = append(bookings, booking)
	}

	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("server side problem occured while reading bookings from database: %v", err)
	}

	return bookings, nil
}

func GetBookingsForUser(userLogin string) ([]model.Booking, error) {
	return GetBookings(bson.D{primitive.E{Key: "user_login", Value: userLogin}})
}

func GetBookingById(bookingId string) (model.Booking, error) {
	objId, err := primitive.ObjectIDFromHex(bookingId)
	if err != nil {
		return model.Booking{}, fmt.Errorf("invalid booking id %v", bookingId)
	}

	bookings, err := GetBookings(bson.D{primitive.E{Key: "_id", Value: objId}})
	if err != nil {
		return model.Booking{}, err
	}
	if len(bookings) == 0 {
		return model.Booking{}, fmt.Errorf("no booking with id %v in database", bookingId)
	}

	return bookings[0], nil
}

// GetBookingByIdempotencyKey looks up a previous submission of the same
// intent. An empty key never matches.
func GetBookingByIdempotencyKey(userLogin, key string) (model.Booking, bool, error) {
	if key == "" {
		return model.Booking{}, false, nil
	}

	bookings, err := GetBookings(bson.D{
		primitive.E{Key: "user_login", Value: userLogin},
		primitive.E{Key: "idempotency_key", Value: key},
	})
	if err != nil {
		return model.Booking{}, false, err
	}
	if len(bookings) == 0 {
		return model.Booking{}, false, nil
	}

	return bookings[0], true, nil
}

func InsertBooking(booking model.Booking) error {
	return InsertItem(booking, BookingsCollection)
}

func UpdateBookingStatus(booking model.Booking, status, reason string) (model.Booking, error) {
	booking.Status = status
	if reason != "" {
		booking.CancelReason = reason
	}
	booking.UpdatedAt = time.Now().Format(time.RFC3339)

	if err := UpdateCollectionItem(booking.Id, booking, BookingsCollection); err != nil {
		return model.Booking{}, err
	}

	return booking, nil
}
