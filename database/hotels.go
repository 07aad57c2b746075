package database

import (
	"fmt"

	"travel-booking-webapp/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func GetHotels(filter bson.D) ([]model.Hotel, error) {
	hotels := []model.Hotel{}

	cur, err := HotelsCollection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("server side problem occured while reading hotels from database: %v", err)
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var hotel model.Hotel
		if err := cur.Decode(&hotel); err != nil {
			return nil, fmt.Errorf("server side problem occured while reading hotels from database: %v", err)
		}
		hotels = append(hotels, hotel)
	}

	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("server side problem occured while reading hotels from database: %v", err)
	}

	return hotels, nil
}

func GetHotelById(hotelId string) (model.Hotel, error) {
	objId, err := primitive.ObjectIDFromHex(hotelId)
	if err != nil {
		return model.Hotel{}, fmt.Errorf("invalid hotel id %v", hotelId)
	}

	hotels, err := GetHotels(bson.D{primitive.E{Key: "_id", Value: objId}})
	if err != nil {
		return model.Hotel{}, err
	}
	if len(hotels) == 0 {
		return model.Hotel{}, fmt.Errorf("no hotel with id %v in database", hotelId)
	}

	return hotels[0], nil
}

func SearchHotels(query string) ([]model.Hotel, error) {
	return GetHotels(bson.D{primitive.E{
		Key:   "$text",
		Value: bson.D{primitive.E{Key: "$search", Value: query}},
	}})
}

// AvailableRooms returns the hotel's rooms that are flagged available and are
// not taken by a confirmed or pending booking overlapping the requested stay.
// This is a read-side convenience only; the booking write path does not lock
// rooms, so two concurrent bookings for the same room can both succeed.
func AvailableRooms(hotel model.Hotel, checkInDate, checkOutDate string) ([]model.Room, error) {
	taken := map[string]bool{}

	if checkInDate != "" && checkOutDate != "" {
		overlapping, err := GetBookings(bson.D{
			primitive.E{Key: "booking_type", Value: model.BookingTypeHotel},
			primitive.E{Key: "item_id", Value: hotel.Id.Hex()},
			primitive.E{Key: "status", Value: bson.D{primitive.E{
				Key: "$in", Value: []string{model.BookingConfirmed, model.BookingPending}}}},
			// dates are ISO yyyy-mm-dd strings, lexicographic compare is safe
			primitive.E{Key: "check_in_date", Value: bson.D{primitive.E{Key: "$lt", Value: checkOutDate}}},
			primitive.E{Key: "check_out_date", Value: bson.D{primitive.E{Key: "$gt", Value: checkInDate}}},
		})
		if err != nil {
			return nil, err
		}
		for _, booking := range overlapping {
			if booking.RoomNumber != "" {
				taken[booking.RoomNumber] = true
			}
		}
	}

	available := []model.Room{}
	for _, room := range hotel.Rooms {
		if room.Available && !taken[room.RoomNumber] && !IsRoomHeld(hotel.Id.Hex(), room.RoomNumber) {
			available = append(available, room)
		}
	}

	return available, nil
}
