package model

import "go.mongodb.org/mongo-driver/bson/primitive"

type Room struct {
	RoomNumber    string   `json:"room_number" bson:"room_number"`
	Type          string   `json:"type" bson:"type"`
	Capacity      uint     `json:"capacity" bson:"capacity"`
	PricePerNight float64  `json:"price_per_night" bson:"price_per_night"`
	Available     bool     `json:"available" bson:"available"`
	Amenities     []string `json:"amenities" bson:"amenities,omitempty"`
}

type Hotel struct {
	Id          primitive.ObjectID `json:"_id" bson:"_id"`
	OwnerLogin  string             `json:"owner_login" bson:"owner_login"`
	Name        string             `json:"name" bson:"name"`
	City        string             `json:"city" bson:"city"`
	Address     string             `json:"address" bson:"address,omitempty"`
	Description string             `json:"description" bson:"description,omitempty"`
	Rating      float64            `json:"rating" bson:"rating,omitempty"`
	Amenities   []string           `json:"amenities" bson:"amenities,omitempty"`
	Rooms       []Room             `json:"rooms" bson:"rooms"`
	CreatedAt   string             `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt   string             `json:"updated_at" bson:"updated_at,omitempty"`
}
