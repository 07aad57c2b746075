package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Account roles. Customers book, agents own tour packages, hotel owners
// manage hotels and rooms.
const (
	RoleCustomer   = "customer"
	RoleAgent      = "agent"
	RoleHotelOwner = "hotel-owner"
)

type User struct {
	Id             primitive.ObjectID `json:"_id" bson:"_id"`
	Login          string             `json:"login" bson:"login,omitempty"`
	HashedPassword string             `json:"-" bson:"password_hash,omitempty"`
	Role           string             `json:"role" bson:"role,omitempty"`
	FirstName      string             `json:"first_name" bson:"first_name,omitempty"`
	LastName       string             `json:"last_name" bson:"last_name,omitempty"`
	Email          string             `json:"email" bson:"email,omitempty"`
	Phone          string             `json:"phone" bson:"phone,omitempty"`
	CreatedAt      string             `json:"created_at" bson:"created_at,omitempty"`
}
