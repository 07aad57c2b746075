package model

import "go.mongodb.org/mongo-driver/bson/primitive"

type TourPackage struct {
	Id           primitive.ObjectID `json:"_id" bson:"_id"`
	AgentLogin   string             `json:"agent_login" bson:"agent_login"`
	Name         string             `json:"name" bson:"name"`
	Destination  string             `json:"destination" bson:"destination"`
	Description  string             `json:"description" bson:"description,omitempty"`
	BasePrice    float64            `json:"base_price" bson:"base_price"`
	DurationDays uint               `json:"duration_days" bson:"duration_days"`
	Itinerary    []string           `json:"itinerary" bson:"itinerary,omitempty"`
	CreatedAt    string             `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt    string             `json:"updated_at" bson:"updated_at,omitempty"`
}
