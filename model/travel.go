package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Travel modes for standalone travel options (not tied to a hotel or package).
const (
	TravelModeFlight = "flight"
	TravelModeTrain  = "train"
	TravelModeBus    = "bus"
)

type TravelOption struct {
	Id            primitive.ObjectID `json:"_id" bson:"_id"`
	Mode          string             `json:"mode" bson:"mode"`
	Operator      string             `json:"operator" bson:"operator"`
	Origin        string             `json:"origin" bson:"origin"`
	Destination   string             `json:"destination" bson:"destination"`
	DepartureTime string             `json:"departure_time" bson:"departure_time"`
	ArrivalTime   string             `json:"arrival_time" bson:"arrival_time"`
	Price         float64            `json:"price" bson:"price"`
	SeatsLeft     uint               `json:"seats_left" bson:"seats_left"`
}
