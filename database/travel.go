package database

import (
	"fmt"

	"travel-booking-webapp/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func GetTravelOptions(filter bson.D) ([]model.TravelOption, error) {
	travelOptions := []model.TravelOption{}

	cur, err := TravelCollection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("server side problem occured while reading travel options from database: %v", err)
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var option model.TravelOption
		if err := cur.Decode(&option); err != nil {
			return nil, fmt.Errorf("server side problem occured while reading travel options from database: %v", err)
		}
		travelOptions = append(travelOptions, option)
	}

	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("server side problem occured while reading travel options from database: %v", err)
	}

	return travelOptions, nil
}

func GetTravelOptionById(optionId string) (model.TravelOption, error) {
	objId, err := primitive.ObjectIDFromHex(optionId)
	if err != nil {
		return model.TravelOption{}, fmt.Errorf("invalid travel option id %v", optionId)
	}

	options, err := GetTravelOptions(bson.D{primitive.E{Key: "_id", Value: objId}})
	if err != nil {
		return model.TravelOption{}, err
	}
	if len(options) == 0 {
		return model.TravelOption{}, fmt.Errorf("no travel option with id %v in database", optionId)
	}

	return options[0], nil
}

// FindTravelOptions filters by mode and/or route; empty arguments match all.
func FindTravelOptions(mode, origin, destination string) ([]model.TravelOption, error) {
	filter := bson.D{}
	if mode != "" {
		filter = append(filter, primitive.E{Key: "mode", Value: mode})
	}
	if origin != "" {
		filter = append(filter, primitive.E{Key: "origin", Value: origin})
	}
	if destination != "" {
		filter = append(filter, primitive.E{Key: "destination", Value: destination})
	}
	return GetTravelOptions(filter)
}
