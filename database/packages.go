package database

import (
	"fmt"

	"travel-booking-webapp/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func GetPackages(filter bson.D) ([]model.TourPackage, error) {
	packages := []model.TourPackage{}

	cur, err := PackagesCollection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("server side problem occured while reading packages from database: %v", err)
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var pkg model.TourPackage
		if err := cur.Decode(&pkg); err != nil {
			return nil, fmt.Errorf("server side problem occured while reading packages from database: %v", err)
		}
		packages = append(packages, pkg)
	}

	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("server side problem occured while reading packages from database: %v", err)
	}

	return packages, nil
}

func GetPackageById(packageId string) (model.TourPackage, error) {
	objId, err := primitive.ObjectIDFromHex(packageId)
	if err != nil {
		return model.TourPackage{}, fmt.Errorf("invalid package id %v", packageId)
	}

	packages, err := GetPackages(bson.D{primitive.E{Key: "_id", Value: objId}})
	if err != nil {
		return model.TourPackage{}, err
	}
	if len(packages) == 0 {
		return model.TourPackage{}, fmt.Errorf("no package with id %v in database", packageId)
	}

	return packages[0], nil
}

func SearchPackages(query string) ([]model.TourPackage, error) {
	return GetPackages(bson.D{primitive.E{
		Key:   "$text",
		Value: bson.D{primitive.E{Key: "$search", Value: query}},
	}})
}
