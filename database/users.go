package database

import (
	"fmt"

	"travel-booking-webapp/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func GetUserData(userLogin string) (model.User, error) {
	var user model.User
	cur, err := UsersCollection.Find(ctx, bson.D{primitive.E{Key: "login", Value: userLogin}})
	if err != nil {
		return model.User{}, fmt.Errorf("server side problem occured while reading user data from database: %v", err)
	}

	for cur.Next(ctx) {
		if err := cur.Decode(&user); err != nil {
			return model.User{}, fmt.Errorf("server side problem occured while reading user data from database: %v", err)
		}
	}

	if err := cur.Err(); err != nil {
		return model.User{}, fmt.Errorf("server side problem occured while reading user data from database: %v", err)
	}

	cur.Close(ctx)

	return user, nil
}

func CreateUser(user model.User) error {
	existing, err := GetUserData(user.Login)
	if err != nil {
		return err
	}
	if existing.Login == user.Login {
		return fmt.Errorf("login %v is already taken", user.Login)
	}

	return InsertItem(user, UsersCollection)
}
