package database

import (
	"fmt"
	"time"

	"travel-booking-webapp/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func InsertPayment(payment model.Payment) error {
	return InsertItem(payment, PaymentsCollection)
}

func UpdatePaymentStatus(payment model.Payment, status string) (model.Payment, error) {
	payment.Status = status
	payment.UpdatedAt = time.Now().Format(time.RFC3339)

	if err := UpdateCollectionItem(payment.Id, payment, PaymentsCollection); err != nil {
		return model.Payment{}, err
	}

	return payment, nil
}

func GetPaymentById(paymentId string) (model.Payment, error) {
	objId, err := primitive.ObjectIDFromHex(paymentId)
	if err != nil {
		return model.Payment{}, fmt.Errorf("invalid payment id %v", paymentId)
	}

	var payment model.Payment
	res := PaymentsCollection.FindOne(ctx, bson.D{primitive.E{Key: "_id", Value: objId}})
	if err := res.Decode(&payment); err != nil {
		return model.Payment{}, fmt.Errorf("no payment with id %v in database", paymentId)
	}

	return payment, nil
}

func GetPaymentsForUser(userLogin string) ([]model.Payment, error) {
	payments := []model.Payment{}

	cur, err := PaymentsCollection.Find(ctx, bson.D{primitive.E{Key: "user_login", Value: userLogin}})
	if err != nil {
		return nil, fmt.Errorf("server side problem occured while reading payments from database: %v", err)
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var payment model.Payment
		if err := cur.Decode(&payment); err != nil {
			return nil, fmt.Errorf("server side problem occured while reading payments from database: %v", err)
		}
		payments = append(payments, payment)
	}

	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("server side problem occured while reading payments from database: %v", err)
	}

	return payments, nil
}
