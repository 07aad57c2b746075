package model

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"
	PaymentRefunded  = "refunded"
)

type Payment struct {
	Id          primitive.ObjectID `json:"_id" bson:"_id"`
	BookingId   string             `json:"booking_id" bson:"booking_id"`
	UserLogin   string             `json:"user_login" bson:"user_login"`
	Method      string             `json:"method" bson:"method"`
	Amount      float64            `json:"amount" bson:"amount"`
	Currency    string             `json:"currency" bson:"currency"`
	Status      string             `json:"status" bson:"status"`
	ProviderRef string             `json:"provider_ref,omitempty" bson:"provider_ref,omitempty"`
	CreatedAt   string             `json:"created_at" bson:"created_at"`
	UpdatedAt   string             `json:"updated_at" bson:"updated_at"`
}
