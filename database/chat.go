package database

import (
	"fmt"

	"travel-booking-webapp/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func GetChatSession(sessionId string) (model.ChatSession, error) {
	objId, err := primitive.ObjectIDFromHex(sessionId)
	if err != nil {
		return model.ChatSession{}, fmt.Errorf("invalid chat session id %v", sessionId)
	}

	var session model.ChatSession
	res := ChatSessionsCollection.FindOne(ctx, bson.D{primitive.E{Key: "_id", Value: objId}})
	if err := res.Decode(&session); err != nil {
		return model.ChatSession{}, fmt.Errorf("no chat session with id %v in database", sessionId)
	}

	return session, nil
}

func InsertChatSession(session model.ChatSession) error {
	return InsertItem(session, ChatSessionsCollection)
}

func DeleteChatSession(sessionId string) error {
	objId, err := primitive.ObjectIDFromHex(sessionId)
	if err != nil {
		return fmt.Errorf("invalid chat session id %v", sessionId)
	}

	res, err := ChatSessionsCollection.DeleteOne(ctx, bson.D{primitive.E{Key: "_id", Value: objId}})
	if err != nil {
		return fmt.Errorf("server side problem occured while deleting chat session: %v", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("no chat session with id %v in database", sessionId)
	}

	return nil
}
