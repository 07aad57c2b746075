package handlers

import (
	"fmt"
	"time"

	"travel-booking-webapp/chat"
	"travel-booking-webapp/database"
	"travel-booking-webapp/errors"
	"travel-booking-webapp/middleware"
	"travel-booking-webapp/model"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func CreateChatSession(c *fiber.Ctx) error {
	session := model.ChatSession{
		Id:        primitive.NewObjectID(),
		UserLogin: middleware.UserLogin(c),
		Messages:  []model.ChatMessage{},
		CreatedAt: time.Now().Format(time.RFC3339),
		UpdatedAt: time.Now().Format(time.RFC3339),
	}

	if err := database.InsertChatSession(session); err != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprint(err))
	}

	return respondCreated(c, session)
}

// AppendChatMessage relays the user message to the model and stores both
// sides of the exchange. An unreachable model yields a canned reply, never
// an error; chat support degrades the same way the rest of the app does.
func AppendChatMessage(c *fiber.Ctx) error {
	type messageRequest struct {
		Content string `json:"content" validate:"required"`
	}

	req := new(messageRequest)
	if err := c.BodyParser(req); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("cannot parse chat message: %v", err))
	}
	if err := validate.Struct(req); err != nil {
		return errors.RaiseValidationError(c, fmt.Sprint(err))
	}

	session, err := database.GetChatSession(c.Params("id"))
	if err != nil {
		return errors.RaiseNotFoundError(c, fmt.Sprint(err))
	}
	if session.UserLogin != middleware.UserLogin(c) {
		return errors.RaisePermissionsError(c, "chat session belongs to another account")
	}

	reply, replyErr := assistant.Reply(c.Context(), session.Messages, req.Content)
	if replyErr != nil {
		zap.L().Warn("chat relay failed, using fallback reply",
			zap.String("session_id", session.Id.Hex()),
			zap.Error(replyErr))
		reply = chat.FallbackReply
	}

	now := time.Now().Format(time.RFC3339)
	session.Messages = append(session.Messages,
		model.ChatMessage{Role: model.ChatRoleUser, Content: req.Content, SentAt: now},
		model.ChatMessage{Role: model.ChatRoleAssistant, Content: reply, SentAt: now})
	session.UpdatedAt = now

	if err := database.UpdateCollectionItem(session.Id, session, database.ChatSessionsCollection); err != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprint(err))
	}

	return respondData(c, fiber.Map{"reply": reply, "session": session})
}

func DeleteChatSession(c *fiber.Ctx) error {
	session, err := database.GetChatSession(c.Params("id"))
	if err != nil {
		return errors.RaiseNotFoundError(c, fmt.Sprint(err))
	}
	if session.UserLogin != middleware.UserLogin(c) {
		return errors.RaisePermissionsError(c, "chat session belongs to another account")
	}

	if err := database.DeleteChatSession(c.Params("id")); err != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprint(err))
	}

	return respondData(c, fiber.Map{"deleted": true})
}
