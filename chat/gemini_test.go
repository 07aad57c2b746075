package chat_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"travel-booking-webapp/chat"
	"travel-booking-webapp/model"

	"github.com/stretchr/testify/assert"
)

func geminiStub(t *testing.T, reply string, failures int) (*httptest.Server, *int) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls <= failures {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}

		var req map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.NotEmpty(t, req["contents"])

		json.NewEncoder(w).Encode(map[string]interface{}{
			"candidates": []map[string]interface{}{
				{"content": map[string]interface{}{
					"role":  "model",
					"parts": []map[string]string{{"text": reply}},
				}},
			},
		})
	}))
	t.Cleanup(server.Close)
	return server, &calls
}

func TestGeminiReply(t *testing.T) {
	server, _ := geminiStub(t, "You can cancel from the bookings page.", 0)
	client := chat.NewGeminiClientWithBaseURL("test-key", "gemini-1.5-flash", server.URL)

	history := []model.ChatMessage{
		{Role: model.ChatRoleUser, Content: "hi"},
		{Role: model.ChatRoleAssistant, Content: "hello, how can I help?"},
	}

	reply, err := client.Reply(context.Background(), history, "how do I cancel?")
	assert.NoError(t, err)
	assert.Equal(t, "You can cancel from the bookings page.", reply)
}

func TestGeminiRetriesTransientFailures(t *testing.T) {
	server, calls := geminiStub(t, "recovered", 2)
	client := chat.NewGeminiClientWithBaseURL("test-key", "gemini-1.5-flash", server.URL)

	reply, err := client.Reply(context.Background(), nil, "hello")
	assert.NoError(t, err)
	assert.Equal(t, "recovered", reply)
	assert.Equal(t, 3, *calls)
}

func TestGeminiRequiresAPIKey(t *testing.T) {
	client := chat.NewGeminiClient("", "gemini-1.5-flash")

	_, err := client.Reply(context.Background(), nil, "hello")
	assert.Error(t, err)
}
