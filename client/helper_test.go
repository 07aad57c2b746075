package client_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"travel-booking-webapp/client"
	"travel-booking-webapp/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeBackend stubs the booking server with per-endpoint failure knobs and
// call counters.
type fakeBackend struct {
	healthStatus int // 0 means healthy
	addStatus    int // 0 means accept
	simpleStatus int // 0 means accept
	rooms        []model.Room

	healthCalls int
	addCalls    int
	simpleCalls int
	roomCalls   int

	lastAddBody    []byte
	lastSimpleBody []byte

	lastBooking model.Booking

	myBookings      []model.Booking
	profileBookings []model.Booking
	myStatus        int
	profileStatus   int

	cancelStatus       int
	statusUpdateStatus int
	cancelCalls        int
	statusUpdateCalls  int
}

func (b *fakeBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.URL.Path == "/api/health":
		b.healthCalls++
		if b.healthStatus != 0 {
			w.WriteHeader(b.healthStatus)
			json.NewEncoder(w).Encode(map[string]interface{}{"success": false})
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "status": "ok"})

	case r.URL.Path == "/api/auth/add-booking":
		b.addCalls++
		b.lastAddBody, _ = io.ReadAll(r.Body)
		b.accept(w, b.addStatus, b.lastAddBody)

	case r.URL.Path == "/api/bookings/simple-create":
		b.simpleCalls++
		b.lastSimpleBody, _ = io.ReadAll(r.Body)
		b.accept(w, b.simpleStatus, b.lastSimpleBody)

	case r.URL.Path == "/api/bookings/my-bookings":
		b.list(w, b.myStatus, b.myBookings)

	case r.URL.Path == "/api/auth/user-bookings":
		b.list(w, b.profileStatus, b.profileBookings)

	case strings.HasPrefix(r.URL.Path, "/api/auth/cancel-booking/"):
		b.cancelCalls++
		if b.cancelStatus != 0 {
			w.WriteHeader(b.cancelStatus)
			json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "message": "boom"})
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "data": model.Booking{Status: model.BookingCancelled}})

	case strings.HasSuffix(r.URL.Path, "/status") && strings.HasPrefix(r.URL.Path, "/api/bookings/"):
		b.statusUpdateCalls++
		if b.statusUpdateStatus != 0 {
			w.WriteHeader(b.statusUpdateStatus)
			json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "message": "boom"})
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "data": model.Booking{Status: model.BookingCancelled}})

	case len(r.URL.Path) > len("/api/hotels/") && r.URL.Path[:len("/api/hotels/")] == "/api/hotels/":
		b.roomCalls++
		json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "data": b.rooms})

	default:
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "message": "not found"})
	}
}

func (b *fakeBackend) list(w http.ResponseWriter, failStatus int, bookings []model.Booking) {
	if failStatus != 0 {
		w.WriteHeader(failStatus)
		json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "message": "boom"})
		return
	}
	if bookings == nil {
		bookings = []model.Booking{}
	}
	json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "data": bookings})
}

func (b *fakeBackend) accept(w http.ResponseWriter, failStatus int, body []byte) {
	if failStatus != 0 {
		w.WriteHeader(failStatus)
		json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "message": "boom"})
		return
	}

	var intent client.BookingIntent
	json.Unmarshal(body, &intent)

	booking := model.Booking{
		Id:                 primitive.NewObjectID(),
		ConfirmationNumber: "BK-1717000000000",
		BookingType:        intent.BookingType,
		ItemId:             intent.ItemId,
		ItemName:           intent.ItemName,
		RoomNumber:         intent.RoomNumber,
		TotalAmount:        intent.TotalAmount,
		Status:             model.BookingConfirmed,
		Payment:            model.PaymentInfo{Status: model.PaymentCompleted, Amount: intent.TotalAmount},
		IdempotencyKey:     intent.IdempotencyKey,
	}
	b.lastBooking = booking

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "data": booking})
}

// newTestClient wires a client and a fresh local store against the fake
// backend.
func newTestClient(t *testing.T, backend *fakeBackend) (*client.Client, *client.LocalStore) {
	t.Helper()

	server := httptest.NewServer(backend)
	t.Cleanup(server.Close)

	store := client.NewLocalStore(filepath.Join(t.TempDir(), "bookings-local.json"))
	return client.New(server.URL, "test-token", store), store
}

func validIntent() client.BookingIntent {
	return client.BookingIntent{
		BookingType:  model.BookingTypePackage,
		ItemId:       "pkg-1",
		ItemName:     "Goa Getaway",
		FirstName:    "Asha",
		LastName:     "Rao",
		Email:        "asha@example.com",
		Phone:        "+91-9999999999",
		CheckInDate:  "2024-06-01",
		CheckOutDate: "2024-06-03",
		Adults:       2,
		Children:     1,
		TotalAmount:  8750,
	}
}
