package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"path/filepath"
	"strings"
	"testing"

	"travel-booking-webapp/client"
	"travel-booking-webapp/model"
	"travel-booking-webapp/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookPrimarySuccessSkipsSecondary(t *testing.T) {
	backend := &fakeBackend{}
	c, _ := newTestClient(t, backend)

	result := c.Book(context.Background(), validIntent())

	assert.Equal(t, client.OutcomeConfirmed, result.Outcome)
	assert.Equal(t, 1, backend.addCalls)
	assert.Equal(t, 0, backend.simpleCalls, "secondary endpoint must not be invoked after a primary success")
	require.NotNil(t, result.Server)
	assert.Equal(t, "BK-1717000000000", result.Confirmation.ConfirmationNumber)
}

func TestBookPrimaryFailureFallsBackToSecondaryOnce(t *testing.T) {
	backend := &fakeBackend{addStatus: http.StatusInternalServerError}
	c, _ := newTestClient(t, backend)

	result := c.Book(context.Background(), validIntent())

	assert.Equal(t, client.OutcomeConfirmed, result.Outcome)
	assert.Equal(t, 1, backend.addCalls)
	assert.Equal(t, 1, backend.simpleCalls)

	// the secondary must receive an equivalent payload
	var primary, secondary client.BookingIntent
	require.NoError(t, json.Unmarshal(backend.lastAddBody, &primary))
	require.NoError(t, json.Unmarshal(backend.lastSimpleBody, &secondary))
	assert.Equal(t, primary, secondary)
	assert.NotEmpty(t, secondary.IdempotencyKey)
}

func TestBookBothEndpointsFailingQueuesLocally(t *testing.T) {
	backend := &fakeBackend{
		addStatus:    http.StatusInternalServerError,
		simpleStatus: http.StatusInternalServerError,
	}
	c, store := newTestClient(t, backend)

	result := c.Book(context.Background(), validIntent())

	assert.Equal(t, client.OutcomeQueued, result.Outcome)
	assert.True(t, strings.HasPrefix(result.Confirmation.ConfirmationNumber, "BK-"))
	assert.Equal(t, model.BookingConfirmed, result.Confirmation.Status)
	assert.Equal(t, model.PaymentCompleted, result.Confirmation.PaymentStatus)

	locals, err := store.LocalBookings()
	require.NoError(t, err)
	require.Len(t, locals, 1)
	assert.Equal(t, client.ReconcilePending, locals[0].ReconcileState)
}

func TestBookUnreachableBackendSkipsSubmissions(t *testing.T) {
	backend := &fakeBackend{healthStatus: http.StatusServiceUnavailable}
	c, store := newTestClient(t, backend)

	result := c.Book(context.Background(), validIntent())

	assert.Equal(t, client.OutcomeQueued, result.Outcome)
	assert.Equal(t, 0, backend.addCalls, "failed probe must short-circuit the submission attempts")
	assert.Equal(t, 0, backend.simpleCalls)

	locals, err := store.LocalBookings()
	require.NoError(t, err)
	assert.Len(t, locals, 1)
}

func TestBookMissingEmailFailsBeforeAnyNetworkCall(t *testing.T) {
	backend := &fakeBackend{}
	c, _ := newTestClient(t, backend)

	intent := validIntent()
	intent.Email = ""

	result := c.Book(context.Background(), intent)

	assert.Equal(t, client.OutcomeFailed, result.Outcome)
	var validationErr *client.ValidationError
	assert.ErrorAs(t, result.Err, &validationErr)
	assert.Contains(t, validationErr.Missing, "email")

	assert.Equal(t, 0, backend.healthCalls)
	assert.Equal(t, 0, backend.addCalls)
	assert.Equal(t, 0, backend.simpleCalls)
}

func TestBookWithoutTokenFails(t *testing.T) {
	store := client.NewLocalStore(filepath.Join(t.TempDir(), "state.json"))

	c := client.New("http://127.0.0.1:0", "", store)
	result := c.Book(context.Background(), validIntent())

	assert.Equal(t, client.OutcomeFailed, result.Outcome)
	assert.ErrorIs(t, result.Err, client.ErrNotLoggedIn)
}

func TestBookHotelAutoSelectsFirstAvailableRoom(t *testing.T) {
	backend := &fakeBackend{rooms: []model.Room{
		{RoomNumber: "204", Type: "deluxe", Capacity: 2, PricePerNight: 2500, Available: true},
		{RoomNumber: "205", Type: "suite", Capacity: 4, PricePerNight: 6000, Available: true},
	}}
	c, _ := newTestClient(t, backend)

	intent := validIntent()
	intent.BookingType = model.BookingTypeHotel
	intent.ItemId = "hotel-1"
	intent.TotalAmount = 0
	intent.RoomNumber = ""

	result := c.Book(context.Background(), intent)

	require.Equal(t, client.OutcomeConfirmed, result.Outcome)
	assert.Equal(t, 1, backend.roomCalls)
	assert.Equal(t, "204", result.Server.RoomNumber)
	// 2 nights at 2500/night
	assert.Equal(t, 5000.0, result.Server.TotalAmount)
}

func TestBookHotelFabricatesPlaceholderRoomWhenNoneAvailable(t *testing.T) {
	backend := &fakeBackend{rooms: []model.Room{}}
	c, _ := newTestClient(t, backend)

	intent := validIntent()
	intent.BookingType = model.BookingTypeHotel
	intent.ItemId = "hotel-1"
	intent.TotalAmount = 0
	intent.RoomNumber = ""

	result := c.Book(context.Background(), intent)

	require.Equal(t, client.OutcomeConfirmed, result.Outcome)
	assert.NotEmpty(t, result.Server.RoomNumber, "workflow must never be blocked on room selection")
	assert.Greater(t, result.Server.TotalAmount, 0.0)
}

func TestBookSubstitutesDefaultPriceForNonPositiveAmount(t *testing.T) {
	backend := &fakeBackend{}
	c, _ := newTestClient(t, backend)

	intent := validIntent()
	intent.TotalAmount = -50

	result := c.Book(context.Background(), intent)

	require.Equal(t, client.OutcomeConfirmed, result.Outcome)
	assert.Equal(t, float64(pricing.DefaultPackageAmount), result.Server.TotalAmount)
}

func TestBookTravelIntentIsRemembered(t *testing.T) {
	backend := &fakeBackend{
		addStatus:    http.StatusInternalServerError,
		simpleStatus: http.StatusInternalServerError,
	}
	c, store := newTestClient(t, backend)

	intent := validIntent()
	intent.BookingType = model.BookingTypeTravel
	intent.ItemId = "travel-7"

	c.Book(context.Background(), intent)

	last, err := store.LastIntent()
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, "travel-7", last.ItemId)
}

func TestDuplicateSubmissionWithFreshIntentIsNotDeduplicated(t *testing.T) {
	// Known property, not a bug: when the caller does not reuse the
	// idempotency key, a network flap between attempts can produce two
	// authoritative bookings.
	backend := &fakeBackend{}
	c, _ := newTestClient(t, backend)

	first := c.Book(context.Background(), validIntent())
	second := c.Book(context.Background(), validIntent())

	require.Equal(t, client.OutcomeConfirmed, first.Outcome)
	require.Equal(t, client.OutcomeConfirmed, second.Outcome)
	assert.NotEqual(t, first.Server.Id, second.Server.Id)
	assert.NotEqual(t, first.Server.IdempotencyKey, second.Server.IdempotencyKey)
	assert.Equal(t, 2, backend.addCalls)
}

func TestLocalStoreSurvivesRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	store := client.NewLocalStore(path)
	require.NoError(t, store.RecordBookingId("65f000000000000000000001"))
	require.NoError(t, store.AppendLocalBooking(client.LocalBooking{
		LocalId:        "local-1",
		Status:         model.BookingConfirmed,
		ReconcileState: client.ReconcilePending,
	}))

	reopened := client.NewLocalStore(path)
	ids, err := reopened.BookingIds()
	require.NoError(t, err)
	assert.Equal(t, []string{"65f000000000000000000001"}, ids)

	locals, err := reopened.LocalBookings()
	require.NoError(t, err)
	require.Len(t, locals, 1)
	assert.Equal(t, "local-1", locals[0].LocalId)
}
