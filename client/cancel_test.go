package client_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"travel-booking-webapp/client"
	"travel-booking-webapp/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCancelUsesPrimaryEndpoint(t *testing.T) {
	backend := &fakeBackend{}
	c, _ := newTestClient(t, backend)

	err := c.Cancel(context.Background(), "66b000000000000000000001", "change of plans")

	require.NoError(t, err)
	assert.Equal(t, 1, backend.cancelCalls)
	assert.Equal(t, 0, backend.statusUpdateCalls)
}

func TestCancelFallsBackToStatusUpdate(t *testing.T) {
	backend := &fakeBackend{cancelStatus: http.StatusInternalServerError}
	c, _ := newTestClient(t, backend)

	err := c.Cancel(context.Background(), "66b000000000000000000001", "change of plans")

	require.NoError(t, err)
	assert.Equal(t, 1, backend.cancelCalls)
	assert.Equal(t, 1, backend.statusUpdateCalls)
}

func TestCancelFailsWhenBothEndpointsFail(t *testing.T) {
	backend := &fakeBackend{
		cancelStatus:       http.StatusInternalServerError,
		statusUpdateStatus: http.StatusInternalServerError,
	}
	c, _ := newTestClient(t, backend)

	err := c.Cancel(context.Background(), "66b000000000000000000001", "change of plans")

	require.Error(t, err)
	assert.Equal(t, 1, backend.cancelCalls)
	assert.Equal(t, 1, backend.statusUpdateCalls)
}

func TestCancelLocalBookingFlipsRecordWithoutNetworkCalls(t *testing.T) {
	backend := &fakeBackend{}
	c, store := newTestClient(t, backend)

	require.NoError(t, store.AppendLocalBooking(client.LocalBooking{
		LocalId:        "local-1",
		Intent:         validIntent(),
		Status:         model.BookingConfirmed,
		ReconcileState: client.ReconcilePending,
	}))

	require.NoError(t, c.Cancel(context.Background(), "local-1", "no longer travelling"))

	assert.Equal(t, 0, backend.cancelCalls)
	assert.Equal(t, 0, backend.statusUpdateCalls)

	local, found, err := store.FindLocalBooking("local-1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, model.BookingCancelled, local.Status)
	assert.Equal(t, "no longer travelling", local.CancelReason)
	// a cancelled record must never be replayed to the server
	assert.Equal(t, client.ReconcileFailed, local.ReconcileState)
}

func TestCancelReconciledBookingInformsServer(t *testing.T) {
	backend := &fakeBackend{}
	c, store := newTestClient(t, backend)

	queueOneBooking(t, backend, c)

	// backend recovers and the replayer promotes the record
	backend.addStatus = 0
	backend.simpleStatus = 0
	replayer := client.NewReplayer(c, time.Minute, 3)
	require.Equal(t, 1, replayer.ReplayOnce(context.Background()))

	locals, err := store.LocalBookings()
	require.NoError(t, err)
	require.Len(t, locals, 1)
	serverId := locals[0].ServerBookingId
	require.NotEmpty(t, serverId)

	// the server copy is authoritative now, so it must be told
	require.NoError(t, c.Cancel(context.Background(), serverId, "change of plans"))
	assert.Equal(t, 1, backend.cancelCalls)

	local, found, err := store.FindLocalBooking(serverId)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, model.BookingCancelled, local.Status)
	assert.Equal(t, "change of plans", local.CancelReason)
	// reconciled stays reconciled, only pending records are fenced off
	assert.Equal(t, client.ReconcileReconciled, local.ReconcileState)
}

func TestCancelReconciledBookingKeepsLocalCopyWhenServerRefuses(t *testing.T) {
	backend := &fakeBackend{}
	c, store := newTestClient(t, backend)

	queueOneBooking(t, backend, c)

	backend.addStatus = 0
	backend.simpleStatus = 0
	replayer := client.NewReplayer(c, time.Minute, 3)
	require.Equal(t, 1, replayer.ReplayOnce(context.Background()))

	locals, _ := store.LocalBookings()
	serverId := locals[0].ServerBookingId

	backend.cancelStatus = http.StatusInternalServerError
	backend.statusUpdateStatus = http.StatusInternalServerError

	err := c.Cancel(context.Background(), serverId, "change of plans")
	require.Error(t, err)

	// both statuses still agree: the local copy was not flipped
	local, found, _ := store.FindLocalBooking(serverId)
	require.True(t, found)
	assert.Equal(t, model.BookingConfirmed, local.Status)
}

func TestCancelIsOneWay(t *testing.T) {
	backend := &fakeBackend{}
	c, store := newTestClient(t, backend)

	require.NoError(t, store.AppendLocalBooking(client.LocalBooking{
		LocalId:        "local-1",
		Intent:         validIntent(),
		Status:         model.BookingConfirmed,
		ReconcileState: client.ReconcilePending,
	}))

	require.NoError(t, c.Cancel(context.Background(), "local-1", "first"))

	err := c.Cancel(context.Background(), "local-1", "second")
	assert.ErrorIs(t, err, client.ErrAlreadyCancelled)

	local, _, _ := store.FindLocalBooking("local-1")
	assert.Equal(t, "first", local.CancelReason)
}
