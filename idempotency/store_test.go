package idempotency_test

import (
	"context"
	"testing"
	"time"

	"travel-booking-webapp/idempotency"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

func TestInMemoryStoreRoundTrip(t *testing.T) {
	store := idempotency.NewInMemoryStore()
	ctx := context.Background()

	_, found, err := store.Get(ctx, "key-1")
	assert.NoError(t, err)
	assert.False(t, found)

	assert.NoError(t, store.Put(ctx, "key-1", "booking-42", time.Minute))

	bookingId, found, err := store.Get(ctx, "key-1")
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "booking-42", bookingId)
}

func TestInMemoryStoreExpiry(t *testing.T) {
	store := idempotency.NewInMemoryStore()
	ctx := context.Background()

	assert.NoError(t, store.Put(ctx, "key-1", "booking-42", -time.Second))
	// negative ttl falls back to the default, entry must still be there
	_, found, _ := store.Get(ctx, "key-1")
	assert.True(t, found)

	assert.NoError(t, store.Put(ctx, "key-2", "booking-43", time.Nanosecond))
	time.Sleep(5 * time.Millisecond)
	_, found, _ = store.Get(ctx, "key-2")
	assert.False(t, found)
}

func TestRedisStoreRoundTrip(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := idempotency.NewRedisStore(db)
	ctx := context.Background()

	mock.ExpectGet("booking:idempotency:key-1").RedisNil()
	_, found, err := store.Get(ctx, "key-1")
	assert.NoError(t, err)
	assert.False(t, found)

	mock.ExpectSet("booking:idempotency:key-1", "booking-42", time.Minute).SetVal("OK")
	assert.NoError(t, store.Put(ctx, "key-1", "booking-42", time.Minute))

	mock.ExpectGet("booking:idempotency:key-1").SetVal("booking-42")
	bookingId, found, err := store.Get(ctx, "key-1")
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "booking-42", bookingId)

	assert.NoError(t, mock.ExpectationsWereMet())
}

var _ idempotency.Store = (*idempotency.InMemoryStore)(nil)
var _ idempotency.Store = (*idempotency.RedisStore)(nil)
