package database

import (
	"fmt"
	"time"
)

// Room holds are advisory: the UI uses them to hide a room another shopper
// is checking out, but the booking write path does not consult them, so they
// reduce rather than prevent double-booking.

const roomHoldTTL = 10 * time.Minute

func roomHoldKey(hotelId, roomNumber string) string {
	return fmt.Sprintf("hold:%s:%s", hotelId, roomNumber)
}

// HoldRoom takes a short-lived hold on a room. Returns false when the room
// is already held by someone else. A nil Redis client always grants the hold.
func HoldRoom(hotelId, roomNumber, holder string) (bool, error) {
	if RedisClient == nil {
		return true, nil
	}

	ok, err := RedisClient.SetNX(ctx, roomHoldKey(hotelId, roomNumber), holder, roomHoldTTL).Result()
	if err != nil {
		return false, fmt.Errorf("cannot acquire room hold: %v", err)
	}
	return ok, nil
}

func ReleaseRoom(hotelId, roomNumber string) error {
	if RedisClient == nil {
		return nil
	}

	if err := RedisClient.Del(ctx, roomHoldKey(hotelId, roomNumber)).Err(); err != nil {
		return fmt.Errorf("cannot release room hold: %v", err)
	}
	return nil
}

func IsRoomHeld(hotelId, roomNumber string) bool {
	if RedisClient == nil {
		return false
	}

	n, err := RedisClient.Exists(ctx, roomHoldKey(hotelId, roomNumber)).Result()
	if err != nil {
		return false
	}
	return n > 0
}
