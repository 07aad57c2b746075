package client

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// Reconcile states of a locally queued booking.
const (
	ReconcilePending    = "pending"
	ReconcileReconciled = "reconciled"
	ReconcileFailed     = "failed"
)

// LocalBooking is a booking-shaped record persisted only locally because no
// server accepted the write. It keeps the original intent (and idempotency
// key) so the outbox replayer can re-submit it verbatim.
type LocalBooking struct {
	LocalId            string        `json:"local_id"`
	ConfirmationNumber string        `json:"confirmation_number"`
	Status             string        `json:"status"`
	PaymentStatus      string        `json:"payment_status"`
	Intent             BookingIntent `json:"intent"`
	ReconcileState     string        `json:"reconcile_state"`
	Attempts           int           `json:"attempts"`
	ServerBookingId    string        `json:"server_booking_id,omitempty"`
	CancelReason       string        `json:"cancel_reason,omitempty"`
	CreatedAt          string        `json:"created_at"`
}

// localState is the on-disk shape. Field names keep the storage keys the
// web client used: myBookings, myLocalBookings, lastBookingIntent.
type localState struct {
	BookingIds    []string       `json:"myBookings"`
	LocalBookings []LocalBooking `json:"myLocalBookings"`
	LastIntent    *BookingIntent `json:"lastBookingIntent,omitempty"`
}

// LocalStore persists client-side state in a single JSON file. It is the
// degraded-durability tier of the fallback chain.
type LocalStore struct {
	path string
	mu   sync.Mutex
}

func NewLocalStore(path string) *LocalStore {
	return &LocalStore{path: path}
}

func (s *LocalStore) read() (localState, error) {
	state := localState{}

	fileBytes, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return state, nil
	} else if err != nil {
		return state, fmt.Errorf("cannot read local booking state: %v", err)
	}

	if err := json.Unmarshal(fileBytes, &state); err != nil {
		return state, fmt.Errorf("cannot parse local booking state: %v", err)
	}

	return state, nil
}

func (s *LocalStore) commit(state localState) error {
	stateBytes, err := json.MarshalIndent(state, "", "	")
	if err != nil {
		return err
	}

	if err := os.WriteFile(s.path, stateBytes, 0644); err != nil {
		return fmt.Errorf("cannot write local booking state: %v", err)
	}

	return nil
}

// RecordBookingId remembers the id of a server-confirmed booking so the
// history reader's last tier can reconstruct at least a placeholder list.
func (s *LocalStore) RecordBookingId(bookingId string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.read()
	if err != nil {
		return err
	}

	for _, id := range state.BookingIds {
		if id == bookingId {
			return nil
		}
	}

	state.BookingIds = append(state.BookingIds, bookingId)
	return s.commit(state)
}

func (s *LocalStore) BookingIds() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.read()
	if err != nil {
		return nil, err
	}
	return state.BookingIds, nil
}

func (s *LocalStore) AppendLocalBooking(booking LocalBooking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.read()
	if err != nil {
		return err
	}

	state.LocalBookings = append(state.LocalBookings, booking)
	return s.commit(state)
}

func (s *LocalStore) LocalBookings() ([]LocalBooking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.read()
	if err != nil {
		return nil, err
	}
	return state.LocalBookings, nil
}

// UpdateLocalBooking replaces the record with the same LocalId.
func (s *LocalStore) UpdateLocalBooking(booking LocalBooking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.read()
	if err != nil {
		return err
	}

	for i, existing := range state.LocalBookings {
		if existing.LocalId == booking.LocalId {
			state.LocalBookings[i] = booking
			return s.commit(state)
		}
	}

	return fmt.Errorf("no local booking with id %v", booking.LocalId)
}

func (s *LocalStore) FindLocalBooking(id string) (LocalBooking, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.read()
	if err != nil {
		return LocalBooking{}, false, err
	}

	for _, booking := range state.LocalBookings {
		if booking.LocalId == id || booking.ServerBookingId == id || booking.ConfirmationNumber == id {
			return booking, true, nil
		}
	}
	return LocalBooking{}, false, nil
}

// SaveLastIntent keeps the most recent unconfirmed intent (travel options
// only, mirroring the original client).
func (s *LocalStore) SaveLastIntent(intent BookingIntent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.read()
	if err != nil {
		return err
	}

	state.LastIntent = &intent
	return s.commit(state)
}

func (s *LocalStore) LastIntent() (*BookingIntent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.read()
	if err != nil {
		return nil, err
	}
	return state.LastIntent, nil
}
