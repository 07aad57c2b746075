package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"travel-booking-webapp/model"
)

const probeTimeout = 3 * time.Second

// Client talks to the booking backend on behalf of one signed-in user.
type Client struct {
	baseURL string
	token   string
	store   *LocalStore
	http    *http.Client
}

func New(baseURL, token string, store *LocalStore) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		store:   store,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Store exposes the local state, mainly for the outbox replayer.
func (c *Client) Store() *LocalStore {
	return c.store
}

// serverResponse is the uniform envelope of the backend: structural success
// means success==true with a data payload.
type serverResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}) (*serverResponse, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("cannot serialize request: %v", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("cannot read response: %v", err)
	}

	parsed := new(serverResponse)
	if err := json.Unmarshal(respBytes, parsed); err != nil {
		return nil, fmt.Errorf("malformed response payload: %v", err)
	}

	if resp.StatusCode >= 400 || !parsed.Success {
		return nil, fmt.Errorf("endpoint %v declined (%v): %v", path, resp.StatusCode, parsed.Message)
	}

	return parsed, nil
}

// probe is the liveness check gating the submission attempts. Its failure
// does not fail the workflow; it only short-circuits to the local tier.
func (c *Client) probe(ctx context.Context) bool {
	probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	_, err := c.do(probeCtx, http.MethodGet, "/api/health", nil)
	return err == nil
}

// attemptFunc is one delivery channel of the ordered fallback pipeline.
type attemptFunc func(ctx context.Context, intent BookingIntent) (*model.Booking, error)

// attemptAddBooking posts to the primary endpoint, attaching the booking to
// the user profile.
func (c *Client) attemptAddBooking(ctx context.Context, intent BookingIntent) (*model.Booking, error) {
	return c.submit(ctx, "/api/auth/add-booking", intent)
}

// attemptSimpleCreate posts to the generic creation endpoint.
func (c *Client) attemptSimpleCreate(ctx context.Context, intent BookingIntent) (*model.Booking, error) {
	return c.submit(ctx, "/api/bookings/simple-create", intent)
}

func (c *Client) submit(ctx context.Context, path string, intent BookingIntent) (*model.Booking, error) {
	resp, err := c.do(ctx, http.MethodPost, path, intent)
	if err != nil {
		return nil, err
	}
	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("endpoint %v returned no booking payload", path)
	}

	booking := new(model.Booking)
	if err := json.Unmarshal(resp.Data, booking); err != nil {
		return nil, fmt.Errorf("malformed booking payload from %v: %v", path, err)
	}

	return booking, nil
}

// availableRooms queries the rooms free for the stay, feeding room
// auto-selection.
func (c *Client) availableRooms(ctx context.Context, hotelId, checkInDate, checkOutDate string) ([]model.Room, error) {
	query := url.Values{}
	query.Set("checkInDate", checkInDate)
	query.Set("checkOutDate", checkOutDate)

	resp, err := c.do(ctx, http.MethodGet,
		fmt.Sprintf("/api/hotels/%v/available-rooms?%v", hotelId, query.Encode()), nil)
	if err != nil {
		return nil, err
	}

	rooms := []model.Room{}
	if err := json.Unmarshal(resp.Data, &rooms); err != nil {
		return nil, fmt.Errorf("malformed rooms payload: %v", err)
	}
	return rooms, nil
}
