package handlers

import (
	"testing"
)

func TestBookingValidation(t *testing.T) {
	app := setupTestApp()

	customer := signedToken("asha", "customer")

	runTests(t, app, []Test{
		{
			description:  "unparseable body",
			method:       "POST",
			route:        "/api/bookings/simple-create",
			token:        customer,
			bodyinput:    []byte(`{"booking_type":`),
			expectedCode: 400,
			expectedBody: "bad request",
		},
		{
			description:  "missing contact email",
			method:       "POST",
			route:        "/api/bookings/simple-create",
			token:        customer,
			bodyinput:    []byte(`{"booking_type":"package","item_id":"pkg-1","first_name":"Asha","last_name":"Rao","phone":"+91-9999999999"}`),
			expectedCode: 422,
			expectedBody: "validation failed",
		},
		{
			description:  "unknown booking type",
			method:       "POST",
			route:        "/api/bookings/simple-create",
			token:        customer,
			bodyinput:    []byte(`{"booking_type":"cruise","item_id":"cr-1","first_name":"Asha","last_name":"Rao","email":"asha@example.com","phone":"+91-9999999999"}`),
			expectedCode: 422,
			expectedBody: "validation failed",
		},
		{
			description:  "hotel booking with reversed dates",
			method:       "POST",
			route:        "/api/bookings/simple-create",
			token:        customer,
			bodyinput:    []byte(`{"booking_type":"hotel","item_id":"h-1","first_name":"Asha","last_name":"Rao","email":"asha@example.com","phone":"+91-9999999999","check_in_date":"2024-06-03","check_out_date":"2024-06-01"}`),
			expectedCode: 422,
			expectedBody: "validation failed",
		},
	})
}

func TestStatusUpdateRejectsUnknownStatus(t *testing.T) {
	app := setupTestApp()

	customer := signedToken("asha", "customer")

	runTests(t, app, []Test{
		{
			description:  "unknown status value",
			method:       "PUT",
			route:        "/api/bookings/66b000000000000000000001/status",
			token:        customer,
			bodyinput:    []byte(`{"status":"teleported"}`),
			expectedCode: 400,
			expectedBody: "unknown status",
		},
	})
}
