package create_appointment

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SC-AppointmentService/internal/api/handlers"
	createAppointment "github.com/m04kA/SC-AppointmentService/internal/usecase/create_appointment"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeUseCase struct {
	resp *createAppointment.Response
	err  error
	got  *createAppointment.Request
}

func (uc *fakeUseCase) Execute(ctx context.Context, req *createAppointment.Request) (*createAppointment.Response, error) {
	uc.got = req
	if uc.err != nil {
		return nil, uc.err
	}
	return uc.resp, nil
}

func doRequest(t *testing.T, uc *fakeUseCase, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	h := NewHandler(uc, "/confirmation", nopLogger{})

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func validBody() CreateAppointmentRequest {
	return CreateAppointmentRequest{
		ClientName:  "Jordan Smith",
		ClientEmail: "jordan@example.com",
		Service:     "1",
		StartTime:   "2026-06-01T10:00:00-07:00",
	}
}

func TestHandle_Success(t *testing.T) {
	start := time.Date(2026, time.June, 1, 10, 0, 0, 0, time.UTC)
	uc := &fakeUseCase{resp: &createAppointment.Response{
		Reference:       "ref-1",
		ClientName:      "Jordan Smith",
		ServiceName:     "Classic Haircut",
		ServicePrice:    30,
		StartTime:       start,
		DurationMinutes: 30,
		Status:          "confirmed",
	}}

	rec := doRequest(t, uc, validBody())
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp AppointmentResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "ref-1", resp.Reference)
	assert.Equal(t, "/confirmation?ref=ref-1", resp.Redirect)
	assert.Equal(t, "confirmed", resp.Status)

	// Service id and start time reach the use case parsed
	require.NotNil(t, uc.got)
	assert.Equal(t, int64(1), uc.got.ServiceID)
	assert.Equal(t, "Jordan Smith", uc.got.ClientName)
}

func TestHandle_InvalidBody(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, "/confirmation", nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", bytes.NewReader([]byte("{bad json")))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_UnparsableFields(t *testing.T) {
	body := validBody()
	body.Service = "haircut" // not a numeric select value
	rec := doRequest(t, &fakeUseCase{}, body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body = validBody()
	body.StartTime = "tomorrow at ten"
	rec = doRequest(t, &fakeUseCase{}, body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_ErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"slot taken", createAppointment.ErrSlotTaken, http.StatusConflict, "this time slot is no longer available"},
		{"service not found", createAppointment.ErrServiceNotFound, http.StatusNotFound, "the selected service was not found"},
		{"past date", createAppointment.ErrPastDate, http.StatusBadRequest, "the selected time is in the past"},
		{"closed day", createAppointment.ErrClosedDay, http.StatusBadRequest, "we are closed on the selected day"},
		{"outside hours", createAppointment.ErrOutsideHours, http.StatusBadRequest, "the selected time is outside our working hours"},
		{"beyond lead window", createAppointment.ErrBeyondLeadWindow, http.StatusBadRequest, "appointments can only be booked up to 30 days in advance"},
		{"invalid input", createAppointment.ErrInvalidInput, http.StatusBadRequest, "please check the form fields and try again"},
		{"internal", createAppointment.ErrInternal, http.StatusInternalServerError, "internal server error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doRequest(t, &fakeUseCase{err: tc.err}, validBody())
			assert.Equal(t, tc.wantStatus, rec.Code)

			var resp handlers.ErrorResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Equal(t, tc.wantMsg, resp.Error)
		})
	}
}
