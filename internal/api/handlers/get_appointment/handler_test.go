package get_appointment

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getAppointment "github.com/m04kA/SC-AppointmentService/internal/usecase/get_appointment"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeUseCase struct {
	resp *getAppointment.Response
	err  error
	got  *getAppointment.Request
}

func (uc *fakeUseCase) Execute(ctx context.Context, req *getAppointment.Request) (*getAppointment.Response, error) {
	uc.got = req
	if uc.err != nil {
		return nil, uc.err
	}
	return uc.resp, nil
}

func doRequest(t *testing.T, uc *fakeUseCase, reference string) *httptest.ResponseRecorder {
	t.Helper()
	h := NewHandler(uc, nopLogger{})

	// Роутер нужен, чтобы mux.Vars увидел path-параметр
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/appointments/{reference}", h.Handle).Methods(http.MethodGet)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments/"+reference, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	uc := &fakeUseCase{resp: &getAppointment.Response{
		Reference:       "ref-1",
		ClientName:      "Jordan Smith",
		ServiceName:     "Classic Haircut",
		ServicePrice:    30,
		StartTime:       time.Date(2026, time.June, 1, 10, 0, 0, 0, time.UTC),
		DurationMinutes: 30,
		Status:          "confirmed",
		CanBeCancelled:  true,
	}}

	rec := doRequest(t, uc, "ref-1")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp AppointmentResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "ref-1", resp.Reference)
	assert.Equal(t, "2026-06-01T10:00:00Z", resp.StartTime)
	assert.True(t, resp.CanBeCancelled)

	require.NotNil(t, uc.got)
	assert.Equal(t, "ref-1", uc.got.Reference)
}

func TestHandle_InvalidReference(t *testing.T) {
	uc := &fakeUseCase{err: getAppointment.ErrInvalidInput}
	rec := doRequest(t, uc, "not-a-uuid")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_NotFound(t *testing.T) {
	uc := &fakeUseCase{err: getAppointment.ErrAppointmentNotFound}
	rec := doRequest(t, uc, "6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandle_InternalError(t *testing.T) {
	uc := &fakeUseCase{err: errors.New("connection lost")}
	rec := doRequest(t, uc, "6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
