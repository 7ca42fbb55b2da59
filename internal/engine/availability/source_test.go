package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SC-AppointmentService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeSlotsClient struct {
	slots []domain.Interval
	err   error
	calls int
}

func (c *fakeSlotsClient) GetBookedSlots(ctx context.Context, from, to time.Time) ([]domain.Interval, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	return c.slots, nil
}

func testIntervals() []domain.Interval {
	start := time.Date(2026, time.June, 1, 10, 0, 0, 0, time.UTC)
	return []domain.Interval{
		{Start: start, End: start.Add(30 * time.Minute)},
		{Start: start.Add(4 * time.Hour), End: start.Add(5 * time.Hour)},
	}
}

func TestRefresh_PopulatesCache(t *testing.T) {
	client := &fakeSlotsClient{slots: testIntervals()}
	source := NewSource(client, nopLogger{})

	assert.Empty(t, source.Booked())

	err := source.Refresh(context.Background(), time.Now(), time.Now().Add(24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, testIntervals(), source.Booked())
	assert.Equal(t, 1, client.calls)
}

func TestRefresh_KeepsCacheOnError(t *testing.T) {
	client := &fakeSlotsClient{slots: testIntervals()}
	source := NewSource(client, nopLogger{})

	require.NoError(t, source.Refresh(context.Background(), time.Now(), time.Now().Add(24*time.Hour)))

	// A failed refresh reports the error but leaves the last known
	// intervals in place so slot selection keeps working
	client.err = errors.New("backend unavailable")
	err := source.Refresh(context.Background(), time.Now(), time.Now().Add(24*time.Hour))
	assert.Error(t, err)
	assert.Equal(t, testIntervals(), source.Booked())
}

func TestBooked_ReturnsCopy(t *testing.T) {
	client := &fakeSlotsClient{slots: testIntervals()}
	source := NewSource(client, nopLogger{})
	require.NoError(t, source.Refresh(context.Background(), time.Now(), time.Now().Add(24*time.Hour)))

	got := source.Booked()
	got[0].Start = got[0].Start.Add(time.Hour)

	assert.Equal(t, testIntervals(), source.Booked())
}
