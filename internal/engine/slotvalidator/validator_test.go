package slotvalidator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SC-AppointmentService/internal/domain"
	"github.com/m04kA/SC-AppointmentService/internal/policy"
)

var shopTZ = func() *time.Location {
	loc, err := time.LoadLocation("America/Los_Angeles")
	if err != nil {
		panic(err)
	}
	return loc
}()

// Monday 2026-06-01 08:00 in the shop timezone, before opening
var testNow = time.Date(2026, time.June, 1, 8, 0, 0, 0, shopTZ)

func newValidator(t *testing.T) *Validator {
	t.Helper()
	p, err := policy.New(policy.DefaultConfig())
	require.NoError(t, err)
	return New(p)
}

func slot(day, hour, min, durationMin int) domain.Interval {
	start := time.Date(2026, time.June, day, hour, min, 0, 0, shopTZ)
	return domain.Interval{Start: start, End: start.Add(time.Duration(durationMin) * time.Minute)}
}

func TestValidate_AcceptsLegalSlot(t *testing.T) {
	v := newValidator(t)
	assert.NoError(t, v.Validate(slot(1, 10, 0, 30), testNow, nil))
}

func TestValidate_InvalidInterval(t *testing.T) {
	v := newValidator(t)

	start := time.Date(2026, time.June, 1, 10, 0, 0, 0, shopTZ)
	inverted := domain.Interval{Start: start, End: start.Add(-30 * time.Minute)}
	assert.ErrorIs(t, v.Validate(inverted, testNow, nil), ErrInvalidInterval)

	assert.ErrorIs(t, v.Validate(domain.Interval{}, testNow, nil), ErrInvalidInterval)
}

func TestValidate_PastDate(t *testing.T) {
	v := newValidator(t)

	// Start earlier the same morning
	assert.ErrorIs(t, v.Validate(slot(1, 7, 0, 30), testNow, nil), ErrPastDate)

	// Start a week earlier
	lastMonday := slot(1, 10, 0, 30)
	lastMonday.Start = lastMonday.Start.AddDate(0, 0, -7)
	lastMonday.End = lastMonday.End.AddDate(0, 0, -7)
	assert.ErrorIs(t, v.Validate(lastMonday, testNow, nil), ErrPastDate)
}

func TestValidate_ClosedDay(t *testing.T) {
	v := newValidator(t)

	// Sunday 2026-06-07
	assert.ErrorIs(t, v.Validate(slot(7, 10, 0, 30), testNow, nil), ErrClosedDay)
}

func TestValidate_OutsideHours(t *testing.T) {
	v := newValidator(t)

	// Before opening and at closing time
	assert.ErrorIs(t, v.Validate(slot(1, 8, 30, 30), testNow, nil), ErrOutsideHours)
	assert.ErrorIs(t, v.Validate(slot(1, 20, 0, 30), testNow, nil), ErrOutsideHours)

	// Start boundary governs: a slot starting before close but spilling past
	// closing time is accepted
	assert.NoError(t, v.Validate(slot(1, 19, 30, 60), testNow, nil))

	// Opening boundary is inclusive
	assert.NoError(t, v.Validate(slot(1, 9, 0, 30), testNow, nil))
}

func TestValidate_BeyondLeadWindow(t *testing.T) {
	v := newValidator(t)

	// now at 10:00 so the window boundary lands inside working hours
	now := time.Date(2026, time.June, 1, 10, 0, 0, 0, shopTZ)

	daysAhead := func(days int) domain.Interval {
		s := slot(1, 10, 0, 30)
		s.Start = s.Start.AddDate(0, 0, days)
		s.End = s.End.AddDate(0, 0, days)
		return s
	}

	// 29 days ahead (Tuesday 2026-06-30) is inside the 30-day window
	assert.NoError(t, v.Validate(daysAhead(29), now, nil))

	// Exactly now+30d (Wednesday 2026-07-01 10:00) is the last bookable start
	assert.NoError(t, v.Validate(daysAhead(30), now, nil))

	// One minute past the boundary is rejected
	boundary := daysAhead(30)
	boundary.Start = boundary.Start.Add(time.Minute)
	boundary.End = boundary.End.Add(time.Minute)
	assert.ErrorIs(t, v.Validate(boundary, now, nil), ErrBeyondLeadWindow)

	// 31 days ahead (Thursday 2026-07-02) is past the window
	assert.ErrorIs(t, v.Validate(daysAhead(31), now, nil), ErrBeyondLeadWindow)
}

func TestValidate_SlotTaken(t *testing.T) {
	v := newValidator(t)
	booked := []domain.Interval{slot(1, 10, 0, 60), slot(1, 14, 0, 30)}

	// Overlapping either booked interval is rejected
	assert.ErrorIs(t, v.Validate(slot(1, 10, 30, 30), testNow, booked), ErrSlotTaken)
	assert.ErrorIs(t, v.Validate(slot(1, 13, 45, 30), testNow, booked), ErrSlotTaken)

	// Back-to-back with a booked interval is legal
	assert.NoError(t, v.Validate(slot(1, 11, 0, 30), testNow, booked))
	assert.NoError(t, v.Validate(slot(1, 9, 30, 30), testNow, booked))
}

func TestValidate_CheckOrder(t *testing.T) {
	v := newValidator(t)
	booked := []domain.Interval{slot(1, 10, 0, 60)}

	// A slot on a past Sunday outside working hours fails with the first
	// check in the chain, not a later one
	pastSunday := slot(7, 22, 0, 30)
	pastSunday.Start = pastSunday.Start.AddDate(0, 0, -14)
	pastSunday.End = pastSunday.End.AddDate(0, 0, -14)
	assert.ErrorIs(t, v.Validate(pastSunday, testNow, booked), ErrPastDate)

	// A future Sunday outside hours reports the closed day first
	assert.ErrorIs(t, v.Validate(slot(7, 22, 0, 30), testNow, booked), ErrClosedDay)

	// Outside hours wins over the occupied-slot check even when the
	// candidate also overlaps a booked interval
	earlyOverlap := slot(1, 8, 0, 180)
	assert.ErrorIs(t, v.Validate(earlyOverlap, testNow, booked), ErrOutsideHours)
}

func TestValidate_NowInDifferentZone(t *testing.T) {
	v := newValidator(t)

	// The same instant expressed in UTC must not change the verdict
	utcNow := testNow.In(time.UTC)
	assert.NoError(t, v.Validate(slot(1, 10, 0, 30), utcNow, nil))
	assert.ErrorIs(t, v.Validate(slot(1, 7, 0, 30), utcNow, nil), ErrPastDate)
}
