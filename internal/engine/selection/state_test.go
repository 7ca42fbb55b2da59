package selection

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SC-AppointmentService/internal/domain"
	"github.com/m04kA/SC-AppointmentService/internal/engine/slotvalidator"
	"github.com/m04kA/SC-AppointmentService/internal/policy"
)

var shopTZ = func() *time.Location {
	loc, err := time.LoadLocation("America/Los_Angeles")
	if err != nil {
		panic(err)
	}
	return loc
}()

// Monday 2026-06-01 08:00 in the shop timezone
var testNow = time.Date(2026, time.June, 1, 8, 0, 0, 0, shopTZ)

func newState(t *testing.T) *State {
	t.Helper()
	p, err := policy.New(policy.DefaultConfig())
	require.NoError(t, err)
	return NewState(slotvalidator.New(p))
}

func slot(hour, min, durationMin int) domain.Interval {
	start := time.Date(2026, time.June, 1, hour, min, 0, 0, shopTZ)
	return domain.Interval{Start: start, End: start.Add(time.Duration(durationMin) * time.Minute)}
}

func TestSelect_AcceptedSlotBecomesCurrent(t *testing.T) {
	s := newState(t)

	sel, err := s.Select(slot(10, 0, 30), testNow, nil)
	require.NoError(t, err)
	require.NotNil(t, sel)
	assert.Equal(t, domain.SelectionPending, sel.Status)

	current := s.Current()
	require.NotNil(t, current)
	assert.Equal(t, sel.Start, current.Start)
	assert.Equal(t, sel.End, current.End)
}

func TestSelect_ReplacesPreviousSelection(t *testing.T) {
	s := newState(t)

	_, err := s.Select(slot(10, 0, 30), testNow, nil)
	require.NoError(t, err)

	second, err := s.Select(slot(14, 0, 30), testNow, nil)
	require.NoError(t, err)

	// At most one active selection: the second replaces the first
	current := s.Current()
	require.NotNil(t, current)
	assert.Equal(t, second.Start, current.Start)
}

func TestSelect_RejectedSlotKeepsPreviousSelection(t *testing.T) {
	s := newState(t)

	first, err := s.Select(slot(10, 0, 30), testNow, nil)
	require.NoError(t, err)

	// Candidate in the past is rejected and must not disturb the selection
	_, err = s.Select(slot(7, 0, 30), testNow, nil)
	assert.ErrorIs(t, err, slotvalidator.ErrPastDate)

	current := s.Current()
	require.NotNil(t, current)
	assert.Equal(t, first.Start, current.Start)
}

func TestClear_IsIdempotent(t *testing.T) {
	s := newState(t)

	var calls int
	s.Subscribe(ListenerFunc(func(sel *domain.Selection) {
		calls++
	}))

	_, err := s.Select(slot(10, 0, 30), testNow, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)

	s.Clear()
	assert.Nil(t, s.Current())
	assert.Equal(t, 2, calls)

	// Clearing an empty selection does nothing and notifies nobody
	s.Clear()
	assert.Equal(t, 2, calls)
}

func TestSubscribe_NotifiesOnChange(t *testing.T) {
	s := newState(t)

	var got []*domain.Selection
	s.Subscribe(ListenerFunc(func(sel *domain.Selection) {
		got = append(got, sel)
	}))

	_, err := s.Select(slot(10, 0, 30), testNow, nil)
	require.NoError(t, err)
	s.Clear()

	require.Len(t, got, 2)
	require.NotNil(t, got[0])
	assert.Equal(t, slot(10, 0, 30).Start, got[0].Start)
	assert.Nil(t, got[1])
}

func TestCurrent_ReturnsCopy(t *testing.T) {
	s := newState(t)

	_, err := s.Select(slot(10, 0, 30), testNow, nil)
	require.NoError(t, err)

	// Mutating the returned copy must not leak into the state
	copy1 := s.Current()
	copy1.Status = domain.SelectionConfirmed

	assert.Equal(t, domain.SelectionPending, s.Current().Status)
}
