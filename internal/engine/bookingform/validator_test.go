package bookingform

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SC-AppointmentService/internal/domain"
)

func validForm() *domain.BookingForm {
	start := time.Date(2026, time.June, 1, 10, 0, 0, 0, time.UTC)
	return &domain.BookingForm{
		ClientName:  "Jordan Smith",
		ClientEmail: "jordan@example.com",
		Service:     "1",
		Selection: &domain.Selection{
			Start:  start,
			End:    start.Add(30 * time.Minute),
			Status: domain.SelectionPending,
		},
	}
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("a@b.com"))
	assert.True(t, IsValidEmail("first.last@mail.example.org"))

	// No dot in the domain part
	assert.False(t, IsValidEmail("a@b"))
	// Whitespace anywhere
	assert.False(t, IsValidEmail("a b@c.com"))
	assert.False(t, IsValidEmail("a@b .com"))
	// Missing parts
	assert.False(t, IsValidEmail("@b.com"))
	assert.False(t, IsValidEmail("a@"))
	assert.False(t, IsValidEmail(""))
}

func TestValidate_AcceptsCompleteForm(t *testing.T) {
	v := New()
	assert.NoError(t, v.Validate(validForm()))
}

func TestValidate_TrimsWhitespace(t *testing.T) {
	v := New()

	form := validForm()
	form.ClientName = "  Jordan Smith  "
	form.ClientEmail = " jordan@example.com "
	assert.NoError(t, v.Validate(form))

	// Whitespace-only values count as missing
	form = validForm()
	form.ClientName = "   "
	err := v.Validate(form)
	var fieldErrs FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Equal(t, FieldClientName, fieldErrs.First().Field)
	assert.ErrorIs(t, fieldErrs.First().Err, ErrMissingField)
}

func TestValidate_MissingFields(t *testing.T) {
	v := New()

	form := validForm()
	form.ClientName = ""
	err := v.Validate(form)
	var fieldErrs FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Len(t, fieldErrs, 1)
	assert.Equal(t, FieldClientName, fieldErrs.First().Field)
	assert.ErrorIs(t, fieldErrs.First().Err, ErrMissingField)

	form = validForm()
	form.Service = ""
	err = v.Validate(form)
	require.ErrorAs(t, err, &fieldErrs)
	assert.Equal(t, FieldService, fieldErrs.First().Field)
}

func TestValidate_BadEmail(t *testing.T) {
	v := New()

	form := validForm()
	form.ClientEmail = "jordan@example"
	err := v.Validate(form)

	var fieldErrs FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Len(t, fieldErrs, 1)
	assert.Equal(t, FieldClientEmail, fieldErrs.First().Field)
	assert.ErrorIs(t, fieldErrs.First().Err, ErrBadEmail)
}

func TestValidate_MissingSelection(t *testing.T) {
	v := New()

	form := validForm()
	form.Selection = nil
	err := v.Validate(form)

	var fieldErrs FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Len(t, fieldErrs, 1)
	assert.Equal(t, FieldSelection, fieldErrs.First().Field)
	assert.ErrorIs(t, fieldErrs.First().Err, ErrMissingField)
}

func TestValidate_CollectsAllFailuresInFieldOrder(t *testing.T) {
	v := New()

	form := &domain.BookingForm{
		ClientName:  "",
		ClientEmail: "not-an-email",
		Service:     "",
		Selection:   nil,
	}
	err := v.Validate(form)

	var fieldErrs FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Len(t, fieldErrs, 4)

	// Deterministic order: the fields as they appear on the page
	assert.Equal(t, FieldClientName, fieldErrs[0].Field)
	assert.Equal(t, FieldClientEmail, fieldErrs[1].Field)
	assert.Equal(t, FieldService, fieldErrs[2].Field)
	assert.Equal(t, FieldSelection, fieldErrs[3].Field)

	assert.ErrorIs(t, fieldErrs[1].Err, ErrBadEmail)
}
