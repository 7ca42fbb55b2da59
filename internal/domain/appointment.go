package domain

import "time"

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending           AppointmentStatus = "pending"
	StatusConfirmed         AppointmentStatus = "confirmed"
	StatusCompleted         AppointmentStatus = "completed"
	StatusCancelledByClient AppointmentStatus = "cancelled_by_client"
	StatusCancelledByShop   AppointmentStatus = "cancelled_by_shop"
	StatusNoShow            AppointmentStatus = "no_show"
)

// Appointment represents a booked appointment in the system
type Appointment struct {
	ID              int64
	Reference       string // Публичный идентификатор (UUID), используется в ссылке подтверждения
	ClientName      string
	ClientEmail     string
	ServiceID       int64
	StartTime       time.Time
	DurationMinutes int
	Status          AppointmentStatus

	// Denormalized data for history
	ServiceName  string
	ServicePrice float64

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment still occupies its slot
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelledByClient &&
		a.Status != StatusCancelledByShop &&
		a.Status != StatusNoShow
}

// CanBeCancelled returns true if the appointment can be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// Interval returns the time span the appointment occupies
func (a *Appointment) Interval() Interval {
	return Interval{
		Start: a.StartTime,
		End:   a.StartTime.Add(time.Duration(a.DurationMinutes) * time.Minute),
	}
}
