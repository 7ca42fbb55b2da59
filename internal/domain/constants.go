package domain

// Default booking policy values (used when config.toml omits them)
const (
	DefaultOpenTime       = "09:00"
	DefaultCloseTime      = "20:00"
	DefaultTimezone       = "America/Los_Angeles"
	DefaultMaxAdvanceDays = 30
)

// Business validation constants
const (
	MinClientNameLength = 2
	MaxClientNameLength = 100

	MinSlotDurationMinutes = 5
	MaxSlotDurationMinutes = 480 // 8 hours

	MinMaxAdvanceDays = 1
	MaxMaxAdvanceDays = 365 // 1 year
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов, которые не занимают слот
// Используется при подсчёте занятых интервалов
var InactiveStatuses = []AppointmentStatus{
	StatusCancelledByClient,
	StatusCancelledByShop,
	StatusNoShow,
}

// ActiveStatuses список статусов активных записей
var ActiveStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
}
