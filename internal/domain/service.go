package domain

// Service represents a bookable barbershop service
type Service struct {
	ID              int64
	Name            string
	Description     string
	Price           float64
	DurationMinutes int
}
