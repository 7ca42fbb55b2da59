package domain

import "time"

// SelectionStatus represents the lifecycle stage of an active selection
type SelectionStatus string

const (
	SelectionPending   SelectionStatus = "pending"
	SelectionConfirmed SelectionStatus = "confirmed"
)

// Selection is the single active booking candidate chosen on the calendar.
// Создаётся только после успешной проверки слота, заменяет любой предыдущий
// выбор и уничтожается при снятии выбора или успешной отправке формы.
type Selection struct {
	Start  time.Time
	End    time.Time
	Status SelectionStatus
}

// Interval returns the time span of the selection
func (s *Selection) Interval() Interval {
	return Interval{Start: s.Start, End: s.End}
}
