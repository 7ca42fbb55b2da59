package get_booked_slots

import "time"

// Request модель запроса занятых интервалов.
// Нулевые From/To означают "окно записи по умолчанию от текущего момента".
type Request struct {
	From time.Time
	To   time.Time
}

// BookedSlot занятый интервал без персональных данных клиента
type BookedSlot struct {
	Start time.Time
	End   time.Time
}

// Response модель ответа со списком занятых интервалов
type Response struct {
	From  time.Time
	To    time.Time
	Slots []BookedSlot
}
