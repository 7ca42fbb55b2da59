package domain

// BookingForm holds the booking form fields as entered by the visitor.
// Владелец формы - страница; движок только читает и валидирует её.
// Service хранит сырое значение из select-контрола (ID услуги строкой).
type BookingForm struct {
	ClientName  string
	ClientEmail string
	Service     string
	Selection   *Selection
}
