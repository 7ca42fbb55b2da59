package appointmentapi

import (
	"errors"
	"fmt"
)

var (
	// ErrRequestFailed возвращается при транспортных ошибках (сеть, таймаут)
	ErrRequestFailed = errors.New("appointmentapi client: request failed")

	// ErrInvalidResponse возвращается при некорректном ответе сервера
	ErrInvalidResponse = errors.New("appointmentapi client: invalid response")

	// ErrServerRejected возвращается, когда сервер ответил не-2xx статусом
	ErrServerRejected = errors.New("appointmentapi client: server rejected request")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("appointmentapi client: internal error")
)

// ServerError не-2xx ответ сервера. Message - текст из тела ответа,
// пустая строка, если сервер его не прислал.
type ServerError struct {
	StatusCode int
	Message    string
}

// Error возвращает текст ошибки со статус-кодом
func (e *ServerError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server rejected request with status %d", e.StatusCode)
	}
	return fmt.Sprintf("server rejected request with status %d: %s", e.StatusCode, e.Message)
}

// Unwrap позволяет errors.Is(err, ErrServerRejected)
func (e *ServerError) Unwrap() error {
	return ErrServerRejected
}
