package submission

import (
	"context"

	"github.com/m04kA/SC-AppointmentService/internal/domain"
	"github.com/m04kA/SC-AppointmentService/internal/integrations/appointmentapi"
)

// FormValidator интерфейс валидатора формы записи
type FormValidator interface {
	Validate(form *domain.BookingForm) error
}

// AppointmentClient интерфейс клиента backend API для создания записи
type AppointmentClient interface {
	CreateAppointment(ctx context.Context, req *appointmentapi.CreateAppointmentRequest) (*appointmentapi.CreateAppointmentResponse, error)
}

// SelectionHolder активный выбор слота; успешная отправка уничтожает его
type SelectionHolder interface {
	Clear()
}

// Presenter получает директивы отображения от контроллера.
// Это указания "что показать", а не состояние: контроллер не трогает
// презентацию напрямую.
type Presenter interface {
	// SubmissionStarted блокирует кнопку отправки и показывает индикатор занятости
	SubmissionStarted()
	// SubmissionSucceeded сообщает redirect-цель; страница должна перейти по ней
	SubmissionSucceeded(redirect string)
	// SubmissionFailed показывает сообщение об ошибке, снимает индикатор
	// и снова включает кнопку отправки
	SubmissionFailed(message string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
