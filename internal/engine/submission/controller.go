package submission

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/m04kA/SC-AppointmentService/internal/domain"
	"github.com/m04kA/SC-AppointmentService/internal/engine/bookingform"
	"github.com/m04kA/SC-AppointmentService/internal/integrations/appointmentapi"
)

// Phase фаза жизненного цикла отправки формы
type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseValidating Phase = "validating"
	PhaseSubmitting Phase = "submitting"
	PhaseSucceeded  Phase = "succeeded"
	PhaseFailed     Phase = "failed"
)

// DefaultRedirect цель перехода, если сервер не прислал свою
const DefaultRedirect = "/"

// Сообщения для пользователя
const (
	msgMissingName      = "Please enter your name"
	msgMissingEmail     = "Please enter your email address"
	msgBadEmail         = "Please enter a valid email address"
	msgMissingService   = "Please choose a service"
	msgMissingSelection = "Please pick a time slot on the calendar"
	msgRequestFailed    = "Could not reach the booking server. Please try again"
	msgServerRejected   = "Your booking could not be completed. Please try again"
)

var (
	// ErrSubmissionInFlight возвращается при попытке отправить форму, пока
	// предыдущая отправка ещё выполняется
	ErrSubmissionInFlight = errors.New("submission: another submission is in progress")

	// ErrSubmissionComplete возвращается при попытке отправить форму после
	// успешной отправки: Succeeded - терминальная фаза
	ErrSubmissionComplete = errors.New("submission: submission already completed")
)

// Controller управляет жизненным циклом отправки формы записи:
//
//	Idle → Validating → Submitting → {Succeeded, Failed} → Idle
//
// Успешная отправка - терминальное состояние: страница уходит по redirect,
// возврата в Idle нет, и повторный Submit из Succeeded отклоняется.
// Ошибка всегда возвращает контроллер в Idle, чтобы пользователь мог
// исправить ввод и повторить без перезагрузки.
//
// Одновременно допускается не более одной отправки: повторный Submit во
// время выполнения игнорируется (кнопка в это время заблокирована
// презентацией, фазовый барьер - структурная страховка того же инварианта).
type Controller struct {
	mu    sync.Mutex
	phase Phase

	validator FormValidator
	client    AppointmentClient
	selection SelectionHolder
	presenter Presenter
	log       Logger
}

// NewController создает контроллер отправки в фазе Idle
func NewController(
	validator FormValidator,
	client AppointmentClient,
	selection SelectionHolder,
	presenter Presenter,
	log Logger,
) *Controller {
	return &Controller{
		phase:     PhaseIdle,
		validator: validator,
		client:    client,
		selection: selection,
		presenter: presenter,
		log:       log,
	}
}

// Phase возвращает текущую фазу жизненного цикла
func (c *Controller) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// Submit выполняет полный цикл отправки: валидация → блокировка UI →
// запрос → разбор ответа → разблокировка UI. Возвращает redirect-цель при
// успехе. Ошибки валидации до сети не доходят - ни одного запроса при
// незаполненной форме не отправляется.
func (c *Controller) Submit(ctx context.Context, form *domain.BookingForm) (string, error) {
	c.mu.Lock()
	switch c.phase {
	case PhaseValidating, PhaseSubmitting:
		c.mu.Unlock()
		c.log.Warn("Submit: ignored, submission already in progress")
		return "", ErrSubmissionInFlight
	case PhaseSucceeded:
		// Терминальная фаза: страница уже уходит по redirect,
		// новая отправка из неё невозможна
		c.mu.Unlock()
		c.log.Warn("Submit: ignored, submission already completed")
		return "", ErrSubmissionComplete
	}
	c.phase = PhaseValidating
	c.mu.Unlock()

	// 1. Валидация формы; при отказе запрос не отправляется
	if err := c.validator.Validate(form); err != nil {
		c.log.Warn("Submit: form validation failed: %v", err)
		c.fail(validationMessage(err))
		return "", err
	}

	// 2. Блокируем кнопку и показываем индикатор на время запроса
	c.setPhase(PhaseSubmitting)
	c.presenter.SubmissionStarted()

	// 3. Ровно один исходящий запрос с полями формы и временем начала слота
	resp, err := c.client.CreateAppointment(ctx, buildRequest(form))
	if err != nil {
		c.log.Error("Submit: create appointment failed: %v", err)
		c.fail(submissionMessage(err))
		return "", err
	}

	// 4. Успех: redirect из ответа, по умолчанию - корень сайта
	redirect := resp.Redirect
	if redirect == "" {
		redirect = DefaultRedirect
	}

	// Выбор уничтожается успешной отправкой
	c.selection.Clear()

	c.setPhase(PhaseSucceeded)
	c.presenter.SubmissionSucceeded(redirect)
	c.log.Info("Submit: appointment created, reference=%s, redirect=%s", resp.Reference, redirect)
	return redirect, nil
}

// fail проходит через терминальную фазу Failed и возвращает контроллер
// в Idle с разблокированной кнопкой отправки
func (c *Controller) fail(message string) {
	c.setPhase(PhaseFailed)
	c.presenter.SubmissionFailed(message)
	c.setPhase(PhaseIdle)
}

func (c *Controller) setPhase(p Phase) {
	c.mu.Lock()
	c.phase = p
	c.mu.Unlock()
}

// buildRequest сериализует форму и время начала выбранного слота
func buildRequest(form *domain.BookingForm) *appointmentapi.CreateAppointmentRequest {
	return &appointmentapi.CreateAppointmentRequest{
		ClientName:  form.ClientName,
		ClientEmail: form.ClientEmail,
		Service:     form.Service,
		StartTime:   form.Selection.Start.Format(time.RFC3339),
	}
}

// validationMessage подбирает сообщение по первому не прошедшему полю
func validationMessage(err error) string {
	var fieldErrs bookingform.FieldErrors
	if !errors.As(err, &fieldErrs) || fieldErrs.First() == nil {
		return msgServerRejected
	}

	first := fieldErrs.First()
	if errors.Is(first.Err, bookingform.ErrBadEmail) {
		return msgBadEmail
	}

	switch first.Field {
	case bookingform.FieldClientName:
		return msgMissingName
	case bookingform.FieldClientEmail:
		return msgMissingEmail
	case bookingform.FieldService:
		return msgMissingService
	case bookingform.FieldSelection:
		return msgMissingSelection
	default:
		return msgServerRejected
	}
}

// submissionMessage извлекает серверное сообщение, если оно есть,
// иначе подставляет общий текст
func submissionMessage(err error) string {
	var serverErr *appointmentapi.ServerError
	if errors.As(err, &serverErr) && serverErr.Message != "" {
		return serverErr.Message
	}
	if errors.Is(err, appointmentapi.ErrRequestFailed) {
		return msgRequestFailed
	}
	return msgServerRejected
}
