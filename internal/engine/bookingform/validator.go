package bookingform

import (
	"errors"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SC-AppointmentService/internal/domain"
)

// Поля формы в порядке отображения на странице - в этом же порядке
// собираются ошибки валидации
const (
	FieldClientName  = "clientName"
	FieldClientEmail = "clientEmail"
	FieldService     = "service"
	FieldSelection   = "selection"
)

// emailShapeRx требует local-part@domain без пробельных символов и хотя бы
// одну точку в доменной части: "a@b" отклоняется, "a@b.com" принимается
var emailShapeRx = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsValidEmail проверяет форму email-адреса.
// Экспортируется, чтобы серверная валидация использовала ту же проверку.
func IsValidEmail(email string) bool {
	return emailShapeRx.MatchString(email)
}

// formFields DTO для go-playground/validator; теги проверяются в порядке
// объявления полей
type formFields struct {
	ClientName  string `validate:"required"`
	ClientEmail string `validate:"required,email_shape"`
	Service     string `validate:"required"`
}

// Validator проверяет полноту формы записи и форму email-адреса
type Validator struct {
	validate *validator.Validate
}

// New создает валидатор формы с кастомным правилом email_shape
func New() *Validator {
	v := validator.New()

	// Регистрация не может вернуть ошибку для непустого тега и корректной функции
	_ = v.RegisterValidation("email_shape", func(fl validator.FieldLevel) bool {
		return IsValidEmail(fl.Field().String())
	})

	return &Validator{validate: v}
}

// Validate проверяет форму и возвращает nil либо FieldErrors со ВСЕМИ
// не прошедшими полями (не короткое замыкание). Поля проверяются после
// обрезки пробельных символов. Активный выбор слота - такое же обязательное
// "поле", как имя и email.
func (v *Validator) Validate(form *domain.BookingForm) error {
	fields := formFields{
		ClientName:  strings.TrimSpace(form.ClientName),
		ClientEmail: strings.TrimSpace(form.ClientEmail),
		Service:     strings.TrimSpace(form.Service),
	}

	var errs FieldErrors

	if err := v.validate.Struct(fields); err != nil {
		var vErrs validator.ValidationErrors
		if !errors.As(err, &vErrs) {
			// InvalidValidationError невозможен для непустой структуры,
			// но не глотаем его молча
			return err
		}

		// ValidationErrors идут в порядке объявления полей структуры
		for _, fe := range vErrs {
			fieldErr := &FieldError{Field: fieldName(fe.StructField())}
			switch fe.Tag() {
			case "email_shape":
				fieldErr.Err = ErrBadEmail
			default:
				fieldErr.Err = ErrMissingField
			}
			errs = append(errs, fieldErr)
		}
	}

	if form.Selection == nil {
		errs = append(errs, &FieldError{Field: FieldSelection, Err: ErrMissingField})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// fieldName отображает имя поля структуры в имя контрола на странице
func fieldName(structField string) string {
	switch structField {
	case "ClientName":
		return FieldClientName
	case "ClientEmail":
		return FieldClientEmail
	case "Service":
		return FieldService
	default:
		return structField
	}
}
