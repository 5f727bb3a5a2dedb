package create_booking_request

import (
	"errors"
	"fmt"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/go-playground/validator/v10"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	err := v.RegisterValidation("civil_date", func(fl validator.FieldLevel) bool {
		_, err := civil.ParseDate(fl.Field().String())
		return err == nil
	})
	if err != nil {
		panic(fmt.Sprintf("create_booking_request: register civil_date validation: %v", err))
	}
	return v
}

// normalizeRequest обрезает пробелы, пустые необязательные поля превращает в nil
func normalizeRequest(req *Request) {
	req.Date = strings.TrimSpace(req.Date)
	req.Time = strings.TrimSpace(req.Time)
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = trimOptional(req.Phone)
	req.Message = trimOptional(req.Message)
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		messages = append(messages, fieldMessage(fe))
	}

	return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(messages, ", "))
}

func fieldMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		if fe.Field() == "Consent" {
			return "consent must be given"
		}
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "max":
		return field + " must be at most " + fe.Param() + " characters"
	case "civil_date":
		return field + " must be in YYYY-MM-DD format"
	default:
		return field + " is invalid"
	}
}

// validateDate проверяет, что дата не в прошлом и не дальше максимального окна
// Граница совпадает с максимальным явным окном календаря, а не с горизонтом по умолчанию
func validateDate(date, today civil.Date) error {
	if date.Before(today) {
		return ErrInvalidDate
	}

	if date.DaysSince(today) > domain.MaxWindowDays {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, domain.MaxWindowDays)
	}

	return nil
}
