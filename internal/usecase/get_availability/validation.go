package get_availability

import (
	"fmt"

	"cloud.google.com/go/civil"
)

// parseOptionalDate разбирает дату YYYY-MM-DD
// Возвращает nil для пустой строки
func parseOptionalDate(name, value string) (*civil.Date, error) {
	if value == "" {
		return nil, nil
	}

	d, err := civil.ParseDate(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be in YYYY-MM-DD format", ErrInvalidInput, name)
	}

	return &d, nil
}
