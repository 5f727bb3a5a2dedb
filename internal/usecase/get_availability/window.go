package get_availability

import (
	"fmt"

	"cloud.google.com/go/civil"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
)

// resolveWindow вычисляет окно [from, to] для расчёта доступности
//
// Правила:
// - from не передан → today
// - to не передан → from + advanceDays (advanceDays <= 0 → DefaultAdvanceDays)
// - окно длиннее MaxWindowDays → to обрезается до from + MaxWindowDays, без ошибки
// - to раньше from → ErrInvalidRange
func resolveWindow(req *Request, today civil.Date, advanceDays int) (civil.Date, civil.Date, error) {
	fromPtr, err := parseOptionalDate("from", req.From)
	if err != nil {
		return civil.Date{}, civil.Date{}, err
	}
	toPtr, err := parseOptionalDate("to", req.To)
	if err != nil {
		return civil.Date{}, civil.Date{}, err
	}

	from := today
	if fromPtr != nil {
		from = *fromPtr
	}

	if advanceDays <= 0 {
		advanceDays = domain.DefaultAdvanceDays
	}

	to := from.AddDays(advanceDays)
	if toPtr != nil {
		to = *toPtr
	}

	if to.Before(from) {
		return civil.Date{}, civil.Date{}, fmt.Errorf("%w: from=%s, to=%s", ErrInvalidRange, from, to)
	}

	if to.DaysSince(from) > domain.MaxWindowDays {
		to = from.AddDays(domain.MaxWindowDays)
	}

	return from, to, nil
}
