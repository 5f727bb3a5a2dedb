// Package availability строит календарь доступности по настройкам из CMS.
// Расчёт чистый: без I/O, без состояния, входные данные не изменяются.
package availability

import (
	"fmt"

	"cloud.google.com/go/civil"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
)

// Compute рассчитывает доступность для каждого дня окна [from, to] включительно
// Дни идут по возрастанию, без пропусков и повторов
// Длину окна не ограничивает, обрезка - забота вызывающего
func Compute(settings domain.AvailabilitySettings, from, to civil.Date) ([]domain.AvailabilityDay, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: from=%s, to=%s", ErrInvalidRange, from, to)
	}

	closed := closedSet(settings.ClosedDates)
	blocked := blockedByDate(settings.BlockedSlots)

	days := make([]domain.AvailabilityDay, 0, to.DaysSince(from)+1)
	for d := from; !d.After(to); d = d.AddDays(1) {
		days = append(days, computeDay(settings, d, closed, blocked[d]))
	}

	return days, nil
}

// computeDay рассчитывает один день
func computeDay(
	settings domain.AvailabilitySettings,
	d civil.Date,
	closed map[civil.Date]struct{},
	blocked map[string]struct{},
) domain.AvailabilityDay {
	inOpenRange := false
	var note *string
	// Заметка берется из первого подходящего диапазона
	for _, r := range settings.OpenRanges {
		if r.Contains(d) {
			inOpenRange = true
			note = r.Note
			break
		}
	}

	isOpen := true
	if _, ok := closed[d]; ok {
		isOpen = false
	} else if settings.DefaultClosed {
		isOpen = inOpenRange
	}

	times := make([]domain.TimeAvailability, len(settings.StartTimes))
	for i, t := range settings.StartTimes {
		_, isBlocked := blocked[t]
		times[i] = domain.TimeAvailability{
			Time:      t,
			Available: isOpen && !isBlocked,
		}
	}

	return domain.AvailabilityDay{
		Date:   d,
		IsOpen: isOpen,
		Times:  times,
		Note:   note,
	}
}

// closedSet строит множество закрытых дат
func closedSet(dates []civil.Date) map[civil.Date]struct{} {
	set := make(map[civil.Date]struct{}, len(dates))
	for _, d := range dates {
		if !d.IsValid() {
			continue
		}
		set[d] = struct{}{}
	}
	return set
}

// blockedByDate объединяет заблокированные времена по датам
// Несколько записей на одну дату дают объединение их времён
func blockedByDate(slots []domain.BlockedSlot) map[civil.Date]map[string]struct{} {
	result := make(map[civil.Date]map[string]struct{}, len(slots))
	for _, slot := range slots {
		// Запись без даты пропускается
		if !slot.Date.IsValid() {
			continue
		}
		set, ok := result[slot.Date]
		if !ok {
			set = make(map[string]struct{}, len(slot.Times))
			result[slot.Date] = set
		}
		for _, t := range slot.Times {
			set[t] = struct{}{}
		}
	}
	return result
}
