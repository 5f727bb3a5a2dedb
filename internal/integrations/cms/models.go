package cms

import (
	"cloud.google.com/go/civil"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
)

// AvailabilitySettingsDocument документ настроек доступности из CMS
// Все поля необязательны
type AvailabilitySettingsDocument struct {
	Timezone      string           `json:"timezone"`
	AdvanceDays   int              `json:"advanceDays"`
	DefaultClosed bool             `json:"defaultClosed"`
	StartTimes    []string         `json:"startTimes"`
	OpenRanges    []OpenRangeDoc   `json:"openRanges"`
	ClosedDates   []string         `json:"closedDates"`
	BlockedSlots  []BlockedSlotDoc `json:"blockedSlots"`
}

type OpenRangeDoc struct {
	From string  `json:"from"`
	To   string  `json:"to"`
	Note *string `json:"note,omitempty"`
}

type BlockedSlotDoc struct {
	Date   string   `json:"date"`
	Times  []string `json:"times"`
	Reason *string  `json:"reason,omitempty"`
}

// ToDomain конвертирует документ в доменные настройки
// Возвращает число пропущенных записей (без даты или с некорректной датой)
func (d *AvailabilitySettingsDocument) ToDomain(defaultTimezone string) (*domain.AvailabilitySettings, int) {
	skipped := 0

	settings := &domain.AvailabilitySettings{
		Timezone:      d.Timezone,
		DefaultClosed: d.DefaultClosed,
		AdvanceDays:   d.AdvanceDays,
		StartTimes:    make([]string, 0, len(d.StartTimes)),
		OpenRanges:    make([]domain.OpenRange, 0, len(d.OpenRanges)),
		ClosedDates:   make([]civil.Date, 0, len(d.ClosedDates)),
		BlockedSlots:  make([]domain.BlockedSlot, 0, len(d.BlockedSlots)),
	}
	if settings.Timezone == "" {
		settings.Timezone = defaultTimezone
	}

	for _, t := range d.StartTimes {
		if t == "" {
			skipped++
			continue
		}
		settings.StartTimes = append(settings.StartTimes, t)
	}

	for _, r := range d.OpenRanges {
		from, errFrom := civil.ParseDate(r.From)
		to, errTo := civil.ParseDate(r.To)
		if errFrom != nil || errTo != nil {
			skipped++
			continue
		}
		settings.OpenRanges = append(settings.OpenRanges, domain.OpenRange{From: from, To: to, Note: r.Note})
	}

	for _, s := range d.ClosedDates {
		date, err := civil.ParseDate(s)
		if err != nil {
			skipped++
			continue
		}
		settings.ClosedDates = append(settings.ClosedDates, date)
	}

	for _, b := range d.BlockedSlots {
		date, err := civil.ParseDate(b.Date)
		if err != nil {
			skipped++
			continue
		}
		settings.BlockedSlots = append(settings.BlockedSlots, domain.BlockedSlot{
			Date:   date,
			Times:  b.Times,
			Reason: b.Reason,
		})
	}

	return settings, skipped
}
