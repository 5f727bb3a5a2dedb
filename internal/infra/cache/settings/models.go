package settings

import (
	"cloud.google.com/go/civil"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
)

// cachedSettings представление настроек в кэше
// civil.Date сериализуется как "YYYY-MM-DD"
type cachedSettings struct {
	Timezone      string              `json:"timezone"`
	DefaultClosed bool                `json:"defaultClosed"`
	AdvanceDays   int                 `json:"advanceDays"`
	StartTimes    []string            `json:"startTimes"`
	OpenRanges    []cachedOpenRange   `json:"openRanges"`
	ClosedDates   []civil.Date        `json:"closedDates"`
	BlockedSlots  []cachedBlockedSlot `json:"blockedSlots"`
}

type cachedOpenRange struct {
	From civil.Date `json:"from"`
	To   civil.Date `json:"to"`
	Note *string    `json:"note,omitempty"`
}

type cachedBlockedSlot struct {
	Date   civil.Date `json:"date"`
	Times  []string   `json:"times"`
	Reason *string    `json:"reason,omitempty"`
}

func fromDomain(s *domain.AvailabilitySettings) cachedSettings {
	c := cachedSettings{
		Timezone:      s.Timezone,
		DefaultClosed: s.DefaultClosed,
		AdvanceDays:   s.AdvanceDays,
		StartTimes:    s.StartTimes,
		OpenRanges:    make([]cachedOpenRange, len(s.OpenRanges)),
		ClosedDates:   s.ClosedDates,
		BlockedSlots:  make([]cachedBlockedSlot, len(s.BlockedSlots)),
	}
	for i, r := range s.OpenRanges {
		c.OpenRanges[i] = cachedOpenRange{From: r.From, To: r.To, Note: r.Note}
	}
	for i, b := range s.BlockedSlots {
		c.BlockedSlots[i] = cachedBlockedSlot{Date: b.Date, Times: b.Times, Reason: b.Reason}
	}
	return c
}

func (c cachedSettings) toDomain() *domain.AvailabilitySettings {
	s := &domain.AvailabilitySettings{
		Timezone:      c.Timezone,
		DefaultClosed: c.DefaultClosed,
		AdvanceDays:   c.AdvanceDays,
		StartTimes:    c.StartTimes,
		OpenRanges:    make([]domain.OpenRange, len(c.OpenRanges)),
		ClosedDates:   c.ClosedDates,
		BlockedSlots:  make([]domain.BlockedSlot, len(c.BlockedSlots)),
	}
	for i, r := range c.OpenRanges {
		s.OpenRanges[i] = domain.OpenRange{From: r.From, To: r.To, Note: r.Note}
	}
	for i, b := range c.BlockedSlots {
		s.BlockedSlots[i] = domain.BlockedSlot{Date: b.Date, Times: b.Times, Reason: b.Reason}
	}
	return s
}
