package domain

import "cloud.google.com/go/civil"

// AvailabilityDay рассчитанная доступность одного календарного дня
type AvailabilityDay struct {
	Date   civil.Date
	IsOpen bool
	Times  []TimeAvailability // В порядке AvailabilitySettings.StartTimes
	Note   *string
}

// TimeAvailability доступность одного времени начала
type TimeAvailability struct {
	Time      string
	Available bool
}

// IsTimeAvailable проверяет, что время есть в дне и доступно
func (d *AvailabilityDay) IsTimeAvailable(t string) bool {
	for _, ta := range d.Times {
		if ta.Time == t {
			return ta.Available
		}
	}
	return false
}

// AvailableCount возвращает количество доступных времён в дне
func (d *AvailabilityDay) AvailableCount() int {
	count := 0
	for _, ta := range d.Times {
		if ta.Available {
			count++
		}
	}
	return count
}
