package inventory_window

import (
	"time"

	"dinner-service/internal/entities"
)

const (
	daysPerWeek = 7
	dayLength   = 24 * time.Hour
)

// WindowFactory окно резервирования это неделя с понедельника 00:00 в зоне политики
type WindowFactory struct {
	location *time.Location
}

func New(location *time.Location) *WindowFactory {
	if location == nil {
		location = time.UTC
	}
	return &WindowFactory{location: location}
}

func (f *WindowFactory) Location() *time.Location {
	return f.location
}

func (f *WindowFactory) WeekStart(t time.Time) time.Time {
	local := t.In(f.location)
	daysFromMonday := (int(local.Weekday()) + daysPerWeek - 1) % daysPerWeek
	return time.Date(local.Year(), local.Month(), local.Day()-daysFromMonday, 0, 0, 0, 0, f.location)
}

func (f *WindowFactory) WindowFor(t time.Time) entities.InventoryWindow {
	start := f.WeekStart(t)
	return entities.InventoryWindow{
		Start: start,
		End:   start.AddDate(0, 0, daysPerWeek),
	}
}

// WindowFrom окно, начинающееся ровно в полночь переданной даты
func (f *WindowFactory) WindowFrom(date time.Time) entities.InventoryWindow {
	local := date.In(f.location)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, f.location)
	return entities.InventoryWindow{
		Start: start,
		End:   start.AddDate(0, 0, daysPerWeek),
	}
}

// Days семь полночей окна
func (f *WindowFactory) Days(window entities.InventoryWindow) []time.Time {
	days := make([]time.Time, 0, daysPerWeek)
	for i := 0; i < daysPerWeek; i++ {
		days = append(days, window.Start.AddDate(0, 0, i))
	}
	return days
}
