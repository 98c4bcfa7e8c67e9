package schedule

import (
	"errors"
	"fmt"
	"slices"
	"time"
	_ "time/tzdata"

	"homeservice-booking/internal/domain/booking"
	"homeservice-booking/internal/domain/provider"
)

const (
	TimeLayout   = "15:04"
	firstSlot    = 8 * time.Hour
	lastSlot     = 18 * time.Hour
	slotInterval = 30 * time.Minute

	weekendOpenHour  = 10
	weekendCloseHour = 16
)

var (
	ErrInvalidDate         = errors.New("date must be formatted as YYYY-MM-DD")
	ErrInvalidTime         = errors.New("time must be one of the bookable slots")
	ErrInvalidTimeZone     = errors.New("unknown time zone")
	ErrProviderUnavailable = errors.New("provider is not available on this date")
	ErrSlotUnavailable     = errors.New("time slot is not available")
)

var timeSlots = buildTimeSlots()

func buildTimeSlots() []string {
	var out []string
	for d := firstSlot; d <= lastSlot; d += slotInterval {
		out = append(out, fmt.Sprintf("%02d:%02d", int(d.Hours()), int(d.Minutes())%60))
	}
	return out
}

// TimeSlots returns the bookable start times of a day, every half hour from
// 08:00 to 18:00.
func TimeSlots() []string {
	return slices.Clone(timeSlots)
}

func IsSlot(clock string) bool {
	return slices.Contains(timeSlots, clock)
}

type Slot struct {
	Time      string
	Available bool
}

// Start resolves a date and slot in loc.
func Start(date, clock string, loc *time.Location) (time.Time, error) {
	day, err := time.ParseInLocation(provider.DateLayout, date, loc)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	if !IsSlot(clock) {
		return time.Time{}, ErrInvalidTime
	}
	t, _ := time.Parse(TimeLayout, clock)
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, loc), nil
}

// SlotAvailable rejects slots that have started, weekend slots outside the
// reduced opening hours and slots already booked.
func SlotAvailable(start, now time.Time, booked []string) bool {
	if !start.After(now) {
		return false
	}
	if isWeekend(start) && (start.Hour() < weekendOpenHour || start.Hour() > weekendCloseHour) {
		return false
	}
	return !slices.Contains(booked, start.Format(TimeLayout))
}

// DaySlots lists every slot of date with its availability. A provider that is
// off that day has no available slot.
func DaySlots(date string, p *provider.Provider, now time.Time, booked []string, loc *time.Location) ([]Slot, error) {
	day, err := time.ParseInLocation(provider.DateLayout, date, loc)
	if err != nil {
		return nil, ErrInvalidDate
	}
	open := p == nil || p.IsAvailableOn(day)
	out := make([]Slot, 0, len(timeSlots))
	for _, clock := range timeSlots {
		start, err := Start(date, clock, loc)
		if err != nil {
			return nil, err
		}
		out = append(out, Slot{Time: clock, Available: open && SlotAvailable(start, now, booked)})
	}
	return out, nil
}

// Validate checks a schedule against the slot rules and the provider calendar.
// The schedule's own time zone wins over loc when it names a known zone.
func Validate(s booking.Schedule, p *provider.Provider, now time.Time, booked []string, loc *time.Location) error {
	if s.TimeZone != "" {
		zone, err := time.LoadLocation(s.TimeZone)
		if err != nil {
			return ErrInvalidTimeZone
		}
		loc = zone
	}
	start, err := Start(s.Date, s.Time, loc)
	if err != nil {
		return err
	}
	if p != nil && !p.IsAvailableOn(start) {
		return ErrProviderUnavailable
	}
	if !SlotAvailable(start, now, booked) {
		return ErrSlotUnavailable
	}
	return nil
}

func isWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
