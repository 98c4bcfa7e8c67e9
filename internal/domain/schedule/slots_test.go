//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"homeservice-booking/internal/domain/booking"
	"homeservice-booking/internal/domain/provider"
	"homeservice-booking/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var booked = []string{"10:00", "14:30", "16:00"}

// Wednesday 2024-01-17 09:00 UTC.
var now = time.Date(2024, 1, 17, 9, 0, 0, 0, time.UTC)

func TestTimeSlots(t *testing.T) {
	slots := schedule.TimeSlots()
	require.Len(t, slots, 21)
	assert.Equal(t, "08:00", slots[0])
	assert.Equal(t, "08:30", slots[1])
	assert.Equal(t, "18:00", slots[len(slots)-1])

	slots[0] = "changed"
	assert.True(t, schedule.IsSlot("08:00"))
	assert.False(t, schedule.IsSlot("08:15"))
}

func TestSlotAvailable(t *testing.T) {
	cases := []struct {
		name  string
		date  string
		clock string
		want  bool
	}{
		{name: "weekday future slot", date: "2024-01-18", clock: "08:00", want: true},
		{name: "booked slot", date: "2024-01-18", clock: "14:30"},
		{name: "already started today", date: "2024-01-17", clock: "09:00"},
		{name: "later today", date: "2024-01-17", clock: "09:30", want: true},
		{name: "past day", date: "2024-01-16", clock: "12:00"},
		{name: "saturday early", date: "2024-01-20", clock: "09:30"},
		{name: "saturday midday", date: "2024-01-20", clock: "14:00", want: true},
		{name: "saturday 16:30 still in opening hour", date: "2024-01-20", clock: "16:30", want: true},
		{name: "sunday evening", date: "2024-01-21", clock: "17:00"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			start, err := schedule.Start(tc.date, tc.clock, time.UTC)
			require.NoError(t, err)
			assert.Equal(t, tc.want, schedule.SlotAvailable(start, now, booked))
		})
	}
}

func TestDaySlots(t *testing.T) {
	p, err := provider.NewProvider(provider.Params{
		ID: "1", Name: "Sarah", Rating: 4.9, HourlyRate: booking.NewMoneyFromAmount(75),
		ExcludedDates: []string{"2024-01-19"},
	})
	require.NoError(t, err)

	slots, err := schedule.DaySlots("2024-01-18", p, now, booked, time.UTC)
	require.NoError(t, err)
	require.Len(t, slots, 21)
	available := 0
	for _, s := range slots {
		if s.Available {
			available++
		}
	}
	assert.Equal(t, 18, available)

	slots, err = schedule.DaySlots("2024-01-19", p, now, booked, time.UTC)
	require.NoError(t, err)
	for _, s := range slots {
		assert.False(t, s.Available, s.Time)
	}

	_, err = schedule.DaySlots("19/01/2024", p, now, booked, time.UTC)
	assert.ErrorIs(t, err, schedule.ErrInvalidDate)
}

func TestValidate(t *testing.T) {
	p, err := provider.NewProvider(provider.Params{
		ID: "1", Name: "Sarah", Rating: 4.9, HourlyRate: booking.NewMoneyFromAmount(75),
		ExcludedDates: []string{"2024-01-25"},
	})
	require.NoError(t, err)

	cases := []struct {
		name  string
		s     booking.Schedule
		errIs error
	}{
		{name: "valid", s: booking.Schedule{Date: "2024-01-18", Time: "14:00"}},
		{name: "valid with zone", s: booking.Schedule{Date: "2024-01-18", Time: "14:00", TimeZone: "Africa/Casablanca"}},
		{name: "bad date", s: booking.Schedule{Date: "2024-13-01", Time: "14:00"}, errIs: schedule.ErrInvalidDate},
		{name: "bad time", s: booking.Schedule{Date: "2024-01-18", Time: "14:10"}, errIs: schedule.ErrInvalidTime},
		{name: "bad zone", s: booking.Schedule{Date: "2024-01-18", Time: "14:00", TimeZone: "Mars/Olympus"}, errIs: schedule.ErrInvalidTimeZone},
		{name: "provider off", s: booking.Schedule{Date: "2024-01-25", Time: "14:00"}, errIs: schedule.ErrProviderUnavailable},
		{name: "booked", s: booking.Schedule{Date: "2024-01-18", Time: "10:00"}, errIs: schedule.ErrSlotUnavailable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := schedule.Validate(tc.s, p, now, booked, time.UTC)
			if tc.errIs == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.errIs)
		})
	}
}
