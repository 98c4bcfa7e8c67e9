package catalog

import (
	"homeservice-booking/internal/domain/booking"
	"homeservice-booking/internal/domain/provider"
)

func strPtr(s string) *string { return &s }

var defaultProviders = []provider.Params{
	{
		ID:            "1",
		Name:          "John Smith",
		Rating:        4.9,
		ReviewCount:   127,
		HourlyRate:    booking.NewMoneyFromAmount(75),
		Avatar:        strPtr("/avatars/john.jpg"),
		Specialties:   []string{"Plumbing", "Electrical", "General Repair"},
		Experience:    "8 years",
		ResponseTime:  "< 1 hour",
		CompletedJobs: 340,
		Verified:      true,
		ExcludedDates: []string{"2024-01-15", "2024-01-20", "2024-01-25"},
	},
	{
		ID:            "2",
		Name:          "Sarah Johnson",
		Rating:        4.8,
		ReviewCount:   89,
		HourlyRate:    booking.NewMoneyFromAmount(80),
		Avatar:        strPtr("/avatars/sarah.jpg"),
		Specialties:   []string{"HVAC", "Electrical", "Smart Home"},
		Experience:    "6 years",
		ResponseTime:  "< 2 hours",
		CompletedJobs: 215,
		Verified:      true,
		ExcludedDates: []string{"2024-01-18", "2024-01-22", "2024-01-28"},
	},
	{
		ID:            "3",
		Name:          "Mike Rodriguez",
		Rating:        4.7,
		ReviewCount:   156,
		HourlyRate:    booking.NewMoneyFromAmount(70),
		Avatar:        strPtr("/avatars/mike.jpg"),
		Specialties:   []string{"Carpentry", "Painting", "General Repair"},
		Experience:    "10 years",
		ResponseTime:  "< 3 hours",
		CompletedJobs: 428,
		Verified:      true,
		ExcludedDates: []string{"2024-01-16", "2024-01-21", "2024-01-26"},
	},
	{
		ID:            "4",
		Name:          "Lisa Chen",
		Rating:        4.9,
		ReviewCount:   203,
		HourlyRate:    booking.NewMoneyFromAmount(85),
		Avatar:        strPtr("/avatars/lisa.jpg"),
		Specialties:   []string{"Appliance Repair", "Electrical", "Plumbing"},
		Experience:    "12 years",
		ResponseTime:  "< 30 min",
		CompletedJobs: 567,
		Verified:      true,
		ExcludedDates: []string{"2024-01-17", "2024-01-23", "2024-01-29"},
	},
}

var defaultExtraTasks = []booking.ExtraTask{
	{ID: "inside-fridge", Name: "Inside Fridge", Price: booking.NewMoneyFromAmount(25)},
	{ID: "inside-oven", Name: "Inside Oven", Price: booking.NewMoneyFromAmount(30)},
	{ID: "inside-cabinets", Name: "Inside Cabinets", Price: booking.NewMoneyFromAmount(35)},
	{ID: "inside-windows", Name: "Inside Windows", Price: booking.NewMoneyFromAmount(40)},
	{ID: "laundry", Name: "Laundry", Price: booking.NewMoneyFromAmount(20)},
	{ID: "carpet-clean", Name: "Carpet Clean", Price: booking.NewMoneyFromAmount(45)},
}
