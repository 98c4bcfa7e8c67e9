//go:build unit

package provider_test

import (
	"testing"
	"time"

	"homeservice-booking/internal/domain/booking"
	"homeservice-booking/internal/domain/provider"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validParams() provider.Params {
	return provider.Params{
		ID:            "1",
		Name:          "Sarah Johnson",
		Rating:        4.9,
		ReviewCount:   127,
		HourlyRate:    booking.NewMoneyFromAmount(75),
		Specialties:   []string{"Deep Cleaning", "Office Cleaning"},
		ExcludedDates: []string{"2024-01-25", "2024-01-20"},
	}
}

func TestNewProvider(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*provider.Params)
		errIs  error
	}{
		{name: "valid", mutate: func(*provider.Params) {}},
		{name: "zero rating", mutate: func(p *provider.Params) { p.Rating = 0 }},
		{name: "missing id", mutate: func(p *provider.Params) { p.ID = " " }, errIs: provider.ErrEmptyID},
		{name: "missing name", mutate: func(p *provider.Params) { p.Name = "" }, errIs: provider.ErrEmptyName},
		{name: "rating above 5", mutate: func(p *provider.Params) { p.Rating = 5.1 }, errIs: provider.ErrInvalidRating},
		{name: "negative rating", mutate: func(p *provider.Params) { p.Rating = -1 }, errIs: provider.ErrInvalidRating},
		{name: "zero rate", mutate: func(p *provider.Params) { p.HourlyRate = 0 }, errIs: provider.ErrInvalidHourlyRate},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			params := validParams()
			c.mutate(&params)

			p, err := provider.NewProvider(params)

			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, p)
			} else {
				require.ErrorIs(t, err, c.errIs)
				require.Nil(t, p)
			}
		})
	}
}

func TestProviderAvailability(t *testing.T) {
	p, err := provider.NewProvider(validParams())
	require.NoError(t, err)

	assert.False(t, p.IsAvailableOn(time.Date(2024, 1, 20, 9, 0, 0, 0, time.UTC)))
	assert.True(t, p.IsAvailableOn(time.Date(2024, 1, 21, 9, 0, 0, 0, time.UTC)))
	assert.Equal(t, []string{"2024-01-20", "2024-01-25"}, p.ExcludedDates())
}

func TestProviderSnapshot(t *testing.T) {
	p, err := provider.NewProvider(validParams())
	require.NoError(t, err)

	snap := p.Snapshot()
	assert.Equal(t, booking.ProviderSnapshot{
		ID:          "1",
		Name:        "Sarah Johnson",
		Rating:      4.9,
		HourlyRate:  booking.NewMoneyFromAmount(75),
		Specialties: []string{"Deep Cleaning", "Office Cleaning"},
	}, snap)

	snap.Specialties[0] = "changed"
	assert.Equal(t, "Deep Cleaning", p.Specialties()[0])
}

func mustProviders(t *testing.T) []*provider.Provider {
	t.Helper()
	var out []*provider.Provider
	for _, params := range []provider.Params{
		{ID: "1", Name: "A", Rating: 4.9, HourlyRate: booking.NewMoneyFromAmount(75), Specialties: []string{"Deep Cleaning"}, Experience: "8 years"},
		{ID: "2", Name: "B", Rating: 4.8, HourlyRate: booking.NewMoneyFromAmount(80), Specialties: []string{"Plumbing"}, Experience: "12 years"},
		{ID: "3", Name: "C", Rating: 4.7, HourlyRate: booking.NewMoneyFromAmount(70), Specialties: []string{"deep cleaning"}, Experience: "10 years"},
		{ID: "4", Name: "D", Rating: 4.9, HourlyRate: booking.NewMoneyFromAmount(85)},
	} {
		p, err := provider.NewProvider(params)
		require.NoError(t, err)
		out = append(out, p)
	}
	return out
}

func ids(list []*provider.Provider) []string {
	out := make([]string, 0, len(list))
	for _, p := range list {
		out = append(out, p.ID())
	}
	return out
}

func TestSort(t *testing.T) {
	list := mustProviders(t)

	assert.Equal(t, []string{"1", "4", "2", "3"}, ids(provider.Sort(list, provider.SortByRating)))
	assert.Equal(t, []string{"3", "1", "2", "4"}, ids(provider.Sort(list, provider.SortByPrice)))
	assert.Equal(t, []string{"2", "3", "1", "4"}, ids(provider.Sort(list, provider.SortByExperience)))
	assert.Equal(t, []string{"1", "2", "3", "4"}, ids(list), "input is not reordered")
}

func TestFilterBySpecialty(t *testing.T) {
	list := mustProviders(t)

	assert.Equal(t, []string{"1", "3"}, ids(provider.FilterBySpecialty(list, "Deep Cleaning")))
	assert.Len(t, provider.FilterBySpecialty(list, ""), 4)
	assert.Empty(t, provider.FilterBySpecialty(list, "Gardening"))
}

func TestParseSortKey(t *testing.T) {
	k, err := provider.ParseSortKey("")
	require.NoError(t, err)
	assert.Equal(t, provider.SortByRating, k)

	k, err = provider.ParseSortKey("Price")
	require.NoError(t, err)
	assert.Equal(t, provider.SortByPrice, k)

	k, err = provider.ParseSortKey("experience")
	require.NoError(t, err)
	assert.Equal(t, provider.SortByExperience, k)

	_, err = provider.ParseSortKey("distance")
	assert.ErrorIs(t, err, provider.ErrInvalidSortKey)
}
