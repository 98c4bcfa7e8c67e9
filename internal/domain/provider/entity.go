package provider

import (
	"errors"
	"sort"
	"strings"
	"time"

	"homeservice-booking/internal/domain/booking"
)

const DateLayout = "2006-01-02"

var (
	ErrEmptyID           = errors.New("provider id is required")
	ErrEmptyName         = errors.New("provider name is required")
	ErrInvalidRating     = errors.New("rating must be between 0 and 5")
	ErrInvalidHourlyRate = errors.New("hourly rate must be positive")
	ErrInvalidSortKey    = errors.New("sort must be rating, price or experience")
)

// Provider is read-only reference data; the booking flow only snapshots it.
type Provider struct {
	id            string
	name          string
	rating        float64
	reviewCount   int
	hourlyRate    booking.Money
	specialties   []string
	experience    string
	responseTime  string
	completedJobs int
	verified      bool
	avatar        *string
	excludedDates map[string]struct{}
}

type Params struct {
	ID            string
	Name          string
	Rating        float64
	ReviewCount   int
	HourlyRate    booking.Money
	Specialties   []string
	Experience    string
	ResponseTime  string
	CompletedJobs int
	Verified      bool
	Avatar        *string
	ExcludedDates []string
}

func NewProvider(p Params) (*Provider, error) {
	if strings.TrimSpace(p.ID) == "" {
		return nil, ErrEmptyID
	}
	if strings.TrimSpace(p.Name) == "" {
		return nil, ErrEmptyName
	}
	if p.Rating < 0 || p.Rating > 5 {
		return nil, ErrInvalidRating
	}
	if !p.HourlyRate.IsPositive() {
		return nil, ErrInvalidHourlyRate
	}
	excluded := make(map[string]struct{}, len(p.ExcludedDates))
	for _, d := range p.ExcludedDates {
		excluded[d] = struct{}{}
	}
	return &Provider{
		id:            p.ID,
		name:          p.Name,
		rating:        p.Rating,
		reviewCount:   p.ReviewCount,
		hourlyRate:    p.HourlyRate,
		specialties:   append([]string(nil), p.Specialties...),
		experience:    p.Experience,
		responseTime:  p.ResponseTime,
		completedJobs: p.CompletedJobs,
		verified:      p.Verified,
		avatar:        p.Avatar,
		excludedDates: excluded,
	}, nil
}

func (p *Provider) ID() string                { return p.id }
func (p *Provider) Name() string              { return p.name }
func (p *Provider) Rating() float64           { return p.rating }
func (p *Provider) ReviewCount() int          { return p.reviewCount }
func (p *Provider) HourlyRate() booking.Money { return p.hourlyRate }
func (p *Provider) Specialties() []string     { return append([]string(nil), p.specialties...) }
func (p *Provider) Experience() string        { return p.experience }
func (p *Provider) ResponseTime() string      { return p.responseTime }
func (p *Provider) CompletedJobs() int        { return p.completedJobs }
func (p *Provider) Verified() bool            { return p.verified }
func (p *Provider) Avatar() *string           { return p.avatar }

func (p *Provider) ExcludedDates() []string {
	out := make([]string, 0, len(p.excludedDates))
	for d := range p.excludedDates {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}

func (p *Provider) IsAvailableOn(date time.Time) bool {
	_, excluded := p.excludedDates[date.Format(DateLayout)]
	return !excluded
}

func (p *Provider) HasSpecialty(specialty string) bool {
	for _, s := range p.specialties {
		if strings.EqualFold(s, specialty) {
			return true
		}
	}
	return false
}

func (p *Provider) Snapshot() booking.ProviderSnapshot {
	return booking.ProviderSnapshot{
		ID:          p.id,
		Name:        p.name,
		Rating:      p.rating,
		HourlyRate:  p.hourlyRate,
		Specialties: p.Specialties(),
		Avatar:      p.avatar,
	}
}

type SortKey string

const (
	SortByRating     SortKey = "rating"
	SortByPrice      SortKey = "price"
	SortByExperience SortKey = "experience"
)

func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(strings.ToLower(strings.TrimSpace(s))) {
	case "", SortByRating:
		return SortByRating, nil
	case SortByPrice, SortByExperience:
		return SortKey(strings.ToLower(strings.TrimSpace(s))), nil
	default:
		return "", ErrInvalidSortKey
	}
}

// Sort orders a copy of list: by rating highest first, by price cheapest
// first, or by years of experience most first. Ties keep catalog order.
func Sort(list []*Provider, by SortKey) []*Provider {
	out := append([]*Provider(nil), list...)
	sort.SliceStable(out, func(i, j int) bool {
		switch by {
		case SortByPrice:
			return out[i].hourlyRate < out[j].hourlyRate
		case SortByExperience:
			return out[i].ExperienceYears() > out[j].ExperienceYears()
		default:
			return out[i].rating > out[j].rating
		}
	})
	return out
}

// ExperienceYears reads the leading number of the experience label ("8 years").
func (p *Provider) ExperienceYears() int {
	years := 0
	for _, r := range strings.TrimSpace(p.experience) {
		if r < '0' || r > '9' {
			break
		}
		years = years*10 + int(r-'0')
	}
	return years
}

func FilterBySpecialty(list []*Provider, specialty string) []*Provider {
	if strings.TrimSpace(specialty) == "" {
		return list
	}
	out := make([]*Provider, 0, len(list))
	for _, p := range list {
		if p.HasSpecialty(specialty) {
			out = append(out, p)
		}
	}
	return out
}
