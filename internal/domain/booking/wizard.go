package booking

import (
	"errors"
	"strings"

	"homeservice-booking/internal/domain/contact"

	"github.com/jinzhu/copier"
)

const (
	MinDurationHours = 1
	MaxDurationHours = 12
)

var (
	ErrInvalidDuration = errors.New("duration must be between 1 and 12 hours")
	ErrEmptyAddress    = errors.New("location address is required")
	ErrInvalidProvider = errors.New("provider must have an id and a positive hourly rate")
	ErrInvalidContact  = errors.New("contact details are invalid")
)

type Field string

const (
	FieldServices Field = "services"
	FieldOffer    Field = "offer"
	FieldLocation Field = "location"
	FieldProvider Field = "provider"
	FieldSchedule Field = "schedule"
	FieldDuration Field = "duration"
	FieldDetails  Field = "details"
	FieldContact  Field = "contact"
	FieldCursor   Field = "cursor"
	FieldReset    Field = "reset"
)

// Change describes one applied mutation. From and To are the cursor before and
// after it.
type Change struct {
	Field    Field
	From     Step
	To       Step
	Advanced bool
	Draft    Draft
}

type Listener interface {
	DraftChanged(change Change)
}

type ListenerFunc func(change Change)

func (f ListenerFunc) DraftChanged(change Change) {
	f(change)
}

// Wizard owns one draft and applies every mutation to it. It is not safe for
// concurrent use; callers serialize access per session.
type Wizard struct {
	draft     Draft
	calc      PriceCalculator
	listeners []Listener
}

func NewWizard(draft Draft, calc PriceCalculator, listeners ...Listener) *Wizard {
	w := &Wizard{
		draft:     cloneDraft(draft),
		calc:      calc,
		listeners: listeners,
	}
	if !w.draft.CurrentStep.Valid() {
		w.draft.CurrentStep = clampStep(w.draft.CurrentStep)
	}
	w.draft.reprice(calc)
	return w
}

func (w *Wizard) Snapshot() Draft {
	return cloneDraft(w.draft)
}

func (w *Wizard) SetServices(services, subServices []string) Draft {
	return w.apply(FieldServices, func(d *Draft) {
		d.SelectedServices = dedupe(services)
		d.SelectedSubServices = dedupe(subServices)
	})
}

func (w *Wizard) SetOfferID(offerID *string) Draft {
	return w.apply(FieldOffer, func(d *Draft) {
		d.OfferID = offerID
	})
}

func (w *Wizard) SetLocation(loc Location) (Draft, error) {
	loc.Address = strings.TrimSpace(loc.Address)
	loc.City = strings.TrimSpace(loc.City)
	loc.PostalCode = strings.TrimSpace(loc.PostalCode)
	if loc.Address == "" {
		return w.Snapshot(), ErrEmptyAddress
	}
	return w.apply(FieldLocation, func(d *Draft) {
		d.Location = &loc
	}), nil
}

func (w *Wizard) SelectProvider(p ProviderSnapshot) (Draft, error) {
	if p.ID == "" || !p.HourlyRate.IsPositive() {
		return w.Snapshot(), ErrInvalidProvider
	}
	return w.apply(FieldProvider, func(d *Draft) {
		d.Provider = &p
		d.reprice(w.calc)
	}), nil
}

func (w *Wizard) SetSchedule(s Schedule) Draft {
	return w.apply(FieldSchedule, func(d *Draft) {
		d.Schedule = &s
	})
}

// ClearSchedule drops the chosen date and time once they no longer fit the
// selected provider's calendar. A cursor past the schedule step moves back to it.
func (w *Wizard) ClearSchedule() Draft {
	return w.apply(FieldSchedule, func(d *Draft) {
		d.Schedule = nil
		if d.CurrentStep > StepSchedule {
			d.CurrentStep = StepSchedule
		}
	})
}

func (w *Wizard) SetDuration(hours int) (Draft, error) {
	if hours < MinDurationHours || hours > MaxDurationHours {
		return w.Snapshot(), ErrInvalidDuration
	}
	return w.apply(FieldDuration, func(d *Draft) {
		d.DurationHours = hours
		d.reprice(w.calc)
	}), nil
}

func (w *Wizard) SetDetails(details Details) Draft {
	return w.apply(FieldDetails, func(d *Draft) {
		d.Details = &details
		d.reprice(w.calc)
	})
}

// SetContact stores trimmed contact fields only when all of them validate.
// On failure the draft is left untouched and the failures are returned.
func (w *Wizard) SetContact(c Contact) (Draft, contact.FieldErrors) {
	c = Contact{
		Name:  strings.TrimSpace(c.Name),
		Email: strings.TrimSpace(c.Email),
		Phone: strings.TrimSpace(c.Phone),
	}
	if errs := contact.ValidateContact(c.Name, c.Email, c.Phone); !errs.OK() {
		return w.Snapshot(), errs
	}
	return w.apply(FieldContact, func(d *Draft) {
		d.Contact = &c
	}), nil
}

// Next moves forward one step when the current step's gate passes. A failing
// gate is not an error; advanced reports whether the cursor moved.
func (w *Wizard) Next() (draft Draft, advanced bool) {
	if !w.draft.CanAdvance() || w.draft.CurrentStep == LastStep {
		return w.Snapshot(), false
	}
	return w.move(w.draft.CurrentStep.Next()), true
}

func (w *Wizard) Previous() (draft Draft, moved bool) {
	if w.draft.CurrentStep == FirstStep {
		return w.Snapshot(), false
	}
	return w.move(w.draft.CurrentStep.Prev()), true
}

// GoTo places the cursor on step if every earlier gate passes, otherwise on
// the first step whose gate fails.
func (w *Wizard) GoTo(step Step) Draft {
	target := clampStep(step)
	if first := w.draft.FirstIncompleteStep(); first < target {
		target = first
	}
	if target == w.draft.CurrentStep {
		return w.Snapshot()
	}
	return w.move(target)
}

func (w *Wizard) Reset() Draft {
	return w.apply(FieldReset, func(d *Draft) {
		*d = NewDraft()
	})
}

func (w *Wizard) move(to Step) Draft {
	from := w.draft.CurrentStep
	w.draft.CurrentStep = to
	snapshot := w.Snapshot()
	w.notify(Change{Field: FieldCursor, From: from, To: to, Advanced: to > from, Draft: snapshot})
	return snapshot
}

func (w *Wizard) apply(field Field, mutate func(*Draft)) Draft {
	from := w.draft.CurrentStep
	mutate(&w.draft)
	snapshot := w.Snapshot()
	w.notify(Change{Field: field, From: from, To: w.draft.CurrentStep, Draft: snapshot})
	return snapshot
}

func (w *Wizard) notify(change Change) {
	for _, l := range w.listeners {
		l.DraftChanged(change)
	}
}

func cloneDraft(d Draft) Draft {
	var out Draft
	if err := copier.CopyWithOption(&out, &d, copier.Option{DeepCopy: true}); err != nil {
		// copier only fails on mismatched kinds, which cannot happen for Draft.
		panic(err)
	}
	return out
}

func dedupe(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
