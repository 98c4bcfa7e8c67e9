package booking

import (
	"math"
	"strings"

	"homeservice-booking/internal/domain/contact"
)

// Draft is the in-progress booking of one session together with its wizard
// cursor. Optional parts are nil until the matching step sets them.
type Draft struct {
	OfferID             *string           `json:"offerId,omitempty"`
	SelectedServices    []string          `json:"selectedServices"`
	SelectedSubServices []string          `json:"selectedSubServices"`
	Location            *Location         `json:"location,omitempty"`
	Details             *Details          `json:"details,omitempty"`
	Provider            *ProviderSnapshot `json:"provider,omitempty"`
	Schedule            *Schedule         `json:"schedule,omitempty"`
	DurationHours       int               `json:"durationHours,omitempty"`
	Contact             *Contact          `json:"contact,omitempty"`
	Pricing             *Pricing          `json:"pricing,omitempty"`
	CurrentStep         Step              `json:"currentStep"`
}

func NewDraft() Draft {
	return Draft{CurrentStep: FirstStep}
}

// StepComplete reports whether the data collected by step is sufficient to
// leave it.
func (d Draft) StepComplete(step Step) bool {
	switch step {
	case StepLocation:
		return d.Location != nil && strings.TrimSpace(d.Location.Address) != ""
	case StepSchedule:
		return d.Provider != nil &&
			d.Schedule != nil && d.Schedule.Date != "" && d.Schedule.Time != "" &&
			d.DurationHours >= MinDurationHours
	case StepContact:
		return d.Contact != nil &&
			contact.ValidateContact(d.Contact.Name, d.Contact.Email, d.Contact.Phone).OK()
	case StepConfirmation:
		return true
	default:
		return false
	}
}

// CanAdvance evaluates the gate of the current step only.
func (d Draft) CanAdvance() bool {
	return d.StepComplete(d.CurrentStep)
}

// FirstIncompleteStep returns the earliest step whose gate fails, or LastStep
// when every data step is complete.
func (d Draft) FirstIncompleteStep() Step {
	for _, step := range Steps() {
		if !d.StepComplete(step) {
			return step
		}
	}
	return LastStep
}

// ReadyToSubmit is true when every data step is complete.
func (d Draft) ReadyToSubmit() bool {
	return d.FirstIncompleteStep() == LastStep
}

// CompletionPercentage counts satisfied steps. Confirmation only counts once
// the steps before it are satisfied.
func (d Draft) CompletionPercentage() int {
	satisfied := 0
	for _, step := range Steps() {
		if step == StepConfirmation {
			if d.ReadyToSubmit() {
				satisfied++
			}
			continue
		}
		if d.StepComplete(step) {
			satisfied++
		}
	}
	return int(math.Round(float64(satisfied) / TotalSteps * 100))
}

// StepStatus is the gate result for one step.
type StepStatus struct {
	Step     Step
	Complete bool
}

func (d Draft) StepStatuses() []StepStatus {
	statuses := make([]StepStatus, 0, TotalSteps)
	for _, step := range Steps() {
		complete := d.StepComplete(step)
		if step == StepConfirmation {
			complete = d.ReadyToSubmit()
		}
		statuses = append(statuses, StepStatus{Step: step, Complete: complete})
	}
	return statuses
}

func (d *Draft) reprice(calc PriceCalculator) {
	if d.Provider == nil || d.DurationHours < MinDurationHours {
		d.Pricing = nil
		return
	}
	var extras []ExtraTask
	if d.Details != nil {
		extras = d.Details.ExtraTasks
	}
	pricing := calc.Calculate(d.Provider.HourlyRate, d.DurationHours, extras)
	d.Pricing = &pricing
}
