package booking

import (
	"errors"
	"strconv"
	"strings"
)

var ErrInvalidStep = errors.New("invalid wizard step")

type Step int

const (
	StepLocation Step = iota
	StepSchedule
	StepContact
	StepConfirmation
)

const (
	TotalSteps = 4
	FirstStep  = StepLocation
	LastStep   = StepConfirmation
)

var stepNames = [TotalSteps]string{"location", "schedule", "contact", "confirmation"}

// Steps lists the wizard steps in order.
func Steps() []Step {
	return []Step{StepLocation, StepSchedule, StepContact, StepConfirmation}
}

// ParseStep accepts either the step index or its name.
func ParseStep(s string) (Step, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if n, err := strconv.Atoi(s); err == nil {
		step := Step(n)
		if !step.Valid() {
			return FirstStep, ErrInvalidStep
		}
		return step, nil
	}
	for i, name := range stepNames {
		if name == s {
			return Step(i), nil
		}
	}
	return FirstStep, ErrInvalidStep
}

func (s Step) Valid() bool {
	return s >= FirstStep && s <= LastStep
}

func (s Step) Name() string {
	if !s.Valid() {
		return "unknown"
	}
	return stepNames[s]
}

func (s Step) String() string {
	return s.Name()
}

func (s Step) Next() Step {
	return clampStep(s + 1)
}

func (s Step) Prev() Step {
	return clampStep(s - 1)
}

func clampStep(s Step) Step {
	if s < FirstStep {
		return FirstStep
	}
	if s > LastStep {
		return LastStep
	}
	return s
}
