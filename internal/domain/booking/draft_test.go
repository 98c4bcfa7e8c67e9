//go:build unit

package booking_test

import (
	"testing"

	"homeservice-booking/internal/domain/booking"
	"homeservice-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
)

type gateCase struct {
	name   string
	mutate func(*builder.DraftBuilder)
	step   booking.Step
	want   bool
}

func TestStepComplete(t *testing.T) {
	runGateCases(t, []gateCase{
		{name: "complete location", step: booking.StepLocation, want: true},
		{
			name:   "missing location",
			step:   booking.StepLocation,
			mutate: func(b *builder.DraftBuilder) { b.WithoutLocation() },
		},
		{
			name:   "blank address",
			step:   booking.StepLocation,
			mutate: func(b *builder.DraftBuilder) { b.Location.Address = "  " },
		},
		{name: "complete schedule", step: booking.StepSchedule, want: true},
		{
			name:   "missing provider",
			step:   booking.StepSchedule,
			mutate: func(b *builder.DraftBuilder) { b.WithoutProvider() },
		},
		{
			name:   "missing time",
			step:   booking.StepSchedule,
			mutate: func(b *builder.DraftBuilder) { b.Schedule.Time = "" },
		},
		{
			name:   "missing schedule",
			step:   booking.StepSchedule,
			mutate: func(b *builder.DraftBuilder) { b.Schedule = nil },
		},
		{
			name:   "unset duration",
			step:   booking.StepSchedule,
			mutate: func(b *builder.DraftBuilder) { b.DurationHours = 0 },
		},
		{name: "complete contact", step: booking.StepContact, want: true},
		{
			name:   "missing contact",
			step:   booking.StepContact,
			mutate: func(b *builder.DraftBuilder) { b.WithoutContact() },
		},
		{
			name:   "invalid phone",
			step:   booking.StepContact,
			mutate: func(b *builder.DraftBuilder) { b.Contact.Phone = "+212 4 00 00 00 01" },
		},
		{
			name:   "confirmation on empty draft",
			step:   booking.StepConfirmation,
			mutate: func(b *builder.DraftBuilder) { *b = builder.DraftBuilder{} },
			want:   true,
		},
	})
}

func runGateCases(t *testing.T, cases []gateCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := builder.NewDraftBuilder()
			if c.mutate != nil {
				b.With(c.mutate)
			}
			draft := b.WithStep(c.step).Build()

			assert.Equal(t, c.want, draft.StepComplete(c.step))
			assert.Equal(t, c.want, draft.CanAdvance())
		})
	}
}

func TestCanAdvanceOnlyChecksCurrentStep(t *testing.T) {
	draft := builder.NewDraftBuilder().WithoutContact().WithStep(booking.StepLocation).Build()
	assert.True(t, draft.CanAdvance())

	draft.CurrentStep = booking.StepContact
	assert.False(t, draft.CanAdvance())
}

func TestCompletionPercentage(t *testing.T) {
	cases := []struct {
		name  string
		draft booking.Draft
		want  int
	}{
		{name: "empty draft", draft: booking.NewDraft(), want: 0},
		{
			name: "location only",
			draft: builder.NewDraftBuilder().With(func(b *builder.DraftBuilder) {
				b.WithoutProvider().WithoutContact()
			}).Build(),
			want: 25,
		},
		{
			name:  "missing contact",
			draft: builder.NewDraftBuilder().WithoutContact().Build(),
			want:  50,
		},
		{
			name:  "contact without location",
			draft: builder.NewDraftBuilder().WithoutLocation().WithoutProvider().Build(),
			want:  25,
		},
		{name: "ready", draft: builder.NewDraftBuilder().Build(), want: 100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.draft.CompletionPercentage())
		})
	}
}

func TestFirstIncompleteStep(t *testing.T) {
	assert.Equal(t, booking.StepLocation, booking.NewDraft().FirstIncompleteStep())
	assert.Equal(t, booking.StepSchedule, builder.NewDraftBuilder().WithoutProvider().Build().FirstIncompleteStep())
	assert.Equal(t, booking.StepContact, builder.NewDraftBuilder().WithoutContact().Build().FirstIncompleteStep())
	assert.Equal(t, booking.LastStep, builder.NewDraftBuilder().Build().FirstIncompleteStep())
	assert.True(t, builder.NewDraftBuilder().Build().ReadyToSubmit())
}

func TestStepStatuses(t *testing.T) {
	statuses := builder.NewDraftBuilder().WithoutContact().Build().StepStatuses()
	assert.Equal(t, []booking.StepStatus{
		{Step: booking.StepLocation, Complete: true},
		{Step: booking.StepSchedule, Complete: true},
		{Step: booking.StepContact, Complete: false},
		{Step: booking.StepConfirmation, Complete: false},
	}, statuses)
}

func TestParseStep(t *testing.T) {
	cases := []struct {
		in      string
		want    booking.Step
		wantErr bool
	}{
		{in: "0", want: booking.StepLocation},
		{in: "3", want: booking.StepConfirmation},
		{in: "contact", want: booking.StepContact},
		{in: " Schedule ", want: booking.StepSchedule},
		{in: "4", wantErr: true},
		{in: "-1", wantErr: true},
		{in: "payment", wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := booking.ParseStep(tc.in)
			if tc.wantErr {
				assert.ErrorIs(t, err, booking.ErrInvalidStep)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestStepNavigationClamps(t *testing.T) {
	assert.Equal(t, booking.StepLocation, booking.StepLocation.Prev())
	assert.Equal(t, booking.StepConfirmation, booking.StepConfirmation.Next())
	assert.Equal(t, booking.StepSchedule, booking.StepLocation.Next())
	assert.Equal(t, "confirmation", booking.LastStep.Name())
}
