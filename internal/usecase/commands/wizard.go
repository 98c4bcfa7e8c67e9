package commands

//go:generate mockgen -source=wizard.go -destination=../../../tests/mock/commands/wizard.go -package=commandsmock

import (
	"context"
	"log/slog"

	"homeservice-booking/internal/domain/booking"
	"homeservice-booking/internal/domain/contact"
	"homeservice-booking/internal/domain/geo"
	"homeservice-booking/internal/domain/notification"
	"homeservice-booking/internal/domain/order"
	"homeservice-booking/internal/domain/provider"
	"homeservice-booking/internal/domain/schedule"
	"homeservice-booking/internal/infra"
	"homeservice-booking/internal/pkg/clock"
	"homeservice-booking/internal/pkg/config"
	"homeservice-booking/internal/pkg/errs"
	"homeservice-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidLocation  = errs.New("invalid location")
	ErrInvalidSchedule  = errs.New("invalid schedule")
	ErrInvalidDuration  = errs.New("invalid duration")
	ErrProviderNotFound = errs.ErrProviderNotFound
	ErrExtraTaskUnknown = errs.ErrExtraTaskNotFound
	ErrPhoneNotVerified = errs.New("phone number has not been verified")
	ErrDraftIncomplete  = errs.New("booking draft is incomplete")
	ErrDraftStore       = errs.ErrDraftStoreFailed
	ErrDatabase         = errs.ErrDatabaseOperationFailed
)

const (
	SubmitOutcomeCreated    = "created"
	SubmitOutcomeIncomplete = "incomplete"
	SubmitOutcomeFailed     = "failed"
	SubmitOutcomeConflict   = "conflict"
)

// WizardResult is the draft after a command together with what the command
// did to it. FieldErrors is only set by SetContact.
type WizardResult struct {
	Draft       booking.Draft
	Advanced    bool
	FieldErrors map[string]string
}

type SetServicesInput struct {
	Services    []string
	SubServices []string
	OfferID     *string
}

type DetailsInput struct {
	HomeSize     *string
	ExtraTaskIDs []string
	Description  string
	Requirements string
	Notes        string
}

type SubmitResult struct {
	OrderID   uuid.UUID
	Reference string
	Draft     booking.Draft
}

type WizardCommands interface {
	Load(ctx context.Context, sessionID uuid.UUID, step *booking.Step) (*WizardResult, error)
	SetServices(ctx context.Context, sessionID uuid.UUID, in SetServicesInput) (*WizardResult, error)
	SetLocation(ctx context.Context, sessionID uuid.UUID, loc booking.Location) (*WizardResult, error)
	SelectProvider(ctx context.Context, sessionID uuid.UUID, providerID string) (*WizardResult, error)
	SetSchedule(ctx context.Context, sessionID uuid.UUID, s booking.Schedule) (*WizardResult, error)
	SetDuration(ctx context.Context, sessionID uuid.UUID, hours int) (*WizardResult, error)
	SetDetails(ctx context.Context, sessionID uuid.UUID, in DetailsInput) (*WizardResult, error)
	SetContact(ctx context.Context, sessionID uuid.UUID, c booking.Contact) (*WizardResult, error)
	Next(ctx context.Context, sessionID uuid.UUID) (*WizardResult, error)
	Previous(ctx context.Context, sessionID uuid.UUID) (*WizardResult, error)
	GoTo(ctx context.Context, sessionID uuid.UUID, step booking.Step) (*WizardResult, error)
	Reset(ctx context.Context, sessionID uuid.UUID) (*WizardResult, error)
	Submit(ctx context.Context, sessionID uuid.UUID) (*SubmitResult, error)
}

type wizardUseCaseImpl struct {
	drafts  DraftStore
	codes   CodeStore
	catalog ProviderCatalog
	uow     shared.UnitOfWork
	calc    booking.PriceCalculator
	metrics Metrics
	clock   clock.Clock
	cfg     config.BookingConfig
	locks   *sessionLocks
}

func NewWizardUseCase(
	drafts DraftStore,
	codes CodeStore,
	catalog ProviderCatalog,
	uow shared.UnitOfWork,
	calc booking.PriceCalculator,
	metrics Metrics,
	clk clock.Clock,
	cfg config.BookingConfig,
) WizardCommands {
	return &wizardUseCaseImpl{
		drafts:  drafts,
		codes:   codes,
		catalog: catalog,
		uow:     uow,
		calc:    calc,
		metrics: metrics,
		clock:   clk,
		cfg:     cfg,
		locks:   newSessionLocks(),
	}
}

// mutate runs fn against the session's wizard and persists the draft when fn
// succeeds. The draft is not saved when fn returns an error.
func (uc *wizardUseCaseImpl) mutate(
	ctx context.Context,
	sessionID uuid.UUID,
	fn func(w *booking.Wizard) (*WizardResult, error),
) (*WizardResult, error) {
	unlock := uc.locks.lock(sessionID)
	defer unlock()

	draft, _, err := uc.drafts.Load(ctx, sessionID)
	if err != nil {
		return nil, errs.Mark(err, ErrDraftStore)
	}

	result, err := fn(uc.newWizard(draft))
	if err != nil {
		return nil, err
	}

	if err := uc.drafts.Save(ctx, sessionID, result.Draft); err != nil {
		return nil, errs.Mark(err, ErrDraftStore)
	}
	return result, nil
}

func (uc *wizardUseCaseImpl) newWizard(draft booking.Draft) *booking.Wizard {
	if uc.metrics == nil {
		return booking.NewWizard(draft, uc.calc)
	}
	return booking.NewWizard(draft, uc.calc, uc.metrics)
}

// Load returns the stored draft. A requested step is honoured only as far as
// the gates allow.
func (uc *wizardUseCaseImpl) Load(ctx context.Context, sessionID uuid.UUID, step *booking.Step) (*WizardResult, error) {
	if step == nil {
		draft, _, err := uc.drafts.Load(ctx, sessionID)
		if err != nil {
			return nil, errs.Mark(err, ErrDraftStore)
		}
		return &WizardResult{Draft: uc.newWizard(draft).Snapshot()}, nil
	}
	return uc.GoTo(ctx, sessionID, *step)
}

func (uc *wizardUseCaseImpl) GoTo(ctx context.Context, sessionID uuid.UUID, step booking.Step) (*WizardResult, error) {
	return uc.mutate(ctx, sessionID, func(w *booking.Wizard) (*WizardResult, error) {
		return &WizardResult{Draft: w.GoTo(step)}, nil
	})
}

func (uc *wizardUseCaseImpl) SetServices(ctx context.Context, sessionID uuid.UUID, in SetServicesInput) (*WizardResult, error) {
	return uc.mutate(ctx, sessionID, func(w *booking.Wizard) (*WizardResult, error) {
		w.SetOfferID(in.OfferID)
		return &WizardResult{Draft: w.SetServices(in.Services, in.SubServices)}, nil
	})
}

func (uc *wizardUseCaseImpl) SetLocation(ctx context.Context, sessionID uuid.UUID, loc booking.Location) (*WizardResult, error) {
	if err := geo.CheckServiceArea(loc.Coordinates.Lat, loc.Coordinates.Lng); err != nil {
		return nil, errs.Mark(err, ErrInvalidLocation)
	}
	return uc.mutate(ctx, sessionID, func(w *booking.Wizard) (*WizardResult, error) {
		draft, err := w.SetLocation(loc)
		if err != nil {
			return nil, errs.Mark(err, ErrInvalidLocation)
		}
		return &WizardResult{Draft: draft}, nil
	})
}

func (uc *wizardUseCaseImpl) SelectProvider(ctx context.Context, sessionID uuid.UUID, providerID string) (*WizardResult, error) {
	p, err := uc.catalog.ProviderByID(ctx, providerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProviderNotFound
		}
		return nil, errs.Mark(err, ErrProviderNotFound)
	}
	return uc.mutate(ctx, sessionID, func(w *booking.Wizard) (*WizardResult, error) {
		draft, err := w.SelectProvider(p.Snapshot())
		if err != nil {
			return nil, errs.Mark(err, ErrProviderNotFound)
		}
		if draft.Schedule == nil {
			return &WizardResult{Draft: draft}, nil
		}
		// a date and time picked earlier must also fit this provider's calendar
		if err := uc.checkSlot(ctx, p, *draft.Schedule); err != nil {
			if !errs.Is(err, ErrInvalidSchedule) {
				return nil, err
			}
			draft = w.ClearSchedule()
		}
		return &WizardResult{Draft: draft}, nil
	})
}

// SetSchedule checks the slot against the selected provider's calendar, or
// against the slots taken on every calendar when no provider is chosen yet.
func (uc *wizardUseCaseImpl) SetSchedule(ctx context.Context, sessionID uuid.UUID, s booking.Schedule) (*WizardResult, error) {
	if s.TimeZone == "" {
		s.TimeZone = uc.cfg.TimeZone
	}
	return uc.mutate(ctx, sessionID, func(w *booking.Wizard) (*WizardResult, error) {
		current := w.Snapshot()
		var providerID string
		if current.Provider != nil {
			providerID = current.Provider.ID
		}
		if err := uc.validateSchedule(ctx, providerID, s); err != nil {
			return nil, err
		}
		return &WizardResult{Draft: w.SetSchedule(s)}, nil
	})
}

func (uc *wizardUseCaseImpl) validateSchedule(ctx context.Context, providerID string, s booking.Schedule) error {
	p, err := uc.lookupProvider(ctx, providerID)
	if err != nil {
		return err
	}
	return uc.checkSlot(ctx, p, s)
}

// checkSlot fails with ErrInvalidSchedule when s is not bookable with p, which
// may be nil. Lookup failures are not marked.
func (uc *wizardUseCaseImpl) checkSlot(ctx context.Context, p *provider.Provider, s booking.Schedule) error {
	var providerID string
	if p != nil {
		providerID = p.ID()
	}
	booked, err := uc.catalog.BookedSlots(ctx, providerID, s.Date)
	if err != nil {
		return errs.Mark(err, ErrDatabase)
	}
	if err := schedule.Validate(s, p, uc.clock.Now(), booked, uc.cfg.Location()); err != nil {
		return errs.Mark(err, ErrInvalidSchedule)
	}
	return nil
}

func (uc *wizardUseCaseImpl) lookupProvider(ctx context.Context, providerID string) (*provider.Provider, error) {
	if providerID == "" {
		return nil, nil
	}
	p, err := uc.catalog.ProviderByID(ctx, providerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProviderNotFound
		}
		return nil, errs.Mark(err, ErrProviderNotFound)
	}
	return p, nil
}

func (uc *wizardUseCaseImpl) SetDuration(ctx context.Context, sessionID uuid.UUID, hours int) (*WizardResult, error) {
	return uc.mutate(ctx, sessionID, func(w *booking.Wizard) (*WizardResult, error) {
		draft, err := w.SetDuration(hours)
		if err != nil {
			return nil, errs.Mark(err, ErrInvalidDuration)
		}
		return &WizardResult{Draft: draft}, nil
	})
}

func (uc *wizardUseCaseImpl) SetDetails(ctx context.Context, sessionID uuid.UUID, in DetailsInput) (*WizardResult, error) {
	var extras []booking.ExtraTask
	if len(in.ExtraTaskIDs) > 0 {
		var err error
		extras, err = uc.catalog.ExtraTasks(ctx, in.ExtraTaskIDs)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, ErrExtraTaskUnknown
			}
			return nil, errs.Mark(err, ErrExtraTaskUnknown)
		}
	}
	details := booking.Details{
		HomeSize:     in.HomeSize,
		ExtraTasks:   extras,
		Description:  in.Description,
		Requirements: in.Requirements,
		Notes:        in.Notes,
	}
	return uc.mutate(ctx, sessionID, func(w *booking.Wizard) (*WizardResult, error) {
		return &WizardResult{Draft: w.SetDetails(details)}, nil
	})
}

// SetContact reports invalid fields in the result instead of failing; the
// stored draft is left as it was.
func (uc *wizardUseCaseImpl) SetContact(ctx context.Context, sessionID uuid.UUID, c booking.Contact) (*WizardResult, error) {
	return uc.mutate(ctx, sessionID, func(w *booking.Wizard) (*WizardResult, error) {
		draft, fieldErrs := w.SetContact(c)
		if !fieldErrs.OK() {
			return &WizardResult{Draft: draft, FieldErrors: fieldErrs.Messages()}, nil
		}
		if uc.cfg.RequireVerifiedPhone {
			verified, err := uc.codes.IsVerified(ctx, sessionID, contact.FormatPhone(draft.Contact.Phone))
			if err != nil {
				return nil, errs.Mark(err, ErrDraftStore)
			}
			if !verified {
				return nil, ErrPhoneNotVerified
			}
		}
		return &WizardResult{Draft: draft}, nil
	})
}

func (uc *wizardUseCaseImpl) Next(ctx context.Context, sessionID uuid.UUID) (*WizardResult, error) {
	return uc.mutate(ctx, sessionID, func(w *booking.Wizard) (*WizardResult, error) {
		draft, advanced := w.Next()
		return &WizardResult{Draft: draft, Advanced: advanced}, nil
	})
}

func (uc *wizardUseCaseImpl) Previous(ctx context.Context, sessionID uuid.UUID) (*WizardResult, error) {
	return uc.mutate(ctx, sessionID, func(w *booking.Wizard) (*WizardResult, error) {
		draft, _ := w.Previous()
		return &WizardResult{Draft: draft}, nil
	})
}

func (uc *wizardUseCaseImpl) Reset(ctx context.Context, sessionID uuid.UUID) (*WizardResult, error) {
	unlock := uc.locks.lock(sessionID)
	defer unlock()

	draft, _, err := uc.drafts.Load(ctx, sessionID)
	if err != nil {
		return nil, errs.Mark(err, ErrDraftStore)
	}
	reset := uc.newWizard(draft).Reset()
	if err := uc.drafts.Delete(ctx, sessionID); err != nil {
		return nil, errs.Mark(err, ErrDraftStore)
	}
	return &WizardResult{Draft: reset}, nil
}

// Submit turns a complete draft into an order plus its feed entry, then
// clears the draft. A canceled context during the simulated intake delay
// aborts before anything is written. The slot is checked again after the
// delay since other sessions may have taken it; the orders table rejects a
// race that slips past the check.
func (uc *wizardUseCaseImpl) Submit(ctx context.Context, sessionID uuid.UUID) (*SubmitResult, error) {
	unlock := uc.locks.lock(sessionID)
	defer unlock()

	draft, _, err := uc.drafts.Load(ctx, sessionID)
	if err != nil {
		return nil, errs.Mark(err, ErrDraftStore)
	}
	w := uc.newWizard(draft)
	draft = w.Snapshot()

	if !draft.ReadyToSubmit() {
		uc.observeSubmit(SubmitOutcomeIncomplete)
		return nil, ErrDraftIncomplete
	}
	if uc.cfg.RequireVerifiedPhone {
		verified, err := uc.codes.IsVerified(ctx, sessionID, contact.FormatPhone(draft.Contact.Phone))
		if err != nil {
			return nil, errs.Mark(err, ErrDraftStore)
		}
		if !verified {
			uc.observeSubmit(SubmitOutcomeIncomplete)
			return nil, ErrPhoneNotVerified
		}
	}

	if err := uc.clock.Sleep(ctx, uc.cfg.SubmitDelay); err != nil {
		return nil, err
	}

	if err := uc.validateSchedule(ctx, draft.Provider.ID, *draft.Schedule); err != nil {
		if errs.Is(err, ErrInvalidSchedule) {
			uc.observeSubmit(SubmitOutcomeConflict)
		}
		return nil, err
	}

	o, err := order.NewOrderFromDraft(draft, sessionID, uc.clock.Now())
	if err != nil {
		uc.observeSubmit(SubmitOutcomeIncomplete)
		return nil, errs.Mark(err, ErrDraftIncomplete)
	}
	n := notification.NewOrderPlaced(o)

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Orders().Create(ctx, tx.DB(), o); err != nil {
			return err
		}
		return tx.Notifications().Create(ctx, tx.DB(), n)
	})
	if err != nil {
		if errs.Is(err, schedule.ErrSlotUnavailable) {
			uc.observeSubmit(SubmitOutcomeConflict)
			return nil, errs.Mark(err, ErrInvalidSchedule)
		}
		uc.observeSubmit(SubmitOutcomeFailed)
		return nil, errs.Mark(err, ErrDatabase)
	}

	reset := w.Reset()
	if err := uc.drafts.Delete(ctx, sessionID); err != nil {
		slog.WarnContext(ctx, "failed to clear submitted draft", "session_id", sessionID, "error", err)
	}
	uc.observeSubmit(SubmitOutcomeCreated)

	return &SubmitResult{OrderID: o.ID(), Reference: o.Reference(), Draft: reset}, nil
}

func (uc *wizardUseCaseImpl) observeSubmit(outcome string) {
	if uc.metrics != nil {
		uc.metrics.ObserveSubmit(outcome)
	}
}
