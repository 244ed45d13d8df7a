package registration

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"emppayroll/internal/domain/employee"
)

// Form owns one draft and drives it through
// Editing -> ConfirmPending -> Submitting -> {Succeeded, Failed}.
type Form struct {
	backend  Backend
	nav      Navigator
	notifier Notifier
	logger   zerolog.Logger

	mu        sync.Mutex
	draft     Draft
	isEdit    bool
	state     State
	unmounted bool
}

type Option func(*Form)

func WithLogger(logger zerolog.Logger) Option {
	return func(f *Form) {
		f.logger = logger
	}
}

// Snapshot is a consistent copy of the form for rendering.
type Snapshot struct {
	Draft     Draft
	IsEdit    bool
	State     State
	ModalOpen bool
	Prompt    string
}

// New mounts a form. The payload is read once: an edit marker with an employee
// pre-fills the draft, anything else starts blank in create mode.
func New(backend Backend, nav Navigator, notifier Notifier, payload EditPayload, opts ...Option) *Form {
	f := &Form{
		backend:  backend,
		nav:      nav,
		notifier: notifier,
		logger:   zerolog.Nop(),
		draft:    BlankDraft(),
		state:    StateEditing,
	}
	for _, opt := range opts {
		opt(f)
	}
	if payload.IsEdit && payload.Employee != nil {
		f.draft = draftFromEmployee(*payload.Employee)
		f.isEdit = true
	}
	return f
}

func (f *Form) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return Snapshot{
		Draft:     f.draft.clone(),
		IsEdit:    f.isEdit,
		State:     f.state,
		ModalOpen: f.state == StateConfirmPending,
		Prompt:    confirmPrompt(f.isEdit),
	}
}

func (f *Form) UpdateField(name, value string, kind FieldKind) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.checkLive(); err != nil {
		return err
	}
	next, err := f.draft.with(name, value, kind)
	if err != nil {
		return err
	}
	f.draft = next
	return nil
}

// RequestConfirm opens the confirmation modal. It does not validate: an
// incomplete draft can reach the modal and is rejected at Confirm.
func (f *Form) RequestConfirm() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.checkLive(); err != nil {
		return err
	}
	if f.state == StateConfirmPending {
		return nil
	}
	f.state = StateConfirmPending
	return nil
}

func (f *Form) CancelConfirm() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.checkLive(); err != nil {
		return err
	}
	if f.state != StateConfirmPending {
		return ErrNotConfirming
	}
	f.state = StateEditing
	return nil
}

func (f *Form) ConfirmPrompt() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return confirmPrompt(f.isEdit)
}

func confirmPrompt(isEdit bool) string {
	if isEdit {
		return "Are you sure you want to Edit the employee?"
	}
	return "Are you sure you want to Add the employee?"
}

// Confirm validates the draft and issues exactly one create or update. The
// lock is released for the duration of the backend call; the Submitting state
// keeps a second confirmation out.
func (f *Form) Confirm(ctx context.Context) error {
	f.mu.Lock()
	if err := f.checkLive(); err != nil {
		f.mu.Unlock()
		return err
	}
	if f.state != StateConfirmPending {
		f.mu.Unlock()
		return ErrNotConfirming
	}
	if issues := employee.ValidateFields(f.draft.fields()); len(issues) > 0 {
		f.state = StateEditing
		f.mu.Unlock()
		return &ValidationError{Issues: issues}
	}
	f.state = StateSubmitting
	draft := f.draft.clone()
	isEdit := f.isEdit
	f.mu.Unlock()

	var err error
	if isEdit {
		err = f.backend.Update(ctx, draft.ID, draft.Employee())
	} else {
		_, err = f.backend.Create(ctx, draft.Employee())
	}

	f.mu.Lock()
	if f.unmounted {
		f.mu.Unlock()
		f.logger.Debug().Err(err).Msg("dropping submission result for unmounted form")
		return ErrUnmounted
	}
	if err != nil {
		f.state = StateFailed
		f.mu.Unlock()
		f.logger.Error().Err(err).Bool("isEdit", isEdit).Str("employeeId", draft.ID).Msg("submission error")
		f.notifier.Alert(FailureNotice)
		return &SubmissionFailedError{IsEdit: isEdit, Err: err}
	}
	f.draft = BlankDraft()
	f.isEdit = false
	f.state = StateSucceeded
	f.mu.Unlock()

	f.nav.Navigate(DashboardPath)
	return nil
}

// Reset blanks the draft and leaves edit mode without touching the backend.
func (f *Form) Reset() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.checkLive(); err != nil {
		return err
	}
	f.draft = BlankDraft()
	f.isEdit = false
	f.state = StateEditing
	return nil
}

// Cancel leaves for the dashboard, discarding the draft whatever its state.
func (f *Form) Cancel() {
	f.nav.Navigate(DashboardPath)
}

// Unmount detaches the form; a backend result arriving afterwards is ignored.
func (f *Form) Unmount() {
	f.mu.Lock()
	f.unmounted = true
	f.mu.Unlock()
}

func (f *Form) checkLive() error {
	switch {
	case f.unmounted:
		return ErrUnmounted
	case f.state == StateSubmitting:
		return ErrSubmissionInFlight
	case f.state == StateSucceeded:
		return ErrClosed
	}
	return nil
}
