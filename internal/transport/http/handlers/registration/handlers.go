package registrationhandler

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"slices"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"emppayroll/internal/domain/employee"
	"emppayroll/internal/domain/registration"
	"emppayroll/internal/platform/emplist"
	"emppayroll/internal/platform/metrics"
	"emppayroll/internal/requestctx"
	"emppayroll/internal/transport/http/middleware"
	"emppayroll/internal/transport/http/views"
)

const (
	ActionConfirm     = "confirm"
	ActionModalCancel = "modal-cancel"
	ActionSubmit      = "submit"
	ActionReset       = "reset"
	ActionCancel      = "cancel"
)

var errUnknownAction = errors.New("unknown action")

// Backend is what the registration view needs from the EmpList service: the
// form's create and update, plus a lookup to build the edit payload.
type Backend interface {
	registration.Backend
	Get(ctx context.Context, id string) (employee.Employee, error)
}

type Handler struct {
	Registry *registration.Registry
	Backend  Backend
	View     *views.Lazy
	Metrics  *metrics.Collector
}

func NewHandler(registry *registration.Registry, backend Backend, view *views.Lazy, collector *metrics.Collector) *Handler {
	return &Handler{Registry: registry, Backend: backend, View: view, Metrics: collector}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/registration", func(r chi.Router) {
		r.Get("/", h.handleMount)
		r.Get("/{formID}", h.handleShow)
		r.Post("/{formID}", h.handleAction)
	})
}

// handleMount creates a form instance for this navigation and redirects to it.
// ?edit={id} loads the employee and mounts the form in edit mode.
func (h *Handler) handleMount(w http.ResponseWriter, r *http.Request) {
	var payload registration.EditPayload
	if id := strings.TrimSpace(r.URL.Query().Get("edit")); id != "" {
		emp, err := h.Backend.Get(r.Context(), id)
		if err != nil {
			if errors.Is(err, emplist.ErrNotFound) {
				http.Redirect(w, r, "/dashboard?error="+url.QueryEscape("Employee not found"), http.StatusSeeOther)
				return
			}
			log.Error().Err(err).Str("employeeId", id).Str("requestId", middleware.GetRequestID(r.Context())).Msg("load employee for edit failed")
			http.Error(w, "unable to load employee", http.StatusBadGateway)
			return
		}
		payload = registration.EditPayload{IsEdit: true, Employee: &emp}
	}

	inst := h.Registry.Mount(h.Backend, payload)
	log.Debug().Str("formId", inst.ID).Bool("isEdit", payload.IsEdit).Msg("registration form mounted")
	http.Redirect(w, r, formPath(inst.ID), http.StatusSeeOther)
}

func (h *Handler) handleShow(w http.ResponseWriter, r *http.Request) {
	inst, ok := h.Registry.Get(chi.URLParam(r, "formID"))
	if !ok {
		http.Redirect(w, r, "/registration", http.StatusSeeOther)
		return
	}
	_, alerts := inst.Outbox.Drain()
	h.render(w, r, http.StatusOK, inst, alerts, nil)
}

func (h *Handler) handleAction(w http.ResponseWriter, r *http.Request) {
	inst, ok := h.Registry.Get(chi.URLParam(r, "formID"))
	if !ok {
		http.Redirect(w, r, "/registration", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}

	action := r.PostForm.Get("action")
	err := h.apply(r.Context(), inst, action, r.PostForm)

	navigation, alerts := inst.Outbox.Drain()
	if navigation != "" {
		h.Registry.Unmount(inst.ID)
		http.Redirect(w, r, navigation, http.StatusSeeOther)
		return
	}

	status := http.StatusOK
	var issues []employee.Issue
	var validationErr *registration.ValidationError
	var submitErr *registration.SubmissionFailedError
	switch {
	case err == nil:
	case errors.As(err, &validationErr):
		status = http.StatusUnprocessableEntity
		issues = validationErr.Issues
	case errors.As(err, &submitErr):
		status = http.StatusBadGateway
	case errors.Is(err, registration.ErrUnmounted), errors.Is(err, registration.ErrClosed):
		http.Redirect(w, r, "/registration", http.StatusSeeOther)
		return
	case errors.Is(err, registration.ErrSubmissionInFlight), errors.Is(err, registration.ErrNotConfirming):
		status = http.StatusConflict
	case errors.Is(err, registration.ErrUnknownField), errors.Is(err, registration.ErrInvalidKind),
		errors.Is(err, registration.ErrUnknownValue), errors.Is(err, errUnknownAction):
		status = http.StatusBadRequest
	default:
		log.Error().Err(err).Str("formId", inst.ID).Msg("registration action failed")
		status = http.StatusInternalServerError
	}
	h.render(w, r, status, inst, alerts, issues)
}

func (h *Handler) apply(ctx context.Context, inst *registration.Instance, action string, values url.Values) error {
	form := inst.Form
	switch action {
	case ActionCancel:
		form.Cancel()
		return nil
	case ActionReset:
		return form.Reset()
	}

	if values.Has("fields") {
		if err := applyFields(form, values); err != nil {
			return err
		}
	}

	switch action {
	case "":
		return nil
	case ActionConfirm:
		return form.RequestConfirm()
	case ActionModalCancel:
		return form.CancelConfirm()
	case ActionSubmit:
		// The submission outlives a client that gives up waiting.
		err := form.Confirm(context.WithoutCancel(ctx))
		h.recordSubmission(err)
		return err
	default:
		return errUnknownAction
	}
}

func (h *Handler) recordSubmission(err error) {
	if h.Metrics == nil {
		return
	}
	var validationErr *registration.ValidationError
	var submitErr *registration.SubmissionFailedError
	switch {
	case err == nil:
		h.Metrics.RecordSubmission(metrics.SubmissionSucceeded)
	case errors.As(err, &validationErr):
		h.Metrics.RecordSubmission(metrics.SubmissionRejected)
	case errors.As(err, &submitErr):
		h.Metrics.RecordSubmission(metrics.SubmissionFailed)
	}
}

var scalarFields = []string{
	registration.FieldName,
	registration.FieldProfileImage,
	registration.FieldGender,
	registration.FieldSalary,
	registration.FieldDay,
	registration.FieldMonth,
	registration.FieldYear,
	registration.FieldNotes,
}

// applyFields replays a posted form as field updates. Absent radios and
// placeholder selects leave the draft alone; departments are diffed against
// the draft and applied as toggles.
func applyFields(form *registration.Form, values url.Values) error {
	for _, field := range scalarFields {
		if !values.Has(field) {
			continue
		}
		if err := form.UpdateField(field, values.Get(field), registration.KindValue); err != nil {
			return err
		}
	}

	current := form.Snapshot().Draft.Departments
	posted := values[registration.FieldDepartment]
	for _, dep := range current {
		if !slices.Contains(posted, dep) {
			if err := form.UpdateField(registration.FieldDepartment, dep, registration.KindToggleOff); err != nil {
				return err
			}
		}
	}
	for _, dep := range posted {
		if !slices.Contains(current, dep) {
			if err := form.UpdateField(registration.FieldDepartment, dep, registration.KindToggleOn); err != nil {
				return err
			}
		}
	}
	return nil
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, inst *registration.Instance, alerts []string, issues []employee.Issue) {
	operator, _ := requestctx.GetOperator(r.Context())
	page := buildPage(inst.ID, inst.Form.Snapshot(), alerts, issues)
	page.Operator = operator
	if !h.View.Render(w, r, status, page) {
		// Undelivered notices wait for the next render.
		for _, alert := range alerts {
			inst.Outbox.Alert(alert)
		}
	}
}

func formPath(id string) string {
	return "/registration/" + url.PathEscape(id)
}
