package emplisthandler

import (
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"emppayroll/internal/domain/audit"
	"emppayroll/internal/domain/emplist"
	"emppayroll/internal/domain/employee"
	"emppayroll/internal/transport/http/api"
	"emppayroll/internal/transport/http/middleware"
	"emppayroll/internal/transport/http/shared"
)

type Handler struct {
	Store emplist.Store
	// Audit may be nil.
	Audit audit.Recorder
}

func NewHandler(store emplist.Store, recorder audit.Recorder) *Handler {
	return &Handler{Store: store, Audit: recorder}
}

// RegisterRoutes mounts the json-server compatible collection.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/EmpList", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Route("/{employeeID}", func(r chi.Router) {
			r.Get("/", h.handleGet)
			r.Put("/", h.handleUpdate)
			r.Delete("/", h.handleDelete)
		})
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	employees, err := h.Store.List(r.Context())
	if err != nil {
		h.failInternal(w, r, err, "list employees failed")
		return
	}
	api.WriteJSON(w, http.StatusOK, employees)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	emp, err := h.Store.Get(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		h.failLookup(w, r, err, "get employee failed")
		return
	}
	api.WriteJSON(w, http.StatusOK, emp)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	emp, ok := decodeEmployee(w, r)
	if !ok {
		return
	}
	if shared.RejectIssues(w, middleware.GetRequestID(r.Context()), employee.Validate(emp)) {
		return
	}
	created, err := h.Store.Create(r.Context(), emp.WithoutID())
	if err != nil {
		h.failInternal(w, r, err, "create employee failed")
		return
	}
	log.Info().Str("employeeId", created.ID).Str("requestId", middleware.GetRequestID(r.Context())).Msg("employee created")
	h.record(r, audit.ActionCreate, created.ID, nil, created)
	api.WriteJSON(w, http.StatusCreated, created)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "employeeID")
	emp, ok := decodeEmployee(w, r)
	if !ok {
		return
	}
	if emp.ID != "" && emp.ID != id {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "id does not match path", middleware.GetRequestID(r.Context()))
		return
	}
	if shared.RejectIssues(w, middleware.GetRequestID(r.Context()), employee.Validate(emp)) {
		return
	}
	before := h.snapshot(r, id)
	updated, err := h.Store.Update(r.Context(), id, emp.WithoutID())
	if err != nil {
		h.failLookup(w, r, err, "update employee failed")
		return
	}
	h.record(r, audit.ActionUpdate, id, before, updated)
	api.WriteJSON(w, http.StatusOK, updated)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "employeeID")
	before := h.snapshot(r, id)
	if err := h.Store.Delete(r.Context(), id); err != nil {
		h.failLookup(w, r, err, "delete employee failed")
		return
	}
	h.record(r, audit.ActionDelete, id, before, nil)
	api.WriteJSON(w, http.StatusOK, map[string]any{})
}

func decodeEmployee(w http.ResponseWriter, r *http.Request) (employee.Employee, bool) {
	var emp employee.Employee
	if err := json.NewDecoder(r.Body).Decode(&emp); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr):
			api.Fail(w, http.StatusRequestEntityTooLarge, "payload_too_large", "request body too large", middleware.GetRequestID(r.Context()))
		case errors.Is(err, io.EOF):
			api.Fail(w, http.StatusBadRequest, "invalid_payload", "request body is empty", middleware.GetRequestID(r.Context()))
		default:
			api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid json payload", middleware.GetRequestID(r.Context()))
		}
		return employee.Employee{}, false
	}
	emp.ID = strings.TrimSpace(emp.ID)
	emp.Name = strings.TrimSpace(emp.Name)
	return emp, true
}

func (h *Handler) failLookup(w http.ResponseWriter, r *http.Request, err error, msg string) {
	if errors.Is(err, emplist.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", middleware.GetRequestID(r.Context()))
		return
	}
	h.failInternal(w, r, err, msg)
}

func (h *Handler) failInternal(w http.ResponseWriter, r *http.Request, err error, msg string) {
	log.Error().Err(err).Str("requestId", middleware.GetRequestID(r.Context())).Msg(msg)
	api.Fail(w, http.StatusInternalServerError, "internal_error", "internal server error", middleware.GetRequestID(r.Context()))
}

// snapshot loads the record a mutation is about to change. Lookup errors are
// left for the mutation itself to report.
func (h *Handler) snapshot(r *http.Request, id string) any {
	if h.Audit == nil {
		return nil
	}
	emp, err := h.Store.Get(r.Context(), id)
	if err != nil {
		return nil
	}
	return emp
}

// record writes an audit event. A failure is logged and never fails the request.
func (h *Handler) record(r *http.Request, action, id string, before, after any) {
	if h.Audit == nil {
		return
	}
	requestID := middleware.GetRequestID(r.Context())
	evt, err := audit.NewEvent(action, id, requestID, remoteIP(r), before, after)
	if err == nil {
		err = h.Audit.Record(r.Context(), evt)
	}
	if err != nil {
		log.Warn().Err(err).Str("action", action).Str("employeeId", id).Str("requestId", requestID).Msg("audit record failed")
	}
}

func remoteIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
