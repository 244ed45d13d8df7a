package dashboardhandler

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"emppayroll/internal/domain/employee"
	"emppayroll/internal/domain/roster"
	"emppayroll/internal/platform/emplist"
	"emppayroll/internal/requestctx"
	"emppayroll/internal/transport/http/middleware"
	"emppayroll/internal/transport/http/shared"
	"emppayroll/internal/transport/http/views"
)

const pageSize = 10

type Backend interface {
	List(ctx context.Context) ([]employee.Employee, error)
	Delete(ctx context.Context, id string) error
}

type Handler struct {
	Backend Backend
	View    *views.Lazy
	Now     func() time.Time
}

func NewHandler(backend Backend, view *views.Lazy) *Handler {
	return &Handler{Backend: backend, View: view, Now: time.Now}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/dashboard", func(r chi.Router) {
		r.Get("/", h.handleDashboard)
		r.Get("/export.pdf", h.handleExportPDF)
		r.Get("/export.xlsx", h.handleExportXLSX)
		r.Post("/{employeeID}/delete", h.handleDelete)
	})
}

func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	employees, err := h.Backend.List(r.Context())
	if err != nil {
		log.Error().Err(err).Str("requestId", middleware.GetRequestID(r.Context())).Msg("list employees failed")
		http.Error(w, "unable to load employees", http.StatusBadGateway)
		return
	}
	employees = roster.Filter(employees, query)

	page := shared.ParsePage(r, pageSize, len(employees))
	start, end := page.Bounds()
	rows := make([]views.DashboardRow, 0, end-start)
	for _, emp := range employees[start:end] {
		rows = append(rows, views.DashboardRow{
			ID:          emp.ID,
			Name:        emp.Name,
			ImageSrc:    employee.ProfileImageSrc(emp.ProfileImage),
			Gender:      emp.Gender,
			Departments: emp.Departments,
			Salary:      emp.Salary,
			StartDate:   emp.StartDate,
			Notes:       emp.Notes,
			EditURL:     "/registration?edit=" + url.QueryEscape(emp.ID),
			DeleteURL:   "/dashboard/" + url.PathEscape(emp.ID) + "/delete",
		})
	}

	operator, _ := requestctx.GetOperator(r.Context())
	notice := r.URL.Query().Get("error")
	if notice == "" {
		notice = r.URL.Query().Get("notice")
	}
	h.View.Render(w, r, http.StatusOK, views.DashboardPage{
		Operator: operator,
		Query:    query,
		Notice:   notice,
		Rows:     rows,
		Page:     page,
		PrevURL:  pageURL(query, page.Number-1),
		NextURL:  pageURL(query, page.Number+1),
	})
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "employeeID")
	if err := h.Backend.Delete(r.Context(), id); err != nil {
		if errors.Is(err, emplist.ErrNotFound) {
			http.Redirect(w, r, "/dashboard?error="+url.QueryEscape("Employee not found"), http.StatusSeeOther)
			return
		}
		log.Error().Err(err).Str("employeeId", id).Str("requestId", middleware.GetRequestID(r.Context())).Msg("delete employee failed")
		http.Redirect(w, r, "/dashboard?error="+url.QueryEscape("Unable to delete employee"), http.StatusSeeOther)
		return
	}
	operator, _ := requestctx.GetOperator(r.Context())
	log.Info().Str("employeeId", id).Str("operator", operator).Msg("employee deleted")
	http.Redirect(w, r, "/dashboard?notice="+url.QueryEscape("Employee deleted"), http.StatusSeeOther)
}

func (h *Handler) handleExportPDF(w http.ResponseWriter, r *http.Request) {
	employees, ok := h.exportRows(w, r)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := roster.WritePDF(&buf, employees, h.Now()); err != nil {
		log.Error().Err(err).Msg("render roster pdf failed")
		http.Error(w, "unable to render roster", http.StatusInternalServerError)
		return
	}
	writeDownload(w, "application/pdf", "employees.pdf", buf.Bytes())
}

func (h *Handler) handleExportXLSX(w http.ResponseWriter, r *http.Request) {
	employees, ok := h.exportRows(w, r)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := roster.WriteXLSX(&buf, employees); err != nil {
		log.Error().Err(err).Msg("render roster xlsx failed")
		http.Error(w, "unable to render roster", http.StatusInternalServerError)
		return
	}
	writeDownload(w, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", "employees.xlsx", buf.Bytes())
}

func (h *Handler) exportRows(w http.ResponseWriter, r *http.Request) ([]employee.Employee, bool) {
	employees, err := h.Backend.List(r.Context())
	if err != nil {
		log.Error().Err(err).Str("requestId", middleware.GetRequestID(r.Context())).Msg("list employees for export failed")
		http.Error(w, "unable to load employees", http.StatusBadGateway)
		return nil, false
	}
	return roster.Filter(employees, r.URL.Query().Get("q")), true
}

func writeDownload(w http.ResponseWriter, contentType, filename string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.Header().Set("Cache-Control", "private, no-store")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	_, _ = w.Write(data)
}

func pageURL(query string, number int) string {
	values := url.Values{}
	if query != "" {
		values.Set("q", query)
	}
	values.Set("page", strconv.Itoa(number))
	return "/dashboard?" + values.Encode()
}
