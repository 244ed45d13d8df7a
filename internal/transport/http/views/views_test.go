package views

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func renderPage(t *testing.T, lazy *Lazy, data any) string {
	t.Helper()
	rec := httptest.NewRecorder()
	lazy.Render(rec, httptest.NewRequest(http.MethodPost, "/", nil), http.StatusOK, data)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	return rec.Body.String()
}

func TestRegistrationTemplate(t *testing.T) {
	v := New(time.Second, zerolog.Nop())
	page := RegistrationPage{
		Operator:     "admin",
		FormID:       "f1",
		Action:       "/registration/f1",
		Heading:      "Employee Payroll Form",
		SubmitLabel:  "Submit",
		ConfirmLabel: "Add",
		Prompt:       "Are you sure you want to Add the employee?",
		ModalOpen:    true,
		Alert:        "Error adding employee. Please try again.",
		Issues:       map[string]string{"name": "only letters are allowed"},
		Name:         "John Doe",
		Genders:      []Choice{{Value: "male", Label: "Male", Selected: true}, {Value: "female", Label: "Female"}},
		Departments:  []Choice{{Value: "HR", Label: "HR", Selected: true}, {Value: "sales", Label: "Sales"}},
	}
	body := renderPage(t, v.Registration, page)

	for _, want := range []string{
		`id="name" name="name" value="John Doe"`,
		`required id="name"`,
		`title="Only letters are allowed"`,
		`data-testid="male" value="male" checked`,
		`value="HR" checked`,
		`data-testid="modal-cancel"`,
		"Are you sure you want to Add the employee?",
		"Error adding employee. Please try again.",
		"only letters are allowed",
		`data-testid="day"`,
		`aria-required="true" data-testid="department-group"`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("expected %q in registration page", want)
		}
	}

	page.ModalOpen = false
	body = renderPage(t, v.Registration, page)
	if strings.Contains(body, "Are you sure you want to") {
		t.Fatal("expected modal hidden")
	}
}

func TestDashboardTemplate(t *testing.T) {
	v := New(time.Second, zerolog.Nop())
	body := renderPage(t, v.Dashboard, DashboardPage{
		Operator: "admin",
		Rows: []DashboardRow{{
			ID:          "e1",
			Name:        "Jane Doe",
			Gender:      "female",
			Departments: []string{"HR", "sales"},
			Salary:      "₹20,000",
			StartDate:   "15-03-2023",
			EditURL:     "/registration?edit=e1",
			DeleteURL:   "/dashboard/e1/delete",
		}},
	})
	for _, want := range []string{"Jane Doe", "Female", "Sales", "15-03-2023", `href="/registration?edit=e1"`, `action="/dashboard/e1/delete"`, "Add User"} {
		if !strings.Contains(body, want) {
			t.Errorf("expected %q in dashboard page", want)
		}
	}
}

func TestLoginTemplate(t *testing.T) {
	v := New(time.Second, zerolog.Nop())
	body := renderPage(t, v.Login, LoginPage{Username: "admin", Error: "Invalid credentials"})
	if !strings.Contains(body, "Invalid credentials") || !strings.Contains(body, `value="admin"`) {
		t.Fatalf("unexpected login page: %s", body)
	}
	if strings.Contains(body, "Logout") {
		t.Fatal("expected no logout control on login page")
	}
}

func TestAssetsServeProfileImages(t *testing.T) {
	handler := Assets()
	for _, path := range []string{"/assets/person1.svg", "/assets/person4.svg", "/assets/app.css"} {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("expected %s to be served, got %d", path, rec.Code)
		}
	}
}
