package emplisthandler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"emppayroll/internal/domain/audit"
	"emppayroll/internal/domain/emplist"
	"emppayroll/internal/domain/employee"
)

func newRouter() (http.Handler, *emplist.MemoryStore) {
	store := emplist.NewMemoryStore()
	r := chi.NewRouter()
	NewHandler(store, nil).RegisterRoutes(r)
	return r, store
}

const validBody = `{"name":"John Doe","profileImage":"/Assets/person1.jpeg","gender":"male","departments":["HR"],"salary":"₹10,000","startDate":"01-01-2025","notes":"New joiner"}`

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestCreateAssignsIDAndReturns201(t *testing.T) {
	h, store := newRouter()

	rec := do(t, h, http.MethodPost, "/EmpList", validBody)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var created employee.Employee
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.ID == "" || created.Name != "John Doe" || created.StartDate != "01-01-2025" {
		t.Fatalf("unexpected created employee %+v", created)
	}
	list, _ := store.List(context.Background())
	if len(list) != 1 {
		t.Fatalf("expected one stored employee, got %d", len(list))
	}
}

func TestCreateRejectsInvalidEmployee(t *testing.T) {
	h, store := newRouter()

	rec := do(t, h, http.MethodPost, "/EmpList", `{"name":"John123","gender":"other","departments":[],"startDate":"01-13-2030"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	body := rec.Body.String()
	for _, field := range []string{"name", "gender", "department", "month", "year", "profileImage", "salary"} {
		if !strings.Contains(body, `"field":"`+field+`"`) {
			t.Errorf("expected issue for %s in %s", field, body)
		}
	}
	list, _ := store.List(context.Background())
	if len(list) != 0 {
		t.Fatal("expected nothing stored")
	}
}

func TestCreateRejectsMalformedJSON(t *testing.T) {
	h, _ := newRouter()
	if rec := do(t, h, http.MethodPost, "/EmpList", `{"name":`); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if rec := do(t, h, http.MethodPost, "/EmpList", ""); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty body, got %d", rec.Code)
	}
}

func TestUpdateGetDeleteLifecycle(t *testing.T) {
	h, _ := newRouter()

	rec := do(t, h, http.MethodPost, "/EmpList", validBody)
	var created employee.Employee
	_ = json.Unmarshal(rec.Body.Bytes(), &created)
	path := "/EmpList/" + created.ID

	update := strings.Replace(validBody, `"₹10,000"`, `"₹30,000"`, 1)
	rec = do(t, h, http.MethodPut, path, update)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on update, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = do(t, h, http.MethodGet, path, "")
	var got employee.Employee
	_ = json.Unmarshal(rec.Body.Bytes(), &got)
	if got.Salary != "₹30,000" || got.ID != created.ID {
		t.Fatalf("expected updated salary, got %+v", got)
	}

	rec = do(t, h, http.MethodGet, "/EmpList", "")
	var list []employee.Employee
	_ = json.Unmarshal(rec.Body.Bytes(), &list)
	if len(list) != 1 {
		t.Fatalf("expected one employee in list, got %d", len(list))
	}

	if rec = do(t, h, http.MethodDelete, path, ""); rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on delete, got %d", rec.Code)
	}
	if rec = do(t, h, http.MethodGet, path, ""); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", rec.Code)
	}
}

func TestMissingEmployeeReturns404(t *testing.T) {
	h, _ := newRouter()
	if rec := do(t, h, http.MethodPut, "/EmpList/missing", validBody); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on update, got %d", rec.Code)
	}
	if rec := do(t, h, http.MethodDelete, "/EmpList/missing", ""); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on delete, got %d", rec.Code)
	}
}

func TestUpdateRejectsMismatchedID(t *testing.T) {
	h, _ := newRouter()
	rec := do(t, h, http.MethodPost, "/EmpList", validBody)
	var created employee.Employee
	_ = json.Unmarshal(rec.Body.Bytes(), &created)

	body := strings.Replace(validBody, `{`, `{"id":"other",`, 1)
	if rec = do(t, h, http.MethodPut, "/EmpList/"+created.ID, body); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestMutationsAreAudited(t *testing.T) {
	store := emplist.NewMemoryStore()
	trail := audit.NewMemoryLog()
	r := chi.NewRouter()
	NewHandler(store, trail).RegisterRoutes(r)

	rec := do(t, r, http.MethodPost, "/EmpList", validBody)
	var created employee.Employee
	_ = json.Unmarshal(rec.Body.Bytes(), &created)
	path := "/EmpList/" + created.ID

	if rec = do(t, r, http.MethodPut, path, strings.Replace(validBody, "John Doe", "Jane Doe", 1)); rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on update, got %d", rec.Code)
	}
	if rec = do(t, r, http.MethodDelete, path, ""); rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on delete, got %d", rec.Code)
	}
	do(t, r, http.MethodDelete, "/EmpList/missing", "")

	events, _ := trail.List(context.Background(), 10)
	if len(events) != 3 {
		t.Fatalf("expected 3 audit events, got %d", len(events))
	}
	deleted, updated, createdEvt := events[0], events[1], events[2]
	if createdEvt.Action != audit.ActionCreate || createdEvt.Before != nil || createdEvt.EmployeeID != created.ID {
		t.Fatalf("unexpected create event %+v", createdEvt)
	}
	if updated.Action != audit.ActionUpdate || !strings.Contains(string(updated.Before), "John Doe") || !strings.Contains(string(updated.After), "Jane Doe") {
		t.Fatalf("unexpected update event %+v", updated)
	}
	if deleted.Action != audit.ActionDelete || deleted.After != nil || !strings.Contains(string(deleted.Before), "Jane Doe") {
		t.Fatalf("unexpected delete event %+v", deleted)
	}
}
