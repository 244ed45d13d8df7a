package emplist

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"emppayroll/internal/domain/employee"
)

func sample() employee.Employee {
	return employee.Employee{
		ID:           "ignored",
		Name:         "John Doe",
		ProfileImage: "/Assets/person1.jpeg",
		Gender:       "male",
		Departments:  []string{"HR"},
		Salary:       "₹10,000",
		StartDate:    "01-01-2025",
		Notes:        "New joiner",
	}
}

func TestCreatePostsWithoutID(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"abc","name":"John Doe"}`))
	}))
	defer srv.Close()

	id, err := New(srv.URL, time.Second).Create(context.Background(), sample())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if id != "abc" {
		t.Fatalf("expected id abc, got %q", id)
	}
	if gotMethod != http.MethodPost || gotPath != "/EmpList" {
		t.Fatalf("unexpected request %s %s", gotMethod, gotPath)
	}
	if _, ok := gotBody["id"]; ok {
		t.Fatalf("create body must not carry an id: %v", gotBody)
	}
	if gotBody["startDate"] != "01-01-2025" || gotBody["salary"] != "₹10,000" {
		t.Fatalf("unexpected body %v", gotBody)
	}
}

func TestUpdatePutsByID(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	if err := New(srv.URL+"/", time.Second).Update(context.Background(), "1", sample()); err != nil {
		t.Fatalf("update: %v", err)
	}
	if gotMethod != http.MethodPut || gotPath != "/EmpList/1" {
		t.Fatalf("unexpected request %s %s", gotMethod, gotPath)
	}
}

func TestNon2xxIsStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := New(srv.URL, time.Second).Create(context.Background(), sample())
	var statusErr *StatusError
	if !errors.As(err, &statusErr) || statusErr.Code != http.StatusInternalServerError {
		t.Fatalf("expected status error, got %v", err)
	}
}

func TestGetMissingIsNotFound(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	_, err := New(srv.URL, time.Second).Get(context.Background(), "nope")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestListDecodesEmployees(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"id":"1","name":"Jane Doe","departments":["HR","sales"],"startDate":"15-03-2023"}]`))
	}))
	defer srv.Close()

	list, err := New(srv.URL, time.Second).List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].ID != "1" || len(list[0].Departments) != 2 {
		t.Fatalf("unexpected list %+v", list)
	}
}

func TestTransportErrorIsReturned(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	if err := New(url, 200*time.Millisecond).Delete(context.Background(), "1"); err == nil {
		t.Fatal("expected transport error")
	}
}
