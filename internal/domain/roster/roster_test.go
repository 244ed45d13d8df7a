package roster

import (
	"bytes"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"emppayroll/internal/domain/employee"
)

func sample() []employee.Employee {
	return []employee.Employee{
		{ID: "1", Name: "Jane Doe", Gender: "female", Departments: []string{"HR", "sales"}, Salary: "₹20,000", StartDate: "15-03-2023", Notes: "Experienced hire"},
		{ID: "2", Name: "John Smith", Gender: "male", Departments: []string{"engineer"}, Salary: "₹10,000", StartDate: "01-01-2025"},
	}
}

func TestFilterMatchesNameIgnoringCase(t *testing.T) {
	got := Filter(sample(), "  jAnE ")
	if len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("expected Jane only, got %+v", got)
	}
	if len(Filter(sample(), "")) != 2 {
		t.Fatal("expected empty query to keep everyone")
	}
	if len(Filter(sample(), "zed")) != 0 {
		t.Fatal("expected no match")
	}
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePDF(&buf, sample(), time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("write pdf: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Fatal("expected pdf header")
	}
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteXLSX(&buf, sample()); err != nil {
		t.Fatalf("write xlsx: %v", err)
	}
	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("open xlsx: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header plus two rows, got %d", len(rows))
	}
	if rows[0][0] != "Name" || rows[1][0] != "Jane Doe" || rows[1][2] != "HR, sales" || rows[2][3] != "₹10,000" {
		t.Fatalf("unexpected sheet content %v", rows)
	}
}
