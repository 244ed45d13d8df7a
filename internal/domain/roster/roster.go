package roster

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"emppayroll/internal/domain/employee"
)

const sheetName = "Employees"

var columns = []string{"Name", "Gender", "Departments", "Salary", "Start Date", "Notes"}

// Filter keeps employees whose name contains query, ignoring case. An empty
// query keeps everyone.
func Filter(employees []employee.Employee, query string) []employee.Employee {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return employees
	}
	out := make([]employee.Employee, 0, len(employees))
	for _, emp := range employees {
		if strings.Contains(strings.ToLower(emp.Name), query) {
			out = append(out, emp)
		}
	}
	return out
}

func row(emp employee.Employee) []string {
	return []string{
		emp.Name,
		emp.Gender,
		strings.Join(emp.Departments, ", "),
		emp.Salary,
		emp.StartDate,
		emp.Notes,
	}
}

// WritePDF renders the roster as an A4 landscape table.
func WritePDF(w io.Writer, employees []employee.Employee, generated time.Time) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	widths := []float64{55, 25, 60, 30, 30, 77}

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Employee Roster")
	pdf.Ln(9)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Generated %s, %d employees", generated.Format("02-01-2006 15:04"), len(employees)))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(130, 167, 12)
	pdf.SetTextColor(255, 255, 255)
	for i, col := range columns {
		pdf.CellFormat(widths[i], 8, col, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(66, 81, 95)
	for _, emp := range employees {
		for i, value := range row(emp) {
			pdf.CellFormat(widths[i], 7, tr(pdfText(value)), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
	return pdf.Output(w)
}

// pdfText replaces the rupee sign, which the core fonts cannot draw.
func pdfText(s string) string {
	return strings.ReplaceAll(s, "₹", "Rs. ")
}

// WriteXLSX renders the roster as a single-sheet workbook.
func WriteXLSX(w io.Writer, employees []employee.Employee) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return err
	}
	if err := f.SetSheetRow(sheetName, "A1", &columns); err != nil {
		return err
	}
	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheetName, "A1", "F1", header); err != nil {
		return err
	}
	for i, emp := range employees {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := row(emp)
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return err
		}
	}
	if err := f.SetColWidth(sheetName, "A", "F", 22); err != nil {
		return err
	}
	_, err = f.WriteTo(w)
	return err
}
