package registrationhandler

import (
	"strings"

	"emppayroll/internal/domain/employee"
	"emppayroll/internal/domain/registration"
	"emppayroll/internal/transport/http/views"
)

func buildPage(formID string, snap registration.Snapshot, alerts []string, issues []employee.Issue) views.RegistrationPage {
	d := snap.Draft
	page := views.RegistrationPage{
		FormID:       formID,
		Action:       formPath(formID),
		Heading:      "Employee Payroll Form",
		SubmitLabel:  "Submit",
		ConfirmLabel: "Add",
		Prompt:       snap.Prompt,
		ModalOpen:    snap.ModalOpen,
		Issues:       map[string]string{},
		Name:         d.Name,
		Notes:        d.Notes,
	}
	if snap.IsEdit {
		page.Heading = "Update Employee"
		page.SubmitLabel = "Update"
		page.ConfirmLabel = "Edit"
	}
	if len(alerts) > 0 {
		page.Alert = alerts[len(alerts)-1]
	}
	for _, issue := range issues {
		if _, seen := page.Issues[issue.Field]; !seen {
			page.Issues[issue.Field] = issueMessage(issue)
		}
	}

	for _, img := range employee.ProfileImages {
		page.ProfileImages = append(page.ProfileImages, views.Choice{Value: img.Value, Label: img.Alt, Src: img.Src, Selected: d.ProfileImage == img.Value})
	}
	for _, g := range employee.Genders {
		page.Genders = append(page.Genders, views.Choice{Value: g, Label: capitalize(g), Selected: d.Gender == g})
	}
	for _, dep := range employee.Departments {
		page.Departments = append(page.Departments, views.Choice{Value: dep, Label: capitalize(dep), Selected: d.HasDepartment(dep)})
	}
	for _, s := range employee.Salaries {
		page.Salaries = append(page.Salaries, views.Choice{Value: s, Label: s, Selected: d.Salary == s})
	}
	page.Days = choices(employee.DayOptions(), d.Day)
	page.Months = choices(employee.MonthOptions(), d.Month)
	for _, y := range employee.Years {
		page.Years = append(page.Years, views.Choice{Value: y, Label: y, Selected: d.Year == y})
	}
	return page
}

func choices(opts []employee.Option, selected string) []views.Choice {
	out := make([]views.Choice, 0, len(opts))
	for _, opt := range opts {
		out = append(out, views.Choice{Value: opt.Value, Label: opt.Label, Selected: opt.Value == selected})
	}
	return out
}

// issueMessage turns "is required" style reasons into a sentence about the
// field; complete reasons are only capitalized.
func issueMessage(issue employee.Issue) string {
	if strings.HasPrefix(issue.Reason, "is ") || strings.HasPrefix(issue.Reason, "must ") {
		return fieldLabel(issue.Field) + " " + issue.Reason
	}
	return capitalize(issue.Reason)
}

func fieldLabel(field string) string {
	switch field {
	case registration.FieldProfileImage:
		return "Profile image"
	case registration.FieldDepartment, "departments":
		return "Department"
	case registration.FieldDay, registration.FieldMonth, registration.FieldYear:
		return "Start " + field
	}
	return capitalize(field)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
