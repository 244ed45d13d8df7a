package employee

import (
	"regexp"
	"sort"
	"strings"
)

var namePattern = regexp.MustCompile(`^[A-Za-z\s]+$`)

type Issue struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

type Validator struct {
	issues []Issue
}

func NewValidator() *Validator {
	return &Validator{issues: make([]Issue, 0, 4)}
}

func (v *Validator) Add(field, reason string) {
	if v == nil {
		return
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return
	}
	v.issues = append(v.issues, Issue{Field: strings.TrimSpace(field), Reason: reason})
}

// Required reports an empty value and returns whether the value was present.
func (v *Validator) Required(field, value, reason string) bool {
	if strings.TrimSpace(value) == "" {
		v.Add(field, reason)
		return false
	}
	return true
}

// OneOf checks a present value against an exact-match domain.
func (v *Validator) OneOf(field, value string, allowed []string, reason string) {
	if value == "" {
		return
	}
	for _, candidate := range allowed {
		if value == candidate {
			return
		}
	}
	v.Add(field, reason)
}

func (v *Validator) HasIssues() bool {
	return v != nil && len(v.issues) > 0
}

func (v *Validator) Issues() []Issue {
	if v == nil || len(v.issues) == 0 {
		return nil
	}
	out := make([]Issue, len(v.issues))
	copy(out, v.issues)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Field == out[j].Field {
			return out[i].Reason < out[j].Reason
		}
		return out[i].Field < out[j].Field
	})
	return out
}

// Fields holds the form-level view of an employee, with the start date split.
type Fields struct {
	Name         string
	ProfileImage string
	Gender       string
	Departments  []string
	Salary       string
	Day          string
	Month        string
	Year         string
}

// ValidateFields applies the required and pattern constraints the form declares.
func ValidateFields(f Fields) []Issue {
	v := NewValidator()
	if v.Required("name", f.Name, "is required") && !namePattern.MatchString(f.Name) {
		v.Add("name", "only letters are allowed")
	}
	if v.Required("profileImage", f.ProfileImage, "is required") {
		v.OneOf("profileImage", f.ProfileImage, profileImageValues(), "is not a known profile image")
	}
	if v.Required("gender", f.Gender, "is required") {
		v.OneOf("gender", f.Gender, Genders, "must be male or female")
	}
	if len(f.Departments) == 0 {
		v.Add("department", "select at least one department")
	}
	for _, dep := range f.Departments {
		if v.Required("department", dep, "must not be empty") {
			v.OneOf("department", dep, Departments, "unknown department "+dep)
		}
	}
	if v.Required("salary", f.Salary, "is required") {
		v.OneOf("salary", f.Salary, Salaries, "is not a known salary band")
	}
	if v.Required("day", f.Day, "is required") {
		v.OneOf("day", f.Day, optionValues(DayOptions()), "must be 01-31")
	}
	if v.Required("month", f.Month, "is required") {
		v.OneOf("month", f.Month, optionValues(MonthOptions()), "must be 01-12")
	}
	if v.Required("year", f.Year, "is required") {
		v.OneOf("year", f.Year, Years, "is not an accepted year")
	}
	return v.Issues()
}

// Validate checks a persisted-shape record, splitting its start date.
func Validate(e Employee) []Issue {
	day, month, year := SplitStartDate(e.StartDate)
	issues := ValidateFields(Fields{
		Name:         e.Name,
		ProfileImage: e.ProfileImage,
		Gender:       e.Gender,
		Departments:  e.Departments,
		Salary:       e.Salary,
		Day:          day,
		Month:        month,
		Year:         year,
	})
	if hasDuplicates(e.Departments) {
		issues = append(issues, Issue{Field: "departments", Reason: "must not repeat a department"})
	}
	return issues
}

func hasDuplicates(values []string) bool {
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			return true
		}
		seen[v] = struct{}{}
	}
	return false
}
