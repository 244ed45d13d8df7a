package registration

import (
	"slices"

	"emppayroll/internal/domain/employee"
)

const (
	FieldName         = "name"
	FieldProfileImage = "profileImage"
	FieldGender       = "gender"
	FieldDepartment   = "department"
	FieldSalary       = "salary"
	FieldDay          = "day"
	FieldMonth        = "month"
	FieldYear         = "year"
	FieldNotes        = "notes"
)

// FieldKind tells UpdateField how to apply a value.
type FieldKind int

const (
	KindValue FieldKind = iota
	KindToggleOn
	KindToggleOff
)

// Draft is the in-progress, not yet persisted employee. Values are treated as
// immutable: every mutation returns a new Draft.
type Draft struct {
	ID           string
	Name         string
	ProfileImage string
	Gender       string
	Departments  []string
	Salary       string
	Day          string
	Month        string
	Year         string
	Notes        string
}

func BlankDraft() Draft {
	return Draft{Departments: []string{}}
}

func draftFromEmployee(emp employee.Employee) Draft {
	day, month, year := employee.SplitStartDate(emp.StartDate)
	return Draft{
		ID:           emp.ID,
		Name:         emp.Name,
		ProfileImage: emp.ProfileImage,
		Gender:       emp.Gender,
		Departments:  dedupe(emp.Departments),
		Salary:       emp.Salary,
		Day:          day,
		Month:        month,
		Year:         year,
		Notes:        emp.Notes,
	}
}

func (d Draft) clone() Draft {
	d.Departments = slices.Clone(d.Departments)
	if d.Departments == nil {
		d.Departments = []string{}
	}
	return d
}

func (d Draft) HasDepartment(dep string) bool {
	return slices.Contains(d.Departments, dep)
}

// StartDate recomposes the three selections as DD-MM-YYYY.
func (d Draft) StartDate() string {
	return employee.ComposeStartDate(d.Day, d.Month, d.Year)
}

// Employee is the request body built at submission time; it carries no id.
func (d Draft) Employee() employee.Employee {
	return employee.Employee{
		Name:         d.Name,
		ProfileImage: d.ProfileImage,
		Gender:       d.Gender,
		Departments:  slices.Clone(d.Departments),
		Salary:       d.Salary,
		StartDate:    d.StartDate(),
		Notes:        d.Notes,
	}
}

func (d Draft) fields() employee.Fields {
	return employee.Fields{
		Name:         d.Name,
		ProfileImage: d.ProfileImage,
		Gender:       d.Gender,
		Departments:  d.Departments,
		Salary:       d.Salary,
		Day:          d.Day,
		Month:        d.Month,
		Year:         d.Year,
	}
}

func (d Draft) with(name, value string, kind FieldKind) (Draft, error) {
	next := d.clone()
	if name == FieldDepartment {
		switch kind {
		case KindToggleOn:
			if !slices.Contains(employee.Departments, value) {
				return d, ErrUnknownValue
			}
			if !next.HasDepartment(value) {
				next.Departments = append(next.Departments, value)
			}
		case KindToggleOff:
			next.Departments = slices.DeleteFunc(next.Departments, func(dep string) bool { return dep == value })
		default:
			return d, ErrInvalidKind
		}
		return next, nil
	}
	if kind != KindValue {
		return d, ErrInvalidKind
	}
	switch name {
	case FieldName:
		next.Name = value
	case FieldProfileImage:
		next.ProfileImage = value
	case FieldGender:
		next.Gender = value
	case FieldSalary:
		next.Salary = value
	case FieldDay:
		next.Day = value
	case FieldMonth:
		next.Month = value
	case FieldYear:
		next.Year = value
	case FieldNotes:
		next.Notes = value
	default:
		return d, ErrUnknownField
	}
	return next, nil
}

func dedupe(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}
