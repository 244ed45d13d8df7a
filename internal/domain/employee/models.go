package employee

// Employee is the record persisted by the EmpList backend.
type Employee struct {
	ID           string   `json:"id,omitempty"`
	Name         string   `json:"name"`
	ProfileImage string   `json:"profileImage"`
	Gender       string   `json:"gender"`
	Departments  []string `json:"departments"`
	Salary       string   `json:"salary"`
	StartDate    string   `json:"startDate"`
	Notes        string   `json:"notes"`
}

// WithoutID returns a copy suitable for create and update bodies.
func (e Employee) WithoutID() Employee {
	e.ID = ""
	e.Departments = cloneStrings(e.Departments)
	return e
}

func (e Employee) Clone() Employee {
	e.Departments = cloneStrings(e.Departments)
	return e
}

func cloneStrings(in []string) []string {
	if in == nil {
		return []string{}
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
