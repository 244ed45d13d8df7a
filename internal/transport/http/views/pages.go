package views

import "emppayroll/internal/transport/http/shared"

// Choice is one radio, checkbox or select entry with its selection state.
type Choice struct {
	Value    string
	Label    string
	Src      string
	Selected bool
}

type LoginPage struct {
	Username string
	Error    string
}

type RegistrationPage struct {
	Operator     string
	FormID       string
	Action       string
	Heading      string
	SubmitLabel  string
	ConfirmLabel string
	Prompt       string
	ModalOpen    bool
	Alert        string
	Issues       map[string]string

	Name          string
	Notes         string
	ProfileImages []Choice
	Genders       []Choice
	Departments   []Choice
	Salaries      []Choice
	Days          []Choice
	Months        []Choice
	Years         []Choice
}

type DashboardRow struct {
	ID          string
	Name        string
	ImageSrc    string
	Gender      string
	Departments []string
	Salary      string
	StartDate   string
	Notes       string
	EditURL     string
	DeleteURL   string
}

type DashboardPage struct {
	Operator string
	Query    string
	Notice   string
	Rows     []DashboardRow
	Page     shared.Page
	PrevURL  string
	NextURL  string
}
