package employee

import "fmt"

const (
	GenderMale   = "male"
	GenderFemale = "female"
)

const (
	DepartmentHR       = "HR"
	DepartmentSales    = "sales"
	DepartmentFinance  = "finance"
	DepartmentEngineer = "engineer"
	DepartmentOthers   = "others"
)

type ProfileImage struct {
	Value string
	Src   string
	Alt   string
}

var ProfileImages = []ProfileImage{
	{Value: "/Assets/person1.jpeg", Src: "/assets/person1.svg", Alt: "Profile 1"},
	{Value: "/Assets/person2.jpeg", Src: "/assets/person2.svg", Alt: "Profile 2"},
	{Value: "/Assets/person3.jpeg", Src: "/assets/person3.svg", Alt: "Profile 3"},
	{Value: "/Assets/person4.jpeg", Src: "/assets/person4.svg", Alt: "Profile 4"},
}

var Genders = []string{GenderMale, GenderFemale}

var Departments = []string{DepartmentHR, DepartmentSales, DepartmentFinance, DepartmentEngineer, DepartmentOthers}

var Salaries = []string{"₹10,000", "₹20,000", "₹30,000"}

var MonthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

var Years = []string{"2021", "2022", "2023", "2024", "2025"}

// Option is a select entry: the submitted value and its visible label.
type Option struct {
	Value string
	Label string
}

func DayOptions() []Option {
	out := make([]Option, 0, 31)
	for d := 1; d <= 31; d++ {
		v := fmt.Sprintf("%02d", d)
		out = append(out, Option{Value: v, Label: v})
	}
	return out
}

func MonthOptions() []Option {
	out := make([]Option, 0, len(MonthNames))
	for i, name := range MonthNames {
		out = append(out, Option{Value: fmt.Sprintf("%02d", i+1), Label: name})
	}
	return out
}

// ProfileImageSrc maps a stored profile reference to the asset served by the UI.
func ProfileImageSrc(value string) string {
	for _, img := range ProfileImages {
		if img.Value == value {
			return img.Src
		}
	}
	return ""
}

func profileImageValues() []string {
	out := make([]string, 0, len(ProfileImages))
	for _, img := range ProfileImages {
		out = append(out, img.Value)
	}
	return out
}

func optionValues(opts []Option) []string {
	out := make([]string, 0, len(opts))
	for _, o := range opts {
		out = append(out, o.Value)
	}
	return out
}
