package employee

import "strings"

// ComposeStartDate joins the three selections as DD-MM-YYYY.
func ComposeStartDate(day, month, year string) string {
	return day + "-" + month + "-" + year
}

// SplitStartDate decomposes a persisted DD-MM-YYYY value. Missing parts come
// back empty so a partial record still pre-fills what it has.
func SplitStartDate(value string) (day, month, year string) {
	parts := strings.SplitN(strings.TrimSpace(value), "-", 3)
	if len(parts) > 0 {
		day = parts[0]
	}
	if len(parts) > 1 {
		month = parts[1]
	}
	if len(parts) > 2 {
		year = parts[2]
	}
	return day, month, year
}
