package shared

import (
	"net/http"

	"emppayroll/internal/domain/employee"
	"emppayroll/internal/transport/http/api"
)

// RejectIssues writes a validation failure when issues is non-empty and
// reports whether it did.
func RejectIssues(w http.ResponseWriter, requestID string, issues []employee.Issue) bool {
	if len(issues) == 0 {
		return false
	}
	FailValidation(w, requestID, issues)
	return true
}

func FailValidation(w http.ResponseWriter, requestID string, issues []employee.Issue) {
	api.FailWithDetails(
		w,
		http.StatusBadRequest,
		"validation_error",
		"payload validation failed",
		map[string]any{"fields": issues},
		requestID,
	)
}
