package registration

import (
	"context"

	"emppayroll/internal/domain/employee"
)

// DashboardPath is where the form navigates on cancel and after a successful submit.
const DashboardPath = "/dashboard"

// Backend persists employee records. Both calls receive the record without its id.
type Backend interface {
	Create(ctx context.Context, emp employee.Employee) (string, error)
	Update(ctx context.Context, id string, emp employee.Employee) error
}

type Navigator interface {
	Navigate(path string)
}

// Notifier surfaces a blocking, acknowledgment-style notice to the user.
type Notifier interface {
	Alert(message string)
}

// EditPayload is the navigation state handed to the form when it is mounted.
type EditPayload struct {
	IsEdit   bool
	Employee *employee.Employee
}
