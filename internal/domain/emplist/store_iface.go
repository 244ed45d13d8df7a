package emplist

import (
	"context"
	"errors"

	"emppayroll/internal/domain/employee"
)

var ErrNotFound = errors.New("employee not found")

// Store persists EmpList records. Implementations assign ids on Create.
type Store interface {
	List(ctx context.Context) ([]employee.Employee, error)
	Get(ctx context.Context, id string) (employee.Employee, error)
	Create(ctx context.Context, emp employee.Employee) (employee.Employee, error)
	Update(ctx context.Context, id string, emp employee.Employee) (employee.Employee, error)
	Delete(ctx context.Context, id string) error
	Ping(ctx context.Context) error
}
