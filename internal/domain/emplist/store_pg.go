package emplist

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"emppayroll/internal/domain/employee"
)

type PGStore struct {
	DB *pgxpool.Pool
}

func NewPGStore(db *pgxpool.Pool) *PGStore {
	return &PGStore{DB: db}
}

const employeeColumns = `id, name, profile_image, gender, departments, salary, start_date, notes`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(&emp.ID, &emp.Name, &emp.ProfileImage, &emp.Gender, &emp.Departments, &emp.Salary, &emp.StartDate, &emp.Notes)
	if errors.Is(err, pgx.ErrNoRows) {
		return employee.Employee{}, ErrNotFound
	}
	if emp.Departments == nil {
		emp.Departments = []string{}
	}
	return emp, err
}

func (s *PGStore) List(ctx context.Context) ([]employee.Employee, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+employeeColumns+`
    FROM emp_list
    ORDER BY created_at, id
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []employee.Employee{}
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, emp)
	}
	return out, rows.Err()
}

func (s *PGStore) Get(ctx context.Context, id string) (employee.Employee, error) {
	return scanEmployee(s.DB.QueryRow(ctx, `
    SELECT `+employeeColumns+`
    FROM emp_list
    WHERE id = $1
  `, id))
}

func (s *PGStore) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return scanEmployee(s.DB.QueryRow(ctx, `
    INSERT INTO emp_list (id, name, profile_image, gender, departments, salary, start_date, notes)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
    RETURNING `+employeeColumns,
		uuid.NewString(), emp.Name, emp.ProfileImage, emp.Gender, departmentsOrEmpty(emp.Departments), emp.Salary, emp.StartDate, emp.Notes))
}

func (s *PGStore) Update(ctx context.Context, id string, emp employee.Employee) (employee.Employee, error) {
	return scanEmployee(s.DB.QueryRow(ctx, `
    UPDATE emp_list
    SET name = $2, profile_image = $3, gender = $4, departments = $5,
        salary = $6, start_date = $7, notes = $8, updated_at = now()
    WHERE id = $1
    RETURNING `+employeeColumns,
		id, emp.Name, emp.ProfileImage, emp.Gender, departmentsOrEmpty(emp.Departments), emp.Salary, emp.StartDate, emp.Notes))
}

func (s *PGStore) Delete(ctx context.Context, id string) error {
	tag, err := s.DB.Exec(ctx, `DELETE FROM emp_list WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PGStore) Ping(ctx context.Context) error {
	return s.DB.Ping(ctx)
}

func departmentsOrEmpty(deps []string) []string {
	if deps == nil {
		return []string{}
	}
	return deps
}
