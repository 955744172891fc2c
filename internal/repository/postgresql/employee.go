package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/aio-wfh/wfh-backend-go/internal/domain/employee"
	"github.com/aio-wfh/wfh-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `staff_id, first_name, last_name, department, position, country, email, reporting_manager, created_at, updated_at`

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, staffID int) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE staff_id = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, staffID).Scan(
		&emp.StaffID, &emp.FirstName, &emp.LastName, &emp.Department, &emp.Position,
		&emp.Country, &emp.Email, &emp.ReportingManager, &emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee with staff id %d: %w", staffID, err)
	}

	return emp, nil
}

// GetManagerAndPosition implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetManagerAndPosition(ctx context.Context, staffID int) (employee.ManagerPosition, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT reporting_manager, position
		FROM employees
		WHERE staff_id = $1
	`

	var mp employee.ManagerPosition
	err := q.QueryRow(ctx, query, staffID).Scan(&mp.ReportingManager, &mp.Position)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ManagerPosition{}, employee.ErrEmployeeNotFound
		}
		return employee.ManagerPosition{}, fmt.Errorf("failed to get manager and position for staff id %d: %w", staffID, err)
	}

	return mp, nil
}

// GetAll implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetAll(ctx context.Context, filter employee.DirectoryFilter) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
	`

	var conditions []string
	var args []interface{}

	if len(filter.Departments) > 0 {
		args = append(args, filter.Departments)
		conditions = append(conditions, fmt.Sprintf(`department = ANY($%d::text[])`, len(args)))
	}
	if len(filter.Positions) > 0 {
		args = append(args, filter.Positions)
		conditions = append(conditions, fmt.Sprintf(`position = ANY($%d::text[])`, len(args)))
	}

	for i, cond := range conditions {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += " ORDER BY staff_id"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEmployees(rows)
}

// GetReportingLine implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetReportingLine(ctx context.Context, managerID int) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE reporting_manager = $1 OR staff_id = $1
		ORDER BY staff_id
	`

	rows, err := q.Query(ctx, query, managerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEmployees(rows)
}

func scanEmployees(rows pgx.Rows) ([]employee.Employee, error) {
	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		err := rows.Scan(
			&emp.StaffID, &emp.FirstName, &emp.LastName, &emp.Department, &emp.Position,
			&emp.Country, &emp.Email, &emp.ReportingManager, &emp.CreatedAt, &emp.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}
