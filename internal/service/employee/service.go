package employee

import (
	"context"
	"fmt"
	"strings"

	"github.com/techbridge-it/perfnote-backend-go/internal/domain/account"
	"github.com/techbridge-it/perfnote-backend-go/internal/domain/activity"
	"github.com/techbridge-it/perfnote-backend-go/internal/domain/employee"
	"github.com/techbridge-it/perfnote-backend-go/internal/domain/policy"
	"github.com/techbridge-it/perfnote-backend-go/internal/pkg/validator"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	recorder     activity.Recorder
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository, recorder activity.Recorder) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
		recorder:     recorder,
	}
}

func (s *EmployeeServiceImpl) Create(ctx context.Context, actor account.Actor, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	if !policy.IsAdministrative(actor.Role) {
		return employee.Employee{}, policy.ErrForbidden
	}

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		Name:   strings.TrimSpace(req.Name),
		Email:  strings.ToLower(strings.TrimSpace(req.Email)),
		Active: true,
	})
	if err != nil {
		return employee.Employee{}, err
	}

	s.recorder.Record(ctx, actor.ID, "Create Employee", fmt.Sprintf("Created employee %s", created.Name))

	return created, nil
}

func (s *EmployeeServiceImpl) ListActive(ctx context.Context) ([]employee.Employee, error) {
	return s.employeeRepo.ListActive(ctx)
}

func (s *EmployeeServiceImpl) ListWithManagers(ctx context.Context) ([]employee.Employee, error) {
	return s.employeeRepo.ListWithManagers(ctx)
}

func (s *EmployeeServiceImpl) Deactivate(ctx context.Context, actor account.Actor, id string) error {
	if !policy.IsAdministrative(actor.Role) {
		return policy.ErrForbidden
	}

	target, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.employeeRepo.SetActive(ctx, id, false); err != nil {
		return err
	}

	s.recorder.Record(ctx, actor.ID, "Deactivate Employee", fmt.Sprintf("Deactivated employee %s", target.Name))

	return nil
}

// Import creates employees from pre-parsed rows. Invalid rows are reported
// per row and existing emails are skipped; neither aborts the batch.
func (s *EmployeeServiceImpl) Import(ctx context.Context, actor account.Actor, rows []employee.ImportRow) (employee.ImportResult, error) {
	if !policy.IsAdministrative(actor.Role) {
		return employee.ImportResult{}, policy.ErrForbidden
	}

	var result employee.ImportResult
	for _, row := range rows {
		name := strings.TrimSpace(row.Name)
		email := strings.ToLower(strings.TrimSpace(row.Email))

		switch {
		case name == "":
			result.Errors = append(result.Errors, employee.ImportRowError{Row: row, Error: "name is required"})
			continue
		case email == "":
			result.Errors = append(result.Errors, employee.ImportRowError{Row: row, Error: "email is required"})
			continue
		case !validator.IsValidEmail(email):
			result.Errors = append(result.Errors, employee.ImportRowError{Row: row, Error: "invalid email address"})
			continue
		}

		created, err := s.employeeRepo.CreateIfAbsent(ctx, employee.Employee{
			Name:   name,
			Email:  email,
			Active: true,
		})
		if err != nil {
			return result, fmt.Errorf("import row %s: %w", email, err)
		}
		if !created {
			result.Errors = append(result.Errors, employee.ImportRowError{Row: row, Error: "email already exists"})
			continue
		}

		result.Imported++
	}

	s.recorder.Record(ctx, actor.ID, "Import Employees", fmt.Sprintf("Imported %d employees", result.Imported))

	return result, nil
}
