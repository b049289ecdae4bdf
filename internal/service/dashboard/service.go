package dashboard

import (
	"context"

	"github.com/techbridge-it/perfnote-backend-go/internal/domain/account"
	"github.com/techbridge-it/perfnote-backend-go/internal/domain/employee"
	"github.com/techbridge-it/perfnote-backend-go/internal/domain/note"
)

// Stats is the admin landing-page counter set.
type Stats struct {
	TotalUsers     int64 `json:"total_users"`
	TotalNotes     int64 `json:"total_notes"`
	TotalManagers  int64 `json:"total_managers"`
	TotalEmployees int64 `json:"total_employees"`
}

type DashboardService interface {
	Stats(ctx context.Context) (Stats, error)
}

type DashboardServiceImpl struct {
	accountRepo  account.AccountRepository
	noteRepo     note.NoteRepository
	employeeRepo employee.EmployeeRepository
}

func NewDashboardService(
	accountRepo account.AccountRepository,
	noteRepo note.NoteRepository,
	employeeRepo employee.EmployeeRepository,
) DashboardService {
	return &DashboardServiceImpl{
		accountRepo:  accountRepo,
		noteRepo:     noteRepo,
		employeeRepo: employeeRepo,
	}
}

func (s *DashboardServiceImpl) Stats(ctx context.Context) (Stats, error) {
	accounts, err := s.accountRepo.List(ctx)
	if err != nil {
		return Stats{}, err
	}

	var managers int64
	for _, a := range accounts {
		if a.Role == account.RoleManager {
			managers++
		}
	}

	notes, err := s.noteRepo.Count(ctx)
	if err != nil {
		return Stats{}, err
	}

	employees, err := s.employeeRepo.CountActive(ctx)
	if err != nil {
		return Stats{}, err
	}

	return Stats{
		TotalUsers:     int64(len(accounts)),
		TotalNotes:     notes,
		TotalManagers:  managers,
		TotalEmployees: employees,
	}, nil
}
