package employee

import (
	"errors"
	"log/slog"
	"time"
)

// Repository defines the data access methods for employees.
type Repository interface {
	List() ([]*Employee, error)
	// GetByID returns (nil, nil) when no record matches: the API reports an
	// empty result, not an error.
	GetByID(id int64) (*Employee, error)
	Create(emp *Employee) error
	// Update overwrites the full record and reports the number of rows
	// changed (0 when the id matched nothing).
	Update(id int64, emp *Employee) (int64, error)
	Delete(id int64) (int64, error)
}

// StatsRepository serves the read-only reporting queries.
type StatsRepository interface {
	Collect() (*Statistics, error)
}

type Service struct {
	repo      Repository
	statsRepo StatsRepository
	logger    *slog.Logger
}

func NewService(repo Repository, statsRepo StatsRepository, logger *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		statsRepo: statsRepo,
		logger:    logger,
	}
}

// ListEmployees returns every record, most recently created first.
func (s *Service) ListEmployees() ([]*Employee, error) {
	employees, err := s.repo.List()
	if err != nil {
		s.logger.Error("failed to list employees", "error", err)
		return nil, err
	}
	return employees, nil
}

func (s *Service) GetEmployee(id int64) (*Employee, error) {
	emp, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("failed to get employee", "error", err, "employee_id", id)
		return nil, err
	}
	return emp, nil
}

func (s *Service) CreateEmployee(dto EmployeeDTO) (*Employee, error) {
	if appErr := dto.Validate(); appErr != nil {
		return nil, appErr
	}

	emp := dto.ToDomain()
	emp.CreatedAt = time.Now()

	if err := s.repo.Create(emp); err != nil {
		if errors.Is(err, ErrEmailExists) {
			s.logger.Warn("employee create rejected: duplicate email", "email", emp.Email)
			return nil, ErrEmailExists
		}
		s.logger.Error("failed to create employee", "error", err)
		return nil, err
	}

	s.logger.Info("employee created", "employee_id", emp.ID, "email", emp.Email)
	return emp, nil
}

// UpdateEmployee overwrites the full record. A missing id is not an error;
// the caller sees changes == 0.
func (s *Service) UpdateEmployee(id int64, dto EmployeeDTO) (int64, error) {
	if appErr := dto.Validate(); appErr != nil {
		return 0, appErr
	}

	changes, err := s.repo.Update(id, dto.ToDomain())
	if err != nil {
		if errors.Is(err, ErrEmailExists) {
			s.logger.Warn("employee update rejected: duplicate email", "employee_id", id)
			return 0, ErrEmailExists
		}
		s.logger.Error("failed to update employee", "error", err, "employee_id", id)
		return 0, err
	}

	s.logger.Info("employee updated", "employee_id", id, "changes", changes)
	return changes, nil
}

func (s *Service) DeleteEmployee(id int64) (int64, error) {
	changes, err := s.repo.Delete(id)
	if err != nil {
		s.logger.Error("failed to delete employee", "error", err, "employee_id", id)
		return 0, err
	}

	s.logger.Info("employee deleted", "employee_id", id, "changes", changes)
	return changes, nil
}

func (s *Service) GetStatistics() (*Statistics, error) {
	stats, err := s.statsRepo.Collect()
	if err != nil {
		s.logger.Error("failed to collect statistics", "error", err)
		return nil, err
	}
	return stats, nil
}
