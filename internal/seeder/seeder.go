package seeder

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/frahmantamala/employee-records/internal"
	"github.com/frahmantamala/employee-records/internal/auth"
	employeeDatamodel "github.com/frahmantamala/employee-records/internal/core/datamodel/employee"
	userDatamodel "github.com/frahmantamala/employee-records/internal/core/datamodel/user"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seeder ensures the bootstrap records exist: one administrator account and
// a fixed set of sample employees. Every step is insert-if-absent, so
// running it repeatedly has no effect.
type Seeder struct {
	db         *gorm.DB
	cfg        internal.SeedConfig
	bcryptCost int
	logger     *slog.Logger
}

func New(db *gorm.DB, cfg internal.SeedConfig, bcryptCost int, logger *slog.Logger) *Seeder {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Seeder{
		db:         db,
		cfg:        cfg,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

func (s *Seeder) Run() error {
	if err := s.ensureAdmin(); err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}
	if err := s.ensureSampleEmployees(); err != nil {
		return fmt.Errorf("seed sample employees: %w", err)
	}
	return nil
}

// ensureAdmin creates the administrator account keyed by username. The
// credentials come from configuration, never from compiled-in constants.
func (s *Seeder) ensureAdmin() error {
	var count int64
	if err := s.db.Model(&userDatamodel.User{}).
		Where("username = ?", s.cfg.AdminUsername).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		s.logger.Debug("admin user already exists", "username", s.cfg.AdminUsername)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.cfg.AdminPassword), s.bcryptCost)
	if err != nil {
		return err
	}

	admin := &userDatamodel.User{
		Username:     s.cfg.AdminUsername,
		Email:        s.cfg.AdminEmail,
		PasswordHash: string(hash),
		Role:         auth.RoleAdmin,
		CreatedAt:    time.Now(),
	}
	if err := s.db.Create(admin).Error; err != nil {
		return err
	}

	s.logger.Info("seeded admin user", "username", s.cfg.AdminUsername)
	return nil
}

func (s *Seeder) ensureSampleEmployees() error {
	for _, emp := range SampleEmployees() {
		var count int64
		if err := s.db.Model(&employeeDatamodel.Employee{}).
			Where("email = ?", emp.Email).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		emp.CreatedAt = time.Now()
		if err := s.db.Create(emp).Error; err != nil {
			return err
		}
		s.logger.Info("seeded sample employee", "name", emp.Name)
	}
	return nil
}

func strPtr(s string) *string { return &s }

// SampleEmployees returns the fixed bootstrap data set, keyed by email.
func SampleEmployees() []*employeeDatamodel.Employee {
	return []*employeeDatamodel.Employee{
		{
			Name:       "Raj Sharma",
			Email:      "raj.sharma@company.com",
			Position:   "Software Engineer",
			Department: "Engineering",
			Salary:     750000,
			HireDate:   "2023-01-15",
			Phone:      strPtr("+91-9876543210"),
			Address:    strPtr("123 MG Road, Bangalore, Karnataka"),
		},
		{
			Name:       "Priya Patel",
			Email:      "priya.patel@company.com",
			Position:   "Product Manager",
			Department: "Product",
			Salary:     1200000,
			HireDate:   "2022-08-20",
			Phone:      strPtr("+91-9876543211"),
			Address:    strPtr("456 Koramangala, Bangalore, Karnataka"),
		},
		{
			Name:       "Amit Kumar",
			Email:      "amit.kumar@company.com",
			Position:   "HR Specialist",
			Department: "Human Resources",
			Salary:     600000,
			HireDate:   "2023-03-10",
			Phone:      strPtr("+91-9876543212"),
			Address:    strPtr("789 Whitefield, Bangalore, Karnataka"),
		},
		{
			Name:       "Anjali Singh",
			Email:      "anjali.singh@company.com",
			Position:   "UX Designer",
			Department: "Design",
			Salary:     800000,
			HireDate:   "2023-02-28",
			Phone:      strPtr("+91-9876543213"),
			Address:    strPtr("321 HSR Layout, Bangalore, Karnataka"),
		},
		{
			Name:       "Vikram Reddy",
			Email:      "vikram.reddy@company.com",
			Position:   "Data Analyst",
			Department: "Analytics",
			Salary:     900000,
			HireDate:   "2022-11-15",
			Phone:      strPtr("+91-9876543214"),
			Address:    strPtr("654 Jayanagar, Bangalore, Karnataka"),
		},
	}
}
