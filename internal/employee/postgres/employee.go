package postgres

import (
	"errors"
	"strings"

	employeeDatamodel "github.com/frahmantamala/employee-records/internal/core/datamodel/employee"
	"github.com/frahmantamala/employee-records/internal/employee"
	"gorm.io/gorm"
)

// EmployeeRepository implements employee.Repository using GORM.
type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) List() ([]*employee.Employee, error) {
	var records []*employeeDatamodel.Employee
	err := r.db.Order("created_at DESC, id DESC").Find(&records).Error
	if err != nil {
		return nil, err
	}
	return employee.FromDataModelSlice(records), nil
}

// GetByID returns (nil, nil) when no row matches; the handler renders that
// as an empty data field.
func (r *EmployeeRepository) GetByID(id int64) (*employee.Employee, error) {
	var record employeeDatamodel.Employee
	err := r.db.Where("id = ?", id).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return employee.FromDataModel(&record), nil
}

func (r *EmployeeRepository) Create(emp *employee.Employee) error {
	record := employee.ToDataModel(emp)
	if err := r.db.Create(record).Error; err != nil {
		if isUniqueViolation(err) {
			return employee.ErrEmailExists
		}
		return err
	}
	emp.ID = record.ID
	return nil
}

// Update is a full-record overwrite: optional fields are written even when
// nil so a previously set phone or address can be cleared.
func (r *EmployeeRepository) Update(id int64, emp *employee.Employee) (int64, error) {
	record := employee.ToDataModel(emp)
	result := r.db.Model(&employeeDatamodel.Employee{}).
		Where("id = ?", id).
		Select("name", "email", "position", "department", "salary", "hire_date", "phone", "address").
		Updates(record)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return 0, employee.ErrEmailExists
		}
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (r *EmployeeRepository) Delete(id int64) (int64, error) {
	result := r.db.Where("id = ?", id).Delete(&employeeDatamodel.Employee{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}
