package employee

import (
	"errors"
	"time"

	employeeDatamodel "github.com/frahmantamala/employee-records/internal/core/datamodel/employee"
)

// HireDateLayout is the calendar-date format stored for hire_date.
const HireDateLayout = "2006-01-02"

type Employee struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Position   string    `json:"position"`
	Department string    `json:"department"`
	Salary     float64   `json:"salary"`
	HireDate   string    `json:"hire_date"`
	Phone      *string   `json:"phone"`
	Address    *string   `json:"address"`
	CreatedAt  time.Time `json:"created_at"`
}

var ErrEmailExists = errors.New("email already exists")

func ToDataModel(e *Employee) *employeeDatamodel.Employee {
	return &employeeDatamodel.Employee{
		ID:         e.ID,
		Name:       e.Name,
		Email:      e.Email,
		Position:   e.Position,
		Department: e.Department,
		Salary:     e.Salary,
		HireDate:   e.HireDate,
		Phone:      e.Phone,
		Address:    e.Address,
		CreatedAt:  e.CreatedAt,
	}
}

func FromDataModel(e *employeeDatamodel.Employee) *Employee {
	return &Employee{
		ID:         e.ID,
		Name:       e.Name,
		Email:      e.Email,
		Position:   e.Position,
		Department: e.Department,
		Salary:     e.Salary,
		HireDate:   e.HireDate,
		Phone:      e.Phone,
		Address:    e.Address,
		CreatedAt:  e.CreatedAt,
	}
}

func FromDataModelSlice(records []*employeeDatamodel.Employee) []*Employee {
	result := make([]*Employee, len(records))
	for i, e := range records {
		result[i] = FromDataModel(e)
	}
	return result
}
