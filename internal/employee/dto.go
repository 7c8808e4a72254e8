package employee

import (
	errors "github.com/frahmantamala/employee-records/internal"
	"github.com/frahmantamala/employee-records/internal/core/common/validation"
)

// EmployeeDTO is the request payload for create and update. Salary is a
// pointer so an absent field is distinguishable from a legitimate zero
// salary.
type EmployeeDTO struct {
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Position   string   `json:"position"`
	Department string   `json:"department"`
	Salary     *float64 `json:"salary"`
	HireDate   string   `json:"hire_date"`
	Phone      *string  `json:"phone"`
	Address    *string  `json:"address"`
}

// Validate applies the same declarative rules on the create and update
// paths.
func (dto EmployeeDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.Field("name", dto.Name).Required().MaxLength(200)
	v.Field("email", dto.Email).Required().MaxLength(200)
	v.Field("position", dto.Position).Required().MaxLength(200)
	v.Field("department", dto.Department).Required().MaxLength(200)
	v.Field("salary", dto.Salary).Required().NonNegative(errors.ErrCodeNegativeSalary)
	v.Field("hire_date", dto.HireDate).Required().DateLayout(HireDateLayout)
	return v.Validate()
}

// ToDomain builds a domain employee from the payload. Optional fields stay
// nil when omitted; an update overwrites them with whatever was supplied.
func (dto EmployeeDTO) ToDomain() *Employee {
	var salary float64
	if dto.Salary != nil {
		salary = *dto.Salary
	}
	return &Employee{
		Name:       dto.Name,
		Email:      dto.Email,
		Position:   dto.Position,
		Department: dto.Department,
		Salary:     salary,
		HireDate:   dto.HireDate,
		Phone:      dto.Phone,
		Address:    dto.Address,
	}
}
