package employee

import "time"

type Employee struct {
	ID         int64     `gorm:"primaryKey"`
	Name       string    `gorm:"column:name;not null"`
	Email      string    `gorm:"column:email;uniqueIndex;not null"`
	Position   string    `gorm:"column:position;not null"`
	Department string    `gorm:"column:department;not null"`
	Salary     float64   `gorm:"column:salary;not null"`
	HireDate   string    `gorm:"column:hire_date;not null"`
	Phone      *string   `gorm:"column:phone"`
	Address    *string   `gorm:"column:address"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (Employee) TableName() string {
	return "employees"
}
