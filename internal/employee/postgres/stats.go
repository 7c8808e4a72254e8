package postgres

import (
	"github.com/frahmantamala/employee-records/internal/employee"
	"github.com/jmoiron/sqlx"
)

// StatsRepository runs the aggregate reporting queries with sqlx over the
// same connection pool the ORM uses.
type StatsRepository struct {
	db *sqlx.DB
}

func NewStatsRepository(db *sqlx.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

func (r *StatsRepository) Collect() (*employee.Statistics, error) {
	stats := &employee.Statistics{
		DepartmentStats: []employee.DepartmentStat{},
	}

	if err := r.db.Get(&stats.TotalEmployees, `SELECT COUNT(*) FROM employees`); err != nil {
		return nil, err
	}

	if err := r.db.Get(&stats.TotalDepartments, `SELECT COUNT(DISTINCT department) FROM employees`); err != nil {
		return nil, err
	}

	// COALESCE keeps the average at 0 for an empty table instead of NULL
	if err := r.db.Get(&stats.AvgSalary, `SELECT COALESCE(AVG(salary), 0) FROM employees`); err != nil {
		return nil, err
	}

	err := r.db.Select(&stats.DepartmentStats, `
		SELECT department, COUNT(*) AS count, AVG(salary) AS avg_salary
		FROM employees
		GROUP BY department
		ORDER BY department`)
	if err != nil {
		return nil, err
	}

	return stats, nil
}
