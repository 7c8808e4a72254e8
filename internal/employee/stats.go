package employee

// DepartmentStat is one row of the per-department breakdown.
type DepartmentStat struct {
	Department string  `db:"department" json:"department"`
	Count      int64   `db:"count" json:"count"`
	AvgSalary  float64 `db:"avg_salary" json:"avg_salary"`
}

// Statistics is the aggregate reporting view over all employees.
type Statistics struct {
	TotalEmployees   int64            `json:"totalEmployees"`
	TotalDepartments int64            `json:"totalDepartments"`
	AvgSalary        float64          `json:"avgSalary"`
	DepartmentStats  []DepartmentStat `json:"departmentStats"`
}
