package employee_test

import (
	"log/slog"
	"os"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	apperrors "github.com/frahmantamala/employee-records/internal"
	"github.com/frahmantamala/employee-records/internal/employee"
)

func TestEmployeeService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "EmployeeService Suite")
}

type mockRepository struct {
	employees map[int64]*employee.Employee
	nextID    int64
	listErr   error
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		employees: make(map[int64]*employee.Employee),
		nextID:    1,
	}
}

func (m *mockRepository) List() ([]*employee.Employee, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]*employee.Employee, 0, len(m.employees))
	for _, e := range m.employees {
		out = append(out, e)
	}
	return out, nil
}

func (m *mockRepository) GetByID(id int64) (*employee.Employee, error) {
	return m.employees[id], nil
}

func (m *mockRepository) Create(emp *employee.Employee) error {
	for _, e := range m.employees {
		if e.Email == emp.Email {
			return employee.ErrEmailExists
		}
	}
	emp.ID = m.nextID
	m.nextID++
	m.employees[emp.ID] = emp
	return nil
}

func (m *mockRepository) Update(id int64, emp *employee.Employee) (int64, error) {
	existing, ok := m.employees[id]
	if !ok {
		return 0, nil
	}
	for otherID, e := range m.employees {
		if otherID != id && e.Email == emp.Email {
			return 0, employee.ErrEmailExists
		}
	}
	emp.ID = id
	emp.CreatedAt = existing.CreatedAt
	m.employees[id] = emp
	return 1, nil
}

func (m *mockRepository) Delete(id int64) (int64, error) {
	if _, ok := m.employees[id]; !ok {
		return 0, nil
	}
	delete(m.employees, id)
	return 1, nil
}

type mockStatsRepository struct {
	stats *employee.Statistics
}

func (m *mockStatsRepository) Collect() (*employee.Statistics, error) {
	return m.stats, nil
}

func floatPtr(f float64) *float64 { return &f }

func validDTO() employee.EmployeeDTO {
	return employee.EmployeeDTO{
		Name:       "Raj Sharma",
		Email:      "raj.sharma@company.com",
		Position:   "Software Engineer",
		Department: "Engineering",
		Salary:     floatPtr(750000),
		HireDate:   "2023-01-15",
	}
}

var _ = Describe("EmployeeService", func() {
	var (
		repo    *mockRepository
		service *employee.Service
	)

	BeforeEach(func() {
		repo = newMockRepository()
		statsRepo := &mockStatsRepository{stats: &employee.Statistics{TotalEmployees: 3}}
		slogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = employee.NewService(repo, statsRepo, slogger)
	})

	Describe("CreateEmployee", func() {
		It("should store a valid employee and assign an id", func() {
			emp, err := service.CreateEmployee(validDTO())
			Expect(err).NotTo(HaveOccurred())
			Expect(emp.ID).To(BeNumerically(">", 0))
			Expect(emp.CreatedAt).To(BeTemporally("~", time.Now(), time.Second))
		})

		It("should accept a zero salary", func() {
			dto := validDTO()
			dto.Salary = floatPtr(0)

			emp, err := service.CreateEmployee(dto)
			Expect(err).NotTo(HaveOccurred())
			Expect(emp.Salary).To(Equal(float64(0)))
		})

		It("should reject a negative salary", func() {
			dto := validDTO()
			dto.Salary = floatPtr(-1)

			_, err := service.CreateEmployee(dto)
			Expect(err).To(HaveOccurred())

			appErr, ok := apperrors.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.StatusCode).To(Equal(400))
		})

		It("should reject a missing salary field", func() {
			dto := validDTO()
			dto.Salary = nil

			_, err := service.CreateEmployee(dto)
			Expect(err).To(HaveOccurred())
		})

		It("should reject missing required string fields", func() {
			dto := validDTO()
			dto.Name = ""

			_, err := service.CreateEmployee(dto)
			Expect(err).To(HaveOccurred())

			appErr, ok := apperrors.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.StatusCode).To(Equal(400))
		})

		It("should reject a hire date that is not a calendar date", func() {
			dto := validDTO()
			dto.HireDate = "15-01-2023"

			_, err := service.CreateEmployee(dto)
			Expect(err).To(HaveOccurred())
		})

		It("should surface a duplicate email", func() {
			_, err := service.CreateEmployee(validDTO())
			Expect(err).NotTo(HaveOccurred())

			_, err = service.CreateEmployee(validDTO())
			Expect(err).To(Equal(employee.ErrEmailExists))
		})
	})

	Describe("UpdateEmployee", func() {
		It("should report one change for an existing record", func() {
			emp, err := service.CreateEmployee(validDTO())
			Expect(err).NotTo(HaveOccurred())

			dto := validDTO()
			dto.Position = "Senior Software Engineer"

			changes, err := service.UpdateEmployee(emp.ID, dto)
			Expect(err).NotTo(HaveOccurred())
			Expect(changes).To(Equal(int64(1)))
		})

		It("should report zero changes for an unknown id", func() {
			changes, err := service.UpdateEmployee(9999, validDTO())
			Expect(err).NotTo(HaveOccurred())
			Expect(changes).To(Equal(int64(0)))
		})

		It("should validate the payload before touching the store", func() {
			emp, err := service.CreateEmployee(validDTO())
			Expect(err).NotTo(HaveOccurred())

			dto := validDTO()
			dto.Email = ""

			_, err = service.UpdateEmployee(emp.ID, dto)
			Expect(err).To(HaveOccurred())
			Expect(repo.employees[emp.ID].Email).To(Equal("raj.sharma@company.com"))
		})
	})

	Describe("DeleteEmployee", func() {
		It("should report one change for an existing record and zero afterwards", func() {
			emp, err := service.CreateEmployee(validDTO())
			Expect(err).NotTo(HaveOccurred())

			changes, err := service.DeleteEmployee(emp.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(changes).To(Equal(int64(1)))

			changes, err = service.DeleteEmployee(emp.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(changes).To(Equal(int64(0)))
		})
	})

	Describe("GetEmployee", func() {
		It("should return nil without error for an unknown id", func() {
			emp, err := service.GetEmployee(42)
			Expect(err).NotTo(HaveOccurred())
			Expect(emp).To(BeNil())
		})
	})

	Describe("GetStatistics", func() {
		It("should pass through the collected statistics", func() {
			stats, err := service.GetStatistics()
			Expect(err).NotTo(HaveOccurred())
			Expect(stats.TotalEmployees).To(Equal(int64(3)))
		})
	})
})
