package employee

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	apperrors "github.com/frahmantamala/employee-records/internal"
	"github.com/frahmantamala/employee-records/internal/transport"
	"github.com/frahmantamala/employee-records/pkg/logger"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	ListEmployees() ([]*Employee, error)
	GetEmployee(id int64) (*Employee, error)
	CreateEmployee(dto EmployeeDTO) (*Employee, error)
	UpdateEmployee(id int64, dto EmployeeDTO) (int64, error)
	DeleteEmployee(id int64) (int64, error)
	GetStatistics() (*Statistics, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     service,
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.Service.ListEmployees()
	if err != nil {
		h.WriteError(w, http.StatusInternalServerError, "failed to list employees")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message": "success",
		"data":    employees,
	})
}

// Get reports a missing record as an empty data field, matching the
// original API, instead of a 404.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.employeeID(w, r)
	if !ok {
		return
	}

	emp, err := h.Service.GetEmployee(id)
	if err != nil {
		h.WriteError(w, http.StatusInternalServerError, "failed to get employee")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message": "success",
		"data":    emp,
	})
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var dto EmployeeDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	emp, err := h.Service.CreateEmployee(dto)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Employee created successfully",
		"data":    map[string]int64{"id": emp.ID},
		"id":      emp.ID,
	})
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.employeeID(w, r)
	if !ok {
		return
	}

	var dto EmployeeDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	changes, err := h.Service.UpdateEmployee(id, dto)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Employee updated successfully",
		"changes": changes,
	})
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.employeeID(w, r)
	if !ok {
		return
	}

	changes, err := h.Service.DeleteEmployee(id)
	if err != nil {
		h.WriteError(w, http.StatusInternalServerError, "failed to delete employee")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Employee deleted successfully",
		"changes": changes,
	})
}

func (h *Handler) Statistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Service.GetStatistics()
	if err != nil {
		h.WriteError(w, http.StatusInternalServerError, "failed to collect statistics")
		return
	}

	h.WriteJSON(w, http.StatusOK, stats)
}

func (h *Handler) employeeID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid employee ID")
		return 0, false
	}
	return id, true
}

func (h *Handler) handleServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrEmailExists) {
		h.WriteError(w, http.StatusBadRequest, "email already exists")
		return
	}
	if appErr, ok := apperrors.IsAppError(err); ok {
		h.WriteError(w, appErr.StatusCode, appErr.Message)
		return
	}
	h.Logger.Error("unhandled service error", "error", err)
	h.WriteError(w, http.StatusInternalServerError, "internal server error")
}
