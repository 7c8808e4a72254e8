package postgres

import (
	"errors"
	"strings"

	"github.com/frahmantamala/employee-records/internal/auth"
	userDatamodel "github.com/frahmantamala/employee-records/internal/core/datamodel/user"
	"gorm.io/gorm"
)

// Repository implements auth.UserRepository using GORM. The same code path
// serves the sqlite and postgres drivers.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) FindByUsernameOrEmail(identifier string) (*auth.User, error) {
	var record userDatamodel.User
	err := r.db.Where("username = ? OR email = ?", identifier, identifier).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, auth.ErrUserNotFound
		}
		return nil, err
	}
	return fromDataModel(&record), nil
}

func (r *Repository) Create(user *auth.User) error {
	record := toDataModel(user)
	if err := r.db.Create(record).Error; err != nil {
		if isUniqueViolation(err) {
			return auth.ErrUserExists
		}
		return err
	}
	user.ID = record.ID
	return nil
}

// isUniqueViolation recognizes uniqueness errors from both supported
// drivers; gorm only translates them for some dialects.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}

func toDataModel(u *auth.User) *userDatamodel.User {
	return &userDatamodel.User{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		CreatedAt:    u.CreatedAt,
	}
}

func fromDataModel(u *userDatamodel.User) *auth.User {
	return &auth.User{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		CreatedAt:    u.CreatedAt,
	}
}
