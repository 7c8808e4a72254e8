package auth

import (
	"errors"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// UserRepository is the credential store contract.
type UserRepository interface {
	// FindByUsernameOrEmail matches the identifier against both columns.
	FindByUsernameOrEmail(identifier string) (*User, error)
	// Create inserts the user and fills in the generated ID. Uniqueness
	// violations on username or email surface as ErrUserExists.
	Create(user *User) error
}

// ErrUserNotFound is returned by repositories when no account matches.
var ErrUserNotFound = errors.New("user not found")

type Service struct {
	userRepo       UserRepository
	tokenGenerator TokenGenerator
	bcryptCost     int
	logger         *slog.Logger
}

func NewService(userRepo UserRepository, tokenGen TokenGenerator, bcryptCost int, logger *slog.Logger) *Service {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		userRepo:       userRepo,
		tokenGenerator: tokenGen,
		bcryptCost:     bcryptCost,
		logger:         logger,
	}
}

// Register validates the payload, hashes the password and stores the new
// account. The plain password is never persisted.
func (s *Service) Register(dto RegisterDTO) (int64, error) {
	if err := dto.Validate(); err != nil {
		return 0, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), s.bcryptCost)
	if err != nil {
		return 0, err
	}

	user := &User{
		Username:     dto.Username,
		Email:        dto.Email,
		PasswordHash: string(hash),
		Role:         RoleUser,
		CreatedAt:    time.Now(),
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, ErrUserExists) {
			s.logger.Warn("registration rejected: duplicate username or email", "username", dto.Username)
			return 0, ErrUserExists
		}
		s.logger.Error("failed to create user", "error", err, "username", dto.Username)
		return 0, err
	}

	s.logger.Info("user registered", "user_id", user.ID, "username", user.Username)
	return user.ID, nil
}

// Authenticate verifies credentials and issues a session token. The
// identifier may be a username or an email.
func (s *Service) Authenticate(dto LoginDTO) (string, *User, error) {
	if err := dto.Validate(); err != nil {
		return "", nil, err
	}

	user, err := s.userRepo.FindByUsernameOrEmail(dto.Username)
	if err != nil {
		// same failure for unknown user and bad password
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(dto.Password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokenGenerator.Generate(user)
	if err != nil {
		s.logger.Error("failed to sign token", "error", err, "user_id", user.ID)
		return "", nil, err
	}

	s.logger.Info("login succeeded", "user_id", user.ID, "username", user.Username)
	return token, user, nil
}

// ValidateAccessToken verifies a bearer token and returns its claims.
func (s *Service) ValidateAccessToken(tokenString string) (*Claims, error) {
	return s.tokenGenerator.Validate(tokenString)
}
