package auth_test

import (
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/employee-records/internal/auth"
)

func TestAuthService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "AuthService Suite")
}

// Mock repository for testing
type mockUserRepository struct {
	users       map[string]*auth.User
	createError error
	nextID      int64
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{
		users:  make(map[string]*auth.User),
		nextID: 1,
	}
}

func (m *mockUserRepository) FindByUsernameOrEmail(identifier string) (*auth.User, error) {
	for _, u := range m.users {
		if u.Username == identifier || u.Email == identifier {
			return u, nil
		}
	}
	return nil, auth.ErrUserNotFound
}

func (m *mockUserRepository) Create(user *auth.User) error {
	if m.createError != nil {
		return m.createError
	}
	for _, u := range m.users {
		if u.Username == user.Username || u.Email == user.Email {
			return auth.ErrUserExists
		}
	}
	user.ID = m.nextID
	m.nextID++
	m.users[user.Username] = user
	return nil
}

var _ = Describe("AuthService", func() {
	var (
		repo    *mockUserRepository
		service *auth.Service
	)

	BeforeEach(func() {
		repo = newMockUserRepository()
		tokenGen := auth.NewJWTTokenGenerator("test-secret", 24*time.Hour)
		slogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = auth.NewService(repo, tokenGen, 0, slogger)
	})

	Describe("Register", func() {
		It("should create a user and return its id", func() {
			id, err := service.Register(auth.RegisterDTO{
				Username: "alice",
				Email:    "alice@x.com",
				Password: "pw123456",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(id).To(BeNumerically(">", 0))
		})

		It("should hash the password before storage", func() {
			_, err := service.Register(auth.RegisterDTO{
				Username: "alice",
				Email:    "alice@x.com",
				Password: "pw123456",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(repo.users["alice"].PasswordHash).NotTo(BeEmpty())
			Expect(repo.users["alice"].PasswordHash).NotTo(Equal("pw123456"))
		})

		It("should assign the default user role", func() {
			_, err := service.Register(auth.RegisterDTO{
				Username: "alice",
				Email:    "alice@x.com",
				Password: "pw123456",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(repo.users["alice"].Role).To(Equal(auth.RoleUser))
		})

		It("should reject a duplicate username without creating a second user", func() {
			_, err := service.Register(auth.RegisterDTO{Username: "alice", Email: "alice@x.com", Password: "pw123456"})
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Register(auth.RegisterDTO{Username: "alice", Email: "other@x.com", Password: "pw123456"})
			Expect(errors.Is(err, auth.ErrUserExists)).To(BeTrue())
			Expect(repo.users).To(HaveLen(1))
		})

		It("should reject a duplicate email", func() {
			_, err := service.Register(auth.RegisterDTO{Username: "alice", Email: "alice@x.com", Password: "pw123456"})
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Register(auth.RegisterDTO{Username: "bob", Email: "alice@x.com", Password: "pw123456"})
			Expect(errors.Is(err, auth.ErrUserExists)).To(BeTrue())
		})

		It("should reject missing fields with a validation error", func() {
			_, err := service.Register(auth.RegisterDTO{Username: "alice", Email: "alice@x.com"})
			var vErr auth.ValidationError
			Expect(errors.As(err, &vErr)).To(BeTrue())
		})
	})

	Describe("Authenticate", func() {
		BeforeEach(func() {
			_, err := service.Register(auth.RegisterDTO{
				Username: "alice",
				Email:    "alice@x.com",
				Password: "pw123456",
			})
			Expect(err).NotTo(HaveOccurred())
		})

		It("should issue a token for valid username credentials", func() {
			token, user, err := service.Authenticate(auth.LoginDTO{Username: "alice", Password: "pw123456"})
			Expect(err).NotTo(HaveOccurred())
			Expect(token).NotTo(BeEmpty())
			Expect(user.Username).To(Equal("alice"))
		})

		It("should accept the email in the username field", func() {
			token, _, err := service.Authenticate(auth.LoginDTO{Username: "alice@x.com", Password: "pw123456"})
			Expect(err).NotTo(HaveOccurred())
			Expect(token).NotTo(BeEmpty())
		})

		It("should reject a wrong password", func() {
			_, _, err := service.Authenticate(auth.LoginDTO{Username: "alice", Password: "wrong"})
			Expect(err).To(Equal(auth.ErrInvalidCredentials))
		})

		It("should reject an unknown user with the same error as a bad password", func() {
			_, _, err := service.Authenticate(auth.LoginDTO{Username: "nobody", Password: "pw123456"})
			Expect(err).To(Equal(auth.ErrInvalidCredentials))
		})
	})

	Describe("ValidateAccessToken", func() {
		It("should accept a freshly issued token and return its claims", func() {
			_, err := service.Register(auth.RegisterDTO{Username: "alice", Email: "alice@x.com", Password: "pw123456"})
			Expect(err).NotTo(HaveOccurred())

			token, user, err := service.Authenticate(auth.LoginDTO{Username: "alice", Password: "pw123456"})
			Expect(err).NotTo(HaveOccurred())

			claims, err := service.ValidateAccessToken(token)
			Expect(err).NotTo(HaveOccurred())
			Expect(claims.UserID).To(Equal(user.ID))
			Expect(claims.Username).To(Equal("alice"))
			Expect(claims.Role).To(Equal(auth.RoleUser))
		})

		It("should reject a malformed token", func() {
			_, err := service.ValidateAccessToken("not-a-token")
			Expect(err).To(Equal(auth.ErrInvalidToken))
		})
	})
})

var _ = Describe("JWTTokenGenerator", func() {
	user := &auth.User{ID: 7, Username: "alice", Role: auth.RoleUser}

	It("should round-trip claims through generate and validate", func() {
		gen := auth.NewJWTTokenGenerator("secret", 24*time.Hour)

		token, err := gen.Generate(user)
		Expect(err).NotTo(HaveOccurred())

		claims, err := gen.Validate(token)
		Expect(err).NotTo(HaveOccurred())
		Expect(claims.UserID).To(Equal(int64(7)))
		Expect(claims.Username).To(Equal("alice"))
		Expect(claims.ExpiresAt.Time).To(BeTemporally("~", time.Now().Add(24*time.Hour), time.Minute))
	})

	It("should reject a token past its expiry", func() {
		gen := auth.NewJWTTokenGenerator("secret", -time.Hour)

		token, err := gen.Generate(user)
		Expect(err).NotTo(HaveOccurred())

		_, err = gen.Validate(token)
		Expect(err).To(Equal(auth.ErrTokenExpired))
	})

	It("should reject a token signed with a different secret", func() {
		gen := auth.NewJWTTokenGenerator("secret", 24*time.Hour)
		other := auth.NewJWTTokenGenerator("other-secret", 24*time.Hour)

		token, err := other.Generate(user)
		Expect(err).NotTo(HaveOccurred())

		_, err = gen.Validate(token)
		Expect(err).To(Equal(auth.ErrInvalidToken))
	})
})
