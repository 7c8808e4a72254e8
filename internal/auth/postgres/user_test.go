package postgres

import (
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/frahmantamala/employee-records/internal/auth"
	userDatamodel "github.com/frahmantamala/employee-records/internal/core/datamodel/user"
)

func TestUserRepository(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "UserRepository Suite")
}

var _ = Describe("UserRepository", func() {
	var (
		db   *gorm.DB
		repo *Repository
	)

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: gormLogger.Default.LogMode(gormLogger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		Expect(db.AutoMigrate(&userDatamodel.User{})).To(Succeed())
		repo = NewRepository(db)
	})

	newUser := func(username, email string) *auth.User {
		return &auth.User{
			Username:     username,
			Email:        email,
			PasswordHash: "$2a$10$fakehashfakehashfakehash",
			Role:         auth.RoleUser,
			CreatedAt:    time.Now(),
		}
	}

	Describe("Create", func() {
		It("should insert a user and fill in the generated id", func() {
			user := newUser("alice", "alice@x.com")
			Expect(repo.Create(user)).To(Succeed())
			Expect(user.ID).To(BeNumerically(">", 0))
		})

		It("should reject a duplicate username", func() {
			Expect(repo.Create(newUser("alice", "alice@x.com"))).To(Succeed())

			err := repo.Create(newUser("alice", "other@x.com"))
			Expect(err).To(Equal(auth.ErrUserExists))
		})

		It("should reject a duplicate email", func() {
			Expect(repo.Create(newUser("alice", "alice@x.com"))).To(Succeed())

			err := repo.Create(newUser("bob", "alice@x.com"))
			Expect(err).To(Equal(auth.ErrUserExists))
		})
	})

	Describe("FindByUsernameOrEmail", func() {
		BeforeEach(func() {
			Expect(repo.Create(newUser("alice", "alice@x.com"))).To(Succeed())
		})

		It("should match by username", func() {
			user, err := repo.FindByUsernameOrEmail("alice")
			Expect(err).NotTo(HaveOccurred())
			Expect(user.Email).To(Equal("alice@x.com"))
		})

		It("should match by email", func() {
			user, err := repo.FindByUsernameOrEmail("alice@x.com")
			Expect(err).NotTo(HaveOccurred())
			Expect(user.Username).To(Equal("alice"))
		})

		It("should report an unknown identifier", func() {
			_, err := repo.FindByUsernameOrEmail("nobody")
			Expect(err).To(Equal(auth.ErrUserNotFound))
		})
	})
})
