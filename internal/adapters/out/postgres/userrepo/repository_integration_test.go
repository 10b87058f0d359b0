package userrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"shop/internal/adapters/out/postgres/userrepo"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/user"
	"shop/internal/pkg/errs"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

type plainHasher struct{}

func (plainHasher) Hash(plain string) (string, error) { return "hashed:" + plain, nil }
func (plainHasher) Compare(hash, plain string) bool   { return hash == "hashed:"+plain }

// UserRepositoryIntegrationTestSuite tests the GORM user repository against
// a real PostgreSQL database.
type UserRepositoryIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *userrepo.GormUserRepository
}

func (suite *UserRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&userrepo.UserDTO{})
	suite.Require().NoError(err)

	suite.repo = userrepo.NewGormUserRepository(db)
}

func (suite *UserRepositoryIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE users").Error
	suite.Require().NoError(err)
}

func (suite *UserRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UserRepositoryIntegrationTestSuite) createTestUser(email string) *user.User {
	u, err := user.NewUser(kernel.NewUUID(), email, "Test User", "secret", plainHasher{}, testNow)
	suite.Require().NoError(err)
	return u
}

func (suite *UserRepositoryIntegrationTestSuite) TestSaveAndGetByID() {
	ctx := context.Background()
	u := suite.createTestUser("ada@example.com")

	err := suite.repo.Save(ctx, u)
	suite.Require().NoError(err)

	got, err := suite.repo.GetByID(ctx, u.ID())
	suite.Require().NoError(err)
	suite.True(got.IsEqual(u))
	suite.Equal("ada@example.com", got.Email())
	suite.Equal("Test User", got.Name())
	suite.Equal("hashed:secret", got.PasswordHash())
	suite.True(got.IsActive())
	suite.True(got.CreatedAt().Equal(testNow))
	suite.Nil(got.UpdatedAt())
}

func (suite *UserRepositoryIntegrationTestSuite) TestGetByID_NotFound() {
	ctx := context.Background()

	_, err := suite.repo.GetByID(ctx, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UserRepositoryIntegrationTestSuite) TestGetByEmail_CaseInsensitive() {
	ctx := context.Background()
	u := suite.createTestUser("ada@example.com")
	suite.Require().NoError(suite.repo.Save(ctx, u))

	got, err := suite.repo.GetByEmail(ctx, "  ADA@Example.COM ")
	suite.Require().NoError(err)
	suite.True(got.IsEqual(u))
}

func (suite *UserRepositoryIntegrationTestSuite) TestGetByEmail_NotFound() {
	ctx := context.Background()

	_, err := suite.repo.GetByEmail(ctx, "missing@example.com")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UserRepositoryIntegrationTestSuite) TestSave_UpsertsByID() {
	ctx := context.Background()
	u := suite.createTestUser("ada@example.com")
	suite.Require().NoError(suite.repo.Save(ctx, u))

	newName := "Ada King"
	err := u.Update(user.UpdateRequest{Name: &newName}, testNow.Add(time.Hour))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repo.Save(ctx, u))

	got, err := suite.repo.GetByID(ctx, u.ID())
	suite.Require().NoError(err)
	suite.Equal("Ada King", got.Name())
	suite.Require().NotNil(got.UpdatedAt())
	suite.True(got.UpdatedAt().Equal(testNow.Add(time.Hour)))

	all, err := suite.repo.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Len(all, 1)
}

func (suite *UserRepositoryIntegrationTestSuite) TestGetAll() {
	ctx := context.Background()
	suite.Require().NoError(suite.repo.Save(ctx, suite.createTestUser("a@example.com")))
	suite.Require().NoError(suite.repo.Save(ctx, suite.createTestUser("b@example.com")))

	all, err := suite.repo.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Len(all, 2)
}

func (suite *UserRepositoryIntegrationTestSuite) TestDelete() {
	ctx := context.Background()
	u := suite.createTestUser("ada@example.com")
	suite.Require().NoError(suite.repo.Save(ctx, u))

	existed, err := suite.repo.Delete(ctx, u.ID())
	suite.Require().NoError(err)
	suite.True(existed)

	existed, err = suite.repo.Delete(ctx, u.ID())
	suite.Require().NoError(err)
	suite.False(existed)

	_, err = suite.repo.GetByID(ctx, u.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestUserRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryIntegrationTestSuite))
}
