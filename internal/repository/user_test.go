//go:build integration
// +build integration

package repository

import (
	"testing"

	apperrors "call-quality-backend/internal/errors"
	"call-quality-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// UserRepositoryTestSuite tests the UserRepository
type UserRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *UserRepository
	factory       *testutils.PortalUserFactory
}

// SetupSuite runs before all tests in the suite
func (suite *UserRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewUserRepository(suite.baseTestSuite.DB)
	suite.factory = testutils.NewPortalUserFactory()
}

// TearDownSuite runs after all tests in the suite
func (suite *UserRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *UserRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *UserRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *UserRepositoryTestSuite) TestUpsertAndGet() {
	user := suite.factory.WithManagerID(777)
	suite.NoError(suite.repo.Upsert(user))

	stored, err := suite.repo.GetByManagerID(777)
	suite.NoError(err)
	suite.Equal("Anna", stored.FirstName)
	suite.Equal("Petrova", stored.LastName)
	suite.True(stored.Active)
}

func (suite *UserRepositoryTestSuite) TestUpsertRefreshesSnapshot() {
	user := suite.factory.WithManagerID(778)
	suite.NoError(suite.repo.Upsert(user))

	updated := suite.factory.WithManagerID(778)
	updated.FirstName = "Maria"
	updated.Active = false
	suite.NoError(suite.repo.Upsert(updated))

	stored, err := suite.repo.GetByManagerID(778)
	suite.NoError(err)
	suite.Equal("Maria", stored.FirstName)
	suite.False(stored.Active)

	// still one row per manager
	ids, err := suite.repo.ManagerIDs()
	suite.NoError(err)
	suite.Equal([]int{778}, ids)
}

func (suite *UserRepositoryTestSuite) TestGetByManagerIDNotFound() {
	user, err := suite.repo.GetByManagerID(424242)
	suite.Error(err)
	suite.True(apperrors.IsNotFound(err))
	suite.Nil(user)
}

func (suite *UserRepositoryTestSuite) TestManagerIDs() {
	suite.NoError(suite.repo.Upsert(suite.factory.WithManagerID(101)))
	suite.NoError(suite.repo.Upsert(suite.factory.WithManagerID(102)))

	ids, err := suite.repo.ManagerIDs()
	suite.NoError(err)
	suite.ElementsMatch([]int{101, 102}, ids)
}

// TestUserRepositoryTestSuite runs the test suite
func TestUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}
