//go:build integration
// +build integration

package repository

import (
	"testing"

	"call-quality-backend/internal/database/models"
	apperrors "call-quality-backend/internal/errors"
	"call-quality-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// AnalysisRepositoryTestSuite tests the AnalysisRepository
type AnalysisRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite     *testutils.BaseTestSuite
	repo              *AnalysisRepository
	calls             *CallRepository
	users             *UserRepository
	userFactory       *testutils.PortalUserFactory
	callFactory       *testutils.CallRecordFactory
	evaluationFactory *testutils.EvaluationFactory
	commentaryFactory *testutils.CommentaryFactory
}

// SetupSuite runs before all tests in the suite
func (suite *AnalysisRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewAnalysisRepository(suite.baseTestSuite.DB)
	suite.calls = NewCallRepository(suite.baseTestSuite.DB)
	suite.users = NewUserRepository(suite.baseTestSuite.DB)
	suite.userFactory = testutils.NewPortalUserFactory()
	suite.callFactory = testutils.NewCallRecordFactory()
	suite.evaluationFactory = testutils.NewEvaluationFactory()
	suite.commentaryFactory = testutils.NewCommentaryFactory()
}

// TearDownSuite runs after all tests in the suite
func (suite *AnalysisRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *AnalysisRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *AnalysisRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// createCall inserts a user and one of their calls, returning the call id
func (suite *AnalysisRepositoryTestSuite) createCall(callID string) string {
	user := suite.userFactory.Create()
	suite.NoError(suite.users.Upsert(user))
	suite.NoError(suite.calls.Insert(suite.callFactory.WithCallID(user.ManagerID, callID)))
	return callID
}

func (suite *AnalysisRepositoryTestSuite) segments() []models.TranscriptSegment {
	return []models.TranscriptSegment{
		{ID: 0, Start: 0, End: 3.5, Text: "Good afternoon."},
		{ID: 1, Start: 3.5, End: 8.1, Text: "I am calling about your policy."},
	}
}

func (suite *AnalysisRepositoryTestSuite) TestInsertTranscriptAndRead() {
	callID := suite.createCall("call-t1")

	err := suite.repo.InsertTranscript(callID, "Good afternoon. I am calling about your policy.", suite.segments())
	suite.NoError(err)

	text, err := suite.repo.TranscriptText(callID)
	suite.NoError(err)
	suite.Equal("Good afternoon. I am calling about your policy.", text)

	row, err := suite.repo.GetByCallID(callID)
	suite.NoError(err)
	decoded, err := row.DecodeSegments()
	suite.NoError(err)
	suite.Len(decoded, 2)
	suite.Equal("Good afternoon.", decoded[0].Text)
}

func (suite *AnalysisRepositoryTestSuite) TestInsertTranscriptIsWriteOnce() {
	callID := suite.createCall("call-t2")
	suite.NoError(suite.repo.InsertTranscript(callID, "original", nil))

	err := suite.repo.InsertTranscript(callID, "replacement", nil)
	suite.Error(err)
	suite.True(apperrors.IsDuplicate(err))

	text, err := suite.repo.TranscriptText(callID)
	suite.NoError(err)
	suite.Equal("original", text)
}

func (suite *AnalysisRepositoryTestSuite) TestInsertTranscriptUnknownCall() {
	err := suite.repo.InsertTranscript("call-ghost", "text", nil)
	suite.Error(err)
	suite.True(apperrors.IsNotFound(err))
}

func (suite *AnalysisRepositoryTestSuite) TestTranscriptTextNotFound() {
	_, err := suite.repo.TranscriptText("call-ghost")
	suite.Error(err)
	suite.True(apperrors.IsNotFound(err))
}

func (suite *AnalysisRepositoryTestSuite) TestSetScoringSummary() {
	callID := suite.createCall("call-s1")
	suite.NoError(suite.repo.InsertTranscript(callID, "transcript", nil))

	err := suite.repo.SetScoringSummary(callID, "Solid call overall", 7.5,
		[]string{"kept the initiative", "named the product"},
		[]string{"handle objections earlier"})
	suite.NoError(err)

	row, err := suite.repo.GetByCallID(callID)
	suite.NoError(err)
	suite.Equal("Solid call overall", *row.GeneralComment)
	suite.InDelta(7.5, *row.CallQuality, 0.01)
	suite.Equal("- kept the initiative\n- named the product", *row.ManagerResume)
	suite.Equal("- handle objections earlier", *row.Recommendations)
}

func (suite *AnalysisRepositoryTestSuite) TestSetScoringSummaryWithoutTranscript() {
	err := suite.repo.SetScoringSummary("call-ghost", "comment", 5.0, nil, nil)
	suite.Error(err)
	suite.True(apperrors.IsNotFound(err))
}

func (suite *AnalysisRepositoryTestSuite) TestEvaluationIsWriteOnce() {
	callID := suite.createCall("call-e1")

	original := suite.evaluationFactory.Create(callID)
	suite.NoError(suite.repo.InsertEvaluation(original))

	second := suite.evaluationFactory.Create(callID)
	second.Greeting = 1
	err := suite.repo.InsertEvaluation(second)
	suite.Error(err)
	suite.True(apperrors.IsDuplicate(err))

	stored, err := suite.repo.GetEvaluation(callID)
	suite.NoError(err)
	suite.Equal(original.Greeting, stored.Greeting)
}

func (suite *AnalysisRepositoryTestSuite) TestCommentaryIsWriteOnce() {
	callID := suite.createCall("call-c1")

	suite.NoError(suite.repo.InsertCommentary(suite.commentaryFactory.Create(callID)))

	err := suite.repo.InsertCommentary(suite.commentaryFactory.Create(callID))
	suite.Error(err)
	suite.True(apperrors.IsDuplicate(err))
}

func (suite *AnalysisRepositoryTestSuite) TestPendingDispatch() {
	user := suite.userFactory.Create()
	suite.NoError(suite.users.Upsert(user))

	// analyzed but not sent: must appear
	ready := suite.callFactory.Analyzed(user.ManagerID)
	ready.CallID = "call-ready"
	suite.NoError(suite.calls.Insert(ready))
	suite.NoError(suite.repo.InsertTranscript("call-ready", "transcript", nil))
	suite.NoError(suite.repo.SetScoringSummary("call-ready", "fine", 6.0, []string{"ok"}, nil))

	// already sent: must not appear
	sent := suite.callFactory.Analyzed(user.ManagerID)
	sent.CallID = "call-sent"
	done := models.StageStatusDone
	sent.SendStatus = &done
	suite.NoError(suite.calls.Insert(sent))
	suite.NoError(suite.repo.InsertTranscript("call-sent", "transcript", nil))

	// not analyzed yet: must not appear
	raw := suite.callFactory.Transcribed(user.ManagerID)
	raw.CallID = "call-raw"
	suite.NoError(suite.calls.Insert(raw))
	suite.NoError(suite.repo.InsertTranscript("call-raw", "transcript", nil))

	rows, err := suite.repo.PendingDispatch()
	suite.NoError(err)
	suite.Len(rows, 1)
	suite.Equal("call-ready", rows[0].CallID)
	suite.Equal(user.ManagerID, rows[0].ManagerID)
	suite.NotNil(rows[0].CallQuality)
	suite.InDelta(6.0, *rows[0].CallQuality, 0.01)
	suite.Equal("- ok", *rows[0].ManagerResume)
}

// TestAnalysisRepositoryTestSuite runs the test suite
func TestAnalysisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(AnalysisRepositoryTestSuite))
}
