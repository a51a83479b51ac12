package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"call-quality-backend/internal/api/handlers"
	"call-quality-backend/internal/database/models"
	apperrors "call-quality-backend/internal/errors"
	"call-quality-backend/internal/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// CallsHandlerTestSuite defines the test suite for CallsHandler
type CallsHandlerTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockCalls    *mocks.MockCallRepositoryInterface
	mockAnalyses *mocks.MockAnalysisRepositoryInterface
	handler      *handlers.CallsHandler
	router       *gin.Engine
}

func (suite *CallsHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockCalls = mocks.NewMockCallRepositoryInterface(suite.ctrl)
	suite.mockAnalyses = mocks.NewMockAnalysisRepositoryInterface(suite.ctrl)
	suite.handler = handlers.NewCallsHandler(suite.mockCalls, suite.mockAnalyses)

	suite.router = gin.New()
	suite.router.GET("/calls", suite.handler.ListCalls)
	suite.router.GET("/calls/:call_id", suite.handler.GetCall)
}

func (suite *CallsHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *CallsHandlerTestSuite) TestListCalls_DefaultPagination() {
	calls := []models.CallRecord{{CallID: "call-1", ManagerID: 42}}
	suite.mockCalls.EXPECT().List(50, 0).Return(calls, int64(1), nil)

	req := httptest.NewRequest(http.MethodGet, "/calls", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got handlers.CallListResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Equal(int64(1), got.Total)
	suite.Len(got.Calls, 1)
	suite.Equal("call-1", got.Calls[0].CallID)
}

func (suite *CallsHandlerTestSuite) TestListCalls_CustomPage() {
	suite.mockCalls.EXPECT().List(10, 20).Return(nil, int64(0), nil)

	req := httptest.NewRequest(http.MethodGet, "/calls?page=3&page_size=10", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *CallsHandlerTestSuite) TestListCalls_RepositoryError() {
	suite.mockCalls.EXPECT().List(50, 0).Return(nil, int64(0), errors.New("db down"))

	req := httptest.NewRequest(http.MethodGet, "/calls", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusInternalServerError, w.Code)
}

func (suite *CallsHandlerTestSuite) TestGetCall_FullDetail() {
	call := &models.CallRecord{CallID: "call-1", ManagerID: 42}
	comment := "Good call"
	analysis := &models.CallAnalysis{CallID: "call-1", Transcript: "hello", GeneralComment: &comment}
	evaluation := &models.Evaluation{CallID: "call-1", Greeting: 9}
	commentary := &models.Commentary{CallID: "call-1", Greeting: "Warm opening"}

	suite.mockCalls.EXPECT().GetByCallID("call-1").Return(call, nil)
	suite.mockAnalyses.EXPECT().GetByCallID("call-1").Return(analysis, nil)
	suite.mockAnalyses.EXPECT().GetEvaluation("call-1").Return(evaluation, nil)
	suite.mockAnalyses.EXPECT().GetCommentary("call-1").Return(commentary, nil)

	req := httptest.NewRequest(http.MethodGet, "/calls/call-1", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got handlers.CallDetailResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Equal("call-1", got.Call.CallID)
	suite.Equal("hello", got.Analysis.Transcript)
	suite.Equal(9, got.Evaluation.Greeting)
	suite.Equal("Warm opening", got.Commentary.Greeting)
}

func (suite *CallsHandlerTestSuite) TestGetCall_PendingStagesAreOmitted() {
	call := &models.CallRecord{CallID: "call-raw", ManagerID: 42}

	suite.mockCalls.EXPECT().GetByCallID("call-raw").Return(call, nil)
	suite.mockAnalyses.EXPECT().GetByCallID("call-raw").Return(nil, apperrors.ErrAnalysisNotFound)
	suite.mockAnalyses.EXPECT().GetEvaluation("call-raw").Return(nil, apperrors.ErrAnalysisNotFound)
	suite.mockAnalyses.EXPECT().GetCommentary("call-raw").Return(nil, apperrors.ErrAnalysisNotFound)

	req := httptest.NewRequest(http.MethodGet, "/calls/call-raw", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got handlers.CallDetailResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Equal("call-raw", got.Call.CallID)
	suite.Nil(got.Analysis)
	suite.Nil(got.Evaluation)
	suite.Nil(got.Commentary)
}

func (suite *CallsHandlerTestSuite) TestGetCall_NotFound() {
	suite.mockCalls.EXPECT().GetByCallID("missing").Return(nil, apperrors.ErrCallNotFound)

	req := httptest.NewRequest(http.MethodGet, "/calls/missing", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestCallsHandlerTestSuite runs the test suite
func TestCallsHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CallsHandlerTestSuite))
}
