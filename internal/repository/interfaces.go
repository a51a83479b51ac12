package repository

import (
	"time"

	"call-quality-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// CallRepositoryInterface defines the interface for call record operations
type CallRepositoryInterface interface {
	Insert(call *models.CallRecord) error
	GetByCallID(callID string) (*models.CallRecord, error)
	RecentCallIDs(limit int) ([]string, error)
	LastCallStartedAt() (*time.Time, error)
	AdvanceStatus(callID string, stage models.Stage) (bool, error)
	SelectPendingTranscription(limit int) ([]models.CallRecord, error)
	SelectPendingAnalysis(limit int) ([]string, error)
	List(limit, offset int) ([]models.CallRecord, int64, error)
	Counts() (*PipelineCounts, error)
}

// UserRepositoryInterface defines the interface for portal user operations
type UserRepositoryInterface interface {
	Upsert(user *models.PortalUser) error
	GetByManagerID(managerID int) (*models.PortalUser, error)
	ManagerIDs() ([]int, error)
}

// AnalysisRepositoryInterface defines the interface for analysis, evaluation
// and commentary operations
type AnalysisRepositoryInterface interface {
	InsertTranscript(callID, transcript string, segments []models.TranscriptSegment) error
	TranscriptText(callID string) (string, error)
	GetByCallID(callID string) (*models.CallAnalysis, error)
	SetScoringSummary(callID, generalComment string, callQuality float64, resume, recommendations []string) error
	SetScoringError(callID, message string) error
	InsertEvaluation(evaluation *models.Evaluation) error
	InsertCommentary(commentary *models.Commentary) error
	GetEvaluation(callID string) (*models.Evaluation, error)
	GetCommentary(callID string) (*models.Commentary, error)
	PendingDispatch() ([]DispatchRow, error)
}
