package testutils

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"call-quality-backend/internal/database/models"
)

// PortalUserFactory provides methods to create test PortalUser data
type PortalUserFactory struct{}

// NewPortalUserFactory creates a new PortalUserFactory
func NewPortalUserFactory() *PortalUserFactory {
	return &PortalUserFactory{}
}

// Create creates a test PortalUser with default values
func (f *PortalUserFactory) Create() *models.PortalUser {
	return &models.PortalUser{
		ManagerID: 100000 + rand.Intn(900000),
		Active:    true,
		FirstName: "Anna",
		LastName:  "Petrova",
		Email:     "anna.petrova@test.com",
	}
}

// WithManagerID sets a custom manager id
func (f *PortalUserFactory) WithManagerID(managerID int) *models.PortalUser {
	user := f.Create()
	user.ManagerID = managerID
	return user
}

// WithName sets custom first and last names
func (f *PortalUserFactory) WithName(first, last string) *models.PortalUser {
	user := f.Create()
	user.FirstName = first
	user.LastName = last
	return user
}

// CallRecordFactory provides methods to create test CallRecord data
type CallRecordFactory struct{}

// NewCallRecordFactory creates a new CallRecordFactory
func NewCallRecordFactory() *CallRecordFactory {
	return &CallRecordFactory{}
}

// Create creates a pending test CallRecord with default values. ManagerID
// must reference an existing portal user; pair it with PortalUserFactory.
func (f *CallRecordFactory) Create(managerID int) *models.CallRecord {
	fileName := "1001_call.mp3"
	return &models.CallRecord{
		CallID:         fmt.Sprintf("call-%d", rand.Int63()),
		ManagerID:      managerID,
		RecordFileID:   "1001",
		Direction:      models.DirectionOutbound,
		StartedAt:      time.Now().Add(-time.Hour).Truncate(time.Second),
		Timezone:       "+03:00",
		Duration:       245,
		DurationVisual: "0:04:05",
		CRMEntityType:  models.CRMEntityContact,
		CRMEntityID:    "501",
		CRMActivityID:  "9001",
		PortalNumber:   "+74950000000",
		PhoneNumber:    "+79160000000",
		FileName:       &fileName,
	}
}

// WithCallID sets a custom call id
func (f *CallRecordFactory) WithCallID(managerID int, callID string) *models.CallRecord {
	call := f.Create(managerID)
	call.CallID = callID
	return call
}

// Transcribed creates a call whose transcription stage is already done
func (f *CallRecordFactory) Transcribed(managerID int) *models.CallRecord {
	call := f.Create(managerID)
	done := models.StageStatusDone
	call.TranscribeStatus = &done
	return call
}

// Analyzed creates a call whose transcription and analysis are done
func (f *CallRecordFactory) Analyzed(managerID int) *models.CallRecord {
	call := f.Transcribed(managerID)
	done := models.StageStatusDone
	call.AnalysisStatus = &done
	return call
}

// AnalysisFactory provides methods to create test CallAnalysis data
type AnalysisFactory struct{}

// NewAnalysisFactory creates a new AnalysisFactory
func NewAnalysisFactory() *AnalysisFactory {
	return &AnalysisFactory{}
}

// Create creates a test CallAnalysis holding only the transcript, the state
// the transcription stage leaves behind
func (f *AnalysisFactory) Create(callID string) *models.CallAnalysis {
	segments, _ := json.Marshal([]models.TranscriptSegment{
		{ID: 0, Start: 0, End: 4.2, Text: "Hello, this is the insurance desk."},
		{ID: 1, Start: 4.2, End: 9.8, Text: "I am calling about your policy renewal."},
	})
	return &models.CallAnalysis{
		CallID:     callID,
		Transcript: "Hello, this is the insurance desk. I am calling about your policy renewal.",
		Segments:   segments,
	}
}

// EvaluationFactory provides methods to create test Evaluation data
type EvaluationFactory struct{}

// NewEvaluationFactory creates a new EvaluationFactory
func NewEvaluationFactory() *EvaluationFactory {
	return &EvaluationFactory{}
}

// Create creates a test Evaluation with mid-range scores
func (f *EvaluationFactory) Create(callID string) *models.Evaluation {
	return &models.Evaluation{
		CallID:       callID,
		Greeting:     8,
		Speech:       7,
		Initiative:   6,
		Need:         7,
		Offer:        8,
		Objection:    5,
		Perseverance: 6,
		Advantages:   7,
		Agreement:    8,
	}
}

// CommentaryFactory provides methods to create test Commentary data
type CommentaryFactory struct{}

// NewCommentaryFactory creates a new CommentaryFactory
func NewCommentaryFactory() *CommentaryFactory {
	return &CommentaryFactory{}
}

// Create creates a test Commentary with a short remark per dimension
func (f *CommentaryFactory) Create(callID string) *models.Commentary {
	c := &models.Commentary{CallID: callID}
	for _, d := range models.Dimensions() {
		switch d {
		case models.DimensionGreeting:
			c.Greeting = "Polite opening"
		case models.DimensionSpeech:
			c.Speech = "Clear pace"
		case models.DimensionInitiative:
			c.Initiative = "Led the conversation"
		case models.DimensionNeed:
			c.Need = "Asked clarifying questions"
		case models.DimensionOffer:
			c.Offer = "Named a concrete product"
		case models.DimensionObjection:
			c.Objection = "Partially addressed"
		case models.DimensionPerseverance:
			c.Perseverance = "Gave up after one objection"
		case models.DimensionAdvantages:
			c.Advantages = "Mentioned coverage terms"
		case models.DimensionAgreement:
			c.Agreement = "Agreed on a follow-up call"
		}
	}
	return c
}
