package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"call-quality-backend/internal/database/models"
	apperrors "call-quality-backend/internal/errors"

	"gorm.io/gorm"
)

// AnalysisRepository handles database operations for call analysis results:
// the transcript row, the scoring summary and the rubric tables.
type AnalysisRepository struct {
	db *gorm.DB
}

// NewAnalysisRepository creates a new analysis repository
func NewAnalysisRepository(db *gorm.DB) *AnalysisRepository {
	return &AnalysisRepository{db: db}
}

// InsertTranscript creates the call_analysis row with the transcription text
// and the time-aligned segments. Write-once per call; the call must already
// be ingested.
func (r *AnalysisRepository) InsertTranscript(callID, transcript string, segments []models.TranscriptSegment) error {
	raw, err := json.Marshal(segments)
	if err != nil {
		return fmt.Errorf("encode segments: %w", err)
	}
	row := &models.CallAnalysis{
		CallID:     callID,
		Transcript: transcript,
		Segments:   raw,
	}
	if err := r.db.Create(row).Error; err != nil {
		if isUniqueViolation(err) {
			return &apperrors.DuplicateRecordError{Entity: "transcript", Key: callID}
		}
		if isForeignKeyViolation(err) {
			return apperrors.ErrCallNotFound
		}
		return err
	}
	return nil
}

// TranscriptText returns the stored transcript for a call
func (r *AnalysisRepository) TranscriptText(callID string) (string, error) {
	var row models.CallAnalysis
	err := r.db.Select("transcribe_call").First(&row, "call_id = ?", callID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.ErrTranscriptNotFound
		}
		return "", err
	}
	return row.Transcript, nil
}

// GetByCallID retrieves the full analysis row for a call
func (r *AnalysisRepository) GetByCallID(callID string) (*models.CallAnalysis, error) {
	var row models.CallAnalysis
	err := r.db.First(&row, "call_id = ?", callID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAnalysisNotFound
		}
		return nil, err
	}
	return &row, nil
}

// SetScoringSummary fills the scoring fields on an existing analysis row.
// Resume and recommendation remarks are stored as "- " prefixed lines, the
// format the CRM write-back expects.
func (r *AnalysisRepository) SetScoringSummary(callID, generalComment string, callQuality float64, resume, recommendations []string) error {
	res := r.db.Model(&models.CallAnalysis{}).
		Where("call_id = ?", callID).
		Updates(map[string]interface{}{
			"general_comment": generalComment,
			"call_quality":    callQuality,
			"manager_resume":  joinRemarks(resume),
			"recommendations": joinRemarks(recommendations),
			"updated_at":      time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrAnalysisNotFound
	}
	return nil
}

// SetScoringError records a scoring failure message on the analysis row so
// operators can see why a call never advanced.
func (r *AnalysisRepository) SetScoringError(callID, message string) error {
	res := r.db.Model(&models.CallAnalysis{}).
		Where("call_id = ?", callID).
		Update("general_comment", message)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrAnalysisNotFound
	}
	return nil
}

// InsertEvaluation stores the per-dimension scores for a call. A second
// insert for the same call_id fails with DuplicateRecordError and leaves the
// original scores untouched.
func (r *AnalysisRepository) InsertEvaluation(evaluation *models.Evaluation) error {
	if err := r.db.Create(evaluation).Error; err != nil {
		if isUniqueViolation(err) {
			return &apperrors.DuplicateRecordError{Entity: "evaluation", Key: evaluation.CallID}
		}
		if isForeignKeyViolation(err) {
			return apperrors.ErrCallNotFound
		}
		return err
	}
	return nil
}

// InsertCommentary stores the per-dimension comments for a call, write-once
// like InsertEvaluation.
func (r *AnalysisRepository) InsertCommentary(commentary *models.Commentary) error {
	if err := r.db.Create(commentary).Error; err != nil {
		if isUniqueViolation(err) {
			return &apperrors.DuplicateRecordError{Entity: "commentary", Key: commentary.CallID}
		}
		if isForeignKeyViolation(err) {
			return apperrors.ErrCallNotFound
		}
		return err
	}
	return nil
}

// GetEvaluation retrieves the rubric scores for a call
func (r *AnalysisRepository) GetEvaluation(callID string) (*models.Evaluation, error) {
	var row models.Evaluation
	err := r.db.First(&row, "call_id = ?", callID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &apperrors.NotFoundError{Entity: "evaluation"}
		}
		return nil, err
	}
	return &row, nil
}

// GetCommentary retrieves the rubric comments for a call
func (r *AnalysisRepository) GetCommentary(callID string) (*models.Commentary, error) {
	var row models.Commentary
	err := r.db.First(&row, "call_id = ?", callID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &apperrors.NotFoundError{Entity: "commentary"}
		}
		return nil, err
	}
	return &row, nil
}

// DispatchRow is one analyzed call joined with its scoring summary, ready to
// be posted back to the CRM.
type DispatchRow struct {
	CallID          string               `json:"call_id"`
	ManagerID       int                  `json:"manager_id"`
	PortalUserName  *string              `json:"portal_user_name"`
	Direction       models.CallDirection `json:"direction"`
	StartedAt       time.Time            `json:"started_at"`
	DurationVisual  string               `json:"duration_visual"`
	DealStage       *string              `json:"deal_stage"`
	DealURL         *string              `json:"deal_url"`
	AnalysisStatus  *models.StageStatus  `json:"analysis_status"`
	GeneralComment  *string              `json:"general_comment"`
	CallQuality     *float64             `json:"call_quality"`
	ManagerResume   *string              `json:"manager_resume"`
	Recommendations *string              `json:"recommendations"`
}

// PendingDispatch returns every call whose analysis is done but whose result
// has not been posted back to the CRM yet.
func (r *AnalysisRepository) PendingDispatch() ([]DispatchRow, error) {
	var rows []DispatchRow
	err := r.db.Table("b24_calls").
		Select(`b24_calls.call_id,
			b24_calls.manager_id,
			b24_calls.portal_user_name,
			b24_calls.type AS direction,
			b24_calls.date AS started_at,
			b24_calls.duration_visual,
			b24_calls.stage AS deal_stage,
			b24_calls.deal_url,
			b24_calls.analysis_status,
			call_analysis.general_comment,
			call_analysis.call_quality,
			call_analysis.manager_resume,
			call_analysis.recommendations`).
		Joins("JOIN call_analysis ON call_analysis.call_id = b24_calls.call_id").
		Where("b24_calls.analysis_status IS NOT NULL AND b24_calls.send_status IS NULL").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func joinRemarks(remarks []string) string {
	if len(remarks) == 0 {
		return ""
	}
	lines := make([]string, 0, len(remarks))
	for _, remark := range remarks {
		lines = append(lines, "- "+remark)
	}
	return strings.Join(lines, "\n")
}
