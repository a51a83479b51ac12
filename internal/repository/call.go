package repository

import (
	"errors"
	"time"

	"call-quality-backend/internal/database/models"
	apperrors "call-quality-backend/internal/errors"

	"gorm.io/gorm"
)

// CallRepository handles database operations for call records
type CallRepository struct {
	db *gorm.DB
}

// NewCallRepository creates a new call repository
func NewCallRepository(db *gorm.DB) *CallRepository {
	return &CallRepository{db: db}
}

// Insert stores a freshly ingested call with all status columns unset.
// A second insert with the same call_id fails with DuplicateRecordError and
// leaves the first row unmodified.
func (r *CallRepository) Insert(call *models.CallRecord) error {
	if err := r.db.Create(call).Error; err != nil {
		if isUniqueViolation(err) {
			return &apperrors.DuplicateRecordError{Entity: "call", Key: call.CallID}
		}
		if isForeignKeyViolation(err) {
			return &apperrors.NotFoundError{Entity: "portal user"}
		}
		return err
	}
	return nil
}

// GetByCallID retrieves a call record by its Bitrix call id
func (r *CallRepository) GetByCallID(callID string) (*models.CallRecord, error) {
	var call models.CallRecord
	err := r.db.First(&call, "call_id = ?", callID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCallNotFound
		}
		return nil, err
	}
	return &call, nil
}

// RecentCallIDs returns the call ids of the most recently ingested records,
// newest first. Used by ingestion as a cheap dedupe pre-check before the
// unique constraint gets the final word.
func (r *CallRepository) RecentCallIDs(limit int) ([]string, error) {
	var ids []string
	err := r.db.Model(&models.CallRecord{}).
		Order("id DESC").
		Limit(limit).
		Pluck("call_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// LastCallStartedAt returns the start time of the most recently ingested call,
// the ingestion high-water-mark. Nil when the table is empty.
func (r *CallRepository) LastCallStartedAt() (*time.Time, error) {
	var call models.CallRecord
	err := r.db.Order("id DESC").First(&call).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &call.StartedAt, nil
}

// AdvanceStatus marks a stage as done for one call. The guarded update only
// touches rows whose status column is still NULL, so a repeated advance is a
// no-op rather than a silent overwrite; the return value reports whether a
// transition actually happened.
func (r *CallRepository) AdvanceStatus(callID string, stage models.Stage) (bool, error) {
	column := stage.Column()
	if column == "" {
		return false, apperrors.ErrInvalidStage
	}
	res := r.db.Model(&models.CallRecord{}).
		Where("call_id = ? AND "+column+" IS NULL", callID).
		Update(column, models.StageStatusDone)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// SelectPendingTranscription returns up to limit calls whose transcription has
// not completed yet, in store order.
func (r *CallRepository) SelectPendingTranscription(limit int) ([]models.CallRecord, error) {
	var calls []models.CallRecord
	err := r.db.
		Where("transcribe_status IS NULL").
		Limit(limit).
		Find(&calls).Error
	if err != nil {
		return nil, err
	}
	return calls, nil
}

// SelectPendingAnalysis returns up to limit call ids gated on the predecessor
// stage: transcription done, analysis still unset.
func (r *CallRepository) SelectPendingAnalysis(limit int) ([]string, error) {
	var ids []string
	err := r.db.Model(&models.CallRecord{}).
		Where("analysis_status IS NULL AND transcribe_status IS NOT NULL").
		Limit(limit).
		Pluck("call_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// List returns calls with pagination, newest first
func (r *CallRepository) List(limit, offset int) ([]models.CallRecord, int64, error) {
	var calls []models.CallRecord
	var total int64

	if err := r.db.Model(&models.CallRecord{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Model(&models.CallRecord{}).
		Order("id DESC").
		Limit(limit).Offset(offset).
		Find(&calls).Error
	if err != nil {
		return nil, 0, err
	}

	return calls, total, nil
}

// StageCounts holds the pending/done split for one pipeline stage
type StageCounts struct {
	Pending int64 `json:"pending"`
	Done    int64 `json:"done"`
}

// PipelineCounts holds per-stage record counts for the ops API
type PipelineCounts struct {
	Total      int64       `json:"total"`
	Transcribe StageCounts `json:"transcribe"`
	Analysis   StageCounts `json:"analysis"`
	Send       StageCounts `json:"send"`
}

// Counts aggregates how many records sit on each side of every stage
func (r *CallRepository) Counts() (*PipelineCounts, error) {
	counts := &PipelineCounts{}
	if err := r.db.Model(&models.CallRecord{}).Count(&counts.Total).Error; err != nil {
		return nil, err
	}
	for _, stage := range []struct {
		column string
		out    *StageCounts
	}{
		{models.StageTranscribe.Column(), &counts.Transcribe},
		{models.StageAnalysis.Column(), &counts.Analysis},
		{models.StageSend.Column(), &counts.Send},
	} {
		if err := r.db.Model(&models.CallRecord{}).
			Where(stage.column + " IS NOT NULL").
			Count(&stage.out.Done).Error; err != nil {
			return nil, err
		}
		stage.out.Pending = counts.Total - stage.out.Done
	}
	return counts, nil
}
