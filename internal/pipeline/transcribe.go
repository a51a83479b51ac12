package pipeline

import (
	"context"
	"fmt"
	"path/filepath"

	"call-quality-backend/internal/config"
	"call-quality-backend/internal/database/models"
	apperrors "call-quality-backend/internal/errors"
	"call-quality-backend/internal/logger"
	"call-quality-backend/internal/repository"
	"call-quality-backend/internal/transcribe"
)

// TranscribeDriver turns downloaded recordings into stored transcripts. Each
// cycle takes a bounded batch of calls whose transcribe status is still
// pending, runs each through the speech-to-text engine and advances the
// status on success.
type TranscribeDriver struct {
	calls    repository.CallRepositoryInterface
	analyses repository.AnalysisRepositoryInterface
	engine   transcribe.Engine
	metrics  *Metrics
	log      *logger.Logger

	audioDir  string
	language  string
	batchSize int
}

// NewTranscribeDriver creates the transcription driver
func NewTranscribeDriver(
	cfg *config.Config,
	calls repository.CallRepositoryInterface,
	analyses repository.AnalysisRepositoryInterface,
	engine transcribe.Engine,
	metrics *Metrics,
) *TranscribeDriver {
	return &TranscribeDriver{
		calls:     calls,
		analyses:  analyses,
		engine:    engine,
		metrics:   metrics,
		log:       logger.ForStage("transcribe"),
		audioDir:  cfg.AudioDir,
		language:  cfg.WhisperLanguage,
		batchSize: cfg.TranscribeBatchSize,
	}
}

// Name returns the stage name
func (d *TranscribeDriver) Name() string {
	return "transcribe"
}

// Cycle transcribes one batch of pending calls. A failure on one call leaves
// that call pending and moves on to the next.
func (d *TranscribeDriver) Cycle(ctx context.Context) error {
	pending, err := d.calls.SelectPendingTranscription(d.batchSize)
	if err != nil {
		return fmt.Errorf("select pending transcription: %w", err)
	}

	for _, record := range pending {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		log := logger.ForCall(d.Name(), record.CallID)
		if record.FileName == nil || *record.FileName == "" {
			d.metrics.RecordFailure(d.Name())
			log.Error("pending call has no recording file")
			continue
		}

		if err := d.transcribeOne(ctx, record.CallID, *record.FileName); err != nil {
			d.metrics.RecordFailure(d.Name())
			log.WithError(err).Error("transcription failed")
			continue
		}
		d.metrics.RecordSuccess(d.Name())
		log.Info("call transcribed")
	}
	return nil
}

func (d *TranscribeDriver) transcribeOne(ctx context.Context, callID, fileName string) error {
	result, err := d.engine.Transcribe(ctx, filepath.Join(d.audioDir, fileName), d.language)
	if err != nil {
		return err
	}

	if err := d.analyses.InsertTranscript(callID, result.Text, result.Segments); err != nil {
		// A transcript left over from a crash between the two writes is
		// kept as-is; only the status still needs to advance.
		if !apperrors.IsDuplicate(err) {
			return err
		}
		logger.ForCall(d.Name(), callID).Warn("transcript already stored, advancing status")
	}

	advanced, err := d.calls.AdvanceStatus(callID, models.StageTranscribe)
	if err != nil {
		return err
	}
	if !advanced {
		logger.ForCall(d.Name(), callID).Warn("transcribe status was already set")
	}
	return nil
}
