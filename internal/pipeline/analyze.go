package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/cenkalti/backoff/v4"

	"call-quality-backend/internal/config"
	"call-quality-backend/internal/database/models"
	apperrors "call-quality-backend/internal/errors"
	"call-quality-backend/internal/logger"
	"call-quality-backend/internal/repository"
	"call-quality-backend/internal/scoring"
)

// AnalysisDriver scores stored transcripts through the quality model and
// persists the verdict: the summary on the analysis row plus the write-once
// evaluation and commentary rows. Scoring is retried under a bounded policy;
// exhaustion leaves the call pending for the next cycle.
type AnalysisDriver struct {
	calls    repository.CallRepositoryInterface
	analyses repository.AnalysisRepositoryInterface
	scorer   scoring.Scorer
	retry    RetryPolicy
	metrics  *Metrics
	log      *logger.Logger

	batchSize int
}

// NewAnalysisDriver creates the analysis driver
func NewAnalysisDriver(
	cfg *config.Config,
	calls repository.CallRepositoryInterface,
	analyses repository.AnalysisRepositoryInterface,
	scorer scoring.Scorer,
	metrics *Metrics,
) *AnalysisDriver {
	return &AnalysisDriver{
		calls:     calls,
		analyses:  analyses,
		scorer:    scorer,
		retry:     ScoringRetryPolicy(cfg),
		metrics:   metrics,
		log:       logger.ForStage("analysis"),
		batchSize: cfg.AnalysisBatchSize,
	}
}

// Name returns the stage name
func (d *AnalysisDriver) Name() string {
	return "analysis"
}

// Cycle scores one batch of transcribed calls. A failure on one call leaves
// that call pending and moves on to the next.
func (d *AnalysisDriver) Cycle(ctx context.Context) error {
	pending, err := d.calls.SelectPendingAnalysis(d.batchSize)
	if err != nil {
		return fmt.Errorf("select pending analysis: %w", err)
	}

	for _, callID := range pending {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		log := logger.ForCall(d.Name(), callID)
		if err := d.analyzeOne(ctx, callID); err != nil {
			d.metrics.RecordFailure(d.Name())
			log.WithError(err).Error("analysis failed")
			continue
		}
		d.metrics.RecordSuccess(d.Name())
		log.Info("call analyzed")
	}
	return nil
}

func (d *AnalysisDriver) analyzeOne(ctx context.Context, callID string) error {
	transcript, err := d.analyses.TranscriptText(callID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			logger.ForCall(d.Name(), callID).Warn("marked transcribed but transcript missing")
		}
		return err
	}

	result, err := d.scoreWithRetry(ctx, callID, transcript)
	if err != nil {
		return err
	}

	if err := d.storeResult(callID, result); err != nil {
		return err
	}

	advanced, err := d.calls.AdvanceStatus(callID, models.StageAnalysis)
	if err != nil {
		return err
	}
	if !advanced {
		logger.ForCall(d.Name(), callID).Warn("analysis status was already set")
	}
	return nil
}

// scoreWithRetry retries empty and garbled answers under the bounded policy.
// Anything else fails the record immediately. On exhaustion the error text is
// stored on the analysis row and the status stays pending.
func (d *AnalysisDriver) scoreWithRetry(ctx context.Context, callID, transcript string) (*scoring.Result, error) {
	var result *scoring.Result
	var gaveUp bool
	operation := func() error {
		r, err := d.scorer.Score(ctx, transcript)
		if err != nil {
			if apperrors.IsMalformed(err) || apperrors.IsExternalUnavailable(err) {
				return err
			}
			gaveUp = true
			return backoff.Permanent(err)
		}
		if r == nil {
			return errors.New("empty scoring answer")
		}
		result = r
		return nil
	}

	if err := backoff.Retry(operation, d.retry.New(ctx)); err != nil {
		if gaveUp {
			return nil, err
		}
		if stErr := d.analyses.SetScoringError(callID, err.Error()); stErr != nil {
			logger.ForCall(d.Name(), callID).WithError(stErr).Error("failed to record scoring error")
		}
		return nil, fmt.Errorf("%w: %v", apperrors.ErrScoringExhausted, err)
	}
	return result, nil
}

// storeResult writes the summary, then the write-once evaluation and
// commentary rows. Duplicates from an earlier partial run are kept untouched.
func (d *AnalysisDriver) storeResult(callID string, result *scoring.Result) error {
	err := d.analyses.SetScoringSummary(
		callID,
		result.GeneralComment,
		result.TotalScore,
		result.ManagerResume,
		result.Recommendations,
	)
	if err != nil {
		return err
	}

	evaluation := &models.Evaluation{CallID: callID}
	commentary := &models.Commentary{CallID: callID}
	for _, dim := range models.Dimensions() {
		verdict := result.Dimension(dim)
		setEvaluationScore(evaluation, dim, verdict.Score)
		setCommentaryText(commentary, dim, verdict.Comment)
	}

	if err := d.analyses.InsertEvaluation(evaluation); err != nil {
		if !apperrors.IsDuplicate(err) {
			return err
		}
		logger.ForCall(d.Name(), callID).Warn("evaluation already stored, keeping original")
	}
	if err := d.analyses.InsertCommentary(commentary); err != nil {
		if !apperrors.IsDuplicate(err) {
			return err
		}
		logger.ForCall(d.Name(), callID).Warn("commentary already stored, keeping original")
	}
	return nil
}

func setEvaluationScore(e *models.Evaluation, d models.Dimension, score int) {
	switch d {
	case models.DimensionGreeting:
		e.Greeting = score
	case models.DimensionSpeech:
		e.Speech = score
	case models.DimensionInitiative:
		e.Initiative = score
	case models.DimensionNeed:
		e.Need = score
	case models.DimensionOffer:
		e.Offer = score
	case models.DimensionObjection:
		e.Objection = score
	case models.DimensionPerseverance:
		e.Perseverance = score
	case models.DimensionAdvantages:
		e.Advantages = score
	case models.DimensionAgreement:
		e.Agreement = score
	}
}

func setCommentaryText(c *models.Commentary, d models.Dimension, comment string) {
	switch d {
	case models.DimensionGreeting:
		c.Greeting = comment
	case models.DimensionSpeech:
		c.Speech = comment
	case models.DimensionInitiative:
		c.Initiative = comment
	case models.DimensionNeed:
		c.Need = comment
	case models.DimensionOffer:
		c.Offer = comment
	case models.DimensionObjection:
		c.Objection = comment
	case models.DimensionPerseverance:
		c.Perseverance = comment
	case models.DimensionAdvantages:
		c.Advantages = comment
	case models.DimensionAgreement:
		c.Agreement = comment
	}
}
