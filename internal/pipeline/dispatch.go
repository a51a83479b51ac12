package pipeline

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"call-quality-backend/internal/bitrix"
	"call-quality-backend/internal/database/models"
	"call-quality-backend/internal/logger"
	"call-quality-backend/internal/repository"
)

// DispatchDriver posts scored calls back into the CRM as process list
// elements and marks them sent. Send is the terminal stage: once the status
// advances the call never re-enters any driver's pending set.
type DispatchDriver struct {
	calls     repository.CallRepositoryInterface
	analyses  repository.AnalysisRepositoryInterface
	publisher bitrix.Publisher
	metrics   *Metrics
	log       *logger.Logger
}

// NewDispatchDriver creates the dispatch driver
func NewDispatchDriver(
	calls repository.CallRepositoryInterface,
	analyses repository.AnalysisRepositoryInterface,
	publisher bitrix.Publisher,
	metrics *Metrics,
) *DispatchDriver {
	return &DispatchDriver{
		calls:     calls,
		analyses:  analyses,
		publisher: publisher,
		metrics:   metrics,
		log:       logger.ForStage("dispatch"),
	}
}

// Name returns the stage name
func (d *DispatchDriver) Name() string {
	return "dispatch"
}

// Cycle posts every analyzed-but-unsent call. A failed post leaves the call
// pending for the next cycle; the other rows in the batch are unaffected.
func (d *DispatchDriver) Cycle(ctx context.Context) error {
	rows, err := d.analyses.PendingDispatch()
	if err != nil {
		return fmt.Errorf("select pending dispatch: %w", err)
	}

	for _, row := range rows {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		log := logger.ForCall(d.Name(), row.CallID)
		if err := d.dispatchOne(ctx, row); err != nil {
			d.metrics.RecordFailure(d.Name())
			log.WithError(err).Error("dispatch failed")
			continue
		}
		d.metrics.RecordSuccess(d.Name())
		log.Info("call result posted")
	}
	return nil
}

func (d *DispatchDriver) dispatchOne(ctx context.Context, row repository.DispatchRow) error {
	if err := d.publisher.PostQualityRecord(ctx, buildFields(row)); err != nil {
		return err
	}

	advanced, err := d.calls.AdvanceStatus(row.CallID, models.StageSend)
	if err != nil {
		return err
	}
	if !advanced {
		logger.ForCall(d.Name(), row.CallID).Warn("send status was already set")
	}
	return nil
}

// buildFields maps one dispatch row onto the process list element properties
func buildFields(row repository.DispatchRow) map[string]string {
	fields := map[string]string{
		"NAME":          "Call quality " + row.CallID,
		"PROPERTY_1012": row.CallID,
		"PROPERTY_1013": string(row.Direction),
		"PROPERTY_1014": row.StartedAt.Format(time.RFC3339),
		"PROPERTY_1015": row.DurationVisual,
	}
	// The manager property carries the snapshot name, or the raw portal id
	// when the user was never synced.
	if row.PortalUserName != nil {
		fields["PROPERTY_1021"] = *row.PortalUserName
	} else {
		fields["PROPERTY_1021"] = strconv.Itoa(row.ManagerID)
	}
	if row.AnalysisStatus != nil {
		fields["PROPERTY_1025"] = string(*row.AnalysisStatus)
	}
	if row.DealURL != nil {
		fields["PROPERTY_1016"] = *row.DealURL
	}
	if row.DealStage != nil {
		fields["PROPERTY_1017"] = *row.DealStage
	}
	if row.CallQuality != nil {
		fields["PROPERTY_1018"] = strconv.FormatFloat(*row.CallQuality, 'f', 1, 64)
	}
	if row.ManagerResume != nil {
		fields["PROPERTY_1019"] = *row.ManagerResume
	}
	if row.Recommendations != nil {
		fields["PROPERTY_1020"] = *row.Recommendations
	}
	if row.GeneralComment != nil {
		fields["PROPERTY_1024"] = *row.GeneralComment
	}
	return fields
}
