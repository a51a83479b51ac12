package pipeline

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"call-quality-backend/internal/bitrix"
	"call-quality-backend/internal/config"
	"call-quality-backend/internal/database/models"
	apperrors "call-quality-backend/internal/errors"
	"call-quality-backend/internal/logger"
	"call-quality-backend/internal/repository"
)

// IngestDriver pulls new call facts from the CRM telephony statistics and
// records them as pending call records. The high-water-mark starts at the
// newest stored call (or the configured seed date on an empty table) and
// advances to the last fact of each pass, including passes where every fact
// was skipped.
type IngestDriver struct {
	calls     repository.CallRepositoryInterface
	users     repository.UserRepositoryInterface
	directory bitrix.Directory
	metrics   *Metrics
	log       *logger.Logger

	portalURL    string
	managerIDs   map[string]bool
	recentWindow int
	watermark    time.Time
}

// NewIngestDriver creates the ingestion driver. The watermark is seeded from
// the newest stored call so a restart never replays the whole history.
func NewIngestDriver(
	cfg *config.Config,
	calls repository.CallRepositoryInterface,
	users repository.UserRepositoryInterface,
	directory bitrix.Directory,
	portalURL string,
	metrics *Metrics,
) (*IngestDriver, error) {
	monitored := make(map[string]bool)
	for _, id := range cfg.ManagerIDs() {
		monitored[id] = true
	}

	watermark := cfg.SeedStartDate()
	last, err := calls.LastCallStartedAt()
	if err != nil {
		return nil, fmt.Errorf("seed ingestion watermark: %w", err)
	}
	if last != nil && last.After(watermark) {
		watermark = *last
	}

	return &IngestDriver{
		calls:        calls,
		users:        users,
		directory:    directory,
		metrics:      metrics,
		log:          logger.ForStage("ingest"),
		portalURL:    portalURL,
		managerIDs:   monitored,
		recentWindow: cfg.RecentCallWindow,
		watermark:    watermark,
	}, nil
}

// Name returns the stage name
func (d *IngestDriver) Name() string {
	return "ingest"
}

// SyncUsers refreshes the local snapshot of every monitored manager from the
// portal user directory. Called once on startup before the poll loop. A user
// whose fetch or store fails is skipped; call records ingested for that
// manager carry no name snapshot until a later sync succeeds.
func (d *IngestDriver) SyncUsers(ctx context.Context) {
	synced := 0
	for id := range d.managerIDs {
		if ctx.Err() != nil {
			return
		}
		profile, err := d.directory.GetUser(ctx, id)
		if err != nil {
			d.log.WithField("manager_id", id).WithError(err).Warn("failed to fetch portal user, skipping")
			continue
		}
		managerID, err := strconv.Atoi(profile.ID)
		if err != nil {
			d.log.WithField("manager_id", id).Warnf("bad portal id %q, skipping", profile.ID)
			continue
		}
		user := &models.PortalUser{
			ManagerID: managerID,
			Active:    profile.Active,
			FirstName: profile.Name,
			LastName:  profile.LastName,
			Email:     profile.Email,
		}
		if err := d.users.Upsert(user); err != nil {
			d.log.WithField("manager_id", id).WithError(err).Warn("failed to store portal user")
			continue
		}
		synced++
	}
	d.log.WithFields(map[string]interface{}{
		"synced":    synced,
		"monitored": len(d.managerIDs),
	}).Info("portal users synced")
}

// Cycle lists calls since the watermark and ingests every new one that has a
// recording, belongs to a monitored manager and is attached to a CRM entity.
// A failure on one fact is logged and does not stop the rest of the pass.
func (d *IngestDriver) Cycle(ctx context.Context) error {
	recent, err := d.calls.RecentCallIDs(d.recentWindow)
	if err != nil {
		return fmt.Errorf("load recent call ids: %w", err)
	}
	seen := make(map[string]bool, len(recent))
	for _, id := range recent {
		seen[id] = true
	}

	facts, err := d.directory.ListCalls(ctx, d.watermark)
	if err != nil {
		return err
	}
	if len(facts) == 0 {
		return nil
	}

	ingested := 0
	for _, fact := range facts {
		if d.skip(fact, seen) {
			continue
		}
		if err := d.ingestOne(ctx, fact); err != nil {
			d.metrics.RecordFailure(d.Name())
			logger.ForCall(d.Name(), fact.ID).WithError(err).Error("call ingestion failed")
			continue
		}
		seen[fact.ID] = true
		ingested++
		d.metrics.RecordSuccess(d.Name())
	}

	// The watermark moves even when every fact was skipped, otherwise an
	// all-skipped page would be re-fetched forever.
	if ts, err := parseCallDate(facts[len(facts)-1].CallStartDate); err == nil {
		d.watermark = ts
	}

	if ingested > 0 {
		d.log.WithField("calls", ingested).Info("new calls ingested")
	}
	return nil
}

func (d *IngestDriver) skip(fact bitrix.CallFact, seen map[string]bool) bool {
	if fact.RecordFileID == "" || fact.RecordFileID == "0" {
		return true
	}
	if !d.managerIDs[fact.PortalUserID] {
		return true
	}
	if !models.CRMEntityType(fact.CRMEntityType).IsValid() {
		return true
	}
	return seen[fact.ID]
}

func (d *IngestDriver) ingestOne(ctx context.Context, fact bitrix.CallFact) error {
	managerID, err := strconv.Atoi(fact.PortalUserID)
	if err != nil {
		return fmt.Errorf("bad portal user id %q", fact.PortalUserID)
	}
	startedAt, err := parseCallDate(fact.CallStartDate)
	if err != nil {
		return fmt.Errorf("bad call start date %q", fact.CallStartDate)
	}
	duration, _ := strconv.Atoi(fact.CallDuration)

	record := &models.CallRecord{
		CallID:         fact.ID,
		ManagerID:      managerID,
		RecordFileID:   fact.RecordFileID,
		Direction:      models.DirectionFromBitrix(fact.CallType),
		StartedAt:      startedAt,
		Timezone:       startedAt.Format("-07:00"),
		Duration:       duration,
		DurationVisual: formatDuration(duration),
		CRMEntityType:  models.CRMEntityType(fact.CRMEntityType),
		CRMEntityID:    fact.CRMEntityID,
		CRMActivityID:  fact.CRMActivityID,
		PortalNumber:   fact.PortalNumber,
		PhoneNumber:    fact.PhoneNumber,
	}

	if user, err := d.users.GetByManagerID(managerID); err == nil {
		name := user.FullName()
		record.PortalUserName = &name
	} else if !apperrors.IsNotFound(err) {
		return err
	}

	dealID, err := d.directory.GetDealID(ctx, fact.CRMEntityType, fact.CRMEntityID)
	if err != nil {
		return err
	}
	if dealID != "" {
		record.DealID = &dealID
		dealURL := fmt.Sprintf("%s/crm/deal/details/%s/", d.portalURL, dealID)
		record.DealURL = &dealURL

		stage, err := d.directory.GetDealStage(ctx, dealID)
		if err != nil {
			return err
		}
		if stage != "" {
			record.DealStage = &stage
		}
	}

	fileName, err := d.directory.DownloadRecording(ctx, fact.RecordFileID)
	if err != nil {
		return err
	}
	record.FileName = &fileName

	if err := d.calls.Insert(record); err != nil {
		if apperrors.IsDuplicate(err) {
			logger.ForCall(d.Name(), fact.ID).Warn("call already recorded, skipping")
			return nil
		}
		return err
	}

	logger.ForCall(d.Name(), fact.ID).WithField("manager_id", managerID).Info("call recorded")
	return nil
}

// parseCallDate reads the CALL_START_DATE timestamp the statistics API returns
func parseCallDate(value string) (time.Time, error) {
	return time.Parse(time.RFC3339, value)
}

// formatDuration renders seconds as H:MM:SS for the CRM card
func formatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d:%02d", seconds/3600, (seconds%3600)/60, seconds%60)
}
