package pipeline

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"call-quality-backend/internal/database/models"
	apperrors "call-quality-backend/internal/errors"
	"call-quality-backend/internal/logger"
	"call-quality-backend/internal/mocks"
	"call-quality-backend/internal/repository"
)

func newDispatchDriver(calls *mocks.MockCallRepositoryInterface, analyses *mocks.MockAnalysisRepositoryInterface, publisher *mocks.MockPublisher) *DispatchDriver {
	return &DispatchDriver{
		calls:     calls,
		analyses:  analyses,
		publisher: publisher,
		metrics:   NewMetrics(),
		log:       logger.ForStage("dispatch"),
	}
}

func dispatchRow(callID string) repository.DispatchRow {
	name := "Petrova Anna"
	stage := "NEW"
	url := "https://portal.example.com/crm/deal/details/55/"
	comment := "Good call"
	quality := 7.5
	resume := "- kept initiative"
	recommendations := "- push for agreement"
	done := models.StageStatusDone
	return repository.DispatchRow{
		CallID:          callID,
		ManagerID:       42,
		PortalUserName:  &name,
		Direction:       models.DirectionOutbound,
		StartedAt:       time.Date(2024, 5, 10, 14, 30, 0, 0, time.UTC),
		DurationVisual:  "0:04:05",
		DealStage:       &stage,
		DealURL:         &url,
		AnalysisStatus:  &done,
		GeneralComment:  &comment,
		CallQuality:     &quality,
		ManagerResume:   &resume,
		Recommendations: &recommendations,
	}
}

func TestDispatchCyclePostsAndAdvances(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	calls := mocks.NewMockCallRepositoryInterface(ctrl)
	analyses := mocks.NewMockAnalysisRepositoryInterface(ctrl)
	publisher := mocks.NewMockPublisher(ctrl)
	driver := newDispatchDriver(calls, analyses, publisher)

	analyses.EXPECT().PendingDispatch().Return([]repository.DispatchRow{dispatchRow("call-1")}, nil)
	publisher.EXPECT().PostQualityRecord(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, fields map[string]string) error {
			assert.Equal(t, "Call quality call-1", fields["NAME"])
			assert.Equal(t, "call-1", fields["PROPERTY_1012"])
			assert.Equal(t, "outbound", fields["PROPERTY_1013"])
			assert.Equal(t, "Petrova Anna", fields["PROPERTY_1021"])
			assert.Equal(t, "7.5", fields["PROPERTY_1018"])
			assert.Equal(t, "- kept initiative", fields["PROPERTY_1019"])
			assert.Equal(t, "https://portal.example.com/crm/deal/details/55/", fields["PROPERTY_1016"])
			return nil
		})
	calls.EXPECT().AdvanceStatus("call-1", models.StageSend).Return(true, nil)

	require.NoError(t, driver.Cycle(context.Background()))
	assert.Equal(t, int64(1), driver.metrics.Snapshot().Processed["dispatch"])
}

func TestDispatchPublishFailureLeavesCallPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	calls := mocks.NewMockCallRepositoryInterface(ctrl)
	analyses := mocks.NewMockAnalysisRepositoryInterface(ctrl)
	publisher := mocks.NewMockPublisher(ctrl)
	driver := newDispatchDriver(calls, analyses, publisher)

	rows := []repository.DispatchRow{dispatchRow("call-down"), dispatchRow("call-up")}
	analyses.EXPECT().PendingDispatch().Return(rows, nil)

	unavailable := &apperrors.ExternalUnavailableError{Service: "bitrix"}
	gomock.InOrder(
		publisher.EXPECT().PostQualityRecord(gomock.Any(), gomock.Any()).Return(unavailable),
		publisher.EXPECT().PostQualityRecord(gomock.Any(), gomock.Any()).Return(nil),
	)
	calls.EXPECT().AdvanceStatus("call-up", models.StageSend).Return(true, nil)

	require.NoError(t, driver.Cycle(context.Background()))

	snap := driver.metrics.Snapshot()
	assert.Equal(t, int64(1), snap.Processed["dispatch"])
	assert.Equal(t, int64(1), snap.Failures["dispatch"])
}

func TestBuildFieldsOmitsAbsentValues(t *testing.T) {
	row := repository.DispatchRow{
		CallID:         "call-bare",
		ManagerID:      99,
		Direction:      models.DirectionInbound,
		StartedAt:      time.Date(2024, 5, 10, 14, 30, 0, 0, time.UTC),
		DurationVisual: "0:00:45",
	}

	fields := buildFields(row)

	assert.Equal(t, "call-bare", fields["PROPERTY_1012"])
	assert.Equal(t, "99", fields["PROPERTY_1021"])
	assert.NotContains(t, fields, "PROPERTY_1016")
	assert.NotContains(t, fields, "PROPERTY_1018")
	assert.NotContains(t, fields, "PROPERTY_1019")
}
