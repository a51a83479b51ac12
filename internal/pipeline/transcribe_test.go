package pipeline

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"call-quality-backend/internal/database/models"
	apperrors "call-quality-backend/internal/errors"
	"call-quality-backend/internal/logger"
	"call-quality-backend/internal/mocks"
	"call-quality-backend/internal/transcribe"
)

func newTranscribeDriver(calls *mocks.MockCallRepositoryInterface, analyses *mocks.MockAnalysisRepositoryInterface, engine *mocks.MockEngine) *TranscribeDriver {
	return &TranscribeDriver{
		calls:     calls,
		analyses:  analyses,
		engine:    engine,
		metrics:   NewMetrics(),
		log:       logger.ForStage("transcribe"),
		audioDir:  "audio",
		language:  "ru",
		batchSize: 5,
	}
}

func pendingCall(callID, fileName string) models.CallRecord {
	return models.CallRecord{
		CallID:    callID,
		ManagerID: 42,
		FileName:  &fileName,
	}
}

func TestTranscribeCycleProcessesBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	calls := mocks.NewMockCallRepositoryInterface(ctrl)
	analyses := mocks.NewMockAnalysisRepositoryInterface(ctrl)
	engine := mocks.NewMockEngine(ctrl)
	driver := newTranscribeDriver(calls, analyses, engine)

	batch := []models.CallRecord{
		pendingCall("call-1", "10_one.mp3"),
		pendingCall("call-2", "11_two.mp3"),
	}
	result := &transcribe.Result{
		Text:     "hello there",
		Segments: []models.TranscriptSegment{{ID: 0, Start: 0, End: 2, Text: "hello there"}},
	}

	calls.EXPECT().SelectPendingTranscription(5).Return(batch, nil)
	engine.EXPECT().Transcribe(gomock.Any(), filepath.Join("audio", "10_one.mp3"), "ru").Return(result, nil)
	engine.EXPECT().Transcribe(gomock.Any(), filepath.Join("audio", "11_two.mp3"), "ru").Return(result, nil)
	analyses.EXPECT().InsertTranscript("call-1", "hello there", result.Segments).Return(nil)
	analyses.EXPECT().InsertTranscript("call-2", "hello there", result.Segments).Return(nil)
	calls.EXPECT().AdvanceStatus("call-1", models.StageTranscribe).Return(true, nil)
	calls.EXPECT().AdvanceStatus("call-2", models.StageTranscribe).Return(true, nil)

	require.NoError(t, driver.Cycle(context.Background()))

	snap := driver.metrics.Snapshot()
	assert.Equal(t, int64(2), snap.Processed["transcribe"])
	assert.Equal(t, int64(0), snap.Failures["transcribe"])
}

func TestTranscribeCycleSkipsRecordWithoutFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	calls := mocks.NewMockCallRepositoryInterface(ctrl)
	analyses := mocks.NewMockAnalysisRepositoryInterface(ctrl)
	engine := mocks.NewMockEngine(ctrl)
	driver := newTranscribeDriver(calls, analyses, engine)

	noFile := models.CallRecord{CallID: "call-broken", ManagerID: 42}
	calls.EXPECT().SelectPendingTranscription(5).Return([]models.CallRecord{noFile}, nil)

	require.NoError(t, driver.Cycle(context.Background()))
	assert.Equal(t, int64(1), driver.metrics.Snapshot().Failures["transcribe"])
}

func TestTranscribeEngineFailureLeavesCallPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	calls := mocks.NewMockCallRepositoryInterface(ctrl)
	analyses := mocks.NewMockAnalysisRepositoryInterface(ctrl)
	engine := mocks.NewMockEngine(ctrl)
	driver := newTranscribeDriver(calls, analyses, engine)

	batch := []models.CallRecord{
		pendingCall("call-fails", "12_bad.mp3"),
		pendingCall("call-works", "13_good.mp3"),
	}
	calls.EXPECT().SelectPendingTranscription(5).Return(batch, nil)

	unavailable := &apperrors.ExternalUnavailableError{Service: "whisper"}
	engine.EXPECT().Transcribe(gomock.Any(), filepath.Join("audio", "12_bad.mp3"), "ru").Return(nil, unavailable)

	// the failing record must not block the rest of the batch
	result := &transcribe.Result{Text: "fine"}
	engine.EXPECT().Transcribe(gomock.Any(), filepath.Join("audio", "13_good.mp3"), "ru").Return(result, nil)
	analyses.EXPECT().InsertTranscript("call-works", "fine", nil).Return(nil)
	calls.EXPECT().AdvanceStatus("call-works", models.StageTranscribe).Return(true, nil)

	require.NoError(t, driver.Cycle(context.Background()))

	snap := driver.metrics.Snapshot()
	assert.Equal(t, int64(1), snap.Processed["transcribe"])
	assert.Equal(t, int64(1), snap.Failures["transcribe"])
}

func TestTranscribeDuplicateTranscriptStillAdvances(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	calls := mocks.NewMockCallRepositoryInterface(ctrl)
	analyses := mocks.NewMockAnalysisRepositoryInterface(ctrl)
	engine := mocks.NewMockEngine(ctrl)
	driver := newTranscribeDriver(calls, analyses, engine)

	batch := []models.CallRecord{pendingCall("call-redo", "14_redo.mp3")}
	calls.EXPECT().SelectPendingTranscription(5).Return(batch, nil)
	engine.EXPECT().Transcribe(gomock.Any(), gomock.Any(), "ru").Return(&transcribe.Result{Text: "again"}, nil)

	// crash between transcript insert and status update left the row behind
	analyses.EXPECT().InsertTranscript("call-redo", "again", nil).
		Return(&apperrors.DuplicateRecordError{Entity: "transcript", Key: "call-redo"})
	calls.EXPECT().AdvanceStatus("call-redo", models.StageTranscribe).Return(true, nil)

	require.NoError(t, driver.Cycle(context.Background()))
	assert.Equal(t, int64(1), driver.metrics.Snapshot().Processed["transcribe"])
}
