package transcribe

import (
	"context"

	"call-quality-backend/internal/database/models"
)

//go:generate mockgen -source=engine.go -destination=../mocks/transcribe_mocks.go -package=mocks

// Result is the transcription of one recording: the full text plus the
// ordered time-aligned segments.
type Result struct {
	Text     string
	Segments []models.TranscriptSegment
}

// Engine turns a stored recording into text
type Engine interface {
	Transcribe(ctx context.Context, audioPath, language string) (*Result, error)
}
