package bitrix

import (
	"context"
	"time"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/bitrix_mocks.go -package=mocks

// Directory reads call metadata, users, deals and recordings from Bitrix24
type Directory interface {
	ListCalls(ctx context.Context, since time.Time) ([]CallFact, error)
	GetUser(ctx context.Context, userID string) (*UserProfile, error)
	GetDealID(ctx context.Context, entityType, entityID string) (string, error)
	GetDealStage(ctx context.Context, dealID string) (string, error)
	DownloadRecording(ctx context.Context, fileID string) (string, error)
}

// Publisher posts scored call results back into Bitrix24
type Publisher interface {
	PostQualityRecord(ctx context.Context, fields map[string]string) error
}
