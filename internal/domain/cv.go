package domain

import (
	"context"

	"github.com/google/uuid"
)

// FileStore is the object-store surface used for résumé binaries.
type FileStore interface {
	Put(ctx context.Context, key string, data []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
}

type CVUsecase interface {
	Upload(ctx context.Context, userID uuid.UUID, data []byte) error
	Download(ctx context.Context, userID uuid.UUID) ([]byte, error)
}
