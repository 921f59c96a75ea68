package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/season-link/profiles/internal/domain"
	"github.com/season-link/profiles/pkg/apperror"
)

type cvUsecase struct {
	store domain.FileStore
}

func NewCVUsecase(store domain.FileStore) domain.CVUsecase {
	return &cvUsecase{store: store}
}

// cvKey builds the object key for a user's résumé. One file per user.
func cvKey(userID uuid.UUID) string {
	return fmt.Sprintf("%s_cv", userID)
}

func (u *cvUsecase) Upload(ctx context.Context, userID uuid.UUID, data []byte) error {
	if len(data) == 0 {
		return apperror.BadRequest("No file found")
	}
	if err := u.store.Put(ctx, cvKey(userID), data); err != nil {
		return apperror.Storage(err)
	}
	return nil
}

func (u *cvUsecase) Download(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	data, err := u.store.Get(ctx, cvKey(userID))
	if err != nil {
		return nil, apperror.Storage(err)
	}
	return data, nil
}
