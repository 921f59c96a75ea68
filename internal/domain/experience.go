package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Experience is a past seasonal job held by a candidate.
type Experience struct {
	ID          uuid.UUID `json:"id"`
	CandidateID uuid.UUID `json:"candidate_id"`
	CompanyName string    `json:"company_name" validate:"required,min=1,max=255"`
	JobID       uuid.UUID `json:"job_id" validate:"required"`
	StartTime   time.Time `json:"start_time" validate:"required"`
	EndTime     time.Time `json:"end_time" validate:"required"`
	Description string    `json:"description" validate:"required,min=1,max=255"`
}

type ExperienceRepository interface {
	// GetByID is scoped to the owning candidate.
	GetByID(ctx context.Context, id, candidateID uuid.UUID) (*Experience, error)
	ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]Experience, error)
	Create(ctx context.Context, experience *Experience) error
	Update(ctx context.Context, experience *Experience) (int64, error)
	Delete(ctx context.Context, id, candidateID uuid.UUID) (int64, error)
}

type ExperienceUsecase interface {
	Create(ctx context.Context, candidateID uuid.UUID, experience *Experience) error
	GetByID(ctx context.Context, id, candidateID uuid.UUID) (*Experience, error)
	ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]Experience, error)
	Update(ctx context.Context, id, candidateID uuid.UUID, experience *Experience) error
	Delete(ctx context.Context, id, candidateID uuid.UUID) error
}
