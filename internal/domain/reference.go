package domain

import (
	"context"

	"github.com/google/uuid"
)

// Reference is a person who can vouch for a candidate. The owning
// candidate_id is derived from the caller identity and never exposed in the
// payload.
type Reference struct {
	ID          uuid.UUID `json:"id"`
	FirstName   string    `json:"first_name" validate:"required,min=1,max=255"`
	LastName    string    `json:"last_name" validate:"required,min=1,max=255"`
	Email       string    `json:"email" validate:"required,email"`
	PhoneNumber string    `json:"phone_number" validate:"required,valid_phone"`
	CompanyName string    `json:"company_name" validate:"required,min=1,max=255"`
}

type ReferenceRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Reference, error)
	ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]Reference, error)
	Create(ctx context.Context, candidateID uuid.UUID, reference *Reference) error
	Update(ctx context.Context, candidateID uuid.UUID, reference *Reference) (int64, error)
	Delete(ctx context.Context, id, candidateID uuid.UUID) (int64, error)
}

type ReferenceUsecase interface {
	Create(ctx context.Context, candidateID uuid.UUID, reference *Reference) error
	GetByID(ctx context.Context, id uuid.UUID) (*Reference, error)
	ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]Reference, error)
	Update(ctx context.Context, id, candidateID uuid.UUID, reference *Reference) error
	Delete(ctx context.Context, id, candidateID uuid.UUID) error
}
