package usecase

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/season-link/profiles/internal/domain"
	"github.com/season-link/profiles/pkg/apperror"
	"github.com/season-link/profiles/pkg/validation"
)

type referenceUsecase struct {
	repo     domain.ReferenceRepository
	validate *validator.Validate
}

func NewReferenceUsecase(repo domain.ReferenceRepository, validate *validator.Validate) domain.ReferenceUsecase {
	return &referenceUsecase{repo: repo, validate: validate}
}

func (u *referenceUsecase) Create(ctx context.Context, candidateID uuid.UUID, reference *domain.Reference) error {
	reference.ID = uuid.New()

	if err := validation.Validate(u.validate, reference); err != nil {
		return err
	}

	return u.repo.Create(ctx, candidateID, reference)
}

func (u *referenceUsecase) GetByID(ctx context.Context, id uuid.UUID) (*domain.Reference, error) {
	reference, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if reference == nil {
		return nil, apperror.NotFound(fmt.Sprintf("The reference does not exist: %s", id))
	}
	return reference, nil
}

func (u *referenceUsecase) ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]domain.Reference, error) {
	return u.repo.ListByCandidate(ctx, candidateID)
}

func (u *referenceUsecase) Update(ctx context.Context, id, candidateID uuid.UUID, reference *domain.Reference) error {
	reference.ID = id

	if err := validation.Validate(u.validate, reference); err != nil {
		return err
	}

	rows, err := u.repo.Update(ctx, candidateID, reference)
	if err != nil {
		return err
	}
	return MutationEffect(rows, "reference")
}

func (u *referenceUsecase) Delete(ctx context.Context, id, candidateID uuid.UUID) error {
	rows, err := u.repo.Delete(ctx, id, candidateID)
	if err != nil {
		return err
	}
	return MutationEffect(rows, "reference")
}
