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

type experienceUsecase struct {
	repo     domain.ExperienceRepository
	validate *validator.Validate
}

func NewExperienceUsecase(repo domain.ExperienceRepository, validate *validator.Validate) domain.ExperienceUsecase {
	return &experienceUsecase{repo: repo, validate: validate}
}

func (u *experienceUsecase) Create(ctx context.Context, candidateID uuid.UUID, experience *domain.Experience) error {
	// Server-assigned id and owner; client values are ignored
	experience.ID = uuid.New()
	experience.CandidateID = candidateID

	if err := validation.Validate(u.validate, experience); err != nil {
		return err
	}

	return u.repo.Create(ctx, experience)
}

func (u *experienceUsecase) GetByID(ctx context.Context, id, candidateID uuid.UUID) (*domain.Experience, error) {
	experience, err := u.repo.GetByID(ctx, id, candidateID)
	if err != nil {
		return nil, err
	}
	if experience == nil {
		return nil, apperror.NotFound(fmt.Sprintf("The experience does not exist: %s", id))
	}
	return experience, nil
}

func (u *experienceUsecase) ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]domain.Experience, error) {
	return u.repo.ListByCandidate(ctx, candidateID)
}

func (u *experienceUsecase) Update(ctx context.Context, id, candidateID uuid.UUID, experience *domain.Experience) error {
	experience.ID = id
	experience.CandidateID = candidateID

	if err := validation.Validate(u.validate, experience); err != nil {
		return err
	}

	rows, err := u.repo.Update(ctx, experience)
	if err != nil {
		return err
	}
	return MutationEffect(rows, "experience")
}

func (u *experienceUsecase) Delete(ctx context.Context, id, candidateID uuid.UUID) error {
	rows, err := u.repo.Delete(ctx, id, candidateID)
	if err != nil {
		return err
	}
	return MutationEffect(rows, "experience")
}
