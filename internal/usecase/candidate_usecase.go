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

type candidateUsecase struct {
	repo     domain.CandidateRepository
	jobs     domain.JobChecker
	idp      domain.IdentityProvider
	validate *validator.Validate
}

func NewCandidateUsecase(
	repo domain.CandidateRepository,
	jobs domain.JobChecker,
	idp domain.IdentityProvider,
	validate *validator.Validate,
) domain.CandidateUsecase {
	return &candidateUsecase{
		repo:     repo,
		jobs:     jobs,
		idp:      idp,
		validate: validate,
	}
}

// Create validates the payload, verifies the referenced job, provisions the
// account on the identity provider and only then persists the candidate
// under the provider-assigned id. The three steps are not transactional: a
// failure after provisioning leaves an orphaned IdP account and no local
// record. Known inconsistency window.
func (u *candidateUsecase) Create(ctx context.Context, req *domain.CreateCandidateRequest) (*domain.Candidate, error) {
	if err := validation.Validate(u.validate, req); err != nil {
		return nil, err
	}

	valid, err := u.jobs.IsValid(ctx, req.Candidate.JobID)
	if err != nil {
		return nil, err
	}
	if !valid {
		return nil, apperror.BadRequest(fmt.Sprintf("Invalid job id: %s", req.Candidate.JobID))
	}

	userID, err := u.idp.CreateUser(ctx, req.Candidate.FirstName, req.Candidate.LastName, req.Password)
	if err != nil {
		return nil, err
	}

	candidate := req.Candidate
	candidate.ID = userID

	if err := u.repo.Create(ctx, &candidate); err != nil {
		return nil, err
	}

	return &candidate, nil
}

func (u *candidateUsecase) GetByID(ctx context.Context, id uuid.UUID) (*domain.Candidate, error) {
	candidate, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if candidate == nil {
		return nil, apperror.NotFound(fmt.Sprintf("The candidate does not exist: %s", id))
	}
	return candidate, nil
}

// List applies the caller's tier policy: the row cap goes into the query and
// contact fields are nulled on redacted tiers before results leave the
// usecase.
func (u *candidateUsecase) List(ctx context.Context, filter *domain.CandidateFilter) ([]domain.Candidate, error) {
	if err := validation.Validate(u.validate, filter); err != nil {
		return nil, err
	}

	policy := filter.SubscriptionLevel.Policy()

	candidates, err := u.repo.List(ctx, filter, policy.Limit)
	if err != nil {
		return nil, err
	}

	if policy.RedactContact {
		for i := range candidates {
			candidates[i].RedactContact()
		}
	}

	return candidates, nil
}

// Update writes the payload under the caller's own id; any id inside the
// payload is discarded.
func (u *candidateUsecase) Update(ctx context.Context, userID uuid.UUID, candidate *domain.Candidate) error {
	candidate.ID = userID

	if err := validation.Validate(u.validate, candidate); err != nil {
		return err
	}

	rows, err := u.repo.Update(ctx, candidate)
	if err != nil {
		return err
	}
	return MutationEffect(rows, "candidate")
}

func (u *candidateUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	rows, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	return MutationEffect(rows, "candidate")
}
