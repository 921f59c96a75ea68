package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/season-link/profiles/internal/domain"
	"github.com/season-link/profiles/internal/usecase"
	"github.com/season-link/profiles/pkg/apperror"
	"github.com/season-link/profiles/pkg/validation"
)

// Mock Repositories and Collaborators

type MockCandidateRepo struct {
	mock.Mock
}

func (m *MockCandidateRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Candidate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Candidate), args.Error(1)
}

func (m *MockCandidateRepo) List(ctx context.Context, filter *domain.CandidateFilter, limit int) ([]domain.Candidate, error) {
	args := m.Called(ctx, filter, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Candidate), args.Error(1)
}

func (m *MockCandidateRepo) Create(ctx context.Context, candidate *domain.Candidate) error {
	return m.Called(ctx, candidate).Error(0)
}

func (m *MockCandidateRepo) Update(ctx context.Context, candidate *domain.Candidate) (int64, error) {
	args := m.Called(ctx, candidate)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCandidateRepo) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

type MockJobChecker struct {
	mock.Mock
}

func (m *MockJobChecker) IsValid(ctx context.Context, jobID uuid.UUID) (bool, error) {
	args := m.Called(ctx, jobID)
	return args.Bool(0), args.Error(1)
}

type MockIdentityProvider struct {
	mock.Mock
}

func (m *MockIdentityProvider) CreateUser(ctx context.Context, firstName, lastName, password string) (uuid.UUID, error) {
	args := m.Called(ctx, firstName, lastName, password)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

type MockExperienceRepo struct {
	mock.Mock
}

func (m *MockExperienceRepo) GetByID(ctx context.Context, id, candidateID uuid.UUID) (*domain.Experience, error) {
	args := m.Called(ctx, id, candidateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Experience), args.Error(1)
}

func (m *MockExperienceRepo) ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]domain.Experience, error) {
	args := m.Called(ctx, candidateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Experience), args.Error(1)
}

func (m *MockExperienceRepo) Create(ctx context.Context, experience *domain.Experience) error {
	return m.Called(ctx, experience).Error(0)
}

func (m *MockExperienceRepo) Update(ctx context.Context, experience *domain.Experience) (int64, error) {
	args := m.Called(ctx, experience)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockExperienceRepo) Delete(ctx context.Context, id, candidateID uuid.UUID) (int64, error) {
	args := m.Called(ctx, id, candidateID)
	return args.Get(0).(int64), args.Error(1)
}

type MockReferenceRepo struct {
	mock.Mock
}

func (m *MockReferenceRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Reference, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reference), args.Error(1)
}

func (m *MockReferenceRepo) ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]domain.Reference, error) {
	args := m.Called(ctx, candidateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reference), args.Error(1)
}

func (m *MockReferenceRepo) Create(ctx context.Context, candidateID uuid.UUID, reference *domain.Reference) error {
	return m.Called(ctx, candidateID, reference).Error(0)
}

func (m *MockReferenceRepo) Update(ctx context.Context, candidateID uuid.UUID, reference *domain.Reference) (int64, error) {
	args := m.Called(ctx, candidateID, reference)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReferenceRepo) Delete(ctx context.Context, id, candidateID uuid.UUID) (int64, error) {
	args := m.Called(ctx, id, candidateID)
	return args.Get(0).(int64), args.Error(1)
}

// Helpers

func newValidator() *validator.Validate {
	v := validator.New()
	validation.RegisterValidators(v)
	return v
}

func strPtr(s string) *string { return &s }

func validCandidate() domain.Candidate {
	return domain.Candidate{
		FirstName:            "Ada",
		LastName:             "Lovelace",
		BirthDate:            time.Date(1990, 3, 14, 0, 0, 0, 0, time.UTC),
		NationalityCountryID: "FR",
		Description:          "Experienced seasonal worker",
		Email:                strPtr("ada@example.com"),
		PhoneCountryID:       "33",
		PhoneNumber:          strPtr("+33612345678"),
		Address:              "1 Rue de la Paix, Paris",
		Gender:               1,
		IsAvailable:          true,
		AvailableFrom:        time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		AvailableTo:          time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Place:                "Chamonix",
		JobID:                uuid.New(),
	}
}

func validFilter() *domain.CandidateFilter {
	return &domain.CandidateFilter{
		JobID:             uuid.New(),
		StartDate:         time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:           time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		SubscriptionLevel: domain.TierFree,
	}
}

// Candidate creation pipeline

func TestCandidateCreate(t *testing.T) {
	t.Run("invalid payload stops before any collaborator call", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		jobs := new(MockJobChecker)
		idp := new(MockIdentityProvider)
		uc := usecase.NewCandidateUsecase(repo, jobs, idp, newValidator())

		candidate := validCandidate()
		candidate.AvailableFrom = time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
		candidate.AvailableTo = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

		_, err := uc.Create(context.Background(), &domain.CreateCandidateRequest{
			Candidate: candidate,
			Password:  "supersecret",
		})

		assert.True(t, apperror.IsKind(err, apperror.KindValidation))
		jobs.AssertNotCalled(t, "IsValid", mock.Anything, mock.Anything)
		idp.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("unknown job id stops before provisioning", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		jobs := new(MockJobChecker)
		idp := new(MockIdentityProvider)
		uc := usecase.NewCandidateUsecase(repo, jobs, idp, newValidator())

		jobs.On("IsValid", mock.Anything, mock.Anything).Return(false, nil)

		_, err := uc.Create(context.Background(), &domain.CreateCandidateRequest{
			Candidate: validCandidate(),
			Password:  "supersecret",
		})

		assert.True(t, apperror.IsKind(err, apperror.KindBadRequest))
		idp.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("provisioning failure leaves no local record", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		jobs := new(MockJobChecker)
		idp := new(MockIdentityProvider)
		uc := usecase.NewCandidateUsecase(repo, jobs, idp, newValidator())

		jobs.On("IsValid", mock.Anything, mock.Anything).Return(true, nil)
		idp.On("CreateUser", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(uuid.Nil, apperror.Upstream("identity provider down", nil))

		_, err := uc.Create(context.Background(), &domain.CreateCandidateRequest{
			Candidate: validCandidate(),
			Password:  "supersecret",
		})

		assert.True(t, apperror.IsKind(err, apperror.KindUpstream))
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("persisted candidate carries the provider-assigned id", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		jobs := new(MockJobChecker)
		idp := new(MockIdentityProvider)
		uc := usecase.NewCandidateUsecase(repo, jobs, idp, newValidator())

		assignedID := uuid.New()
		jobs.On("IsValid", mock.Anything, mock.Anything).Return(true, nil)
		idp.On("CreateUser", mock.Anything, "Ada", "Lovelace", "supersecret").Return(assignedID, nil)
		repo.On("Create", mock.Anything, mock.MatchedBy(func(c *domain.Candidate) bool {
			return c.ID == assignedID
		})).Return(nil)

		created, err := uc.Create(context.Background(), &domain.CreateCandidateRequest{
			Candidate: validCandidate(),
			Password:  "supersecret",
		})

		require.NoError(t, err)
		assert.Equal(t, assignedID, created.ID)
		repo.AssertExpectations(t)
	})
}

// Listing tiers

func TestCandidateListTiers(t *testing.T) {
	results := func(n int) []domain.Candidate {
		out := make([]domain.Candidate, n)
		for i := range out {
			out[i] = validCandidate()
			out[i].ID = uuid.New()
		}
		return out
	}

	t.Run("free tier caps at 3 and redacts contact fields", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := usecase.NewCandidateUsecase(repo, nil, nil, newValidator())

		filter := validFilter()
		repo.On("List", mock.Anything, filter, 3).Return(results(3), nil)

		candidates, err := uc.List(context.Background(), filter)
		require.NoError(t, err)
		require.Len(t, candidates, 3)
		for _, c := range candidates {
			assert.Nil(t, c.Email)
			assert.Nil(t, c.PhoneNumber)
		}
		repo.AssertExpectations(t)
	})

	t.Run("platinum tier caps at 10000 and keeps contact fields", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := usecase.NewCandidateUsecase(repo, nil, nil, newValidator())

		filter := validFilter()
		filter.SubscriptionLevel = domain.TierPlatinum
		repo.On("List", mock.Anything, filter, 10000).Return(results(2), nil)

		candidates, err := uc.List(context.Background(), filter)
		require.NoError(t, err)
		require.Len(t, candidates, 2)
		for _, c := range candidates {
			assert.NotNil(t, c.Email)
			assert.NotNil(t, c.PhoneNumber)
		}
	})

	t.Run("inverted window never reaches the repository", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := usecase.NewCandidateUsecase(repo, nil, nil, newValidator())

		filter := validFilter()
		filter.StartDate, filter.EndDate = filter.EndDate, filter.StartDate

		_, err := uc.List(context.Background(), filter)
		assert.True(t, apperror.IsKind(err, apperror.KindValidation))
		repo.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything)
	})
}

// Self-scoped updates and the mutation-effect pipeline

func TestCandidateUpdate(t *testing.T) {
	t.Run("payload id is overridden by the caller id", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := usecase.NewCandidateUsecase(repo, nil, nil, newValidator())

		callerID := uuid.New()
		candidate := validCandidate()
		candidate.ID = uuid.New() // attacker-controlled id, must be ignored

		repo.On("Update", mock.Anything, mock.MatchedBy(func(c *domain.Candidate) bool {
			return c.ID == callerID
		})).Return(int64(1), nil)

		assert.NoError(t, uc.Update(context.Background(), callerID, &candidate))
		repo.AssertExpectations(t)
	})

	t.Run("zero affected rows reports not found", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := usecase.NewCandidateUsecase(repo, nil, nil, newValidator())

		candidate := validCandidate()
		repo.On("Update", mock.Anything, mock.Anything).Return(int64(0), nil)

		err := uc.Update(context.Background(), uuid.New(), &candidate)
		assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
	})
}

func TestCandidateDelete(t *testing.T) {
	t.Run("multiple affected rows is an integrity violation", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := usecase.NewCandidateUsecase(repo, nil, nil, newValidator())

		repo.On("Delete", mock.Anything, mock.Anything).Return(int64(2), nil)

		err := uc.Delete(context.Background(), uuid.New())
		assert.True(t, apperror.IsKind(err, apperror.KindIntegrity))
	})
}

func TestExperienceOwnership(t *testing.T) {
	validExperience := func() domain.Experience {
		return domain.Experience{
			CompanyName: "Alpine Resort",
			JobID:       uuid.New(),
			StartTime:   time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC),
			EndTime:     time.Date(2023, 9, 1, 0, 0, 0, 0, time.UTC),
			Description: "Ski instructor",
		}
	}

	t.Run("create assigns server-side id and owner", func(t *testing.T) {
		repo := new(MockExperienceRepo)
		uc := usecase.NewExperienceUsecase(repo, newValidator())

		callerID := uuid.New()
		exp := validExperience()
		exp.ID = uuid.New()          // client-supplied, must be replaced
		exp.CandidateID = uuid.New() // client-supplied, must be replaced

		clientID := exp.ID
		repo.On("Create", mock.Anything, mock.MatchedBy(func(e *domain.Experience) bool {
			return e.CandidateID == callerID && e.ID != clientID && e.ID != uuid.Nil
		})).Return(nil)

		assert.NoError(t, uc.Create(context.Background(), callerID, &exp))
		repo.AssertExpectations(t)
	})

	t.Run("updating a row owned by someone else reports not found", func(t *testing.T) {
		repo := new(MockExperienceRepo)
		uc := usecase.NewExperienceUsecase(repo, newValidator())

		// Ownership mismatch surfaces as zero affected rows
		repo.On("Update", mock.Anything, mock.Anything).Return(int64(0), nil)

		exp := validExperience()
		err := uc.Update(context.Background(), uuid.New(), uuid.New(), &exp)
		assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
	})
}

func TestReferenceUsecase(t *testing.T) {
	validReference := func() domain.Reference {
		return domain.Reference{
			FirstName:   "Grace",
			LastName:    "Hopper",
			Email:       "grace@example.com",
			PhoneNumber: "+14155550123",
			CompanyName: "Navy",
		}
	}

	t.Run("missing reference reports not found", func(t *testing.T) {
		repo := new(MockReferenceRepo)
		uc := usecase.NewReferenceUsecase(repo, newValidator())

		repo.On("GetByID", mock.Anything, mock.Anything).Return(nil, nil)

		_, err := uc.GetByID(context.Background(), uuid.New())
		assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
	})

	t.Run("invalid email never reaches the repository", func(t *testing.T) {
		repo := new(MockReferenceRepo)
		uc := usecase.NewReferenceUsecase(repo, newValidator())

		ref := validReference()
		ref.Email = "not-an-email"

		err := uc.Create(context.Background(), uuid.New(), &ref)
		assert.True(t, apperror.IsKind(err, apperror.KindValidation))
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("delete scoped by caller converts zero rows to not found", func(t *testing.T) {
		repo := new(MockReferenceRepo)
		uc := usecase.NewReferenceUsecase(repo, newValidator())

		repo.On("Delete", mock.Anything, mock.Anything, mock.Anything).Return(int64(0), nil)

		err := uc.Delete(context.Background(), uuid.New(), uuid.New())
		assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
	})
}
