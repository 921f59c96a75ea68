package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Candidate is a seasonal-work candidate profile. The id always equals the
// identity-provider user id of its owner.
type Candidate struct {
	ID                   uuid.UUID `json:"id"`
	FirstName            string    `json:"first_name" validate:"required,min=1,max=255"`
	LastName             string    `json:"last_name" validate:"required,min=1,max=255"`
	BirthDate            time.Time `json:"birth_date" validate:"required"`
	NationalityCountryID string    `json:"nationality_country_id" validate:"required,max=3"`
	Description          string    `json:"description" validate:"max=2000"`
	Email                *string   `json:"email" validate:"required,email"`
	PhoneCountryID       string    `json:"phone_country_id" validate:"required,max=3"`
	PhoneNumber          *string   `json:"phone_number" validate:"required,valid_phone"`
	Address              string    `json:"address" validate:"required,max=255"`
	Gender               int16     `json:"gender" validate:"gte=0,lte=2"`
	IsAvailable          bool      `json:"is_available"`
	AvailableFrom        time.Time `json:"available_from" validate:"required"`
	AvailableTo          time.Time `json:"available_to" validate:"required"`
	Place                string    `json:"place" validate:"required,max=255"`
	JobID                uuid.UUID `json:"job_id" validate:"required"`
}

// RedactContact nulls the contact fields for tiers that are not entitled to
// them.
func (c *Candidate) RedactContact() {
	c.Email = nil
	c.PhoneNumber = nil
	c.PhoneCountryID = ""
}

// CreateCandidateRequest is the POST /user payload. The password is forwarded
// to the identity provider and never stored locally.
type CreateCandidateRequest struct {
	Candidate Candidate `json:"candidate" validate:"required"`
	Password  string    `json:"password" validate:"required,min=8,max=255"`
}

// SubscriptionTier is the caller-supplied subscription level of the employer
// listing candidates. We trust the calling service on this value.
type SubscriptionTier string

const (
	TierFree     SubscriptionTier = "free"
	TierSilver   SubscriptionTier = "silver"
	TierGold     SubscriptionTier = "gold"
	TierPlatinum SubscriptionTier = "platinum"
)

// TierPolicy controls how many rows a listing may return and whether contact
// fields are redacted. The thresholds are product policy, not derived values.
type TierPolicy struct {
	Limit         int
	RedactContact bool
}

var tierPolicies = map[SubscriptionTier]TierPolicy{
	TierFree:     {Limit: 3, RedactContact: true},
	TierSilver:   {Limit: 25, RedactContact: true},
	TierGold:     {Limit: 100, RedactContact: false},
	TierPlatinum: {Limit: 10000, RedactContact: false},
}

// Policy returns the listing policy for the tier. Unrecognized tiers fall
// back to the free policy; request validation rejects them before this
// matters.
func (t SubscriptionTier) Policy() TierPolicy {
	if p, ok := tierPolicies[t]; ok {
		return p
	}
	return tierPolicies[TierFree]
}

// CandidateFilter selects available candidates whose availability window
// fully contains the requested window.
type CandidateFilter struct {
	JobID             uuid.UUID        `json:"job_id" validate:"required"`
	StartDate         time.Time        `json:"start_date" validate:"required"`
	EndDate           time.Time        `json:"end_date" validate:"required"`
	SubscriptionLevel SubscriptionTier `json:"subscription_level" validate:"required,oneof=free silver gold platinum"`
}

type CandidateRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Candidate, error)
	List(ctx context.Context, filter *CandidateFilter, limit int) ([]Candidate, error)
	Create(ctx context.Context, candidate *Candidate) error
	// Update and Delete return the affected-row count so callers can detect
	// missing rows and unique-key violations.
	Update(ctx context.Context, candidate *Candidate) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

type CandidateUsecase interface {
	Create(ctx context.Context, req *CreateCandidateRequest) (*Candidate, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Candidate, error)
	List(ctx context.Context, filter *CandidateFilter) ([]Candidate, error)
	// Update writes the payload keyed by userID, never by an id embedded in
	// the payload.
	Update(ctx context.Context, userID uuid.UUID, candidate *Candidate) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// JobChecker verifies that a job id exists on the job service before a
// candidate may refer to it.
type JobChecker interface {
	IsValid(ctx context.Context, jobID uuid.UUID) (bool, error)
}

// IdentityProvider provisions accounts on the external IdP. CreateUser
// returns the canonical user id assigned by the provider.
type IdentityProvider interface {
	CreateUser(ctx context.Context, firstName, lastName, password string) (uuid.UUID, error)
}
