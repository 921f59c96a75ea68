package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/season-link/profiles/internal/domain"
	"github.com/season-link/profiles/pkg/apperror"
)

type candidateRepository struct {
	db *pgxpool.Pool
}

func NewCandidateRepository(db *pgxpool.Pool) domain.CandidateRepository {
	return &candidateRepository{db: db}
}

const candidateColumns = `
	id, first_name, last_name, birth_date, nationality_country_id, description,
	email, phone_country_id, phone_number, address, gender,
	is_available, available_from, available_to, place, job_id`

func scanCandidate(row pgx.Row) (*domain.Candidate, error) {
	var c domain.Candidate
	err := row.Scan(
		&c.ID, &c.FirstName, &c.LastName, &c.BirthDate, &c.NationalityCountryID, &c.Description,
		&c.Email, &c.PhoneCountryID, &c.PhoneNumber, &c.Address, &c.Gender,
		&c.IsAvailable, &c.AvailableFrom, &c.AvailableTo, &c.Place, &c.JobID,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *candidateRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidate WHERE id = $1`

	c, err := scanCandidate(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperror.Storage(err)
	}
	return c, nil
}

// List returns available candidates for the job whose availability window
// fully contains the requested window. The limit comes from the caller's
// tier policy, never from client input.
func (r *candidateRepository) List(ctx context.Context, filter *domain.CandidateFilter, limit int) ([]domain.Candidate, error) {
	query := `SELECT ` + candidateColumns + `
		FROM candidate
		WHERE job_id = $1
		  AND is_available = TRUE
		  AND available_from <= $2
		  AND available_to >= $3
		ORDER BY available_from
		LIMIT $4`

	rows, err := r.db.Query(ctx, query, filter.JobID, filter.StartDate, filter.EndDate, limit)
	if err != nil {
		return nil, apperror.Storage(err)
	}
	defer rows.Close()

	candidates := []domain.Candidate{}
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, apperror.Storage(err)
		}
		candidates = append(candidates, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.Storage(err)
	}

	return candidates, nil
}

func (r *candidateRepository) Create(ctx context.Context, c *domain.Candidate) error {
	query := `INSERT INTO candidate (` + candidateColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

	_, err := r.db.Exec(ctx, query,
		c.ID, c.FirstName, c.LastName, c.BirthDate, c.NationalityCountryID, c.Description,
		c.Email, c.PhoneCountryID, c.PhoneNumber, c.Address, c.Gender,
		c.IsAvailable, c.AvailableFrom, c.AvailableTo, c.Place, c.JobID,
	)
	if err != nil {
		return apperror.Storage(err)
	}
	return nil
}

func (r *candidateRepository) Update(ctx context.Context, c *domain.Candidate) (int64, error) {
	query := `UPDATE candidate SET
		first_name=$1, last_name=$2, birth_date=$3, nationality_country_id=$4, description=$5,
		email=$6, phone_country_id=$7, phone_number=$8, address=$9, gender=$10,
		is_available=$11, available_from=$12, available_to=$13, place=$14, job_id=$15
		WHERE id=$16`

	tag, err := r.db.Exec(ctx, query,
		c.FirstName, c.LastName, c.BirthDate, c.NationalityCountryID, c.Description,
		c.Email, c.PhoneCountryID, c.PhoneNumber, c.Address, c.Gender,
		c.IsAvailable, c.AvailableFrom, c.AvailableTo, c.Place, c.JobID,
		c.ID,
	)
	if err != nil {
		return 0, apperror.Storage(err)
	}
	return tag.RowsAffected(), nil
}

func (r *candidateRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM candidate WHERE id = $1`, id)
	if err != nil {
		return 0, apperror.Storage(err)
	}
	return tag.RowsAffected(), nil
}
