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

type experienceRepository struct {
	db *pgxpool.Pool
}

func NewExperienceRepository(db *pgxpool.Pool) domain.ExperienceRepository {
	return &experienceRepository{db: db}
}

const experienceColumns = `id, candidate_id, company_name, job_id, start_time, end_time, description`

func scanExperience(row pgx.Row) (*domain.Experience, error) {
	var e domain.Experience
	err := row.Scan(&e.ID, &e.CandidateID, &e.CompanyName, &e.JobID, &e.StartTime, &e.EndTime, &e.Description)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *experienceRepository) GetByID(ctx context.Context, id, candidateID uuid.UUID) (*domain.Experience, error) {
	query := `SELECT ` + experienceColumns + ` FROM experience WHERE id = $1 AND candidate_id = $2`

	e, err := scanExperience(r.db.QueryRow(ctx, query, id, candidateID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperror.Storage(err)
	}
	return e, nil
}

func (r *experienceRepository) ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]domain.Experience, error) {
	query := `SELECT ` + experienceColumns + ` FROM experience WHERE candidate_id = $1 ORDER BY start_time DESC`

	rows, err := r.db.Query(ctx, query, candidateID)
	if err != nil {
		return nil, apperror.Storage(err)
	}
	defer rows.Close()

	experiences := []domain.Experience{}
	for rows.Next() {
		e, err := scanExperience(rows)
		if err != nil {
			return nil, apperror.Storage(err)
		}
		experiences = append(experiences, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.Storage(err)
	}

	return experiences, nil
}

func (r *experienceRepository) Create(ctx context.Context, e *domain.Experience) error {
	query := `INSERT INTO experience (` + experienceColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(ctx, query,
		e.ID, e.CandidateID, e.CompanyName, e.JobID, e.StartTime, e.EndTime, e.Description,
	)
	if err != nil {
		return apperror.Storage(err)
	}
	return nil
}

// Update is scoped by both id and owner so a candidate can never touch
// another candidate's rows; a mismatch surfaces as zero rows affected.
func (r *experienceRepository) Update(ctx context.Context, e *domain.Experience) (int64, error) {
	query := `UPDATE experience
		SET company_name=$1, job_id=$2, start_time=$3, end_time=$4, description=$5
		WHERE id=$6 AND candidate_id=$7`

	tag, err := r.db.Exec(ctx, query,
		e.CompanyName, e.JobID, e.StartTime, e.EndTime, e.Description,
		e.ID, e.CandidateID,
	)
	if err != nil {
		return 0, apperror.Storage(err)
	}
	return tag.RowsAffected(), nil
}

func (r *experienceRepository) Delete(ctx context.Context, id, candidateID uuid.UUID) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM experience WHERE id = $1 AND candidate_id = $2`, id, candidateID)
	if err != nil {
		return 0, apperror.Storage(err)
	}
	return tag.RowsAffected(), nil
}
