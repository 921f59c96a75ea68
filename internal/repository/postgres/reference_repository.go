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

type referenceRepository struct {
	db *pgxpool.Pool
}

func NewReferenceRepository(db *pgxpool.Pool) domain.ReferenceRepository {
	return &referenceRepository{db: db}
}

// candidate_id stays out of the selected columns; it is never exposed to the
// client.
const referenceColumns = `id, first_name, last_name, email, phone_number, company_name`

func scanReference(row pgx.Row) (*domain.Reference, error) {
	var ref domain.Reference
	err := row.Scan(&ref.ID, &ref.FirstName, &ref.LastName, &ref.Email, &ref.PhoneNumber, &ref.CompanyName)
	if err != nil {
		return nil, err
	}
	return &ref, nil
}

func (r *referenceRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Reference, error) {
	query := `SELECT ` + referenceColumns + ` FROM reference WHERE id = $1`

	ref, err := scanReference(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperror.Storage(err)
	}
	return ref, nil
}

func (r *referenceRepository) ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]domain.Reference, error) {
	query := `SELECT ` + referenceColumns + ` FROM reference WHERE candidate_id = $1`

	rows, err := r.db.Query(ctx, query, candidateID)
	if err != nil {
		return nil, apperror.Storage(err)
	}
	defer rows.Close()

	references := []domain.Reference{}
	for rows.Next() {
		ref, err := scanReference(rows)
		if err != nil {
			return nil, apperror.Storage(err)
		}
		references = append(references, *ref)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.Storage(err)
	}

	return references, nil
}

func (r *referenceRepository) Create(ctx context.Context, candidateID uuid.UUID, ref *domain.Reference) error {
	query := `INSERT INTO reference (id, candidate_id, first_name, last_name, email, phone_number, company_name)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(ctx, query,
		ref.ID, candidateID, ref.FirstName, ref.LastName, ref.Email, ref.PhoneNumber, ref.CompanyName,
	)
	if err != nil {
		return apperror.Storage(err)
	}
	return nil
}

func (r *referenceRepository) Update(ctx context.Context, candidateID uuid.UUID, ref *domain.Reference) (int64, error) {
	query := `UPDATE reference
		SET first_name=$1, last_name=$2, email=$3, phone_number=$4, company_name=$5
		WHERE id=$6 AND candidate_id=$7`

	tag, err := r.db.Exec(ctx, query,
		ref.FirstName, ref.LastName, ref.Email, ref.PhoneNumber, ref.CompanyName,
		ref.ID, candidateID,
	)
	if err != nil {
		return 0, apperror.Storage(err)
	}
	return tag.RowsAffected(), nil
}

func (r *referenceRepository) Delete(ctx context.Context, id, candidateID uuid.UUID) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM reference WHERE id = $1 AND candidate_id = $2`, id, candidateID)
	if err != nil {
		return 0, apperror.Storage(err)
	}
	return tag.RowsAffected(), nil
}
