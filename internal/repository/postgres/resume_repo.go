package postgres

import (
	"context"
	"errors"

	"jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type resumeRepo struct {
	db *pgxpool.Pool
}

func NewResumeRepository(db *pgxpool.Pool) domain.ResumeRepository {
	return &resumeRepo{db: db}
}

const resumeColumns = `id, candidate_id, resume_type, resume_file, resume_content,
       recommendation_letter, is_primary, created_at, updated_at`

func scanResume(row pgx.Row) (*domain.Resume, error) {
	var res domain.Resume
	err := row.Scan(
		&res.ID, &res.CandidateID, &res.Type, &res.File, &res.Content,
		&res.RecommendationLetter, &res.IsPrimary, &res.CreatedAt, &res.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &res, nil
}

func (r *resumeRepo) Create(ctx context.Context, resume *domain.Resume) error {
	query := `INSERT INTO resumes (candidate_id, resume_type, resume_file, resume_content,
                  recommendation_letter, is_primary, created_at)
              VALUES ($1, $2, $3, $4, $5, $6, NOW())
              RETURNING id, created_at`
	return r.db.QueryRow(ctx, query,
		resume.CandidateID, resume.Type, resume.File, resume.Content,
		resume.RecommendationLetter, resume.IsPrimary,
	).Scan(&resume.ID, &resume.CreatedAt)
}

func (r *resumeRepo) GetByID(ctx context.Context, id int64) (*domain.Resume, error) {
	query := `SELECT ` + resumeColumns + ` FROM resumes WHERE id = $1`
	return scanResume(r.db.QueryRow(ctx, query, id))
}

func (r *resumeRepo) ListByCandidate(ctx context.Context, candidateID int64) ([]domain.Resume, error) {
	query := `SELECT ` + resumeColumns + ` FROM resumes
              WHERE candidate_id = $1
              ORDER BY is_primary DESC, created_at DESC`
	rows, err := r.db.Query(ctx, query, candidateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var resumes []domain.Resume
	for rows.Next() {
		var res domain.Resume
		if err := rows.Scan(
			&res.ID, &res.CandidateID, &res.Type, &res.File, &res.Content,
			&res.RecommendationLetter, &res.IsPrimary, &res.CreatedAt, &res.UpdatedAt,
		); err != nil {
			return nil, err
		}
		resumes = append(resumes, res)
	}
	return resumes, rows.Err()
}

func (r *resumeRepo) GetPrimary(ctx context.Context, candidateID int64) (*domain.Resume, error) {
	query := `SELECT ` + resumeColumns + ` FROM resumes
              WHERE candidate_id = $1 AND is_primary = true`
	return scanResume(r.db.QueryRow(ctx, query, candidateID))
}

func (r *resumeRepo) Update(ctx context.Context, resume *domain.Resume) error {
	query := `UPDATE resumes SET resume_type = $2, resume_file = $3, resume_content = $4,
                  recommendation_letter = $5, is_primary = $6, updated_at = NOW()
              WHERE id = $1`
	_, err := r.db.Exec(ctx, query,
		resume.ID, resume.Type, resume.File, resume.Content,
		resume.RecommendationLetter, resume.IsPrimary,
	)
	return err
}

func (r *resumeRepo) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM resumes WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *resumeRepo) SetPrimary(ctx context.Context, candidateID, resumeID int64) (bool, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx,
		`UPDATE resumes SET is_primary = true WHERE id = $1 AND candidate_id = $2`,
		resumeID, candidateID,
	)
	if err != nil {
		return false, err
	}
	if tag.RowsAffected() == 0 {
		return false, nil
	}

	_, err = tx.Exec(ctx,
		`UPDATE resumes SET is_primary = false WHERE candidate_id = $1 AND id <> $2`,
		candidateID, resumeID,
	)
	if err != nil {
		return false, err
	}
	return true, tx.Commit(ctx)
}
