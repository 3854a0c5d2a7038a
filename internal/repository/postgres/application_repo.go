package postgres

import (
	"context"
	"errors"

	"jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type applicationRepo struct {
	db *pgxpool.Pool
}

func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

const applicationColumns = `id, job_id, candidate_id, resume_id, status, applied_at`

func scanApplication(row pgx.Row) (*domain.Application, error) {
	var a domain.Application
	err := row.Scan(&a.ID, &a.JobID, &a.CandidateID, &a.ResumeID, &a.Status, &a.AppliedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	query := `INSERT INTO applications (job_id, candidate_id, resume_id, status, applied_at)
              VALUES ($1, $2, $3, $4, NOW())
              RETURNING id, applied_at`
	return r.db.QueryRow(ctx, query,
		app.JobID, app.CandidateID, app.ResumeID, app.Status,
	).Scan(&app.ID, &app.AppliedAt)
}

func (r *applicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE id = $1`
	return scanApplication(r.db.QueryRow(ctx, query, id))
}

func (r *applicationRepo) FindByJobAndCandidate(ctx context.Context, jobID, candidateID int64) (*domain.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications
              WHERE job_id = $1 AND candidate_id = $2`
	return scanApplication(r.db.QueryRow(ctx, query, jobID, candidateID))
}

func (r *applicationRepo) ListByJob(ctx context.Context, jobID int64, offset, limit int) ([]domain.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications
              WHERE job_id = $1 ORDER BY applied_at DESC OFFSET $2 LIMIT $3`
	rows, err := r.db.Query(ctx, query, jobID, offset, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []domain.Application
	for rows.Next() {
		var a domain.Application
		if err := rows.Scan(&a.ID, &a.JobID, &a.CandidateID, &a.ResumeID, &a.Status, &a.AppliedAt); err != nil {
			return nil, err
		}
		apps = append(apps, a)
	}
	return apps, rows.Err()
}

func (r *applicationRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	_, err := r.db.Exec(ctx, `UPDATE applications SET status = $2 WHERE id = $1`, id, status)
	return err
}
