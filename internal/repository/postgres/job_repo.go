package postgres

import (
	"context"
	"errors"

	"jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

const jobColumns = `id, employer_id, title, job_type, level, position_number, salary_range,
       location, description, experience_required, posting_date, closing_date, status, created_at`

func (r *jobRepo) Create(ctx context.Context, job *domain.Job, categoryIDs []int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `INSERT INTO jobs (employer_id, title, job_type, level, position_number,
                  salary_range, location, description, experience_required,
                  posting_date, closing_date, status, created_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, CURRENT_DATE, $10, $11, NOW())
              RETURNING id, posting_date, created_at`
	err = tx.QueryRow(ctx, query,
		job.EmployerID, job.Title, job.Type, job.Level, job.PositionNumber,
		job.SalaryRange, job.Location, job.Description, job.ExperienceRequired,
		job.ClosingDate, job.Status,
	).Scan(&job.ID, &job.PostingDate, &job.CreatedAt)
	if err != nil {
		return err
	}

	if err := replaceCategories(ctx, tx, job.ID, categoryIDs); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func replaceCategories(ctx context.Context, tx pgx.Tx, jobID int64, categoryIDs []int64) error {
	if _, err := tx.Exec(ctx, `DELETE FROM job_categories WHERE job_id = $1`, jobID); err != nil {
		return err
	}
	for _, catID := range categoryIDs {
		if _, err := tx.Exec(ctx,
			`INSERT INTO job_categories (job_id, category_id) VALUES ($1, $2)`,
			jobID, catID,
		); err != nil {
			return err
		}
	}
	return nil
}

func (r *jobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`
	var j domain.Job
	err := r.db.QueryRow(ctx, query, id).Scan(
		&j.ID, &j.EmployerID, &j.Title, &j.Type, &j.Level, &j.PositionNumber,
		&j.SalaryRange, &j.Location, &j.Description, &j.ExperienceRequired,
		&j.PostingDate, &j.ClosingDate, &j.Status, &j.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if err := r.loadCategories(ctx, &j); err != nil {
		return nil, err
	}
	return &j, nil
}

func (r *jobRepo) loadCategories(ctx context.Context, job *domain.Job) error {
	rows, err := r.db.Query(ctx,
		`SELECT c.id, c.name FROM categories c
         JOIN job_categories jc ON jc.category_id = c.id
         WHERE jc.job_id = $1
         ORDER BY c.name`, job.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	job.Categories = []domain.Category{}
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return err
		}
		job.Categories = append(job.Categories, c)
	}
	return rows.Err()
}

func (r *jobRepo) list(ctx context.Context, query string, args ...interface{}) ([]domain.Job, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		var j domain.Job
		if err := rows.Scan(
			&j.ID, &j.EmployerID, &j.Title, &j.Type, &j.Level, &j.PositionNumber,
			&j.SalaryRange, &j.Location, &j.Description, &j.ExperienceRequired,
			&j.PostingDate, &j.ClosingDate, &j.Status, &j.CreatedAt,
		); err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range jobs {
		if err := r.loadCategories(ctx, &jobs[i]); err != nil {
			return nil, err
		}
	}
	return jobs, nil
}

func (r *jobRepo) ListOpen(ctx context.Context, offset, limit int) ([]domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs
              WHERE status = $1 ORDER BY created_at DESC OFFSET $2 LIMIT $3`
	return r.list(ctx, query, domain.JobStatusOpen, offset, limit)
}

func (r *jobRepo) ListByEmployer(ctx context.Context, employerID int64, offset, limit int) ([]domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs
              WHERE employer_id = $1 ORDER BY created_at DESC OFFSET $2 LIMIT $3`
	return r.list(ctx, query, employerID, offset, limit)
}

func (r *jobRepo) Update(ctx context.Context, job *domain.Job, categoryIDs []int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `UPDATE jobs SET title = $2, job_type = $3, level = $4, position_number = $5,
                  salary_range = $6, location = $7, description = $8,
                  experience_required = $9, closing_date = $10, status = $11
              WHERE id = $1`
	_, err = tx.Exec(ctx, query,
		job.ID, job.Title, job.Type, job.Level, job.PositionNumber,
		job.SalaryRange, job.Location, job.Description, job.ExperienceRequired,
		job.ClosingDate, job.Status,
	)
	if err != nil {
		return err
	}

	if categoryIDs != nil {
		if err := replaceCategories(ctx, tx, job.ID, categoryIDs); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (r *jobRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	return err
}
