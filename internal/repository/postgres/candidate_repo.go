package postgres

import (
	"context"
	"errors"

	"jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type candidateRepo struct {
	db *pgxpool.Pool
}

func NewCandidateRepository(db *pgxpool.Pool) domain.CandidateRepository {
	return &candidateRepo{db: db}
}

func scanCandidate(row pgx.Row) (*domain.Candidate, error) {
	var c domain.Candidate
	err := row.Scan(&c.ID, &c.UserID, &c.Status, &c.Description, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *candidateRepo) Create(ctx context.Context, candidate *domain.Candidate) error {
	query := `INSERT INTO candidates (user_id, status, description, created_at)
              VALUES ($1, $2, $3, NOW())
              RETURNING id, created_at`
	return r.db.QueryRow(ctx, query,
		candidate.UserID, candidate.Status, candidate.Description,
	).Scan(&candidate.ID, &candidate.CreatedAt)
}

func (r *candidateRepo) GetByID(ctx context.Context, id int64) (*domain.Candidate, error) {
	query := `SELECT id, user_id, status, description, created_at FROM candidates WHERE id = $1`
	return scanCandidate(r.db.QueryRow(ctx, query, id))
}

func (r *candidateRepo) GetByUserID(ctx context.Context, userID int64) (*domain.Candidate, error) {
	query := `SELECT id, user_id, status, description, created_at FROM candidates WHERE user_id = $1`
	return scanCandidate(r.db.QueryRow(ctx, query, userID))
}

func (r *candidateRepo) Update(ctx context.Context, candidate *domain.Candidate) error {
	query := `UPDATE candidates SET status = $2, description = $3 WHERE id = $1`
	_, err := r.db.Exec(ctx, query, candidate.ID, candidate.Status, candidate.Description)
	return err
}

func (r *candidateRepo) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM candidates WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *candidateRepo) GetProfile(ctx context.Context, candidateID int64) (*domain.CandidateProfile, error) {
	query := `SELECT id, candidate_id, job_category_id, experience_level, expected_salary,
                  about_me, career_objective, experience, education, skills, languages,
                  reference_text, created_at, updated_at
              FROM candidate_profiles WHERE candidate_id = $1`

	var p domain.CandidateProfile
	var skills, languages []string

	err := r.db.QueryRow(ctx, query, candidateID).Scan(
		&p.ID, &p.CandidateID, &p.JobCategoryID, &p.ExperienceLevel, &p.ExpectedSalary,
		&p.AboutMe, &p.CareerObjective, &p.Experience, &p.Education,
		pq.Array(&skills), pq.Array(&languages),
		&p.ReferenceText, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	p.Skills = skills
	p.Languages = languages
	return &p, nil
}

func (r *candidateRepo) UpsertProfile(ctx context.Context, profile *domain.CandidateProfile) error {
	query := `INSERT INTO candidate_profiles
                  (candidate_id, job_category_id, experience_level, expected_salary,
                   about_me, career_objective, experience, education, skills, languages,
                   reference_text, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
              ON CONFLICT (candidate_id) DO UPDATE SET
                  job_category_id = EXCLUDED.job_category_id,
                  experience_level = EXCLUDED.experience_level,
                  expected_salary = EXCLUDED.expected_salary,
                  about_me = EXCLUDED.about_me,
                  career_objective = EXCLUDED.career_objective,
                  experience = EXCLUDED.experience,
                  education = EXCLUDED.education,
                  skills = EXCLUDED.skills,
                  languages = EXCLUDED.languages,
                  reference_text = EXCLUDED.reference_text,
                  updated_at = NOW()
              RETURNING id`
	return r.db.QueryRow(ctx, query,
		profile.CandidateID, profile.JobCategoryID, profile.ExperienceLevel, profile.ExpectedSalary,
		profile.AboutMe, profile.CareerObjective, profile.Experience, profile.Education,
		pq.Array(profile.Skills), pq.Array(profile.Languages),
		profile.ReferenceText,
	).Scan(&profile.ID)
}
