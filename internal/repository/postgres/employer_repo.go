package postgres

import (
	"context"
	"errors"

	"jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type employerRepo struct {
	db *pgxpool.Pool
}

func NewEmployerRepository(db *pgxpool.Pool) domain.EmployerRepository {
	return &employerRepo{db: db}
}

const employerColumns = `id, user_id, company_name, company_email, company_logo,
       company_contact, company_address, company_description, company_website,
       is_active, created_at`

func scanEmployer(row pgx.Row) (*domain.Employer, error) {
	var e domain.Employer
	err := row.Scan(
		&e.ID, &e.UserID, &e.CompanyName, &e.CompanyEmail, &e.CompanyLogo,
		&e.CompanyContact, &e.CompanyAddress, &e.CompanyDescription, &e.CompanyWebsite,
		&e.Active, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (r *employerRepo) Create(ctx context.Context, employer *domain.Employer) error {
	query := `INSERT INTO employers (user_id, company_name, company_email, company_logo,
                  company_contact, company_address, company_description, company_website,
                  is_active, created_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
              RETURNING id, created_at`
	return r.db.QueryRow(ctx, query,
		employer.UserID, employer.CompanyName, employer.CompanyEmail, employer.CompanyLogo,
		employer.CompanyContact, employer.CompanyAddress, employer.CompanyDescription,
		employer.CompanyWebsite, employer.Active,
	).Scan(&employer.ID, &employer.CreatedAt)
}

func (r *employerRepo) GetByID(ctx context.Context, id int64) (*domain.Employer, error) {
	query := `SELECT ` + employerColumns + ` FROM employers WHERE id = $1`
	return scanEmployer(r.db.QueryRow(ctx, query, id))
}

func (r *employerRepo) GetByUserID(ctx context.Context, userID int64) (*domain.Employer, error) {
	query := `SELECT ` + employerColumns + ` FROM employers WHERE user_id = $1`
	return scanEmployer(r.db.QueryRow(ctx, query, userID))
}

func (r *employerRepo) List(ctx context.Context, offset, limit int) ([]domain.Employer, error) {
	query := `SELECT ` + employerColumns + ` FROM employers ORDER BY id OFFSET $1 LIMIT $2`
	rows, err := r.db.Query(ctx, query, offset, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employers []domain.Employer
	for rows.Next() {
		var e domain.Employer
		if err := rows.Scan(
			&e.ID, &e.UserID, &e.CompanyName, &e.CompanyEmail, &e.CompanyLogo,
			&e.CompanyContact, &e.CompanyAddress, &e.CompanyDescription, &e.CompanyWebsite,
			&e.Active, &e.CreatedAt,
		); err != nil {
			return nil, err
		}
		employers = append(employers, e)
	}
	return employers, rows.Err()
}

func (r *employerRepo) Update(ctx context.Context, employer *domain.Employer) error {
	query := `UPDATE employers SET company_name = $2, company_email = $3, company_logo = $4,
                  company_contact = $5, company_address = $6, company_description = $7,
                  company_website = $8
              WHERE id = $1`
	_, err := r.db.Exec(ctx, query,
		employer.ID, employer.CompanyName, employer.CompanyEmail, employer.CompanyLogo,
		employer.CompanyContact, employer.CompanyAddress, employer.CompanyDescription,
		employer.CompanyWebsite,
	)
	return err
}

func (r *employerRepo) Deactivate(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `UPDATE employers SET is_active = false WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
