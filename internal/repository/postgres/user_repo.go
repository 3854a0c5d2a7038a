package postgres

import (
	"context"
	"errors"

	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgreSQL error codes
const (
	pgUniqueViolation = "23505"
)

type userRepo struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) domain.UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) CreateWithProfile(ctx context.Context, user *domain.User, employer *domain.Employer, candidate *domain.Candidate) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return apperror.Internal(err)
	}
	defer tx.Rollback(ctx)

	query := `INSERT INTO users (name, email, password, role, gender, phone, date_of_birth, address, active, created_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
              RETURNING id`
	err = tx.QueryRow(ctx, query,
		user.Name, user.Email, user.Password, user.Role,
		user.Gender, user.Phone, user.DateOfBirth, user.Address,
		user.Active, user.CreatedAt,
	).Scan(&user.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.Conflict("User with this email already exists")
		}
		return apperror.Internal(err)
	}

	if employer != nil {
		employer.UserID = user.ID
		err = tx.QueryRow(ctx,
			`INSERT INTO employers (user_id, company_name, company_email, is_active, created_at)
             VALUES ($1, $2, $3, $4, NOW()) RETURNING id`,
			employer.UserID, employer.CompanyName, employer.CompanyEmail, employer.Active,
		).Scan(&employer.ID)
		if err != nil {
			return apperror.Internal(err)
		}
	}

	if candidate != nil {
		candidate.UserID = user.ID
		err = tx.QueryRow(ctx,
			`INSERT INTO candidates (user_id, status, description, created_at)
             VALUES ($1, $2, $3, NOW()) RETURNING id`,
			candidate.UserID, candidate.Status, candidate.Description,
		).Scan(&candidate.ID)
		if err != nil {
			return apperror.Internal(err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

const userColumns = `id, name, email, password, role, gender, phone, date_of_birth, address, active, created_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.Password, &u.Role,
		&u.Gender, &u.Phone, &u.DateOfBirth, &u.Address,
		&u.Active, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.db.QueryRow(ctx, query, id))
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return scanUser(r.db.QueryRow(ctx, query, email))
}

func (r *userRepo) List(ctx context.Context) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(
			&u.ID, &u.Name, &u.Email, &u.Password, &u.Role,
			&u.Gender, &u.Phone, &u.DateOfBirth, &u.Address,
			&u.Active, &u.CreatedAt,
		); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *userRepo) Update(ctx context.Context, user *domain.User) error {
	query := `UPDATE users SET name = $2, email = $3, role = $4, gender = $5,
                  phone = $6, date_of_birth = $7, address = $8, active = $9
              WHERE id = $1`
	_, err := r.db.Exec(ctx, query,
		user.ID, user.Name, user.Email, user.Role, user.Gender,
		user.Phone, user.DateOfBirth, user.Address, user.Active,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.Conflict("User with this email already exists")
		}
		return err
	}
	return nil
}

func (r *userRepo) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	_, err := r.db.Exec(ctx, `UPDATE users SET password = $2 WHERE id = $1`, id, passwordHash)
	return err
}

// Deactivate soft-deletes users; rows stay in place with active = false.
func (r *userRepo) Deactivate(ctx context.Context, ids []int64) (int64, error) {
	tag, err := r.db.Exec(ctx, `UPDATE users SET active = false WHERE id = ANY($1)`, ids)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
