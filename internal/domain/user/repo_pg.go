package user

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

const userCols = `id, email, password_hash, full_name, phone, role, date_of_birth, gender,
	address, specialization, experience, rating, available, bio, created_at, updated_at`

const uniqueViolation = "23505"

func (r *repoPG) Create(ctx context.Context, u *User) error {
	u.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO users (id, email, password_hash, full_name, phone, role, date_of_birth, gender)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		u.ID, u.Email, u.PasswordHash, u.FullName, u.Phone, u.Role, u.DateOfBirth, u.Gender,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ErrEmailTaken
		}
		return err
	}
	return nil
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	return scanUser(r.pool.QueryRow(ctx, `SELECT `+userCols+` FROM users WHERE id = $1`, id))
}

func (r *repoPG) GetByEmail(ctx context.Context, email string) (*User, error) {
	return scanUser(r.pool.QueryRow(ctx, `SELECT `+userCols+` FROM users WHERE email = $1`, email))
}

func (r *repoPG) UpdateProfile(ctx context.Context, id uuid.UUID, upd *ProfileUpdate) (*User, error) {
	dob, err := ParseDate(upd.DateOfBirth)
	if err != nil {
		return nil, err
	}
	return scanUser(r.pool.QueryRow(ctx, `
		UPDATE users SET full_name=$2, phone=$3, date_of_birth=$4, gender=$5, address=$6, updated_at=NOW()
		WHERE id = $1
		RETURNING `+userCols,
		id, upd.FullName, upd.Phone, dob, upd.Gender, upd.Address,
	))
}

func (r *repoPG) ListDoctors(ctx context.Context, limit, offset int) ([]*User, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM users WHERE role = 'doctor' AND available = TRUE`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `
		SELECT `+userCols+` FROM users
		WHERE role = 'doctor' AND available = TRUE
		ORDER BY full_name LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var doctors []*User
	for rows.Next() {
		u, err := scanUserRow(rows)
		if err != nil {
			return nil, 0, err
		}
		doctors = append(doctors, u)
	}
	return doctors, total, rows.Err()
}

func (r *repoPG) GetDoctor(ctx context.Context, id uuid.UUID) (*User, error) {
	return scanUser(r.pool.QueryRow(ctx,
		`SELECT `+userCols+` FROM users WHERE id = $1 AND role = 'doctor'`, id))
}

func (r *repoPG) SetAvailability(ctx context.Context, id uuid.UUID, available bool) (*User, error) {
	return scanUser(r.pool.QueryRow(ctx, `
		UPDATE users SET available=$2, updated_at=NOW()
		WHERE id = $1 AND role = 'doctor'
		RETURNING `+userCols,
		id, available,
	))
}

func scanUser(row pgx.Row) (*User, error) {
	u, err := scanUserRow(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return u, err
}

func scanUserRow(row pgx.Row) (*User, error) {
	var u User
	err := row.Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.FullName, &u.Phone, &u.Role, &u.DateOfBirth, &u.Gender,
		&u.Address, &u.Specialization, &u.Experience, &u.Rating, &u.Available, &u.Bio,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
