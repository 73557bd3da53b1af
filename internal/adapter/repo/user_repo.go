package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"outreach/internal/domain"
	"outreach/internal/infra"
	"outreach/internal/sqlinline"
)

// UserRepository implements domain.UserRepository on top of an infra.SQLExecutor.
type UserRepository struct {
	sql infra.SQLExecutor
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(exec infra.SQLExecutor) *UserRepository {
	return &UserRepository{sql: exec}
}

// Create inserts the user and fills in its id. A duplicate email yields domain.ErrConflict.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	row := r.sql.QueryRow(ctx, sqlinline.QInsertUser,
		user.FirstName,
		user.LastName,
		user.Email,
		user.Phone,
		user.Location,
		user.Education,
		user.Password,
		user.CreatedAt,
	)
	if err := row.Scan(&user.ID); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByEmail fetches a user by email or returns domain.ErrNotFound.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QSelectUserByEmail, email)
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select user: %w", err)
	}
	return u, nil
}

// List returns every stored user.
func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListUsers)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	items := []domain.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		items = append(items, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return items, nil
}

func scanUser(row infra.Row) (*domain.User, error) {
	var u domain.User
	var first, last, email, phone, loc, education, password, createdAt sql.NullString
	if err := row.Scan(&u.ID, &first, &last, &email, &phone, &loc, &education, &password, &createdAt); err != nil {
		return nil, err
	}
	u.FirstName = first.String
	u.LastName = last.String
	u.Email = email.String
	u.Phone = phone.String
	u.Location = loc.String
	u.Education = education.String
	u.Password = password.String
	u.CreatedAt = createdAt.String
	return &u, nil
}
