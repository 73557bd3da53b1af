package repo

import (
	"context"
	"fmt"

	"outreach/internal/infra"
	"outreach/internal/sqlinline"
)

// LiveSessionRepository implements domain.LiveSessionRepository.
type LiveSessionRepository struct {
	sql infra.SQLExecutor
}

// NewLiveSessionRepository creates a new live-session registration repo.
func NewLiveSessionRepository(exec infra.SQLExecutor) *LiveSessionRepository {
	return &LiveSessionRepository{sql: exec}
}

// Register inserts the email unless it is already present. A duplicate is not an error.
func (r *LiveSessionRepository) Register(ctx context.Context, email, registeredAt string) (bool, error) {
	res, err := r.sql.Exec(ctx, sqlinline.QInsertLiveSessionRegistration, email, registeredAt)
	if err != nil {
		return false, fmt.Errorf("insert live session registration: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		// insert already succeeded, only the count is unavailable
		return true, nil
	}
	return n > 0, nil
}

// ListEmails returns registered emails in registration order.
func (r *LiveSessionRepository) ListEmails(ctx context.Context) ([]string, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListLiveSessionEmails)
	if err != nil {
		return nil, fmt.Errorf("list live session emails: %w", err)
	}
	defer rows.Close()

	var emails []string
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, fmt.Errorf("scan live session email: %w", err)
		}
		emails = append(emails, email)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list live session emails: %w", err)
	}
	return emails, nil
}
