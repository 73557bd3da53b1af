package repo

import (
	"context"
	"database/sql"
	"fmt"

	"outreach/internal/domain"
	"outreach/internal/infra"
	"outreach/internal/sqlinline"
)

// DonationRepository implements domain.DonationRepository.
type DonationRepository struct {
	sql infra.SQLExecutor
}

// NewDonationRepository creates a new donation repo.
func NewDonationRepository(exec infra.SQLExecutor) *DonationRepository {
	return &DonationRepository{sql: exec}
}

// Create inserts a new donation record.
func (r *DonationRepository) Create(ctx context.Context, d *domain.Donation) error {
	row := r.sql.QueryRow(ctx, sqlinline.QInsertDonation, d.Name, d.Email, d.Amount, d.Message, d.CreatedAt)
	if err := row.Scan(&d.ID); err != nil {
		return fmt.Errorf("insert donation: %w", err)
	}
	return nil
}

// List returns all donations in insertion order.
func (r *DonationRepository) List(ctx context.Context) ([]domain.Donation, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListDonations)
	if err != nil {
		return nil, fmt.Errorf("list donations: %w", err)
	}
	defer rows.Close()

	items := []domain.Donation{}
	for rows.Next() {
		var d domain.Donation
		var name, email, message, createdAt sql.NullString
		var amount sql.NullFloat64
		if err := rows.Scan(&d.ID, &name, &email, &amount, &message, &createdAt); err != nil {
			return nil, fmt.Errorf("scan donation: %w", err)
		}
		d.Name = name.String
		d.Email = email.String
		d.Amount = amount.Float64
		d.Message = message.String
		d.CreatedAt = createdAt.String
		items = append(items, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list donations: %w", err)
	}
	return items, nil
}
