package repo

import (
	"context"
	"database/sql"
	"fmt"

	"outreach/internal/domain"
	"outreach/internal/infra"
	"outreach/internal/sqlinline"
)

// PartnershipRepository implements domain.PartnershipRepository.
type PartnershipRepository struct {
	sql infra.SQLExecutor
}

// NewPartnershipRepository creates a new partnership repo.
func NewPartnershipRepository(exec infra.SQLExecutor) *PartnershipRepository {
	return &PartnershipRepository{sql: exec}
}

// Create stores the request. An empty status is recorded as pending.
func (r *PartnershipRepository) Create(ctx context.Context, p *domain.Partnership) error {
	if p.Status == "" {
		p.Status = domain.PartnershipStatusPending
	}
	row := r.sql.QueryRow(ctx, sqlinline.QInsertPartnership,
		p.Name, p.Email, p.Organization, p.Message, p.CreatedAt, p.Status)
	if err := row.Scan(&p.ID); err != nil {
		return fmt.Errorf("insert partnership: %w", err)
	}
	return nil
}

func (r *PartnershipRepository) List(ctx context.Context) ([]domain.Partnership, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListPartnerships)
	if err != nil {
		return nil, fmt.Errorf("list partnerships: %w", err)
	}
	defer rows.Close()

	items := []domain.Partnership{}
	for rows.Next() {
		var p domain.Partnership
		var name, email, org, message, createdAt, status sql.NullString
		if err := rows.Scan(&p.ID, &name, &email, &org, &message, &createdAt, &status); err != nil {
			return nil, fmt.Errorf("scan partnership: %w", err)
		}
		p.Name = name.String
		p.Email = email.String
		p.Organization = org.String
		p.Message = message.String
		p.CreatedAt = createdAt.String
		p.Status = status.String
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list partnerships: %w", err)
	}
	return items, nil
}
