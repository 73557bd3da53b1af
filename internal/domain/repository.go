package domain

import "context"

// UserRepository defines access methods for users.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context) ([]User, error)
}

// CourseRepository persists the course catalogue.
type CourseRepository interface {
	Create(ctx context.Context, course *Course) error
	List(ctx context.Context) ([]Course, error)
}

// PartnershipRepository persists partnership requests.
type PartnershipRepository interface {
	Create(ctx context.Context, partnership *Partnership) error
	List(ctx context.Context) ([]Partnership, error)
}

// DonationRepository handles donation persistence.
type DonationRepository interface {
	Create(ctx context.Context, donation *Donation) error
	List(ctx context.Context) ([]Donation, error)
}

// LiveSessionRepository stores live-session registrations. Register reports
// created=false when the email was already registered.
type LiveSessionRepository interface {
	Register(ctx context.Context, email, registeredAt string) (created bool, err error)
	ListEmails(ctx context.Context) ([]string, error)
}
