package domain

// PartnershipStatusPending is the only status a partnership request can hold.
const PartnershipStatusPending = "pending"

// Partnership is an organization's request to partner.
type Partnership struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Organization string `json:"organization"`
	Message      string `json:"message"`
	CreatedAt    string `json:"createdAt"`
	Status       string `json:"status"`
}
