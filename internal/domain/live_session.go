package domain

import "regexp"

var gmailPattern = regexp.MustCompile(`^[\w.+-]+@gmail\.com$`)

// LiveSessionRegistration records an email subscribed to live-session invites.
type LiveSessionRegistration struct {
	ID           int64  `json:"id"`
	Email        string `json:"email"`
	RegisteredAt string `json:"registeredAt"`
}

// IsGmailAddress reports whether email looks like a Gmail address.
func IsGmailAddress(email string) bool {
	return gmailPattern.MatchString(email)
}
