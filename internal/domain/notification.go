package domain

import "context"

// Attachment is a file carried by an outbound message.
type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Message is one outbound email. An empty From means the relay's configured sender.
type Message struct {
	From        string
	To          []string
	Subject     string
	Body        string
	Attachments []Attachment
}

// Relay delivers a message. Implementations make exactly one attempt.
type Relay interface {
	Send(ctx context.Context, msg Message) error
}
