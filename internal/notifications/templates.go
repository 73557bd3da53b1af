// Package notifications composes the outbound emails sent on behalf of the
// site's web forms and fans invitations out to live-session registrants.
package notifications

import (
	"fmt"

	"outreach/internal/domain"
)

// Templates builds messages addressed either to the site's admin inbox or to
// an explicit recipient.
type Templates struct {
	Admin string
}

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}

func (t Templates) NewsletterWelcome(email string) domain.Message {
	return domain.Message{
		To:      []string{email},
		Subject: "Welcome to Rural Genius Newsletter!",
		Body:    "Thank you for subscribing! You will now receive updates about our courses and news.",
	}
}

func (t Templates) NewsletterAdmin(email string) domain.Message {
	return domain.Message{
		To:      []string{t.Admin},
		Subject: "New Newsletter Subscription",
		Body:    fmt.Sprintf("A new user subscribed: %s", email),
	}
}

// PartnerForm is the "Partner With Us" submission.
type PartnerForm struct {
	Type         string `json:"type"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Organization string `json:"organization"`
	Message      string `json:"message"`
}

func (t Templates) Partner(f PartnerForm) domain.Message {
	return domain.Message{
		To:      []string{t.Admin},
		Subject: fmt.Sprintf("New Partner With Us Form Submission: %s", f.Type),
		Body: fmt.Sprintf("Type: %s\nName: %s\nEmail: %s\nPhone: %s\nOrganization: %s\nMessage: %s",
			f.Type, f.Name, f.Email, orNA(f.Phone), orNA(f.Organization), f.Message),
	}
}

// JobApplication is an application for an AI role, delivered to ToEmail.
type JobApplication struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	ResumeLink string `json:"resumeLink"`
	Message    string `json:"message"`
	ToEmail    string `json:"toEmail"`
}

func (t Templates) JobApplication(a JobApplication) domain.Message {
	return domain.Message{
		To:      []string{a.ToEmail},
		Subject: fmt.Sprintf("New AI Job Application from %s", a.Name),
		Body: fmt.Sprintf("Name: %s\nEmail: %s\nPhone: %s\nResume Link: %s\nMessage: %s",
			a.Name, a.Email, orNA(a.Phone), orNA(a.ResumeLink), a.Message),
	}
}

func (t Templates) LiveSessionRegistered(email string) domain.Message {
	return domain.Message{
		To:      []string{t.Admin},
		Subject: "New Live Session Registration",
		Body:    fmt.Sprintf("A new user registered for live sessions: %s", email),
	}
}

// LiveSession describes an upcoming session announced to registrants.
type LiveSession struct {
	Title string `json:"title"`
	Date  string `json:"date"`
	Time  string `json:"time"`
	Link  string `json:"link"`
}

func (t Templates) LiveSessionInvite(s LiveSession, to string) domain.Message {
	return domain.Message{
		To:      []string{to},
		Subject: fmt.Sprintf("Upcoming Live Session - %s", s.Title),
		Body: fmt.Sprintf("Dear Learner,\n\nYou are invited to our upcoming live session!\n\nTopic: %s\nDate: %s\nTime: %s\nJoin Link: %s\n\nSee you there!\n",
			s.Title, s.Date, s.Time, s.Link),
	}
}

func (t Templates) StudentReferral(name, phone string) domain.Message {
	return domain.Message{
		To:      []string{t.Admin},
		Subject: "New Student Referral",
		Body:    fmt.Sprintf("Student Name: %s\nPhone: %s", name, phone),
	}
}

func (t Templates) Volunteer(name, phone string) domain.Message {
	return domain.Message{
		To:      []string{t.Admin},
		Subject: "New Volunteer Registration",
		Body:    fmt.Sprintf("Volunteer Name: %s\nPhone: %s", name, phone),
	}
}

func (t Templates) PartnerHelp(message string) domain.Message {
	return domain.Message{
		To:      []string{t.Admin},
		Subject: "New Partner Help Submission",
		Body:    fmt.Sprintf("Partner Help Message:\n%s", message),
	}
}

// ContactMessage is a "Contact Us" submission with an optional attachment.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (t Templates) Contact(c ContactMessage, attachment *domain.Attachment) domain.Message {
	subject := "New Contact Us Message"
	if c.Subject != "" {
		subject += " - " + c.Subject
	}
	msg := domain.Message{
		To:      []string{t.Admin},
		Subject: subject,
		Body: fmt.Sprintf("Name: %s\nEmail: %s\nPhone: %s\nSubject: %s\nMessage: %s",
			c.Name, c.Email, orNA(c.Phone), orNA(c.Subject), c.Message),
	}
	if attachment != nil {
		msg.Attachments = []domain.Attachment{*attachment}
	}
	return msg
}
