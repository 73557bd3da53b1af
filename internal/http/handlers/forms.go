package handlers

import (
	"net/http"

	"outreach/internal/domain"
	"outreach/internal/notifications"
)

const relayFailed = "Failed to send email"

// send relays msgs in order and stops at the first failure. The relay error
// is logged, never returned to the caller.
func (a *App) send(w http.ResponseWriter, r *http.Request, success string, msgs ...domain.Message) {
	for _, msg := range msgs {
		if err := a.relay.Send(r.Context(), msg); err != nil {
			a.log(r).Error().Err(err).Str("subject", msg.Subject).Msg("relay send failed")
			a.fail(w, http.StatusInternalServerError, relayFailed)
			return
		}
	}
	a.ok(w, success)
}

// NewsletterSubscribe sends a welcome to the subscriber and a notice to the admin.
func (a *App) NewsletterSubscribe(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if err := decode(r, &req); err != nil {
		a.fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" {
		a.fail(w, http.StatusBadRequest, "Email is required")
		return
	}
	a.send(w, r, "Subscription successful! Confirmation email sent.",
		a.templates.NewsletterWelcome(req.Email),
		a.templates.NewsletterAdmin(req.Email),
	)
}

func (a *App) SendPartnerForm(w http.ResponseWriter, r *http.Request) {
	var req notifications.PartnerForm
	if err := decode(r, &req); err != nil {
		a.fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if missing(req.Type, req.Name, req.Email, req.Message) {
		a.fail(w, http.StatusBadRequest, "Missing required fields")
		return
	}
	a.send(w, r, "Form submitted successfully! Email sent.", a.templates.Partner(req))
}

func (a *App) ApplyAIRole(w http.ResponseWriter, r *http.Request) {
	var req notifications.JobApplication
	if err := decode(r, &req); err != nil {
		a.fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if missing(req.Name, req.Email, req.Message, req.ToEmail) {
		a.fail(w, http.StatusBadRequest, "Missing required fields")
		return
	}
	a.send(w, r, "Application submitted successfully! Email sent to company.", a.templates.JobApplication(req))
}

type namePhoneRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

func (a *App) ReferStudent(w http.ResponseWriter, r *http.Request) {
	var req namePhoneRequest
	if err := decode(r, &req); err != nil {
		a.fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if missing(req.Name, req.Phone) {
		a.fail(w, http.StatusBadRequest, "Name and phone are required")
		return
	}
	a.send(w, r, "Student referred successfully! We will contact them soon.", a.templates.StudentReferral(req.Name, req.Phone))
}

func (a *App) Volunteer(w http.ResponseWriter, r *http.Request) {
	var req namePhoneRequest
	if err := decode(r, &req); err != nil {
		a.fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if missing(req.Name, req.Phone) {
		a.fail(w, http.StatusBadRequest, "Name and phone are required")
		return
	}
	a.send(w, r, "Thank you for volunteering! We will contact you soon.", a.templates.Volunteer(req.Name, req.Phone))
}

func (a *App) BecomePartnerHelp(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Message string `json:"message"`
	}
	if err := decode(r, &req); err != nil {
		a.fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Message == "" {
		a.fail(w, http.StatusBadRequest, "Message is required")
		return
	}
	a.send(w, r, "Thank you for your interest! We will contact you soon.", a.templates.PartnerHelp(req.Message))
}
