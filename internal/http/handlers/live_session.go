package handlers

import (
	"errors"
	"net/http"

	"outreach/internal/domain"
	"outreach/internal/notifications"
)

// LiveSessionRegister stores a Gmail address for future invites. A duplicate
// registration and a failed admin notice both still count as success.
func (a *App) LiveSessionRegister(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if err := decode(r, &req); err != nil {
		a.fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !domain.IsGmailAddress(req.Email) {
		a.fail(w, http.StatusBadRequest, "Valid Gmail address is required")
		return
	}

	created, err := a.liveSessions.Register(r.Context(), req.Email, a.timestamp())
	if err != nil {
		a.log(r).Error().Err(err).Msg("live session registration failed")
		a.fail(w, http.StatusInternalServerError, "Failed to register email")
		return
	}
	a.log(r).Info().Bool("created", created).Msg("live session registration")

	if err := a.relay.Send(r.Context(), a.templates.LiveSessionRegistered(req.Email)); err != nil {
		a.log(r).Warn().Err(err).Msg("live session admin notice failed")
		a.ok(w, "Registered, but failed to send admin email.")
		return
	}
	a.ok(w, "Registered successfully! Admin notified.")
}

// NotifyLiveSession invites every registered email to a session.
func (a *App) NotifyLiveSession(w http.ResponseWriter, r *http.Request) {
	var req notifications.LiveSession
	if err := decode(r, &req); err != nil {
		a.fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if missing(req.Title, req.Date, req.Time, req.Link) {
		a.fail(w, http.StatusBadRequest, "All fields are required")
		return
	}

	res, err := a.broadcaster.InviteRegistered(r.Context(), a.liveSessions, a.templates, req)
	switch {
	case errors.Is(err, notifications.ErrNoRecipients):
		a.fail(w, http.StatusOK, "No registered users found.")
		return
	case err != nil:
		a.log(r).Error().Err(err).Msg("notify live session failed")
		a.fail(w, http.StatusInternalServerError, "Failed to fetch registered emails")
		return
	}
	a.json(w, http.StatusOK, map[string]any{
		"success": true,
		"message": notifications.Summary(res),
		"sent":    res.Sent,
		"failed":  res.Failed,
		"errors":  res.Errors,
	})
}
