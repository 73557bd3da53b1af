package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"outreach/internal/auth"
	"outreach/internal/domain"
	"outreach/internal/notifications"
	"outreach/internal/storage"
)

// Deps wires the App to its collaborators.
type Deps struct {
	Users        domain.UserRepository
	Courses      domain.CourseRepository
	Partnerships domain.PartnershipRepository
	Donations    domain.DonationRepository
	LiveSessions domain.LiveSessionRepository

	Relay      domain.Relay
	Passwords  auth.PasswordHasher
	Archive    *storage.FileStore
	AdminEmail string

	UploadMaxBytes    int64
	NotifyConcurrency int
	Logger            zerolog.Logger
	Now               func() time.Time
}

type App struct {
	users        domain.UserRepository
	courses      domain.CourseRepository
	partnerships domain.PartnershipRepository
	donations    domain.DonationRepository
	liveSessions domain.LiveSessionRepository

	relay       domain.Relay
	passwords   auth.PasswordHasher
	archive     *storage.FileStore
	templates   notifications.Templates
	broadcaster notifications.Broadcaster

	uploadMaxBytes int64
	logger         zerolog.Logger
	now            func() time.Time
}

func NewApp(d Deps) *App {
	if d.Passwords == nil {
		d.Passwords = auth.PlainPasswords{}
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.UploadMaxBytes <= 0 {
		d.UploadMaxBytes = 10 << 20
	}
	return &App{
		users:        d.Users,
		courses:      d.Courses,
		partnerships: d.Partnerships,
		donations:    d.Donations,
		liveSessions: d.LiveSessions,
		relay:        d.Relay,
		passwords:    d.Passwords,
		archive:      d.Archive,
		templates:    notifications.Templates{Admin: d.AdminEmail},
		broadcaster: notifications.Broadcaster{
			Relay:       d.Relay,
			Concurrency: d.NotifyConcurrency,
			Logger:      d.Logger,
		},
		uploadMaxBytes: d.UploadMaxBytes,
		logger:         d.Logger,
		now:            d.Now,
	}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// error writes the {"error": msg} shape used by the resource routes.
func (a *App) error(w http.ResponseWriter, code int, msg string) {
	a.json(w, code, map[string]string{"error": msg})
}

// fail writes the {"success": false, "message": msg} shape used by the form routes.
func (a *App) fail(w http.ResponseWriter, code int, msg string) {
	a.json(w, code, map[string]any{"success": false, "message": msg})
}

func (a *App) ok(w http.ResponseWriter, msg string) {
	a.json(w, http.StatusOK, map[string]any{"success": true, "message": msg})
}

// log returns the request-scoped logger installed by the logging middleware,
// falling back to the App logger.
func (a *App) log(r *http.Request) *zerolog.Logger {
	if l := zerolog.Ctx(r.Context()); l != nil && l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &a.logger
}

func (a *App) timestamp() string {
	return domain.Timestamp(a.now())
}

var errBadBody = errors.New("invalid request body")

// decode reads a JSON body into dst. An empty body leaves dst untouched.
func decode(r *http.Request, dst any) error {
	if r.Body == nil {
		return nil
	}
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	return errBadBody
}

// missing reports whether any of the values is empty.
func missing(values ...string) bool {
	for _, v := range values {
		if v == "" {
			return true
		}
	}
	return false
}
