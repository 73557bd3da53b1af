package handlers

import (
	"errors"
	"net/http"

	"outreach/internal/auth"
	"outreach/internal/domain"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Location  string `json:"location"`
	Education string `json:"education"`
	Password  string `json:"password"`
}

func (req registerRequest) incomplete() bool {
	return missing(req.FirstName, req.LastName, req.Email, req.Password)
}

func (req registerRequest) user(createdAt string) *domain.User {
	return &domain.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Location:  req.Location,
		Education: req.Education,
		CreatedAt: createdAt,
	}
}

const registerMissingFields = "First name, last name, email, and password are required"

func (a *App) authFailed(w http.ResponseWriter, msg string) {
	a.json(w, http.StatusInternalServerError, map[string]any{"success": false, "error": msg})
}

// Login checks the submitted credentials. Unknown email and wrong password
// produce the same 401.
func (a *App) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decode(r, &req); err != nil {
		a.fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if missing(req.Email, req.Password) {
		a.fail(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, err := a.users.GetByEmail(r.Context(), req.Email)
	if err == nil && !a.passwords.Matches(user.Password, req.Password) {
		err = domain.ErrInvalidCredentials
	}
	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrInvalidCredentials):
		a.fail(w, http.StatusUnauthorized, "Invalid credentials")
		return
	case err != nil:
		a.log(r).Error().Err(err).Msg("login lookup failed")
		a.authFailed(w, "Login failed")
		return
	}

	token, err := auth.NewOpaqueToken()
	if err != nil {
		a.log(r).Error().Err(err).Msg("token generation failed")
		a.authFailed(w, "Login failed")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"success": true, "user": user, "token": token})
}

// Register creates a user and returns it with a fresh token.
func (a *App) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decode(r, &req); err != nil {
		a.fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.incomplete() {
		a.fail(w, http.StatusBadRequest, registerMissingFields)
		return
	}

	user, err := a.createUser(r, req)
	switch {
	case errors.Is(err, domain.ErrConflict):
		a.fail(w, http.StatusBadRequest, "User already exists")
		return
	case err != nil:
		a.log(r).Error().Err(err).Msg("registration failed")
		a.authFailed(w, "Registration failed")
		return
	}

	token, err := auth.NewOpaqueToken()
	if err != nil {
		a.log(r).Error().Err(err).Msg("token generation failed")
		a.authFailed(w, "Registration failed")
		return
	}
	a.json(w, http.StatusCreated, map[string]any{"success": true, "user": user, "token": token})
}

// createUser rejects an email that is already registered, both on the
// pre-insert lookup and on a unique violation from the insert itself.
func (a *App) createUser(r *http.Request, req registerRequest) (*domain.User, error) {
	existing, err := a.users.GetByEmail(r.Context(), req.Email)
	switch {
	case err == nil && existing != nil:
		return nil, domain.ErrConflict
	case err != nil && !errors.Is(err, domain.ErrNotFound):
		return nil, err
	}

	hashed, err := a.passwords.Hash(req.Password)
	if err != nil {
		return nil, err
	}
	user := req.user(a.timestamp())
	user.Password = hashed
	if err := a.users.Create(r.Context(), user); err != nil {
		return nil, err
	}
	return user, nil
}
