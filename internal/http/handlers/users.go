package handlers

import (
	"errors"
	"net/http"

	"outreach/internal/domain"
)

func (a *App) UsersList(w http.ResponseWriter, r *http.Request) {
	users, err := a.users.List(r.Context())
	if err != nil {
		a.log(r).Error().Err(err).Msg("list users failed")
		a.error(w, http.StatusInternalServerError, "Failed to fetch users")
		return
	}
	a.json(w, http.StatusOK, users)
}

// UsersRegister is the resource-style registration entry point.
func (a *App) UsersRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decode(r, &req); err != nil {
		a.error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.incomplete() {
		a.error(w, http.StatusBadRequest, registerMissingFields)
		return
	}

	user, err := a.createUser(r, req)
	switch {
	case errors.Is(err, domain.ErrConflict):
		a.error(w, http.StatusBadRequest, "User already exists")
		return
	case err != nil:
		a.log(r).Error().Err(err).Msg("register user failed")
		a.error(w, http.StatusInternalServerError, "Failed to register user")
		return
	}
	a.json(w, http.StatusCreated, map[string]any{"message": "User registered successfully", "userId": user.ID})
}
