package handlers

import (
	"net/http"

	"outreach/internal/domain"
)

type partnershipRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Organization string `json:"organization"`
	Message      string `json:"message"`
}

func (a *App) PartnershipsList(w http.ResponseWriter, r *http.Request) {
	items, err := a.partnerships.List(r.Context())
	if err != nil {
		a.log(r).Error().Err(err).Msg("list partnerships failed")
		a.error(w, http.StatusInternalServerError, "Failed to fetch partnerships")
		return
	}
	a.json(w, http.StatusOK, items)
}

func (a *App) PartnershipsCreate(w http.ResponseWriter, r *http.Request) {
	var req partnershipRequest
	if err := decode(r, &req); err != nil {
		a.error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if missing(req.Name, req.Email) {
		a.error(w, http.StatusBadRequest, "Name and email are required")
		return
	}
	p := domain.Partnership{
		Name:         req.Name,
		Email:        req.Email,
		Organization: req.Organization,
		Message:      req.Message,
		CreatedAt:    a.timestamp(),
		Status:       domain.PartnershipStatusPending,
	}
	if err := a.partnerships.Create(r.Context(), &p); err != nil {
		a.log(r).Error().Err(err).Msg("create partnership failed")
		a.error(w, http.StatusInternalServerError, "Failed to submit partnership request")
		return
	}
	a.json(w, http.StatusCreated, map[string]any{
		"message":       "Partnership request submitted successfully",
		"partnershipId": p.ID,
	})
}
