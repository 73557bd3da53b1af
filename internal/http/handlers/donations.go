package handlers

import (
	"net/http"

	"outreach/internal/domain"
)

type donationRequest struct {
	Name    string   `json:"name"`
	Email   string   `json:"email"`
	Amount  *float64 `json:"amount"`
	Message string   `json:"message"`
}

func (a *App) DonationsList(w http.ResponseWriter, r *http.Request) {
	items, err := a.donations.List(r.Context())
	if err != nil {
		a.log(r).Error().Err(err).Msg("list donations failed")
		a.error(w, http.StatusInternalServerError, "Failed to fetch donations")
		return
	}
	a.json(w, http.StatusOK, items)
}

func (a *App) DonationsCreate(w http.ResponseWriter, r *http.Request) {
	var req donationRequest
	if err := decode(r, &req); err != nil {
		a.error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if missing(req.Name, req.Email) || req.Amount == nil {
		a.error(w, http.StatusBadRequest, "Name, email, and amount are required")
		return
	}
	d := domain.Donation{
		Name:      req.Name,
		Email:     req.Email,
		Amount:    *req.Amount,
		Message:   req.Message,
		CreatedAt: a.timestamp(),
	}
	if err := a.donations.Create(r.Context(), &d); err != nil {
		a.log(r).Error().Err(err).Msg("record donation failed")
		a.error(w, http.StatusInternalServerError, "Failed to record donation")
		return
	}
	a.json(w, http.StatusCreated, map[string]any{
		"message":    "Donation recorded successfully",
		"donationId": d.ID,
	})
}
