package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"outreach/internal/domain"
)

type courseRequest struct {
	Title      string  `json:"title"`
	Instructor string  `json:"instructor"`
	Duration   string  `json:"duration"`
	Level      string  `json:"level"`
	Price      string  `json:"price"`
	Rating     float64 `json:"rating"`
	Students   int64   `json:"students"`
	Category   string  `json:"category"`
	Image      string  `json:"image"`
}

func (a *App) CoursesList(w http.ResponseWriter, r *http.Request) {
	courses, err := a.courses.List(r.Context())
	if err != nil {
		a.log(r).Error().Err(err).Msg("list courses failed")
		a.error(w, http.StatusInternalServerError, "Failed to fetch courses")
		return
	}
	a.json(w, http.StatusOK, courses)
}

func (a *App) CoursesCreate(w http.ResponseWriter, r *http.Request) {
	var req courseRequest
	if err := decode(r, &req); err != nil {
		a.error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	course := domain.Course{
		Title:      req.Title,
		Instructor: req.Instructor,
		Duration:   req.Duration,
		Level:      req.Level,
		Price:      req.Price,
		Rating:     req.Rating,
		Students:   req.Students,
		Category:   req.Category,
		Image:      req.Image,
	}
	if err := a.courses.Create(r.Context(), &course); err != nil {
		a.log(r).Error().Err(err).Msg("create course failed")
		a.error(w, http.StatusInternalServerError, "Failed to create course")
		return
	}
	a.json(w, http.StatusCreated, course)
}

// CoursesEnroll acknowledges an enrollment without persisting it.
func (a *App) CoursesEnroll(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID json.RawMessage `json:"userId"`
	}
	if err := decode(r, &req); err != nil {
		a.error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp := map[string]any{"message": "Enrolled successfully", "courseId": nil}
	if id, ok := leadingInt(chi.URLParam(r, "id")); ok {
		resp["courseId"] = id
	}
	if len(req.UserID) > 0 {
		resp["userId"] = req.UserID
	}
	a.json(w, http.StatusOK, resp)
}

// leadingInt parses the integer prefix of s, so "12abc" yields 12.
func leadingInt(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0, false
	}
	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
