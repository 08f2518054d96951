// ABOUTME: JSON handlers for the HTTP API
// ABOUTME: Maps application errors onto HTTP status codes

package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Aditya-web3/hack-team-up-now/internal/apperr"
	"github.com/Aditya-web3/hack-team-up-now/internal/models"
	"github.com/Aditya-web3/hack-team-up-now/internal/service"
)

type handler struct {
	svc         *service.Service
	defaultUser string
	log         *slog.Logger
}

func (h *handler) actingUser(r *http.Request) string {
	if id := r.Header.Get(UserHeader); id != "" {
		return id
	}
	return h.defaultUser
}

func (h *handler) listSkills(w http.ResponseWriter, r *http.Request) {
	skills, err := h.svc.Skills(r.Context())
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, skills)
}

func (h *handler) listHackathons(w http.ResponseWriter, r *http.Request) {
	hackathons, err := h.svc.Hackathons(r.Context())
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, hackathons)
}

// searchUsers reads repeated skill parameters, location, hackathon and
// available=true|false|unavailable.
func (h *handler) searchUsers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	availability, err := models.ParseAvailability(q.Get("available"))
	if err != nil {
		h.respondWithError(w, apperr.Validation("%v", err))
		return
	}

	users, err := h.svc.SearchUsers(r.Context(), models.SearchFilter{
		Skills:            q["skill"],
		Location:          q.Get("location"),
		HackathonInterest: q.Get("hackathon"),
		Availability:      availability,
	})
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, users)
}

func (h *handler) getUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.svc.Profile(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, user)
}

func (h *handler) listConversations(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.Conversations(r.Context(), h.actingUser(r), r.URL.Query().Get("q"))
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, list)
}

// listMessages groups by date in the tz parameter, the server's zone by default.
func (h *handler) listMessages(w http.ResponseWriter, r *http.Request) {
	loc := time.Local
	if tz := r.URL.Query().Get("tz"); tz != "" {
		l, err := time.LoadLocation(tz)
		if err != nil {
			h.respondWithError(w, apperr.Validation("unknown time zone: %s", tz))
			return
		}
		loc = l
	}

	transcript, err := h.svc.Transcript(r.Context(), chi.URLParam(r, "id"), loc)
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, transcript)
}

func (h *handler) sendMessage(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.respondWithError(w, apperr.Validation("invalid request body"))
		return
	}

	msg, err := h.svc.Send(r.Context(), h.actingUser(r), chi.URLParam(r, "id"), body.Content)
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, msg)
}

// StatusFor maps an error to its HTTP status.
func StatusFor(err error) int {
	switch apperr.CodeOf(err) {
	case apperr.CodeNotFound:
		return http.StatusNotFound
	case apperr.CodeValidation:
		return http.StatusBadRequest
	case apperr.CodeInvariantViolation:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (h *handler) respondWithError(w http.ResponseWriter, err error) {
	code := StatusFor(err)
	message := err.Error()
	if code >= 500 {
		h.log.Error("request failed", "err", err)
		message = "internal error"
	}
	respondWithJSON(w, code, map[string]string{
		"error": message,
		"code":  string(apperr.CodeOf(err)),
	})
}

func respondWithJSON(w http.ResponseWriter, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("Failed to marshal response"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
