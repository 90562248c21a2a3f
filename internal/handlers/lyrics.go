package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/songwish/apiserver/internal/services"
	"github.com/songwish/apiserver/internal/store"
	"github.com/songwish/apiserver/internal/upstream"
	"github.com/songwish/apiserver/internal/validate"
)

// LyricsHandler provides the lyrics-generation endpoint.
type LyricsHandler struct {
	lyricsService *services.LyricsService
}

// NewLyricsHandler constructs a handler with the provided service.
func NewLyricsHandler(lyricsService *services.LyricsService) *LyricsHandler {
	return &LyricsHandler{lyricsService: lyricsService}
}

// LyricsRouter registers lyrics routes on the given router.
func LyricsRouter(r chi.Router, lyricsService *services.LyricsService) {
	handler := NewLyricsHandler(lyricsService)

	r.Post("/lyrics", handler.Generate)
}

type LyricsRequest struct {
	UserID       string `json:"userId"`
	Gender       string `json:"gender"`
	Genre        string `json:"genre"`
	ReceiverName string `json:"receiverName"`
}

type LyricsResponse struct {
	Lyrics string `json:"lyrics"`
}

// Generate validates the preferences, generates lyrics through the LLM and
// persists them on the user record.
func (h *LyricsHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req LyricsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	req.UserID = strings.TrimSpace(req.UserID)
	req.Gender = strings.TrimSpace(req.Gender)
	req.Genre = strings.TrimSpace(req.Genre)
	req.ReceiverName = strings.TrimSpace(req.ReceiverName)

	if issues := validate.Preferences(req.UserID, req.Gender, req.Genre, req.ReceiverName); len(issues) > 0 {
		writeIssues(w, issues)
		return
	}

	lyrics, err := h.lyricsService.Generate(r.Context(), req.UserID, req.Gender, req.Genre, req.ReceiverName)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrInvalidID):
			writeError(w, http.StatusBadRequest, "invalid userId")
		case upstream.Code(err) != "":
			writeUpstreamError(w, "lyrics generation failed", err)
		default:
			writeError(w, http.StatusInternalServerError, "failed to generate lyrics")
		}
		return
	}

	writeJSON(w, http.StatusOK, LyricsResponse{Lyrics: lyrics})
}
