package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/songwish/apiserver/internal/services"
	"github.com/songwish/apiserver/internal/tts"
	"github.com/songwish/apiserver/internal/upstream"
)

// TTSHandler provides the text-to-speech endpoint.
type TTSHandler struct {
	ttsService *services.TTSService
	hasAPIKey  bool
}

// NewTTSHandler constructs a handler with the provided service. hasAPIKey
// reflects whether a provider key is configured; without one the endpoint
// rejects requests before any upstream call.
func NewTTSHandler(ttsService *services.TTSService, hasAPIKey bool) *TTSHandler {
	return &TTSHandler{
		ttsService: ttsService,
		hasAPIKey:  hasAPIKey,
	}
}

// TTSRouter registers tts routes on the given router.
func TTSRouter(r chi.Router, ttsService *services.TTSService, hasAPIKey bool) {
	handler := NewTTSHandler(ttsService, hasAPIKey)

	r.Post("/tts", handler.Speak)
}

type TTSRequest struct {
	Text string `json:"text"`
	// UserID is optional; when present and audio archival is configured,
	// the synthesized audio is stored and the record's ttsUrl set.
	UserID string `json:"userId"`
}

// Speak converts text to speech and streams back MP3 audio.
func (h *TTSHandler) Speak(w http.ResponseWriter, r *http.Request) {
	var req TTSRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	req.Text = strings.TrimSpace(req.Text)
	if req.Text == "" {
		writeError(w, http.StatusBadRequest, "text required")
		return
	}

	if !h.hasAPIKey {
		writeError(w, http.StatusBadRequest, "TTS key missing")
		return
	}

	audio, err := h.ttsService.Speak(r.Context(), req.Text, strings.TrimSpace(req.UserID))
	if err != nil {
		switch {
		case errors.Is(err, tts.ErrNoAudio):
			writeError(w, http.StatusInternalServerError, "TTS failed")
		case upstream.Code(err) != "":
			writeUpstreamError(w, "TTS failed", err)
		default:
			writeError(w, http.StatusInternalServerError, "TTS failed")
		}
		return
	}

	w.Header().Set("Content-Type", "audio/mpeg")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(audio)
}
