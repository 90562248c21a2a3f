package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/songwish/apiserver/internal/services"
	"github.com/songwish/apiserver/internal/tts"
	"github.com/songwish/apiserver/internal/upstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSynth struct {
	audio []byte
	err   error
	calls int
}

func (f *fakeSynth) Synthesize(ctx context.Context, text string) ([]byte, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.audio, nil
}

func newTTSRouter(synth *fakeSynth, repo *fakeUserRepo, hasKey bool) *chi.Mux {
	service := services.NewTTSService(synth, nil, repo, quietLogger())
	router := chi.NewRouter()
	TTSRouter(router, service, hasKey)
	return router
}

func TestSpeakReturnsAudio(t *testing.T) {
	synth := &fakeSynth{audio: []byte("ID3mp3-bytes")}
	router := newTTSRouter(synth, newFakeUserRepo(), true)

	rec := postJSON(t, router, "/tts", `{"text":"Happy birthday to you"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "audio/mpeg", rec.Header().Get("Content-Type"))
	assert.Equal(t, []byte("ID3mp3-bytes"), rec.Body.Bytes())
	assert.Equal(t, 1, synth.calls)
}

func TestSpeakMissingTextSkipsUpstream(t *testing.T) {
	synth := &fakeSynth{audio: []byte("unused")}
	router := newTTSRouter(synth, newFakeUserRepo(), true)

	for _, body := range []string{`{}`, `{"text":""}`, `{"text":"   "}`} {
		rec := postJSON(t, router, "/tts", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "text required")
	}
	assert.Equal(t, 0, synth.calls)
}

func TestSpeakMissingKey(t *testing.T) {
	synth := &fakeSynth{audio: []byte("unused")}
	router := newTTSRouter(synth, newFakeUserRepo(), false)

	rec := postJSON(t, router, "/tts", `{"text":"Happy birthday"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "TTS key missing")
	assert.Equal(t, 0, synth.calls)
}

func TestSpeakUpstreamFailure(t *testing.T) {
	synth := &fakeSynth{err: fmt.Errorf("%w: tts status 500", upstream.ErrUnavailable)}
	router := newTTSRouter(synth, newFakeUserRepo(), true)

	rec := postJSON(t, router, "/tts", `{"text":"Happy birthday"}`)

	require.Equal(t, http.StatusBadGateway, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "TTS failed", resp.Error)
	assert.Equal(t, upstream.CodeUnavailable, resp.Code)
}

func TestSpeakNoAudio(t *testing.T) {
	synth := &fakeSynth{err: tts.ErrNoAudio}
	router := newTTSRouter(synth, newFakeUserRepo(), true)

	rec := postJSON(t, router, "/tts", `{"text":"Happy birthday"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "TTS failed")
}
