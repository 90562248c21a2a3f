package tts

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/songwish/apiserver/config"
	"github.com/songwish/apiserver/internal/upstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSelectsStrategy(t *testing.T) {
	synth, err := New(config.TTSConfig{APIKey: "k", Strategy: "stream"})
	require.NoError(t, err)
	assert.IsType(t, &StreamClient{}, synth)

	synth, err = New(config.TTSConfig{APIKey: "k", Strategy: "convert"})
	require.NoError(t, err)
	assert.IsType(t, &ConvertClient{}, synth)

	synth, err = New(config.TTSConfig{APIKey: "k"})
	require.NoError(t, err)
	assert.IsType(t, &StreamClient{}, synth)

	_, err = New(config.TTSConfig{APIKey: "k", Strategy: "shout"})
	assert.Error(t, err)
}

func TestStreamClientSynthesize(t *testing.T) {
	var captured streamRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/text-to-speech/"+defaultVoiceID, r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("xi-api-key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "audio/mpeg")
		_, _ = w.Write([]byte("mp3-bytes"))
	}))
	defer server.Close()

	client := NewStreamClient("test-key")
	client.baseURL = server.URL

	audio, err := client.Synthesize(context.Background(), "Happy birthday")

	require.NoError(t, err)
	assert.Equal(t, []byte("mp3-bytes"), audio)
	assert.Equal(t, "Happy birthday", captured.Text)
	assert.Equal(t, monolingualModel, captured.ModelID)
	assert.InDelta(t, 0.5, captured.VoiceSettings.Stability, 1e-9)
	assert.InDelta(t, 0.5, captured.VoiceSettings.SimilarityBoost, 1e-9)
}

func TestConvertClientSynthesize(t *testing.T) {
	var captured convertRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/text-to-speech/"+defaultVoiceID, r.URL.Path)
		assert.Equal(t, mp3OutputFormat, r.URL.Query().Get("output_format"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		_, _ = w.Write([]byte("mp3-bytes"))
	}))
	defer server.Close()

	client := NewConvertClient("test-key")
	client.baseURL = server.URL

	audio, err := client.Synthesize(context.Background(), "Happy birthday")

	require.NoError(t, err)
	assert.Equal(t, []byte("mp3-bytes"), audio)
	assert.Equal(t, multilingualModel, captured.ModelID)
}

func TestSynthesizeUpstreamStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad voice", http.StatusUnprocessableEntity)
	}))
	defer server.Close()

	client := NewStreamClient("test-key")
	client.baseURL = server.URL

	_, err := client.Synthesize(context.Background(), "text")

	assert.ErrorIs(t, err, upstream.ErrUnavailable)
}

func TestSynthesizeEmptyAudio(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewStreamClient("test-key")
	client.baseURL = server.URL

	_, err := client.Synthesize(context.Background(), "text")

	assert.ErrorIs(t, err, ErrNoAudio)
}
