package tts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/songwish/apiserver/internal/upstream"
)

const (
	defaultBaseURL = "https://api.elevenlabs.io"
	defaultVoiceID = "JBFqnCBsd6RMkjVDRZzb"
	defaultTimeout = 30 * time.Second

	multilingualModel = "eleven_multilingual_v2"
	monolingualModel  = "eleven_monolingual_v1"
	mp3OutputFormat   = "mp3_44100_128"

	voiceStability  = 0.5
	voiceSimilarity = 0.5
)

// StreamClient calls the text-to-speech endpoint directly with the
// monolingual model and fixed voice settings.
type StreamClient struct {
	baseURL    string
	apiKey     string
	voiceID    string
	httpClient *http.Client
}

// NewStreamClient constructs a StreamClient with the default voice.
func NewStreamClient(apiKey string) *StreamClient {
	return &StreamClient{
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
		voiceID:    defaultVoiceID,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

type voiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
}

type streamRequest struct {
	Text          string        `json:"text"`
	ModelID       string        `json:"model_id"`
	VoiceSettings voiceSettings `json:"voice_settings"`
}

// Synthesize converts text to MP3 bytes.
func (c *StreamClient) Synthesize(ctx context.Context, text string) ([]byte, error) {
	body, err := json.Marshal(streamRequest{
		Text:    text,
		ModelID: monolingualModel,
		VoiceSettings: voiceSettings{
			Stability:       voiceStability,
			SimilarityBoost: voiceSimilarity,
		},
	})
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/v1/text-to-speech/%s", c.baseURL, c.voiceID)
	return doSynthesis(ctx, c.httpClient, url, c.apiKey, body)
}

// ConvertClient mirrors the SDK convert call: multilingual model, MP3
// output format passed as a query parameter.
type ConvertClient struct {
	baseURL    string
	apiKey     string
	voiceID    string
	httpClient *http.Client
}

// NewConvertClient constructs a ConvertClient with the default voice.
func NewConvertClient(apiKey string) *ConvertClient {
	return &ConvertClient{
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
		voiceID:    defaultVoiceID,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

type convertRequest struct {
	Text    string `json:"text"`
	ModelID string `json:"model_id"`
}

// Synthesize converts text to MP3 bytes.
func (c *ConvertClient) Synthesize(ctx context.Context, text string) ([]byte, error) {
	body, err := json.Marshal(convertRequest{
		Text:    text,
		ModelID: multilingualModel,
	})
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/v1/text-to-speech/%s?output_format=%s", c.baseURL, c.voiceID, mp3OutputFormat)
	return doSynthesis(ctx, c.httpClient, url, c.apiKey, body)
}

func doSynthesis(ctx context.Context, client *http.Client, url, apiKey string, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "audio/mpeg")
	req.Header.Set("xi-api-key", apiKey)

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", upstream.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%w: tts status %d", upstream.ErrUnavailable, resp.StatusCode)
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", upstream.ErrBadPayload, err)
	}
	if len(audio) == 0 {
		return nil, ErrNoAudio
	}
	return audio, nil
}
