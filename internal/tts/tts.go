// Package tts synthesizes speech through the ElevenLabs API. Two backends
// implement the same interface; configuration picks one.
package tts

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/songwish/apiserver/config"
)

const (
	// StrategyStream is the canonical backend: a direct REST call with
	// explicit voice settings.
	StrategyStream = "stream"
	// StrategyConvert mirrors the SDK-mediated convert call with the
	// multilingual model and a fixed MP3 output format.
	StrategyConvert = "convert"
)

// ErrNoAudio is returned when the provider answers successfully but with an
// empty body.
var ErrNoAudio = errors.New("tts returned no audio")

// Synthesizer converts text to MP3 audio bytes.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

// New constructs the Synthesizer selected by cfg.Strategy.
func New(cfg config.TTSConfig) (Synthesizer, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Strategy)) {
	case "", StrategyStream:
		return NewStreamClient(cfg.APIKey), nil
	case StrategyConvert:
		return NewConvertClient(cfg.APIKey), nil
	default:
		return nil, fmt.Errorf("unknown tts strategy %q", cfg.Strategy)
	}
}
