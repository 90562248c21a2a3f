package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/songwish/apiserver/internal/storage"
	"github.com/songwish/apiserver/internal/tts"
)

// TTSService synthesizes speech and optionally archives the audio.
type TTSService struct {
	synth   tts.Synthesizer
	archive *storage.Archive
	repo    UserRepository
	log     *logrus.Logger
}

// NewTTSService constructs a TTSService. archive may be nil when no object
// storage is configured; archival is then skipped.
func NewTTSService(synth tts.Synthesizer, archive *storage.Archive, repo UserRepository, log *logrus.Logger) *TTSService {
	return &TTSService{
		synth:   synth,
		archive: archive,
		repo:    repo,
		log:     log,
	}
}

// Speak converts text to MP3 bytes. When userID is supplied and an archive
// is configured, the audio is uploaded and the record's ttsUrl updated;
// neither step failing fails the synthesis itself.
func (s *TTSService) Speak(ctx context.Context, text, userID string) ([]byte, error) {
	audio, err := s.synth.Synthesize(ctx, text)
	if err != nil {
		return nil, err
	}

	if s.archive != nil && userID != "" {
		s.archiveAudio(ctx, userID, audio)
	}

	return audio, nil
}

func (s *TTSService) archiveAudio(ctx context.Context, userID string, audio []byte) {
	key := fmt.Sprintf("tts/%s/%s.mp3", userID, uuid.NewString())

	url, err := s.archive.SaveAudio(ctx, key, audio)
	if err != nil {
		s.log.WithError(err).WithField("key", key).Warn("failed to archive audio")
		return
	}

	matched, err := s.repo.SetTTSURL(ctx, userID, url)
	if err != nil {
		s.log.WithError(err).WithField("userId", userID).Warn("failed to record ttsUrl")
		return
	}
	if !matched {
		s.log.WithField("userId", userID).Warn("ttsUrl update matched no record")
	}
}
