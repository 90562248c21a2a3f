package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/songwish/apiserver/internal/mq"
	"github.com/songwish/apiserver/internal/prompt"
)

// Completer generates a chat completion for a prompt.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Publisher emits service events. The MQ wrapper satisfies it.
type Publisher interface {
	Publish(ctx context.Context, channel string, data []byte, attrs map[string]string) (string, error)
}

// LyricsGeneratedEvent is published after each successful generation.
type LyricsGeneratedEvent struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	ReceiverName string    `json:"receiverName"`
	Genre        string    `json:"genre"`
	GeneratedAt  time.Time `json:"generatedAt"`
}

// LyricsService builds the prompt, calls the LLM and persists the result.
type LyricsService struct {
	repo      UserRepository
	completer Completer
	publisher Publisher
	log       *logrus.Logger
}

func NewLyricsService(repo UserRepository, completer Completer, publisher Publisher, log *logrus.Logger) *LyricsService {
	return &LyricsService{
		repo:      repo,
		completer: completer,
		publisher: publisher,
		log:       log,
	}
}

// Generate produces lyrics for the dedication and overwrites the stored
// record's gender, genre and lyrics. The update is last-write-wins: an
// unknown identifier updates nothing and the lyrics are still returned.
func (s *LyricsService) Generate(ctx context.Context, userID, gender, genre, receiverName string) (string, error) {
	text := prompt.Build(receiverName, genre, gender)

	lyrics, err := s.completer.Complete(ctx, text)
	if err != nil {
		return "", err
	}

	matched, err := s.repo.UpdatePreferences(ctx, userID, gender, genre, lyrics)
	if err != nil {
		return "", err
	}
	if !matched {
		s.log.WithField("userId", userID).Warn("lyrics update matched no record")
	}

	s.publishGenerated(ctx, userID, receiverName, genre)

	return lyrics, nil
}

// publishGenerated emits the event on a best-effort basis; a broker failure
// never fails the request.
func (s *LyricsService) publishGenerated(ctx context.Context, userID, receiverName, genre string) {
	if s.publisher == nil {
		return
	}

	event := LyricsGeneratedEvent{
		ID:           uuid.NewString(),
		UserID:       userID,
		ReceiverName: receiverName,
		Genre:        genre,
		GeneratedAt:  time.Now().UTC(),
	}
	data, err := json.Marshal(event)
	if err != nil {
		s.log.WithError(err).Warn("failed to encode lyrics event")
		return
	}
	if _, err := s.publisher.Publish(ctx, mq.ChannelLyricsGenerated, data, nil); err != nil {
		s.log.WithError(err).Warn("failed to publish lyrics event")
	}
}
