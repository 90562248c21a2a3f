package services

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/songwish/apiserver/internal/storage"
	"github.com/songwish/apiserver/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRepo struct {
	ttsURL   string
	ttsID    string
	matched  bool
	urlCalls int
}

func (s *stubRepo) Create(ctx context.Context, user types.User) (types.User, error) {
	return user, nil
}

func (s *stubRepo) GetByID(ctx context.Context, id string) (types.User, error) {
	return types.User{}, errors.New("not implemented")
}

func (s *stubRepo) GetByEmail(ctx context.Context, email string) (types.User, error) {
	return types.User{}, errors.New("not implemented")
}

func (s *stubRepo) UpdatePreferences(ctx context.Context, id, gender, genre, lyrics string) (bool, error) {
	return true, nil
}

func (s *stubRepo) SetTTSURL(ctx context.Context, id, url string) (bool, error) {
	s.urlCalls++
	s.ttsID = id
	s.ttsURL = url
	return s.matched, nil
}

type stubSynth struct {
	audio []byte
}

func (s *stubSynth) Synthesize(ctx context.Context, text string) ([]byte, error) {
	return s.audio, nil
}

type stubObjectStorage struct {
	keys []string
	data map[string][]byte
}

func (s *stubObjectStorage) EnsureBucket(ctx context.Context) error { return nil }

func (s *stubObjectStorage) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	if s.data == nil {
		s.data = make(map[string][]byte)
	}
	payload, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	s.keys = append(s.keys, key)
	s.data[key] = payload
	return nil
}

func (s *stubObjectStorage) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(s.data[key])), nil
}

func (s *stubObjectStorage) Delete(ctx context.Context, key string) error { return nil }

func (s *stubObjectStorage) Bucket() string { return "test" }

func discardLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestSpeakArchivesWhenConfigured(t *testing.T) {
	repo := &stubRepo{matched: true}
	backend := &stubObjectStorage{}
	archive := storage.NewArchive(backend, "https://cdn.example.com")
	service := NewTTSService(&stubSynth{audio: []byte("mp3")}, archive, repo, discardLogger())

	audio, err := service.Speak(context.Background(), "Happy birthday", "64ffb2a1c3e2ab0001020304")

	require.NoError(t, err)
	assert.Equal(t, []byte("mp3"), audio)

	require.Len(t, backend.keys, 1)
	key := backend.keys[0]
	assert.True(t, strings.HasPrefix(key, "tts/64ffb2a1c3e2ab0001020304/"))
	assert.True(t, strings.HasSuffix(key, ".mp3"))

	assert.Equal(t, "64ffb2a1c3e2ab0001020304", repo.ttsID)
	assert.Equal(t, "https://cdn.example.com/"+key, repo.ttsURL)
}

func TestSpeakSkipsArchiveWithoutUser(t *testing.T) {
	repo := &stubRepo{matched: true}
	backend := &stubObjectStorage{}
	archive := storage.NewArchive(backend, "")
	service := NewTTSService(&stubSynth{audio: []byte("mp3")}, archive, repo, discardLogger())

	audio, err := service.Speak(context.Background(), "Happy birthday", "")

	require.NoError(t, err)
	assert.Equal(t, []byte("mp3"), audio)
	assert.Empty(t, backend.keys)
	assert.Zero(t, repo.urlCalls)
}

func TestSpeakSkipsArchiveWithoutBackend(t *testing.T) {
	repo := &stubRepo{matched: true}
	service := NewTTSService(&stubSynth{audio: []byte("mp3")}, nil, repo, discardLogger())

	audio, err := service.Speak(context.Background(), "Happy birthday", "64ffb2a1c3e2ab0001020304")

	require.NoError(t, err)
	assert.Equal(t, []byte("mp3"), audio)
	assert.Zero(t, repo.urlCalls)
}
