// Package storage archives synthesized audio in object storage so that a
// user record's ttsUrl can point at a durable copy.
package storage

import (
	"bytes"
	"context"
	"io"
	"strings"
)

const audioContentType = "audio/mpeg"

// ObjectStorage defines common object operations across backends.
type ObjectStorage interface {
	EnsureBucket(ctx context.Context) error
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
	Bucket() string
}

// Archive wraps an ObjectStorage backend and resolves public URLs for
// stored audio objects.
type Archive struct {
	backend   ObjectStorage
	publicURL string
}

// NewArchive constructs an Archive over the provided backend. publicURL,
// when set, prefixes returned object locations; otherwise the bare key is
// returned.
func NewArchive(backend ObjectStorage, publicURL string) *Archive {
	return &Archive{
		backend:   backend,
		publicURL: strings.TrimRight(publicURL, "/"),
	}
}

// EnsureBucket ensures the configured bucket exists.
func (a *Archive) EnsureBucket(ctx context.Context) error {
	return a.backend.EnsureBucket(ctx)
}

// SaveAudio uploads MP3 bytes under key and returns the object's location.
func (a *Archive) SaveAudio(ctx context.Context, key string, audio []byte) (string, error) {
	err := a.backend.Put(ctx, key, bytes.NewReader(audio), int64(len(audio)), audioContentType)
	if err != nil {
		return "", err
	}
	return a.URL(key), nil
}

// OpenAudio opens a reader for a previously archived object.
func (a *Archive) OpenAudio(ctx context.Context, key string) (io.ReadCloser, error) {
	return a.backend.Get(ctx, key)
}

// Delete removes an archived object.
func (a *Archive) Delete(ctx context.Context, key string) error {
	return a.backend.Delete(ctx, key)
}

// URL resolves the externally visible location of an archived object.
func (a *Archive) URL(key string) string {
	if a.publicURL == "" {
		return key
	}
	return a.publicURL + "/" + key
}

// Bucket returns the configured bucket name.
func (a *Archive) Bucket() string {
	return a.backend.Bucket()
}
