package handlers

import (
	"context"
	"sync"

	"github.com/songwish/apiserver/internal/store"
	"github.com/songwish/apiserver/types"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeUserRepo is an in-memory services.UserRepository.
type fakeUserRepo struct {
	mu      sync.Mutex
	users   map[string]types.User
	creates int

	updatedID     string
	updatedGender string
	updatedGenre  string
	updatedLyrics string

	ttsURLs map[string]string

	createErr error
	getErr    error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:   make(map[string]types.User),
		ttsURLs: make(map[string]string),
	}
}

func (f *fakeUserRepo) Create(ctx context.Context, user types.User) (types.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.creates++
	if f.createErr != nil {
		return types.User{}, f.createErr
	}
	user.ID = primitive.NewObjectID()
	f.users[user.ID.Hex()] = user
	return user, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (types.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return types.User{}, f.getErr
	}
	user, ok := f.users[id]
	if !ok {
		return types.User{}, store.ErrNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (types.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return types.User{}, f.getErr
	}
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return types.User{}, store.ErrNotFound
}

func (f *fakeUserRepo) UpdatePreferences(ctx context.Context, id, gender, genre, lyrics string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updatedID = id
	f.updatedGender = gender
	f.updatedGenre = genre
	f.updatedLyrics = lyrics

	user, ok := f.users[id]
	if !ok {
		return false, nil
	}
	user.Gender = gender
	user.Genre = genre
	user.Lyrics = lyrics
	f.users[id] = user
	return true, nil
}

func (f *fakeUserRepo) SetTTSURL(ctx context.Context, id, url string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ttsURLs[id] = url
	user, ok := f.users[id]
	if !ok {
		return false, nil
	}
	user.TTSURL = url
	f.users[id] = user
	return true, nil
}
