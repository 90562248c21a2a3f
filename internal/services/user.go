package services

import (
	"context"

	"github.com/songwish/apiserver/types"
)

// UserRepository defines persistence operations for user records.
type UserRepository interface {
	Create(ctx context.Context, user types.User) (types.User, error)
	GetByID(ctx context.Context, id string) (types.User, error)
	GetByEmail(ctx context.Context, email string) (types.User, error)
	UpdatePreferences(ctx context.Context, id, gender, genre, lyrics string) (bool, error)
	SetTTSURL(ctx context.Context, id, url string) (bool, error)
}

// UserService encapsulates registration and lookup use-cases.
type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{repo: repo}
}

// Register creates a new record. Duplicate email or phone registrations are
// allowed and create distinct records.
func (s *UserService) Register(ctx context.Context, user types.User) (types.User, error) {
	return s.repo.Create(ctx, user)
}

func (s *UserService) GetByID(ctx context.Context, id string) (types.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (types.User, error) {
	return s.repo.GetByEmail(ctx, email)
}
