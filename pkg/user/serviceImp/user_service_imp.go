package serviceImp

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"agriai/entities"
	"agriai/pkg/apperr"
	repo "agriai/pkg/user/repository"
	"agriai/pkg/user/service"
)

// placeholderPassword is stored for accounts created implicitly; nobody logs
// in with it.
const placeholderPassword = "not-used"

type userSvc struct{ r repo.UserRepository }

func NewUserService(r repo.UserRepository) service.UserService { return &userSvc{r} }

func (s *userSvc) Resolve(ctx context.Context, username string) (*entities.User, error) {
	u, err := s.r.FindByUsername(ctx, username)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, apperr.ErrNotFound) {
		return nil, fmt.Errorf("find user %q: %w", username, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(placeholderPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	if err := s.r.CreateIfAbsent(ctx, &entities.User{Username: username, Password: string(hash)}); err != nil {
		return nil, fmt.Errorf("create user %q: %w", username, err)
	}
	// Re-read so that concurrent first requests all see the row that won.
	u, err = s.r.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("reload user %q: %w", username, err)
	}
	return u, nil
}

func (s *userSvc) GetByID(ctx context.Context, id string) (*entities.User, error) {
	return s.r.FindByID(ctx, id)
}
