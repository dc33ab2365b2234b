package repository

import (
	"context"

	"agriai/entities"
)

type UserRepository interface {
	FindByID(ctx context.Context, id string) (*entities.User, error)
	FindByUsername(ctx context.Context, username string) (*entities.User, error)
	// CreateIfAbsent inserts u unless the username is already taken, in which
	// case it succeeds without writing.
	CreateIfAbsent(ctx context.Context, u *entities.User) error
}
