package service

import (
	"context"

	"agriai/entities"
)

type UserService interface {
	// Resolve returns the account for username, creating it on first use.
	Resolve(ctx context.Context, username string) (*entities.User, error)
	GetByID(ctx context.Context, id string) (*entities.User, error)
}
