package repository

import (
	"context"

	"agriai/entities"
)

// FieldRepository scopes every lookup to the owner; a record owned by someone
// else is reported as apperr.ErrNotFound.
type FieldRepository interface {
	ListByUser(ctx context.Context, uid string) ([]entities.Field, error)
	Create(ctx context.Context, f *entities.Field) error
	FindByID(ctx context.Context, id, uid string) (*entities.Field, error)
	Update(ctx context.Context, f *entities.Field) error
	Delete(ctx context.Context, id, uid string) error
}
