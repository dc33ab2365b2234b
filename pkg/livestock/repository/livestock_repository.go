package repository

import (
	"context"

	"agriai/entities"
)

type LivestockRepository interface {
	ListByUser(ctx context.Context, uid string) ([]entities.Livestock, error)
	Create(ctx context.Context, l *entities.Livestock) error
	FindByID(ctx context.Context, id, uid string) (*entities.Livestock, error)
	Update(ctx context.Context, l *entities.Livestock) error
	Delete(ctx context.Context, id, uid string) error
}
