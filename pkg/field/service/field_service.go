package service

import (
	"context"

	"agriai/entities"
)

// FieldService takes raw request bodies so that ownership can be checked
// before a patch payload is validated.
type FieldService interface {
	ListFields(ctx context.Context, uid string) ([]entities.Field, error)
	CreateField(ctx context.Context, uid string, body []byte) (*entities.Field, error)
	UpdateField(ctx context.Context, uid, id string, body []byte) (*entities.Field, error)
	DeleteField(ctx context.Context, uid, id string) error
}
