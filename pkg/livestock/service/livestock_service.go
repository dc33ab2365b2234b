package service

import (
	"context"

	"agriai/entities"
)

type LivestockService interface {
	ListLivestock(ctx context.Context, uid string) ([]entities.Livestock, error)
	CreateLivestock(ctx context.Context, uid string, body []byte) (*entities.Livestock, error)
	UpdateLivestock(ctx context.Context, uid, id string, body []byte) (*entities.Livestock, error)
	DeleteLivestock(ctx context.Context, uid, id string) error
}
