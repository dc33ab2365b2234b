package repository

import (
	"context"

	"agriai/entities"
)

type KBRepository interface {
	// CreateDocument stores d and its chunks in one transaction, filling in
	// the chunk DocIDs.
	CreateDocument(ctx context.Context, d *entities.KBDocument, chunks []entities.KBChunk) error
	ListDocs(ctx context.Context) ([]entities.KBDocument, error)
	AllChunks(ctx context.Context) ([]entities.KBChunk, error)
	DocsByIDs(ctx context.Context, ids []uint) (map[uint]entities.KBDocument, error)
}
