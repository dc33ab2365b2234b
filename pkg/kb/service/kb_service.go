package service

import (
	"context"

	"agriai/entities"
)

// Hit is a matching chunk with its document's title and source.
type Hit struct {
	ChunkID   uint    `json:"chunkId"`
	DocID     uint    `json:"docId"`
	Ord       int     `json:"ord"`
	Text      string  `json:"text"`
	DocTitle  string  `json:"docTitle,omitempty"`
	SourceURL string  `json:"sourceUrl,omitempty"`
	Score     float64 `json:"score"`
}

type KBService interface {
	UpsertDocument(ctx context.Context, title, tags, text, sourceURL string) (*entities.KBDocument, int, error)
	Search(ctx context.Context, query string, k int) ([]Hit, error)
	ListDocuments(ctx context.Context) ([]entities.KBDocument, error)
}
