package service

import (
	"context"

	"agriai/pkg/validation"
)

type ChatService interface {
	Reply(ctx context.Context, uid string, req *validation.ChatRequest) (string, error)
}
