package serviceImp

import (
	"context"
	"fmt"

	"agriai/pkg/ai"
	"agriai/pkg/chat/service"
	fieldSvc "agriai/pkg/field/service"
	livestockSvc "agriai/pkg/livestock/service"
	"agriai/pkg/validation"
)

type chatSvc struct {
	ai        *ai.Client
	fields    fieldSvc.FieldService
	livestock livestockSvc.LivestockService
}

func NewChatService(client *ai.Client, fields fieldSvc.FieldService, livestock livestockSvc.LivestockService) service.ChatService {
	return &chatSvc{ai: client, fields: fields, livestock: livestock}
}

func (s *chatSvc) Reply(ctx context.Context, uid string, req *validation.ChatRequest) (string, error) {
	var uc *ai.UserContext
	if req.IncludeContext {
		fields, err := s.fields.ListFields(ctx, uid)
		if err != nil {
			return "", fmt.Errorf("load fields: %w", err)
		}
		groups, err := s.livestock.ListLivestock(ctx, uid)
		if err != nil {
			return "", fmt.Errorf("load livestock: %w", err)
		}
		uc = &ai.UserContext{Role: req.Role, Fields: fields, Livestock: groups}
	}
	return s.ai.Chat(ctx, req.Messages, uc)
}
