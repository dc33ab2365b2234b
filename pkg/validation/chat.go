package validation

import "agriai/pkg/ai"

type chatMessage struct {
	Role    string `json:"role" validate:"required,chat_role"`
	Content string `json:"content" validate:"required"`
}

type chatRequest struct {
	Messages       *[]chatMessage `json:"messages" validate:"required,min=1,dive"`
	Role           *string        `json:"role"`
	IncludeContext *bool          `json:"includeContext"`
}

// ChatRequest is a validated chat call.
type ChatRequest struct {
	Messages []ai.Message
	// Role is the asker's self-description ("фермер" when empty).
	Role string
	// IncludeContext embeds the caller's fields and livestock; defaults to true.
	IncludeContext bool
}

// ParseChatRequest validates a chat payload. Every message needs a known role
// and non-empty content.
func ParseChatRequest(raw []byte) (*ChatRequest, error) {
	var in chatRequest
	if err := decode(raw, &in); err != nil {
		return nil, err
	}
	out := &ChatRequest{IncludeContext: true}
	for _, m := range *in.Messages {
		out.Messages = append(out.Messages, ai.Message{Role: m.Role, Content: m.Content})
	}
	if in.Role != nil {
		out.Role = *in.Role
	}
	if in.IncludeContext != nil {
		out.IncludeContext = *in.IncludeContext
	}
	return out, nil
}
