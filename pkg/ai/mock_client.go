package ai

import (
	"context"
	"strings"
)

type mockGenerator struct{}

// NewMock answers without a provider, for running without an API key.
func NewMock() Generator { return &mockGenerator{} }

func (m *mockGenerator) Generate(_ context.Context, _ string, turns []Turn) (string, error) {
	question := ""
	for i := len(turns) - 1; i >= 0; i-- {
		if turns[i].Role == roleUser {
			question = strings.TrimSpace(turns[i].Text)
			break
		}
	}
	var b strings.Builder
	b.WriteString("1. Демо-режим: ключ GEMINI_API_KEY не задан.\n")
	if question != "" {
		b.WriteString("2. Ваш вопрос: ")
		b.WriteString(question)
		b.WriteString("\n")
	}
	b.WriteString("3. Проверьте состояние полей и поголовья скота и повторите запрос позже.")
	return b.String(), nil
}
