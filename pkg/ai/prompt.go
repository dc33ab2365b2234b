package ai

import (
	"fmt"
	"strings"

	"agriai/entities"
)

// FallbackReply is returned when the model produces no text.
const FallbackReply = "Извините, не могу ответить на этот вопрос."

const defaultRole = "фермер"

const noData = "Нет данных"

const promptHeader = "Вы - эксперт-консультант по сельскому хозяйству AgriAI. \n\n"

const promptDirectives = `

ВАЖНО: Давайте КОНКРЕТНЫЕ и КРАТКИЕ ответы:
- Отвечайте структурированно: план действий, список рекомендаций
- Каждый пункт - максимум 1-2 предложения
- Без лишних объяснений и теории
- Только практичные советы, которые можно сразу применить
- Используйте списки и нумерацию для структуры
- Максимум 5-7 пунктов в ответе

Формат ответа:
1. Краткая оценка ситуации (1-2 предложения)
2. Конкретный план действий (3-5 пунктов)
3. Важные моменты или риски (2-3 пункта)

Отвечайте на русском языке.`

// UserContext is the farm data embedded into the system instruction.
type UserContext struct {
	Role      string
	Fields    []entities.Field
	Livestock []entities.Livestock
}

// SystemPrompt renders the instruction sent ahead of the conversation. A nil
// context drops the whole context block; empty lists render as "Нет данных".
func SystemPrompt(uc *UserContext) string {
	var b strings.Builder
	b.WriteString(promptHeader)
	if uc != nil {
		role := uc.Role
		if role == "" {
			role = defaultRole
		}
		fmt.Fprintf(&b, "Контекст пользователя:\n- Роль: %s\n- Количество полей: %d\n- Количество групп скота: %d\n\n",
			role, len(uc.Fields), len(uc.Livestock))

		b.WriteString("Данные о полях пользователя:\n")
		b.WriteString(bullets(len(uc.Fields), func(i int) string {
			f := uc.Fields[i]
			return fmt.Sprintf("- %s: %s, площадь %s га", f.Name, f.CropType, f.Area)
		}))
		b.WriteString("\n\nДанные о скоте пользователя:\n")
		b.WriteString(bullets(len(uc.Livestock), func(i int) string {
			l := uc.Livestock[i]
			return fmt.Sprintf("- %s: %d голов", l.Type, l.Count)
		}))
		b.WriteString("\n")
	}
	b.WriteString(promptDirectives)
	return b.String()
}

func bullets(n int, line func(int) string) string {
	if n == 0 {
		return noData
	}
	lines := make([]string, n)
	for i := range lines {
		lines[i] = line(i)
	}
	return strings.Join(lines, "\n")
}
