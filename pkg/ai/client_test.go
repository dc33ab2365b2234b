package ai

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"agriai/entities"
)

func TestMain(m *testing.M) {
	// genai pulls in opencensus, whose stats worker starts in init and never stops.
	goleak.VerifyTestMain(m, goleak.IgnoreTopFunction("go.opencensus.io/stats/view.(*worker).start"))
}

type fakeGenerator struct {
	system string
	turns  []Turn
	reply  string
	err    error
}

func (f *fakeGenerator) Generate(_ context.Context, system string, turns []Turn) (string, error) {
	f.system = system
	f.turns = turns
	return f.reply, f.err
}

func twoFields() []entities.Field {
	return []entities.Field{
		{Name: "Северное", CropType: entities.CropWheat, Area: "120"},
		{Name: "Южное", CropType: entities.CropSunflower, Area: "45.5"},
	}
}

func TestSystemPrompt_WithContext(t *testing.T) {
	p := SystemPrompt(&UserContext{
		Fields:    twoFields(),
		Livestock: []entities.Livestock{{Type: entities.Sheep, Count: 150}},
	})

	assert.Contains(t, p, "- Роль: фермер\n")
	assert.Contains(t, p, "Количество полей: 2")
	assert.Contains(t, p, "Количество групп скота: 1")
	assert.Contains(t, p, "- Северное: wheat, площадь 120 га\n- Южное: sunflower, площадь 45.5 га")
	assert.Contains(t, p, "- sheep: 150 голов")
	assert.NotContains(t, p, noData)
	assert.True(t, strings.HasSuffix(p, "Отвечайте на русском языке."))
}

func TestSystemPrompt_EmptyListsSayNoData(t *testing.T) {
	p := SystemPrompt(&UserContext{Role: "агроном"})

	assert.Contains(t, p, "- Роль: агроном")
	assert.Contains(t, p, "Количество полей: 0")
	assert.Contains(t, p, "Данные о полях пользователя:\nНет данных")
	assert.Contains(t, p, "Данные о скоте пользователя:\nНет данных")
}

func TestSystemPrompt_NilContextOmitsBlock(t *testing.T) {
	p := SystemPrompt(nil)

	assert.NotContains(t, p, "Контекст пользователя")
	assert.NotContains(t, p, noData)
	assert.True(t, strings.HasPrefix(p, promptHeader))
	assert.Contains(t, p, "Формат ответа:")
}

func TestProviderRole(t *testing.T) {
	assert.Equal(t, "model", ProviderRole("assistant"))
	assert.Equal(t, "user", ProviderRole("user"))
	assert.Equal(t, "user", ProviderRole("system"))
	assert.Equal(t, "user", ProviderRole(""))
}

func TestChat_MapsRolesAndReturnsReply(t *testing.T) {
	gen := &fakeGenerator{reply: "1. Посейте рожь."}
	c := NewClient(gen, zap.NewNop())

	got, err := c.Chat(context.Background(), []Message{
		{Role: "user", Content: "Что посеять?"},
		{Role: "assistant", Content: "Уточните регион."},
		{Role: "user", Content: "Акмола"},
	}, &UserContext{Fields: twoFields()})
	require.NoError(t, err)

	assert.Equal(t, "1. Посейте рожь.", got)
	assert.Equal(t, []Turn{
		{Role: "user", Text: "Что посеять?"},
		{Role: "model", Text: "Уточните регион."},
		{Role: "user", Text: "Акмола"},
	}, gen.turns)
	assert.Contains(t, gen.system, "Количество полей: 2")
}

func TestChat_EmptyReplyFallsBack(t *testing.T) {
	c := NewClient(&fakeGenerator{}, zap.NewNop())

	got, err := c.Chat(context.Background(), []Message{{Role: "user", Content: "?"}}, nil)
	require.NoError(t, err)
	assert.Equal(t, FallbackReply, got)
}

func TestChat_ProviderErrorIsWrappedAndLogged(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	cause := errors.New("quota exceeded")
	c := NewClient(&fakeGenerator{err: cause}, zap.New(core))

	_, err := c.Chat(context.Background(), []Message{{Role: "user", Content: "?"}}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "quota exceeded")
	assert.Equal(t, 1, logs.Len())
}

func TestMock(t *testing.T) {
	got, err := NewMock().Generate(context.Background(), "", []Turn{{Role: "user", Text: "Когда сеять пшеницу?"}})
	require.NoError(t, err)
	assert.Contains(t, got, "Когда сеять пшеницу?")
}

func TestNewGemini_RequiresKey(t *testing.T) {
	_, err := NewGemini(context.Background(), "", "gemini-2.0-flash-exp")
	assert.Error(t, err)
}
