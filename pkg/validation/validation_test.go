package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agriai/entities"
	"agriai/pkg/apperr"
)

func fieldErrors(t *testing.T, err error) map[string]string {
	t.Helper()
	var ve *apperr.ValidationError
	require.True(t, errors.As(err, &ve), "want *apperr.ValidationError, got %v", err)
	out := map[string]string{}
	for _, fe := range ve.Errors {
		out[fe.Field] = fe.Message
	}
	return out
}

func TestParseFieldCreate_Valid(t *testing.T) {
	raw := []byte(`{"name":"North","latitude":"51.1","longitude":"71.4","area":"5","cropType":"wheat","userId":"someone-else","id":"forged"}`)

	f, err := ParseFieldCreate(raw, "owner-1")
	require.NoError(t, err)

	assert.Equal(t, &entities.Field{
		UserID:    "owner-1",
		Name:      "North",
		Latitude:  "51.1",
		Longitude: "71.4",
		Area:      "5",
		CropType:  entities.CropWheat,
	}, f)
}

func TestParseFieldCreate_ReportsEveryViolation(t *testing.T) {
	raw := []byte(`{"latitude":"91","longitude":71.4,"area":"-3","cropType":"rice"}`)

	_, err := ParseFieldCreate(raw, "owner-1")

	errs := fieldErrors(t, err)
	assert.Equal(t, map[string]string{
		"name":      "is required",
		"latitude":  "must be a decimal latitude between -90 and 90",
		"longitude": "expected string",
		"area":      "must be a non-negative decimal number",
		"cropType":  "must be one of: wheat, corn, barley, sunflower, potato, sugar_beet",
	}, errs)
}

func TestParseFieldCreate_ErrorOrderFollowsSchema(t *testing.T) {
	_, err := ParseFieldCreate([]byte(`{}`), "u")

	var ve *apperr.ValidationError
	require.ErrorAs(t, err, &ve)
	var order []string
	for _, fe := range ve.Errors {
		order = append(order, fe.Field)
	}
	assert.Equal(t, []string{"name", "latitude", "longitude", "area", "cropType"}, order)
}

func TestParseFieldCreate_NullAndEmpty(t *testing.T) {
	_, err := ParseFieldCreate([]byte(`{"name":"","latitude":null,"longitude":"71","area":"1.5","cropType":"corn"}`), "u")

	assert.Equal(t, map[string]string{
		"name":     "must not be empty",
		"latitude": "expected string, received null",
	}, fieldErrors(t, err))
}

func TestParse_RejectsNonObjectBodies(t *testing.T) {
	for _, raw := range []string{`[]`, `"x"`, `null`, `{bad json`, `42`} {
		_, err := ParseFieldPatch([]byte(raw))
		assert.Equal(t, map[string]string{"body": "must be a JSON object"}, fieldErrors(t, err), "body %s", raw)
	}
}

func TestParseFieldPatch(t *testing.T) {
	t.Run("empty object is a no-op", func(t *testing.T) {
		p, err := ParseFieldPatch([]byte(`{}`))
		require.NoError(t, err)
		assert.True(t, p.Empty())
	})

	t.Run("empty body is a no-op", func(t *testing.T) {
		p, err := ParseFieldPatch(nil)
		require.NoError(t, err)
		assert.True(t, p.Empty())
	})

	t.Run("owner cannot be changed", func(t *testing.T) {
		p, err := ParseFieldPatch([]byte(`{"userId":"intruder","id":"other"}`))
		require.NoError(t, err)
		assert.True(t, p.Empty())

		f := entities.Field{ID: "f1", UserID: "owner", Name: "A"}
		p.Apply(&f)
		assert.Equal(t, "owner", f.UserID)
		assert.Equal(t, "f1", f.ID)
	})

	t.Run("only supplied members are replaced", func(t *testing.T) {
		p, err := ParseFieldPatch([]byte(`{"area":"12.5","cropType":"potato"}`))
		require.NoError(t, err)

		f := entities.Field{ID: "f1", UserID: "owner", Name: "A", Latitude: "1", Longitude: "2", Area: "3", CropType: entities.CropWheat}
		p.Apply(&f)
		assert.Equal(t, entities.Field{ID: "f1", UserID: "owner", Name: "A", Latitude: "1", Longitude: "2", Area: "12.5", CropType: entities.CropPotato}, f)
	})

	t.Run("supplied members are validated", func(t *testing.T) {
		_, err := ParseFieldPatch([]byte(`{"name":"","cropType":"rye"}`))
		assert.Equal(t, map[string]string{
			"name":     "must not be empty",
			"cropType": "must be one of: wheat, corn, barley, sunflower, potato, sugar_beet",
		}, fieldErrors(t, err))
	})
}

func TestParseLivestockCreate(t *testing.T) {
	l, err := ParseLivestockCreate([]byte(`{"type":"sheep","count":0}`), "owner")
	require.NoError(t, err)
	assert.Equal(t, &entities.Livestock{UserID: "owner", Type: entities.Sheep, Count: 0}, l)

	_, err = ParseLivestockCreate([]byte(`{"type":"camels","count":-1}`), "owner")
	assert.Equal(t, map[string]string{
		"type":  "must be one of: dairy_cattle, beef_cattle, sheep, goats, horses, pigs, chickens",
		"count": "must be 0 or greater",
	}, fieldErrors(t, err))

	_, err = ParseLivestockCreate([]byte(`{"type":"pigs","count":"10"}`), "owner")
	assert.Equal(t, map[string]string{"count": "expected integer"}, fieldErrors(t, err))

	_, err = ParseLivestockCreate([]byte(`{"type":"pigs","count":2.5}`), "owner")
	assert.Equal(t, map[string]string{"count": "expected integer"}, fieldErrors(t, err))
}

func TestParseLivestockPatch(t *testing.T) {
	p, err := ParseLivestockPatch([]byte(`{"count":42}`))
	require.NoError(t, err)

	l := entities.Livestock{ID: "l1", UserID: "owner", Type: entities.Goats, Count: 3}
	p.Apply(&l)
	assert.Equal(t, entities.Livestock{ID: "l1", UserID: "owner", Type: entities.Goats, Count: 42}, l)

	_, err = ParseLivestockPatch([]byte(`{"type":null}`))
	assert.Equal(t, map[string]string{"type": "expected string, received null"}, fieldErrors(t, err))
}

type nested struct {
	Items []item `json:"items" validate:"min=1,dive"`
}

type item struct {
	Role string `json:"role" validate:"required,chat_role"`
}

func TestStruct_NestedNamespaces(t *testing.T) {
	err := Struct(&nested{Items: []item{{Role: "user"}, {Role: "system"}}})
	assert.Equal(t, map[string]string{"items[1].role": "must be one of: user, assistant"}, fieldErrors(t, err))

	err = Struct(&nested{})
	assert.Equal(t, map[string]string{"items": "must contain at least 1 item(s)"}, fieldErrors(t, err))
}

func TestParseChatRequest(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		req, err := ParseChatRequest([]byte(`{"messages":[{"role":"user","content":"Привет"}]}`))
		require.NoError(t, err)
		assert.True(t, req.IncludeContext)
		assert.Empty(t, req.Role)
		require.Len(t, req.Messages, 1)
		assert.Equal(t, "Привет", req.Messages[0].Content)
	})

	t.Run("explicit options", func(t *testing.T) {
		req, err := ParseChatRequest([]byte(`{"messages":[{"role":"user","content":"?"},{"role":"assistant","content":"!"}],"role":"агроном","includeContext":false}`))
		require.NoError(t, err)
		assert.False(t, req.IncludeContext)
		assert.Equal(t, "агроном", req.Role)
		assert.Equal(t, "assistant", req.Messages[1].Role)
	})

	t.Run("missing messages", func(t *testing.T) {
		_, err := ParseChatRequest([]byte(`{}`))
		assert.Equal(t, map[string]string{"messages": "is required"}, fieldErrors(t, err))
	})

	t.Run("empty transcript", func(t *testing.T) {
		_, err := ParseChatRequest([]byte(`{"messages":[]}`))
		assert.Equal(t, map[string]string{"messages": "must contain at least 1 item(s)"}, fieldErrors(t, err))
	})

	t.Run("bad entries", func(t *testing.T) {
		_, err := ParseChatRequest([]byte(`{"messages":[{"role":"system","content":"x"},{"role":"user","content":""}]}`))
		assert.Equal(t, map[string]string{
			"messages[0].role":    "must be one of: user, assistant",
			"messages[1].content": "is required",
		}, fieldErrors(t, err))
	})

	t.Run("wrong type", func(t *testing.T) {
		_, err := ParseChatRequest([]byte(`{"messages":"hi","includeContext":"yes"}`))
		assert.Equal(t, map[string]string{
			"messages":       "expected array",
			"includeContext": "expected boolean",
		}, fieldErrors(t, err))
	})
}
