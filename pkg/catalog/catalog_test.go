package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agriai/entities"
)

func TestCatalog_Labels(t *testing.T) {
	c, err := New("ru")
	require.NoError(t, err)

	assert.Equal(t, "Пшеница", c.CropLabel(entities.CropWheat))
	assert.Equal(t, "Sugar Beet", c.CropLabel(entities.CropSugarBeet, "en"))
	assert.Equal(t, "Жылқылар", c.LivestockLabel(entities.Horses, "kk"))
	assert.Equal(t, "Dairy Cattle", c.LivestockLabel(entities.DairyCattle, "en-US,en;q=0.9"))
}

func TestCatalog_ColumnsInEveryLanguage(t *testing.T) {
	c, err := New("kk")
	require.NoError(t, err)

	assert.Equal(t, "Мал басы", c.Label("column_count", "count"))
	assert.Equal(t, "Поголовье", c.Label("column_count", "count", "ru"))
	assert.Equal(t, "Head count", c.Label("column_count", "count", "en"))
}

func TestCatalog_FallsBackToEnglish(t *testing.T) {
	c, err := New("kk")
	require.NoError(t, err)
	_, err = c.bundle.ParseMessageFileBytes([]byte(`only_english = "Only in English"`), "extra.en.toml")
	require.NoError(t, err)

	assert.Equal(t, "Only in English", c.Label("only_english", "raw"))
	assert.Equal(t, "Only in English", c.Label("only_english", "raw", "ru"))
	assert.Equal(t, "raw", c.Label("no_such_message", "raw"))
}

func TestCatalog_OptionsCoverEveryKind(t *testing.T) {
	c, err := New("en")
	require.NoError(t, err)

	crops := c.CropTypes()
	require.Len(t, crops, len(entities.CropTypes))
	assert.Equal(t, Option{Value: "wheat", Label: "Wheat"}, crops[0])

	animals := c.LivestockTypes("ru")
	require.Len(t, animals, len(entities.LivestockTypes))
	assert.Equal(t, Option{Value: "chickens", Label: "Куры"}, animals[len(animals)-1])
}
