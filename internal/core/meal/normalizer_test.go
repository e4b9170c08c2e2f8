package meal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeJSONArray(t *testing.T) {
	raw := `[
		{"title": "Meal 1: Banana Mash", "ingredients": ["banana"], "steps": ["mash it"], "tip": "serve soft"},
		{"title": "Carrot Puree", "ingredients": ["carrot"], "steps": ["steam", "blend"]},
		{"name": "Oat Porridge", "ingredients": ["oats", "milk"], "steps": ["simmer"]}
	]`

	res := Normalize(raw, FormatJSON, "###", 3)

	require.Len(t, res.Ideas, 3)
	assert.False(t, res.UnderCount)
	assert.False(t, res.Degraded)
	assert.Equal(t, "Banana Mash", res.Ideas[0].Title)
	assert.Equal(t, "Carrot Puree", res.Ideas[1].Title)
	assert.Equal(t, "Oat Porridge", res.Ideas[2].Title)
	assert.Equal(t, []string{"oats", "milk"}, res.Ideas[2].Ingredients)
}

func TestNormalizeJSONWrappedObject(t *testing.T) {
	raw := `{"meals": [{"title": "Pea Mash", "ingredients": ["peas"], "steps": ["boil", "mash"]}]}`

	res := Normalize(raw, FormatJSON, "###", 3)

	require.Len(t, res.Ideas, 1)
	assert.Equal(t, "Pea Mash", res.Ideas[0].Title)
	assert.True(t, res.UnderCount)
}

func TestNormalizeJSONCodeFence(t *testing.T) {
	raw := "```json\n[{\"title\": \"Apple Sauce\", \"ingredients\": [\"apple\"], \"steps\": [\"stew\"]}]\n```"

	res := Normalize(raw, FormatJSON, "###", 1)

	require.Len(t, res.Ideas, 1)
	assert.Equal(t, "Apple Sauce", res.Ideas[0].Title)
}

func TestNormalizeJSONMalformedFallsBackToBlob(t *testing.T) {
	raw := "Sure! Here are some ideas for your little one."

	res := Normalize(raw, FormatJSON, "###", 3)

	require.Len(t, res.Ideas, 1)
	assert.True(t, res.Ideas[0].Unstructured())
	assert.Equal(t, raw, res.Ideas[0].RawText)
	assert.True(t, res.Degraded)
	assert.True(t, res.UnderCount)
}

func TestNormalizeSeparatorMode(t *testing.T) {
	raw := "Meal 1: Banana Mash\nMash a ripe banana.\nTip: serve at room temperature\n###\nIdea 2: Carrot Puree\nSteam and blend carrots.\n###\nSweet Potato Bites\nRoast until soft."

	res := Normalize(raw, FormatSeparator, "###", 3)

	require.Len(t, res.Ideas, 3)
	assert.False(t, res.UnderCount)
	assert.Equal(t, "Banana Mash", res.Ideas[0].Title)
	assert.Equal(t, "serve at room temperature", res.Ideas[0].Tip)
	assert.Equal(t, "Carrot Puree", res.Ideas[1].Title)
	assert.Equal(t, "Sweet Potato Bites", res.Ideas[2].Title)
}

func TestNormalizeSeparatorModePartialPayload(t *testing.T) {
	// two valid segments, one empty after trim
	raw := "Banana Mash\nMash it.\n###\n   \n###\nCarrot Puree\nBlend it."

	res := Normalize(raw, FormatSeparator, "###", 3)

	require.Len(t, res.Ideas, 2)
	assert.True(t, res.UnderCount)
	assert.Equal(t, "Banana Mash", res.Ideas[0].Title)
	assert.Equal(t, "Carrot Puree", res.Ideas[1].Title)
}

func TestNormalizeBlankLineMode(t *testing.T) {
	raw := "Banana Mash\nMash a banana.\n\n\nCarrot Puree\nBlend carrots.\n\nOat Porridge\nSimmer oats."

	res := Normalize(raw, FormatBlankLine, "###", 3)

	require.Len(t, res.Ideas, 3)
	assert.False(t, res.UnderCount)
	assert.Equal(t, "Banana Mash", res.Ideas[0].Title)
	assert.Equal(t, "Oat Porridge", res.Ideas[2].Title)
}

func TestNormalizeEmptyPayload(t *testing.T) {
	for _, format := range []string{FormatJSON, FormatSeparator, FormatBlankLine} {
		res := Normalize("", format, "###", 3)
		assert.Empty(t, res.Ideas, "format %s", format)
		assert.True(t, res.UnderCount, "format %s", format)
	}
}

func TestStripLabel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Meal 1: Banana Mash", "Banana Mash"},
		{"Idea 2: Carrot Puree", "Carrot Puree"},
		{"meal 3 : Oat Porridge", "Oat Porridge"},
		{"IDEA: Pea Mash", "Pea Mash"},
		{"Banana Mash", "Banana Mash"},
		{"Oatmeal: the easy way", "Oatmeal: the easy way"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StripLabel(tt.in), "input %q", tt.in)
	}
}
