package meal

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPromptDeterministic(t *testing.T) {
	req := Request{
		Age:         "9-11 months",
		Ingredients: "banana, oats, whole milk",
		Allergies:   map[string]bool{"nuts": true, "soy": true},
		Preferences: []string{"vegetarian"},
	}

	first := BuildPrompt(req, 3, FormatJSON, "###")
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, BuildPrompt(req, 3, FormatJSON, "###"))
	}
}

func TestBuildPromptEmbedsInputsVerbatim(t *testing.T) {
	longIngredients := strings.Repeat("parsnip, ", 200) + "carrot"
	req := Request{
		Age:         "6-8 months",
		Ingredients: longIngredients,
		Allergies:   map[string]bool{"dairy": true},
	}

	prompt := BuildPrompt(req, 3, FormatSeparator, "###")

	assert.Contains(t, prompt, longIngredients)
	assert.Contains(t, prompt, "6-8 months")
	assert.Contains(t, prompt, "dairy")
	assert.Contains(t, prompt, "exactly 3")
}

func TestBuildPromptNoAllergies(t *testing.T) {
	req := Request{Age: "12+ months", Ingredients: "chicken, rice"}

	prompt := BuildPrompt(req, 3, FormatBlankLine, "###")

	assert.Contains(t, prompt, "strictly exclude: None")
}

func TestBuildPromptFormatInstructions(t *testing.T) {
	req := Request{Age: "12+ months", Ingredients: "rice"}

	jsonPrompt := BuildPrompt(req, 3, FormatJSON, "###")
	assert.Contains(t, jsonPrompt, "JSON array")

	sepPrompt := BuildPrompt(req, 3, FormatSeparator, "###")
	assert.Contains(t, sepPrompt, `"###"`)
	assert.Contains(t, sepPrompt, "Do not number")

	blankPrompt := BuildPrompt(req, 3, FormatBlankLine, "###")
	assert.Contains(t, blankPrompt, "two blank lines")
	assert.NotContains(t, blankPrompt, "###")
}

func TestBuildPromptPreferencesOptional(t *testing.T) {
	req := Request{Age: "12+ months", Ingredients: "rice"}
	assert.NotContains(t, BuildPrompt(req, 3, FormatJSON, "###"), "Dietary preferences")

	req.Preferences = []string{"no added salt", "finger foods"}
	assert.Contains(t, BuildPrompt(req, 3, FormatJSON, "###"), "no added salt, finger foods")
}
