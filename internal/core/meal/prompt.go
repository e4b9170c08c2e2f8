package meal

import (
	"fmt"
	"strings"
)

// output conventions the prompt can request. The value is read from config
// and forwarded by the service, which picks the matching normalizer mode.
const (
	FormatJSON      = "json"
	FormatSeparator = "separator"
	FormatBlankLine = "blank_line"
)

// BuildPrompt composes the generation instruction. The same inputs always
// produce the same string, so the completion cache can key on it. Ingredient
// text and the exclusion list are embedded verbatim, never truncated.
func BuildPrompt(req Request, count int, format, separator string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are a pediatric nutrition assistant. Suggest exactly %d distinct meal ideas for a baby aged %s.\n\n", count, req.Age)
	fmt.Fprintf(&b, "Available ingredients: %s\n", req.Ingredients)
	fmt.Fprintf(&b, "Foods to strictly exclude: %s\n", EncodeAllergies(req.Allergies))
	if len(req.Preferences) > 0 {
		fmt.Fprintf(&b, "Dietary preferences: %s\n", strings.Join(req.Preferences, ", "))
	}

	b.WriteString("\nEach idea must include: a short name, the ingredient list, ordered preparation steps, and one practical tip for the parent.\n")

	switch format {
	case FormatJSON:
		b.WriteString("\nRespond with a JSON array only, no surrounding prose. Each element: ")
		b.WriteString(`{"title": string, "ingredients": [string], "steps": [string], "tip": string}.`)
		b.WriteString("\n")
	case FormatSeparator:
		fmt.Fprintf(&b, "\nWrite each idea as plain text. Put the line %q alone between ideas. Do not number the ideas.\n", separator)
	default: // blank_line
		b.WriteString("\nWrite each idea as plain text. Leave two blank lines between ideas. Do not number the ideas.\n")
	}

	return b.String()
}
