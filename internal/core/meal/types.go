package meal

// AgeBrackets is the closed set of accepted age labels.
var AgeBrackets = []string{"6-8 months", "9-11 months", "12+ months"}

// Allergens is the canonical allergen order, matching the form layout.
var Allergens = []string{"dairy", "gluten", "nuts", "soy"}

// Request is one generation call's input, built from form state and consumed
// once by the prompt builder.
type Request struct {
	Age         string          `json:"age"`
	Ingredients string          `json:"ingredients"`
	Allergies   map[string]bool `json:"allergies"`
	Preferences []string        `json:"preferences,omitempty"`
}

// Idea is one normalized meal idea.
type Idea struct {
	Title       string   `json:"title"`
	Ingredients []string `json:"ingredients,omitempty"`
	Steps       []string `json:"steps,omitempty"`
	Tip         string   `json:"tip,omitempty"`
	// RawText carries the whole segment when the source format had no
	// structure to pull apart.
	RawText string `json:"raw_text,omitempty"`
}

// Unstructured reports whether the idea degraded to a single text blob.
func (i Idea) Unstructured() bool {
	return i.RawText != "" && len(i.Ingredients) == 0 && len(i.Steps) == 0
}

// Result is the outcome of one generation cycle.
type Result struct {
	Ideas []Idea
	// AllergyNotice is the caution sentence; always set when the request
	// selected at least one allergen, no matter what the model returned.
	AllergyNotice string
	// UnderCount is set when fewer ideas than requested were parseable.
	UnderCount bool
	// Degraded is set when the payload did not match the expected structure
	// and the normalizer fell back to a coarser shape.
	Degraded bool
}

// ValidAge reports whether age is one of the accepted brackets.
func ValidAge(age string) bool {
	for _, b := range AgeBrackets {
		if age == b {
			return true
		}
	}
	return false
}
