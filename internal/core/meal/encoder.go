package meal

import "strings"

// EncodeAllergies flattens the allergy checkboxes into the exclusion list
// that goes into the prompt. Order is fixed regardless of map iteration so
// identical selections always produce identical prompts.
func EncodeAllergies(selected map[string]bool) string {
	var picked []string
	for _, name := range Allergens {
		if selected[name] {
			picked = append(picked, name)
		}
	}
	if len(picked) == 0 {
		return "None"
	}
	return strings.Join(picked, ", ")
}

// AllergyNotice returns the caution line shown alongside the ideas, or ""
// when nothing was selected.
func AllergyNotice(selected map[string]bool) string {
	encoded := EncodeAllergies(selected)
	if encoded == "None" {
		return ""
	}
	return "Avoiding: " + encoded + ". Always double-check ingredient labels and consult your pediatrician before introducing new foods."
}
