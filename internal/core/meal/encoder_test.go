package meal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeAllergies(t *testing.T) {
	tests := []struct {
		name     string
		selected map[string]bool
		want     string
	}{
		{"none selected", map[string]bool{}, "None"},
		{"nil map", nil, "None"},
		{"all false", map[string]bool{"dairy": false, "nuts": false}, "None"},
		{"single", map[string]bool{"nuts": true}, "nuts"},
		{"two in canonical order", map[string]bool{"nuts": true, "dairy": true}, "dairy, nuts"},
		{"all four", map[string]bool{"soy": true, "gluten": true, "nuts": true, "dairy": true}, "dairy, gluten, nuts, soy"},
		{"unknown key ignored", map[string]bool{"shellfish": true}, "None"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EncodeAllergies(tt.selected))
		})
	}
}

func TestEncodeAllergiesOrderStable(t *testing.T) {
	selected := map[string]bool{"soy": true, "dairy": true, "gluten": true}
	first := EncodeAllergies(selected)
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, EncodeAllergies(selected))
	}
}

func TestAllergyNotice(t *testing.T) {
	assert.Empty(t, AllergyNotice(nil))
	assert.Empty(t, AllergyNotice(map[string]bool{"dairy": false}))

	notice := AllergyNotice(map[string]bool{"dairy": true, "soy": true})
	assert.Contains(t, notice, "dairy, soy")
	assert.Contains(t, notice, "pediatrician")
	assert.NotContains(t, notice, "gluten")
}
