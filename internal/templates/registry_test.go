package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTemplateIDs(t *testing.T) {
	assert.Equal(t, []string{"react-js", "react-ts", "next-js", "next-ts"}, TemplateIDs())
}

func TestTemplateIDsUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, id := range TemplateIDs() {
		assert.False(t, seen[id], "duplicate template id %q", id)
		seen[id] = true
	}
}

func TestIsValidTemplateID(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want bool
	}{
		{"variant is valid", "react-ts", true},
		{"other variant is valid", "next-js", true},
		{"framework with variants is not a template", "react", false},
		{"unknown is invalid", "vue", false},
		{"empty is invalid", "", false},
		{"case-sensitive", "REACT-TS", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidTemplateID(tt.id))
		})
	}
}

func TestVariantsFor(t *testing.T) {
	variants := VariantsFor("next")
	if assert.Len(t, variants, 2) {
		assert.Equal(t, "next-js", variants[0].ID)
		assert.Equal(t, "JavaScript", variants[0].Display)
		assert.Equal(t, "next-ts", variants[1].ID)
	}

	assert.Empty(t, VariantsFor("svelte"))
}

func TestFrameworksIsACopy(t *testing.T) {
	list := Frameworks()
	list[0].ID = "mutated"
	assert.Equal(t, "react", Frameworks()[0].ID)
}

func TestFrameworkByID(t *testing.T) {
	f, ok := FrameworkByID("react")
	assert.True(t, ok)
	assert.True(t, f.HasVariants())

	_, ok = FrameworkByID("angular")
	assert.False(t, ok)
}
