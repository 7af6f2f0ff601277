package templates

import (
	"github.com/withbatteries/create-batteries/internal/output"
)

// frameworks is the compiled-in catalog. Template IDs must be unique across
// the flattened set; TestTemplateIDsUnique guards this.
var frameworks = []Framework{
	{
		ID:    "react",
		Color: output.ColorCyan,
		Variants: []Variant{
			{ID: "react-js", Display: "JavaScript", Color: output.ColorYellow},
			{ID: "react-ts", Display: "TypeScript", Color: output.ColorBlue},
		},
	},
	{
		ID:    "next",
		Color: output.ColorMagenta,
		Variants: []Variant{
			{ID: "next-js", Display: "JavaScript", Color: output.ColorYellow},
			{ID: "next-ts", Display: "TypeScript", Color: output.ColorBlue},
		},
	},
}

// Frameworks returns the catalog in display order.
func Frameworks() []Framework {
	out := make([]Framework, len(frameworks))
	copy(out, frameworks)
	return out
}

// FrameworkByID looks up a framework.
func FrameworkByID(id string) (Framework, bool) {
	for _, f := range frameworks {
		if f.ID == id {
			return f, true
		}
	}
	return Framework{}, false
}

// VariantsFor returns the variants of a framework, or nil when the framework
// is unknown or has none.
func VariantsFor(frameworkID string) []Variant {
	f, ok := FrameworkByID(frameworkID)
	if !ok || !f.HasVariants() {
		return nil
	}
	out := make([]Variant, len(f.Variants))
	copy(out, f.Variants)
	return out
}

// TemplateIDs returns every selectable template identifier: variant IDs for
// frameworks with variants, the framework ID otherwise.
func TemplateIDs() []string {
	var ids []string
	for _, f := range frameworks {
		if !f.HasVariants() {
			ids = append(ids, f.ID)
			continue
		}
		for _, v := range f.Variants {
			ids = append(ids, v.ID)
		}
	}
	return ids
}

// IsValidTemplateID reports whether id names a selectable template.
func IsValidTemplateID(id string) bool {
	if id == "" {
		return false
	}
	for _, t := range TemplateIDs() {
		if t == id {
			return true
		}
	}
	return false
}
