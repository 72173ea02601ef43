package parsing

import (
	"strings"

	"github.com/Iuvenis-Sapiens/rendercv/internal/types"
)

// variantSpec names the fields that identify one entry variant. required
// must all be present; anyOf needs at least one.
type variantSpec struct {
	kind     types.EntryKind
	required []string
	anyOf    []string
}

// variantPriority is the fixed resolution order, most specific variant
// first. Reordering it changes which variant ambiguous entries resolve to,
// so the order is pinned by a regression test.
var variantPriority = []variantSpec{
	{kind: types.KindPublication, required: []string{"title", "authors"}, anyOf: []string{"doi", "journal"}},
	{kind: types.KindEducation, required: []string{"institution", "degree", "area"}},
	{kind: types.KindExperience, required: []string{"company", "position"}},
	{kind: types.KindProject, required: []string{"name", "url"}},
	{kind: types.KindNormal, required: []string{"name"}},
	{kind: types.KindOneLine, required: []string{"label", "details"}},
	{kind: types.KindBullet, required: []string{"bullet"}},
}

// resolveVariant assigns a raw entry to the first variant whose required
// field set it fully satisfies. When no variant matches, the returned error
// names the unmet fields of every variant tried.
func resolveVariant(raw map[string]any) (types.EntryKind, error) {
	var tried []VariantMismatch

	for _, spec := range variantPriority {
		var missing []string
		for _, field := range spec.required {
			if !hasField(raw, field) {
				missing = append(missing, field)
			}
		}
		if len(spec.anyOf) > 0 {
			satisfied := false
			for _, field := range spec.anyOf {
				if hasField(raw, field) {
					satisfied = true
					break
				}
			}
			if !satisfied {
				missing = append(missing, strings.Join(spec.anyOf, " or "))
			}
		}

		if len(missing) == 0 {
			return spec.kind, nil
		}
		tried = append(tried, VariantMismatch{Variant: string(spec.kind), Missing: missing})
	}

	return "", &VariantResolutionError{Tried: tried}
}

func hasField(raw map[string]any, field string) bool {
	v, ok := raw[field]
	return ok && v != nil
}
