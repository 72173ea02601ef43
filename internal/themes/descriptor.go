// Package themes holds the built-in LaTeX themes and resolves fragment
// templates for the rendering engine. Themes form inheritance chains: a
// fragment lookup falls back to the parent theme when the theme itself does
// not provide the fragment.
package themes

import (
	"sort"

	"github.com/Iuvenis-Sapiens/rendercv/internal/types"
)

// FragmentKey names one template fragment of a theme.
type FragmentKey string

const (
	FragmentDocument         FragmentKey = "Document"
	FragmentPreamble         FragmentKey = "Preamble"
	FragmentHeader           FragmentKey = "Header"
	FragmentSectionBeginning FragmentKey = "SectionBeginning"
	FragmentSectionEnding    FragmentKey = "SectionEnding"
	FragmentTextEntry        FragmentKey = "TextEntry"
	FragmentBulletEntry      FragmentKey = "BulletEntry"
	FragmentOneLineEntry     FragmentKey = "OneLineEntry"
	FragmentNormalEntry      FragmentKey = "NormalEntry"
	FragmentProjectEntry     FragmentKey = "ProjectEntry"
	FragmentExperienceEntry  FragmentKey = "ExperienceEntry"
	FragmentEducationEntry   FragmentKey = "EducationEntry"
	FragmentPublicationEntry FragmentKey = "PublicationEntry"
)

// AllFragments lists every fragment a complete standalone theme provides.
var AllFragments = []FragmentKey{
	FragmentDocument,
	FragmentPreamble,
	FragmentHeader,
	FragmentSectionBeginning,
	FragmentSectionEnding,
	FragmentTextEntry,
	FragmentBulletEntry,
	FragmentOneLineEntry,
	FragmentNormalEntry,
	FragmentProjectEntry,
	FragmentExperienceEntry,
	FragmentEducationEntry,
	FragmentPublicationEntry,
}

// FragmentForKind maps an entry variant to the fragment that renders it.
func FragmentForKind(kind types.EntryKind) FragmentKey {
	return FragmentKey(string(kind))
}

func knownFragment(key FragmentKey) bool {
	for _, k := range AllFragments {
		if k == key {
			return true
		}
	}
	return false
}

// ThemeDescriptor is one resolved theme: its fragments, design defaults,
// static assets, and its parent in the inheritance chain.
type ThemeDescriptor struct {
	Name string

	parent    *ThemeDescriptor
	defaults  *types.Design
	fragments map[FragmentKey]string
	assets    map[string][]byte
}

// Defaults returns the theme's design defaults, which may be nil when the
// theme relies entirely on the library defaults.
func (t *ThemeDescriptor) Defaults() *types.Design {
	return t.defaults
}

// Fragment returns the template text for key, consulting ancestors when the
// theme does not define the fragment itself.
func (t *ThemeDescriptor) Fragment(key FragmentKey) (string, error) {
	for cur := t; cur != nil; cur = cur.parent {
		if text, ok := cur.fragments[key]; ok {
			return text, nil
		}
	}
	return "", &MissingFragmentError{Theme: t.Name, Fragment: string(key)}
}

// Assets returns the theme's static files keyed by relative path, with the
// whole parent chain merged. A theme's own file shadows an ancestor's file
// at the same path.
func (t *ThemeDescriptor) Assets() map[string][]byte {
	merged := make(map[string][]byte)
	var chain []*ThemeDescriptor
	for cur := t; cur != nil; cur = cur.parent {
		chain = append(chain, cur)
	}
	// Walk ancestors first so descendants overwrite.
	for i := len(chain) - 1; i >= 0; i-- {
		for path, data := range chain[i].assets {
			merged[path] = data
		}
	}
	return merged
}

// FragmentKeys returns the sorted keys the theme defines directly, without
// inherited fragments.
func (t *ThemeDescriptor) FragmentKeys() []FragmentKey {
	keys := make([]FragmentKey, 0, len(t.fragments))
	for key := range t.fragments {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
