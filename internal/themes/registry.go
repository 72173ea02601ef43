package themes

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/Iuvenis-Sapiens/rendercv/internal/types"
)

//go:embed templates
var builtinTemplates embed.FS

const fragmentSuffix = ".tex.tmpl"

// DefaultTheme is used when a design does not name a theme.
const DefaultTheme = "classic"

// Registry resolves theme names to descriptors. It starts with the built-in
// themes and can take custom theme folders on top of them.
type Registry struct {
	themes map[string]*ThemeDescriptor
}

// NewRegistry builds a registry holding the built-in themes.
func NewRegistry() (*Registry, error) {
	r := &Registry{themes: make(map[string]*ThemeDescriptor)}

	classic, err := loadEmbedded("classic", nil)
	if err != nil {
		return nil, err
	}
	r.themes[classic.Name] = classic

	sb2nov, err := loadEmbedded("sb2nov", classic)
	if err != nil {
		return nil, err
	}
	r.themes[sb2nov.Name] = sb2nov

	return r, nil
}

// Resolve returns the descriptor for name, or an UnknownThemeError naming
// the themes the registry does hold.
func (r *Registry) Resolve(name string) (*ThemeDescriptor, error) {
	if theme, ok := r.themes[name]; ok {
		return theme, nil
	}
	return nil, &UnknownThemeError{Name: name, Available: r.Names()}
}

// Names returns the registered theme names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.themes))
	for name := range r.themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// themeMetadata is the theme.yaml file at the root of a custom theme folder.
type themeMetadata struct {
	Name    string        `yaml:"name"`
	Extends string        `yaml:"extends"`
	Design  *types.Design `yaml:"design"`
}

// RegisterCustom loads a theme folder from disk and registers it under the
// name its theme.yaml declares. Fragment files (*.tex.tmpl) override the
// parent theme's; every other file becomes a static asset copied next to
// the rendered output. The folder extends classic unless theme.yaml names
// another parent.
func (r *Registry) RegisterCustom(dir string) (*ThemeDescriptor, error) {
	metaPath := filepath.Join(dir, "theme.yaml")
	metaData, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, &ThemeLoadError{Dir: dir, Message: "theme.yaml is required", Cause: err}
	}

	var meta themeMetadata
	if err := yaml.UnmarshalWithOptions(metaData, &meta, yaml.Strict()); err != nil {
		return nil, &ThemeLoadError{Dir: dir, Message: "theme.yaml is malformed", Cause: err}
	}
	if meta.Name == "" {
		return nil, &ThemeLoadError{Dir: dir, Message: "theme.yaml must set a name"}
	}

	parentName := meta.Extends
	if parentName == "" {
		parentName = DefaultTheme
	}
	parent, err := r.Resolve(parentName)
	if err != nil {
		return nil, &ThemeLoadError{Dir: dir, Message: fmt.Sprintf("parent theme %q is not registered", parentName), Cause: err}
	}

	theme := &ThemeDescriptor{
		Name:      meta.Name,
		parent:    parent,
		defaults:  meta.Design,
		fragments: make(map[FragmentKey]string),
		assets:    make(map[string][]byte),
	}

	walkErr := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		if rel == "theme.yaml" {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		base := filepath.Base(rel)
		if strings.HasSuffix(base, fragmentSuffix) {
			key := FragmentKey(strings.TrimSuffix(base, fragmentSuffix))
			if !knownFragment(key) {
				return fmt.Errorf("%s does not name a known fragment", rel)
			}
			theme.fragments[key] = string(data)
			return nil
		}

		theme.assets[rel] = data
		return nil
	})
	if walkErr != nil {
		return nil, &ThemeLoadError{Dir: dir, Message: "reading theme folder", Cause: walkErr}
	}

	r.themes[theme.Name] = theme
	return theme, nil
}

func loadEmbedded(name string, parent *ThemeDescriptor) (*ThemeDescriptor, error) {
	root := "templates/" + name
	entries, err := fs.ReadDir(builtinTemplates, root)
	if err != nil {
		return nil, fmt.Errorf("built-in theme %q: %w", name, err)
	}

	theme := &ThemeDescriptor{
		Name:      name,
		parent:    parent,
		defaults:  builtinDefaults[name],
		fragments: make(map[FragmentKey]string),
		assets:    make(map[string][]byte),
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		data, err := fs.ReadFile(builtinTemplates, root+"/"+entry.Name())
		if err != nil {
			return nil, fmt.Errorf("built-in theme %q: %w", name, err)
		}
		if strings.HasSuffix(entry.Name(), fragmentSuffix) {
			key := FragmentKey(strings.TrimSuffix(entry.Name(), fragmentSuffix))
			if !knownFragment(key) {
				return nil, fmt.Errorf("built-in theme %q: %s does not name a known fragment", name, entry.Name())
			}
			theme.fragments[key] = string(data)
			continue
		}
		theme.assets[entry.Name()] = data
	}

	return theme, nil
}
