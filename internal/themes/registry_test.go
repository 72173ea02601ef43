package themes

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Iuvenis-Sapiens/rendercv/internal/types"
)

func TestNewRegistry_BuiltinThemes(t *testing.T) {
	reg, err := NewRegistry()
	require.NoError(t, err)

	assert.Equal(t, []string{"classic", "sb2nov"}, reg.Names())
}

func TestRegistry_ResolveUnknownTheme(t *testing.T) {
	reg, err := NewRegistry()
	require.NoError(t, err)

	_, err = reg.Resolve("nonexistent")
	require.Error(t, err)

	themeErr, ok := err.(*UnknownThemeError)
	require.True(t, ok, "error should be UnknownThemeError type")
	assert.Equal(t, "nonexistent", themeErr.Name)
	assert.Contains(t, themeErr.Available, "classic")
	assert.Contains(t, themeErr.Available, "sb2nov")
}

func TestThemeDescriptor_EveryFragmentResolvable(t *testing.T) {
	reg, err := NewRegistry()
	require.NoError(t, err)

	for _, name := range reg.Names() {
		theme, err := reg.Resolve(name)
		require.NoError(t, err)
		for _, key := range AllFragments {
			text, err := theme.Fragment(key)
			require.NoError(t, err, "theme %s fragment %s", name, key)
			if key != FragmentSectionEnding {
				assert.NotEmpty(t, text)
			}
		}
	}
}

func TestThemeDescriptor_InheritedFragmentFallsBackToParent(t *testing.T) {
	reg, err := NewRegistry()
	require.NoError(t, err)

	classic, err := reg.Resolve("classic")
	require.NoError(t, err)
	sb2nov, err := reg.Resolve("sb2nov")
	require.NoError(t, err)

	// sb2nov does not define NormalEntry itself, so the lookup falls back
	// to classic's fragment.
	classicNormal, err := classic.Fragment(FragmentNormalEntry)
	require.NoError(t, err)
	sb2novNormal, err := sb2nov.Fragment(FragmentNormalEntry)
	require.NoError(t, err)
	assert.Equal(t, classicNormal, sb2novNormal)

	// ExperienceEntry is overridden, so the two themes differ.
	classicExp, err := classic.Fragment(FragmentExperienceEntry)
	require.NoError(t, err)
	sb2novExp, err := sb2nov.Fragment(FragmentExperienceEntry)
	require.NoError(t, err)
	assert.NotEqual(t, classicExp, sb2novExp)
}

func TestThemeDescriptor_MissingFragmentError(t *testing.T) {
	orphan := &ThemeDescriptor{Name: "orphan", fragments: map[FragmentKey]string{}}

	_, err := orphan.Fragment(FragmentHeader)
	require.Error(t, err)

	fragErr, ok := err.(*MissingFragmentError)
	require.True(t, ok, "error should be MissingFragmentError type")
	assert.Equal(t, "orphan", fragErr.Theme)
	assert.Equal(t, "Header", fragErr.Fragment)
}

func TestFragmentForKind(t *testing.T) {
	assert.Equal(t, FragmentEducationEntry, FragmentForKind(types.KindEducation))
	assert.Equal(t, FragmentTextEntry, FragmentForKind(types.KindText))
	assert.Equal(t, FragmentPublicationEntry, FragmentForKind(types.KindPublication))
}

func writeCustomTheme(t *testing.T, dir string, metadata string, files map[string]string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "theme.yaml"), []byte(metadata), 0o644))
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func TestRegisterCustom_OverridesAndInherits(t *testing.T) {
	dir := t.TempDir()
	writeCustomTheme(t, dir, "name: corporate\nextends: classic\n", map[string]string{
		"Header.tex.tmpl": "% corporate header\n",
		"logo.png":        "fake image bytes",
	})

	reg, err := NewRegistry()
	require.NoError(t, err)

	theme, err := reg.RegisterCustom(dir)
	require.NoError(t, err)
	assert.Equal(t, "corporate", theme.Name)

	resolved, err := reg.Resolve("corporate")
	require.NoError(t, err)
	assert.Same(t, theme, resolved)

	header, err := resolved.Fragment(FragmentHeader)
	require.NoError(t, err)
	assert.Equal(t, "% corporate header\n", header)

	// Fragments the folder does not provide come from classic.
	classic, err := reg.Resolve("classic")
	require.NoError(t, err)
	classicPreamble, err := classic.Fragment(FragmentPreamble)
	require.NoError(t, err)
	customPreamble, err := resolved.Fragment(FragmentPreamble)
	require.NoError(t, err)
	assert.Equal(t, classicPreamble, customPreamble)

	assets := resolved.Assets()
	assert.Equal(t, []byte("fake image bytes"), assets["logo.png"])
}

func TestRegisterCustom_DefaultsFromMetadata(t *testing.T) {
	dir := t.TempDir()
	writeCustomTheme(t, dir, "name: compact\ndesign:\n  font_size: 11pt\n", nil)

	reg, err := NewRegistry()
	require.NoError(t, err)

	theme, err := reg.RegisterCustom(dir)
	require.NoError(t, err)
	require.NotNil(t, theme.Defaults())
	assert.Equal(t, "11pt", theme.Defaults().FontSize)
}

func TestRegisterCustom_MissingMetadata(t *testing.T) {
	reg, err := NewRegistry()
	require.NoError(t, err)

	_, err = reg.RegisterCustom(t.TempDir())
	require.Error(t, err)

	loadErr, ok := err.(*ThemeLoadError)
	require.True(t, ok, "error should be ThemeLoadError type")
	assert.Contains(t, loadErr.Message, "theme.yaml")
}

func TestRegisterCustom_UnknownParent(t *testing.T) {
	dir := t.TempDir()
	writeCustomTheme(t, dir, "name: broken\nextends: nonexistent\n", nil)

	reg, err := NewRegistry()
	require.NoError(t, err)

	_, err = reg.RegisterCustom(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nonexistent")
}

func TestRegisterCustom_UnknownFragmentName(t *testing.T) {
	dir := t.TempDir()
	writeCustomTheme(t, dir, "name: typo\n", map[string]string{
		"HeaderEntry.tex.tmpl": "% not a real fragment\n",
	})

	reg, err := NewRegistry()
	require.NoError(t, err)

	_, err = reg.RegisterCustom(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HeaderEntry")
}
