package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testInput = `cv:
  name: John Doe
  email: john@example.com
  sections:
    summary:
      - An engineer.
    experience:
      - company: ACME
        position: Engineer
        start_date: "2021-06"
        end_date: present
`

func TestRunRender_WritesDocument(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "cv.yaml")
	require.NoError(t, os.WriteFile(inputPath, []byte(testInput), 0o644))

	renderOutputDir = filepath.Join(dir, "out")
	renderThemeDirs = nil
	renderVerbose = false

	err := runRender(nil, []string{inputPath})
	require.NoError(t, err)

	document, err := os.ReadFile(filepath.Join(renderOutputDir, "John_Doe_CV.tex"))
	require.NoError(t, err)
	assert.Contains(t, string(document), `\begin{document}`)
	assert.Contains(t, string(document), `\textbf{ACME}, Engineer`)
}

func TestRunRender_MultipleInputs(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.yaml")
	second := filepath.Join(dir, "second.yaml")
	require.NoError(t, os.WriteFile(first, []byte(testInput), 0o644))
	require.NoError(t, os.WriteFile(second, []byte(strings.Replace(testInput, "John Doe", "Jane Roe", 1)), 0o644))

	renderOutputDir = filepath.Join(dir, "out")
	renderThemeDirs = nil
	renderVerbose = false

	err := runRender(nil, []string{first, second})
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(renderOutputDir, "John_Doe_CV.tex"))
	assert.FileExists(t, filepath.Join(renderOutputDir, "Jane_Roe_CV.tex"))
}

func TestRunRender_ValidationFailureNamesInput(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "bad.yaml")
	badInput := `cv:
  name: John Doe
  email: not-an-email
  sections:
    summary:
      - Text.
`
	require.NoError(t, os.WriteFile(inputPath, []byte(badInput), 0o644))

	renderOutputDir = filepath.Join(dir, "out")
	renderThemeDirs = nil
	renderVerbose = false

	err := runRender(nil, []string{inputPath})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.yaml")
	assert.Contains(t, err.Error(), "cv.email")
}

func TestRunRender_CustomThemeDir(t *testing.T) {
	dir := t.TempDir()
	themeDir := filepath.Join(dir, "mytheme")
	require.NoError(t, os.MkdirAll(themeDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(themeDir, "theme.yaml"), []byte("name: mytheme\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(themeDir, "SectionBeginning.tex.tmpl"),
		[]byte("\\section*{<< escape .Section.Title >>}\n"), 0o644))

	inputPath := filepath.Join(dir, "cv.yaml")
	require.NoError(t, os.WriteFile(inputPath, []byte(testInput+"design:\n  theme: mytheme\n"), 0o644))

	renderOutputDir = filepath.Join(dir, "out")
	renderThemeDirs = []string{themeDir}
	renderVerbose = false

	err := runRender(nil, []string{inputPath})
	require.NoError(t, err)

	document, err := os.ReadFile(filepath.Join(renderOutputDir, "John_Doe_CV.tex"))
	require.NoError(t, err)
	assert.Contains(t, string(document), `\section*{Summary}`)
}

func TestRunNew_CreatesStarterFile(t *testing.T) {
	chdir(t, t.TempDir())
	newTheme = "classic"

	require.NoError(t, runNew(nil, []string{"Jane Roe"}))
	assert.FileExists(t, "Jane_Roe_CV.yaml")

	// A second run must not clobber the edited file.
	err := runNew(nil, []string{"Jane Roe"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestRunNew_OutputRendersCleanly(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	newTheme = "sb2nov"

	require.NoError(t, runNew(nil, []string{"Jane Roe"}))

	renderOutputDir = filepath.Join(dir, "out")
	renderThemeDirs = nil
	renderVerbose = false

	err := runRender(nil, []string{"Jane_Roe_CV.yaml"})
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(renderOutputDir, "Jane_Roe_CV.tex"))
}
