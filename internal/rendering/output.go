package rendering

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Iuvenis-Sapiens/rendercv/internal/themes"
)

// OutputFileName derives the .tex file name from the CV owner's name,
// e.g. "John Doe" becomes "John_Doe_CV.tex".
func OutputFileName(name string) string {
	base := strings.Join(strings.Fields(name), "_")
	if base == "" {
		base = "CV"
		return base + ".tex"
	}
	return base + "_CV.tex"
}

// WriteFiles writes the rendered document into dir along with the theme's
// static assets, creating dir as needed. It returns the path of the written
// .tex file.
func WriteFiles(dir, fileName, document string, theme *themes.ThemeDescriptor) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &RenderError{Message: fmt.Sprintf("creating output directory %s", dir), Cause: err}
	}

	texPath := filepath.Join(dir, fileName)
	if err := os.WriteFile(texPath, []byte(document), 0o644); err != nil {
		return "", &RenderError{Message: fmt.Sprintf("writing %s", texPath), Cause: err}
	}

	for rel, data := range theme.Assets() {
		assetPath := filepath.Join(dir, rel)
		if err := os.MkdirAll(filepath.Dir(assetPath), 0o755); err != nil {
			return "", &RenderError{Message: fmt.Sprintf("creating asset directory for %s", rel), Cause: err}
		}
		if err := os.WriteFile(assetPath, data, 0o644); err != nil {
			return "", &RenderError{Message: fmt.Sprintf("writing asset %s", rel), Cause: err}
		}
	}

	return texPath, nil
}
