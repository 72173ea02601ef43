package rendering

import (
	"errors"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/Iuvenis-Sapiens/rendercv/internal/themes"
	"github.com/Iuvenis-Sapiens/rendercv/internal/types"
)

// Engine renders validated CVs against the themes of a registry. Rendering
// is pure substitution over precomputed data, so the same inputs always
// produce byte-identical output.
type Engine struct {
	registry *themes.Registry

	// now stamps the last-updated line; injectable for deterministic tests.
	now func() time.Time
}

// NewEngine builds an Engine over the given theme registry.
func NewEngine(registry *themes.Registry) *Engine {
	return &Engine{registry: registry, now: time.Now}
}

// Connection is one line of contact information in the header.
type Connection struct {
	Text string
	URL  string // empty for plain-text connections
}

// fragmentData is the single data shape every fragment executes against.
// Only the fields relevant to a fragment are populated for it.
type fragmentData struct {
	CV     *types.CurriculumVitae
	Design *types.Design

	Section *types.Section
	Entry   *types.Entry

	// Date is the full date column text, time span included.
	Date string

	Connections []Connection

	Preamble    string
	Header      string
	Body        string
	LastUpdated string
}

// Render produces the complete LaTeX document for the CV.
func (e *Engine) Render(cv *types.CurriculumVitae, design *types.Design) (string, error) {
	theme, err := e.registry.Resolve(design.Theme)
	if err != nil {
		return "", err
	}
	set := newFragmentSet(theme)

	base := fragmentData{
		CV:          cv,
		Design:      design,
		LastUpdated: types.FormatMonthYear(e.now()),
	}

	preamble, err := set.execute(themes.FragmentPreamble, base)
	if err != nil {
		return "", err
	}

	headerData := base
	headerData.Connections = connections(cv)
	header, err := set.execute(themes.FragmentHeader, headerData)
	if err != nil {
		return "", err
	}

	var body strings.Builder
	for i := range cv.Sections {
		section := &cv.Sections[i]
		sectionData := base
		sectionData.Section = section

		beginning, err := set.execute(themes.FragmentSectionBeginning, sectionData)
		if err != nil {
			return "", err
		}
		body.WriteString(beginning)

		for j := range section.Entries {
			entry := &section.Entries[j]
			entryData := sectionData
			entryData.Entry = entry
			entryData.Date = dateColumn(entry, design, section.Title)

			rendered, err := set.execute(themes.FragmentForKind(entry.Kind), entryData)
			if err != nil {
				var placeholderErr *PlaceholderResolutionError
				if errors.As(err, &placeholderErr) {
					placeholderErr.Section = section.Title
					placeholderErr.EntryIndex = j
				}
				return "", err
			}
			body.WriteString(rendered)
			if j < len(section.Entries)-1 {
				body.WriteString("\n\\vspace{" + design.Margins.EntryArea.VerticalBetween + "}\n\n")
			}
		}

		ending, err := set.execute(themes.FragmentSectionEnding, sectionData)
		if err != nil {
			return "", err
		}
		body.WriteString(ending)
	}

	documentData := base
	documentData.Preamble = strings.TrimRight(preamble, "\n")
	documentData.Header = header
	documentData.Body = body.String()
	return set.execute(themes.FragmentDocument, documentData)
}

// dateColumn builds the right-column date text for an entry, appending the
// time span when the design requests it for the entry's section.
func dateColumn(entry *types.Entry, design *types.Design, sectionTitle string) string {
	if entry.DateDisplay == "" {
		return ""
	}
	if entry.TimeSpan != "" && design.ShowTimeSpanFor(sectionTitle) {
		return entry.DateDisplay + " (" + entry.TimeSpan + ")"
	}
	return entry.DateDisplay
}

// connections collects the header's contact lines in their fixed order:
// location, email, phone, website, then social profiles as declared.
func connections(cv *types.CurriculumVitae) []Connection {
	var out []Connection
	if cv.Location != "" {
		out = append(out, Connection{Text: cv.Location})
	}
	if cv.Email != "" {
		out = append(out, Connection{Text: cv.Email, URL: "mailto:" + cv.Email})
	}
	if cv.Phone != "" {
		out = append(out, Connection{Text: cv.Phone, URL: "tel:" + cv.Phone})
	}
	if cv.Website != "" {
		out = append(out, Connection{Text: displayURL(cv.Website), URL: cv.Website})
	}
	for _, social := range cv.SocialNetworks {
		out = append(out, Connection{Text: social.Username, URL: social.URL()})
	}
	return out
}

func displayURL(raw string) string {
	display := strings.TrimPrefix(raw, "https://")
	display = strings.TrimPrefix(display, "http://")
	return strings.TrimSuffix(display, "/")
}

// fragmentSet parses a theme's fragments on demand and caches the parsed
// templates for the rest of the render.
type fragmentSet struct {
	theme *themes.ThemeDescriptor
	funcs template.FuncMap
	cache map[themes.FragmentKey]*template.Template
}

func newFragmentSet(theme *themes.ThemeDescriptor) *fragmentSet {
	return &fragmentSet{
		theme: theme,
		funcs: templateFuncs(),
		cache: make(map[themes.FragmentKey]*template.Template),
	}
}

func (s *fragmentSet) execute(key themes.FragmentKey, data fragmentData) (string, error) {
	tmpl, ok := s.cache[key]
	if !ok {
		text, err := s.theme.Fragment(key)
		if err != nil {
			return "", err
		}
		tmpl, err = template.New(string(key)).
			Delims("<<", ">>").
			Option("missingkey=error").
			Funcs(s.funcs).
			Parse(text)
		if err != nil {
			return "", &TemplateError{
				Message: fmt.Sprintf("parsing %s fragment of theme %q", key, s.theme.Name),
				Cause:   err,
			}
		}
		s.cache[key] = tmpl
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", &PlaceholderResolutionError{
			Theme:      s.theme.Name,
			Fragment:   string(key),
			Cause:      err,
			EntryIndex: -1,
		}
	}
	return buf.String(), nil
}
