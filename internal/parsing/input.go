package parsing

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"

	"github.com/Iuvenis-Sapiens/rendercv/internal/dimension"
	"github.com/Iuvenis-Sapiens/rendercv/internal/schemas"
	"github.com/Iuvenis-Sapiens/rendercv/internal/themes"
	"github.com/Iuvenis-Sapiens/rendercv/internal/types"
)

// Reader parses YAML input files into the validated CV and Design. The
// theme registry is consulted for design defaults, so theme-specific
// defaults merge before validation.
type Reader struct {
	registry     *themes.Registry
	validate     *validator.Validate
	defaultTheme string

	// now anchors "present" date ranges; injectable for deterministic tests.
	now func() time.Time
}

// NewReader builds a Reader over the given theme registry.
func NewReader(registry *themes.Registry) *Reader {
	return &Reader{
		registry:     registry,
		validate:     validator.New(),
		defaultTheme: themes.DefaultTheme,
		now:          time.Now,
	}
}

// SetDefaultTheme changes the theme used by inputs that do not pick one.
func (r *Reader) SetDefaultTheme(name string) {
	if name != "" {
		r.defaultTheme = name
	}
}

// fileInput mirrors the top level of the YAML input document. Sections are
// decoded as an ordered map so they render in declaration order.
type fileInput struct {
	CV     rawCV          `yaml:"cv"`
	Design map[string]any `yaml:"design"`
}

type rawCV struct {
	Name           string             `yaml:"name"`
	Label          string             `yaml:"label"`
	Location       string             `yaml:"location"`
	Email          string             `yaml:"email"`
	Phone          string             `yaml:"phone"`
	Website        string             `yaml:"website"`
	SocialNetworks []rawSocialNetwork `yaml:"social_networks"`
	Sections       yaml.MapSlice      `yaml:"sections"`
}

type rawSocialNetwork struct {
	Network  string `yaml:"network"`
	Username string `yaml:"username"`
}

// ReadFile reads and validates the YAML input file at path.
func (r *Reader) ReadFile(path string) (*types.CurriculumVitae, *types.Design, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return r.Read(data)
}

// Read validates data and produces the CV content and design. All
// violations found in the pass are aggregated into one
// SchemaValidationError instead of failing on the first.
func (r *Reader) Read(data []byte) (*types.CurriculumVitae, *types.Design, error) {
	if err := schemas.ValidateDocument(data); err != nil {
		var schemaErr *schemas.ValidationError
		if errors.As(err, &schemaErr) {
			agg := &SchemaValidationError{}
			for _, fe := range schemaErr.Errors {
				agg.Errors = append(agg.Errors, FieldError{Path: fe.Field, Err: errors.New(fe.Message)})
			}
			return nil, nil, agg
		}
		return nil, nil, err
	}

	var doc fileInput
	if err := yaml.UnmarshalWithOptions(data, &doc, yaml.Strict()); err != nil {
		return nil, nil, &SchemaValidationError{Errors: []FieldError{{Path: "(root)", Err: err}}}
	}

	errs := &errorCollector{}
	design := r.buildDesign(doc.Design, errs)
	cv := r.buildCV(doc.CV, design, errs)

	if len(errs.errors) > 0 {
		return nil, nil, &SchemaValidationError{Errors: errs.errors}
	}
	return cv, design, nil
}

type errorCollector struct {
	errors []FieldError
}

func (c *errorCollector) add(path string, err error) {
	c.errors = append(c.errors, FieldError{Path: path, Err: err})
}

func (r *Reader) buildDesign(raw map[string]any, errs *errorCollector) *types.Design {
	theme := r.defaultTheme
	if t, ok := raw["theme"].(string); ok && t != "" {
		theme = t
	}

	var design types.Design
	if len(raw) > 0 {
		data, err := yaml.Marshal(raw)
		if err != nil {
			errs.add("design", err)
		} else if err := yaml.UnmarshalWithOptions(data, &design, yaml.Strict()); err != nil {
			errs.add("design", err)
		}
	}
	design.Theme = theme

	descriptor, err := r.registry.Resolve(theme)
	if err != nil {
		errs.add("design.theme", err)
	} else {
		design.ApplyDefaults(descriptor.Defaults())
	}
	design.ApplyDefaults(types.DefaultDesign())

	r.validateDesign(&design, errs)
	return &design
}

func (r *Reader) validateDesign(d *types.Design, errs *errorCollector) {
	if err := r.validate.Var(d.FontSize, "oneof=10pt 11pt 12pt"); err != nil {
		errs.add("design.font_size", fmt.Errorf("must be one of 10pt, 11pt, or 12pt, got %q", d.FontSize))
	}
	if err := r.validate.Var(d.PageSize, "oneof=a4paper letterpaper"); err != nil {
		errs.add("design.page_size", fmt.Errorf("must be a4paper or letterpaper, got %q", d.PageSize))
	}
	if err := r.validate.Var(d.TextAlignment, "oneof=left-aligned justified"); err != nil {
		errs.add("design.text_alignment", fmt.Errorf("must be left-aligned or justified, got %q", d.TextAlignment))
	}
	if _, err := types.ParseColorHex(d.Color); err != nil {
		errs.add("design.color", err)
	}
	if _, err := types.ParseColorHex(d.LinkColor); err != nil {
		errs.add("design.link_color", err)
	}

	lengths := []struct {
		path  string
		value string
	}{
		{"design.header_font_size", d.HeaderFontSize},
		{"design.margins.page.top", d.Margins.Page.Top},
		{"design.margins.page.bottom", d.Margins.Page.Bottom},
		{"design.margins.page.left", d.Margins.Page.Left},
		{"design.margins.page.right", d.Margins.Page.Right},
		{"design.margins.section_title.top", d.Margins.SectionTitle.Top},
		{"design.margins.section_title.bottom", d.Margins.SectionTitle.Bottom},
		{"design.margins.entry_area.left_and_right", d.Margins.EntryArea.LeftAndRight},
		{"design.margins.entry_area.vertical_between", d.Margins.EntryArea.VerticalBetween},
		{"design.margins.entry_area.date_and_location_width", d.Margins.EntryArea.DateAndLocationWidth},
		{"design.margins.highlights_area.top", d.Margins.HighlightsArea.Top},
		{"design.margins.highlights_area.left", d.Margins.HighlightsArea.Left},
		{"design.margins.highlights_area.vertical_between_bullet_points", d.Margins.HighlightsArea.VerticalBetweenBulletPoints},
		{"design.margins.header.vertical_between_name_and_connections", d.Margins.Header.VerticalBetweenNameAndConnections},
		{"design.margins.header.bottom", d.Margins.Header.Bottom},
		{"design.margins.header.horizontal_between_connections", d.Margins.Header.HorizontalBetweenConnections},
	}
	for _, length := range lengths {
		if _, err := dimension.Parse(length.value); err != nil {
			errs.add(length.path, err)
		}
	}
}

// validMastodonUsername accepts "@user" and "@user@instance" handles.
func validMastodonUsername(username string) bool {
	return strings.HasPrefix(username, "@") &&
		len(username) > 1 &&
		strings.Count(username, "@") <= 2
}

func (r *Reader) buildCV(raw rawCV, design *types.Design, errs *errorCollector) *types.CurriculumVitae {
	cv := &types.CurriculumVitae{
		Name:     strings.TrimSpace(raw.Name),
		Label:    raw.Label,
		Location: raw.Location,
	}

	if raw.Email != "" {
		if err := r.validate.Var(raw.Email, "email"); err != nil {
			errs.add("cv.email", fmt.Errorf("%q is not a valid email address", raw.Email))
		} else {
			cv.Email = raw.Email
		}
	}
	if raw.Phone != "" {
		phone, err := NormalizePhone(raw.Phone)
		if err != nil {
			errs.add("cv.phone", err)
		} else {
			cv.Phone = phone
		}
	}
	if raw.Website != "" {
		website, err := NormalizeURL(raw.Website)
		if err != nil {
			errs.add("cv.website", err)
		} else {
			cv.Website = website
		}
	}

	for i, social := range raw.SocialNetworks {
		path := fmt.Sprintf("cv.social_networks.%d", i)
		if !types.KnownSocialNetwork(social.Network) {
			errs.add(path+".network", fmt.Errorf("unknown social network %q", social.Network))
			continue
		}
		if social.Network == "Mastodon" && !validMastodonUsername(social.Username) {
			errs.add(path+".username", fmt.Errorf("Mastodon usernames must start with @ and look like @user or @user@instance"))
			continue
		}
		cv.SocialNetworks = append(cv.SocialNetworks, types.SocialNetwork{
			Network:  social.Network,
			Username: social.Username,
		})
	}

	for _, item := range raw.Sections {
		key, ok := item.Key.(string)
		if !ok {
			errs.add("cv.sections", fmt.Errorf("section keys must be strings"))
			continue
		}
		entries, ok := item.Value.([]any)
		if !ok {
			errs.add("cv.sections."+key, fmt.Errorf("a section must be a list of entries"))
			continue
		}

		section := types.Section{Title: prettifySectionTitle(key)}
		for i, rawEntry := range entries {
			path := fmt.Sprintf("cv.sections.%s.%d", key, i)
			entry, ok := r.buildEntry(rawEntry, path, errs)
			if ok {
				entry.DateDisplay = entry.DisplayString(design.OnlyYears())
				entry.TimeSpan = entry.SpanString(r.now())
				section.Entries = append(section.Entries, *entry)
			}
		}
		cv.Sections = append(cv.Sections, section)
	}

	return cv
}

// prettifySectionTitle turns a section key like "selected_projects" into the
// display title "Selected Projects".
func prettifySectionTitle(key string) string {
	words := strings.Fields(strings.ReplaceAll(key, "_", " "))
	for i, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

var commonEntryFields = []string{"date", "start_date", "end_date", "highlights", "location", "summary"}

var variantFields = map[types.EntryKind][]string{
	types.KindPublication: {"title", "authors", "doi", "journal", "date"},
	types.KindEducation:   append([]string{"institution", "area", "degree"}, commonEntryFields...),
	types.KindExperience:  append([]string{"company", "position"}, commonEntryFields...),
	types.KindProject:     append([]string{"name", "url"}, commonEntryFields...),
	types.KindNormal:      append([]string{"name"}, commonEntryFields...),
	types.KindOneLine:     {"label", "details"},
	types.KindBullet:      {"bullet"},
}

func allowedField(kind types.EntryKind, key string) bool {
	for _, field := range variantFields[kind] {
		if field == key {
			return true
		}
	}
	return false
}

func (r *Reader) buildEntry(raw any, path string, errs *errorCollector) (*types.Entry, bool) {
	if text, ok := raw.(string); ok {
		return &types.Entry{Kind: types.KindText, Text: text}, true
	}
	m, ok := entryMap(raw)
	if !ok {
		errs.add(path, fmt.Errorf("an entry must be a string or a mapping"))
		return nil, false
	}

	kind, err := resolveVariant(m)
	if err != nil {
		errs.add(path, err)
		return nil, false
	}

	before := len(errs.errors)
	entry := &types.Entry{Kind: kind}
	fields := &fieldReader{raw: m, path: path, errs: errs}

	switch kind {
	case types.KindPublication:
		entry.Title = fields.str("title")
		entry.Authors = fields.strList("authors")
		entry.DOI = fields.str("doi")
		entry.Journal = fields.str("journal")
	case types.KindEducation:
		entry.Institution = fields.str("institution")
		entry.Area = fields.str("area")
		entry.Degree = fields.str("degree")
	case types.KindExperience:
		entry.Company = fields.str("company")
		entry.Position = fields.str("position")
	case types.KindProject:
		entry.Name = fields.str("name")
		if rawURL := fields.str("url"); rawURL != "" {
			normalized, err := NormalizeURL(rawURL)
			if err != nil {
				errs.add(path+".url", err)
			} else {
				entry.URL = normalized
			}
		}
	case types.KindNormal:
		entry.Name = fields.str("name")
	case types.KindOneLine:
		entry.Label = fields.str("label")
		entry.Details = fields.str("details")
	case types.KindBullet:
		entry.Bullet = fields.str("bullet")
	}

	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if !allowedField(kind, key) {
			errs.add(path+"."+key, fmt.Errorf("field is not allowed on %s", kind))
		}
	}

	switch kind {
	case types.KindEducation, types.KindExperience, types.KindProject, types.KindNormal:
		entry.Highlights = fields.strList("highlights")
		entry.Location = fields.str("location")
		entry.Summary = fields.str("summary")
	}

	r.buildDates(fields, entry)

	return entry, len(errs.errors) == before
}

func (r *Reader) buildDates(fields *fieldReader, entry *types.Entry) {
	switch entry.Kind {
	case types.KindOneLine, types.KindBullet, types.KindText:
		return
	}

	dateVal, hasDate := fields.present("date")
	startVal, hasStart := fields.present("start_date")
	endVal, hasEnd := fields.present("end_date")

	if entry.Kind == types.KindPublication {
		if hasDate {
			field, err := parseDateValue(dateVal)
			if err != nil {
				fields.errs.add(fields.path+".date", err)
				return
			}
			entry.Date = &field
		}
		return
	}

	if hasDate && (hasStart || hasEnd) {
		fields.errs.add(fields.path+".date", &UnambiguousDateConflictError{})
		return
	}
	if hasEnd && !hasStart {
		fields.errs.add(fields.path+".end_date", fmt.Errorf(`"end_date" requires "start_date"`))
		return
	}

	if hasDate {
		field, err := parseDateValue(dateVal)
		if err != nil {
			fields.errs.add(fields.path+".date", err)
			return
		}
		entry.Date = &field
		return
	}
	if !hasStart {
		return
	}

	start, err := parseRangeDate(startVal)
	if err != nil {
		fields.errs.add(fields.path+".start_date", err)
		return
	}
	entry.StartDate = start

	if !hasEnd {
		// An open start means the position is ongoing.
		entry.EndPresent = true
		return
	}
	if text, ok := endVal.(string); ok && text == "present" {
		entry.EndPresent = true
		return
	}

	end, err := parseRangeDate(endVal)
	if err != nil {
		fields.errs.add(fields.path+".end_date", err)
		return
	}
	if start.After(end) {
		fields.errs.add(fields.path+".start_date", &DateOrderError{
			Start: start.Format(false),
			End:   end.Format(false),
		})
		return
	}
	entry.EndDate = end
}

// parseDateValue interprets a single-point date. Strings that are not
// partial dates pass through verbatim as custom dates like "Fall 2023".
func parseDateValue(v any) (types.DateField, error) {
	if text, ok := v.(string); ok {
		if parsed, err := types.ParsePartialDate(text); err == nil {
			return types.DateField{Parsed: parsed}, nil
		}
		return types.DateField{Custom: text}, nil
	}
	parsed, err := parseRangeDate(v)
	if err != nil {
		return types.DateField{}, err
	}
	return types.DateField{Parsed: parsed}, nil
}

// parseRangeDate interprets a range endpoint. Custom strings are not
// allowed here since endpoints must be orderable.
func parseRangeDate(v any) (types.PartialDate, error) {
	switch val := v.(type) {
	case string:
		return types.ParsePartialDate(val)
	case int:
		return yearDate(val)
	case int64:
		return yearDate(int(val))
	case uint64:
		return yearDate(int(val))
	case float64:
		if val == float64(int(val)) {
			return yearDate(int(val))
		}
	case time.Time:
		return types.PartialDate{Year: val.Year(), Month: int(val.Month()), Day: val.Day()}, nil
	}
	return types.PartialDate{}, fmt.Errorf("cannot interpret %v as a date", v)
}

func yearDate(year int) (types.PartialDate, error) {
	if year < 1000 || year > 9999 {
		return types.PartialDate{}, fmt.Errorf("year %d is out of range", year)
	}
	return types.PartialDate{Year: year}, nil
}

// entryMap normalizes the decoded form of an entry mapping.
func entryMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case yaml.MapSlice:
		out := make(map[string]any, len(m))
		for _, item := range m {
			key, ok := item.Key.(string)
			if !ok {
				return nil, false
			}
			out[key] = item.Value
		}
		return out, true
	}
	return nil, false
}

// fieldReader extracts typed values from a raw entry mapping, recording a
// path-qualified error for each type mismatch.
type fieldReader struct {
	raw  map[string]any
	path string
	errs *errorCollector
}

func (f *fieldReader) present(key string) (any, bool) {
	v, ok := f.raw[key]
	return v, ok && v != nil
}

func (f *fieldReader) str(key string) string {
	v, ok := f.present(key)
	if !ok {
		return ""
	}
	text, ok := v.(string)
	if !ok {
		f.errs.add(f.path+"."+key, fmt.Errorf("expected a string, got %T", v))
		return ""
	}
	return text
}

func (f *fieldReader) strList(key string) []string {
	v, ok := f.present(key)
	if !ok {
		return nil
	}
	list, ok := v.([]any)
	if !ok {
		f.errs.add(f.path+"."+key, fmt.Errorf("expected a list of strings, got %T", v))
		return nil
	}
	out := make([]string, 0, len(list))
	for i, item := range list {
		text, ok := item.(string)
		if !ok {
			f.errs.add(fmt.Sprintf("%s.%s.%d", f.path, key, i), fmt.Errorf("expected a string, got %T", item))
			continue
		}
		out = append(out, text)
	}
	return out
}
