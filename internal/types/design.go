package types

// PageMargins are the outer page margins.
type PageMargins struct {
	Top    string `yaml:"top"`
	Bottom string `yaml:"bottom"`
	Left   string `yaml:"left"`
	Right  string `yaml:"right"`
}

// SectionTitleMargins surround each section title.
type SectionTitleMargins struct {
	Top    string `yaml:"top"`
	Bottom string `yaml:"bottom"`
}

// EntryAreaMargins lay out the entry body and its date column.
type EntryAreaMargins struct {
	LeftAndRight         string `yaml:"left_and_right"`
	VerticalBetween      string `yaml:"vertical_between"`
	DateAndLocationWidth string `yaml:"date_and_location_width"`
}

// HighlightsAreaMargins lay out the bullet list under an entry.
type HighlightsAreaMargins struct {
	Top                         string `yaml:"top"`
	Left                        string `yaml:"left"`
	VerticalBetweenBulletPoints string `yaml:"vertical_between_bullet_points"`
}

// HeaderMargins lay out the name and connection lines at the top.
type HeaderMargins struct {
	VerticalBetweenNameAndConnections string `yaml:"vertical_between_name_and_connections"`
	Bottom                            string `yaml:"bottom"`
	HorizontalBetweenConnections      string `yaml:"horizontal_between_connections"`
}

// Margins groups every margin setting of a design.
type Margins struct {
	Page           PageMargins           `yaml:"page"`
	SectionTitle   SectionTitleMargins   `yaml:"section_title"`
	EntryArea      EntryAreaMargins      `yaml:"entry_area"`
	HighlightsArea HighlightsAreaMargins `yaml:"highlights_area"`
	Header         HeaderMargins         `yaml:"header"`
}

// Design is the visual configuration of a CV, distinct from its content.
// It carries the union of the built-in themes' options; themes declare
// defaults for the subset they style. Boolean toggles are pointers so an
// unset value is distinguishable from an explicit false.
type Design struct {
	Theme string `yaml:"theme"`

	FontSize       string `yaml:"font_size"`
	PageSize       string `yaml:"page_size"`
	Color          string `yaml:"color"`
	HeaderFontSize string `yaml:"header_font_size"`
	TextAlignment  string `yaml:"text_alignment"`
	LinkColor      string `yaml:"link_color"`

	DisablePageNumbering *bool  `yaml:"disable_page_numbering"`
	PageNumberingStyle   string `yaml:"page_numbering_style"`
	ShowLastUpdatedDate  *bool  `yaml:"show_last_updated_date"`

	ShowTimespanIn []string `yaml:"show_timespan_in"`
	ShowOnlyYears  *bool    `yaml:"show_only_years"`

	Margins Margins `yaml:"margins"`
}

// DefaultDesign returns the library-wide defaults every theme falls back to.
func DefaultDesign() *Design {
	boolPtr := func(v bool) *bool { return &v }
	return &Design{
		FontSize:             "10pt",
		PageSize:             "letterpaper",
		Color:                "rgb(0,79,144)",
		HeaderFontSize:       "30 pt",
		TextAlignment:        "justified",
		LinkColor:            "blue",
		DisablePageNumbering: boolPtr(false),
		PageNumberingStyle:   "NAME -- Page PAGE_NUMBER of TOTAL_PAGES",
		ShowLastUpdatedDate:  boolPtr(true),
		ShowOnlyYears:        boolPtr(false),
		Margins: Margins{
			Page: PageMargins{Top: "2 cm", Bottom: "2 cm", Left: "1.24 cm", Right: "1.24 cm"},
			SectionTitle: SectionTitleMargins{Top: "0.2 cm", Bottom: "0.2 cm"},
			EntryArea: EntryAreaMargins{
				LeftAndRight:         "0.2 cm",
				VerticalBetween:      "0.12 cm",
				DateAndLocationWidth: "4.1 cm",
			},
			HighlightsArea: HighlightsAreaMargins{
				Top:                         "0.10 cm",
				Left:                        "0.4 cm",
				VerticalBetweenBulletPoints: "0.10 cm",
			},
			Header: HeaderMargins{
				VerticalBetweenNameAndConnections: "0.2 cm",
				Bottom:                            "0.2 cm",
				HorizontalBetweenConnections:      "0.5 cm",
			},
		},
	}
}

// ApplyDefaults fills every unset leaf of d from def. Explicitly supplied
// values always win; defaults never overwrite them.
func (d *Design) ApplyDefaults(def *Design) {
	if def == nil {
		return
	}

	fillString(&d.FontSize, def.FontSize)
	fillString(&d.PageSize, def.PageSize)
	fillString(&d.Color, def.Color)
	fillString(&d.HeaderFontSize, def.HeaderFontSize)
	fillString(&d.TextAlignment, def.TextAlignment)
	fillString(&d.LinkColor, def.LinkColor)
	fillString(&d.PageNumberingStyle, def.PageNumberingStyle)

	fillBool(&d.DisablePageNumbering, def.DisablePageNumbering)
	fillBool(&d.ShowLastUpdatedDate, def.ShowLastUpdatedDate)
	fillBool(&d.ShowOnlyYears, def.ShowOnlyYears)

	if d.ShowTimespanIn == nil {
		d.ShowTimespanIn = def.ShowTimespanIn
	}

	fillString(&d.Margins.Page.Top, def.Margins.Page.Top)
	fillString(&d.Margins.Page.Bottom, def.Margins.Page.Bottom)
	fillString(&d.Margins.Page.Left, def.Margins.Page.Left)
	fillString(&d.Margins.Page.Right, def.Margins.Page.Right)
	fillString(&d.Margins.SectionTitle.Top, def.Margins.SectionTitle.Top)
	fillString(&d.Margins.SectionTitle.Bottom, def.Margins.SectionTitle.Bottom)
	fillString(&d.Margins.EntryArea.LeftAndRight, def.Margins.EntryArea.LeftAndRight)
	fillString(&d.Margins.EntryArea.VerticalBetween, def.Margins.EntryArea.VerticalBetween)
	fillString(&d.Margins.EntryArea.DateAndLocationWidth, def.Margins.EntryArea.DateAndLocationWidth)
	fillString(&d.Margins.HighlightsArea.Top, def.Margins.HighlightsArea.Top)
	fillString(&d.Margins.HighlightsArea.Left, def.Margins.HighlightsArea.Left)
	fillString(&d.Margins.HighlightsArea.VerticalBetweenBulletPoints, def.Margins.HighlightsArea.VerticalBetweenBulletPoints)
	fillString(&d.Margins.Header.VerticalBetweenNameAndConnections, def.Margins.Header.VerticalBetweenNameAndConnections)
	fillString(&d.Margins.Header.Bottom, def.Margins.Header.Bottom)
	fillString(&d.Margins.Header.HorizontalBetweenConnections, def.Margins.Header.HorizontalBetweenConnections)
}

func fillString(dst *string, def string) {
	if *dst == "" {
		*dst = def
	}
}

func fillBool(dst **bool, def *bool) {
	if *dst == nil && def != nil {
		v := *def
		*dst = &v
	}
}

// PageNumbering reports whether page numbers should be emitted.
func (d *Design) PageNumbering() bool {
	return d.DisablePageNumbering == nil || !*d.DisablePageNumbering
}

// ShowLastUpdated reports whether the last-updated stamp should be emitted.
func (d *Design) ShowLastUpdated() bool {
	return d.ShowLastUpdatedDate != nil && *d.ShowLastUpdatedDate
}

// OnlyYears reports whether rendered date strings drop their months.
func (d *Design) OnlyYears() bool {
	return d.ShowOnlyYears != nil && *d.ShowOnlyYears
}

// ShowTimeSpanFor reports whether entries in the named section display their
// time span next to the date range.
func (d *Design) ShowTimeSpanFor(sectionTitle string) bool {
	for _, title := range d.ShowTimespanIn {
		if title == sectionTitle {
			return true
		}
	}
	return false
}
