// Package types provides the validated data model for CV content and design
// configuration. Instances are built once by the parsing layer and treated
// as read-only by everything downstream.
package types

import "time"

// EntryKind discriminates the entry variants. Variant selection happens once
// at parse time; downstream code dispatches on this tag and never re-probes
// field presence.
type EntryKind string

// The entry variants, ordered here from most to least specific. This order
// is also the variant resolution priority used at parse time.
const (
	KindPublication EntryKind = "PublicationEntry"
	KindEducation   EntryKind = "EducationEntry"
	KindExperience  EntryKind = "ExperienceEntry"
	KindProject     EntryKind = "ProjectEntry"
	KindNormal      EntryKind = "NormalEntry"
	KindOneLine     EntryKind = "OneLineEntry"
	KindBullet      EntryKind = "BulletEntry"
	KindText        EntryKind = "TextEntry"
)

// EntryDates holds the common temporal fields shared by the date-bearing
// entry variants. Exactly one of Date or the StartDate/EndDate pair may be
// set; the parsing layer enforces this.
type EntryDates struct {
	Date       *DateField
	StartDate  PartialDate
	EndDate    PartialDate
	EndPresent bool
}

// HasRange reports whether the entry carries a start/end date pair.
func (d EntryDates) HasRange() bool {
	return !d.StartDate.IsZero()
}

// DisplayString renders the date or date range for the entry's date column.
// A range renders as "<start> to <end>"; an ongoing range as
// "<start> to present". onlyYears drops months from the rendered string
// while the underlying dates keep their month for ordering.
func (d EntryDates) DisplayString(onlyYears bool) string {
	switch {
	case d.Date != nil:
		return d.Date.Display(onlyYears)
	case d.HasRange():
		end := "present"
		if !d.EndPresent {
			end = d.EndDate.Format(onlyYears)
		}
		return d.StartDate.Format(onlyYears) + " to " + end
	default:
		return ""
	}
}

// SpanString renders the length of the entry's date range, e.g.
// "2 years 5 months". Single-point entries have no span. now anchors
// ongoing ranges.
func (d EntryDates) SpanString(now time.Time) string {
	if d.Date != nil || !d.HasRange() {
		return ""
	}
	end := d.EndDate
	if d.EndPresent {
		end = PartialDate{Year: now.Year(), Month: int(now.Month()), Day: now.Day()}
	}
	return TimeSpan(d.StartDate, end)
}

// Entry is the tagged union over all entry variants. Only the fields of the
// variant named by Kind are meaningful; the rest stay zero.
type Entry struct {
	Kind EntryKind

	// TextEntry
	Text string

	// BulletEntry
	Bullet string

	// OneLineEntry
	Label   string
	Details string

	// NormalEntry and ProjectEntry
	Name string
	URL  string

	// ExperienceEntry
	Company  string
	Position string

	// EducationEntry
	Institution string
	Area        string
	Degree      string

	// PublicationEntry
	Title   string
	Authors []string
	DOI     string
	Journal string

	// Common descriptive fields of the date-bearing variants.
	Highlights []string
	Location   string
	Summary    string

	EntryDates

	// Display strings precomputed during validation so rendering stays a
	// pure substitution step.
	DateDisplay string
	TimeSpan    string
}

// DOIURL returns the resolver URL for the publication's DOI, or "" when the
// entry has no DOI.
func (e *Entry) DOIURL() string {
	if e.DOI == "" {
		return ""
	}
	return "https://doi.org/" + e.DOI
}
