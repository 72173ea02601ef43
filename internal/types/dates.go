package types

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Month abbreviations, taken from: https://web.library.yale.edu/cataloging/months
var monthAbbreviations = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "June",
	"July", "Aug", "Sept", "Oct", "Nov", "Dec",
}

var partialDatePattern = regexp.MustCompile(`^(\d{4})(?:-(\d{2}))?(?:-(\d{2}))?$`)

// PartialDate is a calendar point with year granularity, optionally refined
// to a month and a day.
type PartialDate struct {
	Year  int
	Month int // 0 when only the year is known
	Day   int // 0 when no day is known
}

// ParsePartialDate parses a date string in YYYY, YYYY-MM, or YYYY-MM-DD
// format.
func ParsePartialDate(s string) (PartialDate, error) {
	m := partialDatePattern.FindStringSubmatch(s)
	if m == nil {
		return PartialDate{}, fmt.Errorf("date %q is not in YYYY, YYYY-MM, or YYYY-MM-DD format", s)
	}

	d := PartialDate{}
	d.Year, _ = strconv.Atoi(m[1])
	if m[2] != "" {
		d.Month, _ = strconv.Atoi(m[2])
		if d.Month < 1 || d.Month > 12 {
			return PartialDate{}, fmt.Errorf("date %q has an invalid month", s)
		}
	}
	if m[3] != "" {
		d.Day, _ = strconv.Atoi(m[3])
		check := time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
		if check.Day() != d.Day || check.Month() != time.Month(d.Month) {
			return PartialDate{}, fmt.Errorf("date %q has an invalid day", s)
		}
	}

	return d, nil
}

// IsZero reports whether the date is unset.
func (d PartialDate) IsZero() bool {
	return d.Year == 0
}

// Time pins the date to the first day of its known granularity.
func (d PartialDate) Time() time.Time {
	month, day := d.Month, d.Day
	if month == 0 {
		month = 1
	}
	if day == 0 {
		day = 1
	}
	return time.Date(d.Year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// After reports whether d is after other.
func (d PartialDate) After(other PartialDate) bool {
	return d.Time().After(other.Time())
}

// Format renders the date for display: "Jan 2020" when the month is known,
// "2020" otherwise. onlyYear drops the month even when it is known.
func (d PartialDate) Format(onlyYear bool) string {
	if d.Month == 0 || onlyYear {
		return strconv.Itoa(d.Year)
	}
	return monthAbbreviations[d.Month-1] + " " + strconv.Itoa(d.Year)
}

// DateField holds a single-point date: either a parsed partial date or a
// custom free-form string such as "Fall 2020".
type DateField struct {
	Parsed PartialDate
	Custom string
}

// Display renders the field for the date column of an entry.
func (f DateField) Display(onlyYear bool) string {
	if f.Custom != "" {
		return f.Custom
	}
	return f.Parsed.Format(onlyYear)
}

// FormatMonthYear formats a point in time as e.g. "Aug 2026". Used for the
// last-updated stamp.
func FormatMonthYear(t time.Time) string {
	return monthAbbreviations[t.Month()-1] + " " + strconv.Itoa(t.Year())
}

// TimeSpan returns a human-readable span between two dates, e.g.
// "2 years 5 months". When either side carries only a year, the span cannot
// be more specific than years.
func TimeSpan(start, end PartialDate) string {
	if start.IsZero() || end.IsZero() {
		return ""
	}

	if start.Month == 0 || end.Month == 0 {
		years := end.Year - start.Year
		if years < 2 {
			return "1 year"
		}
		return fmt.Sprintf("%d years", years)
	}

	days := int(end.Time().Sub(start.Time()).Hours() / 24)
	if days < 0 {
		return ""
	}

	years := days / 365
	months := int(float64(days%365)/30 + 0.5)

	var yearsPart string
	switch {
	case years == 1:
		yearsPart = "1 year"
	case years > 1:
		yearsPart = fmt.Sprintf("%d years", years)
	}

	monthsPart := "1 month"
	if months > 1 {
		monthsPart = fmt.Sprintf("%d months", months)
	}

	if yearsPart == "" {
		return monthsPart
	}
	return yearsPart + " " + monthsPart
}
