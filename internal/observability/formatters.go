// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Iuvenis-Sapiens/rendercv/internal/parsing"
	"github.com/Iuvenis-Sapiens/rendercv/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintCVSummary outputs a human-readable summary of the parsed CV: who it
// belongs to and what each section holds.
func (p *Printer) PrintCVSummary(cv *types.CurriculumVitae) {
	if cv == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:     %s\n", cv.Name))
	if cv.Label != "" {
		sb.WriteString(fmt.Sprintf("Label:    %s\n", cv.Label))
	}
	if cv.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:    %s\n", cv.Email))
	}
	if len(cv.SocialNetworks) > 0 {
		networks := make([]string, len(cv.SocialNetworks))
		for i, social := range cv.SocialNetworks {
			networks[i] = social.Network
		}
		sb.WriteString(fmt.Sprintf("Profiles: %s\n", strings.Join(networks, ", ")))
	}
	sb.WriteString("\n")

	sb.WriteString("Sections:\n")
	count := min(len(cv.Sections), maxItemsToShow)
	for i := 0; i < count; i++ {
		section := cv.Sections[i]
		sb.WriteString(fmt.Sprintf("  • %s (%d entries)\n", section.Title, len(section.Entries)))
	}
	if len(cv.Sections) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(cv.Sections)-maxItemsToShow))
	}

	p.printBox("PARSED CV", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintDesign outputs the effective design after theme and library defaults
// have been merged in.
func (p *Printer) PrintDesign(design *types.Design) {
	if design == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Theme:          %s\n", design.Theme))
	sb.WriteString(fmt.Sprintf("Font size:      %s\n", design.FontSize))
	sb.WriteString(fmt.Sprintf("Page size:      %s\n", design.PageSize))
	sb.WriteString(fmt.Sprintf("Alignment:      %s\n", design.TextAlignment))
	sb.WriteString(fmt.Sprintf("Page numbering: %t", design.PageNumbering()))

	p.printBox("EFFECTIVE DESIGN", sb.String())
}

// PrintValidationReport outputs every violation of an aggregated validation
// error, one numbered line per field.
func (p *Printer) PrintValidationReport(err *parsing.SchemaValidationError) {
	if err == nil || len(err.Errors) == 0 {
		return
	}

	var sb strings.Builder
	for i, fieldErr := range err.Errors {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, fieldErr.Path))
		sb.WriteString(fmt.Sprintf("   %v\n", fieldErr.Err))
	}

	p.printBox(fmt.Sprintf("VALIDATION FAILED (%d problems)", len(err.Errors)), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRenderSummary outputs where the rendered document went and how long
// rendering took.
func (p *Printer) PrintRenderSummary(texPath string, assetCount int, elapsed time.Duration) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Output:  %s\n", texPath))
	sb.WriteString(fmt.Sprintf("Assets:  %d\n", assetCount))
	sb.WriteString(fmt.Sprintf("Took:    %s", elapsed.Round(time.Millisecond)))

	p.printBox("RENDER COMPLETE", sb.String())
}
