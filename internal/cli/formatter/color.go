package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/prodsched/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// DepartmentStyle gives each department a stable color so a work item's
// progress reads left to right across tables.
func DepartmentStyle(d domain.Department) lipgloss.Style {
	switch d {
	case domain.DeptLamination:
		return StyleBlue
	case domain.DeptAssembly:
		return StylePurple
	case domain.DeptFinishing:
		return StyleYellow
	case domain.DeptRigging:
		return StyleGreen
	case domain.DeptQC:
		return StyleFg
	default:
		return StyleDim
	}
}

// Department renders a department name in its color.
func Department(d domain.Department) string {
	return DepartmentStyle(d).Render(string(d))
}

// OutcomeIndicator returns "● OK" or "● FAILED".
func OutcomeIndicator(ok bool) string {
	if ok {
		return StyleGreen.Render("● OK")
	}
	return StyleRed.Render("● FAILED")
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
