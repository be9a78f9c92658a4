// Package styles holds the lipgloss styles used for human-readable output
package styles

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/roster/internal/config"
	"github.com/thenoetrevino/roster/internal/models"
)

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 60

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "Email:"
	ValueStyle    lipgloss.Style // For field values
	SectionStyle  lipgloss.Style // For section headers like "Sellers"

	// Status styles
	CreateStyle  lipgloss.Style
	EditStyle    lipgloss.Style
	DeleteStyle  lipgloss.Style
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
)

// Init initializes all CLI styles with the given color scheme
func Init(colors config.ColorScheme) {
	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Accent)).
		Padding(0, 2).
		Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Normal))

	SectionStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Accent)).
		Bold(true).
		MarginTop(1)

	CreateStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Create))

	EditStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Edit))

	DeleteStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Delete))

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.InfoFg)).
		Background(lipgloss.Color(colors.InfoBg)).
		Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.ErrorFg)).
		Background(lipgloss.Color(colors.ErrorBg)).
		Padding(0, 1)

	WarningStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.WarningFg)).
		Background(lipgloss.Color(colors.WarningBg)).
		Padding(0, 1)
}

// ═══════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════

// ColoredText renders text with a hex color
func ColoredText(text, hexColor string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(hexColor)).
		Render(text)
}

// RenderField renders a "Label: value" line
func RenderField(label, value string) string {
	return LabelStyle.Render(label+":") + " " + ValueStyle.Render(value)
}

// RenderCard wraps content in a styled card border
func RenderCard(content string) string {
	return CardStyle.Render(content)
}

// RenderDepartment renders a single department as a card
func RenderDepartment(d *models.Department) string {
	lines := []string{
		TitleStyle.Render(d.Name),
		SubtitleStyle.Render(fmt.Sprintf("Department #%d", d.GetID())),
	}
	return RenderCard(strings.Join(lines, "\n"))
}

// RenderSeller renders a single seller as a card
func RenderSeller(s *models.Seller, display config.Display) string {
	lines := []string{
		TitleStyle.Render(s.Name),
		SubtitleStyle.Render(fmt.Sprintf("Seller #%d", s.GetID())),
		"",
		RenderField("Email", s.Email),
		RenderField("Birth date", display.FormatDate(s.BirthDate)),
		RenderField("Base salary", display.FormatSalary(s.BaseSalary)),
		RenderField("Department", departmentLabel(s)),
	}
	return RenderCard(strings.Join(lines, "\n"))
}

// DepartmentLine renders a department as one list row: "[id] name"
func DepartmentLine(d *models.Department) string {
	return fmt.Sprintf("  %s %s",
		SubtitleStyle.Render(fmt.Sprintf("[%d]", d.GetID())),
		ValueStyle.Render(d.Name))
}

// SellerLine renders a seller as one list row
func SellerLine(s *models.Seller, display config.Display) string {
	return fmt.Sprintf("  %s %s <%s>  %s  %s",
		SubtitleStyle.Render(fmt.Sprintf("[%d]", s.GetID())),
		ValueStyle.Render(s.Name),
		s.Email,
		display.FormatSalary(s.BaseSalary),
		SubtitleStyle.Render(departmentLabel(s)))
}

func departmentLabel(s *models.Seller) string {
	if s.Department != nil {
		return fmt.Sprintf("%s (#%d)", s.Department.Name, s.Department.GetID())
	}
	return fmt.Sprintf("#%d", s.DepartmentRef())
}
