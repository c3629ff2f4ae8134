package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/breakeven/internal/version"
)

// Application branding constants
const (
	AppName    = "BREAKEVEN"
	AppTagline = "device cost over 36 months"
)

// AppVersion returns the application version from the centralized version package
func AppVersion() string {
	return version.Version
}

// Layout constants
const (
	MinTerminalWidth  = 72 // Minimum supported terminal width
	MinTerminalHeight = 24 // Minimum supported terminal height
	FormWidthPercent  = 30 // Share of the width used by fields and table
	FieldBoxHeight    = 3  // Bordered single-line field
)

// Color palette
var (
	PrimaryColor = lipgloss.Color("#7D56F4") // Purple
	ErrorColor   = lipgloss.Color("#FF0000") // Red
	SuccessColor = lipgloss.Color("#43BF6D") // Green
	AxisColor    = lipgloss.Color("#FF5F5F") // Light red, for axis titles

	TextColor   = lipgloss.Color("#FFFFFF") // White
	SubtleColor = lipgloss.Color("#626262") // Gray
	BorderColor = lipgloss.Color("#7D56F4") // Purple (same as primary)
	FocusColor  = lipgloss.Color("#FF0000") // Red border on the focused field
	BlurColor   = lipgloss.Color("#A8A8A8") // Light gray border otherwise
)

// Common styles
var (
	// Field text when focused
	FocusedInputStyle = lipgloss.NewStyle().
				Foreground(FocusColor)

	// Field text when not focused
	BlurredInputStyle = lipgloss.NewStyle().
				Foreground(BlurColor)

	// Table header
	TableHeaderStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Bold(true)

	// Status line after a successful action
	StatusInfoStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	// Status line after a failed action
	StatusErrorStyle = lipgloss.NewStyle().
				Foreground(ErrorColor).
				Bold(true)

	// Axis titles and labels
	AxisTitleStyle = lipgloss.NewStyle().
			Foreground(AxisColor)

	AxisLabelStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)
)

// BuildHeaderContent creates header content with app name and version
func BuildHeaderContent() string {
	left := lipgloss.NewStyle().
		Foreground(TextColor).
		Bold(true).
		Render(AppName + " " + AppVersion())

	right := lipgloss.NewStyle().
		Foreground(SubtleColor).
		Render(AppTagline)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
}

// BuildFooterContent creates footer content with help text
func BuildFooterContent(helpText string) string {
	return lipgloss.NewStyle().
		Foreground(SubtleColor).
		Render(helpText)
}

func renderHeader(terminalWidth int) string {
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderForeground(BorderColor).
		Width(terminalWidth - 4). // Leave room for outer border
		Padding(0, 1).
		Render(BuildHeaderContent())
}

func renderFooter(footerText string, terminalWidth int) string {
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderForeground(BorderColor).
		Width(terminalWidth - 4).
		Padding(0, 1).
		Render(BuildFooterContent(footerText))
}

// ContentHeight returns the number of rows RenderApplicationContainer
// leaves for content once the outer border, header and footer are drawn.
func ContentHeight(footerText string, terminalWidth int, terminalHeight int) int {
	chrome := 2 + // Outer border
		lipgloss.Height(renderHeader(terminalWidth)) +
		lipgloss.Height(renderFooter(footerText, terminalWidth))
	return terminalHeight - chrome
}

// RenderApplicationContainer wraps a screen in the header, footer and outer
// border, filling the terminal.
func RenderApplicationContainer(content string, footerText string, terminalWidth int, terminalHeight int) string {
	contentStyle := lipgloss.NewStyle().
		Width(terminalWidth - 4)

	innerContent := lipgloss.JoinVertical(
		lipgloss.Left,
		renderHeader(terminalWidth),
		contentStyle.Render(content),
		renderFooter(footerText, terminalWidth),
	)

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(BorderColor).
		Width(terminalWidth - 2).
		Height(terminalHeight - 2).
		AlignVertical(lipgloss.Top)

	return lipgloss.Place(
		terminalWidth,
		terminalHeight,
		lipgloss.Left,
		lipgloss.Top,
		borderStyle.Render(innerContent),
	)
}

// RenderTitledBox draws content inside a rounded border whose top edge
// carries the title, the way form fields and the chart are framed.
// width and height include the border.
func RenderTitledBox(title, content string, width, height int, color lipgloss.Color) string {
	if width < 4 {
		width = 4
	}
	if height < 2 {
		height = 2
	}

	border := lipgloss.RoundedBorder()
	edge := lipgloss.NewStyle().Foreground(color)

	inner := width - 2
	label := ""
	if title != "" {
		label = truncate(title, inner-1)
	}
	fill := inner - lipgloss.Width(label)
	if fill < 0 {
		fill = 0
	}
	top := edge.Render(border.TopLeft+label+strings.Repeat(border.Top, fill)+border.TopRight)

	body := lipgloss.NewStyle().
		Border(border, false, true, true, true).
		BorderForeground(color).
		Width(inner).
		Height(height - 2).
		Render(clipLines(content, height-2))

	return lipgloss.JoinVertical(lipgloss.Left, top, body)
}
