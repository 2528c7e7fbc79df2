package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	ColorPrimary   = lipgloss.Color("#2F6FDE") // Blue
	ColorSecondary = lipgloss.Color("#06B6D4") // Cyan
	ColorAccent    = lipgloss.Color("#E4572E") // Vermilion
	ColorSuccess   = lipgloss.Color("#10B981") // Emerald
	ColorError     = lipgloss.Color("#EF4444") // Red
	ColorMuted     = lipgloss.Color("#6B7280") // Gray
	ColorDimmed    = lipgloss.Color("#374151") // Dark Gray

	ColorText      = lipgloss.Color("#F8FAFC")
	ColorTextMuted = lipgloss.Color("#94A3B8")
)

var (
	LogoStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	TabStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Padding(0, 2)

	ActiveTabStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Background(ColorPrimary).
			Bold(true).
			Padding(0, 2)
)

var (
	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Width(18)

	FocusedLabelStyle = lipgloss.NewStyle().
				Foreground(ColorSecondary).
				Bold(true).
				Width(18)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true).
			PaddingLeft(2)

	PendingStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)
)

var (
	ChartPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorDimmed).
			Padding(0, 1)

	FocusedChartPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorPrimary).
				Padding(0, 1)

	CursorStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	AxisStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

var (
	SummaryLabelStyle = lipgloss.NewStyle().
				Foreground(ColorTextMuted).
				Width(18)

	SummaryValueStyle = lipgloss.NewStyle().
				Foreground(ColorSuccess).
				Bold(true)

	StatusStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)
)

const Logo = "InterestCalc"
