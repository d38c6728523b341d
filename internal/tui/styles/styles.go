package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	// Colors - all colors meet WCAG AA contrast (4.5:1) on both black and dark surfaces
	PrimaryColor   = lipgloss.Color("#A78BFA") // Purple
	SecondaryColor = lipgloss.Color("#10B981") // Green
	WarningColor   = lipgloss.Color("#F59E0B") // Amber
	ErrorColor     = lipgloss.Color("#F87171") // Red
	MutedColor     = lipgloss.Color("#9CA3AF") // Gray
	SurfaceColor   = lipgloss.Color("#1F2937") // Dark surface
	TextColor      = lipgloss.Color("#F9FAFB") // Light text
	BorderColor    = lipgloss.Color("#6B7280") // Gray
	BlueColor      = lipgloss.Color("#60A5FA") // Blue

	// Outcome colors
	OutcomeAccepted     = SecondaryColor
	OutcomeAuthorized   = BlueColor
	OutcomeBadToken     = WarningColor
	OutcomeUnauthorized = ErrorColor

	// Convenience styles for colors
	Secondary = lipgloss.NewStyle().Foreground(SecondaryColor)
	Error     = lipgloss.NewStyle().Foreground(ErrorColor)
	Muted     = lipgloss.NewStyle().Foreground(MutedColor)
	Text      = lipgloss.NewStyle().Foreground(TextColor)

	Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(PrimaryColor).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(BorderColor).
		MarginBottom(1).
		PaddingBottom(1)

	// Footer / status bar
	StatusBar = lipgloss.NewStyle().
			Foreground(TextColor).
			Background(SurfaceColor).
			Padding(0, 1)

	HelpBar = lipgloss.NewStyle().
		Foreground(MutedColor).
		MarginTop(1)

	HelpKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(SecondaryColor)

	// Echo of a command the user typed
	Prompt = lipgloss.NewStyle().
		Foreground(MutedColor)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	SuccessMsg = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Bold(true)

	WarningMsg = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)
)

// Color modes accepted by SetColorMode.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// SetColorMode configures the default lipgloss renderer. Under "auto" the
// terminal decides, and non-terminal output gets no color.
func SetColorMode(mode string, isTerminal bool) {
	switch mode {
	case ColorNever:
		lipgloss.SetColorProfile(termenv.Ascii)
	case ColorAlways:
		lipgloss.SetColorProfile(termenv.TrueColor)
	default:
		if !isTerminal {
			lipgloss.SetColorProfile(termenv.Ascii)
		}
	}
}

// OutcomeColor returns the color for a coordinator outcome name
func OutcomeColor(outcome string) lipgloss.Color {
	switch outcome {
	case "accepted":
		return OutcomeAccepted
	case "authorized":
		return OutcomeAuthorized
	case "rejected_bad_token":
		return OutcomeBadToken
	case "rejected_unauthorized":
		return OutcomeUnauthorized
	default:
		return MutedColor
	}
}

// OutcomeIcon returns an icon for a coordinator outcome name
func OutcomeIcon(outcome string) string {
	switch outcome {
	case "accepted":
		return "✓"
	case "authorized":
		return "●"
	case "rejected_bad_token":
		return "?"
	case "rejected_unauthorized":
		return "✗"
	default:
		return "·"
	}
}

// Notice renders a notice message colored by its outcome.
func Notice(outcome, message string) string {
	style := lipgloss.NewStyle().Foreground(OutcomeColor(outcome))
	return style.Render(OutcomeIcon(outcome) + " " + message)
}
