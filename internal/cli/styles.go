// Package cli provides styled terminal output using lipgloss.
package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cosmic-tools/cosmic-ledger/internal/analytics"
)

var (
	// PrimaryColor is the main theme color (cosmic violet).
	PrimaryColor = lipgloss.Color("#9F7AEA")
	// SuccessColor indicates successful operations.
	SuccessColor = lipgloss.Color("#48BB78") // Green
	// WarningColor indicates warnings or caution messages.
	WarningColor = lipgloss.Color("#ECC94B") // Yellow
	// ErrorColor indicates errors or failure messages.
	ErrorColor = lipgloss.Color("#FC8181") // Red
	// InfoColor indicates informational messages.
	InfoColor = lipgloss.Color("#4299E1") // Blue
	// SubtleColor indicates less prominent UI elements.
	SubtleColor = lipgloss.Color("#666666") // Gray

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			MarginBottom(1)

	// SuccessStyle formats success messages.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	// WarningStyle formats warning messages.
	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	// ErrorStyle formats error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// InfoStyle formats informational messages.
	InfoStyle = lipgloss.NewStyle().
			Foreground(InfoColor)

	// SubtleStyle formats less prominent text.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// BoldStyle makes text bold.
	BoldStyle = lipgloss.NewStyle().
			Bold(true)

	// AmountStyle formats currency amounts.
	AmountStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(SuccessColor)

	// TableHeaderStyle is used for table headers.
	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("86"))
)

// Icons.
const (
	SuccessIcon = "✓"
	ErrorIcon   = "✗"
	WarningIcon = "⚠️"
	InfoIcon    = "ℹ️"
	CosmicIcon  = "🌌"
	ChartIcon   = "📊"
	MoneyIcon   = "💰"
	GoalIcon    = "🎯"
)

// FormatSuccess formats a success message with icon.
func FormatSuccess(message string) string {
	return SuccessStyle.Render(SuccessIcon + " " + message)
}

// FormatError formats an error message with icon.
func FormatError(message string) string {
	return ErrorStyle.Render(ErrorIcon + " " + message)
}

// FormatWarning formats a warning message with icon.
func FormatWarning(message string) string {
	return WarningStyle.Render(WarningIcon + " " + message)
}

// FormatInfo formats an info message with icon.
func FormatInfo(message string) string {
	return InfoStyle.Render(InfoIcon + " " + message)
}

// FormatTitle formats a title with the cosmic icon.
func FormatTitle(title string) string {
	return TitleStyle.Render(CosmicIcon + " " + title)
}

// Money renders an amount with its currency symbol, two decimals.
func Money(symbol string, amount float64) string {
	return fmt.Sprintf("%s%.2f", symbol, amount)
}

// HealthStyle returns the style matching a budget health band.
func HealthStyle(h analytics.Health) lipgloss.Style {
	switch h {
	case analytics.HealthCritical:
		return ErrorStyle
	case analytics.HealthWarning:
		return WarningStyle
	default:
		return SuccessStyle
	}
}

// UsageBar renders a fixed-width budget usage bar colored by health.
func UsageBar(status analytics.BudgetStatus, width int) string {
	if width <= 0 {
		width = 30
	}

	percent := status.UsagePercent
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := int(percent / 100 * float64(width))

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return HealthStyle(status.Health()).Render(bar)
}
