package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rxtech-lab/stock-insight/internal/types"
)

// Style definitions.
var (
	// TitleStyle for headers.
	TitleStyle = lipgloss.NewStyle().Bold(true)

	// ErrorStyle for error messages.
	ErrorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))

	buyStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	sellStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	holdStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))

	lowRiskStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	mediumRiskStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	highRiskStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// FormatRecommendation renders the recommendation with its action color.
func FormatRecommendation(r types.Recommendation) string {
	label := strings.ToUpper(string(r))

	switch r {
	case types.RecommendationBuy:
		return buyStyle.Render(label)
	case types.RecommendationSell:
		return sellStyle.Render(label)
	default:
		return holdStyle.Render(label)
	}
}

// FormatRiskLevel renders the risk level with its severity color.
func FormatRiskLevel(r types.RiskLevel) string {
	label := strings.ToUpper(string(r))

	switch r {
	case types.RiskLevelLow:
		return lowRiskStyle.Render(label)
	case types.RiskLevelHigh:
		return highRiskStyle.Render(label)
	default:
		return mediumRiskStyle.Render(label)
	}
}
