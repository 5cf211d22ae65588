// Package setup provides the interactive terminal chat mode.
package setup

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"pumpmon/internal/domain"
	"pumpmon/internal/telegram"
)

var (
	subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	special   = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	warning   = lipgloss.AdaptiveColor{Light: "#BF4343", Dark: "#F57373"}

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Background(highlight).
			Padding(1, 2).
			Bold(true).
			MarginBottom(1)

	subtleStyle = lipgloss.NewStyle().Foreground(subtle)

	scoreStyle = lipgloss.NewStyle().
			Foreground(special).
			Bold(true).
			MarginTop(1)

	alertStyle = lipgloss.NewStyle().
			Foreground(warning).
			Bold(true).
			MarginTop(1)
)

// Analyzer produces a pump report for an exchange-normalized symbol.
type Analyzer interface {
	Analyze(ctx context.Context, symbol string) (domain.PumpReport, error)
}

// RunTerminal loops an interactive ticker prompt until the user submits an
// empty ticker.
func RunTerminal(analyzer Analyzer) error {
	fmt.Print("\033[H\033[2J") // Clear screen
	fmt.Println(headerStyle.Render("PUMP MONITOR"))
	fmt.Println(subtleStyle.Render("Enter a ticker to analyze. Leave it empty to quit.\n"))

	for {
		var ticker string

		err := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Ticker").
					Description("e.g. ZKLUSDT or ZKL (UPPERCASE only)").
					Value(&ticker).
					Validate(func(s string) error {
						if s != strings.ToUpper(s) {
							return fmt.Errorf("use UPPERCASE letters only")
						}
						return nil
					}),
			),
		).Run()
		if err != nil {
			return err
		}

		ticker = strings.TrimSpace(ticker)
		if ticker == "" {
			return nil
		}

		symbol := telegram.NormalizeTicker(ticker)
		fmt.Println(subtleStyle.Render(fmt.Sprintf("Analyzing %s...", symbol)))

		report, err := analyzer.Analyze(context.Background(), symbol)
		if err != nil {
			fmt.Println(alertStyle.Render(fmt.Sprintf("Analysis failed: %v", err)))
			continue
		}

		renderReport(report)
	}
}

func renderReport(report domain.PumpReport) {
	style := scoreStyle
	if report.PumpScore >= 0.4 {
		style = alertStyle
	}

	fmt.Println(style.Render(fmt.Sprintf("%s — PumpScore %d%%", report.Symbol, int(report.PumpScore*100))))
	for _, e := range report.Explanations {
		fmt.Println("  • " + e)
	}
	fmt.Println()
}
