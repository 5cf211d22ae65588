package telegram

import (
	"fmt"
	"strings"

	"pumpmon/internal/domain"
)

// FormatReport renders a report as a plain-text Telegram message: headline
// with the score as an integer percent, then one bullet per explanation.
func FormatReport(report domain.PumpReport) string {
	lines := []string{
		fmt.Sprintf("📊 Report for %s", report.Symbol),
		fmt.Sprintf("🔥 PumpScore: %d%%", int(report.PumpScore*100)),
		"",
	}

	for _, e := range report.Explanations {
		lines = append(lines, "• "+e)
	}

	return strings.Join(lines, "\n")
}
