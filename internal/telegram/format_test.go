package telegram

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"pumpmon/internal/domain"
)

func TestNormalizeTicker(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "bare base ticker", input: "ZKL", expected: "ZKLUSDT"},
		{name: "already suffixed", input: "ZKLUSDT", expected: "ZKLUSDT"},
		{name: "single letter", input: "X", expected: "XUSDT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeTicker(tt.input))
		})
	}
}

func TestFormatReport(t *testing.T) {
	report := domain.PumpReport{
		Symbol:    "ZKLUSDT",
		PumpScore: 0.45,
		Explanations: []string{
			"Volume spiked to x5.00 of the recent average",
			"Verdict: medium pump likelihood",
		},
	}

	text := FormatReport(report)
	lines := strings.Split(text, "\n")

	assert.Contains(t, lines[0], "ZKLUSDT")
	assert.Contains(t, lines[1], "PumpScore: 45%")
	assert.Equal(t, "", lines[2])
	assert.Equal(t, "• Volume spiked to x5.00 of the recent average", lines[3])
	assert.Equal(t, "• Verdict: medium pump likelihood", lines[4])
}

func TestFormatReportZeroScore(t *testing.T) {
	report := domain.PumpReport{
		Symbol:       "ZKLUSDT",
		PumpScore:    0,
		Explanations: []string{"no candle history available for this symbol"},
	}

	text := FormatReport(report)
	assert.Contains(t, text, "PumpScore: 0%")
	assert.Contains(t, text, "• no candle history available for this symbol")
}
