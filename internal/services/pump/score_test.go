package pump

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pumpmon/internal/domain"
)

func TestScoreClampedToOne(t *testing.T) {
	imb := 0.9
	set := domain.IndicatorSet{
		VolumeSpike:        &domain.VolumeSpike{Ratio: 100},
		TradeSpike:         &domain.TradeSpike{Ratio: 100},
		PricePct:           &domain.PriceMove{PctLast: 0.5},
		LiquidityTop10:     &domain.Liquidity{AskTop10: 5, BidTop10: 5},
		OrderbookImbalance: &imb,
		PossibleLargeWall:  &domain.Wall{Side: "ask", Price: 1, Quantity: 10},
	}

	assert.Equal(t, 1.0, Score(set))
}

func TestScoreEmptySet(t *testing.T) {
	assert.Zero(t, Score(domain.IndicatorSet{}))
}

func TestScoreVolumeOnlyScenario(t *testing.T) {
	// a 5x volume spike saturates the volume term exactly: 0.45 total
	set := domain.IndicatorSet{
		VolumeSpike: &domain.VolumeSpike{Ratio: 5.0, LastVolume: 50, AvgVolume: 10},
	}

	score := Score(set)
	assert.InDelta(t, 0.45, score, 1e-9)

	explanations := Explain(set, score)
	assert.Equal(t, "Verdict: medium pump likelihood", explanations[len(explanations)-1])
}

func TestScoreVolumeMonotonicity(t *testing.T) {
	prev := -1.0
	for _, ratio := range []float64{0, 0.5, 1, 2, 3, 4.9, 5, 7, 100} {
		set := domain.IndicatorSet{VolumeSpike: &domain.VolumeSpike{Ratio: ratio}}
		score := Score(set)
		assert.GreaterOrEqual(t, score, prev, "ratio %f", ratio)
		prev = score
	}
}

func TestScoreLiquidityBonus(t *testing.T) {
	tests := []struct {
		name     string
		ask, bid float64
		expected float64
	}{
		{name: "thin book", ask: 20, bid: 40, expected: 0.15},
		{name: "low book", ask: 100, bid: 150, expected: 0.06},
		{name: "deep book", ask: 300, bid: 400, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := domain.IndicatorSet{
				LiquidityTop10: &domain.Liquidity{AskTop10: tt.ask, BidTop10: tt.bid},
			}
			assert.InDelta(t, tt.expected, Score(set), 1e-9)
		})
	}
}

func TestScoreWallBonus(t *testing.T) {
	set := domain.IndicatorSet{
		PossibleLargeWall: &domain.Wall{Side: "bid", Price: 0.99, Quantity: 30},
	}

	assert.InDelta(t, 0.12, Score(set), 1e-9)
}

func TestScoreAlwaysWithinBounds(t *testing.T) {
	ratios := []float64{0, 0.1, 1, 5, 50, 1e6}
	for _, vr := range ratios {
		for _, tr := range ratios {
			set := domain.IndicatorSet{
				VolumeSpike: &domain.VolumeSpike{Ratio: vr},
				TradeSpike:  &domain.TradeSpike{Ratio: tr},
			}
			score := Score(set)
			assert.GreaterOrEqual(t, score, 0.0)
			assert.LessOrEqual(t, score, 1.0)
		}
	}
}

func TestVerdictBands(t *testing.T) {
	tests := []struct {
		score    float64
		expected string
	}{
		{score: 0.95, expected: "Verdict: high probability of pump activity"},
		{score: 0.7, expected: "Verdict: high probability of pump activity"},
		{score: 0.5, expected: "Verdict: medium pump likelihood"},
		{score: 0.4, expected: "Verdict: medium pump likelihood"},
		{score: 0.2, expected: "Verdict: low pump likelihood, keep monitoring"},
		{score: 0.011, expected: "Verdict: low pump likelihood, keep monitoring"},
		{score: 0.01, expected: "Verdict: no pump signal"},
		{score: 0, expected: "Verdict: no pump signal"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, verdict(tt.score), "score %f", tt.score)
	}
}
