package pump

import (
	"math"

	"pumpmon/internal/domain"
)

// Scoring weights and saturation points. These are fixed design constants,
// not runtime configuration: volume and trade frequency dominate because
// they are the earliest pump signals, price and liquidity confirm, and the
// wall bonus is additive evidence rather than a multiplier.
const (
	volumeWeight     = 0.45
	volumeSaturation = 5.0

	tradeWeight     = 0.25
	tradeSaturation = 5.0

	priceWeight     = 0.15
	priceSaturation = 0.01

	thinLiquidityMax   = 50.0
	thinLiquidityBonus = 0.15
	lowLiquidityMax    = 200.0
	lowLiquidityBonus  = 0.06

	wallBonus = 0.12
)

// Score combines indicator magnitudes into a single value clamped to [0, 1].
// Missing indicators contribute nothing.
func Score(set domain.IndicatorSet) float64 {
	score := 0.0

	if v := set.VolumeSpike; v != nil {
		score += volumeWeight * saturate(v.Ratio, volumeSaturation)
	}
	if t := set.TradeSpike; t != nil {
		score += tradeWeight * saturate(t.Ratio, tradeSaturation)
	}
	if p := set.PricePct; p != nil {
		score += priceWeight * saturate(math.Abs(p.PctLast), priceSaturation)
	}
	if l := set.LiquidityTop10; l != nil {
		switch avg := (l.AskTop10 + l.BidTop10) / 2; {
		case avg < thinLiquidityMax:
			score += thinLiquidityBonus
		case avg < lowLiquidityMax:
			score += lowLiquidityBonus
		}
	}
	if set.PossibleLargeWall != nil {
		score += wallBonus
	}

	return clamp01(score)
}

// saturate maps v onto [0, 1] with a linear ramp that caps at the
// saturation point.
func saturate(v, saturation float64) float64 {
	s := v / saturation
	if s > 1 {
		return 1
	}
	if s < 0 {
		return 0
	}

	return s
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}

	return v
}
