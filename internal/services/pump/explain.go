package pump

import (
	"fmt"

	"pumpmon/internal/domain"
)

// NoHistoryMessage is the single explanation emitted when the snapshot has
// no candle history at all.
const NoHistoryMessage = "no candle history available for this symbol"

// Explanation threshold bands. Price and liquidity bands match the scoring
// constants so the wording never contradicts the score.
const (
	volumeStrongBand   = 2.0
	volumeModerateBand = 1.2

	tradeStrongBand   = 2.0
	tradeModerateBand = 1.2

	priceStrongBand = 0.01
	priceSlightBand = 0.003

	verdictHighBand   = 0.7
	verdictMediumBand = 0.4
	verdictLowBand    = 0.01
)

// Explain renders one sentence per indicator slot in a fixed order
// (volume, trades, price, liquidity, wall) followed by a verdict line.
// It is a pure function of the indicator set and score; renderers depend
// on the ordering and the verdict bands.
func Explain(set domain.IndicatorSet, score float64) []string {
	return []string{
		explainVolume(set.VolumeSpike),
		explainTrades(set.TradeSpike),
		explainPrice(set.PricePct),
		explainLiquidity(set.LiquidityTop10, set.OrderbookImbalance),
		explainWall(set.PossibleLargeWall),
		verdict(score),
	}
}

func explainVolume(v *domain.VolumeSpike) string {
	switch {
	case v == nil:
		return "Candle volume data is unavailable"
	case v.Ratio > volumeStrongBand:
		return fmt.Sprintf("Volume spiked to x%.2f of the recent average", v.Ratio)
	case v.Ratio > volumeModerateBand:
		return fmt.Sprintf("Volume is moderately elevated at x%.2f of the recent average", v.Ratio)
	default:
		return fmt.Sprintf("Volume is unremarkable (x%.2f of the recent average)", v.Ratio)
	}
}

func explainTrades(t *domain.TradeSpike) string {
	switch {
	case t == nil:
		return "Trade data is unavailable"
	case t.Ratio > tradeStrongBand:
		return fmt.Sprintf("Trade frequency surged: %d trades in the last minute, x%.2f of baseline", t.Recent60s, t.Ratio)
	case t.Ratio > tradeModerateBand:
		return fmt.Sprintf("Trade frequency is moderately elevated: %d trades in the last minute (x%.2f of baseline)", t.Recent60s, t.Ratio)
	default:
		return fmt.Sprintf("Trade frequency is normal (%d trades in the last minute)", t.Recent60s)
	}
}

func explainPrice(p *domain.PriceMove) string {
	switch {
	case p == nil:
		return "Price data is unavailable"
	case p.PctLast >= priceStrongBand:
		return fmt.Sprintf("Price is rising sharply (%+.2f%% on the last candle)", p.PctLast*100)
	case p.PctLast <= -priceStrongBand:
		return fmt.Sprintf("Price is falling sharply (%+.2f%% on the last candle)", p.PctLast*100)
	case p.PctLast >= priceSlightBand || p.PctLast <= -priceSlightBand:
		return fmt.Sprintf("Price is drifting (%+.2f%% on the last candle)", p.PctLast*100)
	default:
		return fmt.Sprintf("Price is flat (%+.2f%% on the last candle)", p.PctLast*100)
	}
}

func explainLiquidity(l *domain.Liquidity, imb *float64) string {
	if l == nil {
		return "Order book data is unavailable"
	}

	imbalance := 0.0
	if imb != nil {
		imbalance = *imb
	}

	avg := (l.AskTop10 + l.BidTop10) / 2
	switch {
	case avg < thinLiquidityMax:
		return fmt.Sprintf("Top-of-book liquidity is thin (avg %.1f units per side, imbalance %+.2f)", avg, imbalance)
	case avg < lowLiquidityMax:
		return fmt.Sprintf("Top-of-book liquidity is moderate (avg %.1f units per side, imbalance %+.2f)", avg, imbalance)
	default:
		return fmt.Sprintf("Top-of-book liquidity is deep (avg %.1f units per side, imbalance %+.2f)", avg, imbalance)
	}
}

func explainWall(w *domain.Wall) string {
	if w == nil {
		return "No large resting orders detected near the top of the book"
	}

	return fmt.Sprintf("Possible large %s wall: %g units resting at %g", w.Side, w.Quantity, w.Price)
}

func verdict(score float64) string {
	switch {
	case score >= verdictHighBand:
		return "Verdict: high probability of pump activity"
	case score >= verdictMediumBand:
		return "Verdict: medium pump likelihood"
	case score > verdictLowBand:
		return "Verdict: low pump likelihood, keep monitoring"
	default:
		return "Verdict: no pump signal"
	}
}
