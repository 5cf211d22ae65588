// Package pump derives pump-likelihood indicators from a market snapshot
// and combines them into a bounded heuristic score with a human-readable
// explanation trail.
package pump

import (
	"time"

	"github.com/cinar/indicator/v2/helper"
	"github.com/cinar/indicator/v2/trend"

	"pumpmon/internal/domain"
)

const (
	// eps guards every ratio denominator so undefined ratios resolve to a
	// finite value instead of infinity.
	eps = 1e-9

	// liquidityLevels levels per side summed into top-of-book liquidity.
	liquidityLevels = 10
	// wallScanLevels levels per side inspected by the wall detector.
	wallScanLevels = 3
	// wallShare fraction of combined top-of-book liquidity a single level
	// must exceed to count as a wall.
	wallShare = 0.25

	// tradeWindow lookback for the trade-frequency spike.
	tradeWindow = 60 * time.Second
	// tradeBaselineDivisor coarse per-minute baseline: total trades / 3,
	// floored at 1. Downstream score calibration depends on this exact
	// heuristic, so it is kept as-is.
	tradeBaselineDivisor = 3.0
)

// ComputeIndicators derives all indicators from a snapshot. Indicators whose
// inputs are absent stay nil. The caller is expected to short-circuit before
// this point when the snapshot has no candles at all.
func ComputeIndicators(snap domain.MarketSnapshot, now time.Time) domain.IndicatorSet {
	set := domain.IndicatorSet{
		VolumeSpike: volumeSpike(snap.Candles),
		TradeSpike:  tradeSpike(snap.Trades, now),
		PricePct:    priceMove(snap.Candles),
	}

	// a book with no levels on either side carries no information and is
	// treated like an absent resource
	if snap.OrderBook.Depth() > 0 {
		liq := topLiquidity(snap.OrderBook)
		imb := imbalance(liq.BidTop10, liq.AskTop10)

		set.LiquidityTop10 = liq
		set.OrderbookImbalance = &imb
		set.PossibleLargeWall = findWall(snap.OrderBook, liq)
	}

	return set
}

func volumeSpike(candles []domain.Candle) *domain.VolumeSpike {
	if len(candles) == 0 {
		return nil
	}

	volumes := make([]float64, len(candles))
	for i, c := range candles {
		volumes[i], _ = c.Volume.Float64()
	}

	last := volumes[len(volumes)-1]
	prior := volumes[:len(volumes)-1]
	avg := mean(prior)

	ratio := 0.0
	if len(prior) > 0 {
		ratio = last / (avg + eps)
	}

	return &domain.VolumeSpike{
		Ratio:      ratio,
		LastVolume: last,
		AvgVolume:  avg,
	}
}

func tradeSpike(trades []domain.Trade, now time.Time) *domain.TradeSpike {
	if len(trades) == 0 {
		return nil
	}

	cutoff := now.Add(-tradeWindow)
	recent := 0
	for _, t := range trades {
		if !t.Time.Before(cutoff) {
			recent++
		}
	}

	estAvg := float64(len(trades)) / tradeBaselineDivisor
	if estAvg < 1 {
		estAvg = 1
	}

	return &domain.TradeSpike{
		Recent60s: recent,
		EstAvg:    estAvg,
		Ratio:     float64(recent) / (estAvg + eps),
	}
}

func priceMove(candles []domain.Candle) *domain.PriceMove {
	if len(candles) < 2 {
		return nil
	}

	n := len(candles)
	last, _ := candles[n-1].Close.Float64()
	prev, _ := candles[n-2].Close.Float64()

	slope := 0.0
	if n >= 3 {
		older, _ := candles[n-3].Close.Float64()
		slope = (prev - older) / (older + eps)
	}

	return &domain.PriceMove{
		PctLast: (last - prev) / (prev + eps),
		Slope:   slope,
	}
}

func topLiquidity(book *domain.OrderBook) *domain.Liquidity {
	liq := &domain.Liquidity{
		AskTop10: sumQuantities(book.Asks, liquidityLevels),
		BidTop10: sumQuantities(book.Bids, liquidityLevels),
	}

	if len(book.Asks) > 0 && len(book.Bids) > 0 {
		spread, _ := book.Asks[0].Price.Sub(book.Bids[0].Price).Float64()
		liq.Spread = &spread
	}

	return liq
}

// imbalance is bid-heavy positive, within [-1, 1]; a zero denominator
// resolves to 0.
func imbalance(bid, ask float64) float64 {
	total := bid + ask
	if total <= 0 {
		return 0
	}

	return (bid - ask) / total
}

// findWall flags the first level among the top 3 per side whose quantity
// exceeds wallShare of the combined top-10 liquidity. Asks are scanned
// before bids and the first match wins; the order is a fixed tie-break
// renderers rely on.
func findWall(book *domain.OrderBook, liq *domain.Liquidity) *domain.Wall {
	threshold := wallShare * (liq.AskTop10 + liq.BidTop10)
	if threshold <= 0 {
		return nil
	}

	if w := scanSide(book.Asks, "ask", threshold); w != nil {
		return w
	}

	return scanSide(book.Bids, "bid", threshold)
}

func scanSide(levels []domain.OrderBookLevel, side string, threshold float64) *domain.Wall {
	for i := 0; i < wallScanLevels && i < len(levels); i++ {
		qty, _ := levels[i].Quantity.Float64()
		if qty > threshold {
			price, _ := levels[i].Price.Float64()
			return &domain.Wall{Side: side, Price: price, Quantity: qty}
		}
	}

	return nil
}

func sumQuantities(levels []domain.OrderBookLevel, limit int) float64 {
	sum := 0.0
	for i := 0; i < limit && i < len(levels); i++ {
		qty, _ := levels[i].Quantity.Float64()
		sum += qty
	}

	return sum
}

// mean is a full-window SMA over the values.
func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sma := trend.NewSmaWithPeriod[float64](len(values))
	out := helper.ChanToSlice(sma.Compute(helper.SliceToChan(values)))
	if len(out) == 0 {
		return 0
	}

	return out[len(out)-1]
}
