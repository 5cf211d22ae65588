package domain

// VolumeSpike ratio of the last candle volume to the mean of all prior candles.
type VolumeSpike struct {
	// Ratio last volume over prior mean; 0 when there are no prior candles.
	Ratio float64 `json:"ratio"`
	// LastVolume volume of the most recent candle.
	LastVolume float64 `json:"last_volume"`
	// AvgVolume mean volume of the prior candles.
	AvgVolume float64 `json:"avg_volume"`
}

// TradeSpike trade-frequency ratio against a coarse per-minute baseline.
type TradeSpike struct {
	// Recent60s trades executed within the last 60 seconds.
	Recent60s int `json:"recent_60s"`
	// EstAvg estimated per-minute baseline, never below 1.
	EstAvg float64 `json:"est_avg"`
	// Ratio recent count over baseline.
	Ratio float64 `json:"ratio"`
}

// PriceMove relative change of the latest close and the preceding slope.
type PriceMove struct {
	// PctLast relative change between the two most recent closes.
	PctLast float64 `json:"pct_last"`
	// Slope relative change between the second and third most recent closes;
	// 0 when fewer than three closes exist.
	Slope float64 `json:"slope"`
}

// Liquidity summed quantities of the top 10 levels per side.
type Liquidity struct {
	AskTop10 float64 `json:"ask_top10"`
	BidTop10 float64 `json:"bid_top10"`
	// Spread best ask minus best bid; nil when either side is empty.
	Spread *float64 `json:"spread,omitempty"`
}

// Wall a single resting order large enough to dominate top-of-book liquidity.
type Wall struct {
	// Side "ask" or "bid".
	Side     string  `json:"side"`
	Price    float64 `json:"price"`
	Quantity float64 `json:"quantity"`
}

// IndicatorSet derived indicators for one snapshot. A nil field means the
// indicator's inputs were absent, so "missing" branches stay explicit
// instead of hiding behind zero values.
type IndicatorSet struct {
	VolumeSpike        *VolumeSpike `json:"volume_spike,omitempty"`
	TradeSpike         *TradeSpike  `json:"trade_spike,omitempty"`
	PricePct           *PriceMove   `json:"price_pct,omitempty"`
	LiquidityTop10     *Liquidity   `json:"liquidity_top10,omitempty"`
	OrderbookImbalance *float64     `json:"orderbook_imbalance,omitempty"`
	PossibleLargeWall  *Wall        `json:"possible_large_wall,omitempty"`
}

// RawSummary sizes of the underlying snapshot, kept for renderers and debugging.
type RawSummary struct {
	KlinesLen    int `json:"klines_len"`
	TradesLen    int `json:"trades_len"`
	OrderbookTop int `json:"orderbook_top"`
	// Turnover24h 24h quote turnover; omitted when the ticker was unavailable.
	Turnover24h *float64 `json:"turnover24h,omitempty"`
}

// PumpReport immutable result of a single analysis call.
type PumpReport struct {
	Symbol string `json:"symbol"`
	// Time unix seconds of report creation.
	Time int64 `json:"time"`
	// PumpScore heuristic pump likelihood, always within [0, 1].
	PumpScore  float64      `json:"pump_score"`
	Indicators IndicatorSet `json:"indicators"`
	// Explanations one sentence per indicator slot plus a final verdict,
	// in a fixed order expected by renderers.
	Explanations []string   `json:"explanations"`
	Raw          RawSummary `json:"raw"`
}
