// Package domain defines core data structures used throughout the pump monitor.
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Candle single fixed-interval candlestick; only close and volume are used downstream.
type Candle struct {
	// OpenTime candle open time.
	OpenTime time.Time
	// Close closing price.
	Close decimal.Decimal
	// Volume traded base volume.
	Volume decimal.Decimal
}

// Trade single public trade.
type Trade struct {
	// Time trade execution time.
	Time time.Time
	// Price execution price.
	Price decimal.Decimal
	// Quantity executed base quantity.
	Quantity decimal.Decimal
}

// OrderBookLevel single resting price level.
type OrderBookLevel struct {
	Price    decimal.Decimal
	Quantity decimal.Decimal
}

// OrderBook two-sided snapshot: asks ascending by price, bids descending.
type OrderBook struct {
	Asks []OrderBookLevel
	Bids []OrderBookLevel
}

// Depth returns the level count of the deeper side.
func (b *OrderBook) Depth() int {
	if b == nil {
		return 0
	}
	if len(b.Asks) > len(b.Bids) {
		return len(b.Asks)
	}
	return len(b.Bids)
}

// Ticker best-effort 24h scalar snapshot.
type Ticker struct {
	// LastPrice last traded price.
	LastPrice decimal.Decimal
	// Turnover24h 24h quote turnover.
	Turnover24h decimal.Decimal
}

// MarketSnapshot point-in-time bundle of market data for one symbol.
// Every resource is independently optional: a failed fetch leaves it nil
// without invalidating the others.
type MarketSnapshot struct {
	// Candles 1m candles ordered oldest to newest.
	Candles []Candle
	// Trades recent public trades, unordered.
	Trades []Trade
	// OrderBook top levels per side, nil when unavailable.
	OrderBook *OrderBook
	// Ticker 24h stats, nil when unavailable.
	Ticker *Ticker
}
