// Package collector fetches market snapshots from cryptocurrency exchanges.
// Each of the four resources is fetched independently and fail-soft: a
// transport or parse error empties that resource only, never the snapshot.
package collector

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"pumpmon/internal/domain"
)

const (
	// KlineInterval candle interval used for every analysis.
	KlineInterval = "1m"
	// KlineLimit number of candles in the analysis window.
	KlineLimit = 12
	// TradeLimit number of recent public trades to fetch.
	TradeLimit = 200
	// OrderBookDepth levels per side to fetch.
	OrderBookDepth = 50
)

// MarketProvider defines the interface for fetching the four snapshot
// resources from an exchange. Every call is a single attempt under the
// client's own timeout.
type MarketProvider interface {
	// GetKlines fetches 1m candles ordered oldest to newest.
	GetKlines(ctx context.Context, symbol string) ([]domain.Candle, error)
	// GetRecentTrades fetches the most recent public trades.
	GetRecentTrades(ctx context.Context, symbol string) ([]domain.Trade, error)
	// GetOrderBook fetches the top levels of both book sides.
	GetOrderBook(ctx context.Context, symbol string) (*domain.OrderBook, error)
	// GetTicker fetches the 24h ticker snapshot.
	GetTicker(ctx context.Context, symbol string) (*domain.Ticker, error)
}

// SnapshotCollector assembles a MarketSnapshot from a MarketProvider.
type SnapshotCollector struct {
	provider MarketProvider
	logger   *zap.Logger
}

// NewSnapshotCollector creates a new snapshot collector.
func NewSnapshotCollector(provider MarketProvider, logger *zap.Logger) *SnapshotCollector {
	return &SnapshotCollector{provider: provider, logger: logger}
}

// Collect fetches all four resources concurrently. A failed resource is
// logged and left empty; Collect itself never fails. The goroutines write
// to disjoint snapshot fields, so no locking is needed.
func (c *SnapshotCollector) Collect(ctx context.Context, symbol string) domain.MarketSnapshot {
	var snap domain.MarketSnapshot

	var wg sync.WaitGroup
	wg.Add(4)

	go func() {
		defer wg.Done()
		candles, err := c.provider.GetKlines(ctx, symbol)
		if err != nil {
			c.logger.Warn("failed to fetch candles", zap.String("symbol", symbol), zap.Error(err))
			return
		}
		snap.Candles = candles
	}()

	go func() {
		defer wg.Done()
		trades, err := c.provider.GetRecentTrades(ctx, symbol)
		if err != nil {
			c.logger.Warn("failed to fetch recent trades", zap.String("symbol", symbol), zap.Error(err))
			return
		}
		snap.Trades = trades
	}()

	go func() {
		defer wg.Done()
		book, err := c.provider.GetOrderBook(ctx, symbol)
		if err != nil {
			c.logger.Warn("failed to fetch order book", zap.String("symbol", symbol), zap.Error(err))
			return
		}
		snap.OrderBook = book
	}()

	go func() {
		defer wg.Done()
		ticker, err := c.provider.GetTicker(ctx, symbol)
		if err != nil {
			c.logger.Warn("failed to fetch ticker", zap.String("symbol", symbol), zap.Error(err))
			return
		}
		snap.Ticker = ticker
	}()

	wg.Wait()

	return snap
}
