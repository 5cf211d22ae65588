package pump

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"pumpmon/internal/domain"
	"pumpmon/internal/services/market/collector"
)

// Analyzer runs the full snapshot-to-report pipeline for one symbol at a
// time. It holds no state between calls; concurrent calls for different
// symbols share only the underlying HTTP connection pool.
type Analyzer struct {
	collector *collector.SnapshotCollector
	logger    *zap.Logger
}

// NewAnalyzer creates a new analyzer.
func NewAnalyzer(c *collector.SnapshotCollector, logger *zap.Logger) *Analyzer {
	return &Analyzer{collector: c, logger: logger}
}

// Analyze fetches a snapshot for the symbol and builds a report. Market
// data failures never surface here; the only error is programmer-level
// misuse. The symbol must already be exchange-normalized by the caller.
func (a *Analyzer) Analyze(ctx context.Context, symbol string) (domain.PumpReport, error) {
	if symbol == "" {
		return domain.PumpReport{}, errors.New("symbol must not be empty")
	}

	snap := a.collector.Collect(ctx, symbol)
	report := BuildReport(symbol, snap, time.Now())

	a.logger.Info("analysis complete",
		zap.String("symbol", symbol),
		zap.Float64("pump_score", report.PumpScore),
		zap.Int("klines", report.Raw.KlinesLen),
		zap.Int("trades", report.Raw.TradesLen))

	return report, nil
}

// BuildReport derives indicators, score and explanations from a frozen
// snapshot. It is deterministic: identical snapshot and time yield an
// identical report.
func BuildReport(symbol string, snap domain.MarketSnapshot, now time.Time) domain.PumpReport {
	report := domain.PumpReport{
		Symbol: symbol,
		Time:   now.Unix(),
		Raw:    rawSummary(snap),
	}

	// missing candle history is the sole fatal short-circuit: score stays 0
	// and the report carries a single explanation
	if len(snap.Candles) == 0 {
		report.Explanations = []string{NoHistoryMessage}
		return report
	}

	set := ComputeIndicators(snap, now)
	score := Score(set)

	report.Indicators = set
	report.PumpScore = score
	report.Explanations = Explain(set, score)

	return report
}

func rawSummary(snap domain.MarketSnapshot) domain.RawSummary {
	raw := domain.RawSummary{
		KlinesLen:    len(snap.Candles),
		TradesLen:    len(snap.Trades),
		OrderbookTop: snap.OrderBook.Depth(),
	}

	if snap.Ticker != nil {
		turnover, _ := snap.Ticker.Turnover24h.Float64()
		raw.Turnover24h = &turnover
	}

	return raw
}
