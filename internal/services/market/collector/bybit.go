package collector

import (
	"context"
	"fmt"
	"strconv"
	"time"

	bybit "github.com/hirokisan/bybit/v2"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"pumpmon/internal/domain"
)

// BybitProvider implements MarketProvider for the Bybit V5 spot market.
type BybitProvider struct {
	client *bybit.Client
}

// NewBybitProvider creates a new Bybit market provider.
func NewBybitProvider(client *bybit.Client) *BybitProvider {
	return &BybitProvider{client: client}
}

// GetKlines fetches 1m candles. Bybit returns them newest first, so the
// result is reversed into oldest-to-newest order.
func (p *BybitProvider) GetKlines(_ context.Context, symbol string) ([]domain.Candle, error) {
	interval, err := convertIntervalToBybit(KlineInterval)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid interval: %s", KlineInterval)
	}

	limit := KlineLimit
	result, err := p.client.V5().Market().GetKline(bybit.V5GetKlineParam{
		Category: bybit.CategoryV5Spot,
		Symbol:   bybit.SymbolV5(symbol),
		Interval: bybit.Interval(interval),
		Limit:    &limit,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch klines from Bybit for %s", symbol)
	}

	list := result.Result.List
	candles := make([]domain.Candle, 0, len(list))
	for i := len(list) - 1; i >= 0; i-- {
		k := list[i]

		openTime, err := parseTimestamp(k.StartTime)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse start time at index %d", i)
		}
		close, err := decimal.NewFromString(k.Close)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse close price at index %d", i)
		}
		volume, err := decimal.NewFromString(k.Volume)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse volume at index %d", i)
		}

		candles = append(candles, domain.Candle{
			OpenTime: openTime,
			Close:    close,
			Volume:   volume,
		})
	}

	return candles, nil
}

// GetRecentTrades fetches the latest public trades.
func (p *BybitProvider) GetRecentTrades(_ context.Context, symbol string) ([]domain.Trade, error) {
	sym := bybit.SymbolV5(symbol)
	limit := TradeLimit

	result, err := p.client.V5().Market().GetPublicTradingHistory(bybit.V5GetPublicTradingHistoryParam{
		Category: bybit.CategoryV5Spot,
		Symbol:   sym,
		Limit:    &limit,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch public trades from Bybit for %s", symbol)
	}

	trades := make([]domain.Trade, 0, len(result.Result.List))
	for i, t := range result.Result.List {
		ts, err := parseTimestamp(t.Time)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse trade time at index %d", i)
		}
		price, err := decimal.NewFromString(t.Price)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse trade price at index %d", i)
		}
		qty, err := decimal.NewFromString(t.Size)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse trade size at index %d", i)
		}

		trades = append(trades, domain.Trade{
			Time:     ts,
			Price:    price,
			Quantity: qty,
		})
	}

	return trades, nil
}

// GetOrderBook fetches the top levels of the spot order book.
func (p *BybitProvider) GetOrderBook(_ context.Context, symbol string) (*domain.OrderBook, error) {
	limit := OrderBookDepth

	result, err := p.client.V5().Market().GetOrderbook(bybit.V5GetOrderbookParam{
		Category: bybit.CategoryV5Spot,
		Symbol:   bybit.SymbolV5(symbol),
		Limit:    &limit,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch order book from Bybit for %s", symbol)
	}

	book := &domain.OrderBook{
		Asks: make([]domain.OrderBookLevel, 0, len(result.Result.Asks)),
		Bids: make([]domain.OrderBookLevel, 0, len(result.Result.Bids)),
	}

	for i, lvl := range result.Result.Asks {
		level, err := parseLevel(lvl.Price, lvl.Quantity)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse ask level at index %d", i)
		}
		book.Asks = append(book.Asks, level)
	}
	for i, lvl := range result.Result.Bids {
		level, err := parseLevel(lvl.Price, lvl.Quantity)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse bid level at index %d", i)
		}
		book.Bids = append(book.Bids, level)
	}

	return book, nil
}

// GetTicker fetches the 24h spot ticker.
func (p *BybitProvider) GetTicker(_ context.Context, symbol string) (*domain.Ticker, error) {
	sym := bybit.SymbolV5(symbol)

	result, err := p.client.V5().Market().GetTickers(bybit.V5GetTickersParam{
		Category: bybit.CategoryV5Spot,
		Symbol:   &sym,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch ticker from Bybit for %s", symbol)
	}

	if len(result.Result.Spot.List) == 0 {
		return nil, errors.Errorf("bybit API returned empty ticker list for %s", symbol)
	}

	item := result.Result.Spot.List[0]
	lastPrice, err := decimal.NewFromString(item.LastPrice)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse last price")
	}
	turnover, err := decimal.NewFromString(item.Turnover24H)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse 24h turnover")
	}

	return &domain.Ticker{
		LastPrice:   lastPrice,
		Turnover24h: turnover,
	}, nil
}

func parseLevel(price, quantity string) (domain.OrderBookLevel, error) {
	p, err := decimal.NewFromString(price)
	if err != nil {
		return domain.OrderBookLevel{}, errors.Wrapf(err, "failed to parse level price %q", price)
	}
	q, err := decimal.NewFromString(quantity)
	if err != nil {
		return domain.OrderBookLevel{}, errors.Wrapf(err, "failed to parse level quantity %q", quantity)
	}

	return domain.OrderBookLevel{Price: p, Quantity: q}, nil
}

// convertIntervalToBybit converts standard interval format to Bybit format.
// Standard format: "1m", "5m", "15m", "1h", "4h", "1d", etc.
// Bybit format: "1", "5", "15", "60", "240", "D", etc.
func convertIntervalToBybit(interval string) (string, error) {
	if len(interval) < 2 {
		return "", fmt.Errorf("invalid interval format: %s", interval)
	}

	unit := interval[len(interval)-1]
	numberPart := interval[:len(interval)-1]

	switch unit {
	case 'm':
		return numberPart, nil
	case 'h':
		n, err := strconv.ParseInt(numberPart, 10, 64)
		if err != nil {
			return "", fmt.Errorf("invalid interval number: %s", interval)
		}
		return strconv.FormatInt(n*60, 10), nil
	case 'd':
		return "D", nil
	case 'w':
		return "W", nil
	default:
		return "", fmt.Errorf("unsupported interval unit: %c", unit)
	}
}

// parseTimestamp converts an exchange timestamp string (milliseconds) to time.Time.
func parseTimestamp(ts string) (time.Time, error) {
	if ts == "" {
		return time.Time{}, errors.New("empty timestamp")
	}

	msec, err := strconv.ParseInt(ts, 10, 64)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "failed to parse timestamp: %s", ts)
	}

	return time.UnixMilli(msec), nil
}
