package collector

import (
	"context"
	"time"

	"github.com/adshao/go-binance/v2"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"pumpmon/internal/domain"
)

// BinanceProvider implements MarketProvider for the Binance spot market.
type BinanceProvider struct {
	client *binance.Client
}

// NewBinanceProvider creates a new Binance market provider.
func NewBinanceProvider(client *binance.Client) *BinanceProvider {
	return &BinanceProvider{client: client}
}

// GetKlines fetches 1m candles. Binance already returns them oldest first.
func (p *BinanceProvider) GetKlines(ctx context.Context, symbol string) ([]domain.Candle, error) {
	klines, err := p.client.NewKlinesService().
		Symbol(symbol).
		Interval(KlineInterval).
		Limit(KlineLimit).
		Do(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch klines from Binance for %s", symbol)
	}

	candles := make([]domain.Candle, 0, len(klines))
	for i, k := range klines {
		close, err := decimal.NewFromString(k.Close)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse close price at index %d", i)
		}
		volume, err := decimal.NewFromString(k.Volume)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse volume at index %d", i)
		}

		candles = append(candles, domain.Candle{
			OpenTime: time.UnixMilli(k.OpenTime),
			Close:    close,
			Volume:   volume,
		})
	}

	return candles, nil
}

// GetRecentTrades fetches the latest public trades.
func (p *BinanceProvider) GetRecentTrades(ctx context.Context, symbol string) ([]domain.Trade, error) {
	list, err := p.client.NewRecentTradesService().
		Symbol(symbol).
		Limit(TradeLimit).
		Do(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch recent trades from Binance for %s", symbol)
	}

	trades := make([]domain.Trade, 0, len(list))
	for i, t := range list {
		price, err := decimal.NewFromString(t.Price)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse trade price at index %d", i)
		}
		qty, err := decimal.NewFromString(t.Quantity)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse trade quantity at index %d", i)
		}

		trades = append(trades, domain.Trade{
			Time:     time.UnixMilli(t.Time),
			Price:    price,
			Quantity: qty,
		})
	}

	return trades, nil
}

// GetOrderBook fetches the top levels of the spot order book.
func (p *BinanceProvider) GetOrderBook(ctx context.Context, symbol string) (*domain.OrderBook, error) {
	depth, err := p.client.NewDepthService().
		Symbol(symbol).
		Limit(OrderBookDepth).
		Do(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch order book from Binance for %s", symbol)
	}

	book := &domain.OrderBook{
		Asks: make([]domain.OrderBookLevel, 0, len(depth.Asks)),
		Bids: make([]domain.OrderBookLevel, 0, len(depth.Bids)),
	}

	for i, lvl := range depth.Asks {
		level, err := parseLevel(lvl.Price, lvl.Quantity)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse ask level at index %d", i)
		}
		book.Asks = append(book.Asks, level)
	}
	for i, lvl := range depth.Bids {
		level, err := parseLevel(lvl.Price, lvl.Quantity)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse bid level at index %d", i)
		}
		book.Bids = append(book.Bids, level)
	}

	return book, nil
}

// GetTicker fetches the 24h price change statistics.
func (p *BinanceProvider) GetTicker(ctx context.Context, symbol string) (*domain.Ticker, error) {
	stats, err := p.client.NewListPriceChangeStatsService().
		Symbol(symbol).
		Do(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch 24h stats from Binance for %s", symbol)
	}

	if len(stats) == 0 {
		return nil, errors.Errorf("binance API returned empty 24h stats for %s", symbol)
	}

	lastPrice, err := decimal.NewFromString(stats[0].LastPrice)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse last price")
	}
	turnover, err := decimal.NewFromString(stats[0].QuoteVolume)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse quote volume")
	}

	return &domain.Ticker{
		LastPrice:   lastPrice,
		Turnover24h: turnover,
	}, nil
}
