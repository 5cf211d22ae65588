package collector

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"pumpmon/internal/domain"
)

// fakeProvider returns canned resources, failing those whose error is set.
type fakeProvider struct {
	candles []domain.Candle
	trades  []domain.Trade
	book    *domain.OrderBook
	ticker  *domain.Ticker

	klinesErr error
	tradesErr error
	bookErr   error
	tickerErr error
}

func (f *fakeProvider) GetKlines(context.Context, string) ([]domain.Candle, error) {
	return f.candles, f.klinesErr
}

func (f *fakeProvider) GetRecentTrades(context.Context, string) ([]domain.Trade, error) {
	return f.trades, f.tradesErr
}

func (f *fakeProvider) GetOrderBook(context.Context, string) (*domain.OrderBook, error) {
	return f.book, f.bookErr
}

func (f *fakeProvider) GetTicker(context.Context, string) (*domain.Ticker, error) {
	return f.ticker, f.tickerErr
}

func TestCollectAllResources(t *testing.T) {
	provider := &fakeProvider{
		candles: []domain.Candle{{Close: decimal.NewFromInt(1), Volume: decimal.NewFromInt(10)}},
		trades:  []domain.Trade{{Price: decimal.NewFromInt(1), Quantity: decimal.NewFromInt(2)}},
		book: &domain.OrderBook{
			Asks: []domain.OrderBookLevel{{Price: decimal.NewFromInt(2), Quantity: decimal.NewFromInt(5)}},
		},
		ticker: &domain.Ticker{Turnover24h: decimal.NewFromInt(100)},
	}

	snap := NewSnapshotCollector(provider, zap.NewNop()).Collect(context.Background(), "ZKLUSDT")

	assert.Len(t, snap.Candles, 1)
	assert.Len(t, snap.Trades, 1)
	require.NotNil(t, snap.OrderBook)
	assert.NotNil(t, snap.Ticker)
}

func TestCollectAllResourcesFail(t *testing.T) {
	provider := &fakeProvider{
		klinesErr: errors.New("boom"),
		tradesErr: errors.New("boom"),
		bookErr:   errors.New("boom"),
		tickerErr: errors.New("boom"),
	}

	snap := NewSnapshotCollector(provider, zap.NewNop()).Collect(context.Background(), "ZKLUSDT")

	assert.Nil(t, snap.Candles)
	assert.Nil(t, snap.Trades)
	assert.Nil(t, snap.OrderBook)
	assert.Nil(t, snap.Ticker)
}

func TestCollectPartialFailure(t *testing.T) {
	// only the candle fetch succeeds; the other resources stay empty
	// without invalidating it
	provider := &fakeProvider{
		candles:   []domain.Candle{{Close: decimal.NewFromInt(1), Volume: decimal.NewFromInt(10)}},
		tradesErr: errors.New("timeout"),
		bookErr:   errors.New("malformed payload"),
		tickerErr: errors.New("status 500"),
	}

	snap := NewSnapshotCollector(provider, zap.NewNop()).Collect(context.Background(), "ZKLUSDT")

	assert.Len(t, snap.Candles, 1)
	assert.Nil(t, snap.Trades)
	assert.Nil(t, snap.OrderBook)
	assert.Nil(t, snap.Ticker)
}
