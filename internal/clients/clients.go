// Package clients constructs exchange API clients for public market data.
package clients

import (
	"net/http"
	"time"

	"github.com/adshao/go-binance/v2"
	bybit "github.com/hirokisan/bybit/v2"
)

// requestTimeout bounds every market data request; there are no retries.
const requestTimeout = 10 * time.Second

// NewBybitClient creates an unauthenticated Bybit client. Public market
// endpoints need no credentials.
func NewBybitClient() *bybit.Client {
	return bybit.NewClient().WithHTTPClient(&http.Client{Timeout: requestTimeout})
}

// NewBinanceClient creates an unauthenticated Binance client.
func NewBinanceClient() *binance.Client {
	client := binance.NewClient("", "")
	client.HTTPClient = &http.Client{Timeout: requestTimeout}

	return client
}
