// Command pumpmon runs the pump monitor: a heuristic pump-likelihood
// analyzer for spot symbols, driven through a Telegram bot or an
// interactive terminal prompt.
//
// Usage:
//
//	pumpmon --config config.yaml
//	pumpmon --platform bybit --mode telegram
//
// Telegram mode requires the BOT_TOKEN environment variable (a local .env
// file is honored).
package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"pumpmon/config"
	"pumpmon/internal/clients"
	"pumpmon/internal/services/market/collector"
	"pumpmon/internal/services/pump"
	"pumpmon/internal/setup"
	"pumpmon/internal/telegram"
)

func main() {
	cfg, err := config.Get()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	var provider collector.MarketProvider
	switch cfg.Platform {
	case config.PlatformBybit:
		provider = collector.NewBybitProvider(clients.NewBybitClient())
	case config.PlatformBinance:
		provider = collector.NewBinanceProvider(clients.NewBinanceClient())
	default:
		log.Fatal("unsupported platform")
	}

	analyzer := pump.NewAnalyzer(collector.NewSnapshotCollector(provider, logger), logger)

	switch cfg.Mode {
	case config.ModeTelegram:
		bot := telegram.NewBot(cfg.BotToken, analyzer, logger)
		if err := bot.Run(context.Background()); err != nil {
			log.Fatal(err)
		}
	case config.ModeTerminal:
		if err := setup.RunTerminal(analyzer); err != nil {
			log.Fatal(err)
		}
	}
}
