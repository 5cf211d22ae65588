// Package config loads the pump monitor configuration from a YAML file or
// command-line flags, with the bot token coming from the environment.
package config

import (
	"flag"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Supported platforms and chat modes.
const (
	PlatformBybit   = "bybit"
	PlatformBinance = "binance"

	ModeTelegram = "telegram"
	ModeTerminal = "terminal"
)

// Config runtime configuration.
type Config struct {
	// Platform exchange used as the market data source.
	Platform string
	// Mode chat interface: telegram or terminal.
	Mode string
	// BotToken Telegram bot token, required in telegram mode.
	BotToken string
}

type configTmp struct {
	Platform string `yaml:"platform"`
	Mode     string `yaml:"mode"`
}

// Get reads configuration from --config YAML when given, flags otherwise.
// A local .env file is merged into the environment before BOT_TOKEN is read.
func Get() (Config, error) {
	// .env is optional; variables already present in the environment win
	_ = godotenv.Load()

	configPath := flag.String("config", "", "path to yaml config")
	platform := flag.String("platform", PlatformBybit, "market data platform: bybit or binance")
	mode := flag.String("mode", ModeTelegram, "chat interface: telegram or terminal")
	flag.Parse()

	cfg := Config{Platform: *platform, Mode: *mode}

	if *configPath != "" {
		loaded, err := getYaml(*configPath)
		if err != nil {
			return Config{}, err
		}
		cfg = loaded
	}

	cfg.BotToken = strings.TrimSpace(os.Getenv("BOT_TOKEN"))

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func getYaml(path string) (Config, error) {
	f, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "failed to read config file %s", path)
	}

	var tmp configTmp
	if err := yaml.Unmarshal(f, &tmp); err != nil {
		return Config{}, errors.Wrap(err, "failed to parse yaml config")
	}

	cfg := Config{Platform: tmp.Platform, Mode: tmp.Mode}
	if cfg.Platform == "" {
		cfg.Platform = PlatformBybit
	}
	if cfg.Mode == "" {
		cfg.Mode = ModeTelegram
	}

	return cfg, nil
}

func (c Config) validate() error {
	switch c.Platform {
	case PlatformBybit, PlatformBinance:
	default:
		return errors.Errorf("unsupported platform: %s", c.Platform)
	}

	switch c.Mode {
	case ModeTelegram, ModeTerminal:
	default:
		return errors.Errorf("unsupported mode: %s", c.Mode)
	}

	if c.Mode == ModeTelegram && c.BotToken == "" {
		return errors.New("BOT_TOKEN environment variable must be set for telegram mode")
	}

	return nil
}
