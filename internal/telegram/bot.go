// Package telegram implements the chat interface: a long-polling Telegram
// bot that collects a ticker from the user, runs the analyzer and renders
// the report. Analyzer failures are always reported back to the chat; the
// polling loop itself never dies because of them.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"pumpmon/internal/domain"
)

const (
	defaultAPIBase = "https://api.telegram.org"

	// pollTimeout Telegram long-poll timeout; the poll HTTP client waits
	// slightly longer so the server side always wins.
	pollTimeout    = 30 * time.Second
	pollGrace      = 5 * time.Second
	sendTimeout    = 30 * time.Second
	pollErrorPause = 3 * time.Second

	quoteSuffix = "USDT"
)

const (
	welcomeMessage = "Hi! I monitor possible pumps on the spot market.\n\n" +
		"Send me a ticker, e.g. ZKLUSDT or ZKL (UPPERCASE only), " +
		"and I will reply with a pump likelihood report."
	promptMessage    = "Enter a ticker:"
	emptyMessage     = "Empty input. Enter a ticker, e.g. ZKLUSDT"
	uppercaseMessage = "Use UPPERCASE letters only"
	fallbackMessage  = "Send /start to begin analysis"
	failureMessage   = "Analysis failed, please try again later"
)

// Analyzer produces a pump report for an exchange-normalized symbol.
type Analyzer interface {
	Analyze(ctx context.Context, symbol string) (domain.PumpReport, error)
}

// Bot long-polling Telegram bot.
type Bot struct {
	baseURL    string
	sendClient *http.Client
	pollClient *http.Client
	analyzer   Analyzer
	logger     *zap.Logger

	// waiting chats that were prompted for a ticker. Updates are handled
	// sequentially by Run, so no locking is needed.
	waiting map[int64]struct{}
}

// NewBot creates a bot talking to the public Telegram API.
func NewBot(token string, analyzer Analyzer, logger *zap.Logger) *Bot {
	return newBot(defaultAPIBase, token, analyzer, logger)
}

func newBot(apiBase, token string, analyzer Analyzer, logger *zap.Logger) *Bot {
	return &Bot{
		baseURL:    fmt.Sprintf("%s/bot%s", apiBase, token),
		sendClient: &http.Client{Timeout: sendTimeout},
		pollClient: &http.Client{Timeout: pollTimeout + pollGrace},
		analyzer:   analyzer,
		logger:     logger,
		waiting:    make(map[int64]struct{}),
	}
}

// Run polls getUpdates until the context is cancelled. Poll errors are
// logged and retried after a short pause.
func (b *Bot) Run(ctx context.Context) error {
	b.logger.Info("telegram bot started")

	var offset int64
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		updates, err := b.getUpdates(offset)
		if err != nil {
			b.logger.Warn("failed to poll updates", zap.Error(err))
			time.Sleep(pollErrorPause)
			continue
		}

		for _, u := range updates {
			if u.UpdateID >= offset {
				offset = u.UpdateID + 1
			}
			if u.Message != nil {
				b.handleMessage(ctx, u.Message)
			}
		}
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *message) {
	chatID := msg.Chat.ID

	// a panic escaping the core is a programming error; surface it to the
	// user as a generic failure and keep the loop alive
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("analysis panicked", zap.Int64("chat_id", chatID), zap.Any("panic", r))
			b.send(chatID, failureMessage)
		}
	}()

	text := strings.TrimSpace(msg.Text)

	if text == "/start" {
		b.send(chatID, welcomeMessage)
		b.send(chatID, promptMessage)
		b.waiting[chatID] = struct{}{}
		return
	}

	if _, ok := b.waiting[chatID]; !ok {
		b.send(chatID, fallbackMessage)
		return
	}

	if text == "" {
		b.send(chatID, emptyMessage)
		return
	}
	if text != strings.ToUpper(text) {
		b.send(chatID, uppercaseMessage)
		return
	}

	symbol := NormalizeTicker(text)
	delete(b.waiting, chatID)

	b.send(chatID, fmt.Sprintf("Analyzing %s, give me 5-10 seconds...", symbol))

	report, err := b.analyzer.Analyze(ctx, symbol)
	if err != nil {
		b.logger.Error("analysis failed", zap.String("symbol", symbol), zap.Error(err))
		b.send(chatID, failureMessage)
		return
	}

	b.send(chatID, FormatReport(report))
}

// NormalizeTicker appends the quote suffix when the user sent a bare base
// ticker.
func NormalizeTicker(ticker string) string {
	if !strings.HasSuffix(ticker, quoteSuffix) {
		return ticker + quoteSuffix
	}

	return ticker
}

func (b *Bot) getUpdates(offset int64) ([]update, error) {
	url := fmt.Sprintf("%s/getUpdates?offset=%d&timeout=%d", b.baseURL, offset, int(pollTimeout.Seconds()))

	resp, err := b.pollClient.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var parsed updatesResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, err
	}
	if !parsed.OK {
		return nil, fmt.Errorf("telegram getUpdates returned ok=false (status %d)", resp.StatusCode)
	}

	return parsed.Result, nil
}

func (b *Bot) send(chatID int64, text string) {
	body, err := json.Marshal(sendMessageRequest{ChatID: chatID, Text: text})
	if err != nil {
		b.logger.Error("failed to marshal message", zap.Error(err))
		return
	}

	resp, err := b.sendClient.Post(b.baseURL+"/sendMessage", "application/json", bytes.NewReader(body))
	if err != nil {
		b.logger.Warn("failed to send message", zap.Int64("chat_id", chatID), zap.Error(err))
		return
	}
	defer resp.Body.Close()

	var parsed apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		b.logger.Warn("failed to decode sendMessage response", zap.Error(err))
		return
	}
	if !parsed.OK {
		b.logger.Warn("telegram rejected message",
			zap.Int64("chat_id", chatID),
			zap.Int("status", resp.StatusCode),
			zap.String("description", parsed.Description))
	}
}

type update struct {
	UpdateID int64    `json:"update_id"`
	Message  *message `json:"message"`
}

type message struct {
	Chat chat   `json:"chat"`
	Text string `json:"text"`
}

type chat struct {
	ID int64 `json:"id"`
}

type updatesResponse struct {
	OK     bool     `json:"ok"`
	Result []update `json:"result"`
}

type apiResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

type sendMessageRequest struct {
	ChatID int64  `json:"chat_id"`
	Text   string `json:"text"`
}
