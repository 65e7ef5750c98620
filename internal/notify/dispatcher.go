package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"sebet/internal/config"
	"sebet/internal/domain"
)

const backoffCap = 5 * time.Second

// Doer issues one HTTP request. Satisfied by *http.Client.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// DedupeStore remembers which notifications were already delivered so a
// repeated dispatch for the same order event is skipped. Store errors must
// degrade to "not seen": a duplicate message beats a lost one.
type DedupeStore interface {
	Seen(ctx context.Context, key string) (bool, error)
	Mark(ctx context.Context, key string, ttl time.Duration) error
}

// Dispatcher delivers order summaries to a Telegram chat, best effort.
// Send methods never return an error: they report false after retries are
// exhausted and the caller treats that as non-fatal.
type Dispatcher struct {
	cfg    config.TelegramConfig
	client Doer
	dedupe DedupeStore
	logger *zap.Logger
	sleep  func(time.Duration)
}

func NewDispatcher(cfg config.TelegramConfig, client Doer, dedupe DedupeStore, logger *zap.Logger) *Dispatcher {
	if client == nil {
		client = &http.Client{}
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}
	return &Dispatcher{
		cfg:    cfg,
		client: client,
		dedupe: dedupe,
		logger: logger,
		sleep:  time.Sleep,
	}
}

// SendOrderCreated delivers the summary of a freshly created order.
func (d *Dispatcher) SendOrderCreated(ctx context.Context, order domain.Order) bool {
	key := fmt.Sprintf("notify:%s:created", order.ID)
	return d.send(ctx, key, FormatOrderCreated(order), d.cfg.SendTimeout)
}

// SendStatusUpdate delivers a status change line for an existing order.
func (d *Dispatcher) SendStatusUpdate(ctx context.Context, order domain.Order, previous domain.OrderStatus) bool {
	key := fmt.Sprintf("notify:%s:status:%s", order.ID, order.Status)
	return d.send(ctx, key, FormatStatusUpdate(order, previous), d.cfg.UpdateTimeout)
}

func (d *Dispatcher) send(ctx context.Context, key, text string, timeout time.Duration) bool {
	if d.cfg.BotToken == "" || d.cfg.ChatID == "" {
		d.logger.Warn("notification channel not configured, skipping", zap.String("key", key))
		return false
	}

	if d.dedupe != nil {
		seen, err := d.dedupe.Seen(ctx, key)
		if err != nil {
			d.logger.Warn("dedupe lookup failed, sending anyway", zap.String("key", key), zap.Error(err))
		} else if seen {
			d.logger.Info("notification already delivered, skipping", zap.String("key", key))
			return true
		}
	}

	for attempt := 1; attempt <= d.cfg.MaxRetries; attempt++ {
		err := d.attempt(ctx, text, timeout)
		if err == nil {
			d.logger.Info("notification delivered",
				zap.String("key", key),
				zap.Int("attempt", attempt))
			if d.dedupe != nil {
				if err := d.dedupe.Mark(ctx, key, d.cfg.DedupeTTL); err != nil {
					d.logger.Warn("dedupe mark failed", zap.String("key", key), zap.Error(err))
				}
			}
			return true
		}

		d.logger.Warn("notification attempt failed",
			zap.String("key", key),
			zap.Int("attempt", attempt),
			zap.Int("maxRetries", d.cfg.MaxRetries),
			zap.Error(err))

		if attempt < d.cfg.MaxRetries {
			d.sleep(backoff(attempt))
		}
	}

	d.logger.Error("notification abandoned after retries",
		zap.String("key", key),
		zap.Int("maxRetries", d.cfg.MaxRetries))
	return false
}

// attempt issues a single sendMessage call bounded by a hard timeout.
func (d *Dispatcher) attempt(ctx context.Context, text string, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	body, err := json.Marshal(map[string]string{
		"chat_id":    d.cfg.ChatID,
		"text":       text,
		"parse_mode": "HTML",
	})
	if err != nil {
		return fmt.Errorf("encoding payload: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", d.cfg.APIBase, d.cfg.BotToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("provider returned status %d", resp.StatusCode)
	}

	var providerResp struct {
		OK bool `json:"ok"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&providerResp); err != nil {
		return fmt.Errorf("decoding provider response: %w", err)
	}
	if !providerResp.OK {
		return fmt.Errorf("provider rejected message")
	}

	return nil
}

// backoff is 1s, 2s, 4s, ... capped at 5s.
func backoff(attempt int) time.Duration {
	d := time.Second << (attempt - 1)
	if d > backoffCap {
		return backoffCap
	}
	return d
}
