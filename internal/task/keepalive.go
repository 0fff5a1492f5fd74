package task

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// KeepAlive pings a URL on an interval so free-tier hosting does not idle
// the process out. The first ping fires immediately.
type KeepAlive struct {
	url      string
	interval time.Duration
	client   *http.Client
	logger   *zap.Logger
}

func NewKeepAlive(url string, interval time.Duration, logger *zap.Logger) *KeepAlive {
	return &KeepAlive{
		url:      url,
		interval: interval,
		client:   &http.Client{Timeout: 30 * time.Second},
		logger:   logger,
	}
}

// Run blocks until the context is cancelled
func (k *KeepAlive) Run(ctx context.Context) {
	k.ping(ctx)

	ticker := time.NewTicker(k.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			k.ping(ctx)
		}
	}
}

func (k *KeepAlive) ping(ctx context.Context) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, k.url, nil)
	if err != nil {
		k.logger.Warn("keepalive request", zap.Error(err))
		return
	}

	resp, err := k.client.Do(req)
	if err != nil {
		k.logger.Warn("keepalive ping failed", zap.Error(err))
		return
	}
	resp.Body.Close()

	k.logger.Debug("keepalive ping ok", zap.Int("status", resp.StatusCode))
}
