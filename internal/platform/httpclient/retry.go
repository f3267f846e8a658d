package httpclient

import (
	"bytes"
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/jsamuelsen11/catalog-admin-service/internal/platform/logging"
)

// jitterFraction spreads each backoff delay by up to ±25%.
const jitterFraction = 0.25

// doWithRetry sends req until it gets a non-retryable answer or runs out of
// attempts. The body is captured once and rewound for every attempt. Between
// attempts it sleeps for an exponential, jittered delay, or for the upstream's
// Retry-After when the upstream names one.
//
// The final response comes back through resp with its body unread, so the
// ACL can still decode the problem document of a last 503. Returning it
// through a pointer keeps the bodyclose linter quiet; the caller closes it.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request, resp **http.Response) error {
	attempts := c.retryCfg.maxAttempts
	if attempts <= 0 {
		return fmt.Errorf("httpclient: %s: max attempts must be at least 1, got %d", c.serviceName, attempts)
	}

	body, err := captureBody(req)
	if err != nil {
		return err
	}

	var (
		lastErr    error
		retryAfter time.Duration
	)
	for attempt := range attempts {
		if attempt > 0 {
			if err := c.pause(ctx, req, attempt, retryAfter, lastErr); err != nil {
				return err
			}
		}
		rewindBody(req, body)

		r, err := c.httpClient.Do(req)
		if err != nil {
			if !isRetryable(err) {
				return err
			}
			lastErr, retryAfter = err, 0
			continue
		}
		if !isRetryableStatus(r.StatusCode) {
			*resp = r
			return nil
		}

		lastErr = fmt.Errorf("%s answered %d to %s %s", c.serviceName, r.StatusCode, req.Method, req.URL.Path)
		if attempt == attempts-1 {
			*resp = r
			return lastErr
		}
		retryAfter = parseRetryAfter(r.Header.Get("Retry-After"), c.retryCfg.maxInterval)
		discardBody(r)
	}

	return lastErr
}

func captureBody(req *http.Request) ([]byte, error) {
	if req.Body == nil {
		return nil, nil
	}
	defer func() { _ = req.Body.Close() }()

	b, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	return b, nil
}

func rewindBody(req *http.Request, body []byte) {
	if body == nil {
		return
	}
	req.Body = io.NopCloser(bytes.NewReader(body))
	req.ContentLength = int64(len(body))
}

// discardBody drains a response that will be retried so its connection can
// be reused.
func discardBody(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

// pause waits before attempt (zero-based). A positive retryAfter replaces
// the computed backoff.
func (c *Client) pause(ctx context.Context, req *http.Request, attempt int, retryAfter time.Duration, lastErr error) error {
	delay := retryAfter
	if delay <= 0 {
		delay = backoff(attempt, c.retryCfg)
	}

	logging.FromContext(ctx).WarnContext(ctx, "retrying upstream request",
		slog.String("operation", "httpclient.Do"),
		slog.String("peer_service", c.serviceName),
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
		slog.Int("attempt", attempt+1),
		slog.Int("max_attempts", c.retryCfg.maxAttempts),
		slog.Duration("delay", delay),
		slog.Bool("retry_after", retryAfter > 0),
		slog.Any("error", lastErr),
	)

	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// backoff returns the jittered delay before retry number attempt, counted
// from 1. The un-jittered delay never exceeds cfg.maxInterval.
func backoff(attempt int, cfg retryConfig) time.Duration {
	base := min(
		float64(cfg.initialInterval)*math.Pow(cfg.multiplier, float64(attempt-1)),
		float64(cfg.maxInterval),
	)
	spread := base * jitterFraction * (2*secureRandFloat64() - 1)
	return time.Duration(max(base+spread, 0))
}

// parseRetryAfter reads a Retry-After header given in seconds or as an HTTP
// date. Missing, malformed or past values yield zero. The result is capped
// at limit.
func parseRetryAfter(v string, limit time.Duration) time.Duration {
	if v == "" {
		return 0
	}

	var d time.Duration
	if secs, err := strconv.Atoi(v); err == nil {
		d = time.Duration(secs) * time.Second
	} else if at, err := http.ParseTime(v); err == nil {
		d = time.Until(at)
	}

	if d <= 0 {
		return 0
	}
	return min(d, limit)
}

// secureRandFloat64 returns a uniform float64 in [0, 1) built from the top
// 53 bits of a crypto/rand word.
func secureRandFloat64() float64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0
	}
	return float64(binary.BigEndian.Uint64(b[:])>>11) / (1 << 53)
}

// isRetryable reports whether a transport error is worth another attempt.
// A canceled or expired context means the caller has given up, so those
// never are.
func isRetryable(err error) bool {
	return err != nil &&
		!errors.Is(err, context.Canceled) &&
		!errors.Is(err, context.DeadlineExceeded)
}

// isRetryableStatus reports whether the upstream answer is transient:
// 429 or any 5xx.
func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}
