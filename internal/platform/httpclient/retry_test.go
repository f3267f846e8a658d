package httpclient

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"testing"
	"time"
)

func TestBackoff(t *testing.T) {
	t.Parallel()

	productAPI := retryConfig{
		initialInterval: 100 * time.Millisecond,
		maxInterval:     10 * time.Second,
		multiplier:      2.0,
	}
	tight := retryConfig{
		initialInterval: 100 * time.Millisecond,
		maxInterval:     500 * time.Millisecond,
		multiplier:      2.0,
	}

	tests := []struct {
		name    string
		cfg     retryConfig
		attempt int
		base    time.Duration
	}{
		{name: "first retry", cfg: productAPI, attempt: 1, base: 100 * time.Millisecond},
		{name: "second retry doubles", cfg: productAPI, attempt: 2, base: 200 * time.Millisecond},
		{name: "third retry doubles again", cfg: productAPI, attempt: 3, base: 400 * time.Millisecond},
		{name: "capped by max interval", cfg: tight, attempt: 10, base: 500 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			lo := time.Duration(float64(tt.base) * (1 - jitterFraction))
			hi := time.Duration(float64(tt.base) * (1 + jitterFraction))
			for range 200 {
				if d := backoff(tt.attempt, tt.cfg); d < lo || d > hi {
					t.Fatalf("backoff(%d) = %v, want within [%v, %v]", tt.attempt, d, lo, hi)
				}
			}
		})
	}
}

func TestIsRetryable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "no error", err: nil, want: false},
		{
			name: "saga run canceled while fetching a product",
			err:  fmt.Errorf("GET /api/v1/products/p-1: %w", context.Canceled),
			want: false,
		},
		{
			name: "request deadline spent",
			err:  fmt.Errorf("GET /api/v1/products?ids=p-1,p-2: %w", context.DeadlineExceeded),
			want: false,
		},
		{
			name: "product API refused the connection",
			err:  &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")},
			want: true,
		},
		{
			name: "unexpected EOF from product API",
			err:  errors.New("reading product response: unexpected EOF"),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := isRetryable(tt.err); got != tt.want {
				t.Errorf("isRetryable(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestIsRetryableStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		statusCode int
		want       bool
	}{
		{statusCode: http.StatusOK, want: false},
		{statusCode: http.StatusNotFound, want: false},
		{statusCode: http.StatusConflict, want: false},
		{statusCode: http.StatusUnprocessableEntity, want: false},
		{statusCode: http.StatusTooManyRequests, want: true},
		{statusCode: http.StatusInternalServerError, want: true},
		{statusCode: http.StatusBadGateway, want: true},
		{statusCode: http.StatusServiceUnavailable, want: true},
		{statusCode: http.StatusGatewayTimeout, want: true},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.statusCode), func(t *testing.T) {
			t.Parallel()

			if got := isRetryableStatus(tt.statusCode); got != tt.want {
				t.Errorf("isRetryableStatus(%d) = %v, want %v", tt.statusCode, got, tt.want)
			}
		})
	}
}

func TestSecureRandFloat64_InRange(t *testing.T) {
	t.Parallel()

	for range 1000 {
		if v := secureRandFloat64(); v < 0 || v >= 1 {
			t.Fatalf("secureRandFloat64() = %v, want [0, 1)", v)
		}
	}
}

func TestParseRetryAfter(t *testing.T) {
	t.Parallel()

	const limit = 5 * time.Second

	tests := []struct {
		name  string
		value string
		want  time.Duration
	}{
		{name: "absent", value: "", want: 0},
		{name: "seconds", value: "2", want: 2 * time.Second},
		{name: "seconds above limit", value: "120", want: limit},
		{name: "zero", value: "0", want: 0},
		{name: "negative", value: "-3", want: 0},
		{name: "garbage", value: "soon", want: 0},
		{name: "date in the past", value: "Wed, 21 Oct 2015 07:28:00 GMT", want: 0},
		{name: "date far ahead", value: time.Now().Add(time.Hour).UTC().Format(http.TimeFormat), want: limit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := parseRetryAfter(tt.value, limit); got != tt.want {
				t.Errorf("parseRetryAfter(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}
