package config

import (
	"errors"
	"fmt"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Client.validate(),
		c.Store.validate(),
		c.Links.validate(c.Store.Backend),
		c.Redis.validate(c.Links.Backend),
		c.Saga.validate(),
		c.Telemetry.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (cl *ClientConfig) validate() error {
	var errs []error

	if cl.BaseURL == "" {
		errs = append(errs, errors.New("client.base_url must not be empty"))
	}
	if cl.Timeout <= 0 {
		errs = append(errs, errors.New("client.timeout must be positive"))
	}
	if cl.Retry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("client.retry.max_attempts must be >= 1, got %d", cl.Retry.MaxAttempts))
	}
	if cl.Retry.Multiplier <= 0 {
		errs = append(errs, fmt.Errorf("client.retry.multiplier must be positive, got %f", cl.Retry.Multiplier))
	}
	if cl.RateLimit.RequestsPerSecond < 0 {
		errs = append(errs, fmt.Errorf("client.rate_limit.requests_per_second must not be negative, got %f",
			cl.RateLimit.RequestsPerSecond))
	}
	if cl.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("client.circuit_breaker.max_failures must be >= 1, got %d",
			cl.CircuitBreaker.MaxFailures))
	}

	return errors.Join(errs...)
}

func (s *StoreConfig) validate() error {
	switch s.Backend {
	case "memory":
		return nil
	case "sqlite":
		if s.Path == "" {
			return errors.New("store.path must not be empty when backend is sqlite")
		}
		return nil
	default:
		return fmt.Errorf("store.backend must be one of: sqlite, memory; got %q", s.Backend)
	}
}

func (l *LinksConfig) validate(storeBackend string) error {
	switch l.Backend {
	case "redis", "memory":
		return nil
	case "sqlite":
		if storeBackend != "sqlite" {
			return fmt.Errorf("links.backend sqlite requires store.backend sqlite, got %q", storeBackend)
		}
		return nil
	default:
		return fmt.Errorf("links.backend must be one of: sqlite, redis, memory; got %q", l.Backend)
	}
}

func (r *RedisConfig) validate(linksBackend string) error {
	if linksBackend != "redis" {
		return nil
	}

	var errs []error
	if r.Addr == "" {
		errs = append(errs, errors.New("redis.addr must not be empty when links.backend is redis"))
	}
	if r.DB < 0 {
		errs = append(errs, fmt.Errorf("redis.db must be >= 0, got %d", r.DB))
	}
	return errors.Join(errs...)
}

func (s *SagaConfig) validate() error {
	var errs []error
	if s.CompensationTimeout < 0 {
		errs = append(errs, errors.New("saga.compensation_timeout must not be negative"))
	}
	if s.SnapshotWorkers < 1 {
		errs = append(errs, fmt.Errorf("saga.snapshot_workers must be >= 1, got %d", s.SnapshotWorkers))
	}
	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}
