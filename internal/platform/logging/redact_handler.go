package logging

import (
	"log/slog"
	"maps"
	"regexp"
	"slices"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders lists lowercase request header names whose values never
// reach the log. The HTTP middleware redacts them when dumping headers and
// the slog handler redacts attributes that reuse the header name as key.
var SensitiveHeaders = map[string]bool{
	"authorization": true,
	"x-api-key":     true,
	"cookie":        true,
	"set-cookie":    true,
}

// redactedFields are attribute keys and struct field names masked wherever
// they appear. "Password" covers config.RedisConfig logged as a whole.
var redactedFields = []string{"password", "Password", "secret", "token"}

// redactedPrefixes catch key variants such as secret_key or api_key_v2.
var redactedPrefixes = []string{"secret_", "api_key"}

// redactedValues match credentials that leak into free-form values, such
// as an upstream error that echoes a header or a redis URL with a password.
var redactedValues = []*regexp.Regexp{
	regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`),
	// JWT: three base64url segments of at least 10 characters, so versions
	// like 1.2.3 survive.
	regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`),
	regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`),
	regexp.MustCompile(`redis://[^:@/\s]*:[^@\s]+@`),
}

// newRedactAttr builds the masq ReplaceAttr hook installed by New.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	headers := slices.Sorted(maps.Keys(SensitiveHeaders))
	opts := make([]masq.Option, 0,
		len(headers)+len(redactedFields)+len(redactedPrefixes)+len(redactedValues))

	for _, name := range slices.Concat(headers, redactedFields) {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, prefix := range redactedPrefixes {
		opts = append(opts, masq.WithFieldPrefix(prefix))
	}
	for _, re := range redactedValues {
		opts = append(opts, masq.WithRegex(re))
	}

	return masq.New(opts...)
}
