package logger

import "strings"

// sensitiveKeys are substrings of keys whose values never reach the logs.
var sensitiveKeys = []string{
	"password",
	"token",
	"apikey",
	"api_key",
	"authorization",
	"cookie",
	"session",
	"secret",
	"key",
	"pass",
	"pwd",
}

// Redacted replaces sensitive values.
const Redacted = "[REDACTED]"

// IsSensitive reports whether a key names a value that must not be logged.
func IsSensitive(key string) bool {
	lower := strings.ToLower(key)
	for _, s := range sensitiveKeys {
		if strings.Contains(lower, s) {
			return true
		}
	}
	return false
}

// Sanitize returns a copy of m with sensitive values redacted. Nested maps are sanitized too.
func Sanitize(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		if IsSensitive(k) {
			out[k] = Redacted
			continue
		}
		if nested, ok := v.(map[string]any); ok {
			out[k] = Sanitize(nested)
			continue
		}
		out[k] = v
	}
	return out
}

// SanitizeHeaders flattens and sanitizes HTTP-style multi value headers.
func SanitizeHeaders(h map[string][]string) map[string]any {
	out := make(map[string]any, len(h))
	for k, v := range h {
		if IsSensitive(k) {
			out[k] = Redacted
			continue
		}
		out[k] = strings.Join(v, ", ")
	}
	return out
}
