package storage

import (
	"encoding/json"
	"errors"

	applog "bikeaccessories/internal/log"
	"bikeaccessories/internal/metrics"
)

// Load reads key and decodes it as JSON into a T. def is returned when the
// store is nil or unavailable, the key is absent or empty, the read fails,
// the value is not valid JSON for T, or valid rejects the decoded value.
func Load[T any](s Store, key string, def T, valid func(T) bool) T {
	if s == nil {
		return def
	}
	raw, ok, err := s.Get(key)
	if err != nil {
		if !errors.Is(err, ErrUnavailable) {
			applog.Error(nil, "storage.load.fail", err, map[string]any{"key": key})
		}
		return def
	}
	if !ok || raw == "" {
		return def
	}
	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		applog.Warn(nil, "storage.load.malformed", map[string]any{"key": key, "err": err.Error()})
		return def
	}
	if valid != nil && !valid(v) {
		applog.Warn(nil, "storage.load.malformed", map[string]any{"key": key, "err": "unexpected shape"})
		return def
	}
	return v
}

// LoadSlice is Load with the "must be a JSON array" shape check. A stored
// null, object, string or number falls back to def.
func LoadSlice[E any](s Store, key string, def []E) []E {
	return Load(s, key, def, func(v []E) bool { return v != nil })
}

// Save encodes v as JSON and writes it under key. Failures are logged,
// counted and otherwise ignored: the caller's in-memory value stays the
// source of truth for the rest of the session.
func Save[T any](s Store, key string, v T) {
	if s == nil {
		return
	}
	b, err := json.Marshal(v)
	if err != nil {
		writeFailed(key, err)
		return
	}
	if err := s.Set(key, string(b)); err != nil {
		writeFailed(key, err)
	}
}

// SaveSlice saves v, writing a nil slice as an empty array so that it loads
// back as empty rather than falling back to defaults.
func SaveSlice[E any](s Store, key string, v []E) {
	if v == nil {
		v = []E{}
	}
	Save(s, key, v)
}

// Remove deletes key, best effort.
func Remove(s Store, key string) {
	if s == nil {
		return
	}
	if err := s.Remove(key); err != nil {
		writeFailed(key, err)
	}
}

func writeFailed(key string, err error) {
	metrics.StorageWriteFailures.WithLabelValues(key).Inc()
	if errors.Is(err, ErrUnavailable) {
		return
	}
	applog.Error(nil, "storage.save.fail", err, map[string]any{"key": key})
}
