// Package storage is the persistence adapter: a key-value string store plus
// best-effort JSON load/save helpers that never fail the caller.
package storage

import (
	"errors"
	"strings"
)

var (
	ErrUnavailable   = errors.New("storage: store unavailable")
	ErrQuotaExceeded = errors.New("storage: quota exceeded")
)

// Store is a key-value store of strings, the server-side stand-in for a
// browser's local storage. A missing key reports ok == false with a nil
// error.
type Store interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Remove(key string) error
}

// Backend is a Store that holds resources.
type Backend interface {
	Store
	Close() error
}

// Lister is a Store that can enumerate its keys.
type Lister interface {
	Keys() ([]string, error)
}

// Keys lists the keys held by s in ascending order. Stores that cannot
// enumerate report ErrUnavailable.
func Keys(s Store) ([]string, error) {
	l, ok := s.(Lister)
	if !ok {
		return nil, ErrUnavailable
	}
	return l.Keys()
}

// Unavailable models a runtime without persistent storage: every call
// fails with ErrUnavailable, so loads fall back to defaults and saves are
// dropped.
type Unavailable struct{}

func (Unavailable) Get(string) (string, bool, error) { return "", false, ErrUnavailable }
func (Unavailable) Set(string, string) error         { return ErrUnavailable }
func (Unavailable) Remove(string) error              { return ErrUnavailable }
func (Unavailable) Close() error                     { return nil }

// Open picks a backend from dsn:
//
//	""  or "memory"                       in-process map
//	"postgres://..." / "postgresql://..."  Postgres
//	anything else                          SQLite file or URI (":memory:" allowed)
func Open(dsn string) (Backend, error) {
	switch {
	case dsn == "" || dsn == "memory":
		return NewMemory(), nil
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return OpenPostgres(dsn)
	default:
		return OpenSQLite(dsn)
	}
}
