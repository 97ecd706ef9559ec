package kv

import (
	"context"
	"errors"
	"strings"
)

// ErrInvalidKey is returned when a key is empty or contains control characters.
var ErrInvalidKey = errors.New("invalid key")

// Store defines the contract for persisting small string values by key.
// Get reports ok=false when the key has never been written.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key string, value string) error
}

// ValidateKey rejects keys that no backend can store safely.
func ValidateKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return ErrInvalidKey
	}
	for _, r := range key {
		if r < 0x20 || r == 0x7f {
			return ErrInvalidKey
		}
	}
	return nil
}

// WithPrefix namespaces every key of s under prefix, joined with "/".
func WithPrefix(s Store, prefix string) Store {
	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		return s
	}
	return &prefixed{inner: s, prefix: prefix}
}

type prefixed struct {
	inner  Store
	prefix string
}

func (p *prefixed) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ValidateKey(key); err != nil {
		return "", false, err
	}
	return p.inner.Get(ctx, p.prefix+"/"+key)
}

func (p *prefixed) Set(ctx context.Context, key, value string) error {
	if err := ValidateKey(key); err != nil {
		return err
	}
	return p.inner.Set(ctx, p.prefix+"/"+key, value)
}
