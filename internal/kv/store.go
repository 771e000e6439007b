// Package kv provides the string-keyed durable storage the notification
// store persists into. Entries are addressed by (namespace, key) so that
// per-user cleanup can enumerate a namespace instead of prefix-matching
// raw storage keys.
package kv

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a key has no stored value.
var ErrNotFound = errors.New("kv: key not found")

// Namespaces used by the notification core.
const (
	NamespaceNotifications = "notifications"
	NamespaceMarkers       = "markers"
	NamespacePrefs         = "prefs"
	NamespaceProfile       = "profile"
)

type Store interface {
	// Get returns the value for (namespace, key), or ErrNotFound.
	Get(ctx context.Context, namespace, key string) (string, error)
	// Set writes the value for (namespace, key).
	Set(ctx context.Context, namespace, key, value string) error
	// Delete removes (namespace, key). Deleting a missing key is not an error.
	Delete(ctx context.Context, namespace, key string) error
	// Keys lists all keys present in a namespace.
	Keys(ctx context.Context, namespace string) ([]string, error)
}
