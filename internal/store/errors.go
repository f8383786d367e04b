package store

import "errors"

var (
	// ErrKVNotFound is returned by [KVStore.Get] when the requested name has
	// no stored value.
	ErrKVNotFound = errors.New("kv entry not found")
)
