package cache

import "github.com/pkg/errors"

// ErrNotFound is returned when a key is not present in the cache.
var ErrNotFound = errors.New("cache: key not found")
