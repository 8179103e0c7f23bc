package errors

import "errors"

// ErrCacheMiss is returned by the cache layer when a key is absent.
// Callers fall back to the store; a miss is never a request failure.
var ErrCacheMiss = errors.New("cache miss")
