package middleware

import "errors"

// ErrRateLimited is returned to clients that exceed the request rate limit.
var ErrRateLimited = errors.New("too many requests, slow down and retry")
