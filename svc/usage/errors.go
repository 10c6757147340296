package usage

import "errors"

var (
	ErrNilPool     = errors.New("postgres connection pool is nil")
	ErrNilClient   = errors.New("redis client is nil")
	ErrQueryFailed = errors.New("usage store query failed")
)
