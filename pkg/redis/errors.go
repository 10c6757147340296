package redis

import "errors"

var (
	ErrInvalidConfig     = errors.New("invalid redis configuration")
	ErrConnectionFailed  = errors.New("failed to connect to redis")
	ErrHealthcheckFailed = errors.New("redis healthcheck failed")
)
