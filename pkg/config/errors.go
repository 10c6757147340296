package config

import "errors"

var (
	ErrNilConfig   = errors.New("config target is nil")
	ErrParseFailed = errors.New("failed to parse environment configuration")
)
