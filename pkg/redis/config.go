package redis

import "time"

// Config holds the Redis connection settings, loaded from the environment
// via config.Load.
type Config struct {
	ConnectionURL  string        `env:"REDIS_URL,required"`
	RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"5s"`
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"30s"`
}
