package pg

import "errors"

var (
	ErrInvalidConfig     = errors.New("invalid postgres configuration")
	ErrConnectionFailed  = errors.New("failed to connect to postgres")
	ErrHealthcheckFailed = errors.New("postgres healthcheck failed")
	ErrMigrationFailed   = errors.New("failed to apply migrations")
	ErrNoMigrationsPath  = errors.New("migrations path not provided")
)
