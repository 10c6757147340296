package quota

import "errors"

var (
	ErrOverLimit          = errors.New("resource limit exceeded")
	ErrInvalidAccount     = errors.New("account is missing an identifier or email")
	ErrMissingDependency  = errors.New("quota service dependency is nil")
	ErrFailedToCountUsage = errors.New("failed to count resource usage")
	ErrNegativeUsage      = errors.New("usage collaborator reported a negative count")
)
