package plan

import "errors"

var (
	ErrPlanNotFound             = errors.New("subscription plan not found in catalog")
	ErrInvalidPlanConfiguration = errors.New("invalid subscription plan configuration")
	ErrFailedToLoadCatalog      = errors.New("failed to load plan catalog")
)
