package config

import (
	"errors"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var loadDotEnv sync.Once

// Load populates a configuration struct from environment variables using
// `env` struct tags. A .env file in the working directory is loaded once,
// if present; its absence is not an error.
//
//	type Deployment struct {
//		SelfHosted bool   `env:"SELF_HOSTED" envDefault:"false"`
//		PlanTable  string `env:"PLAN_CATALOG_PATH" envDefault:"plans.yml"`
//	}
//
//	var cfg Deployment
//	if err := config.Load(&cfg); err != nil { ... }
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilConfig
	}

	loadDotEnv.Do(func() {
		_ = godotenv.Load()
	})

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParseFailed, err)
	}
	return nil
}

// MustLoad is Load for wire-up paths where a bad environment should stop
// the process.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(err)
	}
}
