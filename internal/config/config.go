package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTP       HTTP
	Probe      Probe
	Metrics    Metrics
	RateMyProf RateMyProf
	Anthropic  Anthropic
	Pipeline   Pipeline
	KeepAlive  KeepAlive
	Log        Log
}

func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	return config, nil
}
