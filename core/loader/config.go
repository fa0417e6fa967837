package loader

import "time"

// Config holds configuration for catalogue module loading.
type Config struct {
	// Concurrency bounds the modules loading at once. Zero means unbounded.
	Concurrency int `mapstructure:"concurrency" default:"0"`
	// InitTimeoutSeconds bounds each module's Init hook. Zero means no timeout.
	InitTimeoutSeconds int `mapstructure:"init_timeout_seconds" default:"10"`
}

// Options converts the configuration into loader options.
func (c Config) Options() Options {
	return Options{
		Concurrency: c.Concurrency,
		InitTimeout: time.Duration(c.InitTimeoutSeconds) * time.Second,
	}
}
