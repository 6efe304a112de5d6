// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Defaults live in New; Load layers an optional file and env on top.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// ModelPath points at the trained artifact JSON. A missing or corrupt
	// file is not fatal; it only disables the model-backed strategy.
	ModelPath string `koanf:"model_path"`

	// Strategy selects the prediction path: model, rule, or auto.
	Strategy string `koanf:"strategy"`

	// ReportEnabled toggles the PDF report endpoint for this deployment.
	ReportEnabled bool `koanf:"report_enabled"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:      "info",
		Addr:          ":8080",
		ModelPath:     "model.json",
		Strategy:      "auto",
		ReportEnabled: true,
	}
}
