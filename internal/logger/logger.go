package logger

import (
	"fmt"

	"go.uber.org/zap"
)

// New builds a zap logger at level ("debug", "info", "warn", "error"). Development
// environments get a console encoder, everything else JSON.
func New(level string, development bool) (*zap.Logger, error) {
	if level == "" {
		level = "info"
	}
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	if development {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = lvl
	// Command output goes to stdout; logs stay out of its way.
	cfg.OutputPaths = []string{"stderr"}

	return cfg.Build()
}
