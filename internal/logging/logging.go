package logging

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// New builds a production JSON logger writing to path. The terminal belongs
// to the UI, so nothing is written to stdout or stderr.
func New(path string) (*zap.Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}

	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	return cfg.Build()
}
