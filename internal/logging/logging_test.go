package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "taskkeeper.log")

	logger, err := New(path)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	logger.Info("load tasks")
	logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"load tasks"`) {
		t.Errorf("Expected JSON log line, got %s", data)
	}
}
