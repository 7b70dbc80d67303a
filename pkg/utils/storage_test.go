package utils

import (
	"os"
	"path/filepath"
	"testing"
)

// TestProbeWritable 测试可写目录探测不留下文件
func TestProbeWritable(t *testing.T) {
	dir := t.TempDir()
	if err := probeWritable(dir); err != nil {
		t.Fatalf("probeWritable() error = %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("probe file left behind: %v", entries)
	}
}

// TestProbeWritableMissingDir 测试不存在的目录返回错误
func TestProbeWritableMissingDir(t *testing.T) {
	if err := probeWritable(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected error for a missing directory")
	}
}
