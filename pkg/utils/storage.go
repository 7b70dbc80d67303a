package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// probeWritable 在目录中写入并删除一个探测文件
func probeWritable(dir string) error {
	probe := filepath.Join(dir, ".skyhunt_probe")
	if err := os.WriteFile(probe, []byte("ok"), 0644); err != nil {
		return fmt.Errorf("storage directory %s is not writable: %w", dir, err)
	}
	return os.Remove(probe)
}
