package utils

import (
	"fmt"
	"io/fs"
	"path/filepath"
)

// FormatSize renders a byte count in human-readable form
func FormatSize(size int64) string {
	value := float64(size)
	for _, unit := range []string{"B", "KB", "MB", "GB"} {
		if value < 1024.0 {
			return fmt.Sprintf("%.1f%s", value, unit)
		}
		value /= 1024.0
	}
	return fmt.Sprintf("%.1fTB", value)
}

// GetDirectoryInfo counts the files under root and their total size, skipping
// the default-ignored directories and the backup store. Unreadable entries
// are ignored; this is advisory information shown before the confirmation
// prompt.
func GetDirectoryInfo(root string, backupDir string) (int, int64) {
	totalFiles := 0
	var totalSize int64

	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		relativePath, relErr := filepath.Rel(root, path)
		if relErr != nil {
			relativePath = path
		}
		inStore := false
		if abs, absErr := filepath.Abs(path); absErr == nil {
			inStore = IsWithin(abs, backupDir)
		}
		if IsDefaultIgnored(relativePath) || inStore {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.IsDir() {
			if info, infoErr := d.Info(); infoErr == nil {
				totalFiles++
				totalSize += info.Size()
			}
		}
		return nil
	})

	return totalFiles, totalSize
}
