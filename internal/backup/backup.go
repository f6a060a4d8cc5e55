// Package backup makes timestamped copies of files before they are
// overwritten.
package backup

import (
	"fmt"
	"os"
	"time"
)

// TimestampLayout is the time format embedded in backup names
const TimestampLayout = "20060102_150405"

// Path returns the backup name for path at time t:
// <path>.<YYYYmmdd_HHMMSS>.bak
func Path(path string, t time.Time) string {
	return fmt.Sprintf("%s.%s.bak", path, t.Format(TimestampLayout))
}

// Create copies path byte for byte to its backup name and returns that name.
func Create(path string, now time.Time) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("backup: read %s: %w", path, err)
	}
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("backup: stat %s: %w", path, err)
	}
	dst := Path(path, now)
	if err := os.WriteFile(dst, data, info.Mode().Perm()); err != nil {
		return "", fmt.Errorf("backup: write %s: %w", dst, err)
	}
	return dst, nil
}
