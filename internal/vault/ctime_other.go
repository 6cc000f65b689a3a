//go:build !linux && !darwin

package vault

import (
	"os"
	"time"
)

// createdTime falls back to the modification time on platforms where the
// creation time is not readily available.
func createdTime(info os.FileInfo) time.Time {
	return info.ModTime()
}
