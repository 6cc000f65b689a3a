package vault

import (
	"os"
	"syscall"
	"time"
)

// createdTime returns the inode change time. Linux does not expose a file
// birth time through os.FileInfo, so "created" is really ctime here; macOS
// reports the true birth time (see ctime_darwin.go).
func createdTime(info os.FileInfo) time.Time {
	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		return time.Unix(st.Ctim.Sec, st.Ctim.Nsec)
	}
	return info.ModTime()
}
