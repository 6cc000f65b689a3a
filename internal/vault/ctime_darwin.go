package vault

import (
	"os"
	"syscall"
	"time"
)

// createdTime returns the file birth time, which macOS tracks natively.
func createdTime(info os.FileInfo) time.Time {
	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		return time.Unix(st.Birthtimespec.Sec, st.Birthtimespec.Nsec)
	}
	return info.ModTime()
}
