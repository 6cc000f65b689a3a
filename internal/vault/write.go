package vault

import (
	"os"
	"path/filepath"

	"github.com/toocheap/obsidian-cli-mcp/internal/apperr"
)

// WriteFile writes content to an already-resolved absolute path inside the
// vault: tmp file in the same directory, fsync, then rename, so a reader
// never observes a partial note. Parent directories are created as needed.
func (v *Vault) WriteFile(abs string, content []byte) error {
	dir := filepath.Dir(abs)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return apperr.New(apperr.ErrIO, "Could not create directory: %v", err)
	}

	tmp, err := os.CreateTemp(dir, ".obsidian-mcp-tmp-*")
	if err != nil {
		return apperr.New(apperr.ErrIO, "Could not write note: %v", err)
	}
	tmpName := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(content); err != nil {
		return apperr.New(apperr.ErrIO, "Could not write note: %v", err)
	}
	if err := tmp.Sync(); err != nil {
		return apperr.New(apperr.ErrIO, "Could not write note: %v", err)
	}
	if err := tmp.Close(); err != nil {
		return apperr.New(apperr.ErrIO, "Could not write note: %v", err)
	}
	if err := os.Rename(tmpName, abs); err != nil {
		return apperr.New(apperr.ErrIO, "Could not write note: %v", err)
	}
	success = true
	return nil
}
