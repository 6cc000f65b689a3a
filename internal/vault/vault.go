// Package vault confines all filesystem access to a single notes directory
// and provides note enumeration and metadata.
package vault

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/toocheap/obsidian-cli-mcp/internal/apperr"
)

// NoteExt is the extension appended to note paths that lack one.
const NoteExt = ".md"

// Vault is a validated, symlink-resolved vault root. It is constructed once
// at startup and passed to every handler; there is no hidden global state.
type Vault struct {
	root string // absolute, symlink-resolved
}

// New resolves and validates the vault root. The directory must exist.
func New(path string) (*Vault, error) {
	if path == "" {
		return nil, apperr.New(apperr.ErrInvalidInput,
			"vault path is not set. Set OBSIDIAN_VAULT_PATH to your vault directory")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, apperr.New(apperr.ErrIO, "resolve vault path: %v", err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return nil, apperr.New(apperr.ErrNotFound,
			"vault path does not exist or is not a directory: %s", abs)
	}
	info, err := os.Stat(resolved)
	if err != nil || !info.IsDir() {
		return nil, apperr.New(apperr.ErrNotFound,
			"vault path does not exist or is not a directory: %s", resolved)
	}
	return &Vault{root: resolved}, nil
}

// Root returns the absolute vault root.
func (v *Vault) Root() string { return v.root }

// Name returns the vault directory name.
func (v *Vault) Name() string { return filepath.Base(v.root) }

// Resolve joins a caller-supplied relative path to the vault root,
// canonicalizes it, and rejects any result that escapes the root. Symlinks
// inside the vault that point outside are resolved and rejected too.
func (v *Vault) Resolve(rel string) (string, error) {
	if rel == "" {
		return v.root, nil
	}
	cleaned := filepath.Clean(filepath.FromSlash(rel))
	if filepath.IsAbs(cleaned) {
		return "", apperr.New(apperr.ErrTraversal, "Path traversal detected: %s", rel)
	}
	joined := filepath.Join(v.root, cleaned)
	resolved, err := resolveExisting(joined)
	if err != nil {
		return "", apperr.New(apperr.ErrIO, "resolve '%s': %v", rel, err)
	}
	if resolved != v.root && !strings.HasPrefix(resolved, v.root+string(os.PathSeparator)) {
		return "", apperr.New(apperr.ErrTraversal, "Path traversal detected: %s", rel)
	}
	return resolved, nil
}

// ResolveNote resolves a relative path and normalizes a missing extension
// to NoteExt, so "folder/note" and "folder/note.md" name the same file.
func (v *Vault) ResolveNote(rel string) (string, error) {
	abs, err := v.Resolve(rel)
	if err != nil {
		return "", err
	}
	if filepath.Ext(abs) == "" {
		abs += NoteExt
	}
	return abs, nil
}

// resolveExisting canonicalizes a path that may not exist yet: symlinks are
// evaluated on the longest existing ancestor and the non-existent remainder
// is re-appended lexically.
func resolveExisting(path string) (string, error) {
	var suffix []string
	p := path
	for {
		resolved, err := filepath.EvalSymlinks(p)
		if err == nil {
			for i := len(suffix) - 1; i >= 0; i-- {
				resolved = filepath.Join(resolved, suffix[i])
			}
			return resolved, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", err
		}
		parent := filepath.Dir(p)
		if parent == p {
			return "", err
		}
		suffix = append(suffix, filepath.Base(p))
		p = parent
	}
}

// Rel returns the vault-relative, slash-separated form of an absolute path.
func (v *Vault) Rel(abs string) string {
	rel, err := filepath.Rel(v.root, abs)
	if err != nil {
		return abs
	}
	return filepath.ToSlash(rel)
}

// IsHidden reports whether any component of a relative path starts with ".".
func IsHidden(rel string) bool {
	for _, part := range strings.Split(filepath.ToSlash(rel), "/") {
		if strings.HasPrefix(part, ".") {
			return true
		}
	}
	return false
}

// ListNotes enumerates every note under the vault, or under folder when it
// is non-empty. Hidden paths are excluded and the result is sorted by the
// relative path string for a platform-stable order.
func (v *Vault) ListNotes(folder string) ([]string, error) {
	base := v.root
	if folder != "" {
		resolved, err := v.Resolve(folder)
		if err != nil {
			return nil, err
		}
		base = resolved
	}
	info, err := os.Stat(base)
	if err != nil || !info.IsDir() {
		return nil, apperr.New(apperr.ErrNotFound, "Folder not found: '%s'", folder)
	}
	var notes []string
	err = filepath.WalkDir(base, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return nil // skip unreadable entries
		}
		rel := v.Rel(p)
		if d.IsDir() {
			if p != base && IsHidden(rel) {
				return fs.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(d.Name(), NoteExt) || IsHidden(rel) {
			return nil
		}
		notes = append(notes, p)
		return nil
	})
	if err != nil {
		return nil, apperr.New(apperr.ErrIO, "list notes: %v", err)
	}
	sort.Slice(notes, func(i, j int) bool { return v.Rel(notes[i]) < v.Rel(notes[j]) })
	return notes, nil
}
