package noteservice

import (
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/toocheap/obsidian-cli-mcp/internal/apperr"
	"github.com/toocheap/obsidian-cli-mcp/internal/models"
	"github.com/toocheap/obsidian-cli-mcp/internal/parser"
	"github.com/toocheap/obsidian-cli-mcp/internal/vault"
)

// Read returns the full note as a JSON descriptor: metadata, content,
// frontmatter, tags, wikilinks, and word/char counts.
func (s *Service) Read(path string) (string, error) {
	abs, err := s.vault.ResolveNote(path)
	if err != nil {
		return "", err
	}
	if !isFile(abs) {
		return "", apperr.New(apperr.ErrNotFound, "Note not found at '%s'.", path)
	}
	content, err := s.readNote(abs)
	if err != nil {
		return "", err
	}
	meta, err := s.vault.Meta(abs, nil, false)
	if err != nil {
		return "", err
	}
	fm := s.parseMeta(content)
	if fm == nil {
		meta.Frontmatter = map[string]models.Value{}
	} else {
		meta.Frontmatter = fm
	}
	res := models.ReadResult{
		NoteMeta:  meta,
		Content:   content,
		Tags:      parser.ExtractTags(content, fm),
		Wikilinks: parser.ExtractWikilinks(content),
		WordCount: len(strings.Fields(content)),
		CharCount: utf8.RuneCountInString(content),
	}
	return jsonBlob(res), nil
}

// Create writes a new note, creating parent directories as needed. Content
// is written verbatim, with no trailing-newline normalization.
func (s *Service) Create(path, content string, overwrite bool) (string, error) {
	abs, err := s.vault.ResolveNote(path)
	if err != nil {
		return "", err
	}
	if exists(abs) && !overwrite {
		return "", apperr.New(apperr.ErrAlreadyExists,
			"Note already exists at '%s'. Set overwrite=true to replace.", path)
	}
	if err := s.vault.WriteFile(abs, []byte(content)); err != nil {
		return "", err
	}
	return jsonBlob(map[string]any{
		"status":     "created",
		"path":       s.vault.Rel(abs),
		"size_bytes": len(content),
	}), nil
}

// EditOp is one of the supported edit operations.
type EditOp string

const (
	EditAppend  EditOp = "append"
	EditPrepend EditOp = "prepend"
	EditReplace EditOp = "replace"
)

// Edit modifies an existing note. For replace, an empty find means full
// replacement; otherwise exactly the first occurrence is replaced and a
// missing needle is an error, not a silent no-op.
func (s *Service) Edit(path string, op EditOp, content, find string) (string, error) {
	abs, err := s.vault.ResolveNote(path)
	if err != nil {
		return "", err
	}
	if !isFile(abs) {
		return "", apperr.New(apperr.ErrNotFound, "Note not found at '%s'.", path)
	}
	original, err := s.readNote(abs)
	if err != nil {
		return "", err
	}

	var updated string
	switch op {
	case EditAppend:
		updated = original + "\n" + content
	case EditPrepend:
		updated = content + "\n" + original
	case EditReplace:
		if find == "" {
			updated = content
		} else {
			if !strings.Contains(original, find) {
				return "", apperr.New(apperr.ErrNotFound,
					"Text to replace not found in '%s'.", path)
			}
			updated = strings.Replace(original, find, content, 1)
		}
	default:
		return "", apperr.New(apperr.ErrInvalidInput, "Unknown operation '%s'.", op)
	}

	if err := s.vault.WriteFile(abs, []byte(updated)); err != nil {
		return "", err
	}
	return jsonBlob(map[string]any{
		"status":        "edited",
		"path":          s.vault.Rel(abs),
		"operation":     string(op),
		"original_size": utf8.RuneCountInString(original),
		"new_size":      utf8.RuneCountInString(updated),
	}), nil
}

// Delete removes a note. It refuses to act unless confirm is true.
func (s *Service) Delete(path string, confirm bool) (string, error) {
	if !confirm {
		return "", apperr.New(apperr.ErrInvalidInput,
			"Deletion not confirmed. Set confirm=true to proceed.")
	}
	abs, err := s.vault.ResolveNote(path)
	if err != nil {
		return "", err
	}
	if !isFile(abs) {
		return "", apperr.New(apperr.ErrNotFound, "Note not found at '%s'.", path)
	}
	rel := s.vault.Rel(abs)
	if err := os.Remove(abs); err != nil {
		return "", apperr.New(apperr.ErrIO, "Could not delete note: %v", err)
	}
	return jsonBlob(map[string]any{"status": "deleted", "path": rel}), nil
}

// Move renames a note or folder. A missing source is retried with the note
// extension; a file destination without an extension gets one appended.
func (s *Service) Move(source, destination string, overwrite bool) (string, error) {
	src, err := s.vault.Resolve(source)
	if err != nil {
		return "", err
	}
	dst, err := s.vault.Resolve(destination)
	if err != nil {
		return "", err
	}

	if !exists(src) {
		if filepath.Ext(src) == "" && exists(src+vault.NoteExt) {
			src += vault.NoteExt
		} else {
			return "", apperr.New(apperr.ErrNotFound, "Source not found: '%s'", source)
		}
	}
	if isFile(src) && filepath.Ext(dst) == "" {
		dst += vault.NoteExt
	}
	if exists(dst) && !overwrite {
		return "", apperr.New(apperr.ErrAlreadyExists,
			"Destination already exists: '%s'. Set overwrite=true to force.", destination)
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", apperr.New(apperr.ErrIO, "Could not move: %v", err)
	}
	if err := os.Rename(src, dst); err != nil {
		return "", apperr.New(apperr.ErrIO, "Could not move: %v", err)
	}
	return jsonBlob(map[string]any{
		"status": "moved",
		"from":   s.vault.Rel(src),
		"to":     s.vault.Rel(dst),
	}), nil
}
