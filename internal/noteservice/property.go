package noteservice

import (
	"gopkg.in/yaml.v3"

	"github.com/toocheap/obsidian-cli-mcp/internal/apperr"
	"github.com/toocheap/obsidian-cli-mcp/internal/models"
)

// PropertyOp selects the frontmatter property operation.
type PropertyOp string

const (
	PropSet    PropertyOp = "set"
	PropGet    PropertyOp = "get"
	PropList   PropertyOp = "list"
	PropRemove PropertyOp = "remove"
)

// Property manipulates a single frontmatter key of a note. The value for a
// set is parsed as YAML, so lists, booleans and numbers survive the trip.
func (s *Service) Property(path string, op PropertyOp, key, value string) (string, error) {
	if !s.fm.Enabled() {
		return "", apperr.New(apperr.ErrInvalidInput, "Frontmatter support is disabled.")
	}
	abs, err := s.vault.ResolveNote(path)
	if err != nil {
		return "", err
	}
	if !isFile(abs) {
		return "", apperr.New(apperr.ErrNotFound, "Note not found at '%s'.", s.vault.Rel(abs))
	}
	content, err := s.readNote(abs)
	if err != nil {
		return "", err
	}
	meta, body, err := s.fm.Parse(content)
	if err != nil {
		return "", apperr.New(apperr.ErrInvalidInput, "Could not parse frontmatter in '%s': %v", s.vault.Rel(abs), err)
	}
	if meta == nil {
		meta = map[string]models.Value{}
	}

	switch op {
	case PropGet:
		val, ok := meta[key]
		if !ok {
			return jsonBlob(map[string]any{key: nil}), nil
		}
		return jsonBlob(map[string]models.Value{key: val}), nil

	case PropList:
		return jsonBlob(meta), nil

	case PropSet:
		var v models.Value
		if err := yaml.Unmarshal([]byte(value), &v); err != nil {
			return "", apperr.New(apperr.ErrInvalidInput, "Could not parse value: %v", err)
		}
		meta[key] = v
		rendered, err := s.fm.Render(meta, body)
		if err != nil {
			return "", apperr.New(apperr.ErrIO, "Could not render frontmatter: %v", err)
		}
		if err := s.vault.WriteFile(abs, []byte(rendered)); err != nil {
			return "", err
		}
		return jsonBlob(map[string]any{
			"status": "set",
			"path":   s.vault.Rel(abs),
			"key":    key,
		}), nil

	case PropRemove:
		delete(meta, key)
		rendered, err := s.fm.Render(meta, body)
		if err != nil {
			return "", apperr.New(apperr.ErrIO, "Could not render frontmatter: %v", err)
		}
		if err := s.vault.WriteFile(abs, []byte(rendered)); err != nil {
			return "", err
		}
		return jsonBlob(map[string]any{
			"status": "removed",
			"path":   s.vault.Rel(abs),
			"key":    key,
		}), nil

	default:
		return "", apperr.New(apperr.ErrInvalidInput, "Unknown property operation: '%s'", op)
	}
}
