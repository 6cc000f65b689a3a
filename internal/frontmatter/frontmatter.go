// Package frontmatter parses and renders the delimited metadata block at
// the start of a note. The capability is modeled as an interface so the
// filesystem backend can run with frontmatter support switched off, the
// same way the original tooling degrades when no parser is installed.
package frontmatter

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/toocheap/obsidian-cli-mcp/internal/models"
)

const delim = "---"

// Parser splits a note into structured metadata and body, and reassembles
// it after property edits. Implementations are selected once at startup.
type Parser interface {
	// Parse returns the decoded metadata block and the remaining body.
	// A note without a block yields nil metadata and the full content;
	// a malformed block yields an error and the full content.
	Parse(content string) (map[string]models.Value, string, error)
	// Render reassembles a note from metadata and body.
	Render(meta map[string]models.Value, body string) (string, error)
	// Enabled reports whether structured parsing is available.
	Enabled() bool
}

// New returns the YAML parser, or the null parser when disabled.
func New(enabled bool) Parser {
	if enabled {
		return YAML{}
	}
	return Null{}
}

// YAML is the full structured-document implementation.
type YAML struct{}

func (YAML) Enabled() bool { return true }

func (YAML) Parse(content string) (map[string]models.Value, string, error) {
	if !strings.HasPrefix(content, delim) {
		return nil, content, nil
	}
	rest := content[len(delim):]
	if !strings.HasPrefix(rest, "\n") {
		return nil, content, nil
	}
	idx := strings.Index(rest, "\n"+delim)
	if idx < 0 {
		return nil, content, nil
	}
	block := rest[:idx]
	after := rest[idx+1+len(delim):]
	if after != "" && !strings.HasPrefix(after, "\n") {
		// Closing line is not a bare delimiter; treat as no block.
		return nil, content, nil
	}
	body := strings.TrimPrefix(after, "\n")

	var meta map[string]models.Value
	if err := yaml.Unmarshal([]byte(block), &meta); err != nil {
		return nil, content, fmt.Errorf("frontmatter: %w", err)
	}
	return meta, body, nil
}

func (YAML) Render(meta map[string]models.Value, body string) (string, error) {
	if len(meta) == 0 {
		return body, nil
	}
	block, err := yaml.Marshal(meta)
	if err != nil {
		return "", fmt.Errorf("frontmatter: %w", err)
	}
	return delim + "\n" + string(block) + delim + "\n" + body, nil
}

// Null is the absent-capability implementation: every note reports no
// frontmatter and rendering is refused.
type Null struct{}

func (Null) Enabled() bool { return false }

func (Null) Parse(content string) (map[string]models.Value, string, error) {
	return nil, content, nil
}

func (Null) Render(map[string]models.Value, string) (string, error) {
	return "", fmt.Errorf("frontmatter support is disabled")
}
