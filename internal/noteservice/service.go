// Package noteservice implements the filesystem-backend operations. Every
// method re-reads the vault from disk; no state is carried between calls.
// Failures come back as apperr values that the MCP layer renders as
// "Error: ..." text results.
package noteservice

import (
	"encoding/json"
	"os"
	"time"

	"github.com/toocheap/obsidian-cli-mcp/internal/apperr"
	"github.com/toocheap/obsidian-cli-mcp/internal/frontmatter"
	"github.com/toocheap/obsidian-cli-mcp/internal/models"
	"github.com/toocheap/obsidian-cli-mcp/internal/vault"
)

// Search limits enforced at the tool schema and re-checked here.
const (
	DefaultSearchLimit = 20
	MaxSearchResults   = 100
	DefaultListDepth   = 2
	MaxListDepth       = 5
)

// SearchType selects what a query is matched against.
type SearchType string

const (
	SearchFilename SearchType = "filename"
	SearchContent  SearchType = "content"
	SearchBoth     SearchType = "both"
)

// Service coordinates the vault, the extractors, and the frontmatter
// capability. One instance is built at startup and shared by all calls.
type Service struct {
	vault       *vault.Vault
	fm          frontmatter.Parser
	dailyFolder string
	now         func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithDailyFolder sets the default folder for daily notes.
func WithDailyFolder(folder string) Option {
	return func(s *Service) { s.dailyFolder = folder }
}

// WithClock overrides the clock; used by tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// New creates a Service over the given vault.
func New(v *vault.Vault, fm frontmatter.Parser, opts ...Option) *Service {
	s := &Service{vault: v, fm: fm, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Vault exposes the underlying vault, mainly for tests.
func (s *Service) Vault() *vault.Vault { return s.vault }

// readNote reads a note's full text.
func (s *Service) readNote(abs string) (string, error) {
	data, err := os.ReadFile(abs)
	if err != nil {
		return "", apperr.New(apperr.ErrIO, "Could not read note: %v", err)
	}
	return string(data), nil
}

// parseMeta returns the structured frontmatter of content, or nil when the
// block is absent, malformed, or the capability is disabled.
func (s *Service) parseMeta(content string) map[string]models.Value {
	meta, _, err := s.fm.Parse(content)
	if err != nil {
		return nil
	}
	return meta
}

func isFile(abs string) bool {
	info, err := os.Stat(abs)
	return err == nil && !info.IsDir()
}

func exists(abs string) bool {
	_, err := os.Stat(abs)
	return err == nil
}

func jsonBlob(v any) string {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return `{"error": "encode failure"}`
	}
	return string(out)
}
