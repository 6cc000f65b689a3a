// Package testutil provides shared test helpers for setting up vaults and services.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/toocheap/obsidian-cli-mcp/internal/frontmatter"
	"github.com/toocheap/obsidian-cli-mcp/internal/noteservice"
	"github.com/toocheap/obsidian-cli-mcp/internal/vault"
)

// TestVault creates a temporary vault directory and opens it.
func TestVault(t *testing.T) (string, *vault.Vault) {
	t.Helper()
	dir := t.TempDir()
	v, err := vault.New(dir)
	if err != nil {
		t.Fatal(err)
	}
	return dir, v
}

// TestService creates a Service over a fresh temporary vault with
// frontmatter enabled.
func TestService(t *testing.T, opts ...noteservice.Option) (string, *noteservice.Service) {
	t.Helper()
	dir, v := TestVault(t)
	return dir, noteservice.New(v, frontmatter.New(true), opts...)
}

// WriteNote writes a note file under dir, creating parent folders.
func WriteNote(t *testing.T, dir, rel, content string) {
	t.Helper()
	abs := filepath.Join(dir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(abs, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
