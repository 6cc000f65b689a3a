package vault

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/toocheap/obsidian-cli-mcp/internal/apperr"
)

func newTestVault(t *testing.T) (*Vault, string) {
	t.Helper()
	dir := t.TempDir()
	v, err := New(dir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return v, v.Root()
}

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	abs := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(abs, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestNewMissingDir(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "nope"))
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("err = %v, want NotFound", err)
	}
}

func TestNewEmptyPath(t *testing.T) {
	_, err := New("")
	if !errors.Is(err, apperr.ErrInvalidInput) {
		t.Errorf("err = %v, want InvalidInput", err)
	}
}

func TestResolveTraversal(t *testing.T) {
	v, _ := newTestVault(t)
	for _, rel := range []string{"../outside.md", "a/../../outside.md", "../../etc/passwd"} {
		if _, err := v.Resolve(rel); !errors.Is(err, apperr.ErrTraversal) {
			t.Errorf("Resolve(%q) err = %v, want PathTraversal", rel, err)
		}
	}
}

func TestResolveTraversalNonExistentTarget(t *testing.T) {
	// Escaping paths are rejected whether or not the target exists.
	v, _ := newTestVault(t)
	if _, err := v.Resolve("../no/such/file.md"); !errors.Is(err, apperr.ErrTraversal) {
		t.Errorf("err = %v, want PathTraversal", err)
	}
}

func TestResolveAbsolute(t *testing.T) {
	v, _ := newTestVault(t)
	if _, err := v.Resolve("/etc/passwd"); !errors.Is(err, apperr.ErrTraversal) {
		t.Errorf("err = %v, want PathTraversal", err)
	}
}

func TestResolveNonExistentInsideVault(t *testing.T) {
	v, root := newTestVault(t)
	abs, err := v.Resolve("new/folder/note.md")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	want := filepath.Join(root, "new", "folder", "note.md")
	if abs != want {
		t.Errorf("abs = %q, want %q", abs, want)
	}
}

func TestResolveSymlinkEscape(t *testing.T) {
	v, root := newTestVault(t)
	outside := t.TempDir()
	link := filepath.Join(root, "escape")
	if err := os.Symlink(outside, link); err != nil {
		t.Skipf("symlink: %v", err)
	}
	if _, err := v.Resolve("escape/note.md"); !errors.Is(err, apperr.ErrTraversal) {
		t.Errorf("err = %v, want PathTraversal", err)
	}
}

func TestResolveNoteAppendsExtension(t *testing.T) {
	v, root := newTestVault(t)
	abs, err := v.ResolveNote("folder/note")
	if err != nil {
		t.Fatalf("ResolveNote: %v", err)
	}
	if abs != filepath.Join(root, "folder", "note.md") {
		t.Errorf("abs = %q", abs)
	}

	abs, err = v.ResolveNote("folder/note.md")
	if err != nil {
		t.Fatalf("ResolveNote: %v", err)
	}
	if abs != filepath.Join(root, "folder", "note.md") {
		t.Errorf("abs = %q", abs)
	}
}

func TestIsHidden(t *testing.T) {
	cases := map[string]bool{
		"note.md":                false,
		"folder/note.md":         false,
		".obsidian/settings":     true,
		"folder/.hidden.md":      true,
		".trash/old/note.md":     true,
		"folder/sub/.git/config": true,
	}
	for rel, want := range cases {
		if got := IsHidden(rel); got != want {
			t.Errorf("IsHidden(%q) = %v, want %v", rel, got, want)
		}
	}
}

func TestListNotesOrderAndFiltering(t *testing.T) {
	v, root := newTestVault(t)
	writeFile(t, root, "b.md", "")
	writeFile(t, root, "a.md", "")
	writeFile(t, root, "sub/c.md", "")
	writeFile(t, root, "sub/readme.txt", "not a note")
	writeFile(t, root, ".obsidian/cache.md", "hidden")
	writeFile(t, root, "sub/.hidden.md", "hidden")

	notes, err := v.ListNotes("")
	if err != nil {
		t.Fatalf("ListNotes: %v", err)
	}
	var rels []string
	for _, n := range notes {
		rels = append(rels, v.Rel(n))
	}
	want := []string{"a.md", "b.md", "sub/c.md"}
	if len(rels) != len(want) {
		t.Fatalf("rels = %v, want %v", rels, want)
	}
	for i := range want {
		if rels[i] != want[i] {
			t.Errorf("rels[%d] = %q, want %q", i, rels[i], want[i])
		}
	}
}

func TestListNotesScopedFolder(t *testing.T) {
	v, root := newTestVault(t)
	writeFile(t, root, "top.md", "")
	writeFile(t, root, "sub/inner.md", "")

	notes, err := v.ListNotes("sub")
	if err != nil {
		t.Fatalf("ListNotes: %v", err)
	}
	if len(notes) != 1 || v.Rel(notes[0]) != "sub/inner.md" {
		t.Errorf("notes = %v", notes)
	}
}

func TestListNotesMissingFolder(t *testing.T) {
	v, _ := newTestVault(t)
	_, err := v.ListNotes("nope")
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("err = %v, want NotFound", err)
	}
}

func TestWriteFileAtomic(t *testing.T) {
	v, root := newTestVault(t)
	abs := filepath.Join(root, "deep", "nested", "note.md")
	if err := v.WriteFile(abs, []byte("hello")); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "hello" {
		t.Errorf("content = %q", data)
	}

	// Overwrite leaves no temp files behind.
	if err := v.WriteFile(abs, []byte("updated")); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	entries, err := os.ReadDir(filepath.Dir(abs))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("dir entries = %d, want 1", len(entries))
	}
}

func TestMetaBasics(t *testing.T) {
	v, root := newTestVault(t)
	writeFile(t, root, "folder/note.md", "body")

	meta, err := v.Meta(filepath.Join(root, "folder", "note.md"), nil, false)
	if err != nil {
		t.Fatalf("Meta: %v", err)
	}
	if meta.Path != "folder/note.md" {
		t.Errorf("path = %q", meta.Path)
	}
	if meta.Name != "note" {
		t.Errorf("name = %q", meta.Name)
	}
	if meta.Folder != "folder" {
		t.Errorf("folder = %q", meta.Folder)
	}
	if meta.SizeBytes != 4 {
		t.Errorf("size = %d", meta.SizeBytes)
	}
	if meta.Modified == "" || meta.Created == "" {
		t.Error("timestamps missing")
	}
}

func TestMetaRootFolderEmpty(t *testing.T) {
	v, root := newTestVault(t)
	writeFile(t, root, "note.md", "x")
	meta, err := v.Meta(filepath.Join(root, "note.md"), nil, false)
	if err != nil {
		t.Fatalf("Meta: %v", err)
	}
	if meta.Folder != "" {
		t.Errorf("folder = %q, want empty", meta.Folder)
	}
}
