package noteservice

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/toocheap/obsidian-cli-mcp/internal/apperr"
	"github.com/toocheap/obsidian-cli-mcp/internal/models"
	"github.com/toocheap/obsidian-cli-mcp/internal/parser"
	"github.com/toocheap/obsidian-cli-mcp/internal/vault"
)

// ListFolder renders the vault tree up to depth levels: directories before
// files, each level ordered case-insensitively, hidden entries excluded.
func (s *Service) ListFolder(folder string, depth int, format models.Format) (string, error) {
	base := s.vault.Root()
	if folder != "" {
		resolved, err := s.vault.Resolve(folder)
		if err != nil {
			return "", err
		}
		base = resolved
	}
	info, err := os.Stat(base)
	if err != nil || !info.IsDir() {
		return "", apperr.New(apperr.ErrNotFound, "Folder not found: '%s'", folder)
	}
	if depth < 1 || depth > MaxListDepth {
		depth = DefaultListDepth
	}

	tree := s.walkTree(base, 1, depth)

	root := folder
	if root == "" {
		root = "/"
	}
	if format == models.FormatJSON {
		return jsonBlob(map[string]any{"root": root, "items": tree}), nil
	}
	return fmt.Sprintf("# Vault Structure: %s\n", root) +
		strings.Join(renderTree(tree, 0), "\n"), nil
}

func (s *Service) walkTree(dir string, level, maxDepth int) []models.TreeNode {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	sort.SliceStable(entries, func(i, j int) bool {
		di, dj := entries[i].IsDir(), entries[j].IsDir()
		if di != dj {
			return di
		}
		return strings.ToLower(entries[i].Name()) < strings.ToLower(entries[j].Name())
	})

	var items []models.TreeNode
	for _, e := range entries {
		abs := filepath.Join(dir, e.Name())
		rel := s.vault.Rel(abs)
		if vault.IsHidden(rel) {
			continue
		}
		switch {
		case e.IsDir():
			var children []models.TreeNode
			if level < maxDepth {
				children = s.walkTree(abs, level+1, maxDepth)
			}
			items = append(items, models.TreeNode{
				Type: "folder", Name: e.Name(), Path: rel, Children: children,
			})
		case strings.HasSuffix(e.Name(), vault.NoteExt):
			items = append(items, models.TreeNode{
				Type: "note",
				Name: strings.TrimSuffix(e.Name(), vault.NoteExt),
				Path: rel,
			})
		}
	}
	return items
}

func renderTree(items []models.TreeNode, indent int) []string {
	var lines []string
	prefix := strings.Repeat("  ", indent)
	for _, item := range items {
		if item.Type == "folder" {
			lines = append(lines, fmt.Sprintf("%s📁 **%s/**", prefix, item.Name))
			lines = append(lines, renderTree(item.Children, indent+1)...)
		} else {
			lines = append(lines, fmt.Sprintf("%s📄 %s (`%s`)", prefix, item.Name, item.Path))
		}
	}
	return lines
}

// Tags aggregates tag occurrence counts across the vault, sorted by
// descending count then ascending name.
func (s *Service) Tags(folder string, format models.Format) (string, error) {
	notes, err := s.vault.ListNotes(folder)
	if err != nil {
		return "", err
	}
	counts := make(map[string]int)
	for _, abs := range notes {
		content, err := s.readNote(abs)
		if err != nil {
			continue
		}
		for _, tag := range parser.ExtractTags(content, s.parseMeta(content)) {
			counts[tag]++
		}
	}
	sorted := make([]models.TagCount, 0, len(counts))
	for tag, count := range counts {
		sorted = append(sorted, models.TagCount{Tag: tag, Count: count})
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Count != sorted[j].Count {
			return sorted[i].Count > sorted[j].Count
		}
		return sorted[i].Tag < sorted[j].Tag
	})

	if format == models.FormatJSON {
		return jsonBlob(map[string]any{"total_tags": len(sorted), "tags": sorted}), nil
	}
	if len(sorted) == 0 {
		return "No tags found in the vault.", nil
	}
	lines := []string{fmt.Sprintf("# Tags (%d found)\n", len(sorted))}
	for _, tc := range sorted {
		lines = append(lines, fmt.Sprintf("- #%s (%d notes)", tc.Tag, tc.Count))
	}
	return strings.Join(lines, "\n"), nil
}

// Backlinks finds every note whose wikilinks reference noteName,
// case-insensitively.
func (s *Service) Backlinks(noteName string, format models.Format) (string, error) {
	notes, err := s.vault.ListNotes("")
	if err != nil {
		return "", err
	}
	backlinks := []models.NoteMeta{}
	for _, abs := range notes {
		content, err := s.readNote(abs)
		if err != nil {
			continue
		}
		for _, link := range parser.ExtractWikilinks(content) {
			if strings.EqualFold(link, noteName) {
				meta, err := s.vault.Meta(abs, nil, false)
				if err == nil {
					backlinks = append(backlinks, meta)
				}
				break
			}
		}
	}

	if format == models.FormatJSON {
		return jsonBlob(map[string]any{
			"target":    noteName,
			"total":     len(backlinks),
			"backlinks": backlinks,
		}), nil
	}
	if len(backlinks) == 0 {
		return fmt.Sprintf("No backlinks found for '%s'.", noteName), nil
	}
	lines := []string{fmt.Sprintf("# Backlinks to '%s' (%d found)\n", noteName, len(backlinks))}
	for _, bl := range backlinks {
		lines = append(lines, fmt.Sprintf("- **%s** (`%s`)", bl.Name, bl.Path))
	}
	return strings.Join(lines, "\n"), nil
}

// VaultInfo reports the vault name, path, and aggregate note statistics.
func (s *Service) VaultInfo() (string, error) {
	notes, err := s.vault.ListNotes("")
	if err != nil {
		return "", err
	}
	var total int64
	for _, abs := range notes {
		if info, err := os.Stat(abs); err == nil {
			total += info.Size()
		}
	}
	return jsonBlob(map[string]any{
		"name":             s.vault.Name(),
		"path":             s.vault.Root(),
		"total_notes":      len(notes),
		"total_size_bytes": total,
	}), nil
}
