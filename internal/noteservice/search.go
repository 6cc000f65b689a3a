package noteservice

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/toocheap/obsidian-cli-mcp/internal/models"
)

// SearchParams are the validated inputs of the search operation.
type SearchParams struct {
	Query  string
	Type   SearchType
	Folder string
	Limit  int
	Format models.Format
}

const contextWindow = 50 // chars of context on each side of a match

// Search scans the vault for notes matching the query by filename,
// content, or both. Limit is a hard cap; unreadable notes are skipped.
func (s *Service) Search(p SearchParams) (string, error) {
	notes, err := s.vault.ListNotes(p.Folder)
	if err != nil {
		return "", err
	}
	if p.Limit < 1 || p.Limit > MaxSearchResults {
		p.Limit = DefaultSearchLimit
	}
	query := strings.ToLower(p.Query)

	results := []models.SearchResult{}
	for _, abs := range notes {
		if len(results) >= p.Limit {
			break
		}
		matched := false
		matchContext := ""
		if p.Type == SearchFilename || p.Type == SearchBoth {
			stem := strings.TrimSuffix(filepath.Base(abs), filepath.Ext(abs))
			if strings.Contains(strings.ToLower(stem), query) {
				matched = true
			}
		}
		if (p.Type == SearchContent || p.Type == SearchBoth) && !matched {
			data, err := os.ReadFile(abs)
			if err != nil {
				continue
			}
			content := string(data)
			if idx := strings.Index(strings.ToLower(content), query); idx >= 0 {
				matched = true
				matchContext = contextAround(content, idx, len(query))
			}
		}
		if matched {
			meta, err := s.vault.Meta(abs, s.fm, true)
			if err != nil {
				continue
			}
			results = append(results, models.SearchResult{NoteMeta: meta, MatchContext: matchContext})
		}
	}

	if p.Format == models.FormatJSON {
		return jsonBlob(map[string]any{
			"total":   len(results),
			"query":   p.Query,
			"results": results,
		}), nil
	}
	if len(results) == 0 {
		return fmt.Sprintf("No results found for '%s'.", p.Query), nil
	}
	lines := []string{fmt.Sprintf("# Search Results for '%s' (%d found)\n", p.Query, len(results))}
	for _, r := range results {
		line := fmt.Sprintf("- **%s** (`%s`)", r.Name, r.Path)
		if r.MatchContext != "" {
			line += fmt.Sprintf("\n  > ...%s...", r.MatchContext)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n"), nil
}

// contextAround extracts a fixed-width window around a match offset,
// flattening newlines to spaces.
func contextAround(content string, idx, matchLen int) string {
	start := idx - contextWindow
	if start < 0 {
		start = 0
	}
	end := idx + matchLen + contextWindow
	if end > len(content) {
		end = len(content)
	}
	return strings.TrimSpace(strings.ReplaceAll(content[start:end], "\n", " "))
}
