package vault

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/toocheap/obsidian-cli-mcp/internal/apperr"
	"github.com/toocheap/obsidian-cli-mcp/internal/frontmatter"
	"github.com/toocheap/obsidian-cli-mcp/internal/models"
)

// Meta builds the descriptor for a note. When includeFrontmatter is set the
// leading metadata block is parsed with fm; a corrupt block yields an empty
// mapping, never an error — frontmatter damage must not break metadata
// retrieval.
func (v *Vault) Meta(abs string, fm frontmatter.Parser, includeFrontmatter bool) (models.NoteMeta, error) {
	info, err := os.Stat(abs)
	if err != nil {
		return models.NoteMeta{}, apperr.New(apperr.ErrIO, "stat '%s': %v", v.Rel(abs), err)
	}
	rel := v.Rel(abs)
	folder := filepath.ToSlash(filepath.Dir(rel))
	if folder == "." {
		folder = ""
	}
	name := strings.TrimSuffix(filepath.Base(abs), filepath.Ext(abs))
	meta := models.NoteMeta{
		Path:      rel,
		Name:      name,
		Folder:    folder,
		SizeBytes: info.Size(),
		Modified:  info.ModTime().UTC().Format(time.RFC3339),
		Created:   createdTime(info).UTC().Format(time.RFC3339),
	}
	if includeFrontmatter && fm != nil {
		data, err := os.ReadFile(abs)
		if err == nil {
			if parsed, _, perr := fm.Parse(string(data)); perr == nil && parsed != nil {
				meta.Frontmatter = parsed
			} else {
				meta.Frontmatter = map[string]models.Value{}
			}
		}
	}
	return meta, nil
}
