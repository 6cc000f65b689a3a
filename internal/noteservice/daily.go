package noteservice

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/toocheap/obsidian-cli-mcp/internal/apperr"
	"github.com/toocheap/obsidian-cli-mcp/internal/vault"
)

const dateLayout = "2006-01-02"

// DailyNote creates (or reports) the daily note for date. An empty date
// means today. folder overrides the configured daily folder, and template
// names a vault note whose body seeds the new file with {{date}} and
// {{title}} placeholders substituted.
func (s *Service) DailyNote(date, folder, template string) (string, error) {
	dt, err := s.resolveDate(date)
	if err != nil {
		return "", err
	}
	day := dt.Format(dateLayout)

	if folder == "" {
		folder = s.dailyFolder
	}
	rel := day + vault.NoteExt
	if folder != "" {
		rel = folder + "/" + rel
	}
	abs, err := s.vault.Resolve(rel)
	if err != nil {
		return "", err
	}

	if isFile(abs) {
		content, err := s.readNote(abs)
		if err != nil {
			return "", err
		}
		return jsonBlob(map[string]any{
			"status":  "already_exists",
			"path":    s.vault.Rel(abs),
			"content": content,
		}), nil
	}

	title := day + " " + dt.Weekday().String()
	content := fmt.Sprintf("# %s\n\n", title)
	if template != "" {
		tmplAbs, err := s.vault.ResolveNote(template)
		if err != nil {
			return "", err
		}
		if isFile(tmplAbs) {
			if body, err := s.readNote(tmplAbs); err == nil {
				content = strings.NewReplacer(
					"{{date}}", day,
					"{{title}}", title,
				).Replace(body)
			}
		}
	}

	if err := s.vault.WriteFile(abs, []byte(content)); err != nil {
		return "", err
	}
	return jsonBlob(map[string]any{
		"status":  "created",
		"path":    s.vault.Rel(abs),
		"content": content,
	}), nil
}

// DailyRead returns today's daily note, creating it first when missing.
// The result is the same status/path/content document DailyNote produces.
func (s *Service) DailyRead(date, folder string) (string, error) {
	return s.DailyNote(date, folder, "")
}

// DailyAppend appends content to today's daily note, creating it first when
// necessary.
func (s *Service) DailyAppend(date, folder, content string) (string, error) {
	out, err := s.DailyNote(date, folder, "")
	if err != nil {
		return "", err
	}
	var created struct {
		Path string `json:"path"`
	}
	if err := json.Unmarshal([]byte(out), &created); err != nil {
		return "", apperr.New(apperr.ErrIO, "daily note result: %v", err)
	}
	return s.Edit(created.Path, EditAppend, content, "")
}

func (s *Service) resolveDate(date string) (time.Time, error) {
	if date == "" {
		return s.now(), nil
	}
	dt, err := time.Parse(dateLayout, date)
	if err != nil {
		return time.Time{}, apperr.New(apperr.ErrInvalidInput, "Invalid date format. Use YYYY-MM-DD.")
	}
	return dt, nil
}
