package noteservice

import (
	"fmt"
	"strings"

	"github.com/toocheap/obsidian-cli-mcp/internal/apperr"
	"github.com/toocheap/obsidian-cli-mcp/internal/parser"
)

// TasksList scans every note in scope for checkbox lines. The todo and done
// flags each include a category; setting both (or neither) shows everything.
func (s *Service) TasksList(folder string, todo, done bool) (string, error) {
	notes, err := s.vault.ListNotes(folder)
	if err != nil {
		return "", err
	}
	var lines []string
	for _, abs := range notes {
		content, err := s.readNote(abs)
		if err != nil {
			continue
		}
		rel := s.vault.Rel(abs)
		for i, line := range splitLines(content) {
			task, ok := parser.ParseTask(line)
			if !ok {
				continue
			}
			if (todo || done) && !(todo && !task.Done() || done && task.Done()) {
				continue
			}
			lines = append(lines, fmt.Sprintf("- [%s] %s (%s:%d)", task.Status, task.Text, rel, i+1))
		}
	}
	if len(lines) == 0 {
		return "No tasks found.", nil
	}
	return fmt.Sprintf("# Tasks (%d tasks found)\n", len(lines)) +
		strings.Join(lines, "\n"), nil
}

// TaskToggle flips the checkbox on a 1-indexed line of a note and rewrites
// the file, keeping the original trailing newline intact so toggling twice
// restores the file byte for byte.
func (s *Service) TaskToggle(path string, line int) (string, error) {
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
	lines := splitLines(content)
	if line < 1 || line > len(lines) {
		return "", apperr.New(apperr.ErrInvalidInput, "Line %d exceeds file length (%d lines).", line, len(lines))
	}
	task, ok := parser.ParseTask(lines[line-1])
	if !ok {
		return "", apperr.New(apperr.ErrInvalidInput, "Line %d in %s is not a task.", line, s.vault.Rel(abs))
	}
	task = task.Toggle()
	lines[line-1] = task.Render()

	rewritten := strings.Join(lines, "\n")
	if strings.HasSuffix(content, "\n") {
		rewritten += "\n"
	}
	if err := s.vault.WriteFile(abs, []byte(rewritten)); err != nil {
		return "", err
	}
	return fmt.Sprintf("Toggled task at %s:%d to [%s]", s.vault.Rel(abs), line, task.Status), nil
}

// splitLines splits on newlines with at most one trailing newline trimmed
// first, so line numbering matches what an editor shows.
func splitLines(content string) []string {
	return strings.Split(strings.TrimSuffix(content, "\n"), "\n")
}
