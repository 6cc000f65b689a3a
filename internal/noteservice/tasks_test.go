package noteservice

import (
	"errors"
	"strings"
	"testing"

	"github.com/toocheap/obsidian-cli-mcp/internal/apperr"
)

const taskFixture = `# Tasks

- [ ] first open
- [x] first done
  - [ ] nested open
regular line
- [X] upper done
- [ ] last open
`

func TestTasksListAll(t *testing.T) {
	svc, root := newTestService(t)
	seedNote(t, root, "todo.md", taskFixture)

	out, err := svc.TasksList("", false, false)
	if err != nil {
		t.Fatalf("TasksList: %v", err)
	}
	if !strings.HasPrefix(out, "# Tasks (5 tasks found)") {
		t.Errorf("header: %q", out)
	}
	if !strings.Contains(out, "- [ ] first open (todo.md:3)") {
		t.Errorf("line refs wrong: %q", out)
	}
	if !strings.Contains(out, "- [ ] nested open (todo.md:5)") {
		t.Errorf("nested task missing: %q", out)
	}
}

func TestTasksListFilters(t *testing.T) {
	svc, root := newTestService(t)
	seedNote(t, root, "todo.md", taskFixture)

	out, err := svc.TasksList("", true, false)
	if err != nil {
		t.Fatalf("todo filter: %v", err)
	}
	if strings.Contains(out, "[x]") || strings.Contains(out, "[X]") {
		t.Errorf("todo filter leaked done tasks: %q", out)
	}
	if !strings.HasPrefix(out, "# Tasks (3 tasks found)") {
		t.Errorf("todo count: %q", out)
	}

	out, err = svc.TasksList("", false, true)
	if err != nil {
		t.Fatalf("done filter: %v", err)
	}
	if strings.Contains(out, "- [ ]") {
		t.Errorf("done filter leaked open tasks: %q", out)
	}
	if !strings.HasPrefix(out, "# Tasks (2 tasks found)") {
		t.Errorf("done count: %q", out)
	}

	// Both flags include both categories.
	out, err = svc.TasksList("", true, true)
	if err != nil {
		t.Fatalf("both filters: %v", err)
	}
	if !strings.HasPrefix(out, "# Tasks (5 tasks found)") {
		t.Errorf("both-flags count: %q", out)
	}
}

func TestTasksListEmpty(t *testing.T) {
	svc, root := newTestService(t)
	seedNote(t, root, "plain.md", "no tasks here")

	out, err := svc.TasksList("", false, false)
	if err != nil {
		t.Fatalf("TasksList: %v", err)
	}
	if out != "No tasks found." {
		t.Errorf("out = %q", out)
	}
}

func TestTaskToggle(t *testing.T) {
	svc, root := newTestService(t)
	seedNote(t, root, "todo.md", "- [ ] item\n")

	out, err := svc.TaskToggle("todo.md", 1)
	if err != nil {
		t.Fatalf("TaskToggle: %v", err)
	}
	if out != "Toggled task at todo.md:1 to [x]" {
		t.Errorf("out = %q", out)
	}
	if got := readFile(t, root, "todo.md"); got != "- [x] item\n" {
		t.Errorf("file = %q", got)
	}
}

func TestTaskToggleInvolution(t *testing.T) {
	svc, root := newTestService(t)
	original := "intro\n- [ ] alpha\n- [x] beta\n"
	seedNote(t, root, "todo.md", original)

	if _, err := svc.TaskToggle("todo.md", 2); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.TaskToggle("todo.md", 2); err != nil {
		t.Fatal(err)
	}
	if got := readFile(t, root, "todo.md"); got != original {
		t.Errorf("double toggle changed file: %q", got)
	}
}

func TestTaskTogglePreservesMissingTrailingNewline(t *testing.T) {
	svc, root := newTestService(t)
	seedNote(t, root, "todo.md", "- [ ] only")

	if _, err := svc.TaskToggle("todo.md", 1); err != nil {
		t.Fatal(err)
	}
	if got := readFile(t, root, "todo.md"); got != "- [x] only" {
		t.Errorf("file = %q", got)
	}
}

func TestTaskToggleLineOutOfRange(t *testing.T) {
	svc, root := newTestService(t)
	seedNote(t, root, "todo.md", "- [ ] item\n")

	_, err := svc.TaskToggle("todo.md", 5)
	if !errors.Is(err, apperr.ErrInvalidInput) {
		t.Fatalf("err = %v, want InvalidInput", err)
	}
	if err.Error() != "Line 5 exceeds file length (1 lines)." {
		t.Errorf("message = %q", err.Error())
	}
}

func TestTaskToggleNonTaskLine(t *testing.T) {
	svc, root := newTestService(t)
	seedNote(t, root, "todo.md", "just text\n- [ ] item\n")

	_, err := svc.TaskToggle("todo.md", 1)
	if !errors.Is(err, apperr.ErrInvalidInput) {
		t.Fatalf("err = %v, want InvalidInput", err)
	}
	if !strings.Contains(err.Error(), "is not a task") {
		t.Errorf("message = %q", err.Error())
	}
}

func TestTaskToggleMissingNote(t *testing.T) {
	svc, _ := newTestService(t)
	if _, err := svc.TaskToggle("nope.md", 1); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("err = %v, want NotFound", err)
	}
}
