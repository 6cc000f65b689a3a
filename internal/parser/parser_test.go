package parser

import (
	"reflect"
	"testing"

	"github.com/toocheap/obsidian-cli-mcp/internal/models"
)

func TestExtractTagsInline(t *testing.T) {
	got := ExtractTags("Some text with #project and #work/urgent tags", nil)
	want := []string{"project", "work/urgent"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("tags = %v, want %v", got, want)
	}
}

func TestExtractTagsAtStartOfContent(t *testing.T) {
	got := ExtractTags("#tag1 #tag2", nil)
	want := []string{"tag1", "tag2"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("tags = %v, want %v", got, want)
	}
}

func TestExtractTagsHeadingIsNotATag(t *testing.T) {
	got := ExtractTags("# Heading\n\ntext", nil)
	if len(got) != 0 {
		t.Errorf("tags = %v, want none", got)
	}
}

func TestExtractTagsSkipsCode(t *testing.T) {
	content := "real #tag here\n```\n#fenced\n```\nand `#inline` too"
	got := ExtractTags(content, nil)
	want := []string{"tag"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("tags = %v, want %v", got, want)
	}
}

func TestExtractTagsIdempotent(t *testing.T) {
	content := "#b #a #b"
	first := ExtractTags(StripCode(content), nil)
	second := ExtractTags(StripCode(content), nil)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("runs differ: %v vs %v", first, second)
	}
	if !reflect.DeepEqual(first, []string{"a", "b"}) {
		t.Errorf("tags = %v", first)
	}
}

func TestExtractTagsFromFrontmatterList(t *testing.T) {
	meta := map[string]models.Value{
		"tags": {Kind: models.KindList, List: []models.Value{
			{Kind: models.KindString, Str: "alpha"},
			{Kind: models.KindString, Str: "beta"},
		}},
	}
	got := ExtractTags("body", meta)
	want := []string{"alpha", "beta"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("tags = %v, want %v", got, want)
	}
}

func TestExtractTagsFromFrontmatterString(t *testing.T) {
	meta := map[string]models.Value{
		"tags": {Kind: models.KindString, Str: "alpha, beta"},
	}
	got := ExtractTags("body", meta)
	want := []string{"alpha", "beta"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("tags = %v, want %v", got, want)
	}
}

func TestExtractTagsLinePatternFallback(t *testing.T) {
	content := "---\ntags: [one, two]\n---\nbody"
	got := ExtractTags(content, nil)
	want := []string{"one", "two"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("tags = %v, want %v", got, want)
	}
}

func TestExtractWikilinks(t *testing.T) {
	got := ExtractWikilinks("[[A]] and [[A|alias]] and [[B]]")
	want := []string{"A", "B"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("links = %v, want %v", got, want)
	}
}

func TestExtractWikilinksEmpty(t *testing.T) {
	if got := ExtractWikilinks("no links here"); len(got) != 0 {
		t.Errorf("links = %v, want none", got)
	}
}

func TestParseTask(t *testing.T) {
	task, ok := ParseTask("  - [ ] buy milk")
	if !ok {
		t.Fatal("not parsed")
	}
	if task.Indent != "  " || task.Status != " " || task.Text != "buy milk" {
		t.Errorf("task = %+v", task)
	}
	if task.Done() {
		t.Error("space status should be incomplete")
	}
}

func TestParseTaskNonTasks(t *testing.T) {
	for _, line := range []string{"- not a task", "plain text", "* [ ] wrong bullet", "- [] missing status"} {
		if _, ok := ParseTask(line); ok {
			t.Errorf("ParseTask(%q) matched", line)
		}
	}
}

func TestTaskToggleInvolution(t *testing.T) {
	for _, line := range []string{"- [ ] open", "- [x] closed", "\t- [X] upper"} {
		task, ok := ParseTask(line)
		if !ok {
			t.Fatalf("ParseTask(%q) failed", line)
		}
		back := task.Toggle().Toggle()
		if back.Done() != task.Done() || back.Text != task.Text {
			t.Errorf("double toggle of %q changed state: %+v", line, back)
		}
	}
}

func TestTaskToggleNormalizesToX(t *testing.T) {
	task, _ := ParseTask("- [ ] item")
	toggled := task.Toggle()
	if toggled.Status != "x" {
		t.Errorf("status = %q, want x", toggled.Status)
	}
	if toggled.Render() != "- [x] item" {
		t.Errorf("render = %q", toggled.Render())
	}
}

func TestTaskAnyNonSpaceIsDone(t *testing.T) {
	task, _ := ParseTask("- [/] in progress")
	if !task.Done() {
		t.Error("non-space status should count as done")
	}
	if task.Toggle().Status != " " {
		t.Error("toggling done should clear status")
	}
}
