package parser

import "regexp"

var taskRe = regexp.MustCompile(`^(\s*)-\s\[(.)\]\s+(.*)$`)

// Task is a checkbox list item: indentation, the single status character
// between the brackets, and the trailing text.
type Task struct {
	Indent string
	Status string
	Text   string
}

// ParseTask matches a single line against the task pattern. The anchor is
// exact: extra leading markers (a nested blockquote, say) are not tasks.
func ParseTask(line string) (Task, bool) {
	m := taskRe.FindStringSubmatch(line)
	if m == nil {
		return Task{}, false
	}
	return Task{Indent: m[1], Status: m[2], Text: m[3]}, true
}

// Done reports completion: any status other than a space counts as done.
func (t Task) Done() bool { return t.Status != " " }

// Toggle flips the status, normalizing toggled-to-complete to "x".
func (t Task) Toggle() Task {
	if t.Done() {
		t.Status = " "
	} else {
		t.Status = "x"
	}
	return t
}

// Render reassembles the line, preserving indent and text verbatim.
func (t Task) Render() string {
	return t.Indent + "- [" + t.Status + "] " + t.Text
}
