package clibridge

import (
	"context"
	"strconv"
	"strings"
)

// DailyRead returns the contents of today's daily note, creating it first
// when the CLI is configured to do so.
func (r *Runner) DailyRead(ctx context.Context, vault string) (string, error) {
	return r.Run(ctx, vault, "daily:read")
}

// DailyAppend appends content to today's daily note. inline suppresses the
// leading newline the CLI inserts by default.
func (r *Runner) DailyAppend(ctx context.Context, vault, content string, inline bool) (string, error) {
	args := []string{"daily:append", "content=" + content, "silent"}
	if inline {
		args = append(args, "inline")
	}
	out, err := r.Run(ctx, vault, args...)
	if err != nil {
		return "", err
	}
	if out == "" {
		return "Content appended to daily note.", nil
	}
	return out, nil
}

// TaskFilter narrows a task listing.
type TaskFilter struct {
	File     string
	Todo     bool
	Done     bool
	Daily    bool
	AllVault bool
}

// TasksList lists tasks, optionally filtered by file, daily note scope, or
// completion status.
func (r *Runner) TasksList(ctx context.Context, vault string, f TaskFilter) (string, error) {
	args := []string{"tasks"}
	if f.File != "" {
		args = append(args, "file="+f.File)
	}
	if f.AllVault {
		args = append(args, "all")
	}
	if f.Daily {
		args = append(args, "daily")
	}
	if f.Todo {
		args = append(args, "todo")
	}
	if f.Done {
		args = append(args, "done")
	}
	args = append(args, "verbose")
	return r.Run(ctx, vault, args...)
}

// TaskToggle flips the task referenced as "path:line".
func (r *Runner) TaskToggle(ctx context.Context, vault, ref string) (string, error) {
	return r.Run(ctx, vault, "task", "ref="+ref, "toggle")
}

// Search runs a vault text search. limit of zero means CLI default.
func (r *Runner) Search(ctx context.Context, vault, query, path string, limit int, matches bool) (string, error) {
	args := []string{"search", "query=" + query}
	if path != "" {
		args = append(args, "path="+path)
	}
	if limit > 0 {
		args = append(args, "limit="+strconv.Itoa(limit))
	}
	if matches {
		args = append(args, "matches")
	}
	return r.Run(ctx, vault, args...)
}

// TagsList lists every tag with occurrence counts.
func (r *Runner) TagsList(ctx context.Context, vault string) (string, error) {
	return r.Run(ctx, vault, "tags", "all", "counts")
}

// TagInfo reports the files using a tag. A leading # on the name is
// accepted and stripped.
func (r *Runner) TagInfo(ctx context.Context, vault, name string) (string, error) {
	return r.Run(ctx, vault, "tag", "name="+strings.TrimLeft(name, "#"), "verbose")
}

// VaultInfo shows vault name, path, and size statistics.
func (r *Runner) VaultInfo(ctx context.Context, vault string) (string, error) {
	return r.Run(ctx, vault, "vault")
}
