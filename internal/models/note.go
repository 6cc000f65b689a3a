// Package models defines the domain types shared by the vault backends.
package models

// Format selects the rendering of a tool response. The JSON form is the
// canonical one; markdown is a deterministic projection of the same fields.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
)

// NoteMeta describes a note without its content: vault-relative path,
// filename stem, parent folder ("" for the vault root), size, and
// timestamps in UTC ISO-8601.
//
// Created is the birth time on platforms that track it (macOS) and the
// inode change time elsewhere (Linux); see the vault package.
type NoteMeta struct {
	Path        string           `json:"path"`
	Name        string           `json:"name"`
	Folder      string           `json:"folder"`
	SizeBytes   int64            `json:"size_bytes"`
	Modified    string           `json:"modified"`
	Created     string           `json:"created"`
	Frontmatter map[string]Value `json:"frontmatter,omitempty"`
}

// SearchResult is a note match with optional content context.
type SearchResult struct {
	NoteMeta
	MatchContext string `json:"match_context"`
}

// ReadResult is the full representation returned by the read operation.
type ReadResult struct {
	NoteMeta
	Content   string   `json:"content"`
	Tags      []string `json:"tags"`
	Wikilinks []string `json:"wikilinks"`
	WordCount int      `json:"word_count"`
	CharCount int      `json:"char_count"`
}

// TreeNode is one entry in a folder listing. Type is "folder" or "note";
// folders carry their children up to the requested depth.
type TreeNode struct {
	Type     string     `json:"type"`
	Name     string     `json:"name"`
	Path     string     `json:"path"`
	Children []TreeNode `json:"children,omitempty"`
}

// TagCount is one aggregated tag with its occurrence count.
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}
