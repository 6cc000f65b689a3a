// Package parser extracts tags, wikilinks, and task lines from Markdown
// content. Patterns are compiled once and shared as immutable constants.
package parser

import (
	"regexp"
	"sort"
	"strings"

	"github.com/toocheap/obsidian-cli-mcp/internal/models"
)

var (
	wikilinkRe = regexp.MustCompile(`\[\[([^\]|]+)(?:\|[^\]]+)?\]\]`)
	tagRe      = regexp.MustCompile(`(?:^|\s)#([a-zA-Z0-9_/-]+)`)
	fmTagsRe   = regexp.MustCompile(`(?m)^tags:[ \t]*\[?(.*?)\]?[ \t]*$`)
	tagSplitRe = regexp.MustCompile(`[,\s]+`)
	fencedRe   = regexp.MustCompile("(?s)```.*?```")
	inlineRe   = regexp.MustCompile("`[^`]+`")
)

// StripCode removes fenced code blocks and inline code spans. Fenced blocks
// go first so inline spans cannot mis-parse fence markers.
func StripCode(content string) string {
	content = fencedRe.ReplaceAllString(content, "")
	return inlineRe.ReplaceAllString(content, "")
}

// ExtractTags collects the canonical tag set of a note: inline #tags from
// the code-stripped content, tags declared in the parsed frontmatter, and a
// line-pattern fallback over the raw content for when no structured parse
// is available. The union is deduplicated and sorted.
//
// The inline pattern requires the # to open the text or follow whitespace,
// so headings ("# Heading") never produce tags.
func ExtractTags(content string, meta map[string]models.Value) []string {
	seen := make(map[string]struct{})

	for _, m := range tagRe.FindAllStringSubmatch(StripCode(content), -1) {
		seen[m[1]] = struct{}{}
	}

	if raw, ok := meta["tags"]; ok {
		switch raw.Kind {
		case models.KindList:
			for _, item := range raw.List {
				if s := strings.TrimSpace(item.String()); s != "" {
					seen[s] = struct{}{}
				}
			}
		case models.KindString:
			for _, s := range strings.Split(raw.Str, ",") {
				if s = strings.TrimSpace(s); s != "" {
					seen[s] = struct{}{}
				}
			}
		}
	}

	// Line-pattern fallback; frontmatter is not code, so it scans the
	// unstripped content.
	for _, m := range fmTagsRe.FindAllStringSubmatch(content, -1) {
		for _, tok := range tagSplitRe.Split(m[1], -1) {
			tok = strings.TrimSpace(tok)
			tok = strings.Trim(tok, "#")
			tok = strings.Trim(tok, `'"`)
			if tok != "" {
				seen[tok] = struct{}{}
			}
		}
	}

	return sortedKeys(seen)
}

// ExtractWikilinks returns the deduplicated, sorted set of [[wikilink]]
// targets. For aliased links only the part before the pipe is kept.
func ExtractWikilinks(content string) []string {
	seen := make(map[string]struct{})
	for _, m := range wikilinkRe.FindAllStringSubmatch(content, -1) {
		seen[m[1]] = struct{}{}
	}
	return sortedKeys(seen)
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
