package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/toocheap/obsidian-cli-mcp/internal/clibridge"
)

// CLIServer exposes the external-binary backend tools. Every tool accepts
// an optional vault name; empty targets the CLI's active vault.
type CLIServer struct {
	*Server
	runner *clibridge.Runner
}

// NewCLI registers the bridge tools over the given runner.
func NewCLI(runner *clibridge.Runner) *CLIServer {
	s := &CLIServer{Server: newServer("obsidian_mcp"), runner: runner}

	s.mcp.AddTool(mcp.NewTool("obsidian_daily_read",
		mcp.WithDescription("Read the contents of today's daily note. Creates it first if it does not exist yet."),
		mcp.WithString("vault", mcp.Description("Vault name. Defaults to the active vault if omitted")),
	), s.dailyRead)

	s.mcp.AddTool(mcp.NewTool("obsidian_daily_append",
		mcp.WithDescription("Append text to today's daily note. Supports markdown and \\n for newlines."),
		mcp.WithString("content", mcp.Required(), mcp.Description("Text to append to the daily note")),
		mcp.WithBoolean("inline", mcp.Description("If true, append without a leading newline")),
		mcp.WithString("vault", mcp.Description("Vault name. Defaults to the active vault if omitted")),
	), s.dailyAppend)

	s.mcp.AddTool(mcp.NewTool("obsidian_tasks_list",
		mcp.WithDescription("List tasks from the vault, a specific file, or the daily note."),
		mcp.WithString("file", mcp.Description("Filter by file name")),
		mcp.WithBoolean("todo", mcp.Description("Show only incomplete tasks")),
		mcp.WithBoolean("done", mcp.Description("Show only completed tasks")),
		mcp.WithBoolean("daily", mcp.Description("Show tasks from the daily note")),
		mcp.WithBoolean("all_vault", mcp.Description("List all tasks in the vault")),
		mcp.WithString("vault", mcp.Description("Vault name. Defaults to the active vault if omitted")),
	), s.tasksList)

	s.mcp.AddTool(mcp.NewTool("obsidian_task_toggle",
		mcp.WithDescription("Toggle a task between complete and incomplete."),
		mcp.WithString("ref", mcp.Required(), mcp.Description("Task reference in 'path:line' format (e.g. 'Recipe.md:8')")),
		mcp.WithString("vault", mcp.Description("Vault name. Defaults to the active vault if omitted")),
	), s.taskToggle)

	s.mcp.AddTool(mcp.NewTool("obsidian_search",
		mcp.WithDescription("Search the vault for text. Returns matching files and optionally match context."),
		mcp.WithString("query", mcp.Required(), mcp.Description("Search query text")),
		mcp.WithString("path", mcp.Description("Limit search to a folder")),
		mcp.WithNumber("limit", mcp.Description("Max number of results")),
		mcp.WithBoolean("matches", mcp.Description("Show match context")),
		mcp.WithString("vault", mcp.Description("Vault name. Defaults to the active vault if omitted")),
	), s.search)

	s.mcp.AddTool(mcp.NewTool("obsidian_tags_list",
		mcp.WithDescription("List all tags in the vault with occurrence counts."),
		mcp.WithString("vault", mcp.Description("Vault name. Defaults to the active vault if omitted")),
	), s.tagsList)

	s.mcp.AddTool(mcp.NewTool("obsidian_tag_info",
		mcp.WithDescription("Get details about a specific tag, including which files use it."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Tag name (with or without #)")),
		mcp.WithString("vault", mcp.Description("Vault name. Defaults to the active vault if omitted")),
	), s.tagInfo)

	s.mcp.AddTool(mcp.NewTool("obsidian_vault_info",
		mcp.WithDescription("Show vault information (name, path, file/folder counts, size)."),
		mcp.WithString("vault", mcp.Description("Vault name. Defaults to the active vault if omitted")),
	), s.vaultInfo)

	return s
}

func (s *CLIServer) dailyRead(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return textOrError(s.runner.DailyRead(ctx, req.GetString("vault", "")))
}

func (s *CLIServer) dailyAppend(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	content, err := req.RequireString("content")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, err := s.runner.DailyAppend(ctx, req.GetString("vault", ""), content, req.GetBool("inline", false))
	return textOrError(out, err)
}

func (s *CLIServer) tasksList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	out, err := s.runner.TasksList(ctx, req.GetString("vault", ""), clibridge.TaskFilter{
		File:     req.GetString("file", ""),
		Todo:     req.GetBool("todo", false),
		Done:     req.GetBool("done", false),
		Daily:    req.GetBool("daily", false),
		AllVault: req.GetBool("all_vault", false),
	})
	return textOrError(out, err)
}

func (s *CLIServer) taskToggle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ref, err := req.RequireString("ref")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return textOrError(s.runner.TaskToggle(ctx, req.GetString("vault", ""), ref))
}

func (s *CLIServer) search(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, err := s.runner.Search(ctx,
		req.GetString("vault", ""),
		query,
		req.GetString("path", ""),
		req.GetInt("limit", 0),
		req.GetBool("matches", true),
	)
	return textOrError(out, err)
}

func (s *CLIServer) tagsList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return textOrError(s.runner.TagsList(ctx, req.GetString("vault", "")))
}

func (s *CLIServer) tagInfo(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return textOrError(s.runner.TagInfo(ctx, req.GetString("vault", ""), name))
}

func (s *CLIServer) vaultInfo(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return textOrError(s.runner.VaultInfo(ctx, req.GetString("vault", "")))
}
