package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/toocheap/obsidian-cli-mcp/internal/models"
	"github.com/toocheap/obsidian-cli-mcp/internal/noteservice"
)

// FSServer exposes the filesystem backend tools.
type FSServer struct {
	*Server
	svc *noteservice.Service
}

// NewFS registers every filesystem tool plus the obsidian_* aliases that
// make the server a drop-in replacement for the CLI backend surface.
func NewFS(svc *noteservice.Service) *FSServer {
	s := &FSServer{Server: newServer("obsidian_fs_mcp"), svc: svc}

	search := mcp.NewTool("obsidian_fs_search",
		mcp.WithDescription("Search vault notes by filename, content, or both."),
		mcp.WithString("query", mcp.Required(), mcp.Description("Search query string")),
		mcp.WithString("search_type", mcp.Description("Search type: 'filename', 'content', or 'both'"),
			mcp.Enum("filename", "content", "both")),
		mcp.WithString("folder", mcp.Description("Limit search to a specific folder")),
		mcp.WithNumber("limit", mcp.Description("Max results to return")),
		mcp.WithString("response_format", mcp.Description("Output format: 'markdown' or 'json'"),
			mcp.Enum("markdown", "json")),
	)
	s.mcp.AddTool(search, s.search)
	s.mcp.AddTool(alias(search, "obsidian_search"), s.search)

	read := mcp.NewTool("obsidian_fs_read",
		mcp.WithDescription("Read a note with its metadata, tags, and wikilinks."),
		mcp.WithString("path", mcp.Required(), mcp.Description("Relative path to the note (e.g. 'folder/note.md')")),
	)
	s.mcp.AddTool(read, s.read)
	s.mcp.AddTool(alias(read, "obsidian_read"), s.read)

	create := mcp.NewTool("obsidian_fs_create",
		mcp.WithDescription("Create a new Markdown note."),
		mcp.WithString("path", mcp.Required(), mcp.Description("Relative path for the new note")),
		mcp.WithString("content", mcp.Description("Initial content for the note")),
		mcp.WithBoolean("overwrite", mcp.Description("Overwrite if the note already exists")),
	)
	s.mcp.AddTool(create, s.create)
	s.mcp.AddTool(alias(create, "obsidian_create"), s.create)

	edit := mcp.NewTool("obsidian_fs_edit",
		mcp.WithDescription("Edit a note by appending, prepending, or replacing text."),
		mcp.WithString("path", mcp.Required(), mcp.Description("Relative path to the note")),
		mcp.WithString("operation", mcp.Required(), mcp.Description("Edit operation: 'append', 'prepend', or 'replace'"),
			mcp.Enum("append", "prepend", "replace")),
		mcp.WithString("content", mcp.Required(), mcp.Description("Content to add or replace with")),
		mcp.WithString("find", mcp.Description("For 'replace': the text to find and replace")),
	)
	s.mcp.AddTool(edit, s.edit)
	s.mcp.AddTool(alias(edit, "obsidian_edit"), s.edit)

	del := mcp.NewTool("obsidian_fs_delete",
		mcp.WithDescription("Delete a note. Requires confirm=true."),
		mcp.WithString("path", mcp.Required(), mcp.Description("Relative path to the note to delete")),
		mcp.WithBoolean("confirm", mcp.Description("Must be true to confirm deletion")),
	)
	s.mcp.AddTool(del, s.delete)
	s.mcp.AddTool(alias(del, "obsidian_delete"), s.delete)

	listFolder := mcp.NewTool("obsidian_fs_list_folder",
		mcp.WithDescription("List the vault folder structure as a tree."),
		mcp.WithString("folder", mcp.Description("Folder path relative to vault root")),
		mcp.WithNumber("depth", mcp.Description("Max depth to list (1-5)")),
		mcp.WithString("response_format", mcp.Description("Output format: 'markdown' or 'json'"),
			mcp.Enum("markdown", "json")),
	)
	s.mcp.AddTool(listFolder, s.listFolder)
	s.mcp.AddTool(alias(listFolder, "obsidian_list_folder"), s.listFolder)

	tags := mcp.NewTool("obsidian_fs_get_tags",
		mcp.WithDescription("List all tags in the vault with occurrence counts."),
		mcp.WithString("folder", mcp.Description("Limit to a specific folder")),
		mcp.WithString("response_format", mcp.Description("Output format: 'markdown' or 'json'"),
			mcp.Enum("markdown", "json")),
	)
	s.mcp.AddTool(tags, s.tags)
	s.mcp.AddTool(alias(tags, "obsidian_tags_list"), s.tags)

	backlinks := mcp.NewTool("obsidian_fs_get_backlinks",
		mcp.WithDescription("Find all notes linking to the given note."),
		mcp.WithString("note_name", mcp.Required(), mcp.Description("Note name to find backlinks for (without extension)")),
		mcp.WithString("response_format", mcp.Description("Output format: 'markdown' or 'json'"),
			mcp.Enum("markdown", "json")),
	)
	s.mcp.AddTool(backlinks, s.backlinks)
	s.mcp.AddTool(alias(backlinks, "obsidian_backlinks"), s.backlinks)

	daily := mcp.NewTool("obsidian_fs_daily_note",
		mcp.WithDescription("Create or open the daily note for a date."),
		mcp.WithString("date", mcp.Description("Date in YYYY-MM-DD format. Defaults to today")),
		mcp.WithString("folder", mcp.Description("Folder for daily notes")),
		mcp.WithString("template", mcp.Description("Template note to seed new daily notes")),
	)
	s.mcp.AddTool(daily, s.dailyNote)

	tasksList := mcp.NewTool("obsidian_fs_tasks_list",
		mcp.WithDescription("List checkbox tasks across the vault."),
		mcp.WithString("folder", mcp.Description("Limit to a specific folder")),
		mcp.WithBoolean("todo", mcp.Description("Show only incomplete tasks")),
		mcp.WithBoolean("done", mcp.Description("Show only completed tasks")),
	)
	s.mcp.AddTool(tasksList, s.tasksList)
	s.mcp.AddTool(alias(tasksList, "obsidian_tasks_list"), s.tasksList)

	taskToggle := mcp.NewTool("obsidian_fs_task_toggle",
		mcp.WithDescription("Toggle a checkbox task between complete and incomplete."),
		mcp.WithString("path", mcp.Required(), mcp.Description("Path to the note containing the task")),
		mcp.WithNumber("line", mcp.Required(), mcp.Description("Line number of the task (1-indexed)")),
	)
	s.mcp.AddTool(taskToggle, s.taskToggle)
	s.mcp.AddTool(alias(taskToggle, "obsidian_task_toggle"), s.taskToggle)

	move := mcp.NewTool("obsidian_fs_move",
		mcp.WithDescription("Move or rename a note or folder."),
		mcp.WithString("source", mcp.Required(), mcp.Description("Current path of the note or folder")),
		mcp.WithString("destination", mcp.Required(), mcp.Description("New path for the note or folder")),
		mcp.WithBoolean("overwrite", mcp.Description("Overwrite if destination exists")),
	)
	s.mcp.AddTool(move, s.move)

	property := mcp.NewTool("obsidian_fs_property",
		mcp.WithDescription("Manage frontmatter properties: set, get, list, or remove."),
		mcp.WithString("path", mcp.Required(), mcp.Description("Relative path to the note")),
		mcp.WithString("operation", mcp.Required(), mcp.Description("Property operation"),
			mcp.Enum("set", "get", "list", "remove")),
		mcp.WithString("key", mcp.Description("Property key (required for set/get/remove)")),
		mcp.WithString("value", mcp.Description("Property value for 'set', parsed as YAML")),
	)
	s.mcp.AddTool(property, s.property)

	s.mcp.AddTool(mcp.NewTool("obsidian_daily_read",
		mcp.WithDescription("Read today's daily note, creating it if missing."),
	), s.dailyRead)

	s.mcp.AddTool(mcp.NewTool("obsidian_daily_append",
		mcp.WithDescription("Append content to today's daily note."),
		mcp.WithString("content", mcp.Required(), mcp.Description("Content to append")),
	), s.dailyAppend)

	s.mcp.AddTool(mcp.NewTool("obsidian_vault_info",
		mcp.WithDescription("Show vault name, path, and note statistics."),
	), s.vaultInfo)

	return s
}

func formatArg(req mcp.CallToolRequest) models.Format {
	if req.GetString("response_format", "markdown") == "json" {
		return models.FormatJSON
	}
	return models.FormatMarkdown
}

func (s *FSServer) search(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, err := s.svc.Search(noteservice.SearchParams{
		Query:  query,
		Type:   noteservice.SearchType(req.GetString("search_type", string(noteservice.SearchBoth))),
		Folder: req.GetString("folder", ""),
		Limit:  req.GetInt("limit", noteservice.DefaultSearchLimit),
		Format: formatArg(req),
	})
	return textOrError(out, err)
}

func (s *FSServer) read(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return textOrError(s.svc.Read(path))
}

func (s *FSServer) create(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, err := s.svc.Create(path, req.GetString("content", ""), req.GetBool("overwrite", false))
	return textOrError(out, err)
}

func (s *FSServer) edit(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	op, err := req.RequireString("operation")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	content, err := req.RequireString("content")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, err := s.svc.Edit(path, noteservice.EditOp(op), content, req.GetString("find", ""))
	return textOrError(out, err)
}

func (s *FSServer) delete(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return textOrError(s.svc.Delete(path, req.GetBool("confirm", false)))
}

func (s *FSServer) listFolder(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	out, err := s.svc.ListFolder(
		req.GetString("folder", ""),
		req.GetInt("depth", noteservice.DefaultListDepth),
		formatArg(req),
	)
	return textOrError(out, err)
}

func (s *FSServer) tags(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return textOrError(s.svc.Tags(req.GetString("folder", ""), formatArg(req)))
}

func (s *FSServer) backlinks(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("note_name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return textOrError(s.svc.Backlinks(name, formatArg(req)))
}

func (s *FSServer) dailyNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	out, err := s.svc.DailyNote(
		req.GetString("date", ""),
		req.GetString("folder", ""),
		req.GetString("template", ""),
	)
	return textOrError(out, err)
}

func (s *FSServer) tasksList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	out, err := s.svc.TasksList(
		req.GetString("folder", ""),
		req.GetBool("todo", false),
		req.GetBool("done", false),
	)
	return textOrError(out, err)
}

func (s *FSServer) taskToggle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	line, err := req.RequireInt("line")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return textOrError(s.svc.TaskToggle(path, line))
}

func (s *FSServer) move(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	source, err := req.RequireString("source")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	destination, err := req.RequireString("destination")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, err := s.svc.Move(source, destination, req.GetBool("overwrite", false))
	return textOrError(out, err)
}

func (s *FSServer) property(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	op, err := req.RequireString("operation")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, err := s.svc.Property(path, noteservice.PropertyOp(op),
		req.GetString("key", ""), req.GetString("value", ""))
	return textOrError(out, err)
}

func (s *FSServer) dailyRead(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return textOrError(s.svc.DailyRead("", ""))
}

func (s *FSServer) dailyAppend(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	content, err := req.RequireString("content")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return textOrError(s.svc.DailyAppend("", "", content))
}

func (s *FSServer) vaultInfo(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return textOrError(s.svc.VaultInfo())
}
