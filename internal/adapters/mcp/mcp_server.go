// Package mcp provides the MCP (Model Context Protocol) server
// implementation, exposing the task repository to AI assistants over
// stdio.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/nvelasco/taskmaster-cli/internal/domain"
	"github.com/nvelasco/taskmaster-cli/internal/ports"
	"github.com/nvelasco/taskmaster-cli/internal/views"
)

// Server implements the MCP server using mark3labs/mcp-go.
type Server struct {
	server   *server.MCPServer
	provider ports.TaskProvider
}

// NewServer creates a new MCP server instance.
func NewServer(provider ports.TaskProvider) *Server {
	s := &Server{
		provider: provider,
	}

	s.server = server.NewMCPServer(
		"taskmaster",
		"1.0.0",
		server.WithLogging(),
	)

	s.registerTools()

	return s
}

// registerTools registers all available MCP tools.
func (s *Server) registerTools() {
	listTool := mcp.NewTool(
		"list_tasks",
		mcp.WithDescription("List tasks, optionally narrowed by completion filter, category, and search query, in the requested sort order"),
		mcp.WithString(
			"filter",
			mcp.Description("Completion filter: all, active, or completed"),
			mcp.Enum("all", "active", "completed"),
		),
		mcp.WithString(
			"sort",
			mcp.Description("Sort order: manual, date_desc, date_asc, title_asc, or title_desc"),
			mcp.Enum("manual", "date_desc", "date_asc", "title_asc", "title_desc"),
		),
		mcp.WithString(
			"search",
			mcp.Description("Case-insensitive substring match against title, description, and categories"),
		),
		mcp.WithString(
			"category",
			mcp.Description("Keep only tasks referencing this category (exact match)"),
		),
	)
	s.server.AddTool(listTool, s.handleListTasks)

	addTool := mcp.NewTool(
		"add_task",
		mcp.WithDescription("Create a new task"),
		mcp.WithString(
			"title",
			mcp.Required(),
			mcp.Description("The title of the task"),
		),
		mcp.WithString(
			"description",
			mcp.Description("Optional description of the task"),
		),
		mcp.WithString(
			"due_date",
			mcp.Description("Optional due date in RFC 3339 format"),
		),
		mcp.WithString(
			"categories",
			mcp.Description("Optional comma-separated category names"),
		),
	)
	s.server.AddTool(addTool, s.handleAddTask)

	toggleTool := mcp.NewTool(
		"toggle_task",
		mcp.WithDescription("Flip the completion flag of a task"),
		mcp.WithString(
			"task_id",
			mcp.Required(),
			mcp.Description("The ID of the task to toggle"),
		),
	)
	s.server.AddTool(toggleTool, s.handleToggleTask)

	deleteTool := mcp.NewTool(
		"delete_task",
		mcp.WithDescription("Delete a task"),
		mcp.WithString(
			"task_id",
			mcp.Required(),
			mcp.Description("The ID of the task to delete"),
		),
	)
	s.server.AddTool(deleteTool, s.handleDeleteTask)

	searchTool := mcp.NewTool(
		"search_tasks",
		mcp.WithDescription("Fuzzy-search tasks by title"),
		mcp.WithString(
			"query",
			mcp.Required(),
			mcp.Description("The title fragment to search for"),
		),
	)
	s.server.AddTool(searchTool, s.handleSearchTasks)

	s.server.AddTool(
		mcp.NewTool(
			"list_categories",
			mcp.WithDescription("List the available category names"),
		),
		s.handleListCategories,
	)

	addCategoryTool := mcp.NewTool(
		"add_category",
		mcp.WithDescription("Add a new category name"),
		mcp.WithString(
			"name",
			mcp.Required(),
			mcp.Description("The category name to add"),
		),
	)
	s.server.AddTool(addCategoryTool, s.handleAddCategory)

	deleteCategoryTool := mcp.NewTool(
		"delete_category",
		mcp.WithDescription("Delete a category, removing it from every task"),
		mcp.WithString(
			"name",
			mcp.Required(),
			mcp.Description("The category name to delete"),
		),
	)
	s.server.AddTool(deleteCategoryTool, s.handleDeleteCategory)

	s.server.AddTool(
		mcp.NewTool(
			"get_statistics",
			mcp.WithDescription("Get aggregate task statistics: counts, completion rate, per-category totals, and due-date summaries"),
		),
		s.handleGetStatistics,
	)
}

// Start begins serving MCP requests via stdio.
func (s *Server) Start(ctx context.Context) error {
	return server.ServeStdio(s.server)
}

// handleListTasks handles the list_tasks tool.
func (s *Server) handleListTasks(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filter := domain.FilterAll
	if f := request.GetString("filter", ""); f != "" {
		parsed, err := domain.ParseFilterType(f)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		filter = parsed
	}

	sortType := domain.SortDateDesc
	if so := request.GetString("sort", ""); so != "" {
		parsed, err := domain.ParseSortType(so)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		sortType = parsed
	}

	search := request.GetString("search", "")
	category := request.GetString("category", "")

	tasks := views.SortTasks(
		views.FilterTasks(s.provider.Tasks(), filter, search, category),
		sortType,
	)

	result := map[string]interface{}{
		"tasks":       tasksToJSON(tasks),
		"total_count": len(tasks),
	}

	jsonData, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tasks: %w", err)
	}

	return mcp.NewToolResultText(string(jsonData)), nil
}

// handleAddTask handles the add_task tool.
func (s *Server) handleAddTask(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title, err := request.RequireString("title")
	if err != nil {
		return mcp.NewToolResultError("title is required: " + err.Error()), nil
	}

	description := request.GetString("description", "")

	var dueDate *time.Time
	if raw := request.GetString("due_date", ""); raw != "" {
		due, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("bad due_date %q: %v", raw, err)), nil
		}
		dueDate = &due
	}

	var categories []string
	if raw := request.GetString("categories", ""); raw != "" {
		for _, c := range strings.Split(raw, ",") {
			c = strings.TrimSpace(c)
			if c != "" {
				categories = append(categories, c)
			}
		}
	}

	task, err := s.provider.AddTask(ctx, title, description, dueDate, categories)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to add task: %v", err)), nil
	}

	jsonData, err := json.MarshalIndent(taskToJSON(task), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal task: %w", err)
	}

	return mcp.NewToolResultText(string(jsonData)), nil
}

// handleToggleTask handles the toggle_task tool.
func (s *Server) handleToggleTask(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	taskID, err := request.RequireString("task_id")
	if err != nil {
		return mcp.NewToolResultError("task_id is required: " + err.Error()), nil
	}

	if !s.provider.ToggleComplete(ctx, taskID) {
		return mcp.NewToolResultError(fmt.Sprintf("task not found: %s", taskID)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf(`{"toggled": true, "task_id": %q}`, taskID)), nil
}

// handleDeleteTask handles the delete_task tool.
func (s *Server) handleDeleteTask(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	taskID, err := request.RequireString("task_id")
	if err != nil {
		return mcp.NewToolResultError("task_id is required: " + err.Error()), nil
	}

	if !s.provider.DeleteTask(ctx, taskID) {
		return mcp.NewToolResultError(fmt.Sprintf("task not found: %s", taskID)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf(`{"deleted": true, "task_id": %q}`, taskID)), nil
}

// handleSearchTasks handles the search_tasks tool.
func (s *Server) handleSearchTasks(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("query is required: " + err.Error()), nil
	}

	tasks := s.provider.FindByTitle(query)

	result := map[string]interface{}{
		"query":       query,
		"tasks":       tasksToJSON(tasks),
		"total_count": len(tasks),
	}

	jsonData, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tasks: %w", err)
	}

	return mcp.NewToolResultText(string(jsonData)), nil
}

// handleListCategories handles the list_categories tool.
func (s *Server) handleListCategories(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result := map[string]interface{}{
		"categories": s.provider.Categories(),
	}

	jsonData, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal categories: %w", err)
	}

	return mcp.NewToolResultText(string(jsonData)), nil
}

// handleAddCategory handles the add_category tool.
func (s *Server) handleAddCategory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError("name is required: " + err.Error()), nil
	}

	added := s.provider.AddCategory(ctx, name)
	return mcp.NewToolResultText(fmt.Sprintf(`{"added": %t, "name": %q}`, added, name)), nil
}

// handleDeleteCategory handles the delete_category tool.
func (s *Server) handleDeleteCategory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError("name is required: " + err.Error()), nil
	}

	if !s.provider.DeleteCategory(ctx, name) {
		return mcp.NewToolResultError(fmt.Sprintf("category not found: %s", name)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf(`{"deleted": true, "name": %q}`, name)), nil
}

// handleGetStatistics handles the get_statistics tool.
func (s *Server) handleGetStatistics(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	stats := views.ComputeStatistics(s.provider.Tasks(), time.Now())

	result := map[string]interface{}{
		"total":               stats.Total,
		"completed":           stats.Completed,
		"active":              stats.Active,
		"overdue":             stats.Overdue,
		"completion_rate":     stats.CompletionRate,
		"category_counts":     stats.CategoryCounts,
		"created_this_week":   stats.CreatedThisWeek,
		"completed_this_week": stats.CompletedThisWeek,
		"upcoming":            stats.Upcoming,
		"avg_completion_days": stats.AvgCompletionDays,
	}

	jsonData, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal statistics: %w", err)
	}

	return mcp.NewToolResultText(string(jsonData)), nil
}

// taskToJSON renders a task in the shape shared by all tools.
func taskToJSON(t *domain.Task) map[string]interface{} {
	data := map[string]interface{}{
		"id":          t.ID,
		"title":       t.Title,
		"description": t.Description,
		"completed":   t.Completed,
		"categories":  t.Categories,
		"order":       t.Order,
		"created_at":  t.CreatedAt.Format(domain.TimestampLayout),
	}
	if t.DueDate != nil {
		data["due_date"] = t.DueDate.Format(domain.TimestampLayout)
	}
	return data
}

func tasksToJSON(tasks []*domain.Task) []map[string]interface{} {
	list := make([]map[string]interface{}, len(tasks))
	for i, t := range tasks {
		list[i] = taskToJSON(t)
	}
	return list
}
