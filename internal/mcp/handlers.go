package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/ffsite/internal/catalog"
	"github.com/ziadkadry99/ffsite/internal/gallery"
	"github.com/ziadkadry99/ffsite/internal/pagination"
	"github.com/ziadkadry99/ffsite/internal/tutorial"
)

// handleSearchTemplates runs the library search and returns one page.
func (s *Server) handleSearchTemplates(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	snap := s.snap.Load()
	if snap.Err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("template catalog unavailable: %v", snap.Err)), nil
	}

	size := request.GetInt("page_size", s.pageSize)
	if !pagination.ValidPageSize(size) {
		size = s.pageSize
	}
	g := gallery.New(snap.Groups(), size)
	g.SetQuery(request.GetString("query", ""))
	g.GoToPage(request.GetInt("page", 1))

	view := g.View()
	if view.Page.Total == 0 {
		return mcp.NewToolResultText("No templates found."), nil
	}
	return mcp.NewToolResultText(s.formatPage(view)), nil
}

// handleGetTemplate returns a payload verbatim.
func (s *Server) handleGetTemplate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: id"), nil
	}
	snap := s.snap.Load()
	if snap.Err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("template catalog unavailable: %v", snap.Err)), nil
	}
	g, ok := snap.Catalog.Find(id)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("No template %q. Use search_templates to list ids.", id)), nil
	}

	v := g.DefaultVersion()
	if name := request.GetString("version", ""); name != "" {
		if v, ok = g.Version(name); !ok {
			return mcp.NewToolResultError(fmt.Sprintf("Template %q has no version %q.", id, name)), nil
		}
	}
	return mcp.NewToolResultText(v.GraphData), nil
}

func (s *Server) handleListTutorials(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	list := s.snap.Load().Tutorials()
	list = tutorial.FilterByCategory(list, request.GetString("category", ""))
	list = tutorial.Search(list, request.GetString("query", ""))
	if len(list) == 0 {
		return mcp.NewToolResultText("No tutorials found."), nil
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d tutorial(s):\n", len(list)))
	for _, t := range list {
		sb.WriteString(fmt.Sprintf("\n- %s (id: %s, category: %s)\n", t.Title, t.ID, t.Category))
		if t.Description != "" {
			sb.WriteString("  " + t.Description + "\n")
		}
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func (s *Server) handleGetTutorial(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: id"), nil
	}
	t, _, ok := tutorial.Find(s.snap.Load().Tutorials(), id)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("No tutorial %q. Use list_tutorials to list ids.", id)), nil
	}
	return mcp.NewToolResultText(tutorial.Markdown(t)), nil
}

// formatPage renders a result page for agent consumption.
func (s *Server) formatPage(view gallery.View) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s (page %d of %d)\n", view.Summary, view.Page.Number, view.Page.TotalPages))

	for _, c := range view.Cards {
		g := c.Group
		sb.WriteString(fmt.Sprintf("\n--- %s ---\n", g.Title))
		sb.WriteString(fmt.Sprintf("ID: %s\n", g.ID))
		if len(g.Tags) > 0 {
			sb.WriteString(fmt.Sprintf("Tags: %s\n", strings.Join(g.Tags, ", ")))
		}
		var versions []string
		for _, v := range g.Versions {
			versions = append(versions, fmt.Sprintf("%s (%s)",
				catalog.VersionLabel(s.toolName, v.Version), humanize.Bytes(uint64(len(v.GraphData)))))
		}
		sb.WriteString(fmt.Sprintf("Versions: %s\n", strings.Join(versions, ", ")))
		if g.Description != "" {
			sb.WriteString("\n" + g.Description + "\n")
		}
	}
	return sb.String()
}
