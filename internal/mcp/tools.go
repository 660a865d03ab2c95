package mcp

import "github.com/mark3labs/mcp-go/mcp"

// searchTemplatesTool defines the search_templates MCP tool.
var searchTemplatesTool = mcp.NewTool("search_templates",
	mcp.WithDescription("Search the filter graph template library. Matches title, description, tags and graph payloads case-insensitively."),
	mcp.WithString("query",
		mcp.Description("Substring to search for; empty lists every template"),
	),
	mcp.WithNumber("page",
		mcp.Description("1-based page number (default 1)"),
	),
	mcp.WithNumber("page_size",
		mcp.Description("Results per page: 6, 12, 24 or 48"),
	),
)

// getTemplateTool defines the get_template MCP tool.
var getTemplateTool = mcp.NewTool("get_template",
	mcp.WithDescription("Get the raw graph JSON of a template, ready to paste into the editor."),
	mcp.WithString("id",
		mcp.Required(),
		mcp.Description("Template id as listed by search_templates"),
	),
	mcp.WithString("version",
		mcp.Description("Tool version; defaults to the first listed version"),
	),
)

// listTutorialsTool defines the list_tutorials MCP tool.
var listTutorialsTool = mcp.NewTool("list_tutorials",
	mcp.WithDescription("List tutorials, optionally filtered by category and search text."),
	mcp.WithString("category",
		mcp.Description("Category name; \"All Tutorials\" or empty lists all"),
	),
	mcp.WithString("query",
		mcp.Description("Matches title, description and tags"),
	),
)

// getTutorialTool defines the get_tutorial MCP tool.
var getTutorialTool = mcp.NewTool("get_tutorial",
	mcp.WithDescription("Get the full text of a tutorial as markdown."),
	mcp.WithString("id",
		mcp.Required(),
		mcp.Description("Tutorial id as listed by list_tutorials"),
	),
)
