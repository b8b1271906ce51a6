package mcpserver

import "github.com/mark3labs/mcp-go/mcp"

func analyzeProjectTool() mcp.Tool {
	return mcp.NewTool("analyze_project",
		mcp.WithDescription("Run the dead-code analysis pipeline over a project and return the resulting issues"),
		mcp.WithString("projectRoot", mcp.Required(), mcp.Description("Absolute path to the project root")),
		mcp.WithString("manifestPath", mcp.Description("Path to manifest.json, relative to projectRoot if not absolute (default: manifest.json)")),
		mcp.WithString("lockPath", mcp.Description("Path to lock.json, relative to projectRoot if not absolute (default: lock.json)")),
		mcp.WithString("framework", mcp.Description("Framework hint: auto, or a registered plugin name")),
		mcp.WithString("format", mcp.Description("Output format: json, text, or csv (default: json)")),
	)
}

func listIssueKindsTool() mcp.Tool {
	return mcp.NewTool("list_issue_kinds",
		mcp.WithDescription("List the issue kinds the analyzers can report, with their default severity"),
	)
}
</content>
