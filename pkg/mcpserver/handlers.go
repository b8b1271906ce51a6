package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/atani/php-knip/pkg/analyze"
	"github.com/atani/php-knip/pkg/host"
	"github.com/atani/php-knip/pkg/report"
)

func (s *Server) handleAnalyzeProject(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()

	projectRoot, _ := args["projectRoot"].(string)
	if projectRoot == "" {
		return mcp.NewToolResultError("projectRoot is required"), nil
	}

	manifestPath := resolvePath(projectRoot, stringArg(args, "manifestPath", "manifest.json"))
	lockPath := resolvePath(projectRoot, stringArg(args, "lockPath", "lock.json"))
	framework := stringArg(args, "framework", "auto")
	format := stringArg(args, "format", "json")

	pipeline := &host.Pipeline{
		ProjectRoot:   projectRoot,
		ManifestPath:  manifestPath,
		LockPath:      lockPath,
		FrameworkHint: framework,
		Plugins:       s.plugins,
		Logger:        s.logger,
	}

	run, err := pipeline.Run()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analyze project: %s", err)), nil
	}

	opts := report.Options{BasePath: projectRoot}
	var rendered string
	switch format {
	case "text":
		rendered = report.TextReporter{}.Format(run.Issues, opts)
	case "csv":
		rendered = report.CSVReporter{}.Format(run.Issues, report.Options{BasePath: projectRoot, IncludeHeader: true})
	default:
		rendered = report.JSONReporter{}.Format(run.Issues, opts)
	}

	if len(run.ParseErrors) > 0 {
		s.logger.Warn("analyze_project completed with parse errors", "count", len(run.ParseErrors), "projectRoot", projectRoot)
	}

	return mcp.NewToolResultText(rendered), nil
}

func (s *Server) handleListIssueKinds(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(issueKindCatalog())
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

type issueKindInfo struct {
	Kind            string `json:"kind"`
	DefaultSeverity string `json:"defaultSeverity"`
	Description     string `json:"description"`
}

func issueKindCatalog() []issueKindInfo {
	return []issueKindInfo{
		{string(analyze.KindUnusedClasses), string(analyze.SeverityError), "A declared class with no new/extends/implements/use/static/type-hint reference anywhere in the project"},
		{string(analyze.KindUnusedInterfaces), string(analyze.SeverityWarning), "A declared interface never implemented or used as a type hint or return type"},
		{string(analyze.KindUnusedTraits), string(analyze.SeverityError), "A declared trait never pulled in via a use statement inside a class body"},
		{string(analyze.KindUnusedMethods), string(analyze.SeverityWarning), "A private method never called, by bare or parent-qualified name"},
		{string(analyze.KindUnusedProperties), string(analyze.SeverityWarning), "A private property never accessed, by bare or parent-qualified name"},
		{string(analyze.KindUnusedConstants), string(analyze.SeverityWarning), "A global or class constant never referenced"},
		{string(analyze.KindUnusedFunctions), string(analyze.SeverityError), "A declared function never called and never passed as a callback string"},
		{string(analyze.KindUnusedUseStatements), string(analyze.SeverityWarning), "An import whose alias or short name is never used within its own file"},
		{string(analyze.KindUnusedFiles), string(analyze.SeverityWarning), "A non-entry-point file whose top-level symbols are never referenced elsewhere"},
		{string(analyze.KindUnusedDependencies), string(analyze.SeverityWarning), "A declared dependency whose package is never resolved from any reference in the project, or (metadata.missing) a package resolved from a reference but never declared"},
	}
}

func stringArg(args map[string]any, key, fallback string) string {
	if v, ok := args[key].(string); ok && v != "" {
		return v
	}
	return fallback
}

func resolvePath(projectRoot, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(projectRoot, path)
}
</content>
