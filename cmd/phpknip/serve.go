package main

import (
	"fmt"
	"os"

	"github.com/atani/php-knip/pkg/mcplog"
	"github.com/atani/php-knip/pkg/mcpserver"
	"github.com/atani/php-knip/pkg/plugin"
)

// runServe starts the MCP server on stdin/stdout. Unlike analyze/watch, it
// does not pin a single project root up front — analyze_project takes one
// per call, since an MCP client may ask about several projects in one
// session.
func runServe(args []string) {
	flags, rest := parseCommonFlags(args)
	logPath := parseLogFlag(rest)

	logger := newLogger(flags)

	var toolLog *mcplog.Logger
	if logPath != "" {
		l, err := mcplog.NewLogger(logPath)
		if err != nil {
			exitOnError(err)
		}
		toolLog = l
	}

	plugins := plugin.NewManager()
	registerFrameworkPlugins(plugins)

	srv := mcpserver.NewServer(plugins, logger, toolLog)
	defer srv.Close()

	if err := srv.ServeStdio(); err != nil {
		fmt.Fprintf(os.Stderr, "phpknip: server error: %v\n", err)
		os.Exit(1)
	}
}

func parseLogFlag(args []string) string {
	for i := 0; i < len(args); i++ {
		if args[i] == "--log" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}
</content>
