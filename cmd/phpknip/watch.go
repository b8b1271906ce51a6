package main

import (
	"fmt"
	"os"

	"github.com/atani/php-knip/pkg/watch"
	"github.com/atani/php-knip/pkg/worker"
)

// runWatch re-runs the full analysis pipeline once per debounced batch of
// filesystem changes. It never exits non-zero on issues the way analyze
// does — watch mode is interactive, not a CI gate.
func runWatch(args []string) {
	flags, rest := parseCommonFlags(args)
	reportFlags := parseReportFlags(rest)

	pipeline, err := buildPipeline(flags)
	if err != nil {
		exitOnError(err)
	}
	pipeline.ResultCache = worker.NewResultCache(0)

	runOnce := func(paths []string) {
		if paths != nil {
			fmt.Fprintf(os.Stderr, "phpknip: %d file(s) changed, re-analyzing\n", len(paths))
		}
		run, err := pipeline.Run()
		if err != nil {
			fmt.Fprintf(os.Stderr, "phpknip: %v\n", err)
			return
		}
		for _, parseErr := range run.ParseErrors {
			fmt.Fprintf(os.Stderr, "phpknip: %v\n", parseErr)
		}
		fmt.Print(renderIssues(run.Issues, pipeline.ProjectRoot, reportFlags))
	}

	runOnce(nil)

	w, err := watch.New(watch.DefaultOptions(), pipeline.Logger, runOnce)
	if err != nil {
		exitOnError(err)
	}
	defer w.Stop()

	if err := w.Start(pipeline.ProjectRoot); err != nil {
		exitOnError(err)
	}

	fmt.Fprintln(os.Stderr, "phpknip: watching for changes, press Ctrl-C to stop")
	select {}
}
</content>
