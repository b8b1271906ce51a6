package main

import (
	"fmt"
	"os"

	"github.com/atani/php-knip/pkg/analyze"
	"github.com/atani/php-knip/pkg/report"
)

// runAnalyze loads the project, runs the pipeline once, and prints its
// issues. Exits 2 if any error-severity issue was found, 1 on a pipeline
// failure, 0 otherwise.
func runAnalyze(args []string) {
	flags, rest := parseCommonFlags(args)
	reportFlags := parseReportFlags(rest)

	pipeline, err := buildPipeline(flags)
	if err != nil {
		exitOnError(err)
	}

	run, err := pipeline.Run()
	if err != nil {
		exitOnError(err)
	}

	for _, parseErr := range run.ParseErrors {
		fmt.Fprintf(os.Stderr, "phpknip: %v\n", parseErr)
	}

	fmt.Print(renderIssues(run.Issues, pipeline.ProjectRoot, reportFlags))

	for _, iss := range run.Issues {
		if iss.Severity == analyze.SeverityError {
			os.Exit(2)
		}
	}
}

// reportFlags are the `--format`/`--pretty`/`--group-by`/`--colors` flags
// shared by analyze and watch.
type reportFlags struct {
	Format        string
	Pretty        bool
	GroupBy       string
	Colors        bool
	Delimiter     string
	IncludeHeader bool
}

func parseReportFlags(args []string) reportFlags {
	flags := reportFlags{Format: "text"}
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--format":
			i++
			if i < len(args) {
				flags.Format = args[i]
			}
		case "--pretty":
			flags.Pretty = true
		case "--group-by":
			i++
			if i < len(args) {
				flags.GroupBy = args[i]
			}
		case "--colors":
			flags.Colors = true
		case "--delimiter":
			i++
			if i < len(args) {
				flags.Delimiter = args[i]
			}
		case "--header":
			flags.IncludeHeader = true
		}
	}
	return flags
}

func renderIssues(issues []analyze.Issue, basePath string, flags reportFlags) string {
	opts := report.Options{
		BasePath:      basePath,
		Pretty:        flags.Pretty,
		GroupBy:       report.GroupBy(flags.GroupBy),
		Colors:        flags.Colors,
		Delimiter:     flags.Delimiter,
		IncludeHeader: flags.IncludeHeader,
	}

	switch flags.Format {
	case "json":
		return report.JSONReporter{}.Format(issues, opts) + "\n"
	case "csv":
		return report.CSVReporter{}.Format(issues, opts)
	default:
		return report.TextReporter{}.Format(issues, opts)
	}
}
</content>
