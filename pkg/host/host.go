// Package host wires every pipeline stage together: parser → collectors
// → symbol table & reference list → plugin manager → analyzers →
// issues. A single compose-everything-then-dispatch
// entrypoint, analogous to "load one catalog, start one MCP server"
// generalized to "load a project, run the full analysis pipeline once".
package host

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/atani/php-knip/internal/phpast"
	"github.com/atani/php-knip/pkg/analyze"
	"github.com/atani/php-knip/pkg/autoload"
	"github.com/atani/php-knip/pkg/discovery"
	"github.com/atani/php-knip/pkg/manifest"
	"github.com/atani/php-knip/pkg/phpkniperr"
	"github.com/atani/php-knip/pkg/plugin"
	"github.com/atani/php-knip/pkg/symboltable"
	"github.com/atani/php-knip/pkg/worker"
)

// Pipeline holds everything needed to run one end-to-end analysis.
type Pipeline struct {
	ProjectRoot   string
	ManifestPath  string
	LockPath      string
	Config        *analyze.Config
	FrameworkHint string
	NumWorkers    int
	Discovery     discovery.Config
	Plugins       *plugin.Manager
	Logger        *slog.Logger

	// ResultCache, if set, is consulted and updated on every Run so a
	// caller that re-runs the same Pipeline repeatedly (the CLI's watch
	// subcommand) skips re-collecting a file whose content hasn't
	// changed since the last run. A one-shot `analyze` run leaves this
	// nil.
	ResultCache *worker.ResultCache
}

// Run is the result of one pipeline execution.
type Run struct {
	Table       *symboltable.Table
	References  []phpast.Reference
	Imports     map[string][]phpast.Import
	Issues      []analyze.Issue
	ParseErrors []error
	Manifest    *manifest.Manifest
	Resolver    *autoload.Resolver
}

// Run executes the pipeline: load manifest/lock (fatal ConfigError on
// failure), discover files, collect them concurrently, merge results into
// the symbol table in deterministic sorted-path order (results must not
// depend on worker-pool scheduling order), activate plugins, then run
// every analyzer.
func (p *Pipeline) Run() (*Run, error) {
	logger := p.Logger
	if logger == nil {
		logger = slog.Default()
	}

	project, err := manifest.Load(p.ManifestPath, p.LockPath)
	if err != nil {
		return nil, err
	}
	resolver := autoload.Build(*project)

	files, err := discovery.DiscoverFiles(p.ProjectRoot, p.Discovery)
	if err != nil {
		return nil, fmt.Errorf("discover files: %w", err)
	}

	resultsByFile, parseErrors := collectAll(files, p.NumWorkers, logger, p.ResultCache)

	table := symboltable.New()
	var references []phpast.Reference
	imports := make(map[string][]phpast.Import)

	for _, file := range files {
		res, ok := resultsByFile[file]
		if !ok {
			continue
		}
		for _, sym := range res.Symbols {
			table.Add(sym)
		}
		references = append(references, res.References...)
		if len(res.Imports) > 0 {
			imports[file] = res.Imports
		}
	}

	plugins := p.Plugins
	if plugins == nil {
		plugins = plugin.NewManager()
	}
	plugins.Activate(p.ProjectRoot, project.Manifest, p.FrameworkHint)
	plugins.ProcessSymbols(table, p.ProjectRoot)
	references = append(references, plugins.AdditionalReferences(p.ProjectRoot)...)

	ctx := analyze.NewContext(table, references, p.Config, imports, plugins, &project.Manifest, resolver)
	ctx.ProjectRoot = p.ProjectRoot

	var issues []analyze.Issue
	for _, a := range analyze.All() {
		issues = append(issues, a.Analyze(ctx)...)
		if ma, ok := a.(analyze.MissingAnalyzer); ok {
			issues = append(issues, ma.AnalyzeMissing(ctx)...)
		}
	}

	return &Run{
		Table:       table,
		References:  references,
		Imports:     imports,
		Issues:      issues,
		ParseErrors: parseErrors,
		Manifest:    &project.Manifest,
		Resolver:    resolver,
	}, nil
}

// collectAll runs every file through the worker pool and returns the
// per-file results keyed by path, plus every non-fatal parse failure
// wrapped as a phpkniperr.ParseError. resultCache, if non-nil, lets
// workers skip re-collecting files whose content hash hasn't changed
// since it was last populated.
func collectAll(files []string, numWorkers int, logger *slog.Logger, resultCache *worker.ResultCache) (map[string]fileCollectResult, []error) {
	pool := worker.NewPool(numWorkers, nil, logger)
	if resultCache != nil {
		pool.SetResultCache(resultCache)
	}
	pool.Start()

	submitDone := make(chan struct{})
	go func() {
		defer close(submitDone)
		for i, f := range files {
			_ = pool.Submit(worker.FileJob{FilePath: f, JobID: i})
		}
		pool.FinishSubmitting()
	}()

	results := make(map[string]fileCollectResult, len(files))
	var parseErrors []error

	done := make(chan struct{})
	go func() {
		defer close(done)
		resultsCh := pool.Results()
		errorsCh := pool.Errors()
		for resultsCh != nil || errorsCh != nil {
			select {
			case r, ok := <-resultsCh:
				if !ok {
					resultsCh = nil
					continue
				}
				results[r.FilePath] = fileCollectResult{Symbols: r.Result.Symbols, References: r.Result.References, Imports: r.Result.Imports}
			case e, ok := <-errorsCh:
				if !ok {
					errorsCh = nil
					continue
				}
				parseErrors = append(parseErrors, phpkniperr.NewParseError(e.FilePath, e.Err))
			}
		}
	}()

	<-submitDone
	pool.Stop()
	<-done

	sort.Slice(parseErrors, func(i, j int) bool {
		return parseErrors[i].Error() < parseErrors[j].Error()
	})

	return results, parseErrors
}

type fileCollectResult struct {
	Symbols    []phpast.Symbol
	References []phpast.Reference
	Imports    []phpast.Import
}
</content>
