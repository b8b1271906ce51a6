// Package worker parallelizes the parse+collect stage of analysis (spec
// §5): a fixed pool of goroutines reads and collects files concurrently,
// feeding results back to a single-threaded consumer that builds the
// symbol table.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/atani/php-knip/pkg/collector"
)

// FileJob is one file awaiting collection.
type FileJob struct {
	FilePath string
	JobID    int
}

// FileResult is the successful collection outcome for one file.
type FileResult struct {
	FilePath string
	Result   collector.Result
	JobID    int
}

// FileError reports a non-fatal per-file failure (ParseError is
// collected and surfaced, not aborted on).
type FileError struct {
	FilePath string
	Err      error
}

func (e FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.FilePath, e.Err)
}

// Pool runs a bounded set of collector workers over a stream of files.
type Pool struct {
	numWorkers  int
	cache       FileCache
	resultCache *ResultCache
	logger      *slog.Logger

	jobs    chan FileJob
	results chan FileResult
	errors  chan FileError
	wg      sync.WaitGroup

	ctx     context.Context
	cancel  context.CancelFunc
	started atomic.Bool
	stopped atomic.Bool
	closed  atomic.Bool

	submitted atomic.Int64
	processed atomic.Int64
	failed    atomic.Int64
}

// NewPool builds a Pool. numWorkers of 0 selects OptimalPoolSize(). cache
// may be nil, in which case each worker reads files directly.
func NewPool(numWorkers int, cache FileCache, logger *slog.Logger) *Pool {
	if numWorkers == 0 {
		numWorkers = OptimalPoolSize()
	}
	if logger == nil {
		logger = slog.Default()
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Pool{
		numWorkers: numWorkers,
		cache:      cache,
		logger:     logger,
		jobs:       make(chan FileJob, numWorkers*2),
		results:    make(chan FileResult, numWorkers),
		errors:     make(chan FileError, numWorkers),
		ctx:        ctx,
		cancel:     cancel,
	}
}

// SetResultCache installs a ResultCache workers consult before
// re-collecting a file. Must be called before Start; nil disables
// caching (the default).
func (p *Pool) SetResultCache(rc *ResultCache) {
	p.resultCache = rc
}

// Start spawns the worker goroutines. Must be called before Submit.
func (p *Pool) Start() {
	if !p.started.CompareAndSwap(false, true) {
		return
	}
	p.logger.Info("starting collection worker pool", "workers", p.numWorkers)
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()
	for {
		select {
		case <-p.ctx.Done():
			return
		case job, ok := <-p.jobs:
			if !ok {
				return
			}
			p.process(id, job)
		}
	}
}

func (p *Pool) process(workerID int, job FileJob) {
	content, err := p.readFile(job.FilePath)
	if err != nil {
		p.failed.Add(1)
		p.errors <- FileError{FilePath: job.FilePath, Err: err}
		return
	}

	var hash string
	if p.resultCache != nil {
		hash = ContentHash(content)
		if cached, ok := p.resultCache.Get(job.FilePath, hash); ok {
			p.processed.Add(1)
			p.results <- FileResult{FilePath: job.FilePath, Result: cached, JobID: job.JobID}
			return
		}
	}

	result, err := collector.CollectFile(job.FilePath, content)
	if err != nil {
		p.failed.Add(1)
		p.errors <- FileError{FilePath: job.FilePath, Err: err}
		return
	}

	if p.resultCache != nil {
		p.resultCache.Put(job.FilePath, hash, result)
	}

	p.processed.Add(1)
	p.results <- FileResult{FilePath: job.FilePath, Result: result, JobID: job.JobID}
}

func (p *Pool) readFile(path string) ([]byte, error) {
	if p.cache != nil {
		return p.cache.Get(path)
	}
	return readFileDirect(path)
}

// Submit enqueues a job, blocking if the queue is full.
func (p *Pool) Submit(job FileJob) error {
	if p.stopped.Load() {
		return fmt.Errorf("worker pool is stopped")
	}
	p.submitted.Add(1)
	select {
	case <-p.ctx.Done():
		return fmt.Errorf("worker pool cancelled")
	case p.jobs <- job:
		return nil
	}
}

// Results returns the channel of successful collection results.
func (p *Pool) Results() <-chan FileResult { return p.results }

// Errors returns the channel of per-file collection failures.
func (p *Pool) Errors() <-chan FileError { return p.errors }

// FinishSubmitting closes the job queue; idempotent.
func (p *Pool) FinishSubmitting() {
	if p.closed.CompareAndSwap(false, true) {
		close(p.jobs)
	}
}

// Wait blocks until every worker has exited.
func (p *Pool) Wait() {
	p.wg.Wait()
}

// Stop finishes submitting, waits for workers, and closes output
// channels. Idempotent.
func (p *Pool) Stop() {
	if !p.stopped.CompareAndSwap(false, true) {
		return
	}
	p.FinishSubmitting()
	p.wg.Wait()
	close(p.results)
	close(p.errors)
	p.cancel()
}

// Stats reports pool activity counters.
type Stats struct {
	NumWorkers    int
	JobsSubmitted int64
	JobsProcessed int64
	JobsFailed    int64
	QueueLength   int
}

// Stats returns a snapshot of pool counters.
func (p *Pool) Stats() Stats {
	return Stats{
		NumWorkers:    p.numWorkers,
		JobsSubmitted: p.submitted.Load(),
		JobsProcessed: p.processed.Load(),
		JobsFailed:    p.failed.Load(),
		QueueLength:   len(p.jobs),
	}
}
</content>
