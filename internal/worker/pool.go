// Package worker provides a parallel color conversion worker pool.
package worker

import (
	"context"
	"sync"
	"time"

	"github.com/microaeris/ledmix/internal/pipeline"
)

// Mixer is the interface for color conversion.
// This matches the signature of pipeline.Mixer.Mix.
type Mixer interface {
	Mix(r, g, b uint8) (pipeline.Result, error)
}

// Task represents a single target color to convert.
type Task struct {
	Spec string // original hex spec, for reporting
	R    uint8
	G    uint8
	B    uint8
}

// Result represents the outcome of a conversion task.
type Result struct {
	Task    Task
	Mix     pipeline.Result
	Err     error
	Elapsed time.Duration
}

// ProgressFunc is called after each task completes.
type ProgressFunc func(completed, total, failed int)

// Config configures the worker pool.
type Config struct {
	Workers    int
	Mixer      Mixer
	OnProgress ProgressFunc
}

// Pool converts batches of target colors in parallel. The pipeline itself
// is pure, so tasks need no coordination beyond the result channel.
type Pool struct {
	workers    int
	mixer      Mixer
	onProgress ProgressFunc
}

// New creates a new worker pool.
func New(cfg Config) *Pool {
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}

	return &Pool{
		workers:    workers,
		mixer:      cfg.Mixer,
		onProgress: cfg.OnProgress,
	}
}

// Run executes all tasks and returns results.
// The function blocks until all tasks complete or the context is cancelled.
func (p *Pool) Run(ctx context.Context, tasks []Task) []Result {
	if len(tasks) == 0 {
		return nil
	}

	taskCh := make(chan Task, len(tasks))
	resultCh := make(chan Result, len(tasks))

	var (
		completed int
		failed    int
		mu        sync.Mutex
	)

	var wg sync.WaitGroup
	for i := 0; i < p.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.worker(ctx, taskCh, resultCh)
		}()
	}

	go func() {
		defer close(taskCh)
		for _, task := range tasks {
			select {
			case taskCh <- task:
			case <-ctx.Done():
				return
			}
		}
	}()

	results := make([]Result, 0, len(tasks))
	done := make(chan struct{})

	go func() {
		for result := range resultCh {
			results = append(results, result)

			mu.Lock()
			completed++
			if result.Err != nil {
				failed++
			}
			c, f := completed, failed
			mu.Unlock()

			if p.onProgress != nil {
				p.onProgress(c, len(tasks), f)
			}
		}
		close(done)
	}()

	wg.Wait()
	close(resultCh)
	<-done

	return results
}

// worker processes tasks from the task channel and sends results to the
// result channel.
func (p *Pool) worker(ctx context.Context, tasks <-chan Task, results chan<- Result) {
	for task := range tasks {
		select {
		case <-ctx.Done():
			results <- Result{
				Task: task,
				Err:  ctx.Err(),
			}
			continue
		default:
		}

		start := time.Now()
		mix, err := p.mixer.Mix(task.R, task.G, task.B)
		elapsed := time.Since(start)

		results <- Result{
			Task:    task,
			Mix:     mix,
			Err:     err,
			Elapsed: elapsed,
		}
	}
}
