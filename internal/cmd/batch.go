package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"sort"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/microaeris/ledmix/internal/pipeline"
	"github.com/microaeris/ledmix/internal/report"
	"github.com/microaeris/ledmix/internal/store"
	"github.com/microaeris/ledmix/internal/worker"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Convert a file of colors in parallel",
	Long: `Convert a list of sRGB colors (one hex spec per line; blank lines and
'#'-prefixed comments are skipped) using a parallel worker pool.

Results are printed one per line, or written to a SQLite database when
--output is given. Out-of-gamut colors are recorded as failures.`,
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringP("input", "i", "", "Input file with one hex color per line (required)")
	batchCmd.Flags().StringP("output", "o", "", "Output SQLite database (prints to stdout when empty)")
	batchCmd.Flags().IntP("workers", "w", 0, "Number of parallel workers (default: number of CPUs)")
	batchCmd.Flags().Bool("progress", true, "Show progress bar")
	batchCmd.Flags().Bool("allow-failures", false, "Exit zero even when some colors fail (e.g. out-of-gamut)")

	bindFlags := []struct {
		key  string
		flag string
	}{
		{"batch.input", "input"},
		{"batch.output", "output"},
		{"batch.workers", "workers"},
		{"batch.progress", "progress"},
		{"batch.allow_failures", "allow-failures"},
	}

	for _, bf := range bindFlags {
		if err := viper.BindPFlag(bf.key, batchCmd.Flags().Lookup(bf.flag)); err != nil {
			panic(fmt.Sprintf("failed to bind flag %s: %v", bf.flag, err))
		}
	}
}

func runBatch(cmd *cobra.Command, args []string) error {
	inputFile := viper.GetString("batch.input")
	outputFile := viper.GetString("batch.output")
	workers := viper.GetInt("batch.workers")
	showProgress := viper.GetBool("batch.progress")
	allowFailures := viper.GetBool("batch.allow_failures")

	if logger == nil {
		initLogging()
	}

	if inputFile == "" {
		return fmt.Errorf("--input is required")
	}

	tasks, err := readColorFile(inputFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}
	if len(tasks) == 0 {
		return fmt.Errorf("no colors found in %s", inputFile)
	}

	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	primaries := loadPrimaries()
	mixer, err := pipeline.NewMixer(primaries, logger)
	if err != nil {
		return err
	}

	logger.Info("Starting batch conversion",
		"input", inputFile,
		"colors", len(tasks),
		"workers", workers,
		"output", outputFile,
	)

	// Handle interrupt signals for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("Received interrupt signal, cancelling...")
		cancel()
	}()

	progress := worker.NewProgress(len(tasks), showProgress)
	pool := worker.New(worker.Config{
		Workers:    workers,
		Mixer:      mixer,
		OnProgress: progress.Callback(),
	})

	results := pool.Run(ctx, tasks)
	progress.Done()

	// Stable output order regardless of completion order.
	sort.Slice(results, func(i, j int) bool {
		return results[i].Task.Spec < results[j].Task.Spec
	})

	failedCount := 0
	for _, r := range results {
		if r.Err != nil {
			failedCount++
			logger.Error("Color conversion failed", "spec", r.Task.Spec, "error", r.Err)
		}
	}

	if outputFile != "" {
		if err := writeResults(outputFile, inputFile, workers, mixer, results); err != nil {
			return fmt.Errorf("failed to write results: %w", err)
		}
		logger.Info("Results written", "output", outputFile, "count", len(results))
	} else {
		for _, r := range results {
			if r.Err != nil {
				continue
			}
			fmt.Println(report.Summary(r.Task.Spec, r.Mix))
		}
	}

	logger.Info(progress.Summary())

	if failedCount > 0 && !allowFailures {
		return fmt.Errorf("%d of %d colors failed to convert", failedCount, len(tasks))
	}
	if failedCount > 0 {
		logger.Warn("Some colors failed to convert, but continuing due to --allow-failures flag", "failed_count", failedCount)
	}

	return nil
}

// readColorFile parses an input file into conversion tasks. Blank lines and
// '#'-prefixed comment lines are skipped.
func readColorFile(path string) ([]worker.Task, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var tasks []worker.Task
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		r, g, b, err := parseColor(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}

		tasks = append(tasks, worker.Task{
			Spec: strings.ToUpper(line),
			R:    r,
			G:    g,
			B:    b,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}

// writeResults persists batch results to a SQLite database.
func writeResults(path, source string, workers int, mixer *pipeline.Mixer, results []worker.Result) error {
	w, err := store.NewWriter(path, store.Metadata{
		Source:    source,
		Primaries: mixer.Primaries(),
		Workers:   workers,
	})
	if err != nil {
		return err
	}

	for _, r := range results {
		entry := store.Entry{Spec: r.Task.Spec}
		if r.Err != nil {
			entry.Error = r.Err.Error()
		} else {
			cal := r.Mix.Calibration
			entry.InGamut = true
			entry.Ratio = cal.Ratio.Channels()
			entry.Percent = cal.Percent
			entry.Intensity = cal.Intensity
			entry.Relative = cal.Relative
		}

		if err := w.WriteEntry(entry); err != nil {
			w.Close()
			return err
		}
	}

	return w.Close()
}
