package cmd

import (
	"fmt"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"

	"github.com/layoutdev/layout/internal/fetch"
	"github.com/layoutdev/layout/internal/generator"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the specification and regenerate on changes",
	Long: `Generate once, then watch the specification file and rerun generation
whenever it changes. Generation is idempotent, so each rerun only
materializes what the edit added.

Examples:
  layout watch                    # Watch layout.yml
  layout watch --debounce 1s      # Coalesce rapid edits for longer`,
	RunE: runWatchSpec,
}

var watchDebounce time.Duration

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 300*time.Millisecond, "Delay before regenerating after a change")
}

func runWatchSpec(cmd *cobra.Command, args []string) error {
	cfg, err := loadToolConfig()
	if err != nil {
		return err
	}

	logger := newLogger(cfg)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	regenerate := func() {
		specCfg, err := loadSpec(cfg)
		if err != nil {
			logger.Error(ctx, err, "specification unreadable, waiting for next change")
			return
		}

		gen := generator.New(osfs.New("."), fetch.NewGitFetcher("."), logger)
		report, err := gen.Generate(ctx, specCfg)
		if err != nil {
			logger.Error(ctx, err, "generation failed, waiting for next change")
			return
		}

		printSummary(report)
	}

	regenerate()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory, not the file: editors replace files on save,
	// which drops a watch placed on the file itself.
	specPath := filepath.Clean(cfg.SpecFile)
	if err := watcher.Add(filepath.Dir(specPath)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", specPath, err)
	}

	fmt.Printf("Watching %s (Ctrl+C to stop)\n", specPath)

	var timer *time.Timer
	fire := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != specPath {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(watchDebounce, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})

		case <-fire:
			regenerate()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn(ctx, err, "watch error")
		}
	}
}
