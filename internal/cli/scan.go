package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"rustmap/internal/config"
	"rustmap/internal/outline"
	"rustmap/internal/scan"
	"rustmap/internal/storage"
)

var (
	scanQuiet   bool
	scanWatch   bool
	scanWorkers int
)

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan [dir]",
	Short: "Extract outlines for every Rust file under a directory",
	Long: `Scan discovers Rust source files under a directory (current directory by
default), extracts their outlines in parallel, and caches the results in
.rustmap/outline.db. Files whose content is unchanged since the last scan
are skipped.

Configuration is read from .rustmap/config.yml with RUSTMAP_* environment
overrides.

Examples:
  # Scan the current directory
  rustmap scan

  # Scan a crate and keep watching for changes
  rustmap scan ~/src/mycrate --watch
`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().BoolVarP(&scanQuiet, "quiet", "q", false, "Disable progress bars and non-error output")
	scanCmd.Flags().BoolVarP(&scanWatch, "watch", "w", false, "Watch for file changes and rescan incrementally")
	scanCmd.Flags().IntVar(&scanWorkers, "workers", 0, "Number of parallel workers (0 = one per CPU)")
}

func runScan(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nInterrupted! Cancelling scan...")
		cancel()
	}()

	rootDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}
	if len(args) == 1 {
		rootDir, err = filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("invalid directory %s: %w", args[0], err)
		}
	}

	cfg, err := config.LoadFromDir(rootDir)
	if err != nil {
		return err
	}

	store, err := storage.Open(cfg.CachePath(rootDir))
	if err != nil {
		return err
	}
	defer store.Close()

	discovery, err := scan.NewDiscovery(rootDir, cfg.Paths.Code, cfg.Paths.Ignore)
	if err != nil {
		return fmt.Errorf("invalid path patterns: %w", err)
	}

	files, err := discovery.Discover()
	if err != nil {
		return fmt.Errorf("file discovery failed: %w", err)
	}

	scanner := scan.NewScanner(outline.New(), store, cfg.Parse.IncludePrivate, scanWorkers)
	progress := NewScanProgress(scanQuiet)

	if _, err := scanner.ScanFiles(ctx, rootDir, files, progress); err != nil {
		return err
	}

	if !scanWatch {
		return nil
	}
	return watchAndRescan(ctx, rootDir, scanner)
}

// watchAndRescan keeps rescanning changed files until the context is
// cancelled.
func watchAndRescan(ctx context.Context, rootDir string, scanner *scan.Scanner) error {
	watcher, err := scan.NewWatcher(rootDir)
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	defer watcher.Stop()

	log.Printf("Watching %s for changes (Ctrl+C to stop)", rootDir)
	watcher.Start(ctx, func(files []string) {
		summary, err := scanner.ScanFiles(ctx, rootDir, files, nil)
		if err != nil {
			log.Printf("Rescan failed: %v", err)
			return
		}
		log.Printf("Rescanned %d file(s), %d failed", summary.Scanned, summary.Failed)
	})

	<-ctx.Done()
	return nil
}
