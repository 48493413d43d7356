package cli

import (
	"log"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"

	"rustmap/internal/scan"
)

// ScanProgress reports scan progress with a progress bar.
type ScanProgress struct {
	quiet bool
	mu    sync.Mutex
	bar   *progressbar.ProgressBar
}

// NewScanProgress creates a progress reporter; quiet suppresses all
// non-error output.
func NewScanProgress(quiet bool) *ScanProgress {
	return &ScanProgress{quiet: quiet}
}

func (p *ScanProgress) OnStart(totalFiles int) {
	if p.quiet {
		return
	}
	log.Printf("Scanning %d Rust file(s)", totalFiles)
	p.bar = progressbar.NewOptions(totalFiles,
		progressbar.OptionSetDescription("extracting"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func (p *ScanProgress) OnFile(path string, err error) {
	if err != nil {
		log.Printf("Warning: %s: %v", path, err)
	}
	if p.quiet {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.bar != nil {
		p.bar.Add(1)
	}
}

func (p *ScanProgress) OnComplete(summary scan.Summary) {
	if p.quiet {
		return
	}
	if p.bar != nil {
		p.bar.Finish()
	}
	log.Printf("Scanned %d, skipped %d unchanged, %d failed in %s",
		summary.Scanned, summary.Skipped, summary.Failed, summary.Duration.Round(time.Millisecond))
}
