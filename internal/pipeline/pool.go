// Package pipeline runs bulk text extraction over a bounded worker pool.
package pipeline

import (
	"context"
	"crypto/sha256"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// TextExtractor turns file bytes into flat text. It must not fail.
type TextExtractor interface {
	ExtractText(data []byte, filename string) string
}

// File is one uploaded file in a batch.
type File struct {
	Name string
	Data []byte
}

// Result is the outcome for one file. Error is set only when the file was
// never extracted because the batch was cancelled.
type Result struct {
	Filename    string `json:"filename"`
	Text        string `json:"text"`
	ContentHash string `json:"contentHash,omitempty"`
	Error       string `json:"error,omitempty"`
}

// Pool extracts many files concurrently with a fixed number of workers.
type Pool struct {
	ex      TextExtractor
	workers int
	timeout time.Duration
	log     *slog.Logger
}

// DefaultWorkers leaves one CPU free for request handling.
func DefaultWorkers() int {
	return max(1, runtime.NumCPU()-1)
}

// NewPool creates a pool. workers <= 0 selects DefaultWorkers; timeout 0
// means the batch runs until the caller's context ends. A nil log selects
// slog.Default.
func NewPool(ex TextExtractor, workers int, timeout time.Duration, log *slog.Logger) *Pool {
	if workers <= 0 {
		workers = DefaultWorkers()
	}
	if log == nil {
		log = slog.Default()
	}
	return &Pool{ex: ex, workers: workers, timeout: timeout, log: log}
}

func (p *Pool) Workers() int { return p.workers }

// ExtractAll extracts every file and returns results in input order once all
// admitted files have finished. When ctx ends, no further files are admitted
// and each unstarted file carries the context error.
func (p *Pool) ExtractAll(ctx context.Context, files []File) []Result {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	start := time.Now()
	results := make([]Result, len(files))
	sem := semaphore.NewWeighted(int64(p.workers))
	var g errgroup.Group

	admitted := 0
	for i, f := range files {
		err := ctx.Err()
		if err == nil {
			err = sem.Acquire(ctx, 1)
		}
		if err != nil {
			p.log.Warn("batch cancelled", "admitted", admitted, "total", len(files), "error", err)
			for j := i; j < len(files); j++ {
				results[j] = Result{Filename: files[j].Name, Error: err.Error()}
			}
			break
		}
		admitted++
		i, f := i, f
		g.Go(func() error {
			defer sem.Release(1)
			results[i] = Result{
				Filename:    f.Name,
				Text:        p.ex.ExtractText(f.Data, f.Name),
				ContentHash: ContentHashHex(f.Data),
			}
			return nil
		})
	}
	g.Wait()

	p.log.Info("batch extracted",
		"files", len(files),
		"admitted", admitted,
		"workers", p.workers,
		"elapsed", time.Since(start),
	)
	return results
}

// ContentHashHex computes SHA-256 of content and returns hex string.
func ContentHashHex(data []byte) string {
	h := sha256.Sum256(data)
	return fmt.Sprintf("%x", h[:])
}
