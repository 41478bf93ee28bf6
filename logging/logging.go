// Package logging builds the game's structured logger and keeps the most
// recent entries in memory so they can be written to a log file.
package logging

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// TimeFormat is the timestamp layout used on every log line.
const TimeFormat = "2006-01-02 15:04:05"

// Options configures New.
type Options struct {
	Level    log.Level
	Output   io.Writer // defaults to os.Stderr
	RingSize int
}

// New returns the root logger and the ring that mirrors its output.
// Components derive their own logger with WithPrefix.
func New(opts Options) (*log.Logger, *Ring) {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	ring := NewRing(opts.RingSize)

	logger := log.NewWithOptions(io.MultiWriter(out, ring), log.Options{
		ReportTimestamp: true,
		TimeFormat:      TimeFormat,
		Level:           opts.Level,
	})
	return logger, ring
}

// Ring keeps the last N complete log lines. Each stored line has its leading
// timestamp wrapped in brackets: "[2006-01-02 15:04:05] INFO game: message".
type Ring struct {
	mu      sync.Mutex
	max     int
	lines   []string
	partial []byte
}

func NewRing(max int) *Ring {
	if max <= 0 {
		max = 50
	}
	return &Ring{max: max, lines: make([]string, 0, max)}
}

func (r *Ring) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.partial = append(r.partial, p...)
	for {
		i := bytes.IndexByte(r.partial, '\n')
		if i < 0 {
			break
		}
		line := strings.TrimRight(string(r.partial[:i]), "\r")
		r.partial = r.partial[i+1:]
		if line == "" {
			continue
		}
		r.push(bracketTimestamp(line))
	}
	return len(p), nil
}

func (r *Ring) push(line string) {
	if len(r.lines) >= r.max {
		copy(r.lines, r.lines[1:])
		r.lines = r.lines[:len(r.lines)-1]
	}
	r.lines = append(r.lines, line)
}

// Lines returns a copy of the buffered lines, oldest first.
func (r *Ring) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.lines...)
}

// Flush replaces the file at path with the buffered lines.
func (r *Ring) Flush(path string) error {
	lines := r.Lines()
	var buf bytes.Buffer
	for _, line := range lines {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("logging: create log dir: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("logging: write %s: %w", path, err)
	}
	return nil
}

func bracketTimestamp(line string) string {
	if len(line) < len(TimeFormat) {
		return line
	}
	if _, err := time.Parse(TimeFormat, line[:len(TimeFormat)]); err != nil {
		return line
	}
	return "[" + line[:len(TimeFormat)] + "]" + line[len(TimeFormat):]
}

// Flusher writes a Ring to disk on a fixed interval and once more when it is
// stopped.
type Flusher struct {
	ring     *Ring
	path     string
	interval time.Duration
	logger   *log.Logger

	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
	err    error
}

// StartFlusher begins periodic flushing until ctx is cancelled or Stop is called.
func StartFlusher(ctx context.Context, ring *Ring, path string, interval time.Duration, logger *log.Logger) *Flusher {
	ctx, cancel := context.WithCancel(ctx)
	f := &Flusher{
		ring:     ring,
		path:     path,
		interval: interval,
		logger:   logger,
		cancel:   cancel,
		done:     make(chan struct{}),
	}
	go f.run(ctx)
	return f
}

func (f *Flusher) run(ctx context.Context) {
	defer close(f.done)

	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := f.ring.Flush(f.path); err != nil {
				f.logger.Warn("log flush failed", "err", err)
			}
		case <-ctx.Done():
			return
		}
	}
}

// Stop ends the periodic flush and writes the final contents of the ring.
func (f *Flusher) Stop() error {
	f.once.Do(func() {
		f.cancel()
		<-f.done
		f.err = f.ring.Flush(f.path)
	})
	return f.err
}
