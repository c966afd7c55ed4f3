// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package footer

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"sync/atomic"

	"go.astrophena.name/footers/logger"
	"go.astrophena.name/footers/syncx"
)

// Run migrates every page selected by cfg, one at a time and in name
// order, printing a line per page and a final summary to w.
//
// Failures to process a single page are logged and counted; they do not
// stop the run. Run returns an error only if cfg is invalid or the pages
// cannot be listed.
func Run(ctx context.Context, cfg Config, w io.Writer) (*Summary, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	files, err := Enumerate(cfg)
	if err != nil {
		return nil, err
	}
	logger.Debug(ctx, "listed pages", slog.String("root", cfg.Root), slog.Int("count", len(files)))

	fmt.Fprintf(w, "Found %d article files to process\n", len(files))
	fmt.Fprintf(w, "Excluded %d special files\n\n", len(cfg.Exclude))

	s := new(Summary)
	for _, path := range files {
		res := Rewrite(cfg, path)
		s.Add(res.Outcome)
		if res.Err != nil {
			logger.Error(ctx, "processing failed", slog.String("path", path), slog.Any("err", res.Err))
		}
		fmt.Fprintln(w, res.line())
	}

	fmt.Fprintln(w)
	_, err = s.WriteTo(w)
	return s, err
}

func (r Result) line() string {
	name := filepath.Base(r.Path)
	switch r.Outcome {
	case Updated:
		return "✓ Updated: " + name
	case Skipped:
		return "- Skipped: " + name + " (already has network links)"
	case NotFound:
		return "⚠ Warning: " + name + " (footer pattern not found)"
	default:
		return "✗ Error: " + name
	}
}

// Summary counts outcomes of a run. It is safe for concurrent use.
// The zero value is an empty Summary. It should not be copied.
type Summary struct {
	counts syncx.Map[Outcome, *atomic.Int64]
}

// Add counts one occurrence of o.
func (s *Summary) Add(o Outcome) {
	c, _ := s.counts.LoadOrStore(o, new(atomic.Int64))
	c.Add(1)
}

// Count returns how many times o was added.
func (s *Summary) Count(o Outcome) int {
	c, ok := s.counts.Load(o)
	if !ok {
		return 0
	}
	return int(c.Load())
}

// Total returns the number of outcomes added.
func (s *Summary) Total() int {
	var n int
	for _, o := range Outcomes {
		n += s.Count(o)
	}
	return n
}

var summaryLabels = [...]string{
	Updated:  "Updated:",
	Skipped:  "Skipped:",
	NotFound: "Not found:",
	Failed:   "Errors:",
}

// WriteTo writes the summary table to w.
func (s *Summary) WriteTo(w io.Writer) (int64, error) {
	rule := strings.Repeat("=", 60)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s\nSUMMARY\n%s\n", rule, rule)
	for _, o := range Outcomes {
		fmt.Fprintf(&buf, "%-12s%d\n", summaryLabels[o], s.Count(o))
	}
	fmt.Fprintln(&buf, rule)
	return buf.WriteTo(w)
}
