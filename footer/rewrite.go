// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package footer

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// Outcome is the result of processing a single page.
type Outcome int

// Possible outcomes, in the order they are reported in a summary.
const (
	Updated  Outcome = iota // old footer replaced
	Skipped                 // sentinel already present
	NotFound                // neither sentinel nor old footer present
	Failed                  // page could not be read, decoded or written
)

// Outcomes lists every Outcome.
var Outcomes = []Outcome{Updated, Skipped, NotFound, Failed}

var outcomeTags = [...]string{
	Updated:  "updated",
	Skipped:  "skipped",
	NotFound: "not_found",
	Failed:   "error",
}

func (o Outcome) String() string {
	if o < 0 || int(o) >= len(outcomeTags) {
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
	return outcomeTags[o]
}

// Kinds of [FileError].
var (
	ErrRead   = errors.New("read")
	ErrDecode = errors.New("decode")
	ErrWrite  = errors.New("write")
)

// FileError records a failure to process a page.
//
// It matches both its Kind and its cause with [errors.Is].
type FileError struct {
	Path string
	Kind error // ErrRead, ErrDecode or ErrWrite
	Err  error
}

func (e *FileError) Error() string { return fmt.Sprintf("%v %s: %v", e.Kind, e.Path, e.Err) }

func (e *FileError) Unwrap() []error { return []error{e.Kind, e.Err} }

// Result is the outcome of [Rewrite] for one page.
type Result struct {
	Path    string
	Outcome Outcome
	// Err is a *FileError when Outcome is Failed, and nil otherwise.
	Err error
}

// Replaced in tests.
var (
	readFile  = os.ReadFile
	writeFile = os.WriteFile
)

// Rewrite classifies the page at path and replaces its footer if needed.
//
// The page is written at most once, and only when the outcome is Updated.
// Only the first occurrence of cfg.OldFooter is replaced.
func Rewrite(cfg Config, path string) Result {
	fail := func(kind, err error) Result {
		return Result{Path: path, Outcome: Failed, Err: &FileError{Path: path, Kind: kind, Err: err}}
	}

	b, err := readFile(path)
	if err != nil {
		return fail(ErrRead, err)
	}
	b, _, err = transform.Bytes(encoding.UTF8Validator, b)
	if err != nil {
		return fail(ErrDecode, err)
	}

	content := string(b)
	switch {
	case strings.Contains(content, cfg.Sentinel):
		return Result{Path: path, Outcome: Skipped}
	case !strings.Contains(content, cfg.OldFooter):
		return Result{Path: path, Outcome: NotFound}
	}

	content = strings.Replace(content, cfg.OldFooter, cfg.NewFooter, 1)
	if err := writeFile(path, []byte(content), 0o644); err != nil {
		return fail(ErrWrite, err)
	}
	return Result{Path: path, Outcome: Updated}
}
