// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package footer

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/gobwas/glob"
)

// Enumerate returns the paths of the files directly under cfg.Root whose
// names match cfg.Pattern and are not excluded, sorted by name.
// Subdirectories are neither returned nor descended into.
func Enumerate(cfg Config) ([]string, error) {
	g, err := glob.Compile(cfg.Pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", cfg.Pattern, err)
	}

	entries, err := os.ReadDir(cfg.Root)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !g.Match(name) || cfg.Excluded(name) {
			continue
		}
		files = append(files, filepath.Join(cfg.Root, name))
	}
	slices.Sort(files)
	return files, nil
}
