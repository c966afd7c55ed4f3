// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"flag"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.astrophena.name/footers/cli"
	"go.astrophena.name/footers/cli/clitest"
	"go.astrophena.name/footers/footer"
	"go.astrophena.name/footers/testutil"
)

func TestRun(t *testing.T) {
	var root string
	setup := func(t *testing.T) *app {
		cfg := footer.Default()
		cfg.Root = testutil.ExtractTxtarFile(t, filepath.Join("testdata", "site.txtar"))
		root = cfg.Root
		return &app{cfg: cfg}
	}

	clitest.Run(t, setup, map[string]clitest.Case[*app]{
		"migrates pages": {
			WantInStdout: "✓ Updated: chiesa.html\n- Skipped: duomo.html (already has network links)\n",
			CheckFunc: func(t *testing.T, a *app) {
				testutil.AssertEqual(t, a.summary.Count(footer.Updated), 1)
				testutil.AssertEqual(t, a.summary.Count(footer.Skipped), 1)

				b, err := os.ReadFile(filepath.Join(root, "chiesa.html"))
				if err != nil {
					t.Fatal(err)
				}
				if !strings.Contains(string(b), footer.NewFooter) {
					t.Errorf("chiesa.html was not migrated:\n%s", b)
				}
				idx, err := os.ReadFile(filepath.Join(root, "index.html"))
				if err != nil {
					t.Fatal(err)
				}
				if strings.Contains(string(idx), footer.Sentinel) {
					t.Error("index.html must not be modified")
				}
			},
		},
		"prints summary": {
			WantInStdout: "Updated:    1\nSkipped:    1\nNot found:  0\nErrors:     0\n",
		},
		"rejects arguments": {
			Args:    []string{"extra"},
			WantErr: cli.ErrInvalidArgs,
		},
		"help": {
			Args:         []string{"-help"},
			WantErr:      flag.ErrHelp,
			WantInStderr: "Update-footers adds the Studio 4e network links",
		},
	})
}

func TestRunMissingRoot(t *testing.T) {
	setup := func(t *testing.T) *app {
		cfg := footer.Default()
		cfg.Root = filepath.Join(t.TempDir(), "missing")
		return &app{cfg: cfg}
	}

	clitest.Run(t, setup, map[string]clitest.Case[*app]{
		"fails": {
			WantErrType: &fs.PathError{},
			CheckFunc: func(t *testing.T, a *app) {
				if a.summary != nil {
					t.Error("summary must not be set after a failed run")
				}
			},
		},
	})
}
