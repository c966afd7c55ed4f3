// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package footer

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"golang.org/x/tools/txtar"

	"go.astrophena.name/footers/testutil"
)

func TestEnumerate(t *testing.T) {
	ar := txtar.Parse([]byte(`-- c.html --
-- a.html --
-- b.htm --
-- guide.html --
-- 404.html --
-- notes.txt --
-- page.html.bak --
-- sub/d.html --
-- dir.html/e.html --
`))
	dir := t.TempDir()
	testutil.ExtractTxtar(t, ar, dir)

	cfg := Default()
	cfg.Root = dir
	got, err := Enumerate(cfg)
	testutil.AssertEqual(t, err, nil)

	var names []string
	for _, path := range got {
		testutil.AssertEqual(t, filepath.Dir(path), dir)
		names = append(names, filepath.Base(path))
	}
	testutil.AssertEqual(t, names, []string{"a.html", "c.html"})
}

func TestEnumerateEmptyDir(t *testing.T) {
	cfg := Default()
	cfg.Root = t.TempDir()
	got, err := Enumerate(cfg)
	testutil.AssertEqual(t, err, nil)
	testutil.AssertEqual(t, len(got), 0)
}

func TestEnumerateMissingDir(t *testing.T) {
	cfg := Default()
	cfg.Root = filepath.Join(t.TempDir(), "missing")
	_, err := Enumerate(cfg)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("Enumerate() error = %v, want fs.ErrNotExist", err)
	}
}

func TestEnumerateInvalidPattern(t *testing.T) {
	cfg := Default()
	cfg.Root = t.TempDir()
	cfg.Pattern = "[*.html"
	if _, err := Enumerate(cfg); err == nil {
		t.Fatal("Enumerate() with an invalid pattern must fail")
	}
}
