// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package version

import (
	"strings"
	"testing"

	"go.astrophena.name/footers/testutil"
)

func TestInfoString(t *testing.T) {
	cases := map[string]struct {
		in   Info
		want string
	}{
		"no commit": {
			in:   Info{Name: "update-footers", Version: "devel", GoVersion: "go1.26.0"},
			want: "update-footers devel\nbuilt with go1.26.0\n",
		},
		"clean commit": {
			in:   Info{Name: "update-footers", Version: "v1.0.0", Commit: "abc123", GoVersion: "go1.26.0"},
			want: "update-footers v1.0.0 (abc123)\nbuilt with go1.26.0\n",
		},
		"modified commit": {
			in:   Info{Name: "update-footers", Version: "devel", Commit: "abc123", Modified: true, GoVersion: "go1.26.0"},
			want: "update-footers devel (abc123, modified)\nbuilt with go1.26.0\n",
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, tc.in.String(), tc.want)
		})
	}
}

func TestVersion(t *testing.T) {
	v := Version()
	if v.Name == "" {
		t.Fatal("Name must not be empty")
	}
	if !strings.HasPrefix(v.GoVersion, "go") {
		t.Fatalf("GoVersion = %q, want a go version", v.GoVersion)
	}
	testutil.AssertEqual(t, Version(), v)
}
