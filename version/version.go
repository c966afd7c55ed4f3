// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package version reports build information of the running program.
package version

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"

	"go.astrophena.name/footers/syncx"
)

// Info describes a build of the program.
type Info struct {
	Name      string
	Version   string
	Commit    string
	Modified  bool
	GoVersion string
}

// String returns a multi-line, human-readable form of i.
func (i Info) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s", i.Name, i.Version)
	if i.Commit != "" {
		fmt.Fprintf(&sb, " (%s", i.Commit)
		if i.Modified {
			sb.WriteString(", modified")
		}
		sb.WriteString(")")
	}
	fmt.Fprintf(&sb, "\nbuilt with %s\n", i.GoVersion)
	return sb.String()
}

var info syncx.Lazy[Info]

// Version returns build information read from the binary.
func Version() Info {
	return info.Get(func() Info {
		i := Info{Name: CmdName(), Version: "devel"}
		bi, ok := debug.ReadBuildInfo()
		if !ok {
			return i
		}
		i.GoVersion = bi.GoVersion
		if v := bi.Main.Version; v != "" && v != "(devel)" {
			i.Version = v
		}
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				i.Commit = s.Value
			case "vcs.modified":
				i.Modified = s.Value == "true"
			}
		}
		return i
	})
}

// CmdName returns the base name of the current executable.
func CmdName() string {
	exe, err := os.Executable()
	if err != nil {
		exe = os.Args[0]
	}
	return strings.TrimSuffix(filepath.Base(exe), ".exe")
}
