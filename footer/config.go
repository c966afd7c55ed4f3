// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package footer

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/gobwas/glob"
)

// Sentinel marks a page whose footer already carries the network links.
const Sentinel = "Studio 4e in Sicilia"

// OldFooter is the copyright-only footer of unmigrated article pages.
const OldFooter = `    <footer class="footer">
        <div class="container">© 2026 Architetti Taormina by Studio 4e.</div>
    </footer>`

// NewFooter replaces [OldFooter].
const NewFooter = `    <footer class="footer">
        <div class="container">
© 2026 Architetti Taormina by Studio 4e.
<div style="margin-top:12px; padding-top:12px; border-top:1px solid rgba(0,0,0,.06); font-size:11px; color:#888; font-family:'Montserrat', sans-serif;">
Studio 4e in Sicilia:
<a href="https://architettisicilia.it" style="color:#888; text-decoration:none; transition:color 0.3s;" onmouseover="this.style.color='#7a1d52'" onmouseout="this.style.color='#888'">Architetti Sicilia</a> ·
<a href="https://architettipalermo.com" style="color:#888; text-decoration:none; transition:color 0.3s;" onmouseover="this.style.color='#7a1d52'" onmouseout="this.style.color='#888'">Architetti Palermo</a> ·
<a href="https://architetticatania.it" style="color:#888; text-decoration:none; transition:color 0.3s;" onmouseover="this.style.color='#7a1d52'" onmouseout="this.style.color='#888'">Architetti Catania</a> ·
<a href="https://architettitrapani.com" style="color:#888; text-decoration:none; transition:color 0.3s;" onmouseover="this.style.color='#7a1d52'" onmouseout="this.style.color='#888'">Architetti Trapani</a> ·
<span style="color:#666">Architetti Taormina</span>
</div>
        </div>
    </footer>`

// Config describes one footer migration.
//
// A Config is a plain value: [Run] never modifies it.
type Config struct {
	// Root is the directory holding the pages. It is not searched recursively.
	Root string
	// Pattern selects candidate file names, in github.com/gobwas/glob syntax.
	Pattern string
	// Exclude lists base names that are never read or written.
	Exclude []string

	OldFooter string
	NewFooter string
	Sentinel  string
}

// Default returns the configuration of the Architetti Taormina site.
func Default() Config {
	return Config{
		Root:    "/home/user/architetti-taormina",
		Pattern: "*.html",
		Exclude: []string{
			"index.html",
			"404.html",
			"article-template.html",
			"contatti.html",
			"guide.html",
			"villas.html",
		},
		OldFooter: OldFooter,
		NewFooter: NewFooter,
		Sentinel:  Sentinel,
	}
}

// Excluded reports whether the file with base name name must be left alone.
func (c Config) Excluded(name string) bool { return slices.Contains(c.Exclude, name) }

// Validate checks that c describes a migration that can be run more than
// once without changing the result.
func (c Config) Validate() error {
	var errs []error
	for _, f := range []struct{ name, val string }{
		{"root", c.Root},
		{"pattern", c.Pattern},
		{"old footer", c.OldFooter},
		{"new footer", c.NewFooter},
		{"sentinel", c.Sentinel},
	} {
		if f.val == "" {
			errs = append(errs, fmt.Errorf("%s is empty", f.name))
		}
	}
	if c.Pattern != "" {
		if _, err := glob.Compile(c.Pattern); err != nil {
			errs = append(errs, fmt.Errorf("invalid pattern %q: %w", c.Pattern, err))
		}
	}
	if c.Sentinel != "" && !strings.Contains(c.NewFooter, c.Sentinel) {
		errs = append(errs, fmt.Errorf("new footer does not contain sentinel %q", c.Sentinel))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("footer: invalid config: %w", err)
	}
	return nil
}
