// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Update-footers adds the Studio 4e network links to the footer of every
article page of the Architetti Taormina site.

It looks at the *.html files directly inside /home/user/architetti-taormina,
except index.html, 404.html, article-template.html, contatti.html, guide.html
and villas.html. For each page it prints one line:

	✓ Updated   the copyright-only footer was replaced
	- Skipped   the page already has the network links
	⚠ Warning   the expected footer was not found; the page is unchanged
	✗ Error     the page could not be read or written; see the log

and finishes with a summary of the counts. Pages are rewritten in place
without a backup. Running it again is safe: migrated pages are skipped.

It takes no arguments.
*/
package main

import (
	_ "embed"

	"go.astrophena.name/footers/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
