// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Package footer migrates the footer of static article pages.

Each candidate page is classified by its content:

  - pages containing the sentinel are already migrated and are skipped;
  - pages without the old footer are reported and left alone;
  - in all other pages the old footer is replaced by the new one.

Matching is a literal substring comparison; pages are not parsed as HTML.
Running the migration again over the same pages changes nothing and reports
every previously updated page as skipped.

# Usage

	s, err := footer.Run(ctx, footer.Default(), os.Stdout)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(s.Count(footer.Updated), "pages updated")
*/
package footer
