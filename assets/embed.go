// assets/embed.go
//
// Embedded static files: the HTML page template and SQL migrations.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed index.html.tmpl sql/*.sql
var FS embed.FS

// PageTemplate is the name of the guess page template inside FS.
const PageTemplate = "index.html.tmpl"

// Migrations returns the sql/ subtree, one migration per *.sql file.
func Migrations() fs.FS {
	sub, err := fs.Sub(FS, "sql")
	if err != nil {
		// sql/ is embedded at build time; Sub only fails on an invalid path.
		panic(err)
	}
	return sub
}
