// Mosaic composes cover art for music playlists.
//
// This file is only here to make installing with go get easier. The actual
// source lives in the src directory.
package main

import (
	"embed"
	"fmt"
	"io/fs"
	"os"

	"github.com/ironsmile/mosaic/src"
)

// sqlFilesFS is the directory which contains the SQL migrations for
// sql-migrate and the initial schema. If the embedded directory name
// changes, remember to change it in main() too.
//
//go:embed sqls
var sqlFilesFS embed.FS

func main() {
	sqls, err := fs.Sub(sqlFilesFS, "sqls")
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading sqls subFS: %s\n", err)
		os.Exit(1)
	}

	src.Main(sqls)
}
