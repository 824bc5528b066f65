/*
Package version provides version information and utilities.
*/
package version

import (
	"fmt"
	"io"
	"runtime"
)

// Version stores the current version of Mosaic. It is set during building.
var Version = "dev-unreleased"

// Print writes a plain text version information in out.
func Print(out io.Writer) {
	fmt.Fprintf(out, "Mosaic Playlist Art Composer %s\n", Version)
	fmt.Fprintf(out, "Build with %s for %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
