//go:build !windows

/*
   Helpers for all non-windows machines
*/

package helpers

import "os"

// MosaicDir is the name of the Mosaic directory in the user's home directory
const MosaicDir = ".mosaic"

func userBaseDir() (string, error) {
	return os.UserHomeDir()
}
