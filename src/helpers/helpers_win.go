//go:build windows

package helpers

import "os"

// MosaicDir is the name of the Mosaic directory in the user's %APPDATA%
const MosaicDir = "mosaic"

func userBaseDir() (string, error) {
	return os.UserConfigDir()
}
