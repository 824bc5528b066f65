package src

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/dhowden/tag"
	"github.com/spf13/afero"

	"github.com/ironsmile/mosaic/src/playlists"
)

// songFromFile reads the tags of the media file at `path` and returns the
// local song for it. Files without tags are accepted and titled by their
// file name.
func songFromFile(fsys afero.Fs, path string) (playlists.Song, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return playlists.Song{}, fmt.Errorf("resolving %s: %w", path, err)
	}

	fh, err := fsys.Open(absPath)
	if err != nil {
		return playlists.Song{}, fmt.Errorf("opening song file: %w", err)
	}
	defer fh.Close()

	song := playlists.Song{
		Ref:      absPath,
		Provider: playlists.LocalProvider,
		Path:     absPath,
	}

	meta, err := tag.ReadFrom(fh)
	if errors.Is(err, tag.ErrNoTagsFound) {
		log.Debugf("No tags in %s", absPath)
	} else if err != nil {
		log.Warnf("Reading tags of %s: %s", absPath, err)
	} else {
		song.Title = strings.TrimSpace(meta.Title())
		song.Artist = strings.TrimSpace(meta.Artist())
		song.Album = strings.TrimSpace(meta.Album())
	}

	if song.Title == "" {
		base := filepath.Base(absPath)
		song.Title = strings.TrimSuffix(base, filepath.Ext(base))
	}

	return song, nil
}
