package artfetch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/dhowden/tag"
	"github.com/ironsmile/mosaic/src/art"
	"github.com/ironsmile/mosaic/src/playlists"
	"github.com/spf13/afero"
)

// EmbeddedSource returns the picture stored in the tags of the song file.
type EmbeddedSource struct {
	fs afero.Fs
}

// NewEmbeddedSource returns a source which reads song files from fs.
func NewEmbeddedSource(fs afero.Fs) *EmbeddedSource {
	return &EmbeddedSource{fs: fs}
}

// Name implements Source.
func (s *EmbeddedSource) Name() string {
	return "embedded"
}

// FindArt implements Source.
func (s *EmbeddedSource) FindArt(
	_ context.Context,
	song playlists.Song,
) (io.ReadCloser, error) {
	if song.Path == "" {
		return nil, ErrArtNotFound
	}

	fh, err := s.fs.Open(song.Path)
	if err != nil {
		return nil, fmt.Errorf("opening song file: %w", err)
	}
	defer fh.Close()

	m, err := tag.ReadFrom(fh)
	if errors.Is(err, tag.ErrNoTagsFound) {
		return nil, ErrArtNotFound
	} else if err != nil {
		return nil, fmt.Errorf("reading tags: %w", err)
	}

	pic := m.Picture()
	if pic == nil || len(pic.Data) == 0 {
		return nil, ErrArtNotFound
	}

	return io.NopCloser(bytes.NewReader(pic.Data)), nil
}

var imagesRegexp = regexp.MustCompile(`(?i).*\.(png|gif|jpeg|jpg|webp|bmp)$`)

// FolderSource looks for an image file next to the song file. Files named like
// cover art are preferred over other images.
type FolderSource struct {
	fs afero.Fs
}

// NewFolderSource returns a source which looks for images in fs.
func NewFolderSource(fs afero.Fs) *FolderSource {
	return &FolderSource{fs: fs}
}

// Name implements Source.
func (s *FolderSource) Name() string {
	return "folder"
}

// FindArt implements Source.
func (s *FolderSource) FindArt(
	_ context.Context,
	song playlists.Song,
) (io.ReadCloser, error) {
	if song.Path == "" {
		return nil, ErrArtNotFound
	}

	dir := filepath.Dir(song.Path)
	entries, err := afero.ReadDir(s.fs, dir)
	if err != nil {
		return nil, fmt.Errorf("listing song directory: %w", err)
	}

	var (
		selected string
		score    int
	)

	for _, entry := range entries {
		if entry.IsDir() || !imagesRegexp.MatchString(entry.Name()) {
			continue
		}

		pathScore := artworkScore(entry.Name())
		if pathScore > score {
			selected = filepath.Join(dir, entry.Name())
			score = pathScore
		}
	}

	if selected == "" {
		return nil, ErrArtNotFound
	}

	return s.fs.Open(selected)
}

// artworkScore tells how likely is a file with this name to be the album art.
func artworkScore(name string) int {
	fileBase := strings.ToLower(name)

	switch {
	case strings.HasPrefix(fileBase, "cover.") || strings.HasPrefix(fileBase, "front."):
		return 15
	case strings.Contains(fileBase, "cover") || strings.Contains(fileBase, "front"):
		return 10
	case strings.Contains(fileBase, "artwork") || strings.Contains(fileBase, "folder"):
		return 8
	default:
		return 5
	}
}

// RemoteSource finds the album front cover on the internet.
type RemoteSource struct {
	finder art.Finder
}

// NewRemoteSource returns a source which uses finder for looking up album art.
func NewRemoteSource(finder art.Finder) *RemoteSource {
	return &RemoteSource{finder: finder}
}

// Name implements Source.
func (s *RemoteSource) Name() string {
	return "remote"
}

// FindArt implements Source.
func (s *RemoteSource) FindArt(
	ctx context.Context,
	song playlists.Song,
) (io.ReadCloser, error) {
	img, err := s.finder.GetFrontImage(ctx, song.Artist, song.Album)
	if errors.Is(err, art.ErrImageNotFound) {
		return nil, ErrArtNotFound
	} else if err != nil {
		return nil, err
	}

	return io.NopCloser(bytes.NewReader(img)), nil
}
