package artfetch_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/bogem/id3v2"
	"github.com/ironsmile/mosaic/src/art"
	"github.com/ironsmile/mosaic/src/art/artfakes"
	"github.com/ironsmile/mosaic/src/artfetch"
	"github.com/ironsmile/mosaic/src/assert"
	"github.com/ironsmile/mosaic/src/playlists"
	"github.com/spf13/afero"
)

// id3WithPicture returns an ID3v2 tag which carries `picture` as its front
// cover, followed by something which looks like audio.
func id3WithPicture(t *testing.T, picture []byte) []byte {
	t.Helper()

	tag := id3v2.NewEmptyTag()
	tag.SetTitle("Airbag")
	tag.AddAttachedPicture(id3v2.PictureFrame{
		Encoding:    id3v2.EncodingUTF8,
		MimeType:    "image/png",
		PictureType: id3v2.PTFrontCover,
		Description: "Cover",
		Picture:     picture,
	})

	var buf bytes.Buffer
	_, err := tag.WriteTo(&buf)
	assert.NilErr(t, err, "writing ID3 tag")
	buf.Write(bytes.Repeat([]byte{0xff, 0xfb, 0x90, 0x00}, 64))

	return buf.Bytes()
}

func readAll(t *testing.T, rc io.ReadCloser) []byte {
	t.Helper()
	defer rc.Close()

	data, err := io.ReadAll(rc)
	assert.NilErr(t, err, "reading returned art")
	return data
}

func TestEmbeddedSource(t *testing.T) {
	fs := afero.NewMemMapFs()
	picture := []byte("\x89PNG fake picture data")

	err := afero.WriteFile(fs, "/music/album/01.mp3", id3WithPicture(t, picture), 0644)
	assert.NilErr(t, err)

	err = afero.WriteFile(fs, "/music/album/02.mp3", bytes.Repeat([]byte("no tags "), 64), 0644)
	assert.NilErr(t, err)

	src := artfetch.NewEmbeddedSource(fs)
	assert.Equal(t, "embedded", src.Name())
	ctx := context.Background()

	rc, err := src.FindArt(ctx, playlists.Song{Path: "/music/album/01.mp3"})
	assert.NilErr(t, err, "finding embedded art")
	assert.Equal(t, string(picture), string(readAll(t, rc)))

	_, err = src.FindArt(ctx, playlists.Song{Path: "/music/album/02.mp3"})
	assert.ErrorIs(t, err, artfetch.ErrArtNotFound, "file without tags")

	_, err = src.FindArt(ctx, playlists.Song{Ref: "no-path"})
	assert.ErrorIs(t, err, artfetch.ErrArtNotFound, "song without a path")

	_, err = src.FindArt(ctx, playlists.Song{Path: "/music/album/missing.mp3"})
	assert.NotNilErr(t, err, "missing file")
}

func TestFolderSource(t *testing.T) {
	tests := []struct {
		desc     string
		files    []string
		expected string
	}{
		{
			desc:     "cover file wins",
			files:    []string{"back.jpg", "my front side.png", "cover.jpg", "artwork.png"},
			expected: "cover.jpg",
		},
		{
			desc:     "names containing cover",
			files:    []string{"booklet.jpg", "album-cover-big.png"},
			expected: "album-cover-big.png",
		},
		{
			desc:     "artwork over random images",
			files:    []string{"a.jpg", "Artwork.PNG"},
			expected: "Artwork.PNG",
		},
		{
			desc:     "any image will do",
			files:    []string{"notes.txt", "scan.gif"},
			expected: "scan.gif",
		},
		{
			desc:  "no images",
			files: []string{"notes.txt", "02.mp3"},
		},
	}

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			assert.NilErr(t, afero.WriteFile(fs, "/music/album/01.mp3", []byte("song"), 0644))
			for _, name := range test.files {
				err := afero.WriteFile(fs, "/music/album/"+name, []byte(name), 0644)
				assert.NilErr(t, err)
			}

			src := artfetch.NewFolderSource(fs)
			rc, err := src.FindArt(context.Background(), playlists.Song{
				Path: "/music/album/01.mp3",
			})

			if test.expected == "" {
				assert.ErrorIs(t, err, artfetch.ErrArtNotFound)
				return
			}

			assert.NilErr(t, err)
			assert.Equal(t, test.expected, string(readAll(t, rc)))
		})
	}
}

func TestFolderSourceWithoutPath(t *testing.T) {
	src := artfetch.NewFolderSource(afero.NewMemMapFs())
	_, err := src.FindArt(context.Background(), playlists.Song{Ref: "remote"})
	assert.ErrorIs(t, err, artfetch.ErrArtNotFound)
}

func TestRemoteSource(t *testing.T) {
	finder := &artfakes.FakeFinder{}
	finder.GetFrontImageReturnsOnCall(0, []byte("front"), nil)
	finder.GetFrontImageReturnsOnCall(1, nil, art.ErrImageNotFound)
	finder.GetFrontImageReturnsOnCall(2, nil, errors.New("timeout"))

	src := artfetch.NewRemoteSource(finder)
	assert.Equal(t, "remote", src.Name())

	song := playlists.Song{Artist: "Artist", Album: "Album"}
	ctx := context.Background()

	rc, err := src.FindArt(ctx, song)
	assert.NilErr(t, err)
	assert.Equal(t, "front", string(readAll(t, rc)))

	_, artist, album := finder.GetFrontImageArgsForCall(0)
	assert.Equal(t, "Artist", artist)
	assert.Equal(t, "Album", album)

	_, err = src.FindArt(ctx, song)
	assert.ErrorIs(t, err, artfetch.ErrArtNotFound)

	_, err = src.FindArt(ctx, song)
	assert.NotNilErr(t, err)
	if errors.Is(err, artfetch.ErrArtNotFound) {
		t.Errorf("network errors should not look like missing art")
	}
}
