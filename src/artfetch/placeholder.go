package artfetch

import (
	"hash/fnv"
	"image"
	"image/color"

	"github.com/ironsmile/mosaic/src/playlists"
	"golang.org/x/image/draw"
)

// Placeholder returns a size x size image which stands in for missing song art.
// Its colors depend only on the song's album and artist so that all songs from
// the same album get the same placeholder.
func Placeholder(song playlists.Song, size int) image.Image {
	h := fnv.New32a()
	_, _ = h.Write([]byte(song.Artist))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(song.Album))
	sum := h.Sum32()

	bg := color.NRGBA{
		R: 64 + uint8(sum)%128,
		G: 64 + uint8(sum>>8)%128,
		B: 64 + uint8(sum>>16)%128,
		A: 0xff,
	}
	fg := color.NRGBA{
		R: bg.R + 48,
		G: bg.G + 48,
		B: bg.B + 48,
		A: 0xff,
	}

	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	inner := image.Rect(size/4, size/4, size-size/4, size-size/4)
	draw.Draw(img, inner, image.NewUniform(fg), image.Point{}, draw.Src)

	return img
}
