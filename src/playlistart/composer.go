package playlistart

import (
	"context"
	"errors"
	"image"
	"time"

	"github.com/ironsmile/mosaic/src/playlists"
)

// ErrNoArt is returned by Composer.Compose when no art could be composed for
// a playlist.
var ErrNoArt = errors.New("no art for playlist")

// composeGrace is how long after the watchdog timeout Compose keeps waiting
// for the watchdog delivery.
const composeGrace = 500 * time.Millisecond

// Composer composes playlist art synchronously. Every Compose call uses its
// own Builder so calls could run concurrently.
type Composer struct {
	ctx     context.Context
	fetcher Fetcher
	songs   playlists.SongRetriever
	opts    []Option
}

// NewComposer returns a Composer whose builders are created with the given
// collaborators and options.
func NewComposer(
	ctx context.Context,
	fetcher Fetcher,
	songs playlists.SongRetriever,
	opts ...Option,
) *Composer {
	return &Composer{
		ctx:     ctx,
		fetcher: fetcher,
		songs:   songs,
		opts:    opts,
	}
}

// Compose builds the art for `pl` and waits for it. It returns ErrNoArt when
// the playlist is empty or when nothing arrived before the watchdog expired.
func (c *Composer) Compose(ctx context.Context, pl playlists.Playlist) (image.Image, error) {
	if pl.SongsCount() == 0 {
		return nil, ErrNoArt
	}

	b := New(c.ctx, c.fetcher, c.songs, c.opts...)
	defer b.Close()

	results := make(chan image.Image, 1)
	b.Start(pl, CallbackFunc(func(img image.Image) error {
		select {
		case results <- img:
		default:
		}
		return nil
	}))

	timer := time.NewTimer(b.watchdogTimeout + composeGrace)
	defer timer.Stop()

	select {
	case img := <-results:
		return img, nil
	case <-timer.C:
		return nil, ErrNoArt
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
