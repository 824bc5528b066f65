package artfetch

import (
	"context"
	"errors"
	"image"
	"io"

	"github.com/charmbracelet/log"
	"github.com/ironsmile/mosaic/src/playlists"
	"golang.org/x/sync/semaphore"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// ErrArtNotFound is returned by sources which have no art for a song.
var ErrArtNotFound = errors.New("art not found")

// DoneFunc receives the result of a fetch. `img` is nil when no art could be
// found for the song.
type DoneFunc func(img image.Image, song playlists.Song)

//counterfeiter:generate . Handle

// Handle is an in-flight art fetch.
type Handle interface {
	// Cancel stops the fetch. The DoneFunc of a fetch is not started after
	// Cancel returns.
	Cancel()

	// Done is closed when the fetch has finished, successfully or not.
	Done() <-chan struct{}
}

//counterfeiter:generate . Source

// Source is a single place where art for songs could be found.
type Source interface {
	// Name is a short name for the source used in logs.
	Name() string

	// FindArt returns the encoded image for `song`. It returns ErrArtNotFound
	// when it has nothing for this song.
	FindArt(ctx context.Context, song playlists.Song) (io.ReadCloser, error)
}

//counterfeiter:generate . Decoder

// Decoder converts encoded images to image.Image. *scaler.Scaler implements it.
type Decoder interface {
	Decode(ctx context.Context, r io.Reader, maxSize int) (image.Image, error)
}

// Config holds the Service settings.
type Config struct {
	// Concurrency is the maximum number of songs for which art is looked up
	// at the same time. Zero or less means 4.
	Concurrency int

	// MaxSize bounds the width and height of fetched images. Zero means no
	// limit.
	MaxSize int

	// PlaceholderSize is the width and height of placeholder images. Zero
	// or less means 300.
	PlaceholderSize int
}

// Service fetches song art asynchronously from a chain of sources. It is safe
// for concurrent use.
type Service struct {
	ctx     context.Context
	sources []Source
	decoder Decoder
	sem     *semaphore.Weighted

	maxSize         int
	placeholderSize int
}

// New returns a Service which looks for art in `sources` in order. All fetches
// are stopped when ctx is done.
func New(ctx context.Context, decoder Decoder, cfg Config, sources ...Source) *Service {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 4
	}
	if cfg.PlaceholderSize <= 0 {
		cfg.PlaceholderSize = 300
	}

	return &Service{
		ctx:             ctx,
		sources:         sources,
		decoder:         decoder,
		sem:             semaphore.NewWeighted(int64(cfg.Concurrency)),
		maxSize:         cfg.MaxSize,
		placeholderSize: cfg.PlaceholderSize,
	}
}

// FetchArt starts looking for the art of `song` and returns immediately. `done`
// is called exactly once from another goroutine with the result unless the
// returned Handle is cancelled first. When nothing is found and
// `allowPlaceholder` is true a generated placeholder image is returned instead
// of nil.
func (s *Service) FetchArt(
	song playlists.Song,
	allowPlaceholder bool,
	done DoneFunc,
) Handle {
	ctx, cancel := context.WithCancel(s.ctx)
	t := &task{
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go func() {
		defer close(t.done)
		defer cancel()

		img := s.fetch(ctx, song)
		if img == nil && allowPlaceholder {
			img = Placeholder(song, s.placeholderSize)
		}

		t.deliver(func() {
			done(img, song)
		})
	}()

	return t
}

func (s *Service) fetch(ctx context.Context, song playlists.Song) image.Image {
	if err := s.sem.Acquire(ctx, 1); err != nil {
		return nil
	}
	defer s.sem.Release(1)

	for _, src := range s.sources {
		if ctx.Err() != nil {
			return nil
		}

		img, err := s.fetchFrom(ctx, src, song)
		if err == nil {
			return img
		}

		if !errors.Is(err, ErrArtNotFound) && !errors.Is(err, context.Canceled) {
			log.Debugf("Art source %s failed for song %s: %s", src.Name(), song.Ref, err)
		}
	}

	return nil
}

func (s *Service) fetchFrom(
	ctx context.Context,
	src Source,
	song playlists.Song,
) (image.Image, error) {
	rc, err := src.FindArt(ctx, song)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return s.decoder.Decode(ctx, rc, s.maxSize)
}
