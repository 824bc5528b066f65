package art

import (
	"context"
	"errors"
	"net/http"
	"time"

	"golang.org/x/time/rate"
	cca "gopkg.in/mineo/gocaa.v1"
)

// ErrImageNotFound is returned when no cover was found for an album.
var ErrImageNotFound = errors.New("image not found")

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate . Finder

// Finder finds the front cover of the album a song comes from.
type Finder interface {
	// GetFrontImage returns the encoded front cover of `album` by `artist`.
	GetFrontImage(ctx context.Context, artist, album string) ([]byte, error)
}

// Client finds album covers on the internet. A song's artist and album are
// searched for in MusicBrainz and the covers of the matching releases are
// downloaded from the Cover Art Archive. It throttles its MusicBrainz searches
// and is safe for concurrent use.
//
// An album usually has many releases (years, countries, formats) and not all
// of them have a cover in the archive. That is why all good enough matches are
// tried.
type Client struct {
	// MinScore is the lowest MusicBrainz search score (0-100) for which a
	// release is considered the song's album. Lower scores find more covers
	// and more wrong ones.
	MinScore int

	limiter    *rate.Limiter
	useragent  string
	caaClient  CAAClient
	httpClient *http.Client

	musicBrainzURL string
}

// NewClient returns a Client which introduces itself with `useragent` and makes
// no more than one MusicBrainz search per `delay`. A zero delay disables
// throttling.
//
// MusicBrainz asks all applications to stay under one request per second and
// to send a meaningful user agent:
// https://musicbrainz.org/doc/MusicBrainz_API/Rate_Limiting
func NewClient(useragent string, delay time.Duration, opts ...ClientOption) *Client {
	limit := rate.Inf
	if delay > 0 {
		limit = rate.Every(delay)
	}

	c := &Client{
		MinScore:       95,
		useragent:      useragent,
		limiter:        rate.NewLimiter(limit, 1),
		caaClient:      cca.NewCAAClient(useragent),
		httpClient:     http.DefaultClient,
		musicBrainzURL: "https://musicbrainz.org",
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}
