package art

import (
	"cmp"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	cca "gopkg.in/mineo/gocaa.v1"
)

const (
	releaseSearchPath  = "/ws/2/release/"
	releaseSearchQuery = "release:%s AND artist:%s"
	searchTimeout      = 10 * time.Second
)

// release is a MusicBrainz release which matched a search.
type release struct {
	ID    string `xml:"id,attr"`
	Score int    `xml:"score,attr"`
	Title string `xml:"title"`
}

// releaseSearchResult is the part of the MusicBrainz search response which
// Mosaic reads.
type releaseSearchResult struct {
	Releases []release `xml:"release-list>release"`
}

// GetFrontImage returns the front cover of `album` by `artist`. Releases are
// tried from the best match down and the first one with a cover wins.
func (c *Client) GetFrontImage(
	ctx context.Context,
	artist,
	album string,
) ([]byte, error) {
	if artist == "" || album == "" {
		return nil, ErrImageNotFound
	}

	releases, err := c.searchReleases(ctx, artist, album)
	if err != nil {
		return nil, err
	}

	for _, rel := range releases {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		img, err := c.caaClient.GetReleaseFront(cca.StringToUUID(rel.ID), frontCoverSize)
		if err == nil {
			log.Debugf(
				"Cover of %q by %q found in release %s (score %d)",
				album, artist, rel.ID, rel.Score,
			)
			return img.Data, nil
		}

		var httpErr cca.HTTPError
		if errors.As(err, &httpErr) && httpErr.StatusCode == http.StatusNotFound {
			continue
		}
		return nil, fmt.Errorf("fetching cover of release %s: %w", rel.ID, err)
	}

	return nil, ErrImageNotFound
}

// searchReleases returns the releases of `album` by `artist` which score at
// least MinScore, best match first.
func (c *Client) searchReleases(
	ctx context.Context,
	artist,
	album string,
) ([]release, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("waiting for musicbrainz rate limit: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, searchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodGet,
		c.musicBrainzURL+releaseSearchPath,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("creating musicbrainz search request: %w", err)
	}

	query := req.URL.Query()
	query.Set("query", fmt.Sprintf(releaseSearchQuery, album, artist))
	req.URL.RawQuery = query.Encode()
	req.Header.Set("User-Agent", c.useragent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("musicbrainz search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("musicbrainz search returned HTTP %d", resp.StatusCode)
	}

	var result releaseSearchResult
	if err := xml.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding musicbrainz search response: %w", err)
	}

	matches := slices.DeleteFunc(result.Releases, func(rel release) bool {
		return rel.Score < c.MinScore
	})
	if len(matches) == 0 {
		return nil, ErrImageNotFound
	}

	slices.SortStableFunc(matches, func(a, b release) int {
		return cmp.Compare(b.Score, a.Score)
	})

	return matches, nil
}
