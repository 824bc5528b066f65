package art_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/ironsmile/mosaic/src/art"
	"github.com/ironsmile/mosaic/src/art/artfakes"
	"github.com/pborman/uuid"
	caa "gopkg.in/mineo/gocaa.v1"
)

// TestClientGetFrontImage checks that the cover of the best matching release
// with a cover is returned.
func TestClientGetFrontImage(t *testing.T) {
	const (
		releaseName = "Killers"
		artistName  = "Iron Maiden"
	)

	var (
		releaseImage = []byte("image contents")
		serverErrors []string
	)

	mbrainzHandler := func(w http.ResponseWriter, req *http.Request) {
		if req.URL.Path != "/ws/2/release/" {
			serverErrors = append(
				serverErrors,
				fmt.Sprintf("unknown path requested: %s", req.URL.Path),
			)
			w.WriteHeader(http.StatusNotFound)
			return
		}

		artist, release := parseMBQuery(req.URL.Query().Get("query"))
		if release == "" || artist == "" {
			serverErrors = append(
				serverErrors,
				"no release or artist found in the query string",
			)
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if release != releaseName || artist != artistName {
			fmt.Fprintf(w, `
				<metadata created="2021-09-18T11:04:00.452Z">
				<release-list count="0" offset="0">
				</release-list>
				</metadata>
			`)
			return
		}

		fmt.Fprintf(w, `
			<metadata created="2021-09-18T11:04:00.452Z">
			<release-list count="2" offset="0">
				<release id="dd65beff-0bfb-4425-81af-ed4cb1945c7f" ns2:score="99">
					<title>Killers</title>
				</release>
				<release id="6518fd52-58bf-44a3-8150-00e7c3ffcae5" ns2:score="100">
					<title>Killers</title>
				</release>
				<release id="0f1c29a2-5f8c-4b7e-9d55-0a2f6e8f2b11" ns2:score="97">
					<title>Killers</title>
				</release>
			</release-list>
			</metadata>
		`)
	}
	mbrainz := httptest.NewServer(http.HandlerFunc(mbrainzHandler))
	defer mbrainz.Close()

	caaClient := &artfakes.FakeCAAClient{
		GetReleaseFrontStub: func(mbid uuid.UUID, size int) (caa.CoverArtImage, error) {
			withImageUUID := caa.StringToUUID("dd65beff-0bfb-4425-81af-ed4cb1945c7f")

			if !uuid.Equal(mbid, withImageUUID) {
				return caa.CoverArtImage{}, caa.HTTPError{
					StatusCode: http.StatusNotFound,
					URL:        &url.URL{},
				}
			}

			imgCopy := make([]byte, len(releaseImage))
			copy(imgCopy, releaseImage)

			return caa.CoverArtImage{
				Data:     imgCopy,
				Mimetype: "text/plain",
			}, nil
		},
	}
	c := art.NewClient("mosaic/testing", 0,
		art.WithMusicBrainzURL(mbrainz.URL),
		art.WithCAAClient(caaClient),
	)

	ctx := context.Background()
	img, err := c.GetFrontImage(ctx, artistName, releaseName)

	for _, se := range serverErrors {
		t.Error(se)
	}

	if err != nil {
		t.Fatalf("expected no error but got `%s`", err)
	}

	if !bytes.Equal(releaseImage, img) {
		t.Errorf(
			"release image was not the same, expected `%s` but got `%s`",
			releaseImage,
			img,
		)
	}

	if caaClient.GetReleaseFrontCallCount() != 2 {
		t.Fatalf(
			"expected 2 calls to the CoverArt image server but got %d",
			caaClient.GetReleaseFrontCallCount(),
		)
	}

	firstTried, size := caaClient.GetReleaseFrontArgsForCall(0)
	if !uuid.Equal(firstTried, caa.StringToUUID("6518fd52-58bf-44a3-8150-00e7c3ffcae5")) {
		t.Errorf("expected the best scored release to be tried first, got %s", firstTried)
	}
	if size != caa.ImageSize500 {
		t.Errorf("expected cover size %d but got %d", caa.ImageSize500, size)
	}
}

func parseMBQuery(s string) (string, string) {
	parts := strings.Split(s, "AND")

	var (
		artist  string
		release string
	)

	for _, part := range parts {
		queryPair := strings.Split(strings.TrimSpace(part), ":")
		if len(queryPair) != 2 {
			continue
		}
		switch queryPair[0] {
		case "artist":
			artist = queryPair[1]
		case "release":
			release = queryPair[1]
		}
	}

	return artist, release
}

// TestClientGetFrontImageNotFound checks that a missing cover in every matching
// release and empty search arguments both end in ErrImageNotFound.
func TestClientGetFrontImageNotFound(t *testing.T) {
	mbrainz := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, req *http.Request) {
			fmt.Fprintf(w, `
			<metadata created="2021-09-18T11:04:00.452Z">
			<release-list count="1" offset="0">
				<release id="dd65beff-0bfb-4425-81af-ed4cb1945c7f" ns2:score="100">
					<title>Powerslave</title>
				</release>
			</release-list>
			</metadata>
		`)
		},
	))
	defer mbrainz.Close()

	caaClient := &artfakes.FakeCAAClient{}
	caaClient.GetReleaseFrontReturns(caa.CoverArtImage{}, caa.HTTPError{
		StatusCode: http.StatusNotFound,
		URL:        &url.URL{},
	})

	c := art.NewClient("mosaic/testing", 0,
		art.WithMusicBrainzURL(mbrainz.URL),
		art.WithCAAClient(caaClient),
	)

	ctx := context.Background()
	_, err := c.GetFrontImage(ctx, "Iron Maiden", "Powerslave")
	if !errors.Is(err, art.ErrImageNotFound) {
		t.Errorf("expected %v but got %v", art.ErrImageNotFound, err)
	}

	_, err = c.GetFrontImage(ctx, "", "Powerslave")
	if !errors.Is(err, art.ErrImageNotFound) {
		t.Errorf("expected %v for empty artist but got %v", art.ErrImageNotFound, err)
	}

	if caaClient.GetReleaseFrontCallCount() != 1 {
		t.Errorf(
			"expected 1 call to the CoverArt image server but got %d",
			caaClient.GetReleaseFrontCallCount(),
		)
	}
}
