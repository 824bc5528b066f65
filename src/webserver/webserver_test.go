package webserver_test

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/ironsmile/mosaic/src/assert"
	"github.com/ironsmile/mosaic/src/config"
	"github.com/ironsmile/mosaic/src/playlistart"
	"github.com/ironsmile/mosaic/src/playlists"
	"github.com/ironsmile/mosaic/src/playlists/playlistsfakes"
	"github.com/ironsmile/mosaic/src/webserver"
	"github.com/ironsmile/mosaic/src/webserver/webserverfakes"
	"github.com/prometheus/client_golang/prometheus"
)

// TestServerServesAPI starts a real server and checks that the API and the
// metrics are routed.
func TestServerServesAPI(t *testing.T) {
	cfg, err := config.Default()
	assert.NilErr(t, err, "reading default config")
	cfg.Listen = "127.0.0.1:0"

	registry := prometheus.NewRegistry()
	metrics := playlistart.NewMetrics(registry)
	metrics.BuildsStarted.Inc()

	fakeplay := &playlistsfakes.FakePlaylister{}
	fakeplay.ListReturns([]playlists.Playlist{{ID: 1, Name: "One"}}, nil)

	srv := webserver.NewServer(*cfg, fakeplay, &webserverfakes.FakeComposer{}, registry)
	assert.NilErr(t, srv.Serve(), "starting server")
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		assert.NilErr(t, srv.Stop(ctx), "stopping server")
		srv.Wait()
	}()

	baseURL := fmt.Sprintf("http://%s", srv.Addr())

	tests := []struct {
		path     string
		contains string
	}{
		{path: "/v1/about", contains: "server_version"},
		{path: "/v1/playlists", contains: `"name":"One"`},
		{path: "/metrics", contains: "mosaic_playlist_art_builds_started_total 1"},
	}

	for _, test := range tests {
		resp, err := http.Get(baseURL + test.path)
		assert.NilErr(t, err, "GET %s", test.path)

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		assert.NilErr(t, err, "reading %s", test.path)

		assert.Equal(t, http.StatusOK, resp.StatusCode, "status of %s", test.path)
		if !strings.Contains(string(body), test.contains) {
			t.Errorf("expected %s to contain `%s` but it was:\n%s",
				test.path, test.contains, body)
		}
	}

	resp, err := http.Get(baseURL + "/v1/no-such-endpoint")
	assert.NilErr(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
