package webserver

import "net/http"

// The following are URL Path endpoints for certain API calls.
const (
	APIv1EndpointAbout           = "/v1/about"
	APIv1EndpointPlaylists       = "/v1/playlists"
	APIv1EndpointPlaylist        = "/v1/playlist/{playlistID}"
	APIv1EndpointPlaylistArtwork = "/v1/playlist/{playlistID}/artwork"
	EndpointMetrics              = "/metrics"
)

// APIv1Methods defines on which HTTP methods APIv1 endpoints will respond to.
// It is an uri_path => list of HTTP methods map.
var APIv1Methods map[string][]string = map[string][]string{
	APIv1EndpointAbout:           {http.MethodGet},
	APIv1EndpointPlaylists:       {http.MethodGet, http.MethodPost},
	APIv1EndpointPlaylist:        {http.MethodGet, http.MethodDelete},
	APIv1EndpointPlaylistArtwork: {http.MethodGet},
	EndpointMetrics:              {http.MethodGet},
}
