package art

import "net/http"

// ClientOption changes the defaults of a Client.
type ClientOption func(*Client)

// WithMusicBrainzURL makes the Client search releases at `baseURL` instead of
// the public MusicBrainz server. Mirrors and test servers use it.
func WithMusicBrainzURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.musicBrainzURL = baseURL
	}
}

// WithCAAClient sets the client used for downloading covers from the Cover Art
// Archive.
func WithCAAClient(caac CAAClient) ClientOption {
	return func(c *Client) {
		c.caaClient = caac
	}
}

// WithHTTPClient sets the HTTP client used for MusicBrainz searches.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}
