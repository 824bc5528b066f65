package webserver

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/ironsmile/mosaic/src/playlistart"
	"github.com/ironsmile/mosaic/src/playlists"
	"github.com/ironsmile/mosaic/src/scaler"
	"github.com/ironsmile/mosaic/src/webserver/webutils"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate . Composer

// Composer creates the art of a playlist. *playlistart.Composer implements it.
type Composer interface {
	Compose(ctx context.Context, pl playlists.Playlist) (image.Image, error)
}

// PlaylistArtworkHandler is a http.Handler which composes and serves the art of
// a particular playlist.
type PlaylistArtworkHandler struct {
	playlists     playlists.Playlister
	composer      Composer
	defaultFormat scaler.Format
	jpegQuality   int
}

// NewPlaylistArtworkHandler returns a handler which serves playlist art encoded
// in `format` unless the request asks for another one with the `format` query
// argument.
func NewPlaylistArtworkHandler(
	playlister playlists.Playlister,
	composer Composer,
	format scaler.Format,
	jpegQuality int,
) *PlaylistArtworkHandler {
	return &PlaylistArtworkHandler{
		playlists:     playlister,
		composer:      composer,
		defaultFormat: format,
		jpegQuality:   jpegQuality,
	}
}

// ServeHTTP is required by the http.Handler's interface
func (h *PlaylistArtworkHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	playlistID, ok := playlistIDFromRequest(w, req)
	if !ok {
		return
	}

	format := h.defaultFormat
	if formatArg := req.URL.Query().Get("format"); formatArg != "" {
		var err error
		format, err = scaler.ParseFormat(formatArg)
		if err != nil {
			webutils.JSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	pl, err := h.playlists.Get(req.Context(), playlistID)
	if errors.Is(err, playlists.ErrNotFound) {
		webutils.JSONError(w, "Playlist not found", http.StatusNotFound)
		return
	} else if err != nil {
		webutils.JSONError(
			w,
			fmt.Sprintf("error getting playlist: %s", err),
			http.StatusInternalServerError,
		)
		return
	}

	img, err := h.composer.Compose(req.Context(), pl)
	if errors.Is(err, playlistart.ErrNoArt) {
		webutils.JSONError(w, "No art found for this playlist", http.StatusNotFound)
		return
	} else if err != nil {
		log.Errorf("Error composing art for playlist %d: %s", playlistID, err)
		webutils.JSONError(
			w,
			fmt.Sprintf("error composing playlist art: %s", err),
			http.StatusInternalServerError,
		)
		return
	}

	var buf bytes.Buffer
	if err := scaler.Encode(&buf, img, format, h.jpegQuality); err != nil {
		webutils.JSONError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Header().Set("Cache-Control", "max-age=3600")
	if _, err := buf.WriteTo(w); err != nil {
		log.Warnf("Error sending art for playlist %d: %s", playlistID, err)
	}
}
