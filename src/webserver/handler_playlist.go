package webserver

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/ironsmile/mosaic/src/playlists"
	"github.com/ironsmile/mosaic/src/webserver/webutils"
)

// playlistHandler will handle the REST methods for a single playlist.
//
// The playlist operations are as follows:
//
// * Getting playlist info with its songs (GET)
// * Removing the playlist (DELETE)
type playlistHandler struct {
	playlists playlists.Playlister
}

// NewSinglePlaylistHandler returns an HTTP handler for interacting with a single
// playlist identified by its ID.
func NewSinglePlaylistHandler(playlister playlists.Playlister) http.Handler {
	return &playlistHandler{
		playlists: playlister,
	}
}

// ServeHTTP is required by the http.Handler's interface
func (h *playlistHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	playlistID, ok := playlistIDFromRequest(w, req)
	if !ok {
		return
	}

	if req.Method == http.MethodDelete {
		h.deletePlaylist(w, req, playlistID)
		return
	}

	h.getPlaylist(w, req, playlistID)
}

func (h *playlistHandler) deletePlaylist(
	w http.ResponseWriter,
	req *http.Request,
	playlistID int64,
) {
	err := h.playlists.Delete(req.Context(), playlistID)
	if errors.Is(err, playlists.ErrNotFound) {
		webutils.JSONError(w, "Playlist not found", http.StatusNotFound)
		return
	} else if err != nil {
		webutils.JSONError(
			w,
			fmt.Sprintf("error deleting a playlist: %s", err),
			http.StatusInternalServerError,
		)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *playlistHandler) getPlaylist(
	w http.ResponseWriter,
	req *http.Request,
	playlistID int64,
) {
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

	webutils.JSONResponse(w, toAPIPlaylist(pl, true))
}

// playlistIDFromRequest parses the playlist ID from the URL path. It writes a
// not found response and returns false when the ID is malformed.
func playlistIDFromRequest(w http.ResponseWriter, req *http.Request) (int64, bool) {
	vars := mux.Vars(req)
	playlistID, err := strconv.ParseInt(vars["playlistID"], 10, 64)
	if err != nil {
		webutils.JSONError(w, "Playlist not found", http.StatusNotFound)
		return 0, false
	}

	return playlistID, true
}
