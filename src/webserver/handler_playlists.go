package webserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/ironsmile/mosaic/src/playlists"
	"github.com/ironsmile/mosaic/src/webserver/webutils"
)

const defaultPerPage = 40

// playlistsHandler will list playlists (GET) and create a new one (POST).
type playlistsHandler struct {
	playlists playlists.Playlister
}

// NewPlaylistsHandler returns an http.Handler which supports listing all playlists
// with a GET request and creating a new playlist with a POST request.
func NewPlaylistsHandler(playlister playlists.Playlister) http.Handler {
	return &playlistsHandler{
		playlists: playlister,
	}
}

// ServeHTTP is required by the http.Handler's interface
func (plh playlistsHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if req.Method == http.MethodPost {
		plh.create(w, req)
		return
	}

	plh.listAll(w, req)
}

func (plh playlistsHandler) create(w http.ResponseWriter, req *http.Request) {
	listReq := playlistRequest{}
	dec := json.NewDecoder(req.Body)
	if err := dec.Decode(&listReq); err != nil {
		webutils.JSONError(
			w,
			fmt.Sprintf("Cannot decode playlist JSON: %s", err),
			http.StatusBadRequest,
		)
		return
	}

	if listReq.Name == "" {
		webutils.JSONError(w, "Playlist name is required", http.StatusBadRequest)
		return
	}

	provider := listReq.Provider
	if provider == "" {
		provider = playlists.LocalProvider
	}

	songs := make([]playlists.Song, 0, len(listReq.Songs))
	for _, song := range listReq.Songs {
		song.Provider = provider
		songs = append(songs, song)
	}

	newID, err := plh.playlists.Create(req.Context(), listReq.Name, provider, songs)
	if err != nil {
		webutils.JSONError(
			w,
			fmt.Sprintf("Failed to create playlist: %s", err),
			http.StatusInternalServerError,
		)
		return
	}

	webutils.JSONResponse(w, createPlaylistResponse{
		CreatedPlaylistID: newID,
	})
}

func (plh playlistsHandler) listAll(w http.ResponseWriter, req *http.Request) {
	page, perPage, err := pageArgs(req.URL.Query())
	if err != nil {
		webutils.JSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	found, err := plh.playlists.List(req.Context(), playlists.ListArgs{
		Offset: (page - 1) * perPage,
		Count:  perPage,
	})
	if err != nil {
		webutils.JSONError(
			w,
			fmt.Sprintf("Getting playlists failed: %s", err),
			http.StatusInternalServerError,
		)
		return
	}

	resp := playlistsResponse{
		Playlists: make([]playlist, 0, len(found)),
	}
	for _, pl := range found {
		resp.Playlists = append(resp.Playlists, toAPIPlaylist(pl, false))
	}

	if int64(len(found)) == perPage {
		resp.Next = pageURL(page+1, perPage)
	}
	if page > 1 {
		resp.Previous = pageURL(page-1, perPage)
	}

	webutils.JSONResponse(w, resp)
}

func pageArgs(query url.Values) (page, perPage int64, err error) {
	page, perPage = 1, defaultPerPage

	if pageStr := query.Get("page"); pageStr != "" {
		page, err = strconv.ParseInt(pageStr, 10, 64)
		if err != nil || page < 1 {
			return 0, 0, fmt.Errorf("malformed `page` argument: %s", pageStr)
		}
	}

	if perPageStr := query.Get("per-page"); perPageStr != "" {
		perPage, err = strconv.ParseInt(perPageStr, 10, 64)
		if err != nil || perPage < 1 {
			return 0, 0, fmt.Errorf("malformed `per-page` argument: %s", perPageStr)
		}
	}

	return page, perPage, nil
}

func pageURL(page, perPage int64) string {
	return fmt.Sprintf("%s?page=%d&per-page=%d", APIv1EndpointPlaylists, page, perPage)
}

func toAPIPlaylist(pl playlists.Playlist, withSongs bool) playlist {
	resp := playlist{
		ID:         pl.ID,
		Name:       pl.Name,
		Provider:   pl.Provider,
		SongsCount: pl.SongsCount(),
		CreatedAt:  pl.CreatedAt.Unix(),
	}
	if withSongs {
		resp.Songs = pl.Songs
	}
	return resp
}

type playlistsResponse struct {
	Playlists []playlist `json:"playlists"`
	Next      string     `json:"next,omitempty"`
	Previous  string     `json:"previous,omitempty"`
}

type createPlaylistResponse struct {
	CreatedPlaylistID int64 `json:"created_playlist_id"`
}

type playlist struct {
	ID         int64    `json:"id"`
	Name       string   `json:"name"`
	Provider   string   `json:"provider"`
	SongsCount int      `json:"songs_count"`
	CreatedAt  int64    `json:"created_at"` // Unix timestamp in seconds.
	Songs      []string `json:"songs,omitempty"`
}

type playlistRequest struct {
	Name     string           `json:"name"`
	Provider string           `json:"provider"`
	Songs    []playlists.Song `json:"songs"`
}
