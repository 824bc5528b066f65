// Package playlists stores playlists and the songs in them. It is the source
// for resolving the song references of a playlist before fetching their art.
package playlists

import (
	"context"
	"errors"
	"time"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate . Playlister

// Playlister is the interface for handling playlists in Mosaic.
type Playlister interface {
	// Get returns a single playlist by its ID.
	Get(ctx context.Context, id int64) (Playlist, error)

	// List returns a list playlists. Set both [args.Count] and [args.Offset] to
	// zero in order to list all playlists at once.
	List(ctx context.Context, args ListArgs) ([]Playlist, error)

	// Create creates a new playlist with the given name for songs from the
	// `provider`. Songs are stored (or updated) as well and then added to the
	// playlist in the order given.
	//
	// Returns the unique ID of the newly created playlist.
	Create(ctx context.Context, name, provider string, songs []Song) (int64, error)

	// Delete removes a playlist by its `id`.
	Delete(ctx context.Context, id int64) error
}

//counterfeiter:generate . SongRetriever

// SongRetriever resolves a song reference from a playlist to a Song.
type SongRetriever interface {
	RetrieveSong(ctx context.Context, ref, provider string) (Song, error)
}

// Playlist represents a single playlist.
type Playlist struct {
	ID       int64  // ID is the unique number which identifies this playlist.
	Name     string // Name is the user-facing name of the playlist.
	Provider string // Provider is the ID of the provider all songs come from.

	CreatedAt time.Time // CreatedAt is the time when this playlist was created.

	// Songs are the references of the songs in this playlist, in playlist
	// order. Resolve them with a SongRetriever.
	Songs []string
}

// SongsCount returns the number of songs in the playlist.
func (p Playlist) SongsCount() int {
	return len(p.Songs)
}

// Song is a single song which could be part of playlists.
type Song struct {
	Ref      string `json:"ref"`
	Provider string `json:"provider"`
	Title    string `json:"title"`
	Artist   string `json:"artist"`
	Album    string `json:"album"`

	// Path is the file system path of the song for local providers. Empty
	// for songs which are not files.
	Path string `json:"-"`
}

// ListArgs defines what portion of the playlists list will be returned.
type ListArgs struct {
	// Offset is an index in the list of playlist from which to start the list.
	Offset int64

	// Count defines how many playlists to include in the response. The special value
	// of zero means "all playlists".
	Count int64
}

// LocalProvider is the provider ID for songs which are files on the local file
// system.
const LocalProvider = "local"

// ErrNotFound is returned when a playlist was not found for a given operation.
var ErrNotFound = errors.New("playlist not found")

// ErrSongNotFound is returned when a song reference could not be resolved.
var ErrSongNotFound = errors.New("song not found")
