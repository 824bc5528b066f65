package playlists

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pborman/uuid"
)

// Manager implements the Playlister and SongRetriever interfaces by just requiring
// a function for sending database work.
type Manager struct {
	executeDBJobAndWait func(DatabaseExecutable) error
}

// NewManager returns a Manager which will send SQL queries to `sendDBWork`.
func NewManager(sendDBWork func(DatabaseExecutable) error) *Manager {
	return &Manager{
		executeDBJobAndWait: sendDBWork,
	}
}

const selectPlaylistQuery = `
	SELECT
		pl.id,
		pl.name,
		pl.provider,
		pl.created_at
	FROM
		playlists as pl
`

// Get implements Playlister.
func (m *Manager) Get(ctx context.Context, id int64) (Playlist, error) {
	const getPlaylistQuery = selectPlaylistQuery + `
		WHERE pl.id = @playlist_id
	`

	const getSongRefsQuery = `
		SELECT song_ref FROM playlists_songs
		WHERE playlist_id = @playlist_id
		ORDER BY "index" ASC
	`

	var playlist Playlist

	work := func(db *sql.DB) error {
		row := db.QueryRowContext(ctx, getPlaylistQuery, sql.Named("playlist_id", id))
		scanned, err := scanPlaylist(row)
		if err != nil && errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		} else if err != nil {
			return err
		}

		playlist = scanned

		rows, err := db.QueryContext(ctx, getSongRefsQuery, sql.Named("playlist_id", id))
		if err != nil {
			return fmt.Errorf("failed to get song refs: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var ref string
			if err := rows.Scan(&ref); err != nil {
				return fmt.Errorf("failed to scan song ref: %w", err)
			}
			playlist.Songs = append(playlist.Songs, ref)
		}

		return rows.Err()
	}
	if err := m.executeDBJobAndWait(work); err != nil {
		return Playlist{}, err
	}

	return playlist, nil
}

// List implements Playlister. Playlists are returned without their songs.
func (m *Manager) List(ctx context.Context, args ListArgs) ([]Playlist, error) {
	var (
		playlists []Playlist
		queryArgs []any

		querySuffix = `
		ORDER BY
			pl.id ASC
		`
	)

	if args.Count > 0 || args.Offset > 0 {
		count := args.Count
		if count <= 0 {
			count = -1
		}
		querySuffix += `
		LIMIT ?, ?
		`
		queryArgs = append(queryArgs, args.Offset, count)
	}

	getPlaylistsQuery := selectPlaylistQuery + querySuffix

	work := func(db *sql.DB) error {
		rows, err := db.QueryContext(ctx, getPlaylistsQuery, queryArgs...)
		if err != nil {
			return fmt.Errorf("could not query the database: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			playlist, err := scanPlaylist(rows)
			if err != nil {
				return fmt.Errorf("error scanning playlists: %w", err)
			}

			playlists = append(playlists, playlist)
		}

		return rows.Err()
	}
	if err := m.executeDBJobAndWait(work); err != nil {
		return nil, err
	}

	return playlists, nil
}

// Create implements Playlister. Songs without a reference are given a new
// random one.
func (m *Manager) Create(
	ctx context.Context,
	name string,
	provider string,
	songs []Song,
) (int64, error) {
	if name == "" {
		return 0, fmt.Errorf("name cannot be empty")
	}
	if provider == "" {
		provider = LocalProvider
	}

	var lastInsertID int64

	const insertPlaylistQuery = `
		INSERT INTO
			playlists (name, provider, created_at)
		VALUES
			(@name, @provider, @current_time)
	`

	const upsertSongQuery = `
		INSERT OR REPLACE INTO
			songs (provider, ref, title, artist, album, fs_path)
		VALUES
			(@provider, @ref, @title, @artist, @album, @fs_path)
	`

	insertSongsQuery := `
		INSERT INTO
			playlists_songs (playlist_id, song_ref, "index")
		VALUES
	`

	work := func(db *sql.DB) (retErr error) {
		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("cannot begin DB transaction: %w", err)
		}
		defer func() {
			if retErr == nil {
				retErr = tx.Commit()
			} else {
				_ = tx.Rollback()
			}
		}()

		res, err := tx.ExecContext(ctx, insertPlaylistQuery,
			sql.Named("name", name),
			sql.Named("provider", provider),
			sql.Named("current_time", time.Now().Unix()),
		)
		if err != nil {
			return fmt.Errorf("failed to insert playlist: %w", err)
		}

		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("cannot get last insert ID for playlist: %w", err)
		}

		lastInsertID = id
		if len(songs) == 0 {
			return nil
		}

		queryVals := []any{
			sql.Named("playlist_id", lastInsertID),
		}
		for index, song := range songs {
			if song.Ref == "" {
				song.Ref = uuid.New()
			}

			_, err := tx.ExecContext(ctx, upsertSongQuery,
				sql.Named("provider", provider),
				sql.Named("ref", song.Ref),
				sql.Named("title", song.Title),
				sql.Named("artist", song.Artist),
				sql.Named("album", song.Album),
				sql.Named("fs_path", song.Path),
			)
			if err != nil {
				return fmt.Errorf("failed to store song %s: %w", song.Ref, err)
			}

			queryVals = append(queryVals, song.Ref, index)
		}

		insertSongsQuery += strings.TrimSuffix(strings.Repeat(
			"(@playlist_id, ?, ?),", len(songs),
		), ",")

		_, err = tx.ExecContext(ctx, insertSongsQuery, queryVals...)
		if err != nil {
			return fmt.Errorf("failed to insert playlist songs: %w", err)
		}

		return nil
	}

	if err := m.executeDBJobAndWait(work); err != nil {
		return 0, err
	}

	return lastInsertID, nil
}

// Delete implements Playlister.
func (m *Manager) Delete(ctx context.Context, id int64) error {
	const (
		deleteSongsQuery    = `DELETE FROM playlists_songs WHERE playlist_id = @id`
		deletePlaylistQuery = `DELETE FROM playlists WHERE id = @id`
	)

	work := func(db *sql.DB) error {
		if _, err := db.ExecContext(ctx, deleteSongsQuery, sql.Named("id", id)); err != nil {
			return fmt.Errorf("removing playlist songs: %w", err)
		}

		res, err := db.ExecContext(ctx, deletePlaylistQuery, sql.Named("id", id))
		if err != nil {
			return fmt.Errorf("removing playlist: %w", err)
		}

		affected, err := res.RowsAffected()
		if err == nil && affected == 0 {
			return ErrNotFound
		}

		return nil
	}

	return m.executeDBJobAndWait(work)
}

// RetrieveSong implements SongRetriever.
func (m *Manager) RetrieveSong(
	ctx context.Context,
	ref string,
	provider string,
) (Song, error) {
	const retrieveSongQuery = `
		SELECT
			provider, ref, title, artist, album, fs_path
		FROM
			songs
		WHERE
			provider = @provider AND
			ref = @ref
	`

	var song Song

	work := func(db *sql.DB) error {
		row := db.QueryRowContext(ctx, retrieveSongQuery,
			sql.Named("provider", provider),
			sql.Named("ref", ref),
		)

		err := row.Scan(
			&song.Provider,
			&song.Ref,
			&song.Title,
			&song.Artist,
			&song.Album,
			&song.Path,
		)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrSongNotFound
		}

		return err
	}

	if err := m.executeDBJobAndWait(work); err != nil {
		return Song{}, err
	}

	return song, nil
}

type scanner interface {
	Scan(...any) error
}

func scanPlaylist(row scanner) (Playlist, error) {
	var (
		playlist  Playlist
		createdAt int64
	)

	if err := row.Scan(
		&playlist.ID,
		&playlist.Name,
		&playlist.Provider,
		&createdAt,
	); err != nil {
		return playlist, err
	}

	playlist.CreatedAt = time.Unix(createdAt, 0)
	return playlist, nil
}

var (
	_ Playlister    = (*Manager)(nil)
	_ SongRetriever = (*Manager)(nil)
)
