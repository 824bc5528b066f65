package playlists

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"runtime"
	"sync"

	"github.com/charmbracelet/log"
	migrate "github.com/ironsmile/sql-migrate"

	// The sqlite3 database driver.
	_ "github.com/mattn/go-sqlite3"
)

// sqlMigrateDirectory is the directory whithin the `sqlFilesFS` which contains
// the .sql files for sql-migrate.
const sqlMigrateDirectory = "migrations"

// DatabaseExecutable is the type used for passing "work unit" to the databaseWorker.
// Every function which wants to do something with the database creates one and sends
// it to the databaseWorker for execution.
type DatabaseExecutable func(db *sql.DB) error

// ErrStoreClosed is returned for database work sent to a closed Store.
var ErrStoreClosed = errors.New("playlists store is closed")

// Store is a sqlite backed storage for playlists and songs. All database work
// is executed sequentially on a single worker goroutine.
type Store struct {
	db         *sql.DB
	dbExecutes chan DatabaseExecutable

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// Open opens (creating if necessary) the sqlite database at `path` and applies
// the migrations found in the "migrations" directory of `sqlFiles`.
func Open(ctx context.Context, path string, sqlFiles fs.FS) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}

	if err := applyMigrations(db, sqlFiles); err != nil {
		_ = db.Close()
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	st := &Store{
		db:         db,
		dbExecutes: make(chan DatabaseExecutable),
		ctx:        ctx,
		cancel:     cancel,
	}

	st.wg.Add(1)
	go st.databaseWorker()

	return st, nil
}

// Close stops the database worker and closes the database.
func (st *Store) Close() error {
	st.cancel()
	st.wg.Wait()
	return st.db.Close()
}

// applyMigrations reads the database migrations dir and applies them to the
// database if it is necessary.
func applyMigrations(db *sql.DB, sqlFiles fs.FS) error {
	migrationFiles, err := fs.Sub(sqlFiles, sqlMigrateDirectory)
	if err != nil {
		return fmt.Errorf("locating migrate dir within sqlFiles fs.FS failed: %w", err)
	}

	migrations := &migrate.HttpFileSystemMigrationSource{
		FileSystem: http.FS(migrationFiles),
	}

	_, err = migrate.ExecMax(db, "sqlite3", migrations, migrate.Up, 0)
	if err == nil {
		return nil
	}

	if _, ok := err.(*migrate.PlanError); ok {
		log.Errorf("Error applying database migrations: %s", err)
		return nil
	}

	return fmt.Errorf("executing db migration failed: %w", err)
}

// databaseWorker executes every DatabaseExecutable received until the store
// is closed.
func (st *Store) databaseWorker() {
	defer st.wg.Done()
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	for {
		select {
		case executable := <-st.dbExecutes:
			if err := executable(st.db); err != nil {
				log.Debugf("Error from db executable: %s", err)
			}
		case <-st.ctx.Done():
			return
		}
	}
}

// executeDBJob sends a job to the database worker. The only possible error is
// ErrStoreClosed.
func (st *Store) executeDBJob(executable DatabaseExecutable) error {
	select {
	case st.dbExecutes <- executable:
		return nil
	case <-st.ctx.Done():
		return ErrStoreClosed
	}
}

// ExecuteDBJobAndWait executes the `executable`, waits for it to finish. Then returns
// its error.
func (st *Store) ExecuteDBJobAndWait(executable DatabaseExecutable) error {
	var executableErr error
	done := make(chan struct{})

	work := func(db *sql.DB) error {
		defer close(done)
		executableErr = executable(db)
		return executableErr
	}

	if err := st.executeDBJob(work); err != nil {
		return err
	}

	<-done
	return executableErr
}

// Manager returns a Manager which executes its queries in this store.
func (st *Store) Manager() *Manager {
	return NewManager(st.ExecuteDBJobAndWait)
}
