package src

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"

	"github.com/ironsmile/mosaic/src/art"
	"github.com/ironsmile/mosaic/src/artfetch"
	"github.com/ironsmile/mosaic/src/config"
	"github.com/ironsmile/mosaic/src/helpers"
	"github.com/ironsmile/mosaic/src/playlistart"
	"github.com/ironsmile/mosaic/src/playlists"
	"github.com/ironsmile/mosaic/src/scaler"
	"github.com/ironsmile/mosaic/src/version"
	"github.com/ironsmile/mosaic/src/webserver"
)

// shutdownTimeout is how long in-flight HTTP requests are given to finish
// once the server is asked to stop.
const shutdownTimeout = 10 * time.Second

// RunnerOpts are the dependencies of a Runner.
type RunnerOpts struct {
	// SQLFiles holds the database migrations.
	SQLFiles fs.FS

	// Output receives the regular output of commands.
	Output io.Writer
}

// Runner executes the commands of the command line interface.
type Runner struct {
	sqlFiles fs.FS
	out      io.Writer
	osFs     afero.Fs
}

// NewRunner returns a Runner ready for executing commands.
func NewRunner(opts RunnerOpts) *Runner {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	return &Runner{
		sqlFiles: opts.SQLFiles,
		out:      out,
		osFs:     afero.NewOsFs(),
	}
}

// env is everything a command needs once the configuration is loaded.
type env struct {
	cfg      *config.Config
	store    *playlists.Store
	scaler   *scaler.Scaler
	registry *prometheus.Registry
	metrics  *playlistart.Metrics
	composer *playlistart.Composer
}

func (e *env) close() {
	e.scaler.Cancel()
	if err := e.store.Close(); err != nil {
		log.Errorf("Closing the database: %s", err)
	}
}

// setup reads the configuration, sets up logging and opens the database. The
// returned env must be closed by the caller.
func (r *Runner) setup(ctx context.Context, cmd *cli.Command) (*env, error) {
	if cmd.Bool("debug") {
		log.SetLevel(log.DebugLevel)
	}

	cfg := new(config.Config)
	if err := cfg.FindAndParse(); err != nil {
		return nil, fmt.Errorf("parsing configuration: %w", err)
	}
	if extra := cmd.String("config"); extra != "" {
		if err := cfg.MergeFile(extra); err != nil {
			return nil, fmt.Errorf("merging configuration: %w", err)
		}
	}

	userPath := filepath.Dir(cfg.UserConfigPath())

	if cfg.LogFile != "" {
		logPath := helpers.AbsolutePath(cfg.LogFile, userPath)
		if err := helpers.SetLogsFile(r.osFs, logPath); err != nil {
			return nil, err
		}
	}

	dbPath := helpers.AbsolutePath(cfg.SqliteDatabase, userPath)
	store, err := playlists.Open(ctx, dbPath, r.sqlFiles)
	if err != nil {
		return nil, fmt.Errorf("opening database %s: %w", dbPath, err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	e := &env{
		cfg:      cfg,
		store:    store,
		scaler:   scaler.New(ctx),
		registry: registry,
		metrics:  playlistart.NewMetrics(registry),
	}

	e.composer = r.newComposer(ctx, e, cfg.AllowPlaceholder)

	return e, nil
}

// newComposer returns a playlist art composer which fetches art from the
// sources enabled in the configuration.
func (r *Runner) newComposer(
	ctx context.Context,
	e *env,
	allowPlaceholder bool,
) *playlistart.Composer {
	cfg := e.cfg
	fetcher := artfetch.New(
		ctx,
		e.scaler,
		artfetch.Config{
			Concurrency:     cfg.FetchConcurrency,
			MaxSize:         cfg.ArtMaxSize,
			PlaceholderSize: cfg.CanvasSize,
		},
		r.artSources(cfg)...,
	)

	return playlistart.NewComposer(
		ctx,
		fetcher,
		e.store.Manager(),
		playlistart.WithCanvasSize(cfg.CanvasSize),
		playlistart.WithWatchdogTimeout(cfg.WatchdogDuration()),
		playlistart.WithDebounceDelay(cfg.DebounceDuration()),
		playlistart.WithPlaceholders(allowPlaceholder),
		playlistart.WithMetrics(e.metrics),
	)
}

// artSources returns the art sources enabled in cfg, cheapest first.
func (r *Runner) artSources(cfg *config.Config) []artfetch.Source {
	var sources []artfetch.Source
	if cfg.LocalArt.Embedded {
		sources = append(sources, artfetch.NewEmbeddedSource(r.osFs))
	}
	if cfg.LocalArt.Folder {
		sources = append(sources, artfetch.NewFolderSource(afero.NewReadOnlyFs(r.osFs)))
	}
	if cfg.MusicBrainz.Enabled {
		var delay time.Duration
		if rps := cfg.MusicBrainz.RequestsPerSecond; rps > 0 {
			delay = time.Duration(float64(time.Second) / rps)
		}
		client := art.NewClient(cfg.MusicBrainz.UserAgent, delay)
		if cfg.MusicBrainz.MinScore > 0 {
			client.MinScore = cfg.MusicBrainz.MinScore
		}
		sources = append(sources, artfetch.NewRemoteSource(client))
	}

	return sources
}

// Serve runs the HTTP API until the process is interrupted.
func (r *Runner) Serve(ctx context.Context, cmd *cli.Command) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	e, err := r.setup(ctx, cmd)
	if err != nil {
		return err
	}
	defer e.close()

	cfg := *e.cfg
	if listen := cmd.String("listen"); listen != "" {
		cfg.Listen = listen
	}

	srv := webserver.NewServer(cfg, e.store.Manager(), e.composer, e.registry)
	if err := srv.Serve(); err != nil {
		return fmt.Errorf("starting HTTP server: %w", err)
	}
	log.Infof("Mosaic %s listening on %s", version.Version, srv.Addr())

	go func() {
		<-ctx.Done()
		log.Info("Stopping the HTTP server")

		stopCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Stop(stopCtx); err != nil {
			log.Errorf("Stopping HTTP server: %s", err)
		}
	}()

	srv.Wait()
	return nil
}

// Compose writes the art of a stored playlist into a file.
func (r *Runner) Compose(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() != 1 {
		return fmt.Errorf("expected exactly one playlist ID")
	}

	var id int64
	if _, err := fmt.Sscan(cmd.Args().First(), &id); err != nil {
		return fmt.Errorf("invalid playlist ID %q", cmd.Args().First())
	}

	e, err := r.setup(ctx, cmd)
	if err != nil {
		return err
	}
	defer e.close()

	formatName := e.cfg.OutputFormat
	if cmd.IsSet("format") {
		formatName = cmd.String("format")
	}
	format, err := scaler.ParseFormat(formatName)
	if err != nil {
		return err
	}

	composer := e.composer
	if cmd.Bool("placeholders") {
		composer = r.newComposer(ctx, e, true)
	}

	pl, err := e.store.Manager().Get(ctx, id)
	if err != nil {
		return fmt.Errorf("getting playlist %d: %w", id, err)
	}

	img, err := composer.Compose(ctx, pl)
	if err != nil {
		return fmt.Errorf("composing art for %q: %w", pl.Name, err)
	}

	outPath := cmd.String("output")
	fh, err := r.osFs.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}

	if err := scaler.Encode(fh, img, format, e.cfg.JPEGQuality); err != nil {
		_ = fh.Close()
		return fmt.Errorf("encoding art: %w", err)
	}
	if err := fh.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}

	log.Infof("Art for playlist %q written to %s", pl.Name, outPath)
	return nil
}

// PlaylistAdd stores a new playlist made of the song files given as arguments.
func (r *Runner) PlaylistAdd(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() == 0 {
		return fmt.Errorf("at least one song file is required")
	}

	songs := make([]playlists.Song, 0, cmd.NArg())
	for _, file := range cmd.Args().Slice() {
		song, err := songFromFile(r.osFs, file)
		if err != nil {
			return err
		}
		songs = append(songs, song)
	}

	e, err := r.setup(ctx, cmd)
	if err != nil {
		return err
	}
	defer e.close()

	id, err := e.store.Manager().Create(
		ctx,
		cmd.String("name"),
		playlists.LocalProvider,
		songs,
	)
	if err != nil {
		return fmt.Errorf("creating playlist: %w", err)
	}

	fmt.Fprintf(r.out, "%d\n", id)
	return nil
}

// PlaylistList prints all stored playlists.
func (r *Runner) PlaylistList(ctx context.Context, cmd *cli.Command) error {
	e, err := r.setup(ctx, cmd)
	if err != nil {
		return err
	}
	defer e.close()

	lists, err := e.store.Manager().List(ctx, playlists.ListArgs{})
	if err != nil {
		return fmt.Errorf("listing playlists: %w", err)
	}

	return printPlaylists(r.out, lists, cmd.Bool("json"))
}

// Version prints the version information.
func (r *Runner) Version(_ context.Context, _ *cli.Command) error {
	version.Print(r.out)
	return nil
}

func printPlaylists(out io.Writer, lists []playlists.Playlist, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(lists)
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPROVIDER\tSONGS\tCREATED")
	for _, pl := range lists {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\n",
			pl.ID,
			pl.Name,
			pl.Provider,
			pl.SongsCount(),
			pl.CreatedAt.Format(time.DateTime),
		)
	}

	return tw.Flush()
}
