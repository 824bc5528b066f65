// Package webserver contains the HTTP API of Mosaic. It lists the stored
// playlists and serves their composed art.
package webserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ironsmile/mosaic/src/config"
	"github.com/ironsmile/mosaic/src/playlists"
	"github.com/ironsmile/mosaic/src/scaler"
)

// Server represents our webserver. It will be controlled from here
type Server struct {

	// Configuration of this server
	cfg config.Config

	// WG used in Server.Wait to sync with server's end
	wg sync.WaitGroup

	// The actual http.Server doing the HTTP work
	httpSrv *http.Server

	// The server's net.Listener. Used for finding out the actual address.
	listener net.Listener

	playlists playlists.Playlister
	composer  Composer
	gatherer  prometheus.Gatherer
}

// NewServer returns a new Server using the supplied configuration cfg. The
// returned server is ready and calling its Serve method will start it. Metrics
// are served from `gatherer`.
func NewServer(
	cfg config.Config,
	playlister playlists.Playlister,
	composer Composer,
	gatherer prometheus.Gatherer,
) *Server {
	return &Server{
		cfg:       cfg,
		playlists: playlister,
		composer:  composer,
		gatherer:  gatherer,
	}
}

// Handler returns the router with all the API endpoints.
func (srv *Server) Handler() http.Handler {
	format, err := scaler.ParseFormat(srv.cfg.OutputFormat)
	if err != nil {
		log.Warnf("Using jpeg for playlist art: %s", err)
		format = scaler.JPEG
	}

	handlers := map[string]http.Handler{
		APIv1EndpointAbout:     NewAboutHandler(),
		APIv1EndpointPlaylists: NewPlaylistsHandler(srv.playlists),
		APIv1EndpointPlaylist:  NewSinglePlaylistHandler(srv.playlists),
		APIv1EndpointPlaylistArtwork: NewPlaylistArtworkHandler(
			srv.playlists,
			srv.composer,
			format,
			srv.cfg.JPEGQuality,
		),
		EndpointMetrics: promhttp.HandlerFor(srv.gatherer, promhttp.HandlerOpts{}),
	}

	router := mux.NewRouter()
	router.StrictSlash(true)
	router.UseEncodedPath()

	for path, handler := range handlers {
		router.Handle(path, handler).Methods(APIv1Methods[path]...)
	}

	return router
}

// Serve starts listening on the configured address and serves HTTP requests
// in a separate goroutine. Trying to call this method more than once for the
// same server will result in panic.
func (srv *Server) Serve() error {
	if srv.listener != nil {
		panic("Second Server.Serve call for the same server")
	}

	srv.httpSrv = &http.Server{
		Addr:              srv.cfg.Listen,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      srv.cfg.WatchdogDuration() + time.Minute,
	}

	addr := srv.httpSrv.Addr
	if addr == "" {
		addr = ":http"
	}
	lsn, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	srv.listener = lsn
	log.Infof("Webserver listening on %s", lsn.Addr())

	srv.wg.Add(1)
	go func() {
		defer srv.wg.Done()

		err := srv.httpSrv.Serve(lsn)
		log.Print("Webserver stopped.")
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorf("Reason: %s", err)
		}
	}()

	return nil
}

// Addr returns the address the server listens on. It is nil before Serve.
func (srv *Server) Addr() net.Addr {
	if srv.listener == nil {
		return nil
	}
	return srv.listener.Addr()
}

// Stop gracefully shuts down the webserver, waiting at most until ctx is done
// for running requests.
func (srv *Server) Stop(ctx context.Context) error {
	if srv.httpSrv == nil {
		return nil
	}
	return srv.httpSrv.Shutdown(ctx)
}

// Wait syncs whoever called this with the server's stop
func (srv *Server) Wait() {
	srv.wg.Wait()
}
