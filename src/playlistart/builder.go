package playlistart

import (
	"context"
	"image"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/ironsmile/mosaic/src/artfetch"
	"github.com/ironsmile/mosaic/src/playlists"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// Defaults for the Builder options.
const (
	DefaultCanvasSize      = 800
	DefaultWatchdogTimeout = 5000 * time.Millisecond
	DefaultDebounceDelay   = 200 * time.Millisecond
)

//counterfeiter:generate . Fetcher

// Fetcher starts asynchronous art fetches for songs. *artfetch.Service
// implements it.
type Fetcher interface {
	FetchArt(
		song playlists.Song,
		allowPlaceholder bool,
		done artfetch.DoneFunc,
	) artfetch.Handle
}

// Option changes the defaults of a Builder.
type Option func(*Builder)

// WithScheduler sets the scheduler used for the debounce and watchdog timers.
func WithScheduler(s Scheduler) Option {
	return func(b *Builder) {
		b.scheduler = s
	}
}

// WithCanvasSize sets the width and height of composed images.
func WithCanvasSize(size int) Option {
	return func(b *Builder) {
		if size > 0 {
			b.canvasSize = size
		}
	}
}

// WithWatchdogTimeout sets the time after which whatever has been composed so
// far is delivered.
func WithWatchdogTimeout(d time.Duration) Option {
	return func(b *Builder) {
		if d > 0 {
			b.watchdogTimeout = d
		}
	}
}

// WithDebounceDelay sets for how long renders are postponed while more images
// are expected.
func WithDebounceDelay(d time.Duration) Option {
	return func(b *Builder) {
		if d >= 0 {
			b.debounceDelay = d
		}
	}
}

// WithPlaceholders makes the fetcher return placeholder images for songs
// without art.
func WithPlaceholders(allow bool) Option {
	return func(b *Builder) {
		b.allowPlaceholder = allow
	}
}

// WithMetrics makes the Builder record its work in m.
func WithMetrics(m *Metrics) Option {
	return func(b *Builder) {
		b.metrics = m
	}
}

// Builder composes playlist art. One Builder runs one build at a time. Starting
// a new build abandons the previous one. It is safe for concurrent use.
type Builder struct {
	ctx    context.Context
	cancel context.CancelFunc

	fetcher Fetcher
	songs   playlists.SongRetriever

	scheduler        Scheduler
	canvasSize       int
	watchdogTimeout  time.Duration
	debounceDelay    time.Duration
	allowPlaceholder bool
	metrics          *Metrics

	queue   eventQueue
	stopped chan struct{}

	// deliverMu is held by the loop while it checks that a result is still
	// current and hands it to the callback. Start, FreeMemory and Close take
	// it before mu so that they return only after such a delivery is over.
	deliverMu sync.Mutex

	// mu guards everything below.
	mu       sync.Mutex
	gen      uint64
	current  *build
	comp     *compositor
	closed   bool
	watchdog Timer
	debounce Timer
}

// build is the state of a single Start invocation.
type build struct {
	gen      uint64
	expected int
	callback Callback

	handles   map[int]artfetch.Handle
	arrived   map[int]bool
	collected []image.Image

	// renderedCount is the number of collected images in the canvas.
	renderedCount int
	done          bool
}

// New returns a Builder which resolves songs with `songs` and fetches their art
// with `fetcher`. The Builder stops working when ctx is done or Close is called.
func New(
	ctx context.Context,
	fetcher Fetcher,
	songs playlists.SongRetriever,
	opts ...Option,
) *Builder {
	ctx, cancel := context.WithCancel(ctx)

	b := &Builder{
		ctx:             ctx,
		cancel:          cancel,
		fetcher:         fetcher,
		songs:           songs,
		scheduler:       RealScheduler{},
		canvasSize:      DefaultCanvasSize,
		watchdogTimeout: DefaultWatchdogTimeout,
		debounceDelay:   DefaultDebounceDelay,
		queue:           newEventQueue(),
		stopped:         make(chan struct{}),
	}

	for _, opt := range opts {
		opt(b)
	}

	b.comp = newCompositor(b.canvasSize)

	go b.loop()

	return b
}

// Start begins composing the art for `playlist` and returns immediately. The
// result is delivered to cb at most once, either when the art of all of the
// first (up to four) songs has been composed or when the watchdog expires with
// a partial composite. A build which was running is abandoned: its fetches are
// cancelled and its callback will not be called once Start returns.
//
// Start waits for a callback which is running at the moment. Callbacks must not
// call Start, FreeMemory or Close of their own Builder synchronously.
func (b *Builder) Start(playlist playlists.Playlist, cb Callback) {
	expected := min(maxTiles, playlist.SongsCount())

	b.deliverMu.Lock()
	defer b.deliverMu.Unlock()

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		log.Warnf("Playlist art for %d requested from a closed builder", playlist.ID)
		return
	}

	b.reset()
	gen := b.gen
	b.current = &build{
		gen:       gen,
		expected:  expected,
		callback:  cb,
		handles:   make(map[int]artfetch.Handle, expected),
		arrived:   make(map[int]bool, expected),
		collected: make([]image.Image, 0, expected),
	}
	b.watchdog = b.scheduler.AfterFunc(b.watchdogTimeout, func() {
		b.queue.post(event{kind: eventWatchdog, gen: gen})
	})
	b.mu.Unlock()

	b.metrics.buildStarted()
	log.Debugf("Building art for playlist %d from %d songs", playlist.ID, expected)

	b.queue.post(event{
		kind:     eventResolve,
		gen:      gen,
		playlist: playlist,
	})
}

// FreeMemory releases the canvas, drops the collected images and cancels all
// fetches and timers. The running build, if any, is abandoned. It is safe to
// call it at any time and more than once.
func (b *Builder) FreeMemory() {
	b.deliverMu.Lock()
	defer b.deliverMu.Unlock()

	b.mu.Lock()
	defer b.mu.Unlock()

	b.reset()
	b.current = nil
	b.comp.free()
}

// Close abandons the running build and stops the Builder's goroutine. The
// Builder cannot be used after that.
func (b *Builder) Close() {
	b.deliverMu.Lock()
	b.mu.Lock()
	b.closed = true
	b.reset()
	b.current = nil
	b.comp.free()
	b.mu.Unlock()
	b.deliverMu.Unlock()

	b.cancel()
	<-b.stopped
}

// reset invalidates the current build. It must be called with b.mu held.
func (b *Builder) reset() {
	b.gen++

	stopTimer(b.watchdog)
	stopTimer(b.debounce)
	b.watchdog = nil
	b.debounce = nil

	if b.current == nil {
		return
	}

	for id, h := range b.current.handles {
		if h != nil {
			h.Cancel()
		}
		delete(b.current.handles, id)
	}
	b.current.collected = nil
}

// active returns the current build if it is the one with generation gen and is
// still collecting images. It must be called with b.mu held.
func (b *Builder) active(gen uint64) *build {
	if b.current == nil || b.current.gen != gen || b.gen != gen || b.current.done {
		return nil
	}
	return b.current
}
