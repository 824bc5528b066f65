package playlistart

import (
	"image"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/ironsmile/mosaic/src/artfetch"
	"github.com/ironsmile/mosaic/src/playlists"
)

type eventKind int

const (
	eventResolve eventKind = iota
	eventFetched
	eventDebounce
	eventWatchdog
	eventFlush
)

// event is a single unit of work for the Builder loop. Events of builds other
// than the current one are dropped.
type event struct {
	kind eventKind
	gen  uint64

	playlist playlists.Playlist
	request  int
	img      image.Image

	flushed chan struct{}
}

// eventQueue is an unbounded queue of events. Posting never blocks so that
// timers and fetch goroutines never wait for the loop.
type eventQueue struct {
	mu     sync.Mutex
	events []event
	wake   chan struct{}
}

func newEventQueue() eventQueue {
	return eventQueue{wake: make(chan struct{}, 1)}
}

func (q *eventQueue) post(ev event) {
	q.mu.Lock()
	q.events = append(q.events, ev)
	q.mu.Unlock()

	select {
	case q.wake <- struct{}{}:
	default:
	}
}

func (q *eventQueue) drain() []event {
	q.mu.Lock()
	defer q.mu.Unlock()

	events := q.events
	q.events = nil
	return events
}

// delivery is a result which is to be handed to a callback.
type delivery struct {
	gen      uint64
	callback Callback
	img      image.Image
	path     string
}

// loop processes events until the Builder is closed.
func (b *Builder) loop() {
	defer close(b.stopped)

	for {
		select {
		case <-b.ctx.Done():
			return
		case <-b.queue.wake:
		}

		for {
			events := b.queue.drain()
			if len(events) == 0 {
				break
			}

			for _, ev := range events {
				if b.ctx.Err() != nil {
					return
				}
				b.handle(ev)
			}
		}
	}
}

func (b *Builder) handle(ev event) {
	var d *delivery

	switch ev.kind {
	case eventFlush:
		close(ev.flushed)
		return
	case eventResolve:
		b.resolve(ev.gen, ev.playlist)
		return
	case eventFetched:
		d = b.onFetched(ev.gen, ev.request, ev.img)
	case eventDebounce:
		d = b.onDebounce(ev.gen)
	case eventWatchdog:
		d = b.onWatchdog(ev.gen)
	}

	if d == nil {
		return
	}

	b.deliverMu.Lock()
	defer b.deliverMu.Unlock()

	b.mu.Lock()
	superseded := b.gen != d.gen
	b.mu.Unlock()
	if superseded {
		return
	}

	b.metrics.delivered(d.path)
	if err := d.callback.OnArtLoaded(d.img); err != nil {
		log.Warnf("Delivering playlist art failed: %s", err)
	}
}

// resolve looks up the songs of the playlist and starts fetching their art.
func (b *Builder) resolve(gen uint64, playlist playlists.Playlist) {
	b.mu.Lock()
	current := b.active(gen)
	b.mu.Unlock()
	if current == nil {
		return
	}

	songs := make(map[int]playlists.Song, current.expected)
	for i := 0; i < current.expected; i++ {
		ref := playlist.Songs[i]
		song, err := b.songs.RetrieveSong(b.ctx, ref, playlist.Provider)
		if err != nil {
			log.Warnf(
				"Could not find song %s of playlist %d: %s",
				ref, playlist.ID, err,
			)
			continue
		}
		songs[i] = song
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.active(gen) == nil {
		return
	}

	for request := 0; request < current.expected; request++ {
		song, ok := songs[request]
		if !ok {
			continue
		}

		current.handles[request] = b.fetcher.FetchArt(
			song,
			b.allowPlaceholder,
			b.fetchDone(gen, request),
		)
	}
}

func (b *Builder) fetchDone(gen uint64, request int) artfetch.DoneFunc {
	return func(img image.Image, _ playlists.Song) {
		b.queue.post(event{
			kind:    eventFetched,
			gen:     gen,
			request: request,
			img:     img,
		})
	}
}

func (b *Builder) onFetched(gen uint64, request int, img image.Image) *delivery {
	b.mu.Lock()
	defer b.mu.Unlock()

	current := b.active(gen)
	if current == nil {
		b.metrics.fetched(fetchStale)
		return nil
	}

	if _, tracked := current.handles[request]; !tracked || current.arrived[request] {
		b.metrics.fetched(fetchStale)
		return nil
	}
	current.arrived[request] = true

	if img == nil {
		b.metrics.fetched(fetchFailed)
		return nil
	}
	b.metrics.fetched(fetchOK)

	current.collected = append(current.collected, img)

	stopTimer(b.debounce)
	b.debounce = nil

	if len(current.collected) < current.expected {
		b.debounce = b.scheduler.AfterFunc(b.debounceDelay, func() {
			b.queue.post(event{kind: eventDebounce, gen: gen})
		})
		return nil
	}

	return b.recompute(current)
}

func (b *Builder) onDebounce(gen uint64) *delivery {
	b.mu.Lock()
	defer b.mu.Unlock()

	current := b.active(gen)
	if current == nil {
		return nil
	}

	b.debounce = nil
	return b.recompute(current)
}

func (b *Builder) onWatchdog(gen uint64) *delivery {
	b.mu.Lock()
	defer b.mu.Unlock()

	current := b.active(gen)
	if current == nil {
		return nil
	}
	b.watchdog = nil

	stopTimer(b.debounce)
	b.debounce = nil

	if len(current.collected) > current.renderedCount {
		if d := b.recompute(current); d != nil {
			return d
		}
	}

	if current.renderedCount == 0 || !b.comp.hasCanvas() {
		current.done = true
		b.metrics.watchdogEmpty()
		log.Warnf(
			"No song art arrived within %s, playlist art will not be delivered",
			b.watchdogTimeout,
		)
		return nil
	}

	log.Debugf(
		"Watchdog delivers playlist art with %d of %d images",
		current.renderedCount, current.expected,
	)
	return b.finalize(current, b.comp.snapshot(), pathWatchdog)
}

// recompute renders the collected images and finalizes the build once all
// expected images are in. It must be called with b.mu held.
func (b *Builder) recompute(current *build) *delivery {
	n := len(current.collected)
	if n == 0 {
		return nil
	}

	if n == 1 && current.expected == 1 {
		return b.finalize(current, current.collected[0], pathSingle)
	}

	start := time.Now()
	b.comp.render(current.collected, current.expected, current.renderedCount == 0)
	current.renderedCount = n
	b.metrics.rendered(time.Since(start))

	if n < current.expected {
		return nil
	}

	return b.finalize(current, b.comp.snapshot(), pathComposite)
}

// finalize marks the build as done and stops its timers. It must be called with
// b.mu held.
func (b *Builder) finalize(current *build, img image.Image, path string) *delivery {
	current.done = true

	stopTimer(b.watchdog)
	stopTimer(b.debounce)
	b.watchdog = nil
	b.debounce = nil

	return &delivery{
		gen:      current.gen,
		callback: current.callback,
		img:      img,
		path:     path,
	}
}
