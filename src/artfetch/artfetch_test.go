package artfetch_test

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/ironsmile/mosaic/src/artfetch"
	"github.com/ironsmile/mosaic/src/artfetch/artfetchfakes"
	"github.com/ironsmile/mosaic/src/assert"
	"github.com/ironsmile/mosaic/src/playlists"
)

// collector records the calls to a DoneFunc.
type collector struct {
	sync.Mutex
	calls  int
	img    image.Image
	song   playlists.Song
	called chan struct{}
}

func newCollector() *collector {
	return &collector{called: make(chan struct{}, 10)}
}

func (c *collector) done(img image.Image, song playlists.Song) {
	c.Lock()
	c.calls++
	c.img = img
	c.song = song
	c.Unlock()
	c.called <- struct{}{}
}

func (c *collector) Calls() int {
	c.Lock()
	defer c.Unlock()
	return c.calls
}

func waitHandle(t *testing.T, h artfetch.Handle) {
	t.Helper()

	select {
	case <-h.Done():
	case <-time.After(5 * time.Second):
		t.Fatalf("fetch did not finish in time")
	}
}

// TestServiceUsesFirstSourceWithArt makes sure that sources are tried in order
// and the first one which has an image wins.
func TestServiceUsesFirstSourceWithArt(t *testing.T) {
	missing := &artfetchfakes.FakeSource{}
	missing.NameReturns("missing")
	missing.FindArtReturns(nil, artfetch.ErrArtNotFound)

	found := &artfetchfakes.FakeSource{}
	found.NameReturns("found")
	found.FindArtReturns(io.NopCloser(bytes.NewReader([]byte("image"))), nil)

	unused := &artfetchfakes.FakeSource{}
	unused.NameReturns("unused")

	expected := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	decoder := &artfetchfakes.FakeDecoder{}
	decoder.DecodeReturns(expected, nil)

	svc := artfetch.New(context.Background(), decoder, artfetch.Config{
		MaxSize: 400,
	}, missing, found, unused)

	song := playlists.Song{Ref: "song-1", Artist: "Artist", Album: "Album"}
	col := newCollector()
	h := svc.FetchArt(song, false, col.done)
	waitHandle(t, h)

	assert.Equal(t, 1, col.Calls(), "wrong number of done calls")
	if col.img != expected {
		t.Errorf("expected the decoded image to be delivered")
	}
	assert.Equal(t, "song-1", col.song.Ref)
	assert.Equal(t, 1, missing.FindArtCallCount())
	assert.Equal(t, 1, found.FindArtCallCount())
	assert.Equal(t, 0, unused.FindArtCallCount())

	_, r, maxSize := decoder.DecodeArgsForCall(0)
	data, _ := io.ReadAll(r)
	assert.Equal(t, "image", string(data))
	assert.Equal(t, 400, maxSize)
}

// TestServiceSkipsUndecodableArt checks that a source whose image could not be
// decoded does not stop the search.
func TestServiceSkipsUndecodableArt(t *testing.T) {
	broken := &artfetchfakes.FakeSource{}
	broken.NameReturns("broken")
	broken.FindArtReturns(io.NopCloser(bytes.NewReader([]byte("garbage"))), nil)

	good := &artfetchfakes.FakeSource{}
	good.NameReturns("good")
	good.FindArtReturns(io.NopCloser(bytes.NewReader([]byte("image"))), nil)

	expected := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	decoder := &artfetchfakes.FakeDecoder{}
	decoder.DecodeReturnsOnCall(0, nil, errors.New("unknown format"))
	decoder.DecodeReturnsOnCall(1, expected, nil)

	svc := artfetch.New(context.Background(), decoder, artfetch.Config{}, broken, good)

	col := newCollector()
	waitHandle(t, svc.FetchArt(playlists.Song{Ref: "a"}, false, col.done))

	assert.Equal(t, 1, col.Calls())
	if col.img != expected {
		t.Errorf("expected the image from the second source")
	}
}

// TestServiceNoArt checks what is delivered when no source has art for a song
// with and without placeholders.
func TestServiceNoArt(t *testing.T) {
	missing := &artfetchfakes.FakeSource{}
	missing.FindArtReturns(nil, artfetch.ErrArtNotFound)

	failing := &artfetchfakes.FakeSource{}
	failing.FindArtReturns(nil, errors.New("network is down"))

	svc := artfetch.New(
		context.Background(),
		&artfetchfakes.FakeDecoder{},
		artfetch.Config{PlaceholderSize: 50},
		missing,
		failing,
	)
	song := playlists.Song{Ref: "a", Artist: "Artist", Album: "Album"}

	col := newCollector()
	waitHandle(t, svc.FetchArt(song, false, col.done))
	assert.Equal(t, 1, col.Calls())
	if col.img != nil {
		t.Errorf("expected nil image without placeholders but got %v", col.img.Bounds())
	}

	col = newCollector()
	waitHandle(t, svc.FetchArt(song, true, col.done))
	assert.Equal(t, 1, col.Calls())
	if col.img == nil {
		t.Fatalf("expected a placeholder image")
	}
	assert.Equal(t, image.Rect(0, 0, 50, 50), col.img.Bounds())
}

// TestServiceCancel makes sure that a cancelled fetch never calls its done
// function and that its source sees the cancellation.
func TestServiceCancel(t *testing.T) {
	started := make(chan struct{})
	blocking := &artfetchfakes.FakeSource{}
	blocking.FindArtCalls(func(ctx context.Context, _ playlists.Song) (io.ReadCloser, error) {
		close(started)
		<-ctx.Done()
		return nil, ctx.Err()
	})

	svc := artfetch.New(
		context.Background(),
		&artfetchfakes.FakeDecoder{},
		artfetch.Config{},
		blocking,
	)

	col := newCollector()
	h := svc.FetchArt(playlists.Song{Ref: "a"}, true, col.done)
	<-started
	h.Cancel()
	waitHandle(t, h)

	assert.Equal(t, 0, col.Calls(), "done was called for a cancelled fetch")

	// Cancelling twice or after finishing is harmless.
	h.Cancel()
}

// TestServiceConcurrencyLimit checks that no more than the configured number
// of fetches hit the sources at the same time.
func TestServiceConcurrencyLimit(t *testing.T) {
	var (
		mu      sync.Mutex
		current int
		maxSeen int
	)

	release := make(chan struct{})
	src := &artfetchfakes.FakeSource{}
	src.FindArtCalls(func(ctx context.Context, _ playlists.Song) (io.ReadCloser, error) {
		mu.Lock()
		current++
		if current > maxSeen {
			maxSeen = current
		}
		mu.Unlock()

		<-release

		mu.Lock()
		current--
		mu.Unlock()
		return nil, artfetch.ErrArtNotFound
	})

	svc := artfetch.New(
		context.Background(),
		&artfetchfakes.FakeDecoder{},
		artfetch.Config{Concurrency: 2},
		src,
	)

	var handles []artfetch.Handle
	for i := 0; i < 5; i++ {
		handles = append(handles, svc.FetchArt(playlists.Song{}, false, func(image.Image, playlists.Song) {}))
	}

	time.Sleep(50 * time.Millisecond)
	close(release)

	for _, h := range handles {
		waitHandle(t, h)
	}

	assert.Equal(t, 5, src.FindArtCallCount())
	if maxSeen > 2 {
		t.Errorf("expected at most 2 concurrent fetches but saw %d", maxSeen)
	}
}

// TestServiceStoppedWithContext makes sure that fetches end when the service
// context is cancelled.
func TestServiceStoppedWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	src := &artfetchfakes.FakeSource{}
	src.FindArtCalls(func(ctx context.Context, _ playlists.Song) (io.ReadCloser, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})

	svc := artfetch.New(ctx, &artfetchfakes.FakeDecoder{}, artfetch.Config{}, src)

	col := newCollector()
	h := svc.FetchArt(playlists.Song{Ref: "a"}, false, col.done)
	cancel()
	waitHandle(t, h)
}

// TestPlaceholder checks that placeholders are deterministic per album.
func TestPlaceholder(t *testing.T) {
	first := artfetch.Placeholder(playlists.Song{
		Ref: "1", Artist: "Artist", Album: "Album",
	}, 100)
	second := artfetch.Placeholder(playlists.Song{
		Ref: "2", Artist: "Artist", Album: "Album",
	}, 100)
	other := artfetch.Placeholder(playlists.Song{
		Ref: "3", Artist: "Artist", Album: "Other Album",
	}, 100)

	assert.Equal(t, image.Rect(0, 0, 100, 100), first.Bounds())

	for _, pt := range []image.Point{{0, 0}, {50, 50}} {
		c1 := color.NRGBAModel.Convert(first.At(pt.X, pt.Y))
		c2 := color.NRGBAModel.Convert(second.At(pt.X, pt.Y))
		assert.Equal(t, c1, c2, "same album placeholders differ at %v", pt)
	}

	bg := color.NRGBAModel.Convert(first.At(0, 0))
	center := color.NRGBAModel.Convert(first.At(50, 50))
	if bg == center {
		t.Errorf("expected the placeholder center to differ from its background")
	}

	if bg == color.NRGBAModel.Convert(other.At(0, 0)) {
		t.Logf("different albums happen to share placeholder color %v", bg)
	}
}
