// Package scaler decodes artwork images and bounds their size using a pool of
// workers. It also encodes composed images for delivery.
package scaler

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"runtime"

	// The following are all image formats supported for decoding art.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	// Additional image formats from the x repository.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/vp8"
	_ "golang.org/x/image/webp"

	"golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"
)

// ErrCancelled is returned when one is trying to interact with an stopped
// scaler.
var ErrCancelled = errors.New("decode operation on cancelled Scaler")

// description is a decoding instruction.
type description struct {

	// MaxSize instructs the decoding to produce an image with neither width
	// nor height bigger than this. Zero means no limit.
	MaxSize int

	// ImgR is the source of the image which will be decoded.
	ImgR io.Reader

	// Result is the channel on which the result image is returned. It must
	// be buffered so that workers never block on abandoned requests.
	Result chan Result
}

// Result is a type which encapsulates a result from an image decoding.
type Result struct {
	Img image.Image
	Err error
}

// Scaler is a utility type which could be used for decoding and scaling
// images. It is safe for concurrent use.
type Scaler struct {
	ctx           context.Context
	cancelContext context.CancelFunc

	work chan description
}

// Decode reads an image from img and converts it to fit within maxSize pixels
// in both dimensions while preserving its aspect ratio. Images which are small
// enough are returned as decoded.
func (s *Scaler) Decode(
	ctx context.Context,
	img io.Reader,
	maxSize int,
) (image.Image, error) {
	if s.ctx.Err() != nil {
		return nil, ErrCancelled
	}

	desc := description{
		ImgR:    img,
		MaxSize: maxSize,
		Result:  make(chan Result, 1),
	}

	select {
	case s.work <- desc:
	case <-s.ctx.Done():
		return nil, ErrCancelled
	case <-ctx.Done():
		return nil, fmt.Errorf("ctx done while waiting to send decode op: %w", ctx.Err())
	}

	select {
	case res := <-desc.Result:
		return res.Img, res.Err
	case <-ctx.Done():
		return nil, fmt.Errorf("ctx done while decoding: %w", ctx.Err())
	}
}

func (s *Scaler) worker() error {
	for {
		select {
		case desc := <-s.work:
			img, err := decodeImage(desc.ImgR, desc.MaxSize)
			desc.Result <- Result{
				Img: img,
				Err: err,
			}
		case <-s.ctx.Done():
			return nil
		}
	}
}

func decodeImage(imgReader io.Reader, maxSize int) (image.Image, error) {
	img, _, err := image.Decode(imgReader)
	if err != nil {
		return nil, fmt.Errorf("error decoding image: %w", err)
	}

	imgRect := img.Bounds()
	imgw, imgh := imgRect.Dx(), imgRect.Dy()
	if maxSize <= 0 || (imgw <= maxSize && imgh <= maxSize) {
		return img, nil
	}

	toWidth, toHeight := maxSize, maxSize
	if imgw > imgh {
		toHeight = max(1, int((float32(imgh)/float32(imgw))*float32(maxSize)))
	} else if imgh > imgw {
		toWidth = max(1, int((float32(imgw)/float32(imgh))*float32(maxSize)))
	}

	dst := image.NewRGBA(image.Rect(0, 0, toWidth, toHeight))

	draw.CatmullRom.Scale(
		dst,
		dst.Bounds(),
		img,
		img.Bounds(),
		draw.Over,
		nil,
	)

	return dst, nil
}

// Cancel stops the scaler and of its operations. Users may not use
// any further methods on cancelled scalers.
func (s *Scaler) Cancel() {
	s.cancelContext()
}

// New returns a new scaler, ready for use. It stops when ctx is done or
// Cancel is called.
func New(ctx context.Context) *Scaler {
	ctx, cancel := context.WithCancel(ctx)

	s := &Scaler{
		ctx:           ctx,
		cancelContext: cancel,
		work:          make(chan description),
	}

	var g errgroup.Group
	for i := 0; i < runtime.NumCPU(); i++ {
		g.Go(s.worker)
	}

	return s
}
