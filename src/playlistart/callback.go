package playlistart

import "image"

//counterfeiter:generate . Callback

// Callback receives the composed playlist art.
type Callback interface {
	// OnArtLoaded is called at most once per Builder.Start with the final
	// image. The image is never modified afterwards. A returned error is
	// logged and otherwise ignored.
	//
	// It runs on the Builder's goroutine and must not call Start, FreeMemory
	// or Close of the same Builder without handing off to another goroutine.
	OnArtLoaded(img image.Image) error
}

// CallbackFunc is an adapter which allows ordinary functions to be used as a
// Callback.
type CallbackFunc func(img image.Image) error

// OnArtLoaded implements Callback.
func (f CallbackFunc) OnArtLoaded(img image.Image) error {
	return f(img)
}
