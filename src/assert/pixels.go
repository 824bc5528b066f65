package assert

import (
	"image"
	"image/color"
)

// Pixel checks that the pixel at (x, y) in img has the expected color. Colors are
// compared in non-premultiplied 8 bit RGBA with a tolerance of `tolerance` per
// channel so that results of scaling could be checked.
func Pixel(
	t TestingErrf,
	img image.Image,
	x, y int,
	expected color.Color,
	tolerance uint8,
	msgAndArgs ...any,
) {
	t.Helper()

	if !(image.Point{x, y}.In(img.Bounds())) {
		t.Errorf("pixel (%d, %d) is outside of image bounds %s%s",
			x, y, img.Bounds(), fromMsgAndArgs(msgAndArgs...),
		)
		return
	}

	want := color.NRGBAModel.Convert(expected).(color.NRGBA)
	got := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)

	if channelClose(want.R, got.R, tolerance) &&
		channelClose(want.G, got.G, tolerance) &&
		channelClose(want.B, got.B, tolerance) &&
		channelClose(want.A, got.A, tolerance) {
		return
	}

	t.Errorf("pixel (%d, %d): expected `%#v` but got `%#v`%s",
		x, y, want, got, fromMsgAndArgs(msgAndArgs...),
	)
}

func channelClose(a, b, tolerance uint8) bool {
	if a > b {
		return a-b <= tolerance
	}
	return b-a <= tolerance
}
