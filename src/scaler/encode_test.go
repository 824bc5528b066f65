package scaler_test

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/ironsmile/mosaic/src/assert"
	"github.com/ironsmile/mosaic/src/scaler"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name     string
		expected scaler.Format
		fails    bool
	}{
		{name: "", expected: scaler.JPEG},
		{name: "jpg", expected: scaler.JPEG},
		{name: "JPEG", expected: scaler.JPEG},
		{name: " png ", expected: scaler.PNG},
		{name: "gif", fails: true},
	}

	for _, test := range tests {
		format, err := scaler.ParseFormat(test.name)
		if test.fails {
			if err == nil {
				t.Errorf("expected error for format `%s`", test.name)
			}
			continue
		}

		assert.NilErr(t, err)
		assert.Equal(t, test.expected, format, "format `%s`", test.name)
	}

	assert.Equal(t, "image/png", scaler.PNG.ContentType())
	assert.Equal(t, "image/jpeg", scaler.JPEG.ContentType())
}

// TestEncodeRoundTrip encodes an image in every supported format and checks that
// it could be decoded back with the same dimensions.
func TestEncodeRoundTrip(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 32, 16))
	for x := 0; x < 32; x++ {
		for y := 0; y < 16; y++ {
			src.Set(x, y, color.RGBA{G: 200, A: 255})
		}
	}

	for _, format := range []scaler.Format{scaler.JPEG, scaler.PNG} {
		var buf bytes.Buffer
		assert.NilErr(t, scaler.Encode(&buf, src, format, 95))

		decoded, decodedFormat, err := image.Decode(&buf)
		assert.NilErr(t, err)
		assert.Equal(t, string(format), decodedFormat)
		assert.Equal(t, src.Bounds(), decoded.Bounds())
	}

	var buf bytes.Buffer
	assert.NotNilErr(t, scaler.Encode(&buf, src, scaler.Format("bmp"), 0))
}
