package scaler

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"strings"
)

// Format is an output image encoding.
type Format string

// All the formats composed images could be encoded to.
const (
	JPEG Format = "jpeg"
	PNG  Format = "png"
)

// ParseFormat returns the Format for a user supplied name such as "jpg" or "PNG".
// The empty string means JPEG.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "jpeg", "jpg":
		return JPEG, nil
	case "png":
		return PNG, nil
	default:
		return "", fmt.Errorf("unsupported image format `%s`", name)
	}
}

// ContentType returns the MIME type for images encoded in this format.
func (f Format) ContentType() string {
	if f == PNG {
		return "image/png"
	}
	return "image/jpeg"
}

// Encode writes img into w in the given format. Quality is only used for JPEG
// and values outside of [1, 100] select the default.
func Encode(w io.Writer, img image.Image, format Format, quality int) error {
	switch format {
	case PNG:
		if err := png.Encode(w, img); err != nil {
			return fmt.Errorf("encoding png: %w", err)
		}
		return nil
	case JPEG:
		var opts *jpeg.Options
		if quality >= 1 && quality <= 100 {
			opts = &jpeg.Options{Quality: quality}
		}
		if err := jpeg.Encode(w, img, opts); err != nil {
			return fmt.Errorf("encoding jpeg: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported image format `%s`", format)
	}
}
