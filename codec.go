package main

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"

	"github.com/chai2010/webp"
)

// encodeQuality fixed quality for the lossy formats
const encodeQuality = 75

// Encoder turns a rendered raster into the archive's byte format.
type Encoder interface {
	Encode(img image.Image, format string) ([]byte, error)
}

// stdEncoder encodes via the stock png/jpeg codecs and libwebp.
type stdEncoder struct{}

func (stdEncoder) Encode(img image.Image, format string) ([]byte, error) {
	var buf bytes.Buffer
	var err error
	switch format {
	case PNG:
		err = png.Encode(&buf, img)
	case JPG:
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: encodeQuality})
	case WEBP:
		err = webp.Encode(&buf, img, &webp.Options{Quality: encodeQuality})
	default:
		return nil, fmt.Errorf("unknown image format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", format, err)
	}
	return buf.Bytes(), nil
}
