// ABOUTME: Loads images from readers or files with the standard and webp decoders registered
// ABOUTME: Rejects oversized inputs before decoding pixel data

package image

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	goimage "image"
	"io"
	"os"

	// Register decoders for the formats gridview accepts.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

// MaxPixels bounds the decoded size of a single image.
const MaxPixels = 64 << 20

// ErrTooLarge reports an image whose declared size exceeds MaxPixels.
var ErrTooLarge = errors.New("image: too large")

// Decode reads an image in any registered format from r and returns it
// with the format name.
func Decode(r io.Reader) (goimage.Image, string, error) {
	br := bufio.NewReader(r)
	// Peek so the header check does not consume what Decode needs.
	head, _ := br.Peek(64 << 10)
	cfg, format, err := goimage.DecodeConfig(bytes.NewReader(head))
	if err == nil && cfg.Width*cfg.Height > MaxPixels {
		return nil, "", fmt.Errorf("decoding %s %dx%d: %w", format, cfg.Width, cfg.Height, ErrTooLarge)
	}

	img, format, err := goimage.Decode(br)
	if err != nil {
		return nil, "", fmt.Errorf("decoding image: %w", err)
	}
	return img, format, nil
}

// Load decodes the image file at path.
func Load(path string) (goimage.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening image: %w", err)
	}
	defer f.Close()

	img, _, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return img, nil
}
