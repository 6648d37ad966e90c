package frames

import (
	"bytes"
	"fmt"
	"image/png"

	ico "github.com/sergeymakinen/go-ico"
)

// Encoder converts a PNG frame into the bytes the tray expects.
type Encoder func(pngData []byte) ([]byte, error)

// PassThrough leaves PNG data untouched.
func PassThrough(pngData []byte) ([]byte, error) {
	return pngData, nil
}

// EncoderFor returns the tray encoder for an operating system. The Windows
// notification area only accepts ICO images.
func EncoderFor(goos string) Encoder {
	if goos == "windows" {
		return PNGToICO
	}
	return PassThrough
}

// PNGToICO re-encodes a PNG image as a single-image ICO file.
func PNGToICO(pngData []byte) ([]byte, error) {
	img, err := png.Decode(bytes.NewReader(pngData))
	if err != nil {
		return nil, fmt.Errorf("failed to decode png: %w", err)
	}
	var buf bytes.Buffer
	if err := ico.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode ico: %w", err)
	}
	return buf.Bytes(), nil
}
