package tui

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"strings"

	"github.com/disintegration/imaging"
)

// artRamp maps coverage from empty to solid.
const artRamp = " .:-=+*#%@"

// RenderArt converts a transparent icon to text art targetWidth columns
// wide. Terminal cells are about twice as tall as wide, so rows are halved.
func RenderArt(data []byte, targetWidth int) (string, error) {
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("decoding frame: %w", err)
	}
	return renderImage(img, targetWidth), nil
}

func renderImage(img image.Image, targetWidth int) string {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 || targetWidth <= 0 {
		return ""
	}
	height := b.Dy() * targetWidth / b.Dx() / 2
	if height < 1 {
		height = 1
	}
	small := imaging.Resize(img, targetWidth, height, imaging.Box)

	lines := make([]string, 0, height)
	for y := 0; y < height; y++ {
		var line strings.Builder
		for x := 0; x < targetWidth; x++ {
			a := small.NRGBAAt(x, y).A
			idx := int(a) * (len(artRamp) - 1) / 255
			line.WriteByte(artRamp[idx])
		}
		lines = append(lines, strings.TrimRight(line.String(), " "))
	}
	return strings.Join(lines, "\n")
}
