package raster

import (
	"encoding/hex"
	"image"
	"image/color"
	"strings"

	"github.com/disintegration/gift"
)

// This file converts bitmaps into the printer's monochrome hex representation.

// DefaultThreshold is the binarization cutoff used when callers pass no
// explicit value.
const DefaultThreshold uint8 = 128

// Encode converts a bitmap into a 1-bit hex stream. Each pixel is thresholded
// on the plain mean of its red, green and blue channels (alpha ignored): the
// pixel is ink when the mean falls below the threshold. Bits pack row-major,
// most significant bit first; a row whose width is not a multiple of 8 pads
// its final byte with low zero bits, so every row starts on a fresh byte
// boundary. Bytes are emitted as uppercase hex with no separators.
func Encode(img image.Image, threshold uint8) string {
	b := img.Bounds()
	out := make([]byte, 0, ((b.Dx()+7)/8)*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		var cur byte
		var nbits int
		for x := b.Min.X; x < b.Max.X; x++ {
			// RGBA() premultiplies by alpha, which would turn transparent
			// pixels into ink; threshold the straight channels instead.
			px := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			mean := (uint32(px.R) + uint32(px.G) + uint32(px.B)) / 3
			cur <<= 1
			if uint8(mean) < threshold {
				cur |= 1
			}
			nbits++
			if nbits == 8 {
				out = append(out, cur)
				cur, nbits = 0, 0
			}
		}
		if nbits > 0 {
			out = append(out, cur<<(8-nbits))
		}
	}
	return strings.ToUpper(hex.EncodeToString(out))
}

// EncodeScaled resizes the bitmap to the given pixel size before encoding.
// Placed elements carry display dimensions that rarely match the source
// image, so the raster is produced at the size the layout actually uses.
// Non-positive dimensions keep the source size.
func EncodeScaled(img image.Image, width, height int, threshold uint8) string {
	if width <= 0 || height <= 0 {
		return Encode(img, threshold)
	}
	g := gift.New(gift.Resize(width, height, gift.LanczosResampling))
	dst := image.NewRGBA(g.Bounds(img.Bounds()))
	g.Draw(dst, img)
	return Encode(dst, threshold)
}
