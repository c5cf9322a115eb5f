package bitmap

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"
)

// Render decodes a compressed glyph image and converts it to a
// size-by-size bitmap. The source is resampled with a Catmull-Rom
// kernel to keep edges smooth at small sizes and composited over an
// opaque black canvas, so each pixel's color is blended toward black by
// its transparency before quantization.
func Render(data []byte, size int) (Bitmap, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(dst, dst.Bounds(), image.Black, image.Point{}, draw.Src)
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)

	m := make(Bitmap, 0, size*size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := dst.RGBAAt(x, y)
			m = append(m, RGB565(c.R, c.G, c.B))
		}
	}

	return m, nil
}
