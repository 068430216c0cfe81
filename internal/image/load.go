package image

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// Load decodes the image file at path into a Bitmap.
func Load(path string) (*Bitmap, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	return FromImage(img), nil
}

// FromImage wraps img as a Bitmap. Gray, CMYK, RGBA and NRGBA images share
// their pixel buffer; every other image type is converted to NRGBA first.
func FromImage(img image.Image) *Bitmap {
	switch src := img.(type) {
	case *image.Gray:
		return fromPix(src.Pix, src.Stride, src.Rect, 1, ModelMonochrome)
	case *image.CMYK:
		return fromPix(src.Pix, src.Stride, src.Rect, 4, ModelCMYK)
	case *image.NRGBA:
		return fromPix(src.Pix, src.Stride, src.Rect, 4, ModelRGB)
	case *image.RGBA:
		return fromPix(src.Pix, src.Stride, src.Rect, 4, ModelRGB)
	}

	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return fromPix(dst.Pix, dst.Stride, dst.Rect, 4, ModelRGB)
}

// fromPix relies on Pix[0] addressing rect.Min, which holds for every
// standard library image including sub-images.
func fromPix(pix []byte, stride int, rect image.Rectangle, bpp int, model ColorModel) *Bitmap {
	return &Bitmap{
		Width:         rect.Dx(),
		Height:        rect.Dy(),
		Stride:        stride,
		BytesPerPixel: bpp,
		Data:          pix,
		Model:         model,
	}
}
