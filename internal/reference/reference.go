// Package reference computes OpenCV's morphological skeleton of an ink
// raster, used to sanity check the thinner on real signatures.
package reference

import (
	"image"

	"gocv.io/x/gocv"

	"sig-tracer/internal/grid"
	"sig-tracer/pkg/colorutil"
)

// Options prepares the ink mask before it is skeletonized.
type Options struct {
	Bridge    int // 3x3 closings, joining ink split by one-pixel gaps
	Despeckle int // 3x3 openings after bridging, dropping specks
}

// Skeleton returns the pixels of the morphological skeleton of the ink in
// src, in raster order. Unlike the thinner's output it is not guaranteed to
// be connected.
func Skeleton(src grid.Source, opts Options) []image.Point {
	w, h := src.Size()
	if w == 0 || h == 0 {
		return nil
	}

	mask := inkMask(src, w, h)
	defer mask.Close()

	square := gocv.GetStructuringElement(gocv.MorphRect, image.Pt(3, 3))
	defer square.Close()
	for i := 0; i < opts.Bridge; i++ {
		gocv.MorphologyEx(mask, &mask, gocv.MorphClose, square)
	}
	for i := 0; i < opts.Despeckle; i++ {
		gocv.MorphologyEx(mask, &mask, gocv.MorphOpen, square)
	}

	skel := lantuejoul(mask)
	defer skel.Close()
	return nonZero(skel)
}

func inkMask(src grid.Source, w, h int) gocv.Mat {
	mask := gocv.NewMatWithSize(h, w, gocv.MatTypeCV8U)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var v uint8
			if colorutil.IsInk(src.RGBA(x, y)) {
				v = 255
			}
			mask.SetUCharAt(y, x, v)
		}
	}
	return mask
}

// lantuejoul unions, over successive erosions of mask with a 3x3 cross,
// the pixels each erosion loses to its own opening.
func lantuejoul(mask gocv.Mat) gocv.Mat {
	cross := gocv.GetStructuringElement(gocv.MorphCross, image.Pt(3, 3))
	defer cross.Close()

	skel := gocv.NewMat()
	gocv.BitwiseXor(mask, mask, &skel)

	layer := mask.Clone()
	defer layer.Close()
	opened := gocv.NewMat()
	defer opened.Close()
	residue := gocv.NewMat()
	defer residue.Close()

	for gocv.CountNonZero(layer) > 0 {
		gocv.MorphologyEx(layer, &opened, gocv.MorphOpen, cross)
		gocv.Subtract(layer, opened, &residue)
		gocv.BitwiseOr(skel, residue, &skel)
		gocv.Erode(layer, &layer, cross)
	}
	return skel
}

func nonZero(mask gocv.Mat) []image.Point {
	var pts []image.Point
	for y := 0; y < mask.Rows(); y++ {
		for x := 0; x < mask.Cols(); x++ {
			if mask.GetUCharAt(y, x) != 0 {
				pts = append(pts, image.Point{X: x, Y: y})
			}
		}
	}
	return pts
}
