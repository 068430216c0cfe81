// Command thincheck thins the ink of one image and compares the result with
// OpenCV's morphological skeleton of the same ink.
package main

import (
	"flag"
	"fmt"
	"image"
	"os"

	"sig-tracer/internal/grid"
	pimage "sig-tracer/internal/image"
	"sig-tracer/internal/reference"
	"sig-tracer/internal/render"
	"sig-tracer/internal/skeleton"
	"sig-tracer/pkg/colorutil"
)

func main() {
	imagePath := flag.String("image", "", "Path to signature image (PNG, JPEG, GIF, TIFF or BMP)")
	bridge := flag.Int("bridge", 0, "Closings on the reference mask before skeletonizing")
	despeckle := flag.Int("despeckle", 0, "Openings on the reference mask before skeletonizing")
	outPath := flag.String("out", "", "Write a comparison PNG: black shared, red ours only, blue reference only")
	flag.Parse()

	if *imagePath == "" {
		fmt.Println("Usage: thincheck -image <path> [-bridge 0] [-despeckle 0] [-out compare.png]")
		os.Exit(1)
	}

	bm, err := pimage.Load(*imagePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if err := bm.Readable(); err != nil {
		fmt.Fprintf(os.Stderr, "Unreadable image: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Loaded %s image: %dx%d pixels\n", bm.Model, bm.Width, bm.Height)

	g := grid.Binarize(bm)
	grid.Link(g)
	ink := len(g.Active())
	before := skeleton.Components(g)
	res := skeleton.Thin(g)
	after := skeleton.Components(g)
	ours := g.Points()

	fmt.Printf("\nThinner:\n")
	fmt.Printf("  Ink pixels:      %d\n", ink)
	fmt.Printf("  Skeleton pixels: %d\n", len(ours))
	fmt.Printf("  Iterations:      %d (+%d corner passes)\n", res.Iterations, res.CornerPasses)
	fmt.Printf("  Deleted/restored: %d/%d\n", res.Deleted, res.Restored)
	fmt.Printf("  Strokes:         %d -> %d\n", before, after)
	if before != after {
		fmt.Printf("  WARNING: thinning changed the number of strokes\n")
	}

	ref := reference.Skeleton(bm, reference.Options{Bridge: *bridge, Despeckle: *despeckle})

	a := skeleton.Compare(ours, ref)
	fmt.Printf("\nOpenCV skeleton:\n")
	fmt.Printf("  Skeleton pixels: %d\n", a.Reference)
	fmt.Printf("  Shared:          %d\n", a.Shared)
	fmt.Printf("  Jaccard:         %.3f\n", a.Jaccard)

	if *outPath != "" {
		if err := render.WritePNG(*outPath, comparison(bm.Width, bm.Height, ours, ref)); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		fmt.Printf("\nWrote %s\n", *outPath)
	}
}

// comparison paints both skeletons on white.
func comparison(w, h int, ours, ref []image.Point) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 0xFF
	}

	mine := make(map[image.Point]bool, len(ours))
	for _, p := range ours {
		mine[p] = true
		img.Set(p.X, p.Y, colorutil.Red)
	}
	for _, p := range ref {
		if mine[p] {
			img.Set(p.X, p.Y, colorutil.Black)
		} else {
			img.Set(p.X, p.Y, colorutil.Blue)
		}
	}
	return img
}
