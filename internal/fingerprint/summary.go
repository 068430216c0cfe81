package fingerprint

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"sig-tracer/pkg/geometry"
)

// Summary aggregates the vectors of a fingerprint.
type Summary struct {
	Vectors   int               `json:"vectors" yaml:"vectors"`
	Isolated  int               `json:"isolated" yaml:"isolated"`
	Pixels    int               `json:"pixels" yaml:"pixels"`
	Quadrants []QuadrantSummary `json:"quadrants" yaml:"quadrants"`
}

// QuadrantSummary describes the vectors of one quadrant. Angle statistics
// only cover vectors with a defined angle.
type QuadrantSummary struct {
	Quadrant string `json:"quadrant" yaml:"quadrant"`
	Vectors  int    `json:"vectors" yaml:"vectors"`
	Isolated int    `json:"isolated" yaml:"isolated"`
	Pixels   int    `json:"pixels" yaml:"pixels"`
	Longest  int    `json:"longest" yaml:"longest"`

	MeanAngle   float64 `json:"mean_angle" yaml:"mean_angle"`
	AngleStdDev float64 `json:"angle_stddev" yaml:"angle_stddev"` // 0 with fewer than two angles

	// AxialMeanAngle treats angles as undirected lines, so 1 and 179
	// average to 0 rather than 90. Reported in [0, 180).
	AxialMeanAngle float64 `json:"axial_mean_angle" yaml:"axial_mean_angle"`
}

// Summarize computes per-quadrant statistics, always reporting all four
// quadrants in order.
func Summarize(vectors []Vector) Summary {
	var s Summary
	angles := make([][]float64, 4)
	lengths := make([][]float64, 4)
	s.Quadrants = make([]QuadrantSummary, 4)
	for q := range s.Quadrants {
		s.Quadrants[q].Quadrant = geometry.Quadrant(q).String()
	}

	for _, v := range vectors {
		q := v.Quadrant & 3
		qs := &s.Quadrants[q]
		qs.Vectors++
		qs.Pixels += len(v.Path)
		if v.Isolated {
			qs.Isolated++
		}
		if v.Angle != nil {
			angles[q] = append(angles[q], *v.Angle)
		}
		lengths[q] = append(lengths[q], float64(len(v.Path)))
	}

	for q := range s.Quadrants {
		qs := &s.Quadrants[q]
		s.Vectors += qs.Vectors
		s.Isolated += qs.Isolated
		s.Pixels += qs.Pixels
		if len(lengths[q]) > 0 {
			qs.Longest = int(floats.Max(lengths[q]))
		}

		a := angles[q]
		if len(a) == 0 {
			continue
		}
		qs.MeanAngle = stat.Mean(a, nil)
		if len(a) > 1 {
			qs.AngleStdDev = stat.StdDev(a, nil)
		}
		qs.AxialMeanAngle = axialMean(a)
	}
	return s
}

// axialMean averages angles in degrees modulo 180.
func axialMean(degrees []float64) float64 {
	doubled := make([]float64, len(degrees))
	for i, d := range degrees {
		doubled[i] = 2 * d * math.Pi / 180
	}
	m := stat.CircularMean(doubled, nil) / 2 * 180 / math.Pi
	return math.Mod(m+180, 180)
}

// Straightness returns the largest eigenvalue of the path's coordinate
// covariance over the total variance.
func Straightness(path [][2]int) float64 {
	if len(path) < 2 {
		return 0
	}
	xs := make([]float64, len(path))
	ys := make([]float64, len(path))
	for i, p := range path {
		xs[i], ys[i] = float64(p[0]), float64(p[1])
	}
	vx := stat.Variance(xs, nil)
	vy := stat.Variance(ys, nil)
	cxy := stat.Covariance(xs, ys, nil)
	total := vx + vy
	if total == 0 {
		return 0
	}

	cov := mat.NewSymDense(2, []float64{vx, cxy, cxy, vy})
	var eig mat.EigenSym
	if !eig.Factorize(cov, false) {
		return 0
	}
	values := eig.Values(nil)
	return floats.Max(values) / total
}
