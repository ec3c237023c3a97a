package gamemath

import "math"

// rotateEpsilon absorbs float noise so that exact quarter turns keep
// integral sizes (e.g. cos(90deg) is not exactly zero).
const rotateEpsilon = 1e-9

// RotatedSize returns the size of the bounding box of a w x h image rotated
// by deg degrees about its centre.
func RotatedSize(w, h, deg int) (int, int) {
	rad := float64(deg) * math.Pi / 180
	c := math.Abs(math.Cos(rad))
	s := math.Abs(math.Sin(rad))
	rw := float64(w)*c + float64(h)*s
	rh := float64(w)*s + float64(h)*c
	return int(math.Ceil(rw - rotateEpsilon)), int(math.Ceil(rh - rotateEpsilon))
}

// Radians converts whole degrees to radians.
func Radians(deg int) float64 {
	return float64(deg) * math.Pi / 180
}
