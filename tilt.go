package circlebutton

import "math"

const (
	// DefaultCameraDistance is the distance from the eye to the z=0 plane,
	// eight inches at 72 points per inch.
	DefaultCameraDistance = 576.0

	maxTiltDegrees = 45.0
)

// TiltAngles returns the rotation about the X and Y axes, in degrees, for a
// pointer at (px, py). The angle reaches ±45° when the pointer is
// referenceSize away from the center and is capped there.
func TiltAngles(px, py float64, g Geometry, referenceSize float64) (rotateX, rotateY float64) {
	if referenceSize <= 0 {
		return 0, 0
	}
	offsetX := g.CenterX - px
	offsetY := g.CenterY - py
	rotateX = clampUnit(offsetY/referenceSize) * maxTiltDegrees
	rotateY = -clampUnit(offsetX/referenceSize) * maxTiltDegrees
	return rotateX, rotateY
}

// ComputeTilt returns the perspective transform that tilts the circle toward
// a pointer at (px, py), pivoting on the circle center. It uses
// DefaultCameraDistance.
func ComputeTilt(px, py float64, g Geometry, referenceSize float64) Matrix {
	return ComputeTiltWithCamera(px, py, g, referenceSize, DefaultCameraDistance)
}

// ComputeTiltWithCamera is ComputeTilt with an explicit camera distance.
//
// The plane z=0 (x right, y down, z into the screen) is rotated by
// Rx(rotateX)·Ry(rotateY) and projected through a pinhole at -distance. The
// side of the circle facing the pointer is pushed away from the eye, like a
// knob pressed from that direction. The resulting matrix is re-anchored so
// the circle center is the pivot.
func ComputeTiltWithCamera(px, py float64, g Geometry, referenceSize, distance float64) Matrix {
	rx, ry := TiltAngles(px, py, g, referenceSize)
	if (rx == 0 && ry == 0) || distance <= 0 {
		return IdentityMatrix
	}
	return cameraMatrix(rx, ry, distance).
		PreTranslate(-g.CenterX, -g.CenterY).
		PostTranslate(g.CenterX, g.CenterY)
}

// cameraMatrix projects the rotated z=0 plane onto the screen. Only the
// first two columns of the rotation matter since input points have z=0.
func cameraMatrix(rotateXDeg, rotateYDeg, distance float64) Matrix {
	sx, cx := math.Sincos(rotateXDeg * math.Pi / 180)
	sy, cy := math.Sincos(rotateYDeg * math.Pi / 180)

	// R = Rx * Ry, with
	//   Rx = |1 0 0; 0 cx -sx; 0 sx cx|
	//   Ry = |cy 0 sy; 0 1 0; -sy 0 cy|
	// The depth row is negated: positive angles move the pointer side in.
	r00, r01 := cy, 0.0
	r10, r11 := sx*sy, cx
	r20, r21 := cx*sy, -sx

	// x' = d*X/(d+Z), y' = d*Y/(d+Z); scale the whole matrix by 1/d.
	return Matrix{
		r00, r01, 0,
		r10, r11, 0,
		r20 / distance, r21 / distance, 1,
	}
}

func clampUnit(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(-1, math.Min(1, v))
}
