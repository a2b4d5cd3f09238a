package builder

import "github.com/golang/geo/s1"

// EarthRadiusKm is the mean Earth radius used to convert a physical
// surface distance into a geodesic angle. It is the same reference value
// the teacher's own test fixtures assume when they call a kmToAngle helper
// to build a SnapRadius.
const EarthRadiusKm = 6371.01

// AngleFromKm converts a great-circle surface distance in kilometers to
// the s1.Angle subtended at the sphere's center.
func AngleFromKm(km float64) s1.Angle {
	return s1.Angle(km / EarthRadiusKm)
}

// VertexMergeRadiusFromDistance sets VertexMergeRadius from a physical
// surface distance in kilometers rather than an angle.
func VertexMergeRadiusFromDistance(km float64) Option {
	return WithVertexMergeRadius(AngleFromKm(km))
}

// RobustnessRadiusFromDistance sets RobustnessRadius from a physical
// surface distance in kilometers rather than an angle.
func RobustnessRadiusFromDistance(km float64) Option {
	return WithRobustnessRadius(AngleFromKm(km))
}
