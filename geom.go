package geom

// Epsilon is the threshold below which determinants, cross products and dot
// products are treated as zero.
const Epsilon = 1e-10

// DefaultTolerance is the distance tolerance used by the point classification
// predicates when callers have no better value.
const DefaultTolerance = 1e-10

// TangentLength is the length of the single tangent segment returned by
// [Circle.Tangents] for a point that lies on the circle. Only its direction is
// meaningful.
const TangentLength = 10.0
