// Package geom provides 2D computational geometry primitives: points, line
// segments, circles, circular arcs and polygons, together with the usual
// queries over them. These include transforms, projections, distances,
// intersections, tangents, and circle fitting and enclosing.
//
// # Values
//
// All types are small value types. Methods never modify their receiver or
// arguments and always return new values, so the package is safe for
// concurrent use without synchronization. The only source of nondeterminism is
// the random order used by [MinimumEnclosingCircle], which is drawn from a
// caller-supplied generator.
//
// # Lines
//
// A [Line] is stored as two points. Queries such as [Line.Intersect],
// [Point.Project] and [Point.DistanceToLine] treat it as the infinite line
// through both points, while [Point.IsOnSegment] treats it as the bounded
// segment. Consult each method's documentation.
//
// # Angles
//
// Angles that callers supply or receive are in degrees, measured
// counter-clockwise from the positive x axis in a y-up coordinate system. This
// covers [Point.Rotate], [Line.Angle] and the angles of an [Arc]. [Vec2] and
// [Affine] work in radians. Use [Radians] and [Degrees] to convert.
//
// # Degenerate input
//
// Operations that need a direction handle zero-length lines in one of two
// ways. Transforms and projections silently fall back to returning an input
// unchanged (see [Point.TranslateAlong], [Point.PerpendicularFoot] and
// [Point.Project], which notably falls back to the line's start point rather
// than the projected point). Solvers that would divide by a vanishing
// determinant instead return an error wrapping [ErrDegenerate]. Too few points
// or vertices produce an error wrapping [ErrInvalidInput]. Use [errors.Is] to
// tell them apart.
//
// # Tolerances
//
// Classification predicates take an explicit tolerance. [DefaultTolerance] is
// suitable for coordinates of moderate magnitude. Determinants and products
// are compared against [Epsilon]. [MinimumEnclosingCircle] is the exception:
// it only treats exactly collinear points as degenerate and uses Epsilon as a
// relative slack, so it works the same at any scale.
//
// # Literature
//
//   - [Welzl's algorithm]
//   - A Few Methods for Fitting Circles to Data by Dale Umbach and Kerry N. Jones
//   - [Point in polygon]
//
// [Welzl's algorithm]: https://en.wikipedia.org/wiki/Smallest-circle_problem#Welzl's_algorithm
// [Point in polygon]: https://en.wikipedia.org/wiki/Point_in_polygon#Ray_casting_algorithm
package geom
