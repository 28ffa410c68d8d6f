package doodle

// Pen geometry constants shared by capture, decoding, and rendering.
const (
	// PenWidth is the standard stroke width in drawing units.
	PenWidth = 5.0

	// DotRadius is the radius of a tap dot: half the pen width.
	DotRadius = PenWidth / 2
)

// Stroke is one continuous pen-down-to-pen-up drawing action: an ordered
// point list plus a flag marking single-tap dots. A stroke is immutable
// once captured.
type Stroke struct {
	Points []Point
	Dot    bool
}

// PathLength returns the polyline length of the stroke.
// Dots and single-point strokes have zero length.
func (s Stroke) PathLength() float64 {
	var total float64
	for i := 1; i < len(s.Points); i++ {
		total += s.Points[i-1].Distance(s.Points[i])
	}
	return total
}

// Path builds the renderable path for the stroke.
//
// A dot with at least one point becomes a filled circle centered on the
// first point with radius DotRadius. Anything else becomes a polyline:
// MoveTo the first point, LineTo each subsequent point in order.
// A stroke with no points yields an empty path.
func (s Stroke) Path() *Path {
	path := NewPath()
	if len(s.Points) == 0 {
		return path
	}
	if s.Dot {
		path.Circle(s.Points[0].X, s.Points[0].Y, DotRadius)
		return path
	}
	path.MoveTo(s.Points[0].X, s.Points[0].Y)
	for _, pt := range s.Points[1:] {
		path.LineTo(pt.X, pt.Y)
	}
	return path
}

// Drawing is the full ordered set of strokes composing one day's doodle.
// Order is meaningful: it is both z-order for static rendering and temporal
// order for replay animation.
type Drawing []Stroke

// DecodedPath is the renderable form of a stroke: a vector path plus the
// dot flag. Never mutated after creation.
type DecodedPath struct {
	Path *Path
	Dot  bool
}

// Decode converts the drawing into renderable paths, preserving stroke order.
func (d Drawing) Decode() []DecodedPath {
	paths := make([]DecodedPath, 0, len(d))
	for _, s := range d {
		paths = append(paths, DecodedPath{Path: s.Path(), Dot: s.Dot})
	}
	return paths
}

// PathsBounds returns the bounding rectangle over all decoded paths.
// Returns (Rect{}, false) if there is no geometry.
func PathsBounds(paths []DecodedPath) (Rect, bool) {
	var r Rect
	found := false
	for _, dp := range paths {
		b, ok := dp.Path.Bounds()
		if !ok {
			continue
		}
		if !found {
			r = b
			found = true
			continue
		}
		r = r.Union(b)
	}
	return r, found
}
