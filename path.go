package doodle

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// cubicFlattenSteps is the number of line segments used to approximate a
// cubic Bezier for length and bounds computations.
const cubicFlattenSteps = 16

// Path represents a vector path.
type Path struct {
	elements []PathElement
	start    Point // Starting point of current subpath
	current  Point // Current point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to a point.
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	ctrl1 := Pt(c1x, c1y)
	ctrl2 := Pt(c2x, c2y)
	pt := Pt(x, y)
	p.elements = append(p.elements, CubicTo{
		Control1: ctrl1,
		Control2: ctrl2,
		Point:    pt,
	})
	p.current = pt
}

// Close closes the current subpath by drawing a line to the start point.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// IsEmpty returns true if the path has no elements.
func (p *Path) IsEmpty() bool {
	return len(p.elements) == 0
}

// Circle adds a circle to the path using cubic Bezier curves.
func (p *Path) Circle(cx, cy, r float64) {
	// Magic constant for circle approximation with cubic Beziers
	const k = 0.5522847498307936 // 4/3 * (sqrt(2) - 1)
	offset := r * k

	p.MoveTo(cx+r, cy)
	p.CubicTo(cx+r, cy+offset, cx+offset, cy+r, cx, cy+r)
	p.CubicTo(cx-offset, cy+r, cx-r, cy+offset, cx-r, cy)
	p.CubicTo(cx-r, cy-offset, cx-offset, cy-r, cx, cy-r)
	p.CubicTo(cx+offset, cy-r, cx+r, cy-offset, cx+r, cy)
	p.Close()
}

// Length returns the total arc length of the path.
// Line segments are measured exactly; cubic curves are flattened into
// cubicFlattenSteps segments, which is plenty for animation timing.
func (p *Path) Length() float64 {
	var total float64
	var cur, start Point
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			cur = e.Point
			start = e.Point
		case LineTo:
			total += cur.Distance(e.Point)
			cur = e.Point
		case CubicTo:
			total += cubicLength(cur, e.Control1, e.Control2, e.Point)
			cur = e.Point
		case Close:
			total += cur.Distance(start)
			cur = start
		}
	}
	return total
}

// Bounds returns the axis-aligned bounding rectangle of the path.
// Control points of cubic curves are included, which may overestimate
// slightly; that is fine for fitting a drawing into an output rect.
// Returns (Rect{}, false) if the path is empty.
func (p *Path) Bounds() (Rect, bool) {
	var r Rect
	first := true
	extend := func(pt Point) {
		if first {
			r = Rect{Min: pt, Max: pt}
			first = false
			return
		}
		r = r.ExtendPoint(pt)
	}
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			extend(e.Point)
		case LineTo:
			extend(e.Point)
		case CubicTo:
			extend(e.Control1)
			extend(e.Control2)
			extend(e.Point)
		}
	}
	return r, !first
}

// Trim returns the prefix of the path covering frac of its total length.
// frac <= 0 yields an empty path; frac >= 1 yields a full copy.
// Line segments are split at the cut point. Cubic curves are kept whole:
// a cut landing inside a curve stops before it.
func (p *Path) Trim(frac float64) *Path {
	if frac <= 0 || p.IsEmpty() {
		return NewPath()
	}
	if frac >= 1 {
		return p.Clone()
	}

	target := p.Length() * frac
	result := NewPath()
	var consumed float64
	var cur, start Point

	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			cur = e.Point
			start = e.Point
			result.MoveTo(e.Point.X, e.Point.Y)
		case LineTo:
			seg := cur.Distance(e.Point)
			if consumed+seg <= target {
				result.LineTo(e.Point.X, e.Point.Y)
				consumed += seg
				cur = e.Point
				continue
			}
			if seg > 0 {
				t := (target - consumed) / seg
				cut := cur.Lerp(e.Point, t)
				result.LineTo(cut.X, cut.Y)
			}
			return result
		case CubicTo:
			seg := cubicLength(cur, e.Control1, e.Control2, e.Point)
			if consumed+seg > target {
				return result
			}
			result.CubicTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
			consumed += seg
			cur = e.Point
		case Close:
			seg := cur.Distance(start)
			if consumed+seg <= target {
				result.Close()
				consumed += seg
				cur = start
				continue
			}
			if seg > 0 {
				t := (target - consumed) / seg
				cut := cur.Lerp(start, t)
				result.LineTo(cut.X, cut.Y)
			}
			return result
		}
	}
	return result
}

// Transform applies a transformation matrix to all points in the path.
func (p *Path) Transform(m Matrix) *Path {
	result := NewPath()
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			pt := m.TransformPoint(e.Point)
			result.MoveTo(pt.X, pt.Y)
		case LineTo:
			pt := m.TransformPoint(e.Point)
			result.LineTo(pt.X, pt.Y)
		case CubicTo:
			ctrl1 := m.TransformPoint(e.Control1)
			ctrl2 := m.TransformPoint(e.Control2)
			pt := m.TransformPoint(e.Point)
			result.CubicTo(ctrl1.X, ctrl1.Y, ctrl2.X, ctrl2.Y, pt.X, pt.Y)
		case Close:
			result.Close()
		}
	}
	return result
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	result := NewPath()
	result.elements = make([]PathElement, len(p.elements))
	copy(result.elements, p.elements)
	result.start = p.start
	result.current = p.current
	return result
}

// cubicLength approximates the arc length of a cubic Bezier by sampling.
func cubicLength(p0, c1, c2, p1 Point) float64 {
	var total float64
	prev := p0
	for i := 1; i <= cubicFlattenSteps; i++ {
		t := float64(i) / cubicFlattenSteps
		pt := cubicPoint(p0, c1, c2, p1, t)
		total += prev.Distance(pt)
		prev = pt
	}
	return total
}

// cubicPoint evaluates a cubic Bezier at parameter t.
func cubicPoint(p0, c1, c2, p1 Point, t float64) Point {
	u := 1 - t
	a := u * u * u
	b := 3 * u * u * t
	c := 3 * u * t * t
	d := t * t * t
	return Point{
		X: a*p0.X + b*c1.X + c*c2.X + d*p1.X,
		Y: a*p0.Y + b*c1.Y + c*c2.Y + d*p1.Y,
	}
}
