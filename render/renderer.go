// Package render rasterizes decoded doodle paths to images.
//
// Line strokes are stamped: one quad per polyline segment plus a round cap
// at every point, which matches the soft hand-drawn look of the capture
// side. Dots are filled circles. All shapes are accumulated into a single
// anti-aliased coverage pass (golang.org/x/image/vector) and drawn with the
// ink color.
//
// The drawing is fitted into the output rectangle: uniform scale, centered,
// with configurable padding. RenderFrame renders a partial replay frame from
// the fractions produced by the replay package.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"

	"github.com/joodle/doodle"
)

// Default output configuration.
const (
	// DefaultSize is the default output width and height in pixels.
	DefaultSize = 512

	// DefaultPadding is the default padding around the drawing in pixels.
	DefaultPadding = 24
)

// Options configures rasterization.
// The zero value means "use defaults".
type Options struct {
	// Width and Height are the output dimensions in pixels.
	Width, Height int

	// Background fills the image before drawing. nil means transparent.
	Background color.Color

	// Ink is the stroke color. nil means black.
	Ink color.Color

	// PenWidth is the stroke width in drawing units before fitting.
	// Zero means doodle.PenWidth.
	PenWidth float64

	// Padding is the minimum space between the drawing and the image edge.
	Padding float64
}

// withDefaults fills in zero fields with the default values.
func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = DefaultSize
	}
	if o.Height <= 0 {
		o.Height = DefaultSize
	}
	if o.Ink == nil {
		o.Ink = color.Black
	}
	if o.PenWidth == 0 {
		o.PenWidth = doodle.PenWidth
	}
	if o.Padding == 0 {
		o.Padding = DefaultPadding
	}
	return o
}

// Render rasterizes the decoded paths into a new image.
func Render(paths []doodle.DecodedPath, opts Options) *image.RGBA {
	opts = opts.withDefaults()
	img := newCanvas(opts)
	renderPaths(img, paths, nil, opts)
	return img
}

// RenderFrame rasterizes a partial replay frame.
//
// fractions holds the per-stroke progress from replay.Schedule.Progress and
// must be the same length as paths. Line strokes are trimmed to their
// fraction; dots pop in fully once past their temporal midpoint and are
// otherwise omitted.
func RenderFrame(paths []doodle.DecodedPath, fractions []float64, opts Options) *image.RGBA {
	opts = opts.withDefaults()
	img := newCanvas(opts)
	renderPaths(img, paths, fractions, opts)
	return img
}

// EncodePNG writes the image as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// newCanvas allocates the output image and fills the background.
func newCanvas(opts Options) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	if opts.Background != nil {
		draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)
	}
	return img
}

// renderPaths rasterizes paths into img.
// A nil fractions slice renders everything fully.
func renderPaths(img *image.RGBA, paths []doodle.DecodedPath, fractions []float64, opts Options) {
	m, scale := fitMatrix(paths, opts)
	penWidth := opts.PenWidth * scale
	doodle.Logger().Debug("rendering paths",
		"strokes", len(paths), "width", opts.Width, "height", opts.Height, "scale", scale)

	r := vector.NewRasterizer(opts.Width, opts.Height)
	for i, dp := range paths {
		frac := 1.0
		if fractions != nil {
			if i >= len(fractions) {
				break
			}
			frac = fractions[i]
		}
		if frac <= 0 {
			continue
		}

		if dp.Dot {
			// Dots never render partially: gate on the midpoint, then
			// stamp the full circle at the fitted pen width.
			if fractions != nil && frac <= 0.5 {
				continue
			}
			if center, ok := pathStart(dp.Path); ok {
				fillCircle(r, m.TransformPoint(center), penWidth/2)
			}
			continue
		}

		path := dp.Path
		if frac < 1 {
			path = path.Trim(frac)
		}
		stampStroke(r, path.Transform(m), penWidth)
	}

	// The draw rect matches the rasterizer size; cards render the doodle
	// into a sub-area of a taller image.
	r.Draw(img, image.Rect(0, 0, opts.Width, opts.Height), image.NewUniform(opts.Ink), image.Point{})
}

// fitMatrix computes the transform that centers the full drawing in the
// output rectangle with padding, and the uniform scale factor it applies.
// The fit always uses the complete stroke set so that animated frames do
// not jump as strokes appear.
func fitMatrix(paths []doodle.DecodedPath, opts Options) (doodle.Matrix, float64) {
	bounds, ok := doodle.PathsBounds(paths)
	if !ok {
		return doodle.Identity(), 1
	}
	bounds = bounds.Expand(opts.PenWidth / 2)

	availW := float64(opts.Width) - 2*opts.Padding
	availH := float64(opts.Height) - 2*opts.Padding
	if availW <= 0 || availH <= 0 {
		return doodle.Identity(), 1
	}

	scale := 1.0
	if bounds.Width() > 0 && bounds.Height() > 0 {
		scale = math.Min(availW/bounds.Width(), availH/bounds.Height())
	}

	center := bounds.Center()
	m := doodle.Translate(float64(opts.Width)/2, float64(opts.Height)/2).
		Mul(doodle.Scale(scale, scale)).
		Mul(doodle.Translate(-center.X, -center.Y))
	return m, scale
}

// pathStart returns the first point of a path.
func pathStart(p *doodle.Path) (doodle.Point, bool) {
	for _, elem := range p.Elements() {
		if mv, ok := elem.(doodle.MoveTo); ok {
			return mv.Point, true
		}
	}
	return doodle.Point{}, false
}

// stampStroke adds a stroked polyline to the rasterizer: a quad per segment
// and a round cap circle at every point. All stamps share one winding
// direction so overlaps accumulate instead of canceling.
func stampStroke(r *vector.Rasterizer, path *doodle.Path, width float64) {
	points := polylinePoints(path)
	if len(points) == 0 {
		return
	}
	half := width / 2

	for _, pt := range points {
		fillCircle(r, pt, half)
	}
	for i := 1; i < len(points); i++ {
		fillSegment(r, points[i-1], points[i], half)
	}
}

// polylinePoints extracts the ordered points of a MoveTo/LineTo path.
func polylinePoints(p *doodle.Path) []doodle.Point {
	var points []doodle.Point
	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case doodle.MoveTo:
			points = append(points, e.Point)
		case doodle.LineTo:
			points = append(points, e.Point)
		}
	}
	return points
}

// fillSegment adds the quad covering a thick line segment from a to b.
func fillSegment(r *vector.Rasterizer, a, b doodle.Point, half float64) {
	dir := b.Sub(a).Normalize()
	if dir == (doodle.Point{}) {
		return
	}
	n := dir.Perp().Mul(half)

	moveTo(r, a.Sub(n))
	lineTo(r, b.Sub(n))
	lineTo(r, b.Add(n))
	lineTo(r, a.Add(n))
	r.ClosePath()
}

// fillCircle adds a filled circle approximated by four cubic curves.
func fillCircle(r *vector.Rasterizer, c doodle.Point, radius float64) {
	if radius <= 0 {
		return
	}
	path := doodle.NewPath()
	path.Circle(c.X, c.Y, radius)
	fillPath(r, path)
}

// fillPath adds an arbitrary path to the rasterizer.
func fillPath(r *vector.Rasterizer, p *doodle.Path) {
	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case doodle.MoveTo:
			moveTo(r, e.Point)
		case doodle.LineTo:
			lineTo(r, e.Point)
		case doodle.CubicTo:
			r.CubeTo(
				float32(e.Control1.X), float32(e.Control1.Y),
				float32(e.Control2.X), float32(e.Control2.Y),
				float32(e.Point.X), float32(e.Point.Y),
			)
		case doodle.Close:
			r.ClosePath()
		}
	}
}

func moveTo(r *vector.Rasterizer, p doodle.Point) {
	r.MoveTo(float32(p.X), float32(p.Y))
}

func lineTo(r *vector.Rasterizer, p doodle.Point) {
	r.LineTo(float32(p.X), float32(p.Y))
}
