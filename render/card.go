package render

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/joodle/doodle"
)

// Card layout constants.
const (
	// DefaultCardWidth and DefaultCardHeight are the default card dimensions.
	DefaultCardWidth  = 512
	DefaultCardHeight = 640

	// captionBand is the height reserved at the bottom for the caption.
	captionBand = 96

	// captionGap is the space between caption lines.
	captionGap = 6
)

// CardOptions configures share-card rendering.
// The zero value means "use defaults".
type CardOptions struct {
	// Options configures the doodle rendering inside the card.
	Options

	// Caption is drawn centered under the doodle (e.g. the day's note).
	Caption string

	// Subcaption is drawn under the caption in the same style
	// (e.g. the entry date).
	Subcaption string

	// Text is the caption color. nil means the ink color.
	Text color.Color
}

// RenderCard renders a drawing plus caption text into a shareable image.
// The doodle occupies the area above the caption band, centered and padded;
// the caption and subcaption are centered inside the band.
func RenderCard(paths []doodle.DecodedPath, opts CardOptions) *image.RGBA {
	if opts.Width <= 0 {
		opts.Width = DefaultCardWidth
	}
	if opts.Height <= 0 {
		opts.Height = DefaultCardHeight
	}
	if opts.Background == nil {
		opts.Background = color.White
	}
	opts.Options = opts.Options.withDefaults()
	if opts.Text == nil {
		opts.Text = opts.Ink
	}

	img := newCanvas(opts.Options)

	// Fit the doodle into the area above the caption band.
	doodleOpts := opts.Options
	doodleOpts.Height = opts.Height - captionBand
	doodleOpts.Background = nil
	renderPaths(img, paths, nil, doodleOpts)

	face := basicfont.Face7x13
	lineHeight := face.Metrics().Height.Ceil() + captionGap
	y := opts.Height - captionBand/2 - lineHeight/2
	drawCenteredText(img, face, opts.Text, opts.Caption, opts.Width, y)
	drawCenteredText(img, face, opts.Text, opts.Subcaption, opts.Width, y+lineHeight)

	return img
}

// drawCenteredText draws one line of text horizontally centered at baseline y.
func drawCenteredText(img *image.RGBA, face font.Face, c color.Color, text string, width, y int) {
	if text == "" {
		return
	}
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
	}
	textWidth := d.MeasureString(text)
	d.Dot = fixed.Point26_6{
		X: fixed.I(width)/2 - textWidth/2,
		Y: fixed.I(y),
	}
	d.DrawString(text)
}
