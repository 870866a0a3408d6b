package render

import (
	"image/color"
	"strings"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/matzehuels/dataplot/pkg/errors"
)

// =============================================================================
// Colors
// =============================================================================

// palette maps single-character color codes (matplotlib convention) to RGB.
var palette = map[byte][3]uint8{
	'r': {255, 0, 0},
	'g': {0, 128, 0},
	'b': {0, 0, 255},
	'y': {191, 191, 0},
	'c': {0, 191, 191},
	'm': {191, 0, 191},
	'k': {0, 0, 0},
	'w': {255, 255, 255},
	'o': {255, 165, 0},
}

// colorFor resolves a color code to a color with the given opacity.
// Alpha is in (0, 1].
func colorFor(code byte, alpha float64) (color.Color, error) {
	rgb, ok := palette[code]
	if !ok {
		return nil, errors.New(errors.ErrCodeUsage, "unknown color %q (try one of rgbycmkwo)", string(code))
	}
	return color.NRGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: uint8(alpha*255 + 0.5)}, nil
}

// colorAt cycles through the color string for series index i.
func colorAt(colors string, i int, alpha float64) (color.Color, error) {
	if colors == "" {
		return nil, errors.New(errors.ErrCodeUsage, "color string is empty")
	}
	return colorFor(colors[i%len(colors)], alpha)
}

// =============================================================================
// Marker Shapes
// =============================================================================

// glyph pairs a marker drawer with its radius. The '.' and ',' codes draw
// progressively smaller dots, as in matplotlib.
type glyph struct {
	shape  draw.GlyphDrawer
	radius vg.Length
}

// glyphFor resolves a shape code to a marker glyph.
func glyphFor(code byte) (glyph, error) {
	switch code {
	case 'o':
		return glyph{draw.CircleGlyph{}, vg.Points(3)}, nil
	case 'O':
		return glyph{draw.RingGlyph{}, vg.Points(4)}, nil
	case '.':
		return glyph{draw.CircleGlyph{}, vg.Points(1.5)}, nil
	case ',':
		return glyph{draw.CircleGlyph{}, vg.Points(0.75)}, nil
	case '+':
		return glyph{draw.PlusGlyph{}, vg.Points(3.5)}, nil
	case 'x':
		return glyph{draw.CrossGlyph{}, vg.Points(3)}, nil
	case 's':
		return glyph{draw.BoxGlyph{}, vg.Points(3)}, nil
	case '^':
		return glyph{draw.PyramidGlyph{}, vg.Points(3.5)}, nil
	case '*':
		return glyph{draw.SquareGlyph{}, vg.Points(3.5)}, nil
	default:
		return glyph{}, errors.New(errors.ErrCodeUsage, "unknown shape %q (try one of oO.,+xs^*)", string(code))
	}
}

// glyphAt cycles through the shape string for series index i.
func glyphAt(shapes string, i int) (glyph, error) {
	if shapes == "" {
		return glyph{}, errors.New(errors.ErrCodeUsage, "shape string is empty")
	}
	return glyphFor(shapes[i%len(shapes)])
}

// =============================================================================
// Line Styles
// =============================================================================

// dashesFor resolves an additional style string to a dash pattern.
// An empty style means no connecting line; "-" is a solid line.
func dashesFor(style string) (dashes []vg.Length, line bool, err error) {
	switch style {
	case "":
		return nil, false, nil
	case "-":
		return nil, true, nil
	case "--":
		return []vg.Length{vg.Points(6), vg.Points(3)}, true, nil
	case ":":
		return []vg.Length{vg.Points(1), vg.Points(3)}, true, nil
	case "-.":
		return []vg.Length{vg.Points(6), vg.Points(3), vg.Points(1), vg.Points(3)}, true, nil
	default:
		return nil, false, errors.New(errors.ErrCodeUsage, "unknown style %q (try -, --, : or -.)", style)
	}
}

// =============================================================================
// Legend Placement
// =============================================================================

// legendAnchor is a parsed legend position.
type legendAnchor struct {
	top  bool
	left bool
}

// parseLegend parses a matplotlib-style legend position such as
// "upper left" or "lower right". Horizontal "center" is approximated by
// right alignment; gonum's legend only anchors to corners.
func parseLegend(pos string) (legendAnchor, error) {
	fields := strings.Fields(strings.ToLower(pos))
	if len(fields) != 2 {
		return legendAnchor{}, errors.New(errors.ErrCodeUsage, "invalid legend position %q (expected e.g. \"upper left\")", pos)
	}

	var a legendAnchor
	switch fields[0] {
	case "upper":
		a.top = true
	case "lower":
		a.top = false
	default:
		return legendAnchor{}, errors.New(errors.ErrCodeUsage, "invalid legend position %q: vertical must be upper or lower", pos)
	}
	switch fields[1] {
	case "left":
		a.left = true
	case "right", "center":
		a.left = false
	default:
		return legendAnchor{}, errors.New(errors.ErrCodeUsage, "invalid legend position %q: horizontal must be left, right or center", pos)
	}
	return a, nil
}
