// Package colors classifies annotation color samples into the small closed
// set of highlighter colors the extraction pipeline understands.
//
// Classification is total: any input, including malformed or out-of-range
// samples, maps to one of exactly five values. Unrecognized colors surface
// as [Unknown] rather than an error.
package colors

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Name identifies one of the canonical highlighter colors.
type Name string

const (
	Yellow  Name = "yellow"
	Pink    Name = "pink"
	Green   Name = "green"
	Blue    Name = "blue"
	Unknown Name = "unknown"
)

// Canonical returns the four recognized highlighter colors, excluding Unknown.
func Canonical() []Name {
	return []Name{Yellow, Pink, Green, Blue}
}

// Known returns true for the four canonical colors; Unknown and arbitrary
// strings report false.
func (n Name) Known() bool {
	switch n {
	case Yellow, Pink, Green, Blue:
		return true
	}
	return false
}

// Prototype returns a representative RGB value for the color, suitable for
// rendering swatches. Unknown maps to a light gray.
func (n Name) Prototype() colorful.Color {
	switch n {
	case Yellow:
		return colorful.Color{R: 1.0, G: 0.96, B: 0.38}
	case Pink:
		return colorful.Color{R: 0.98, G: 0.45, B: 0.82}
	case Green:
		return colorful.Color{R: 0.42, G: 0.90, B: 0.42}
	case Blue:
		return colorful.Color{R: 0.40, G: 0.62, B: 0.98}
	default:
		return colorful.Color{R: 0.85, G: 0.85, B: 0.85}
	}
}

// Classify maps an RGB sample to a canonical color name. Channel values may
// be normalized [0,1] or raw [0,255]; samples where every channel is <= 1
// are treated as normalized and rescaled. Samples with fewer than three
// channels classify as Unknown. Classify never panics.
func Classify(rgb []float64) Name {
	if len(rgb) < 3 {
		return Unknown
	}

	r, g, b := rgb[0], rgb[1], rgb[2]
	if r <= 1 && g <= 1 && b <= 1 {
		r, g, b = r*255, g*255, b*255
	}

	switch {
	case r > 220 && g > 220 && b < 120:
		return Yellow
	case r < 120 && g > 180 && b < 120:
		return Green
	case r < 120 && g < 180 && b > 180:
		return Blue
	case r > 180 && g < 180 && b > 180:
		return Pink
	}

	// No threshold matched: fall back to the dominant channel.
	maxVal := r
	if g > maxVal {
		maxVal = g
	}
	if b > maxVal {
		maxVal = b
	}

	switch {
	case maxVal == r && r > 150:
		return Pink
	case maxVal == g && g > 150:
		return Green
	case maxVal == b && b > 150:
		return Blue
	case r > 180 && g > 180:
		return Yellow
	}
	return Unknown
}

// ClassifySample classifies an annotation's color, preferring the fill color
// and falling back to the stroke color when no fill is present. Annotations
// carrying neither classify as Unknown.
func ClassifySample(fill, stroke []float64) Name {
	if len(fill) >= 3 {
		return Classify(fill)
	}
	if len(stroke) >= 3 {
		return Classify(stroke)
	}
	return Unknown
}
