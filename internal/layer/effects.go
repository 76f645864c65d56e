package layer

import (
	"math"

	"golang.org/x/image/colornames"
)

// Built-in effects, in catalogue index order. The order is load-bearing: the
// sequence store composes applying layers by ascending index, so reordering
// these changes rendered output.
var (
	// Black paints the cell solid black regardless of input.
	Black = register("black", constant(colornames.Black.R, colornames.Black.G, colornames.Black.B))

	// White paints the cell solid white regardless of input.
	White = register("white", constant(colornames.White.R, colornames.White.G, colornames.White.B))

	// Invert flips every channel. It doubles as the output transform of the
	// set store's special mode.
	Invert = register("invert", func(c Color, t, x, y int) Color {
		return Color{R: 255 - c.R, G: 255 - c.G, B: 255 - c.B}
	})

	// Lighten raises every channel by a fixed step, saturating at 255.
	Lighten = register("lighten", func(c Color, t, x, y int) Color {
		return Color{R: addClamp(c.R, 40), G: addClamp(c.G, 40), B: addClamp(c.B, 40)}
	})

	// Darken lowers every channel by a fixed step, saturating at 0.
	Darken = register("darken", func(c Color, t, x, y int) Color {
		return Color{R: subClamp(c.R, 40), G: subClamp(c.G, 40), B: subClamp(c.B, 40)}
	})

	// Rainbow replaces the color with a hue cycling over the logical
	// timestamp, offset per cell so neighbouring cells differ.
	Rainbow = register("rainbow", func(c Color, t, x, y int) Color {
		phase := float64(t+x+y) * 0.3
		return Color{
			R: wave(phase),
			G: wave(phase + 2*math.Pi/3),
			B: wave(phase + 4*math.Pi/3),
		}
	})

	// Sparkle perturbs each channel by a hash of (t, x, y). It looks like
	// noise but is a pure function of its inputs, so replay reproduces it.
	Sparkle = register("sparkle", func(c Color, t, x, y int) Color {
		h := mix(uint32(t), uint32(x), uint32(y))
		return Color{
			R: jitter(c.R, h),
			G: jitter(c.G, h>>8),
			B: jitter(c.B, h>>16),
		}
	})
)

// constant returns an ApplyFunc that ignores its input entirely.
func constant(r, g, b uint8) ApplyFunc {
	c := Color{R: r, G: g, B: b}
	return func(Color, int, int, int) Color { return c }
}

func addClamp(c uint8, step int) uint8 {
	v := int(c) + step
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func subClamp(c uint8, step int) uint8 {
	v := int(c) - step
	if v < 0 {
		return 0
	}
	return uint8(v)
}

// wave maps a phase to a full-range channel value.
func wave(phase float64) uint8 {
	return uint8(math.Round(127.5 + 127.5*math.Sin(phase)))
}

// mix is a small integer hash (xorshift-multiply) over three words.
func mix(a, b, c uint32) uint32 {
	h := a*0x9e3779b1 ^ b*0x85ebca6b ^ c*0xc2b2ae35
	h ^= h >> 15
	h *= 0x27d4eb2f
	h ^= h >> 13
	return h
}

// jitter shifts a channel by hash-derived noise in [-24, 23], clamped.
func jitter(c uint8, h uint32) uint8 {
	d := int(h%48) - 24
	v := int(c) + d
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
