package sketch

import (
	"image/color"
	"strconv"
	"strings"
)

// StyleFrame is a snapshot of every mutable drawing attribute.
// Frames are plain values; Push copies the current one.
type StyleFrame struct {
	// Origin is the translation applied to every logical point.
	Origin Vector
	// Rotation is in degrees, clockwise-positive on a Y-down screen.
	Rotation float64

	Fill     color.NRGBA
	NoFill   bool
	Stroke   color.NRGBA
	NoStroke bool
	// StrokeWidth is in device pixels.
	StrokeWidth float64
	// Alpha scales the opacity of fill and stroke, in [0, 1].
	Alpha float64

	FontFamily string
	FontSize   float64
	FontColor  color.NRGBA
}

// DefaultStyle is the root frame of a new canvas: white fill, black 1px
// stroke, 20pt sans text in black.
func DefaultStyle() StyleFrame {
	return StyleFrame{
		Fill:        White,
		Stroke:      Black,
		StrokeWidth: 1,
		Alpha:       1,
		FontFamily:  "sans",
		FontSize:    20,
		FontColor:   Black,
	}
}

// EffectiveFill is the fill color shapes are painted with.
// With NoFill the interior is fully transparent.
func (f StyleFrame) EffectiveFill() color.NRGBA {
	if f.NoFill {
		return Transparent
	}
	return withAlpha(f.Fill, f.Alpha)
}

// EffectiveStroke is the outline color shapes are painted with.
// With NoStroke the outline takes the effective fill color.
func (f StyleFrame) EffectiveStroke() color.NRGBA {
	if f.NoStroke {
		return f.EffectiveFill()
	}
	return withAlpha(f.Stroke, f.Alpha)
}

// styleStack is an ordered sequence of frames; the last one is current.
// The root frame at index 0 can never be popped.
type styleStack struct {
	frames []StyleFrame
}

func newStyleStack(root StyleFrame) styleStack {
	frames := make([]StyleFrame, 1, 8)
	frames[0] = root
	return styleStack{frames: frames}
}

func (s *styleStack) top() *StyleFrame {
	return &s.frames[len(s.frames)-1]
}

func (s *styleStack) push() {
	s.frames = append(s.frames, *s.top())
}

func (s *styleStack) pop() error {
	if len(s.frames) <= 1 {
		return ErrStackUnderflow
	}
	s.frames = s.frames[:len(s.frames)-1]
	return nil
}

func (s *styleStack) depth() int {
	return len(s.frames)
}

// reset drops every saved frame and restores the root to root.
func (s *styleStack) reset(root StyleFrame) {
	s.frames = s.frames[:1]
	s.frames[0] = root
}

// parseFontSpec splits a "Family Size" font string such as "Tahoma 20".
// size is zero when the string carries no trailing number.
func parseFontSpec(spec string) (family string, size float64) {
	spec = strings.TrimSpace(spec)
	i := strings.LastIndexByte(spec, ' ')
	if i < 0 {
		return spec, 0
	}
	n, err := strconv.ParseFloat(spec[i+1:], 64)
	if err != nil || n <= 0 {
		return spec, 0
	}
	return strings.TrimSpace(spec[:i]), n
}
