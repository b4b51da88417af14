package convert

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	ErrHexColor     = errors.New("colour must be 3 or 6 hex digits, optionally prefixed with #")
	ErrChannelRange = errors.New("colour channels must be between 0 and 255")
)

// RGB is an 8-bit colour.
type RGB struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// NewRGB validates the channels.
func NewRGB(r, g, b int) (RGB, error) {
	for _, c := range []int{r, g, b} {
		if c < 0 || c > 255 {
			return RGB{}, ErrChannelRange
		}
	}
	return RGB{R: r, G: g, B: b}, nil
}

// ParseHexColor parses "#RRGGBB", "RRGGBB", "#RGB" or "RGB".
func ParseHexColor(s string) (RGB, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return RGB{}, ErrHexColor
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}, ErrHexColor
	}
	return RGB{R: int(v >> 16 & 0xFF), G: int(v >> 8 & 0xFF), B: int(v & 0xFF)}, nil
}

// Hex renders the colour as "#RRGGBB".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// CSS renders the colour as "rgb(r, g, b)".
func (c RGB) CSS() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// HSL is hue in degrees and saturation/lightness in percent.
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

func (h HSL) String() string {
	return fmt.Sprintf("hsl(%.0f, %.0f%%, %.0f%%)", h.H, h.S, h.L)
}

// HSL converts the colour to hue, saturation and lightness.
func (c RGB) HSL() HSL {
	r, g, b := float64(c.R)/255, float64(c.G)/255, float64(c.B)/255
	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	l := (max + min) / 2
	if max == min {
		return HSL{L: l * 100}
	}
	d := max - min
	s := d / (1 - math.Abs(2*l-1))
	var h float64
	switch max {
	case r:
		h = math.Mod((g-b)/d, 6)
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	h *= 60
	if h < 0 {
		h += 360
	}
	return HSL{H: h, S: s * 100, L: l * 100}
}

// ErrFontSize is returned for a non-positive root font size.
var ErrFontSize = errors.New("root font size must be greater than zero")

// DefaultRootFontSize is the browser default root font size in px.
const DefaultRootFontSize = 16.0

// PxToRem converts pixels to rem against the root font size.
func PxToRem(px, root float64) (float64, error) {
	if root <= 0 {
		return 0, ErrFontSize
	}
	return px / root, nil
}

// RemToPx converts rem to pixels against the root font size.
func RemToPx(rem, root float64) (float64, error) {
	if root <= 0 {
		return 0, ErrFontSize
	}
	return rem * root, nil
}
