// Package svgcolor resolves CSS color specifications to the canonical string
// a 2D canvas reports for its fill and stroke styles:
// "#rrggbb" for opaque colors, "rgba(r, g, b, a)" otherwise.
package svgcolor

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Black is the color used for specifications which can't be parsed.
var Black = color.NRGBA{A: 0xff}

var errInvalidColor = errors.New("invalid color")

// Normalize returns the canonical form of `spec`.
// It never fails: invalid specifications resolve to black, the default
// style of a fresh canvas. Normalize(Normalize(s)) == Normalize(s).
func Normalize(spec string) string {
	c, err := Parse(spec)
	if err != nil {
		return Format(Black)
	}
	return Format(c)
}

// Format serializes c in canonical form.
func Format(c color.NRGBA) string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, formatAlpha(c.A))
}

// formatAlpha uses the shortest decimal (at most 3 digits)
// which parses back to the same byte.
func formatAlpha(a uint8) string {
	f := math.Round(float64(a)/255*100) / 100
	if toByte(f) != a {
		f = math.Round(float64(a)/255*1000) / 1000
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Parse reads a CSS color: a keyword, "transparent", a hexadecimal
// notation (#rgb, #rgba, #rrggbb, #rrggbbaa), or the rgb(), rgba(),
// hsl() and hsla() functions, in comma or space separated syntax.
func Parse(spec string) (color.NRGBA, error) {
	s := strings.ToLower(strings.TrimSpace(spec))
	if s == "" {
		return color.NRGBA{}, errInvalidColor
	}
	if s == "transparent" {
		return color.NRGBA{}, nil
	}
	if s[0] == '#' {
		return parseHexColor(s[1:])
	}
	if i := strings.IndexByte(s, '('); i > 0 && strings.HasSuffix(s, ")") {
		args, err := splitArgs(s[i+1 : len(s)-1])
		if err != nil {
			return color.NRGBA{}, err
		}
		switch s[:i] {
		case "rgb", "rgba":
			return parseRGB(args)
		case "hsl", "hsla":
			return parseHSL(args)
		}
		return color.NRGBA{}, fmt.Errorf("%w: unknown function %s", errInvalidColor, s[:i])
	}
	if c, ok := colornames.Map[s]; ok {
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
	}
	return color.NRGBA{}, fmt.Errorf("%w: %q", errInvalidColor, spec)
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	}
	return 0, false
}

func parseHexColor(hex string) (color.NRGBA, error) {
	digits := make([]uint8, len(hex))
	for i := range hex {
		d, ok := hexDigit(hex[i])
		if !ok {
			return color.NRGBA{}, fmt.Errorf("%w: #%s", errInvalidColor, hex)
		}
		digits[i] = d
	}
	c := color.NRGBA{A: 0xff}
	switch len(digits) {
	case 3, 4: // RGB(A)
		c.R, c.G, c.B = digits[0]*17, digits[1]*17, digits[2]*17
		if len(digits) == 4 {
			c.A = digits[3] * 17
		}
	case 6, 8: // RRGGBB(AA)
		c.R, c.G, c.B = digits[0]<<4|digits[1], digits[2]<<4|digits[3], digits[4]<<4|digits[5]
		if len(digits) == 8 {
			c.A = digits[6]<<4 | digits[7]
		}
	default:
		return color.NRGBA{}, fmt.Errorf("%w: #%s", errInvalidColor, hex)
	}
	return c, nil
}

// splitArgs accepts "1, 2, 3, 0.5" as well as "1 2 3 / 0.5".
func splitArgs(s string) ([]string, error) {
	var args []string
	if strings.Contains(s, ",") {
		args = strings.Split(s, ",")
	} else {
		parts := strings.SplitN(s, "/", 2)
		args = strings.Fields(parts[0])
		if len(parts) == 2 {
			args = append(args, parts[1])
		}
	}
	for i := range args {
		args[i] = strings.TrimSpace(args[i])
		if args[i] == "" {
			return nil, errInvalidColor
		}
	}
	if len(args) != 3 && len(args) != 4 {
		return nil, fmt.Errorf("%w: expected 3 or 4 arguments", errInvalidColor)
	}
	return args, nil
}

func clampUnit(f float64) float64 {
	return math.Max(0, math.Min(1, f))
}

// parseNumber reads a number or a percentage; percentages are scaled
// so that 100% is `full`.
// NaN and infinities are rejected.
func parseNumber(s string, full float64) (float64, error) {
	percent := strings.HasSuffix(s, "%")
	f, err := parseFinite(strings.TrimSuffix(s, "%"))
	if err != nil {
		return 0, err
	}
	if percent {
		return f / 100 * full, nil
	}
	return f, nil
}

// parseFinite is strconv.ParseFloat, rejecting NaN and infinities.
func parseFinite(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: non finite number %s", errInvalidColor, s)
	}
	return f, nil
}

func toByte(unit float64) uint8 {
	return uint8(math.Round(clampUnit(unit) * 255))
}

func parseAlpha(args []string) (uint8, error) {
	if len(args) < 4 {
		return 0xff, nil
	}
	a, err := parseNumber(args[3], 1)
	if err != nil {
		return 0, err
	}
	return toByte(a), nil
}

func parseRGB(args []string) (color.NRGBA, error) {
	var ch [3]uint8
	for i := range ch {
		v, err := parseNumber(args[i], 255)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("%w: %s", errInvalidColor, err)
		}
		ch[i] = toByte(v / 255)
	}
	a, err := parseAlpha(args)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %s", errInvalidColor, err)
	}
	return color.NRGBA{R: ch[0], G: ch[1], B: ch[2], A: a}, nil
}

func parseHSL(args []string) (color.NRGBA, error) {
	h, err := parseFinite(strings.TrimSuffix(args[0], "deg"))
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %s", errInvalidColor, err)
	}
	s, err := parseNumber(args[1], 1)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %s", errInvalidColor, err)
	}
	l, err := parseNumber(args[2], 1)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %s", errInvalidColor, err)
	}
	a, err := parseAlpha(args)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %s", errInvalidColor, err)
	}
	r, g, b := hslToRGB(h, clampUnit(s), clampUnit(l))
	return color.NRGBA{R: toByte(r), G: toByte(g), B: toByte(b), A: a}, nil
}

// hslToRGB takes h in degrees, s and l in [0, 1].
func hslToRGB(h, s, l float64) (r, g, b float64) {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	h /= 360

	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h*6, 2)-1))
	m := l - c/2

	switch {
	case h < 1.0/6:
		r, g, b = c, x, 0
	case h < 2.0/6:
		r, g, b = x, c, 0
	case h < 3.0/6:
		r, g, b = 0, c, x
	case h < 4.0/6:
		r, g, b = 0, x, c
	case h < 5.0/6:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return r + m, g + m, b + m
}
