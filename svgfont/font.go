// Package svgfont parses CSS font shorthands and measures text
// with the Go font family.
package svgfont

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidFont is returned for font descriptors missing a valid size
// or family.
var ErrInvalidFont = errors.New("invalid font descriptor")

// Default is the font of a fresh canvas.
const Default = "10px sans-serif"

// Style is the slant of a font.
type Style uint8

const (
	Normal  Style = iota // upright
	Italic               // "italic" keyword
	Oblique              // "oblique" keyword
)

// Font is a parsed CSS font shorthand.
type Font struct {
	Style  Style
	Weight int     // 100 to 900, 400 is normal
	Size   float64 // in pixels
	Family string  // as written, without quotes
}

// Bold returns true for weights of 600 and above.
func (f Font) Bold() bool { return f.Weight >= 600 }

func (f Font) String() string {
	var b strings.Builder
	switch f.Style {
	case Italic:
		b.WriteString("italic ")
	case Oblique:
		b.WriteString("oblique ")
	}
	if f.Weight != 400 {
		b.WriteString(strconv.Itoa(f.Weight) + " ")
	}
	b.WriteString(strconv.FormatFloat(f.Size, 'f', -1, 64) + "px " + f.Family)
	return b.String()
}

// ParseFont reads a descriptor like "italic bold 12px/1.5 'Go Mono', serif".
// The variant and line height are accepted and ignored.
func ParseFont(desc string) (Font, error) {
	out := Font{Weight: 400}
	fields := strings.Fields(desc)
	for i, field := range fields {
		lower := strings.ToLower(field)
		switch lower {
		case "normal", "small-caps":
			continue
		case "italic":
			out.Style = Italic
			continue
		case "oblique":
			out.Style = Oblique
			continue
		case "bold", "bolder":
			out.Weight = 700
			continue
		case "lighter":
			out.Weight = 300
			continue
		}
		if w, err := strconv.Atoi(field); err == nil && w >= 1 && w <= 1000 {
			out.Weight = w
			continue
		}

		// first field which is not a style keyword: the size, then the family
		size, _, _ := strings.Cut(lower, "/")
		px, err := parseSize(size)
		if err != nil {
			return Font{}, fmt.Errorf("%w %q: %s", ErrInvalidFont, desc, err)
		}
		out.Size = px
		out.Family = unquote(strings.Join(fields[i+1:], " "))
		if out.Family == "" {
			return Font{}, fmt.Errorf("%w %q: missing family", ErrInvalidFont, desc)
		}
		return out, nil
	}
	return Font{}, fmt.Errorf("%w %q: missing size", ErrInvalidFont, desc)
}

// parseSize accepts px, pt, pc, in, em and rem units; relative
// units use the 10px default as reference.
func parseSize(s string) (float64, error) {
	num, den := 1., 1.
	for _, u := range [...]struct {
		suffix   string
		num, den float64
	}{
		{"px", 1, 1}, {"pt", 4, 3}, {"pc", 16, 1}, {"in", 96, 1}, {"rem", 10, 1}, {"em", 10, 1},
	} {
		if strings.HasSuffix(s, u.suffix) {
			s, num, den = strings.TrimSuffix(s, u.suffix), u.num, u.den
			break
		}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, errors.New("negative size")
	}
	return v * num / den, nil
}

func unquote(family string) string {
	family = strings.TrimSpace(family)
	return strings.Map(func(r rune) rune {
		if r == '"' || r == '\'' {
			return -1
		}
		return r
	}, family)
}
