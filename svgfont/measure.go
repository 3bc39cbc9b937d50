package svgfont

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// face selects one of the embedded Go fonts
type face struct {
	mono, bold, italic bool
}

var faceData = map[face][]byte{
	{}:                                     goregular.TTF,
	{bold: true}:                           gobold.TTF,
	{italic: true}:                         goitalic.TTF,
	{bold: true, italic: true}:             gobolditalic.TTF,
	{mono: true}:                           gomono.TTF,
	{mono: true, bold: true}:               gomonobold.TTF,
	{mono: true, italic: true}:             gomonoitalic.TTF,
	{mono: true, bold: true, italic: true}: gomonobolditalic.TTF,
}

func faceFor(f Font) face {
	family := strings.ToLower(f.Family)
	return face{
		mono:   strings.Contains(family, "mono") || strings.Contains(family, "courier"),
		bold:   f.Bold(),
		italic: f.Style != Normal,
	}
}

// Measurer measures text laid out on a single line with the
// Go fonts. Monospace families map to Go Mono, everything else to
// the proportional Go font. The zero value is ready to use,
// and a Measurer is safe for concurrent use.
type Measurer struct {
	mu    sync.Mutex
	fonts map[face]*opentype.Font
	buf   sfnt.Buffer
}

// NewMeasurer returns a measurer with no font loaded yet:
// faces are parsed on first use.
func NewMeasurer() *Measurer {
	return &Measurer{fonts: make(map[face]*opentype.Font)}
}

var (
	defaultMeasurer     *Measurer
	defaultMeasurerOnce sync.Once
)

// DefaultMeasurer returns a shared Measurer.
func DefaultMeasurer() *Measurer {
	defaultMeasurerOnce.Do(func() { defaultMeasurer = NewMeasurer() })
	return defaultMeasurer
}

func (m *Measurer) load(fc face) (*opentype.Font, error) {
	if f, ok := m.fonts[fc]; ok {
		return f, nil
	}
	if m.fonts == nil {
		m.fonts = make(map[face]*opentype.Font)
	}
	f, err := opentype.Parse(faceData[fc])
	if err != nil {
		return nil, fmt.Errorf("svgfont: failed to parse font: %w", err)
	}
	m.fonts[fc] = f
	return f, nil
}

// MeasureText returns the advance width of `text` and the ascent and
// descent of the font described by `desc`, in pixels.
// An invalid descriptor falls back to Default.
func (m *Measurer) MeasureText(text, desc string) (advance, ascent, descent float64) {
	fnt, err := ParseFont(desc)
	if err != nil {
		fnt, _ = ParseFont(Default)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	f, err := m.load(faceFor(fnt))
	if err != nil {
		return 0, 0, 0
	}
	ppem := fixed.Int26_6(fnt.Size * 64)

	metrics, err := f.Metrics(&m.buf, ppem, font.HintingNone)
	if err == nil {
		ascent, descent = fixedToFloat64(metrics.Ascent), fixedToFloat64(metrics.Descent)
	}

	var (
		total fixed.Int26_6
		prev  sfnt.GlyphIndex
	)
	for i, r := range []rune(text) {
		idx, err := f.GlyphIndex(&m.buf, r)
		if err != nil {
			continue
		}
		if i > 0 {
			if kern, err := f.Kern(&m.buf, prev, idx, ppem, font.HintingNone); err == nil {
				total += kern
			}
		}
		adv, err := f.GlyphAdvance(&m.buf, idx, ppem, font.HintingNone)
		if err != nil {
			continue
		}
		total += adv
		prev = idx
	}
	return fixedToFloat64(total), ascent, descent
}

func fixedToFloat64(x fixed.Int26_6) float64 {
	return float64(x) / 64.0
}
