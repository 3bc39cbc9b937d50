package svgdom

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

const landscape = `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" width="100" height="100">
  <!-- background -->
  <title>Landscape</title>
  <defs>
    <mask id="m"><rect x="0" y="0" width="10" height="10" fill="white"/></mask>
  </defs>
  <rect id="sky" x="0" y="0" width="100" height="50" style="fill: #87ceeb"/>
  <g>
    <circle cx="80" cy="20" r="10"/>
    <use xlink:href="#sky" x="0" y="50" width="100" height="50"/>
  </g>
  <text x="10" y="90">Hello <tspan>world</tspan></text>
</svg>`

func TestDecode(t *testing.T) {
	root, err := Decode(strings.NewReader(landscape), StrictErrorMode)
	if err != nil {
		t.Fatal(err)
	}
	if root.Data != "svg" {
		t.Fatalf("unexpected root %s", root.Data)
	}

	var tags []string
	for c := FirstElementChild(root); c != nil; c = NextElementSibling(c) {
		tags = append(tags, c.Data)
	}
	if got := strings.Join(tags, " "); got != "title defs rect g text" {
		t.Fatalf("unexpected children %q", got)
	}
	// whitespace between elements is dropped
	if root.FirstChild.Data != "title" {
		t.Fatalf("expected <title> first, got %q", root.FirstChild.Data)
	}

	text := ElementsByTag(root, "text")[0]
	if got := TextContent(text); got != "Hello world" {
		t.Fatalf("unexpected text %q", got)
	}
	use := ElementsByTag(root, "use")[0]
	if len(use.Attr) != 5 || use.Attr[0].Key != "href" || use.Attr[0].Namespace == "" {
		t.Fatalf("unexpected <use> attributes %v", use.Attr)
	}
	if sky := ElementByID(root, "sky"); sky == nil {
		t.Fatal("missing #sky")
	} else if fill, _ := Style(sky, "fill"); fill != "#87ceeb" {
		t.Fatalf("unexpected fill %q", fill)
	}
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode(strings.NewReader(`<html><body/></html>`), IgnoreErrorMode)
	if !errors.Is(err, ErrInvalidSVG) {
		t.Errorf("expected ErrInvalidSVG, got %v", err)
	}
	_, err = Decode(strings.NewReader(``), IgnoreErrorMode)
	if !errors.Is(err, ErrInvalidSVG) {
		t.Errorf("expected ErrInvalidSVG for an empty document, got %v", err)
	}
	_, err = Decode(strings.NewReader(`<svg><rect></svg>`), IgnoreErrorMode)
	if err == nil {
		t.Error("expected a syntax error")
	}

	const unknown = `<svg><blink/></svg>`
	if _, err = Decode(strings.NewReader(unknown), StrictErrorMode); err == nil {
		t.Error("strict mode should reject unknown elements")
	}
	root, err := Decode(strings.NewReader(unknown), WarnErrorMode)
	if err != nil {
		t.Fatal(err)
	}
	if FirstElementChild(root).Data != "blink" {
		t.Error("unknown elements are kept")
	}
}

func TestDecodeCharset(t *testing.T) {
	// "é" in latin-1
	doc := []byte("<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?><svg><text>caf\xe9</text></svg>")
	root, err := Decode(bytes.NewReader(doc), StrictErrorMode)
	if err != nil {
		t.Fatal(err)
	}
	if got := TextContent(root); got != "café" {
		t.Fatalf("unexpected text %q", got)
	}
}

func TestEncode(t *testing.T) {
	root, err := Decode(strings.NewReader(landscape), StrictErrorMode)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err = Encode(&buf, root); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, `<svg xmlns="http://www.w3.org/2000/svg" width="100" height="100">`) {
		t.Fatalf("unexpected document start %q", out)
	}
	if !strings.Contains(out, `xlink:href="#sky"`) {
		t.Fatalf("xlink attributes should keep their prefix: %s", out)
	}

	again, err := Decode(&buf, StrictErrorMode)
	if err != nil {
		t.Fatal(err)
	}
	if len(ElementsByTag(again, "rect")) != 2 || TextContent(again) != TextContent(root) {
		t.Fatal("encoded document should decode to the same tree")
	}
}
