package svgdom

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
)

// ErrorMode determines if the parser ignores, errors out, or logs a warning
// when it finds an element the bounding box oracle does not handle.
type ErrorMode uint8

const (
	IgnoreErrorMode ErrorMode = iota
	WarnErrorMode
	StrictErrorMode
)

// ErrInvalidSVG is returned for documents whose root is not an <svg> element.
var ErrInvalidSVG = errors.New("invalid svg document")

// textual elements keep their whitespace
var keepsText = map[string]bool{
	"text": true, "tspan": true, "title": true, "desc": true, "style": true, "script": true,
}

// Decode reads an SVG document and returns its root <svg> element.
// Only the element structure is kept: comments, processing instructions
// and whitespace between elements are dropped.
func Decode(stream io.Reader, errMode ErrorMode) (*html.Node, error) {
	decoder := xml.NewDecoder(stream)
	decoder.CharsetReader = charset.NewReaderLabel

	var root, current *html.Node
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		// Inspect the type of the XML token
		switch se := t.(type) {
		case xml.StartElement:
			if root == nil && se.Name.Local != "svg" {
				return nil, fmt.Errorf("%w: root element is <%s>", ErrInvalidSVG, se.Name.Local)
			}
			if root != nil && current == nil {
				return nil, fmt.Errorf("%w: more than one root element", ErrInvalidSVG)
			}
			if err := checkElement(se.Name.Local, errMode); err != nil {
				return nil, err
			}
			n := newElement(se)
			if root == nil {
				root = n
			} else {
				current.AppendChild(n)
			}
			current = n
		case xml.EndElement:
			current = current.Parent
		case xml.CharData:
			if current == nil {
				continue
			}
			text := string(se)
			if !keepsText[current.Data] && strings.TrimSpace(text) == "" {
				continue
			}
			AppendText(current, text)
		}
	}
	if root == nil {
		return nil, fmt.Errorf("%w: no root element", ErrInvalidSVG)
	}
	return root, nil
}

// ReadFile reads the SVG document stored in the named file.
func ReadFile(filename string, errMode ErrorMode) (*html.Node, error) {
	fin, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer fin.Close()
	return Decode(fin, errMode)
}

func checkElement(tag string, errMode ErrorMode) error {
	if _, ok := kinds[tag]; ok {
		return nil
	}
	errStr := "cannot process svg element " + tag
	if errMode == StrictErrorMode {
		return errors.New(errStr)
	} else if errMode == WarnErrorMode {
		Logger().Warn("svgdom: " + errStr)
	}
	return nil
}

func newElement(se xml.StartElement) *html.Node {
	n := CreateElement(se.Name.Local)
	if se.Name.Space != "" && se.Name.Space != Namespace {
		n.Namespace = se.Name.Space
	}
	for _, attr := range se.Attr {
		// namespace declarations are written back by Encode
		if attr.Name.Space == "xmlns" || (attr.Name.Space == "" && attr.Name.Local == "xmlns") {
			continue
		}
		n.Attr = append(n.Attr, html.Attribute{
			Namespace: attr.Name.Space,
			Key:       attr.Name.Local,
			Val:       attr.Value,
		})
	}
	return n
}
