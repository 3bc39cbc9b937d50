package svgdom

import (
	"encoding/xml"
	"io"

	"golang.org/x/net/html"
)

// Encode writes the subtree rooted at `root` as an XML document.
// The svg namespace is declared on the root element.
func Encode(w io.Writer, root *html.Node) error {
	enc := xml.NewEncoder(w)
	if err := encodeNode(enc, root, true); err != nil {
		return err
	}
	return enc.Flush()
}

func encodeNode(enc *xml.Encoder, n *html.Node, isRoot bool) error {
	switch n.Type {
	case html.TextNode:
		return enc.EncodeToken(xml.CharData(n.Data))
	case html.CommentNode:
		return enc.EncodeToken(xml.Comment(n.Data))
	case html.ElementNode:
	default:
		return nil
	}

	start := xml.StartElement{Name: xml.Name{Local: n.Data}}
	if isRoot {
		start.Name.Space = Namespace
	}
	if n.Namespace != "" && n.Namespace != space {
		start.Name.Space = n.Namespace
	}
	for _, a := range n.Attr {
		start.Attr = append(start.Attr, xml.Attr{
			Name:  xml.Name{Space: a.Namespace, Local: a.Key},
			Value: a.Val,
		})
	}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := encodeNode(enc, c, false); err != nil {
			return err
		}
	}
	return enc.EncodeToken(start.End())
}
