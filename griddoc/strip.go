package griddoc

import (
	"strings"

	"golang.org/x/net/html"
)

// presentationAttrs holds attribute names that carry only visual state.
var presentationAttrs = map[string]bool{
	"style":    true,
	"class":    true,
	"tabindex": true,
}

// StripPresentation removes presentation attributes (style, class, tabindex
// and all aria-* variants) from the node tree rooted at n. Attributes that
// carry structure, role and column-index in particular, are kept. The pass
// is idempotent and does not reorder surviving attributes.
func StripPresentation(n *html.Node) {
	if n.Type == html.ElementNode {
		kept := n.Attr[:0]
		for _, attr := range n.Attr {
			if presentationAttrs[attr.Key] || strings.HasPrefix(attr.Key, "aria-") {
				continue
			}
			kept = append(kept, attr)
		}
		n.Attr = kept
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		StripPresentation(c)
	}
}

// StripPresentation removes presentation attributes from the whole document.
func (r *Reader) StripPresentation() {
	StripPresentation(r.doc)
}
