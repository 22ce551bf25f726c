package mail

import (
	"strings"

	"golang.org/x/net/html"
)

// StripHTML reduces untrusted markup to its text content. Contact messages
// come straight from the form and end up inside templated emails; only the
// words survive.
func StripHTML(raw string) string {
	doc, err := html.Parse(strings.NewReader(raw))
	if err != nil {
		// fallback: keep the raw text, it is rendered as plain text anyway
		return raw
	}

	var b strings.Builder
	collectText(doc, &b)
	return strings.Join(strings.Fields(b.String()), " ")
}

func collectText(n *html.Node, b *strings.Builder) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
		b.WriteByte(' ')
	case html.ElementNode:
		if n.Data == "script" || n.Data == "style" {
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}
