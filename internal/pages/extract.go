package pages

import (
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Extract parses an HTML document and returns its title, meta description
// and visible body text. The description comes from <meta name=description>
// or, failing that, og:description. Script, style, noscript and template
// content is skipped.
func Extract(r io.Reader) (Item, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return Item{}, err
	}

	var (
		item   Item
		ogDesc string
		body   strings.Builder
		inBody bool
		walk   func(n *html.Node)
	)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.DataAtom {
			case atom.Script, atom.Style, atom.Noscript, atom.Template:
				return
			case atom.Title:
				if item.Title == "" {
					item.Title = collapse(textOf(n))
				}
				return
			case atom.Meta:
				name := strings.ToLower(attr(n, "name"))
				prop := strings.ToLower(attr(n, "property"))
				switch {
				case name == "description" && item.Description == "":
					item.Description = collapse(attr(n, "content"))
				case prop == "og:description" && ogDesc == "":
					ogDesc = collapse(attr(n, "content"))
				}
			case atom.Html:
				if lang := attr(n, "lang"); lang != "" {
					item.Language = strings.ToLower(strings.SplitN(lang, "-", 2)[0])
				}
			case atom.Body:
				inBody = true
			}
		}
		if n.Type == html.TextNode && inBody {
			body.WriteString(n.Data)
			body.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	if item.Description == "" {
		item.Description = ogDesc
	}
	item.Body = collapse(body.String())
	return item, nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			return a.Val
		}
	}
	return ""
}

func textOf(n *html.Node) string {
	var buf strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(n)
	return buf.String()
}

// collapse trims s and squeezes whitespace runs into single spaces.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
