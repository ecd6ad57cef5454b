package browser

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// Element describes one interactive element found on a page.
type Element struct {
	Tag  string `json:"tag"`
	Text string `json:"text,omitempty"`
	ID   string `json:"id,omitempty"`
	Href string `json:"href,omitempty"`
	Name string `json:"name,omitempty"`
	Type string `json:"type,omitempty"`
}

// Snapshot is a condensed view of a rendered page, used for diagnostics
// when a selector wait times out: it tells the operator which buttons,
// links, and inputs were actually on the page.
type Snapshot struct {
	Title    string
	Elements []Element
}

const snapshotMaxElements = 40

// SnapshotPage parses raw page HTML and collects its interactive elements.
// Scripts, styles, and other noise nodes are skipped.
func SnapshotPage(rawHTML string) (*Snapshot, error) {
	doc, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	snap := &Snapshot{Title: extractTitle(doc)}
	collectInteractive(doc, snap)
	return snap, nil
}

// String renders the snapshot as one line per element, for logs and
// check results.
func (s *Snapshot) String() string {
	var b strings.Builder
	if s.Title != "" {
		fmt.Fprintf(&b, "title: %q\n", s.Title)
	}
	for _, el := range s.Elements {
		b.WriteString("- <")
		b.WriteString(el.Tag)
		if el.ID != "" {
			fmt.Fprintf(&b, " id=%q", el.ID)
		}
		if el.Name != "" {
			fmt.Fprintf(&b, " name=%q", el.Name)
		}
		if el.Type != "" {
			fmt.Fprintf(&b, " type=%q", el.Type)
		}
		if el.Href != "" {
			fmt.Fprintf(&b, " href=%q", el.Href)
		}
		b.WriteString(">")
		if el.Text != "" {
			fmt.Fprintf(&b, " %q", el.Text)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// collectInteractive walks the document tree and records interactive
// elements, stopping once the snapshot cap is reached.
func collectInteractive(n *html.Node, snap *Snapshot) {
	if len(snap.Elements) >= snapshotMaxElements {
		return
	}

	if n.Type == html.ElementNode {
		tag := strings.ToLower(n.Data)
		if isSkippedElement(tag) {
			return
		}
		if isInteractiveElement(tag) {
			snap.Elements = append(snap.Elements, buildElement(n, tag))
			// Interactive elements don't nest in ways we care about
			if tag != "form" {
				return
			}
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectInteractive(c, snap)
	}
}

// buildElement extracts the attributes and visible text of one element.
func buildElement(n *html.Node, tag string) Element {
	el := Element{Tag: tag, Text: truncateText(nodeText(n), 80)}
	for _, attr := range n.Attr {
		switch strings.ToLower(attr.Key) {
		case "id":
			el.ID = attr.Val
		case "href":
			el.Href = attr.Val
		case "name":
			el.Name = attr.Val
		case "type":
			el.Type = attr.Val
		}
	}
	return el
}

// nodeText returns the concatenated text content of a node's subtree.
func nodeText(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var parts []string
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if text := strings.TrimSpace(nodeText(c)); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, " ")
}

func truncateText(s string, maxLen int) string {
	s = strings.TrimSpace(s)
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

// extractTitle finds the document title, if any.
func extractTitle(n *html.Node) string {
	if n.Type == html.ElementNode && strings.ToLower(n.Data) == "title" {
		return strings.TrimSpace(nodeText(n))
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if title := extractTitle(c); title != "" {
			return title
		}
	}
	return ""
}

// isInteractiveElement returns true for elements a user can act on.
func isInteractiveElement(tag string) bool {
	interactive := map[string]bool{
		"a":        true,
		"button":   true,
		"input":    true,
		"select":   true,
		"textarea": true,
		"form":     true,
	}
	return interactive[tag]
}

// isSkippedElement returns true for elements that should be completely removed
func isSkippedElement(tag string) bool {
	skipped := map[string]bool{
		"script":   true,
		"style":    true,
		"noscript": true,
		"iframe":   true,
		"embed":    true,
		"object":   true,
		"svg":      true,
	}
	return skipped[tag]
}
