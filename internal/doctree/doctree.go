package doctree

import "strings"

// Document is the root of a parsed document.
type Document struct {
	Title string // Document title (from metadata or filename)
	Root  *Node  // Root element; owns the whole tree
	Text  string // Display text produced by Layout
}

// Span is a half-open [Start, End) range into the document's display text.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Contains reports whether s fully covers o.
func (s Span) Contains(o Span) bool {
	return s.Start <= o.Start && o.End <= s.End
}

// Node is a recursive element in the document tree.
type Node struct {
	Title    string  // Section heading or element label (may be empty)
	Text     string  // Text content of this node (may be empty for container nodes)
	Keys     string  // Raw whitespace-separated keyword attribute value ("" if absent)
	Page     int     // Source page/line (0 if N/A)
	Children []*Node // Subsections / child elements
	Span     Span    // Extent in the laid-out display text; set by Layout
}

// Layout renders the tree into display text and assigns every node its span
// in it. A parent's span covers all of its descendants' spans, so folding a
// node's span hides everything nested inside it.
func (d *Document) Layout() {
	if d.Root == nil {
		d.Root = &Node{Title: d.Title}
	}
	var b strings.Builder
	layoutNode(&b, d.Root, 0)
	d.Text = b.String()
}

func layoutNode(b *strings.Builder, n *Node, depth int) {
	n.Span.Start = b.Len()
	indent := strings.Repeat("  ", depth)
	if n.Title != "" {
		b.WriteString(indent)
		b.WriteString(n.Title)
		b.WriteString("\n")
	}
	if n.Text != "" {
		for _, line := range strings.Split(n.Text, "\n") {
			b.WriteString(indent)
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	for _, c := range n.Children {
		layoutNode(b, c, depth+1)
	}
	n.Span.End = b.Len()
}

// Walk visits n and every descendant in document order.
func Walk(n *Node, fn func(*Node)) {
	if n == nil {
		return
	}
	fn(n)
	for _, c := range n.Children {
		Walk(c, fn)
	}
}
