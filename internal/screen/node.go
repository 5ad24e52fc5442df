// Package screen composes each app screen from the catalog and its own state,
// and applies user-input events to that state.
package screen

// Kind is the type of a display node.
type Kind int

const (
	KindColumn Kind = iota
	KindRow
	KindSection
	KindHeading
	KindText
	KindCaption
	KindNotice // Validation or warning text
	KindCard
	KindChip
	KindButton
	KindField
	KindImage
)

var kindNames = map[Kind]string{
	KindColumn:  "column",
	KindRow:     "row",
	KindSection: "section",
	KindHeading: "heading",
	KindText:    "text",
	KindCaption: "caption",
	KindNotice:  "notice",
	KindCard:    "card",
	KindChip:    "chip",
	KindButton:  "button",
	KindField:   "field",
	KindImage:   "image",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Node is one element of a composed display tree.
type Node struct {
	Kind        Kind
	Target      string // Non-empty when the node accepts events
	Text        string
	Detail      string // Secondary line
	Image       string // Opaque asset name
	Placeholder string
	Selected    bool
	Masked      bool
	Children    []Node
}

// Focusable reports whether the node accepts events.
func (n Node) Focusable() bool {
	return n.Target != ""
}

// Targets returns the event-accepting nodes of the tree in display order.
func Targets(root Node) []Node {
	var out []Node
	walk(root, func(n Node) bool {
		if n.Focusable() {
			out = append(out, n)
		}
		return true
	})
	return out
}

// Find returns the first node with the given target.
func Find(root Node, target string) (Node, bool) {
	var found Node
	ok := false
	walk(root, func(n Node) bool {
		if n.Target == target {
			found, ok = n, true
			return false
		}
		return true
	})
	return found, ok
}

// Texts returns the Text of every node in display order, skipping empty ones.
func Texts(root Node) []string {
	var out []string
	walk(root, func(n Node) bool {
		if n.Text != "" {
			out = append(out, n.Text)
		}
		return true
	})
	return out
}

func walk(n Node, fn func(Node) bool) bool {
	if !fn(n) {
		return false
	}
	for _, c := range n.Children {
		if !walk(c, fn) {
			return false
		}
	}
	return true
}

func column(children ...Node) Node {
	return Node{Kind: KindColumn, Children: children}
}

func row(children ...Node) Node {
	return Node{Kind: KindRow, Children: children}
}

func section(title, caption string, children ...Node) Node {
	return Node{Kind: KindSection, Text: title, Detail: caption, Children: children}
}

func heading(text string) Node {
	return Node{Kind: KindHeading, Text: text}
}

func text(s string) Node {
	return Node{Kind: KindText, Text: s}
}

func caption(s string) Node {
	return Node{Kind: KindCaption, Text: s}
}

func notice(s string) Node {
	return Node{Kind: KindNotice, Text: s}
}

func button(target, label string) Node {
	return Node{Kind: KindButton, Target: target, Text: label}
}

func image(name string) Node {
	return Node{Kind: KindImage, Image: name}
}

func field(target, value, placeholder string, masked bool) Node {
	return Node{Kind: KindField, Target: target, Text: value, Placeholder: placeholder, Masked: masked}
}

// noMatches is shown in place of an empty filtered row.
func noMatches() Node {
	return caption("No matches")
}
