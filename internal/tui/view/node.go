package view

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/eclipsereads/eclipse/internal/screen"
)

// CardWidth is the width of a card laid out inside a row.
const CardWidth = 24

const (
	rowGap        = 1
	maxFieldWidth = 40
	cardTextLines = 2
)

// NodeStyles groups the styles used to draw a display tree.
type NodeStyles struct {
	Heading        lipgloss.Style
	Text           lipgloss.Style
	Caption        lipgloss.Style
	Notice         lipgloss.Style
	SectionTitle   lipgloss.Style
	SectionCaption lipgloss.Style
	Card           lipgloss.Style
	CardAlt        lipgloss.Style
	CardFocused    lipgloss.Style
	CardTitle      lipgloss.Style
	CardDetail     lipgloss.Style
	Chip           lipgloss.Style
	ChipSelected   lipgloss.Style
	ChipFocused    lipgloss.Style
	Button         lipgloss.Style
	ButtonSelected lipgloss.Style
	ButtonFocused  lipgloss.Style
	Field          lipgloss.Style
	FieldFocused   lipgloss.Style
	Placeholder    lipgloss.Style
	Image          lipgloss.Style
}

// NodeView is the input to RenderNode.
type NodeView struct {
	Root   screen.Node
	Focus  string // Target of the focused node
	// FocusNth picks which node targeting Focus has focus, counted in display
	// order. Screens may list the same entity in several sections.
	FocusNth int
	Width  int
	Input  string // Live editor for the focused field; empty shows the node value
	Images bool   // Draw image placeholders
	Styles NodeStyles
}

// RenderedNode is a drawn display tree.
type RenderedNode struct {
	Content  string
	FocusTop int // Line where the focused node starts, -1 when absent
}

// RenderNode draws a display tree into width cells.
func RenderNode(v NodeView) RenderedNode {
	if v.Width < 1 {
		v.Width = 1
	}
	root := v.Root
	if v.Focus != "" {
		nth := v.FocusNth
		root = markFocus(root, v.Focus, &nth)
	}
	r := nodeRenderer{v: v}
	content, top := r.render(root, v.Width, false, 0)
	return RenderedNode{Content: content, FocusTop: top}
}

// ImagePlaceholder is the text stand-in for an image asset.
func ImagePlaceholder(name string) string {
	return "[img: " + name + "]"
}

// focusMark replaces the target of the one focused node while rendering.
const focusMark = "\x00focus"

// markFocus copies n, marking the nth node (pre-order) whose target is focus.
func markFocus(n screen.Node, focus string, nth *int) screen.Node {
	if n.Target == focus {
		if *nth == 0 {
			n.Target = focusMark
		}
		*nth--
	}
	if len(n.Children) > 0 {
		kids := make([]screen.Node, len(n.Children))
		for i, c := range n.Children {
			kids[i] = markFocus(c, focus, nth)
		}
		n.Children = kids
	}
	return n
}

type nodeRenderer struct {
	v NodeView
}

func (r nodeRenderer) focused(n screen.Node) bool {
	return n.Target == focusMark
}

func (r nodeRenderer) hasFocus(n screen.Node) bool {
	if r.focused(n) {
		return true
	}
	for _, c := range n.Children {
		if r.hasFocus(c) {
			return true
		}
	}
	return false
}

func (r nodeRenderer) render(n screen.Node, width int, inRow bool, index int) (string, int) {
	s := r.v.Styles
	switch n.Kind {
	case screen.KindColumn:
		return r.column(n.Children, width)
	case screen.KindRow:
		return r.row(n.Children, width)
	case screen.KindSection:
		return r.section(n, width)
	case screen.KindHeading:
		return paragraph(n.Text, width, s.Heading), -1
	case screen.KindText:
		return paragraph(n.Text, width, s.Text), -1
	case screen.KindCaption:
		return paragraph(n.Text, width, s.Caption), -1
	case screen.KindNotice:
		return paragraph(n.Text, width, s.Notice), -1
	case screen.KindCard:
		return r.card(n, width, inRow, index)
	case screen.KindChip:
		return r.chip(n, width)
	case screen.KindButton:
		return r.button(n, width)
	case screen.KindField:
		return r.field(n, width)
	case screen.KindImage:
		if !r.v.Images || n.Image == "" {
			return "", -1
		}
		return s.Image.Render(ansi.Truncate(ImagePlaceholder(n.Image), width, "…")), -1
	}
	return "", -1
}

func (r nodeRenderer) column(children []screen.Node, width int) (string, int) {
	blocks := make([]string, 0, len(children))
	top := -1
	offset := 0
	for i, c := range children {
		b, t := r.render(c, width, false, i)
		if b == "" {
			continue
		}
		if t >= 0 && top < 0 {
			top = offset + t
		}
		blocks = append(blocks, b)
		offset += lipgloss.Height(b)
	}
	return strings.Join(blocks, "\n"), top
}

// row packs children left to right and wraps onto a new line when full.
func (r nodeRenderer) row(children []screen.Node, width int) (string, int) {
	var lines, cur []string
	curW := 0
	curTop := -1
	top := -1
	offset := 0

	flush := func() {
		if len(cur) == 0 {
			return
		}
		line := lipgloss.JoinHorizontal(lipgloss.Top, cur...)
		if curTop >= 0 && top < 0 {
			top = offset + curTop
		}
		lines = append(lines, line)
		offset += lipgloss.Height(line)
		cur, curW, curTop = nil, 0, -1
	}

	for i, c := range children {
		b, t := r.render(c, width, true, i)
		if b == "" {
			continue
		}
		w := lipgloss.Width(b)
		gap := 0
		if len(cur) > 0 {
			gap = rowGap
			if curW+gap+w > width {
				flush()
				gap = 0
			}
		}
		if gap > 0 {
			cur = append(cur, strings.Repeat(" ", gap))
		}
		cur = append(cur, b)
		curW += gap + w
		if t >= 0 && curTop < 0 {
			curTop = t
		}
	}
	flush()

	return strings.Join(lines, "\n"), top
}

func (r nodeRenderer) section(n screen.Node, width int) (string, int) {
	s := r.v.Styles
	head := []string{s.SectionTitle.Render(ansi.Truncate(n.Text, width, "…"))}
	if n.Detail != "" {
		head = append(head, paragraph(n.Detail, width, s.SectionCaption))
	}
	header := strings.Join(head, "\n")

	body, t := r.column(n.Children, width)
	top := -1
	if t >= 0 {
		top = lipgloss.Height(header) + t
	}

	parts := []string{header}
	if body != "" {
		parts = append(parts, body)
	}
	// Trailing blank line separates sections.
	parts = append(parts, "")
	return strings.Join(parts, "\n"), top
}

func (r nodeRenderer) card(n screen.Node, width int, inRow bool, index int) (string, int) {
	s := r.v.Styles
	cw := width
	if inRow {
		cw = min(CardWidth, width)
	}

	style := s.Card
	if index%2 == 1 {
		style = s.CardAlt
	}
	if r.focused(n) {
		style = s.CardFocused
	}
	frameW, _ := style.GetFrameSize()
	inner := max(1, cw-frameW)

	parts := make([]string, 0, 4)
	if r.v.Images && n.Image != "" {
		parts = append(parts, s.Image.Render(ansi.Truncate(ImagePlaceholder(n.Image), inner, "…")))
	}
	title := Wrap(n.Text, inner)
	if inRow {
		title = ClampLines(title, cardTextLines, inner)
	}
	parts = append(parts, s.CardTitle.Render(strings.Join(title, "\n")))
	if n.Detail != "" {
		detail := Wrap(n.Detail, inner)
		if inRow {
			detail = ClampLines(detail, cardTextLines, inner)
		}
		parts = append(parts, s.CardDetail.Render(strings.Join(detail, "\n")))
	}
	if len(n.Children) > 0 {
		body, _ := r.column(n.Children, inner)
		if body != "" {
			parts = append(parts, body)
		}
	}

	rendered := style.Width(max(1, cw-style.GetHorizontalBorderSize())).Render(strings.Join(parts, "\n"))
	if r.hasFocus(n) {
		return rendered, 0
	}
	return rendered, -1
}

func (r nodeRenderer) chip(n screen.Node, width int) (string, int) {
	s := r.v.Styles
	mark := "○ "
	style := s.Chip
	if n.Selected {
		mark = "● "
		style = s.ChipSelected
	}
	top := -1
	if r.focused(n) {
		style = s.ChipFocused
		top = 0
	}
	label := ansi.Truncate(mark+n.Text, max(1, width-style.GetHorizontalFrameSize()), "…")
	return style.Render(label), top
}

func (r nodeRenderer) button(n screen.Node, width int) (string, int) {
	s := r.v.Styles
	style := s.Button
	if n.Selected {
		style = s.ButtonSelected
	}
	top := -1
	if r.focused(n) {
		style = s.ButtonFocused
		top = 0
	}
	label := ansi.Truncate(n.Text, max(1, width-style.GetHorizontalFrameSize()), "…")
	return style.Render(label), top
}

func (r nodeRenderer) field(n screen.Node, width int) (string, int) {
	s := r.v.Styles
	style := s.Field
	top := -1
	focused := r.focused(n)
	if focused {
		style = s.FieldFocused
		top = 0
	}
	fw := min(width, maxFieldWidth)
	inner := max(1, fw-style.GetHorizontalFrameSize())

	var content string
	switch {
	case focused && r.v.Input != "":
		content = r.v.Input
	case n.Text == "":
		content = s.Placeholder.Render(n.Placeholder)
	case n.Masked:
		content = strings.Repeat("•", utf8.RuneCountInString(n.Text))
	default:
		content = n.Text
	}
	content = ansi.Truncate(content, inner, "")

	return style.Width(max(1, fw-style.GetHorizontalBorderSize())).Render(content), top
}

func paragraph(text string, width int, style lipgloss.Style) string {
	if text == "" {
		return ""
	}
	inner := max(1, width-style.GetHorizontalFrameSize())
	return style.Render(strings.Join(Wrap(text, inner), "\n"))
}
