package graph

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/menutree/pkg/export"
)

// Options controls what the diagram shows beyond the buttons themselves.
type Options struct {
	// Pending draws labels that have no sub-button yet as dashed ghost nodes.
	Pending bool
	// Numbering annotates each button with its exported stageId and buttonId.
	Numbering bool
}

// GenerateMermaid produces a Mermaid flowchart of an exported document.
// It applies semantic styling:
// - Root: ([Stadium])
// - Carousel: [[Subroutine]]
// - Pending label: {{Hexagon}}
// - Default: [Rectangle]
func GenerateMermaid(doc *export.Document, opts Options) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	w := &writer{sb: &sb, opts: opts}
	for i := range doc.Root.Buttons {
		w.button(&doc.Root.Buttons[i], "b"+strconv.Itoa(i), true)
	}

	if opts.Pending && w.pending > 0 {
		sb.WriteString("\n    %% Pending labels\n")
		sb.WriteString("    classDef pending fill:#fff,stroke:#9e9e9e,stroke-dasharray:4 2,color:#616161;\n")
	}
	return sb.String()
}

type writer struct {
	sb      *strings.Builder
	opts    Options
	pending int
}

// button writes one node and its edges. Node IDs are derived from the position
// in the tree, so the diagram is stable for a given document.
func (w *writer) button(b *export.Button, id string, root bool) {
	opener, closer := "[", "]"
	switch {
	case root:
		opener, closer = "([", "])"
	case b.Carousel != nil:
		opener, closer = "[[", "]]"
	}

	label := escape(displayText(b.ButtonText))
	if b.Carousel != nil {
		label += fmt.Sprintf(" <br/> 🖼️ %d", len(b.Carousel.CarouselCards))
	}
	if w.opts.Numbering {
		label += fmt.Sprintf(" <br/> stage %s · id %s", b.StageID, b.ButtonID)
	}
	fmt.Fprintf(w.sb, "    %s%s\"%s\"%s\n", id, opener, label, closer)

	built := make(map[string]bool, len(b.Buttons))
	for i := range b.Buttons {
		child := &b.Buttons[i]
		childID := id + "_" + strconv.Itoa(i)
		built[child.ButtonText] = true
		fmt.Fprintf(w.sb, "    %s --> %s\n", id, childID)
		w.button(child, childID, false)
	}

	if !w.opts.Pending {
		return
	}
	for i, l := range b.StringButtonList {
		if built[l] {
			continue
		}
		ghost := fmt.Sprintf("%s_p%d", id, i)
		fmt.Fprintf(w.sb, "    %s{{\"%s\"}}\n", ghost, escape(l))
		fmt.Fprintf(w.sb, "    %s -.-> %s\n", id, ghost)
		fmt.Fprintf(w.sb, "    class %s pending;\n", ghost)
		w.pending++
	}
}

func displayText(s string) string {
	if s == "" {
		return "Unnamed"
	}
	return s
}

var labelEscaper = strings.NewReplacer(
	"\"", "'",
	"\r\n", " ",
	"\r", " ",
	"\n", " ",
)

// escape keeps user text from breaking out of a quoted Mermaid label.
// Mermaid treats a bare CR as a line break, like LF.
func escape(s string) string {
	return labelEscaper.Replace(s)
}
