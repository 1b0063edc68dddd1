package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/menutree/pkg/domain"
	"github.com/aretw0/menutree/pkg/export"
	"github.com/jedib0t/go-pretty/v6/table"
)

// RenderTable writes one row per button in export order, indented by nesting.
func RenderTable(w io.Writer, doc *export.Document) {
	if len(doc.Root.Buttons) == 0 {
		_, _ = fmt.Fprintln(w, "(0 buttons)")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Button", "Stage", "ID", "Parent", "Labels", "Children", "Cards"})

	var walk func(bs []export.Button, indent int)
	walk = func(bs []export.Button, indent int) {
		for i := range bs {
			b := &bs[i]
			cards := "-"
			if b.Carousel != nil {
				cards = fmt.Sprint(len(b.Carousel.CarouselCards))
			}
			t.AppendRow(table.Row{
				strings.Repeat("  ", indent) + displayText(b.ButtonText),
				b.StageID,
				b.ButtonID,
				b.ParentButtonID,
				domain.JoinList(b.StringButtonList),
				len(b.Buttons),
				cards,
			})
			walk(b.Buttons, indent+1)
		}
	}
	walk(doc.Root.Buttons, 0)

	t.Render()
	_, _ = fmt.Fprintf(w, "(%d buttons)\n", doc.Count())
}
