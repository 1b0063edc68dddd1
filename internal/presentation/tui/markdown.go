package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/menutree/pkg/domain"
	"github.com/aretw0/menutree/pkg/export"
)

const maxHeading = 6

// Markdown renders an exported document as a nested outline.
func Markdown(doc *export.Document) string {
	var sb strings.Builder
	sb.WriteString("# Menu\n\n")
	if len(doc.Root.Buttons) == 0 {
		sb.WriteString("_No buttons yet._\n")
		return sb.String()
	}
	for i := range doc.Root.Buttons {
		writeButton(&sb, &doc.Root.Buttons[i], "", 2)
	}
	return sb.String()
}

func writeButton(sb *strings.Builder, b *export.Button, parent string, level int) {
	title := displayText(b.ButtonText)
	if parent != "" {
		title += fmt.Sprintf(" (Parent: %s)", parent)
	}
	fmt.Fprintf(sb, "%s %s\n\n", strings.Repeat("#", min(level, maxHeading)), title)
	fmt.Fprintf(sb, "- **Stage:** %s, **Button:** %s\n", b.StageID, b.ButtonID)

	if b.ReplyText != "" {
		fmt.Fprintf(sb, "- **Reply:** %s\n", oneLine(b.ReplyText))
	}
	if b.TemplateID != "" || len(b.TemplateParams) > 0 {
		fmt.Fprintf(sb, "- **Template:** `%s`", b.TemplateID)
		if len(b.TemplateParams) > 0 {
			fmt.Fprintf(sb, " (params: %s)", domain.JoinList(b.TemplateParams))
		}
		sb.WriteString("\n")
	}
	if len(b.StringButtonList) > 0 {
		fmt.Fprintf(sb, "- **Labels:** %s\n", domain.JoinList(b.StringButtonList))
	}
	if b.Carousel != nil {
		fmt.Fprintf(sb, "- **Carousel:** %d card(s)\n", len(b.Carousel.CarouselCards))
		for i, c := range b.Carousel.CarouselCards {
			url := c.MediaURL
			if url == "" {
				url = "_no media_"
			}
			fmt.Fprintf(sb, "  %d. %s %s", i+1, c.MediaType, url)
			if len(c.Params) > 0 {
				fmt.Fprintf(sb, " (params: %s)", domain.JoinList(c.Params))
			}
			sb.WriteString("\n")
		}
	}
	sb.WriteString("\n")

	for i := range b.Buttons {
		writeButton(sb, &b.Buttons[i], displayText(b.ButtonText), level+1)
	}
}

func displayText(s string) string {
	if s == "" {
		return "Unnamed"
	}
	return s
}

func oneLine(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), "\n", " ")
}
