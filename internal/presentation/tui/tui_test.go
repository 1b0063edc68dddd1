package tui_test

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/aretw0/menutree/internal/presentation/tui"
	"github.com/aretw0/menutree/pkg/domain"
	"github.com/aretw0/menutree/pkg/editor"
	"github.com/aretw0/menutree/pkg/export"
	"github.com/aretw0/menutree/pkg/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDocument(t *testing.T) *export.Document {
	t.Helper()
	ed := editor.New(tree.New())
	start, _ := ed.AddRootButton()
	require.NoError(t, ed.SetButtonText(start.ID, "Start"))
	require.NoError(t, ed.SetReplyText(start.ID, "Welcome!\nPick one"))
	require.NoError(t, ed.SetTemplateID(start.ID, "tpl1"))
	require.NoError(t, ed.SetTemplateParams(start.ID, "a, b"))
	require.NoError(t, ed.SetLabels(start.ID, "Yes, No"))
	yes, err := ed.AddSubButtonFromLabel(start.ID, "Yes")
	require.NoError(t, err)
	require.NoError(t, ed.SetCarousel(yes.ID, true))
	idx, _ := ed.AddCarouselCard(yes.ID)
	require.NoError(t, ed.SetCardMediaURL(yes.ID, idx, "https://cdn.example.com/1.mp4"))
	require.NoError(t, ed.SetCardMediaType(yes.ID, idx, domain.MediaVideo))

	doc, err := export.Build(ed.Tree())
	require.NoError(t, err)
	return doc
}

func TestMarkdown(t *testing.T) {
	md := tui.Markdown(sampleDocument(t))

	assert.True(t, strings.HasPrefix(md, "# Menu\n\n## Start\n"))
	assert.Contains(t, md, "- **Reply:** Welcome! Pick one\n")
	assert.Contains(t, md, "- **Template:** `tpl1` (params: a, b)\n")
	assert.Contains(t, md, "- **Labels:** Yes, No\n")
	assert.Contains(t, md, "### Yes (Parent: Start)\n")
	assert.Contains(t, md, "- **Carousel:** 1 card(s)\n  1. VIDEO https://cdn.example.com/1.mp4\n")
}

func TestMarkdown_Empty(t *testing.T) {
	doc, err := export.Build(tree.New())
	require.NoError(t, err)
	assert.Equal(t, "# Menu\n\n_No buttons yet._\n", tui.Markdown(doc))
}

func TestRenderTable(t *testing.T) {
	var buf bytes.Buffer
	tui.RenderTable(&buf, sampleDocument(t))
	out := buf.String()

	assert.Contains(t, out, "Start")
	assert.Contains(t, out, "  Yes")
	assert.Contains(t, out, "Yes, No")
	assert.Contains(t, out, "(2 buttons)")
}

func TestRender_NotATerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()

	out, err := tui.Render(f, "# Title\n")
	require.NoError(t, err)
	assert.Equal(t, "# Title\n", out, "plain markdown when not a terminal")
}

func TestNewRenderer(t *testing.T) {
	render, err := tui.NewRenderer(80)
	require.NoError(t, err)

	out, err := render("# Hello")
	require.NoError(t, err)
	assert.Contains(t, out, "Hello")
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	tui.PrintBanner(&buf, "v1.2.3")
	assert.Contains(t, buf.String(), "v1.2.3")
	assert.Contains(t, buf.String(), "|_| |_| |_|")
}
