package editor_test

import (
	"log/slog"
	"testing"

	"github.com/aretw0/menutree/pkg/domain"
	"github.com/aretw0/menutree/pkg/editor"
	"github.com/aretw0/menutree/pkg/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thejerf/slogassert"
)

func newEditor(opts ...editor.Option) *editor.Editor {
	return editor.New(tree.New(tree.WithIDGenerator(tree.SequenceGenerator("n"))), opts...)
}

func TestAddRootButton(t *testing.T) {
	ed := newEditor()

	a, err := ed.AddRootButton()
	require.NoError(t, err)
	b, err := ed.AddRootButton()
	require.NoError(t, err)

	roots := ed.ListRoots()
	require.Len(t, roots, 2)
	assert.Equal(t, a.ID, roots[0].ID)
	assert.Equal(t, b.ID, roots[1].ID)
	assert.True(t, roots[0].IsRoot())
	assert.NoError(t, ed.Tree().Validate())
}

func TestEditFields(t *testing.T) {
	ed := newEditor()
	n, _ := ed.AddRootButton()

	require.NoError(t, ed.SetButtonText(n.ID, "Start"))
	require.NoError(t, ed.SetReplyText(n.ID, "Welcome!"))
	require.NoError(t, ed.SetTemplateID(n.ID, "tpl_welcome"))
	require.NoError(t, ed.SetLabels(n.ID, "a, , b ,b"))
	require.NoError(t, ed.SetTemplateParams(n.ID, "name,  city"))

	got, err := ed.Node(n.ID)
	require.NoError(t, err)
	assert.Equal(t, "Start", got.ButtonText)
	assert.Equal(t, "Welcome!", got.ReplyText)
	assert.Equal(t, "tpl_welcome", got.TemplateID)
	assert.Equal(t, []string{"a", "b", "b"}, got.Labels)
	assert.Equal(t, []string{"name", "city"}, got.TemplateParams)

	// Empty strings are legal
	require.NoError(t, ed.SetButtonText(n.ID, ""))
	require.NoError(t, ed.SetLabels(n.ID, ""))
	got, _ = ed.Node(n.ID)
	assert.Equal(t, "", got.ButtonText)
	assert.Equal(t, []string{}, got.Labels)
}

func TestEditFields_NotFound(t *testing.T) {
	ed := newEditor()

	assert.ErrorIs(t, ed.SetButtonText("missing", "x"), domain.ErrNotFound)
	assert.ErrorIs(t, ed.SetLabels("missing", "x"), domain.ErrNotFound)
	assert.ErrorIs(t, ed.SetCarousel("missing", true), domain.ErrNotFound)
	_, err := ed.AddCarouselCard("missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = ed.AddSubButtonFromLabel("missing", "x")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestNode_ReturnsCopy(t *testing.T) {
	ed := newEditor()
	n, _ := ed.AddRootButton()
	_ = ed.SetLabels(n.ID, "x")

	got, _ := ed.Node(n.ID)
	got.Labels[0] = "mutated"
	got.ButtonText = "mutated"

	again, _ := ed.Node(n.ID)
	assert.Equal(t, []string{"x"}, again.Labels)
	assert.Equal(t, "", again.ButtonText)
}

func TestCarousel(t *testing.T) {
	ed := newEditor()
	n, _ := ed.AddRootButton()

	idx, err := ed.AddCarouselCard(n.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, idx)
	idx, err = ed.AddCarouselCard(n.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, idx)

	require.NoError(t, ed.SetCardMediaURL(n.ID, 1, "https://cdn.example.com/v.mp4"))
	require.NoError(t, ed.SetCardMediaType(n.ID, 1, domain.MediaVideo))
	require.NoError(t, ed.SetCardParams(n.ID, 1, "title, price"))

	got, _ := ed.Node(n.ID)
	require.Len(t, got.CarouselCards, 2)
	assert.Equal(t, domain.CarouselCard{MediaType: domain.MediaImage, Params: []string{}}, got.CarouselCards[0])
	assert.Equal(t, domain.CarouselCard{
		MediaURL:  "https://cdn.example.com/v.mp4",
		MediaType: domain.MediaVideo,
		Params:    []string{"title", "price"},
	}, got.CarouselCards[1])

	// Toggling off keeps the cards
	require.NoError(t, ed.SetCarousel(n.ID, true))
	require.NoError(t, ed.SetCarousel(n.ID, false))
	got, _ = ed.Node(n.ID)
	assert.False(t, got.IsCarousel)
	assert.Len(t, got.CarouselCards, 2)
}

func TestCarousel_StaleIndex(t *testing.T) {
	ed := newEditor()
	n, _ := ed.AddRootButton()
	_, _ = ed.AddCarouselCard(n.ID)

	for _, idx := range []int{-1, 1, 42} {
		assert.ErrorIs(t, ed.SetCardMediaURL(n.ID, idx, "x"), domain.ErrIndexOutOfRange)
		assert.ErrorIs(t, ed.SetCardMediaType(n.ID, idx, domain.MediaVideo), domain.ErrIndexOutOfRange)
		assert.ErrorIs(t, ed.SetCardParams(n.ID, idx, "x"), domain.ErrIndexOutOfRange)
	}

	got, _ := ed.Node(n.ID)
	assert.Equal(t, "", got.CarouselCards[0].MediaURL)
}

func TestCarousel_InvalidMediaType(t *testing.T) {
	ed := newEditor()
	n, _ := ed.AddRootButton()
	_, _ = ed.AddCarouselCard(n.ID)

	err := ed.SetCardMediaType(n.ID, 0, "GIF")
	assert.ErrorIs(t, err, domain.ErrInvalidMediaType)

	got, _ := ed.Node(n.ID)
	assert.Equal(t, domain.MediaImage, got.CarouselCards[0].MediaType)
}

func TestAddSubButtonFromLabel(t *testing.T) {
	ed := newEditor()
	a, _ := ed.AddRootButton()
	_ = ed.SetButtonText(a.ID, "Start")

	ok, err := ed.CanAddSubButton(a.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = ed.AddSubButtonFromLabel(a.ID, "Yes")
	assert.ErrorIs(t, err, domain.ErrUnavailable)
	assert.Equal(t, 1, ed.Tree().Len(), "rejected call must not leave a node behind")

	_ = ed.SetLabels(a.ID, "Yes, No")
	ok, _ = ed.CanAddSubButton(a.ID)
	assert.True(t, ok)

	_, err = ed.AddSubButtonFromLabel(a.ID, "Maybe")
	assert.ErrorIs(t, err, domain.ErrUnavailable)

	b, err := ed.AddSubButtonFromLabel(a.ID, "Yes")
	require.NoError(t, err)
	assert.Equal(t, "Yes", b.ButtonText)
	assert.Equal(t, a.ID, b.ParentID)

	parent, _ := ed.Node(a.ID)
	assert.Equal(t, []string{b.ID}, parent.Children)
	assert.Len(t, ed.ListRoots(), 1)
	assert.NoError(t, ed.Tree().Validate())

	// Same label twice is allowed: two distinct children
	c, err := ed.AddSubButtonFromLabel(a.ID, "Yes")
	require.NoError(t, err)
	assert.NotEqual(t, b.ID, c.ID)
}

func TestTitle(t *testing.T) {
	ed := newEditor()
	a, _ := ed.AddRootButton()

	title, err := ed.Title(a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Unnamed", title)

	_ = ed.SetButtonText(a.ID, "Start")
	_ = ed.SetLabels(a.ID, "Yes")
	b, _ := ed.AddSubButtonFromLabel(a.ID, "Yes")

	title, _ = ed.Title(b.ID)
	assert.Equal(t, "Yes (Parent: Start)", title)
}

// Every id handed out stays in the tree, and parentId is empty exactly for roots.
func TestInvariants_AfterMixedOperations(t *testing.T) {
	ed := newEditor()
	var created []string

	for i := 0; i < 3; i++ {
		root, err := ed.AddRootButton()
		require.NoError(t, err)
		created = append(created, root.ID)
		_ = ed.SetLabels(root.ID, "x, y")
		for _, label := range []string{"x", "y", "x"} {
			child, err := ed.AddSubButtonFromLabel(root.ID, label)
			require.NoError(t, err)
			created = append(created, child.ID)
			_ = ed.SetLabels(child.ID, "z")
			grand, err := ed.AddSubButtonFromLabel(child.ID, "z")
			require.NoError(t, err)
			created = append(created, grand.ID)
		}
	}

	tr := ed.Tree()
	assert.ElementsMatch(t, created, tr.IDs())
	require.NoError(t, tr.Validate())

	rootSet := make(map[string]bool)
	for _, id := range tr.RootIDs() {
		rootSet[id] = true
	}
	for _, id := range created {
		n, err := tr.Get(id)
		require.NoError(t, err)
		assert.Equal(t, rootSet[id], n.ParentID == "", id)
	}
}

func TestHooks(t *testing.T) {
	var events []*editor.MutationEvent
	var rejected []editor.Operation

	ed := newEditor(editor.WithHooks(editor.Hooks{
		OnMutation: func(ev *editor.MutationEvent) { events = append(events, ev) },
		OnRejected: func(op editor.Operation, _ string, _ error) { rejected = append(rejected, op) },
	}))

	n, _ := ed.AddRootButton()
	_ = ed.SetLabels(n.ID, "a")
	_, _ = ed.AddSubButtonFromLabel(n.ID, "a")
	_ = ed.SetCardMediaURL(n.ID, 3, "x")

	require.Len(t, events, 3)
	assert.Equal(t, editor.OpAddRoot, events[0].Op)
	assert.Equal(t, editor.OpSetLabels, events[1].Op)
	assert.Equal(t, editor.OpAddSubButton, events[2].Op)
	assert.Equal(t, 2, events[2].NodeCount)
	assert.Equal(t, []editor.Operation{editor.OpSetCardURL}, rejected)
}

func TestLogging(t *testing.T) {
	h := slogassert.New(t, slog.LevelDebug, nil)
	ed := newEditor(editor.WithLogger(slog.New(h)))

	n, _ := ed.AddRootButton()
	_ = ed.SetLabels(n.ID, "a")
	_, _ = ed.AddSubButtonFromLabel(n.ID, "a")
	_, _ = ed.AddSubButtonFromLabel(n.ID, "b")

	h.AssertMessage("root button created")
	h.AssertMessage("button updated")
	h.AssertMessage("sub button created")
	h.AssertMessage("mutation rejected")
}
