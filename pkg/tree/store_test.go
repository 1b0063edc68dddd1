package tree

import (
	"errors"
	"testing"

	"github.com/aretw0/menutree/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateNode_Defaults(t *testing.T) {
	tr := New()

	node, err := tr.CreateNode(NodeParams{})
	require.NoError(t, err)

	assert.NotEmpty(t, node.ID)
	assert.Equal(t, "", node.ButtonText)
	assert.Equal(t, []string{}, node.Labels)
	assert.Equal(t, []string{}, node.Children)
	assert.Equal(t, []string{}, node.TemplateParams)
	assert.Empty(t, node.CarouselCards)
	assert.False(t, node.IsCarousel)

	// Not attached yet
	assert.Empty(t, tr.RootIDs())
	assert.Equal(t, 1, tr.Len())
}

func TestCreateNode_UniqueIDs(t *testing.T) {
	tr := New()
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		node, err := tr.CreateNode(NodeParams{})
		require.NoError(t, err)
		require.False(t, seen[node.ID], "id %s reused", node.ID)
		seen[node.ID] = true
	}
	assert.Equal(t, 200, tr.Len())
}

func TestCreateNode_CopiesLabels(t *testing.T) {
	tr := New()
	labels := []string{"a", "b"}
	node, err := tr.CreateNode(NodeParams{Labels: labels})
	require.NoError(t, err)

	labels[0] = "changed"
	assert.Equal(t, []string{"a", "b"}, node.Labels)
}

func TestCreateNode_GeneratorFailure(t *testing.T) {
	tr := New(WithIDGenerator(func() (string, error) {
		return "", errors.New("entropy pool empty")
	}))

	_, err := tr.CreateNode(NodeParams{})
	assert.ErrorIs(t, err, domain.ErrResourceExhausted)
	assert.Equal(t, 0, tr.Len())
}

func TestCreateNode_ReusedIDRejected(t *testing.T) {
	tr := New(WithIDGenerator(func() (string, error) { return "same", nil }))

	_, err := tr.CreateNode(NodeParams{})
	require.NoError(t, err)

	_, err = tr.CreateNode(NodeParams{})
	assert.ErrorIs(t, err, domain.ErrResourceExhausted)
	assert.Equal(t, 1, tr.Len())
}

func TestGet_NotFound(t *testing.T) {
	tr := New()
	_, err := tr.Get("missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAttach(t *testing.T) {
	tr := New(WithIDGenerator(SequenceGenerator("n")))

	root, _ := tr.CreateNode(NodeParams{ButtonText: "Start"})
	require.NoError(t, tr.AttachAsRoot(root.ID))

	child, _ := tr.CreateNode(NodeParams{ButtonText: "Yes", ParentID: root.ID})
	require.NoError(t, tr.AttachAsChild(root.ID, child.ID))

	assert.Equal(t, []string{"n1"}, tr.RootIDs())
	assert.Equal(t, []string{"n2"}, root.Children)
	assert.Equal(t, "n1", child.ParentID)
	assert.NoError(t, tr.Validate())

	roots := tr.Roots()
	require.Len(t, roots, 1)
	assert.Equal(t, "Start", roots[0].ButtonText)
	assert.Equal(t, []string{"n1", "n2"}, tr.IDs())
}

func TestAttach_RejectsDoubleAttachment(t *testing.T) {
	tr := New()

	a, _ := tr.CreateNode(NodeParams{})
	b, _ := tr.CreateNode(NodeParams{})
	require.NoError(t, tr.AttachAsRoot(a.ID))
	require.NoError(t, tr.AttachAsChild(a.ID, b.ID))

	assert.ErrorIs(t, tr.AttachAsRoot(a.ID), domain.ErrInvalidState)
	assert.ErrorIs(t, tr.AttachAsRoot(b.ID), domain.ErrInvalidState)
	assert.ErrorIs(t, tr.AttachAsChild(a.ID, b.ID), domain.ErrInvalidState)
	assert.ErrorIs(t, tr.AttachAsChild(b.ID, b.ID), domain.ErrInvalidState)

	// Rejections left the tree untouched
	assert.Equal(t, []string{a.ID}, tr.RootIDs())
	assert.Equal(t, []string{b.ID}, a.Children)
	assert.NoError(t, tr.Validate())
}

func TestAttach_UnknownIDs(t *testing.T) {
	tr := New()
	a, _ := tr.CreateNode(NodeParams{})

	assert.ErrorIs(t, tr.AttachAsRoot("missing"), domain.ErrNotFound)
	assert.ErrorIs(t, tr.AttachAsChild("missing", a.ID), domain.ErrNotFound)
	assert.ErrorIs(t, tr.AttachAsChild(a.ID, "missing"), domain.ErrNotFound)
}

func TestValidate(t *testing.T) {
	build := func() (*Tree, *domain.Node, *domain.Node) {
		tr := New(WithIDGenerator(SequenceGenerator("n")))
		a, _ := tr.CreateNode(NodeParams{})
		b, _ := tr.CreateNode(NodeParams{})
		_ = tr.AttachAsRoot(a.ID)
		_ = tr.AttachAsChild(a.ID, b.ID)
		return tr, a, b
	}

	tests := []struct {
		name    string
		corrupt func(tr *Tree, a, b *domain.Node)
	}{
		{"Dangling Root", func(tr *Tree, a, b *domain.Node) { tr.roots = append(tr.roots, "ghost") }},
		{"Dangling Child", func(tr *Tree, a, b *domain.Node) { a.Children = append(a.Children, "ghost") }},
		{"Child Listed Twice", func(tr *Tree, a, b *domain.Node) { a.Children = append(a.Children, b.ID) }},
		{"Root Is Also Child", func(tr *Tree, a, b *domain.Node) { tr.roots = append(tr.roots, b.ID) }},
		{"Wrong Back Reference", func(tr *Tree, a, b *domain.Node) { b.ParentID = "n9" }},
		{"Unattached Node", func(tr *Tree, a, b *domain.Node) { _, _ = tr.CreateNode(NodeParams{}) }},
		{"Cycle", func(tr *Tree, a, b *domain.Node) {
			c, _ := tr.CreateNode(NodeParams{})
			d, _ := tr.CreateNode(NodeParams{})
			c.Children = []string{d.ID}
			d.Children = []string{c.ID}
			c.ParentID = d.ID
			d.ParentID = c.ID
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, a, b := build()
			require.NoError(t, tr.Validate())
			tt.corrupt(tr, a, b)
			assert.ErrorIs(t, tr.Validate(), domain.ErrInvalidState)
		})
	}
}

func TestSequenceGenerator(t *testing.T) {
	gen := SequenceGenerator("btn-")
	first, _ := gen()
	second, _ := gen()
	assert.Equal(t, "btn-1", first)
	assert.Equal(t, "btn-2", second)
}
