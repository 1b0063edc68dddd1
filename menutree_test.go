package menutree_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/menutree"
	"github.com/aretw0/menutree/internal/sanitize"
	"github.com/aretw0/menutree/pkg/domain"
	"github.com/aretw0/menutree/pkg/editor"
	"github.com/aretw0/menutree/pkg/export"
	"github.com/aretw0/menutree/pkg/outline"
	"github.com/aretw0/menutree/pkg/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenu_Hooks(t *testing.T) {
	var ops []editor.Operation
	var exports []*export.Event

	m := menutree.New(
		menutree.WithIDGenerator(tree.SequenceGenerator("btn")),
		menutree.WithHooks(editor.Hooks{
			OnMutation: func(ev *editor.MutationEvent) { ops = append(ops, ev.Op) },
		}),
		menutree.WithExportHook(func(ev *export.Event) { exports = append(exports, ev) }),
	)

	n, err := m.Editor().AddRootButton()
	require.NoError(t, err)
	assert.Equal(t, "btn1", n.ID)
	require.NoError(t, m.Editor().SetButtonText(n.ID, "Start"))

	_, err = m.Export()
	require.NoError(t, err)

	assert.Len(t, ops, 2)
	require.Len(t, exports, 1)
	assert.Equal(t, 1, exports[0].Buttons)
}

func TestMenu_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.yaml")
	require.NoError(t, os.WriteFile(path, []byte("buttons:\n  - text: A\n  - text: B\n"), 0o644))

	m := menutree.New()
	require.NoError(t, m.Load(path))

	var buf bytes.Buffer
	require.NoError(t, m.Write(&buf))

	doc, err := export.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, doc.Root.StringButtonList)
}

func TestMenu_LoadErrors(t *testing.T) {
	m := menutree.New()
	assert.Error(t, m.Load(filepath.Join(t.TempDir(), "missing.yaml")))

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("buttons:\n  - label: A\n"), 0o644))
	assert.ErrorIs(t, m.Load(path), domain.ErrUnavailable)
}

func TestMenu_InputLimit(t *testing.T) {
	o, err := outline.ParseBytes([]byte("buttons:\n  - text: \"Start\\x07\"\n    reply: Welcome to the support desk\n"))
	require.NoError(t, err)

	m := menutree.New(menutree.WithInputLimit(10))
	err = m.Apply(o)
	assert.ErrorIs(t, err, sanitize.ErrTooLarge)
	assert.Empty(t, m.Editor().ListRoots())

	o.Buttons[0].Reply = "Welcome"
	require.NoError(t, m.Apply(o))
	doc, err := m.Export()
	require.NoError(t, err)
	assert.Equal(t, []string{"Start"}, doc.Root.StringButtonList)
}
