package editor_test

import (
	"testing"

	"github.com/aretw0/menutree/pkg/domain"
	"github.com/aretw0/menutree/pkg/editor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func TestPatchButton(t *testing.T) {
	var mutations []editor.Operation
	ed := newEditor(editor.WithHooks(editor.Hooks{
		OnMutation: func(ev *editor.MutationEvent) { mutations = append(mutations, ev.Op) },
	}))
	n, _ := ed.AddRootButton()
	mutations = nil

	err := ed.PatchButton(n.ID, editor.ButtonPatch{
		ButtonText: ptr("Start"),
		Labels:     ptr("a, b"),
		IsCarousel: ptr(true),
	})
	require.NoError(t, err)

	got, _ := ed.Node(n.ID)
	assert.Equal(t, "Start", got.ButtonText)
	assert.Equal(t, []string{"a", "b"}, got.Labels)
	assert.True(t, got.IsCarousel)
	assert.Empty(t, got.ReplyText, "absent fields are untouched")
	assert.Equal(t, []editor.Operation{editor.OpSetButtonText, editor.OpSetLabels, editor.OpSetCarousel}, mutations)

	err = ed.PatchButton("ghost", editor.ButtonPatch{ButtonText: ptr("x")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPatchCard(t *testing.T) {
	ed := newEditor()
	n, _ := ed.AddRootButton()
	idx, _ := ed.AddCarouselCard(n.ID)

	require.NoError(t, ed.PatchCard(n.ID, idx, editor.CardPatch{
		MediaURL:  ptr("https://cdn.example.com/a.mp4"),
		MediaType: ptr("VIDEO"),
		Params:    ptr("x, y"),
	}))
	got, _ := ed.Node(n.ID)
	assert.Equal(t, domain.CarouselCard{
		MediaURL:  "https://cdn.example.com/a.mp4",
		MediaType: domain.MediaVideo,
		Params:    []string{"x", "y"},
	}, got.CarouselCards[0])

	tests := []struct {
		name    string
		id      string
		index   int
		patch   editor.CardPatch
		wantErr error
	}{
		{"Unknown Node", "ghost", 0, editor.CardPatch{MediaURL: ptr("u")}, domain.ErrNotFound},
		{"Index Out Of Range", n.ID, 1, editor.CardPatch{MediaURL: ptr("u")}, domain.ErrIndexOutOfRange},
		{"Negative Index", n.ID, -1, editor.CardPatch{}, domain.ErrIndexOutOfRange},
		{"Bad Media Type", n.ID, 0, editor.CardPatch{MediaURL: ptr("changed"), MediaType: ptr("AUDIO")}, domain.ErrInvalidMediaType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ed.PatchCard(tt.id, tt.index, tt.patch)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	// Rejected patches write nothing, not even the fields listed before the bad one.
	after, _ := ed.Node(n.ID)
	assert.Equal(t, got.CarouselCards, after.CarouselCards)
}
