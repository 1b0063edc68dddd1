package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/menutree/pkg/domain"
	"github.com/aretw0/menutree/pkg/export"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleDocument returns a small document with one carousel button and one child.
func sampleDocument(text string) *export.Document {
	return &export.Document{
		Root: export.Root{
			StageID:          "0",
			StringButtonList: []string{text},
			Buttons: []export.Button{{
				ButtonID:         "0",
				StageID:          "1",
				ButtonText:       text,
				TemplateParams:   []string{"name"},
				IsCarousel:       true,
				StringButtonList: []string{"Yes"},
				Carousel: &export.Carousel{CarouselCards: []domain.CarouselCard{
					{MediaURL: "https://cdn.example.com/a.png", MediaType: domain.MediaImage, Params: []string{}},
				}},
				Buttons: []export.Button{{
					ButtonID:         "0",
					StageID:          "2",
					ButtonText:       "Yes",
					TemplateParams:   []string{},
					StringButtonList: []string{},
					Buttons:          []export.Button{},
					ParentButtonID:   "0",
				}},
			}},
		},
	}
}

// RunExportSinkContract runs a suite of tests to verify that an ExportSink implementation
// adheres to the defined interface contract.
func RunExportSinkContract(t *testing.T, sink ExportSink) {
	ctx := context.Background()
	sessionID := "contract-test-session-" + time.Now().Format("20060102150405")

	t.Run("Publish and Fetch", func(t *testing.T) {
		// 1. Publish
		doc := sampleDocument("Start")
		err := sink.Publish(ctx, sessionID, doc)
		require.NoError(t, err, "Publish should not return error")

		// 2. Fetch
		loaded, err := sink.Fetch(ctx, sessionID)
		require.NoError(t, err, "Fetch should not return error")
		assert.Equal(t, doc, loaded)
	})

	t.Run("Publish Replaces", func(t *testing.T) {
		require.NoError(t, sink.Publish(ctx, sessionID, sampleDocument("First")))
		require.NoError(t, sink.Publish(ctx, sessionID, sampleDocument("Second")))

		loaded, err := sink.Fetch(ctx, sessionID)
		require.NoError(t, err)
		assert.Equal(t, []string{"Second"}, loaded.Root.StringButtonList)
	})

	t.Run("Fetch Non-Existent", func(t *testing.T) {
		_, err := sink.Fetch(ctx, "non-existent-"+sessionID)
		assert.ErrorIs(t, err, domain.ErrDocumentNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		// Setup
		err := sink.Publish(ctx, sessionID, sampleDocument("Start"))
		require.NoError(t, err)

		// Delete
		err = sink.Delete(ctx, sessionID)
		require.NoError(t, err, "Delete should not return error")

		// Verify gone
		_, err = sink.Fetch(ctx, sessionID)
		assert.ErrorIs(t, err, domain.ErrDocumentNotFound, "Fetch after Delete should return ErrDocumentNotFound")

		// Deleting twice is not an error
		assert.NoError(t, sink.Delete(ctx, sessionID))
	})

	t.Run("List", func(t *testing.T) {
		// Setup: Publish 2 sessions
		id1 := sessionID + "-1"
		id2 := sessionID + "-2"
		_ = sink.Publish(ctx, id1, sampleDocument("One"))
		_ = sink.Publish(ctx, id2, sampleDocument("Two"))

		// Ensure cleanup
		defer func() {
			_ = sink.Delete(ctx, id1)
			_ = sink.Delete(ctx, id2)
		}()

		// List
		sessions, err := sink.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, sessions, id1)
		assert.Contains(t, sessions, id2)
	})
}
