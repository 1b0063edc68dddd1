package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/aretw0/menutree/pkg/adapters/memory"
	"github.com/aretw0/menutree/pkg/domain"
	"github.com/aretw0/menutree/pkg/session"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, opts ...Option) *Server {
	t.Helper()
	return NewServer(session.NewManager(), "test", opts...)
}

// rpc sends one JSON-RPC message through the MCP server and returns the encoded reply.
func rpc(t *testing.T, s *Server, method string, params any) string {
	t.Helper()
	msg, err := json.Marshal(map[string]any{
		"jsonrpc": "2.0",
		"id":      1,
		"method":  method,
		"params":  params,
	})
	require.NoError(t, err)

	reply := s.MCPServer().HandleMessage(context.Background(), msg)
	out, err := json.Marshal(reply)
	require.NoError(t, err)
	return string(out)
}

func TestTools_Registered(t *testing.T) {
	out := rpc(t, newTestServer(t), "tools/list", map[string]any{})
	for _, name := range []string{
		"create_session", "list_roots", "get_button", "add_root_button", "edit_button",
		"add_carousel_card", "edit_carousel_card", "add_sub_button", "export_document",
	} {
		assert.Contains(t, out, fmt.Sprintf("%q", name))
	}
	assert.NotContains(t, out, "publish_document", "publish needs a sink")

	withSink := rpc(t, newTestServer(t, WithSink(memory.NewSink())), "tools/list", map[string]any{})
	assert.Contains(t, withSink, "publish_document")
}

func TestToolCall_Structured(t *testing.T) {
	s := newTestServer(t)

	out := rpc(t, s, "tools/call", map[string]any{
		"name":      "create_session",
		"arguments": map[string]any{"session_id": "rpc"},
	})
	assert.Contains(t, out, `"session_id":"rpc"`)

	out = rpc(t, s, "tools/call", map[string]any{
		"name":      "list_roots",
		"arguments": map[string]any{"session_id": "ghost"},
	})
	assert.Contains(t, out, `"isError":true`)
}

func TestEditingFlow(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()
	req := mcp.CallToolRequest{}

	created, err := s.handleCreateSession(ctx, req, map[string]interface{}{})
	require.NoError(t, err)
	sid := created.SessionID
	require.NotEmpty(t, sid)

	root, err := s.handleAddRoot(ctx, req, map[string]interface{}{"session_id": sid})
	require.NoError(t, err)
	assert.Equal(t, "Unnamed", root.Title)

	edited, err := s.handleEditButton(ctx, req, map[string]interface{}{
		"session_id":  sid,
		"node_id":     root.ID,
		"button_text": "Start",
		"labels":      "Yes, No",
		"is_carousel": true,
	})
	require.NoError(t, err)
	assert.Equal(t, "Start", edited.ButtonText)
	assert.Equal(t, []string{"Yes", "No"}, edited.Labels)
	assert.True(t, edited.IsCarousel)

	card, err := s.handleAddCard(ctx, req, map[string]interface{}{"session_id": sid, "node_id": root.ID})
	require.NoError(t, err)
	assert.Equal(t, 0, card.Index)

	// JSON numbers arrive as float64
	withCard, err := s.handleEditCard(ctx, req, map[string]interface{}{
		"session_id": sid,
		"node_id":    root.ID,
		"index":      float64(0),
		"media_url":  "https://cdn.example.com/a.png",
		"params":     "p1",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/a.png", withCard.CarouselCards[0].MediaURL)

	child, err := s.handleAddSubButton(ctx, req, map[string]interface{}{"session_id": sid, "node_id": root.ID, "label": "No"})
	require.NoError(t, err)
	assert.Equal(t, "No (Parent: Start)", child.Title)

	roots, err := s.handleListRoots(ctx, req, map[string]interface{}{"session_id": sid})
	require.NoError(t, err)
	require.Len(t, roots.Roots, 1)
	assert.Equal(t, []string{child.ID}, roots.Roots[0].Children)

	res, err := s.handleExport(ctx, mcp.CallToolRequest{Params: mcp.CallToolParams{
		Name:      "export_document",
		Arguments: map[string]any{"session_id": sid},
	}})
	require.NoError(t, err)
	require.False(t, res.IsError)
	text := res.Content[0].(mcp.TextContent).Text
	assert.True(t, strings.HasPrefix(text, "{\n  \"root\""))
	assert.Contains(t, text, `"carousel": {`)
}

func TestErrors(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()
	req := mcp.CallToolRequest{}

	created, _ := s.handleCreateSession(ctx, req, map[string]interface{}{"session_id": "errs"})
	root, _ := s.handleAddRoot(ctx, req, map[string]interface{}{"session_id": created.SessionID})

	tests := []struct {
		name    string
		call    func() error
		wantErr error
	}{
		{"Unknown Session", func() error {
			_, err := s.handleListRoots(ctx, req, map[string]interface{}{"session_id": "ghost"})
			return err
		}, domain.ErrSessionNotFound},
		{"Unknown Node", func() error {
			_, err := s.handleGetButton(ctx, req, map[string]interface{}{"session_id": "errs", "node_id": "ghost"})
			return err
		}, domain.ErrNotFound},
		{"Card Index Out Of Range", func() error {
			_, err := s.handleEditCard(ctx, req, map[string]interface{}{"session_id": "errs", "node_id": root.ID, "index": 2, "media_url": "u"})
			return err
		}, domain.ErrIndexOutOfRange},
		{"Label Not Offered", func() error {
			_, err := s.handleAddSubButton(ctx, req, map[string]interface{}{"session_id": "errs", "node_id": root.ID, "label": "x"})
			return err
		}, domain.ErrUnavailable},
		{"Bad Media Type", func() error {
			_, _ = s.handleAddCard(ctx, req, map[string]interface{}{"session_id": "errs", "node_id": root.ID})
			_, err := s.handleEditCard(ctx, req, map[string]interface{}{"session_id": "errs", "node_id": root.ID, "index": 0, "media_type": "GIF"})
			return err
		}, domain.ErrInvalidMediaType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.call(), tt.wantErr)
		})
	}

	t.Run("Fractional Index", func(t *testing.T) {
		_, _ = s.handleAddCard(ctx, req, map[string]interface{}{"session_id": "errs", "node_id": root.ID})
		for _, index := range []interface{}{1.9, float64(0.5), "1.5", math.NaN(), math.Inf(1)} {
			_, err := s.handleEditCard(ctx, req, map[string]interface{}{"session_id": "errs", "node_id": root.ID, "index": index, "media_url": "changed"})
			assert.ErrorContains(t, err, "index must be a whole number", "index %v", index)
		}

		node, err := s.handleGetButton(ctx, req, map[string]interface{}{"session_id": "errs", "node_id": root.ID})
		require.NoError(t, err)
		for _, card := range node.CarouselCards {
			assert.NotEqual(t, "changed", card.MediaURL)
		}

		_, err = s.handleEditCard(ctx, req, map[string]interface{}{"session_id": "errs", "node_id": root.ID, "index": float64(1), "media_url": "changed"})
		require.NoError(t, err)
	})

	t.Run("Unknown Argument", func(t *testing.T) {
		_, err := s.handleAddRoot(ctx, req, map[string]interface{}{"session_id": "errs", "colour": "red"})
		assert.ErrorContains(t, err, "invalid arguments")
	})
}

func TestPublish(t *testing.T) {
	sink := memory.NewSink()
	s := newTestServer(t, WithSink(sink))
	ctx := context.Background()
	req := mcp.CallToolRequest{}

	created, _ := s.handleCreateSession(ctx, req, map[string]interface{}{"session_id": "pub"})
	_, _ = s.handleAddRoot(ctx, req, map[string]interface{}{"session_id": created.SessionID})

	res, err := s.handlePublish(ctx, req, map[string]interface{}{"session_id": "pub"})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Buttons)

	doc, err := sink.Fetch(ctx, "pub")
	require.NoError(t, err)
	assert.Equal(t, 1, doc.Count())
}

func TestExportResource(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()
	_, _ = s.handleCreateSession(ctx, mcp.CallToolRequest{}, map[string]interface{}{"session_id": "res"})

	out := rpc(t, s, "resources/read", map[string]any{"uri": "menutree://sessions/res/export"})
	assert.Contains(t, out, `stringButtonList`)
	assert.Contains(t, out, `"mimeType":"application/json"`)
}
