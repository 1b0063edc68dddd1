package mcp

import (
	"context"
	"fmt"
	"math"

	"github.com/aretw0/menutree/pkg/editor"
	"github.com/aretw0/menutree/pkg/export"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mitchellh/mapstructure"
)

// Tool arguments arrive as loosely typed JSON maps (numbers are float64);
// decodeArgs turns them into typed structs and rejects unknown keys.
func decodeArgs(args map[string]interface{}, out interface{}) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Squash:           true,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(args); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

type sessionArgs struct {
	SessionID string `mapstructure:"session_id"`
}

type nodeArgs struct {
	SessionID string `mapstructure:"session_id"`
	NodeID    string `mapstructure:"node_id"`
}

type editButtonArgs struct {
	SessionID          string `mapstructure:"session_id"`
	NodeID             string `mapstructure:"node_id"`
	editor.ButtonPatch `mapstructure:",squash"`
}

type editCardArgs struct {
	SessionID        string  `mapstructure:"session_id"`
	NodeID           string  `mapstructure:"node_id"`
	Index            float64 `mapstructure:"index"`
	editor.CardPatch `mapstructure:",squash"`
}

// cardIndex converts a JSON number to a card index. Fractions are rejected
// rather than truncated so 1.9 never edits card 1.
func cardIndex(v float64) (int, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || math.Trunc(v) != v || math.Abs(v) > math.MaxInt32 {
		return 0, fmt.Errorf("invalid arguments: index must be a whole number, got %v", v)
	}
	return int(v), nil
}

type subButtonArgs struct {
	SessionID string `mapstructure:"session_id"`
	NodeID    string `mapstructure:"node_id"`
	Label     string `mapstructure:"label"`
}

// SessionResult is returned by create_session.
type SessionResult struct {
	SessionID string `json:"session_id"`
}

// RootsResult is returned by list_roots.
type RootsResult struct {
	Roots []NodeView `json:"roots"`
}

// CardResult is returned by add_carousel_card.
type CardResult struct {
	Index int `json:"index"`
}

// PublishResult is returned by publish_document.
type PublishResult struct {
	SessionID string `json:"session_id"`
	Buttons   int    `json:"buttons"`
}

func (s *Server) registerTools() {
	// TOOL: create_session
	s.mcpServer.AddTool(mcp.NewTool("create_session",
		mcp.WithDescription("Start a new editing session with an empty menu tree."),
		mcp.WithString("session_id", mcp.Description("Optional session ID; generated when omitted")),
		mcp.WithOutputSchema[SessionResult](),
	), mcp.NewStructuredToolHandler(s.handleCreateSession))

	// TOOL: list_roots
	s.mcpServer.AddTool(mcp.NewTool("list_roots",
		mcp.WithDescription("List the root buttons of a session in display order."),
		mcp.WithString("session_id", mcp.Required(), mcp.Description("Session ID")),
		mcp.WithOutputSchema[RootsResult](),
	), mcp.NewStructuredToolHandler(s.handleListRoots))

	// TOOL: get_button
	s.mcpServer.AddTool(mcp.NewTool("get_button",
		mcp.WithDescription("Get a single button with its labels, children and carousel cards."),
		mcp.WithString("session_id", mcp.Required(), mcp.Description("Session ID")),
		mcp.WithString("node_id", mcp.Required(), mcp.Description("Button ID")),
		mcp.WithOutputSchema[NodeView](),
	), mcp.NewStructuredToolHandler(s.handleGetButton))

	// TOOL: add_root_button
	s.mcpServer.AddTool(mcp.NewTool("add_root_button",
		mcp.WithDescription("Append an empty root button."),
		mcp.WithString("session_id", mcp.Required(), mcp.Description("Session ID")),
		mcp.WithOutputSchema[NodeView](),
	), mcp.NewStructuredToolHandler(s.handleAddRoot))

	// TOOL: edit_button
	s.mcpServer.AddTool(mcp.NewTool("edit_button",
		mcp.WithDescription("Overwrite button fields. Omitted fields are left unchanged."),
		mcp.WithString("session_id", mcp.Required(), mcp.Description("Session ID")),
		mcp.WithString("node_id", mcp.Required(), mcp.Description("Button ID")),
		mcp.WithString("button_text", mcp.Description("Label shown on the button")),
		mcp.WithString("reply_text", mcp.Description("Message sent when the button is pressed")),
		mcp.WithString("template_id", mcp.Description("Message template ID")),
		mcp.WithString("labels", mcp.Description("Comma separated labels offered for sub-buttons")),
		mcp.WithString("template_params", mcp.Description("Comma separated template parameters")),
		mcp.WithBoolean("is_carousel", mcp.Description("Whether carousel cards are exported")),
		mcp.WithOutputSchema[NodeView](),
	), mcp.NewStructuredToolHandler(s.handleEditButton))

	// TOOL: add_carousel_card
	s.mcpServer.AddTool(mcp.NewTool("add_carousel_card",
		mcp.WithDescription("Append a blank IMAGE card to a button's carousel and return its index."),
		mcp.WithString("session_id", mcp.Required(), mcp.Description("Session ID")),
		mcp.WithString("node_id", mcp.Required(), mcp.Description("Button ID")),
		mcp.WithOutputSchema[CardResult](),
	), mcp.NewStructuredToolHandler(s.handleAddCard))

	// TOOL: edit_carousel_card
	s.mcpServer.AddTool(mcp.NewTool("edit_carousel_card",
		mcp.WithDescription("Overwrite fields of a carousel card."),
		mcp.WithString("session_id", mcp.Required(), mcp.Description("Session ID")),
		mcp.WithString("node_id", mcp.Required(), mcp.Description("Button ID")),
		mcp.WithNumber("index", mcp.Required(), mcp.Description("Card index")),
		mcp.WithString("media_url", mcp.Description("Media URL")),
		mcp.WithString("media_type", mcp.Description("IMAGE or VIDEO"), mcp.Enum("IMAGE", "VIDEO")),
		mcp.WithString("params", mcp.Description("Comma separated card parameters")),
		mcp.WithOutputSchema[NodeView](),
	), mcp.NewStructuredToolHandler(s.handleEditCard))

	// TOOL: add_sub_button
	s.mcpServer.AddTool(mcp.NewTool("add_sub_button",
		mcp.WithDescription("Create a child button from one of the parent's labels."),
		mcp.WithString("session_id", mcp.Required(), mcp.Description("Session ID")),
		mcp.WithString("node_id", mcp.Required(), mcp.Description("Parent button ID")),
		mcp.WithString("label", mcp.Required(), mcp.Description("One of the parent's labels")),
		mcp.WithOutputSchema[NodeView](),
	), mcp.NewStructuredToolHandler(s.handleAddSubButton))

	// TOOL: export_document
	// The document nests buttons recursively, so it is returned as text.
	s.mcpServer.AddTool(mcp.NewTool("export_document",
		mcp.WithDescription("Export the session tree as the chat menu JSON document."),
		mcp.WithString("session_id", mcp.Required(), mcp.Description("Session ID")),
	), s.handleExport)

	if s.sink != nil {
		// TOOL: publish_document
		s.mcpServer.AddTool(mcp.NewTool("publish_document",
			mcp.WithDescription("Export the session tree and hand it to the configured sink."),
			mcp.WithString("session_id", mcp.Required(), mcp.Description("Session ID")),
			mcp.WithOutputSchema[PublishResult](),
		), mcp.NewStructuredToolHandler(s.handlePublish))
	}
}

func (s *Server) handleCreateSession(ctx context.Context, _ mcp.CallToolRequest, args map[string]interface{}) (SessionResult, error) {
	var in sessionArgs
	if err := decodeArgs(args, &in); err != nil {
		return SessionResult{}, err
	}
	sid, err := s.sessions.Create(ctx, in.SessionID)
	if err != nil {
		return SessionResult{}, err
	}
	return SessionResult{SessionID: sid}, nil
}

func (s *Server) handleListRoots(ctx context.Context, _ mcp.CallToolRequest, args map[string]interface{}) (RootsResult, error) {
	var in sessionArgs
	if err := decodeArgs(args, &in); err != nil {
		return RootsResult{}, err
	}
	out := RootsResult{Roots: []NodeView{}}
	err := s.sessions.WithSession(ctx, in.SessionID, func(ed *editor.Editor) error {
		for _, n := range ed.ListRoots() {
			out.Roots = append(out.Roots, view(ed, n))
		}
		return nil
	})
	return out, err
}

// nodeResult runs fn under the session lock and returns the resulting node.
func (s *Server) nodeResult(ctx context.Context, sid string, fn func(*editor.Editor) (string, error)) (NodeView, error) {
	var out NodeView
	err := s.sessions.WithSession(ctx, sid, func(ed *editor.Editor) error {
		id, err := fn(ed)
		if err != nil {
			return err
		}
		n, err := ed.Node(id)
		if err != nil {
			return err
		}
		out = view(ed, n)
		return nil
	})
	return out, err
}

func (s *Server) handleGetButton(ctx context.Context, _ mcp.CallToolRequest, args map[string]interface{}) (NodeView, error) {
	var in nodeArgs
	if err := decodeArgs(args, &in); err != nil {
		return NodeView{}, err
	}
	return s.nodeResult(ctx, in.SessionID, func(*editor.Editor) (string, error) {
		return in.NodeID, nil
	})
}

func (s *Server) handleAddRoot(ctx context.Context, _ mcp.CallToolRequest, args map[string]interface{}) (NodeView, error) {
	var in sessionArgs
	if err := decodeArgs(args, &in); err != nil {
		return NodeView{}, err
	}
	return s.nodeResult(ctx, in.SessionID, func(ed *editor.Editor) (string, error) {
		n, err := ed.AddRootButton()
		if err != nil {
			return "", err
		}
		return n.ID, nil
	})
}

func (s *Server) handleEditButton(ctx context.Context, _ mcp.CallToolRequest, args map[string]interface{}) (NodeView, error) {
	var in editButtonArgs
	if err := decodeArgs(args, &in); err != nil {
		return NodeView{}, err
	}
	p := &in.ButtonPatch
	if err := s.clean(&p.ButtonText, &p.ReplyText, &p.TemplateID, &p.Labels, &p.TemplateParams); err != nil {
		s.logger.Warn("MCP edit_button: input rejected", "err", err)
		return NodeView{}, fmt.Errorf("input rejected: %w", err)
	}
	return s.nodeResult(ctx, in.SessionID, func(ed *editor.Editor) (string, error) {
		return in.NodeID, ed.PatchButton(in.NodeID, in.ButtonPatch)
	})
}

func (s *Server) handleAddCard(ctx context.Context, _ mcp.CallToolRequest, args map[string]interface{}) (CardResult, error) {
	var in nodeArgs
	if err := decodeArgs(args, &in); err != nil {
		return CardResult{}, err
	}
	var out CardResult
	err := s.sessions.WithSession(ctx, in.SessionID, func(ed *editor.Editor) error {
		var err error
		out.Index, err = ed.AddCarouselCard(in.NodeID)
		return err
	})
	return out, err
}

func (s *Server) handleEditCard(ctx context.Context, _ mcp.CallToolRequest, args map[string]interface{}) (NodeView, error) {
	var in editCardArgs
	if err := decodeArgs(args, &in); err != nil {
		return NodeView{}, err
	}
	index, err := cardIndex(in.Index)
	if err != nil {
		return NodeView{}, err
	}
	p := &in.CardPatch
	if err := s.clean(&p.MediaURL, &p.Params); err != nil {
		s.logger.Warn("MCP edit_carousel_card: input rejected", "err", err)
		return NodeView{}, fmt.Errorf("input rejected: %w", err)
	}
	return s.nodeResult(ctx, in.SessionID, func(ed *editor.Editor) (string, error) {
		return in.NodeID, ed.PatchCard(in.NodeID, index, in.CardPatch)
	})
}

func (s *Server) handleAddSubButton(ctx context.Context, _ mcp.CallToolRequest, args map[string]interface{}) (NodeView, error) {
	var in subButtonArgs
	if err := decodeArgs(args, &in); err != nil {
		return NodeView{}, err
	}
	return s.nodeResult(ctx, in.SessionID, func(ed *editor.Editor) (string, error) {
		n, err := ed.AddSubButtonFromLabel(in.NodeID, in.Label)
		if err != nil {
			return "", err
		}
		return n.ID, nil
	})
}

func (s *Server) handleExport(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var in sessionArgs
	if err := decodeArgs(request.GetArguments(), &in); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	doc, err := s.exportSession(ctx, in.SessionID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("export failed: %v", err)), nil
	}
	data, err := export.Marshal(doc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) handlePublish(ctx context.Context, _ mcp.CallToolRequest, args map[string]interface{}) (PublishResult, error) {
	var in sessionArgs
	if err := decodeArgs(args, &in); err != nil {
		return PublishResult{}, err
	}
	doc, err := s.exportSession(ctx, in.SessionID)
	if err != nil {
		return PublishResult{}, err
	}
	if err := s.sink.Publish(ctx, in.SessionID, doc); err != nil {
		return PublishResult{}, fmt.Errorf("publish failed: %w", err)
	}
	s.logger.Info("document published", "session_id", in.SessionID, "buttons", doc.Count())
	return PublishResult{SessionID: in.SessionID, Buttons: doc.Count()}, nil
}

// clean sanitizes every present text argument in place.
func (s *Server) clean(fields ...**string) error {
	for _, f := range fields {
		v, err := s.sanitizer.Optional(*f)
		if err != nil {
			return err
		}
		*f = v
	}
	return nil
}
