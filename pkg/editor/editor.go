package editor

import (
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/aretw0/menutree/internal/logging"
	"github.com/aretw0/menutree/pkg/domain"
	"github.com/aretw0/menutree/pkg/tree"
)

// Editor translates user intent into Tree Store mutations.
// Every operation validates its input before touching the tree, so a rejected
// call leaves the tree exactly as it was.
type Editor struct {
	tree   *tree.Tree
	logger *slog.Logger
	hooks  Hooks
	now    func() time.Time
}

// Option configures the Editor.
type Option func(*Editor)

// WithLogger configures a logger for mutation traces.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Editor) {
		e.logger = logger
	}
}

// WithHooks registers observability hooks.
func WithHooks(hooks Hooks) Option {
	return func(e *Editor) {
		e.hooks = hooks
	}
}

// New creates an Editor bound to the given tree.
func New(t *tree.Tree, opts ...Option) *Editor {
	e := &Editor{
		tree:   t,
		logger: logging.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Tree returns the underlying store.
func (e *Editor) Tree() *tree.Tree {
	return e.tree
}

// ListRoots returns copies of the root nodes in display order.
func (e *Editor) ListRoots() []*domain.Node {
	roots := e.tree.Roots()
	out := make([]*domain.Node, len(roots))
	for i, n := range roots {
		out[i] = n.Clone()
	}
	return out
}

// Node returns a copy of a single node.
func (e *Editor) Node(id string) (*domain.Node, error) {
	n, err := e.tree.Get(id)
	if err != nil {
		return nil, err
	}
	return n.Clone(), nil
}

// AddRootButton creates an empty node and appends it to the root list.
func (e *Editor) AddRootButton() (*domain.Node, error) {
	node, err := e.tree.CreateNode(tree.NodeParams{})
	if err != nil {
		return nil, e.reject(OpAddRoot, "", err)
	}
	if err := e.tree.AttachAsRoot(node.ID); err != nil {
		return nil, e.reject(OpAddRoot, node.ID, err)
	}

	e.logger.Debug("root button created", "node_id", node.ID)
	e.applied(OpAddRoot, node.ID)
	return node.Clone(), nil
}

// CanAddSubButton reports whether the node offers at least one label to build a child from.
func (e *Editor) CanAddSubButton(id string) (bool, error) {
	node, err := e.tree.Get(id)
	if err != nil {
		return false, err
	}
	return len(node.Labels) > 0, nil
}

// AddSubButtonFromLabel creates a child of parentID whose text is one of the parent's labels.
func (e *Editor) AddSubButtonFromLabel(parentID, label string) (*domain.Node, error) {
	parent, err := e.tree.Get(parentID)
	if err != nil {
		return nil, e.reject(OpAddSubButton, parentID, err)
	}
	if len(parent.Labels) == 0 {
		return nil, e.reject(OpAddSubButton, parentID, fmt.Errorf("%w: node %q has no labels", domain.ErrUnavailable, parentID))
	}
	if !slices.Contains(parent.Labels, label) {
		return nil, e.reject(OpAddSubButton, parentID, fmt.Errorf("%w: label %q is not offered by node %q", domain.ErrUnavailable, label, parentID))
	}

	child, err := e.tree.CreateNode(tree.NodeParams{ButtonText: label, ParentID: parentID})
	if err != nil {
		return nil, e.reject(OpAddSubButton, parentID, err)
	}
	if err := e.tree.AttachAsChild(parentID, child.ID); err != nil {
		return nil, e.reject(OpAddSubButton, parentID, err)
	}

	e.logger.Debug("sub button created", "node_id", child.ID, "parent_id", parentID, "label", label)
	e.applied(OpAddSubButton, child.ID)
	return child.Clone(), nil
}

// SetButtonText overwrites the display label. Empty is legal.
func (e *Editor) SetButtonText(id, text string) error {
	return e.mutate(OpSetButtonText, id, func(n *domain.Node) error {
		n.ButtonText = text
		return nil
	})
}

// SetReplyText overwrites the reply content.
func (e *Editor) SetReplyText(id, text string) error {
	return e.mutate(OpSetReplyText, id, func(n *domain.Node) error {
		n.ReplyText = text
		return nil
	})
}

// SetTemplateID overwrites the template binding. The identifier is not validated.
func (e *Editor) SetTemplateID(id, templateID string) error {
	return e.mutate(OpSetTemplateID, id, func(n *domain.Node) error {
		n.TemplateID = templateID
		return nil
	})
}

// SetLabels replaces the labels from a comma-separated edit field.
func (e *Editor) SetLabels(id, raw string) error {
	return e.mutate(OpSetLabels, id, func(n *domain.Node) error {
		n.Labels = domain.ParseList(raw)
		return nil
	})
}

// SetTemplateParams replaces the template params from a comma-separated edit field.
func (e *Editor) SetTemplateParams(id, raw string) error {
	return e.mutate(OpSetParams, id, func(n *domain.Node) error {
		n.TemplateParams = domain.ParseList(raw)
		return nil
	})
}

// SetCarousel toggles the carousel flag. Existing cards are kept when turned off.
func (e *Editor) SetCarousel(id string, on bool) error {
	return e.mutate(OpSetCarousel, id, func(n *domain.Node) error {
		n.IsCarousel = on
		return nil
	})
}

// AddCarouselCard appends a blank IMAGE card and returns its index.
func (e *Editor) AddCarouselCard(id string) (int, error) {
	index := -1
	err := e.mutate(OpAddCard, id, func(n *domain.Node) error {
		n.CarouselCards = append(n.CarouselCards, domain.NewCarouselCard())
		index = len(n.CarouselCards) - 1
		return nil
	})
	return index, err
}

// SetCardMediaURL updates the media URL of the card at index.
func (e *Editor) SetCardMediaURL(id string, index int, url string) error {
	return e.mutateCard(OpSetCardURL, id, index, func(c *domain.CarouselCard) error {
		c.MediaURL = url
		return nil
	})
}

// SetCardMediaType updates the media type of the card at index.
func (e *Editor) SetCardMediaType(id string, index int, mediaType domain.MediaType) error {
	if _, err := domain.ParseMediaType(string(mediaType)); err != nil {
		return e.reject(OpSetCardType, id, err)
	}
	return e.mutateCard(OpSetCardType, id, index, func(c *domain.CarouselCard) error {
		c.MediaType = mediaType
		return nil
	})
}

// SetCardParams replaces the params of the card at index from a comma-separated edit field.
func (e *Editor) SetCardParams(id string, index int, raw string) error {
	return e.mutateCard(OpSetCardParams, id, index, func(c *domain.CarouselCard) error {
		c.Params = domain.ParseList(raw)
		return nil
	})
}

// Title returns the heading shown for a node: its text (or "Unnamed") and, for
// children, the parent's text.
func (e *Editor) Title(id string) (string, error) {
	node, err := e.tree.Get(id)
	if err != nil {
		return "", err
	}
	title := displayText(node)
	if node.ParentID != "" {
		if parent, err := e.tree.Get(node.ParentID); err == nil {
			title += fmt.Sprintf(" (Parent: %s)", displayText(parent))
		}
	}
	return title, nil
}

func displayText(n *domain.Node) string {
	if n.ButtonText == "" {
		return "Unnamed"
	}
	return n.ButtonText
}

func (e *Editor) mutate(op Operation, id string, fn func(*domain.Node) error) error {
	node, err := e.tree.Get(id)
	if err != nil {
		return e.reject(op, id, err)
	}
	if err := fn(node); err != nil {
		return e.reject(op, id, err)
	}

	e.logger.Debug("button updated", "op", op, "node_id", id)
	e.applied(op, id)
	return nil
}

// mutateCard resolves the card index inside the same call that edits it.
// Indices must never be cached across operations.
func (e *Editor) mutateCard(op Operation, id string, index int, fn func(*domain.CarouselCard) error) error {
	return e.mutate(op, id, func(n *domain.Node) error {
		if err := checkCard(n, index); err != nil {
			return err
		}
		return fn(&n.CarouselCards[index])
	})
}

func checkCard(n *domain.Node, index int) error {
	if index < 0 || index >= len(n.CarouselCards) {
		return fmt.Errorf("%w: index %d, node %q has %d cards", domain.ErrIndexOutOfRange, index, n.ID, len(n.CarouselCards))
	}
	return nil
}

func (e *Editor) applied(op Operation, id string) {
	if e.hooks.OnMutation != nil {
		e.hooks.OnMutation(&MutationEvent{
			Timestamp: e.now(),
			Op:        op,
			NodeID:    id,
			NodeCount: e.tree.Len(),
		})
	}
}

func (e *Editor) reject(op Operation, id string, err error) error {
	e.logger.Warn("mutation rejected", "op", op, "node_id", id, "err", err)
	if e.hooks.OnRejected != nil {
		e.hooks.OnRejected(op, id, err)
	}
	return err
}
