package tree

import (
	"fmt"

	"github.com/aretw0/menutree/pkg/domain"
)

// NodeParams holds the initial field values of a new node.
type NodeParams struct {
	ButtonText string
	ReplyText  string
	Labels     []string
	ParentID   string
}

// Tree owns all nodes of one editing session.
type Tree struct {
	nodes    map[string]*domain.Node
	roots    []string
	attached map[string]bool
	newID    IDGenerator
}

// Option configures the Tree.
type Option func(*Tree)

// WithIDGenerator overrides the default UUID generator.
func WithIDGenerator(gen IDGenerator) Option {
	return func(t *Tree) {
		t.newID = gen
	}
}

// New creates an empty tree.
func New(opts ...Option) *Tree {
	t := &Tree{
		nodes:    make(map[string]*domain.Node),
		roots:    []string{},
		attached: make(map[string]bool),
		newID:    UUIDGenerator(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// CreateNode allocates a node with a fresh ID and the given initial values.
// The node is not attached anywhere; attaching it is the caller's job.
func (t *Tree) CreateNode(p NodeParams) (*domain.Node, error) {
	id, err := t.newID()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrResourceExhausted, err)
	}
	if _, exists := t.nodes[id]; exists || id == "" {
		return nil, fmt.Errorf("%w: generator returned reused id %q", domain.ErrResourceExhausted, id)
	}

	labels := make([]string, len(p.Labels))
	copy(labels, p.Labels)

	node := &domain.Node{
		ID:             id,
		ButtonText:     p.ButtonText,
		ReplyText:      p.ReplyText,
		Labels:         labels,
		Children:       []string{},
		ParentID:       p.ParentID,
		TemplateParams: []string{},
		CarouselCards:  []domain.CarouselCard{},
	}
	t.nodes[id] = node
	return node, nil
}

// Get returns the live node for id.
func (t *Tree) Get(id string) (*domain.Node, error) {
	node, ok := t.nodes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrNotFound, id)
	}
	return node, nil
}

// AttachAsRoot appends id to the root list.
// Attaching a node twice is a programming error and is rejected before any mutation.
func (t *Tree) AttachAsRoot(id string) error {
	node, err := t.Get(id)
	if err != nil {
		return err
	}
	if t.attached[id] {
		return fmt.Errorf("%w: node %q is already attached", domain.ErrInvalidState, id)
	}
	if node.ParentID != "" {
		return fmt.Errorf("%w: node %q has parent %q and cannot be a root", domain.ErrInvalidState, id, node.ParentID)
	}

	t.roots = append(t.roots, id)
	t.attached[id] = true
	return nil
}

// AttachAsChild appends childID to the parent's children and sets the child's ParentID.
func (t *Tree) AttachAsChild(parentID, childID string) error {
	parent, err := t.Get(parentID)
	if err != nil {
		return err
	}
	child, err := t.Get(childID)
	if err != nil {
		return err
	}
	if t.attached[childID] {
		return fmt.Errorf("%w: node %q is already attached", domain.ErrInvalidState, childID)
	}
	if parentID == childID {
		return fmt.Errorf("%w: node %q cannot be its own child", domain.ErrInvalidState, childID)
	}

	parent.Children = append(parent.Children, childID)
	child.ParentID = parentID
	t.attached[childID] = true
	return nil
}

// RootIDs returns a copy of the ordered root IDs.
func (t *Tree) RootIDs() []string {
	out := make([]string, len(t.roots))
	copy(out, t.roots)
	return out
}

// Roots returns the root nodes in order.
func (t *Tree) Roots() []*domain.Node {
	out := make([]*domain.Node, 0, len(t.roots))
	for _, id := range t.roots {
		if node, ok := t.nodes[id]; ok {
			out = append(out, node)
		}
	}
	return out
}

// Len returns the number of nodes ever created.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// IDs returns every node ID in pre-order (roots first, then their descendants).
// Nodes that were created but never attached are appended at the end in no particular order.
func (t *Tree) IDs() []string {
	out := make([]string, 0, len(t.nodes))
	seen := make(map[string]bool, len(t.nodes))
	var walk func(id string)
	walk = func(id string) {
		if seen[id] {
			return
		}
		node, ok := t.nodes[id]
		if !ok {
			return
		}
		seen[id] = true
		out = append(out, id)
		for _, c := range node.Children {
			walk(c)
		}
	}
	for _, id := range t.roots {
		walk(id)
	}
	for id := range t.nodes {
		if !seen[id] {
			out = append(out, id)
		}
	}
	return out
}

// Validate checks the structural invariants of the tree.
func (t *Tree) Validate() error {
	owners := make(map[string]string, len(t.nodes))

	for _, id := range t.roots {
		node, ok := t.nodes[id]
		if !ok {
			return fmt.Errorf("%w: root %q does not exist", domain.ErrInvalidState, id)
		}
		if node.ParentID != "" {
			return fmt.Errorf("%w: root %q has parent %q", domain.ErrInvalidState, id, node.ParentID)
		}
		if _, dup := owners[id]; dup {
			return fmt.Errorf("%w: root %q listed twice", domain.ErrInvalidState, id)
		}
		owners[id] = ""
	}

	for id, node := range t.nodes {
		for _, childID := range node.Children {
			child, ok := t.nodes[childID]
			if !ok {
				return fmt.Errorf("%w: child %q of %q does not exist", domain.ErrInvalidState, childID, id)
			}
			if _, dup := owners[childID]; dup {
				return fmt.Errorf("%w: node %q has more than one owner", domain.ErrInvalidState, childID)
			}
			if child.ParentID != id {
				return fmt.Errorf("%w: node %q points to parent %q but is listed under %q", domain.ErrInvalidState, childID, child.ParentID, id)
			}
			owners[childID] = id
		}
	}

	for id := range t.nodes {
		if _, ok := owners[id]; !ok {
			return fmt.Errorf("%w: node %q is not attached", domain.ErrInvalidState, id)
		}
	}

	// Every node has exactly one owner; a cycle would leave some unreachable from the roots.
	if reachable := t.reachable(); reachable != len(t.nodes) {
		return fmt.Errorf("%w: %d of %d nodes reachable from roots", domain.ErrInvalidState, reachable, len(t.nodes))
	}
	return nil
}

func (t *Tree) reachable() int {
	seen := make(map[string]bool, len(t.nodes))
	stack := t.RootIDs()
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[id] {
			continue
		}
		seen[id] = true
		if node, ok := t.nodes[id]; ok {
			stack = append(stack, node.Children...)
		}
	}
	return len(seen)
}
