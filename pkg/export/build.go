package export

import (
	"fmt"
	"math"
	"strconv"

	"github.com/aretw0/menutree/pkg/domain"
)

// Source is the read-only view of a tree the exporter needs.
// *tree.Tree satisfies it.
type Source interface {
	RootIDs() []string
	Get(id string) (*domain.Node, error)
}

const (
	wrapperStage = 0
	rootStage    = 1
)

// Build walks the tree and produces a fresh document. It never mutates the source.
// It fails with domain.ErrInvalidState if the source references missing nodes,
// revisits a node, or the stage counter would overflow.
func Build(src Source) (*Document, error) {
	rootIDs := src.RootIDs()

	b := &builder{src: src, visited: make(map[string]bool)}
	doc := &Document{
		Root: Root{
			StageID:          strconv.Itoa(wrapperStage),
			TemplateID:       "",
			StringButtonList: make([]string, 0, len(rootIDs)),
			Buttons:          make([]Button, 0, len(rootIDs)),
		},
	}

	for _, id := range rootIDs {
		node, err := src.Get(id)
		if err != nil {
			return nil, fmt.Errorf("%w: root %q: %v", domain.ErrInvalidState, id, err)
		}
		doc.Root.StringButtonList = append(doc.Root.StringButtonList, node.ButtonText)
	}

	for _, id := range rootIDs {
		btn, err := b.button(id, rootStage, "", 0)
		if err != nil {
			return nil, err
		}
		doc.Root.Buttons = append(doc.Root.Buttons, btn)
	}

	return doc, nil
}

type builder struct {
	src     Source
	visited map[string]bool
}

// button exports one node. parentButtonID is the caller's depth value ("" for roots).
func (b *builder) button(id string, stage int, parentButtonID string, depth int) (Button, error) {
	node, err := b.src.Get(id)
	if err != nil {
		return Button{}, fmt.Errorf("%w: %v", domain.ErrInvalidState, err)
	}
	if b.visited[id] {
		return Button{}, fmt.Errorf("%w: node %q reached twice", domain.ErrInvalidState, id)
	}
	b.visited[id] = true

	btn := Button{
		ButtonID:         strconv.Itoa(depth),
		StageID:          strconv.Itoa(stage),
		ButtonText:       node.ButtonText,
		ReplyText:        node.ReplyText,
		TemplateID:       node.TemplateID,
		TemplateParams:   copyStrings(node.TemplateParams),
		IsCarousel:       node.IsCarousel,
		StringButtonList: copyStrings(node.Labels),
		Buttons:          make([]Button, 0, len(node.Children)),
		ParentButtonID:   parentButtonID,
	}

	if len(node.Children) > 0 && stage == math.MaxInt {
		return Button{}, fmt.Errorf("%w: stage counter overflow below node %q", domain.ErrInvalidState, id)
	}
	for i, childID := range node.Children {
		childDepth := depth + i
		child, err := b.button(childID, stage+1, strconv.Itoa(childDepth), childDepth)
		if err != nil {
			return Button{}, err
		}
		btn.Buttons = append(btn.Buttons, child)
	}

	if node.IsCarousel {
		cards := make([]domain.CarouselCard, len(node.CarouselCards))
		for i, card := range node.CarouselCards {
			card.Params = copyStrings(card.Params)
			cards[i] = card
		}
		btn.Carousel = &Carousel{CarouselCards: cards}
	}

	return btn, nil
}

// copyStrings never returns nil so empty lists encode as [].
func copyStrings(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}
