package domain

import "fmt"

// MediaType identifies the media referenced by a carousel card.
type MediaType string

const (
	MediaImage MediaType = "IMAGE"
	MediaVideo MediaType = "VIDEO"
)

// ParseMediaType validates a raw media type string.
func ParseMediaType(s string) (MediaType, error) {
	switch MediaType(s) {
	case MediaImage, MediaVideo:
		return MediaType(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidMediaType, s)
}

// CarouselCard is a single media item shown in a carousel.
type CarouselCard struct {
	MediaURL  string    `json:"mediaUrl" yaml:"mediaUrl"`
	MediaType MediaType `json:"mediaType" yaml:"mediaType"`
	Params    []string  `json:"params" yaml:"params"`
}

// NewCarouselCard returns the blank card appended by the editor.
func NewCarouselCard() CarouselCard {
	return CarouselCard{MediaType: MediaImage, Params: []string{}}
}

// Node represents one menu button.
// ID, ParentID and Children are owned by the tree store; everything else is
// editable through the editor.
type Node struct {
	ID         string `json:"id"`
	ButtonText string `json:"buttonText"`
	ReplyText  string `json:"replyText"`

	// Labels are offered as raw material for new child buttons.
	Labels []string `json:"labels"`

	// Children holds child IDs in display/export order.
	Children []string `json:"children"`

	// ParentID is a weak back-reference used for display only. Empty for roots.
	ParentID string `json:"parentId,omitempty"`

	TemplateID     string   `json:"templateId"`
	TemplateParams []string `json:"templateParams"`

	// CarouselCards persist while IsCarousel is false but are not exported.
	IsCarousel    bool           `json:"isCarousel"`
	CarouselCards []CarouselCard `json:"carouselCards"`
}

// IsRoot reports whether the node has no parent.
func (n *Node) IsRoot() bool {
	return n.ParentID == ""
}

// Clone returns a deep copy so callers can't mutate store state through the pointer.
func (n *Node) Clone() *Node {
	c := *n
	c.Labels = cloneStrings(n.Labels)
	c.Children = cloneStrings(n.Children)
	c.TemplateParams = cloneStrings(n.TemplateParams)
	c.CarouselCards = make([]CarouselCard, len(n.CarouselCards))
	for i, card := range n.CarouselCards {
		card.Params = cloneStrings(card.Params)
		c.CarouselCards[i] = card
	}
	return &c
}

func cloneStrings(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}
