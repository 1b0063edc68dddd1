package export

import "github.com/aretw0/menutree/pkg/domain"

// Document is the top-level exported artifact.
type Document struct {
	Root Root `json:"root"`
}

// Root wraps the root buttons.
type Root struct {
	StageID          string   `json:"stageId"`
	TemplateID       string   `json:"templateId"`
	StringButtonList []string `json:"stringButtonList"`
	Buttons          []Button `json:"buttons"`
}

// Button is one exported node. Field order matches the wire format.
// ParentButtonID is empty, and omitted, for root buttons.
type Button struct {
	ButtonID         string    `json:"buttonId"`
	StageID          string    `json:"stageId"`
	ButtonText       string    `json:"buttonText"`
	ReplyText        string    `json:"replyText"`
	TemplateID       string    `json:"templateId"`
	TemplateParams   []string  `json:"templateParams"`
	IsCarousel       bool      `json:"isCarousel"`
	StringButtonList []string  `json:"stringButtonList"`
	Buttons          []Button  `json:"buttons"`
	Carousel         *Carousel `json:"carousel,omitempty"`
	ParentButtonID   string    `json:"parentButtonId,omitempty"`
}

// Carousel holds the cards of a carousel-enabled button.
type Carousel struct {
	CarouselCards []domain.CarouselCard `json:"carouselCards"`
}

// Count returns the number of buttons in the document.
func (d *Document) Count() int {
	n := 0
	var walk func([]Button)
	walk = func(bs []Button) {
		for _, b := range bs {
			n++
			walk(b.Buttons)
		}
	}
	walk(d.Root.Buttons)
	return n
}
