package editor

import "github.com/aretw0/menutree/pkg/domain"

// ButtonPatch lists the button fields to overwrite. Nil fields are left alone.
// Labels and TemplateParams are raw comma separated strings.
type ButtonPatch struct {
	ButtonText     *string `json:"buttonText,omitempty" mapstructure:"button_text"`
	ReplyText      *string `json:"replyText,omitempty" mapstructure:"reply_text"`
	TemplateID     *string `json:"templateId,omitempty" mapstructure:"template_id"`
	Labels         *string `json:"labels,omitempty" mapstructure:"labels"`
	TemplateParams *string `json:"templateParams,omitempty" mapstructure:"template_params"`
	IsCarousel     *bool   `json:"isCarousel,omitempty" mapstructure:"is_carousel"`
}

// CardPatch lists the card fields to overwrite. Nil fields are left alone.
type CardPatch struct {
	MediaURL  *string `json:"mediaUrl,omitempty" mapstructure:"media_url"`
	MediaType *string `json:"mediaType,omitempty" mapstructure:"media_type"`
	Params    *string `json:"params,omitempty" mapstructure:"params"`
}

// PatchButton applies every present field in a fixed order.
// The node is resolved first, so a missing node leaves the tree untouched.
func (e *Editor) PatchButton(id string, p ButtonPatch) error {
	if _, err := e.tree.Get(id); err != nil {
		return e.reject(OpSetButtonText, id, err)
	}

	steps := []struct {
		present bool
		apply   func() error
	}{
		{p.ButtonText != nil, func() error { return e.SetButtonText(id, *p.ButtonText) }},
		{p.ReplyText != nil, func() error { return e.SetReplyText(id, *p.ReplyText) }},
		{p.TemplateID != nil, func() error { return e.SetTemplateID(id, *p.TemplateID) }},
		{p.Labels != nil, func() error { return e.SetLabels(id, *p.Labels) }},
		{p.TemplateParams != nil, func() error { return e.SetTemplateParams(id, *p.TemplateParams) }},
		{p.IsCarousel != nil, func() error { return e.SetCarousel(id, *p.IsCarousel) }},
	}
	for _, st := range steps {
		if !st.present {
			continue
		}
		if err := st.apply(); err != nil {
			return err
		}
	}
	return nil
}

// PatchCard applies every present card field. The node, the index and the media
// type are all checked before the first write.
func (e *Editor) PatchCard(id string, index int, p CardPatch) error {
	var mediaType domain.MediaType
	if p.MediaType != nil {
		mt, err := domain.ParseMediaType(*p.MediaType)
		if err != nil {
			return e.reject(OpSetCardType, id, err)
		}
		mediaType = mt
	}

	node, err := e.tree.Get(id)
	if err != nil {
		return e.reject(OpSetCardURL, id, err)
	}
	if err := checkCard(node, index); err != nil {
		return e.reject(OpSetCardURL, id, err)
	}

	if p.MediaURL != nil {
		if err := e.SetCardMediaURL(id, index, *p.MediaURL); err != nil {
			return err
		}
	}
	if p.MediaType != nil {
		if err := e.SetCardMediaType(id, index, mediaType); err != nil {
			return err
		}
	}
	if p.Params != nil {
		return e.SetCardParams(id, index, *p.Params)
	}
	return nil
}
