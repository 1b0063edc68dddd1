// Package outline builds a menu tree from a YAML outline.
//
// An outline is applied strictly through the editor, one operation per field,
// so an outline can never produce a tree the editor could not.
//
//	buttons:
//	  - text: Start
//	    reply: Welcome
//	    labels: "Yes, No"
//	    template: { id: tpl1, params: "a, b" }
//	    carousel:
//	      - { url: https://cdn.example.com/1.png, type: IMAGE, params: "p1" }
//	    children:
//	      - label: "Yes"
//	        reply: Great
package outline

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/menutree/pkg/domain"
	"github.com/aretw0/menutree/pkg/editor"
	"gopkg.in/yaml.v3"
)

// Outline is the document root.
type Outline struct {
	Buttons []Button `yaml:"buttons"`
}

// Button describes one node. Roots use Text; children use Label, which must be
// one of the parent's labels, and may override the resulting text with Text.
type Button struct {
	Label    string    `yaml:"label,omitempty"`
	Text     string    `yaml:"text,omitempty"`
	Reply    string    `yaml:"reply,omitempty"`
	Labels   string    `yaml:"labels,omitempty"`
	Template *Template `yaml:"template,omitempty"`
	Carousel []Card    `yaml:"carousel,omitempty"`
	Children []Button  `yaml:"children,omitempty"`
}

type Template struct {
	ID     string `yaml:"id"`
	Params string `yaml:"params,omitempty"`
}

type Card struct {
	URL    string `yaml:"url"`
	Type   string `yaml:"type,omitempty"`
	Params string `yaml:"params,omitempty"`
}

// Error locates a failed outline entry, e.g. "buttons[0].children[1]".
type Error struct {
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("outline %s: %v", e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Parse decodes an outline. Unknown fields are rejected.
func Parse(r io.Reader) (*Outline, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var o Outline
	if err := dec.Decode(&o); err != nil {
		if errors.Is(err, io.EOF) {
			return &o, nil
		}
		return nil, fmt.Errorf("failed to parse outline: %w", err)
	}
	return &o, nil
}

// ParseBytes decodes an outline held in memory.
func ParseBytes(data []byte) (*Outline, error) {
	return Parse(bytes.NewReader(data))
}

// Load reads and decodes an outline file.
func Load(path string) (*Outline, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Apply replays the outline on ed. Roots are appended after any existing ones.
// Apply stops at the first failing entry; the tree keeps what was built so far.
func Apply(ed *editor.Editor, o *Outline) error {
	for i := range o.Buttons {
		b := &o.Buttons[i]
		path := fmt.Sprintf("buttons[%d]", i)
		if b.Label != "" {
			return &Error{Path: path, Err: fmt.Errorf("%w: root buttons take text, not label", domain.ErrUnavailable)}
		}

		node, err := ed.AddRootButton()
		if err != nil {
			return &Error{Path: path, Err: err}
		}
		if err := fill(ed, node.ID, b, path); err != nil {
			return err
		}
	}
	return nil
}

func fill(ed *editor.Editor, id string, b *Button, path string) error {
	wrap := func(err error) error {
		if err == nil {
			return nil
		}
		return &Error{Path: path, Err: err}
	}

	if b.Text != "" {
		if err := ed.SetButtonText(id, b.Text); err != nil {
			return wrap(err)
		}
	}
	if b.Reply != "" {
		if err := ed.SetReplyText(id, b.Reply); err != nil {
			return wrap(err)
		}
	}
	if b.Labels != "" {
		if err := ed.SetLabels(id, b.Labels); err != nil {
			return wrap(err)
		}
	}
	if t := b.Template; t != nil {
		if err := ed.SetTemplateID(id, t.ID); err != nil {
			return wrap(err)
		}
		if err := ed.SetTemplateParams(id, t.Params); err != nil {
			return wrap(err)
		}
	}

	if len(b.Carousel) > 0 {
		if err := ed.SetCarousel(id, true); err != nil {
			return wrap(err)
		}
		for j, c := range b.Carousel {
			if err := addCard(ed, id, c); err != nil {
				return &Error{Path: fmt.Sprintf("%s.carousel[%d]", path, j), Err: err}
			}
		}
	}

	for j := range b.Children {
		child := &b.Children[j]
		childPath := fmt.Sprintf("%s.children[%d]", path, j)

		node, err := ed.AddSubButtonFromLabel(id, child.Label)
		if err != nil {
			return &Error{Path: childPath, Err: err}
		}
		if err := fill(ed, node.ID, child, childPath); err != nil {
			return err
		}
	}
	return nil
}

func addCard(ed *editor.Editor, id string, c Card) error {
	idx, err := ed.AddCarouselCard(id)
	if err != nil {
		return err
	}
	if err := ed.SetCardMediaURL(id, idx, c.URL); err != nil {
		return err
	}
	if c.Type != "" {
		mt, err := domain.ParseMediaType(c.Type)
		if err != nil {
			return err
		}
		if err := ed.SetCardMediaType(id, idx, mt); err != nil {
			return err
		}
	}
	if c.Params != "" {
		return ed.SetCardParams(id, idx, c.Params)
	}
	return nil
}

// Clean passes every text field of the outline through fn and stores the result.
// Fields that fn rejects are reported with their outline path.
func Clean(o *Outline, fn func(string) (string, error)) error {
	for i := range o.Buttons {
		if err := cleanButton(&o.Buttons[i], fmt.Sprintf("buttons[%d]", i), fn); err != nil {
			return err
		}
	}
	return nil
}

func cleanButton(b *Button, path string, fn func(string) (string, error)) error {
	fields := []*string{&b.Label, &b.Text, &b.Reply, &b.Labels}
	if b.Template != nil {
		fields = append(fields, &b.Template.ID, &b.Template.Params)
	}
	for _, f := range fields {
		v, err := fn(*f)
		if err != nil {
			return &Error{Path: path, Err: err}
		}
		*f = v
	}

	for j := range b.Carousel {
		c := &b.Carousel[j]
		for _, f := range []*string{&c.URL, &c.Type, &c.Params} {
			v, err := fn(*f)
			if err != nil {
				return &Error{Path: fmt.Sprintf("%s.carousel[%d]", path, j), Err: err}
			}
			*f = v
		}
	}

	for j := range b.Children {
		if err := cleanButton(&b.Children[j], fmt.Sprintf("%s.children[%d]", path, j), fn); err != nil {
			return err
		}
	}
	return nil
}
