package domain_test

import (
	"errors"
	"testing"

	"github.com/aretw0/menutree/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestParseList(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"Trim and Drop Empty", "a, , b ,b", []string{"a", "b", "b"}},
		{"Empty Input", "", []string{}},
		{"Only Separators", " , ,, ", []string{}},
		{"Single", "Yes", []string{"Yes"}},
		{"Keeps Order", "No, Yes, Maybe", []string{"No", "Yes", "Maybe"}},
		{"Inner Spaces Kept", " hello world , x", []string{"hello world", "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.ParseList(tt.raw))
		})
	}
}

func TestJoinList_RoundTrip(t *testing.T) {
	items := []string{"Yes", "No"}
	assert.Equal(t, "Yes, No", domain.JoinList(items))
	assert.Equal(t, items, domain.ParseList(domain.JoinList(items)))
}

func TestParseMediaType(t *testing.T) {
	mt, err := domain.ParseMediaType("VIDEO")
	assert.NoError(t, err)
	assert.Equal(t, domain.MediaVideo, mt)

	_, err = domain.ParseMediaType("image")
	assert.True(t, errors.Is(err, domain.ErrInvalidMediaType))
}

func TestNode_Clone(t *testing.T) {
	n := &domain.Node{
		ID:            "a",
		Labels:        []string{"x"},
		CarouselCards: []domain.CarouselCard{{MediaURL: "u", MediaType: domain.MediaImage, Params: []string{"p"}}},
	}

	c := n.Clone()
	c.Labels[0] = "changed"
	c.CarouselCards[0].Params[0] = "changed"
	c.CarouselCards[0].MediaURL = "changed"

	assert.Equal(t, "x", n.Labels[0])
	assert.Equal(t, "p", n.CarouselCards[0].Params[0])
	assert.Equal(t, "u", n.CarouselCards[0].MediaURL)
}
