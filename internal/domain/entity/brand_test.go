package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"简单名称", "Acme", "acme"},
		{"带空格", "Acme Speelgoed", "acme-speelgoed"},
		{"特殊字符", "Café & Co!", "caf-co"},
		{"首尾空白", "  Acme  ", "acme"},
		{"连续分隔符", "A --- B", "a-b"},
		{"空字符串", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.input))
		})
	}
}

func TestNewBrand(t *testing.T) {
	brand := NewBrand("Acme Speelgoed", "Speelgoedwinkel", "Wees speels", "Informeel")

	assert.NotEqual(t, [16]byte{}, [16]byte(brand.ID))
	assert.Equal(t, "acme-speelgoed", brand.Slug)
	assert.True(t, brand.IsActive)
	assert.False(t, brand.CreatedAt.IsZero())
}

func TestHasStyleHints(t *testing.T) {
	assert.False(t, (*Brand)(nil).HasStyleHints())
	assert.False(t, (&Brand{}).HasStyleHints())
	assert.True(t, (&Brand{BrandGuidelines: "x"}).HasStyleHints())
	assert.True(t, (&Brand{ToneOfVoice: "x"}).HasStyleHints())
}
