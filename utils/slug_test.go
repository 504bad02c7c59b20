package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"Lip Tint", "lip-tint"},
		{"Rose & Gold  Palette", "rose-gold-palette"},
		{"  SPF 50+ Sunscreen ", "spf-50-sunscreen"},
		{"already-slugged", "already-slugged"},
		{"", ""},
		{"---", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, GenerateSlug(c.name), "input %q", c.name)
	}
}
