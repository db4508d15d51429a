package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripHTML(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"plain text", "plain text"},
		{"<p>Hello <b>world</b></p>", "Hello world"},
		{"<div><h1>Title</h1><p>Body text</p></div>", "TitleBody text"},
		{"a < b and b > c", "a < b and b > c"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, StripHTML(tc.in), "input: %q", tc.in)
	}
}

func TestParseTruthy(t *testing.T) {
	for _, s := range []string{"1", "true", "TRUE", "yes", "Y", " y "} {
		assert.True(t, ParseTruthy(s), "input: %q", s)
	}
	for _, s := range []string{"", "0", "false", "no", "nope", "2"} {
		assert.False(t, ParseTruthy(s), "input: %q", s)
	}
}
