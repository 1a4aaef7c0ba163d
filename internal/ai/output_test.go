package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractJSON(t *testing.T) {
	cases := []struct {
		name   string
		input  string
		expect string
	}{
		{"bare json untouched", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"plain fence", "```\n[1,2,3]\n```", `[1,2,3]`},
		{"surrounding whitespace", "  \n```json\n{\"a\": 1}\n```\n  ", `{"a": 1}`},
		{"unclosed fence left alone", "```json\n{\"a\":1}", "```json\n{\"a\":1}"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, ExtractJSON(tc.input))
		})
	}
}

func TestParseLines(t *testing.T) {
	input := "- first suggestion\n\n2. second suggestion\n* third\n   \n• fourth"
	assert.Equal(t, []string{
		"first suggestion",
		"second suggestion",
		"third",
		"fourth",
	}, ParseLines(input))
}

func TestParseLines_Empty(t *testing.T) {
	assert.Empty(t, ParseLines("\n  \n"))
}

func TestTitleWords(t *testing.T) {
	assert.Equal(t, "Pain Point", titleWords("pain point"))
	assert.Equal(t, "Certainty", titleWords("certainty"))
}
