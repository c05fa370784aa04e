package tagging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEngine_Tags(t *testing.T) {
	engine := NewEngine([]Rule{
		{Tag: "AI", Keywords: []string{"Machine Learning", "LLM"}},
		{Tag: "Security", Keywords: []string{"ransomware"}},
		{Tag: "ai", Keywords: []string{"chatgpt"}},
		{Tag: "", Keywords: []string{"ignored"}},
	})

	tests := []struct {
		name  string
		title string
		text  string
		want  []string
	}{
		{"no match", "Weather today", "Sunny skies", []string{}},
		{"title match is case-insensitive", "New LLM released", "", []string{"AI"}},
		{"union in rule order", "Ransomware hits hospital", "attackers used machine learning", []string{"AI", "Security"}},
		{"duplicate tag spelling collapsed", "ChatGPT and LLM", "", []string{"AI"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, engine.Tags(tt.title, tt.text))
		})
	}
}

func TestEngine_TagsSubstringOverMatch(t *testing.T) {
	engine := NewEngine([]Rule{{Tag: "AI", Keywords: []string{"ai"}}})

	assert.Equal(t, []string{"AI"}, engine.Tags("The minister said", ""))
}

func TestMerge(t *testing.T) {
	got := Merge([]string{"Go", " go ", "Rust"}, []string{"RUST", "", "Cloud"})

	assert.Equal(t, []string{"Go", "Rust", "Cloud"}, got)
}
