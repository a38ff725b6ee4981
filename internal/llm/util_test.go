package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock_Variants(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bare json", `{"a": 1}`, `{"a": 1}`},
		{"json fence", "```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"plain fence", "```\n{\"a\": 1}\n```", `{"a": 1}`},
		{"fence with payload on fence line", "```{\"a\": 1}```", `{"a": 1}`},
		{"single line json fence", "```json{\"a\": 1}```", `{"a": 1}`},
		{"surrounding whitespace", "  \n```json\n{\"a\": 1}\n```\n  ", `{"a": 1}`},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanJSONBlock(tt.input))
		})
	}
}

func TestCleanJSONBlock_PreservesInnerFences(t *testing.T) {
	input := "```json\n{\"snippet\": \"use \\\"code\\\" here\"}\n```"
	assert.Equal(t, `{"snippet": "use \"code\" here"}`, CleanJSONBlock(input))
}
