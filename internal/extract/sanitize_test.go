package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLines(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected []string
	}{
		{
			name: "fenced response with prose",
			raw: "Here is my annotation:\n```\nT1\tMajorClaim 0 10\tSome claim\nA1\tStance T2 For\n```\nLet me know if you need anything else!",
			expected: []string{
				"T1\tMajorClaim 0 10\tSome claim",
				"A1\tStance T2 For",
			},
		},
		{
			name:     "fence with language tag",
			raw:      "```text\nR1\tsupports Arg1:T2 Arg2:T1\n```",
			expected: []string{"R1\tsupports Arg1:T2 Arg2:T1"},
		},
		{
			name:     "blank lines dropped",
			raw:      "T1\tClaim 0 4\ttext\n\n\nT2\tPremise 5 9\tmore",
			expected: []string{"T1\tClaim 0 4\ttext", "T2\tPremise 5 9\tmore"},
		},
		{
			name:     "windows line endings",
			raw:      "T1\tClaim 0 4\ttext\r\nA1\tStance T1 Against\r\n",
			expected: []string{"T1\tClaim 0 4\ttext", "A1\tStance T1 Against"},
		},
		{
			name:     "indented lines trimmed",
			raw:      "  T1\tClaim 0 4\ttext  ",
			expected: []string{"T1\tClaim 0 4\ttext"},
		},
		{
			name:     "empty response",
			raw:      "",
			expected: nil,
		},
		{
			name:     "whitespace only",
			raw:      "   \n\t\n  ",
			expected: nil,
		},
		{
			name:     "pure prose",
			raw:      "I could not find any argument components in this essay.",
			expected: nil,
		},
		{
			name:     "prose starting with marker letter survives",
			raw:      "The essay argues two things\nAnother line of prose\nT1\tClaim 0 4\ttext",
			expected: []string{"The essay argues two things", "Another line of prose", "T1\tClaim 0 4\ttext"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Lines(tt.raw))
		})
	}
}
