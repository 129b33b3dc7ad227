package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlainText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "bold and heading and underscores",
			input: "**Hello** #World ___test___",
			want:  "Hello World test",
		},
		{
			name:  "plain text untouched",
			input: "Namaskaram, water the paddy in the morning.",
			want:  "Namaskaram, water the paddy in the morning.",
		},
		{
			name:  "code fences removed",
			input: "```\nplant rice\n```",
			want:  "plant rice",
		},
		{
			name:  "heading marker mid line",
			input: "Advice ## for today",
			want:  "Advice for today",
		},
		{
			name:  "triple newlines collapsed",
			input: "line one\n\n\n\nline two",
			want:  "line one\n\nline two",
		},
		{
			name:  "surrounding whitespace trimmed",
			input: "  \n*answer*\n ",
			want:  "answer",
		},
		{
			name:  "single underscore kept",
			input: "soil_moisture is low",
			want:  "soil_moisture is low",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PlainText(tt.input))
		})
	}
}
