package utils

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestSplitText(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		maxSize  int
		overlap  int
		expected []string
	}{
		{
			name:     "empty input",
			text:     "",
			maxSize:  250,
			overlap:  80,
			expected: nil,
		},
		{
			name:     "only blank lines",
			text:     "\n   \n\t\n",
			maxSize:  250,
			overlap:  80,
			expected: nil,
		},
		{
			name:     "short lines merge into one chunk",
			text:     "Laptop HP\n\nPrecio 2500\nStock 3",
			maxSize:  250,
			overlap:  80,
			expected: []string{"Laptop HP\nPrecio 2500\nStock 3"},
		},
		{
			name:     "overlap seed is trimmed to respect the bound",
			text:     "aaa bbb\nccc ddd\neee",
			maxSize:  10,
			overlap:  5,
			expected: []string{"aaa bbb", "ccc ddd", "ddd eee"},
		},
		{
			name:     "no overlap below five",
			text:     "aaa bbb\nccc ddd",
			maxSize:  10,
			overlap:  4,
			expected: []string{"aaa bbb", "ccc ddd"},
		},
		{
			name:     "single over-long line is kept whole",
			text:     "short\n" + strings.Repeat("x", 30),
			maxSize:  10,
			overlap:  80,
			expected: []string{"short", strings.Repeat("x", 30)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SplitText(tt.text, tt.maxSize, tt.overlap))
		})
	}
}

func TestSplitText_RespectsBound(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 200; i++ {
		b.WriteString("Monitor Samsung 24 pulgadas precio económico línea ")
		b.WriteString(strings.Repeat("ñ", i%7))
		b.WriteString("\n")
	}

	chunks := SplitText(b.String(), 120, 80)
	assert.NotEmpty(t, chunks)
	for _, c := range chunks {
		assert.LessOrEqual(t, utf8.RuneCountInString(c), 120)
		assert.NotEmpty(t, strings.TrimSpace(c))
	}
}

func TestSplitText_OverlapRemovedRestoresLines(t *testing.T) {
	var b strings.Builder
	var want []string
	for i := 0; i < 40; i++ {
		line := fmt.Sprintf("producto%02d precio%02d stock%02d", i, i, i)
		want = append(want, line)
		b.WriteString("  " + line + "\t\n")
		if i%3 == 0 {
			b.WriteString("\n   \n")
		}
	}

	chunks := SplitText(b.String(), 60, 10)
	assert.Greater(t, len(chunks), 2)

	var got []string
	seeded := 0
	for k, chunk := range chunks {
		lines := strings.Split(chunk, "\n")
		if k > 0 {
			prev := map[string]bool{}
			for _, w := range strings.Fields(chunks[k-1]) {
				prev[w] = true
			}
			words := strings.Fields(lines[0])
			n := 0
			for n < len(words) && prev[words[n]] {
				n++
			}
			if n > 0 {
				seeded++
			}
			lines[0] = strings.Join(words[n:], " ")
		}
		got = append(got, lines...)
	}

	assert.Positive(t, seeded)
	assert.Equal(t, want, got)
}
