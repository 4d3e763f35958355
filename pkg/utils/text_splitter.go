package utils

import (
	"strings"
	"unicode/utf8"
)

const (
	DefaultChunkSize    = 250
	DefaultChunkOverlap = 80
)

// SplitText groups the non-blank lines of text into chunks of at most maxSize
// runes. A chunk that had to be closed seeds the next one with its last
// overlap/5 words so consecutive chunks share some context. A single line
// longer than maxSize is emitted as its own oversized chunk.
func SplitText(text string, maxSize int, overlap int) []string {
	if maxSize <= 0 {
		maxSize = DefaultChunkSize
	}
	if overlap < 0 {
		overlap = 0
	}
	overlapWords := overlap / 5

	var chunks []string
	current := ""

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if current == "" {
			current = line
			continue
		}

		lineLen := utf8.RuneCountInString(line)
		if utf8.RuneCountInString(current)+1+lineLen > maxSize {
			chunks = append(chunks, current)

			seed := tailWords(current, overlapWords, maxSize-lineLen-1)
			if seed != "" {
				current = seed + " " + line
			} else {
				current = line
			}
			continue
		}

		current += "\n" + line
	}

	if current != "" {
		chunks = append(chunks, current)
	}
	return chunks
}

// tailWords returns up to n trailing words of s, dropping words from the
// front until the result fits in budget runes.
func tailWords(s string, n int, budget int) string {
	if n <= 0 || budget <= 0 {
		return ""
	}
	words := strings.Fields(s)
	if len(words) > n {
		words = words[len(words)-n:]
	}
	for len(words) > 0 {
		seed := strings.Join(words, " ")
		if utf8.RuneCountInString(seed) <= budget {
			return seed
		}
		words = words[1:]
	}
	return ""
}
