package assistantService

import (
	"strings"
	"unicode"
)

const (
	chunkSize    = 500
	chunkOverlap = 50
)

// splitText cuts text into pieces of at most size runes, each starting
// overlap runes before the end of the previous one. Cuts prefer the last
// whitespace inside the window so words stay whole.
func splitText(text string, size, overlap int) []string {
	runes := []rune(strings.TrimSpace(text))
	if len(runes) == 0 {
		return nil
	}
	if overlap >= size {
		overlap = 0
	}

	var chunks []string
	for start := 0; start < len(runes); {
		end := start + size
		if end >= len(runes) {
			end = len(runes)
		} else if cut := lastSpace(runes[start:end]); cut > size/2 {
			end = start + cut
		}

		if chunk := strings.TrimSpace(string(runes[start:end])); chunk != "" {
			chunks = append(chunks, chunk)
		}

		if end == len(runes) {
			break
		}

		next := end - overlap
		if next <= start {
			next = end
		}
		start = next
	}

	return chunks
}

func lastSpace(runes []rune) int {
	for i := len(runes) - 1; i >= 0; i-- {
		if unicode.IsSpace(runes[i]) {
			return i
		}
	}
	return -1
}

// searchExpression turns free text into an OR'ed to_tsquery expression so
// a chunk matching any meaningful word is a candidate.
func searchExpression(text string) string {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	seen := make(map[string]bool, len(words))
	terms := make([]string, 0, len(words))
	for _, w := range words {
		if len([]rune(w)) < 3 || seen[w] {
			continue
		}
		seen[w] = true
		terms = append(terms, w)
	}

	return strings.Join(terms, " | ")
}
