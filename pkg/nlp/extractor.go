package nlp

import (
	"strconv"
	"strings"
	"unicode"
)

// ExtractDigits keeps only the decimal digits of text, in order. An order
// number read out as "number 4 2" becomes "42".
func ExtractDigits(text string) string {
	var b strings.Builder
	for _, r := range text {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ParsePartySize reads the leading integer of a spoken party size. Number
// words known to the normalizer are accepted; anything unparsable, zero or
// negative becomes 1.
func (nlp *NLPProcessor) ParsePartySize(text string) int {
	n, ok := leadingInt(nlp.Normalize(text))
	if !ok || n < 1 {
		return 1
	}
	return n
}

func leadingInt(text string) (int, bool) {
	s := strings.TrimLeftFunc(text, unicode.IsSpace)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0, false
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
