package nlp

import (
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

type NLPProcessor struct {
	mappings []IntentMapping
	synonyms map[string]string
}

func NewProcessor() INLPProcessor {
	return &NLPProcessor{
		mappings: defaultIntentMappings(),
		synonyms: defaultSynonyms(),
	}
}

// Normalize lowercases and trims text, then replaces it with its canonical
// token when the whole utterance is a known synonym. Anything else passes
// through unchanged.
func (nlp *NLPProcessor) Normalize(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))
	if canonical, ok := nlp.synonyms[text]; ok {
		return canonical
	}
	return text
}

// ClassifyMenuChoice checks the mappings in order and returns the first intent
// whose keyword is contained in the normalized, raw or folded text.
func (nlp *NLPProcessor) ClassifyMenuChoice(text string) *IntentResult {
	start := time.Now()
	normalized := nlp.Normalize(text)
	haystacks := nlp.haystacks(text, normalized)

	for _, mapping := range nlp.mappings {
		for _, keyword := range mapping.Keywords {
			if containsAny(haystacks, keyword) {
				return &IntentResult{
					Intent:         mapping.Intent,
					Normalized:     normalized,
					Keyword:        keyword,
					ProcessingTime: time.Since(start).String(),
				}
			}
		}
	}

	return &IntentResult{
		Intent:         IntentUnknown,
		Normalized:     normalized,
		ProcessingTime: time.Since(start).String(),
	}
}

// RouteIssue picks the issue sub-flow. Only "cancel" gates the order branch:
// a request that mentions "update" without "cancel" is a general issue.
func (nlp *NLPProcessor) RouteIssue(text string) IssueRoute {
	normalized := nlp.Normalize(text)
	haystacks := nlp.haystacks(text, normalized)

	switch {
	case containsAny(haystacks, "order") && containsAny(haystacks, "cancel"):
		return IssueRouteOrder
	case containsAny(haystacks, "reservation") && containsAny(haystacks, "cancel"):
		return IssueRouteReservationCancel
	default:
		return IssueRouteGeneral
	}
}

func (nlp *NLPProcessor) OrderAction(issueText string) OrderAction {
	lower := strings.ToLower(issueText)
	switch {
	case strings.Contains(lower, "cancel"):
		return OrderActionCancel
	case strings.Contains(lower, "update"):
		return OrderActionUpdate
	default:
		return OrderActionNone
	}
}

// IsAffirmative reports whether an answer to a yes/no prompt is a yes.
// Everything that is not recognisably "yes" counts as no.
func (nlp *NLPProcessor) IsAffirmative(text string) bool {
	return strings.Contains(nlp.Normalize(text), "yes")
}

func (nlp *NLPProcessor) GetAllMappings() []IntentMapping {
	out := make([]IntentMapping, len(nlp.mappings))
	copy(out, nlp.mappings)
	return out
}

func (nlp *NLPProcessor) haystacks(raw, normalized string) []string {
	lowered := strings.ToLower(strings.TrimSpace(raw))
	folded := fold(lowered)

	out := []string{normalized}
	if lowered != normalized {
		out = append(out, lowered)
	}
	if folded != lowered {
		out = append(out, folded)
	}
	return out
}

func containsAny(haystacks []string, keyword string) bool {
	for _, h := range haystacks {
		if strings.Contains(h, keyword) {
			return true
		}
	}
	return false
}

// fold strips combining marks so "réservation" still matches "reservation".
func fold(text string) string {
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn), norm.NFC)
	result, _, err := transform.String(t, text)
	if err != nil {
		return text
	}
	return result
}

func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}

func defaultIntentMappings() []IntentMapping {
	return []IntentMapping{
		{Intent: IntentOrder, Keywords: []string{"1", "order"}, Description: "Place an order"},
		{Intent: IntentMenu, Keywords: []string{"2", "menu"}, Description: "Ask about the menu"},
		{Intent: IntentReservation, Keywords: []string{"3", "reservation"}, Description: "Make a reservation"},
		{Intent: IntentIssue, Keywords: []string{"4", "issue"}, Description: "Report an issue"},
	}
}

func defaultSynonyms() map[string]string {
	return map[string]string{
		"one":   "1",
		"two":   "2",
		"three": "3",
		"four":  "4",
		"for":   "4",

		"yes":      "yes",
		"yeah":     "yes",
		"yep":      "yes",
		"sure":     "yes",
		"ok":       "yes",
		"okay":     "yes",
		"continue": "yes",

		"no":     "no",
		"nope":   "no",
		"nah":    "no",
		"stop":   "no",
		"end":    "no",
		"finish": "no",
		"done":   "no",
	}
}
