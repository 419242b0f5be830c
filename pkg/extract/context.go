// Package extract implements the two transcript analyzers: the context
// extractor that seeds a new meeting with relevant paragraphs from
// prior meetings, and the code extractor that turns assistant output
// into a file tree after completion.
package extract

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/conclave-ai/conclave/pkg/models"
)

// DefaultContextBudget is the global character budget for assembled
// prior-meeting context.
const DefaultContextBudget = 3000

// stopwords is the closed English stop-word list applied to agenda
// keyword extraction.
var stopwords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "are": {}, "but": {}, "not": {},
	"you": {}, "all": {}, "can": {}, "had": {}, "her": {}, "was": {},
	"one": {}, "our": {}, "out": {}, "has": {}, "have": {}, "this": {},
	"that": {}, "with": {}, "they": {}, "from": {}, "will": {}, "what": {},
	"when": {}, "where": {}, "which": {}, "their": {}, "would": {},
	"there": {}, "could": {}, "should": {}, "about": {}, "into": {},
	"than": {}, "then": {}, "them": {}, "these": {}, "those": {},
	"some": {}, "such": {}, "only": {}, "over": {}, "also": {},
	"its": {}, "how": {}, "who": {}, "whom": {}, "been": {}, "being": {},
	"does": {}, "did": {}, "each": {}, "more": {}, "most": {}, "other": {},
	"were": {}, "your": {}, "upon": {}, "here": {}, "very": {},
	"meeting": {}, "discuss": {}, "discussion": {}, "agenda": {},
	"please": {}, "continue": {}, "work": {}, "team": {},
}

// Transcript is the input the context extractor needs from one prior
// meeting: its title and ordered assistant message contents.
type Transcript struct {
	Title             string
	AssistantMessages []string
}

// Keywords tokenizes the agenda and questions into the keyword set:
// alphanumeric tokens longer than two characters, lower-cased, with
// stop words removed, deduplicated preserving first-seen order.
func Keywords(agenda string, questions []string) []string {
	text := agenda
	for _, q := range questions {
		text += " " + q
	}

	var keywords []string
	seen := make(map[string]struct{})
	for _, token := range splitAlnum(text) {
		token = strings.ToLower(token)
		if len(token) <= 2 {
			continue
		}
		if _, stop := stopwords[token]; stop {
			continue
		}
		if _, dup := seen[token]; dup {
			continue
		}
		seen[token] = struct{}{}
		keywords = append(keywords, token)
	}
	return keywords
}

// BuildContext selects relevant excerpts from prior meetings. Per
// meeting, paragraphs of assistant messages containing at least one
// keyword are kept; when none match, the last assistant message is used
// whole. The concatenated result is capped at budget characters
// (DefaultContextBudget when budget <= 0) and truncated with an
// ellipsis marker.
func BuildContext(transcripts []Transcript, agenda string, questions []string, budget int) []models.ContextSummary {
	if budget <= 0 {
		budget = DefaultContextBudget
	}
	keywords := Keywords(agenda, questions)

	var summaries []models.ContextSummary
	remaining := budget
	for _, tr := range transcripts {
		if len(tr.AssistantMessages) == 0 {
			continue
		}
		excerpt := selectExcerpt(tr.AssistantMessages, keywords)
		if excerpt == "" {
			continue
		}
		if remaining <= 0 {
			break
		}
		if len(excerpt) > remaining {
			// Back up to a rune boundary so the cut never splits a
			// multi-byte character.
			cut := remaining
			for cut > 0 && !utf8.RuneStart(excerpt[cut]) {
				cut--
			}
			excerpt = excerpt[:cut] + "..."
			remaining = 0
		} else {
			remaining -= len(excerpt)
		}
		summaries = append(summaries, models.ContextSummary{Title: tr.Title, Summary: excerpt})
	}
	return summaries
}

// selectExcerpt keeps keyword-matching paragraphs across the meeting's
// assistant messages, falling back to the full last message.
func selectExcerpt(assistantMessages, keywords []string) string {
	var matched []string
	for _, msg := range assistantMessages {
		for _, para := range splitParagraphs(msg) {
			if paragraphMatches(para, keywords) {
				matched = append(matched, para)
			}
		}
	}
	if len(matched) > 0 {
		return strings.Join(matched, "\n\n")
	}
	return strings.TrimSpace(assistantMessages[len(assistantMessages)-1])
}

// splitParagraphs splits text on blank lines, dropping empty segments.
func splitParagraphs(text string) []string {
	var paragraphs []string
	for _, part := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n\n") {
		part = strings.TrimSpace(part)
		if part != "" {
			paragraphs = append(paragraphs, part)
		}
	}
	return paragraphs
}

func paragraphMatches(paragraph string, keywords []string) bool {
	lower := strings.ToLower(paragraph)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// splitAlnum splits text into maximal alphanumeric runs.
func splitAlnum(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
