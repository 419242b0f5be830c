package extract

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeywords(t *testing.T) {
	kws := Keywords("Continue protein work", []string{"Which protein folds fastest?"})
	assert.Equal(t, []string{"protein", "folds", "fastest"}, kws)
}

func TestKeywords_FiltersShortTokensAndStopwords(t *testing.T) {
	kws := Keywords("We do an ML run", nil)
	assert.NotContains(t, kws, "we")
	assert.NotContains(t, kws, "do")
	assert.NotContains(t, kws, "an")
	assert.Contains(t, kws, "run")
}

func TestKeywords_DeduplicatesPreservingOrder(t *testing.T) {
	kws := Keywords("parser parser tokenizer parser", nil)
	assert.Equal(t, []string{"parser", "tokenizer"}, kws)
}

func TestBuildContext_KeywordHitSelectsParagraphOnly(t *testing.T) {
	// Only the second paragraph mentions the agenda keyword.
	prior := Transcript{
		Title: "Prior meeting",
		AssistantMessages: []string{
			"We reviewed the budget for next quarter.\n\nThe protein folding results look promising and warrant a follow-up.",
		},
	}

	summaries := BuildContext([]Transcript{prior}, "Continue protein work", nil, 0)
	require.Len(t, summaries, 1)
	assert.Equal(t, "Prior meeting", summaries[0].Title)
	assert.Equal(t, "The protein folding results look promising and warrant a follow-up.", summaries[0].Summary)
}

func TestBuildContext_AllMissFallsBackToLastMessage(t *testing.T) {
	prior := Transcript{
		Title: "Prior meeting",
		AssistantMessages: []string{
			"First message about budgets.",
			"Final message about schedules.",
		},
	}

	summaries := BuildContext([]Transcript{prior}, "Continue protein work", nil, 0)
	require.Len(t, summaries, 1)
	assert.Equal(t, "Final message about schedules.", summaries[0].Summary)
}

func TestBuildContext_BudgetTruncation(t *testing.T) {
	long := strings.Repeat("protein analysis detail. ", 100)
	prior := Transcript{Title: "Big meeting", AssistantMessages: []string{long}}

	summaries := BuildContext([]Transcript{prior}, "protein", nil, 50)
	require.Len(t, summaries, 1)
	assert.Len(t, summaries[0].Summary, 53) // 50 chars + "..."
	assert.True(t, strings.HasSuffix(summaries[0].Summary, "..."))
}

func TestBuildContext_BudgetTruncationKeepsRunesIntact(t *testing.T) {
	long := strings.Repeat("蛋白質の解析結果を要約する。", 20)
	prior := Transcript{Title: "Big meeting", AssistantMessages: []string{long}}

	// 50 bytes lands mid-rune for three-byte characters; the cut must
	// back up to a boundary.
	summaries := BuildContext([]Transcript{prior}, "", nil, 50)
	require.Len(t, summaries, 1)
	assert.True(t, utf8.ValidString(summaries[0].Summary))
	assert.True(t, strings.HasSuffix(summaries[0].Summary, "..."))
	assert.LessOrEqual(t, len(summaries[0].Summary), 53)
}

func TestBuildContext_MultipleMeetings(t *testing.T) {
	transcripts := []Transcript{
		{Title: "One", AssistantMessages: []string{"protein structure results here."}},
		{Title: "Two", AssistantMessages: []string{"more protein findings here."}},
	}

	summaries := BuildContext(transcripts, "protein", nil, 0)
	require.Len(t, summaries, 2)
	assert.Equal(t, "One", summaries[0].Title)
	assert.Equal(t, "Two", summaries[1].Title)
}

func TestBuildContext_SkipsEmptyTranscripts(t *testing.T) {
	summaries := BuildContext([]Transcript{{Title: "Empty"}}, "protein", nil, 0)
	assert.Empty(t, summaries)
}
