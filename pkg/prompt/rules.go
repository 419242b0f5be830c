package prompt

// Default rule sets injected when the user supplies none. Selection
// follows the meeting's output type.

// ConcisenessRule applies to every meeting regardless of output type.
const ConcisenessRule = "Keep each contribution focused and concise; avoid repeating points already made in the discussion."

// CodingRules are the defaults for code meetings.
var CodingRules = []string{
	"All code must be complete and runnable, not pseudocode or fragments.",
	"Include all imports and dependencies at the top of each file.",
	"Prefer clear, well-structured implementations over clever one-liners.",
	"Document non-obvious decisions with brief comments.",
}

// ReportRules are the defaults for report meetings.
var ReportRules = []string{
	"Ground every claim in the points raised during the discussion.",
	"Structure the report with clear sections and a summary of conclusions.",
	"State open questions and disagreements explicitly rather than papering over them.",
}

// PaperRules are the defaults for paper meetings.
var PaperRules = []string{
	"Follow a standard scientific structure: abstract, introduction, methods, results, discussion.",
	"Cite the specific contributions of each participant where relevant.",
	"Distinguish established findings from speculation.",
}

// RulesFor returns the effective rule list: the user's rules when
// provided, otherwise the defaults for the output type, always followed
// by the conciseness rule.
func RulesFor(outputType string, userRules []string) []string {
	var base []string
	if len(userRules) > 0 {
		base = userRules
	} else {
		switch outputType {
		case "code":
			base = CodingRules
		case "paper":
			base = PaperRules
		default:
			base = ReportRules
		}
	}
	rules := make([]string, 0, len(base)+1)
	rules = append(rules, base...)
	return append(rules, ConcisenessRule)
}
