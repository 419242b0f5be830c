// Package prompt composes the text sent to LLM providers for every turn
// of a meeting. All functions are deterministic: identical inputs
// produce identical strings, so tests pin on exact substrings.
package prompt

import (
	"fmt"
	"strings"

	"github.com/conclave-ai/conclave/pkg/models"
)

// HumanFeedbackPrefix marks user-injected messages when they are
// re-inserted into the transcript, so models treat them as
// high-priority input.
const HumanFeedbackPrefix = "**Human feedback:** "

// CodeManifestInstruction constrains code-capable agents to a parseable
// output format.
const CodeManifestInstruction = "When you produce code, emit it as a JSON manifest of the form " +
	"{\"files\":[{\"path\":\"...\",\"language\":\"...\",\"content\":\"...\"}]} " +
	"inside a fenced code block, so every file can be extracted with its exact path."

// NoCodeInstruction is appended for non-coding agents in code meetings.
const NoCodeInstruction = "Do not emit code in your responses; contribute analysis, requirements, and review instead."

// Phase temperatures: exploration, synthesis, final.
const (
	TemperatureExploration = 0.8
	TemperatureSynthesis   = 0.4
	TemperatureFinal       = 0.2
)

// PhaseTemperature maps a round position to its sampling temperature.
// Round 1 explores, middle rounds synthesize, the last round converges.
func PhaseTemperature(round, numRounds int) float64 {
	switch {
	case round >= numRounds:
		return TemperatureFinal
	case round <= 1:
		return TemperatureExploration
	default:
		return TemperatureSynthesis
	}
}

// SystemPromptFor builds the persona prompt for an agent. emitsCode
// states whether this agent is expected to produce code in a code
// meeting; for other output types it is ignored.
func SystemPromptFor(agent models.Agent, outputType string, emitsCode bool) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "You are %s", agent.Name)
	if agent.Title != "" {
		fmt.Fprintf(&sb, ", %s", agent.Title)
	}
	sb.WriteString(".")
	if agent.Expertise != "" {
		fmt.Fprintf(&sb, " Your expertise: %s.", agent.Expertise)
	}
	if agent.Goal != "" {
		fmt.Fprintf(&sb, " Your goal: %s.", agent.Goal)
	}
	if agent.Role != "" {
		fmt.Fprintf(&sb, " Your role in this meeting: %s.", agent.Role)
	}
	if outputType == models.OutputTypeCode {
		sb.WriteString("\n\n")
		if emitsCode {
			sb.WriteString(CodeManifestInstruction)
		} else {
			sb.WriteString(NoCodeInstruction)
		}
	}
	return sb.String()
}

// MeetingStartPrompt is injected as a pseudo-user message at round 1 of
// every structured meeting.
func MeetingStartPrompt(leadName string, memberNames []string, agenda string, questions, rules []string, numRounds int, preferredLang, criticName string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "This is the start of a team meeting led by %s.\n", leadName)
	if len(memberNames) > 0 {
		fmt.Fprintf(&sb, "Team members: %s.\n", strings.Join(memberNames, ", "))
	}
	if criticName != "" {
		fmt.Fprintf(&sb, "%s will critically review the discussion.\n", criticName)
	}
	fmt.Fprintf(&sb, "\nAgenda: %s\n", agenda)
	writeNumbered(&sb, "Agenda questions:", questions)
	writeNumbered(&sb, "Meeting rules:", rules)
	fmt.Fprintf(&sb, "\nThe meeting will run for %d round(s) of discussion.", numRounds)
	if preferredLang != "" {
		fmt.Fprintf(&sb, "\nRespond in %s.", preferredLang)
	}
	return sb.String()
}

// IndividualMeetingStartPrompt opens an individual meeting between one
// agent and a critic.
func IndividualMeetingStartPrompt(agentName, agenda string, questions, rules []string, numRounds int, preferredLang string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "This is an individual working session for %s, with critical review after each response.\n", agentName)
	fmt.Fprintf(&sb, "\nAgenda: %s\n", agenda)
	writeNumbered(&sb, "Agenda questions:", questions)
	writeNumbered(&sb, "Session rules:", rules)
	fmt.Fprintf(&sb, "\nThe session will run for %d round(s).", numRounds)
	if preferredLang != "" {
		fmt.Fprintf(&sb, "\nRespond in %s.", preferredLang)
	}
	return sb.String()
}

// LeadInitialPrompt asks the lead to open round 1.
func LeadInitialPrompt(leadName, agenda string) string {
	return fmt.Sprintf("%s, as the lead, open the discussion. Frame the problem stated in the agenda (%s), "+
		"outline your initial thinking, and pose the specific points you want each team member to address.",
		leadName, agenda)
}

// LeadSynthesisPrompt asks the lead to open a middle round.
func LeadSynthesisPrompt(leadName string, round, numRounds int) string {
	return fmt.Sprintf("%s, this is round %d of %d. Synthesize the discussion so far: "+
		"summarize the points of agreement, name the unresolved disagreements, and direct the team toward what still needs to be decided.",
		leadName, round, numRounds)
}

// LeadFinalPrompt asks the lead to close the meeting with the
// output-type-specific deliverable.
func LeadFinalPrompt(leadName, outputType string) string {
	var template string
	switch outputType {
	case models.OutputTypeCode:
		template = "Produce the final, complete implementation that resolves the agenda. " +
			"Emit every file as a JSON manifest {\"files\":[{\"path\",\"language\",\"content\"}]} inside a fenced code block."
	case models.OutputTypePaper:
		template = "Produce the final paper: abstract, introduction, methods, results, and discussion, " +
			"incorporating the team's conclusions."
	default:
		template = "Produce the final report: a structured summary of the discussion, the decisions reached, " +
			"answers to each agenda question, and remaining open issues."
	}
	return fmt.Sprintf("%s, this is the final round. %s", leadName, template)
}

// MemberPrompt asks a member for their contribution. From the second
// round onward an explicit PASS is permitted.
func MemberPrompt(name string, round, numRounds int) string {
	base := fmt.Sprintf("%s, please share your thoughts on the discussion (round %d of %d).", name, round, numRounds)
	if round > 1 {
		return base + " If you have nothing new to add, respond with \"PASS\"."
	}
	return base
}

// CriticPrompt asks the critic to review the round so far.
func CriticPrompt(name string, round, numRounds int) string {
	return fmt.Sprintf("%s, please critique the contributions of round %d of %d: "+
		"identify weaknesses, unstated assumptions, and gaps the team must address before concluding.",
		name, round, numRounds)
}

// IntegratorPrompt asks the integrator to consolidate code proposals.
func IntegratorPrompt(name string) string {
	return fmt.Sprintf("%s, consolidate the code proposed so far into one coherent implementation, "+
		"resolving conflicts between contributions and keeping every file complete.", name)
}

// RewritePrompt directs a rewrite meeting with the user's feedback on
// the parent meeting's output.
func RewritePrompt(feedback string) string {
	return fmt.Sprintf("The previous version of this output received the following feedback:\n\n%s\n\n"+
		"Revise the output to fully address this feedback while preserving what already works.", feedback)
}

// MergePrompt asks the lead to synthesize source-meeting summaries.
func MergePrompt(leadName string, numSources int) string {
	return fmt.Sprintf("%s, the summaries of %d prior meeting(s) are provided above. "+
		"Merge them into a single consolidated answer: reconcile differences, remove duplication, "+
		"and produce one coherent result.", leadName, numSources)
}

// FormatContextSummaries wraps prior-meeting excerpts with explicit
// begin/end markers for round-1 injection.
func FormatContextSummaries(summaries []models.ContextSummary) string {
	if len(summaries) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("Context from previous meetings:\n")
	for i, s := range summaries {
		n := i + 1
		fmt.Fprintf(&sb, "\n[begin summary %d]\n", n)
		if s.Title != "" {
			fmt.Fprintf(&sb, "%s\n", s.Title)
		}
		sb.WriteString(s.Summary)
		fmt.Fprintf(&sb, "\n[end summary %d]\n", n)
	}
	return sb.String()
}

// writeNumbered appends a numbered list with a heading, or nothing when
// the list is empty.
func writeNumbered(sb *strings.Builder, heading string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(sb, "\n%s\n", heading)
	for i, item := range items {
		fmt.Fprintf(sb, "%d. %s\n", i+1, item)
	}
}
