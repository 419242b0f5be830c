// Package meeting implements the turn scheduler that runs a meeting as
// a finite sequence of rounds: classifying speakers, composing their
// prompts, dispatching LLM calls, and assembling the transcript.
package meeting

import (
	"regexp"
	"strings"

	"github.com/conclave-ai/conclave/pkg/models"
)

// Role keyword sets matched over an agent's name, title, and role.
var (
	leadKeywords = []string{
		"principal investigator", "pi", "team lead", "lead scientist",
		"director", "head of", "chief", "supervisor", "coordinator",
	}
	criticKeywords = []string{
		"critic", "reviewer", "evaluator", "scientific critic", "peer review",
	}
	integratorKeywords = []string{
		"integrator", "integration", "consolidat",
	}
	codingKeywords = []string{
		"engineer", "developer", "programmer", "software engineer", "ml engineer",
	}
)

// Assignment is the per-meeting speaker classification. Members keep
// their input order. Critic is nil when no agent matches the critic
// keywords.
type Assignment struct {
	Lead       models.Agent
	Members    []models.Agent
	Critic     *models.Agent
	Integrator models.Agent
}

// SortAgentsForMeeting classifies the speaker pool. The first agent
// matching a lead keyword becomes lead; with no match, the first
// non-critic agent is promoted; a critic-only pool makes the first
// critic act as lead. The integrator (used by code meetings) is the
// first member with an integration keyword, else the first coding
// member, else the lead.
func SortAgentsForMeeting(agents []models.Agent) Assignment {
	var a Assignment
	if len(agents) == 0 {
		return a
	}

	leadIdx := -1
	criticIdx := -1
	for i, agent := range agents {
		if leadIdx < 0 && matchesAny(agent, leadKeywords) {
			leadIdx = i
			continue
		}
		if criticIdx < 0 && i != leadIdx && matchesAny(agent, criticKeywords) {
			criticIdx = i
		}
	}

	if leadIdx < 0 {
		// Promote the first non-critic agent.
		for i, agent := range agents {
			if !matchesAny(agent, criticKeywords) {
				leadIdx = i
				break
			}
		}
	}
	if leadIdx < 0 {
		// Critic-only pool: the first critic acts as lead.
		leadIdx = 0
		criticIdx = -1
	}

	a.Lead = agents[leadIdx]
	if criticIdx >= 0 {
		critic := agents[criticIdx]
		a.Critic = &critic
	}
	for i, agent := range agents {
		if i == leadIdx || i == criticIdx {
			continue
		}
		a.Members = append(a.Members, agent)
	}

	a.Integrator = pickIntegrator(a)
	return a
}

func pickIntegrator(a Assignment) models.Agent {
	for _, m := range a.Members {
		if matchesAny(m, integratorKeywords) {
			return m
		}
	}
	for _, m := range a.Members {
		if matchesAny(m, codingKeywords) {
			return m
		}
	}
	return a.Lead
}

// IsCodingAgent reports whether the agent matches the coding keyword
// set. In code meetings, only coding agents, the lead, and the
// integrator are instructed to emit code.
func IsCodingAgent(agent models.Agent) bool {
	return matchesAny(agent, codingKeywords)
}

func matchesAny(agent models.Agent, keywords []string) bool {
	haystack := strings.ToLower(agent.Name + " " + agent.Title + " " + agent.Role)
	for _, kw := range keywords {
		if matchKeyword(haystack, kw) {
			return true
		}
	}
	return false
}

var piRe = regexp.MustCompile(`\bpi\b`)

// matchKeyword does a substring match, except for the short keyword
// "pi" which requires word boundaries to avoid false positives inside
// longer words ("pipeline", "topic").
func matchKeyword(haystack, keyword string) bool {
	if keyword == "pi" {
		return piRe.MatchString(haystack)
	}
	return strings.Contains(haystack, keyword)
}

// FilterParticipants restricts the speaker pool. With explicit
// participant ids, only those agents remain (order preserved from the
// pool). Otherwise mirror agents are excluded.
func FilterParticipants(agents []models.Agent, participantIDs []string) []models.Agent {
	if len(participantIDs) > 0 {
		allowed := make(map[string]struct{}, len(participantIDs))
		for _, id := range participantIDs {
			allowed[id] = struct{}{}
		}
		var out []models.Agent
		for _, a := range agents {
			if _, ok := allowed[a.ID]; ok {
				out = append(out, a)
			}
		}
		return out
	}

	var out []models.Agent
	for _, a := range agents {
		if !a.IsMirror {
			out = append(out, a)
		}
	}
	return out
}
