package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/conclave-ai/conclave/pkg/models"
)

func TestPhaseTemperature(t *testing.T) {
	assert.Equal(t, 0.8, PhaseTemperature(1, 3))
	assert.Equal(t, 0.4, PhaseTemperature(2, 3))
	assert.Equal(t, 0.2, PhaseTemperature(3, 3))
	// Single-round meetings go straight to the final phase.
	assert.Equal(t, 0.2, PhaseTemperature(1, 1))
	assert.Equal(t, 0.8, PhaseTemperature(1, 5))
	assert.Equal(t, 0.4, PhaseTemperature(4, 5))
}

func TestSystemPromptFor(t *testing.T) {
	agent := models.Agent{
		Name:      "Dr. Chen",
		Title:     "ML Engineer",
		Expertise: "deep learning systems",
		Goal:      "ship a working prototype",
		Role:      "implement the model pipeline",
	}

	t.Run("report meeting has no code instructions", func(t *testing.T) {
		p := SystemPromptFor(agent, models.OutputTypeReport, false)
		assert.Contains(t, p, "You are Dr. Chen, ML Engineer.")
		assert.Contains(t, p, "Your expertise: deep learning systems.")
		assert.Contains(t, p, "Your goal: ship a working prototype.")
		assert.Contains(t, p, "Your role in this meeting: implement the model pipeline.")
		assert.NotContains(t, p, "JSON manifest")
		assert.NotContains(t, p, "Do not emit code")
	})

	t.Run("code meeting coding agent gets manifest instruction", func(t *testing.T) {
		p := SystemPromptFor(agent, models.OutputTypeCode, true)
		assert.Contains(t, p, CodeManifestInstruction)
		assert.NotContains(t, p, NoCodeInstruction)
	})

	t.Run("code meeting non-coding agent gets no-code instruction", func(t *testing.T) {
		p := SystemPromptFor(agent, models.OutputTypeCode, false)
		assert.Contains(t, p, NoCodeInstruction)
		assert.NotContains(t, p, CodeManifestInstruction)
	})

	t.Run("empty optional fields are omitted", func(t *testing.T) {
		p := SystemPromptFor(models.Agent{Name: "Bot"}, models.OutputTypeReport, false)
		assert.Equal(t, "You are Bot.", p)
	})
}

func TestSystemPromptFor_Deterministic(t *testing.T) {
	agent := models.Agent{Name: "Dr. Chen", Title: "ML Engineer"}
	assert.Equal(t,
		SystemPromptFor(agent, models.OutputTypeCode, true),
		SystemPromptFor(agent, models.OutputTypeCode, true))
}

func TestMeetingStartPrompt(t *testing.T) {
	p := MeetingStartPrompt("Dr. Smith", []string{"Dr. Chen", "Dr. Patel"},
		"Design the data pipeline",
		[]string{"Which storage backend?", "What is the SLA?"},
		[]string{"Be specific."},
		3, "", "Dr. Reviewer")

	assert.Contains(t, p, "team meeting led by Dr. Smith")
	assert.Contains(t, p, "Team members: Dr. Chen, Dr. Patel.")
	assert.Contains(t, p, "Dr. Reviewer will critically review")
	assert.Contains(t, p, "Agenda: Design the data pipeline")
	assert.Contains(t, p, "1. Which storage backend?")
	assert.Contains(t, p, "2. What is the SLA?")
	assert.Contains(t, p, "1. Be specific.")
	assert.Contains(t, p, "3 round(s)")
	assert.NotContains(t, p, "Respond in")
}

func TestMeetingStartPrompt_LanguageHint(t *testing.T) {
	p := MeetingStartPrompt("Lead", nil, "Agenda", nil, nil, 1, "Korean", "")
	assert.Contains(t, p, "Respond in Korean.")
}

func TestLeadPrompts(t *testing.T) {
	assert.Contains(t, LeadInitialPrompt("Dr. Smith", "Build a parser"),
		"Dr. Smith, as the lead, open the discussion")
	assert.Contains(t, LeadInitialPrompt("Dr. Smith", "Build a parser"), "Build a parser")

	syn := LeadSynthesisPrompt("Dr. Smith", 2, 4)
	assert.Contains(t, syn, "round 2 of 4")
	assert.Contains(t, syn, "Synthesize")

	assert.Contains(t, LeadFinalPrompt("Dr. Smith", models.OutputTypeCode), "JSON manifest")
	assert.Contains(t, LeadFinalPrompt("Dr. Smith", models.OutputTypePaper), "abstract")
	assert.Contains(t, LeadFinalPrompt("Dr. Smith", models.OutputTypeReport), "final report")
}

func TestMemberPrompt_PassOnlyAfterRoundOne(t *testing.T) {
	assert.NotContains(t, MemberPrompt("Dr. Chen", 1, 3), "PASS")
	assert.Contains(t, MemberPrompt("Dr. Chen", 2, 3), "\"PASS\"")
	assert.Contains(t, MemberPrompt("Dr. Chen", 3, 3), "\"PASS\"")
}

func TestCriticAndIntegratorPrompts(t *testing.T) {
	assert.Contains(t, CriticPrompt("Critic", 1, 2), "critique the contributions of round 1 of 2")
	assert.Contains(t, IntegratorPrompt("Integrator"), "consolidate the code")
}

func TestRewriteAndMergePrompts(t *testing.T) {
	assert.Contains(t, RewritePrompt("Too verbose."), "Too verbose.")
	assert.Contains(t, MergePrompt("Lead", 2), "2 prior meeting(s)")
}

func TestFormatContextSummaries(t *testing.T) {
	out := FormatContextSummaries([]models.ContextSummary{
		{Title: "Meeting One", Summary: "A"},
		{Title: "Meeting Two", Summary: "B"},
	})
	assert.Contains(t, out, "[begin summary 1]")
	assert.Contains(t, out, "Meeting One")
	assert.Contains(t, out, "[end summary 1]")
	assert.Contains(t, out, "[begin summary 2]")
	assert.Contains(t, out, "B")
	assert.Contains(t, out, "[end summary 2]")

	assert.Empty(t, FormatContextSummaries(nil))
}

func TestRulesFor(t *testing.T) {
	t.Run("user rules win", func(t *testing.T) {
		rules := RulesFor(models.OutputTypeCode, []string{"custom"})
		assert.Equal(t, []string{"custom", ConcisenessRule}, rules)
	})
	t.Run("defaults by output type", func(t *testing.T) {
		assert.Contains(t, RulesFor(models.OutputTypeCode, nil), CodingRules[0])
		assert.Contains(t, RulesFor(models.OutputTypePaper, nil), PaperRules[0])
		assert.Contains(t, RulesFor(models.OutputTypeReport, nil), ReportRules[0])
	})
	t.Run("conciseness rule always last", func(t *testing.T) {
		rules := RulesFor(models.OutputTypeReport, nil)
		assert.Equal(t, ConcisenessRule, rules[len(rules)-1])
	})
}
