package meeting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conclave-ai/conclave/pkg/models"
)

func agent(name, title string) models.Agent {
	return models.Agent{ID: "id-" + name, Name: name, Title: title}
}

func TestSortAgentsForMeeting_LeadDetection(t *testing.T) {
	tests := []struct {
		name  string
		title string
	}{
		{"Dr. Smith", "Principal Investigator"},
		{"Dr. Smith", "PI"},
		{"Dr. Smith", "Team Lead"},
		{"Dr. Smith", "Lead Scientist"},
		{"Dr. Smith", "Director of Research"},
		{"Dr. Smith", "Head of Engineering"},
		{"Dr. Smith", "Chief Scientist"},
		{"Dr. Smith", "Supervisor"},
		{"Dr. Smith", "Project Coordinator"},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			a := SortAgentsForMeeting([]models.Agent{
				agent("Other", "Scientist"),
				agent(tt.name, tt.title),
			})
			assert.Equal(t, tt.name, a.Lead.Name)
		})
	}
}

func TestSortAgentsForMeeting_PIRequiresWordBoundary(t *testing.T) {
	// "pipeline" must not classify as lead via the "pi" keyword.
	a := SortAgentsForMeeting([]models.Agent{
		agent("Alice", "Pipeline Specialist"),
		agent("Bob", "Scientist"),
	})
	// No lead keyword matches, so the first non-critic wins.
	assert.Equal(t, "Alice", a.Lead.Name)

	b := SortAgentsForMeeting([]models.Agent{
		agent("Alice", "Pipeline Specialist"),
		agent("Bob", "PI"),
	})
	assert.Equal(t, "Bob", b.Lead.Name)
}

func TestSortAgentsForMeeting_CriticDetection(t *testing.T) {
	a := SortAgentsForMeeting([]models.Agent{
		agent("PI", "Principal Investigator"),
		agent("Sci", "Scientist"),
		agent("Rev", "Scientific Critic"),
	})
	require.NotNil(t, a.Critic)
	assert.Equal(t, "Rev", a.Critic.Name)
	require.Len(t, a.Members, 1)
	assert.Equal(t, "Sci", a.Members[0].Name)
}

func TestSortAgentsForMeeting_FirstMatchWins(t *testing.T) {
	a := SortAgentsForMeeting([]models.Agent{
		agent("First Lead", "Team Lead"),
		agent("Second Lead", "Team Lead"),
	})
	assert.Equal(t, "First Lead", a.Lead.Name)
	// The second lead-titled agent falls back to member.
	require.Len(t, a.Members, 1)
	assert.Equal(t, "Second Lead", a.Members[0].Name)
}

func TestSortAgentsForMeeting_NoLeadFallback(t *testing.T) {
	a := SortAgentsForMeeting([]models.Agent{
		agent("Rev", "Reviewer"),
		agent("Sci", "Scientist"),
		agent("Eng", "Engineer"),
	})
	assert.Equal(t, "Sci", a.Lead.Name)
	require.NotNil(t, a.Critic)
	assert.Equal(t, "Rev", a.Critic.Name)
}

func TestSortAgentsForMeeting_CriticOnlyActsAsLead(t *testing.T) {
	a := SortAgentsForMeeting([]models.Agent{
		agent("Rev", "Scientific Critic"),
	})
	assert.Equal(t, "Rev", a.Lead.Name)
	assert.Nil(t, a.Critic)
	assert.Empty(t, a.Members)
}

func TestSortAgentsForMeeting_IntegratorSelection(t *testing.T) {
	t.Run("explicit integrator keyword wins", func(t *testing.T) {
		a := SortAgentsForMeeting([]models.Agent{
			agent("PI", "Principal Investigator"),
			agent("Eng", "Software Engineer"),
			agent("Int", "Integration Specialist"),
		})
		assert.Equal(t, "Int", a.Integrator.Name)
	})
	t.Run("coding member as fallback", func(t *testing.T) {
		a := SortAgentsForMeeting([]models.Agent{
			agent("PI", "Principal Investigator"),
			agent("Sci", "Scientist"),
			agent("Eng", "ML Engineer"),
		})
		assert.Equal(t, "Eng", a.Integrator.Name)
	})
	t.Run("lead as last resort", func(t *testing.T) {
		a := SortAgentsForMeeting([]models.Agent{
			agent("PI", "Principal Investigator"),
			agent("Sci", "Scientist"),
		})
		assert.Equal(t, "PI", a.Integrator.Name)
	})
}

func TestIsCodingAgent(t *testing.T) {
	assert.True(t, IsCodingAgent(agent("A", "Software Engineer")))
	assert.True(t, IsCodingAgent(agent("B", "Developer")))
	assert.True(t, IsCodingAgent(agent("C", "Programmer")))
	assert.False(t, IsCodingAgent(agent("D", "Biologist")))
}

func TestFilterParticipants(t *testing.T) {
	pool := []models.Agent{
		{ID: "a", Name: "A"},
		{ID: "b", Name: "B", IsMirror: true},
		{ID: "c", Name: "C"},
	}

	t.Run("default excludes mirrors", func(t *testing.T) {
		out := FilterParticipants(pool, nil)
		require.Len(t, out, 2)
		assert.Equal(t, "A", out[0].Name)
		assert.Equal(t, "C", out[1].Name)
	})

	t.Run("explicit ids restrict the pool", func(t *testing.T) {
		out := FilterParticipants(pool, []string{"c"})
		require.Len(t, out, 1)
		assert.Equal(t, "C", out[0].Name)
	})

	t.Run("explicit ids may include mirrors", func(t *testing.T) {
		out := FilterParticipants(pool, []string{"b"})
		require.Len(t, out, 1)
		assert.Equal(t, "B", out[0].Name)
	})
}
