// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/conclave-ai/conclave/ent/agent"
	"github.com/conclave-ai/conclave/ent/codeartifact"
	"github.com/conclave-ai/conclave/ent/meeting"
	"github.com/conclave-ai/conclave/ent/message"
	"github.com/conclave-ai/conclave/ent/predicate"
	"github.com/conclave-ai/conclave/ent/providerkey"
	"github.com/conclave-ai/conclave/ent/team"
	"github.com/conclave-ai/conclave/ent/user"
	"github.com/conclave-ai/conclave/ent/webhook"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAgent        = "Agent"
	TypeCodeArtifact = "CodeArtifact"
	TypeMeeting      = "Meeting"
	TypeMessage      = "Message"
	TypeProviderKey  = "ProviderKey"
	TypeTeam         = "Team"
	TypeUser         = "User"
	TypeWebhook      = "Webhook"
)

// AgentMutation represents an operation that mutates the Agent nodes in the graph.
type AgentMutation struct {
	config
	op               Op
	typ              string
	id               *string
	name             *string
	title            *string
	expertise        *string
	goal             *string
	role             *string
	model            *string
	model_params     *map[string]interface{}
	system_prompt    *string
	is_mirror        *bool
	primary_agent_id *string
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	team             *string
	clearedteam      bool
	done             bool
	oldValue         func(context.Context) (*Agent, error)
	predicates       []predicate.Agent
}

var _ ent.Mutation = (*AgentMutation)(nil)

// agentOption allows management of the mutation configuration using functional options.
type agentOption func(*AgentMutation)

// newAgentMutation creates new mutation for the Agent entity.
func newAgentMutation(c config, op Op, opts ...agentOption) *AgentMutation {
	m := &AgentMutation{
		config:        c,
		op:            op,
		typ:           TypeAgent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentID sets the ID field of the mutation.
func withAgentID(id string) agentOption {
	return func(m *AgentMutation) {
		var (
			err   error
			once  sync.Once
			value *Agent
		)
		m.oldValue = func(ctx context.Context) (*Agent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Agent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgent sets the old Agent of the mutation.
func withAgent(node *Agent) agentOption {
	return func(m *AgentMutation) {
		m.oldValue = func(context.Context) (*Agent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Agent entities.
func (m *AgentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Agent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTeamID sets the "team_id" field.
func (m *AgentMutation) SetTeamID(s string) {
	m.team = &s
}

// TeamID returns the value of the "team_id" field in the mutation.
func (m *AgentMutation) TeamID() (r string, exists bool) {
	v := m.team
	if v == nil {
		return
	}
	return *v, true
}

// OldTeamID returns the old "team_id" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldTeamID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTeamID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTeamID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTeamID: %w", err)
	}
	return oldValue.TeamID, nil
}

// ResetTeamID resets all changes to the "team_id" field.
func (m *AgentMutation) ResetTeamID() {
	m.team = nil
}

// SetName sets the "name" field.
func (m *AgentMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *AgentMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *AgentMutation) ResetName() {
	m.name = nil
}

// SetTitle sets the "title" field.
func (m *AgentMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *AgentMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ClearTitle clears the value of the "title" field.
func (m *AgentMutation) ClearTitle() {
	m.title = nil
	m.clearedFields[agent.FieldTitle] = struct{}{}
}

// TitleCleared returns if the "title" field was cleared in this mutation.
func (m *AgentMutation) TitleCleared() bool {
	_, ok := m.clearedFields[agent.FieldTitle]
	return ok
}

// ResetTitle resets all changes to the "title" field.
func (m *AgentMutation) ResetTitle() {
	m.title = nil
	delete(m.clearedFields, agent.FieldTitle)
}

// SetExpertise sets the "expertise" field.
func (m *AgentMutation) SetExpertise(s string) {
	m.expertise = &s
}

// Expertise returns the value of the "expertise" field in the mutation.
func (m *AgentMutation) Expertise() (r string, exists bool) {
	v := m.expertise
	if v == nil {
		return
	}
	return *v, true
}

// OldExpertise returns the old "expertise" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldExpertise(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpertise is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpertise requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpertise: %w", err)
	}
	return oldValue.Expertise, nil
}

// ClearExpertise clears the value of the "expertise" field.
func (m *AgentMutation) ClearExpertise() {
	m.expertise = nil
	m.clearedFields[agent.FieldExpertise] = struct{}{}
}

// ExpertiseCleared returns if the "expertise" field was cleared in this mutation.
func (m *AgentMutation) ExpertiseCleared() bool {
	_, ok := m.clearedFields[agent.FieldExpertise]
	return ok
}

// ResetExpertise resets all changes to the "expertise" field.
func (m *AgentMutation) ResetExpertise() {
	m.expertise = nil
	delete(m.clearedFields, agent.FieldExpertise)
}

// SetGoal sets the "goal" field.
func (m *AgentMutation) SetGoal(s string) {
	m.goal = &s
}

// Goal returns the value of the "goal" field in the mutation.
func (m *AgentMutation) Goal() (r string, exists bool) {
	v := m.goal
	if v == nil {
		return
	}
	return *v, true
}

// OldGoal returns the old "goal" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldGoal(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGoal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGoal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGoal: %w", err)
	}
	return oldValue.Goal, nil
}

// ClearGoal clears the value of the "goal" field.
func (m *AgentMutation) ClearGoal() {
	m.goal = nil
	m.clearedFields[agent.FieldGoal] = struct{}{}
}

// GoalCleared returns if the "goal" field was cleared in this mutation.
func (m *AgentMutation) GoalCleared() bool {
	_, ok := m.clearedFields[agent.FieldGoal]
	return ok
}

// ResetGoal resets all changes to the "goal" field.
func (m *AgentMutation) ResetGoal() {
	m.goal = nil
	delete(m.clearedFields, agent.FieldGoal)
}

// SetRole sets the "role" field.
func (m *AgentMutation) SetRole(s string) {
	m.role = &s
}

// Role returns the value of the "role" field in the mutation.
func (m *AgentMutation) Role() (r string, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldRole(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ClearRole clears the value of the "role" field.
func (m *AgentMutation) ClearRole() {
	m.role = nil
	m.clearedFields[agent.FieldRole] = struct{}{}
}

// RoleCleared returns if the "role" field was cleared in this mutation.
func (m *AgentMutation) RoleCleared() bool {
	_, ok := m.clearedFields[agent.FieldRole]
	return ok
}

// ResetRole resets all changes to the "role" field.
func (m *AgentMutation) ResetRole() {
	m.role = nil
	delete(m.clearedFields, agent.FieldRole)
}

// SetModel sets the "model" field.
func (m *AgentMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *AgentMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *AgentMutation) ResetModel() {
	m.model = nil
}

// SetModelParams sets the "model_params" field.
func (m *AgentMutation) SetModelParams(value map[string]interface{}) {
	m.model_params = &value
}

// ModelParams returns the value of the "model_params" field in the mutation.
func (m *AgentMutation) ModelParams() (r map[string]interface{}, exists bool) {
	v := m.model_params
	if v == nil {
		return
	}
	return *v, true
}

// OldModelParams returns the old "model_params" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldModelParams(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelParams is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelParams requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelParams: %w", err)
	}
	return oldValue.ModelParams, nil
}

// ClearModelParams clears the value of the "model_params" field.
func (m *AgentMutation) ClearModelParams() {
	m.model_params = nil
	m.clearedFields[agent.FieldModelParams] = struct{}{}
}

// ModelParamsCleared returns if the "model_params" field was cleared in this mutation.
func (m *AgentMutation) ModelParamsCleared() bool {
	_, ok := m.clearedFields[agent.FieldModelParams]
	return ok
}

// ResetModelParams resets all changes to the "model_params" field.
func (m *AgentMutation) ResetModelParams() {
	m.model_params = nil
	delete(m.clearedFields, agent.FieldModelParams)
}

// SetSystemPrompt sets the "system_prompt" field.
func (m *AgentMutation) SetSystemPrompt(s string) {
	m.system_prompt = &s
}

// SystemPrompt returns the value of the "system_prompt" field in the mutation.
func (m *AgentMutation) SystemPrompt() (r string, exists bool) {
	v := m.system_prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldSystemPrompt returns the old "system_prompt" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldSystemPrompt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSystemPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSystemPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSystemPrompt: %w", err)
	}
	return oldValue.SystemPrompt, nil
}

// ClearSystemPrompt clears the value of the "system_prompt" field.
func (m *AgentMutation) ClearSystemPrompt() {
	m.system_prompt = nil
	m.clearedFields[agent.FieldSystemPrompt] = struct{}{}
}

// SystemPromptCleared returns if the "system_prompt" field was cleared in this mutation.
func (m *AgentMutation) SystemPromptCleared() bool {
	_, ok := m.clearedFields[agent.FieldSystemPrompt]
	return ok
}

// ResetSystemPrompt resets all changes to the "system_prompt" field.
func (m *AgentMutation) ResetSystemPrompt() {
	m.system_prompt = nil
	delete(m.clearedFields, agent.FieldSystemPrompt)
}

// SetIsMirror sets the "is_mirror" field.
func (m *AgentMutation) SetIsMirror(b bool) {
	m.is_mirror = &b
}

// IsMirror returns the value of the "is_mirror" field in the mutation.
func (m *AgentMutation) IsMirror() (r bool, exists bool) {
	v := m.is_mirror
	if v == nil {
		return
	}
	return *v, true
}

// OldIsMirror returns the old "is_mirror" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldIsMirror(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsMirror is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsMirror requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsMirror: %w", err)
	}
	return oldValue.IsMirror, nil
}

// ResetIsMirror resets all changes to the "is_mirror" field.
func (m *AgentMutation) ResetIsMirror() {
	m.is_mirror = nil
}

// SetPrimaryAgentID sets the "primary_agent_id" field.
func (m *AgentMutation) SetPrimaryAgentID(s string) {
	m.primary_agent_id = &s
}

// PrimaryAgentID returns the value of the "primary_agent_id" field in the mutation.
func (m *AgentMutation) PrimaryAgentID() (r string, exists bool) {
	v := m.primary_agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPrimaryAgentID returns the old "primary_agent_id" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldPrimaryAgentID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrimaryAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrimaryAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrimaryAgentID: %w", err)
	}
	return oldValue.PrimaryAgentID, nil
}

// ClearPrimaryAgentID clears the value of the "primary_agent_id" field.
func (m *AgentMutation) ClearPrimaryAgentID() {
	m.primary_agent_id = nil
	m.clearedFields[agent.FieldPrimaryAgentID] = struct{}{}
}

// PrimaryAgentIDCleared returns if the "primary_agent_id" field was cleared in this mutation.
func (m *AgentMutation) PrimaryAgentIDCleared() bool {
	_, ok := m.clearedFields[agent.FieldPrimaryAgentID]
	return ok
}

// ResetPrimaryAgentID resets all changes to the "primary_agent_id" field.
func (m *AgentMutation) ResetPrimaryAgentID() {
	m.primary_agent_id = nil
	delete(m.clearedFields, agent.FieldPrimaryAgentID)
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AgentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AgentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AgentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearTeam clears the "team" edge to the Team entity.
func (m *AgentMutation) ClearTeam() {
	m.clearedteam = true
	m.clearedFields[agent.FieldTeamID] = struct{}{}
}

// TeamCleared reports if the "team" edge to the Team entity was cleared.
func (m *AgentMutation) TeamCleared() bool {
	return m.clearedteam
}

// TeamIDs returns the "team" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TeamID instead. It exists only for internal usage by the builders.
func (m *AgentMutation) TeamIDs() (ids []string) {
	if id := m.team; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTeam resets all changes to the "team" edge.
func (m *AgentMutation) ResetTeam() {
	m.team = nil
	m.clearedteam = false
}

// Where appends a list predicates to the AgentMutation builder.
func (m *AgentMutation) Where(ps ...predicate.Agent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Agent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Agent).
func (m *AgentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.team != nil {
		fields = append(fields, agent.FieldTeamID)
	}
	if m.name != nil {
		fields = append(fields, agent.FieldName)
	}
	if m.title != nil {
		fields = append(fields, agent.FieldTitle)
	}
	if m.expertise != nil {
		fields = append(fields, agent.FieldExpertise)
	}
	if m.goal != nil {
		fields = append(fields, agent.FieldGoal)
	}
	if m.role != nil {
		fields = append(fields, agent.FieldRole)
	}
	if m.model != nil {
		fields = append(fields, agent.FieldModel)
	}
	if m.model_params != nil {
		fields = append(fields, agent.FieldModelParams)
	}
	if m.system_prompt != nil {
		fields = append(fields, agent.FieldSystemPrompt)
	}
	if m.is_mirror != nil {
		fields = append(fields, agent.FieldIsMirror)
	}
	if m.primary_agent_id != nil {
		fields = append(fields, agent.FieldPrimaryAgentID)
	}
	if m.created_at != nil {
		fields = append(fields, agent.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, agent.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agent.FieldTeamID:
		return m.TeamID()
	case agent.FieldName:
		return m.Name()
	case agent.FieldTitle:
		return m.Title()
	case agent.FieldExpertise:
		return m.Expertise()
	case agent.FieldGoal:
		return m.Goal()
	case agent.FieldRole:
		return m.Role()
	case agent.FieldModel:
		return m.Model()
	case agent.FieldModelParams:
		return m.ModelParams()
	case agent.FieldSystemPrompt:
		return m.SystemPrompt()
	case agent.FieldIsMirror:
		return m.IsMirror()
	case agent.FieldPrimaryAgentID:
		return m.PrimaryAgentID()
	case agent.FieldCreatedAt:
		return m.CreatedAt()
	case agent.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agent.FieldTeamID:
		return m.OldTeamID(ctx)
	case agent.FieldName:
		return m.OldName(ctx)
	case agent.FieldTitle:
		return m.OldTitle(ctx)
	case agent.FieldExpertise:
		return m.OldExpertise(ctx)
	case agent.FieldGoal:
		return m.OldGoal(ctx)
	case agent.FieldRole:
		return m.OldRole(ctx)
	case agent.FieldModel:
		return m.OldModel(ctx)
	case agent.FieldModelParams:
		return m.OldModelParams(ctx)
	case agent.FieldSystemPrompt:
		return m.OldSystemPrompt(ctx)
	case agent.FieldIsMirror:
		return m.OldIsMirror(ctx)
	case agent.FieldPrimaryAgentID:
		return m.OldPrimaryAgentID(ctx)
	case agent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case agent.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Agent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agent.FieldTeamID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTeamID(v)
		return nil
	case agent.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case agent.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case agent.FieldExpertise:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpertise(v)
		return nil
	case agent.FieldGoal:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGoal(v)
		return nil
	case agent.FieldRole:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case agent.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case agent.FieldModelParams:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelParams(v)
		return nil
	case agent.FieldSystemPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSystemPrompt(v)
		return nil
	case agent.FieldIsMirror:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsMirror(v)
		return nil
	case agent.FieldPrimaryAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrimaryAgentID(v)
		return nil
	case agent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case agent.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Agent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Agent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agent.FieldTitle) {
		fields = append(fields, agent.FieldTitle)
	}
	if m.FieldCleared(agent.FieldExpertise) {
		fields = append(fields, agent.FieldExpertise)
	}
	if m.FieldCleared(agent.FieldGoal) {
		fields = append(fields, agent.FieldGoal)
	}
	if m.FieldCleared(agent.FieldRole) {
		fields = append(fields, agent.FieldRole)
	}
	if m.FieldCleared(agent.FieldModelParams) {
		fields = append(fields, agent.FieldModelParams)
	}
	if m.FieldCleared(agent.FieldSystemPrompt) {
		fields = append(fields, agent.FieldSystemPrompt)
	}
	if m.FieldCleared(agent.FieldPrimaryAgentID) {
		fields = append(fields, agent.FieldPrimaryAgentID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentMutation) ClearField(name string) error {
	switch name {
	case agent.FieldTitle:
		m.ClearTitle()
		return nil
	case agent.FieldExpertise:
		m.ClearExpertise()
		return nil
	case agent.FieldGoal:
		m.ClearGoal()
		return nil
	case agent.FieldRole:
		m.ClearRole()
		return nil
	case agent.FieldModelParams:
		m.ClearModelParams()
		return nil
	case agent.FieldSystemPrompt:
		m.ClearSystemPrompt()
		return nil
	case agent.FieldPrimaryAgentID:
		m.ClearPrimaryAgentID()
		return nil
	}
	return fmt.Errorf("unknown Agent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentMutation) ResetField(name string) error {
	switch name {
	case agent.FieldTeamID:
		m.ResetTeamID()
		return nil
	case agent.FieldName:
		m.ResetName()
		return nil
	case agent.FieldTitle:
		m.ResetTitle()
		return nil
	case agent.FieldExpertise:
		m.ResetExpertise()
		return nil
	case agent.FieldGoal:
		m.ResetGoal()
		return nil
	case agent.FieldRole:
		m.ResetRole()
		return nil
	case agent.FieldModel:
		m.ResetModel()
		return nil
	case agent.FieldModelParams:
		m.ResetModelParams()
		return nil
	case agent.FieldSystemPrompt:
		m.ResetSystemPrompt()
		return nil
	case agent.FieldIsMirror:
		m.ResetIsMirror()
		return nil
	case agent.FieldPrimaryAgentID:
		m.ResetPrimaryAgentID()
		return nil
	case agent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case agent.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Agent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.team != nil {
		edges = append(edges, agent.EdgeTeam)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case agent.EdgeTeam:
		if id := m.team; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedteam {
		edges = append(edges, agent.EdgeTeam)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentMutation) EdgeCleared(name string) bool {
	switch name {
	case agent.EdgeTeam:
		return m.clearedteam
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentMutation) ClearEdge(name string) error {
	switch name {
	case agent.EdgeTeam:
		m.ClearTeam()
		return nil
	}
	return fmt.Errorf("unknown Agent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentMutation) ResetEdge(name string) error {
	switch name {
	case agent.EdgeTeam:
		m.ResetTeam()
		return nil
	}
	return fmt.Errorf("unknown Agent edge %s", name)
}

// CodeArtifactMutation represents an operation that mutates the CodeArtifact nodes in the graph.
type CodeArtifactMutation struct {
	config
	op             Op
	typ            string
	id             *string
	filename       *string
	language       *string
	content        *string
	description    *string
	version        *int
	addversion     *int
	source_agent   *string
	created_at     *time.Time
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	meeting        *string
	clearedmeeting bool
	done           bool
	oldValue       func(context.Context) (*CodeArtifact, error)
	predicates     []predicate.CodeArtifact
}

var _ ent.Mutation = (*CodeArtifactMutation)(nil)

// codeartifactOption allows management of the mutation configuration using functional options.
type codeartifactOption func(*CodeArtifactMutation)

// newCodeArtifactMutation creates new mutation for the CodeArtifact entity.
func newCodeArtifactMutation(c config, op Op, opts ...codeartifactOption) *CodeArtifactMutation {
	m := &CodeArtifactMutation{
		config:        c,
		op:            op,
		typ:           TypeCodeArtifact,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCodeArtifactID sets the ID field of the mutation.
func withCodeArtifactID(id string) codeartifactOption {
	return func(m *CodeArtifactMutation) {
		var (
			err   error
			once  sync.Once
			value *CodeArtifact
		)
		m.oldValue = func(ctx context.Context) (*CodeArtifact, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CodeArtifact.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCodeArtifact sets the old CodeArtifact of the mutation.
func withCodeArtifact(node *CodeArtifact) codeartifactOption {
	return func(m *CodeArtifactMutation) {
		m.oldValue = func(context.Context) (*CodeArtifact, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CodeArtifactMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CodeArtifactMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CodeArtifact entities.
func (m *CodeArtifactMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CodeArtifactMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CodeArtifactMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CodeArtifact.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetMeetingID sets the "meeting_id" field.
func (m *CodeArtifactMutation) SetMeetingID(s string) {
	m.meeting = &s
}

// MeetingID returns the value of the "meeting_id" field in the mutation.
func (m *CodeArtifactMutation) MeetingID() (r string, exists bool) {
	v := m.meeting
	if v == nil {
		return
	}
	return *v, true
}

// OldMeetingID returns the old "meeting_id" field's value of the CodeArtifact entity.
// If the CodeArtifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CodeArtifactMutation) OldMeetingID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMeetingID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMeetingID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMeetingID: %w", err)
	}
	return oldValue.MeetingID, nil
}

// ResetMeetingID resets all changes to the "meeting_id" field.
func (m *CodeArtifactMutation) ResetMeetingID() {
	m.meeting = nil
}

// SetFilename sets the "filename" field.
func (m *CodeArtifactMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *CodeArtifactMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the CodeArtifact entity.
// If the CodeArtifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CodeArtifactMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *CodeArtifactMutation) ResetFilename() {
	m.filename = nil
}

// SetLanguage sets the "language" field.
func (m *CodeArtifactMutation) SetLanguage(s string) {
	m.language = &s
}

// Language returns the value of the "language" field in the mutation.
func (m *CodeArtifactMutation) Language() (r string, exists bool) {
	v := m.language
	if v == nil {
		return
	}
	return *v, true
}

// OldLanguage returns the old "language" field's value of the CodeArtifact entity.
// If the CodeArtifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CodeArtifactMutation) OldLanguage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLanguage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLanguage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLanguage: %w", err)
	}
	return oldValue.Language, nil
}

// ResetLanguage resets all changes to the "language" field.
func (m *CodeArtifactMutation) ResetLanguage() {
	m.language = nil
}

// SetContent sets the "content" field.
func (m *CodeArtifactMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *CodeArtifactMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the CodeArtifact entity.
// If the CodeArtifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CodeArtifactMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *CodeArtifactMutation) ResetContent() {
	m.content = nil
}

// SetDescription sets the "description" field.
func (m *CodeArtifactMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *CodeArtifactMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the CodeArtifact entity.
// If the CodeArtifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CodeArtifactMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *CodeArtifactMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[codeartifact.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *CodeArtifactMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[codeartifact.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *CodeArtifactMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, codeartifact.FieldDescription)
}

// SetVersion sets the "version" field.
func (m *CodeArtifactMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *CodeArtifactMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the CodeArtifact entity.
// If the CodeArtifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CodeArtifactMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *CodeArtifactMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *CodeArtifactMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *CodeArtifactMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetSourceAgent sets the "source_agent" field.
func (m *CodeArtifactMutation) SetSourceAgent(s string) {
	m.source_agent = &s
}

// SourceAgent returns the value of the "source_agent" field in the mutation.
func (m *CodeArtifactMutation) SourceAgent() (r string, exists bool) {
	v := m.source_agent
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceAgent returns the old "source_agent" field's value of the CodeArtifact entity.
// If the CodeArtifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CodeArtifactMutation) OldSourceAgent(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceAgent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceAgent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceAgent: %w", err)
	}
	return oldValue.SourceAgent, nil
}

// ClearSourceAgent clears the value of the "source_agent" field.
func (m *CodeArtifactMutation) ClearSourceAgent() {
	m.source_agent = nil
	m.clearedFields[codeartifact.FieldSourceAgent] = struct{}{}
}

// SourceAgentCleared returns if the "source_agent" field was cleared in this mutation.
func (m *CodeArtifactMutation) SourceAgentCleared() bool {
	_, ok := m.clearedFields[codeartifact.FieldSourceAgent]
	return ok
}

// ResetSourceAgent resets all changes to the "source_agent" field.
func (m *CodeArtifactMutation) ResetSourceAgent() {
	m.source_agent = nil
	delete(m.clearedFields, codeartifact.FieldSourceAgent)
}

// SetCreatedAt sets the "created_at" field.
func (m *CodeArtifactMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CodeArtifactMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CodeArtifact entity.
// If the CodeArtifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CodeArtifactMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CodeArtifactMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CodeArtifactMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CodeArtifactMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the CodeArtifact entity.
// If the CodeArtifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CodeArtifactMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CodeArtifactMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearMeeting clears the "meeting" edge to the Meeting entity.
func (m *CodeArtifactMutation) ClearMeeting() {
	m.clearedmeeting = true
	m.clearedFields[codeartifact.FieldMeetingID] = struct{}{}
}

// MeetingCleared reports if the "meeting" edge to the Meeting entity was cleared.
func (m *CodeArtifactMutation) MeetingCleared() bool {
	return m.clearedmeeting
}

// MeetingIDs returns the "meeting" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// MeetingID instead. It exists only for internal usage by the builders.
func (m *CodeArtifactMutation) MeetingIDs() (ids []string) {
	if id := m.meeting; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetMeeting resets all changes to the "meeting" edge.
func (m *CodeArtifactMutation) ResetMeeting() {
	m.meeting = nil
	m.clearedmeeting = false
}

// Where appends a list predicates to the CodeArtifactMutation builder.
func (m *CodeArtifactMutation) Where(ps ...predicate.CodeArtifact) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CodeArtifactMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CodeArtifactMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CodeArtifact, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CodeArtifactMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CodeArtifactMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CodeArtifact).
func (m *CodeArtifactMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CodeArtifactMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.meeting != nil {
		fields = append(fields, codeartifact.FieldMeetingID)
	}
	if m.filename != nil {
		fields = append(fields, codeartifact.FieldFilename)
	}
	if m.language != nil {
		fields = append(fields, codeartifact.FieldLanguage)
	}
	if m.content != nil {
		fields = append(fields, codeartifact.FieldContent)
	}
	if m.description != nil {
		fields = append(fields, codeartifact.FieldDescription)
	}
	if m.version != nil {
		fields = append(fields, codeartifact.FieldVersion)
	}
	if m.source_agent != nil {
		fields = append(fields, codeartifact.FieldSourceAgent)
	}
	if m.created_at != nil {
		fields = append(fields, codeartifact.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, codeartifact.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CodeArtifactMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case codeartifact.FieldMeetingID:
		return m.MeetingID()
	case codeartifact.FieldFilename:
		return m.Filename()
	case codeartifact.FieldLanguage:
		return m.Language()
	case codeartifact.FieldContent:
		return m.Content()
	case codeartifact.FieldDescription:
		return m.Description()
	case codeartifact.FieldVersion:
		return m.Version()
	case codeartifact.FieldSourceAgent:
		return m.SourceAgent()
	case codeartifact.FieldCreatedAt:
		return m.CreatedAt()
	case codeartifact.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CodeArtifactMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case codeartifact.FieldMeetingID:
		return m.OldMeetingID(ctx)
	case codeartifact.FieldFilename:
		return m.OldFilename(ctx)
	case codeartifact.FieldLanguage:
		return m.OldLanguage(ctx)
	case codeartifact.FieldContent:
		return m.OldContent(ctx)
	case codeartifact.FieldDescription:
		return m.OldDescription(ctx)
	case codeartifact.FieldVersion:
		return m.OldVersion(ctx)
	case codeartifact.FieldSourceAgent:
		return m.OldSourceAgent(ctx)
	case codeartifact.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case codeartifact.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CodeArtifact field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CodeArtifactMutation) SetField(name string, value ent.Value) error {
	switch name {
	case codeartifact.FieldMeetingID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMeetingID(v)
		return nil
	case codeartifact.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case codeartifact.FieldLanguage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLanguage(v)
		return nil
	case codeartifact.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case codeartifact.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case codeartifact.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case codeartifact.FieldSourceAgent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceAgent(v)
		return nil
	case codeartifact.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case codeartifact.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CodeArtifact field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CodeArtifactMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, codeartifact.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CodeArtifactMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case codeartifact.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CodeArtifactMutation) AddField(name string, value ent.Value) error {
	switch name {
	case codeartifact.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown CodeArtifact numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CodeArtifactMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(codeartifact.FieldDescription) {
		fields = append(fields, codeartifact.FieldDescription)
	}
	if m.FieldCleared(codeartifact.FieldSourceAgent) {
		fields = append(fields, codeartifact.FieldSourceAgent)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CodeArtifactMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CodeArtifactMutation) ClearField(name string) error {
	switch name {
	case codeartifact.FieldDescription:
		m.ClearDescription()
		return nil
	case codeartifact.FieldSourceAgent:
		m.ClearSourceAgent()
		return nil
	}
	return fmt.Errorf("unknown CodeArtifact nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CodeArtifactMutation) ResetField(name string) error {
	switch name {
	case codeartifact.FieldMeetingID:
		m.ResetMeetingID()
		return nil
	case codeartifact.FieldFilename:
		m.ResetFilename()
		return nil
	case codeartifact.FieldLanguage:
		m.ResetLanguage()
		return nil
	case codeartifact.FieldContent:
		m.ResetContent()
		return nil
	case codeartifact.FieldDescription:
		m.ResetDescription()
		return nil
	case codeartifact.FieldVersion:
		m.ResetVersion()
		return nil
	case codeartifact.FieldSourceAgent:
		m.ResetSourceAgent()
		return nil
	case codeartifact.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case codeartifact.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown CodeArtifact field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CodeArtifactMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.meeting != nil {
		edges = append(edges, codeartifact.EdgeMeeting)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CodeArtifactMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case codeartifact.EdgeMeeting:
		if id := m.meeting; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CodeArtifactMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CodeArtifactMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CodeArtifactMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedmeeting {
		edges = append(edges, codeartifact.EdgeMeeting)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CodeArtifactMutation) EdgeCleared(name string) bool {
	switch name {
	case codeartifact.EdgeMeeting:
		return m.clearedmeeting
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CodeArtifactMutation) ClearEdge(name string) error {
	switch name {
	case codeartifact.EdgeMeeting:
		m.ClearMeeting()
		return nil
	}
	return fmt.Errorf("unknown CodeArtifact unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CodeArtifactMutation) ResetEdge(name string) error {
	switch name {
	case codeartifact.EdgeMeeting:
		m.ResetMeeting()
		return nil
	}
	return fmt.Errorf("unknown CodeArtifact edge %s", name)
}

// MeetingMutation represents an operation that mutates the Meeting nodes in the graph.
type MeetingMutation struct {
	config
	op                          Op
	typ                         string
	id                          *string
	title                       *string
	agenda                      *string
	agenda_questions            *[]string
	appendagenda_questions      []string
	agenda_rules                *[]string
	appendagenda_rules          []string
	output_type                 *meeting.OutputType
	meeting_type                *meeting.MeetingType
	max_rounds                  *int
	addmax_rounds               *int
	current_round               *int
	addcurrent_round            *int
	status                      *meeting.Status
	participant_agent_ids       *[]string
	appendparticipant_agent_ids []string
	individual_agent_id         *string
	source_meeting_ids          *[]string
	appendsource_meeting_ids    []string
	context_meeting_ids         *[]string
	appendcontext_meeting_ids   []string
	parent_meeting_id           *string
	rewrite_feedback            *string
	agenda_strategy             *meeting.AgendaStrategy
	round_plan                  *[]string
	appendround_plan            []string
	preferred_language          *string
	error_message               *string
	created_at                  *time.Time
	updated_at                  *time.Time
	completed_at                *time.Time
	clearedFields               map[string]struct{}
	team                        *string
	clearedteam                 bool
	messages                    map[string]struct{}
	removedmessages             map[string]struct{}
	clearedmessages             bool
	artifacts                   map[string]struct{}
	removedartifacts            map[string]struct{}
	clearedartifacts            bool
	done                        bool
	oldValue                    func(context.Context) (*Meeting, error)
	predicates                  []predicate.Meeting
}

var _ ent.Mutation = (*MeetingMutation)(nil)

// meetingOption allows management of the mutation configuration using functional options.
type meetingOption func(*MeetingMutation)

// newMeetingMutation creates new mutation for the Meeting entity.
func newMeetingMutation(c config, op Op, opts ...meetingOption) *MeetingMutation {
	m := &MeetingMutation{
		config:        c,
		op:            op,
		typ:           TypeMeeting,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMeetingID sets the ID field of the mutation.
func withMeetingID(id string) meetingOption {
	return func(m *MeetingMutation) {
		var (
			err   error
			once  sync.Once
			value *Meeting
		)
		m.oldValue = func(ctx context.Context) (*Meeting, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Meeting.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMeeting sets the old Meeting of the mutation.
func withMeeting(node *Meeting) meetingOption {
	return func(m *MeetingMutation) {
		m.oldValue = func(context.Context) (*Meeting, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MeetingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MeetingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Meeting entities.
func (m *MeetingMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MeetingMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MeetingMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Meeting.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTeamID sets the "team_id" field.
func (m *MeetingMutation) SetTeamID(s string) {
	m.team = &s
}

// TeamID returns the value of the "team_id" field in the mutation.
func (m *MeetingMutation) TeamID() (r string, exists bool) {
	v := m.team
	if v == nil {
		return
	}
	return *v, true
}

// OldTeamID returns the old "team_id" field's value of the Meeting entity.
// If the Meeting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingMutation) OldTeamID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTeamID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTeamID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTeamID: %w", err)
	}
	return oldValue.TeamID, nil
}

// ResetTeamID resets all changes to the "team_id" field.
func (m *MeetingMutation) ResetTeamID() {
	m.team = nil
}

// SetTitle sets the "title" field.
func (m *MeetingMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *MeetingMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Meeting entity.
// If the Meeting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *MeetingMutation) ResetTitle() {
	m.title = nil
}

// SetAgenda sets the "agenda" field.
func (m *MeetingMutation) SetAgenda(s string) {
	m.agenda = &s
}

// Agenda returns the value of the "agenda" field in the mutation.
func (m *MeetingMutation) Agenda() (r string, exists bool) {
	v := m.agenda
	if v == nil {
		return
	}
	return *v, true
}

// OldAgenda returns the old "agenda" field's value of the Meeting entity.
// If the Meeting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingMutation) OldAgenda(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgenda is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgenda requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgenda: %w", err)
	}
	return oldValue.Agenda, nil
}

// ClearAgenda clears the value of the "agenda" field.
func (m *MeetingMutation) ClearAgenda() {
	m.agenda = nil
	m.clearedFields[meeting.FieldAgenda] = struct{}{}
}

// AgendaCleared returns if the "agenda" field was cleared in this mutation.
func (m *MeetingMutation) AgendaCleared() bool {
	_, ok := m.clearedFields[meeting.FieldAgenda]
	return ok
}

// ResetAgenda resets all changes to the "agenda" field.
func (m *MeetingMutation) ResetAgenda() {
	m.agenda = nil
	delete(m.clearedFields, meeting.FieldAgenda)
}

// SetAgendaQuestions sets the "agenda_questions" field.
func (m *MeetingMutation) SetAgendaQuestions(s []string) {
	m.agenda_questions = &s
	m.appendagenda_questions = nil
}

// AgendaQuestions returns the value of the "agenda_questions" field in the mutation.
func (m *MeetingMutation) AgendaQuestions() (r []string, exists bool) {
	v := m.agenda_questions
	if v == nil {
		return
	}
	return *v, true
}

// OldAgendaQuestions returns the old "agenda_questions" field's value of the Meeting entity.
// If the Meeting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingMutation) OldAgendaQuestions(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgendaQuestions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgendaQuestions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgendaQuestions: %w", err)
	}
	return oldValue.AgendaQuestions, nil
}

// AppendAgendaQuestions adds s to the "agenda_questions" field.
func (m *MeetingMutation) AppendAgendaQuestions(s []string) {
	m.appendagenda_questions = append(m.appendagenda_questions, s...)
}

// AppendedAgendaQuestions returns the list of values that were appended to the "agenda_questions" field in this mutation.
func (m *MeetingMutation) AppendedAgendaQuestions() ([]string, bool) {
	if len(m.appendagenda_questions) == 0 {
		return nil, false
	}
	return m.appendagenda_questions, true
}

// ClearAgendaQuestions clears the value of the "agenda_questions" field.
func (m *MeetingMutation) ClearAgendaQuestions() {
	m.agenda_questions = nil
	m.appendagenda_questions = nil
	m.clearedFields[meeting.FieldAgendaQuestions] = struct{}{}
}

// AgendaQuestionsCleared returns if the "agenda_questions" field was cleared in this mutation.
func (m *MeetingMutation) AgendaQuestionsCleared() bool {
	_, ok := m.clearedFields[meeting.FieldAgendaQuestions]
	return ok
}

// ResetAgendaQuestions resets all changes to the "agenda_questions" field.
func (m *MeetingMutation) ResetAgendaQuestions() {
	m.agenda_questions = nil
	m.appendagenda_questions = nil
	delete(m.clearedFields, meeting.FieldAgendaQuestions)
}

// SetAgendaRules sets the "agenda_rules" field.
func (m *MeetingMutation) SetAgendaRules(s []string) {
	m.agenda_rules = &s
	m.appendagenda_rules = nil
}

// AgendaRules returns the value of the "agenda_rules" field in the mutation.
func (m *MeetingMutation) AgendaRules() (r []string, exists bool) {
	v := m.agenda_rules
	if v == nil {
		return
	}
	return *v, true
}

// OldAgendaRules returns the old "agenda_rules" field's value of the Meeting entity.
// If the Meeting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingMutation) OldAgendaRules(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgendaRules is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgendaRules requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgendaRules: %w", err)
	}
	return oldValue.AgendaRules, nil
}

// AppendAgendaRules adds s to the "agenda_rules" field.
func (m *MeetingMutation) AppendAgendaRules(s []string) {
	m.appendagenda_rules = append(m.appendagenda_rules, s...)
}

// AppendedAgendaRules returns the list of values that were appended to the "agenda_rules" field in this mutation.
func (m *MeetingMutation) AppendedAgendaRules() ([]string, bool) {
	if len(m.appendagenda_rules) == 0 {
		return nil, false
	}
	return m.appendagenda_rules, true
}

// ClearAgendaRules clears the value of the "agenda_rules" field.
func (m *MeetingMutation) ClearAgendaRules() {
	m.agenda_rules = nil
	m.appendagenda_rules = nil
	m.clearedFields[meeting.FieldAgendaRules] = struct{}{}
}

// AgendaRulesCleared returns if the "agenda_rules" field was cleared in this mutation.
func (m *MeetingMutation) AgendaRulesCleared() bool {
	_, ok := m.clearedFields[meeting.FieldAgendaRules]
	return ok
}

// ResetAgendaRules resets all changes to the "agenda_rules" field.
func (m *MeetingMutation) ResetAgendaRules() {
	m.agenda_rules = nil
	m.appendagenda_rules = nil
	delete(m.clearedFields, meeting.FieldAgendaRules)
}

// SetOutputType sets the "output_type" field.
func (m *MeetingMutation) SetOutputType(mt meeting.OutputType) {
	m.output_type = &mt
}

// OutputType returns the value of the "output_type" field in the mutation.
func (m *MeetingMutation) OutputType() (r meeting.OutputType, exists bool) {
	v := m.output_type
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputType returns the old "output_type" field's value of the Meeting entity.
// If the Meeting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingMutation) OldOutputType(ctx context.Context) (v meeting.OutputType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputType: %w", err)
	}
	return oldValue.OutputType, nil
}

// ResetOutputType resets all changes to the "output_type" field.
func (m *MeetingMutation) ResetOutputType() {
	m.output_type = nil
}

// SetMeetingType sets the "meeting_type" field.
func (m *MeetingMutation) SetMeetingType(mt meeting.MeetingType) {
	m.meeting_type = &mt
}

// MeetingType returns the value of the "meeting_type" field in the mutation.
func (m *MeetingMutation) MeetingType() (r meeting.MeetingType, exists bool) {
	v := m.meeting_type
	if v == nil {
		return
	}
	return *v, true
}

// OldMeetingType returns the old "meeting_type" field's value of the Meeting entity.
// If the Meeting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingMutation) OldMeetingType(ctx context.Context) (v meeting.MeetingType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMeetingType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMeetingType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMeetingType: %w", err)
	}
	return oldValue.MeetingType, nil
}

// ResetMeetingType resets all changes to the "meeting_type" field.
func (m *MeetingMutation) ResetMeetingType() {
	m.meeting_type = nil
}

// SetMaxRounds sets the "max_rounds" field.
func (m *MeetingMutation) SetMaxRounds(i int) {
	m.max_rounds = &i
	m.addmax_rounds = nil
}

// MaxRounds returns the value of the "max_rounds" field in the mutation.
func (m *MeetingMutation) MaxRounds() (r int, exists bool) {
	v := m.max_rounds
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxRounds returns the old "max_rounds" field's value of the Meeting entity.
// If the Meeting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingMutation) OldMaxRounds(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxRounds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxRounds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxRounds: %w", err)
	}
	return oldValue.MaxRounds, nil
}

// AddMaxRounds adds i to the "max_rounds" field.
func (m *MeetingMutation) AddMaxRounds(i int) {
	if m.addmax_rounds != nil {
		*m.addmax_rounds += i
	} else {
		m.addmax_rounds = &i
	}
}

// AddedMaxRounds returns the value that was added to the "max_rounds" field in this mutation.
func (m *MeetingMutation) AddedMaxRounds() (r int, exists bool) {
	v := m.addmax_rounds
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxRounds resets all changes to the "max_rounds" field.
func (m *MeetingMutation) ResetMaxRounds() {
	m.max_rounds = nil
	m.addmax_rounds = nil
}

// SetCurrentRound sets the "current_round" field.
func (m *MeetingMutation) SetCurrentRound(i int) {
	m.current_round = &i
	m.addcurrent_round = nil
}

// CurrentRound returns the value of the "current_round" field in the mutation.
func (m *MeetingMutation) CurrentRound() (r int, exists bool) {
	v := m.current_round
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentRound returns the old "current_round" field's value of the Meeting entity.
// If the Meeting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingMutation) OldCurrentRound(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentRound is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentRound requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentRound: %w", err)
	}
	return oldValue.CurrentRound, nil
}

// AddCurrentRound adds i to the "current_round" field.
func (m *MeetingMutation) AddCurrentRound(i int) {
	if m.addcurrent_round != nil {
		*m.addcurrent_round += i
	} else {
		m.addcurrent_round = &i
	}
}

// AddedCurrentRound returns the value that was added to the "current_round" field in this mutation.
func (m *MeetingMutation) AddedCurrentRound() (r int, exists bool) {
	v := m.addcurrent_round
	if v == nil {
		return
	}
	return *v, true
}

// ResetCurrentRound resets all changes to the "current_round" field.
func (m *MeetingMutation) ResetCurrentRound() {
	m.current_round = nil
	m.addcurrent_round = nil
}

// SetStatus sets the "status" field.
func (m *MeetingMutation) SetStatus(value meeting.Status) {
	m.status = &value
}

// Status returns the value of the "status" field in the mutation.
func (m *MeetingMutation) Status() (r meeting.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Meeting entity.
// If the Meeting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingMutation) OldStatus(ctx context.Context) (v meeting.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *MeetingMutation) ResetStatus() {
	m.status = nil
}

// SetParticipantAgentIds sets the "participant_agent_ids" field.
func (m *MeetingMutation) SetParticipantAgentIds(s []string) {
	m.participant_agent_ids = &s
	m.appendparticipant_agent_ids = nil
}

// ParticipantAgentIds returns the value of the "participant_agent_ids" field in the mutation.
func (m *MeetingMutation) ParticipantAgentIds() (r []string, exists bool) {
	v := m.participant_agent_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldParticipantAgentIds returns the old "participant_agent_ids" field's value of the Meeting entity.
// If the Meeting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingMutation) OldParticipantAgentIds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParticipantAgentIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParticipantAgentIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParticipantAgentIds: %w", err)
	}
	return oldValue.ParticipantAgentIds, nil
}

// AppendParticipantAgentIds adds s to the "participant_agent_ids" field.
func (m *MeetingMutation) AppendParticipantAgentIds(s []string) {
	m.appendparticipant_agent_ids = append(m.appendparticipant_agent_ids, s...)
}

// AppendedParticipantAgentIds returns the list of values that were appended to the "participant_agent_ids" field in this mutation.
func (m *MeetingMutation) AppendedParticipantAgentIds() ([]string, bool) {
	if len(m.appendparticipant_agent_ids) == 0 {
		return nil, false
	}
	return m.appendparticipant_agent_ids, true
}

// ClearParticipantAgentIds clears the value of the "participant_agent_ids" field.
func (m *MeetingMutation) ClearParticipantAgentIds() {
	m.participant_agent_ids = nil
	m.appendparticipant_agent_ids = nil
	m.clearedFields[meeting.FieldParticipantAgentIds] = struct{}{}
}

// ParticipantAgentIdsCleared returns if the "participant_agent_ids" field was cleared in this mutation.
func (m *MeetingMutation) ParticipantAgentIdsCleared() bool {
	_, ok := m.clearedFields[meeting.FieldParticipantAgentIds]
	return ok
}

// ResetParticipantAgentIds resets all changes to the "participant_agent_ids" field.
func (m *MeetingMutation) ResetParticipantAgentIds() {
	m.participant_agent_ids = nil
	m.appendparticipant_agent_ids = nil
	delete(m.clearedFields, meeting.FieldParticipantAgentIds)
}

// SetIndividualAgentID sets the "individual_agent_id" field.
func (m *MeetingMutation) SetIndividualAgentID(s string) {
	m.individual_agent_id = &s
}

// IndividualAgentID returns the value of the "individual_agent_id" field in the mutation.
func (m *MeetingMutation) IndividualAgentID() (r string, exists bool) {
	v := m.individual_agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldIndividualAgentID returns the old "individual_agent_id" field's value of the Meeting entity.
// If the Meeting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingMutation) OldIndividualAgentID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIndividualAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIndividualAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIndividualAgentID: %w", err)
	}
	return oldValue.IndividualAgentID, nil
}

// ClearIndividualAgentID clears the value of the "individual_agent_id" field.
func (m *MeetingMutation) ClearIndividualAgentID() {
	m.individual_agent_id = nil
	m.clearedFields[meeting.FieldIndividualAgentID] = struct{}{}
}

// IndividualAgentIDCleared returns if the "individual_agent_id" field was cleared in this mutation.
func (m *MeetingMutation) IndividualAgentIDCleared() bool {
	_, ok := m.clearedFields[meeting.FieldIndividualAgentID]
	return ok
}

// ResetIndividualAgentID resets all changes to the "individual_agent_id" field.
func (m *MeetingMutation) ResetIndividualAgentID() {
	m.individual_agent_id = nil
	delete(m.clearedFields, meeting.FieldIndividualAgentID)
}

// SetSourceMeetingIds sets the "source_meeting_ids" field.
func (m *MeetingMutation) SetSourceMeetingIds(s []string) {
	m.source_meeting_ids = &s
	m.appendsource_meeting_ids = nil
}

// SourceMeetingIds returns the value of the "source_meeting_ids" field in the mutation.
func (m *MeetingMutation) SourceMeetingIds() (r []string, exists bool) {
	v := m.source_meeting_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceMeetingIds returns the old "source_meeting_ids" field's value of the Meeting entity.
// If the Meeting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingMutation) OldSourceMeetingIds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceMeetingIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceMeetingIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceMeetingIds: %w", err)
	}
	return oldValue.SourceMeetingIds, nil
}

// AppendSourceMeetingIds adds s to the "source_meeting_ids" field.
func (m *MeetingMutation) AppendSourceMeetingIds(s []string) {
	m.appendsource_meeting_ids = append(m.appendsource_meeting_ids, s...)
}

// AppendedSourceMeetingIds returns the list of values that were appended to the "source_meeting_ids" field in this mutation.
func (m *MeetingMutation) AppendedSourceMeetingIds() ([]string, bool) {
	if len(m.appendsource_meeting_ids) == 0 {
		return nil, false
	}
	return m.appendsource_meeting_ids, true
}

// ClearSourceMeetingIds clears the value of the "source_meeting_ids" field.
func (m *MeetingMutation) ClearSourceMeetingIds() {
	m.source_meeting_ids = nil
	m.appendsource_meeting_ids = nil
	m.clearedFields[meeting.FieldSourceMeetingIds] = struct{}{}
}

// SourceMeetingIdsCleared returns if the "source_meeting_ids" field was cleared in this mutation.
func (m *MeetingMutation) SourceMeetingIdsCleared() bool {
	_, ok := m.clearedFields[meeting.FieldSourceMeetingIds]
	return ok
}

// ResetSourceMeetingIds resets all changes to the "source_meeting_ids" field.
func (m *MeetingMutation) ResetSourceMeetingIds() {
	m.source_meeting_ids = nil
	m.appendsource_meeting_ids = nil
	delete(m.clearedFields, meeting.FieldSourceMeetingIds)
}

// SetContextMeetingIds sets the "context_meeting_ids" field.
func (m *MeetingMutation) SetContextMeetingIds(s []string) {
	m.context_meeting_ids = &s
	m.appendcontext_meeting_ids = nil
}

// ContextMeetingIds returns the value of the "context_meeting_ids" field in the mutation.
func (m *MeetingMutation) ContextMeetingIds() (r []string, exists bool) {
	v := m.context_meeting_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldContextMeetingIds returns the old "context_meeting_ids" field's value of the Meeting entity.
// If the Meeting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingMutation) OldContextMeetingIds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContextMeetingIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContextMeetingIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContextMeetingIds: %w", err)
	}
	return oldValue.ContextMeetingIds, nil
}

// AppendContextMeetingIds adds s to the "context_meeting_ids" field.
func (m *MeetingMutation) AppendContextMeetingIds(s []string) {
	m.appendcontext_meeting_ids = append(m.appendcontext_meeting_ids, s...)
}

// AppendedContextMeetingIds returns the list of values that were appended to the "context_meeting_ids" field in this mutation.
func (m *MeetingMutation) AppendedContextMeetingIds() ([]string, bool) {
	if len(m.appendcontext_meeting_ids) == 0 {
		return nil, false
	}
	return m.appendcontext_meeting_ids, true
}

// ClearContextMeetingIds clears the value of the "context_meeting_ids" field.
func (m *MeetingMutation) ClearContextMeetingIds() {
	m.context_meeting_ids = nil
	m.appendcontext_meeting_ids = nil
	m.clearedFields[meeting.FieldContextMeetingIds] = struct{}{}
}

// ContextMeetingIdsCleared returns if the "context_meeting_ids" field was cleared in this mutation.
func (m *MeetingMutation) ContextMeetingIdsCleared() bool {
	_, ok := m.clearedFields[meeting.FieldContextMeetingIds]
	return ok
}

// ResetContextMeetingIds resets all changes to the "context_meeting_ids" field.
func (m *MeetingMutation) ResetContextMeetingIds() {
	m.context_meeting_ids = nil
	m.appendcontext_meeting_ids = nil
	delete(m.clearedFields, meeting.FieldContextMeetingIds)
}

// SetParentMeetingID sets the "parent_meeting_id" field.
func (m *MeetingMutation) SetParentMeetingID(s string) {
	m.parent_meeting_id = &s
}

// ParentMeetingID returns the value of the "parent_meeting_id" field in the mutation.
func (m *MeetingMutation) ParentMeetingID() (r string, exists bool) {
	v := m.parent_meeting_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParentMeetingID returns the old "parent_meeting_id" field's value of the Meeting entity.
// If the Meeting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingMutation) OldParentMeetingID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentMeetingID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentMeetingID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentMeetingID: %w", err)
	}
	return oldValue.ParentMeetingID, nil
}

// ClearParentMeetingID clears the value of the "parent_meeting_id" field.
func (m *MeetingMutation) ClearParentMeetingID() {
	m.parent_meeting_id = nil
	m.clearedFields[meeting.FieldParentMeetingID] = struct{}{}
}

// ParentMeetingIDCleared returns if the "parent_meeting_id" field was cleared in this mutation.
func (m *MeetingMutation) ParentMeetingIDCleared() bool {
	_, ok := m.clearedFields[meeting.FieldParentMeetingID]
	return ok
}

// ResetParentMeetingID resets all changes to the "parent_meeting_id" field.
func (m *MeetingMutation) ResetParentMeetingID() {
	m.parent_meeting_id = nil
	delete(m.clearedFields, meeting.FieldParentMeetingID)
}

// SetRewriteFeedback sets the "rewrite_feedback" field.
func (m *MeetingMutation) SetRewriteFeedback(s string) {
	m.rewrite_feedback = &s
}

// RewriteFeedback returns the value of the "rewrite_feedback" field in the mutation.
func (m *MeetingMutation) RewriteFeedback() (r string, exists bool) {
	v := m.rewrite_feedback
	if v == nil {
		return
	}
	return *v, true
}

// OldRewriteFeedback returns the old "rewrite_feedback" field's value of the Meeting entity.
// If the Meeting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingMutation) OldRewriteFeedback(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRewriteFeedback is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRewriteFeedback requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRewriteFeedback: %w", err)
	}
	return oldValue.RewriteFeedback, nil
}

// ClearRewriteFeedback clears the value of the "rewrite_feedback" field.
func (m *MeetingMutation) ClearRewriteFeedback() {
	m.rewrite_feedback = nil
	m.clearedFields[meeting.FieldRewriteFeedback] = struct{}{}
}

// RewriteFeedbackCleared returns if the "rewrite_feedback" field was cleared in this mutation.
func (m *MeetingMutation) RewriteFeedbackCleared() bool {
	_, ok := m.clearedFields[meeting.FieldRewriteFeedback]
	return ok
}

// ResetRewriteFeedback resets all changes to the "rewrite_feedback" field.
func (m *MeetingMutation) ResetRewriteFeedback() {
	m.rewrite_feedback = nil
	delete(m.clearedFields, meeting.FieldRewriteFeedback)
}

// SetAgendaStrategy sets the "agenda_strategy" field.
func (m *MeetingMutation) SetAgendaStrategy(ms meeting.AgendaStrategy) {
	m.agenda_strategy = &ms
}

// AgendaStrategy returns the value of the "agenda_strategy" field in the mutation.
func (m *MeetingMutation) AgendaStrategy() (r meeting.AgendaStrategy, exists bool) {
	v := m.agenda_strategy
	if v == nil {
		return
	}
	return *v, true
}

// OldAgendaStrategy returns the old "agenda_strategy" field's value of the Meeting entity.
// If the Meeting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingMutation) OldAgendaStrategy(ctx context.Context) (v meeting.AgendaStrategy, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgendaStrategy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgendaStrategy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgendaStrategy: %w", err)
	}
	return oldValue.AgendaStrategy, nil
}

// ResetAgendaStrategy resets all changes to the "agenda_strategy" field.
func (m *MeetingMutation) ResetAgendaStrategy() {
	m.agenda_strategy = nil
}

// SetRoundPlan sets the "round_plan" field.
func (m *MeetingMutation) SetRoundPlan(s []string) {
	m.round_plan = &s
	m.appendround_plan = nil
}

// RoundPlan returns the value of the "round_plan" field in the mutation.
func (m *MeetingMutation) RoundPlan() (r []string, exists bool) {
	v := m.round_plan
	if v == nil {
		return
	}
	return *v, true
}

// OldRoundPlan returns the old "round_plan" field's value of the Meeting entity.
// If the Meeting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingMutation) OldRoundPlan(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoundPlan is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoundPlan requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoundPlan: %w", err)
	}
	return oldValue.RoundPlan, nil
}

// AppendRoundPlan adds s to the "round_plan" field.
func (m *MeetingMutation) AppendRoundPlan(s []string) {
	m.appendround_plan = append(m.appendround_plan, s...)
}

// AppendedRoundPlan returns the list of values that were appended to the "round_plan" field in this mutation.
func (m *MeetingMutation) AppendedRoundPlan() ([]string, bool) {
	if len(m.appendround_plan) == 0 {
		return nil, false
	}
	return m.appendround_plan, true
}

// ClearRoundPlan clears the value of the "round_plan" field.
func (m *MeetingMutation) ClearRoundPlan() {
	m.round_plan = nil
	m.appendround_plan = nil
	m.clearedFields[meeting.FieldRoundPlan] = struct{}{}
}

// RoundPlanCleared returns if the "round_plan" field was cleared in this mutation.
func (m *MeetingMutation) RoundPlanCleared() bool {
	_, ok := m.clearedFields[meeting.FieldRoundPlan]
	return ok
}

// ResetRoundPlan resets all changes to the "round_plan" field.
func (m *MeetingMutation) ResetRoundPlan() {
	m.round_plan = nil
	m.appendround_plan = nil
	delete(m.clearedFields, meeting.FieldRoundPlan)
}

// SetPreferredLanguage sets the "preferred_language" field.
func (m *MeetingMutation) SetPreferredLanguage(s string) {
	m.preferred_language = &s
}

// PreferredLanguage returns the value of the "preferred_language" field in the mutation.
func (m *MeetingMutation) PreferredLanguage() (r string, exists bool) {
	v := m.preferred_language
	if v == nil {
		return
	}
	return *v, true
}

// OldPreferredLanguage returns the old "preferred_language" field's value of the Meeting entity.
// If the Meeting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingMutation) OldPreferredLanguage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPreferredLanguage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPreferredLanguage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPreferredLanguage: %w", err)
	}
	return oldValue.PreferredLanguage, nil
}

// ClearPreferredLanguage clears the value of the "preferred_language" field.
func (m *MeetingMutation) ClearPreferredLanguage() {
	m.preferred_language = nil
	m.clearedFields[meeting.FieldPreferredLanguage] = struct{}{}
}

// PreferredLanguageCleared returns if the "preferred_language" field was cleared in this mutation.
func (m *MeetingMutation) PreferredLanguageCleared() bool {
	_, ok := m.clearedFields[meeting.FieldPreferredLanguage]
	return ok
}

// ResetPreferredLanguage resets all changes to the "preferred_language" field.
func (m *MeetingMutation) ResetPreferredLanguage() {
	m.preferred_language = nil
	delete(m.clearedFields, meeting.FieldPreferredLanguage)
}

// SetErrorMessage sets the "error_message" field.
func (m *MeetingMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *MeetingMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Meeting entity.
// If the Meeting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *MeetingMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[meeting.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *MeetingMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[meeting.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *MeetingMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, meeting.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *MeetingMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MeetingMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Meeting entity.
// If the Meeting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MeetingMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *MeetingMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *MeetingMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Meeting entity.
// If the Meeting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *MeetingMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *MeetingMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *MeetingMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Meeting entity.
// If the Meeting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *MeetingMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[meeting.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *MeetingMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[meeting.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *MeetingMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, meeting.FieldCompletedAt)
}

// ClearTeam clears the "team" edge to the Team entity.
func (m *MeetingMutation) ClearTeam() {
	m.clearedteam = true
	m.clearedFields[meeting.FieldTeamID] = struct{}{}
}

// TeamCleared reports if the "team" edge to the Team entity was cleared.
func (m *MeetingMutation) TeamCleared() bool {
	return m.clearedteam
}

// TeamIDs returns the "team" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TeamID instead. It exists only for internal usage by the builders.
func (m *MeetingMutation) TeamIDs() (ids []string) {
	if id := m.team; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTeam resets all changes to the "team" edge.
func (m *MeetingMutation) ResetTeam() {
	m.team = nil
	m.clearedteam = false
}

// AddMessageIDs adds the "messages" edge to the Message entity by ids.
func (m *MeetingMutation) AddMessageIDs(ids ...string) {
	if m.messages == nil {
		m.messages = make(map[string]struct{})
	}
	for i := range ids {
		m.messages[ids[i]] = struct{}{}
	}
}

// ClearMessages clears the "messages" edge to the Message entity.
func (m *MeetingMutation) ClearMessages() {
	m.clearedmessages = true
}

// MessagesCleared reports if the "messages" edge to the Message entity was cleared.
func (m *MeetingMutation) MessagesCleared() bool {
	return m.clearedmessages
}

// RemoveMessageIDs removes the "messages" edge to the Message entity by IDs.
func (m *MeetingMutation) RemoveMessageIDs(ids ...string) {
	if m.removedmessages == nil {
		m.removedmessages = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.messages, ids[i])
		m.removedmessages[ids[i]] = struct{}{}
	}
}

// RemovedMessages returns the removed IDs of the "messages" edge to the Message entity.
func (m *MeetingMutation) RemovedMessagesIDs() (ids []string) {
	for id := range m.removedmessages {
		ids = append(ids, id)
	}
	return
}

// MessagesIDs returns the "messages" edge IDs in the mutation.
func (m *MeetingMutation) MessagesIDs() (ids []string) {
	for id := range m.messages {
		ids = append(ids, id)
	}
	return
}

// ResetMessages resets all changes to the "messages" edge.
func (m *MeetingMutation) ResetMessages() {
	m.messages = nil
	m.clearedmessages = false
	m.removedmessages = nil
}

// AddArtifactIDs adds the "artifacts" edge to the CodeArtifact entity by ids.
func (m *MeetingMutation) AddArtifactIDs(ids ...string) {
	if m.artifacts == nil {
		m.artifacts = make(map[string]struct{})
	}
	for i := range ids {
		m.artifacts[ids[i]] = struct{}{}
	}
}

// ClearArtifacts clears the "artifacts" edge to the CodeArtifact entity.
func (m *MeetingMutation) ClearArtifacts() {
	m.clearedartifacts = true
}

// ArtifactsCleared reports if the "artifacts" edge to the CodeArtifact entity was cleared.
func (m *MeetingMutation) ArtifactsCleared() bool {
	return m.clearedartifacts
}

// RemoveArtifactIDs removes the "artifacts" edge to the CodeArtifact entity by IDs.
func (m *MeetingMutation) RemoveArtifactIDs(ids ...string) {
	if m.removedartifacts == nil {
		m.removedartifacts = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.artifacts, ids[i])
		m.removedartifacts[ids[i]] = struct{}{}
	}
}

// RemovedArtifacts returns the removed IDs of the "artifacts" edge to the CodeArtifact entity.
func (m *MeetingMutation) RemovedArtifactsIDs() (ids []string) {
	for id := range m.removedartifacts {
		ids = append(ids, id)
	}
	return
}

// ArtifactsIDs returns the "artifacts" edge IDs in the mutation.
func (m *MeetingMutation) ArtifactsIDs() (ids []string) {
	for id := range m.artifacts {
		ids = append(ids, id)
	}
	return
}

// ResetArtifacts resets all changes to the "artifacts" edge.
func (m *MeetingMutation) ResetArtifacts() {
	m.artifacts = nil
	m.clearedartifacts = false
	m.removedartifacts = nil
}

// Where appends a list predicates to the MeetingMutation builder.
func (m *MeetingMutation) Where(ps ...predicate.Meeting) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MeetingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MeetingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Meeting, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MeetingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MeetingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Meeting).
func (m *MeetingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MeetingMutation) Fields() []string {
	fields := make([]string, 0, 23)
	if m.team != nil {
		fields = append(fields, meeting.FieldTeamID)
	}
	if m.title != nil {
		fields = append(fields, meeting.FieldTitle)
	}
	if m.agenda != nil {
		fields = append(fields, meeting.FieldAgenda)
	}
	if m.agenda_questions != nil {
		fields = append(fields, meeting.FieldAgendaQuestions)
	}
	if m.agenda_rules != nil {
		fields = append(fields, meeting.FieldAgendaRules)
	}
	if m.output_type != nil {
		fields = append(fields, meeting.FieldOutputType)
	}
	if m.meeting_type != nil {
		fields = append(fields, meeting.FieldMeetingType)
	}
	if m.max_rounds != nil {
		fields = append(fields, meeting.FieldMaxRounds)
	}
	if m.current_round != nil {
		fields = append(fields, meeting.FieldCurrentRound)
	}
	if m.status != nil {
		fields = append(fields, meeting.FieldStatus)
	}
	if m.participant_agent_ids != nil {
		fields = append(fields, meeting.FieldParticipantAgentIds)
	}
	if m.individual_agent_id != nil {
		fields = append(fields, meeting.FieldIndividualAgentID)
	}
	if m.source_meeting_ids != nil {
		fields = append(fields, meeting.FieldSourceMeetingIds)
	}
	if m.context_meeting_ids != nil {
		fields = append(fields, meeting.FieldContextMeetingIds)
	}
	if m.parent_meeting_id != nil {
		fields = append(fields, meeting.FieldParentMeetingID)
	}
	if m.rewrite_feedback != nil {
		fields = append(fields, meeting.FieldRewriteFeedback)
	}
	if m.agenda_strategy != nil {
		fields = append(fields, meeting.FieldAgendaStrategy)
	}
	if m.round_plan != nil {
		fields = append(fields, meeting.FieldRoundPlan)
	}
	if m.preferred_language != nil {
		fields = append(fields, meeting.FieldPreferredLanguage)
	}
	if m.error_message != nil {
		fields = append(fields, meeting.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, meeting.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, meeting.FieldUpdatedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, meeting.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MeetingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case meeting.FieldTeamID:
		return m.TeamID()
	case meeting.FieldTitle:
		return m.Title()
	case meeting.FieldAgenda:
		return m.Agenda()
	case meeting.FieldAgendaQuestions:
		return m.AgendaQuestions()
	case meeting.FieldAgendaRules:
		return m.AgendaRules()
	case meeting.FieldOutputType:
		return m.OutputType()
	case meeting.FieldMeetingType:
		return m.MeetingType()
	case meeting.FieldMaxRounds:
		return m.MaxRounds()
	case meeting.FieldCurrentRound:
		return m.CurrentRound()
	case meeting.FieldStatus:
		return m.Status()
	case meeting.FieldParticipantAgentIds:
		return m.ParticipantAgentIds()
	case meeting.FieldIndividualAgentID:
		return m.IndividualAgentID()
	case meeting.FieldSourceMeetingIds:
		return m.SourceMeetingIds()
	case meeting.FieldContextMeetingIds:
		return m.ContextMeetingIds()
	case meeting.FieldParentMeetingID:
		return m.ParentMeetingID()
	case meeting.FieldRewriteFeedback:
		return m.RewriteFeedback()
	case meeting.FieldAgendaStrategy:
		return m.AgendaStrategy()
	case meeting.FieldRoundPlan:
		return m.RoundPlan()
	case meeting.FieldPreferredLanguage:
		return m.PreferredLanguage()
	case meeting.FieldErrorMessage:
		return m.ErrorMessage()
	case meeting.FieldCreatedAt:
		return m.CreatedAt()
	case meeting.FieldUpdatedAt:
		return m.UpdatedAt()
	case meeting.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MeetingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case meeting.FieldTeamID:
		return m.OldTeamID(ctx)
	case meeting.FieldTitle:
		return m.OldTitle(ctx)
	case meeting.FieldAgenda:
		return m.OldAgenda(ctx)
	case meeting.FieldAgendaQuestions:
		return m.OldAgendaQuestions(ctx)
	case meeting.FieldAgendaRules:
		return m.OldAgendaRules(ctx)
	case meeting.FieldOutputType:
		return m.OldOutputType(ctx)
	case meeting.FieldMeetingType:
		return m.OldMeetingType(ctx)
	case meeting.FieldMaxRounds:
		return m.OldMaxRounds(ctx)
	case meeting.FieldCurrentRound:
		return m.OldCurrentRound(ctx)
	case meeting.FieldStatus:
		return m.OldStatus(ctx)
	case meeting.FieldParticipantAgentIds:
		return m.OldParticipantAgentIds(ctx)
	case meeting.FieldIndividualAgentID:
		return m.OldIndividualAgentID(ctx)
	case meeting.FieldSourceMeetingIds:
		return m.OldSourceMeetingIds(ctx)
	case meeting.FieldContextMeetingIds:
		return m.OldContextMeetingIds(ctx)
	case meeting.FieldParentMeetingID:
		return m.OldParentMeetingID(ctx)
	case meeting.FieldRewriteFeedback:
		return m.OldRewriteFeedback(ctx)
	case meeting.FieldAgendaStrategy:
		return m.OldAgendaStrategy(ctx)
	case meeting.FieldRoundPlan:
		return m.OldRoundPlan(ctx)
	case meeting.FieldPreferredLanguage:
		return m.OldPreferredLanguage(ctx)
	case meeting.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case meeting.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case meeting.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case meeting.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Meeting field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MeetingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case meeting.FieldTeamID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTeamID(v)
		return nil
	case meeting.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case meeting.FieldAgenda:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgenda(v)
		return nil
	case meeting.FieldAgendaQuestions:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgendaQuestions(v)
		return nil
	case meeting.FieldAgendaRules:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgendaRules(v)
		return nil
	case meeting.FieldOutputType:
		v, ok := value.(meeting.OutputType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputType(v)
		return nil
	case meeting.FieldMeetingType:
		v, ok := value.(meeting.MeetingType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMeetingType(v)
		return nil
	case meeting.FieldMaxRounds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxRounds(v)
		return nil
	case meeting.FieldCurrentRound:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentRound(v)
		return nil
	case meeting.FieldStatus:
		v, ok := value.(meeting.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case meeting.FieldParticipantAgentIds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParticipantAgentIds(v)
		return nil
	case meeting.FieldIndividualAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIndividualAgentID(v)
		return nil
	case meeting.FieldSourceMeetingIds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceMeetingIds(v)
		return nil
	case meeting.FieldContextMeetingIds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContextMeetingIds(v)
		return nil
	case meeting.FieldParentMeetingID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentMeetingID(v)
		return nil
	case meeting.FieldRewriteFeedback:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRewriteFeedback(v)
		return nil
	case meeting.FieldAgendaStrategy:
		v, ok := value.(meeting.AgendaStrategy)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgendaStrategy(v)
		return nil
	case meeting.FieldRoundPlan:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoundPlan(v)
		return nil
	case meeting.FieldPreferredLanguage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPreferredLanguage(v)
		return nil
	case meeting.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case meeting.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case meeting.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case meeting.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Meeting field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MeetingMutation) AddedFields() []string {
	var fields []string
	if m.addmax_rounds != nil {
		fields = append(fields, meeting.FieldMaxRounds)
	}
	if m.addcurrent_round != nil {
		fields = append(fields, meeting.FieldCurrentRound)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MeetingMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case meeting.FieldMaxRounds:
		return m.AddedMaxRounds()
	case meeting.FieldCurrentRound:
		return m.AddedCurrentRound()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MeetingMutation) AddField(name string, value ent.Value) error {
	switch name {
	case meeting.FieldMaxRounds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxRounds(v)
		return nil
	case meeting.FieldCurrentRound:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCurrentRound(v)
		return nil
	}
	return fmt.Errorf("unknown Meeting numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MeetingMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(meeting.FieldAgenda) {
		fields = append(fields, meeting.FieldAgenda)
	}
	if m.FieldCleared(meeting.FieldAgendaQuestions) {
		fields = append(fields, meeting.FieldAgendaQuestions)
	}
	if m.FieldCleared(meeting.FieldAgendaRules) {
		fields = append(fields, meeting.FieldAgendaRules)
	}
	if m.FieldCleared(meeting.FieldParticipantAgentIds) {
		fields = append(fields, meeting.FieldParticipantAgentIds)
	}
	if m.FieldCleared(meeting.FieldIndividualAgentID) {
		fields = append(fields, meeting.FieldIndividualAgentID)
	}
	if m.FieldCleared(meeting.FieldSourceMeetingIds) {
		fields = append(fields, meeting.FieldSourceMeetingIds)
	}
	if m.FieldCleared(meeting.FieldContextMeetingIds) {
		fields = append(fields, meeting.FieldContextMeetingIds)
	}
	if m.FieldCleared(meeting.FieldParentMeetingID) {
		fields = append(fields, meeting.FieldParentMeetingID)
	}
	if m.FieldCleared(meeting.FieldRewriteFeedback) {
		fields = append(fields, meeting.FieldRewriteFeedback)
	}
	if m.FieldCleared(meeting.FieldRoundPlan) {
		fields = append(fields, meeting.FieldRoundPlan)
	}
	if m.FieldCleared(meeting.FieldPreferredLanguage) {
		fields = append(fields, meeting.FieldPreferredLanguage)
	}
	if m.FieldCleared(meeting.FieldErrorMessage) {
		fields = append(fields, meeting.FieldErrorMessage)
	}
	if m.FieldCleared(meeting.FieldCompletedAt) {
		fields = append(fields, meeting.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MeetingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MeetingMutation) ClearField(name string) error {
	switch name {
	case meeting.FieldAgenda:
		m.ClearAgenda()
		return nil
	case meeting.FieldAgendaQuestions:
		m.ClearAgendaQuestions()
		return nil
	case meeting.FieldAgendaRules:
		m.ClearAgendaRules()
		return nil
	case meeting.FieldParticipantAgentIds:
		m.ClearParticipantAgentIds()
		return nil
	case meeting.FieldIndividualAgentID:
		m.ClearIndividualAgentID()
		return nil
	case meeting.FieldSourceMeetingIds:
		m.ClearSourceMeetingIds()
		return nil
	case meeting.FieldContextMeetingIds:
		m.ClearContextMeetingIds()
		return nil
	case meeting.FieldParentMeetingID:
		m.ClearParentMeetingID()
		return nil
	case meeting.FieldRewriteFeedback:
		m.ClearRewriteFeedback()
		return nil
	case meeting.FieldRoundPlan:
		m.ClearRoundPlan()
		return nil
	case meeting.FieldPreferredLanguage:
		m.ClearPreferredLanguage()
		return nil
	case meeting.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case meeting.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Meeting nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MeetingMutation) ResetField(name string) error {
	switch name {
	case meeting.FieldTeamID:
		m.ResetTeamID()
		return nil
	case meeting.FieldTitle:
		m.ResetTitle()
		return nil
	case meeting.FieldAgenda:
		m.ResetAgenda()
		return nil
	case meeting.FieldAgendaQuestions:
		m.ResetAgendaQuestions()
		return nil
	case meeting.FieldAgendaRules:
		m.ResetAgendaRules()
		return nil
	case meeting.FieldOutputType:
		m.ResetOutputType()
		return nil
	case meeting.FieldMeetingType:
		m.ResetMeetingType()
		return nil
	case meeting.FieldMaxRounds:
		m.ResetMaxRounds()
		return nil
	case meeting.FieldCurrentRound:
		m.ResetCurrentRound()
		return nil
	case meeting.FieldStatus:
		m.ResetStatus()
		return nil
	case meeting.FieldParticipantAgentIds:
		m.ResetParticipantAgentIds()
		return nil
	case meeting.FieldIndividualAgentID:
		m.ResetIndividualAgentID()
		return nil
	case meeting.FieldSourceMeetingIds:
		m.ResetSourceMeetingIds()
		return nil
	case meeting.FieldContextMeetingIds:
		m.ResetContextMeetingIds()
		return nil
	case meeting.FieldParentMeetingID:
		m.ResetParentMeetingID()
		return nil
	case meeting.FieldRewriteFeedback:
		m.ResetRewriteFeedback()
		return nil
	case meeting.FieldAgendaStrategy:
		m.ResetAgendaStrategy()
		return nil
	case meeting.FieldRoundPlan:
		m.ResetRoundPlan()
		return nil
	case meeting.FieldPreferredLanguage:
		m.ResetPreferredLanguage()
		return nil
	case meeting.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case meeting.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case meeting.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case meeting.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Meeting field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MeetingMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.team != nil {
		edges = append(edges, meeting.EdgeTeam)
	}
	if m.messages != nil {
		edges = append(edges, meeting.EdgeMessages)
	}
	if m.artifacts != nil {
		edges = append(edges, meeting.EdgeArtifacts)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MeetingMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case meeting.EdgeTeam:
		if id := m.team; id != nil {
			return []ent.Value{*id}
		}
	case meeting.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.messages))
		for id := range m.messages {
			ids = append(ids, id)
		}
		return ids
	case meeting.EdgeArtifacts:
		ids := make([]ent.Value, 0, len(m.artifacts))
		for id := range m.artifacts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MeetingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedmessages != nil {
		edges = append(edges, meeting.EdgeMessages)
	}
	if m.removedartifacts != nil {
		edges = append(edges, meeting.EdgeArtifacts)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MeetingMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case meeting.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.removedmessages))
		for id := range m.removedmessages {
			ids = append(ids, id)
		}
		return ids
	case meeting.EdgeArtifacts:
		ids := make([]ent.Value, 0, len(m.removedartifacts))
		for id := range m.removedartifacts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MeetingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedteam {
		edges = append(edges, meeting.EdgeTeam)
	}
	if m.clearedmessages {
		edges = append(edges, meeting.EdgeMessages)
	}
	if m.clearedartifacts {
		edges = append(edges, meeting.EdgeArtifacts)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MeetingMutation) EdgeCleared(name string) bool {
	switch name {
	case meeting.EdgeTeam:
		return m.clearedteam
	case meeting.EdgeMessages:
		return m.clearedmessages
	case meeting.EdgeArtifacts:
		return m.clearedartifacts
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MeetingMutation) ClearEdge(name string) error {
	switch name {
	case meeting.EdgeTeam:
		m.ClearTeam()
		return nil
	}
	return fmt.Errorf("unknown Meeting unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MeetingMutation) ResetEdge(name string) error {
	switch name {
	case meeting.EdgeTeam:
		m.ResetTeam()
		return nil
	case meeting.EdgeMessages:
		m.ResetMessages()
		return nil
	case meeting.EdgeArtifacts:
		m.ResetArtifacts()
		return nil
	}
	return fmt.Errorf("unknown Meeting edge %s", name)
}

// MessageMutation represents an operation that mutates the Message nodes in the graph.
type MessageMutation struct {
	config
	op              Op
	typ             string
	id              *string
	role            *message.Role
	agent_id        *string
	agent_name      *string
	content         *string
	round_number    *int
	addround_number *int
	created_at      *time.Time
	clearedFields   map[string]struct{}
	meeting         *string
	clearedmeeting  bool
	done            bool
	oldValue        func(context.Context) (*Message, error)
	predicates      []predicate.Message
}

var _ ent.Mutation = (*MessageMutation)(nil)

// messageOption allows management of the mutation configuration using functional options.
type messageOption func(*MessageMutation)

// newMessageMutation creates new mutation for the Message entity.
func newMessageMutation(c config, op Op, opts ...messageOption) *MessageMutation {
	m := &MessageMutation{
		config:        c,
		op:            op,
		typ:           TypeMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMessageID sets the ID field of the mutation.
func withMessageID(id string) messageOption {
	return func(m *MessageMutation) {
		var (
			err   error
			once  sync.Once
			value *Message
		)
		m.oldValue = func(ctx context.Context) (*Message, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Message.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMessage sets the old Message of the mutation.
func withMessage(node *Message) messageOption {
	return func(m *MessageMutation) {
		m.oldValue = func(context.Context) (*Message, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Message entities.
func (m *MessageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MessageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MessageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Message.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetMeetingID sets the "meeting_id" field.
func (m *MessageMutation) SetMeetingID(s string) {
	m.meeting = &s
}

// MeetingID returns the value of the "meeting_id" field in the mutation.
func (m *MessageMutation) MeetingID() (r string, exists bool) {
	v := m.meeting
	if v == nil {
		return
	}
	return *v, true
}

// OldMeetingID returns the old "meeting_id" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldMeetingID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMeetingID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMeetingID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMeetingID: %w", err)
	}
	return oldValue.MeetingID, nil
}

// ResetMeetingID resets all changes to the "meeting_id" field.
func (m *MessageMutation) ResetMeetingID() {
	m.meeting = nil
}

// SetRole sets the "role" field.
func (m *MessageMutation) SetRole(value message.Role) {
	m.role = &value
}

// Role returns the value of the "role" field in the mutation.
func (m *MessageMutation) Role() (r message.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldRole(ctx context.Context) (v message.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *MessageMutation) ResetRole() {
	m.role = nil
}

// SetAgentID sets the "agent_id" field.
func (m *MessageMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *MessageMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldAgentID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ClearAgentID clears the value of the "agent_id" field.
func (m *MessageMutation) ClearAgentID() {
	m.agent_id = nil
	m.clearedFields[message.FieldAgentID] = struct{}{}
}

// AgentIDCleared returns if the "agent_id" field was cleared in this mutation.
func (m *MessageMutation) AgentIDCleared() bool {
	_, ok := m.clearedFields[message.FieldAgentID]
	return ok
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *MessageMutation) ResetAgentID() {
	m.agent_id = nil
	delete(m.clearedFields, message.FieldAgentID)
}

// SetAgentName sets the "agent_name" field.
func (m *MessageMutation) SetAgentName(s string) {
	m.agent_name = &s
}

// AgentName returns the value of the "agent_name" field in the mutation.
func (m *MessageMutation) AgentName() (r string, exists bool) {
	v := m.agent_name
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentName returns the old "agent_name" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldAgentName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentName: %w", err)
	}
	return oldValue.AgentName, nil
}

// ClearAgentName clears the value of the "agent_name" field.
func (m *MessageMutation) ClearAgentName() {
	m.agent_name = nil
	m.clearedFields[message.FieldAgentName] = struct{}{}
}

// AgentNameCleared returns if the "agent_name" field was cleared in this mutation.
func (m *MessageMutation) AgentNameCleared() bool {
	_, ok := m.clearedFields[message.FieldAgentName]
	return ok
}

// ResetAgentName resets all changes to the "agent_name" field.
func (m *MessageMutation) ResetAgentName() {
	m.agent_name = nil
	delete(m.clearedFields, message.FieldAgentName)
}

// SetContent sets the "content" field.
func (m *MessageMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *MessageMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *MessageMutation) ResetContent() {
	m.content = nil
}

// SetRoundNumber sets the "round_number" field.
func (m *MessageMutation) SetRoundNumber(i int) {
	m.round_number = &i
	m.addround_number = nil
}

// RoundNumber returns the value of the "round_number" field in the mutation.
func (m *MessageMutation) RoundNumber() (r int, exists bool) {
	v := m.round_number
	if v == nil {
		return
	}
	return *v, true
}

// OldRoundNumber returns the old "round_number" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldRoundNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoundNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoundNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoundNumber: %w", err)
	}
	return oldValue.RoundNumber, nil
}

// AddRoundNumber adds i to the "round_number" field.
func (m *MessageMutation) AddRoundNumber(i int) {
	if m.addround_number != nil {
		*m.addround_number += i
	} else {
		m.addround_number = &i
	}
}

// AddedRoundNumber returns the value that was added to the "round_number" field in this mutation.
func (m *MessageMutation) AddedRoundNumber() (r int, exists bool) {
	v := m.addround_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetRoundNumber resets all changes to the "round_number" field.
func (m *MessageMutation) ResetRoundNumber() {
	m.round_number = nil
	m.addround_number = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *MessageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MessageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MessageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearMeeting clears the "meeting" edge to the Meeting entity.
func (m *MessageMutation) ClearMeeting() {
	m.clearedmeeting = true
	m.clearedFields[message.FieldMeetingID] = struct{}{}
}

// MeetingCleared reports if the "meeting" edge to the Meeting entity was cleared.
func (m *MessageMutation) MeetingCleared() bool {
	return m.clearedmeeting
}

// MeetingIDs returns the "meeting" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// MeetingID instead. It exists only for internal usage by the builders.
func (m *MessageMutation) MeetingIDs() (ids []string) {
	if id := m.meeting; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetMeeting resets all changes to the "meeting" edge.
func (m *MessageMutation) ResetMeeting() {
	m.meeting = nil
	m.clearedmeeting = false
}

// Where appends a list predicates to the MessageMutation builder.
func (m *MessageMutation) Where(ps ...predicate.Message) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Message, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Message).
func (m *MessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MessageMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.meeting != nil {
		fields = append(fields, message.FieldMeetingID)
	}
	if m.role != nil {
		fields = append(fields, message.FieldRole)
	}
	if m.agent_id != nil {
		fields = append(fields, message.FieldAgentID)
	}
	if m.agent_name != nil {
		fields = append(fields, message.FieldAgentName)
	}
	if m.content != nil {
		fields = append(fields, message.FieldContent)
	}
	if m.round_number != nil {
		fields = append(fields, message.FieldRoundNumber)
	}
	if m.created_at != nil {
		fields = append(fields, message.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case message.FieldMeetingID:
		return m.MeetingID()
	case message.FieldRole:
		return m.Role()
	case message.FieldAgentID:
		return m.AgentID()
	case message.FieldAgentName:
		return m.AgentName()
	case message.FieldContent:
		return m.Content()
	case message.FieldRoundNumber:
		return m.RoundNumber()
	case message.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case message.FieldMeetingID:
		return m.OldMeetingID(ctx)
	case message.FieldRole:
		return m.OldRole(ctx)
	case message.FieldAgentID:
		return m.OldAgentID(ctx)
	case message.FieldAgentName:
		return m.OldAgentName(ctx)
	case message.FieldContent:
		return m.OldContent(ctx)
	case message.FieldRoundNumber:
		return m.OldRoundNumber(ctx)
	case message.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Message field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case message.FieldMeetingID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMeetingID(v)
		return nil
	case message.FieldRole:
		v, ok := value.(message.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case message.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case message.FieldAgentName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentName(v)
		return nil
	case message.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case message.FieldRoundNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoundNumber(v)
		return nil
	case message.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Message field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MessageMutation) AddedFields() []string {
	var fields []string
	if m.addround_number != nil {
		fields = append(fields, message.FieldRoundNumber)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MessageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case message.FieldRoundNumber:
		return m.AddedRoundNumber()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case message.FieldRoundNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRoundNumber(v)
		return nil
	}
	return fmt.Errorf("unknown Message numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MessageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(message.FieldAgentID) {
		fields = append(fields, message.FieldAgentID)
	}
	if m.FieldCleared(message.FieldAgentName) {
		fields = append(fields, message.FieldAgentName)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MessageMutation) ClearField(name string) error {
	switch name {
	case message.FieldAgentID:
		m.ClearAgentID()
		return nil
	case message.FieldAgentName:
		m.ClearAgentName()
		return nil
	}
	return fmt.Errorf("unknown Message nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MessageMutation) ResetField(name string) error {
	switch name {
	case message.FieldMeetingID:
		m.ResetMeetingID()
		return nil
	case message.FieldRole:
		m.ResetRole()
		return nil
	case message.FieldAgentID:
		m.ResetAgentID()
		return nil
	case message.FieldAgentName:
		m.ResetAgentName()
		return nil
	case message.FieldContent:
		m.ResetContent()
		return nil
	case message.FieldRoundNumber:
		m.ResetRoundNumber()
		return nil
	case message.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Message field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.meeting != nil {
		edges = append(edges, message.EdgeMeeting)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MessageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case message.EdgeMeeting:
		if id := m.meeting; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedmeeting {
		edges = append(edges, message.EdgeMeeting)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MessageMutation) EdgeCleared(name string) bool {
	switch name {
	case message.EdgeMeeting:
		return m.clearedmeeting
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MessageMutation) ClearEdge(name string) error {
	switch name {
	case message.EdgeMeeting:
		m.ClearMeeting()
		return nil
	}
	return fmt.Errorf("unknown Message unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MessageMutation) ResetEdge(name string) error {
	switch name {
	case message.EdgeMeeting:
		m.ResetMeeting()
		return nil
	}
	return fmt.Errorf("unknown Message edge %s", name)
}

// ProviderKeyMutation represents an operation that mutates the ProviderKey nodes in the graph.
type ProviderKeyMutation struct {
	config
	op            Op
	typ           string
	id            *string
	user_id       *string
	provider      *string
	key_encrypted *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ProviderKey, error)
	predicates    []predicate.ProviderKey
}

var _ ent.Mutation = (*ProviderKeyMutation)(nil)

// providerkeyOption allows management of the mutation configuration using functional options.
type providerkeyOption func(*ProviderKeyMutation)

// newProviderKeyMutation creates new mutation for the ProviderKey entity.
func newProviderKeyMutation(c config, op Op, opts ...providerkeyOption) *ProviderKeyMutation {
	m := &ProviderKeyMutation{
		config:        c,
		op:            op,
		typ:           TypeProviderKey,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProviderKeyID sets the ID field of the mutation.
func withProviderKeyID(id string) providerkeyOption {
	return func(m *ProviderKeyMutation) {
		var (
			err   error
			once  sync.Once
			value *ProviderKey
		)
		m.oldValue = func(ctx context.Context) (*ProviderKey, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ProviderKey.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProviderKey sets the old ProviderKey of the mutation.
func withProviderKey(node *ProviderKey) providerkeyOption {
	return func(m *ProviderKeyMutation) {
		m.oldValue = func(context.Context) (*ProviderKey, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProviderKeyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProviderKeyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ProviderKey entities.
func (m *ProviderKeyMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProviderKeyMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProviderKeyMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ProviderKey.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *ProviderKeyMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ProviderKeyMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the ProviderKey entity.
// If the ProviderKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProviderKeyMutation) OldUserID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ClearUserID clears the value of the "user_id" field.
func (m *ProviderKeyMutation) ClearUserID() {
	m.user_id = nil
	m.clearedFields[providerkey.FieldUserID] = struct{}{}
}

// UserIDCleared returns if the "user_id" field was cleared in this mutation.
func (m *ProviderKeyMutation) UserIDCleared() bool {
	_, ok := m.clearedFields[providerkey.FieldUserID]
	return ok
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ProviderKeyMutation) ResetUserID() {
	m.user_id = nil
	delete(m.clearedFields, providerkey.FieldUserID)
}

// SetProvider sets the "provider" field.
func (m *ProviderKeyMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *ProviderKeyMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the ProviderKey entity.
// If the ProviderKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProviderKeyMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *ProviderKeyMutation) ResetProvider() {
	m.provider = nil
}

// SetKeyEncrypted sets the "key_encrypted" field.
func (m *ProviderKeyMutation) SetKeyEncrypted(s string) {
	m.key_encrypted = &s
}

// KeyEncrypted returns the value of the "key_encrypted" field in the mutation.
func (m *ProviderKeyMutation) KeyEncrypted() (r string, exists bool) {
	v := m.key_encrypted
	if v == nil {
		return
	}
	return *v, true
}

// OldKeyEncrypted returns the old "key_encrypted" field's value of the ProviderKey entity.
// If the ProviderKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProviderKeyMutation) OldKeyEncrypted(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKeyEncrypted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKeyEncrypted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKeyEncrypted: %w", err)
	}
	return oldValue.KeyEncrypted, nil
}

// ResetKeyEncrypted resets all changes to the "key_encrypted" field.
func (m *ProviderKeyMutation) ResetKeyEncrypted() {
	m.key_encrypted = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ProviderKeyMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProviderKeyMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ProviderKey entity.
// If the ProviderKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProviderKeyMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProviderKeyMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ProviderKeyMutation builder.
func (m *ProviderKeyMutation) Where(ps ...predicate.ProviderKey) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProviderKeyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProviderKeyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ProviderKey, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProviderKeyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProviderKeyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ProviderKey).
func (m *ProviderKeyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProviderKeyMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.user_id != nil {
		fields = append(fields, providerkey.FieldUserID)
	}
	if m.provider != nil {
		fields = append(fields, providerkey.FieldProvider)
	}
	if m.key_encrypted != nil {
		fields = append(fields, providerkey.FieldKeyEncrypted)
	}
	if m.created_at != nil {
		fields = append(fields, providerkey.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProviderKeyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case providerkey.FieldUserID:
		return m.UserID()
	case providerkey.FieldProvider:
		return m.Provider()
	case providerkey.FieldKeyEncrypted:
		return m.KeyEncrypted()
	case providerkey.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProviderKeyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case providerkey.FieldUserID:
		return m.OldUserID(ctx)
	case providerkey.FieldProvider:
		return m.OldProvider(ctx)
	case providerkey.FieldKeyEncrypted:
		return m.OldKeyEncrypted(ctx)
	case providerkey.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ProviderKey field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProviderKeyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case providerkey.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case providerkey.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case providerkey.FieldKeyEncrypted:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKeyEncrypted(v)
		return nil
	case providerkey.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ProviderKey field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProviderKeyMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProviderKeyMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProviderKeyMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ProviderKey numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProviderKeyMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(providerkey.FieldUserID) {
		fields = append(fields, providerkey.FieldUserID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProviderKeyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProviderKeyMutation) ClearField(name string) error {
	switch name {
	case providerkey.FieldUserID:
		m.ClearUserID()
		return nil
	}
	return fmt.Errorf("unknown ProviderKey nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProviderKeyMutation) ResetField(name string) error {
	switch name {
	case providerkey.FieldUserID:
		m.ResetUserID()
		return nil
	case providerkey.FieldProvider:
		m.ResetProvider()
		return nil
	case providerkey.FieldKeyEncrypted:
		m.ResetKeyEncrypted()
		return nil
	case providerkey.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ProviderKey field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProviderKeyMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProviderKeyMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProviderKeyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProviderKeyMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProviderKeyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProviderKeyMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProviderKeyMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ProviderKey unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProviderKeyMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ProviderKey edge %s", name)
}

// TeamMutation represents an operation that mutates the Team nodes in the graph.
type TeamMutation struct {
	config
	op               Op
	typ              string
	id               *string
	name             *string
	description      *string
	default_language *string
	is_public        *bool
	owner_id         *string
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	agents           map[string]struct{}
	removedagents    map[string]struct{}
	clearedagents    bool
	meetings         map[string]struct{}
	removedmeetings  map[string]struct{}
	clearedmeetings  bool
	done             bool
	oldValue         func(context.Context) (*Team, error)
	predicates       []predicate.Team
}

var _ ent.Mutation = (*TeamMutation)(nil)

// teamOption allows management of the mutation configuration using functional options.
type teamOption func(*TeamMutation)

// newTeamMutation creates new mutation for the Team entity.
func newTeamMutation(c config, op Op, opts ...teamOption) *TeamMutation {
	m := &TeamMutation{
		config:        c,
		op:            op,
		typ:           TypeTeam,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTeamID sets the ID field of the mutation.
func withTeamID(id string) teamOption {
	return func(m *TeamMutation) {
		var (
			err   error
			once  sync.Once
			value *Team
		)
		m.oldValue = func(ctx context.Context) (*Team, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Team.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTeam sets the old Team of the mutation.
func withTeam(node *Team) teamOption {
	return func(m *TeamMutation) {
		m.oldValue = func(context.Context) (*Team, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TeamMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TeamMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Team entities.
func (m *TeamMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TeamMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TeamMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Team.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *TeamMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *TeamMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Team entity.
// If the Team object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TeamMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *TeamMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *TeamMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *TeamMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Team entity.
// If the Team object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TeamMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *TeamMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[team.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *TeamMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[team.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *TeamMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, team.FieldDescription)
}

// SetDefaultLanguage sets the "default_language" field.
func (m *TeamMutation) SetDefaultLanguage(s string) {
	m.default_language = &s
}

// DefaultLanguage returns the value of the "default_language" field in the mutation.
func (m *TeamMutation) DefaultLanguage() (r string, exists bool) {
	v := m.default_language
	if v == nil {
		return
	}
	return *v, true
}

// OldDefaultLanguage returns the old "default_language" field's value of the Team entity.
// If the Team object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TeamMutation) OldDefaultLanguage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDefaultLanguage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDefaultLanguage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDefaultLanguage: %w", err)
	}
	return oldValue.DefaultLanguage, nil
}

// ClearDefaultLanguage clears the value of the "default_language" field.
func (m *TeamMutation) ClearDefaultLanguage() {
	m.default_language = nil
	m.clearedFields[team.FieldDefaultLanguage] = struct{}{}
}

// DefaultLanguageCleared returns if the "default_language" field was cleared in this mutation.
func (m *TeamMutation) DefaultLanguageCleared() bool {
	_, ok := m.clearedFields[team.FieldDefaultLanguage]
	return ok
}

// ResetDefaultLanguage resets all changes to the "default_language" field.
func (m *TeamMutation) ResetDefaultLanguage() {
	m.default_language = nil
	delete(m.clearedFields, team.FieldDefaultLanguage)
}

// SetIsPublic sets the "is_public" field.
func (m *TeamMutation) SetIsPublic(b bool) {
	m.is_public = &b
}

// IsPublic returns the value of the "is_public" field in the mutation.
func (m *TeamMutation) IsPublic() (r bool, exists bool) {
	v := m.is_public
	if v == nil {
		return
	}
	return *v, true
}

// OldIsPublic returns the old "is_public" field's value of the Team entity.
// If the Team object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TeamMutation) OldIsPublic(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsPublic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsPublic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsPublic: %w", err)
	}
	return oldValue.IsPublic, nil
}

// ResetIsPublic resets all changes to the "is_public" field.
func (m *TeamMutation) ResetIsPublic() {
	m.is_public = nil
}

// SetOwnerID sets the "owner_id" field.
func (m *TeamMutation) SetOwnerID(s string) {
	m.owner_id = &s
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *TeamMutation) OwnerID() (r string, exists bool) {
	v := m.owner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the Team entity.
// If the Team object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TeamMutation) OldOwnerID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ClearOwnerID clears the value of the "owner_id" field.
func (m *TeamMutation) ClearOwnerID() {
	m.owner_id = nil
	m.clearedFields[team.FieldOwnerID] = struct{}{}
}

// OwnerIDCleared returns if the "owner_id" field was cleared in this mutation.
func (m *TeamMutation) OwnerIDCleared() bool {
	_, ok := m.clearedFields[team.FieldOwnerID]
	return ok
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *TeamMutation) ResetOwnerID() {
	m.owner_id = nil
	delete(m.clearedFields, team.FieldOwnerID)
}

// SetCreatedAt sets the "created_at" field.
func (m *TeamMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TeamMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Team entity.
// If the Team object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TeamMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TeamMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TeamMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TeamMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Team entity.
// If the Team object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TeamMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TeamMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddAgentIDs adds the "agents" edge to the Agent entity by ids.
func (m *TeamMutation) AddAgentIDs(ids ...string) {
	if m.agents == nil {
		m.agents = make(map[string]struct{})
	}
	for i := range ids {
		m.agents[ids[i]] = struct{}{}
	}
}

// ClearAgents clears the "agents" edge to the Agent entity.
func (m *TeamMutation) ClearAgents() {
	m.clearedagents = true
}

// AgentsCleared reports if the "agents" edge to the Agent entity was cleared.
func (m *TeamMutation) AgentsCleared() bool {
	return m.clearedagents
}

// RemoveAgentIDs removes the "agents" edge to the Agent entity by IDs.
func (m *TeamMutation) RemoveAgentIDs(ids ...string) {
	if m.removedagents == nil {
		m.removedagents = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.agents, ids[i])
		m.removedagents[ids[i]] = struct{}{}
	}
}

// RemovedAgents returns the removed IDs of the "agents" edge to the Agent entity.
func (m *TeamMutation) RemovedAgentsIDs() (ids []string) {
	for id := range m.removedagents {
		ids = append(ids, id)
	}
	return
}

// AgentsIDs returns the "agents" edge IDs in the mutation.
func (m *TeamMutation) AgentsIDs() (ids []string) {
	for id := range m.agents {
		ids = append(ids, id)
	}
	return
}

// ResetAgents resets all changes to the "agents" edge.
func (m *TeamMutation) ResetAgents() {
	m.agents = nil
	m.clearedagents = false
	m.removedagents = nil
}

// AddMeetingIDs adds the "meetings" edge to the Meeting entity by ids.
func (m *TeamMutation) AddMeetingIDs(ids ...string) {
	if m.meetings == nil {
		m.meetings = make(map[string]struct{})
	}
	for i := range ids {
		m.meetings[ids[i]] = struct{}{}
	}
}

// ClearMeetings clears the "meetings" edge to the Meeting entity.
func (m *TeamMutation) ClearMeetings() {
	m.clearedmeetings = true
}

// MeetingsCleared reports if the "meetings" edge to the Meeting entity was cleared.
func (m *TeamMutation) MeetingsCleared() bool {
	return m.clearedmeetings
}

// RemoveMeetingIDs removes the "meetings" edge to the Meeting entity by IDs.
func (m *TeamMutation) RemoveMeetingIDs(ids ...string) {
	if m.removedmeetings == nil {
		m.removedmeetings = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.meetings, ids[i])
		m.removedmeetings[ids[i]] = struct{}{}
	}
}

// RemovedMeetings returns the removed IDs of the "meetings" edge to the Meeting entity.
func (m *TeamMutation) RemovedMeetingsIDs() (ids []string) {
	for id := range m.removedmeetings {
		ids = append(ids, id)
	}
	return
}

// MeetingsIDs returns the "meetings" edge IDs in the mutation.
func (m *TeamMutation) MeetingsIDs() (ids []string) {
	for id := range m.meetings {
		ids = append(ids, id)
	}
	return
}

// ResetMeetings resets all changes to the "meetings" edge.
func (m *TeamMutation) ResetMeetings() {
	m.meetings = nil
	m.clearedmeetings = false
	m.removedmeetings = nil
}

// Where appends a list predicates to the TeamMutation builder.
func (m *TeamMutation) Where(ps ...predicate.Team) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TeamMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TeamMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Team, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TeamMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TeamMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Team).
func (m *TeamMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TeamMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.name != nil {
		fields = append(fields, team.FieldName)
	}
	if m.description != nil {
		fields = append(fields, team.FieldDescription)
	}
	if m.default_language != nil {
		fields = append(fields, team.FieldDefaultLanguage)
	}
	if m.is_public != nil {
		fields = append(fields, team.FieldIsPublic)
	}
	if m.owner_id != nil {
		fields = append(fields, team.FieldOwnerID)
	}
	if m.created_at != nil {
		fields = append(fields, team.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, team.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TeamMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case team.FieldName:
		return m.Name()
	case team.FieldDescription:
		return m.Description()
	case team.FieldDefaultLanguage:
		return m.DefaultLanguage()
	case team.FieldIsPublic:
		return m.IsPublic()
	case team.FieldOwnerID:
		return m.OwnerID()
	case team.FieldCreatedAt:
		return m.CreatedAt()
	case team.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TeamMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case team.FieldName:
		return m.OldName(ctx)
	case team.FieldDescription:
		return m.OldDescription(ctx)
	case team.FieldDefaultLanguage:
		return m.OldDefaultLanguage(ctx)
	case team.FieldIsPublic:
		return m.OldIsPublic(ctx)
	case team.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case team.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case team.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Team field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TeamMutation) SetField(name string, value ent.Value) error {
	switch name {
	case team.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case team.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case team.FieldDefaultLanguage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDefaultLanguage(v)
		return nil
	case team.FieldIsPublic:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsPublic(v)
		return nil
	case team.FieldOwnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case team.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case team.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Team field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TeamMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TeamMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TeamMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Team numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TeamMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(team.FieldDescription) {
		fields = append(fields, team.FieldDescription)
	}
	if m.FieldCleared(team.FieldDefaultLanguage) {
		fields = append(fields, team.FieldDefaultLanguage)
	}
	if m.FieldCleared(team.FieldOwnerID) {
		fields = append(fields, team.FieldOwnerID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TeamMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TeamMutation) ClearField(name string) error {
	switch name {
	case team.FieldDescription:
		m.ClearDescription()
		return nil
	case team.FieldDefaultLanguage:
		m.ClearDefaultLanguage()
		return nil
	case team.FieldOwnerID:
		m.ClearOwnerID()
		return nil
	}
	return fmt.Errorf("unknown Team nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TeamMutation) ResetField(name string) error {
	switch name {
	case team.FieldName:
		m.ResetName()
		return nil
	case team.FieldDescription:
		m.ResetDescription()
		return nil
	case team.FieldDefaultLanguage:
		m.ResetDefaultLanguage()
		return nil
	case team.FieldIsPublic:
		m.ResetIsPublic()
		return nil
	case team.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case team.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case team.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Team field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TeamMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.agents != nil {
		edges = append(edges, team.EdgeAgents)
	}
	if m.meetings != nil {
		edges = append(edges, team.EdgeMeetings)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TeamMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case team.EdgeAgents:
		ids := make([]ent.Value, 0, len(m.agents))
		for id := range m.agents {
			ids = append(ids, id)
		}
		return ids
	case team.EdgeMeetings:
		ids := make([]ent.Value, 0, len(m.meetings))
		for id := range m.meetings {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TeamMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedagents != nil {
		edges = append(edges, team.EdgeAgents)
	}
	if m.removedmeetings != nil {
		edges = append(edges, team.EdgeMeetings)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TeamMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case team.EdgeAgents:
		ids := make([]ent.Value, 0, len(m.removedagents))
		for id := range m.removedagents {
			ids = append(ids, id)
		}
		return ids
	case team.EdgeMeetings:
		ids := make([]ent.Value, 0, len(m.removedmeetings))
		for id := range m.removedmeetings {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TeamMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedagents {
		edges = append(edges, team.EdgeAgents)
	}
	if m.clearedmeetings {
		edges = append(edges, team.EdgeMeetings)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TeamMutation) EdgeCleared(name string) bool {
	switch name {
	case team.EdgeAgents:
		return m.clearedagents
	case team.EdgeMeetings:
		return m.clearedmeetings
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TeamMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Team unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TeamMutation) ResetEdge(name string) error {
	switch name {
	case team.EdgeAgents:
		m.ResetAgents()
		return nil
	case team.EdgeMeetings:
		m.ResetMeetings()
		return nil
	}
	return fmt.Errorf("unknown Team edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op            Op
	typ           string
	id            *string
	email         *string
	password_hash *string
	role          *user.Role
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*User, error)
	predicates    []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id string) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of User entities.
func (m *UserMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEmail sets the "email" field.
func (m *UserMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *UserMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *UserMutation) ResetEmail() {
	m.email = nil
}

// SetPasswordHash sets the "password_hash" field.
func (m *UserMutation) SetPasswordHash(s string) {
	m.password_hash = &s
}

// PasswordHash returns the value of the "password_hash" field in the mutation.
func (m *UserMutation) PasswordHash() (r string, exists bool) {
	v := m.password_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldPasswordHash returns the old "password_hash" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldPasswordHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPasswordHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPasswordHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPasswordHash: %w", err)
	}
	return oldValue.PasswordHash, nil
}

// ResetPasswordHash resets all changes to the "password_hash" field.
func (m *UserMutation) ResetPasswordHash() {
	m.password_hash = nil
}

// SetRole sets the "role" field.
func (m *UserMutation) SetRole(u user.Role) {
	m.role = &u
}

// Role returns the value of the "role" field in the mutation.
func (m *UserMutation) Role() (r user.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldRole(ctx context.Context) (v user.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *UserMutation) ResetRole() {
	m.role = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.email != nil {
		fields = append(fields, user.FieldEmail)
	}
	if m.password_hash != nil {
		fields = append(fields, user.FieldPasswordHash)
	}
	if m.role != nil {
		fields = append(fields, user.FieldRole)
	}
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldEmail:
		return m.Email()
	case user.FieldPasswordHash:
		return m.PasswordHash()
	case user.FieldRole:
		return m.Role()
	case user.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldEmail:
		return m.OldEmail(ctx)
	case user.FieldPasswordHash:
		return m.OldPasswordHash(ctx)
	case user.FieldRole:
		return m.OldRole(ctx)
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case user.FieldPasswordHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPasswordHash(v)
		return nil
	case user.FieldRole:
		v, ok := value.(user.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldEmail:
		m.ResetEmail()
		return nil
	case user.FieldPasswordHash:
		m.ResetPasswordHash()
		return nil
	case user.FieldRole:
		m.ResetRole()
		return nil
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown User edge %s", name)
}

// WebhookMutation represents an operation that mutates the Webhook nodes in the graph.
type WebhookMutation struct {
	config
	op               Op
	typ              string
	id               *string
	url              *string
	events           *[]string
	appendevents     []string
	active           *bool
	secret_encrypted *string
	created_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*Webhook, error)
	predicates       []predicate.Webhook
}

var _ ent.Mutation = (*WebhookMutation)(nil)

// webhookOption allows management of the mutation configuration using functional options.
type webhookOption func(*WebhookMutation)

// newWebhookMutation creates new mutation for the Webhook entity.
func newWebhookMutation(c config, op Op, opts ...webhookOption) *WebhookMutation {
	m := &WebhookMutation{
		config:        c,
		op:            op,
		typ:           TypeWebhook,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWebhookID sets the ID field of the mutation.
func withWebhookID(id string) webhookOption {
	return func(m *WebhookMutation) {
		var (
			err   error
			once  sync.Once
			value *Webhook
		)
		m.oldValue = func(ctx context.Context) (*Webhook, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Webhook.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWebhook sets the old Webhook of the mutation.
func withWebhook(node *Webhook) webhookOption {
	return func(m *WebhookMutation) {
		m.oldValue = func(context.Context) (*Webhook, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WebhookMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WebhookMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Webhook entities.
func (m *WebhookMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WebhookMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WebhookMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Webhook.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetURL sets the "url" field.
func (m *WebhookMutation) SetURL(s string) {
	m.url = &s
}

// URL returns the value of the "url" field in the mutation.
func (m *WebhookMutation) URL() (r string, exists bool) {
	v := m.url
	if v == nil {
		return
	}
	return *v, true
}

// OldURL returns the old "url" field's value of the Webhook entity.
// If the Webhook object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookMutation) OldURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldURL: %w", err)
	}
	return oldValue.URL, nil
}

// ResetURL resets all changes to the "url" field.
func (m *WebhookMutation) ResetURL() {
	m.url = nil
}

// SetEvents sets the "events" field.
func (m *WebhookMutation) SetEvents(s []string) {
	m.events = &s
	m.appendevents = nil
}

// Events returns the value of the "events" field in the mutation.
func (m *WebhookMutation) Events() (r []string, exists bool) {
	v := m.events
	if v == nil {
		return
	}
	return *v, true
}

// OldEvents returns the old "events" field's value of the Webhook entity.
// If the Webhook object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookMutation) OldEvents(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvents: %w", err)
	}
	return oldValue.Events, nil
}

// AppendEvents adds s to the "events" field.
func (m *WebhookMutation) AppendEvents(s []string) {
	m.appendevents = append(m.appendevents, s...)
}

// AppendedEvents returns the list of values that were appended to the "events" field in this mutation.
func (m *WebhookMutation) AppendedEvents() ([]string, bool) {
	if len(m.appendevents) == 0 {
		return nil, false
	}
	return m.appendevents, true
}

// ResetEvents resets all changes to the "events" field.
func (m *WebhookMutation) ResetEvents() {
	m.events = nil
	m.appendevents = nil
}

// SetActive sets the "active" field.
func (m *WebhookMutation) SetActive(b bool) {
	m.active = &b
}

// Active returns the value of the "active" field in the mutation.
func (m *WebhookMutation) Active() (r bool, exists bool) {
	v := m.active
	if v == nil {
		return
	}
	return *v, true
}

// OldActive returns the old "active" field's value of the Webhook entity.
// If the Webhook object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookMutation) OldActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActive: %w", err)
	}
	return oldValue.Active, nil
}

// ResetActive resets all changes to the "active" field.
func (m *WebhookMutation) ResetActive() {
	m.active = nil
}

// SetSecretEncrypted sets the "secret_encrypted" field.
func (m *WebhookMutation) SetSecretEncrypted(s string) {
	m.secret_encrypted = &s
}

// SecretEncrypted returns the value of the "secret_encrypted" field in the mutation.
func (m *WebhookMutation) SecretEncrypted() (r string, exists bool) {
	v := m.secret_encrypted
	if v == nil {
		return
	}
	return *v, true
}

// OldSecretEncrypted returns the old "secret_encrypted" field's value of the Webhook entity.
// If the Webhook object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookMutation) OldSecretEncrypted(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSecretEncrypted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSecretEncrypted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSecretEncrypted: %w", err)
	}
	return oldValue.SecretEncrypted, nil
}

// ClearSecretEncrypted clears the value of the "secret_encrypted" field.
func (m *WebhookMutation) ClearSecretEncrypted() {
	m.secret_encrypted = nil
	m.clearedFields[webhook.FieldSecretEncrypted] = struct{}{}
}

// SecretEncryptedCleared returns if the "secret_encrypted" field was cleared in this mutation.
func (m *WebhookMutation) SecretEncryptedCleared() bool {
	_, ok := m.clearedFields[webhook.FieldSecretEncrypted]
	return ok
}

// ResetSecretEncrypted resets all changes to the "secret_encrypted" field.
func (m *WebhookMutation) ResetSecretEncrypted() {
	m.secret_encrypted = nil
	delete(m.clearedFields, webhook.FieldSecretEncrypted)
}

// SetCreatedAt sets the "created_at" field.
func (m *WebhookMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WebhookMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Webhook entity.
// If the Webhook object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WebhookMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the WebhookMutation builder.
func (m *WebhookMutation) Where(ps ...predicate.Webhook) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WebhookMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WebhookMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Webhook, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WebhookMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WebhookMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Webhook).
func (m *WebhookMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WebhookMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.url != nil {
		fields = append(fields, webhook.FieldURL)
	}
	if m.events != nil {
		fields = append(fields, webhook.FieldEvents)
	}
	if m.active != nil {
		fields = append(fields, webhook.FieldActive)
	}
	if m.secret_encrypted != nil {
		fields = append(fields, webhook.FieldSecretEncrypted)
	}
	if m.created_at != nil {
		fields = append(fields, webhook.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WebhookMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case webhook.FieldURL:
		return m.URL()
	case webhook.FieldEvents:
		return m.Events()
	case webhook.FieldActive:
		return m.Active()
	case webhook.FieldSecretEncrypted:
		return m.SecretEncrypted()
	case webhook.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WebhookMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case webhook.FieldURL:
		return m.OldURL(ctx)
	case webhook.FieldEvents:
		return m.OldEvents(ctx)
	case webhook.FieldActive:
		return m.OldActive(ctx)
	case webhook.FieldSecretEncrypted:
		return m.OldSecretEncrypted(ctx)
	case webhook.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Webhook field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WebhookMutation) SetField(name string, value ent.Value) error {
	switch name {
	case webhook.FieldURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetURL(v)
		return nil
	case webhook.FieldEvents:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvents(v)
		return nil
	case webhook.FieldActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActive(v)
		return nil
	case webhook.FieldSecretEncrypted:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSecretEncrypted(v)
		return nil
	case webhook.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Webhook field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WebhookMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WebhookMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WebhookMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Webhook numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WebhookMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(webhook.FieldSecretEncrypted) {
		fields = append(fields, webhook.FieldSecretEncrypted)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WebhookMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WebhookMutation) ClearField(name string) error {
	switch name {
	case webhook.FieldSecretEncrypted:
		m.ClearSecretEncrypted()
		return nil
	}
	return fmt.Errorf("unknown Webhook nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WebhookMutation) ResetField(name string) error {
	switch name {
	case webhook.FieldURL:
		m.ResetURL()
		return nil
	case webhook.FieldEvents:
		m.ResetEvents()
		return nil
	case webhook.FieldActive:
		m.ResetActive()
		return nil
	case webhook.FieldSecretEncrypted:
		m.ResetSecretEncrypted()
		return nil
	case webhook.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Webhook field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WebhookMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WebhookMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WebhookMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WebhookMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WebhookMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WebhookMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WebhookMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Webhook unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WebhookMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Webhook edge %s", name)
}
