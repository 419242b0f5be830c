// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/conclave-ai/conclave/ent/agent"
	"github.com/conclave-ai/conclave/ent/codeartifact"
	"github.com/conclave-ai/conclave/ent/meeting"
	"github.com/conclave-ai/conclave/ent/message"
	"github.com/conclave-ai/conclave/ent/providerkey"
	"github.com/conclave-ai/conclave/ent/schema"
	"github.com/conclave-ai/conclave/ent/team"
	"github.com/conclave-ai/conclave/ent/user"
	"github.com/conclave-ai/conclave/ent/webhook"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentFields := schema.Agent{}.Fields()
	_ = agentFields
	// agentDescName is the schema descriptor for name field.
	agentDescName := agentFields[2].Descriptor()
	// agent.NameValidator is a validator for the "name" field. It is called by the builders before save.
	agent.NameValidator = agentDescName.Validators[0].(func(string) error)
	// agentDescModel is the schema descriptor for model field.
	agentDescModel := agentFields[7].Descriptor()
	// agent.DefaultModel holds the default value on creation for the model field.
	agent.DefaultModel = agentDescModel.Default.(string)
	// agentDescIsMirror is the schema descriptor for is_mirror field.
	agentDescIsMirror := agentFields[10].Descriptor()
	// agent.DefaultIsMirror holds the default value on creation for the is_mirror field.
	agent.DefaultIsMirror = agentDescIsMirror.Default.(bool)
	// agentDescCreatedAt is the schema descriptor for created_at field.
	agentDescCreatedAt := agentFields[12].Descriptor()
	// agent.DefaultCreatedAt holds the default value on creation for the created_at field.
	agent.DefaultCreatedAt = agentDescCreatedAt.Default.(func() time.Time)
	// agentDescUpdatedAt is the schema descriptor for updated_at field.
	agentDescUpdatedAt := agentFields[13].Descriptor()
	// agent.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	agent.DefaultUpdatedAt = agentDescUpdatedAt.Default.(func() time.Time)
	// agent.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	agent.UpdateDefaultUpdatedAt = agentDescUpdatedAt.UpdateDefault.(func() time.Time)
	codeartifactFields := schema.CodeArtifact{}.Fields()
	_ = codeartifactFields
	// codeartifactDescFilename is the schema descriptor for filename field.
	codeartifactDescFilename := codeartifactFields[2].Descriptor()
	// codeartifact.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	codeartifact.FilenameValidator = codeartifactDescFilename.Validators[0].(func(string) error)
	// codeartifactDescVersion is the schema descriptor for version field.
	codeartifactDescVersion := codeartifactFields[6].Descriptor()
	// codeartifact.DefaultVersion holds the default value on creation for the version field.
	codeartifact.DefaultVersion = codeartifactDescVersion.Default.(int)
	// codeartifact.VersionValidator is a validator for the "version" field. It is called by the builders before save.
	codeartifact.VersionValidator = codeartifactDescVersion.Validators[0].(func(int) error)
	// codeartifactDescCreatedAt is the schema descriptor for created_at field.
	codeartifactDescCreatedAt := codeartifactFields[8].Descriptor()
	// codeartifact.DefaultCreatedAt holds the default value on creation for the created_at field.
	codeartifact.DefaultCreatedAt = codeartifactDescCreatedAt.Default.(func() time.Time)
	// codeartifactDescUpdatedAt is the schema descriptor for updated_at field.
	codeartifactDescUpdatedAt := codeartifactFields[9].Descriptor()
	// codeartifact.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	codeartifact.DefaultUpdatedAt = codeartifactDescUpdatedAt.Default.(func() time.Time)
	// codeartifact.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	codeartifact.UpdateDefaultUpdatedAt = codeartifactDescUpdatedAt.UpdateDefault.(func() time.Time)
	meetingFields := schema.Meeting{}.Fields()
	_ = meetingFields
	// meetingDescTitle is the schema descriptor for title field.
	meetingDescTitle := meetingFields[2].Descriptor()
	// meeting.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	meeting.TitleValidator = meetingDescTitle.Validators[0].(func(string) error)
	// meetingDescMaxRounds is the schema descriptor for max_rounds field.
	meetingDescMaxRounds := meetingFields[8].Descriptor()
	// meeting.DefaultMaxRounds holds the default value on creation for the max_rounds field.
	meeting.DefaultMaxRounds = meetingDescMaxRounds.Default.(int)
	// meeting.MaxRoundsValidator is a validator for the "max_rounds" field. It is called by the builders before save.
	meeting.MaxRoundsValidator = func() func(int) error {
		validators := meetingDescMaxRounds.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(max_rounds int) error {
			for _, fn := range fns {
				if err := fn(max_rounds); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// meetingDescCurrentRound is the schema descriptor for current_round field.
	meetingDescCurrentRound := meetingFields[9].Descriptor()
	// meeting.DefaultCurrentRound holds the default value on creation for the current_round field.
	meeting.DefaultCurrentRound = meetingDescCurrentRound.Default.(int)
	// meeting.CurrentRoundValidator is a validator for the "current_round" field. It is called by the builders before save.
	meeting.CurrentRoundValidator = meetingDescCurrentRound.Validators[0].(func(int) error)
	// meetingDescCreatedAt is the schema descriptor for created_at field.
	meetingDescCreatedAt := meetingFields[21].Descriptor()
	// meeting.DefaultCreatedAt holds the default value on creation for the created_at field.
	meeting.DefaultCreatedAt = meetingDescCreatedAt.Default.(func() time.Time)
	// meetingDescUpdatedAt is the schema descriptor for updated_at field.
	meetingDescUpdatedAt := meetingFields[22].Descriptor()
	// meeting.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	meeting.DefaultUpdatedAt = meetingDescUpdatedAt.Default.(func() time.Time)
	// meeting.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	meeting.UpdateDefaultUpdatedAt = meetingDescUpdatedAt.UpdateDefault.(func() time.Time)
	messageFields := schema.Message{}.Fields()
	_ = messageFields
	// messageDescRoundNumber is the schema descriptor for round_number field.
	messageDescRoundNumber := messageFields[6].Descriptor()
	// message.DefaultRoundNumber holds the default value on creation for the round_number field.
	message.DefaultRoundNumber = messageDescRoundNumber.Default.(int)
	// message.RoundNumberValidator is a validator for the "round_number" field. It is called by the builders before save.
	message.RoundNumberValidator = messageDescRoundNumber.Validators[0].(func(int) error)
	// messageDescCreatedAt is the schema descriptor for created_at field.
	messageDescCreatedAt := messageFields[7].Descriptor()
	// message.DefaultCreatedAt holds the default value on creation for the created_at field.
	message.DefaultCreatedAt = messageDescCreatedAt.Default.(func() time.Time)
	providerkeyFields := schema.ProviderKey{}.Fields()
	_ = providerkeyFields
	// providerkeyDescProvider is the schema descriptor for provider field.
	providerkeyDescProvider := providerkeyFields[2].Descriptor()
	// providerkey.ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	providerkey.ProviderValidator = providerkeyDescProvider.Validators[0].(func(string) error)
	// providerkeyDescCreatedAt is the schema descriptor for created_at field.
	providerkeyDescCreatedAt := providerkeyFields[4].Descriptor()
	// providerkey.DefaultCreatedAt holds the default value on creation for the created_at field.
	providerkey.DefaultCreatedAt = providerkeyDescCreatedAt.Default.(func() time.Time)
	teamFields := schema.Team{}.Fields()
	_ = teamFields
	// teamDescName is the schema descriptor for name field.
	teamDescName := teamFields[1].Descriptor()
	// team.NameValidator is a validator for the "name" field. It is called by the builders before save.
	team.NameValidator = teamDescName.Validators[0].(func(string) error)
	// teamDescIsPublic is the schema descriptor for is_public field.
	teamDescIsPublic := teamFields[4].Descriptor()
	// team.DefaultIsPublic holds the default value on creation for the is_public field.
	team.DefaultIsPublic = teamDescIsPublic.Default.(bool)
	// teamDescCreatedAt is the schema descriptor for created_at field.
	teamDescCreatedAt := teamFields[6].Descriptor()
	// team.DefaultCreatedAt holds the default value on creation for the created_at field.
	team.DefaultCreatedAt = teamDescCreatedAt.Default.(func() time.Time)
	// teamDescUpdatedAt is the schema descriptor for updated_at field.
	teamDescUpdatedAt := teamFields[7].Descriptor()
	// team.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	team.DefaultUpdatedAt = teamDescUpdatedAt.Default.(func() time.Time)
	// team.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	team.UpdateDefaultUpdatedAt = teamDescUpdatedAt.UpdateDefault.(func() time.Time)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[1].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[4].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	webhookFields := schema.Webhook{}.Fields()
	_ = webhookFields
	// webhookDescURL is the schema descriptor for url field.
	webhookDescURL := webhookFields[1].Descriptor()
	// webhook.URLValidator is a validator for the "url" field. It is called by the builders before save.
	webhook.URLValidator = webhookDescURL.Validators[0].(func(string) error)
	// webhookDescActive is the schema descriptor for active field.
	webhookDescActive := webhookFields[3].Descriptor()
	// webhook.DefaultActive holds the default value on creation for the active field.
	webhook.DefaultActive = webhookDescActive.Default.(bool)
	// webhookDescCreatedAt is the schema descriptor for created_at field.
	webhookDescCreatedAt := webhookFields[5].Descriptor()
	// webhook.DefaultCreatedAt holds the default value on creation for the created_at field.
	webhook.DefaultCreatedAt = webhookDescCreatedAt.Default.(func() time.Time)
}
