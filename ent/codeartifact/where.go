// Code generated by ent, DO NOT EDIT.

package codeartifact

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/conclave-ai/conclave/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldContainsFold(FieldID, id))
}

// MeetingID applies equality check predicate on the "meeting_id" field. It's identical to MeetingIDEQ.
func MeetingID(v string) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldEQ(FieldMeetingID, v))
}

// Filename applies equality check predicate on the "filename" field. It's identical to FilenameEQ.
func Filename(v string) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldEQ(FieldFilename, v))
}

// Language applies equality check predicate on the "language" field. It's identical to LanguageEQ.
func Language(v string) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldEQ(FieldLanguage, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldEQ(FieldContent, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldEQ(FieldDescription, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldEQ(FieldVersion, v))
}

// SourceAgent applies equality check predicate on the "source_agent" field. It's identical to SourceAgentEQ.
func SourceAgent(v string) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldEQ(FieldSourceAgent, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldEQ(FieldUpdatedAt, v))
}

// MeetingIDEQ applies the EQ predicate on the "meeting_id" field.
func MeetingIDEQ(v string) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldEQ(FieldMeetingID, v))
}

// MeetingIDNEQ applies the NEQ predicate on the "meeting_id" field.
func MeetingIDNEQ(v string) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldNEQ(FieldMeetingID, v))
}

// MeetingIDIn applies the In predicate on the "meeting_id" field.
func MeetingIDIn(vs ...string) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldIn(FieldMeetingID, vs...))
}

// MeetingIDNotIn applies the NotIn predicate on the "meeting_id" field.
func MeetingIDNotIn(vs ...string) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldNotIn(FieldMeetingID, vs...))
}

// MeetingIDGT applies the GT predicate on the "meeting_id" field.
func MeetingIDGT(v string) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldGT(FieldMeetingID, v))
}

// MeetingIDGTE applies the GTE predicate on the "meeting_id" field.
func MeetingIDGTE(v string) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldGTE(FieldMeetingID, v))
}

// MeetingIDLT applies the LT predicate on the "meeting_id" field.
func MeetingIDLT(v string) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldLT(FieldMeetingID, v))
}

// MeetingIDLTE applies the LTE predicate on the "meeting_id" field.
func MeetingIDLTE(v string) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldLTE(FieldMeetingID, v))
}

// MeetingIDContains applies the Contains predicate on the "meeting_id" field.
func MeetingIDContains(v string) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldContains(FieldMeetingID, v))
}

// MeetingIDHasPrefix applies the HasPrefix predicate on the "meeting_id" field.
func MeetingIDHasPrefix(v string) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldHasPrefix(FieldMeetingID, v))
}

// MeetingIDHasSuffix applies the HasSuffix predicate on the "meeting_id" field.
func MeetingIDHasSuffix(v string) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldHasSuffix(FieldMeetingID, v))
}

// MeetingIDEqualFold applies the EqualFold predicate on the "meeting_id" field.
func MeetingIDEqualFold(v string) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldEqualFold(FieldMeetingID, v))
}

// MeetingIDContainsFold applies the ContainsFold predicate on the "meeting_id" field.
func MeetingIDContainsFold(v string) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldContainsFold(FieldMeetingID, v))
}

// FilenameEQ applies the EQ predicate on the "filename" field.
func FilenameEQ(v string) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldEQ(FieldFilename, v))
}

// FilenameNEQ applies the NEQ predicate on the "filename" field.
func FilenameNEQ(v string) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldNEQ(FieldFilename, v))
}

// FilenameIn applies the In predicate on the "filename" field.
func FilenameIn(vs ...string) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldIn(FieldFilename, vs...))
}

// FilenameNotIn applies the NotIn predicate on the "filename" field.
func FilenameNotIn(vs ...string) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldNotIn(FieldFilename, vs...))
}

// FilenameGT applies the GT predicate on the "filename" field.
func FilenameGT(v string) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldGT(FieldFilename, v))
}

// FilenameGTE applies the GTE predicate on the "filename" field.
func FilenameGTE(v string) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldGTE(FieldFilename, v))
}

// FilenameLT applies the LT predicate on the "filename" field.
func FilenameLT(v string) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldLT(FieldFilename, v))
}

// FilenameLTE applies the LTE predicate on the "filename" field.
func FilenameLTE(v string) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldLTE(FieldFilename, v))
}

// FilenameContains applies the Contains predicate on the "filename" field.
func FilenameContains(v string) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldContains(FieldFilename, v))
}

// FilenameHasPrefix applies the HasPrefix predicate on the "filename" field.
func FilenameHasPrefix(v string) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldHasPrefix(FieldFilename, v))
}

// FilenameHasSuffix applies the HasSuffix predicate on the "filename" field.
func FilenameHasSuffix(v string) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldHasSuffix(FieldFilename, v))
}

// FilenameEqualFold applies the EqualFold predicate on the "filename" field.
func FilenameEqualFold(v string) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldEqualFold(FieldFilename, v))
}

// FilenameContainsFold applies the ContainsFold predicate on the "filename" field.
func FilenameContainsFold(v string) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldContainsFold(FieldFilename, v))
}

// LanguageEQ applies the EQ predicate on the "language" field.
func LanguageEQ(v string) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldEQ(FieldLanguage, v))
}

// LanguageNEQ applies the NEQ predicate on the "language" field.
func LanguageNEQ(v string) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldNEQ(FieldLanguage, v))
}

// LanguageIn applies the In predicate on the "language" field.
func LanguageIn(vs ...string) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldIn(FieldLanguage, vs...))
}

// LanguageNotIn applies the NotIn predicate on the "language" field.
func LanguageNotIn(vs ...string) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldNotIn(FieldLanguage, vs...))
}

// LanguageGT applies the GT predicate on the "language" field.
func LanguageGT(v string) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldGT(FieldLanguage, v))
}

// LanguageGTE applies the GTE predicate on the "language" field.
func LanguageGTE(v string) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldGTE(FieldLanguage, v))
}

// LanguageLT applies the LT predicate on the "language" field.
func LanguageLT(v string) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldLT(FieldLanguage, v))
}

// LanguageLTE applies the LTE predicate on the "language" field.
func LanguageLTE(v string) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldLTE(FieldLanguage, v))
}

// LanguageContains applies the Contains predicate on the "language" field.
func LanguageContains(v string) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldContains(FieldLanguage, v))
}

// LanguageHasPrefix applies the HasPrefix predicate on the "language" field.
func LanguageHasPrefix(v string) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldHasPrefix(FieldLanguage, v))
}

// LanguageHasSuffix applies the HasSuffix predicate on the "language" field.
func LanguageHasSuffix(v string) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldHasSuffix(FieldLanguage, v))
}

// LanguageEqualFold applies the EqualFold predicate on the "language" field.
func LanguageEqualFold(v string) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldEqualFold(FieldLanguage, v))
}

// LanguageContainsFold applies the ContainsFold predicate on the "language" field.
func LanguageContainsFold(v string) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldContainsFold(FieldLanguage, v))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldHasSuffix(FieldContent, v))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldContainsFold(FieldContent, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldContainsFold(FieldDescription, v))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldLTE(FieldVersion, v))
}

// SourceAgentEQ applies the EQ predicate on the "source_agent" field.
func SourceAgentEQ(v string) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldEQ(FieldSourceAgent, v))
}

// SourceAgentNEQ applies the NEQ predicate on the "source_agent" field.
func SourceAgentNEQ(v string) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldNEQ(FieldSourceAgent, v))
}

// SourceAgentIn applies the In predicate on the "source_agent" field.
func SourceAgentIn(vs ...string) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldIn(FieldSourceAgent, vs...))
}

// SourceAgentNotIn applies the NotIn predicate on the "source_agent" field.
func SourceAgentNotIn(vs ...string) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldNotIn(FieldSourceAgent, vs...))
}

// SourceAgentGT applies the GT predicate on the "source_agent" field.
func SourceAgentGT(v string) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldGT(FieldSourceAgent, v))
}

// SourceAgentGTE applies the GTE predicate on the "source_agent" field.
func SourceAgentGTE(v string) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldGTE(FieldSourceAgent, v))
}

// SourceAgentLT applies the LT predicate on the "source_agent" field.
func SourceAgentLT(v string) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldLT(FieldSourceAgent, v))
}

// SourceAgentLTE applies the LTE predicate on the "source_agent" field.
func SourceAgentLTE(v string) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldLTE(FieldSourceAgent, v))
}

// SourceAgentContains applies the Contains predicate on the "source_agent" field.
func SourceAgentContains(v string) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldContains(FieldSourceAgent, v))
}

// SourceAgentHasPrefix applies the HasPrefix predicate on the "source_agent" field.
func SourceAgentHasPrefix(v string) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldHasPrefix(FieldSourceAgent, v))
}

// SourceAgentHasSuffix applies the HasSuffix predicate on the "source_agent" field.
func SourceAgentHasSuffix(v string) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldHasSuffix(FieldSourceAgent, v))
}

// SourceAgentIsNil applies the IsNil predicate on the "source_agent" field.
func SourceAgentIsNil() predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldIsNull(FieldSourceAgent))
}

// SourceAgentNotNil applies the NotNil predicate on the "source_agent" field.
func SourceAgentNotNil() predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldNotNull(FieldSourceAgent))
}

// SourceAgentEqualFold applies the EqualFold predicate on the "source_agent" field.
func SourceAgentEqualFold(v string) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldEqualFold(FieldSourceAgent, v))
}

// SourceAgentContainsFold applies the ContainsFold predicate on the "source_agent" field.
func SourceAgentContainsFold(v string) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldContainsFold(FieldSourceAgent, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasMeeting applies the HasEdge predicate on the "meeting" edge.
func HasMeeting() predicate.CodeArtifact {
	return predicate.CodeArtifact(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, MeetingTable, MeetingColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMeetingWith applies the HasEdge predicate on the "meeting" edge with a given conditions (other predicates).
func HasMeetingWith(preds ...predicate.Meeting) predicate.CodeArtifact {
	return predicate.CodeArtifact(func(s *sql.Selector) {
		step := newMeetingStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CodeArtifact) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CodeArtifact) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CodeArtifact) predicate.CodeArtifact {
	return predicate.CodeArtifact(sql.NotPredicates(p))
}
