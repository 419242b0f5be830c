// Code generated by ent, DO NOT EDIT.

package providerkey

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/conclave-ai/conclave/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ProviderKey {
	return predicate.ProviderKey(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ProviderKey {
	return predicate.ProviderKey(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ProviderKey {
	return predicate.ProviderKey(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ProviderKey {
	return predicate.ProviderKey(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ProviderKey {
	return predicate.ProviderKey(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ProviderKey {
	return predicate.ProviderKey(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ProviderKey {
	return predicate.ProviderKey(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ProviderKey {
	return predicate.ProviderKey(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ProviderKey {
	return predicate.ProviderKey(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ProviderKey {
	return predicate.ProviderKey(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ProviderKey {
	return predicate.ProviderKey(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.ProviderKey {
	return predicate.ProviderKey(sql.FieldEQ(FieldUserID, v))
}

// Provider applies equality check predicate on the "provider" field. It's identical to ProviderEQ.
func Provider(v string) predicate.ProviderKey {
	return predicate.ProviderKey(sql.FieldEQ(FieldProvider, v))
}

// KeyEncrypted applies equality check predicate on the "key_encrypted" field. It's identical to KeyEncryptedEQ.
func KeyEncrypted(v string) predicate.ProviderKey {
	return predicate.ProviderKey(sql.FieldEQ(FieldKeyEncrypted, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ProviderKey {
	return predicate.ProviderKey(sql.FieldEQ(FieldCreatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.ProviderKey {
	return predicate.ProviderKey(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.ProviderKey {
	return predicate.ProviderKey(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.ProviderKey {
	return predicate.ProviderKey(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.ProviderKey {
	return predicate.ProviderKey(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.ProviderKey {
	return predicate.ProviderKey(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.ProviderKey {
	return predicate.ProviderKey(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.ProviderKey {
	return predicate.ProviderKey(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.ProviderKey {
	return predicate.ProviderKey(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.ProviderKey {
	return predicate.ProviderKey(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.ProviderKey {
	return predicate.ProviderKey(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.ProviderKey {
	return predicate.ProviderKey(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDIsNil applies the IsNil predicate on the "user_id" field.
func UserIDIsNil() predicate.ProviderKey {
	return predicate.ProviderKey(sql.FieldIsNull(FieldUserID))
}

// UserIDNotNil applies the NotNil predicate on the "user_id" field.
func UserIDNotNil() predicate.ProviderKey {
	return predicate.ProviderKey(sql.FieldNotNull(FieldUserID))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.ProviderKey {
	return predicate.ProviderKey(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.ProviderKey {
	return predicate.ProviderKey(sql.FieldContainsFold(FieldUserID, v))
}

// ProviderEQ applies the EQ predicate on the "provider" field.
func ProviderEQ(v string) predicate.ProviderKey {
	return predicate.ProviderKey(sql.FieldEQ(FieldProvider, v))
}

// ProviderNEQ applies the NEQ predicate on the "provider" field.
func ProviderNEQ(v string) predicate.ProviderKey {
	return predicate.ProviderKey(sql.FieldNEQ(FieldProvider, v))
}

// ProviderIn applies the In predicate on the "provider" field.
func ProviderIn(vs ...string) predicate.ProviderKey {
	return predicate.ProviderKey(sql.FieldIn(FieldProvider, vs...))
}

// ProviderNotIn applies the NotIn predicate on the "provider" field.
func ProviderNotIn(vs ...string) predicate.ProviderKey {
	return predicate.ProviderKey(sql.FieldNotIn(FieldProvider, vs...))
}

// ProviderGT applies the GT predicate on the "provider" field.
func ProviderGT(v string) predicate.ProviderKey {
	return predicate.ProviderKey(sql.FieldGT(FieldProvider, v))
}

// ProviderGTE applies the GTE predicate on the "provider" field.
func ProviderGTE(v string) predicate.ProviderKey {
	return predicate.ProviderKey(sql.FieldGTE(FieldProvider, v))
}

// ProviderLT applies the LT predicate on the "provider" field.
func ProviderLT(v string) predicate.ProviderKey {
	return predicate.ProviderKey(sql.FieldLT(FieldProvider, v))
}

// ProviderLTE applies the LTE predicate on the "provider" field.
func ProviderLTE(v string) predicate.ProviderKey {
	return predicate.ProviderKey(sql.FieldLTE(FieldProvider, v))
}

// ProviderContains applies the Contains predicate on the "provider" field.
func ProviderContains(v string) predicate.ProviderKey {
	return predicate.ProviderKey(sql.FieldContains(FieldProvider, v))
}

// ProviderHasPrefix applies the HasPrefix predicate on the "provider" field.
func ProviderHasPrefix(v string) predicate.ProviderKey {
	return predicate.ProviderKey(sql.FieldHasPrefix(FieldProvider, v))
}

// ProviderHasSuffix applies the HasSuffix predicate on the "provider" field.
func ProviderHasSuffix(v string) predicate.ProviderKey {
	return predicate.ProviderKey(sql.FieldHasSuffix(FieldProvider, v))
}

// ProviderEqualFold applies the EqualFold predicate on the "provider" field.
func ProviderEqualFold(v string) predicate.ProviderKey {
	return predicate.ProviderKey(sql.FieldEqualFold(FieldProvider, v))
}

// ProviderContainsFold applies the ContainsFold predicate on the "provider" field.
func ProviderContainsFold(v string) predicate.ProviderKey {
	return predicate.ProviderKey(sql.FieldContainsFold(FieldProvider, v))
}

// KeyEncryptedEQ applies the EQ predicate on the "key_encrypted" field.
func KeyEncryptedEQ(v string) predicate.ProviderKey {
	return predicate.ProviderKey(sql.FieldEQ(FieldKeyEncrypted, v))
}

// KeyEncryptedNEQ applies the NEQ predicate on the "key_encrypted" field.
func KeyEncryptedNEQ(v string) predicate.ProviderKey {
	return predicate.ProviderKey(sql.FieldNEQ(FieldKeyEncrypted, v))
}

// KeyEncryptedIn applies the In predicate on the "key_encrypted" field.
func KeyEncryptedIn(vs ...string) predicate.ProviderKey {
	return predicate.ProviderKey(sql.FieldIn(FieldKeyEncrypted, vs...))
}

// KeyEncryptedNotIn applies the NotIn predicate on the "key_encrypted" field.
func KeyEncryptedNotIn(vs ...string) predicate.ProviderKey {
	return predicate.ProviderKey(sql.FieldNotIn(FieldKeyEncrypted, vs...))
}

// KeyEncryptedGT applies the GT predicate on the "key_encrypted" field.
func KeyEncryptedGT(v string) predicate.ProviderKey {
	return predicate.ProviderKey(sql.FieldGT(FieldKeyEncrypted, v))
}

// KeyEncryptedGTE applies the GTE predicate on the "key_encrypted" field.
func KeyEncryptedGTE(v string) predicate.ProviderKey {
	return predicate.ProviderKey(sql.FieldGTE(FieldKeyEncrypted, v))
}

// KeyEncryptedLT applies the LT predicate on the "key_encrypted" field.
func KeyEncryptedLT(v string) predicate.ProviderKey {
	return predicate.ProviderKey(sql.FieldLT(FieldKeyEncrypted, v))
}

// KeyEncryptedLTE applies the LTE predicate on the "key_encrypted" field.
func KeyEncryptedLTE(v string) predicate.ProviderKey {
	return predicate.ProviderKey(sql.FieldLTE(FieldKeyEncrypted, v))
}

// KeyEncryptedContains applies the Contains predicate on the "key_encrypted" field.
func KeyEncryptedContains(v string) predicate.ProviderKey {
	return predicate.ProviderKey(sql.FieldContains(FieldKeyEncrypted, v))
}

// KeyEncryptedHasPrefix applies the HasPrefix predicate on the "key_encrypted" field.
func KeyEncryptedHasPrefix(v string) predicate.ProviderKey {
	return predicate.ProviderKey(sql.FieldHasPrefix(FieldKeyEncrypted, v))
}

// KeyEncryptedHasSuffix applies the HasSuffix predicate on the "key_encrypted" field.
func KeyEncryptedHasSuffix(v string) predicate.ProviderKey {
	return predicate.ProviderKey(sql.FieldHasSuffix(FieldKeyEncrypted, v))
}

// KeyEncryptedEqualFold applies the EqualFold predicate on the "key_encrypted" field.
func KeyEncryptedEqualFold(v string) predicate.ProviderKey {
	return predicate.ProviderKey(sql.FieldEqualFold(FieldKeyEncrypted, v))
}

// KeyEncryptedContainsFold applies the ContainsFold predicate on the "key_encrypted" field.
func KeyEncryptedContainsFold(v string) predicate.ProviderKey {
	return predicate.ProviderKey(sql.FieldContainsFold(FieldKeyEncrypted, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ProviderKey {
	return predicate.ProviderKey(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ProviderKey {
	return predicate.ProviderKey(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ProviderKey {
	return predicate.ProviderKey(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ProviderKey {
	return predicate.ProviderKey(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ProviderKey {
	return predicate.ProviderKey(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ProviderKey {
	return predicate.ProviderKey(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ProviderKey {
	return predicate.ProviderKey(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ProviderKey {
	return predicate.ProviderKey(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ProviderKey) predicate.ProviderKey {
	return predicate.ProviderKey(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ProviderKey) predicate.ProviderKey {
	return predicate.ProviderKey(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ProviderKey) predicate.ProviderKey {
	return predicate.ProviderKey(sql.NotPredicates(p))
}
