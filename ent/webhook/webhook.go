// Code generated by ent, DO NOT EDIT.

package webhook

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the webhook type in the database.
	Label = "webhook"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "webhook_id"
	// FieldURL holds the string denoting the url field in the database.
	FieldURL = "url"
	// FieldEvents holds the string denoting the events field in the database.
	FieldEvents = "events"
	// FieldActive holds the string denoting the active field in the database.
	FieldActive = "active"
	// FieldSecretEncrypted holds the string denoting the secret_encrypted field in the database.
	FieldSecretEncrypted = "secret_encrypted"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the webhook in the database.
	Table = "webhooks"
)

// Columns holds all SQL columns for webhook fields.
var Columns = []string{
	FieldID,
	FieldURL,
	FieldEvents,
	FieldActive,
	FieldSecretEncrypted,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// URLValidator is a validator for the "url" field. It is called by the builders before save.
	URLValidator func(string) error
	// DefaultActive holds the default value on creation for the "active" field.
	DefaultActive bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the Webhook queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByURL orders the results by the url field.
func ByURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldURL, opts...).ToFunc()
}

// ByActive orders the results by the active field.
func ByActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActive, opts...).ToFunc()
}

// BySecretEncrypted orders the results by the secret_encrypted field.
func BySecretEncrypted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSecretEncrypted, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
