// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Agent is the predicate function for agent builders.
type Agent func(*sql.Selector)

// CodeArtifact is the predicate function for codeartifact builders.
type CodeArtifact func(*sql.Selector)

// Meeting is the predicate function for meeting builders.
type Meeting func(*sql.Selector)

// Message is the predicate function for message builders.
type Message func(*sql.Selector)

// ProviderKey is the predicate function for providerkey builders.
type ProviderKey func(*sql.Selector)

// Team is the predicate function for team builders.
type Team func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)

// Webhook is the predicate function for webhook builders.
type Webhook func(*sql.Selector)
