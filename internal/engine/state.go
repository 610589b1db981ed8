package engine

import (
	"github.com/hirebyte/hr-assistant/internal/catalog"
	"github.com/hirebyte/hr-assistant/internal/flow"
	"github.com/hirebyte/hr-assistant/internal/i18n"
)

type EntryKind string

const (
	EntryText EntryKind = "text"
	EntryJobs EntryKind = "jobs"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Entry is one renderable message: a text bubble or a job-card list.
type Entry struct {
	Kind EntryKind          `json:"kind"`
	Role string             `json:"role"`
	Text string             `json:"text,omitempty"`
	Jobs []*catalog.Posting `json:"jobs,omitempty"`
}

// ConversationState is everything one chat session carries between turns.
// It is scoped to a single conversation and never shared: the engine takes
// it in and mutates it per message, so concurrent conversations cannot
// interfere.
type ConversationState struct {
	Locale i18n.Locale

	// MessageLog is append-only and used for display only; the engine
	// never re-parses it.
	MessageLog []Entry

	// LastShownJobs is the most recent ranked result set, kept in full so
	// fuzzy "apply to X" references can resolve against it.
	LastShownJobs []*catalog.Posting

	Flow flow.State
}

// NewConversation creates a fresh state opening with the localized greeting.
func NewConversation(locale i18n.Locale) *ConversationState {
	return &ConversationState{
		Locale: locale,
		MessageLog: []Entry{{
			Kind: EntryText,
			Role: RoleAssistant,
			Text: i18n.T(locale, i18n.KeyGreeting),
		}},
	}
}
