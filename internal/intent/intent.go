// Package intent classifies a raw user message into one of four intents
// with a fixed rule priority: an active application flow always wins, apply
// triggers are checked before generic job vocabulary, and anything left is
// freeform. Classification is deterministic keyword/regex matching, nothing
// more.
package intent

import (
	"regexp"
	"strings"
)

type Intent int

const (
	Freeform Intent = iota
	JobQuery
	ApplyCommand
	SlotReply
)

func (i Intent) String() string {
	switch i {
	case JobQuery:
		return "job_query"
	case ApplyCommand:
		return "apply_command"
	case SlotReply:
		return "slot_reply"
	default:
		return "freeform"
	}
}

// Result carries the classified intent plus, for apply commands, the seed
// role text that followed the trigger ("apply for Frontend Engineer").
type Result struct {
	Intent   Intent
	SeedRole string
}

var (
	// Leading apply trigger, optionally prefixed by an "I want to" style
	// phrase, in any of the three locales. Note: \b cannot follow the
	// Arabic token because Arabic letters are not ASCII word characters.
	applyPattern = regexp.MustCompile(`(?i)^\s*(?:i\s+want\s+to\s+|i'd\s+like\s+to\s+|je\s+veux\s+|أريد\s+)?(?:apply\b|postuler\b|التقديم)`)

	// Connector words between the trigger and the role text.
	applyConnector = regexp.MustCompile(`(?i)^(?:for|to|au\s+poste\s+de|pour|à|على|لوظيفة|ل)\s+`)

	// Job vocabulary across the three locales; plain alternation without
	// boundaries for the non-Latin terms.
	jobPattern = regexp.MustCompile(`(?i)\b(?:jobs?|roles?|openings?|positions?|hiring|vacanc(?:y|ies)|careers?|offres?|postes?|emploi|recrutement)\b|وظيفة|وظائف|فرصة|توظيف`)
)

// Classify maps user text to an intent. flowActive reports whether an
// application flow currently owns the conversation; while it does, every
// message is a slot reply regardless of its content.
func Classify(text string, flowActive bool) Result {
	if flowActive {
		return Result{Intent: SlotReply}
	}

	if loc := applyPattern.FindStringIndex(text); loc != nil {
		return Result{Intent: ApplyCommand, SeedRole: seedRole(text[loc[1]:])}
	}

	if jobPattern.MatchString(text) {
		return Result{Intent: JobQuery}
	}

	return Result{Intent: Freeform}
}

// seedRole cleans the text after an apply trigger into a role candidate.
func seedRole(rest string) string {
	rest = strings.TrimSpace(rest)
	rest = applyConnector.ReplaceAllString(rest, "")
	return strings.Trim(strings.TrimSpace(rest), `"'“”«»`)
}
