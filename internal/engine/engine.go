// Package engine turns one user message into a list of localized reply
// entries. It owns the conversation branching: intent classification, job
// search, the application flow and the AI small-talk fallback.
package engine

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/hirebyte/hr-assistant/internal/ai"
	"github.com/hirebyte/hr-assistant/internal/catalog"
	"github.com/hirebyte/hr-assistant/internal/flow"
	"github.com/hirebyte/hr-assistant/internal/i18n"
	"github.com/hirebyte/hr-assistant/internal/intent"
	"github.com/hirebyte/hr-assistant/internal/ranking"
	"github.com/hirebyte/hr-assistant/internal/submit"
)

// maxJobCards caps how many postings a single reply renders. The full result
// set is still remembered for later "apply to X" references.
const maxJobCards = 5

var promptKeys = map[string]i18n.Key{
	flow.SlotRole:     i18n.KeyPromptRole,
	flow.SlotName:     i18n.KeyPromptName,
	flow.SlotEmail:    i18n.KeyPromptEmail,
	flow.SlotLocation: i18n.KeyPromptCity,
	flow.SlotResume:   i18n.KeyPromptResume,
}

type Engine struct {
	catalog   *catalog.Catalog
	assistant ai.Assistant
	submitter submit.Service
	logger    *zap.Logger
}

func New(c *catalog.Catalog, assistant ai.Assistant, submitter submit.Service, logger *zap.Logger) *Engine {
	return &Engine{
		catalog:   c,
		assistant: assistant,
		submitter: submitter,
		logger:    logger,
	}
}

// HandleMessage processes one user message, mutates the conversation state
// and returns the assistant entries produced for it. The same entries are
// also appended to the state's message log.
func (e *Engine) HandleMessage(ctx context.Context, state *ConversationState, text string) []Entry {
	state.MessageLog = append(state.MessageLog, Entry{Kind: EntryText, Role: RoleUser, Text: text})

	res := intent.Classify(text, state.Flow.Active)
	e.logger.Debug("message classified",
		zap.String("intent", res.Intent.String()),
		zap.String("locale", state.Locale.Code),
	)

	var replies []Entry
	switch res.Intent {
	case intent.SlotReply:
		replies = e.advanceFlow(ctx, state, text)
	case intent.ApplyCommand:
		replies = e.startFlow(state, text, res.SeedRole)
	case intent.JobQuery:
		replies = e.searchJobs(state, text)
	default:
		replies = e.freeform(ctx, state, text)
	}

	state.MessageLog = append(state.MessageLog, replies...)
	return replies
}

// CancelFlow aborts an in-progress application, if any, and confirms it.
func (e *Engine) CancelFlow(state *ConversationState) []Entry {
	if !state.Flow.Active {
		return nil
	}
	state.Flow = flow.Cancel(state.Flow)
	replies := []Entry{e.say(state, i18n.KeyCancelled)}
	state.MessageLog = append(state.MessageLog, replies...)
	return replies
}

func (e *Engine) advanceFlow(ctx context.Context, state *ConversationState, text string) []Entry {
	next, ev := flow.Advance(state.Flow, text)
	state.Flow = next

	switch ev.Kind {
	case flow.EventReprompt:
		return []Entry{
			e.say(state, i18n.KeyReprompt),
			e.say(state, promptKeys[ev.Slot]),
		}
	case flow.EventPrompt:
		return []Entry{e.say(state, promptKeys[ev.Slot])}
	case flow.EventComplete:
		return e.submitApplication(ctx, state, ev.Application)
	}
	return nil
}

// submitApplication hands the collected payload to the submission service.
// The flow is already idle at this point and stays idle whatever the
// outcome: a failed submission is not retryable in place, the candidate
// starts a fresh application instead.
func (e *Engine) submitApplication(ctx context.Context, state *ConversationState, app *flow.Application) []Entry {
	req := &submit.Request{
		Role:       app.Role,
		Name:       app.Name,
		Email:      app.Email,
		Location:   app.Location,
		ResumeLink: app.ResumeLink,
	}
	if p := e.catalog.FindByTitle(app.Role); p != nil {
		req.JobID = p.ID
	}

	receipt, err := e.submitter.Submit(ctx, req)
	if err != nil || !receipt.OK {
		e.logger.Warn("application submission failed", zap.Error(err))
		return []Entry{e.say(state, i18n.KeySubmitFailed)}
	}

	e.logger.Info("application submitted",
		zap.String("receipt", receipt.ID),
		zap.String("role", req.Role),
	)
	confirm := fmt.Sprintf(i18n.T(state.Locale, i18n.KeyConfirm), app.Role, app.Name, app.Email)
	return []Entry{{Kind: EntryText, Role: RoleAssistant, Text: confirm}}
}

func (e *Engine) startFlow(state *ConversationState, text, seed string) []Entry {
	var hint bool
	role := seed
	if role == "" {
		p := catalog.Match(state.LastShownJobs, text)
		if p == nil {
			p = catalog.Match(e.catalog.Items, text)
		}
		if p != nil {
			role = p.Title
		} else {
			hint = true
		}
	} else if p := e.catalog.FindByTitle(role); p != nil {
		role = p.Title
	}

	started, ev := flow.Start(role)
	state.Flow = started

	var replies []Entry
	if hint {
		replies = append(replies, e.say(state, i18n.KeyApplyHint))
	}
	return append(replies, e.say(state, promptKeys[ev.Slot]))
}

func (e *Engine) searchJobs(state *ConversationState, text string) []Entry {
	keywords, location := parseQuery(text)
	results := ranking.Rank(e.catalog, keywords, location)
	e.logger.Debug("job search",
		zap.String("keywords", keywords),
		zap.String("location", location),
		zap.Int("results", len(results)),
	)

	if len(results) == 0 {
		return []Entry{e.say(state, i18n.KeyNoResults)}
	}

	state.LastShownJobs = results
	cards := results
	if len(cards) > maxJobCards {
		cards = cards[:maxJobCards]
	}
	return []Entry{
		{Kind: EntryJobs, Role: RoleAssistant, Jobs: cards},
		e.say(state, i18n.KeyJobsCTA),
	}
}

func (e *Engine) freeform(ctx context.Context, state *ConversationState, text string) []Entry {
	reply, err := e.assistant.Reply(ctx, text, state.Locale.Code)
	if err != nil {
		if err != ai.ErrDisabled {
			e.logger.Warn("assistant reply failed", zap.Error(err))
		}
		return []Entry{e.say(state, i18n.KeyApology)}
	}
	return []Entry{{Kind: EntryText, Role: RoleAssistant, Text: reply}}
}

func (e *Engine) say(state *ConversationState, key i18n.Key) Entry {
	return Entry{Kind: EntryText, Role: RoleAssistant, Text: i18n.T(state.Locale, key)}
}
