// Package flow implements the slot-filling application state machine. The
// flow collects the ordered slots role, name, email, location and résumé
// link one reply at a time; transitions are pure so the orchestrator owns
// all side effects.
package flow

import "strings"

// Step indexes the fixed slot sequence. StepIdle means no active flow.
type Step int

const (
	StepIdle Step = iota
	StepRole
	StepName
	StepEmail
	StepLocation
	StepResume
)

// Slot names are the payload keys, in collection order.
const (
	SlotRole     = "role"
	SlotName     = "name"
	SlotEmail    = "email"
	SlotLocation = "location"
	SlotResume   = "resumeLink"
)

// SkipToken lets a candidate decline the résumé slot. It is stored as an
// empty value, never as the literal word.
const SkipToken = "skip"

// State is one conversation's flow position. The zero value is idle.
type State struct {
	Active  bool
	Step    Step
	Payload map[string]string
}

type EventKind int

const (
	EventNone EventKind = iota
	// EventPrompt asks for the slot named in Event.Slot.
	EventPrompt
	// EventReprompt repeats the current slot after an empty reply.
	EventReprompt
	// EventComplete carries the finished application; the state returned
	// alongside it is already idle.
	EventComplete
)

type Event struct {
	Kind        EventKind
	Slot        string
	Application *Application
}

// Application is the collected payload, ready for submission.
type Application struct {
	Role       string
	Name       string
	Email      string
	Location   string
	ResumeLink string
}

var slotOrder = map[Step]string{
	StepRole:     SlotRole,
	StepName:     SlotName,
	StepEmail:    SlotEmail,
	StepLocation: SlotLocation,
	StepResume:   SlotResume,
}

// Start activates a flow. A non-empty seed role pre-fills the role slot and
// skips straight to collecting the name.
func Start(seedRole string) (State, Event) {
	s := State{Active: true, Step: StepRole, Payload: map[string]string{}}
	seedRole = strings.TrimSpace(seedRole)
	if seedRole != "" {
		s.Payload[SlotRole] = seedRole
		s.Step = StepName
	}
	return s, Event{Kind: EventPrompt, Slot: slotOrder[s.Step]}
}

// Advance feeds one user reply into the flow. Empty input re-prompts the
// current slot; anything else is stored verbatim, without format checks,
// and the flow moves on. After the résumé slot the returned state is idle
// and the event carries the complete application.
func Advance(s State, input string) (State, Event) {
	if !s.Active {
		return s, Event{Kind: EventNone}
	}

	slot := slotOrder[s.Step]
	value := strings.TrimSpace(input)
	if value == "" {
		return s, Event{Kind: EventReprompt, Slot: slot}
	}

	if s.Step == StepResume && strings.EqualFold(value, SkipToken) {
		value = ""
	}

	payload := make(map[string]string, len(s.Payload)+1)
	for k, v := range s.Payload {
		payload[k] = v
	}
	payload[slot] = value
	s.Payload = payload

	if s.Step == StepResume {
		app := &Application{
			Role:       s.Payload[SlotRole],
			Name:       s.Payload[SlotName],
			Email:      s.Payload[SlotEmail],
			Location:   s.Payload[SlotLocation],
			ResumeLink: s.Payload[SlotResume],
		}
		return State{}, Event{Kind: EventComplete, Application: app}
	}

	s.Step++
	return s, Event{Kind: EventPrompt, Slot: slotOrder[s.Step]}
}

// Cancel discards the partial payload and returns to idle.
func Cancel(State) State {
	return State{}
}
