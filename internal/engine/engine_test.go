package engine

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"go.uber.org/zap"

	"github.com/hirebyte/hr-assistant/internal/ai"
	"github.com/hirebyte/hr-assistant/internal/catalog"
	"github.com/hirebyte/hr-assistant/internal/flow"
	"github.com/hirebyte/hr-assistant/internal/i18n"
	"github.com/hirebyte/hr-assistant/internal/submit"
)

type stubAssistant struct {
	reply string
	err   error
	calls int
}

func (s *stubAssistant) Reply(_ context.Context, message, locale string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

type stubSubmitter struct {
	last   *submit.Request
	err    error
	reject bool
}

func (s *stubSubmitter) Submit(_ context.Context, req *submit.Request) (*submit.Receipt, error) {
	s.last = req
	if s.err != nil {
		return nil, s.err
	}
	if s.reject {
		return &submit.Receipt{OK: false, Error: "backend offline"}, nil
	}
	return &submit.Receipt{OK: true, ID: "AB12CD34"}, nil
}

func newTestEngine() (*Engine, *stubAssistant, *stubSubmitter) {
	assistant := &stubAssistant{reply: "happy to help"}
	submitter := &stubSubmitter{}
	e := New(catalog.Default(), assistant, submitter, zap.NewNop())
	return e, assistant, submitter
}

func entryTexts(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Text
	}
	return out
}

func TestNewConversationOpensWithLocalizedGreeting(t *testing.T) {
	for _, loc := range i18n.Locales() {
		state := NewConversation(loc)
		if len(state.MessageLog) != 1 {
			t.Fatalf("locale %s: expected a single greeting entry, got %d", loc.Code, len(state.MessageLog))
		}
		got := state.MessageLog[0]
		if got.Role != RoleAssistant || got.Kind != EntryText {
			t.Errorf("locale %s: unexpected greeting entry %+v", loc.Code, got)
		}
		if want := i18n.T(loc, i18n.KeyGreeting); got.Text != want {
			t.Errorf("locale %s: greeting = %q, want %q", loc.Code, got.Text, want)
		}
	}
}

func TestJobQueryWithLocationFilters(t *testing.T) {
	e, _, _ := newTestEngine()
	state := NewConversation(i18n.English)

	replies := e.HandleMessage(context.Background(), state, "jobs in Paris")
	if len(replies) != 2 {
		t.Fatalf("expected job cards plus CTA, got %v", entryTexts(replies))
	}
	if replies[0].Kind != EntryJobs {
		t.Fatalf("first reply kind = %q, want %q", replies[0].Kind, EntryJobs)
	}

	var ids []string
	for _, p := range replies[0].Jobs {
		ids = append(ids, p.ID)
	}
	want := []string{"fe-001", "ux-007"}
	if len(ids) != len(want) {
		t.Fatalf("job ids = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("job ids = %v, want %v", ids, want)
		}
	}

	if replies[1].Text != i18n.T(i18n.English, i18n.KeyJobsCTA) {
		t.Errorf("second reply = %q, want the openings CTA", replies[1].Text)
	}
	if len(state.LastShownJobs) != 2 {
		t.Errorf("LastShownJobs = %d postings, want 2", len(state.LastShownJobs))
	}
}

func TestJobQueryNoResults(t *testing.T) {
	e, _, _ := newTestEngine()
	state := NewConversation(i18n.English)

	replies := e.HandleMessage(context.Background(), state, "any blacksmith jobs?")
	if len(replies) != 1 || replies[0].Text != i18n.T(i18n.English, i18n.KeyNoResults) {
		t.Fatalf("expected the no-results message, got %v", entryTexts(replies))
	}
	if len(state.LastShownJobs) != 0 {
		t.Errorf("LastShownJobs should stay empty after a miss")
	}
}

func TestJobQueryCapsCardsButRemembersAll(t *testing.T) {
	e, _, _ := newTestEngine()
	state := NewConversation(i18n.English)

	replies := e.HandleMessage(context.Background(), state, "what jobs are open?")
	if replies[0].Kind != EntryJobs {
		t.Fatalf("expected job cards, got %v", entryTexts(replies))
	}
	if len(replies[0].Jobs) != maxJobCards {
		t.Errorf("cards = %d, want %d", len(replies[0].Jobs), maxJobCards)
	}
	if got, want := len(state.LastShownJobs), catalog.Default().Len(); got != want {
		t.Errorf("LastShownJobs = %d, want the full catalog (%d)", got, want)
	}
}

func TestApplyWithoutRoleShowsHintThenAsksRole(t *testing.T) {
	e, _, _ := newTestEngine()
	state := NewConversation(i18n.English)

	replies := e.HandleMessage(context.Background(), state, "apply")
	want := []string{
		i18n.T(i18n.English, i18n.KeyApplyHint),
		i18n.T(i18n.English, i18n.KeyPromptRole),
	}
	got := entryTexts(replies)
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("replies = %v, want %v", got, want)
	}
	if !state.Flow.Active || state.Flow.Step != flow.StepRole {
		t.Errorf("flow should be waiting on the role slot, got %+v", state.Flow)
	}
}

func TestApplyWithSeedRoleSkipsRoleSlot(t *testing.T) {
	e, _, _ := newTestEngine()
	state := NewConversation(i18n.English)

	replies := e.HandleMessage(context.Background(), state, "apply for backend engineer")
	if len(replies) != 1 || replies[0].Text != i18n.T(i18n.English, i18n.KeyPromptName) {
		t.Fatalf("expected the name prompt, got %v", entryTexts(replies))
	}
	if got := state.Flow.Payload[flow.SlotRole]; got != "Backend Engineer (Node)" {
		t.Errorf("seeded role = %q, want the canonical catalog title", got)
	}
}

func TestFullApplicationHappyPath(t *testing.T) {
	e, _, submitter := newTestEngine()
	state := NewConversation(i18n.English)
	ctx := context.Background()

	e.HandleMessage(ctx, state, "apply")
	e.HandleMessage(ctx, state, "Backend Engineer")
	e.HandleMessage(ctx, state, "Jane Doe")
	e.HandleMessage(ctx, state, "jane@x.com")
	e.HandleMessage(ctx, state, "Berlin")
	replies := e.HandleMessage(ctx, state, "skip")

	if submitter.last == nil {
		t.Fatal("submission never reached the service")
	}
	got := submitter.last
	if got.Role != "Backend Engineer" || got.Name != "Jane Doe" ||
		got.Email != "jane@x.com" || got.Location != "Berlin" || got.ResumeLink != "" {
		t.Errorf("submitted request = %+v", got)
	}
	if got.JobID != "be-004" {
		t.Errorf("job id = %q, want be-004", got.JobID)
	}

	want := fmt.Sprintf(i18n.T(i18n.English, i18n.KeyConfirm), "Backend Engineer", "Jane Doe", "jane@x.com")
	if len(replies) != 1 || replies[0].Text != want {
		t.Errorf("confirmation = %v, want %q", entryTexts(replies), want)
	}
	if state.Flow.Active {
		t.Errorf("flow should be idle after a successful submission")
	}
}

func TestEmptySlotReplyReprompts(t *testing.T) {
	e, _, _ := newTestEngine()
	state := NewConversation(i18n.English)
	ctx := context.Background()

	e.HandleMessage(ctx, state, "apply for backend engineer")
	replies := e.HandleMessage(ctx, state, "   ")

	want := []string{
		i18n.T(i18n.English, i18n.KeyReprompt),
		i18n.T(i18n.English, i18n.KeyPromptName),
	}
	got := entryTexts(replies)
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("replies = %v, want %v", got, want)
	}
	if state.Flow.Step != flow.StepName {
		t.Errorf("flow advanced on empty input: %+v", state.Flow)
	}
}

func TestSubmitFailureResetsFlow(t *testing.T) {
	e, _, submitter := newTestEngine()
	submitter.err = errors.New("network down")
	state := NewConversation(i18n.English)
	ctx := context.Background()

	e.HandleMessage(ctx, state, "apply for backend engineer")
	e.HandleMessage(ctx, state, "Jane Doe")
	e.HandleMessage(ctx, state, "jane@x.com")
	e.HandleMessage(ctx, state, "Berlin")
	replies := e.HandleMessage(ctx, state, "skip")

	if len(replies) != 1 || replies[0].Text != i18n.T(i18n.English, i18n.KeySubmitFailed) {
		t.Fatalf("expected the failure message, got %v", entryTexts(replies))
	}
	if state.Flow.Active {
		t.Fatalf("a failed submission must still reset the flow, got %+v", state.Flow)
	}

	// A fresh application can start right away.
	submitter.err = nil
	replies = e.HandleMessage(ctx, state, "apply for backend engineer")
	if len(replies) != 1 || replies[0].Text != i18n.T(i18n.English, i18n.KeyPromptName) {
		t.Errorf("new application did not start: %v", entryTexts(replies))
	}
}

func TestRejectedReceiptAlsoResetsFlow(t *testing.T) {
	e, _, submitter := newTestEngine()
	submitter.reject = true
	state := NewConversation(i18n.English)
	ctx := context.Background()

	e.HandleMessage(ctx, state, "apply for backend engineer")
	e.HandleMessage(ctx, state, "Jane Doe")
	e.HandleMessage(ctx, state, "jane@x.com")
	e.HandleMessage(ctx, state, "Berlin")
	replies := e.HandleMessage(ctx, state, "skip")

	if replies[0].Text != i18n.T(i18n.English, i18n.KeySubmitFailed) {
		t.Fatalf("expected the failure message, got %v", entryTexts(replies))
	}
	if state.Flow.Active {
		t.Errorf("flow must reset on a rejected receipt")
	}
}

func TestFreeformUsesAssistant(t *testing.T) {
	e, assistant, _ := newTestEngine()
	state := NewConversation(i18n.English)

	replies := e.HandleMessage(context.Background(), state, "tell me about the interview process")
	if assistant.calls != 1 {
		t.Fatalf("assistant calls = %d, want 1", assistant.calls)
	}
	if len(replies) != 1 || replies[0].Text != "happy to help" {
		t.Errorf("replies = %v", entryTexts(replies))
	}
}

func TestFreeformFailureRendersLocalizedApology(t *testing.T) {
	e, assistant, _ := newTestEngine()
	assistant.err = errors.New("quota exceeded")
	state := NewConversation(i18n.French)

	replies := e.HandleMessage(context.Background(), state, "parle-moi de l'entreprise")
	if len(replies) != 1 || replies[0].Text != i18n.T(i18n.French, i18n.KeyApology) {
		t.Errorf("replies = %v, want the French apology", entryTexts(replies))
	}
}

func TestFreeformDisabledAssistantApologizes(t *testing.T) {
	e := New(catalog.Default(), ai.Disabled{}, &stubSubmitter{}, zap.NewNop())
	state := NewConversation(i18n.English)

	replies := e.HandleMessage(context.Background(), state, "hello there")
	if len(replies) != 1 || replies[0].Text != i18n.T(i18n.English, i18n.KeyApology) {
		t.Errorf("replies = %v, want the apology", entryTexts(replies))
	}
}

func TestCancelFlow(t *testing.T) {
	e, _, _ := newTestEngine()
	state := NewConversation(i18n.English)
	ctx := context.Background()

	if got := e.CancelFlow(state); got != nil {
		t.Fatalf("cancel with no active flow returned %v", entryTexts(got))
	}

	e.HandleMessage(ctx, state, "apply for backend engineer")
	replies := e.CancelFlow(state)
	if len(replies) != 1 || replies[0].Text != i18n.T(i18n.English, i18n.KeyCancelled) {
		t.Fatalf("replies = %v, want the cancellation notice", entryTexts(replies))
	}
	if state.Flow.Active {
		t.Errorf("flow still active after cancel")
	}
}

func TestMessageLogRecordsBothSides(t *testing.T) {
	e, _, _ := newTestEngine()
	state := NewConversation(i18n.English)

	e.HandleMessage(context.Background(), state, "jobs in Paris")
	// greeting + user message + cards + CTA
	if len(state.MessageLog) != 4 {
		t.Fatalf("message log has %d entries, want 4", len(state.MessageLog))
	}
	if state.MessageLog[1].Role != RoleUser || state.MessageLog[1].Text != "jobs in Paris" {
		t.Errorf("user entry = %+v", state.MessageLog[1])
	}
}

func TestParseQuery(t *testing.T) {
	cases := []struct {
		in       string
		keywords string
		location string
	}{
		{"jobs in Paris", "", "Paris"},
		{"any backend openings?", "backend", ""},
		{"what positions are open in New York", "", "New York"},
		{"offres à Paris", "", "Paris"},
		{"وظائف في دبي", "", "دبي"},
		{"Kubernetes roles", "kubernetes", ""},
		{"", "", ""},
	}
	for _, tc := range cases {
		kw, loc := parseQuery(tc.in)
		if kw != tc.keywords || loc != tc.location {
			t.Errorf("parseQuery(%q) = (%q, %q), want (%q, %q)", tc.in, kw, loc, tc.keywords, tc.location)
		}
	}
}
