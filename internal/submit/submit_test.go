package submit

import (
	"context"
	"testing"

	"go.uber.org/zap"
)

func validRequest() *Request {
	return &Request{
		Role:       "Backend Engineer",
		Name:       "Jane Doe",
		Email:      "jane@x.com",
		Location:   "Berlin",
		ResumeLink: "",
	}
}

func TestSubmitAcceptsValidRequest(t *testing.T) {
	s := NewLocal(zap.NewNop())

	receipt, err := s.Submit(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !receipt.OK {
		t.Fatalf("expected ok receipt, got %+v", receipt)
	}
	if len(receipt.ID) != 8 {
		t.Fatalf("expected 8-char receipt id, got %q", receipt.ID)
	}
}

func TestSubmitResumeLinkOptional(t *testing.T) {
	s := NewLocal(zap.NewNop())
	req := validRequest()
	req.ResumeLink = ""

	receipt, err := s.Submit(context.Background(), req)
	if err != nil || !receipt.OK {
		t.Fatalf("skipped résumé must still submit: %+v, %v", receipt, err)
	}
}

func TestSubmitRejectsMissingFields(t *testing.T) {
	s := NewLocal(zap.NewNop())

	mutations := map[string]func(*Request){
		"role":     func(r *Request) { r.Role = "" },
		"name":     func(r *Request) { r.Name = " " },
		"email":    func(r *Request) { r.Email = "" },
		"location": func(r *Request) { r.Location = "" },
	}

	for field, mutate := range mutations {
		req := validRequest()
		mutate(req)

		receipt, err := s.Submit(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error for %s: %v", field, err)
		}
		if receipt.OK {
			t.Fatalf("expected rejection for missing %s", field)
		}
		if receipt.Error != "missing field: "+field {
			t.Fatalf("unexpected error code: %q", receipt.Error)
		}
	}
}

func TestSubmitNilRequest(t *testing.T) {
	s := NewLocal(zap.NewNop())
	receipt, err := s.Submit(context.Background(), nil)
	if err != nil || receipt.OK {
		t.Fatalf("nil request must be rejected: %+v, %v", receipt, err)
	}
}

func TestReceiptIDsDiffer(t *testing.T) {
	seen := map[string]struct{}{}
	for i := 0; i < 100; i++ {
		id := NewReceiptID()
		if len(id) != 8 {
			t.Fatalf("unexpected id length: %q", id)
		}
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate receipt id %q", id)
		}
		seen[id] = struct{}{}
	}
}
