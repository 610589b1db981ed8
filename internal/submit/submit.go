// Package submit accepts finished applications. The POC has no ATS or
// database behind it: the local service validates the payload, logs an
// audit line and hands back a receipt, which is exactly what the engine
// contract needs.
package submit

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Request is one application submission.
type Request struct {
	JobID      string `json:"jobId,omitempty"`
	Role       string `json:"role"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Location   string `json:"location"`
	ResumeLink string `json:"resumeLink,omitempty"`
	Note       string `json:"note,omitempty"`
}

// Receipt is the submission outcome. OK=false carries a short error code,
// never raw transport details.
type Receipt struct {
	OK    bool   `json:"ok"`
	ID    string `json:"id,omitempty"`
	Error string `json:"error,omitempty"`
}

// Service is the application-submission collaborator. Implementations must
// treat a returned error and an OK=false receipt the same way callers do:
// the application was not recorded.
type Service interface {
	Submit(ctx context.Context, req *Request) (*Receipt, error)
}

// Local is the in-process submission service.
type Local struct {
	logger *zap.Logger
}

func NewLocal(logger *zap.Logger) *Local {
	return &Local{logger: logger}
}

// required are the fields every submission must carry. The résumé link is
// not among them: candidates may skip it in the chat flow.
var required = []struct {
	name  string
	value func(*Request) string
}{
	{"role", func(r *Request) string { return r.Role }},
	{"name", func(r *Request) string { return r.Name }},
	{"email", func(r *Request) string { return r.Email }},
	{"location", func(r *Request) string { return r.Location }},
}

func (s *Local) Submit(_ context.Context, req *Request) (*Receipt, error) {
	if req == nil {
		return &Receipt{OK: false, Error: "empty request"}, nil
	}

	for _, field := range required {
		if strings.TrimSpace(field.value(req)) == "" {
			return &Receipt{OK: false, Error: fmt.Sprintf("missing field: %s", field.name)}, nil
		}
	}

	id := NewReceiptID()

	s.logger.Info("new application",
		zap.String("receipt_id", id),
		zap.String("job_id", req.JobID),
		zap.String("role", req.Role),
		zap.String("name", req.Name),
		zap.String("email", req.Email),
		zap.String("location", req.Location),
		zap.String("resume_link", req.ResumeLink),
		zap.String("note", req.Note),
	)

	return &Receipt{OK: true, ID: id}, nil
}

// NewReceiptID returns a short human-readable confirmation code.
func NewReceiptID() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(raw[:8])
}
