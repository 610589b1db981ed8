package ai

import (
	"context"
	"errors"
)

// Assistant answers messages the engine found no structured intent for.
// Replies are best effort: the orchestrator absorbs any error into a
// localized generic message.
type Assistant interface {
	Reply(ctx context.Context, message, locale string) (string, error)
}

// ErrDisabled signals that no assistant backend is configured.
var ErrDisabled = errors.New("assistant is disabled")

// Disabled is the no-op assistant used when no provider is configured.
type Disabled struct{}

func (Disabled) Reply(context.Context, string, string) (string, error) {
	return "", ErrDisabled
}
