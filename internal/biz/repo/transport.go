package repo

import (
	"context"
	"errors"

	"github.com/SapphicFire/ingress-intel-total-conversion/internal/biz/domain"
)

// ErrMalformedResponse signals a response without a usable result set.
// It is non-fatal: the sync cycle skips the merge and moves on.
var ErrMalformedResponse = errors.New("malformed response: missing result")

// Transport is the game server transport interface
// Responsible for issuing fetch and post requests; it performs no retries
// itself, retry policy belongs to the sync driver.
type Transport interface {
	// FetchMessages fetches one page of messages for a channel.
	FetchMessages(ctx context.Context, params domain.FetchParams) ([]domain.RawRecord, error)

	// PostMessage sends a chat message.
	PostMessage(ctx context.Context, params domain.PostParams) error
}
