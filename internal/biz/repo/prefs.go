package repo

import (
	"context"

	"github.com/SapphicFire/ingress-intel-total-conversion/internal/biz/domain"
)

// PrefsRepo is the persisted preferences repository interface
// Backs the state that survives restarts: the last active channel and the
// last synced viewport box.
type PrefsRepo interface {
	// ActiveChannel returns the persisted active channel id, or "" when unset.
	ActiveChannel(ctx context.Context) (string, error)

	// SaveActiveChannel persists the active channel id.
	SaveActiveChannel(ctx context.Context, channelID string) error

	// Viewport returns the persisted last synced viewport, or nil when unset.
	Viewport(ctx context.Context) (*domain.Bounds, error)

	// SaveViewport persists the last synced viewport.
	SaveViewport(ctx context.Context, bounds domain.Bounds) error

	// Close closes the underlying store.
	Close() error
}
