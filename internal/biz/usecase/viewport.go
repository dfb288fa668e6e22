package usecase

import (
	"fmt"

	"github.com/SapphicFire/ingress-intel-total-conversion/internal/biz/domain"
	"github.com/SapphicFire/ingress-intel-total-conversion/internal/biz/repo"
)

// DefaultViewportPadding is the hysteresis tolerance as a fraction of the
// box size.
const DefaultViewportPadding = 0.1

// ViewportMonitor detects viewport changes with hysteresis and invalidates
// viewport-scoped channel states when the user has panned far enough.
type ViewportMonitor struct {
	store    *domain.Store
	registry *domain.Registry
	target   repo.RenderTarget
	renderer *Renderer
	padding  float64

	lastSynced *domain.Bounds
}

// NewViewportMonitor creates a new viewport monitor
func NewViewportMonitor(store *domain.Store, registry *domain.Registry, target repo.RenderTarget, renderer *Renderer, padding float64) *ViewportMonitor {
	if padding <= 0 {
		padding = DefaultViewportPadding
	}
	return &ViewportMonitor{
		store:    store,
		registry: registry,
		target:   target,
		renderer: renderer,
		padding:  padding,
	}
}

// Restore seeds the last synced box, e.g. from persisted preferences.
func (m *ViewportMonitor) Restore(bounds domain.Bounds) {
	b := bounds
	m.lastSynced = &b
}

// LastSynced returns the last synced box, or nil before the first cycle.
func (m *ViewportMonitor) LastSynced() *domain.Bounds {
	return m.lastSynced
}

// Check compares the current viewport against the last synced box. When the
// boxes are no longer interchangeable it resets every viewport-scoped
// channel, flags the containers for a forced clear and adopts the new box.
// Returns true when a reset happened.
func (m *ViewportMonitor) Check(current domain.Bounds) bool {
	if m.lastSynced == nil {
		// First cycle: channel states are still fresh from setup.
		b := current
		m.lastSynced = &b
		return false
	}

	if m.lastSynced.CloseTo(current, m.padding) {
		return false
	}

	for _, ch := range m.registry.All() {
		if !ch.ViewportScoped {
			continue
		}
		m.store.Reset(ch.ID)
		m.target.SetNeedsClearing(ch.ID, true)
		if m.renderer != nil {
			m.renderer.Invalidate(ch.ID)
		}
	}

	fmt.Printf("[Viewport] Box moved, invalidated viewport-scoped channels\n")
	b := current
	m.lastSynced = &b
	return true
}
